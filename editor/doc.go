//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package editor implements the text model of tategaki.
// Text is kept as columns that are read top to bottom and laid out
// from right to left. A file maps to a buffer line by line: the first
// line of a file is the rightmost column.
// The Editor wraps a buffer with a document name, a clipboard and the
// interface locale, and implements the New, Open and Save flows on top
// of the dialogs provided by a host.
package editor
