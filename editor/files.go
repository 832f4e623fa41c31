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
package editor

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// ReadFile replaces the buffer with the lines of a UTF-8 text file.
// On failure the buffer is unchanged.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(b) {
		return fmt.Errorf("reading %s: %w", path, ErrInvalidUTF8)
	}
	e.buffer.LoadBytes(b)
	logger().Info("read file", "path", path, "columns", e.buffer.ColumnCount())
	e.setFileName(path)
	e.notify(ChangeText)
	return nil
}

// Text returns the contents as they are written to a file.
func (e *Editor) Text() string {
	return string(e.buffer.Bytes())
}

// WriteFile saves the buffer as UTF-8 text, one line per column.
// The buffer is never modified.
func (e *Editor) WriteFile(path string) error {
	if err := os.WriteFile(path, e.buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger().Info("wrote file", "path", path, "columns", e.buffer.ColumnCount())
	if path != e.fileName {
		e.setFileName(path)
	}
	return nil
}
