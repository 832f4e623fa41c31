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
package locale

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Default is the locale used at startup and for unknown codes.
const Default = "en"

var ErrUnknownLocale = errors.New("unknown locale")

// Locale codes in menu order
var codes = []string{"en", "zh-CN", "zh-TW", "ja", "ko"}

var localizers = newLocalizers()

func newLocalizers() map[string]*i18n.Localizer {
	bundle := i18n.NewBundle(language.English)
	for _, code := range codes {
		table := tables[code]
		keys := make([]string, 0, len(table))
		for key := range table {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		messages := make([]*i18n.Message, 0, len(keys))
		for _, key := range keys {
			messages = append(messages, &i18n.Message{ID: key, Other: table[key]})
		}
		bundle.MustAddMessages(language.MustParse(code), messages...)
	}
	l := make(map[string]*i18n.Localizer, len(codes))
	for _, code := range codes {
		l[code] = i18n.NewLocalizer(bundle, code)
	}
	return l
}

// Codes returns the supported locale codes in menu order.
func Codes() []string {
	return append([]string(nil), codes...)
}

func Valid(code string) bool {
	_, ok := localizers[code]
	return ok
}

// Check returns ErrUnknownLocale for unsupported codes.
func Check(code string) error {
	if !Valid(code) {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}
	return nil
}

// Translate returns the string for key in the given locale.
// A missing key renders as the key itself.
func Translate(code, key string) string {
	l, ok := localizers[code]
	if !ok {
		l = localizers[Default]
	}
	s, err := l.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil || s == "" {
		return key
	}
	return s
}

// Name is the label of a locale in the language menu, written in that locale.
func Name(code string) string {
	return Translate(code, "language")
}

// FontFamily returns the rendering font family for a locale.
func FontFamily(code string) string {
	if family, ok := fontFamilies[code]; ok {
		return family
	}
	return fontFamilies[Default]
}

// Next returns the locale after code in menu order, wrapping around.
func Next(code string) string {
	for i, c := range codes {
		if c == code {
			return codes[(i+1)%len(codes)]
		}
	}
	return Default
}
