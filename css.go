// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package escape

// CSS returns the string form of v encoded for a CSS property value
// or identifier fragment.
//
// ASCII letters and digits and code points U+00A1 and above are left as-is.
// Every other code point is written as a [CSS escape]:
// a backslash, the code point in lowercase hex and a terminating space.
// NUL is written as "\fffd ", the replacement character,
// since CSS does not permit it.
//
// [CSS escape]: https://www.w3.org/TR/css-syntax-3/#escaping
func CSS(v any) string {
	s := stringify(v)
	return string(AppendCSS(make([]byte, 0, len(s)), s))
}

// AppendCSS appends the CSS encoding of s to dst
// and returns the resulting byte slice.
func AppendCSS(dst []byte, s string) []byte {
	return appendEscaped(dst, s, cssSafe, escapeCSSRune)
}

// Style returns the string form of v encoded for a CSS value
// inside an HTML style attribute.
// It is equivalent to HTML(CSS(v)).
func Style(v any) string {
	s := stringify(v)
	return string(AppendStyle(make([]byte, 0, len(s)), s))
}

// AppendStyle appends the result of [Style] on s to dst
// and returns the resulting byte slice.
func AppendStyle(dst []byte, s string) []byte {
	return AppendHTML(dst, string(AppendCSS(nil, s)))
}

func escapeCSSRune(dst []byte, c rune) []byte {
	if c == 0 {
		return append(dst, `\fffd `...)
	}
	dst = append(dst, '\\')
	dst = appendHex(dst, uint32(c), lowerHex)
	return append(dst, ' ')
}
