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

import "strconv"

// HTML returns the string form of v encoded for HTML text
// or a quoted or unquoted HTML attribute value.
//
// Control characters are replaced with spaces.
// Letters, digits, whitespace, ",", "." and "-"
// and code points from U+00A0 through U+FFFF are left as-is.
// "&", "<", ">" and `"` are replaced with named character references
// and every other code point is replaced with a numeric character reference.
//
// Code points outside the Basic Multilingual Plane
// are written as a pair of numeric references, one per UTF-16 surrogate.
// This is not conformant HTML; see the package documentation.
func HTML(v any) string {
	s := stringify(v)
	return string(AppendHTML(make([]byte, 0, len(s)), s))
}

// AppendHTML appends the HTML encoding of s to dst
// and returns the resulting byte slice.
// See [HTML] for details.
func AppendHTML(dst []byte, s string) []byte {
	return appendEscaped(dst, s, htmlSafe, escapeHTMLRune)
}

func escapeHTMLRune(dst []byte, c rune) []byte {
	switch {
	case isHTMLControl(c):
		return append(dst, ' ')
	case c == '"':
		return append(dst, "&quot;"...)
	case c == '&':
		return append(dst, "&amp;"...)
	case c == '<':
		return append(dst, "&lt;"...)
	case c == '>':
		return append(dst, "&gt;"...)
	case c < 100:
		dst = append(dst, "&#"...)
		dst = strconv.AppendInt(dst, int64(c), 10)
		return append(dst, ';')
	}
	hi, lo := utf16Units(c)
	dst = appendHexReference(dst, hi)
	if lo != 0 {
		dst = appendHexReference(dst, lo)
	}
	return dst
}

func appendHexReference(dst []byte, c rune) []byte {
	dst = append(dst, "&#x"...)
	dst = appendHex(dst, uint32(c), upperHex)
	return append(dst, ';')
}
