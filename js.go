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

import "unicode/utf8"

// JS returns the string form of v encoded for the inside of
// a single- or double-quoted JavaScript string literal.
//
// Letters, digits, ",", "." and "-" are left as-is.
// Every other ASCII character is written as \xHH
// and every other code point is written as one or two \uHHHH escapes,
// one per UTF-16 code unit.
//
// JS must be applied to the raw value.
// Encoding the output of [HTML] would let entity-decoding
// in an enclosing attribute reintroduce quotes; use [JSAttr] instead.
func JS(v any) string {
	s := stringify(v)
	return string(AppendJS(make([]byte, 0, len(s)), s))
}

// AppendJS appends the JavaScript string encoding of s to dst
// and returns the resulting byte slice.
func AppendJS(dst []byte, s string) []byte {
	return appendEscaped(dst, s, jsSafe, escapeJSRune)
}

// JSAttr returns the string form of v encoded for a JavaScript string literal
// inside an HTML attribute, like the VALUE in onclick="f('VALUE')".
// It is equivalent to HTML(JS(v)).
func JSAttr(v any) string {
	s := stringify(v)
	return string(AppendJSAttr(make([]byte, 0, len(s)), s))
}

// AppendJSAttr appends the result of [JSAttr] on s to dst
// and returns the resulting byte slice.
func AppendJSAttr(dst []byte, s string) []byte {
	return AppendHTML(dst, string(AppendJS(nil, s)))
}

// escapeJSRune is shared by the JavaScript and JSON encoders.
func escapeJSRune(dst []byte, c rune) []byte {
	if 0 <= c && c < utf8.RuneSelf {
		return append(dst, '\\', 'x', upperHex[c>>4], upperHex[c&0xf])
	}
	hi, lo := utf16Units(c)
	dst = appendJSUnicode(dst, hi)
	if lo != 0 {
		dst = appendJSUnicode(dst, lo)
	}
	return dst
}

func appendJSUnicode(dst []byte, u rune) []byte {
	return append(dst, '\\', 'u',
		upperHex[u>>12&0xf],
		upperHex[u>>8&0xf],
		upperHex[u>>4&0xf],
		upperHex[u&0xf],
	)
}
