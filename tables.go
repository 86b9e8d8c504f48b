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

import (
	"unicode/utf16"
	"unicode/utf8"
)

// A charClass is the set of code points that an encoder
// copies to its output unchanged.
type charClass struct {
	ascii [utf8.RuneSelf]bool
	// lo and hi bound the non-ASCII code points in the class (inclusive).
	// An empty range (lo > hi) means no non-ASCII code point is safe.
	lo, hi rune
}

func newCharClass(punct string, lo, hi rune) *charClass {
	cc := &charClass{lo: lo, hi: hi}
	for c := byte(0); c < utf8.RuneSelf; c++ {
		cc.ascii[c] = isASCIILetter(c) || isASCIIDigit(c)
	}
	for i := 0; i < len(punct); i++ {
		cc.ascii[punct[i]] = true
	}
	return cc
}

func (cc *charClass) contains(r rune) bool {
	if 0 <= r && r < utf8.RuneSelf {
		return cc.ascii[r]
	}
	return cc.lo <= r && r <= cc.hi
}

var (
	// htmlSafe omits vertical tab and form feed:
	// they are control characters and become spaces.
	htmlSafe = newCharClass("\t\n\r ,.-", 0x00a0, 0xffff)
	jsSafe   = newCharClass(",.-", 1, 0)
	jsonSafe = newCharClass(`",-.:[\]_{}`, 1, 0)
	cssSafe  = newCharClass("", 0x00a1, utf8.MaxRune)
)

// isHTMLControl reports whether r is a C0 or C1 control character
// that has no meaning in HTML text.
// Tab, line feed and carriage return are excluded.
func isHTMLControl(r rune) bool {
	return 0 <= r && r <= 0x08 ||
		r == 0x0b ||
		r == 0x0c ||
		0x0e <= r && r <= 0x1f ||
		0x7f <= r && r <= 0x9f
}

// appendEscaped appends s to dst,
// replacing every code point outside of class with the result of esc.
// Runs of safe bytes are copied verbatim.
// An invalid UTF-8 byte is treated as U+FFFD.
func appendEscaped(dst []byte, s string, class *charClass, esc func([]byte, rune) []byte) []byte {
	verbatimStart := 0
	for i := 0; i < len(s); {
		c, n := utf8.DecodeRuneInString(s[i:])
		invalid := c == utf8.RuneError && n == 1
		if class.contains(c) && !invalid {
			i += n
			continue
		}
		dst = append(dst, s[verbatimStart:i]...)
		if class.contains(c) {
			dst = utf8.AppendRune(dst, c)
		} else {
			dst = esc(dst, c)
		}
		i += n
		verbatimStart = i
	}
	return append(dst, s[verbatimStart:]...)
}

const (
	upperHex = "0123456789ABCDEF"
	lowerHex = "0123456789abcdef"
)

// appendHex appends the hexadecimal digits of x with no leading zeroes.
func appendHex(dst []byte, x uint32, digits string) []byte {
	if x == 0 {
		return append(dst, '0')
	}
	var buf [8]byte
	i := len(buf)
	for ; x > 0; x >>= 4 {
		i--
		buf[i] = digits[x&0xf]
	}
	return append(dst, buf[i:]...)
}

// utf16Units returns the UTF-16 code units of r.
// The second unit is zero if r is in the Basic Multilingual Plane.
func utf16Units(r rune) (rune, rune) {
	if r < 0x10000 {
		return r, 0
	}
	return utf16.EncodeRune(r)
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
