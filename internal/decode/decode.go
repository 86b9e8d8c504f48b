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

// Package decode provides decoders that follow the relevant standards
// for each of the escaping contexts.
// They are used to check that encoded values decode back to their input.
package decode

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// HTMLText decodes s as the text content of an HTML element.
// It returns an error if s contains markup.
func HTMLText(s string) (string, error) {
	tok := html.NewTokenizerFragment(strings.NewReader(s), "div")
	sb := new(strings.Builder)
	for {
		switch tt := tok.Next(); tt {
		case html.ErrorToken:
			if err := tok.Err(); err != nil && !errors.Is(err, io.EOF) {
				return sb.String(), err
			}
			return sb.String(), nil
		case html.TextToken:
			sb.Write(tok.Text())
		default:
			return sb.String(), fmt.Errorf("decode html text: unexpected %v %q", tt, tok.Raw())
		}
	}
}

// HTMLAttribute decodes s as an HTML attribute value.
// If quote is 0, the value is unquoted.
// Otherwise, quote must be '"' or '\''.
// It returns an error if s ends the attribute early.
func HTMLAttribute(s string, quote byte) (string, error) {
	var src string
	if quote == 0 {
		src = "<a title=" + s + " x>"
	} else {
		src = "<a title=" + string(quote) + s + string(quote) + " x>"
	}
	tok := html.NewTokenizerFragment(strings.NewReader(src), "div")
	if tt := tok.Next(); tt != html.StartTagToken {
		return "", fmt.Errorf("decode html attribute: got %v", tt)
	}
	var attrs [][2]string
	for {
		k, v, more := tok.TagAttr()
		attrs = append(attrs, [2]string{string(k), string(v)})
		if !more {
			break
		}
	}
	if len(attrs) != 2 || attrs[0][0] != "title" || attrs[1][0] != "x" {
		return "", fmt.Errorf("decode html attribute: %q broke out of the attribute (got %q)", s, attrs)
	}
	return attrs[0][1], nil
}

// JSString decodes s as the body of a JavaScript string literal.
// It returns an error if s contains an unescaped quote, backslash or line terminator.
func JSString(s string) (string, error) {
	var units []uint16
	for i := 0; i < len(s); {
		c, n := utf8.DecodeRuneInString(s[i:])
		switch c {
		case '\'', '"', '\n', '\r', '\u2028', '\u2029':
			return "", fmt.Errorf("decode js string: unescaped %q at %d", c, i)
		case '\\':
		default:
			units = utf16.AppendRune(units, c)
			i += n
			continue
		}
		i++
		if i >= len(s) {
			return "", errors.New("decode js string: trailing backslash")
		}
		esc := s[i]
		i++
		switch esc {
		case 'x', 'u':
			width := 2
			if esc == 'u' {
				width = 4
			}
			if i+width > len(s) {
				return "", fmt.Errorf("decode js string: short \\%c escape", esc)
			}
			x, err := parseHex(s[i : i+width])
			if err != nil {
				return "", fmt.Errorf("decode js string: %v", err)
			}
			units = append(units, uint16(x))
			i += width
		case 'n':
			units = append(units, '\n')
		case 'r':
			units = append(units, '\r')
		case 't':
			units = append(units, '\t')
		case 'b':
			units = append(units, '\b')
		case 'f':
			units = append(units, '\f')
		case 'v':
			units = append(units, '\v')
		case '0':
			units = append(units, 0)
		default:
			units = append(units, uint16(esc))
		}
	}
	return string(utf16.Decode(units)), nil
}

// CSS decodes the escape sequences in s
// as described in https://www.w3.org/TR/css-syntax-3/#consume-escaped-code-point.
func CSS(s string) string {
	sb := new(strings.Builder)
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			c, n := utf8.DecodeRuneInString(s[i:])
			sb.WriteRune(c)
			i += n
			continue
		}
		i++
		j := i
		for j < len(s) && j-i < 6 && isHex(s[j]) {
			j++
		}
		if j == i {
			if i < len(s) {
				c, n := utf8.DecodeRuneInString(s[i:])
				sb.WriteRune(c)
				i += n
			} else {
				sb.WriteRune(utf8.RuneError)
			}
			continue
		}
		x, _ := parseHex(s[i:j])
		c := rune(x)
		if c == 0 || 0xd800 <= c && c <= 0xdfff || c > utf8.MaxRune {
			c = utf8.RuneError
		}
		sb.WriteRune(c)
		i = j
		if i < len(s) && isCSSWhitespace(s[i]) {
			i++
		}
	}
	return sb.String()
}

// URIComponent decodes percent-encoded bytes in s.
func URIComponent(s string) (string, error) {
	return url.PathUnescape(s)
}

func parseHex(s string) (uint32, error) {
	var x uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			x = x<<4 | uint32(c-'0')
		case 'a' <= c && c <= 'f':
			x = x<<4 | uint32(c-'a'+10)
		case 'A' <= c && c <= 'F':
			x = x<<4 | uint32(c-'A'+10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", c)
		}
	}
	return x, nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isCSSWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// ScriptJSON converts JSON text that uses JavaScript \xHH escapes
// into standard JSON text by rewriting them as \u00HH.
// Other escapes are left untouched.
func ScriptJSON(s string) string {
	sb := new(strings.Builder)
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		if s[i] == 'x' {
			sb.WriteString(`\u00`)
		} else {
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
