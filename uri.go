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
	"net/url"

	"go4.org/bytereplacer"
)

// queryEscapeFixer percent-encodes the bytes
// that [url.QueryEscape] does not.
var queryEscapeFixer = bytereplacer.New(
	"+", "%20",
	"~", "%7E",
)

// URI returns the string form of v encoded for use as a URI component,
// such as a path segment or a query parameter name or value.
//
// The string's UTF-8 bytes are kept if they are ASCII letters, digits,
// "-", "." or "_" and replaced with %XX (uppercase hex) otherwise.
// URI does not produce a whole URL: scheme and delimiters must come
// from the surrounding template.
func URI(v any) string {
	return string(AppendURI(nil, stringify(v)))
}

// AppendURI appends the URI component encoding of s to dst
// and returns the resulting byte slice.
func AppendURI(dst []byte, s string) []byte {
	// QueryEscape writes a space as "+" and leaves "~" alone.
	// A literal "+" has already become "%2B", so the rewrite is unambiguous.
	return append(dst, queryEscapeFixer.Replace([]byte(url.QueryEscape(s)))...)
}

// isURISafe reports whether c is copied unchanged by [AppendURI].
func isURISafe(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '.' || c == '_'
}

func appendURIByte(dst []byte, c byte) []byte {
	if isURISafe(c) {
		return append(dst, c)
	}
	return append(dst, '%', upperHex[c>>4], upperHex[c&0x0f])
}
