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
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"go4.org/bytereplacer"
)

var cdataCloser = bytereplacer.New("]]>", `\x5D\x5D\x3E`)

// JSON encodes JSON text so that it can appear directly inside
// an HTML <script> element, for example as the right-hand side of
// an assignment.
//
// Quotes, backslashes, "," "-" "." ":" "_", brackets, braces,
// letters and digits are left as-is.
// Every other code point, including whitespace, "<", ">", "&" and "/",
// is replaced with a JavaScript \xHH or \uHHHH escape.
// The result cannot contain "</script" or the CDATA terminator "]]>".
// Applying JSON to its own output returns the output unchanged.
//
// JSON does not validate its input.
// The input should be compact JSON text, such as the output of [json.Marshal]:
// escaped whitespace between tokens is not valid JavaScript.
func JSON(s string) string {
	return string(AppendJSON(make([]byte, 0, len(s)), s))
}

// AppendJSON appends the result of [JSON] on s to dst
// and returns the resulting byte slice.
func AppendJSON(dst []byte, s string) []byte {
	start := len(dst)
	dst = appendEscaped(dst, s, jsonSafe, escapeJSRune)
	return append(dst[:start], cdataCloser.Replace(dst[start:])...)
}

// JSObj serializes v as compact JSON and encodes the result with [JSON].
// Map keys are sorted; use [Object] to control member order.
// Invalid UTF-8 in strings is replaced with U+FFFD.
// Number exponents are written without a plus sign (1e21, not 1e+21)
// so that no number needs escaping.
//
// JSObj returns a [*SerializationError] if v cannot be represented as JSON,
// for example if it contains a cycle, a function, a channel,
// a complex number or a non-finite float.
func JSObj(v any) (string, error) {
	data, err := json.Marshal(v,
		json.Deterministic(true),
		jsontext.AllowInvalidUTF8(true),
	)
	if err != nil {
		return "", &SerializationError{Value: v, Err: err}
	}
	data, err = trimExponentSigns(data)
	if err != nil {
		return "", &SerializationError{Value: v, Err: err}
	}
	return string(AppendJSON(make([]byte, 0, len(data)), string(data))), nil
}

// trimExponentSigns removes the optional "+" from the exponents
// of the numbers in the JSON text data, as in "1e+21".
// [JSON] would otherwise escape it, which is only valid inside a string.
func trimExponentSigns(data []byte) ([]byte, error) {
	if bytes.IndexByte(data, '+') < 0 {
		return data, nil
	}
	dec := jsontext.NewDecoder(bytes.NewReader(data),
		jsontext.AllowDuplicateNames(true),
		jsontext.AllowInvalidUTF8(true),
	)
	out := make([]byte, 0, len(data))
	verbatimStart := 0
	for {
		tok, err := dec.ReadToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if tok.Kind() != '0' {
			continue
		}
		num := tok.String()
		plus := strings.IndexByte(num, '+')
		if plus < 0 {
			continue
		}
		i := int(dec.InputOffset()) - len(num) + plus
		out = append(out, data[verbatimStart:i]...)
		verbatimStart = i + 1
	}
	return append(out, data[verbatimStart:]...), nil
}

// SerializationError is returned by [JSObj]
// when a value cannot be serialized as JSON.
type SerializationError struct {
	Value any
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("escape: serialize %T as json: %v", e.Value, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Object is a JSON object whose members are serialized in slice order.
// Member names must be unique.
type Object []Member

// Member is a single name/value pair of an [Object].
type Member struct {
	Name  string
	Value any
}

// MarshalJSONTo encodes obj as a JSON object into enc.
func (obj Object) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for i := range obj {
		m := &obj[i]
		if err := enc.WriteToken(jsontext.String(m.Name)); err != nil {
			return err
		}
		if err := json.MarshalEncode(enc, m.Value); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}
