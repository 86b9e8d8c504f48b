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
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// NewTransformer returns a transformer that encodes its input for c.
// The output is byte-for-byte the same as [Context.Append]
// over the concatenated input, regardless of how the input is split.
// NewTransformer panics if c is not one of the defined contexts.
func NewTransformer(c Context) transform.Transformer {
	switch c {
	case ContextHTML:
		return &runeTransformer{class: htmlSafe, esc: escapeHTMLRune}
	case ContextJS:
		return &runeTransformer{class: jsSafe, esc: escapeJSRune}
	case ContextJSAttr:
		return transform.Chain(NewTransformer(ContextJS), NewTransformer(ContextHTML))
	case ContextURI:
		return uriTransformer{}
	case ContextJSON:
		// Never emits ">", so there is no "]]>" to rewrite.
		return &runeTransformer{class: jsonSafe, esc: escapeJSRune}
	case ContextCSS:
		return &runeTransformer{class: cssSafe, esc: escapeCSSRune}
	case ContextStyle:
		return transform.Chain(NewTransformer(ContextCSS), NewTransformer(ContextHTML))
	default:
		panic("escape: unknown " + c.String())
	}
}

// NewWriter returns a writer that encodes everything written to it for c
// and writes the result to w.
// Close must be called to flush a trailing partial UTF-8 sequence;
// it does not close w.
func NewWriter(w io.Writer, c Context) io.WriteCloser {
	return &writer{
		ctx: c,
		tw:  transform.NewWriter(w, NewTransformer(c)),
	}
}

type writer struct {
	ctx Context
	tw  *transform.Writer
}

func (w *writer) Write(p []byte) (n int, err error) {
	n, err = w.tw.Write(p)
	if err != nil {
		return n, fmt.Errorf("escape %v: %w", w.ctx, err)
	}
	return n, nil
}

func (w *writer) Close() error {
	if err := w.tw.Close(); err != nil {
		return fmt.Errorf("escape %v: %w", w.ctx, err)
	}
	return nil
}

// maxEscapeLen is the longest output of any single-rune escape function:
// two hexadecimal HTML references.
const maxEscapeLen = len("&#xD800;&#xDC00;")

type runeTransformer struct {
	transform.NopResetter
	class *charClass
	esc   func([]byte, rune) []byte
}

func (t *runeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [maxEscapeLen]byte
	for nSrc < len(src) {
		c, n := utf8.DecodeRune(src[nSrc:])
		invalid := c == utf8.RuneError && n == 1
		if invalid && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		var out []byte
		switch {
		case t.class.contains(c) && !invalid:
			out = src[nSrc : nSrc+n]
		case t.class.contains(c):
			out = utf8.AppendRune(buf[:0], c)
		default:
			out = t.esc(buf[:0], c)
		}
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += n
	}
	return nDst, nSrc, nil
}

type uriTransformer struct {
	transform.NopResetter
}

func (uriTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [len("%XX")]byte
	for ; nSrc < len(src); nSrc++ {
		out := appendURIByte(buf[:0], src[nSrc])
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
	}
	return nDst, nSrc, nil
}
