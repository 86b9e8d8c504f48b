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

// Package escape encodes untrusted values for the place in a document
// that they are substituted into.
//
// Each encoder accepts any value, converts it to a string
// and replaces every code point outside of a small, context-specific
// set of safe characters.
// Encoders never fail, with the exception of [JSObj],
// which must serialize its argument first.
// All functions are safe to call concurrently.
//
// # Choosing an encoder
//
//	<p>{{html .}}</p>                          HTML
//	<input value="{{html .}}">                 HTML
//	<script>var s = '{{js .}}';</script>       JS
//	<a onclick="f('{{jsAttr .}}')">            JSAttr
//	<a href="/search?q={{uri .}}">             URI
//	<script>var data = {{jsObj .}};</script>   JSObj
//	<style>p { color: {{css .}}; }</style>     CSS
//	<p style="color: {{style .}}">             Style
//
// The composite encoders apply the inner context's encoding first:
// JSAttr is HTML(JS(v)) and Style is HTML(CSS(v)).
// Reversing the order would let the browser's entity decoding
// restore the characters that the inner encoding removed.
//
// # Security considerations
//
// The encoders assume that the surrounding template text is trusted
// and that the value is placed where the table above shows:
// inside a quoted JavaScript string, inside a URI component, and so on.
// They do not parse or sanitize HTML, CSS or JavaScript,
// and they do not make a URL safe to use as an href:
// a "javascript:" URL is still a script after [HTML].
// Untrusted HTML fragments should go through an HTML sanitizer instead.
//
// [HTML] writes code points outside of the Basic Multilingual Plane
// as two numeric character references, one per UTF-16 surrogate.
// Parsers that follow the current HTML standard decode each half as U+FFFD,
// so such characters do not survive a round trip.
package escape
