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
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// Context is an enumeration of the syntactic locations
// that a value can be embedded into.
type Context int

const (
	// ContextHTML is HTML text or an HTML attribute value. See [HTML].
	ContextHTML Context = iota
	// ContextJS is the inside of a JavaScript string literal. See [JS].
	ContextJS
	// ContextJSAttr is the inside of a JavaScript string literal
	// in an HTML attribute. See [JSAttr].
	ContextJSAttr
	// ContextURI is a URI component. See [URI].
	ContextURI
	// ContextJSON is a JSON value inside an HTML <script> element.
	// See [JSON] and [JSObj].
	ContextJSON
	// ContextCSS is a CSS value. See [CSS].
	ContextCSS
	// ContextStyle is a CSS value in an HTML style attribute. See [Style].
	ContextStyle
)

var contextNames = [...]string{
	ContextHTML:   "html",
	ContextJS:     "js",
	ContextJSAttr: "jsAttr",
	ContextURI:    "uri",
	ContextJSON:   "json",
	ContextCSS:    "css",
	ContextStyle:  "style",
}

// String returns the name under which [Funcs] registers
// the context's encoder.
func (c Context) String() string {
	if !c.valid() {
		return "Context(" + strconv.Itoa(int(c)) + ")"
	}
	return contextNames[c]
}

func (c Context) valid() bool {
	return 0 <= c && int(c) < len(contextNames)
}

// Escape returns the string form of v encoded for the context.
// For [ContextJSON], v is serialized with [JSObj]
// and the error is any serialization error.
// For every other context, the error is always nil.
func (c Context) Escape(v any) (string, error) {
	switch c {
	case ContextJSON:
		return JSObj(v)
	case ContextURI:
		return URI(v), nil
	default:
		s := stringify(v)
		return string(c.Append(make([]byte, 0, len(s)), s)), nil
	}
}

// Append appends the encoding of s for the context to dst
// and returns the resulting byte slice.
// For [ContextJSON], s must already be JSON text.
// Append panics if c is not one of the defined contexts.
func (c Context) Append(dst []byte, s string) []byte {
	switch c {
	case ContextHTML:
		return AppendHTML(dst, s)
	case ContextJS:
		return AppendJS(dst, s)
	case ContextJSAttr:
		return AppendJSAttr(dst, s)
	case ContextURI:
		return AppendURI(dst, s)
	case ContextJSON:
		return AppendJSON(dst, s)
	case ContextCSS:
		return AppendCSS(dst, s)
	case ContextStyle:
		return AppendStyle(dst, s)
	default:
		panic("escape: unknown " + c.String())
	}
}

// attributeContexts maps the attributes known to the HTML atom table
// that do not hold plain text.
var attributeContexts = map[atom.Atom]Context{
	atom.Style: ContextStyle,

	// Event handlers.
	atom.Onabort:                   ContextJSAttr,
	atom.Onafterprint:              ContextJSAttr,
	atom.Onautocomplete:            ContextJSAttr,
	atom.Onautocompleteerror:       ContextJSAttr,
	atom.Onauxclick:                ContextJSAttr,
	atom.Onbeforeprint:             ContextJSAttr,
	atom.Onbeforeunload:            ContextJSAttr,
	atom.Onblur:                    ContextJSAttr,
	atom.Oncancel:                  ContextJSAttr,
	atom.Oncanplay:                 ContextJSAttr,
	atom.Oncanplaythrough:          ContextJSAttr,
	atom.Onchange:                  ContextJSAttr,
	atom.Onclick:                   ContextJSAttr,
	atom.Onclose:                   ContextJSAttr,
	atom.Oncontextmenu:             ContextJSAttr,
	atom.Oncopy:                    ContextJSAttr,
	atom.Oncuechange:               ContextJSAttr,
	atom.Oncut:                     ContextJSAttr,
	atom.Ondblclick:                ContextJSAttr,
	atom.Ondrag:                    ContextJSAttr,
	atom.Ondragend:                 ContextJSAttr,
	atom.Ondragenter:               ContextJSAttr,
	atom.Ondragexit:                ContextJSAttr,
	atom.Ondragleave:               ContextJSAttr,
	atom.Ondragover:                ContextJSAttr,
	atom.Ondragstart:               ContextJSAttr,
	atom.Ondrop:                    ContextJSAttr,
	atom.Ondurationchange:          ContextJSAttr,
	atom.Onemptied:                 ContextJSAttr,
	atom.Onended:                   ContextJSAttr,
	atom.Onerror:                   ContextJSAttr,
	atom.Onfocus:                   ContextJSAttr,
	atom.Onhashchange:              ContextJSAttr,
	atom.Oninput:                   ContextJSAttr,
	atom.Oninvalid:                 ContextJSAttr,
	atom.Onkeydown:                 ContextJSAttr,
	atom.Onkeypress:                ContextJSAttr,
	atom.Onkeyup:                   ContextJSAttr,
	atom.Onlanguagechange:          ContextJSAttr,
	atom.Onload:                    ContextJSAttr,
	atom.Onloadeddata:              ContextJSAttr,
	atom.Onloadedmetadata:          ContextJSAttr,
	atom.Onloadend:                 ContextJSAttr,
	atom.Onloadstart:               ContextJSAttr,
	atom.Onmessage:                 ContextJSAttr,
	atom.Onmessageerror:            ContextJSAttr,
	atom.Onmousedown:               ContextJSAttr,
	atom.Onmouseenter:              ContextJSAttr,
	atom.Onmouseleave:              ContextJSAttr,
	atom.Onmousemove:               ContextJSAttr,
	atom.Onmouseout:                ContextJSAttr,
	atom.Onmouseover:               ContextJSAttr,
	atom.Onmouseup:                 ContextJSAttr,
	atom.Onmousewheel:              ContextJSAttr,
	atom.Onoffline:                 ContextJSAttr,
	atom.Ononline:                  ContextJSAttr,
	atom.Onpagehide:                ContextJSAttr,
	atom.Onpageshow:                ContextJSAttr,
	atom.Onpaste:                   ContextJSAttr,
	atom.Onpause:                   ContextJSAttr,
	atom.Onplay:                    ContextJSAttr,
	atom.Onplaying:                 ContextJSAttr,
	atom.Onpopstate:                ContextJSAttr,
	atom.Onprogress:                ContextJSAttr,
	atom.Onratechange:              ContextJSAttr,
	atom.Onrejectionhandled:        ContextJSAttr,
	atom.Onreset:                   ContextJSAttr,
	atom.Onresize:                  ContextJSAttr,
	atom.Onscroll:                  ContextJSAttr,
	atom.Onsecuritypolicyviolation: ContextJSAttr,
	atom.Onseeked:                  ContextJSAttr,
	atom.Onseeking:                 ContextJSAttr,
	atom.Onselect:                  ContextJSAttr,
	atom.Onshow:                    ContextJSAttr,
	atom.Onsort:                    ContextJSAttr,
	atom.Onstalled:                 ContextJSAttr,
	atom.Onstorage:                 ContextJSAttr,
	atom.Onsubmit:                  ContextJSAttr,
	atom.Onsuspend:                 ContextJSAttr,
	atom.Ontimeupdate:              ContextJSAttr,
	atom.Ontoggle:                  ContextJSAttr,
	atom.Onunhandledrejection:      ContextJSAttr,
	atom.Onunload:                  ContextJSAttr,
	atom.Onvolumechange:            ContextJSAttr,
	atom.Onwaiting:                 ContextJSAttr,
	atom.Onwheel:                   ContextJSAttr,
}

// ForAttribute returns the context for the value of
// the HTML attribute with the given name.
// Event handler attributes (like onclick) are expected to hold
// a quoted JavaScript string and map to [ContextJSAttr],
// style maps to [ContextStyle]
// and every other attribute maps to [ContextHTML].
// Names are matched case-insensitively.
// An unknown name that starts with "on" is treated as an event handler.
func ForAttribute(name string) Context {
	a := atom.Lookup([]byte(strings.ToLower(name)))
	if c, ok := attributeContexts[a]; ok {
		return c
	}
	if a == 0 && len(name) > len("on") && strings.EqualFold(name[:len("on")], "on") {
		return ContextJSAttr
	}
	return ContextHTML
}
