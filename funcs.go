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

// Funcs adds the encoders to a template function map
// and returns the map.
// If funcs is nil, Funcs allocates a new map.
// Entries with other names are left alone.
//
// The names are "html", "js", "jsAttr", "uri", "json", "jsObj", "css" and "style".
// The map may be a [text/template.FuncMap] or an [html/template.FuncMap],
// although html/template applies its own contextual escaping
// and rejects "html" anywhere but the end of a pipeline.
//
//	tmpl := template.New("page").Funcs(escape.Funcs(nil))
func Funcs(funcs map[string]any) map[string]any {
	if funcs == nil {
		funcs = make(map[string]any, len(contextNames)+1)
	}
	funcs[ContextHTML.String()] = HTML
	funcs[ContextJS.String()] = JS
	funcs[ContextJSAttr.String()] = JSAttr
	funcs[ContextURI.String()] = URI
	funcs[ContextJSON.String()] = JSON
	funcs["jsObj"] = JSObj
	funcs[ContextCSS.String()] = CSS
	funcs[ContextStyle.String()] = Style
	return funcs
}
