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

package decode

import "testing"

func TestHTMLText(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"&lt;b&gt;", "<b>"},
		{"&#39;&#x7E;&amp;&quot;", `'~&"`},
		{"café", "café"},
	}
	for _, test := range tests {
		if got, err := HTMLText(test.s); got != test.want || err != nil {
			t.Errorf("HTMLText(%q) = %q, %v; want %q, <nil>", test.s, got, err, test.want)
		}
	}

	if got, err := HTMLText("a<b>c"); err == nil {
		t.Errorf(`HTMLText("a<b>c") = %q, <nil>; want error`, got)
	}
}

func TestHTMLAttribute(t *testing.T) {
	tests := []struct {
		s     string
		quote byte
		want  string
	}{
		{"abc", 0, "abc"},
		{"abc", '"', "abc"},
		{"a b", '\'', "a b"},
		{"&quot;x&quot;", '"', `"x"`},
		{"&#39;", '\'', "'"},
	}
	for _, test := range tests {
		if got, err := HTMLAttribute(test.s, test.quote); got != test.want || err != nil {
			t.Errorf("HTMLAttribute(%q, %q) = %q, %v; want %q, <nil>", test.s, test.quote, got, err, test.want)
		}
	}

	breakouts := []struct {
		s     string
		quote byte
	}{
		{"a b", 0},
		{`a" onclick="x`, '"'},
		{"a>", 0},
	}
	for _, test := range breakouts {
		if got, err := HTMLAttribute(test.s, test.quote); err == nil {
			t.Errorf("HTMLAttribute(%q, %q) = %q, <nil>; want error", test.s, test.quote, got)
		}
	}
}

func TestJSString(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{`it\x27s`, "it's"},
		{`é`, "é"},
		{`😀`, "\U0001F600"},
		{`a\nb\\c`, "a\nb\\c"},
	}
	for _, test := range tests {
		if got, err := JSString(test.s); got != test.want || err != nil {
			t.Errorf("JSString(%q) = %q, %v; want %q, <nil>", test.s, got, err, test.want)
		}
	}

	for _, s := range []string{`'`, `"`, `\`, `\x4`, `\uZZZZ`, "a\nb"} {
		if got, err := JSString(s); err == nil {
			t.Errorf("JSString(%q) = %q, <nil>; want error", s, got)
		}
	}
}

func TestCSS(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{`\3c wow\3e `, "<wow>"},
		{`\fffd `, "�"},
		{`\0 `, "�"},
		{`\d800 `, "�"},
		{`\1f600 `, "\U0001F600"},
		{`\"`, `"`},
		{`\26 B`, "&B"},
		{`\000026B`, "&B"},
	}
	for _, test := range tests {
		if got := CSS(test.s); got != test.want {
			t.Errorf("CSS(%q) = %q; want %q", test.s, got, test.want)
		}
	}
}

func TestURIComponent(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"a%20b%2Fc", "a b/c"},
		{"%7E", "~"},
		{"caf%C3%A9", "café"},
	}
	for _, test := range tests {
		if got, err := URIComponent(test.s); got != test.want || err != nil {
			t.Errorf("URIComponent(%q) = %q, %v; want %q, <nil>", test.s, got, err, test.want)
		}
	}
}

func TestScriptJSON(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{`{"a":"\x3C"}`, `{"a":"\u003C"}`},
		{`"\\x"`, `"\\x"`},
		{`"\uD83D\uDE00\n"`, `"\uD83D\uDE00\n"`},
	}
	for _, test := range tests {
		if got := ScriptJSON(test.s); got != test.want {
			t.Errorf("ScriptJSON(%q) = %q; want %q", test.s, got, test.want)
		}
	}
}
