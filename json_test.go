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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"zombiezen.com/go/escape/internal/decode"
)

func TestJSObj(t *testing.T) {
	type user struct {
		Name string `json:"name"`
		Note string `json:"note,omitempty"`
	}

	tests := []struct {
		name string
		v    any
		want string
	}{
		{
			name: "ScriptClose",
			v:    map[string]any{"username": "</script>"},
			want: `{"username":"\x3C\x2Fscript\x3E"}`,
		},
		{
			name: "CDATAClose",
			v:    map[string]string{"close": "]]>"},
			want: `{"close":"]]\x3E"}`,
		},
		{
			name: "SortedKeys",
			v:    map[string]int{"b": 1, "a": 2, "c": 3},
			want: `{"a":2,"b":1,"c":3}`,
		},
		{
			name: "OrderedObject",
			v: Object{
				{Name: "b", Value: 1},
				{Name: "a", Value: []any{true, nil, "x y"}},
			},
			want: `{"b":1,"a":[true,null,"x\x20y"]}`,
		},
		{
			name: "Struct",
			v:    user{Name: "<x>"},
			want: `{"name":"\x3Cx\x3E"}`,
		},
		{
			name: "Null",
			v:    nil,
			want: `null`,
		},
		{
			name: "String",
			v:    "it's",
			want: `"it\x27s"`,
		},
		{
			name: "Number",
			v:    -1.5,
			want: `-1.5`,
		},
		{
			name: "LargeFloat",
			v:    1e21,
			want: `1e21`,
		},
		{
			name: "MaxFloat",
			v:    []float64{math.MaxFloat64, -math.MaxFloat64},
			want: `[1.7976931348623157e308,-1.7976931348623157e308]`,
		},
		{
			name: "SmallFloat",
			v:    1e-7,
			want: `1e-7`,
		},
		{
			name: "Float32",
			v:    float32(1e30),
			want: `1e30`,
		},
		{
			name: "PlusInString",
			v:    Object{{Name: "n+", Value: 1e21}, {Name: "s", Value: "1e+21"}},
			want: `{"n\x2B":1e21,"s":"1e\x2B21"}`,
		},
		{
			name: "NonASCII",
			v:    "é\U0001F600",
			want: `"\u00E9\uD83D\uDE00"`,
		},
		{
			name: "Ampersand",
			v:    []string{"a&b"},
			want: `["a\x26b"]`,
		},
		{
			name: "InvalidUTF8",
			v:    "\xff",
			want: `"\uFFFD"`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := JSObj(test.v)
			if err != nil {
				t.Fatal("JSObj:", err)
			}
			if got != test.want {
				t.Errorf("JSObj(%#v) = %s; want %s", test.v, got, test.want)
			}
		})
	}
}

func TestJSObjRoundTrip(t *testing.T) {
	want := map[string]any{
		"s": "</script> & ]]> 'q' \"dq\" \\ é\U0001F600 ",
		"n": 1.5,
		"e": 1e21,
		"m": math.MaxFloat64,
		"b": true,
		"z": nil,
		"l": []any{"a", 2.0, map[string]any{}},
	}
	encoded, err := JSObj(want)
	if err != nil {
		t.Fatal("JSObj:", err)
	}
	if err := checkJSON(encoded); err != nil {
		t.Error(err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(decode.ScriptJSON(encoded)), &got); err != nil {
		t.Fatalf("Unmarshal(%s): %v", encoded, err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip of %s (-want +got):\n%s", encoded, diff)
	}
}

func TestJSObjErrors(t *testing.T) {
	cyclic := make(map[string]any)
	cyclic["self"] = cyclic

	tests := []struct {
		name string
		v    any
	}{
		{"Cycle", cyclic},
		{"Func", map[string]any{"f": func() {}}},
		{"Chan", make(chan int)},
		{"Complex", complex(1, 2)},
		{"NaN", math.NaN()},
		{"DuplicateName", Object{{Name: "a", Value: 1}, {Name: "a", Value: 2}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := JSObj(test.v)
			if err == nil {
				t.Fatalf("JSObj(...) = %q, <nil>; want error", got)
			}
			if got != "" {
				t.Errorf("JSObj(...) = %q, %v; want \"\"", got, err)
			}
			var serr *SerializationError
			if !errors.As(err, &serr) {
				t.Fatalf("JSObj(...) error = %v (type %T); want *SerializationError", err, err)
			}
			if serr.Unwrap() == nil {
				t.Error("SerializationError.Unwrap() = <nil>")
			}
			if msg := err.Error(); !strings.HasPrefix(msg, "escape: serialize ") {
				t.Errorf("err.Error() = %q; want prefix %q", msg, "escape: serialize ")
			}
		})
	}
}

func TestJSON(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{``, ``},
		{`{"a":[1,2]}`, `{"a":[1,2]}`},
		{`"<>"`, `"\x3C\x3E"`},
		{`"]]>"`, `"]]\x3E"`},
		{`"a"b"`, `"a"b"`},
		{`{"a": 1}`, `{"a":\x201}`},
		{`"</script><!--"`, `"\x3C\x2Fscript\x3E\x3C\x21--"`},
	}
	for _, test := range tests {
		if got := JSON(test.s); got != test.want {
			t.Errorf("JSON(%q) = %q; want %q", test.s, got, test.want)
		}
	}
}

func TestJSONIdempotent(t *testing.T) {
	rng := newRNG()
	for i := 0; i < 1000; i++ {
		s := randomString(rng, allRunes)
		once := JSON(s)
		if twice := JSON(once); twice != once {
			t.Fatalf("JSON(JSON(%q)) = %q; want %q", s, twice, once)
		}
		if strings.Contains(once, "&lt;") || strings.Contains(once, "&gt;") {
			t.Fatalf("JSON(%q) = %q; contains an HTML reference", s, once)
		}
	}
}

func TestCDATACloserRewrite(t *testing.T) {
	// The whitelist pass already escapes ">",
	// so exercise the rewrite directly.
	got := string(cdataCloser.Replace([]byte(`a]]>b]]]>`)))
	want := `a\x5D\x5D\x3Eb]\x5D\x5D\x3E`
	if got != want {
		t.Errorf("cdataCloser.Replace(...) = %q; want %q", got, want)
	}
}
