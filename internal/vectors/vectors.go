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

// Package vectors provides known-answer test cases for the encoders.
package vectors

import (
	_ "embed"

	"github.com/go-json-experiment/json"
)

// Vector is a single known-answer test case.
type Vector struct {
	// Name is unique among the vectors with the same Func.
	Name string
	// Func is the template function name of the encoder.
	Func   string
	Input  string
	Output string
}

//go:embed vectors.json
var vectorData []byte

// Load returns the test vectors.
func Load() ([]Vector, error) {
	var vecs []Vector
	if err := json.Unmarshal(vectorData, &vecs); err != nil {
		return nil, err
	}
	return vecs, nil
}
