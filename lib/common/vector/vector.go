// Copyright 2023 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"gonum.org/v1/gonum/stat"
)

// Vector is a vector of per-sample values.
type Vector struct {
	Values []float64
}

// New creates a new zero vector.
func New(n int) Vector {
	return Vector{
		Values: make([]float64, n),
	}
}

// Constant creates a new vector with every element set to x.
func Constant(n int, x float64) Vector {
	v := New(n)
	for i := range v.Values {
		v.Values[i] = x
	}
	return v
}

// Len returns the number of elements.
func (v Vector) Len() int {
	return len(v.Values)
}

// IsZero reports whether the vector is uninitialized.
func (v Vector) IsZero() bool {
	return v.Values == nil
}

// Clone returns a copy which does not share storage with the receiver.
func (v Vector) Clone() Vector {
	res := New(len(v.Values))
	copy(res.Values, v.Values)
	return res
}

// Add mutably adds the given vector to the receiver.
func (v Vector) Add(u Vector) {
	for i, a := range u.Values {
		v.Values[i] += a
	}
}

// AddScalar mutably adds x to every element.
func (v Vector) AddScalar(x float64) {
	for i := range v.Values {
		v.Values[i] += x
	}
}

// Mul mutably multiplies the receiver elementwise by the given vector.
func (v Vector) Mul(u Vector) {
	for i, a := range u.Values {
		v.Values[i] *= a
	}
}

// Mean returns the mean of the elements.
func (v Vector) Mean() float64 {
	return stat.Mean(v.Values, nil)
}

// StdDev returns the sample standard deviation of the elements.
func (v Vector) StdDev() float64 {
	return stat.StdDev(v.Values, nil)
}
