/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package infer

import (
	"github.com/pkg/errors"
)

// Point is a conditioning assignment mapping model variable names to
// their values.
type Point map[string]float64

// Param is a distribution parameter that is either a numeric constant
// or a reference to a named model variable. A named parameter stays
// pending until it is resolved against a conditioning point. The zero
// value is the constant 0.
type Param struct {
	name    string
	value   float64
	pending bool
}

// Const returns a parameter fixed to the value v.
func Const(v float64) Param {
	return Param{value: v}
}

// Named returns a parameter referring to the model variable with the
// given name.
func Named(name string) Param {
	return Param{name: name, pending: true}
}

// Pending reports whether p needs a conditioning point to produce a
// value.
func (p Param) Pending() bool {
	return p.pending
}

// Name returns the referenced variable name, or "" for a constant.
func (p Param) Name() string {
	return p.name
}

// Value returns the constant value of p. The second return value is
// false when p is pending.
func (p Param) Value() (float64, bool) {
	if p.pending {
		return 0, false
	}

	return p.value, true
}

// Resolve returns the numeric value of p under the given conditioning
// point. A constant resolves to itself under any point, nil included.
// Resolving a named parameter that is missing from the point returns
// an error wrapping ErrUnresolvedParam.
func (p Param) Resolve(point Point) (float64, error) {
	if !p.pending {
		return p.value, nil
	}

	v, ok := point[p.name]
	if !ok {
		return 0, errors.Wrap(ErrUnresolvedParam, p.name)
	}

	return v, nil
}
