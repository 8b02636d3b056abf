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

package sphere

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// NewEulerZYZ builds the rotation matrix with z-y-z Euler angles
// alpha, beta, gamma, given in radians. The result is the composition
// Rz(gamma) * Ry(beta) * Rz(alpha) acting on column vectors, so the
// rotation by alpha around the z axis is applied first.
func NewEulerZYZ(alpha, beta, gamma float64) *r3.Mat {
	m := r3.NewMat(nil)
	m.Mul(rotY(beta), rotZ(alpha))

	rot := r3.NewMat(nil)
	rot.Mul(rotZ(gamma), m)

	return rot
}

// Rotation returns the rotation carrying the north pole to d. It is
// the frame change used to move samples drawn around the pole to an
// arbitrary mean direction.
func (d Direction) Rotation() *r3.Mat {
	return NewEulerZYZ(0, Radians(d.Colat), Radians(d.Lon))
}

// rotZ returns the rotation by angle radians around the z axis.
func rotZ(angle float64) *r3.Mat {
	s, c := math.Sincos(angle)

	return r3.NewMat([]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// rotY returns the rotation by angle radians around the y axis.
func rotY(angle float64) *r3.Mat {
	s, c := math.Sincos(angle)

	return r3.NewMat([]float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}
