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

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Direction is a point on the unit sphere given as a (longitude,
// colatitude) pair in degrees. The colatitude is measured down from
// the north pole, so the pole itself has colatitude 0, the equator 90
// and the south pole 180. The zero value is the north pole.
type Direction struct {
	Lon   float64
	Colat float64
}

// Cartesian returns the unit vector pointing at d.
func (d Direction) Cartesian() r3.Vec {
	sinT, cosT := math.Sincos(Radians(d.Colat))
	sinL, cosL := math.Sincos(Radians(d.Lon))

	return r3.Vec{X: sinT * cosL, Y: sinT * sinL, Z: cosT}
}

// DirectionFromCartesian returns the direction in which the vector v
// points. The vector does not need to be normalized. The longitude of
// the result is within (-180, 180], and at the poles, where longitude
// is degenerate, it is 0. DirectionFromCartesian panics when given
// the zero vector, which points nowhere.
func DirectionFromCartesian(v r3.Vec) Direction {
	n := r3.Norm(v)
	if n == 0 {
		panic("sphere: zero vector has no direction")
	}

	return Direction{
		Lon:   Degrees(math.Atan2(v.Y, v.X)),
		Colat: Degrees(math.Acos(clamp1(v.Z / n))),
	}
}

// Dot returns the cosine of the central angle between d and e.
func (d Direction) Dot(e Direction) float64 {
	sinD, cosD := math.Sincos(Radians(d.Colat))
	sinE, cosE := math.Sincos(Radians(e.Colat))

	return sinD*sinE*math.Cos(Radians(d.Lon-e.Lon)) + cosD*cosE
}

// AngleTo returns the central angle between d and e in degrees.
func (d Direction) AngleTo(e Direction) float64 {
	return Degrees(math.Acos(clamp1(d.Dot(e))))
}

// clamp1 limits x to [-1, 1] before inverse trigonometry, where
// floating point noise can push a cosine slightly out of range.
func clamp1(x float64) float64 {
	return math.Min(math.Max(x, -1), 1)
}
