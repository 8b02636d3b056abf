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

// Package sphere includes points and rotations on the unit sphere.
//
// Package sphere provides the Direction value type together with
// conversions between angular and Cartesian coordinates and builders
// of rotation matrices. Its primary purpose is to support spherical
// probability distributions that sample around a pole and rotate the
// result to an arbitrary mean direction.
//
// Directions are (longitude, colatitude) pairs in degrees, with the
// colatitude measured down from the north pole. Internally all
// trigonometry is done in radians and all linear algebra uses the
// gonum spatial/r3 types.
package sphere
