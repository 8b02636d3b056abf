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

// Package dist includes probability distributions over directions on
// the unit sphere.
//
// It provides the Von Mises-Fisher distribution together with exact
// log densities, analytic score functions and reproducible sampling.
// Its primary purpose is to serve as a prior or likelihood over
// directional data in gradient-based Bayesian inference.
//
// Distribution parameters may be numeric or refer to named model
// variables from the infer package; symbolic distributions are
// resolved against a conditioning point before numeric use.
package dist
