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

// Package infer includes the protocol that lets probability
// distributions take part in Bayesian inference.
//
// Distribution parameters are Param values: either numeric constants
// or references to named model variables. A symbolic parameter stays
// pending until it is resolved against a conditioning Point, the
// assignment of values to variable names an inference step works
// with.
//
// The package also provides Bound, which clips a log density to
// negative infinity outside the support of its distribution.
package infer
