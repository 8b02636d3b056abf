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
	"math"
)

// Bound clips a log density to the support of its distribution. It
// returns logp when every condition holds and negative infinity as
// soon as one fails. With no conditions logp is returned unchanged.
func Bound(logp float64, conds ...bool) float64 {
	for _, ok := range conds {
		if !ok {
			return math.Inf(-1)
		}
	}

	return logp
}
