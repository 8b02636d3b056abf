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

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dirstats-project/gosphere/infer"
	"github.com/dirstats-project/gosphere/sphere"
)

// kappaEps separates the general closed form of the density from its
// uniform limit for concentrations approaching zero.
const kappaEps = 1e-6

// VonMisesFisherParams represents parameters of a Von Mises-Fisher
// distribution instance. Each parameter is either a numeric constant
// or a reference to a named model variable pending resolution against
// a conditioning point.
type VonMisesFisherParams struct {
	// Longitude of the mean direction in degrees.
	Lon infer.Param
	// Colatitude of the mean direction in degrees, within [0, 180].
	Colat infer.Param
	// Concentration of the distribution; must be non-negative. Zero
	// gives the uniform distribution on the sphere.
	Kappa infer.Param
}

// VonMisesFisher represents the Von Mises-Fisher distribution on the
// unit sphere, the spherical analogue of an isotropic Gaussian.
// Probability mass concentrates around the mean direction as the
// concentration grows, and spreads towards the uniform distribution
// as it approaches zero.
type VonMisesFisher struct {
	Params *VonMisesFisherParams

	// Src is the source of uniform random numbers used for sampling.
	// If it is nil, the global source is used.
	Src rand.Source
}

// NewVonMisesFisher configures a new instance of the distribution
// with the given mean direction and concentration kappa. It returns
// an error when kappa is negative or NaN, or when the colatitude of
// the mean lies outside [0, 180] degrees.
func NewVonMisesFisher(mean sphere.Direction, kappa float64) (*VonMisesFisher, error) {
	if math.IsNaN(kappa) || kappa < 0 {
		return nil, fmt.Errorf("concentration must be non-negative, got %v", kappa)
	}
	if !(mean.Colat >= 0 && mean.Colat <= 180) {
		return nil, fmt.Errorf("mean colatitude must be within [0, 180] degrees, got %v", mean.Colat)
	}

	return &VonMisesFisher{
		Params: &VonMisesFisherParams{
			Lon:   infer.Const(mean.Lon),
			Colat: infer.Const(mean.Colat),
			Kappa: infer.Const(kappa),
		},
	}, nil
}

// NewVonMisesFisherFromParams takes parameters of a distribution,
// possibly referring to named model variables, and constructs the
// distribution from them. Validation of symbolic parameters is
// deferred to At, where they obtain values.
func NewVonMisesFisherFromParams(params *VonMisesFisherParams) *VonMisesFisher {
	return &VonMisesFisher{
		Params: params,
	}
}

// At resolves all parameters against the conditioning point and
// returns a numeric distribution sharing the receiver's random
// source. Parameters that already are numeric pass through, so a nil
// point is valid for a numeric distribution. Resolved parameters are
// validated the same way NewVonMisesFisher validates them.
func (v *VonMisesFisher) At(point infer.Point) (*VonMisesFisher, error) {
	lon, err := v.Params.Lon.Resolve(point)
	if err != nil {
		return nil, errors.Wrap(err, "longitude")
	}
	colat, err := v.Params.Colat.Resolve(point)
	if err != nil {
		return nil, errors.Wrap(err, "colatitude")
	}
	kappa, err := v.Params.Kappa.Resolve(point)
	if err != nil {
		return nil, errors.Wrap(err, "concentration")
	}

	res, err := NewVonMisesFisher(sphere.Direction{Lon: lon, Colat: colat}, kappa)
	if err != nil {
		return nil, err
	}
	res.Src = v.Src

	return res, nil
}

// numeric returns the resolved mean direction and concentration. It
// panics when a parameter still refers to an unresolved variable;
// numeric methods require a distribution resolved with At.
func (v *VonMisesFisher) numeric() (sphere.Direction, float64) {
	lon, okLon := v.Params.Lon.Value()
	colat, okColat := v.Params.Colat.Value()
	kappa, okKappa := v.Params.Kappa.Value()
	if !okLon || !okColat || !okKappa {
		panic("dist: parameters are pending, resolve them against a point with At")
	}

	return sphere.Direction{Lon: lon, Colat: colat}, kappa
}

// Mean returns the mean direction of the distribution.
func (v *VonMisesFisher) Mean() sphere.Direction {
	mean, _ := v.numeric()
	return mean
}

// Mode returns the most probable direction, which equals the mean.
func (v *VonMisesFisher) Mode() sphere.Direction {
	return v.Mean()
}

// Median returns the median direction, which equals the mean.
func (v *VonMisesFisher) Median() sphere.Direction {
	return v.Mean()
}

// Kappa returns the resolved concentration of the distribution.
func (v *VonMisesFisher) Kappa() float64 {
	_, kappa := v.numeric()
	return kappa
}

// Dim returns the dimension of a sampled direction as a (longitude,
// colatitude) pair.
func (v *VonMisesFisher) Dim() int {
	return 2
}

// NumParameters returns the number of parameters of the distribution.
func (v *VonMisesFisher) NumParameters() int {
	return 3
}

// Rand draws one direction from the distribution conditioned on the
// given point. The point may be nil when all parameters are numeric.
// It returns an error when a parameter cannot be resolved or fails
// validation.
func (v *VonMisesFisher) Rand(point infer.Point) (sphere.Direction, error) {
	res, err := v.At(point)
	if err != nil {
		return sphere.Direction{}, err
	}
	mean, kappa := res.numeric()

	return drawAround(mean.Rotation(), kappa, distuv.Uniform{Min: 0, Max: 1, Src: res.Src}), nil
}

// RandN draws size directions from the distribution conditioned on
// the given point. It returns them as a size-by-2 matrix whose rows
// are (longitude, colatitude) pairs in degrees, with longitudes in
// (-180, 180] and colatitudes in [0, 180]. It returns an error when
// size is not positive, or when a parameter cannot be resolved or
// fails validation.
func (v *VonMisesFisher) RandN(point infer.Point, size int) (*mat.Dense, error) {
	if size < 1 {
		return nil, fmt.Errorf("sample size must be positive, got %d", size)
	}
	res, err := v.At(point)
	if err != nil {
		return nil, err
	}
	mean, kappa := res.numeric()
	rot := mean.Rotation()
	unif := distuv.Uniform{Min: 0, Max: 1, Src: res.Src}

	out := mat.NewDense(size, 2, nil)
	for i := 0; i < size; i++ {
		d := drawAround(rot, kappa, unif)
		out.Set(i, 0, d.Lon)
		out.Set(i, 1, d.Colat)
	}

	return out, nil
}

// drawAround draws one direction concentrated around the north pole
// and moves it with the rotation rot. The pole coordinate comes from
// inverting its marginal CDF, the azimuth is uniform.
func drawAround(rot *r3.Mat, kappa float64, unif distuv.Uniform) sphere.Direction {
	// u lies in (0, 1]: the logarithm below must not see zero once
	// exp(-2*kappa) underflows.
	u := 1 - unif.Rand()

	var z float64
	if kappa >= kappaEps {
		z = 1 + math.Log(u+(1-u)*math.Exp(-2*kappa))/kappa
	} else {
		z = 2*u - 1
	}
	phi := 2 * math.Pi * unif.Rand()

	s := math.Sqrt(math.Max(0, 1-z*z))
	sinPhi, cosPhi := math.Sincos(phi)
	p := rot.MulVec(r3.Vec{X: s * cosPhi, Y: s * sinPhi, Z: z})

	return sphere.DirectionFromCartesian(p)
}

// LogProb returns the natural logarithm of the density at the given
// direction. Directions with colatitude outside [0, 180] degrees lie
// outside the support and yield negative infinity. LogProb panics
// when the parameters are still pending.
func (v *VonMisesFisher) LogProb(d sphere.Direction) float64 {
	mean, kappa := v.numeric()

	var lp float64
	if kappa >= kappaEps {
		lp = math.Log(-kappa/(2*math.Pi*math.Expm1(-2*kappa))) + kappa*(mean.Dot(d)-1)
	} else {
		lp = -math.Log(4 * math.Pi)
	}

	return infer.Bound(lp, d.Colat >= 0, d.Colat <= 180)
}

// Prob returns the density at the given direction, or 0 outside the
// support.
func (v *VonMisesFisher) Prob(d sphere.Direction) float64 {
	return math.Exp(v.LogProb(d))
}

// LogProbs evaluates the log density at every row of x, an n-by-2
// matrix of (longitude, colatitude) pairs in degrees. The results are
// stored in dst and returned; when dst is nil a new slice is
// allocated. LogProbs panics when x does not have two columns or when
// the length of a non-nil dst does not match the number of rows.
func (v *VonMisesFisher) LogProbs(x mat.Matrix, dst []float64) []float64 {
	n, c := x.Dims()
	if c != 2 {
		panic("dist: directions matrix must have two columns")
	}
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) != n {
		panic("dist: destination length mismatch")
	}

	for i := 0; i < n; i++ {
		dst[i] = v.LogProb(sphere.Direction{Lon: x.At(i, 0), Colat: x.At(i, 1)})
	}

	return dst
}

// Score returns the gradient of the log density with respect to the
// parameters (longitude, colatitude, concentration), evaluated at the
// direction d. Derivatives in the two angles are per degree. If deriv
// is nil a new slice is allocated, otherwise it must have length 3.
// Outside the support the gradient is undefined and all derivatives
// are NaN.
func (v *VonMisesFisher) Score(deriv []float64, d sphere.Direction) []float64 {
	if deriv == nil {
		deriv = make([]float64, 3)
	}
	if len(deriv) != 3 {
		panic("dist: deriv length mismatch")
	}
	mean, kappa := v.numeric()

	if !(d.Colat >= 0 && d.Colat <= 180) {
		deriv[0], deriv[1], deriv[2] = math.NaN(), math.NaN(), math.NaN()
		return deriv
	}

	sinM, cosM := math.Sincos(sphere.Radians(mean.Colat))
	sinD, cosD := math.Sincos(sphere.Radians(d.Colat))
	sinL, cosL := math.Sincos(sphere.Radians(mean.Lon - d.Lon))
	dot := sinM*sinD*cosL + cosM*cosD

	if kappa < kappaEps {
		// The angular derivatives vanish with kappa, while the
		// derivative in kappa tends to the dot product.
		deriv[0], deriv[1], deriv[2] = 0, 0, dot
		return deriv
	}

	const c = math.Pi / 180
	deriv[0] = kappa * (-sinM * sinD * sinL) * c
	deriv[1] = kappa * (cosM*sinD*cosL - sinM*cosD) * c
	deriv[2] = 1/kappa - 2/math.Expm1(2*kappa) + dot - 1

	return deriv
}

// ScoreInput returns the gradient of the log density with respect to
// the longitude and colatitude of the direction d, per degree. If
// deriv is nil a new slice is allocated, otherwise it must have
// length 2. Outside the support both derivatives are NaN.
func (v *VonMisesFisher) ScoreInput(deriv []float64, d sphere.Direction) []float64 {
	if deriv == nil {
		deriv = make([]float64, 2)
	}
	if len(deriv) != 2 {
		panic("dist: deriv length mismatch")
	}
	mean, kappa := v.numeric()

	if !(d.Colat >= 0 && d.Colat <= 180) {
		deriv[0], deriv[1] = math.NaN(), math.NaN()
		return deriv
	}
	if kappa < kappaEps {
		deriv[0], deriv[1] = 0, 0
		return deriv
	}

	sinM, cosM := math.Sincos(sphere.Radians(mean.Colat))
	sinD, cosD := math.Sincos(sphere.Radians(d.Colat))
	sinL, cosL := math.Sincos(sphere.Radians(mean.Lon - d.Lon))

	const c = math.Pi / 180
	deriv[0] = kappa * (sinM * sinD * sinL) * c
	deriv[1] = kappa * (sinM*cosD*cosL - cosM*sinD) * c

	return deriv
}
