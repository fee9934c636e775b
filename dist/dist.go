// Package dist provides the primitive distributions, each expressed as a
// deterministic transform of one unit-uniform coordinate via its inverse
// cumulative distribution function. There is no distribution entity at
// evaluation time: every constructor returns an ordinary randvar.Variable
// rooted at a Uniform leaf.
//
// Every parameter is randomizable - pass a plain number or any
// randvar.Variable. Each constructor consumes exactly one coordinate of the
// Universe per internal uniform draw, which is the invariant batched
// sampling relies on.
package dist

import (
	"math"

	"gochance/omega"
	"gochance/randvar"
)

// Uniform returns a variable distributed uniformly on [low, high].
func Uniform(u *omega.Universe, low, high any) (randvar.Variable, error) {
	return randvar.NewUniform(u, low, high)
}

// Bernoulli returns a 0/1 valued variable that is 1 with probability p.
func Bernoulli(u *omega.Universe, p any) (randvar.Variable, error) {
	pv, err := randvar.Randomize(p)
	if err != nil {
		return nil, err
	}
	unit := randvar.NewUnitUniform(u)
	return randvar.NewComposed(func(args ...float64) float64 {
		if args[0] <= args[1] {
			return 1
		}
		return 0
	}, unit, pv)
}

// Normal returns a Gaussian variable with mean mu and standard deviation
// sigma, built by inverting the standard normal CDF on a uniform draw.
func Normal(u *omega.Universe, mu, sigma any) (randvar.Variable, error) {
	muV, err := randvar.Randomize(mu)
	if err != nil {
		return nil, err
	}
	sigmaV, err := randvar.Randomize(sigma)
	if err != nil {
		return nil, err
	}
	unit := randvar.NewUnitUniform(u)
	return randvar.NewComposed(func(args ...float64) float64 {
		return math.Erfinv(2*args[0]-1)*math.Sqrt2*args[2] + args[1]
	}, unit, muV, sigmaV)
}

// Exponential returns an exponential variable with rate lambda.
func Exponential(u *omega.Universe, lambda any) (randvar.Variable, error) {
	lambdaV, err := randvar.Randomize(lambda)
	if err != nil {
		return nil, err
	}
	unit := randvar.NewUnitUniform(u)
	return randvar.NewComposed(func(args ...float64) float64 {
		return -math.Log(1-args[0]) / args[1]
	}, unit, lambdaV)
}

// Cauchy returns a Cauchy variable with location x0 and scale gamma.
func Cauchy(u *omega.Universe, x0, gamma any) (randvar.Variable, error) {
	x0V, err := randvar.Randomize(x0)
	if err != nil {
		return nil, err
	}
	gammaV, err := randvar.Randomize(gamma)
	if err != nil {
		return nil, err
	}
	unit := randvar.NewUnitUniform(u)
	return randvar.NewComposed(func(args ...float64) float64 {
		return args[1] + args[2]*math.Tan(math.Pi*(args[0]-0.5))
	}, unit, x0V, gammaV)
}
