package randvar

// Elementwise is a deterministic scalar function applied independently to
// each entry of its operands' values.
type Elementwise func(args ...float64) float64

// Lifted is a Variable-aware function. Called with plain values only, it
// computes immediately and returns a float64; called with at least one
// Variable, it returns a Composed Variable that defers evaluation. This dual
// behavior lets the same function serve plain numbers and random variables
// transparently.
type Lifted func(args ...any) (any, error)

// Lift turns an elementwise function into its Variable-aware form.
//
// The fast path builds no graph node: Lift(f)(2, 3) is exactly f(2, 3).
func Lift(fn Elementwise) Lifted {
	return func(args ...any) (any, error) {
		if !anyRandom(args) {
			plain := make([]float64, len(args))
			for i, a := range args {
				f, ok := toFloat(a)
				if !ok {
					return nil, NewNotRandomizableError(a)
				}
				plain[i] = f
			}
			return fn(plain...), nil
		}
		return NewComposed(fn, args...)
	}
}

// Lift1 lifts a unary function. The result must be called with one argument.
func Lift1(fn func(x float64) float64) Lifted {
	return Lift(func(args ...float64) float64 { return fn(args[0]) })
}

// Lift2 lifts a binary function. The result must be called with two
// arguments.
func Lift2(fn func(x, y float64) float64) Lifted {
	return Lift(func(args ...float64) float64 { return fn(args[0], args[1]) })
}

func anyRandom(args []any) bool {
	for _, a := range args {
		if _, ok := a.(Variable); ok {
			return true
		}
	}
	return false
}
