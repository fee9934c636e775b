package randvar

// Arithmetic, sign and comparison operators as lifted functions. Go has no
// operator overloading, so these package functions are the operator surface:
// Add(x, y) works on any mix of plain values and Variables. Argument order
// is explicit at the call site, which removes the need for reflected
// (right-hand) operator forms.
//
// Comparisons are 0/1 valued, matching the boolean encoding of Eval.
var (
	Add = Lift2(func(x, y float64) float64 { return x + y })
	Sub = Lift2(func(x, y float64) float64 { return x - y })
	Mul = Lift2(func(x, y float64) float64 { return x * y })
	Div = Lift2(func(x, y float64) float64 { return x / y })

	Neg = Lift1(func(x float64) float64 { return -x })
	Pos = Lift1(func(x float64) float64 { return x })

	// Truth coerces to boolean: nonzero maps to 1, zero to 0.
	Truth = Lift1(func(x float64) float64 {
		if x != 0 {
			return 1
		}
		return 0
	})

	Less      = Lift2(compare(func(x, y float64) bool { return x < y }))
	LessEq    = Lift2(compare(func(x, y float64) bool { return x <= y }))
	Equal     = Lift2(compare(func(x, y float64) bool { return x == y }))
	NotEqual  = Lift2(compare(func(x, y float64) bool { return x != y }))
	GreaterEq = Lift2(compare(func(x, y float64) bool { return x >= y }))
	Greater   = Lift2(compare(func(x, y float64) bool { return x > y }))
)

func compare(pred func(x, y float64) bool) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		if pred(x, y) {
			return 1
		}
		return 0
	}
}
