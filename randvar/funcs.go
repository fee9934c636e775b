package randvar

import "math"

// Lifted equivalents of the supported elementwise math functions. The set is
// an explicit, enumerated contract built at initialization time - there is
// no reflective sweep of another library's namespace. Expressions like
// Sin(X) on a random variable X therefore work without per-call
// boilerplate, and anything outside the registry fails loudly via Func /
// Func2.
var (
	Abs    = Lift1(math.Abs)
	Sqrt   = Lift1(math.Sqrt)
	Cbrt   = Lift1(math.Cbrt)
	Exp    = Lift1(math.Exp)
	Expm1  = Lift1(math.Expm1)
	Log    = Lift1(math.Log)
	Log1p  = Lift1(math.Log1p)
	Log2   = Lift1(math.Log2)
	Log10  = Lift1(math.Log10)
	Sin    = Lift1(math.Sin)
	Cos    = Lift1(math.Cos)
	Tan    = Lift1(math.Tan)
	Asin   = Lift1(math.Asin)
	Acos   = Lift1(math.Acos)
	Atan   = Lift1(math.Atan)
	Sinh   = Lift1(math.Sinh)
	Cosh   = Lift1(math.Cosh)
	Tanh   = Lift1(math.Tanh)
	Erf    = Lift1(math.Erf)
	Erfc   = Lift1(math.Erfc)
	Erfinv = Lift1(math.Erfinv)
	Floor  = Lift1(math.Floor)
	Ceil   = Lift1(math.Ceil)
	Round  = Lift1(math.Round)
	Gamma  = Lift1(math.Gamma)

	Pow   = Lift2(math.Pow)
	Mod   = Lift2(math.Mod)
	Atan2 = Lift2(math.Atan2)
	Hypot = Lift2(math.Hypot)
	Max   = Lift2(math.Max)
	Min   = Lift2(math.Min)
)

var unaryFuncs = map[string]Lifted{
	"abs":    Abs,
	"sqrt":   Sqrt,
	"cbrt":   Cbrt,
	"exp":    Exp,
	"expm1":  Expm1,
	"log":    Log,
	"log1p":  Log1p,
	"log2":   Log2,
	"log10":  Log10,
	"sin":    Sin,
	"cos":    Cos,
	"tan":    Tan,
	"asin":   Asin,
	"acos":   Acos,
	"atan":   Atan,
	"sinh":   Sinh,
	"cosh":   Cosh,
	"tanh":   Tanh,
	"erf":    Erf,
	"erfc":   Erfc,
	"erfinv": Erfinv,
	"floor":  Floor,
	"ceil":   Ceil,
	"round":  Round,
	"gamma":  Gamma,
}

var binaryFuncs = map[string]Lifted{
	"pow":   Pow,
	"mod":   Mod,
	"atan2": Atan2,
	"hypot": Hypot,
	"max":   Max,
	"min":   Min,
}

// Func looks up a unary elementwise function by name. Unknown names return
// ErrUnsupportedFunc.
func Func(name string) (Lifted, error) {
	fn, ok := unaryFuncs[name]
	if !ok {
		return nil, NewUnsupportedFuncError(name)
	}
	return fn, nil
}

// Func2 looks up a binary elementwise function by name. Unknown names return
// ErrUnsupportedFunc.
func Func2(name string) (Lifted, error) {
	fn, ok := binaryFuncs[name]
	if !ok {
		return nil, NewUnsupportedFuncError(name)
	}
	return fn, nil
}

// FuncNames lists the registered unary function names; Func2Names the binary
// ones. The lists are the checkable supported-function contract.
func FuncNames() []string {
	return mapKeys(unaryFuncs)
}

func Func2Names() []string {
	return mapKeys(binaryFuncs)
}

func mapKeys(m map[string]Lifted) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}
