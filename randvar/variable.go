// Package randvar implements random variables as deferred computations over
// a sampled batch of uniform noise. A Variable never draws randomness
// itself: it describes how to turn one realization of an omega.Universe into
// a value. Three concrete variants exist - Constant, Uniform and Composed -
// and the Lift machinery turns ordinary elementwise functions into
// Variable-aware ones so arbitrary expressions stay lazy.
package randvar

import (
	"gochance/omega"
)

// Variable is a random variable: a pure function of a sampled batch.
//
// Eval returns one value per trailing batch entry, i.e. a slice of length
// b.Width(). Boolean-valued variables (comparisons, Bernoulli) encode
// false/true as 0/1. Eval never mutates the batch or the graph, so a built
// graph stays valid and reusable whether or not an evaluation fails.
type Variable interface {
	Eval(b *omega.Batch) ([]float64, error)
}

// Randomize normalizes any operand to a Variable: a Variable is returned
// unchanged, plain numeric and boolean values are wrapped in a Constant.
// Anything else is rejected with ErrNotRandomizable.
func Randomize(v any) (Variable, error) {
	if rv, ok := v.(Variable); ok {
		return rv, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, NewNotRandomizableError(v)
	}
	return &Constant{value: f}, nil
}

// toFloat coerces the plain value kinds Randomize accepts.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Constant wraps a fixed value. The wrapped value may itself be a Variable,
// which makes "randomized constants" possible: evaluation then delegates to
// the inner variable instead of broadcasting a scalar.
type Constant struct {
	value float64
	inner Variable
}

// NewConstant wraps v, which must be a plain numeric/boolean value or a
// Variable.
func NewConstant(v any) (*Constant, error) {
	if rv, ok := v.(Variable); ok {
		return &Constant{inner: rv}, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, NewNotRandomizableError(v)
	}
	return &Constant{value: f}, nil
}

// Eval ignores the batch contents: it broadcasts the wrapped scalar to the
// batch width, or delegates if the constant was randomized.
func (c *Constant) Eval(b *omega.Batch) ([]float64, error) {
	if c.inner != nil {
		return c.inner.Eval(b)
	}
	out := make([]float64, b.Width())
	for i := range out {
		out[i] = c.value
	}
	return out, nil
}

// Uniform is the primitive random variable: it owns one coordinate of a
// Universe and maps that coordinate's uniform(0,1) draws affinely into
// [low, high]. Both bounds are randomizable.
type Uniform struct {
	idx       int
	low, high Variable
}

// NewUniform claims the next coordinate of u and returns a Uniform over
// [low, high]. Bounds are validated before the coordinate is claimed, so a
// failed construction never leaks an allocation.
func NewUniform(u *omega.Universe, low, high any) (*Uniform, error) {
	lo, err := Randomize(low)
	if err != nil {
		return nil, err
	}
	hi, err := Randomize(high)
	if err != nil {
		return nil, err
	}
	return &Uniform{idx: u.Allocate(), low: lo, high: hi}, nil
}

// NewUnitUniform claims the next coordinate of u and returns a Uniform over
// [0, 1]. It cannot fail; distribution constructors build on it.
func NewUnitUniform(u *omega.Universe) *Uniform {
	return &Uniform{idx: u.Allocate(), low: &Constant{value: 0}, high: &Constant{value: 1}}
}

// Index returns the coordinate index this variable was assigned.
func (v *Uniform) Index() int {
	return v.idx
}

// Eval pulls this variable's coordinate row from the batch and maps each
// draw u into low*(1-u) + high*u.
func (v *Uniform) Eval(b *omega.Batch) ([]float64, error) {
	row, err := b.Row(v.idx)
	if err != nil {
		return nil, err
	}
	lo, err := v.low.Eval(b)
	if err != nil {
		return nil, err
	}
	hi, err := v.high.Eval(b)
	if err != nil {
		return nil, err
	}
	out := make([]float64, b.Width())
	for i, u := range row {
		out[i] = lo[i]*(1-u) + hi[i]*u
	}
	return out, nil
}

// Composed is an elementwise function applied to operand variables. It is
// how every non-primitive expression defers its work: evaluation first
// evaluates every operand against the same batch, then applies the function
// entry by entry.
//
// A Composed node owns its operand slice; sharing sub-variables between
// parents is safe because evaluation is pure.
type Composed struct {
	fn       Elementwise
	operands []Variable
}

// NewComposed builds a deferred application of fn to the given operands.
// Operands are normalized via Randomize, so plain values mix freely with
// variables.
func NewComposed(fn Elementwise, operands ...any) (*Composed, error) {
	if len(operands) == 0 {
		return nil, ErrNoOperands
	}
	vars := make([]Variable, len(operands))
	for i, op := range operands {
		rv, err := Randomize(op)
		if err != nil {
			return nil, err
		}
		vars[i] = rv
	}
	return &Composed{fn: fn, operands: vars}, nil
}

// Eval evaluates every operand depth-first against the batch, then applies
// the function elementwise. Operand order carries no effects; cost is linear
// in the subtree size.
func (c *Composed) Eval(b *omega.Batch) ([]float64, error) {
	values := make([][]float64, len(c.operands))
	for i, op := range c.operands {
		v, err := op.Eval(b)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	out := make([]float64, b.Width())
	args := make([]float64, len(values))
	for i := range out {
		for j := range values {
			args[j] = values[j][i]
		}
		out[i] = c.fn(args...)
	}
	return out, nil
}
