//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package expr

import (
	"fmt"
	"math"
)

// Eval computes the value of a syntax tree. It is a pure recursive
// walk; the tree is finite and acyclic, so it always terminates.
// Failures wrap ErrDivisionByZero or ErrInvalidOperation.
func Eval(n Node) (Number, error) {
	switch n := n.(type) {
	case *Literal:
		return n.Value, nil
	case *Unary:
		x, err := Eval(n.X)
		if err != nil {
			return Number{}, err
		}
		if n.Op == OpPos {
			return x, nil
		}
		return negate(x), nil
	case *Binary:
		left, err := Eval(n.Left)
		if err != nil {
			return Number{}, err
		}
		right, err := Eval(n.Right)
		if err != nil {
			return Number{}, err
		}
		return apply(n.Op, left, right)
	}
	return Number{}, fmt.Errorf("%w: unknown node", ErrSyntax)
}

func negate(x Number) Number {
	if x.IsFloat() {
		return FloatNumber(-x.Float())
	}
	if x.Int() == math.MinInt64 {
		return FloatNumber(-x.Float())
	}
	return IntNumber(-x.Int())
}

func apply(op Operator, l, r Number) (Number, error) {
	switch op {
	case OpAdd:
		if bothInts(l, r) {
			return addInts(l.Int(), r.Int()), nil
		}
		return FloatNumber(l.Float() + r.Float()), nil
	case OpSub:
		if bothInts(l, r) {
			return subInts(l.Int(), r.Int()), nil
		}
		return FloatNumber(l.Float() - r.Float()), nil
	case OpMul:
		if bothInts(l, r) {
			return mulInts(l.Int(), r.Int()), nil
		}
		return FloatNumber(l.Float() * r.Float()), nil
	case OpDiv:
		if r.IsZero() {
			return Number{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, l)
		}
		return FloatNumber(l.Float() / r.Float()), nil
	case OpMod:
		return mod(l, r)
	case OpFloorDiv:
		return floorDiv(l, r)
	case OpPow:
		return pow(l, r)
	}
	return Number{}, fmt.Errorf("%w: unknown operator %s", ErrSyntax, op)
}

func bothInts(l, r Number) bool {
	return !l.IsFloat() && !r.IsFloat()
}

// Integer add/sub/mul promote to floating point on int64 overflow
// instead of wrapping.

func addInts(a, b int64) Number {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return FloatNumber(float64(a) + float64(b))
	}
	return IntNumber(a + b)
}

func subInts(a, b int64) Number {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return FloatNumber(float64(a) - float64(b))
	}
	return IntNumber(a - b)
}

func mulInts(a, b int64) Number {
	if mulOverflows(a, b) {
		return FloatNumber(float64(a) * float64(b))
	}
	return IntNumber(a * b)
}

func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a == -1 {
		return b == math.MinInt64
	}
	if b == -1 {
		return a == math.MinInt64
	}
	c := a * b
	return c/b != a
}

// mod is the floored remainder: the sign follows the divisor, as on
// most calculators (and unlike the machine remainder).
func mod(l, r Number) (Number, error) {
	if r.IsZero() {
		return Number{}, fmt.Errorf("%w: %s %% 0", ErrDivisionByZero, l)
	}
	if bothInts(l, r) {
		a, b := l.Int(), r.Int()
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return IntNumber(m), nil
	}
	a, b := l.Float(), r.Float()
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return FloatNumber(m), nil
}

// floorDiv truncates the quotient toward negative infinity.
func floorDiv(l, r Number) (Number, error) {
	if r.IsZero() {
		return Number{}, fmt.Errorf("%w: %s // 0", ErrDivisionByZero, l)
	}
	if bothInts(l, r) {
		a, b := l.Int(), r.Int()
		if a == math.MinInt64 && b == -1 {
			return FloatNumber(-l.Float()), nil
		}
		q := a / b
		if a%b != 0 && (a < 0) != (b < 0) {
			q--
		}
		return IntNumber(q), nil
	}
	return FloatNumber(math.Floor(l.Float() / r.Float())), nil
}

func pow(l, r Number) (Number, error) {
	if bothInts(l, r) {
		return powInts(l.Int(), r.Int())
	}
	base, exp := l.Float(), r.Float()
	if base == 0 && exp < 0 {
		return Number{}, fmt.Errorf("%w: 0 raised to %s", ErrDivisionByZero, r)
	}
	if base < 0 && exp != math.Trunc(exp) {
		return Number{}, fmt.Errorf("%w: fractional power of negative base", ErrInvalidOperation)
	}
	return FloatNumber(math.Pow(base, exp)), nil
}

// powInts keeps int**int integral for non-negative exponents,
// promoting to floating point on overflow. A negative exponent yields
// the floating-point reciprocal.
func powInts(a, b int64) (Number, error) {
	if b < 0 {
		if a == 0 {
			return Number{}, fmt.Errorf("%w: 0 raised to %d", ErrDivisionByZero, b)
		}
		return FloatNumber(math.Pow(float64(a), float64(b))), nil
	}
	result, base, e := int64(1), a, b
	for e > 0 {
		if e&1 == 1 {
			if mulOverflows(result, base) {
				return FloatNumber(math.Pow(float64(a), float64(b))), nil
			}
			result *= base
		}
		e >>= 1
		if e > 0 {
			if mulOverflows(base, base) {
				return FloatNumber(math.Pow(float64(a), float64(b))), nil
			}
			base *= base
		}
	}
	return IntNumber(result), nil
}
