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
	"math"
	"math/big"
	"strconv"
)

// A Number is either integral or floating point. The representation is
// fixed when the literal is scanned: a decimal point or exponent marker
// makes it floating point. Arithmetic promotes to floating point when
// either operand is floating point.
type Number struct {
	i     int64
	f     float64
	float bool
}

func IntNumber(i int64) Number {
	return Number{i: i}
}

func FloatNumber(f float64) Number {
	return Number{f: f, float: true}
}

func (n Number) IsFloat() bool {
	return n.float
}

func (n Number) Int() int64 {
	return n.i
}

// Float returns the value as a float64, converting if integral.
func (n Number) Float() float64 {
	if n.float {
		return n.f
	}
	return float64(n.i)
}

func (n Number) IsZero() bool {
	if n.float {
		return n.f == 0
	}
	return n.i == 0
}

// String renders the number for display. A floating-point value equal
// to its own truncation collapses to the equivalent integer's decimal
// string, digit-exact even beyond int64 range; other floats use the
// shortest representation that round-trips.
func (n Number) String() string {
	if !n.float {
		return strconv.FormatInt(n.i, 10)
	}
	if math.IsInf(n.f, 0) || math.IsNaN(n.f) {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	if n.f == math.Trunc(n.f) {
		i, _ := big.NewFloat(n.f).Int(nil)
		return i.String()
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
