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
package calc

import (
	"strconv"
	"strings"

	"github.com/kalk-dev/kalk/expr"
)

// displayLimit is the most characters the display shows; longer
// buffers keep only their trailing characters, even when that drops a
// leading sign or digits.
const displayLimit = 30

// binaryOperators are the appendable binary-operator characters that
// collapse when typed consecutively.
const binaryOperators = "+-×÷"

// A Calculator owns the expression being edited. All edits go through
// its methods; Evaluate replaces the whole expression on success and
// leaves it untouched on failure. It belongs to a single session and
// is not safe for concurrent use.
type Calculator struct {
	expression string
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Append adds one character. Consecutive binary operators collapse:
// the most recently typed one replaces the last. On an empty
// expression, × and ÷ are dropped, while + and - open the expression
// as a sign.
func (c *Calculator) Append(ch rune) {
	if strings.ContainsRune(binaryOperators, ch) {
		runes := []rune(c.expression)
		if len(runes) == 0 {
			if ch == '×' || ch == '÷' {
				return
			}
		} else if strings.ContainsRune(binaryOperators, runes[len(runes)-1]) {
			c.expression = string(runes[:len(runes)-1]) + string(ch)
			return
		}
	}
	c.expression += string(ch)
}

func (c *Calculator) Backspace() {
	runes := []rune(c.expression)
	if len(runes) > 0 {
		c.expression = string(runes[:len(runes)-1])
	}
}

func (c *Calculator) Clear() {
	c.expression = ""
}

// Negate toggles the sign of the trailing number.
func (c *Calculator) Negate() {
	c.spliceTrailingNumber(func(v float64) float64 { return -v })
}

// Percent divides the trailing number by 100.
func (c *Calculator) Percent() {
	c.spliceTrailingNumber(func(v float64) float64 { return v / 100 })
}

// spliceTrailingNumber finds the maximal trailing run of digits,
// decimal points, and exponent markers, applies f to its value, and
// splices the re-rendered result back in place. A missing or
// unparseable run is a silent no-op.
func (c *Calculator) spliceTrailingNumber(f func(float64) float64) {
	i := len(c.expression)
	for i > 0 {
		ch := c.expression[i-1]
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == 'e' || ch == 'E' {
			i--
			continue
		}
		break
	}
	run := c.expression[i:]
	if run == "" {
		return
	}
	v, err := strconv.ParseFloat(run, 64)
	if err != nil {
		return
	}
	c.expression = c.expression[:i] + expr.FloatNumber(f(v)).String()
}

// Evaluate normalizes, parses, and evaluates the expression. On
// success the expression is replaced with the formatted result; on any
// failure it is left unchanged and the error is returned for the UI to
// flash. An empty expression is a no-op.
func (c *Calculator) Evaluate() error {
	if c.expression == "" {
		return nil
	}
	node, err := expr.Parse(expr.Normalize(c.expression))
	if err != nil {
		return err
	}
	v, err := expr.Eval(node)
	if err != nil {
		return err
	}
	c.expression = v.String()
	return nil
}

// Text returns the raw expression.
func (c *Calculator) Text() string {
	return c.expression
}

// Display returns the expression for the display line: "0" when
// empty, and at most the trailing displayLimit characters otherwise.
func (c *Calculator) Display() string {
	if c.expression == "" {
		return "0"
	}
	runes := []rune(c.expression)
	if len(runes) > displayLimit {
		runes = runes[len(runes)-displayLimit:]
	}
	return string(runes)
}
