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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalk-dev/kalk/expr"
)

func typeIn(c *Calculator, s string) {
	for _, ch := range s {
		c.Append(ch)
	}
}

func TestAppendCollapsesOperators(t *testing.T) {
	t.Run("latest operator wins", func(t *testing.T) {
		c := NewCalculator()
		typeIn(c, "12+")
		c.Append('×')
		assert.Equal(t, "12×", c.Text())
		c.Append('-')
		assert.Equal(t, "12-", c.Text())
	})

	t.Run("plus then minus on empty leaves a lone sign", func(t *testing.T) {
		c := NewCalculator()
		c.Append('+')
		c.Append('-')
		assert.Equal(t, "-", c.Text())
	})

	t.Run("multiply and divide cannot open an expression", func(t *testing.T) {
		c := NewCalculator()
		c.Append('×')
		assert.Equal(t, "", c.Text())
		c.Append('÷')
		assert.Equal(t, "", c.Text())
	})
}

func TestBackspace(t *testing.T) {
	c := NewCalculator()
	c.Backspace() // no-op on empty
	assert.Equal(t, "", c.Text())

	typeIn(c, "5×")
	c.Backspace()
	assert.Equal(t, "5", c.Text())
	c.Backspace()
	assert.Equal(t, "", c.Text())
}

func TestClear(t *testing.T) {
	c := NewCalculator()
	typeIn(c, "12+34")
	c.Clear()
	assert.Equal(t, "", c.Text())
	assert.Equal(t, "0", c.Display())
}

func TestNegate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12+5", "12+-5"},
		{"5", "-5"},
		{"2.5", "-2.5"},
		{"1e2", "-100"}, // trailing run re-rendered through the formatter
		{"", ""},
		{"12+", "12+"}, // no trailing number
		{"5e", "5e"},   // run does not parse
	}
	for _, tc := range cases {
		c := NewCalculator()
		typeIn(c, tc.in)
		c.Negate()
		assert.Equal(t, tc.want, c.Text(), "negate of %q", tc.in)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"200", "2"},
		{"50+50", "50+0.5"},
		{"5", "0.05"},
		{"", ""},
		{"12+", "12+"},
	}
	for _, tc := range cases {
		c := NewCalculator()
		typeIn(c, tc.in)
		c.Percent()
		assert.Equal(t, tc.want, c.Text(), "percent of %q", tc.in)
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("multiplication precedence", func(t *testing.T) {
		c := NewCalculator()
		typeIn(c, "7+3×2")
		require.NoError(t, c.Evaluate())
		assert.Equal(t, "13", c.Text())
	})

	t.Run("result is idempotent", func(t *testing.T) {
		c := NewCalculator()
		typeIn(c, "42")
		require.NoError(t, c.Evaluate())
		require.NoError(t, c.Evaluate())
		assert.Equal(t, "42", c.Text())
	})

	t.Run("integral result has no trailing fraction", func(t *testing.T) {
		c := NewCalculator()
		typeIn(c, "4÷2")
		require.NoError(t, c.Evaluate())
		assert.Equal(t, "2", c.Text())
	})

	t.Run("empty buffer is a no-op", func(t *testing.T) {
		c := NewCalculator()
		require.NoError(t, c.Evaluate())
		assert.Equal(t, "", c.Text())
	})

	t.Run("division by zero preserves the buffer", func(t *testing.T) {
		c := NewCalculator()
		typeIn(c, "9÷0")
		err := c.Evaluate()
		require.ErrorIs(t, err, expr.ErrDivisionByZero)
		assert.Equal(t, "9÷0", c.Text())
	})

	t.Run("syntax error preserves the buffer", func(t *testing.T) {
		c := NewCalculator()
		typeIn(c, "5+")
		err := c.Evaluate()
		require.ErrorIs(t, err, expr.ErrSyntax)
		assert.Equal(t, "5+", c.Text())
	})

	t.Run("disallowed construct preserves the buffer", func(t *testing.T) {
		c := NewCalculator()
		typeIn(c, "abs(1)")
		err := c.Evaluate()
		require.ErrorIs(t, err, expr.ErrDisallowed)
		assert.Equal(t, "abs(1)", c.Text())
	})

	t.Run("usable after a failure", func(t *testing.T) {
		c := NewCalculator()
		typeIn(c, "9÷0")
		require.Error(t, c.Evaluate())
		c.Clear()
		typeIn(c, "1+1")
		require.NoError(t, c.Evaluate())
		assert.Equal(t, "2", c.Text())
	})
}

func TestDisplay(t *testing.T) {
	t.Run("empty shows zero", func(t *testing.T) {
		c := NewCalculator()
		assert.Equal(t, "0", c.Display())
	})

	t.Run("short buffer shows as-is", func(t *testing.T) {
		c := NewCalculator()
		typeIn(c, "12+34")
		assert.Equal(t, "12+34", c.Display())
	})

	t.Run("long buffer keeps the trailing thirty characters", func(t *testing.T) {
		c := NewCalculator()
		text := strings.Repeat("1234567", 5) // 35 characters
		typeIn(c, text)
		assert.Equal(t, text[5:], c.Display())
		assert.Len(t, c.Display(), 30)
	})

	t.Run("truncation counts characters, not bytes", func(t *testing.T) {
		c := NewCalculator()
		typeIn(c, "1×"+strings.Repeat("9", 29))
		display := []rune(c.Display())
		assert.Len(t, display, 30)
		assert.Equal(t, '×', display[0])
	})
}
