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
	"strconv"
)

// The parser is recursive descent over a closed grammar, loosest to
// tightest binding:
//
//	expr    = term    { ("+" | "-") term }
//	term    = unary   { ("*" | "/" | "%" | "//") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "**" unary ]
//	primary = number | "(" expr ")"
//
// "**" is right-associative and binds tighter than a unary sign on its
// left but looser than one on its right, so -2**2 is -4 and 2**-3 is
// 0.125. Only Literal, Unary, and Binary nodes can ever be built; any
// identifier or call-like token fails before a node exists for it.
type parser struct {
	input string
	pos   int
}

// Parse turns a normalized expression string into a syntax tree.
// Failures wrap ErrSyntax (malformed stream) or ErrDisallowed (any
// character or construct outside the whitelist).
func Parse(s string) (Node, error) {
	p := &parser{input: s}
	p.skipSpaces()
	if p.atEnd() {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if !p.atEnd() {
		return nil, p.errUnexpected()
	}
	return node, nil
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpaces()
		var op Operator
		switch {
		case p.match('+'):
			op = OpAdd
		case p.match('-'):
			op = OpSub
		default:
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpaces()
		var op Operator
		switch {
		case p.matchString("//"):
			op = OpFloorDiv
		case p.peek() == '*' && p.peekAt(1) != '*' && p.match('*'):
			op = OpMul
		case p.match('/'):
			op = OpDiv
		case p.match('%'):
			op = OpMod
		default:
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	p.skipSpaces()
	var op Operator
	switch {
	case p.match('+'):
		op = OpPos
	case p.match('-'):
		op = OpNeg
	default:
		return p.parsePower()
	}
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &Unary{Op: op, X: x}, nil
}

func (p *parser) parsePower() (Node, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.matchString("**") {
		// The exponent may carry its own sign: 2**-3.
		y, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Binary{Op: OpPow, Left: x, Right: y}, nil
	}
	return x, nil
}

func (p *parser) parsePrimary() (Node, error) {
	p.skipSpaces()
	if p.atEnd() {
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	c := p.peek()
	if c == '(' {
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if !p.match(')') {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		return inner, nil
	}
	if isDigit(c) || c == '.' {
		return p.parseNumber()
	}
	return nil, p.errUnexpected()
}

// parseNumber scans a maximal numeric run: digits with at most one
// decimal point, then an optional exponent suffix. The lexical form
// decides the representation.
func (p *parser) parseNumber() (Node, error) {
	start := p.pos
	dotSeen := false
	for !p.atEnd() {
		c := p.peek()
		if isDigit(c) {
			p.pos++
			continue
		}
		if c == '.' && !dotSeen {
			dotSeen = true
			p.pos++
			continue
		}
		break
	}
	isFloat := dotSeen
	if !p.atEnd() && (p.peek() == 'e' || p.peek() == 'E') {
		p.pos++
		if !p.atEnd() && (p.peek() == '+' || p.peek() == '-') {
			p.pos++
		}
		digits := false
		for !p.atEnd() && isDigit(p.peek()) {
			p.pos++
			digits = true
		}
		if !digits {
			return nil, fmt.Errorf("%w: malformed exponent in %q", ErrSyntax, p.input[start:p.pos])
		}
		isFloat = true
	}
	text := p.input[start:p.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q", ErrSyntax, text)
		}
		return &Literal{Value: FloatNumber(f)}, nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Integral form too large for int64; keep the magnitude.
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return nil, fmt.Errorf("%w: invalid number %q", ErrSyntax, text)
		}
		return &Literal{Value: FloatNumber(f)}, nil
	}
	return &Literal{Value: IntNumber(i)}, nil
}

// errUnexpected classifies the byte at the cursor: anything outside
// the numeric/operator whitelist (identifiers, call syntax, comparison
// characters, non-ASCII) is a disallowed construct; allowed bytes in a
// structurally wrong place are plain syntax errors.
func (p *parser) errUnexpected() error {
	c := p.peek()
	if isAllowed(c) {
		return fmt.Errorf("%w: unexpected %q", ErrSyntax, rune(c))
	}
	return fmt.Errorf("%w: %q is not allowed", ErrDisallowed, rune(c))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAllowed(c byte) bool {
	switch {
	case isDigit(c):
		return true
	case c == '.' || c == '(' || c == ')':
		return true
	case c == '+' || c == '-' || c == '*' || c == '/' || c == '%':
		return true
	case c == ' ' || c == '\t':
		return true
	}
	return false
}

func (p *parser) skipSpaces() {
	for !p.atEnd() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

func (p *parser) match(target byte) bool {
	if p.atEnd() || p.peek() != target {
		return false
	}
	p.pos++
	return true
}

func (p *parser) matchString(target string) bool {
	if p.pos+len(target) > len(p.input) || p.input[p.pos:p.pos+len(target)] != target {
		return false
	}
	p.pos += len(target)
	return true
}

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) peekAt(n int) byte {
	if p.pos+n >= len(p.input) {
		return 0
	}
	return p.input[p.pos+n]
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.input)
}
