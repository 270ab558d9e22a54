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

// Operator is the closed set of operations a Node may carry. The parser
// is the only constructor of nodes, so no other operation can appear in
// a tree.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpFloorDiv
	OpNeg
	OpPos
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	case OpFloorDiv:
		return "//"
	case OpNeg:
		return "-"
	case OpPos:
		return "+"
	}
	return "?"
}

// A Node is one of exactly three shapes: Literal, Unary, or Binary.
// The tag method is unexported so no shape can be added outside this
// package.
type Node interface {
	node()
}

// Literal is a leaf holding one numeric constant.
type Literal struct {
	Value Number
}

// Unary applies OpNeg or OpPos to its operand.
type Unary struct {
	Op Operator
	X  Node
}

// Binary combines two subtrees with a binary operator.
type Binary struct {
	Op    Operator
	Left  Node
	Right Node
}

func (*Literal) node() {}
func (*Unary) node()   {}
func (*Binary) node()  {}
