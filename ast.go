package flamango

import (
	"fmt"
	"strconv"
)

type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

var tokenOps = map[TokenKind]Op{
	Plus:  Add,
	Minus: Sub,
	Star:  Mul,
	Slash: Div,
}

// Node is an expression tree node. The set of implementations is closed:
// *Number and *BinaryOp.
type Node interface {
	fmt.Stringer
	node()
}

type Number struct {
	Value int64
	Pos   int
}

// BinaryOp owns its two operands. Pos is the position of the operator.
type BinaryOp struct {
	Op    Op
	Left  Node
	Right Node
	Pos   int
}

func (*Number) node()   {}
func (*BinaryOp) node() {}

func (n *Number) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%v %v %v)", n.Left, n.Op, n.Right)
}
