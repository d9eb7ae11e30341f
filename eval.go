package flamango

import (
	"fmt"
	"math"
)

// Eval computes the value of the tree rooted at n. Operands are evaluated
// left before right. Integer division truncates toward zero; overflow and
// division by zero are reported as *ArithmeticError.
func Eval(n Node) (int64, error) {
	switch e := n.(type) {
	case *Number:
		return e.Value, nil
	case *BinaryOp:
		lhs, err := Eval(e.Left)
		if err != nil {
			return 0, err
		}
		rhs, err := Eval(e.Right)
		if err != nil {
			return 0, err
		}
		return apply(e, lhs, rhs)
	default:
		panic(fmt.Sprintf("unhandled node: %T", e))
	}
}

func apply(e *BinaryOp, lhs, rhs int64) (int64, error) {
	switch e.Op {
	case Add:
		if (rhs > 0 && lhs > math.MaxInt64-rhs) || (rhs < 0 && lhs < math.MinInt64-rhs) {
			return 0, overflow(e)
		}
		return lhs + rhs, nil
	case Sub:
		if (rhs < 0 && lhs > math.MaxInt64+rhs) || (rhs > 0 && lhs < math.MinInt64+rhs) {
			return 0, overflow(e)
		}
		return lhs - rhs, nil
	case Mul:
		if lhs == 0 || rhs == 0 {
			return 0, nil
		}
		ret := lhs * rhs
		if ret/rhs != lhs || (lhs == -1 && rhs == math.MinInt64) || (rhs == -1 && lhs == math.MinInt64) {
			return 0, overflow(e)
		}
		return ret, nil
	case Div:
		if rhs == 0 {
			return 0, &ArithmeticError{Op: e.Op, Msg: "division by zero", Pos: e.Pos}
		}
		if lhs == math.MinInt64 && rhs == -1 {
			return 0, overflow(e)
		}
		return lhs / rhs, nil
	}
	panic(fmt.Sprintf("unhandled operator: %v", e.Op))
}

func overflow(e *BinaryOp) error {
	return &ArithmeticError{Op: e.Op, Msg: "integer overflow", Pos: e.Pos}
}
