// Package flamango evaluates integer arithmetic expressions built from
// non-negative integer literals and the operators + - * /, with the usual
// precedence and left associativity.
//
// Evaluation runs in three stages: a Lexer turns text into tokens, a
// Parser builds a tree of Number and BinaryOp nodes, and Eval walks the
// tree. Failures are reported as *LexicalError, *SyntaxError or
// *ArithmeticError.
package flamango

// Evaluate parses and evaluates a single expression.
func Evaluate(text string) (int64, error) {
	node, err := ParseString(text)
	if err != nil {
		return 0, err
	}
	return Eval(node)
}
