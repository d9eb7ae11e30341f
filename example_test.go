package flamango_test

import (
	"fmt"

	"github.com/Ashwins9001/flamango"
)

func ExampleEvaluate() {
	fmt.Println(flamango.Evaluate("2 + 3 * 4"))
	fmt.Println(flamango.Evaluate("10 - 2 - 3"))
	fmt.Println(flamango.Evaluate("8 / 4 / 2"))
	fmt.Println(flamango.Evaluate("5 / 0"))
	fmt.Println(flamango.Evaluate("2 + a"))
	fmt.Println(flamango.Evaluate("2 +"))

	// Output:
	// 14 <nil>
	// 5 <nil>
	// 1 <nil>
	// 0 division by zero in '/' at position 2
	// 0 invalid character 'a' at position 4
	// 0 expected INTEGER, got unexpected end of input at position 3
}

func ExampleParseString() {
	node, err := flamango.ParseString("1 + 2 * 3 - 4")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(node)

	// Output:
	// ((1 + (2 * 3)) - 4)
}
