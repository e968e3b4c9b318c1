package calc_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/scicalc/calc"
)

func ExampleEvaluate() {
	ctx := context.Background()
	table := calc.NewTable()

	for _, line := range []string{
		"3 + 5 * 2",
		"export r = 2",
		"r ^ 3",
		"-r ^ 2",
		"tg(180)",
		"5 / 0",
		"2 * unknownVar",
	} {
		res, err := calc.Evaluate(ctx, line, table)
		if err != nil {
			fmt.Println(err)

			continue
		}

		fmt.Println(res)
	}
	// Output:
	// Result = 13
	// Variable: r, Value: 2
	// Result = 8
	// Result = 4
	// Result = 0
	// evaluation error: division by zero "5 / 0"
	// syntax error: unknown identifier "unknownVar"
}

func ExamplePostfix() {
	postfix, err := calc.Postfix("3 + 4 * (2 - 5)", nil)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(strings.Join(calc.Strings(postfix), " "))
	// Output:
	// 3 4 2 5 - * +
}

func ExampleTable_All() {
	table := calc.NewTable()
	table.Store("tau", 6.28318)
	table.Store("e", 2.71828)

	for name, v := range table.All() {
		fmt.Println(name, calc.FormatValue(v))
	}
	// Output:
	// e 2.71828
	// tau 6.28318
}
