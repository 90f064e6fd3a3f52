package demo_test

import (
	"fmt"

	"github.com/katalvlaran/smctpd/driver"
	"github.com/katalvlaran/smctpd/internal/demo"
)

// ExampleDiamond builds the diamond workflow and runs it end to end.
func ExampleDiamond() {
	in, err := demo.Diamond(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	result, err := driver.Run(in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tasks placed:", len(result.Pass2.Placement))
	// Output:
	// tasks placed: 4
}
