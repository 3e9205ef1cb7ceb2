package partition_test

import (
	"fmt"

	"github.com/katalvlaran/symchar/partition"
)

// ExampleGenerator_Of lists the partitions of 4 in generation order.
func ExampleGenerator_Of() {
	gen := partition.NewGenerator()
	for _, p := range gen.Of(4) {
		fmt.Println(p)
	}
	// Output:
	// [4]
	// [3,1]
	// [2,2]
	// [2,1,1]
	// [1,1,1,1]
}

// ExampleParse reads a cycle type and reports its class data.
func ExampleParse() {
	rho, err := partition.Parse("2,2")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	z, _ := rho.CentralizerSize()
	size, _ := rho.ClassSize()
	fmt.Printf("rho=%v z=%d class=%d conjugate=%v\n", rho, z, size, rho.Conjugate())
	// Output:
	// rho=[2,2] z=8 class=3 conjugate=[2,2]
}
