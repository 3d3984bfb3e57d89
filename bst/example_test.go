package bst_test

import (
	"fmt"

	"github.com/hupe1980/flatstore/bst"
)

func ExampleTree() {
	tree := bst.New(10, 5, 8, 4, 12)

	for v := range tree.All() {
		fmt.Println(v)
	}

	// Output:
	// 4
	// 5
	// 8
	// 10
	// 12
}
