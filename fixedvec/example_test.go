package fixedvec_test

import (
	"fmt"

	"github.com/artem-zyktin/fixed-vector/alloc"
	"github.com/artem-zyktin/fixed-vector/fixedvec"
)

func Example() {
	v, err := fixedvec.New[int](4)
	if err != nil {
		panic(err)
	}
	defer v.Close()

	for _, x := range []int{1, 2, 3, 4} {
		v.PushBack(x)
	}
	v.Remove(1)

	fmt.Println(v.Slice(), v.Len(), v.Cap(), v.Full())
	// Output: [1 4 3] 3 4 false
}

func ExampleVector_Backward() {
	v := fixedvec.MustNew[string](3)
	v.PushBack("a")
	v.PushBack("b")
	v.PushBack("c")

	for i, s := range v.Backward() {
		fmt.Print(i, s, " ")
	}
	fmt.Println()
	// Output: 2c 1b 0a
}

func ExampleNewWith() {
	pool := alloc.NewPool[float64](alloc.DefaultConfig)

	a, _ := fixedvec.NewWith[float64](100, pool)
	_ = a.Close()

	// The released block is recycled for a vector of the same size class.
	b, _ := fixedvec.NewWith[float64](110, pool)
	defer b.Close()

	fmt.Println(b.Cap(), pool.Stats().Hits)
	// Output: 110 1
}

func ExampleVector_CopyFrom() {
	small := fixedvec.MustNew[int](2)
	small.PushBack(1)

	big := fixedvec.MustNew[int](8)
	big.PushBack(5)
	big.PushBack(6)
	big.PushBack(7)

	_ = big.CopyFrom(small)
	fmt.Println(big.Slice(), big.Cap())

	_ = small.CopyFrom(big)
	fmt.Println(small.Slice(), small.Cap())
	// Output:
	// [1] 8
	// [1] 8
}
