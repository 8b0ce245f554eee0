package algorithms_test

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/algorithms"
	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/img"
	"github.com/katalvlaran/lvlimg/views"
)

// ExampleThresholdBits thresholds the inner part of an image into a cell
// image. The view iterates in flat order and the destination in cell order,
// so the traversal falls back to positional access transparently.
func ExampleThresholdBits() {
	data := make([]uint8, 8*6)
	for i := range data {
		data[i] = uint8(i * 5)
	}
	src, _ := img.WrapSlice(data, 8, 6)
	inner, _ := views.IntervalMinMax[uint8](src, []int{2, 2}, []int{5, 3})

	out, _ := algorithms.ThresholdBits[uint8](inner, 100, img.NewCellFactory[core.Bit](2))
	ra := out.RandomAccess()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			ra.SetPosition([]int{x, y})
			fmt.Print(ra.Get())
		}
		fmt.Println()
	}

	// Output:
	// 0001
	// 1111
}

// ExampleCenterOfMass weighs two equal samples; the result lies halfway.
func ExampleCenterOfMass() {
	im, _ := img.NewArrayImg[float32](0, 9, 7)
	_ = im.SetAt(10, 6, 2)
	_ = im.SetAt(10, 4, 4)
	fmt.Println(algorithms.CenterOfMass[float32](im))

	// Output:
	// [5 3]
}
