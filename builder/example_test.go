package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/builder"
	"github.com/katalvlaran/lvlimg/img"
)

// ExampleBuildImage layers a ramp over a constant and marks one sample.
func ExampleBuildImage() {
	im, err := builder.BuildImage[int16](img.ArrayFactory[int16]{}, []int{5}, nil,
		builder.Constant[int16](10),
		builder.Ramp[int16](0, -3),
		builder.Impulse[int16](99, 2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(im.(*img.ArrayImg[int16]).Data())

	// Output:
	// [10 7 99 1 -2]
}
