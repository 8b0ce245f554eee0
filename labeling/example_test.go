package labeling_test

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/img"
	"github.com/katalvlaran/lvlimg/labeling"
)

// ExampleComponents counts islands under both neighbourhoods.
func ExampleComponents() {
	src, _ := img.WrapSlice([]uint8{
		1, 0, 1,
		0, 1, 0,
		1, 0, 1,
	}, 3, 3)

	face, _ := labeling.Components[uint8](src)
	full, _ := labeling.Components[uint8](src, labeling.WithConnectivity(labeling.ConnFull))
	fmt.Println(face.Count(), face.Sizes())
	fmt.Println(full.Count(), full.Sizes())

	// Output:
	// 5 [1 1 1 1 1]
	// 1 [5]
}
