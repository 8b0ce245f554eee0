package img_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/img"
)

// benchSum drains a cursor; the sum keeps the loop from being elided.
func benchSum(b *testing.B, im core.Img[float32], localizing bool) {
	b.ReportAllocs()
	b.ResetTimer()
	var sum float32
	for i := 0; i < b.N; i++ {
		var c core.Cursor[float32]
		if localizing {
			c = im.LocalizingCursor()
		} else {
			c = im.Cursor()
		}
		for c.HasNext() {
			sum += c.Next()
		}
	}
	_ = sum
}

// BenchmarkCursor compares sequential traversal across layouts on 512x512.
func BenchmarkCursor(b *testing.B) {
	a, _ := img.NewArrayImg[float32](1, 512, 512)
	p, _ := img.NewPlanarImg[float32](1, 512, 512)
	c, _ := img.NewCellImg[float32](1, []int{img.DefaultCellSize}, 512, 512)
	for _, tc := range []struct {
		name string
		im   core.Img[float32]
	}{{"array", a}, {"planar", p}, {"cell", c}} {
		b.Run(tc.name, func(b *testing.B) { benchSum(b, tc.im, false) })
		b.Run(tc.name+"/localizing", func(b *testing.B) { benchSum(b, tc.im, true) })
	}
}

// BenchmarkRandomAccessScan walks rows with Fwd/Bck, crossing cell borders.
func BenchmarkRandomAccessScan(b *testing.B) {
	c, _ := img.NewCellImg[float32](1, []int{16}, 512, 512)
	ra := c.RandomAccess()
	b.ResetTimer()
	var sum float32
	for i := 0; i < b.N; i++ {
		ra.SetPosition([]int{0, 0})
		for y := 0; y < 512; y++ {
			for x := 0; x < 511; x++ {
				sum += ra.Get()
				ra.Fwd(0)
			}
			ra.SetPositionAt(0, 0)
			ra.Fwd(1)
			if y == 511 {
				ra.Bck(1)
			}
		}
	}
	_ = sum
}
