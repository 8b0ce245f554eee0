// SPDX-License-Identifier: MIT

package labeling

import (
	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/img"
)

const (
	ctxComponents = "Components"
	ctxComponent  = "Result.Component"
	ctxSize       = "Result.Size"
	ctxBridge     = "Result.Bridge"
)

// Result is the outcome of Components. Labels are stored zero-min; every
// coordinate returned by Result methods is in the source's coordinates.
type Result struct {
	labels  *img.ArrayImg[int32]
	origin  []int
	dims    []int
	steps   []int
	sizes   []int // sizes[l-1] for label l
	offsets [][]int
}

// Components labels the connected foreground regions of src.
// Errors: none for valid input; the error return carries allocation
// failures from the label image.
// Complexity: O(size·K) time, O(size) memory.
func Components[T core.Real](src core.IterableInterval[T], opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	b := src.Bounds()
	dims := b.Dims()
	labels, err := img.NewArrayImg[int32](0, dims...)
	if err != nil {
		return nil, labelErrorf(ctxComponents, err)
	}

	r := &Result{
		labels:  labels,
		origin:  b.Mins(),
		dims:    dims,
		steps:   flatSteps(dims),
		offsets: neighborOffsets(len(dims), o.Connectivity),
	}

	// Foreground mask in flat order, whatever order src iterates in.
	fg := make([]bool, b.Size())
	pos := make([]int, len(dims))
	c := src.LocalizingCursor()
	for c.HasNext() {
		v := core.ToReal(c.Next())
		if v > o.Foreground {
			c.Localize(pos)
			fg[r.flatIndex(pos)] = true
		}
	}

	data := labels.Data()
	var queue []int
	for i := range fg {
		if !fg[i] || data[i] != 0 {
			continue
		}
		label := int32(len(r.sizes) + 1)
		data[i] = label
		queue = append(queue[:0], i)
		for qi := 0; qi < len(queue); qi++ {
			r.eachNeighbor(queue[qi], pos, func(j int) {
				if fg[j] && data[j] == 0 {
					data[j] = label
					queue = append(queue, j)
				}
			})
		}
		r.sizes = append(r.sizes, len(queue))
	}

	return r, nil
}

// Labels returns the zero-min label image (shared, not copied).
func (r *Result) Labels() *img.ArrayImg[int32] { return r.labels }

// Count is the number of components.
func (r *Result) Count() int { return len(r.sizes) }

// Origin returns the source minimum that label coordinate 0 maps to.
func (r *Result) Origin() []int { return append([]int(nil), r.origin...) }

// Size returns the number of samples carrying label.
// Errors: ErrLabelRange.
func (r *Result) Size(label int) (int, error) {
	if err := r.checkLabel(ctxSize, label); err != nil {
		return 0, err
	}

	return r.sizes[label-1], nil
}

// Sizes returns a copy of all component sizes, index l-1 for label l.
func (r *Result) Sizes() []int { return append([]int(nil), r.sizes...) }

// Largest returns the label with the most samples (lowest label on ties),
// or 0 when there is no component.
func (r *Result) Largest() int {
	best := 0
	for i, s := range r.sizes {
		if best == 0 || s > r.sizes[best-1] {
			best = i + 1
		}
	}

	return best
}

// Component returns the points carrying label in flat scan order.
// Errors: ErrLabelRange.
// Complexity: O(size).
func (r *Result) Component(label int) ([]*core.Point, error) {
	if err := r.checkLabel(ctxComponent, label); err != nil {
		return nil, err
	}
	out := make([]*core.Point, 0, r.sizes[label-1])
	for i, l := range r.labels.Data() {
		if int(l) == label {
			out = append(out, r.point(i))
		}
	}

	return out, nil
}

// LabelAt returns the label at a source coordinate, 0 outside the domain.
func (r *Result) LabelAt(pos ...int) int32 {
	if len(pos) != len(r.dims) {
		return 0
	}
	rel := make([]int, len(pos))
	for d, p := range pos {
		rel[d] = p - r.origin[d]
		if rel[d] < 0 || rel[d] >= r.dims[d] {
			return 0
		}
	}

	return r.labels.Data()[r.flatIndex0(rel)]
}

func (r *Result) checkLabel(method string, label int) error {
	if label < 1 || label > len(r.sizes) {
		return labelErrorf(method, ErrLabelRange)
	}

	return nil
}

// flatIndex maps a source coordinate to its zero-min flat index.
func (r *Result) flatIndex(pos []int) int {
	idx := 0
	for d, p := range pos {
		idx += (p - r.origin[d]) * r.steps[d]
	}

	return idx
}

func (r *Result) flatIndex0(rel []int) int {
	idx := 0
	for d, p := range rel {
		idx += p * r.steps[d]
	}

	return idx
}

// decode writes the zero-min coordinate of flat index i into rel.
func (r *Result) decode(i int, rel []int) {
	for d := range r.dims {
		rel[d] = i % r.dims[d]
		i /= r.dims[d]
	}
}

func (r *Result) point(i int) *core.Point {
	p := core.NewPoint(len(r.dims))
	rel := make([]int, len(r.dims))
	r.decode(i, rel)
	for d, v := range rel {
		p.SetPositionAt(d, v+r.origin[d])
	}

	return p
}

// eachNeighbor calls fn with the flat index of every in-domain neighbour of
// i. scratch must have length N.
func (r *Result) eachNeighbor(i int, scratch []int, fn func(j int)) {
	r.decode(i, scratch)
next:
	for _, off := range r.offsets {
		j := i
		for d, o := range off {
			v := scratch[d] + o
			if v < 0 || v >= r.dims[d] {
				continue next
			}
			j += o * r.steps[d]
		}
		fn(j)
	}
}

// neighborOffsets enumerates {-1,0,1}^n without the origin, keeping only
// single-axis moves for ConnFace. Order is deterministic.
func neighborOffsets(n int, c Connectivity) [][]int {
	var out [][]int
	off := make([]int, n)
	for d := range off {
		off[d] = -1
	}
	for {
		nonZero := 0
		for _, v := range off {
			if v != 0 {
				nonZero++
			}
		}
		if nonZero > 0 && (c == ConnFull || nonZero == 1) {
			out = append(out, append([]int(nil), off...))
		}
		d := 0
		for ; d < n; d++ {
			off[d]++
			if off[d] <= 1 {
				break
			}
			off[d] = -1
		}
		if d == n {
			return out
		}
	}
}

func flatSteps(dims []int) []int {
	steps := make([]int, len(dims))
	s := 1
	for d, n := range dims {
		steps[d] = s
		s *= n
	}

	return steps
}
