// SPDX-License-Identifier: MIT

package labeling

import "github.com/katalvlaran/lvlimg/core"

// Bridge finds the cheapest chain of samples joining component a to
// component b, using the neighbourhood the labeling was computed with.
// Stepping onto a background sample costs 1; stepping onto any labelled
// sample costs 0. The returned path starts in a, ends in b and includes
// both endpoints; cost is the number of background samples on it.
// Errors: ErrLabelRange, ErrNoPath.
// Complexity: O(size·K) time (0-1 BFS), O(size) memory.
func (r *Result) Bridge(a, b int) (path []*core.Point, cost int, err error) {
	if err = r.checkLabel(ctxBridge, a); err != nil {
		return nil, 0, err
	}
	if err = r.checkLabel(ctxBridge, b); err != nil {
		return nil, 0, err
	}

	data := r.labels.Data()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, len(data))
	prev := make([]int, len(data))
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// Two-ended queue: front is a stack of cost-0 pushes, back a FIFO of
	// cost-1 pushes; front always drains first.
	var front, back []int
	for i, l := range data {
		if int(l) == a {
			dist[i] = 0
			front = append(front, i)
		}
	}
	pop := func() int {
		if n := len(front); n > 0 {
			u := front[n-1]
			front = front[:n-1]
			return u
		}
		u := back[0]
		back = back[1:]
		return u
	}

	scratch := make([]int, len(r.dims))
	target := -1
	for len(front)+len(back) > 0 {
		u := pop()
		if int(data[u]) == b {
			target = u
			break
		}
		du := dist[u]
		r.eachNeighbor(u, scratch, func(v int) {
			step := 0
			if data[v] == 0 {
				step = 1
			}
			if nd := du + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					front = append(front, v)
				} else {
					back = append(back, v)
				}
			}
		})
	}
	if target < 0 {
		return nil, 0, labelErrorf(ctxBridge, ErrNoPath)
	}

	for at := target; at >= 0; at = prev[at] {
		path = append(path, r.point(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
