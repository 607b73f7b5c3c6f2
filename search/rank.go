package search

import "container/heap"

// better reports whether a ranks strictly before b. The ordering is total:
// the final tie-break on (enumeration index, region index) never equates
// two distinct candidates, so ranking is independent of evaluation order.
func better(a, b Candidate) bool {
	if a.CombinedPass != b.CombinedPass {
		return a.CombinedPass
	}
	if a.Pass != b.Pass {
		return a.Pass
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if len(a.Matched) != len(b.Matched) {
		return len(a.Matched) > len(b.Matched)
	}
	if a.Word != b.Word {
		return a.Word < b.Word
	}
	if a.combo != b.combo {
		return a.combo < b.combo
	}
	return a.regionIdx < b.regionIdx
}

// betterCombined ranks whole combinations; same shape as better, minus the
// region axis.
func betterCombined(a, b Combined) bool {
	if a.Pass != b.Pass {
		return a.Pass
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Matched != b.Matched {
		return a.Matched > b.Matched
	}
	if a.Word != b.Word {
		return a.Word < b.Word
	}
	return a.combo < b.combo
}

// candHeap is a min-heap over better: the worst retained candidate sits at
// the root, so a full heap evicts in O(log k).
type candHeap []Candidate

func (h candHeap) Len() int            { return len(h) }
func (h candHeap) Less(i, j int) bool  { return better(h[j], h[i]) }
func (h candHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candHeap) Push(x interface{}) { *h = append(*h, x.(Candidate)) }
func (h *candHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// topK retains the k best candidates seen so far.
type topK struct {
	k int
	h candHeap
}

func newTopK(k int) *topK {
	return &topK{k: k, h: make(candHeap, 0, k)}
}

// add offers a candidate; it is dropped immediately unless it beats the
// current worst retained one.
func (t *topK) add(c Candidate) {
	if len(t.h) < t.k {
		heap.Push(&t.h, c)
		return
	}
	if better(c, t.h[0]) {
		t.h[0] = c
		heap.Fix(&t.h, 0)
	}
}

// ranked drains the heap into a best-first slice. The heap is consumed.
func (t *topK) ranked() []Candidate {
	out := make([]Candidate, len(t.h))
	for i := len(t.h) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&t.h).(Candidate)
	}
	return out
}
