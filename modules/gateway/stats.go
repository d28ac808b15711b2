package gateway

import (
	"container/heap"
	"sort"
	"time"
)

// TopSearches counts searched words and answers top-N queries. Not safe
// for concurrent use; the gateway guards it together with ResponseTime.
type TopSearches struct {
	counts map[string]uint64
}

func NewTopSearches() *TopSearches {
	return &TopSearches{counts: make(map[string]uint64)}
}

func (t *TopSearches) AddSearch(word string) {
	t.counts[word]++
}

type SearchCount struct {
	Word  string
	Count uint64
}

// TopN returns the n most searched words, most searched first, using a
// bounded min-heap so the scan is O(m log n) over m unique words.
func (t *TopSearches) TopN(n int) []SearchCount {
	if n <= 0 {
		return nil
	}

	h := make(countHeap, 0, n)
	heap.Init(&h)
	for word, count := range t.counts {
		if len(h) < n {
			heap.Push(&h, SearchCount{Word: word, Count: count})
			continue
		}
		if count > h[0].Count {
			h[0] = SearchCount{Word: word, Count: count}
			heap.Fix(&h, 0)
		}
	}

	out := []SearchCount(h)
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

type countHeap []SearchCount

func (h countHeap) Len() int            { return len(h) }
func (h countHeap) Less(i, j int) bool  { return h[i].Count < h[j].Count }
func (h countHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *countHeap) Push(x interface{}) { *h = append(*h, x.(SearchCount)) }
func (h *countHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// ResponseTime is a running arithmetic mean of observed call latencies in
// milliseconds.
type ResponseTime struct {
	meanMillis float64
	count      uint64
}

// NewSample folds in the elapsed time since start.
func (r *ResponseTime) NewSample(start time.Time) {
	r.addMillis(float64(time.Since(start)) / float64(time.Millisecond))
}

func (r *ResponseTime) addMillis(d float64) {
	r.meanMillis = (r.meanMillis*float64(r.count) + d) / float64(r.count+1)
	r.count++
}

// Update merges other into r with a count-weighted mean.
func (r *ResponseTime) Update(other ResponseTime) {
	if r.count+other.count == 0 {
		return
	}
	r.meanMillis = (r.meanMillis*float64(r.count) + other.meanMillis*float64(other.count)) /
		float64(r.count+other.count)
	r.count += other.count
}

func (r *ResponseTime) MeanMillis() float64 {
	return r.meanMillis
}

func (r *ResponseTime) Count() uint64 {
	return r.count
}
