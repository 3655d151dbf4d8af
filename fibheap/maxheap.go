package fibheap

// MaxHeap is the max-oriented mirror of Heap, used where a component
// needs "largest first" ordering (monotonic regression's per-block
// violator search, §4.7). It negates keys internally and delegates to
// a Heap[V].
type MaxHeap[V any] struct {
	inner *Heap[V]
}

// NewMax returns an empty MaxHeap.
func NewMax[V any]() *MaxHeap[V] {
	return &MaxHeap[V]{inner: New[V]()}
}

// Len returns the number of elements.
func (h *MaxHeap[V]) Len() int { return h.inner.Len() }

// Empty reports whether the heap holds no elements.
func (h *MaxHeap[V]) Empty() bool { return h.inner.Empty() }

// Insert adds an element keyed by key (descending order).
func (h *MaxHeap[V]) Insert(key float64, val V) Handle {
	return h.inner.Insert(-key, val)
}

// Max returns the handle, key and payload of the maximum element.
func (h *MaxHeap[V]) Max() (handle Handle, key float64, val V, ok bool) {
	handle, negKey, val, ok := h.inner.Min()

	return handle, -negKey, val, ok
}

// ExtractMax removes and returns the maximum element's payload.
func (h *MaxHeap[V]) ExtractMax() (V, bool) {
	return h.inner.ExtractMin()
}

// Merge absorbs other into h; like Heap.Merge it copies other's arena.
func (h *MaxHeap[V]) Merge(other *MaxHeap[V]) {
	if other == nil {
		return
	}
	h.inner.Merge(other.inner)
}

// IncreaseKey raises the key of handle to newKey (must be >= current).
func (h *MaxHeap[V]) IncreaseKey(handle Handle, newKey float64) {
	h.inner.DecreaseKey(handle, -newKey)
}
