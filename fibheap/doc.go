// Package fibheap implements a mergeable Fibonacci heap keyed by
// float64, generic over an arbitrary payload type.
//
// What:
//
//   - Heap[V] is a min-heap: Insert, Min, ExtractMin, DecreaseKey,
//     Merge (copies the other heap's arena, then splices root lists), Len.
//   - MaxHeap[V] is the max-heap mirror (keys negated internally),
//     used by the monotonic-regression least-squares mode (§4.7) to
//     track the largest violating child of a regression block.
//   - Handle identifies a live node for DecreaseKey; it stays valid
//     for the node's lifetime in the arena.
//
// Why:
//
//   - Spec component C requires a mergeable priority queue with
//     decrease-key/handle updates, which a Fibonacci heap provides. The
//     source's cyclic node ownership
//     (parent/child/sibling pointers, §9 design notes) is replaced here
//     with an arena of integer indices; INVALID (-1) marks absent
//     links, and deleted slots are recycled via an embedded free list.
//
// Complexity: Insert O(1) amortized, Merge O(size of the merged-in
// heap's arena), DecreaseKey O(1) amortized, ExtractMin O(log n)
// amortized.
package fibheap
