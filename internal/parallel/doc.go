// Package parallel is the fork-join worker pool spec §5 restricts
// every component to: data-parallel sweeps over an index range, no
// shared mutable state between workers beyond each one's disjoint
// output slot, and a result identical to what a sequential scan over
// the same range would produce.
//
// There is no worker-pool library anywhere in the example corpus;
// core.Graph's only concurrency is mutex-guarded access to shared
// maps, which is the wrong shape for a fork-join sweep (the whole
// point is to avoid contending on a shared lock per element). This
// package follows the corpus's plain-goroutines-plus-sync.WaitGroup
// idiom instead of introducing an external concurrency library the
// corpus never reaches for.
package parallel
