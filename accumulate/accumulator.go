package accumulate

import "math"

// Accumulator is a reusable stateful reducer over a sequence of
// same-shape scalar payloads (spec §4.3). Result fails (returns a
// non-nil error) only for Mean, before any value has been
// accumulated.
type Accumulator interface {
	Reset()
	Accumulate(v float64)
	Result() (float64, error)
}

// Factory returns a fresh Accumulator instance; accumulate.Parallel et
// al. call it once per output column so concurrent columns never share
// state.
type Factory func() Accumulator

type sumAcc struct{ total float64 }

func (a *sumAcc) Reset()              { a.total = 0 }
func (a *sumAcc) Accumulate(v float64) { a.total += v }
func (a *sumAcc) Result() (float64, error) { return a.total, nil }

// Sum returns a Factory for the additive accumulator (identity 0).
func Sum() Factory { return func() Accumulator { return &sumAcc{} } }

type prodAcc struct{ total float64 }

func (a *prodAcc) Reset()              { a.total = 1 }
func (a *prodAcc) Accumulate(v float64) { a.total *= v }
func (a *prodAcc) Result() (float64, error) { return a.total, nil }

// Prod returns a Factory for the multiplicative accumulator (identity 1).
func Prod() Factory { return func() Accumulator { acc := &prodAcc{}; acc.Reset(); return acc } }

type minAcc struct{ val float64 }

func (a *minAcc) Reset()  { a.val = math.Inf(1) }
func (a *minAcc) Accumulate(v float64) {
	if v < a.val {
		a.val = v
	}
}
func (a *minAcc) Result() (float64, error) { return a.val, nil }

// Min returns a Factory for the minimum accumulator (identity +Inf).
func Min() Factory { return func() Accumulator { acc := &minAcc{}; acc.Reset(); return acc } }

type maxAcc struct{ val float64 }

func (a *maxAcc) Reset()  { a.val = math.Inf(-1) }
func (a *maxAcc) Accumulate(v float64) {
	if v > a.val {
		a.val = v
	}
}
func (a *maxAcc) Result() (float64, error) { return a.val, nil }

// Max returns a Factory for the maximum accumulator (identity -Inf).
func Max() Factory { return func() Accumulator { acc := &maxAcc{}; acc.Reset(); return acc } }

type meanAcc struct {
	total float64
	count int
}

func (a *meanAcc) Reset()  { a.total, a.count = 0, 0 }
func (a *meanAcc) Accumulate(v float64) {
	a.total += v
	a.count++
}
func (a *meanAcc) Result() (float64, error) {
	if a.count == 0 {
		return 0, errUnsupported("accumulate.Mean", "mean is undefined on an empty sequence")
	}

	return a.total / float64(a.count), nil
}

// Mean returns a Factory for the arithmetic-mean accumulator. Result
// fails loudly (spec §4.3) when nothing was ever accumulated.
func Mean() Factory { return func() Accumulator { return &meanAcc{} } }

type counterAcc struct{ count int }

func (a *counterAcc) Reset()              { a.count = 0 }
func (a *counterAcc) Accumulate(float64)  { a.count++ }
func (a *counterAcc) Result() (float64, error) { return float64(a.count), nil }

// Counter returns a Factory counting the number of accumulated values,
// ignoring their magnitude.
func Counter() Factory { return func() Accumulator { return &counterAcc{} } }
