// Package pkg
package pkg

// EMA is an exponential moving average. The first observation seeds the
// average directly.
type EMA struct {
	alpha float64
	value float64
	init  bool
}

func NewEMA(alpha float64) *EMA {
	return &EMA{alpha: alpha}
}

func (e *EMA) Add(v float64) float64 {
	if !e.init {
		e.value = v
		e.init = true
		return e.value
	}

	e.value = e.alpha*v + (1-e.alpha)*e.value
	return e.value
}

func (e *EMA) Value() float64 {
	return e.value
}
