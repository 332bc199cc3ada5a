package services

import "sync/atomic"

// VisitCounter counts visits for the lifetime of the process.
type VisitCounter struct {
	visits atomic.Int64
}

// NewVisitCounter returns a counter starting at zero.
func NewVisitCounter() *VisitCounter {
	return &VisitCounter{}
}

// Visit records one visit and returns the running total.
func (c *VisitCounter) Visit() int64 {
	return c.visits.Add(1)
}
