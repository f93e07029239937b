package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one decision's search effort across all
// workers.
type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Playouts     int64
	FullPlayouts int64
	Exhausted    bool
}

// Collector gathers search metrics. Workers share one collector per
// decision, so implementations must be safe for concurrent use.
type Collector interface {
	Start()
	AddPlayout()
	AddFullPlayout()
	SetExhausted()
	Complete() SearchMetrics
}

type collector struct {
	startTime    time.Time
	playouts     atomic.Int64
	fullPlayouts atomic.Int64
	exhausted    atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start marks the beginning of a decision and clears the previous
// decision's counts.
func (c *collector) Start() {
	c.startTime = time.Now()
	c.playouts.Store(0)
	c.fullPlayouts.Store(0)
	c.exhausted.Store(false)
}

func (c *collector) AddPlayout() {
	c.playouts.Add(1)
}

func (c *collector) AddFullPlayout() {
	c.fullPlayouts.Add(1)
}

func (c *collector) SetExhausted() {
	c.exhausted.Store(true)
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:    c.startTime,
		Duration:     time.Since(c.startTime),
		Playouts:     c.playouts.Load(),
		FullPlayouts: c.fullPlayouts.Load(),
		Exhausted:    c.exhausted.Load(),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector { return dummyCollector{} }

func (dummyCollector) Start()                  {}
func (dummyCollector) AddPlayout()             {}
func (dummyCollector) AddFullPlayout()         {}
func (dummyCollector) SetExhausted()           {}
func (dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
