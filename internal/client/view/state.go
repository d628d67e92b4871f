package view

import "github.com/dmitrijs2005/tweetstats/internal/client/metrics"

// State is the fetch status of the view. It is exactly one of Idle,
// Loading, Failed or Loaded.
type State interface {
	fetchState()
}

// Idle: nothing submitted yet, or reset by logout.
type Idle struct{}

type Loading struct{}

type Failed struct {
	Err error
}

// Loaded holds the records of a successful fetch. Records may be empty
// when the response carried no usable metrics.
type Loaded struct {
	Records []metrics.ChartRecord
}

func (Idle) fetchState()    {}
func (Loading) fetchState() {}
func (Failed) fetchState()  {}
func (Loaded) fetchState()  {}
