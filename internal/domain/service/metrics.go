package service

// Metrics records business counters. Implementations must be safe for concurrent use.
type Metrics interface {
	OrderCreated()
	ConversionItem(result string)
	SweepDeleted(n int)
	EventPublished(name EventName, ok bool)
	WebSocketConnections(delta int)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) OrderCreated()                  {}
func (NopMetrics) ConversionItem(string)          {}
func (NopMetrics) SweepDeleted(int)               {}
func (NopMetrics) EventPublished(EventName, bool) {}
func (NopMetrics) WebSocketConnections(int)       {}
