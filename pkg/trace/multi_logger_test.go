package trace

import (
	"testing"
	"time"
)

// captureLogger records every event it receives.
type captureLogger struct {
	events []Event
}

func (c *captureLogger) Log(event Event) {
	c.events = append(c.events, event)
}

func TestMultiLoggerFansOut(t *testing.T) {
	a := &captureLogger{}
	b := &captureLogger{}
	multi := NewMultiLogger(a, b, NoopLogger{})

	event := Event{
		Timestamp:  time.Now(),
		ExchangeID: "exchange-1",
		Direction:  DirectionOut,
		Category:   CategoryMessage,
	}
	multi.Log(event)
	multi.Log(event)

	if len(a.events) != 2 || len(b.events) != 2 {
		t.Errorf("fan-out counts = %d, %d, want 2, 2", len(a.events), len(b.events))
	}
	if a.events[0].ExchangeID != "exchange-1" {
		t.Errorf("event not delivered intact: %+v", a.events[0])
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	// A MultiLogger with no targets is a valid noop.
	NewMultiLogger().Log(Event{Timestamp: time.Now()})
}
