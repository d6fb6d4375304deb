package trace

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/ipp-protocol/ipp-go/pkg/wire"
)

// writeTraceFile writes the given events to a fresh trace file and
// returns its path.
func writeTraceFile(t *testing.T, events []Event) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.itrace")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, event := range events {
		logger.Log(event)
	}
	logger.Close()
	return path
}

func sampleEvents() []Event {
	op := wire.OpGetPrinterAttributes
	status := wire.StatusOk
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []Event{
		{
			Timestamp:  base,
			ExchangeID: "exchange-1",
			Direction:  DirectionOut,
			Category:   CategoryMessage,
			Message:    &MessageEvent{Version: "1.1", RequestID: 1, Operation: &op, Attributes: 4},
		},
		{
			Timestamp:  base.Add(50 * time.Millisecond),
			ExchangeID: "exchange-1",
			Direction:  DirectionIn,
			Category:   CategoryMessage,
			Message:    &MessageEvent{Version: "1.1", RequestID: 1, Status: &status, Attributes: 12},
		},
		{
			Timestamp:  base.Add(time.Second),
			ExchangeID: "exchange-2",
			Direction:  DirectionOut,
			Category:   CategoryError,
			Error:      &ErrorEvent{Message: "connection refused", Context: "Print-Job"},
		},
	}
}

func TestReaderReadsAllEvents(t *testing.T) {
	path := writeTraceFile(t, sampleEvents())

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var got []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got = append(got, event)
	}

	if len(got) != 3 {
		t.Fatalf("read %d events, want 3", len(got))
	}
	if got[0].Message == nil || got[0].Message.Operation == nil {
		t.Fatal("first event lost its operation")
	}
	if *got[0].Message.Operation != wire.OpGetPrinterAttributes {
		t.Errorf("operation = %v", *got[0].Message.Operation)
	}
	if got[2].Error == nil || got[2].Error.Message != "connection refused" {
		t.Errorf("third event error = %+v", got[2].Error)
	}
}

func TestReaderFilterByExchange(t *testing.T) {
	path := writeTraceFile(t, sampleEvents())

	reader, err := NewFilteredReader(path, Filter{ExchangeID: "exchange-1"})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if event.ExchangeID != "exchange-1" {
			t.Errorf("filter let through %q", event.ExchangeID)
		}
		count++
	}
	if count != 2 {
		t.Errorf("matched %d events, want 2", count)
	}
}

func TestReaderFilterByDirectionAndCategory(t *testing.T) {
	path := writeTraceFile(t, sampleEvents())

	in := DirectionIn
	msg := CategoryMessage
	reader, err := NewFilteredReader(path, Filter{Direction: &in, Category: &msg})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if event.Direction != DirectionIn || event.Message == nil || event.Message.Status == nil {
		t.Errorf("unexpected event: %+v", event)
	}

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestReaderFilterByTime(t *testing.T) {
	path := writeTraceFile(t, sampleEvents())

	start := time.Date(2026, 8, 1, 12, 0, 0, 500_000_000, time.UTC)
	reader, err := NewFilteredReader(path, Filter{TimeStart: &start})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if event.ExchangeID != "exchange-2" {
		t.Errorf("got %q, want exchange-2", event.ExchangeID)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "absent.itrace")); err == nil {
		t.Error("expected error for missing file")
	}
}
