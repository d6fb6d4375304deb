package trace

import (
	"time"

	"github.com/ipp-protocol/ipp-go/pkg/wire"
)

// Event represents one traced occurrence during an IPP exchange.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ExchangeID uniquely identifies the request/response exchange (UUID).
	ExchangeID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// RemoteAddr is the printer endpoint URL.
	RemoteAddr string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Message  *MessageEvent  `cbor:"6,keyasint,omitempty"` // Decoded IPP message
	Document *DocumentEvent `cbor:"7,keyasint,omitempty"` // Print document payload
	Error    *ErrorEvent    `cbor:"8,keyasint,omitempty"` // Errors at any point
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates an IPP request or response.
	CategoryMessage Category = 0
	// CategoryDocument indicates document data accompanying a request.
	CategoryDocument Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryDocument:
		return "DOCUMENT"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MessageEvent captures a decoded IPP message.
type MessageEvent struct {
	// Version is the protocol version from the message header.
	Version string `cbor:"1,keyasint"`

	// RequestID correlates request/response pairs.
	RequestID uint32 `cbor:"2,keyasint"`

	// For requests: the operation being performed.
	Operation *wire.Operation `cbor:"3,keyasint,omitempty"`

	// For responses: the status code.
	Status *wire.Status `cbor:"4,keyasint,omitempty"`

	// Attributes is the total attribute count across all groups.
	Attributes int `cbor:"5,keyasint"`

	// Size is the serialized message size in bytes, when known.
	Size int `cbor:"6,keyasint,omitempty"`

	// Elapsed is the duration from request send to response receipt
	// (responses only). Stored as nanoseconds.
	Elapsed *time.Duration `cbor:"7,keyasint,omitempty"`
}

// DocumentEvent captures the document payload of a print request.
type DocumentEvent struct {
	// Format is the document MIME media type, if declared.
	Format string `cbor:"1,keyasint,omitempty"`

	// Size is the document size in bytes.
	Size int64 `cbor:"2,keyasint"`
}

// ErrorEvent captures errors at any point of an exchange.
type ErrorEvent struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
