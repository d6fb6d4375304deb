package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ipp-protocol/ipp-go/pkg/trace"
	"github.com/ipp-protocol/ipp-go/pkg/wire"
)

// ContentType is the MIME media type of IPP message bodies.
const ContentType = "application/ipp"

// DefaultRequestTimeout bounds an exchange when the caller's context
// carries no deadline.
const DefaultRequestTimeout = 30 * time.Second

// ClientConfig configures an IPP client.
type ClientConfig struct {
	// RequestTimeout is the per-exchange timeout applied when the
	// context has no deadline (default: 30s).
	RequestTimeout time.Duration

	// HTTPClient is the underlying HTTP client. Defaults to a fresh
	// http.Client; supply one to control TLS settings or transports.
	HTTPClient *http.Client

	// Tracer receives an event per message and error. Nil disables tracing.
	Tracer trace.Logger

	// UserName is sent as requesting-user-name on job operations.
	UserName string
}

// Client speaks IPP to a single printer endpoint. Messages travel as
// application/ipp bodies of HTTP POST requests.
//
// A Client is safe for concurrent use; request IDs are allocated from an
// atomic counter.
type Client struct {
	endpoint   string // http(s) form of the printer URI
	printerURI string // original ipp(s) form, sent as printer-uri
	config     ClientConfig
	httpClient *http.Client
	tracer     trace.Logger

	requestID atomic.Uint32
}

// NewClient creates a client for the given printer URI. The URI uses the
// ipp or ipps scheme (http/https are accepted as-is); a missing port
// defaults to 631.
func NewClient(printerURI string, config ClientConfig) (*Client, error) {
	endpoint, err := toHTTPEndpoint(printerURI)
	if err != nil {
		return nil, err
	}

	if config.RequestTimeout == 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = trace.NoopLogger{}
	}

	return &Client{
		endpoint:   endpoint,
		printerURI: printerURI,
		config:     config,
		httpClient: httpClient,
		tracer:     tracer,
	}, nil
}

// Endpoint returns the HTTP form of the printer URI.
func (c *Client) Endpoint() string { return c.endpoint }

// PrinterURI returns the printer URI as given to NewClient.
func (c *Client) PrinterURI() string { return c.printerURI }

// NewRequest builds a request message addressed to this client's printer,
// with a fresh request ID.
func (c *Client) NewRequest(op wire.Operation) *wire.Message {
	return wire.NewRequest(op, c.printerURI, c.nextRequestID())
}

// nextRequestID allocates a request ID. IPP demands a nonzero value.
func (c *Client) nextRequestID() uint32 {
	id := c.requestID.Add(1)
	if id == 0 {
		id = c.requestID.Add(1)
	}
	return id
}

// Do sends a request message and returns the decoded response. When
// document is non-nil its bytes follow the message in the request body,
// as Print-Job and Send-Document require.
func (c *Client) Do(ctx context.Context, msg *wire.Message, document io.Reader) (*wire.Message, error) {
	// Apply timeout from config if context doesn't have one
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.RequestTimeout)
		defer cancel()
	}

	exchangeID := uuid.New().String()
	op := msg.Header.Operation()

	body := msg.Reader()
	var doc *countingReader
	if document != nil {
		doc = &countingReader{r: document}
		body = io.MultiReader(body, doc)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("Accept", ContentType)

	c.tracer.Log(trace.Event{
		Timestamp:  time.Now(),
		ExchangeID: exchangeID,
		Direction:  trace.DirectionOut,
		Category:   trace.CategoryMessage,
		RemoteAddr: c.endpoint,
		Message: &trace.MessageEvent{
			Version:    msg.Header.Version.String(),
			RequestID:  msg.Header.RequestID,
			Operation:  &op,
			Attributes: countAttributes(msg.Attributes),
		},
	})

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.traceError(exchangeID, err, op.String())
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if doc != nil {
		c.tracer.Log(trace.Event{
			Timestamp:  time.Now(),
			ExchangeID: exchangeID,
			Direction:  trace.DirectionOut,
			Category:   trace.CategoryDocument,
			RemoteAddr: c.endpoint,
			Document:   &trace.DocumentEvent{Size: doc.n},
		})
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%s: unexpected HTTP status %s", op, resp.Status)
		c.traceError(exchangeID, err, op.String())
		return nil, err
	}

	reply, err := wire.ParseMessage(resp.Body)
	if err != nil {
		c.traceError(exchangeID, err, op.String())
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	elapsed := time.Since(started)
	status := reply.Header.Status()
	c.tracer.Log(trace.Event{
		Timestamp:  time.Now(),
		ExchangeID: exchangeID,
		Direction:  trace.DirectionIn,
		Category:   trace.CategoryMessage,
		RemoteAddr: c.endpoint,
		Message: &trace.MessageEvent{
			Version:    reply.Header.Version.String(),
			RequestID:  reply.Header.RequestID,
			Status:     &status,
			Attributes: countAttributes(reply.Attributes),
			Elapsed:    &elapsed,
		},
	})

	return reply, nil
}

func (c *Client) traceError(exchangeID string, err error, context string) {
	c.tracer.Log(trace.Event{
		Timestamp:  time.Now(),
		ExchangeID: exchangeID,
		Direction:  trace.DirectionOut,
		Category:   trace.CategoryError,
		RemoteAddr: c.endpoint,
		Error:      &trace.ErrorEvent{Message: err.Error(), Context: context},
	})
}

// StatusError is returned when the printer answers with a non-success
// IPP status code.
type StatusError struct {
	Status wire.Status
}

func (e StatusError) Error() string {
	return fmt.Sprintf("ipp: %s", e.Status)
}

// checkStatus converts an error-class response status into a StatusError.
func checkStatus(reply *wire.Message) error {
	if status := reply.Header.Status(); status.IsError() {
		return StatusError{Status: status}
	}
	return nil
}

// toHTTPEndpoint rewrites an ipp/ipps URI to its HTTP transport form,
// filling in the default port.
func toHTTPEndpoint(printerURI string) (string, error) {
	u, err := url.Parse(printerURI)
	if err != nil {
		return "", fmt.Errorf("invalid printer URI %q: %w", printerURI, err)
	}

	switch u.Scheme {
	case "ipp":
		u.Scheme = "http"
	case "ipps":
		u.Scheme = "https"
	case "http", "https":
		// already in transport form
	default:
		return "", fmt.Errorf("invalid printer URI %q: unsupported scheme %q", printerURI, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid printer URI %q: missing host", printerURI)
	}
	if u.Port() == "" {
		u.Host = fmt.Sprintf("%s:%d", u.Hostname(), 631)
	}
	return u.String(), nil
}

// countAttributes tallies attributes across all groups for tracing.
func countAttributes(list *wire.AttributeList) int {
	n := 0
	for _, group := range []wire.DelimiterTag{
		wire.TagOperationAttributes,
		wire.TagJobAttributes,
		wire.TagPrinterAttributes,
		wire.TagUnsupportedAttributes,
	} {
		n += len(list.Group(group))
	}
	return n
}

// countingReader counts bytes as they are consumed.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
