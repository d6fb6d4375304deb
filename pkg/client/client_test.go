package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipp-protocol/ipp-go/pkg/trace"
	"github.com/ipp-protocol/ipp-go/pkg/wire"
)

// printerHandler receives the decoded request and any trailing document
// bytes and produces the reply message.
type printerHandler func(t *testing.T, req *wire.Message, doc []byte) *wire.Message

// newTestPrinter runs an HTTP server that decodes IPP request bodies and
// serializes the handler's reply.
func newTestPrinter(t *testing.T, handler printerHandler) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != ContentType {
			t.Errorf("Content-Type = %q, want %q", ct, ContentType)
		}

		// The decoder stops at the end-of-attributes sentinel, so what
		// remains in the body is the document payload.
		req, err := wire.ParseMessage(r.Body)
		if err != nil {
			t.Errorf("request decode failed: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		doc, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("document read failed: %v", err)
		}

		reply := handler(t, req, doc)
		w.Header().Set("Content-Type", ContentType)
		if _, err := reply.Write(w); err != nil {
			t.Errorf("reply write failed: %v", err)
		}
	}))
}

// newReply builds a response message echoing the request ID.
func newReply(req *wire.Message, status wire.Status) *wire.Message {
	reply := &wire.Message{
		Header: wire.Header{
			Version:   wire.DefaultVersion,
			Code:      uint16(status),
			RequestID: req.Header.RequestID,
		},
		Attributes: wire.NewAttributeList(),
	}
	reply.Attributes.Add(wire.TagOperationAttributes,
		wire.NewAttribute(wire.AttributesCharset, wire.Charset("utf-8")))
	return reply
}

func TestGetPrinterAttributes(t *testing.T) {
	server := newTestPrinter(t, func(t *testing.T, req *wire.Message, doc []byte) *wire.Message {
		assert.Equal(t, wire.OpGetPrinterAttributes, req.Header.Operation())
		assert.Empty(t, doc)

		attr, ok := req.Attributes.Get(wire.TagOperationAttributes, wire.AttributesCharset)
		require.True(t, ok, "request lacks attributes-charset")
		assert.Equal(t, wire.Charset("utf-8"), attr.Value())

		attr, ok = req.Attributes.Get(wire.TagOperationAttributes, wire.RequestedAttributes)
		require.True(t, ok, "request lacks requested-attributes")
		assert.Equal(t, wire.Array{
			wire.Keyword(wire.PrinterName),
			wire.Keyword(wire.PrinterState),
		}, attr.Value())

		reply := newReply(req, wire.StatusOk)
		reply.Attributes.Add(wire.TagPrinterAttributes,
			wire.NewAttribute(wire.PrinterName, wire.Name("basement")))
		reply.Attributes.Add(wire.TagPrinterAttributes,
			wire.NewAttribute(wire.PrinterState, wire.Enum(3)))
		return reply
	})
	defer server.Close()

	c, err := NewClient(server.URL, ClientConfig{})
	require.NoError(t, err)

	attrs, err := c.GetPrinterAttributes(context.Background(), wire.PrinterName, wire.PrinterState)
	require.NoError(t, err)

	name, ok := attrs.Get(wire.TagPrinterAttributes, wire.PrinterName)
	require.True(t, ok)
	assert.Equal(t, wire.Name("basement"), name.Value())
}

func TestPrintJob(t *testing.T) {
	const document = "%PDF-1.7 fake document"

	server := newTestPrinter(t, func(t *testing.T, req *wire.Message, doc []byte) *wire.Message {
		assert.Equal(t, wire.OpPrintJob, req.Header.Operation())
		assert.Equal(t, document, string(doc))

		name, ok := req.Attributes.Get(wire.TagOperationAttributes, wire.JobName)
		require.True(t, ok)
		assert.Equal(t, wire.Name("report"), name.Value())

		user, ok := req.Attributes.Get(wire.TagOperationAttributes, wire.RequestingUserName)
		require.True(t, ok)
		assert.Equal(t, wire.Name("alice"), user.Value())

		reply := newReply(req, wire.StatusOk)
		reply.Attributes.Add(wire.TagJobAttributes,
			wire.NewAttribute(wire.JobID, wire.Integer(42)))
		reply.Attributes.Add(wire.TagJobAttributes,
			wire.NewAttribute(wire.JobURI, wire.URI("ipp://printer/jobs/42")))
		reply.Attributes.Add(wire.TagJobAttributes,
			wire.NewAttribute(wire.JobState, wire.Enum(int32(JobStateProcessing))))
		return reply
	})
	defer server.Close()

	c, err := NewClient(server.URL, ClientConfig{UserName: "alice"})
	require.NoError(t, err)

	job, err := c.PrintJob(context.Background(), PrintJobRequest{
		JobName:  "report",
		Format:   "application/pdf",
		Document: strings.NewReader(document),
	})
	require.NoError(t, err)

	assert.Equal(t, int32(42), job.ID)
	assert.Equal(t, "ipp://printer/jobs/42", job.URI)
	assert.Equal(t, JobStateProcessing, job.State)
}

func TestPrintJobRequiresDocument(t *testing.T) {
	c, err := NewClient("ipp://printer.local/ipp/print", ClientConfig{})
	require.NoError(t, err)

	_, err = c.PrintJob(context.Background(), PrintJobRequest{JobName: "report"})
	assert.Error(t, err)
}

func TestCancelJob(t *testing.T) {
	server := newTestPrinter(t, func(t *testing.T, req *wire.Message, doc []byte) *wire.Message {
		assert.Equal(t, wire.OpCancelJob, req.Header.Operation())

		id, ok := req.Attributes.Get(wire.TagOperationAttributes, wire.JobID)
		require.True(t, ok)
		assert.Equal(t, wire.Integer(42), id.Value())

		return newReply(req, wire.StatusOk)
	})
	defer server.Close()

	c, err := NewClient(server.URL, ClientConfig{})
	require.NoError(t, err)
	require.NoError(t, c.CancelJob(context.Background(), 42))
}

func TestStatusError(t *testing.T) {
	server := newTestPrinter(t, func(t *testing.T, req *wire.Message, doc []byte) *wire.Message {
		return newReply(req, wire.StatusNotFound)
	})
	defer server.Close()

	c, err := NewClient(server.URL, ClientConfig{})
	require.NoError(t, err)

	err = c.CancelJob(context.Background(), 7)
	var statusErr StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, wire.StatusNotFound, statusErr.Status)
	assert.Contains(t, err.Error(), "client-error-not-found")
}

func TestRequestIDsIncrease(t *testing.T) {
	var seen []uint32
	server := newTestPrinter(t, func(t *testing.T, req *wire.Message, doc []byte) *wire.Message {
		seen = append(seen, req.Header.RequestID)
		return newReply(req, wire.StatusOk)
	})
	defer server.Close()

	c, err := NewClient(server.URL, ClientConfig{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.GetPrinterAttributes(context.Background())
		require.NoError(t, err)
	}

	require.Len(t, seen, 3)
	assert.Equal(t, []uint32{1, 2, 3}, seen)
}

func TestDoTracesExchange(t *testing.T) {
	server := newTestPrinter(t, func(t *testing.T, req *wire.Message, doc []byte) *wire.Message {
		return newReply(req, wire.StatusOk)
	})
	defer server.Close()

	tracer := &captureTracer{}
	c, err := NewClient(server.URL, ClientConfig{Tracer: tracer})
	require.NoError(t, err)

	_, err = c.GetPrinterAttributes(context.Background())
	require.NoError(t, err)

	require.Len(t, tracer.events, 2)
	out, in := tracer.events[0], tracer.events[1]

	assert.Equal(t, trace.DirectionOut, out.Direction)
	assert.Equal(t, trace.DirectionIn, in.Direction)
	assert.Equal(t, out.ExchangeID, in.ExchangeID)
	assert.NotEmpty(t, out.ExchangeID)

	require.NotNil(t, out.Message)
	require.NotNil(t, out.Message.Operation)
	assert.Equal(t, wire.OpGetPrinterAttributes, *out.Message.Operation)

	require.NotNil(t, in.Message)
	require.NotNil(t, in.Message.Status)
	assert.Equal(t, wire.StatusOk, *in.Message.Status)
	require.NotNil(t, in.Message.Elapsed)
}

func TestHTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c, err := NewClient(server.URL, ClientConfig{})
	require.NoError(t, err)

	_, err = c.GetPrinterAttributes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected HTTP status")
}

func TestToHTTPEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr bool
	}{
		{name: "IPPDefaultPort", uri: "ipp://printer.local/ipp/print", want: "http://printer.local:631/ipp/print"},
		{name: "IPPExplicitPort", uri: "ipp://printer.local:8631/ipp/print", want: "http://printer.local:8631/ipp/print"},
		{name: "IPPS", uri: "ipps://printer.local/ipp/print", want: "https://printer.local:631/ipp/print"},
		{name: "HTTPPassthrough", uri: "http://printer.local:9100/", want: "http://printer.local:9100/"},
		{name: "BadScheme", uri: "ftp://printer.local/", wantErr: true},
		{name: "MissingHost", uri: "ipp:///queue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toHTTPEndpoint(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDoConnectionError(t *testing.T) {
	tracer := &captureTracer{}
	c, err := NewClient("http://127.0.0.1:1/", ClientConfig{Tracer: tracer})
	require.NoError(t, err)

	_, err = c.GetPrinterAttributes(context.Background())
	require.Error(t, err)
	assert.False(t, errors.As(err, &StatusError{}), "transport errors are not status errors")

	// Outgoing message plus the error event.
	require.Len(t, tracer.events, 2)
	assert.Equal(t, trace.CategoryError, tracer.events[1].Category)
}

// captureTracer records every trace event.
type captureTracer struct {
	events []trace.Event
}

func (c *captureTracer) Log(event trace.Event) {
	c.events = append(c.events, event)
}
