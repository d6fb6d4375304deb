package wire

import (
	"bytes"
	"io"
)

// Message is a complete IPP message: the fixed header followed by the
// attribute stream.
type Message struct {
	Header     Header
	Attributes *AttributeList
}

// NewRequest builds a request message for the given operation, seeding
// the three header attributes every request must carry.
func NewRequest(op Operation, printerURI string, requestID uint32) *Message {
	m := &Message{
		Header: Header{
			Version:   DefaultVersion,
			Code:      uint16(op),
			RequestID: requestID,
		},
		Attributes: NewAttributeList(),
	}
	m.Attributes.Add(TagOperationAttributes, NewAttribute(AttributesCharset, Charset("utf-8")))
	m.Attributes.Add(TagOperationAttributes, NewAttribute(AttributesNaturalLanguage, NaturalLanguage("en")))
	m.Attributes.Add(TagOperationAttributes, NewAttribute(PrinterURI, URI(printerURI)))
	return m
}

// Write serializes the header and the attribute stream. Returns the
// total byte count written.
func (m *Message) Write(w io.Writer) (int, error) {
	total, err := m.Header.Write(w)
	if err != nil {
		return total, err
	}
	n, err := m.Attributes.Write(w)
	return total + n, err
}

// Reader returns the serialized message as a readable stream, buffering
// the full serialization up front.
func (m *Message) Reader() io.Reader {
	var buf bytes.Buffer
	_, _ = m.Write(&buf)
	return bytes.NewReader(buf.Bytes())
}

// ParseMessage decodes a complete message from r.
func ParseMessage(r io.Reader) (*Message, error) {
	result, err := NewParser(r).Parse()
	if err != nil {
		return nil, err
	}
	return &Message{Header: result.Header, Attributes: result.Attributes}, nil
}
