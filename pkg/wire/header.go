package wire

import (
	"fmt"
	"io"
)

// Version is the IPP protocol version, major byte then minor byte.
type Version uint16

const (
	Version10 Version = 0x0100
	Version11 Version = 0x0101
	Version20 Version = 0x0200
	Version21 Version = 0x0201
	Version22 Version = 0x0202

	// DefaultVersion is used for requests built by this package.
	DefaultVersion = Version11
)

// Major returns the major version number.
func (v Version) Major() uint8 { return uint8(v >> 8) }

// Minor returns the minor version number.
func (v Version) Minor() uint8 { return uint8(v) }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Header is the fixed 8-byte prelude of every IPP message, transmitted
// before the attribute stream.
type Header struct {
	// Version is the protocol version.
	Version Version

	// Code carries the operation code in a request and the status code
	// in a response.
	Code uint16

	// RequestID correlates a response with its request.
	RequestID uint32
}

// Operation interprets the code field of a request header.
func (h Header) Operation() Operation { return Operation(h.Code) }

// Status interprets the code field of a response header.
func (h Header) Status() Status { return Status(h.Code) }

// Write serializes the header and returns the byte count (always 8 on
// success).
func (h Header) Write(w io.Writer) (int, error) {
	total, err := writeUint16(w, uint16(h.Version))
	if err != nil {
		return total, err
	}
	n, err := writeUint16(w, h.Code)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeUint32(w, h.RequestID)
	return total + n, err
}

// ReadHeader consumes the 8-byte message prelude from r.
func ReadHeader(r io.Reader) (Header, error) {
	version, err := readUint16(r)
	if err != nil {
		return Header{}, err
	}
	code, err := readUint16(r)
	if err != nil {
		return Header{}, err
	}
	requestID, err := readUint32(r)
	if err != nil {
		return Header{}, err
	}
	return Header{
		Version:   Version(version),
		Code:      code,
		RequestID: requestID,
	}, nil
}
