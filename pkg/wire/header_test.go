package wire

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	header := Header{
		Version:   Version20,
		Code:      uint16(OpPrintJob),
		RequestID: 0xdeadbeef,
	}

	buf := new(bytes.Buffer)
	n, err := header.Write(buf)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != 8 {
		t.Errorf("Write returned %d, want 8", n)
	}

	want := []byte{0x02, 0x00, 0x00, 0x02, 0xde, 0xad, 0xbe, 0xef}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("wire bytes = % x, want % x", buf.Bytes(), want)
	}

	parsed, err := ReadHeader(buf)
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}
	if parsed != header {
		t.Errorf("parsed = %+v, want %+v", parsed, header)
	}
	if parsed.Operation() != OpPrintJob {
		t.Errorf("Operation() = %v, want %v", parsed.Operation(), OpPrintJob)
	}
}

func TestReadHeaderTruncated(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader([]byte{0x01, 0x01, 0x00}))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("err = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		version Version
		major   uint8
		minor   uint8
		str     string
	}{
		{Version10, 1, 0, "1.0"},
		{Version11, 1, 1, "1.1"},
		{Version20, 2, 0, "2.0"},
		{Version22, 2, 2, "2.2"},
	}
	for _, tc := range tests {
		if tc.version.Major() != tc.major || tc.version.Minor() != tc.minor {
			t.Errorf("%s: Major/Minor = %d.%d, want %d.%d",
				tc.str, tc.version.Major(), tc.version.Minor(), tc.major, tc.minor)
		}
		if tc.version.String() != tc.str {
			t.Errorf("String() = %q, want %q", tc.version.String(), tc.str)
		}
	}
}

func TestStatusClassification(t *testing.T) {
	if !StatusOk.IsSuccess() {
		t.Error("successful-ok should classify as success")
	}
	if StatusOk.IsError() {
		t.Error("successful-ok should not classify as error")
	}
	if !StatusNotFound.IsError() {
		t.Error("client-error-not-found should classify as error")
	}
}
