package wire

import (
	"errors"
	"testing"
)

func TestTagClassification(t *testing.T) {
	tests := []struct {
		name      string
		b         byte
		delimiter bool
		value     bool
	}{
		{"operation group", 0x01, true, false},
		{"end of attributes", 0x03, true, false},
		{"reserved delimiter", 0x0f, true, false},
		{"out-of-band unsupported", 0x10, false, true},
		{"integer", 0x21, false, true},
		{"keyword", 0x44, false, true},
		{"memberAttrName", 0x4a, false, true},
		{"beyond value range", 0x4b, false, false},
		{"high byte", 0xff, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDelimiterTag(tt.b); got != tt.delimiter {
				t.Errorf("isDelimiterTag(0x%02x) = %v, want %v", tt.b, got, tt.delimiter)
			}
			if got := isValueTag(tt.b); got != tt.value {
				t.Errorf("isValueTag(0x%02x) = %v, want %v", tt.b, got, tt.value)
			}
		})
	}
}

func TestDelimiterFromByte(t *testing.T) {
	for _, b := range []byte{0x01, 0x02, 0x03, 0x04, 0x05} {
		got, err := delimiterFromByte(b)
		if err != nil {
			t.Fatalf("delimiterFromByte(0x%02x) failed: %v", b, err)
		}
		if got != DelimiterTag(b) {
			t.Errorf("delimiterFromByte(0x%02x) = %v", b, got)
		}
	}

	_, err := delimiterFromByte(0x0e)
	var tagErr TagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("expected TagError, got %v", err)
	}
	if tagErr.Tag != 0x0e {
		t.Errorf("TagError.Tag = 0x%02x, want 0x0e", tagErr.Tag)
	}
}

func TestTagNames(t *testing.T) {
	if got := TagOperationAttributes.String(); got != "operation-attributes-tag" {
		t.Errorf("TagOperationAttributes.String() = %q", got)
	}
	if got := TagKeyword.String(); got != "keyword" {
		t.Errorf("TagKeyword.String() = %q", got)
	}
	if got := ValueTag(0x40).String(); got != "0x40" {
		t.Errorf("unknown value tag String() = %q", got)
	}
}
