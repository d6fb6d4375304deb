package wire

import (
	"bytes"
	"reflect"
	"testing"
)

func TestValueRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value Value
	}{
		{"integer", Integer(-5)},
		{"enum", Enum(4)},
		{"boolean true", Boolean(true)},
		{"boolean false", Boolean(false)},
		{"keyword", Keyword("one-sided")},
		{"uri", URI("ipp://printer.local/ipp/print")},
		{"charset", Charset("utf-8")},
		{"empty string", Text("")},
		{"octet string", OctetString("\x00\x01\x02")},
		{"range", RangeOfInteger{Min: 1, Max: 100}},
		{"resolution", Resolution{CrossFeed: 600, Feed: 600, Units: UnitsDpi}},
		{"text with language", TextWithLanguage{Lang: "de", Text: "Hallo"}},
		{"name with language", NameWithLanguage{Lang: "fr", Name: "imprimante"}},
		{
			"date time",
			DateTime{
				Year: 2018, Month: 6, Day: 1, Hour: 12, Minutes: 30,
				Seconds: 15, DeciSeconds: 0, UTCDir: '+', UTCHours: 2,
			},
		},
		{"other", Other{ValueTag: ValueTag(0x40), Data: []byte{0xde, 0xad}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			n, err := tt.value.write(buf)
			if err != nil {
				t.Fatalf("write failed: %v", err)
			}
			if n != buf.Len() {
				t.Errorf("write returned %d, buffer holds %d", n, buf.Len())
			}

			got, err := readValue(tt.value.Tag(), buf)
			if err != nil {
				t.Fatalf("readValue failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.value) {
				t.Errorf("round trip mismatch: got %#v, want %#v", got, tt.value)
			}
			if buf.Len() != 0 {
				t.Errorf("%d bytes left unread", buf.Len())
			}
		})
	}
}

func TestReadValueBadLength(t *testing.T) {
	tests := []struct {
		name string
		tag  ValueTag
		data []byte
	}{
		{"short integer", TagInteger, []byte{0x00, 0x02, 0x00, 0x01}},
		{"long boolean", TagBoolean, []byte{0x00, 0x02, 0x01, 0x01}},
		{"short resolution", TagResolution, []byte{0x00, 0x04, 0, 0, 0, 1}},
		{"truncated text with language", TagTextWithLanguage, []byte{0x00, 0x01, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := readValue(tt.tag, bytes.NewReader(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestArrayTag(t *testing.T) {
	arr := Array{Keyword("a"), Keyword("b")}
	if got := arr.Tag(); got != TagKeyword {
		t.Errorf("Array.Tag() = %v, want keyword", got)
	}
	if got := (Array{}).Tag(); got != TagNoValue {
		t.Errorf("empty Array.Tag() = %v, want no-value", got)
	}
}

func TestValueStrings(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Integer(42), "42"},
		{Boolean(true), "true"},
		{RangeOfInteger{Min: 1, Max: 100}, "1-100"},
		{Resolution{CrossFeed: 300, Feed: 300, Units: UnitsDpi}, "300x300dpi"},
		{Array{Keyword("a"), Keyword("b")}, "[a, b]"},
		{Collection{MemberName("x"), Integer(1)}, "{x, 1}"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
