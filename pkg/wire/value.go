package wire

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Value is a single IPP attribute value. The set of implementations is
// closed: the value tag alone determines the wire shape, in both
// directions of the codec.
//
// On the wire every value is a 2-byte big-endian length followed by that
// many payload bytes. The multi-record forms (Array, Collection) also
// emit the continuation records that carry their additional values.
type Value interface {
	// Tag returns the value tag emitted ahead of the attribute name.
	Tag() ValueTag

	// String renders the value for diagnostics.
	String() string

	// write emits the value bytes and returns the count written.
	write(w io.Writer) (int, error)
}

// Integer is a 32-bit signed integer value.
type Integer int32

// Enum is an enumeration value, transmitted like an integer.
type Enum int32

// Boolean is a single-byte boolean value.
type Boolean bool

// OctetString is an opaque byte-string value.
type OctetString string

// Text is a textWithoutLanguage value.
type Text string

// Name is a nameWithoutLanguage value.
type Name string

// Keyword is a keyword value.
type Keyword string

// URI is a uri value.
type URI string

// URIScheme is a uriScheme value.
type URIScheme string

// Charset is a charset value.
type Charset string

// NaturalLanguage is a naturalLanguage value.
type NaturalLanguage string

// MimeMediaType is a mimeMediaType value.
type MimeMediaType string

// MemberName is a memberAttrName value, naming the following member of a
// collection.
type MemberName string

// TextWithLanguage is a text value carrying its own natural language.
type TextWithLanguage struct {
	Lang string
	Text string
}

// NameWithLanguage is a name value carrying its own natural language.
type NameWithLanguage struct {
	Lang string
	Name string
}

// DateTime is an RFC 2579 DateAndTime value.
type DateTime struct {
	Year        uint16
	Month       uint8
	Day         uint8
	Hour        uint8
	Minutes     uint8
	Seconds     uint8
	DeciSeconds uint8
	UTCDir      byte // '+' or '-'
	UTCHours    uint8
	UTCMinutes  uint8
}

// Resolution units.
const (
	UnitsDpi  = 3 // dots per inch
	UnitsDpcm = 4 // dots per centimeter
)

// Resolution is a printer resolution value.
type Resolution struct {
	CrossFeed int32
	Feed      int32
	Units     int8
}

// RangeOfInteger is an inclusive integer range value.
type RangeOfInteger struct {
	Min int32
	Max int32
}

// Array is a multi-valued attribute: consecutive value records sharing a
// zero-length name after the first. The attribute-level tag is the tag of
// the first element.
type Array []Value

// Collection is a compound value: a nested sequence of values bracketed
// by begCollection/endCollection records. Member names travel inside the
// sequence as MemberName values.
type Collection []Value

// Other is a value whose tag has no dedicated representation; the payload
// is kept verbatim. Out-of-band values (no-value, unknown, unsupported)
// decode to Other with an empty payload.
type Other struct {
	ValueTag ValueTag
	Data     []byte
}

func (Integer) Tag() ValueTag          { return TagInteger }
func (Enum) Tag() ValueTag             { return TagEnum }
func (Boolean) Tag() ValueTag          { return TagBoolean }
func (OctetString) Tag() ValueTag      { return TagOctetString }
func (Text) Tag() ValueTag             { return TagTextWithoutLanguage }
func (Name) Tag() ValueTag             { return TagNameWithoutLanguage }
func (Keyword) Tag() ValueTag          { return TagKeyword }
func (URI) Tag() ValueTag              { return TagURI }
func (URIScheme) Tag() ValueTag        { return TagURIScheme }
func (Charset) Tag() ValueTag          { return TagCharset }
func (NaturalLanguage) Tag() ValueTag  { return TagNaturalLanguage }
func (MimeMediaType) Tag() ValueTag    { return TagMimeMediaType }
func (MemberName) Tag() ValueTag       { return TagMemberAttrName }
func (TextWithLanguage) Tag() ValueTag { return TagTextWithLanguage }
func (NameWithLanguage) Tag() ValueTag { return TagNameWithLanguage }
func (DateTime) Tag() ValueTag         { return TagDateTime }
func (Resolution) Tag() ValueTag       { return TagResolution }
func (RangeOfInteger) Tag() ValueTag   { return TagRange }
func (Collection) Tag() ValueTag       { return TagBegCollection }
func (v Other) Tag() ValueTag          { return v.ValueTag }

// Tag of an array is the tag of its first element. An empty array
// degenerates to a no-value.
func (v Array) Tag() ValueTag {
	if len(v) == 0 {
		return TagNoValue
	}
	return v[0].Tag()
}

func (v Integer) String() string         { return strconv.FormatInt(int64(v), 10) }
func (v Enum) String() string            { return strconv.FormatInt(int64(v), 10) }
func (v Boolean) String() string         { return strconv.FormatBool(bool(v)) }
func (v OctetString) String() string     { return string(v) }
func (v Text) String() string            { return string(v) }
func (v Name) String() string            { return string(v) }
func (v Keyword) String() string         { return string(v) }
func (v URI) String() string             { return string(v) }
func (v URIScheme) String() string       { return string(v) }
func (v Charset) String() string         { return string(v) }
func (v NaturalLanguage) String() string { return string(v) }
func (v MimeMediaType) String() string   { return string(v) }
func (v MemberName) String() string      { return string(v) }

func (v TextWithLanguage) String() string {
	return fmt.Sprintf("%s [%s]", v.Text, v.Lang)
}

func (v NameWithLanguage) String() string {
	return fmt.Sprintf("%s [%s]", v.Name, v.Lang)
}

func (v DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%d%c%02d%02d",
		v.Year, v.Month, v.Day, v.Hour, v.Minutes, v.Seconds,
		v.DeciSeconds, v.UTCDir, v.UTCHours, v.UTCMinutes)
}

func (v Resolution) String() string {
	unit := "dpi"
	if v.Units == UnitsDpcm {
		unit = "dpcm"
	}
	return fmt.Sprintf("%dx%d%s", v.CrossFeed, v.Feed, unit)
}

func (v RangeOfInteger) String() string {
	return fmt.Sprintf("%d-%d", v.Min, v.Max)
}

func (v Array) String() string {
	parts := make([]string, len(v))
	for i, elem := range v {
		parts[i] = elem.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v Collection) String() string {
	parts := make([]string, len(v))
	for i, member := range v {
		parts[i] = member.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (v Other) String() string {
	return fmt.Sprintf("%s:%x", v.ValueTag, v.Data)
}

// writeBytesValue emits a 2-byte length followed by the payload.
func writeBytesValue(w io.Writer, data []byte) (int, error) {
	total, err := writeUint16(w, uint16(len(data)))
	if err != nil {
		return total, err
	}
	n, err := w.Write(data)
	return total + n, err
}

func writeStringValue(w io.Writer, s string) (int, error) {
	return writeBytesValue(w, []byte(s))
}

// writeAdditional emits a continuation record for v: value tag,
// zero-length name, value bytes.
func writeAdditional(w io.Writer, v Value) (int, error) {
	total, err := writeUint8(w, uint8(v.Tag()))
	if err != nil {
		return total, err
	}
	n, err := writeUint16(w, 0)
	total += n
	if err != nil {
		return total, err
	}
	n, err = v.write(w)
	return total + n, err
}

func (v Integer) write(w io.Writer) (int, error) {
	total, err := writeUint16(w, 4)
	if err != nil {
		return total, err
	}
	n, err := writeUint32(w, uint32(v))
	return total + n, err
}

func (v Enum) write(w io.Writer) (int, error) {
	total, err := writeUint16(w, 4)
	if err != nil {
		return total, err
	}
	n, err := writeUint32(w, uint32(v))
	return total + n, err
}

func (v Boolean) write(w io.Writer) (int, error) {
	total, err := writeUint16(w, 1)
	if err != nil {
		return total, err
	}
	b := byte(0)
	if v {
		b = 1
	}
	n, err := writeUint8(w, b)
	return total + n, err
}

func (v OctetString) write(w io.Writer) (int, error)     { return writeStringValue(w, string(v)) }
func (v Text) write(w io.Writer) (int, error)            { return writeStringValue(w, string(v)) }
func (v Name) write(w io.Writer) (int, error)            { return writeStringValue(w, string(v)) }
func (v Keyword) write(w io.Writer) (int, error)         { return writeStringValue(w, string(v)) }
func (v URI) write(w io.Writer) (int, error)             { return writeStringValue(w, string(v)) }
func (v URIScheme) write(w io.Writer) (int, error)       { return writeStringValue(w, string(v)) }
func (v Charset) write(w io.Writer) (int, error)         { return writeStringValue(w, string(v)) }
func (v NaturalLanguage) write(w io.Writer) (int, error) { return writeStringValue(w, string(v)) }
func (v MimeMediaType) write(w io.Writer) (int, error)   { return writeStringValue(w, string(v)) }
func (v MemberName) write(w io.Writer) (int, error)      { return writeStringValue(w, string(v)) }

func writeWithLanguage(w io.Writer, lang, text string) (int, error) {
	total, err := writeUint16(w, uint16(4+len(lang)+len(text)))
	if err != nil {
		return total, err
	}
	n, err := writeStringValue(w, lang)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeStringValue(w, text)
	return total + n, err
}

func (v TextWithLanguage) write(w io.Writer) (int, error) {
	return writeWithLanguage(w, v.Lang, v.Text)
}

func (v NameWithLanguage) write(w io.Writer) (int, error) {
	return writeWithLanguage(w, v.Lang, v.Name)
}

func (v DateTime) write(w io.Writer) (int, error) {
	buf := make([]byte, 0, 11)
	buf = append(buf, byte(v.Year>>8), byte(v.Year),
		v.Month, v.Day, v.Hour, v.Minutes, v.Seconds,
		v.DeciSeconds, v.UTCDir, v.UTCHours, v.UTCMinutes)
	return writeBytesValue(w, buf)
}

func (v Resolution) write(w io.Writer) (int, error) {
	total, err := writeUint16(w, 9)
	if err != nil {
		return total, err
	}
	n, err := writeUint32(w, uint32(v.CrossFeed))
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeUint32(w, uint32(v.Feed))
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeUint8(w, uint8(v.Units))
	return total + n, err
}

func (v RangeOfInteger) write(w io.Writer) (int, error) {
	total, err := writeUint16(w, 8)
	if err != nil {
		return total, err
	}
	n, err := writeUint32(w, uint32(v.Min))
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeUint32(w, uint32(v.Max))
	return total + n, err
}

func (v Array) write(w io.Writer) (int, error) {
	if len(v) == 0 {
		return writeUint16(w, 0)
	}
	total, err := v[0].write(w)
	if err != nil {
		return total, err
	}
	for _, elem := range v[1:] {
		n, err := writeAdditional(w, elem)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (v Collection) write(w io.Writer) (int, error) {
	// The begCollection record itself carries an empty payload; members
	// follow as zero-named continuation records.
	total, err := writeUint16(w, 0)
	if err != nil {
		return total, err
	}
	for _, member := range v {
		n, err := writeAdditional(w, member)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err := writeUint8(w, uint8(TagEndCollection))
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeUint16(w, 0) // name length
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeUint16(w, 0) // value length
	return total + n, err
}

func (v Other) write(w io.Writer) (int, error) {
	return writeBytesValue(w, v.Data)
}

// readValue decodes one value of the kind indicated by tag: the 2-byte
// length prefix, then that many payload bytes, interpreted per tag.
// Continuation records of arrays and collections are the parser's
// concern, not readValue's.
func readValue(tag ValueTag, r io.Reader) (Value, error) {
	n, err := readUint16(r)
	if err != nil {
		return nil, err
	}
	data, err := readBytes(r, int(n))
	if err != nil {
		return nil, err
	}

	switch tag {
	case TagInteger, TagEnum:
		if len(data) != 4 {
			return nil, fmt.Errorf("%s: invalid value length %d", tag, len(data))
		}
		v := int32(uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3]))
		if tag == TagEnum {
			return Enum(v), nil
		}
		return Integer(v), nil

	case TagBoolean:
		if len(data) != 1 {
			return nil, fmt.Errorf("%s: invalid value length %d", tag, len(data))
		}
		return Boolean(data[0] != 0), nil

	case TagOctetString:
		return OctetString(data), nil
	case TagTextWithoutLanguage:
		return Text(data), nil
	case TagNameWithoutLanguage:
		return Name(data), nil
	case TagKeyword:
		return Keyword(data), nil
	case TagURI:
		return URI(data), nil
	case TagURIScheme:
		return URIScheme(data), nil
	case TagCharset:
		return Charset(data), nil
	case TagNaturalLanguage:
		return NaturalLanguage(data), nil
	case TagMimeMediaType:
		return MimeMediaType(data), nil
	case TagMemberAttrName:
		return MemberName(data), nil

	case TagTextWithLanguage, TagNameWithLanguage:
		lang, rest, err := splitLengthPrefixed(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		text, _, err := splitLengthPrefixed(rest)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		if tag == TagNameWithLanguage {
			return NameWithLanguage{Lang: lang, Name: text}, nil
		}
		return TextWithLanguage{Lang: lang, Text: text}, nil

	case TagDateTime:
		if len(data) != 11 {
			return nil, fmt.Errorf("%s: invalid value length %d", tag, len(data))
		}
		return DateTime{
			Year:        uint16(data[0])<<8 | uint16(data[1]),
			Month:       data[2],
			Day:         data[3],
			Hour:        data[4],
			Minutes:     data[5],
			Seconds:     data[6],
			DeciSeconds: data[7],
			UTCDir:      data[8],
			UTCHours:    data[9],
			UTCMinutes:  data[10],
		}, nil

	case TagResolution:
		if len(data) != 9 {
			return nil, fmt.Errorf("%s: invalid value length %d", tag, len(data))
		}
		return Resolution{
			CrossFeed: int32(uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])),
			Feed:      int32(uint32(data[4])<<24 | uint32(data[5])<<16 | uint32(data[6])<<8 | uint32(data[7])),
			Units:     int8(data[8]),
		}, nil

	case TagRange:
		if len(data) != 8 {
			return nil, fmt.Errorf("%s: invalid value length %d", tag, len(data))
		}
		return RangeOfInteger{
			Min: int32(uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])),
			Max: int32(uint32(data[4])<<24 | uint32(data[5])<<16 | uint32(data[6])<<8 | uint32(data[7])),
		}, nil

	default:
		// Collection boundaries, out-of-band values, and tags without a
		// dedicated representation keep their payload verbatim.
		return Other{ValueTag: tag, Data: data}, nil
	}
}

// splitLengthPrefixed splits data into a 2-byte-length-prefixed head and
// the remaining bytes.
func splitLengthPrefixed(data []byte) (string, []byte, error) {
	if len(data) < 2 {
		return "", nil, fmt.Errorf("truncated length prefix")
	}
	n := int(data[0])<<8 | int(data[1])
	if len(data) < 2+n {
		return "", nil, fmt.Errorf("truncated payload: want %d bytes, have %d", n, len(data)-2)
	}
	return string(data[2 : 2+n]), data[2+n:], nil
}
