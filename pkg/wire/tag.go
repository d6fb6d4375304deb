package wire

import "fmt"

// DelimiterTag marks an attribute group boundary or the end of the
// attribute stream.
type DelimiterTag uint8

const (
	// TagOperationAttributes opens the operation attributes group.
	TagOperationAttributes DelimiterTag = 0x01

	// TagJobAttributes opens the job attributes group.
	TagJobAttributes DelimiterTag = 0x02

	// TagEndOfAttributes terminates the attribute stream.
	TagEndOfAttributes DelimiterTag = 0x03

	// TagPrinterAttributes opens the printer attributes group.
	TagPrinterAttributes DelimiterTag = 0x04

	// TagUnsupportedAttributes opens the unsupported attributes group.
	TagUnsupportedAttributes DelimiterTag = 0x05
)

// groupOrder is the on-wire emission order for attribute groups.
var groupOrder = [...]DelimiterTag{
	TagOperationAttributes,
	TagJobAttributes,
	TagPrinterAttributes,
}

// String returns the tag name as defined by RFC 8010.
func (t DelimiterTag) String() string {
	switch t {
	case TagOperationAttributes:
		return "operation-attributes-tag"
	case TagJobAttributes:
		return "job-attributes-tag"
	case TagEndOfAttributes:
		return "end-of-attributes-tag"
	case TagPrinterAttributes:
		return "printer-attributes-tag"
	case TagUnsupportedAttributes:
		return "unsupported-attributes-tag"
	default:
		return fmt.Sprintf("0x%02x", uint8(t))
	}
}

// ValueTag identifies the kind of an attribute value on the wire.
type ValueTag uint8

const (
	// Out-of-band value tags. These carry a zero-length payload.
	TagUnsupportedValue ValueTag = 0x10
	TagUnknown          ValueTag = 0x12
	TagNoValue          ValueTag = 0x13

	// Integer value tags.
	TagInteger ValueTag = 0x21
	TagBoolean ValueTag = 0x22
	TagEnum    ValueTag = 0x23

	// Octet-string value tags.
	TagOctetString ValueTag = 0x30
	TagDateTime    ValueTag = 0x31
	TagResolution  ValueTag = 0x32
	TagRange       ValueTag = 0x33

	// Collection boundary tags.
	TagBegCollection ValueTag = 0x34
	TagEndCollection ValueTag = 0x37

	TagTextWithLanguage ValueTag = 0x35
	TagNameWithLanguage ValueTag = 0x36

	// Character-string value tags.
	TagTextWithoutLanguage ValueTag = 0x41
	TagNameWithoutLanguage ValueTag = 0x42
	TagKeyword             ValueTag = 0x44
	TagURI                 ValueTag = 0x45
	TagURIScheme           ValueTag = 0x46
	TagCharset             ValueTag = 0x47
	TagNaturalLanguage     ValueTag = 0x48
	TagMimeMediaType       ValueTag = 0x49
	TagMemberAttrName      ValueTag = 0x4a
)

// String returns the tag name as defined by RFC 8010.
func (t ValueTag) String() string {
	switch t {
	case TagUnsupportedValue:
		return "unsupported"
	case TagUnknown:
		return "unknown"
	case TagNoValue:
		return "no-value"
	case TagInteger:
		return "integer"
	case TagBoolean:
		return "boolean"
	case TagEnum:
		return "enum"
	case TagOctetString:
		return "octetString"
	case TagDateTime:
		return "dateTime"
	case TagResolution:
		return "resolution"
	case TagRange:
		return "rangeOfInteger"
	case TagBegCollection:
		return "begCollection"
	case TagEndCollection:
		return "endCollection"
	case TagTextWithLanguage:
		return "textWithLanguage"
	case TagNameWithLanguage:
		return "nameWithLanguage"
	case TagTextWithoutLanguage:
		return "textWithoutLanguage"
	case TagNameWithoutLanguage:
		return "nameWithoutLanguage"
	case TagKeyword:
		return "keyword"
	case TagURI:
		return "uri"
	case TagURIScheme:
		return "uriScheme"
	case TagCharset:
		return "charset"
	case TagNaturalLanguage:
		return "naturalLanguage"
	case TagMimeMediaType:
		return "mimeMediaType"
	case TagMemberAttrName:
		return "memberAttrName"
	default:
		return fmt.Sprintf("0x%02x", uint8(t))
	}
}

// isDelimiterTag reports whether b falls in the delimiter tag range.
func isDelimiterTag(b byte) bool {
	return b < 0x10
}

// isValueTag reports whether b falls in the value tag range.
func isValueTag(b byte) bool {
	return b >= 0x10 && b <= 0x4a
}

// delimiterFromByte maps a delimiter-range byte to a known group tag.
// Bytes in the delimiter range that do not name a known group yield a
// TagError.
func delimiterFromByte(b byte) (DelimiterTag, error) {
	switch t := DelimiterTag(b); t {
	case TagOperationAttributes, TagJobAttributes, TagEndOfAttributes,
		TagPrinterAttributes, TagUnsupportedAttributes:
		return t, nil
	default:
		return 0, TagError{Tag: b}
	}
}

// TagError reports a byte encountered where a delimiter or value tag was
// expected that is neither, or a delimiter byte that does not map to a
// known group.
type TagError struct {
	// Tag is the offending byte.
	Tag byte
}

func (e TagError) Error() string {
	return fmt.Sprintf("tag error: 0x%02x", e.Tag)
}
