package wire

import (
	"errors"
	"io"
)

// maxCollectionDepth bounds collection nesting so a malformed stream of
// begCollection tags fails fast instead of growing the value stack
// without limit.
const maxCollectionDepth = 32

// ErrNestingTooDeep indicates collection nesting beyond maxCollectionDepth.
var ErrNestingTooDeep = errors.New("collection nesting too deep")

// ParseResult is the decoder's output: the message header and the
// reconstructed attribute list.
type ParseResult struct {
	Header     Header
	Attributes *AttributeList
}

// Parser is a streaming decoder for the IPP attribute wire format. It
// consumes the stream one tag at a time with no lookahead, tracking the
// open group, the in-progress attribute name, and a stack of value lists
// for collection nesting. A Parser is good for a single Parse call per
// message and is not safe for concurrent use.
type Parser struct {
	r io.Reader
}

// NewParser creates a parser reading from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: r}
}

// parseState is the decoder's in-flight state, scoped to one Parse call.
type parseState struct {
	// group is the last delimiter tag seen.
	group DelimiterTag

	// stack holds the value lists being accumulated; the innermost level
	// collects values for the pending attribute or the open collection.
	stack [][]Value

	// pending is the name of the attribute awaiting its value(s).
	pending    string
	hasPending bool
}

// flush completes the pending attribute, if any: the innermost value
// list is popped, collapsed, and filed under whatever group is current
// at this instant. A fresh empty level replaces the popped one.
//
// Note the group attribution here: a delimiter tag does not flush, so
// the last attribute accumulated before a group boundary is flushed only
// when the first attribute of the next group arrives, by which point the
// group has already advanced. Such an attribute is filed under the
// following group. This matches the historical decoder behavior and is
// pinned by tests; consumers round-tripping documents rely on it.
func (st *parseState) flush(list *AttributeList) {
	if !st.hasPending {
		return
	}
	st.hasPending = false
	if len(st.stack) == 0 {
		// A stray endCollection consumed the base level; restore it so
		// subsequent values have somewhere to accumulate.
		st.stack = append(st.stack, nil)
		return
	}
	values := st.stack[len(st.stack)-1]
	st.stack[len(st.stack)-1] = nil
	list.Add(st.group, NewAttribute(st.pending, collapseValues(values)))
}

// collapseValues reduces an accumulated value list: a single element
// becomes that scalar, anything else becomes an Array.
func collapseValues(values []Value) Value {
	if len(values) == 1 {
		return values[0]
	}
	return Array(values)
}

// Parse consumes the header and the full attribute stream, stopping at
// the end-of-attributes sentinel. Any I/O error propagates unchanged; a
// byte that is neither a known delimiter nor a value tag yields a
// TagError. There is no partial-result recovery: an error means the
// stream is unusable.
func (p *Parser) Parse() (*ParseResult, error) {
	header, err := ReadHeader(p.r)
	if err != nil {
		return nil, err
	}

	st := parseState{
		group: TagEndOfAttributes,
		stack: [][]Value{nil},
	}
	list := NewAttributeList()

	for {
		tag, err := readUint8(p.r)
		if err != nil {
			return nil, err
		}

		switch {
		case isDelimiterTag(tag):
			if DelimiterTag(tag) == TagEndOfAttributes {
				st.flush(list)
				return &ParseResult{Header: header, Attributes: list}, nil
			}
			group, err := delimiterFromByte(tag)
			if err != nil {
				return nil, err
			}
			st.group = group

		case isValueTag(tag):
			if err := p.parseValueRecord(ValueTag(tag), &st, list); err != nil {
				return nil, err
			}

		default:
			return nil, TagError{Tag: tag}
		}
	}
}

// parseValueRecord handles one value-tagged record: name length, name,
// value, then the accumulation step the tag calls for.
func (p *Parser) parseValueRecord(tag ValueTag, st *parseState, list *AttributeList) error {
	name, err := readString(p.r)
	if err != nil {
		return err
	}
	value, err := readValue(tag, p.r)
	if err != nil {
		return err
	}

	if name != "" {
		// A nonzero-length name starts a new attribute; the previous one
		// is complete and can be flushed.
		st.flush(list)
		st.pending = name
		st.hasPending = true
	}

	switch tag {
	case TagBegCollection:
		if len(st.stack) >= maxCollectionDepth {
			return ErrNestingTooDeep
		}
		st.stack = append(st.stack, nil)

	case TagEndCollection:
		if len(st.stack) == 0 {
			return nil
		}
		members := st.stack[len(st.stack)-1]
		st.stack = st.stack[:len(st.stack)-1]
		if len(st.stack) > 0 {
			top := len(st.stack) - 1
			st.stack[top] = append(st.stack[top], Collection(members))
		}

	default:
		if len(st.stack) > 0 {
			top := len(st.stack) - 1
			st.stack[top] = append(st.stack[top], value)
		}
	}
	return nil
}
