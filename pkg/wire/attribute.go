package wire

import (
	"bytes"
	"io"
)

// Attribute is a single named IPP attribute.
type Attribute struct {
	name  string
	value Value
}

// NewAttribute creates an attribute with the given name and value.
func NewAttribute(name string, value Value) Attribute {
	return Attribute{name: name, value: value}
}

// Name returns the attribute name.
func (a Attribute) Name() string { return a.name }

// Value returns the attribute value.
func (a Attribute) Value() Value { return a.value }

// Write serializes the attribute: value tag, 2-byte big-endian name
// length, name bytes, then the value's own encoding. Returns the total
// byte count written.
func (a Attribute) Write(w io.Writer) (int, error) {
	total, err := writeUint8(w, uint8(a.value.Tag()))
	if err != nil {
		return total, err
	}
	n, err := writeUint16(w, uint16(len(a.name)))
	total += n
	if err != nil {
		return total, err
	}
	n, err = io.WriteString(w, a.name)
	total += n
	if err != nil {
		return total, err
	}
	n, err = a.value.write(w)
	return total + n, err
}

// AttributeList stores attributes grouped by delimiter tag, indexed by
// name within each group. Within a group names are unique; the last Add
// wins. The same name may appear independently in different groups.
type AttributeList struct {
	groups map[DelimiterTag]map[string]Attribute
}

// NewAttributeList creates an empty attribute list.
func NewAttributeList() *AttributeList {
	return &AttributeList{
		groups: make(map[DelimiterTag]map[string]Attribute),
	}
}

// Add inserts an attribute into the given group, overwriting any
// attribute of the same name already present there.
func (l *AttributeList) Add(group DelimiterTag, attr Attribute) {
	attrs, ok := l.groups[group]
	if !ok {
		attrs = make(map[string]Attribute)
		l.groups[group] = attrs
	}
	attrs[attr.Name()] = attr
}

// Get looks up an attribute by group and name.
func (l *AttributeList) Get(group DelimiterTag, name string) (Attribute, bool) {
	attr, ok := l.groups[group][name]
	return attr, ok
}

// Group returns the attributes of a group, or nil if the group is absent.
// The returned map is the list's own storage; callers must not mutate it.
func (l *AttributeList) Group(group DelimiterTag) map[string]Attribute {
	return l.groups[group]
}

// Operation returns the operation attributes group.
func (l *AttributeList) Operation() map[string]Attribute {
	return l.Group(TagOperationAttributes)
}

// Job returns the job attributes group.
func (l *AttributeList) Job() map[string]Attribute {
	return l.Group(TagJobAttributes)
}

// Printer returns the printer attributes group.
func (l *AttributeList) Printer() map[string]Attribute {
	return l.Group(TagPrinterAttributes)
}

// Write serializes the whole list in the wire order the protocol
// requires: the operation group delimiter first, then the three header
// attributes in fixed order, then each group in {operation, job,
// printer} order (re-emitting the group delimiter for all but the
// operation group), and finally the end-of-attributes sentinel. Returns
// the total byte count written.
func (l *AttributeList) Write(w io.Writer) (int, error) {
	// The operation delimiter is emitted unconditionally so the header
	// attributes have a group to live in even when nothing else follows.
	total, err := writeUint8(w, uint8(TagOperationAttributes))
	if err != nil {
		return total, err
	}

	for _, name := range headerAttrs {
		attr, ok := l.Get(TagOperationAttributes, name)
		if !ok {
			continue
		}
		n, err := attr.Write(w)
		total += n
		if err != nil {
			return total, err
		}
	}

	for _, group := range groupOrder {
		attrs := l.groups[group]
		if len(attrs) == 0 {
			continue
		}
		if group != TagOperationAttributes {
			n, err := writeUint8(w, uint8(group))
			total += n
			if err != nil {
				return total, err
			}
		}
		for _, attr := range attrs {
			if group == TagOperationAttributes && isHeaderAttr(attr.Name()) {
				continue
			}
			n, err := attr.Write(w)
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err := writeUint8(w, uint8(TagEndOfAttributes))
	return total + n, err
}

// Reader returns the serialized form of the list as a readable stream.
// The full serialization is buffered up front.
func (l *AttributeList) Reader() io.Reader {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_, _ = l.Write(&buf)
	return bytes.NewReader(buf.Bytes())
}
