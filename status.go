package outbreak

import "time"

type statusField int

const (
	statusFieldAttr statusField = iota
	statusFieldValue
	statusFieldChildren
	statusFieldLastUpdate
)

var statusFields = newFieldSet("Status", "attr", "value", "children", "last_update")

// Status is a node of the recursive status tree.
//
// Children and LastUpdate are optional: a nil or empty Children and a nil
// LastUpdate are omitted on encode, and their absence is not an error on
// decode.
type Status struct {
	Attr       Attribute
	Value      uint32
	Children   []Status
	LastUpdate *time.Time
}

// Clone implements Cloner[Status].
func (s Status) Clone() Status {
	out := Status{Attr: s.Attr, Value: s.Value}
	if s.Children != nil {
		out.Children = make([]Status, len(s.Children))
		for i, child := range s.Children {
			out.Children[i] = child.Clone()
		}
	}
	if s.LastUpdate != nil {
		t := *s.LastUpdate
		out.LastUpdate = &t
	}
	return out
}

// Walk visits s and its descendants depth-first. Returning false from fn
// stops the walk.
func (s Status) Walk(fn func(node Status, depth int) bool) {
	s.walk(fn, 0)
}

func (s Status) walk(fn func(Status, int) bool, depth int) bool {
	if !fn(s, depth) {
		return false
	}
	for _, child := range s.Children {
		if !child.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Find returns the first node tagged attr.
func (s Status) Find(attr Attribute) (Status, bool) {
	var found Status
	var ok bool
	s.Walk(func(node Status, _ int) bool {
		if node.Attr == attr {
			found, ok = node, true
			return false
		}
		return true
	})
	return found, ok
}

// LeafTotal sums the values of nodes without children.
func (s Status) LeafTotal() uint64 {
	var total uint64
	s.Walk(func(node Status, _ int) bool {
		if len(node.Children) == 0 {
			total += uint64(node.Value)
		}
		return true
	})
	return total
}

// EncodeObject implements Encoder.
func (s Status) EncodeObject(f Formats) Object {
	obj := Object{
		{Key: "attr", Value: string(s.Attr)},
		{Key: "value", Value: int64(s.Value)},
	}
	if len(s.Children) > 0 {
		children := make(Array, len(s.Children))
		for i, child := range s.Children {
			children[i] = child.EncodeObject(f)
		}
		obj.Set("children", children)
	}
	if s.LastUpdate != nil {
		obj.Set("last_update", f.Format(LocalDateTime, *s.LastUpdate))
	}
	return obj
}

// DecodeObject implements Decoder.
func (s *Status) DecodeObject(doc any, f Formats) error {
	v, err := decodeStatus(doc, f)
	if err != nil {
		return rootError(statusFields.record, err)
	}
	*s = v
	return nil
}

func decodeStatus(doc any, f Formats) (Status, error) {
	var (
		attr       slot[Attribute]
		value      slot[uint32]
		children   slot[[]Status]
		lastUpdate slot[time.Time]
	)

	err := visit(statusFields, doc, func(tag int, v any) error {
		switch statusField(tag) {
		case statusFieldAttr:
			return attr.fill(statusFields, tag, v, decodeAttribute)
		case statusFieldValue:
			return value.fill(statusFields, tag, v, decodeCount)
		case statusFieldChildren:
			return children.fill(statusFields, tag, v, func(v any) ([]Status, error) {
				return decodeEach("children", v, func(elem any) (Status, error) {
					return decodeStatus(elem, f)
				})
			})
		case statusFieldLastUpdate:
			return lastUpdate.fill(statusFields, tag, v, dateDecoder(f, LocalDateTime))
		}
		return nil
	})
	if err != nil {
		return Status{}, err
	}

	var s Status
	if s.Attr, err = attr.require(statusFields, int(statusFieldAttr)); err != nil {
		return Status{}, err
	}
	if s.Value, err = value.require(statusFields, int(statusFieldValue)); err != nil {
		return Status{}, err
	}
	if children.filled {
		s.Children = children.value
	}
	if lastUpdate.filled {
		t := lastUpdate.value
		s.LastUpdate = &t
	}
	return s, nil
}
