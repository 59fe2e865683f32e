package outbreak

type flatStatusField int

const (
	flatStatusFieldAttr flatStatusField = iota
	flatStatusFieldValue
	flatStatusFieldChildren
)

var flatStatusFields = newFieldSet("FlatStatus", "attr", "value", "children")

type detailedStatusField int

const (
	detailedStatusFieldAttr detailedStatusField = iota
	detailedStatusFieldValue
)

var detailedStatusFields = newFieldSet("DetailedStatus", "attr", "value")

// FlatStatus is the two-level status shape: a root with mandatory leaf
// children and no timestamps. It is not interchangeable with Status.
type FlatStatus struct {
	Attr     Attribute
	Value    uint32
	Children []DetailedStatus
}

// DetailedStatus is a leaf of a FlatStatus.
type DetailedStatus struct {
	Attr  Attribute
	Value uint32
}

// Clone implements Cloner[DetailedStatus].
func (d DetailedStatus) Clone() DetailedStatus { return d }

// EncodeObject implements Encoder.
func (d DetailedStatus) EncodeObject(_ Formats) Object {
	return Object{
		{Key: "attr", Value: string(d.Attr)},
		{Key: "value", Value: int64(d.Value)},
	}
}

// DecodeObject implements Decoder.
func (d *DetailedStatus) DecodeObject(doc any, f Formats) error {
	v, err := decodeDetailedStatus(doc, f)
	if err != nil {
		return rootError(detailedStatusFields.record, err)
	}
	*d = v
	return nil
}

func decodeDetailedStatus(doc any, _ Formats) (DetailedStatus, error) {
	var (
		attr  slot[Attribute]
		value slot[uint32]
	)

	err := visit(detailedStatusFields, doc, func(tag int, v any) error {
		switch detailedStatusField(tag) {
		case detailedStatusFieldAttr:
			return attr.fill(detailedStatusFields, tag, v, decodeAttribute)
		case detailedStatusFieldValue:
			return value.fill(detailedStatusFields, tag, v, decodeCount)
		}
		return nil
	})
	if err != nil {
		return DetailedStatus{}, err
	}

	var d DetailedStatus
	if d.Attr, err = attr.require(detailedStatusFields, int(detailedStatusFieldAttr)); err != nil {
		return DetailedStatus{}, err
	}
	if d.Value, err = value.require(detailedStatusFields, int(detailedStatusFieldValue)); err != nil {
		return DetailedStatus{}, err
	}
	return d, nil
}

// Clone implements Cloner[FlatStatus].
func (s FlatStatus) Clone() FlatStatus {
	out := FlatStatus{Attr: s.Attr, Value: s.Value}
	if s.Children != nil {
		out.Children = make([]DetailedStatus, len(s.Children))
		copy(out.Children, s.Children)
	}
	return out
}

// EncodeObject implements Encoder. Children are always emitted.
func (s FlatStatus) EncodeObject(f Formats) Object {
	children := make(Array, len(s.Children))
	for i, child := range s.Children {
		children[i] = child.EncodeObject(f)
	}
	return Object{
		{Key: "attr", Value: string(s.Attr)},
		{Key: "value", Value: int64(s.Value)},
		{Key: "children", Value: children},
	}
}

// DecodeObject implements Decoder.
func (s *FlatStatus) DecodeObject(doc any, f Formats) error {
	v, err := decodeFlatStatus(doc, f)
	if err != nil {
		return rootError(flatStatusFields.record, err)
	}
	*s = v
	return nil
}

func decodeFlatStatus(doc any, f Formats) (FlatStatus, error) {
	var (
		attr     slot[Attribute]
		value    slot[uint32]
		children slot[[]DetailedStatus]
	)

	err := visit(flatStatusFields, doc, func(tag int, v any) error {
		switch flatStatusField(tag) {
		case flatStatusFieldAttr:
			return attr.fill(flatStatusFields, tag, v, decodeAttribute)
		case flatStatusFieldValue:
			return value.fill(flatStatusFields, tag, v, decodeCount)
		case flatStatusFieldChildren:
			return children.fill(flatStatusFields, tag, v, func(v any) ([]DetailedStatus, error) {
				return decodeEach("children", v, func(elem any) (DetailedStatus, error) {
					return decodeDetailedStatus(elem, f)
				})
			})
		}
		return nil
	})
	if err != nil {
		return FlatStatus{}, err
	}

	var s FlatStatus
	if s.Attr, err = attr.require(flatStatusFields, int(flatStatusFieldAttr)); err != nil {
		return FlatStatus{}, err
	}
	if s.Value, err = value.require(flatStatusFields, int(flatStatusFieldValue)); err != nil {
		return FlatStatus{}, err
	}
	if s.Children, err = children.require(flatStatusFields, int(flatStatusFieldChildren)); err != nil {
		return FlatStatus{}, err
	}
	return s, nil
}
