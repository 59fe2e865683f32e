package outbreak

import "time"

type summaryContentField int

const (
	summaryContentFieldDate summaryContentField = iota
	summaryContentFieldSum
)

var summaryContentFields = newFieldSet("SummaryContent", "date", "sum")

type summaryField int

const (
	summaryFieldData summaryField = iota
	summaryFieldLastUpdate
)

var summaryFields = newFieldSet("Summary", "data", "last_update")

// SummaryContent is one point of a case-count series.
type SummaryContent struct {
	Date time.Time
	Sum  uint32
}

// Summary is a case-count series with the time it was generated.
type Summary struct {
	Data       []SummaryContent
	LastUpdate time.Time
}

// Clone implements Cloner[SummaryContent].
func (c SummaryContent) Clone() SummaryContent { return c }

// EncodeObject implements Encoder.
func (c SummaryContent) EncodeObject(f Formats) Object {
	return Object{
		{Key: "date", Value: f.Format(OffsetDateTime, c.Date)},
		{Key: "sum", Value: int64(c.Sum)},
	}
}

// DecodeObject implements Decoder.
func (c *SummaryContent) DecodeObject(doc any, f Formats) error {
	v, err := decodeSummaryContent(doc, f)
	if err != nil {
		return rootError(summaryContentFields.record, err)
	}
	*c = v
	return nil
}

func decodeSummaryContent(doc any, f Formats) (SummaryContent, error) {
	var (
		date slot[time.Time]
		sum  slot[uint32]
	)

	err := visit(summaryContentFields, doc, func(tag int, value any) error {
		switch summaryContentField(tag) {
		case summaryContentFieldDate:
			return date.fill(summaryContentFields, tag, value, dateDecoder(f, OffsetDateTime))
		case summaryContentFieldSum:
			return sum.fill(summaryContentFields, tag, value, decodeCount)
		}
		return nil
	})
	if err != nil {
		return SummaryContent{}, err
	}

	var c SummaryContent
	if c.Date, err = date.require(summaryContentFields, int(summaryContentFieldDate)); err != nil {
		return SummaryContent{}, err
	}
	if c.Sum, err = sum.require(summaryContentFields, int(summaryContentFieldSum)); err != nil {
		return SummaryContent{}, err
	}
	return c, nil
}

// Clone implements Cloner[Summary].
func (s Summary) Clone() Summary {
	out := Summary{LastUpdate: s.LastUpdate}
	if s.Data != nil {
		out.Data = make([]SummaryContent, len(s.Data))
		copy(out.Data, s.Data)
	}
	return out
}

// Total returns the sum over all points.
func (s Summary) Total() uint64 {
	var total uint64
	for _, c := range s.Data {
		total += uint64(c.Sum)
	}
	return total
}

// EncodeObject implements Encoder.
func (s Summary) EncodeObject(f Formats) Object {
	data := make(Array, len(s.Data))
	for i, c := range s.Data {
		data[i] = c.EncodeObject(f)
	}
	return Object{
		{Key: "data", Value: data},
		{Key: "last_update", Value: f.Format(LocalDateTime, s.LastUpdate)},
	}
}

// DecodeObject implements Decoder.
func (s *Summary) DecodeObject(doc any, f Formats) error {
	v, err := decodeSummary(doc, f)
	if err != nil {
		return rootError(summaryFields.record, err)
	}
	*s = v
	return nil
}

func decodeSummary(doc any, f Formats) (Summary, error) {
	var (
		data       slot[[]SummaryContent]
		lastUpdate slot[time.Time]
	)

	err := visit(summaryFields, doc, func(tag int, value any) error {
		switch summaryField(tag) {
		case summaryFieldData:
			return data.fill(summaryFields, tag, value, func(v any) ([]SummaryContent, error) {
				return decodeEach("data", v, func(elem any) (SummaryContent, error) {
					return decodeSummaryContent(elem, f)
				})
			})
		case summaryFieldLastUpdate:
			return lastUpdate.fill(summaryFields, tag, value, dateDecoder(f, LocalDateTime))
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	if s.Data, err = data.require(summaryFields, int(summaryFieldData)); err != nil {
		return Summary{}, err
	}
	if s.LastUpdate, err = lastUpdate.require(summaryFields, int(summaryFieldLastUpdate)); err != nil {
		return Summary{}, err
	}
	return s, nil
}
