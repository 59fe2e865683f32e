package outbreak

import (
	"time"

	"github.com/zoobzio/outbreak/internal/clock"
)

type lastUpdateField int

const (
	lastUpdateFieldTime lastUpdateField = iota
)

var lastUpdateFields = newFieldSet("LastUpdate", "last_update")

// LastUpdate is the moment a dataset snapshot was generated.
type LastUpdate struct {
	Time time.Time
}

// NewLastUpdate stamps the current minute of clk in the registry location.
func NewLastUpdate(clk clock.Clock, f Formats) LastUpdate {
	return LastUpdate{Time: clk.Now().In(f.location()).Truncate(time.Minute)}
}

// Clone implements Cloner[LastUpdate].
func (u LastUpdate) Clone() LastUpdate { return u }

// EncodeObject implements Encoder.
func (u LastUpdate) EncodeObject(f Formats) Object {
	return Object{
		{Key: "last_update", Value: f.Format(LocalDateTime, u.Time)},
	}
}

// DecodeObject implements Decoder.
func (u *LastUpdate) DecodeObject(doc any, f Formats) error {
	v, err := decodeLastUpdate(doc, f)
	if err != nil {
		return rootError(lastUpdateFields.record, err)
	}
	*u = v
	return nil
}

func decodeLastUpdate(doc any, f Formats) (LastUpdate, error) {
	var at slot[time.Time]

	err := visit(lastUpdateFields, doc, func(tag int, value any) error {
		switch lastUpdateField(tag) {
		case lastUpdateFieldTime:
			return at.fill(lastUpdateFields, tag, value, dateDecoder(f, LocalDateTime))
		}
		return nil
	})
	if err != nil {
		return LastUpdate{}, err
	}

	t, err := at.require(lastUpdateFields, int(lastUpdateFieldTime))
	if err != nil {
		return LastUpdate{}, err
	}
	return LastUpdate{Time: t}, nil
}
