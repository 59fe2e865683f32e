package outbreak

import (
	"fmt"
	"sort"
)

// Attribute is the category tag of a status node.
// Constants hold the external tokens used by the publisher.
type Attribute string

const (
	// AttrAccommodations counts patients in accommodation facilities.
	AttrAccommodations Attribute = "accommodations"

	// AttrUnderCoordination counts patients awaiting placement.
	// The token keeps the publisher's spelling.
	AttrUnderCoordination Attribute = "coodinating"

	// AttrDead counts deaths.
	AttrDead Attribute = "dead"

	// AttrHomeCare counts patients recovering at home.
	AttrHomeCare Attribute = "home"

	// AttrHospitalizations counts hospitalized patients.
	AttrHospitalizations Attribute = "hospitalizations"

	// AttrInspections counts tests performed.
	AttrInspections Attribute = "inspections"

	// AttrLeave counts recovered or discharged patients.
	AttrLeave Attribute = "leave"

	// AttrPatients counts confirmed patients; usually the tree root.
	AttrPatients Attribute = "patients"

	// AttrSeverelyPatients counts severe cases.
	AttrSeverelyPatients Attribute = "severely_patients"

	// AttrOther counts patients in no other category.
	AttrOther Attribute = "other"
)

// validAttributes contains all valid attribute tokens.
var validAttributes = map[Attribute]bool{
	AttrAccommodations:    true,
	AttrUnderCoordination: true,
	AttrDead:              true,
	AttrHomeCare:          true,
	AttrHospitalizations:  true,
	AttrInspections:       true,
	AttrLeave:             true,
	AttrPatients:          true,
	AttrSeverelyPatients:  true,
	AttrOther:             true,
}

// IsValidAttribute returns true if the attribute is a known token.
func IsValidAttribute(a Attribute) bool {
	return validAttributes[a]
}

// ParseAttribute resolves an external token.
func ParseAttribute(token string) (Attribute, error) {
	a := Attribute(token)
	if !IsValidAttribute(a) {
		return "", fmt.Errorf("unknown attribute %q", token)
	}
	return a, nil
}

// Attributes returns every known attribute in token order.
func Attributes() []Attribute {
	out := make([]Attribute, 0, len(validAttributes))
	for a := range validAttributes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (a Attribute) String() string {
	return string(a)
}

func decodeAttribute(v any) (Attribute, error) {
	s, err := decodeString(v)
	if err != nil {
		return "", err
	}
	return ParseAttribute(s)
}
