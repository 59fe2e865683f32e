package outbreak

import "testing"

func TestIsValidHashAlgo(t *testing.T) {
	tests := []struct {
		algo HashAlgo
		want bool
	}{
		{HashBlake2b, true},
		{HashBlake3, true},
		{HashSHA256, true},
		{HashSHA512, true},
		{"argon2", false},
		{"unknown", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			if got := IsValidHashAlgo(tt.algo); got != tt.want {
				t.Errorf("IsValidHashAlgo(%q) = %v, want %v", tt.algo, got, tt.want)
			}
		})
	}
}

func TestIsValidAttribute(t *testing.T) {
	tests := []struct {
		attr Attribute
		want bool
	}{
		{AttrAccommodations, true},
		{AttrUnderCoordination, true},
		{AttrDead, true},
		{AttrHomeCare, true},
		{AttrHospitalizations, true},
		{AttrInspections, true},
		{AttrLeave, true},
		{AttrPatients, true},
		{AttrSeverelyPatients, true},
		{AttrOther, true},
		{"Patients", false},
		{"coordinating", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.attr), func(t *testing.T) {
			if got := IsValidAttribute(tt.attr); got != tt.want {
				t.Errorf("IsValidAttribute(%q) = %v, want %v", tt.attr, got, tt.want)
			}
		})
	}
}
