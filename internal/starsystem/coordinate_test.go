package starsystem

import (
	"testing"

	"starfield-server/internal/shared/errors"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"4294967295", 4294967295, false},
		{"-1", 4294967295, false},
		{"-2147483648", 2147483648, false},
		{"4294967296", 0, true},
		{"-2147483649", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAxis(tt.in)
			if tt.wantErr {
				if !errors.IsType(err, errors.ErrorTypeValidation) {
					t.Fatalf("error = %v, want validation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAxis(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	c, err := ParseCoordinate("-1", "7")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Coordinate{X: 4294967295, Y: 7}) {
		t.Errorf("coordinate = %v", c)
	}

	if _, err := ParseCoordinate("1", "x"); err == nil {
		t.Error("expected error for bad y")
	}
}
