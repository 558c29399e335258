package errors

import (
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{name: "valid square", width: 10, height: 10},
		{name: "valid minimum", width: 1, height: 1},
		{name: "valid maximum", width: MaxDimension, height: MaxDimension},
		{name: "zero width", width: 0, height: 10, wantErr: true},
		{name: "negative height", width: 10, height: -1, wantErr: true},
		{name: "width too large", width: MaxDimension + 1, height: 10, wantErr: true},
		{name: "height too large", width: 10, height: MaxDimension + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !Is(err, ErrCodeInvalidDimensions) {
					t.Errorf("code = %v, want INVALID_DIMENSIONS", GetCode(err))
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateSeedPacket(t *testing.T) {
	tests := []struct {
		name    string
		packet  []int
		wantErr bool
	}{
		{name: "nil packet", packet: nil},
		{name: "empty packet", packet: []int{}},
		{name: "valid packet", packet: []int{1, 2, 3, 40000}},
		{name: "zero entries allowed", packet: []int{0, 0}},
		{name: "negative entry", packet: []int{1, -2, 3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeedPacket(tt.packet)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !Is(err, ErrCodeInvalidSeedPacket) {
					t.Errorf("code = %v, want INVALID_SEED_PACKET", GetCode(err))
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
