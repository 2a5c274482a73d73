package overlay

import "testing"

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#ffffff", want: RGB{255, 255, 255, 255}},
		{in: "#f80", want: RGB{255, 136, 0, 255}},
		{in: " #102030 ", want: RGB{16, 32, 48, 255}},
		{in: "#10203080", want: RGB{16, 32, 48, 128}},
		{in: "ffffff", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#102030zz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRGB(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRGB(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRGB(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseRGB(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGB_Hex(t *testing.T) {
	if got := (RGB{1, 2, 3, 255}).Hex(); got != "#010203" {
		t.Errorf("Hex = %q", got)
	}
	if got := (RGB{1, 2, 3, 4}).Hex(); got != "#01020304" {
		t.Errorf("Hex = %q", got)
	}
}
