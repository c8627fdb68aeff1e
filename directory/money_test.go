package directory

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{"1500", 150000, false},
		{"1500.5", 150050, false},
		{"1500.00", 150000, false},
		{" 45.00 ", 4500, false},
		{".99", 99, false},
		{"0", 0, false},
		{"-12.34", -1234, false},
		{"", 0, true},
		{"   ", 0, true},
		{"1.234", 0, true},
		{"abc", 0, true},
		{"12,50", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		in   Amount
		want string
	}{
		{150000, "1500.00"},
		{150050, "1500.50"},
		{99, "0.99"},
		{0, "0.00"},
		{-1234, "-12.34"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Amount(%d).String() = %q, want %q", int64(tt.in), got, tt.want)
		}
	}
}

func TestAmount_MulQty(t *testing.T) {
	if got := Amount(4500).MulQty(3); got != 13500 {
		t.Errorf("MulQty = %v, want 13500", got)
	}
	if got := Amount(4500).MulQty(0); got != 0 {
		t.Errorf("MulQty(0) = %v, want 0", got)
	}
}

func TestParseAmount_RoundTripsString(t *testing.T) {
	for _, a := range []Amount{0, 99, 4500, 150050, -1234} {
		parsed, err := ParseAmount(a.String())
		if err != nil {
			t.Fatalf("parsing %q: %v", a.String(), err)
		}
		if parsed != a {
			t.Errorf("round trip of %v gave %v", a, parsed)
		}
	}
}
