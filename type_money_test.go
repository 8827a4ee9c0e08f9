package spendreport

import "testing"

func TestMoney_exactSums(t *testing.T) {
	// 0.1 + 0.2 style drift must not happen over many additions.
	var sum Money
	for i := 0; i < 1000; i++ {
		sum = sum.Add(USD(0.1))
	}
	if !sum.Equal(USD(100)) {
		t.Errorf("1000 * $0.10 = %v, want $100.00", sum)
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{USD(1234.5), "$1,234.50"},
		{USD(0), "$0.00"},
		{USD(-12.34), "-$12.34"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String(%v) = %q, want %q", tc.in.AsFloat(), got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := USD(5).SignedString(); got != "+$5.00" {
		t.Errorf("SignedString(+5) = %q", got)
	}
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q", got)
	}
}

func TestMoney_DivInt(t *testing.T) {
	if got := USD(250).DivInt(2); !got.Equal(USD(125)) {
		t.Errorf("250/2 = %v, want 125", got)
	}
	// Averages round to 4 decimal places.
	if got := USD(100).DivInt(3); !got.Equal(USD(33.3333)) {
		t.Errorf("100/3 = %v, want 33.3333", got)
	}
}

func TestMoney_comparisons(t *testing.T) {
	if !USD(1000).GreaterThanOrEqual(USD(1000)) {
		t.Error("1000 >= 1000 should hold")
	}
	if USD(999.99).GreaterThanOrEqual(USD(1000)) {
		t.Error("999.99 >= 1000 should not hold")
	}
	if USD(10).Cmp(USD(20)) != -1 {
		t.Error("Cmp(10, 20) != -1")
	}
}
