package core_test

import (
	"testing"
	"time"

	"association-reports/internal/core"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "GHS 0.00"},
		{"12.5", "GHS 12.50"},
		{"1234.56", "GHS 1,234.56"},
		{"1000000", "GHS 1,000,000.00"},
		{"-99.5", "-GHS 99.50"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("bad test amount %q: %v", tt.in, err)
		}
		if got := core.FormatAmount(d); got != tt.want {
			t.Errorf("FormatAmount(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := core.FormatPercent(decimal.NewFromInt(50), decimal.NewFromInt(200)); got != "25.0%" {
		t.Errorf("got %q, want 25.0%%", got)
	}
	if got := core.FormatPercent(decimal.NewFromInt(50), decimal.Zero); got != "N/A" {
		t.Errorf("zero total: got %q, want N/A", got)
	}
}

func TestFormatSignedPercent(t *testing.T) {
	if got := core.FormatSignedPercent(decimal.NewFromFloat(4.25)); got != "+4.3%" {
		t.Errorf("got %q, want +4.3%%", got)
	}
	if got := core.FormatSignedPercent(decimal.NewFromFloat(-1.5)); got != "-1.5%" {
		t.Errorf("got %q, want -1.5%%", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := core.FormatDate(time.Time{}); got != "-" {
		t.Errorf("zero time: got %q, want -", got)
	}
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := core.FormatDate(d); got != "01 Mar 2026" {
		t.Errorf("got %q, want 01 Mar 2026", got)
	}
}

func TestTitleStatus(t *testing.T) {
	if got := core.TitleStatus("completed"); got != "Completed" {
		t.Errorf("got %q", got)
	}
	if got := core.TitleStatus(""); got != "-" {
		t.Errorf("empty status: got %q, want -", got)
	}
	if got := core.TitleStatus("échoué"); got != "Échoué" {
		t.Errorf("multi-byte first rune: got %q, want Échoué", got)
	}
}
