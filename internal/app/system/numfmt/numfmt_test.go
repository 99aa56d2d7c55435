package numfmt_test

import (
	"math"
	"testing"

	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/numfmt"
)

func TestFormat_ESMX(t *testing.T) {
	f := numfmt.MustNew("es-MX")

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{999.999, "1,000.00"},
		{1000.5, "1,000.50"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-9876543.2, "-9,876,543.20"},
		{0.1, "0.10"},
		{100, "100.00"},
		{1.005, "1.00"},
		{2.675, "2.67"},
		{0.125, "0.13"},
		{-0.125, "-0.13"},
	}
	for _, tt := range tests {
		if got := f.Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_MatchesGroupingOfFixedText(t *testing.T) {
	f := numfmt.MustNew(numfmt.DefaultLocale)
	if got, want := f.Format(1234.5), f.Group("1234.50"); got != want {
		t.Errorf("Format(1234.5) = %q, Group(\"1234.50\") = %q", got, want)
	}
}

func TestFormat_CommaDecimalLocale(t *testing.T) {
	f := numfmt.MustNew("de-DE")
	if got := f.Format(1234567.5); got != "1.234.567,50" {
		t.Errorf("Format = %q, want %q", got, "1.234.567,50")
	}
}

func TestFormat_NonFinite(t *testing.T) {
	f := numfmt.MustNew("es-MX")
	if got := f.Format(math.NaN()); got != "NaN" {
		t.Errorf("NaN formatted as %q", got)
	}
	if got := f.Format(math.Inf(-1)); got != "-∞" {
		t.Errorf("-Inf formatted as %q", got)
	}
}

func TestGroup(t *testing.T) {
	f := numfmt.MustNew("en-US")
	tests := map[string]string{
		"":           "",
		"1":          "1",
		"123":        "123",
		"1234":       "1,234",
		"123456":     "123,456",
		"+1234.5":    "1,234.5",
		"-1000000.0": "-1,000,000.0",
	}
	for in, want := range tests {
		if got := f.Group(in); got != want {
			t.Errorf("Group(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormat_RegionalSeparators(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"es-MX", "1,234,567.50"},
		{"es-AR", "1.234.567,50"},
		{"es-ES", "1.234.567,50"},
		{"en-US", "1,234,567.50"},
		{"en-GB", "1,234,567.50"},
		{"pt-BR", "1.234.567,50"},
		{"de-DE", "1.234.567,50"},
	}
	for _, tt := range tests {
		f, err := numfmt.New(tt.locale)
		if err != nil {
			t.Fatalf("New(%q): %v", tt.locale, err)
		}
		if got := f.Format(1234567.5); got != tt.want {
			t.Errorf("%s: Format = %q, want %q", tt.locale, got, tt.want)
		}
		if f.Locale() != tt.locale {
			t.Errorf("Locale() = %q, want %q", f.Locale(), tt.locale)
		}
	}
}

func TestNew_UnsupportedLocale(t *testing.T) {
	for _, locale := range []string{"ja-JP", "tlh", "zh"} {
		if _, err := numfmt.New(locale); err == nil {
			t.Errorf("New(%q): expected error for unsupported locale", locale)
		}
	}
	if _, err := numfmt.New("not a locale!"); err == nil {
		t.Error("expected error for malformed locale")
	}
}

func TestPlain(t *testing.T) {
	if got := numfmt.Plain(5); got != "5" {
		t.Errorf("Plain(5) = %q", got)
	}
	if got := numfmt.Plain(12.5); got != "12.5" {
		t.Errorf("Plain(12.5) = %q", got)
	}
}
