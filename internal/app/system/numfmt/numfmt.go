// Package numfmt formats dashboard figures.
//
// A value is first fixed to exactly two decimals as text, and that text is
// then grouped with the locale's separators. Grouping works on the string,
// never on the number, so 1234.5 and "1234.50" always format the same.
package numfmt

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is the locale the dashboard was designed for.
const DefaultLocale = "es-MX"

// sample is formatted once per locale to learn its separators.
const sample = 1234567.5

// languages the dashboard accepts. Any region of these works; separators
// come from CLDR for the exact tag requested.
var languages = []language.Base{
	language.MustParseBase("es"),
	language.MustParseBase("en"),
	language.MustParseBase("pt"),
	language.MustParseBase("de"),
	language.MustParseBase("fr"),
	language.MustParseBase("it"),
}

type symbols struct {
	group   string
	decimal string
}

// Formatter formats numbers for one locale. It is safe for concurrent use.
type Formatter struct {
	tag language.Tag
	sym symbols
}

// New returns a Formatter for the given BCP 47 locale.
func New(locale string) (*Formatter, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("numfmt: parse locale %q: %w", locale, err)
	}
	base, conf := tag.Base()
	if conf == language.No || !supported(base) {
		return nil, fmt.Errorf("numfmt: unsupported locale %q", locale)
	}
	return &Formatter{tag: tag, sym: symbolsFor(tag)}, nil
}

func supported(base language.Base) bool {
	for _, b := range languages {
		if b == base {
			return true
		}
	}
	return false
}

// symbolsFor reads the group and decimal marks back from a formatted
// sample. The first non-digit run is the group mark, the last one the
// decimal mark.
func symbolsFor(tag language.Tag) symbols {
	text := message.NewPrinter(tag).Sprint(number.Decimal(sample))

	var runs []string
	var cur strings.Builder
	for _, r := range text {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}

	switch len(runs) {
	case 0:
		return symbols{group: ",", decimal: "."}
	case 1:
		return symbols{decimal: runs[0]}
	}
	return symbols{group: runs[0], decimal: runs[len(runs)-1]}
}

// MustNew is New for locales known at compile time.
func MustNew(locale string) *Formatter {
	f, err := New(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the locale tag in canonical form.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Format fixes v to two decimals and groups the result.
func (f *Formatter) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return f.Group(fixed(v))
}

// fixed renders v with exactly two decimals. Rounding works on the exact
// binary value of v, half away from zero, so 1.005 (stored as
// 1.00499999...) becomes "1.00" and 0.125 becomes "0.13".
func fixed(v float64) string {
	exact := new(big.Float).SetFloat64(v).Text('f', 1100)
	return decimal.RequireFromString(exact).StringFixed(2)
}

// Group inserts thousands separators into a plain decimal string such as
// "-1234567.50" and swaps in the locale's decimal mark.
func (f *Formatter) Group(text string) string {
	sign := ""
	if strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+") {
		sign, text = text[:1], text[1:]
	}
	if sign == "+" {
		sign = ""
	}

	intPart, frac, hasFrac := strings.Cut(text, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 && len(intPart) > 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(f.sym.group)
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteString(f.sym.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// Plain renders a count without decimals or grouping, the way figures that
// bypass Format appear in the tables.
func Plain(v float64) string {
	return decimal.NewFromFloat(v).String()
}
