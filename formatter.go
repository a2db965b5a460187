package datasize

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	bigdec "github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var errInvalidPattern = errors.New("invalid pattern")

// maxFracDigits is the maximum number of fraction digits rendered
// by a formatter created from the empty pattern.
const maxFracDigits = 340

// Formatter renders decimals according to a decimal format pattern and
// the number symbols of a locale.
// Formatter is an immutable value and is safe for concurrent use by multiple
// goroutines.
// The zero value is not usable, use [NewFormatter] instead.
type Formatter struct {
	pattern string
	locale  language.Tag
	sym     symbols

	posPrefix, posSuffix string
	negPrefix, negSuffix string
	hasNeg               bool

	multiplier int64
	minInt     int  // minimum number of integer digits
	minFrac    int  // minimum number of fraction digits
	maxFrac    int  // maximum number of fraction digits
	grouping   int  // number of integer digits between grouping separators, 0 means no grouping
	showPoint  bool // decimal separator is shown even without fraction digits
}

// symbols holds the number symbols of a locale.
type symbols struct {
	zero    rune // digit zero, the other digits follow it
	decimal string
	group   string
	minus   string
}

var defaultSymbols = symbols{zero: '0', decimal: ".", group: ",", minus: "-"}

// NewFormatter returns a formatter for the given pattern and locale.
// The pattern follows the syntax of decimal format patterns:
//
//	| Symbol | Meaning                                      |
//	| ------ | -------------------------------------------- |
//	| 0      | Digit, shown even if it is zero              |
//	| #      | Digit, omitted if it is a leading or trailing zero |
//	| .      | Decimal separator                            |
//	| ,      | Grouping separator                           |
//	| ;      | Separates positive and negative subpatterns  |
//	| %      | Multiplies by 100 when used in a prefix or suffix |
//	| ‰      | Multiplies by 1000 when used in a prefix or suffix |
//	| '      | Quotes special characters, '' is a quote     |
//
// For example, "#,##0.00" renders 1234.5 as "1,234.50" in English and as
// "1.234,50" in German.
// The empty pattern renders all fraction digits without grouping.
// Values are rounded using [rounding half to even].
//
// NewFormatter returns an error if the pattern is malformed or uses
// scientific notation.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func NewFormatter(pattern string, locale language.Tag) (Formatter, error) {
	f, err := parsePattern(pattern)
	if err != nil {
		return Formatter{}, fmt.Errorf("parsing pattern %q: %w", pattern, err)
	}
	f.locale = locale
	f.sym = localeSymbols(locale)
	return f, nil
}

// MustNewFormatter is like [NewFormatter] but panics if the pattern is malformed.
// It simplifies safe initialization of global variables holding formatters.
func MustNewFormatter(pattern string, locale language.Tag) Formatter {
	f, err := NewFormatter(pattern, locale)
	if err != nil {
		panic(fmt.Sprintf("NewFormatter(%q, %v) failed: %v", pattern, locale, err))
	}
	return f
}

// Pattern returns the pattern of the formatter.
func (f Formatter) Pattern() string {
	return f.pattern
}

// Locale returns the locale of the formatter.
func (f Formatter) Locale() language.Tag {
	return f.locale
}

// localeSymbols discovers the number symbols of a locale by rendering
// the probe -1234567.5 and reading back the characters around its digits.
func localeSymbols(locale language.Tag) symbols {
	p := message.NewPrinter(locale)
	probe := p.Sprint(number.Decimal(-1234567.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	return parseProbe(probe)
}

func parseProbe(probe string) symbols {
	var sym symbols
	var sep strings.Builder
	digits := 0
	for _, r := range probe {
		if !unicode.IsDigit(r) {
			sep.WriteRune(r)
			continue
		}
		switch {
		case digits == 0:
			sym.minus = sep.String()
			sym.zero = r - 1
		case digits == 7:
			sym.decimal = sep.String()
		case sep.Len() > 0 && sym.group == "":
			sym.group = sep.String()
		}
		sep.Reset()
		digits++
	}
	if digits != 8 || sym.minus == "" || sym.decimal == "" {
		return defaultSymbols
	}
	return sym
}

// parsePattern parses the pattern without resolving locale symbols.
func parsePattern(pattern string) (Formatter, error) {
	f := Formatter{pattern: pattern, multiplier: 1}
	if pattern == "" {
		f.minInt, f.maxFrac = 1, maxFracDigits
		return f, nil
	}

	// Positive subpattern
	prefix, rest, err := f.parseAffix(pattern, false)
	if err != nil {
		return Formatter{}, err
	}
	end := strings.IndexFunc(rest, func(r rune) bool { return !isNumberRune(r) })
	if end < 0 {
		end = len(rest)
	}
	if err := f.parseNumber(rest[:end]); err != nil {
		return Formatter{}, err
	}
	suffix, rest, err := f.parseAffix(rest[end:], true)
	if err != nil {
		return Formatter{}, err
	}
	f.posPrefix, f.posSuffix = prefix, suffix

	// Negative subpattern, only its prefix and suffix are used
	if rest == "" {
		return f, nil
	}
	rest = rest[1:] // ';'
	prefix, rest, err = f.parseAffix(rest, false)
	if err != nil {
		return Formatter{}, err
	}
	end = strings.IndexFunc(rest, func(r rune) bool { return !isNumberRune(r) })
	if end < 0 {
		end = len(rest)
	}
	if end == 0 {
		return Formatter{}, fmt.Errorf("%w: negative subpattern has no digits", errInvalidPattern)
	}
	suffix, rest, err = f.parseAffix(rest[end:], true)
	if err != nil {
		return Formatter{}, err
	}
	if rest != "" {
		return Formatter{}, fmt.Errorf("%w: more than two subpatterns", errInvalidPattern)
	}
	f.negPrefix, f.negSuffix, f.hasNeg = prefix, suffix, true
	return f, nil
}

func isNumberRune(r rune) bool {
	return r == '0' || r == '#' || r == ',' || r == '.'
}

// parseAffix reads a prefix or a suffix up to the first unquoted number
// character (prefix) or subpattern separator (both).
// It returns the literal text of the affix and the unread rest of the pattern.
func (f *Formatter) parseAffix(s string, suffix bool) (string, string, error) {
	var affix strings.Builder
	quoted := false
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				affix.WriteRune('\'')
				i++
				continue
			}
			quoted = !quoted
			continue
		}
		if quoted {
			affix.WriteRune(r)
			continue
		}
		switch {
		case r == ';':
			return affix.String(), string(runes[i:]), nil
		case isNumberRune(r) && !suffix:
			return affix.String(), string(runes[i:]), nil
		case isNumberRune(r):
			return "", "", fmt.Errorf("%w: unexpected %q in suffix", errInvalidPattern, r)
		case r == 'E' && suffix && i == 0:
			return "", "", fmt.Errorf("%w: scientific notation is not supported", errInvalidPattern)
		case r == '%':
			f.multiplier = 100
		case r == '‰':
			f.multiplier = 1000
		}
		affix.WriteRune(r)
	}
	if quoted {
		return "", "", fmt.Errorf("%w: unterminated quote", errInvalidPattern)
	}
	return affix.String(), "", nil
}

// parseNumber reads the numeric part of a subpattern, such as "#,##0.00".
func (f *Formatter) parseNumber(num string) error {
	intPart, fracPart, found := strings.Cut(num, ".")
	if strings.Contains(fracPart, ".") {
		return fmt.Errorf("%w: multiple decimal separators", errInvalidPattern)
	}

	// Integer part
	digits, comma := 0, -1
	for _, r := range intPart {
		switch r {
		case '#':
			if f.minInt > 0 {
				return fmt.Errorf("%w: unexpected '#' after '0'", errInvalidPattern)
			}
			digits++
		case '0':
			f.minInt++
			digits++
		case ',':
			comma = digits
		}
	}
	if comma >= 0 {
		f.grouping = digits - comma
		if f.grouping == 0 {
			return fmt.Errorf("%w: misplaced grouping separator", errInvalidPattern)
		}
	}

	// Fractional part
	optional := 0
	for _, r := range fracPart {
		switch r {
		case '0':
			if optional > 0 {
				return fmt.Errorf("%w: unexpected '0' after '#'", errInvalidPattern)
			}
			f.minFrac++
		case '#':
			optional++
		case ',':
			return fmt.Errorf("%w: grouping separator in fraction", errInvalidPattern)
		}
	}
	f.maxFrac = f.minFrac + optional

	if digits == 0 && f.maxFrac == 0 {
		return fmt.Errorf("%w: no digits", errInvalidPattern)
	}
	f.showPoint = found && f.maxFrac == 0
	return nil
}

// Format returns the decimal rendered according to the pattern and the locale
// of the formatter.
// Values that round to zero are rendered without a sign.
func (f Formatter) Format(d bigdec.Decimal) string {
	sym := f.sym
	if sym.zero == 0 {
		sym = defaultSymbols
	}
	if f.multiplier > 1 {
		d = d.Mul(bigdec.NewFromInt(f.multiplier))
	}

	// Rounding
	scale := int32(f.maxFrac)
	d = d.RoundBank(scale)
	neg := d.Sign() < 0
	intDigits, fracDigits, _ := strings.Cut(d.Abs().StringFixed(scale), ".")

	// Fraction digits
	fracDigits = strings.TrimRight(fracDigits, "0")
	if n := f.minFrac - len(fracDigits); n > 0 {
		fracDigits += strings.Repeat("0", n)
	}

	// Integer digits
	intDigits = strings.TrimLeft(intDigits, "0")
	if n := f.minInt - len(intDigits); n > 0 {
		intDigits = strings.Repeat("0", n) + intDigits
	}
	if intDigits == "" && fracDigits == "" {
		intDigits = "0"
	}

	// Affixes
	prefix, suffix := f.posPrefix, f.posSuffix
	if neg {
		if f.hasNeg {
			prefix, suffix = f.negPrefix, f.negSuffix
		} else {
			prefix = sym.minus + prefix
		}
	}

	var b strings.Builder
	b.WriteString(prefix)
	for i, c := range intDigits {
		if i > 0 && f.grouping > 0 && (len(intDigits)-i)%f.grouping == 0 {
			b.WriteString(sym.group)
		}
		b.WriteRune(sym.zero + (c - '0'))
	}
	if fracDigits != "" || f.showPoint {
		b.WriteString(sym.decimal)
	}
	for _, c := range fracDigits {
		b.WriteRune(sym.zero + (c - '0'))
	}
	b.WriteString(suffix)
	return b.String()
}
