package datasize

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/govalues/decimal"
	bigdec "github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

var (
	errDivisionByZero = errors.New("division by zero")
	errInvalidAmount  = errors.New("invalid amount")
)

// QuoScale is the number of digits after the decimal point in the quotients
// returned by [Amount.In] and rendered by [Amount.Display].
const QuoScale = 24

// displayScale is the number of digits after the decimal point in
// the default representation of an amount.
const displayScale = 2

var defaultLocale = language.English

// Amount type represents a number of bytes expressed in a particular unit.
// Its zero value corresponds to "0.00 B".
//
// The unit only affects how the amount is rendered and which unit
// arithmetic results are expressed in.
// Equality and ordering depend on the number of bytes alone, so amounts must be
// compared with [Amount.Equal] and [Amount.Cmp] rather than with ==.
//
// Amount is immutable and is designed to be safe for concurrent use by
// multiple goroutines.
type Amount struct {
	unit  Unit     // unit the amount is expressed in
	bytes *big.Int // number of bytes, nil means 0, never modified after construction
}

// newAmountUnsafe creates a new amount that takes ownership of bytes.
// Use it only if no one else holds a reference to bytes.
func newAmountUnsafe(u Unit, bytes *big.Int) Amount {
	return Amount{unit: u, bytes: bytes}
}

// NewAmount returns an amount of the given number of bytes expressed in unit u.
// The number of bytes is copied and can be modified afterwards.
// Negative numbers of bytes are accepted.
// See also constructors [NewAmountFromUnits], [BinaryValueOf], [DecimalValueOf].
func NewAmount(u Unit, bytes *big.Int) Amount {
	return newAmountUnsafe(u, bigCopy(bytes))
}

// NewAmountFromInt64 is like [NewAmount] but takes an int64.
func NewAmountFromInt64(u Unit, bytes int64) Amount {
	return newAmountUnsafe(u, bigFromInt64(bytes))
}

// NewAmountFromUnits returns an amount equal to the given number of units.
// For example, NewAmountFromUnits(Kibibyte, 2) holds 2048 bytes.
func NewAmountFromUnits(u Unit, units int64) Amount {
	return newAmountUnsafe(u, bigMul(bigFromInt64(units), u.scale()))
}

// NewAmountFromBigUnits is like [NewAmountFromUnits] but takes a big integer.
func NewAmountFromBigUnits(u Unit, units *big.Int) Amount {
	return newAmountUnsafe(u, bigMul(bigCopy(units), u.scale()))
}

// NewAmountFromDecimal returns an amount equal to the given, possibly fractional,
// number of units.
// Fractions of a byte are rounded using [rounding toward positive infinity].
// See also method [Amount.Decimal].
//
// [rounding toward positive infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_up
func NewAmountFromDecimal(u Unit, units decimal.Decimal) Amount {
	coef := new(big.Int).SetUint64(units.Coef())
	if units.IsNeg() {
		coef.Neg(coef)
	}
	d := bigdec.NewFromBigInt(coef, -int32(units.Scale()))
	return newAmountUnsafe(u, ceilBytes(d, u))
}

// ceilBytes returns the number of bytes in d units rounded toward positive infinity.
func ceilBytes(d bigdec.Decimal, u Unit) *big.Int {
	e := bigdec.NewFromBigInt(u.scale(), 0)
	return d.Mul(e).Ceil().BigInt()
}

// ParseAmount converts a string to an amount.
// The input string consists of a decimal number and an optional unit,
// separated by optional whitespace:
//
//	1024
//	1.5 KiB
//	2GB
//	0.25 gibibytes
//
// The number of bytes is [Byte] if the unit is omitted.
// Fractions of a byte are rounded using [rounding toward positive infinity].
// See also constructor [ParseUnit].
//
// [rounding toward positive infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_up
func ParseAmount(amount string) (Amount, error) {
	num, unit := splitAmount(amount)
	// Unit
	u := Byte
	if unit != "" {
		var err error
		u, err = ParseUnit(unit)
		if err != nil {
			return Amount{}, fmt.Errorf("parsing unit: %w", err)
		}
	}
	// Number
	if num == "" {
		return Amount{}, fmt.Errorf("parsing number: %w: missing number in %q", errInvalidAmount, amount)
	}
	d, err := bigdec.NewFromString(num)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing number: %w: %w", errInvalidAmount, err)
	}
	return newAmountUnsafe(u, ceilBytes(d, u)), nil
}

// splitAmount splits a string into a number and a unit at the first letter.
func splitAmount(s string) (num, unit string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsLetter)
	if i < 0 {
		return s, ""
	}
	return strings.TrimSpace(s[:i]), s[i:]
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(amount string) Amount {
	a, err := ParseAmount(amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", amount, err))
	}
	return a
}

// raw returns the number of bytes without copying.
// The result must not be modified.
func (a Amount) raw() *big.Int {
	if a.bytes == nil {
		return bigZero
	}
	return a.bytes
}

// Unit returns the unit the amount is expressed in.
func (a Amount) Unit() Unit {
	return a.unit
}

// Bytes returns the number of bytes.
// This is the only state of an amount, and it is sufficient for persisting it.
// See also constructors [NewAmount], [BinaryValueOf], [DecimalValueOf].
func (a Amount) Bytes() *big.Int {
	return bigCopy(a.raw())
}

// Int64 returns the number of bytes as an int64.
// If the number of bytes does not fit, the result is its low 64 bits.
func (a Amount) Int64() int64 {
	return a.raw().Int64()
}

// Int32 returns the number of bytes as an int32.
// If the number of bytes does not fit, the result is its low 32 bits.
func (a Amount) Int32() int32 {
	return int32(a.raw().Int64()) //nolint:gosec
}

// Float64 returns the float64 value nearest to the number of bytes.
// If the number of bytes is too large, the result is ±Inf.
func (a Amount) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.raw()).Float64()
	return f
}

// Float32 returns the float32 value nearest to the number of bytes.
// If the number of bytes is too large, the result is ±Inf.
func (a Amount) Float32() float32 {
	f, _ := new(big.Float).SetInt(a.raw()).Float32()
	return f
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.raw().Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Sign() < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Sign() > 0
}

// Abs returns the absolute value of the amount in the same unit.
func (a Amount) Abs() Amount {
	return newAmountUnsafe(a.Unit(), bigAbs(a.raw()))
}

// Neg returns an amount with the opposite sign in the same unit.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.Unit(), bigNeg(a.raw()))
}

// Add returns the sum of amounts a and b expressed in the unit of a.
// The unit of b is ignored.
func (a Amount) Add(b Amount) Amount {
	return newAmountUnsafe(a.Unit(), bigAdd(a.raw(), b.raw()))
}

// AddBytes returns the amount increased by n bytes.
func (a Amount) AddBytes(n int64) Amount {
	return newAmountUnsafe(a.Unit(), bigAdd(a.raw(), bigFromInt64(n)))
}

// Sub returns the difference between amounts a and b expressed in the unit of a.
// The unit of b is ignored.
func (a Amount) Sub(b Amount) Amount {
	return newAmountUnsafe(a.Unit(), bigSub(a.raw(), b.raw()))
}

// SubBytes returns the amount decreased by n bytes.
func (a Amount) SubBytes(n int64) Amount {
	return newAmountUnsafe(a.Unit(), bigSub(a.raw(), bigFromInt64(n)))
}

// Mul returns the product of amount a and factor e.
func (a Amount) Mul(e int64) Amount {
	return newAmountUnsafe(a.Unit(), bigMul(a.raw(), bigFromInt64(e)))
}

// Quo returns the quotient of amount a and divisor e, truncated toward zero.
//
// Quo returns an error if the divisor is 0.
func (a Amount) Quo(e int64) (Amount, error) {
	if e == 0 {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, errDivisionByZero)
	}
	return newAmountUnsafe(a.Unit(), bigQuo(a.raw(), bigFromInt64(e))), nil
}

// As returns the same number of bytes expressed in unit u.
func (a Amount) As(u Unit) Amount {
	return newAmountUnsafe(u, bigCopy(a.raw()))
}

// BestUnit returns the same number of bytes expressed in the best matching
// unit of the family of a's unit.
// See also methods [Amount.BestBinaryUnit], [Amount.BestDecimalUnit].
func (a Amount) BestUnit() Amount {
	return a.Unit().Family().ValueOf(a.raw())
}

// BestBinaryUnit returns the same number of bytes expressed in the best
// matching binary unit.
// See also function [BinaryValueOf].
func (a Amount) BestBinaryUnit() Amount {
	return BinaryValueOf(a.raw())
}

// BestDecimalUnit returns the same number of bytes expressed in the best
// matching decimal unit.
// See also function [DecimalValueOf].
func (a Amount) BestDecimalUnit() Amount {
	return DecimalValueOf(a.raw())
}

// In returns the amount in units u with [QuoScale] digits after the decimal point.
// The quotient is rounded using [rounding toward positive infinity],
// so that capacities are never under-reported.
//
// [rounding toward positive infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_up
func (a Amount) In(u Unit) bigdec.Decimal {
	d, e := bigdec.NewFromBigInt(a.raw(), 0), bigdec.NewFromBigInt(u.scale(), 0)
	q, r := d.QuoRem(e, QuoScale)
	if r.Sign() > 0 {
		q = q.Add(bigdec.New(1, -QuoScale))
	}
	return q
}

// round returns the amount in its own unit rounded to the given number of
// digits after the decimal point using [rounding half away from zero].
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (a Amount) round(scale int) bigdec.Decimal {
	d, e := bigdec.NewFromBigInt(a.raw(), 0), bigdec.NewFromBigInt(a.Unit().scale(), 0)
	return d.DivRound(e, int32(scale))
}

// exact returns the amount in its own unit without rounding.
// Every unit divides 10^(10*power), so 10*power digits are always enough.
func (a Amount) exact() bigdec.Decimal {
	return a.round(10 * a.Unit().Power())
}

// Decimal returns the amount in its own unit as a [decimal.Decimal].
// The quotient is computed as in [Amount.In] and then rounded to fit
// the precision of [decimal.Decimal].
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the integer part of the quotient has more than
// [decimal.MaxPrec] digits.
func (a Amount) Decimal() (decimal.Decimal, error) {
	q := a.In(a.Unit()).RoundBank(int32(decimal.MaxScale))
	d, err := decimal.Parse(q.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w", a, decimal.Decimal{}, err)
	}
	return d, nil
}

// Equal returns true if amounts hold the same number of bytes.
// The units of the amounts are ignored.
func (a Amount) Equal(b Amount) bool {
	return a.Cmp(b) == 0
}

// Cmp compares the numbers of bytes of the amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// The units of the amounts are ignored.
func (a Amount) Cmp(b Amount) int {
	return a.raw().Cmp(b.raw())
}

// Compare is like [Amount.Cmp] and can be used with [slices.SortFunc].
//
// [slices.SortFunc]: https://pkg.go.dev/slices#SortFunc
func Compare(a, b Amount) int {
	return a.Cmp(b)
}

// Min returns the smaller amount.
// If the amounts are equal, a is returned.
func (a Amount) Min(b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger amount.
// If the amounts are equal, a is returned.
func (a Amount) Max(b Amount) Amount {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// String implements the [fmt.Stringer] interface and returns the amount in its
// own unit, rounded to 2 digits after the decimal point using
// [rounding half away from zero] and followed by the unit symbol.
// For example, 2 terabytes are rendered as "2.00 TB".
// See also methods [Amount.Display], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (a Amount) String() string {
	return a.round(displayScale).StringFixed(displayScale) + " " + a.Unit().Symbol()
}

// Display renders the amount in its own unit using a decimal pattern and
// the number symbols of the English locale.
// See also methods [Amount.DisplayIn], [Amount.DisplayWith].
//
// Display returns an error if the pattern is malformed.
func (a Amount) Display(pattern string) (string, error) {
	return a.DisplayIn(pattern, defaultLocale)
}

// DisplayIn renders the amount in its own unit using a decimal pattern and
// the number symbols of the given locale.
// See also constructor [NewFormatter].
//
// DisplayIn returns an error if the pattern is malformed.
func (a Amount) DisplayIn(pattern string, locale language.Tag) (string, error) {
	f, err := NewFormatter(pattern, locale)
	if err != nil {
		return "", err
	}
	return a.DisplayWith(f), nil
}

// DisplayWith renders the quotient of [Amount.In] in the amount's own unit
// using the formatter, followed by the unit symbol.
func (a Amount) DisplayWith(f Formatter) string {
	return f.Format(a.In(a.Unit())) + " " + a.Unit().Symbol()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseAmount(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText returns the exact amount in its own unit followed by the unit
// symbol, for example "1.0009765625 KiB".
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.exact().String() + " " + a.Unit().Symbol()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Strings are parsed with [ParseAmount] and integers are treated as
// a number of bytes expressed in [Byte].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return a.UnmarshalText(text[1 : len(text)-1])
	}
	b, ok := new(big.Int).SetString(string(text), 10)
	if !ok {
		return fmt.Errorf("unmarshaling %T: %w: %s", Amount{}, errInvalidAmount, text)
	}
	*a = newAmountUnsafe(Byte, b)
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON returns the result of [Amount.MarshalText] as a JSON string.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	text, _ := a.MarshalText()
	data := make([]byte, 0, len(text)+2)
	data = append(data, '"')
	data = append(data, text...)
	data = append(data, '"')
	return data, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description                  |
//	| ------ | ---------- | ---------------------------- |
//	| %s, %v | 1.50 KiB   | Amount and unit              |
//	| %q     | "1.50 KiB" | Quoted amount and unit       |
//	| %f     | 1.50       | Amount in its own unit       |
//	| %d     | 1536       | Number of bytes              |
//
// The '-' format flag can be used with all verbs.
//
// Precision is only supported for the %f verb.
// The default precision is 2.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 's', 'S', 'v', 'V':
		text = a.String()
	case 'q', 'Q':
		text = `"` + a.String() + `"`
	case 'f', 'F':
		scale := displayScale
		if p, ok := state.Precision(); ok {
			scale = p
		}
		text = a.round(scale).StringFixed(int32(scale))
	case 'd', 'D':
		text = a.raw().String()
	default:
		text = "%!" + string(verb) + "(datasize.Amount=" + a.String() + ")"
	}

	// Padding
	if w, ok := state.Width(); ok {
		if n := w - utf8.RuneCountInString(text); n > 0 {
			if state.Flag('-') {
				text += strings.Repeat(" ", n)
			} else {
				text = strings.Repeat(" ", n) + text
			}
		}
	}

	//nolint:errcheck
	state.Write([]byte(text))
}
