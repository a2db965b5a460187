package datasize

import (
	"math/big"

	"golang.org/x/text/language"
)

// Family represents a group of units sharing the same base.
type Family uint8

const (
	Binary  Family = iota // IEC prefixes, powers of 1024
	Decimal               // SI prefixes, powers of 1000
)

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Family) String() string {
	switch f {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	}
	return "unknown"
}

// Base returns the number of units of the previous power in one unit
// of the next power: 1024 for [Binary] and 1000 for [Decimal].
func (f Family) Base() int64 {
	if f == Binary {
		return 1024
	}
	return 1000
}

// Units returns the units of the family in ascending order.
// [Byte] is not included.
func (f Family) Units() []Unit {
	units := familyUnits[f]
	return append(make([]Unit, 0, len(units)), units...)
}

// Select returns the largest unit of the family that does not exceed
// the magnitude of the given number of bytes.
// Values below the smallest unit of the family fall back to that unit,
// so Select never returns [Byte].
// The sign of bytes is ignored: x and -x always select the same unit.
func (f Family) Select(bytes *big.Int) Unit {
	units := familyUnits[f]
	abs := new(big.Int)
	if bytes != nil {
		abs.Abs(bytes)
	}
	unit := units[0]
	for i, u := range units[1:] {
		lower := u.scale()
		if abs.Cmp(lower) < 0 {
			continue
		}
		// Lower bounds are inclusive, upper bounds are exclusive
		// and the last bracket is open-ended.
		if last := i+2 == len(units); last || abs.Cmp(units[i+2].scale()) < 0 {
			unit = u
			break
		}
	}
	return unit
}

// ValueOf returns an amount of the given number of bytes expressed in
// the unit selected by [Family.Select].
func (f Family) ValueOf(bytes *big.Int) Amount {
	return NewAmount(f.Select(bytes), bytes)
}

// BinaryValueOf returns an amount of the given number of bytes expressed in
// the best matching binary unit, from [Kibibyte] to [Yobibyte].
// See also method [Family.Select].
func BinaryValueOf(bytes *big.Int) Amount {
	return Binary.ValueOf(bytes)
}

// BinaryValueOfInt64 is like [BinaryValueOf] but takes an int64.
func BinaryValueOfInt64(bytes int64) Amount {
	return BinaryValueOf(bigFromInt64(bytes))
}

// DecimalValueOf returns an amount of the given number of bytes expressed in
// the best matching decimal unit, from [Kilobyte] to [Yottabyte].
// See also method [Family.Select].
func DecimalValueOf(bytes *big.Int) Amount {
	return Decimal.ValueOf(bytes)
}

// DecimalValueOfInt64 is like [DecimalValueOf] but takes an int64.
func DecimalValueOfInt64(bytes int64) Amount {
	return DecimalValueOf(bigFromInt64(bytes))
}

// FormatAs renders a number of bytes in the given unit using the default
// representation of [Amount.String].
func FormatAs(u Unit, bytes int64) string {
	return NewAmountFromInt64(u, bytes).String()
}

// FormatAsPattern renders a number of bytes in the given unit using
// a decimal pattern in the default locale.
// See also method [Amount.Display].
func FormatAsPattern(u Unit, bytes int64, pattern string) (string, error) {
	return NewAmountFromInt64(u, bytes).Display(pattern)
}

// FormatAsLocale renders a number of bytes in the given unit using
// a decimal pattern in the given locale.
// See also method [Amount.DisplayIn].
func FormatAsLocale(u Unit, bytes int64, pattern string, locale language.Tag) (string, error) {
	return NewAmountFromInt64(u, bytes).DisplayIn(pattern, locale)
}
