package datasize

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

//go:generate go run scripts/unit/codegen.go

// Unit type represents a unit of digital storage.
// The zero value is [Byte].
//
// Unit is implemented as an integer index into in-memory arrays that store
// properties of the unit, such as its symbol and the number of bytes it holds.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Unit value.
//
// When persisting a unit, use the symbol returned by the [Unit.Symbol] method,
// rather than the integer index, as mapping between index and a particular
// unit may change in future versions.
type Unit uint8

var errInvalidUnit = errors.New("invalid unit")

// scaleLookup holds the number of bytes in each unit.
// Every unit of a family holds base times the bytes of the previous unit.
var scaleLookup = newScaleLookup()

func newScaleLookup() [unitCount]*big.Int {
	var scales [unitCount]*big.Int
	scales[Byte] = bigFromInt64(1)
	for _, f := range [...]Family{Binary, Decimal} {
		prev, base := scales[Byte], bigFromInt64(f.Base())
		for _, u := range familyUnits[f] {
			scales[u] = bigMul(prev, base)
			prev = scales[u]
		}
	}
	return scales
}

// ParseUnit converts a string to a unit.
// The input is case-insensitive and may be a symbol, a name, or a plural name:
//
//	KiB
//	kibibyte
//	Kibibytes
//
// ParseUnit returns an error if the string does not represent a valid unit.
func ParseUnit(unit string) (Unit, error) {
	u, ok := unitLookup[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return Byte, fmt.Errorf("%w %q", errInvalidUnit, unit)
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(unit string) Unit {
	u, err := ParseUnit(unit)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", unit, err))
	}
	return u
}

// String method implements the [fmt.Stringer] interface and returns
// the symbol of the unit.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Symbol()
}

// Symbol returns the short display suffix of the unit, such as "KiB" or "MB".
func (u Unit) Symbol() string {
	return symbolLookup[u]
}

// Name returns the name of the unit, such as "Kibibyte" or "Megabyte".
func (u Unit) Name() string {
	return nameLookup[u]
}

// Family returns the family of the unit.
// [Byte] is the zeroth power of both bases and belongs to the [Binary] family.
func (u Unit) Family() Family {
	return familyLookup[u]
}

// Power returns the exponent n such that the unit holds base^n bytes,
// where base is the base of the unit's family.
func (u Unit) Power() int {
	return powerLookup[u]
}

// Bytes returns the number of bytes in one unit.
func (u Unit) Bytes() *big.Int {
	return bigCopy(u.scale())
}

// scale returns the shared number of bytes in one unit.
// The result must not be modified.
func (u Unit) scale() *big.Int {
	return scaleLookup[u]
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Byte, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the symbol of the unit.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Symbol()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseUnit].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Unit) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return u.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted symbol.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(u.Symbol())+2)
	text = append(text, '"')
	text = append(text, u.Symbol()...)
	text = append(text, '"')
	return text, nil
}
