/*
Package datasize implements amounts of digital storage in binary and decimal units.
It stores the number of bytes as a [big.Int] and combines it with a [Unit]
that determines how the amount is rendered.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Arbitrary-precision byte counts, from bytes to yottabytes and yobibytes
  - Arithmetic that preserves the unit of the receiver
  - Conversion between units and selection of the best matching unit
  - Default, pattern-based, and locale-aware rendering

# Representation

The package consists of two main types: Amount and Unit.
An Amount holds a number of bytes and the Unit it is expressed in.
The Unit type is implemented as an integer index into in-memory arrays
containing information such as symbol and number of bytes.

Units belong to one of two families:

	| Family  | Base | Units                                         |
	| ------- | ---- | --------------------------------------------- |
	| Binary  | 1024 | KiB, MiB, GiB, TiB, PiB, EiB, ZiB, YiB        |
	| Decimal | 1000 | kB, MB, GB, TB, PB, EB, ZB, YB                |

[Byte] is the zeroth power of both bases and is treated as a binary unit.

# Operations

Add, Sub, Mul, and Quo return a new amount expressed in the unit of the receiver.
The unit of the other operand is ignored, only its number of bytes is used.
Amounts are equal if they hold the same number of bytes, regardless of their units.

# Rounding

Quotients returned by [Amount.In] have 24 digits after the decimal point and are
rounded toward positive infinity, so capacities are never under-reported.
The default representation returned by [Amount.String] is rounded to 2 digits
using rounding half away from zero.
Patterns used by [Amount.Display] and [Formatter] round half to even.

# Errors

Construction never fails: any integer, including a negative one, is a valid
number of bytes.
Errors are returned when parsing units, amounts, and patterns, and when
dividing by zero.
*/
package datasize
