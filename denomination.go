package jcm

import "math"

// validDenominationIntegers is the set of integer values a Denomination may
// carry; everything else is rejected regardless of exponent.
var validDenominationIntegers = map[uint8]bool{
	1: true, 2: true, 5: true, 10: true, 20: true, 50: true, 100: true, 200: true, 250: true,
}

// Denomination is a banknote face value expressed as integer * 10^exponent,
// wire-encoded as two bytes: integer then exponent.
type Denomination struct {
	integer  uint8
	exponent uint8
}

func (Denomination) Len() int { return 2 }

func (d Denomination) Integer() uint8  { return d.integer }
func (d Denomination) Exponent() uint8 { return d.exponent }

// Value computes integer * 10^exponent, saturating at math.MaxUint64 rather
// than overflowing.
func (d Denomination) Value() uint64 {
	exp := d.exponent
	if exp > 19 {
		exp = 19
	}
	val := uint64(d.integer)
	for i := uint8(0); i < exp; i++ {
		if val > math.MaxUint64/10 {
			return math.MaxUint64
		}
		val *= 10
	}
	return val
}

// IsValid reports whether d's integer is one of the designated denomination
// integers (1,2,5,10,20,50,100,200,250).
func (d Denomination) IsValid() bool {
	return validDenominationIntegers[d.integer]
}

// IsEmpty reports whether d is the zero value, matching how the device
// signals an unused denomination slot.
func (d Denomination) IsEmpty() bool {
	return d.integer == 0 && d.exponent == 0
}

// DenominationFromValue decomposes val into its canonical integer/exponent
// form. It does not validate; check IsValid() on the result.
func DenominationFromValue(val uint64) Denomination {
	if val <= math.MaxUint8 {
		return Denomination{integer: uint8(val), exponent: 0}
	}
	if val%10 != 0 {
		return Denomination{}
	}
	exp := uint32(math.Floor(math.Log10(float64(val))))
	base := pow10(exp)
	lead := val / base
	switch lead {
	case 1, 2:
		lead *= 100
		if exp < 2 {
			return Denomination{}
		}
		exp -= 2
	case 5, 25:
		lead *= 10
		if exp < 1 {
			return Denomination{}
		}
		exp -= 1
	}
	if lead > math.MaxUint8 || exp > math.MaxUint8 {
		return Denomination{}
	}
	return Denomination{integer: uint8(lead), exponent: uint8(exp)}
}

func pow10(exp uint32) uint64 {
	v := uint64(1)
	for i := uint32(0); i < exp; i++ {
		v *= 10
	}
	return v
}

// CheckedDenominationFromValue decomposes and validates val in one step.
func CheckedDenominationFromValue(val uint64) (Denomination, error) {
	d := DenominationFromValue(val)
	if !d.IsValid() {
		return d, &StringError{Field: "denomination", Reason: "value is not a representable denomination"}
	}
	return d, nil
}

// DenominationFromBytes decodes the 2-byte wire form, without validating.
func DenominationFromBytes(buf []byte) (Denomination, error) {
	if len(buf) < 2 {
		return Denomination{}, &LengthError{Field: "denomination", Observed: len(buf), Required: 2}
	}
	return Denomination{integer: buf[0], exponent: buf[1]}, nil
}

// CheckedDenominationFromBytes decodes and validates in one step.
func CheckedDenominationFromBytes(buf []byte) (Denomination, error) {
	d, err := DenominationFromBytes(buf)
	if err != nil {
		return d, err
	}
	if !d.IsValid() {
		return d, &StringError{Field: "denomination", Reason: "integer is not a designated denomination value"}
	}
	return d, nil
}

func (d Denomination) Bytes() []byte {
	return []byte{d.integer, d.exponent}
}
