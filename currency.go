package jcm

import "strconv"

// CurrencyCodeLen is the length of the ISO 4217 alphabetic currency code
// carried ahead of a Denomination in a Currency record.
const CurrencyCodeLen = 3

// Currency pairs an ISO 4217 alphabetic currency code with a Denomination.
type Currency struct {
	Code         [CurrencyCodeLen]byte
	Denomination Denomination
}

const currencyLen = CurrencyCodeLen + 2

func (Currency) Len() int { return currencyLen }

// currencyCodeNone is the ISO 4217 "no currency" sentinel code.
const currencyCodeNone = "XXX"

// IsEmpty reports whether c's currency code is the ISO 4217 "XXX" sentinel,
// or its denomination is unset, matching how the device signals an unused
// assignment slot.
func (c Currency) IsEmpty() bool {
	return string(c.Code[:]) == currencyCodeNone || c.Denomination.IsEmpty()
}

// CurrencyFromBytes decodes a 5-byte Currency record.
func CurrencyFromBytes(buf []byte) (Currency, error) {
	if len(buf) < currencyLen {
		return Currency{}, &LengthError{Field: "currency", Observed: len(buf), Required: currencyLen}
	}
	var c Currency
	copy(c.Code[:], buf[:CurrencyCodeLen])
	denom, err := DenominationFromBytes(buf[CurrencyCodeLen:])
	if err != nil {
		return Currency{}, err
	}
	c.Denomination = denom
	return c, nil
}

func (c Currency) Bytes() []byte {
	out := make([]byte, 0, c.Len())
	out = append(out, c.Code[:]...)
	out = append(out, c.Denomination.Bytes()...)
	return out
}

func (c Currency) String() string {
	return string(c.Code[:]) + " " + strconv.FormatUint(c.Denomination.Value(), 10)
}

// CurrencyAssign binds a bit position in the DenominationDisable bitfield to
// a Currency, so the host knows which physical denomination each bit
// controls.
type CurrencyAssign struct {
	BitNumber uint8
	Currency  Currency
}

const currencyAssignLen = 1 + currencyLen

func (CurrencyAssign) Len() int { return currencyAssignLen }

func CurrencyAssignFromBytes(buf []byte) (CurrencyAssign, error) {
	if len(buf) < currencyAssignLen {
		return CurrencyAssign{}, &LengthError{Field: "currency_assign", Observed: len(buf), Required: currencyAssignLen}
	}
	c, err := CurrencyFromBytes(buf[1:currencyAssignLen])
	if err != nil {
		return CurrencyAssign{}, err
	}
	return CurrencyAssign{BitNumber: buf[0], Currency: c}, nil
}

func (a CurrencyAssign) Bytes() []byte {
	out := make([]byte, 0, currencyAssignLen)
	out = append(out, a.BitNumber)
	out = append(out, a.Currency.Bytes()...)
	return out
}

// CurrencyAssignList is a concatenation of 6-byte CurrencyAssign records.
type CurrencyAssignList []CurrencyAssign

// CurrencyAssignListFromBytes is the strict decoder: buf's length must be a
// positive multiple of 6, otherwise it is an invalid-length error.
func CurrencyAssignListFromBytes(buf []byte) (CurrencyAssignList, error) {
	if len(buf) == 0 || len(buf)%currencyAssignLen != 0 {
		return nil, &LengthError{Field: "currency_assign_list", Observed: len(buf), Required: currencyAssignLen}
	}
	return currencyAssignListDecode(buf)
}

// RelaxedCurrencyAssignListFromBytes accepts an empty buffer and discards any
// trailing partial record, for use inside a response the device may have
// truncated on Unsupported/Nak.
func RelaxedCurrencyAssignListFromBytes(buf []byte) (CurrencyAssignList, error) {
	whole := len(buf) - len(buf)%currencyAssignLen
	return currencyAssignListDecode(buf[:whole])
}

func currencyAssignListDecode(buf []byte) (CurrencyAssignList, error) {
	out := make(CurrencyAssignList, 0, len(buf)/currencyAssignLen)
	for i := 0; i < len(buf); i += currencyAssignLen {
		a, err := CurrencyAssignFromBytes(buf[i : i+currencyAssignLen])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (l CurrencyAssignList) Bytes() []byte {
	out := make([]byte, 0, len(l)*currencyAssignLen)
	for _, a := range l {
		out = append(out, a.Bytes()...)
	}
	return out
}
