package jcm

import (
	"bytes"
	"strconv"
	"strings"
)

// FirmwareVersion is the device's self-reported identity string: four
// space-separated ASCII fields, nul-terminated on the wire.
type FirmwareVersion struct {
	Name      string
	Interface string
	Version   string
	Date      string
}

// FirmwareVersionFromBytes reads up to the first nul, splits on ASCII space
// into exactly four fields. Fewer than four fields is an invalid string.
func FirmwareVersionFromBytes(buf []byte) (FirmwareVersion, error) {
	s, err := readNulTerminated(buf, "firmware_version")
	if err != nil {
		return FirmwareVersion{}, err
	}
	fields := strings.Split(s, " ")
	if len(fields) != 4 {
		return FirmwareVersion{}, &StringError{Field: "firmware_version", Reason: "expected exactly four space-separated fields"}
	}
	return FirmwareVersion{Name: fields[0], Interface: fields[1], Version: fields[2], Date: fields[3]}, nil
}

// Bytes re-joins the four fields with single spaces and appends a nul.
func (v FirmwareVersion) Bytes() []byte {
	joined := strings.Join([]string{v.Name, v.Interface, v.Version, v.Date}, " ")
	return append([]byte(joined), 0)
}

// readNulTerminated finds the first nul byte in buf and returns everything
// before it as a string; a missing terminator is an error.
func readNulTerminated(buf []byte, field string) (string, error) {
	idx := bytes.IndexByte(buf, 0)
	if idx < 0 {
		return "", &StringError{Field: field, Reason: "missing nul terminator"}
	}
	return string(buf[:idx]), nil
}

// ModelNameFromBytes decodes a nul-terminated ASCII model name.
func ModelNameFromBytes(buf []byte) (string, error) {
	return readNulTerminated(buf, "model_name")
}

func ModelNameBytes(name string) []byte {
	return append([]byte(name), 0)
}

// CashBoxSize is the device's reported cash-box capacity: a nul-terminated
// ASCII string that also parses as a base-10 unsigned integer.
type CashBoxSize struct {
	Raw   string
	Count uint64
}

func CashBoxSizeFromBytes(buf []byte) (CashBoxSize, error) {
	s, err := readNulTerminated(buf, "cash_box_size")
	if err != nil {
		return CashBoxSize{}, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return CashBoxSize{}, &StringError{Field: "cash_box_size", Reason: "not a base-10 integer: " + err.Error()}
	}
	return CashBoxSize{Raw: s, Count: n}, nil
}

func (c CashBoxSize) Bytes() []byte {
	return append([]byte(c.Raw), 0)
}
