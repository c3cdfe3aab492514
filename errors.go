package jcm

import "fmt"

// LengthError reports a buffer that was too short (or too long, for
// fixed-length fields) to decode a particular field.
type LengthError struct {
	Field    string
	Observed int
	Required int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("jcm: %s: observed length %d, required %d", e.Field, e.Observed, e.Required)
}

// EnumError reports a raw byte or u16 that does not map to any designated
// variant of a closed enumeration.
type EnumError struct {
	Enum  string
	Value uint32
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("jcm: invalid %s: 0x%X", e.Enum, e.Value)
}

// MismatchError reports a message whose MessageType/MessageCode pair decoded
// successfully on its own, but does not match what a specific typed record
// expected.
type MismatchError struct {
	ObservedType, ExpectedType MessageType
	ObservedCode, ExpectedCode MessageCode
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("jcm: message type/code mismatch: observed (%s, %s), expected (%s, %s)",
		e.ObservedType, e.ObservedCode, e.ExpectedType, e.ExpectedCode)
}

// StringError reports malformed ASCII/C-string payload data.
type StringError struct {
	Field  string
	Reason string
}

func (e *StringError) Error() string {
	return fmt.Sprintf("jcm: invalid %s: %s", e.Field, e.Reason)
}
