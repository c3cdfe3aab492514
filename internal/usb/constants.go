package usb

// RequestType is the bmRequestType byte of a USB control transfer: direction
// in the high bit, type and recipient in the low bits. Only the
// direction/type/recipient combinations a vendor-specific bulk device
// actually issues are named here. The standard-request surface
// (GetDescriptor, SetConfiguration, feature selectors, and so on) is not
// implemented: descriptors are read from the sysfs `descriptors` attribute,
// and nothing in this driver issues standard requests.
type RequestType uint8

const (
	RequestDirectionIn  = RequestType(0b10000000)
	RequestDirectionOut = RequestType(0b00000000)

	RequestTypeClass = RequestType(0b00100000)

	RequestRecipientInterface = RequestType(0b00000001)
)
