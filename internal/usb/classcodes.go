package usb

import "fmt"

// ClassCode and SubClass identify a device's or interface's USB-IF assigned
// class. See https://www.usb.org/defined-class-codes. jcm bill
// acceptors/recyclers present a vendor-specific bulk interface
// (ClassCodeVendorSpecific); the rest of the table exists so enumeration
// logging can name whatever else happens to share the bus instead of
// printing a bare hex code.
type (
	ClassCode uint8
	SubClass  uint8
)

func (code ClassCode) String() string {
	if codeString, exist := classCodeMap[code]; exist {
		return codeString
	}
	return fmt.Sprintf("Unknown(%.2X)", uint8(code))
}

const (
	ClassCodeMisc           = ClassCode(0xEF)
	ClassCodeVendorSpecific = ClassCode(0xFF)
)

const (
	ClassCodeInterfaceHID         = ClassCode(0x03)
	ClassCodeInterfaceMassStorage = ClassCode(0x08)
)

const (
	ClassCodeDeviceHub = ClassCode(0x09)
)

var classCodeMap = map[ClassCode]string{
	0x00:                          "UseInterfaceDescriptors",
	ClassCodeInterfaceHID:         "InterfaceHID",
	ClassCodeInterfaceMassStorage: "InterfaceMassStorage",
	ClassCodeDeviceHub:            "DeviceHub",
	ClassCodeMisc:                 "Misc",
	ClassCodeVendorSpecific:       "VendorSpecific",
}
