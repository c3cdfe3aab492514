package usbfs

const (
	usbDevPath = "/dev/bus/usb"
)

// nUSBDEVFS_MAXDRIVERNAME bounds the fixed-size driver-name arrays in the
// usbdevfs ioctl structs in ioctl.go; it is part of the kernel ABI, not a tunable.
const (
	nUSBDEVFS_MAXDRIVERNAME = 255
)
