package usb

import (
	"fmt"
	"syscall"

	"github.com/jcm-go/jcmdrv/internal/usb/usbfs"
)

// Device is an opened handle to a bus-enumerated USB device, backed by a
// usbdevfs file descriptor.
type Device struct {
	fd           int
	BusNumber    int
	DeviceNumber int
	Descriptors  []Descriptor
}

func (d *Device) Open() error {
	if d.fd != -1 {
		return fmt.Errorf("device already open")
	}
	fd, err := usbfs.OpenDevice(d.BusNumber, d.DeviceNumber)
	if err != nil {
		return err
	}
	d.fd = fd
	return nil
}

// ClaimInterface must be called before Ctrl/BulkTimeout will be accepted by
// the kernel for transfers targeting that interface.
func (d *Device) ClaimInterface(iface int) error {
	return usbfs.ClaimInterface(d.fd, iface)
}

func (d *Device) ReleaseInterface(iface int) error {
	return usbfs.ReleaseInterface(d.fd, iface)
}

func (d *Device) Ctrl(typ RequestType, req uint8, value uint16, index uint16, payload []byte) (int, error) {
	return usbfs.ControlTransfer(d.fd, uint8(typ), req, value, index, 1000, payload)
}

func (d *Device) BulkTimeout(ep uint8, data []byte, timeout uint32) (int, error) {
	return usbfs.BulkTransfer(d.fd, uint32(ep)&0xFF, timeout, data)
}

func (d *Device) Close() error {
	e := syscall.Close(d.fd)
	d.fd = -1
	return e
}
