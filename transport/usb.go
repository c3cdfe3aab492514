// Package transport implements session.Transport over a real USB bulk
// connection, built on the internal/usb device layer: a vendor-specific
// interface with one bulk IN and one bulk OUT endpoint.
package transport

import (
	"context"
	"fmt"
	"time"

	usb "github.com/jcm-go/jcmdrv/internal/usb"
)

// handshakeRequest is the one-time vendor control transfer (class request
// 0x22, value 0, index 0, no data) that initializes the device interface.
const handshakeRequest = 0x22

// USBTransport drives a bulk IN/OUT endpoint pair over a vendor-specific USB
// interface.
type USBTransport struct {
	dev   *usb.Device
	iface int
	epIn  *usb.EndpointDescriptor
	epOut *usb.EndpointDescriptor
}

func vendorInterface(device *usb.Device) *usb.InterfaceDescriptor {
	for _, desc := range device.Descriptors {
		if iface, ok := desc.(*usb.InterfaceDescriptor); ok && iface.BInterfaceClass == usb.ClassCodeVendorSpecific {
			return iface
		}
	}
	return nil
}

// FindDevices enumerates connected USB devices exposing a vendor-specific
// interface, the class JCM devices present themselves under.
func FindDevices() ([]*usb.Device, error) {
	return usb.FindDevices(func(device *usb.Device) bool {
		return vendorInterface(device) != nil
	})
}

// Open opens dev, claims its vendor-specific interface, locates the bulk
// IN/OUT endpoint pair on it, and issues the one-time vendor handshake
// control transfer required before any bulk I/O.
func Open(dev *usb.Device) (*USBTransport, error) {
	if err := dev.Open(); err != nil {
		return nil, fmt.Errorf("jcm: open device: %w", err)
	}
	iface := vendorInterface(dev)
	if iface == nil {
		_ = dev.Close()
		return nil, fmt.Errorf("jcm: device does not expose a vendor-specific interface")
	}
	if err := dev.ClaimInterface(int(iface.BInterfaceNumber)); err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("jcm: claim interface %d: %w", iface.BInterfaceNumber, err)
	}
	var epIn, epOut *usb.EndpointDescriptor
	for _, desc := range dev.Descriptors {
		ep, ok := desc.(*usb.EndpointDescriptor)
		if !ok || ep.TransferType() != usb.TransferTypeBulk {
			continue
		}
		if ep.BEndpointAddress&usb.EndpointDirectionIn != 0 {
			epIn = ep
		} else {
			epOut = ep
		}
	}
	if epIn == nil || epOut == nil {
		_ = dev.ReleaseInterface(int(iface.BInterfaceNumber))
		_ = dev.Close()
		return nil, fmt.Errorf("jcm: device does not expose a bulk IN/OUT endpoint pair")
	}
	t := &USBTransport{dev: dev, iface: int(iface.BInterfaceNumber), epIn: epIn, epOut: epOut}
	if _, err := dev.Ctrl(usb.RequestDirectionOut|usb.RequestTypeClass|usb.RequestRecipientInterface, handshakeRequest, 0, 0, nil); err != nil {
		_ = dev.ReleaseInterface(t.iface)
		_ = dev.Close()
		return nil, fmt.Errorf("jcm: vendor handshake: %w", err)
	}
	return t, nil
}

func timeoutMillis(ctx context.Context) uint32 {
	deadline, ok := ctx.Deadline()
	if !ok {
		return 1000
	}
	ms := deadline.Sub(time.Now()).Milliseconds()
	if ms <= 0 {
		return 1
	}
	return uint32(ms)
}

// WriteMessage writes data to the bulk OUT endpoint, with a deadline taken
// from ctx.
func (t *USBTransport) WriteMessage(ctx context.Context, data []byte) error {
	_, err := t.dev.BulkTimeout(t.epOut.BEndpointAddress, data, timeoutMillis(ctx))
	return err
}

// ReadMessage reads one inbound frame from the bulk IN endpoint, with a
// deadline taken from ctx.
func (t *USBTransport) ReadMessage(ctx context.Context) ([]byte, error) {
	buf := make([]byte, t.epIn.WMaxPacketSize)
	n, err := t.dev.BulkTimeout(t.epIn.BEndpointAddress, buf, timeoutMillis(ctx))
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Close releases the claimed interface and the underlying device handle.
func (t *USBTransport) Close() error {
	_ = t.dev.ReleaseInterface(t.iface)
	return t.dev.Close()
}
