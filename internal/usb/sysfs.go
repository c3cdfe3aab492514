package usb

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
)

const (
	sysfsDeviceDir = "/sys/bus/usb/devices"
)

func readSysfsAttrInt(devName, attrName string) (int, error) {
	fileName := fmt.Sprintf("%s/%s/%s", sysfsDeviceDir, devName, attrName)
	var err error
	var data []byte
	var value int64
	data, err = ioutil.ReadFile(fileName)
	if err != nil {
		return 0, err
	}
	strData := strings.Trim(string(data), "\n")
	value, err = strconv.ParseInt(strData, 10, 64)
	if err != nil {
		return 0, err
	}
	return int(value), nil
}

func openSysfsAttr(devName, attrName string) (*os.File, error) {
	fileName := fmt.Sprintf("%s/%s/%s", sysfsDeviceDir, devName, attrName)
	return os.Open(fileName)
}

func getDeviceAddress(devName string) (int, int, error) {
	busNum, err := readSysfsAttrInt(devName, "busnum")
	if err != nil {
		return 0, 0, err
	}
	devNum, err := readSysfsAttrInt(devName, "devnum")
	if err != nil {
		return 0, 0, err
	}
	return busNum, devNum, nil
}

// parseDescriptor reads devName's raw binary descriptor set from sysfs
// (the kernel-assembled device+config+interface+endpoint sequence) and
// decodes it with the same reflective descriptor reader the Ctrl-transfer
// GetDescriptor path would use, via ReadDescriptors.
func parseDescriptor(devName string) ([]Descriptor, error) {
	x, err := openSysfsAttr(devName, "descriptors")
	if err != nil {
		return nil, err
	}
	defer x.Close()

	res := make([]Descriptor, 0, 10)
	if err := ReadDescriptors(x, func(d Descriptor) { res = append(res, d) }); err != nil {
		return nil, err
	}
	return res, nil
}

func EnumerateDevices() ([]*Device, error) {
	dirs, err := ioutil.ReadDir(sysfsDeviceDir)
	if err != nil {
		return nil, err
	}

	res := make([]*Device, 0, 10)

	for _, dir := range dirs {
		name := dir.Name()
		if strings.HasPrefix(name, "usb") ||
			strings.Contains(name, ":") {
			continue
		}
		descriptors, err := parseDescriptor(name)
		if err != nil {
			return nil, err
		}
		busNum, devNum, err := getDeviceAddress(name)
		if err != nil {
			return nil, err
		}
		device := &Device{
			BusNumber:    busNum,
			DeviceNumber: devNum,
			Descriptors:  descriptors,
			fd:           -1,
		}
		res = append(res, device)
	}
	return res, nil
}

func FindDevices(filter func(device *Device) bool) ([]*Device, error) {
	allDevices, err := EnumerateDevices()
	if err != nil {
		return nil, err
	}
	res := make([]*Device, 0, len(allDevices))
	for _, dev := range allDevices {
		if filter(dev) {
			res = append(res, dev)
		}
	}
	return res, nil
}
