package jcm

// KeySetting reports whether a single device key (feature toggle) is
// enabled or disabled.
type KeySetting uint8

const (
	KeySettingDisabled KeySetting = 0
	KeySettingEnabled  KeySetting = 1
	KeySettingReserved KeySetting = 0xFF
)

// KeySettingFromU8 is the total mapping for KeySetting.
func KeySettingFromU8(val uint8) KeySetting {
	switch val {
	case 0:
		return KeySettingDisabled
	case 1:
		return KeySettingEnabled
	default:
		return KeySettingReserved
	}
}

// CheckedKeySettingFromU8 rejects any byte other than 0 or 1.
func CheckedKeySettingFromU8(val uint8) (KeySetting, error) {
	k := KeySettingFromU8(val)
	if k == KeySettingReserved {
		return k, &EnumError{Enum: "key_setting", Value: uint32(val)}
	}
	return k, nil
}

func (KeySetting) Len() int { return 1 }

func (k KeySetting) String() string {
	switch k {
	case KeySettingDisabled:
		return "disabled"
	case KeySettingEnabled:
		return "enabled"
	default:
		return "reserved"
	}
}

// KeySettingList is one KeySetting per device key, in device-defined order.
type KeySettingList []KeySetting

// KeySettingListFromBytes decodes each byte as a KeySetting, stopping at the
// first invalid byte and reporting it.
func KeySettingListFromBytes(buf []byte) (KeySettingList, error) {
	out := make(KeySettingList, 0, len(buf))
	for _, b := range buf {
		k, err := CheckedKeySettingFromU8(b)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func (l KeySettingList) Bytes() []byte {
	out := make([]byte, len(l))
	for i, k := range l {
		out[i] = uint8(k)
	}
	return out
}
