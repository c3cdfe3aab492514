package jcm

// ImageBlockNumber selects which block of a captured note image to fetch.
// 0x00 is the reserved "query size and count" request.
type ImageBlockNumber uint8

const ImageBlockQuery ImageBlockNumber = 0x00

func (ImageBlockNumber) Len() int { return 1 }

func (n ImageBlockNumber) IsQuery() bool { return n == ImageBlockQuery }

// ImageSize is the response to an ImageBlockQuery request: the total image
// size and how many blocks it is split across. A zero value in both fields
// signals that note-image retrieval is unsupported by this device.
type ImageSize struct {
	SizeBytes   uint32
	TotalBlocks uint8
}

func (ImageSize) Len() int { return 5 }

func ImageSizeFromBytes(buf []byte) (ImageSize, error) {
	if len(buf) < 5 {
		return ImageSize{}, &LengthError{Field: "image_size", Observed: len(buf), Required: 5}
	}
	size := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	return ImageSize{SizeBytes: size, TotalBlocks: buf[4]}, nil
}

func (s ImageSize) Bytes() []byte {
	return []byte{
		uint8(s.SizeBytes), uint8(s.SizeBytes >> 8), uint8(s.SizeBytes >> 16), uint8(s.SizeBytes >> 24),
		s.TotalBlocks,
	}
}

// IsUnsupported reports whether the device signalled "no image retrieval
// capability" by returning a zero ImageSize.
func (s ImageSize) IsUnsupported() bool { return s.SizeBytes == 0 && s.TotalBlocks == 0 }

// BlockLength is the per-block byte count; the final block on the wire may
// be shorter than this when SizeBytes is not an exact multiple of
// TotalBlocks.
func (s ImageSize) BlockLength() uint32 {
	if s.TotalBlocks == 0 {
		return 0
	}
	return s.SizeBytes / uint32(s.TotalBlocks)
}
