package jcm

// AlgorithmNumber identifies which digest a ProgramSignature request/response
// carries.
type AlgorithmNumber uint8

const (
	AlgorithmCrc16    AlgorithmNumber = 0b0001
	AlgorithmCrc32    AlgorithmNumber = 0b0010
	AlgorithmSha1     AlgorithmNumber = 0b0100
	AlgorithmReserved AlgorithmNumber = 0xFF
)

const (
	crc16Len = 2
	crc32Len = 4
	sha1Len  = 32

	crc16ReqLen = 1 + crc16Len
	crc32ReqLen = 1 + crc32Len
	sha1ReqLen  = 1 + sha1Len
)

// AlgorithmNumberFromU8 is the total mapping for AlgorithmNumber.
func AlgorithmNumberFromU8(val uint8) AlgorithmNumber {
	switch AlgorithmNumber(val) {
	case AlgorithmCrc16, AlgorithmCrc32, AlgorithmSha1:
		return AlgorithmNumber(val)
	default:
		return AlgorithmReserved
	}
}

// CheckedAlgorithmNumberFromU8 rejects reserved byte values.
func CheckedAlgorithmNumberFromU8(val uint8) (AlgorithmNumber, error) {
	a := AlgorithmNumberFromU8(val)
	if a == AlgorithmReserved {
		return a, &EnumError{Enum: "algorithm_number", Value: uint32(val)}
	}
	return a, nil
}

func (AlgorithmNumber) Len() int { return 1 }

func (a AlgorithmNumber) String() string {
	switch a {
	case AlgorithmCrc16:
		return "crc16"
	case AlgorithmCrc32:
		return "crc32"
	case AlgorithmSha1:
		return "sha1"
	default:
		return "reserved"
	}
}

// HashAlgorithm is a ProgramSignature digest: an AlgorithmNumber paired with
// a digest of the matching fixed length. The zero value is never produced
// by decoding; use one of the constructors.
type HashAlgorithm struct {
	number AlgorithmNumber
	digest []byte
}

// NewHashAlgorithm builds a HashAlgorithm, validating that digest's length
// matches what number requires.
func NewHashAlgorithm(number AlgorithmNumber, digest []byte) (HashAlgorithm, error) {
	want, err := digestLenFor(number)
	if err != nil {
		return HashAlgorithm{}, err
	}
	if len(digest) != want {
		return HashAlgorithm{}, &LengthError{Field: "hash_algorithm.digest", Observed: len(digest), Required: want}
	}
	return HashAlgorithm{number: number, digest: append([]byte(nil), digest...)}, nil
}

func digestLenFor(number AlgorithmNumber) (int, error) {
	switch number {
	case AlgorithmCrc16:
		return crc16Len, nil
	case AlgorithmCrc32:
		return crc32Len, nil
	case AlgorithmSha1:
		return sha1Len, nil
	default:
		return 0, &EnumError{Enum: "algorithm_number", Value: uint32(number)}
	}
}

// AlgorithmNumber reports which digest algorithm h carries.
func (h HashAlgorithm) AlgorithmNumber() AlgorithmNumber { return h.number }

// Digest returns the raw digest bytes.
func (h HashAlgorithm) Digest() []byte { return h.digest }

// HashAlgorithmFromRequest decodes a ProgramSignature request/response
// buffer: either a single AlgorithmNumber byte (a query, with the zero
// digest filled in), or an AlgorithmNumber byte followed by a full digest.
func HashAlgorithmFromRequest(buf []byte) (HashAlgorithm, error) {
	if len(buf) == 1 {
		number, err := CheckedAlgorithmNumberFromU8(buf[0])
		if err != nil {
			return HashAlgorithm{}, err
		}
		want, _ := digestLenFor(number)
		return HashAlgorithm{number: number, digest: make([]byte, want)}, nil
	}
	switch len(buf) {
	case crc16ReqLen, crc32ReqLen, sha1ReqLen:
		number, err := CheckedAlgorithmNumberFromU8(buf[0])
		if err != nil {
			return HashAlgorithm{}, err
		}
		want, _ := digestLenFor(number)
		if len(buf)-1 != want {
			return HashAlgorithm{}, &LengthError{Field: "hash_algorithm", Observed: len(buf), Required: 1 + want}
		}
		return NewHashAlgorithm(number, buf[1:])
	default:
		return HashAlgorithm{}, &LengthError{Field: "hash_algorithm", Observed: len(buf), Required: crc16ReqLen}
	}
}

// Bytes serializes h back into a ProgramSignature request/response buffer:
// the AlgorithmNumber byte followed by the digest.
func (h HashAlgorithm) Bytes() []byte {
	out := make([]byte, 0, 1+len(h.digest))
	out = append(out, uint8(h.number))
	out = append(out, h.digest...)
	return out
}
