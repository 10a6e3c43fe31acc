package format

type (
	CompressionType uint8
	ReferenceType   uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Reference codes as they appear in the 4-bit code nibble of a handle.
const (
	ReferenceNone          ReferenceType = 0x0 // ReferenceNone is used for an object's own handle.
	ReferenceSoftOwnership ReferenceType = 0x2 // ReferenceSoftOwnership is one of several possible owners.
	ReferenceHardOwnership ReferenceType = 0x3 // ReferenceHardOwnership is the canonical owner.
	ReferenceSoftPointer   ReferenceType = 0x4 // ReferenceSoftPointer is a non-owning, optional link.
	ReferenceHardPointer   ReferenceType = 0x5 // ReferenceHardPointer is a non-owning link whose target must exist.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (r ReferenceType) String() string {
	switch r {
	case ReferenceNone:
		return "None"
	case ReferenceSoftOwnership:
		return "SoftOwnership"
	case ReferenceHardOwnership:
		return "HardOwnership"
	case ReferenceSoftPointer:
		return "SoftPointer"
	case ReferenceHardPointer:
		return "HardPointer"
	default:
		return "Unknown"
	}
}

// IsValid reports whether r is one of the defined reference codes.
func (r ReferenceType) IsValid() bool {
	switch r {
	case ReferenceNone, ReferenceSoftOwnership, ReferenceHardOwnership,
		ReferenceSoftPointer, ReferenceHardPointer:
		return true
	default:
		return false
	}
}

// IsOwnership reports whether r is an owning reference.
func (r ReferenceType) IsOwnership() bool {
	return r == ReferenceSoftOwnership || r == ReferenceHardOwnership
}
