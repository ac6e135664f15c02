package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated reports input that ended before a value was complete.
	ErrTruncated = errors.New("wire: truncated input")
	// ErrInvalidUTF8 reports a string payload that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("wire: invalid utf-8 string")
	// ErrBadMagic reports a container that does not start with PROP/PTCH.
	ErrBadMagic = errors.New("wire: bad magic")
	// ErrUnknownTag reports a tag byte the format does not define.
	ErrUnknownTag = errors.New("wire: unknown tag")
	// ErrSizeMismatch reports a container whose declared size disagrees with
	// the bytes its elements consumed.
	ErrSizeMismatch = errors.New("wire: size mismatch")
)

// OffsetError attaches the byte offset at which a wire error was detected.
type OffsetError struct {
	Offset int64
	Err    error
}

func (e *OffsetError) Error() string { return fmt.Sprintf("%v at offset %d", e.Err, e.Offset) }
func (e *OffsetError) Unwrap() error { return e.Err }

// RecordHeader describes the outermost bag of an asset entry.
type RecordHeader struct {
	NameHash   uint32 // class hash of the entry's record type
	PathHash   uint32 // entry path hash from the container
	FieldCount uint16
}

// BagHeader describes a nested field bag (Embed or Pointer payload).
// Null is set for a Pointer whose class hash is zero.
type BagHeader struct {
	ClassHash  uint32
	FieldCount uint16
	Null       bool
}

// FieldHeader identifies one (field-hash, wire-tag) pair inside a bag.
type FieldHeader struct {
	NameHash uint32
	Tag      Tag
}

// ListHeader describes a List/List2 value.
type ListHeader struct {
	Elem  Tag
	Count uint32
}

// OptionHeader describes an Option value.
type OptionHeader struct {
	Elem    Tag
	Present bool
}

// MapHeader describes a Map value.
type MapHeader struct {
	Key   Tag
	Value Tag
	Count uint32
}

// Source is the adapter the codec consumes. Implementations parse the
// container format; the codec drives them with the expected shapes.
// Reads are strictly sequential.
type Source interface {
	BeginRecord() (RecordHeader, error)
	BeginBag(tag Tag) (BagHeader, error)
	NextField() (FieldHeader, error)
	BeginList() (ListHeader, error)
	BeginOption() (OptionHeader, error)
	BeginMap() (MapHeader, error)

	Bool() (bool, error)
	I8() (int8, error)
	U8() (uint8, error)
	I16() (int16, error)
	U16() (uint16, error)
	I32() (int32, error)
	U32() (uint32, error)
	I64() (int64, error)
	U64() (uint64, error)
	F32() (float32, error)
	Vec2() ([2]float32, error)
	Vec3() ([3]float32, error)
	Vec4() ([4]float32, error)
	Mtx44() ([16]float32, error)
	RGBA() ([4]uint8, error)
	Str() (string, error)

	// Skip consumes one value of the given tag without decoding it.
	Skip(tag Tag) error
	// Offset returns the current byte position, or -1 when unknown.
	Offset() int64
}
