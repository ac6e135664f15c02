package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Reader is a Source over an in-memory byte slice, little-endian throughout.
type Reader struct {
	buf []byte
	pos int
	// entry mode: BeginRecord reads an entry body whose class hash lives in
	// the container's hash table rather than in the stream.
	entry bool
	class uint32
}

// NewReader returns a Reader whose BeginRecord reads an embedded bag
// (class hash, size, field count).
func NewReader(b []byte) *Reader { return &Reader{buf: b} }

// NewEntryReader returns a Reader positioned at an entry body
// (size, path hash, field count) of the given class.
func NewEntryReader(b []byte, class uint32) *Reader {
	return &Reader{buf: b, entry: true, class: class}
}

func (r *Reader) Offset() int64 { return int64(r.pos) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) fail(err error) error { return &OffsetError{Offset: int64(r.pos), Err: err} }

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, r.fail(ErrTruncated)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// size reads a u32 size prefix and checks it fits the remaining input.
func (r *Reader) size() (int, error) {
	n, err := r.U32()
	if err != nil {
		return 0, err
	}
	if int64(n) > int64(r.Remaining()) {
		return 0, r.fail(ErrTruncated)
	}
	return int(n), nil
}

func (r *Reader) tag() (Tag, error) {
	b, err := r.U8()
	if err != nil {
		return 0, err
	}
	t := Tag(b)
	if !t.Valid() {
		r.pos--
		return 0, r.fail(ErrUnknownTag)
	}
	return t, nil
}

func (r *Reader) BeginRecord() (RecordHeader, error) {
	if r.entry {
		if _, err := r.size(); err != nil {
			return RecordHeader{}, err
		}
		path, err := r.U32()
		if err != nil {
			return RecordHeader{}, err
		}
		n, err := r.U16()
		if err != nil {
			return RecordHeader{}, err
		}
		return RecordHeader{NameHash: r.class, PathHash: path, FieldCount: n}, nil
	}
	h, err := r.BeginBag(TagEmbed)
	if err != nil {
		return RecordHeader{}, err
	}
	return RecordHeader{NameHash: h.ClassHash, FieldCount: h.FieldCount}, nil
}

func (r *Reader) BeginBag(tag Tag) (BagHeader, error) {
	class, err := r.U32()
	if err != nil {
		return BagHeader{}, err
	}
	if tag == TagPointer && class == 0 {
		return BagHeader{Null: true}, nil
	}
	if _, err := r.size(); err != nil {
		return BagHeader{}, err
	}
	n, err := r.U16()
	if err != nil {
		return BagHeader{}, err
	}
	return BagHeader{ClassHash: class, FieldCount: n}, nil
}

func (r *Reader) NextField() (FieldHeader, error) {
	h, err := r.U32()
	if err != nil {
		return FieldHeader{}, err
	}
	t, err := r.tag()
	if err != nil {
		return FieldHeader{}, err
	}
	return FieldHeader{NameHash: h, Tag: t}, nil
}

func (r *Reader) BeginList() (ListHeader, error) {
	elem, err := r.tag()
	if err != nil {
		return ListHeader{}, err
	}
	if _, err := r.size(); err != nil {
		return ListHeader{}, err
	}
	n, err := r.U32()
	if err != nil {
		return ListHeader{}, err
	}
	return ListHeader{Elem: elem, Count: n}, nil
}

func (r *Reader) BeginOption() (OptionHeader, error) {
	elem, err := r.tag()
	if err != nil {
		return OptionHeader{}, err
	}
	n, err := r.U8()
	if err != nil {
		return OptionHeader{}, err
	}
	return OptionHeader{Elem: elem, Present: n != 0}, nil
}

func (r *Reader) BeginMap() (MapHeader, error) {
	k, err := r.tag()
	if err != nil {
		return MapHeader{}, err
	}
	v, err := r.tag()
	if err != nil {
		return MapHeader{}, err
	}
	if _, err := r.size(); err != nil {
		return MapHeader{}, err
	}
	n, err := r.U32()
	if err != nil {
		return MapHeader{}, err
	}
	return MapHeader{Key: k, Value: v, Count: n}, nil
}

func (r *Reader) Bool() (bool, error) {
	b, err := r.U8()
	return b != 0, err
}

func (r *Reader) I8() (int8, error) {
	b, err := r.U8()
	return int8(b), err
}

func (r *Reader) U8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

func (r *Reader) U16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

func (r *Reader) U32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

func (r *Reader) U64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	return math.Float32frombits(v), err
}

func (r *Reader) floats(dst []float32) error {
	b, err := r.take(4 * len(dst))
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return nil
}

func (r *Reader) Vec2() (v [2]float32, err error) {
	err = r.floats(v[:])
	return
}

func (r *Reader) Vec3() (v [3]float32, err error) {
	err = r.floats(v[:])
	return
}

func (r *Reader) Vec4() (v [4]float32, err error) {
	err = r.floats(v[:])
	return
}

func (r *Reader) Mtx44() (m [16]float32, err error) {
	err = r.floats(m[:])
	return
}

func (r *Reader) RGBA() (c [4]uint8, err error) {
	b, err := r.take(4)
	if err != nil {
		return c, err
	}
	copy(c[:], b)
	return c, nil
}

func (r *Reader) Str() (string, error) {
	n, err := r.U16()
	if err != nil {
		return "", err
	}
	start := r.pos
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &OffsetError{Offset: int64(start), Err: ErrInvalidUTF8}
	}
	return string(b), nil
}

func (r *Reader) skip(n int) error {
	_, err := r.take(n)
	return err
}

func (r *Reader) Skip(tag Tag) error {
	if n := tag.FixedSize(); n >= 0 {
		return r.skip(n)
	}
	switch tag {
	case TagString:
		n, err := r.U16()
		if err != nil {
			return err
		}
		return r.skip(int(n))
	case TagList, TagList2:
		if _, err := r.tag(); err != nil {
			return err
		}
		n, err := r.size()
		if err != nil {
			return err
		}
		return r.skip(n)
	case TagMap:
		if _, err := r.tag(); err != nil {
			return err
		}
		if _, err := r.tag(); err != nil {
			return err
		}
		n, err := r.size()
		if err != nil {
			return err
		}
		return r.skip(n)
	case TagPointer, TagEmbed:
		class, err := r.U32()
		if err != nil {
			return err
		}
		if tag == TagPointer && class == 0 {
			return nil
		}
		n, err := r.size()
		if err != nil {
			return err
		}
		return r.skip(n)
	case TagOption:
		h, err := r.BeginOption()
		if err != nil {
			return err
		}
		if h.Present {
			return r.Skip(h.Elem)
		}
		return nil
	}
	return r.fail(ErrUnknownTag)
}

var _ Source = (*Reader)(nil)
