package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// ErrStringTooLong reports a string longer than the u16 length prefix allows.
var ErrStringTooLong = errors.New("wire: string longer than 65535 bytes")

type frameKind int

const (
	frameBag frameKind = iota
	frameEntry
	frameSized
)

type frame struct {
	kind    frameKind
	sizePos int // offset of the u32 size placeholder
	cntPos  int // offset of the u16 field count placeholder (bags and entries)
	fields  int
}

// Writer produces the container format. Errors are sticky: after the first
// failure every call is a no-op and Err reports the failure.
type Writer struct {
	buf   []byte
	stack []frame
	err   error
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the encoded bytes. It fails if containers are still open.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if len(w.stack) != 0 {
		return nil, fmt.Errorf("wire: %d unclosed containers", len(w.stack))
	}
	return w.buf, nil
}

// Err returns the first error encountered.
func (w *Writer) Err() error { return w.err }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *Writer) u16(v uint16) { w.buf = binary.LittleEndian.AppendUint16(w.buf, v) }
func (w *Writer) u32(v uint32) { w.buf = binary.LittleEndian.AppendUint32(w.buf, v) }
func (w *Writer) u64(v uint64) { w.buf = binary.LittleEndian.AppendUint64(w.buf, v) }

func (w *Writer) placeholder32() int {
	p := len(w.buf)
	w.u32(0)
	return p
}

func (w *Writer) placeholder16() int {
	p := len(w.buf)
	w.u16(0)
	return p
}

func (w *Writer) push(f frame) { w.stack = append(w.stack, f) }

func (w *Writer) pop(kind frameKind) (frame, bool) {
	n := len(w.stack)
	if n == 0 || w.stack[n-1].kind != kind {
		w.err = errors.New("wire: unbalanced container end")
		return frame{}, false
	}
	f := w.stack[n-1]
	w.stack = w.stack[:n-1]
	return f, true
}

func (w *Writer) patchSize(f frame) {
	binary.LittleEndian.PutUint32(w.buf[f.sizePos:], uint32(len(w.buf)-f.sizePos-4))
}

// BeginEntry opens an entry body: size, path hash, field count.
func (w *Writer) BeginEntry(pathHash uint32) {
	if w.err != nil {
		return
	}
	sp := w.placeholder32()
	w.u32(pathHash)
	w.push(frame{kind: frameEntry, sizePos: sp, cntPos: w.placeholder16()})
}

// EndEntry closes the entry opened by BeginEntry.
func (w *Writer) EndEntry() { w.endFields(frameEntry) }

// BeginBag opens an Embed or non-null Pointer payload of the given class.
func (w *Writer) BeginBag(class uint32) {
	if w.err != nil {
		return
	}
	w.u32(class)
	sp := w.placeholder32()
	w.push(frame{kind: frameBag, sizePos: sp, cntPos: w.placeholder16()})
}

// EndBag closes the bag opened by BeginBag.
func (w *Writer) EndBag() { w.endFields(frameBag) }

func (w *Writer) endFields(kind frameKind) {
	if w.err != nil {
		return
	}
	f, ok := w.pop(kind)
	if !ok {
		return
	}
	if f.fields > math.MaxUint16 {
		w.err = fmt.Errorf("wire: %d fields exceed u16 count", f.fields)
		return
	}
	binary.LittleEndian.PutUint16(w.buf[f.cntPos:], uint16(f.fields))
	w.patchSize(f)
}

// NullPointer writes a null Pointer payload (class hash zero).
func (w *Writer) NullPointer() {
	if w.err != nil {
		return
	}
	w.u32(0)
}

// Field writes a field header into the innermost open bag or entry.
func (w *Writer) Field(nameHash uint32, tag Tag) {
	if w.err != nil {
		return
	}
	n := len(w.stack)
	if n == 0 || w.stack[n-1].kind == frameSized {
		w.err = errors.New("wire: field written outside a bag")
		return
	}
	w.stack[n-1].fields++
	w.u32(nameHash)
	w.u8(uint8(tag))
}

// BeginList opens a List of count elements of the given tag.
func (w *Writer) BeginList(elem Tag, count int) {
	if w.err != nil {
		return
	}
	w.u8(uint8(elem))
	sp := w.placeholder32()
	w.u32(uint32(count))
	w.push(frame{kind: frameSized, sizePos: sp})
}

// EndList closes the innermost List.
func (w *Writer) EndList() { w.endSized() }

// BeginMap opens a Map of count pairs.
func (w *Writer) BeginMap(key, value Tag, count int) {
	if w.err != nil {
		return
	}
	w.u8(uint8(key))
	w.u8(uint8(value))
	sp := w.placeholder32()
	w.u32(uint32(count))
	w.push(frame{kind: frameSized, sizePos: sp})
}

// EndMap closes the innermost Map.
func (w *Writer) EndMap() { w.endSized() }

func (w *Writer) endSized() {
	if w.err != nil {
		return
	}
	f, ok := w.pop(frameSized)
	if !ok {
		return
	}
	w.patchSize(f)
}

// Option writes an Option header; a present element must follow.
func (w *Writer) Option(elem Tag, present bool) {
	if w.err != nil {
		return
	}
	w.u8(uint8(elem))
	if present {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *Writer) Bool(v bool) {
	if w.err != nil {
		return
	}
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *Writer) I8(v int8) {
	if w.err == nil {
		w.u8(uint8(v))
	}
}

func (w *Writer) U8(v uint8) {
	if w.err == nil {
		w.u8(v)
	}
}

func (w *Writer) I16(v int16) {
	if w.err == nil {
		w.u16(uint16(v))
	}
}

func (w *Writer) U16(v uint16) {
	if w.err == nil {
		w.u16(v)
	}
}

func (w *Writer) I32(v int32) {
	if w.err == nil {
		w.u32(uint32(v))
	}
}

func (w *Writer) U32(v uint32) {
	if w.err == nil {
		w.u32(v)
	}
}

func (w *Writer) I64(v int64) {
	if w.err == nil {
		w.u64(uint64(v))
	}
}

func (w *Writer) U64(v uint64) {
	if w.err == nil {
		w.u64(v)
	}
}

func (w *Writer) F32(v float32) {
	if w.err == nil {
		w.u32(math.Float32bits(v))
	}
}

func (w *Writer) floats(v []float32) {
	if w.err != nil {
		return
	}
	for _, f := range v {
		w.u32(math.Float32bits(f))
	}
}

func (w *Writer) Vec2(v [2]float32)   { w.floats(v[:]) }
func (w *Writer) Vec3(v [3]float32)   { w.floats(v[:]) }
func (w *Writer) Vec4(v [4]float32)   { w.floats(v[:]) }
func (w *Writer) Mtx44(m [16]float32) { w.floats(m[:]) }

func (w *Writer) RGBA(c [4]uint8) {
	if w.err == nil {
		w.buf = append(w.buf, c[:]...)
	}
}

func (w *Writer) Str(s string) {
	if w.err != nil {
		return
	}
	if len(s) > math.MaxUint16 {
		w.err = ErrStringTooLong
		return
	}
	if !utf8.ValidString(s) {
		w.err = ErrInvalidUTF8
		return
	}
	w.u16(uint16(len(s)))
	w.buf = append(w.buf, s...)
}

// Raw appends bytes verbatim. Tests use it to craft malformed input.
func (w *Writer) Raw(b []byte) {
	if w.err == nil {
		w.buf = append(w.buf, b...)
	}
}
