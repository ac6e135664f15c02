package wire

import (
	"errors"
	"testing"
)

func TestReaderWriter_Primitives(t *testing.T) {
	w := NewWriter()
	w.Bool(true)
	w.I8(-3)
	w.U16(0xbeef)
	w.I32(-100000)
	w.U64(1 << 60)
	w.F32(1.5)
	w.Vec3([3]float32{1, 2, 3})
	w.RGBA([4]uint8{1, 2, 3, 4})
	w.Str("héllo")
	b, err := w.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}

	r := NewReader(b)
	if v, _ := r.Bool(); !v {
		t.Fatalf("bool")
	}
	if v, _ := r.I8(); v != -3 {
		t.Fatalf("i8=%d", v)
	}
	if v, _ := r.U16(); v != 0xbeef {
		t.Fatalf("u16=%x", v)
	}
	if v, _ := r.I32(); v != -100000 {
		t.Fatalf("i32=%d", v)
	}
	if v, _ := r.U64(); v != 1<<60 {
		t.Fatalf("u64=%d", v)
	}
	if v, _ := r.F32(); v != 1.5 {
		t.Fatalf("f32=%v", v)
	}
	if v, _ := r.Vec3(); v != [3]float32{1, 2, 3} {
		t.Fatalf("vec3=%v", v)
	}
	if v, _ := r.RGBA(); v != [4]uint8{1, 2, 3, 4} {
		t.Fatalf("rgba=%v", v)
	}
	if v, err := r.Str(); err != nil || v != "héllo" {
		t.Fatalf("str=%q err=%v", v, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("remaining=%d", r.Remaining())
	}
}

func TestReader_Truncated(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.U32()
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncated, got %v", err)
	}
	var oe *OffsetError
	if !errors.As(err, &oe) || oe.Offset != 0 {
		t.Fatalf("expected offset error at 0, got %v", err)
	}
}

func TestReader_InvalidUTF8(t *testing.T) {
	w := NewWriter()
	w.U16(2)
	w.Raw([]byte{0xff, 0xfe})
	b, _ := w.Bytes()
	_, err := NewReader(b).Str()
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected utf8 error, got %v", err)
	}
}

func TestWriter_BagSizesAndSkip(t *testing.T) {
	w := NewWriter()
	w.BeginBag(0x1234)
	w.Field(1, TagF32)
	w.F32(2)
	w.Field(2, TagList)
	w.BeginList(TagString, 2)
	w.Str("a")
	w.Str("bc")
	w.EndList()
	w.Field(3, TagMap)
	w.BeginMap(TagU32, TagPointer, 1)
	w.U32(9)
	w.NullPointer()
	w.EndMap()
	w.Field(4, TagOption)
	w.Option(TagU8, true)
	w.U8(7)
	w.EndBag()
	w.U8(0xaa) // sentinel after the bag
	b, err := w.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}

	r := NewReader(b)
	if err := r.Skip(TagEmbed); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if v, _ := r.U8(); v != 0xaa {
		t.Fatalf("skip landed at wrong offset, got %#x", v)
	}

	r = NewReader(b)
	h, err := r.BeginRecord()
	if err != nil || h.NameHash != 0x1234 || h.FieldCount != 4 {
		t.Fatalf("header=%+v err=%v", h, err)
	}
	for i := 0; i < int(h.FieldCount); i++ {
		f, err := r.NextField()
		if err != nil {
			t.Fatalf("field %d: %v", i, err)
		}
		if err := r.Skip(f.Tag); err != nil {
			t.Fatalf("skip field %d (%s): %v", i, f.Tag, err)
		}
	}
	if v, _ := r.U8(); v != 0xaa {
		t.Fatalf("field skipping landed at wrong offset, got %#x", v)
	}
}

func TestWriter_Unbalanced(t *testing.T) {
	w := NewWriter()
	w.BeginBag(1)
	if _, err := w.Bytes(); err == nil {
		t.Fatalf("expected unclosed container error")
	}
	w = NewWriter()
	w.EndList()
	if w.Err() == nil {
		t.Fatalf("expected unbalanced error")
	}
	w = NewWriter()
	w.Field(1, TagBool)
	if w.Err() == nil {
		t.Fatalf("expected field outside bag error")
	}
}

func TestFile_RoundTrip(t *testing.T) {
	ew := NewWriter()
	ew.BeginEntry(0xabcdef01)
	ew.Field(0x11, TagString)
	ew.Str("x")
	ew.EndEntry()
	entry, err := ew.Bytes()
	if err != nil {
		t.Fatalf("entry: %v", err)
	}

	f := &File{Version: 3, Linked: []string{"data/base.bin"}, Entries: []Entry{{ClassHash: 0x42, Data: entry}}}
	b, err := f.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := ReadFile(b)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Version != 3 || len(got.Linked) != 1 || got.Linked[0] != "data/base.bin" {
		t.Fatalf("header mismatch: %+v", got)
	}
	if len(got.Entries) != 1 || got.Entries[0].ClassHash != 0x42 || got.Entries[0].PathHash != 0xabcdef01 {
		t.Fatalf("entries mismatch: %+v", got.Entries)
	}
	src := got.Entries[0].Source()
	h, err := src.BeginRecord()
	if err != nil || h.NameHash != 0x42 || h.PathHash != 0xabcdef01 || h.FieldCount != 1 {
		t.Fatalf("record header=%+v err=%v", h, err)
	}
}

func TestFile_PatchRoundTrip(t *testing.T) {
	val := NewWriter()
	val.F32(3)
	vb, _ := val.Bytes()
	f := &File{Patch: true, Version: 3, Patches: []Patch{{PathHash: 7, Path: "mSpell.mCooldown", Tag: TagF32, Value: vb}}}
	b, err := f.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := ReadFile(b)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !got.Patch || len(got.Patches) != 1 || got.Patches[0].Path != "mSpell.mCooldown" || len(got.Patches[0].Value) != 4 {
		t.Fatalf("patch mismatch: %+v", got.Patches)
	}
}

func TestReadFile_BadMagic(t *testing.T) {
	_, err := ReadFile([]byte("NOPE\x01\x00\x00\x00"))
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected bad magic, got %v", err)
	}
}

func TestTag_Names(t *testing.T) {
	if TagList2.String() != "list2" || Tag(0x99).String() != "tag(153)" {
		t.Fatalf("unexpected names")
	}
	if !TagU8.IsInteger() || TagF32.IsInteger() || !TagI64.IsSigned() {
		t.Fatalf("unexpected classification")
	}
}
