package codec

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"go.uber.org/zap"

	propbin "github.com/reoring/propbin"
	eng "github.com/reoring/propbin/internal/engine"
	"github.com/reoring/propbin/wire"
)

// decoder drives one binary decode. It is not shared across goroutines.
type decoder struct {
	tracker
	src     wire.Source
	depth   *eng.Nesting
	opt     propbin.DecodeOpt
	unknown int
	skipped []propbin.UnknownField
	field   uint32 // hash of the field being decoded, for diagnostics
}

func newDecoder(src wire.Source, opt propbin.DecodeOpt) *decoder {
	return &decoder{src: src, depth: eng.NewNesting(opt.EffectiveMaxDepth()), opt: opt}
}

func (d *decoder) fail(code string) *propbin.Error {
	e := d.tracker.fail(code)
	if off := d.src.Offset(); off >= 0 {
		e.Offset = off
	}
	return e
}

func (d *decoder) mismatch(s *propbin.Shape, tag wire.Tag) error {
	e := d.fail(propbin.CodeWireTagMismatch)
	e.Expected = s.WireTag().String()
	e.Actual = tag.String()
	e.FieldHash = d.field
	return e
}

// decodeRoot reads the outermost record header and the record body into v,
// a non-nil pointer to rd's Go type.
func (d *decoder) decodeRoot(rd *propbin.RecordDescriptor, v reflect.Value, code string) (wire.RecordHeader, error) {
	d.push(propbin.RootSeg(rd))
	hdr, err := d.src.BeginRecord()
	if err != nil {
		return hdr, d.convert(err)
	}
	if hdr.NameHash != rd.Hash {
		e := d.fail(code)
		e.Record = rd.Name
		e.Expected = rd.Name
		e.Actual = fmt.Sprintf("%#08x", hdr.NameHash)
		e.Tag = hdr.NameHash
		return hdr, e
	}
	return hdr, d.decodeBag(v.Elem(), rd, hdr.FieldCount)
}

// decodeBag fills the struct v from count wire fields, then checks that
// every required field was seen.
func (d *decoder) decodeBag(v reflect.Value, rd *propbin.RecordDescriptor, count uint16) error {
	if err := d.depth.Enter(rd); err != nil {
		return d.convert(err)
	}
	defer d.depth.Leave(rd)

	seen := newPresence(v.NumField())
	for i := 0; i < int(count); i++ {
		fh, err := d.src.NextField()
		if err != nil {
			return d.convert(err)
		}
		fd, ok := rd.FieldByHash(fh.NameHash)
		if !ok {
			if err := d.skipUnknown(fh); err != nil {
				return err
			}
			continue
		}
		d.push(propbin.FieldSeg(fd.Name))
		d.field = fd.Hash
		present, err := d.decodeField(v.Field(fd.Index), fd, fh.Tag)
		if err != nil {
			return err
		}
		d.pop()
		if present {
			seen.set(fd.Index)
		}
	}
	for _, fd := range rd.Fields {
		if fd.Required && !seen.has(fd.Index) {
			d.push(propbin.FieldSeg(fd.Name))
			e := d.fail(propbin.CodeMissingRequiredField)
			e.Record = rd.Name
			e.Field = fd.Name
			e.FieldHash = fd.Hash
			return e
		}
	}
	return nil
}

func (d *decoder) skipUnknown(fh wire.FieldHeader) error {
	d.unknown++
	if d.opt.CollectUnknown || d.opt.Logger != nil {
		path := d.path.String()
		if d.opt.CollectUnknown {
			d.skipped = append(d.skipped, propbin.UnknownField{Path: path, Hash: fh.NameHash, Tag: fh.Tag})
		}
		if d.opt.Logger != nil {
			d.opt.Logger.Debug("skipping unknown field",
				zap.String("path", path),
				zap.String("hash", fmt.Sprintf("%#08x", fh.NameHash)),
				zap.Stringer("tag", fh.Tag))
		}
	}
	return d.convert(d.src.Skip(fh.Tag))
}

// decodeField stores one wire value into the struct field fv. It reports
// false when the value turned out to be absent (null pointer or empty
// Option).
func (d *decoder) decodeField(fv reflect.Value, fd *propbin.FieldDescriptor, tag wire.Tag) (bool, error) {
	s := fd.Shape
	if tag == wire.TagOption && fd.Optional() {
		oh, err := d.src.BeginOption()
		if err != nil {
			return false, d.convert(err)
		}
		if !oh.Present {
			return false, nil
		}
		tag = oh.Elem
	}
	if !fd.Pointer && s.Kind != propbin.KindIndirect {
		err := d.decodeValue(fv, s, tag)
		if errors.Is(err, errNullBag) {
			return false, nil
		}
		return err == nil, err
	}
	typ := s.Type
	if s.Kind == propbin.KindIndirect {
		typ = s.Type.Elem()
	}
	nv := reflect.New(typ)
	err := d.decodeValue(nv.Elem(), s, tag)
	if errors.Is(err, errNullBag) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	fv.Set(nv)
	return true, nil
}

// decodeValue decodes one value written with tag into v per shape s. For
// indirect shapes v is the pointee.
func (d *decoder) decodeValue(v reflect.Value, s *propbin.Shape, tag wire.Tag) error {
	if !s.Accepts(tag) {
		return d.mismatch(s, tag)
	}
	src := d.src
	switch s.Kind {
	case propbin.KindBool:
		b, err := src.Bool()
		if err != nil {
			return d.convert(err)
		}
		v.SetBool(b)
	case propbin.KindI8, propbin.KindU8, propbin.KindI16, propbin.KindU16,
		propbin.KindI32, propbin.KindU32, propbin.KindI64, propbin.KindU64:
		return d.decodeInt(v, s.Kind, tag)
	case propbin.KindF32:
		f, err := src.F32()
		if err != nil {
			return d.convert(err)
		}
		v.SetFloat(float64(f))
	case propbin.KindVec2:
		a, err := src.Vec2()
		if err != nil {
			return d.convert(err)
		}
		v.Set(reflect.ValueOf(propbin.Vec2(a)).Convert(v.Type()))
	case propbin.KindVec3:
		a, err := src.Vec3()
		if err != nil {
			return d.convert(err)
		}
		v.Set(reflect.ValueOf(propbin.Vec3(a)).Convert(v.Type()))
	case propbin.KindVec4:
		a, err := src.Vec4()
		if err != nil {
			return d.convert(err)
		}
		v.Set(reflect.ValueOf(propbin.Vec4(a)).Convert(v.Type()))
	case propbin.KindMtx44:
		a, err := src.Mtx44()
		if err != nil {
			return d.convert(err)
		}
		v.Set(reflect.ValueOf(propbin.Mtx44(a)).Convert(v.Type()))
	case propbin.KindColor:
		a, err := src.RGBA()
		if err != nil {
			return d.convert(err)
		}
		v.Set(reflect.ValueOf(propbin.Color(a)).Convert(v.Type()))
	case propbin.KindString:
		str, err := src.Str()
		if err != nil {
			return d.convert(err)
		}
		v.SetString(str)
	case propbin.KindHash, propbin.KindLink:
		h, err := src.U32()
		if err != nil {
			return d.convert(err)
		}
		v.SetUint(uint64(h))
	case propbin.KindPathHash:
		h, err := src.U64()
		if err != nil {
			return d.convert(err)
		}
		v.SetUint(h)
	case propbin.KindSequence:
		return d.decodeList(v, s)
	case propbin.KindMapping:
		return d.decodeMap(v, s)
	case propbin.KindRecord, propbin.KindIndirect:
		return d.decodeRecord(v, s.Record, tag)
	case propbin.KindVariant:
		return d.decodeVariant(v, s.Variant, tag)
	default:
		return d.mismatch(s, tag)
	}
	return nil
}

func (d *decoder) decodeRecord(v reflect.Value, rd *propbin.RecordDescriptor, tag wire.Tag) error {
	bh, err := d.src.BeginBag(tag)
	if err != nil {
		return d.convert(err)
	}
	if bh.Null {
		return errNullBag
	}
	if bh.ClassHash != rd.Hash {
		e := d.fail(propbin.CodeRecordTypeMismatch)
		e.Record = rd.Name
		e.Expected = rd.Name
		e.Actual = fmt.Sprintf("%#08x", bh.ClassHash)
		e.Tag = bh.ClassHash
		return e
	}
	return d.decodeBag(v, rd, bh.FieldCount)
}

func (d *decoder) decodeVariant(v reflect.Value, vd *propbin.VariantDescriptor, tag wire.Tag) error {
	bh, err := d.src.BeginBag(tag)
	if err != nil {
		return d.convert(err)
	}
	if bh.Null {
		if vd.Sentinel != nil {
			v.Set(reflect.New(vd.Sentinel.Record.Type))
			return nil
		}
		return errNullBag
	}
	c, ok := vd.Case(bh.ClassHash)
	if !ok {
		e := d.fail(propbin.CodeUnknownVariantCase)
		e.Record = vd.Name
		e.Tag = bh.ClassHash
		return e
	}
	nv := reflect.New(c.Record.Type)
	if err := d.decodeBag(nv.Elem(), c.Record, bh.FieldCount); err != nil {
		return err
	}
	v.Set(nv)
	return nil
}

// maxPrealloc bounds up-front allocation for wire-declared counts.
const maxPrealloc = 1 << 12

func (d *decoder) decodeList(v reflect.Value, s *propbin.Shape) error {
	lh, err := d.src.BeginList()
	if err != nil {
		return d.convert(err)
	}
	if lh.Count > 0 && !s.Elem.Accepts(lh.Elem) {
		return d.mismatch(s.Elem, lh.Elem)
	}
	n := int(lh.Count)
	out := reflect.MakeSlice(s.Type, 0, min(n, maxPrealloc))
	elem := reflect.New(s.Type.Elem()).Elem()
	zero := reflect.Zero(s.Type.Elem())
	for i := 0; i < n; i++ {
		d.push(propbin.IndexSeg(i))
		elem.Set(zero)
		if err := d.decodeValue(elem, s.Elem, lh.Elem); err != nil {
			if errors.Is(err, errNullBag) {
				e := d.fail(propbin.CodeMalformedInput)
				e.Message = "null element in list"
				return e
			}
			return err
		}
		d.pop()
		out = reflect.Append(out, elem)
	}
	v.Set(out)
	return nil
}

func (d *decoder) decodeMap(v reflect.Value, s *propbin.Shape) error {
	mh, err := d.src.BeginMap()
	if err != nil {
		return d.convert(err)
	}
	if mh.Count > 0 {
		if !s.Key.Accepts(mh.Key) {
			return d.mismatch(s.Key, mh.Key)
		}
		if !s.Elem.Accepts(mh.Value) {
			return d.mismatch(s.Elem, mh.Value)
		}
	}
	n := int(mh.Count)
	out := reflect.MakeMapWithSize(s.Type, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		key := reflect.New(s.Type.Key()).Elem()
		if err := d.decodeValue(key, s.Key, mh.Key); err != nil {
			return err
		}
		ks := keyString(key, s.Key.Kind)
		if out.MapIndex(key).IsValid() {
			e := d.fail(propbin.CodeDuplicateKey)
			e.Key = ks
			e.FieldHash = d.field
			return e
		}
		d.push(propbin.KeySeg(ks))
		val := reflect.New(s.Type.Elem()).Elem()
		if err := d.decodeValue(val, s.Elem, mh.Value); err != nil {
			if errors.Is(err, errNullBag) {
				e := d.fail(propbin.CodeMalformedInput)
				e.Message = "null map value"
				return e
			}
			return err
		}
		d.pop()
		out.SetMapIndex(key, val)
	}
	v.Set(out)
	return nil
}

// decodeInt reads any integer tag and narrows it into the kind k.
func (d *decoder) decodeInt(v reflect.Value, k propbin.Kind, tag wire.Tag) error {
	var (
		i      int64
		u      uint64
		signed = tag.IsSigned()
		err    error
	)
	src := d.src
	switch tag {
	case wire.TagI8:
		var x int8
		x, err = src.I8()
		i = int64(x)
	case wire.TagU8:
		var x uint8
		x, err = src.U8()
		u = uint64(x)
	case wire.TagI16:
		var x int16
		x, err = src.I16()
		i = int64(x)
	case wire.TagU16:
		var x uint16
		x, err = src.U16()
		u = uint64(x)
	case wire.TagI32:
		var x int32
		x, err = src.I32()
		i = int64(x)
	case wire.TagU32:
		var x uint32
		x, err = src.U32()
		u = uint64(x)
	case wire.TagI64:
		i, err = src.I64()
	case wire.TagU64:
		u, err = src.U64()
	}
	if err != nil {
		return d.convert(err)
	}
	if !fitsInt(k, i, u, signed) {
		e := d.fail(propbin.CodeIntegerOverflow)
		e.Expected = k.String()
		if signed {
			e.Actual = tag.String() + " " + strconv.FormatInt(i, 10)
		} else {
			e.Actual = tag.String() + " " + strconv.FormatUint(u, 10)
		}
		e.FieldHash = d.field
		return e
	}
	if isSignedKind(k) {
		if !signed {
			i = int64(u)
		}
		v.SetInt(i)
	} else {
		if signed {
			u = uint64(i)
		}
		v.SetUint(u)
	}
	return nil
}

func isSignedKind(k propbin.Kind) bool {
	switch k {
	case propbin.KindI8, propbin.KindI16, propbin.KindI32, propbin.KindI64:
		return true
	}
	return false
}

func intRange(k propbin.Kind) (lo int64, hi uint64) {
	switch k {
	case propbin.KindI8:
		return math.MinInt8, math.MaxInt8
	case propbin.KindU8:
		return 0, math.MaxUint8
	case propbin.KindI16:
		return math.MinInt16, math.MaxInt16
	case propbin.KindU16:
		return 0, math.MaxUint16
	case propbin.KindI32:
		return math.MinInt32, math.MaxInt32
	case propbin.KindU32:
		return 0, math.MaxUint32
	case propbin.KindI64:
		return math.MinInt64, math.MaxInt64
	}
	return 0, math.MaxUint64
}

// fitsInt reports whether the wire integer (i when signed, u otherwise)
// is representable in kind k.
func fitsInt(k propbin.Kind, i int64, u uint64, signed bool) bool {
	lo, hi := intRange(k)
	if signed {
		if i < 0 {
			return i >= lo
		}
		return uint64(i) <= hi
	}
	return u <= hi
}

// presence is a bitset over Go struct field indices.
type presence []uint64

func newPresence(n int) presence { return make(presence, (n+63)/64) }

func (p presence) set(i int)      { p[i/64] |= 1 << (uint(i) % 64) }
func (p presence) has(i int) bool { return p[i/64]&(1<<(uint(i)%64)) != 0 }
