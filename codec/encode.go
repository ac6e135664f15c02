package codec

import (
	"reflect"
	"sort"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/wire"
)

// encoder writes typed records back to the binary format. Fields are
// written in descriptor (camelCase) order; absent optionals are omitted.
type encoder struct {
	tracker
	w *wire.Writer
}

func (e *encoder) fail(msg string) *propbin.Error {
	err := e.tracker.fail(propbin.CodeEncodeError)
	err.Message = msg
	return err
}

func (e *encoder) writerErr() error {
	if err := e.w.Err(); err != nil {
		pe := e.tracker.fail(propbin.CodeEncodeError)
		pe.Cause = err
		pe.Message = ""
		return pe
	}
	return nil
}

func (e *encoder) encodeFields(v reflect.Value, rd *propbin.RecordDescriptor) error {
	for _, fd := range rd.Fields {
		fv := v.Field(fd.Index)
		if fieldAbsent(fv, fd) {
			if fd.Required {
				e.push(propbin.FieldSeg(fd.Name))
				return e.fail("required field " + fd.Name + " is nil")
			}
			continue
		}
		if fd.Pointer || fd.Shape.Kind == propbin.KindIndirect {
			fv = fv.Elem()
		}
		e.push(propbin.FieldSeg(fd.Name))
		e.w.Field(fd.Hash, fd.Shape.WireTag())
		if err := e.encodeValue(fv, fd.Shape); err != nil {
			return err
		}
		if err := e.writerErr(); err != nil {
			return err
		}
		e.pop()
	}
	return nil
}

// fieldAbsent reports whether a struct field holds the "absent" state.
func fieldAbsent(fv reflect.Value, fd *propbin.FieldDescriptor) bool {
	if fd.Pointer || fd.Shape.Kind == propbin.KindIndirect || fd.Shape.Kind == propbin.KindVariant {
		return fv.IsNil()
	}
	if fd.Optional() {
		switch fd.Shape.Kind {
		case propbin.KindSequence, propbin.KindMapping:
			return fv.IsNil()
		}
	}
	return false
}

func (e *encoder) encodeValue(v reflect.Value, s *propbin.Shape) error {
	w := e.w
	switch s.Kind {
	case propbin.KindBool:
		w.Bool(v.Bool())
	case propbin.KindI8:
		w.I8(int8(v.Int()))
	case propbin.KindU8:
		w.U8(uint8(v.Uint()))
	case propbin.KindI16:
		w.I16(int16(v.Int()))
	case propbin.KindU16:
		w.U16(uint16(v.Uint()))
	case propbin.KindI32:
		w.I32(int32(v.Int()))
	case propbin.KindU32, propbin.KindHash, propbin.KindLink:
		w.U32(uint32(v.Uint()))
	case propbin.KindI64:
		w.I64(v.Int())
	case propbin.KindU64, propbin.KindPathHash:
		w.U64(v.Uint())
	case propbin.KindF32:
		w.F32(float32(v.Float()))
	case propbin.KindVec2:
		w.Vec2(v.Convert(reflect.TypeOf(propbin.Vec2{})).Interface().(propbin.Vec2))
	case propbin.KindVec3:
		w.Vec3(v.Convert(reflect.TypeOf(propbin.Vec3{})).Interface().(propbin.Vec3))
	case propbin.KindVec4:
		w.Vec4(v.Convert(reflect.TypeOf(propbin.Vec4{})).Interface().(propbin.Vec4))
	case propbin.KindMtx44:
		w.Mtx44(v.Convert(reflect.TypeOf(propbin.Mtx44{})).Interface().(propbin.Mtx44))
	case propbin.KindColor:
		w.RGBA(v.Convert(reflect.TypeOf(propbin.Color{})).Interface().(propbin.Color))
	case propbin.KindString:
		w.Str(v.String())
	case propbin.KindSequence:
		w.BeginList(s.Elem.WireTag(), v.Len())
		for i := 0; i < v.Len(); i++ {
			e.push(propbin.IndexSeg(i))
			if err := e.encodeValue(v.Index(i), s.Elem); err != nil {
				return err
			}
			e.pop()
		}
		w.EndList()
	case propbin.KindMapping:
		keys := sortedKeys(v, s.Key.Kind)
		w.BeginMap(s.Key.WireTag(), s.Elem.WireTag(), len(keys))
		for _, k := range keys {
			e.push(propbin.KeySeg(keyString(k, s.Key.Kind)))
			if err := e.encodeValue(k, s.Key); err != nil {
				return err
			}
			if err := e.encodeValue(v.MapIndex(k), s.Elem); err != nil {
				return err
			}
			e.pop()
		}
		w.EndMap()
	case propbin.KindRecord, propbin.KindIndirect:
		w.BeginBag(s.Record.Hash)
		if err := e.encodeFields(v, s.Record); err != nil {
			return err
		}
		w.EndBag()
	case propbin.KindVariant:
		if v.IsNil() {
			return e.fail("nil " + s.Variant.Name + " value")
		}
		c, ok := s.Variant.CaseOf(v.Elem())
		if !ok {
			return e.fail(v.Elem().Type().String() + " is not a case of " + s.Variant.Name)
		}
		if c.Sentinel {
			w.NullPointer()
			break
		}
		w.BeginBag(c.Tag)
		if err := e.encodeFields(v.Elem().Elem(), c.Record); err != nil {
			return err
		}
		w.EndBag()
	default:
		return e.fail("cannot encode " + s.String())
	}
	return e.writerErr()
}

// sortedKeys returns the keys of map m in native ascending order.
func sortedKeys(m reflect.Value, k propbin.Kind) []reflect.Value {
	keys := m.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j], k) })
	return keys
}

func keyLess(a, b reflect.Value, k propbin.Kind) bool {
	switch {
	case k == propbin.KindBool:
		return !a.Bool() && b.Bool()
	case k == propbin.KindString:
		return a.String() < b.String()
	case isSignedKind(k):
		return a.Int() < b.Int()
	}
	return a.Uint() < b.Uint()
}
