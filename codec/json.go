package codec

import (
	"bytes"
	"math"
	"reflect"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	propbin "github.com/reoring/propbin"
)

// jsonWriter renders typed records as compact JSON. Field order follows the
// descriptor, mapping entries follow native key order, so output is
// byte-stable for equal inputs.
type jsonWriter struct {
	tracker
	buf bytes.Buffer
}

func (jw *jsonWriter) fail(msg string) *propbin.Error {
	e := jw.tracker.fail(propbin.CodeEncodeError)
	e.Message = msg
	return e
}

func (jw *jsonWriter) str(s string) error {
	b, err := j.MarshalWithOption(s, j.DisableHTMLEscape())
	if err != nil {
		e := jw.fail("")
		e.Cause = err
		return e
	}
	jw.buf.Write(b)
	return nil
}

func (jw *jsonWriter) record(v reflect.Value, rd *propbin.RecordDescriptor) error {
	jw.buf.WriteByte('{')
	first := true
	for _, fd := range rd.Fields {
		fv := v.Field(fd.Index)
		if fieldAbsent(fv, fd) {
			if fd.Required {
				jw.push(propbin.FieldSeg(fd.Name))
				return jw.fail("required field " + fd.Name + " is nil")
			}
			continue
		}
		if fd.Pointer || fd.Shape.Kind == propbin.KindIndirect {
			fv = fv.Elem()
		}
		if !first {
			jw.buf.WriteByte(',')
		}
		first = false
		if err := jw.str(fd.Name); err != nil {
			return err
		}
		jw.buf.WriteByte(':')
		jw.push(propbin.FieldSeg(fd.Name))
		if err := jw.value(fv, fd.Shape); err != nil {
			return err
		}
		jw.pop()
	}
	jw.buf.WriteByte('}')
	return nil
}

func (jw *jsonWriter) value(v reflect.Value, s *propbin.Shape) error {
	b := &jw.buf
	switch s.Kind {
	case propbin.KindBool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case propbin.KindI8, propbin.KindI16, propbin.KindI32, propbin.KindI64:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case propbin.KindU8, propbin.KindU16, propbin.KindU32, propbin.KindU64,
		propbin.KindHash, propbin.KindPathHash, propbin.KindLink:
		b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case propbin.KindF32:
		return jw.float(float32(v.Float()))
	case propbin.KindVec2, propbin.KindVec3, propbin.KindVec4, propbin.KindMtx44:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			jw.push(propbin.IndexSeg(i))
			if err := jw.float(float32(v.Index(i).Float())); err != nil {
				return err
			}
			jw.pop()
		}
		b.WriteByte(']')
	case propbin.KindColor:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatUint(v.Index(i).Uint(), 10))
		}
		b.WriteByte(']')
	case propbin.KindString:
		return jw.str(v.String())
	case propbin.KindSequence:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			jw.push(propbin.IndexSeg(i))
			if err := jw.value(v.Index(i), s.Elem); err != nil {
				return err
			}
			jw.pop()
		}
		b.WriteByte(']')
	case propbin.KindMapping:
		b.WriteByte('{')
		for i, k := range sortedKeys(v, s.Key.Kind) {
			if i > 0 {
				b.WriteByte(',')
			}
			ks := keyString(k, s.Key.Kind)
			if err := jw.str(ks); err != nil {
				return err
			}
			b.WriteByte(':')
			jw.push(propbin.KeySeg(ks))
			if err := jw.value(v.MapIndex(k), s.Elem); err != nil {
				return err
			}
			jw.pop()
		}
		b.WriteByte('}')
	case propbin.KindRecord, propbin.KindIndirect:
		return jw.record(v, s.Record)
	case propbin.KindVariant:
		if v.IsNil() {
			return jw.fail("nil " + s.Variant.Name + " value")
		}
		c, ok := s.Variant.CaseOf(v.Elem())
		if !ok {
			return jw.fail(v.Elem().Type().String() + " is not a case of " + s.Variant.Name)
		}
		if c.Unit() {
			return jw.str(c.JSONName)
		}
		b.WriteByte('{')
		if err := jw.str(c.JSONName); err != nil {
			return err
		}
		b.WriteByte(':')
		if err := jw.record(v.Elem().Elem(), c.Record); err != nil {
			return err
		}
		b.WriteByte('}')
	default:
		return jw.fail("cannot render " + s.String())
	}
	return nil
}

func (jw *jsonWriter) float(f float32) error {
	s, ok := FormatFloat32(f)
	if !ok {
		return jw.fail("non-finite float " + s)
	}
	jw.buf.WriteString(s)
	return nil
}

// FormatFloat32 renders f with the shortest decimal that round-trips at
// 32-bit precision, appending ".0" to integral values. ok is false for NaN
// and infinities, which JSON cannot carry.
func FormatFloat32(f float32) (string, bool) {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return s, false
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, true
}

// keyString renders a mapping key as its JSON object key: decimal for
// integers and hashes, "true"/"false" for bools, the string itself
// otherwise.
func keyString(k reflect.Value, kind propbin.Kind) string {
	switch {
	case kind == propbin.KindString:
		return k.String()
	case kind == propbin.KindBool:
		return strconv.FormatBool(k.Bool())
	case isSignedKind(kind):
		return strconv.FormatInt(k.Int(), 10)
	}
	return strconv.FormatUint(k.Uint(), 10)
}

func indent(compact []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := j.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
