package codec

import (
	"errors"
	"reflect"
	"strconv"

	"go.uber.org/zap"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/hash"
	eng "github.com/reoring/propbin/internal/engine"
)

// jsonDecoder rebuilds typed records from the JSON produced by MarshalJSON.
// Unknown object keys on records are skipped and counted like unknown wire
// fields; every other disagreement with the shape is an error.
type jsonDecoder struct {
	tracker
	src     eng.TokenSource
	depth   *eng.Nesting
	opt     propbin.DecodeOpt
	unknown int
	skipped []propbin.UnknownField
}

func (d *jsonDecoder) next() (eng.Token, error) {
	tok, err := d.src.NextToken()
	if err != nil {
		return tok, d.convert(err)
	}
	return tok, nil
}

func (d *jsonDecoder) unexpected(want string, got eng.Token) error {
	e := d.fail(propbin.CodeMalformedInput)
	e.Message = ""
	e.Expected = want
	e.Actual = got.Kind.String()
	return e
}

func (d *jsonDecoder) record(v reflect.Value, rd *propbin.RecordDescriptor, tok eng.Token) error {
	if tok.Kind != eng.KindBeginObject {
		return d.unexpected("object for "+rd.Name, tok)
	}
	if err := d.depth.Enter(rd); err != nil {
		return d.convert(err)
	}
	defer d.depth.Leave(rd)

	seen := newPresence(v.NumField())
	for {
		key, err := d.next()
		if err != nil {
			return err
		}
		if key.Kind == eng.KindEndObject {
			break
		}
		vt, err := d.next()
		if err != nil {
			return err
		}
		fd, ok := rd.FieldByName(key.String)
		if !ok {
			d.skipKey(key.String)
			if err := eng.Skip(d.src, vt); err != nil {
				return d.convert(err)
			}
			continue
		}
		d.push(propbin.FieldSeg(fd.Name))
		present, err := d.field(v.Field(fd.Index), fd, vt)
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

func (d *jsonDecoder) skipKey(name string) {
	d.unknown++
	if !d.opt.CollectUnknown && d.opt.Logger == nil {
		return
	}
	path := d.path.String()
	h := hash.Name(name)
	if d.opt.CollectUnknown {
		d.skipped = append(d.skipped, propbin.UnknownField{Path: path, Hash: h})
	}
	if d.opt.Logger != nil {
		d.opt.Logger.Debug("skipping unknown key", zap.String("path", path), zap.String("key", name))
	}
}

func (d *jsonDecoder) field(fv reflect.Value, fd *propbin.FieldDescriptor, tok eng.Token) (bool, error) {
	if tok.Kind == eng.KindNull && fd.Optional() {
		return false, nil
	}
	if !fd.Pointer && fd.Shape.Kind != propbin.KindIndirect {
		return true, d.value(fv, fd.Shape, tok)
	}
	typ := fd.Shape.Type
	if fd.Shape.Kind == propbin.KindIndirect {
		typ = typ.Elem()
	}
	nv := reflect.New(typ)
	if err := d.value(nv.Elem(), fd.Shape, tok); err != nil {
		return false, err
	}
	fv.Set(nv)
	return true, nil
}

func (d *jsonDecoder) value(v reflect.Value, s *propbin.Shape, tok eng.Token) error {
	switch s.Kind {
	case propbin.KindBool:
		if tok.Kind != eng.KindBool {
			return d.unexpected("bool", tok)
		}
		v.SetBool(tok.Bool)
	case propbin.KindI8, propbin.KindU8, propbin.KindI16, propbin.KindU16,
		propbin.KindI32, propbin.KindU32, propbin.KindI64, propbin.KindU64,
		propbin.KindHash, propbin.KindPathHash, propbin.KindLink:
		if tok.Kind != eng.KindNumber {
			return d.unexpected("integer", tok)
		}
		return d.integer(v, s.Kind, tok.Number)
	case propbin.KindF32:
		if tok.Kind != eng.KindNumber {
			return d.unexpected("number", tok)
		}
		f, err := d.float(tok.Number)
		if err != nil {
			return err
		}
		v.SetFloat(float64(f))
	case propbin.KindVec2, propbin.KindVec3, propbin.KindVec4, propbin.KindMtx44, propbin.KindColor:
		return d.fixedArray(v, s, tok)
	case propbin.KindString:
		if tok.Kind != eng.KindString {
			return d.unexpected("string", tok)
		}
		v.SetString(tok.String)
	case propbin.KindSequence:
		return d.sequence(v, s, tok)
	case propbin.KindMapping:
		return d.mapping(v, s, tok)
	case propbin.KindRecord, propbin.KindIndirect:
		return d.record(v, s.Record, tok)
	case propbin.KindVariant:
		return d.variant(v, s.Variant, tok)
	default:
		return d.unexpected(s.String(), tok)
	}
	return nil
}

func (d *jsonDecoder) integer(v reflect.Value, k propbin.Kind, text string) error {
	switch k {
	case propbin.KindHash, propbin.KindLink:
		k = propbin.KindU32
	case propbin.KindPathHash:
		k = propbin.KindU64
	}
	lo, hi := intRange(k)
	if isSignedKind(k) {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil || i < lo || (i > 0 && uint64(i) > hi) {
			return d.overflow(k, text, err)
		}
		v.SetInt(i)
		return nil
	}
	u, err := strconv.ParseUint(text, 10, 64)
	if err != nil || u > hi {
		return d.overflow(k, text, err)
	}
	v.SetUint(u)
	return nil
}

func (d *jsonDecoder) overflow(k propbin.Kind, text string, err error) error {
	code := propbin.CodeIntegerOverflow
	var ne *strconv.NumError
	if errors.As(err, &ne) && !errors.Is(ne.Err, strconv.ErrRange) {
		code = propbin.CodeMalformedInput
	}
	e := d.fail(code)
	e.Message = ""
	e.Expected = k.String()
	e.Actual = text
	return e
}

func (d *jsonDecoder) float(text string) (float32, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		e := d.fail(propbin.CodeMalformedInput)
		e.Message = ""
		e.Expected = "f32"
		e.Actual = text
		return 0, e
	}
	return float32(f), nil
}

func (d *jsonDecoder) fixedArray(v reflect.Value, s *propbin.Shape, tok eng.Token) error {
	if tok.Kind != eng.KindBeginArray {
		return d.unexpected(s.Kind.String()+" array", tok)
	}
	n := v.Len()
	for i := 0; ; i++ {
		t, err := d.next()
		if err != nil {
			return err
		}
		if t.Kind == eng.KindEndArray {
			if i != n {
				e := d.fail(propbin.CodeMalformedInput)
				e.Message = ""
				e.Expected = strconv.Itoa(n) + " elements"
				e.Actual = strconv.Itoa(i)
				return e
			}
			return nil
		}
		if i >= n || t.Kind != eng.KindNumber {
			return d.unexpected(strconv.Itoa(n)+" numbers", t)
		}
		d.push(propbin.IndexSeg(i))
		if s.Kind == propbin.KindColor {
			if err := d.integer(v.Index(i), propbin.KindU8, t.Number); err != nil {
				return err
			}
		} else {
			f, err := d.float(t.Number)
			if err != nil {
				return err
			}
			v.Index(i).SetFloat(float64(f))
		}
		d.pop()
	}
}

func (d *jsonDecoder) sequence(v reflect.Value, s *propbin.Shape, tok eng.Token) error {
	if tok.Kind != eng.KindBeginArray {
		return d.unexpected("array", tok)
	}
	out := reflect.MakeSlice(s.Type, 0, 0)
	for i := 0; ; i++ {
		t, err := d.next()
		if err != nil {
			return err
		}
		if t.Kind == eng.KindEndArray {
			break
		}
		d.push(propbin.IndexSeg(i))
		elem := reflect.New(s.Type.Elem()).Elem()
		if err := d.value(elem, s.Elem, t); err != nil {
			return err
		}
		d.pop()
		out = reflect.Append(out, elem)
	}
	v.Set(out)
	return nil
}

func (d *jsonDecoder) mapping(v reflect.Value, s *propbin.Shape, tok eng.Token) error {
	if tok.Kind != eng.KindBeginObject {
		return d.unexpected("object", tok)
	}
	out := reflect.MakeMap(s.Type)
	for {
		kt, err := d.next()
		if err != nil {
			return err
		}
		if kt.Kind == eng.KindEndObject {
			break
		}
		key := reflect.New(s.Type.Key()).Elem()
		d.push(propbin.KeySeg(kt.String))
		if err := d.key(key, s.Key, kt.String); err != nil {
			return err
		}
		if out.MapIndex(key).IsValid() {
			e := d.fail(propbin.CodeDuplicateKey)
			e.Key = keyString(key, s.Key.Kind)
			return e
		}
		vt, err := d.next()
		if err != nil {
			return err
		}
		val := reflect.New(s.Type.Elem()).Elem()
		if err := d.value(val, s.Elem, vt); err != nil {
			return err
		}
		d.pop()
		out.SetMapIndex(key, val)
	}
	v.Set(out)
	return nil
}

// key parses a JSON object key back into the mapping's key kind.
func (d *jsonDecoder) key(k reflect.Value, s *propbin.Shape, text string) error {
	switch s.Kind {
	case propbin.KindString:
		k.SetString(text)
		return nil
	case propbin.KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil || (text != "true" && text != "false") {
			e := d.fail(propbin.CodeMalformedInput)
			e.Message = ""
			e.Expected = "true or false"
			e.Actual = text
			return e
		}
		k.SetBool(b)
		return nil
	}
	return d.integer(k, s.Kind, text)
}

func (d *jsonDecoder) variant(v reflect.Value, vd *propbin.VariantDescriptor, tok eng.Token) error {
	var (
		name    string
		payload eng.Token
	)
	switch tok.Kind {
	case eng.KindString:
		name = tok.String
	case eng.KindBeginObject:
		kt, err := d.next()
		if err != nil {
			return err
		}
		if kt.Kind != eng.KindKey {
			return d.unexpected("single-key object for "+vd.Name, kt)
		}
		name = kt.String
		if payload, err = d.next(); err != nil {
			return err
		}
	default:
		return d.unexpected("case of "+vd.Name, tok)
	}
	c, ok := vd.CaseByJSONName(name)
	if !ok {
		e := d.fail(propbin.CodeUnknownVariantCase)
		e.Record = vd.Name
		e.Tag = hash.Name(name)
		return e
	}
	nv := reflect.New(c.Record.Type)
	if tok.Kind == eng.KindString {
		if !c.Unit() {
			return d.unexpected("object payload for "+c.Name, tok)
		}
		v.Set(nv)
		return nil
	}
	if err := d.record(nv.Elem(), c.Record, payload); err != nil {
		return err
	}
	end, err := d.next()
	if err != nil {
		return err
	}
	if end.Kind != eng.KindEndObject {
		return d.unexpected("end of "+vd.Name+" object", end)
	}
	v.Set(nv)
	return nil
}
