// Package codec converts between the binary property-bag format, typed Go
// records and JSON, driven by the descriptors of a propbin.Registry.
//
// A decode runs to completion on the calling goroutine and touches no
// shared mutable state, so independent assets can be decoded in parallel
// against the same registry.
package codec

import (
	"fmt"
	"reflect"

	propbin "github.com/reoring/propbin"
	eng "github.com/reoring/propbin/internal/engine"
	"github.com/reoring/propbin/wire"
)

// Entry is one decoded top-level record of a container.
type Entry struct {
	PathHash uint32
	Record   *propbin.RecordDescriptor
	// Value is a pointer to the record's Go struct.
	Value   any
	Unknown int
}

// DecodeAsset decodes the first entry of a PROP container into a new *T.
// The entry's class hash must equal the hash of T's record name.
func DecodeAsset[T any](reg *propbin.Registry, data []byte, opts ...propbin.DecodeOpt) (propbin.Decoded[*T], error) {
	var out propbin.Decoded[*T]
	rd, err := reg.RecordFor(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return out, err
	}
	res, err := DecodeAssetWith(reg, rd, data, opts...)
	if err != nil {
		return out, err
	}
	return propbin.Decoded[*T]{
		Value:         res.Value.(*T),
		Unknown:       res.Unknown,
		UnknownFields: res.UnknownFields,
		PathHash:      res.PathHash,
	}, nil
}

// DecodeAssetWith is the untyped form of DecodeAsset: Value holds a pointer
// to rd's Go struct.
func DecodeAssetWith(reg *propbin.Registry, rd *propbin.RecordDescriptor, data []byte, opts ...propbin.DecodeOpt) (propbin.Decoded[any], error) {
	if err := requireAsset(rd, rd.JSONName()); err != nil {
		return propbin.Decoded[any]{}, err
	}
	opt := propbin.LastOpt(opts)
	f, err := readFile(rd, data, opt)
	if err != nil {
		return propbin.Decoded[any]{}, err
	}
	if len(f.Entries) == 0 {
		e := propbin.NewError(propbin.CodeMalformedInput, rd.JSONName())
		e.Message = "container holds no entries"
		return propbin.Decoded[any]{}, e
	}
	return decodeEntry(rd, f.Entries[0], opt, propbin.CodeAssetTypeMismatch)
}

// DecodeFile decodes every entry of a PROP container, resolving each
// entry's record type from its class hash. Every entry must name an asset
// record.
func DecodeFile(reg *propbin.Registry, data []byte, opts ...propbin.DecodeOpt) ([]Entry, error) {
	opt := propbin.LastOpt(opts)
	f, err := readFile(nil, data, opt)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(f.Entries))
	for i, ent := range f.Entries {
		at := fmt.Sprintf("[%d]", i)
		rd, err := reg.RecordByHash(ent.ClassHash)
		if err != nil {
			e, _ := propbin.AsError(err)
			e.Path = at
			return nil, e
		}
		if err := requireAsset(rd, at); err != nil {
			return nil, err
		}
		res, err := decodeEntry(rd, ent, opt, propbin.CodeAssetTypeMismatch)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{PathHash: res.PathHash, Record: rd, Value: res.Value, Unknown: res.Unknown})
	}
	return out, nil
}

// DecodeRecord decodes one bag from any wire.Source into v, a non-nil
// pointer to a registered record struct. Unlike the asset entry points it
// accepts any record, since a bag is how nested values travel. The source's
// BeginRecord header must carry the record's name hash. On failure v is
// left untouched.
func DecodeRecord(reg *propbin.Registry, src wire.Source, v any, opts ...propbin.DecodeOpt) (propbin.Decoded[any], error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return propbin.Decoded[any]{}, propbin.NewError(propbin.CodeUnknownRecordName, "")
	}
	rd, err := reg.RecordFor(rv.Type())
	if err != nil {
		return propbin.Decoded[any]{}, err
	}
	res, err := decodeInto(rd, src, propbin.LastOpt(opts), propbin.CodeRecordTypeMismatch)
	if err != nil {
		return propbin.Decoded[any]{}, err
	}
	rv.Elem().Set(reflect.ValueOf(res.Value).Elem())
	res.Value = v
	return res, nil
}

// requireAsset rejects records that may only appear nested inside others.
func requireAsset(rd *propbin.RecordDescriptor, path string) error {
	if rd.IsAsset {
		return nil
	}
	e := propbin.NewError(propbin.CodeAssetTypeMismatch, path)
	e.Record = rd.Name
	e.Expected = "asset record"
	e.Actual = rd.Name
	e.Tag = rd.Hash
	return e
}

func readFile(rd *propbin.RecordDescriptor, data []byte, opt propbin.DecodeOpt) (*wire.File, error) {
	t := tracker{}
	if rd != nil {
		t.push(propbin.RootSeg(rd))
	}
	if err := (eng.Limits{MaxBytes: opt.MaxBytes}).CheckSize(len(data)); err != nil {
		return nil, t.convert(err)
	}
	f, err := wire.ReadFile(data)
	if err != nil {
		return nil, t.convert(err)
	}
	return f, nil
}

func decodeEntry(rd *propbin.RecordDescriptor, ent wire.Entry, opt propbin.DecodeOpt, code string) (propbin.Decoded[any], error) {
	if ent.ClassHash != rd.Hash {
		e := propbin.NewError(code, rd.JSONName())
		e.Record = rd.Name
		e.Expected = rd.Name
		e.Actual = fmt.Sprintf("%#08x", ent.ClassHash)
		e.Tag = ent.ClassHash
		return propbin.Decoded[any]{}, e
	}
	return decodeInto(rd, ent.Source(), opt, code)
}

// decodeInto decodes into a fresh value so a failed decode yields no
// partial record.
func decodeInto(rd *propbin.RecordDescriptor, src wire.Source, opt propbin.DecodeOpt, code string) (propbin.Decoded[any], error) {
	v := reflect.New(rd.Type)
	d := newDecoder(src, opt)
	hdr, err := d.decodeRoot(rd, v, code)
	if err != nil {
		return propbin.Decoded[any]{}, err
	}
	return propbin.Decoded[any]{
		Value:         v.Interface(),
		Unknown:       d.unknown,
		UnknownFields: d.skipped,
		PathHash:      hdr.PathHash,
	}, nil
}

// EncodeAsset writes v, a pointer to a registered asset record, as a
// single-entry PROP container.
func EncodeAsset(reg *propbin.Registry, v any, pathHash uint32) ([]byte, error) {
	rd, rv, err := recordValue(reg, v)
	if err != nil {
		return nil, err
	}
	if err := requireAsset(rd, rd.JSONName()); err != nil {
		return nil, err
	}
	w := wire.NewWriter()
	e := &encoder{w: w}
	e.push(propbin.RootSeg(rd))
	w.BeginEntry(pathHash)
	if err := e.encodeFields(rv, rd); err != nil {
		return nil, err
	}
	w.EndEntry()
	body, err := w.Bytes()
	if err != nil {
		return nil, e.convert(err)
	}
	f := &wire.File{Version: 3, Entries: []wire.Entry{{ClassHash: rd.Hash, PathHash: pathHash, Data: body}}}
	out, err := f.Encode()
	if err != nil {
		return nil, e.convert(err)
	}
	return out, nil
}

// EncodeRecord appends v as an embedded bag (class hash, size, fields) to w,
// the layout wire.NewReader expects from BeginRecord.
func EncodeRecord(reg *propbin.Registry, w *wire.Writer, v any) error {
	rd, rv, err := recordValue(reg, v)
	if err != nil {
		return err
	}
	e := &encoder{w: w}
	e.push(propbin.RootSeg(rd))
	w.BeginBag(rd.Hash)
	if err := e.encodeFields(rv, rd); err != nil {
		return err
	}
	w.EndBag()
	return e.writerErr()
}

// MarshalJSON renders v, a pointer to a registered record, as JSON.
func MarshalJSON(reg *propbin.Registry, v any, opts ...propbin.JSONOpt) ([]byte, error) {
	rd, rv, err := recordValue(reg, v)
	if err != nil {
		return nil, err
	}
	jw := &jsonWriter{}
	jw.push(propbin.RootSeg(rd))
	if err := jw.record(rv, rd); err != nil {
		return nil, err
	}
	out := jw.buf.Bytes()
	if propbin.LastOpt(opts).Pretty {
		if out, err = indent(out); err != nil {
			e := jw.fail("")
			e.Cause = err
			return nil, e
		}
	}
	return out, nil
}

// UnmarshalJSON parses JSON produced by MarshalJSON into v, a non-nil
// pointer to a registered record. Unknown record keys are skipped and
// reported through the returned counters.
func UnmarshalJSON(reg *propbin.Registry, data []byte, v any, opts ...propbin.DecodeOpt) (propbin.Decoded[any], error) {
	return unmarshalTokens(reg, data, v, propbin.LastOpt(opts), func() (eng.TokenSource, error) {
		return eng.NewJSONSource(data), nil
	})
}

// UnmarshalYAML is UnmarshalJSON for a single YAML document with the same
// structure: field names as keys, unit cases as strings, record cases as
// single-key mappings.
func UnmarshalYAML(reg *propbin.Registry, data []byte, v any, opts ...propbin.DecodeOpt) (propbin.Decoded[any], error) {
	return unmarshalTokens(reg, data, v, propbin.LastOpt(opts), func() (eng.TokenSource, error) {
		return eng.NewYAMLSource(data)
	})
}

func unmarshalTokens(reg *propbin.Registry, data []byte, v any, opt propbin.DecodeOpt, open func() (eng.TokenSource, error)) (propbin.Decoded[any], error) {
	rd, rv, err := recordValue(reg, v)
	if err != nil {
		return propbin.Decoded[any]{}, err
	}
	d := &jsonDecoder{depth: eng.NewNesting(opt.EffectiveMaxDepth()), opt: opt}
	d.push(propbin.RootSeg(rd))
	if err := (eng.Limits{MaxBytes: opt.MaxBytes}).CheckSize(len(data)); err != nil {
		return propbin.Decoded[any]{}, d.convert(err)
	}
	src, err := open()
	if err != nil {
		return propbin.Decoded[any]{}, d.convert(err)
	}
	d.src = eng.WrapWithEnforcement(src, eng.Limits{})
	tok, err := d.next()
	if err != nil {
		return propbin.Decoded[any]{}, err
	}
	// decode into a scratch value so a failure leaves v untouched
	tmp := reflect.New(rd.Type)
	if err := d.record(tmp.Elem(), rd, tok); err != nil {
		return propbin.Decoded[any]{}, err
	}
	if tok, err = d.next(); err != nil {
		return propbin.Decoded[any]{}, err
	}
	if tok.Kind != eng.KindEOF {
		return propbin.Decoded[any]{}, d.unexpected("end of input", tok)
	}
	rv.Set(tmp.Elem())
	return propbin.Decoded[any]{Value: v, Unknown: d.unknown, UnknownFields: d.skipped}, nil
}

// recordValue resolves the descriptor of v and returns the addressable
// struct it points to.
func recordValue(reg *propbin.Registry, v any) (*propbin.RecordDescriptor, reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		e := propbin.NewError(propbin.CodeEncodeError, "")
		e.Message = fmt.Sprintf("need a non-nil record pointer, got %T", v)
		return nil, reflect.Value{}, e
	}
	rd, err := reg.RecordFor(rv.Type())
	if err != nil {
		return nil, reflect.Value{}, err
	}
	return rd, rv.Elem(), nil
}
