package codec_test

import (
	"encoding/binary"
	"reflect"
	"sort"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/codec"
	"github.com/reoring/propbin/hash"
	"github.com/reoring/propbin/wire"
)

// fillDepth is the nesting below which optional fields are populated.
// Deeper records only get their required fields.
const fillDepth = 3

const costCeiling = 1 << 20

// filler builds record values with every field set, driven by the
// descriptors alone.
type filler struct {
	turn  int
	costs map[*propbin.RecordDescriptor]int
}

func newFiller() *filler {
	return &filler{costs: map[*propbin.RecordDescriptor]int{}}
}

func (f *filler) newRecord(rd *propbin.RecordDescriptor) reflect.Value {
	v := reflect.New(rd.Type)
	f.record(v.Elem(), rd, 0)
	return v
}

func (f *filler) record(v reflect.Value, rd *propbin.RecordDescriptor, depth int) {
	for _, fd := range rd.Fields {
		if fd.Optional() && depth >= fillDepth {
			continue
		}
		fv := v.Field(fd.Index)
		if fd.Pointer || fd.Shape.Kind == propbin.KindIndirect {
			typ := fd.Shape.Type
			if fd.Shape.Kind == propbin.KindIndirect {
				typ = typ.Elem()
			}
			nv := reflect.New(typ)
			f.value(nv.Elem(), fd.Shape, depth)
			fv.Set(nv)
			continue
		}
		f.value(fv, fd.Shape, depth)
	}
}

func (f *filler) value(v reflect.Value, s *propbin.Shape, depth int) {
	switch s.Kind {
	case propbin.KindBool:
		v.SetBool(true)
	case propbin.KindI8, propbin.KindI16, propbin.KindI32, propbin.KindI64:
		v.SetInt(-7)
	case propbin.KindU8, propbin.KindU16, propbin.KindU32, propbin.KindU64:
		v.SetUint(7)
	case propbin.KindF32:
		v.SetFloat(1.5)
	case propbin.KindVec2:
		v.Set(reflect.ValueOf(propbin.Vec2{1, 2}).Convert(v.Type()))
	case propbin.KindVec3:
		v.Set(reflect.ValueOf(propbin.Vec3{1, 2, 3}).Convert(v.Type()))
	case propbin.KindVec4:
		v.Set(reflect.ValueOf(propbin.Vec4{1, 2, 3, 4}).Convert(v.Type()))
	case propbin.KindMtx44:
		v.Set(reflect.ValueOf(propbin.Mtx44{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}).Convert(v.Type()))
	case propbin.KindColor:
		v.Set(reflect.ValueOf(propbin.Color{255, 128, 64, 32}).Convert(v.Type()))
	case propbin.KindString:
		v.SetString("s")
	case propbin.KindHash, propbin.KindLink:
		v.SetUint(0x1234)
	case propbin.KindPathHash:
		v.SetUint(1 << 40)
	case propbin.KindSequence:
		out := reflect.MakeSlice(s.Type, 0, 1)
		if depth < fillDepth {
			elem := reflect.New(s.Type.Elem()).Elem()
			f.value(elem, s.Elem, depth+1)
			out = reflect.Append(out, elem)
		}
		v.Set(out)
	case propbin.KindMapping:
		out := reflect.MakeMap(s.Type)
		if depth < fillDepth {
			key := reflect.New(s.Type.Key()).Elem()
			f.value(key, s.Key, depth+1)
			val := reflect.New(s.Type.Elem()).Elem()
			f.value(val, s.Elem, depth+1)
			out.SetMapIndex(key, val)
		}
		v.Set(out)
	case propbin.KindRecord, propbin.KindIndirect:
		f.record(v, s.Record, depth+1)
	case propbin.KindVariant:
		c := f.pick(s.Variant, depth)
		nv := reflect.New(c.Record.Type)
		f.record(nv.Elem(), c.Record, depth+1)
		v.Set(nv)
	}
}

// pick rotates through the cases near the root for coverage and takes the
// cheapest case deeper down so required chains terminate.
func (f *filler) pick(vd *propbin.VariantDescriptor, depth int) *propbin.VariantCase {
	if depth < fillDepth {
		c := vd.Cases[f.turn%len(vd.Cases)]
		f.turn++
		if f.cost(c.Record) < costCeiling {
			return c
		}
	}
	best := vd.Cases[0]
	for _, c := range vd.Cases[1:] {
		if f.cost(c.Record) < f.cost(best.Record) {
			best = c
		}
	}
	return best
}

// cost counts the records a minimal instance of rd needs.
func (f *filler) cost(rd *propbin.RecordDescriptor) int {
	if c, ok := f.costs[rd]; ok {
		return c
	}
	f.costs[rd] = costCeiling
	c := 1
	for _, fd := range rd.Fields {
		if fd.Required {
			c += f.shapeCost(fd.Shape)
		}
	}
	c = min(c, costCeiling)
	f.costs[rd] = c
	return c
}

func (f *filler) shapeCost(s *propbin.Shape) int {
	switch s.Kind {
	case propbin.KindRecord, propbin.KindIndirect:
		return f.cost(s.Record)
	case propbin.KindVariant:
		best := costCeiling
		for _, c := range s.Variant.Cases {
			best = min(best, f.cost(c.Record))
		}
		return best
	}
	return 0
}

func encodeBag(t *testing.T, reg *propbin.Registry, v any) []byte {
	t.Helper()
	w := wire.NewWriter()
	require.NoError(t, codec.EncodeRecord(reg, w, v))
	b, err := w.Bytes()
	require.NoError(t, err)
	return b
}

// bagHeader is class hash, body size and field count.
const bagHeader = 4 + 4 + 2

// withExtraField inserts one u32 field named h at the front of an encoded
// bag, fixing up the size and count.
func withExtraField(b []byte, h uint32) []byte {
	extra := binary.LittleEndian.AppendUint32(nil, h)
	extra = append(extra, uint8(wire.TagU32))
	extra = binary.LittleEndian.AppendUint32(extra, 0xC0FFEE)

	out := make([]byte, 0, len(b)+len(extra))
	out = append(out, b[:bagHeader]...)
	out = append(out, extra...)
	out = append(out, b[bagHeader:]...)
	size := binary.LittleEndian.Uint32(out[4:])
	binary.LittleEndian.PutUint32(out[4:], size+uint32(len(extra)))
	count := binary.LittleEndian.Uint16(out[8:])
	binary.LittleEndian.PutUint16(out[8:], count+1)
	return out
}

func undeclaredHash(rd *propbin.RecordDescriptor) uint32 {
	h := hash.Name("mUndeclaredField")
	for {
		if _, ok := rd.FieldByHash(h); !ok {
			return h
		}
		h++
	}
}

func jsonKeys(t *testing.T, js []byte) []string {
	t.Helper()
	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(js, &obj))
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Every declared record survives binary and JSON round trips with every
// field populated, tolerates one undeclared field, and keeps absent
// optionals out of its JSON.
func TestAllRecords_Properties(t *testing.T) {
	reg := registry(t)
	f := newFiller()
	for _, rd := range reg.Records() {
		t.Run(rd.Name, func(t *testing.T) {
			v := f.newRecord(rd)
			full := v.Interface()

			// binary round trip
			data := encodeBag(t, reg, full)
			got := reflectNew(rd)
			res, err := codec.DecodeRecord(reg, wire.NewReader(data), got)
			require.NoError(t, err)
			assert.Equal(t, full, got)
			assert.Equal(t, 0, res.Unknown)

			// one undeclared field is skipped and counted
			extra := reflectNew(rd)
			res, err = codec.DecodeRecord(reg, wire.NewReader(withExtraField(data, undeclaredHash(rd))), extra)
			require.NoError(t, err)
			assert.Equal(t, full, extra)
			assert.Equal(t, 1, res.Unknown)

			// JSON round trip
			js, err := codec.MarshalJSON(reg, full)
			require.NoError(t, err)
			back := reflectNew(rd)
			_, err = codec.UnmarshalJSON(reg, js, back)
			require.NoError(t, err)
			assert.Equal(t, full, back)
			again, err := codec.MarshalJSON(reg, back)
			require.NoError(t, err)
			assert.Equal(t, string(js), string(again))

			// every populated field is a key
			var names []string
			for _, fd := range rd.Fields {
				names = append(names, fd.Name)
			}
			sort.Strings(names)
			if len(names) == 0 {
				assert.Equal(t, "{}", string(js))
				return
			}
			assert.Equal(t, names, jsonKeys(t, js))

			// clearing one optional drops exactly its key, in binary too
			for _, fd := range rd.Fields {
				if fd.Required {
					continue
				}
				cleared := reflect.New(rd.Type)
				cleared.Elem().Set(v.Elem())
				slot := cleared.Elem().Field(fd.Index)
				slot.Set(reflect.Zero(slot.Type()))
				js, err := codec.MarshalJSON(reg, cleared.Interface())
				require.NoError(t, err)
				assert.NotContains(t, jsonKeys(t, js), fd.Name)

				dec := reflectNew(rd)
				_, err = codec.DecodeRecord(reg, wire.NewReader(encodeBag(t, reg, cleared.Interface())), dec)
				require.NoError(t, err)
				assert.True(t, reflect.ValueOf(dec).Elem().Field(fd.Index).IsZero(), "field %s", fd.Name)
			}
		})
	}
}
