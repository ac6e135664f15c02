package codec_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/codec"
	"github.com/reoring/propbin/hash"
	"github.com/reoring/propbin/schema"
	"github.com/reoring/propbin/wire"
)

func ptr[T any](v T) *T { return &v }

func registry(t *testing.T) *propbin.Registry {
	t.Helper()
	reg, err := schema.Registry()
	require.NoError(t, err)
	return reg
}

// bag writes one record bag with the given class and body, returning the bytes.
func bag(t *testing.T, class string, body func(w *wire.Writer)) []byte {
	t.Helper()
	w := wire.NewWriter()
	w.BeginBag(hash.Name(class))
	body(w)
	w.EndBag()
	b, err := w.Bytes()
	require.NoError(t, err)
	return b
}

func reflectNew(rd *propbin.RecordDescriptor) any { return reflect.New(rd.Type).Interface() }

func requireCode(t *testing.T, err error, code, path string) *propbin.Error {
	t.Helper()
	require.Error(t, err)
	e, ok := propbin.AsError(err)
	require.True(t, ok, "not a *propbin.Error: %v", err)
	assert.Equal(t, code, e.Code, "err=%v", err)
	if path != "" {
		assert.Equal(t, path, e.Path, "err=%v", err)
	}
	return e
}

func TestDecode_MinimalRecord(t *testing.T) {
	reg := registry(t)
	data := bag(t, "FloatGet", func(w *wire.Writer) {
		w.Field(hash.Name("value"), wire.TagF32)
		w.U32(0x3f800000)
	})

	var got schema.FloatGet
	res, err := codec.DecodeRecord(reg, wire.NewReader(data), &got)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Unknown)
	require.NotNil(t, got.Value)
	assert.Equal(t, float32(1.0), *got.Value)

	out, err := codec.MarshalJSON(reg, &got)
	require.NoError(t, err)
	assert.Equal(t, `{"value":1.0}`, string(out))
}

func TestDecode_MissingOptionalOmitted(t *testing.T) {
	reg := registry(t)
	data := bag(t, "FloatGet", func(*wire.Writer) {})

	var got schema.FloatGet
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &got)
	require.NoError(t, err)
	assert.Nil(t, got.Value)

	out, err := codec.MarshalJSON(reg, &got)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}

func TestDecode_UnknownFieldTolerated(t *testing.T) {
	reg := registry(t)
	plain := bag(t, "FloatGet", func(w *wire.Writer) {
		w.Field(hash.Name("value"), wire.TagF32)
		w.F32(2.5)
	})
	extra := bag(t, "FloatGet", func(w *wire.Writer) {
		w.Field(0xDEADBEEF, wire.TagF32)
		w.F32(7.0)
		w.Field(hash.Name("value"), wire.TagF32)
		w.F32(2.5)
	})

	var want schema.FloatGet
	_, err := codec.DecodeRecord(reg, wire.NewReader(plain), &want)
	require.NoError(t, err)

	var got schema.FloatGet
	res, err := codec.DecodeRecord(reg, wire.NewReader(extra), &got, propbin.DecodeOpt{CollectUnknown: true})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, res.Unknown)
	require.Len(t, res.UnknownFields, 1)
	assert.Equal(t, propbin.UnknownField{Path: "floatGet", Hash: 0xDEADBEEF, Tag: wire.TagF32}, res.UnknownFields[0])

	out, err := codec.MarshalJSON(reg, &got)
	require.NoError(t, err)
	assert.Equal(t, `{"value":2.5}`, string(out))
}

func TestDecode_UnknownContainerFieldSkipped(t *testing.T) {
	reg := registry(t)
	data := bag(t, "CommentBlock", func(w *wire.Writer) {
		w.Field(hash.Name("notAField"), wire.TagList)
		w.BeginList(wire.TagEmbed, 1)
		w.BeginBag(hash.Name("Whatever"))
		w.Field(1, wire.TagString)
		w.Str("nested")
		w.EndBag()
		w.EndList()
		w.Field(hash.Name("comment"), wire.TagString)
		w.Str("kept")
	})

	var got schema.CommentBlock
	res, err := codec.DecodeRecord(reg, wire.NewReader(data), &got)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Unknown)
	assert.Equal(t, "kept", *got.Comment)
}

func TestDecode_VariantRecordPayload(t *testing.T) {
	reg := registry(t)
	key := hash.Name("idle")
	data := bag(t, "AnimationGraphData", func(w *wire.Writer) {
		w.Field(hash.Name("mClipDataMap"), wire.TagMap)
		w.BeginMap(wire.TagHash, wire.TagPointer, 1)
		w.U32(key)
		w.BeginBag(hash.Name("AtomicClipData"))
		w.Field(hash.Name("mAnimationResourceData"), wire.TagEmbed)
		w.BeginBag(hash.Name("AnimationResourceData"))
		w.Field(hash.Name("mAnimationFilePath"), wire.TagString)
		w.Str("idle.anm")
		w.EndBag()
		w.Field(hash.Name("mTrackDataName"), wire.TagHash)
		w.U32(7)
		w.EndBag()
		w.EndMap()
	})

	var got schema.AnimationGraphData
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &got)
	require.NoError(t, err)
	require.Len(t, got.ClipDataMap, 1)
	clip, ok := got.ClipDataMap[propbin.Hash(key)].(*schema.AtomicClipData)
	require.True(t, ok, "case %T", got.ClipDataMap[propbin.Hash(key)])
	assert.Equal(t, &schema.AtomicClipData{
		AnimationResourceData: schema.AnimationResourceData{AnimationFilePath: "idle.anm"},
		TrackDataName:         7,
	}, clip)

	out, err := codec.MarshalJSON(reg, &got)
	require.NoError(t, err)
	want := fmt.Sprintf(`{"mClipDataMap":{"%d":{"atomicClipData":{"mAnimationResourceData":{"mAnimationFilePath":"idle.anm"},"mTrackDataName":7}}}}`, key)
	assert.Equal(t, want, string(out))
}

func TestDecode_MappingKeysSorted(t *testing.T) {
	reg := registry(t)
	data := bag(t, "StringTable", func(w *wire.Writer) {
		w.Field(hash.Name("locale"), wire.TagString)
		w.Str("en_us")
		w.Field(hash.Name("entries"), wire.TagMap)
		w.BeginMap(wire.TagU32, wire.TagString, 3)
		for _, k := range []uint32{300, 20, 1} {
			w.U32(k)
			w.Str(fmt.Sprintf("v%d", k))
		}
		w.EndMap()
	})

	var got schema.StringTable
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &got)
	require.NoError(t, err)
	assert.Len(t, got.Entries, 3)

	out, err := codec.MarshalJSON(reg, &got)
	require.NoError(t, err)
	assert.Equal(t, `{"entries":{"1":"v1","20":"v20","300":"v300"},"locale":"en_us"}`, string(out))
}

func loop(inner *schema.ScriptSequence, n int32) *schema.LoopBlock {
	return &schema.LoopBlock{Count: &schema.IntGet{Value: ptr(n)}, Sequence: inner}
}

func TestDecode_RecursiveScript(t *testing.T) {
	reg := registry(t)
	innermost := &schema.ScriptSequence{Blocks: []schema.EnumScriptBlock{
		&schema.CommentBlock{Comment: ptr("deepest")},
		&schema.BreakBlock{},
	}}
	middle := &schema.ScriptSequence{Blocks: []schema.EnumScriptBlock{loop(innermost, 3)}}
	outer := &schema.ScriptSequence{Blocks: []schema.EnumScriptBlock{loop(middle, 2)}}
	root := &schema.RootScriptSequence{
		ScriptName: ptr("nested"),
		Blocks:     []schema.EnumScriptBlock{loop(outer, 1)},
	}

	data, err := codec.EncodeAsset(reg, root, 0x1234)
	require.NoError(t, err)
	res, err := codec.DecodeAsset[schema.RootScriptSequence](reg, data)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1234), res.PathHash)
	assert.Equal(t, root, res.Value)

	l1 := res.Value.Blocks[0].(*schema.LoopBlock)
	l2 := l1.Sequence.Blocks[0].(*schema.LoopBlock)
	l3 := l2.Sequence.Blocks[0].(*schema.LoopBlock)
	assert.Equal(t, "deepest", *l3.Sequence.Blocks[0].(*schema.CommentBlock).Comment)

	first, err := codec.MarshalJSON(reg, res.Value)
	require.NoError(t, err)
	var back schema.RootScriptSequence
	_, err = codec.UnmarshalJSON(reg, first, &back)
	require.NoError(t, err)
	assert.Equal(t, root, &back)
	second, err := codec.MarshalJSON(reg, &back)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), `"breakBlock"`)
}

func TestRoundTrip_Spell(t *testing.T) {
	reg := registry(t)
	spell := &schema.SpellObject{
		ScriptName: "Fireball",
		ObjectName: ptr("fireball"),
		Spell: &schema.SpellDataResource{
			CastRange:  []float32{600, 650, 700},
			DataValues: []schema.SpellDataValue{{Name: "BaseDamage", Values: []float32{80, 120}}},
			SpellCalculations: map[propbin.Hash]schema.EnumGameCalculation{
				propbin.Hash(hash.Name("TotalDamage")): &schema.GameCalculation{
					FormulaParts: []schema.EnumGameCalculationPart{
						&schema.NamedDataValueCalculationPart{DataValue: propbin.Hash(hash.Name("BaseDamage"))},
						&schema.StatByCoefficientCalculationPart{Stat: ptr[uint8](2), Coefficient: ptr[float32](0.6)},
						&schema.SumOfSubPartsCalculationPart{Subparts: []schema.EnumGameCalculationPart{
							&schema.NumberCalculationPart{Number: ptr[float32](5)},
						}},
					},
					DisplayAsPercent: ptr(false),
				},
			},
			TargetingTypeData: &schema.Self{},
			CoefficientBonus:  map[uint8]float32{3: 0.5, 1: 0.25},
			MissileSpec: &schema.MissileSpecification{
				MovementComponent: &schema.FixedSpeedMovement{Speed: ptr[float32](1200), TracksTarget: ptr(true)},
			},
		},
		PathHashToSelf: ptr(propbin.PathHash(hash.Path("Data/Spells/Fireball.bin"))),
	}

	data, err := codec.EncodeAsset(reg, spell, 9)
	require.NoError(t, err)
	res, err := codec.DecodeAsset[schema.SpellObject](reg, data)
	require.NoError(t, err)
	assert.Equal(t, spell, res.Value)
	assert.Equal(t, 0, res.Unknown)

	js, err := codec.MarshalJSON(reg, res.Value)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"mTargetingTypeData":"self"`)
	assert.Contains(t, string(js), `"mCoefficientBonus":{"1":0.25,"3":0.5}`)
}

func TestRoundTrip_Character(t *testing.T) {
	reg := registry(t)
	ch := &schema.CharacterRecord{
		CharacterName: "Annie",
		BaseHP:        ptr[float32](560),
		AttackRange:   ptr[float32](625),
		BasicAttack:   &schema.AttackSlotData{AttackName: ptr("AnnieBasicAttack")},
		Spells:        []propbin.Link{1, 2, 3},
		PrimaryAbilityResource: &schema.AbilityResourceSlotInfo{
			Type: ptr(schema.ResourceMana),
			Base: ptr[float32](418),
		},
		StatsUIData:   map[uint8]float32{0: 1, 4: 2},
		Unk0x9836cd87: ptr[uint8](1),
	}
	data, err := codec.EncodeAsset(reg, ch, 1)
	require.NoError(t, err)
	res, err := codec.DecodeAsset[schema.CharacterRecord](reg, data)
	require.NoError(t, err)
	assert.Equal(t, ch, res.Value)

	js, err := codec.MarshalJSON(reg, ch)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"unk_0x9836cd87":1`)
}

func TestDecode_AbsencePreserved(t *testing.T) {
	reg := registry(t)
	cases := []struct {
		name string
		v    any
		want string
	}{
		{"absent scalar", &schema.FloatGet{}, `{}`},
		{"present zero", &schema.FloatGet{Value: ptr[float32](0)}, `{"value":0.0}`},
		{"present false", &schema.BoolGet{Value: ptr(false)}, `{"value":false}`},
		{"absent list", &schema.ScriptSequence{}, `{}`},
		{"present empty list", &schema.ScriptSequence{Blocks: []schema.EnumScriptBlock{}}, `{"blocks":[]}`},
		{"absent variant", &schema.LoopBlock{}, `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := wire.NewWriter()
			require.NoError(t, codec.EncodeRecord(reg, w, tc.v))
			b, err := w.Bytes()
			require.NoError(t, err)

			rd, err := reg.RecordOf(tc.v)
			require.NoError(t, err)
			got := reflectNew(rd)
			_, err = codec.DecodeRecord(reg, wire.NewReader(b), got)
			require.NoError(t, err)
			assert.Equal(t, tc.v, got)

			js, err := codec.MarshalJSON(reg, got)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(js))
		})
	}
}

func TestDecode_OptionWrappedField(t *testing.T) {
	reg := registry(t)
	present := bag(t, "FloatGet", func(w *wire.Writer) {
		w.Field(hash.Name("value"), wire.TagOption)
		w.Option(wire.TagF32, true)
		w.F32(4)
	})
	empty := bag(t, "FloatGet", func(w *wire.Writer) {
		w.Field(hash.Name("value"), wire.TagOption)
		w.Option(wire.TagF32, false)
	})

	var got schema.FloatGet
	_, err := codec.DecodeRecord(reg, wire.NewReader(present), &got)
	require.NoError(t, err)
	assert.Equal(t, float32(4), *got.Value)

	got = schema.FloatGet{}
	_, err = codec.DecodeRecord(reg, wire.NewReader(empty), &got)
	require.NoError(t, err)
	assert.Nil(t, got.Value)
}

func TestDecode_NullPointerFieldIsAbsent(t *testing.T) {
	reg := registry(t)
	data := bag(t, "LoopBlock", func(w *wire.Writer) {
		w.Field(hash.Name("count"), wire.TagPointer)
		w.NullPointer()
	})
	var got schema.LoopBlock
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &got)
	require.NoError(t, err)
	assert.Nil(t, got.Count)
}

func TestDecode_UnknownVariantCase(t *testing.T) {
	reg := registry(t)
	data := bag(t, "LoopBlock", func(w *wire.Writer) {
		w.Field(hash.Name("count"), wire.TagPointer)
		w.BeginBag(0x12345678)
		w.EndBag()
	})
	var got schema.LoopBlock
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &got)
	e := requireCode(t, err, propbin.CodeUnknownVariantCase, "loopBlock.count")
	assert.Equal(t, "EnumScriptValueGet", e.Record)
	assert.Equal(t, uint32(0x12345678), e.Tag)
	assert.Equal(t, schema.LoopBlock{}, got)
}

func TestDecode_MissingRequiredField(t *testing.T) {
	reg := registry(t)
	data := bag(t, "AtomicClipData", func(w *wire.Writer) {
		w.Field(hash.Name("mAnimationResourceData"), wire.TagEmbed)
		w.BeginBag(hash.Name("AnimationResourceData"))
		w.Field(hash.Name("mAnimationFilePath"), wire.TagString)
		w.Str("a.anm")
		w.EndBag()
	})
	var got schema.AtomicClipData
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &got)
	e := requireCode(t, err, propbin.CodeMissingRequiredField, "atomicClipData.mTrackDataName")
	assert.Equal(t, "mTrackDataName", e.Field)
	assert.Equal(t, hash.Name("mTrackDataName"), e.FieldHash)
}

func TestDecode_WireTagMismatch(t *testing.T) {
	reg := registry(t)
	data := bag(t, "FloatGet", func(w *wire.Writer) {
		w.Field(hash.Name("value"), wire.TagString)
		w.Str("one")
	})
	var got schema.FloatGet
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &got)
	e := requireCode(t, err, propbin.CodeWireTagMismatch, "floatGet.value")
	assert.Equal(t, hash.Name("value"), e.FieldHash)
	assert.Equal(t, wire.TagF32.String(), e.Expected)
	assert.Equal(t, wire.TagString.String(), e.Actual)
}

func TestDecode_IntegerWidening(t *testing.T) {
	reg := registry(t)
	narrow := bag(t, "IntGet", func(w *wire.Writer) {
		w.Field(hash.Name("value"), wire.TagI8)
		w.I8(-5)
	})
	var got schema.IntGet
	_, err := codec.DecodeRecord(reg, wire.NewReader(narrow), &got)
	require.NoError(t, err)
	assert.Equal(t, int32(-5), *got.Value)

	wide := bag(t, "IntGet", func(w *wire.Writer) {
		w.Field(hash.Name("value"), wire.TagU64)
		w.U64(math.MaxUint32 + 1)
	})
	_, err = codec.DecodeRecord(reg, wire.NewReader(wide), &schema.IntGet{})
	requireCode(t, err, propbin.CodeIntegerOverflow, "intGet.value")
}

func TestDecode_DuplicateMapKey(t *testing.T) {
	reg := registry(t)
	data := bag(t, "StringTable", func(w *wire.Writer) {
		w.Field(hash.Name("locale"), wire.TagString)
		w.Str("en_us")
		w.Field(hash.Name("entries"), wire.TagMap)
		w.BeginMap(wire.TagU32, wire.TagString, 2)
		w.U32(5)
		w.Str("a")
		w.U32(5)
		w.Str("b")
		w.EndMap()
	})
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &schema.StringTable{})
	e := requireCode(t, err, propbin.CodeDuplicateKey, "stringTable.entries")
	assert.Equal(t, "5", e.Key)
}

func TestDecode_InvalidUTF8(t *testing.T) {
	reg := registry(t)
	data := bag(t, "StringGet", func(w *wire.Writer) {
		w.Field(hash.Name("value"), wire.TagString)
		w.U16(2)
		w.Raw([]byte{0xff, 0xfe})
	})
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &schema.StringGet{})
	requireCode(t, err, propbin.CodeUTF8, "stringGet.value")
}

func TestDecode_Truncated(t *testing.T) {
	reg := registry(t)
	data := bag(t, "FloatGet", func(w *wire.Writer) {
		w.Field(hash.Name("value"), wire.TagF32)
		w.F32(1)
	})
	_, err := codec.DecodeRecord(reg, wire.NewReader(data[:len(data)-2]), &schema.FloatGet{})
	requireCode(t, err, propbin.CodeTruncatedInput, "")
}

func TestDecode_RecordTypeMismatch(t *testing.T) {
	reg := registry(t)
	data := bag(t, "IntGet", func(*wire.Writer) {})
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &schema.FloatGet{})
	requireCode(t, err, propbin.CodeRecordTypeMismatch, "floatGet")
}

func TestDecodeAsset_TypeMismatch(t *testing.T) {
	reg := registry(t)
	data, err := codec.EncodeAsset(reg, &schema.StringTable{Locale: "fr_fr"}, 1)
	require.NoError(t, err)
	_, err = codec.DecodeAsset[schema.TelemetryDefinitionsSet](reg, data)
	requireCode(t, err, propbin.CodeAssetTypeMismatch, "telemetryDefinitionsSet")
}

func TestDecodeAsset_MaxBytes(t *testing.T) {
	reg := registry(t)
	data, err := codec.EncodeAsset(reg, &schema.StringTable{Locale: "fr_fr"}, 1)
	require.NoError(t, err)
	_, err = codec.DecodeAsset[schema.StringTable](reg, data, propbin.DecodeOpt{MaxBytes: 8})
	requireCode(t, err, propbin.CodeTruncatedInput, "")
}

func TestDecodeFile_MultipleEntries(t *testing.T) {
	reg := registry(t)
	entry := func(v any, path uint32) wire.Entry {
		data, err := codec.EncodeAsset(reg, v, path)
		require.NoError(t, err)
		f, err := wire.ReadFile(data)
		require.NoError(t, err)
		return f.Entries[0]
	}
	f := &wire.File{Version: 3, Linked: []string{"common.bin"}, Entries: []wire.Entry{
		entry(&schema.StringTable{Locale: "en_us"}, 10),
		entry(&schema.TelemetryDefinitionsSet{Version: ptr[uint32](2)}, 20),
	}}
	data, err := f.Encode()
	require.NoError(t, err)

	entries, err := codec.DecodeFile(reg, data)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "StringTable", entries[0].Record.Name)
	assert.Equal(t, uint32(10), entries[0].PathHash)
	assert.Equal(t, &schema.StringTable{Locale: "en_us"}, entries[0].Value)
	assert.Equal(t, uint32(20), entries[1].PathHash)

	f.Entries[1].ClassHash = hash.Name("NotRegistered")
	data, err = f.Encode()
	require.NoError(t, err)
	_, err = codec.DecodeFile(reg, data)
	requireCode(t, err, propbin.CodeUnknownRecordName, "[1]")
}

func TestMarshalJSON_NonFiniteFloat(t *testing.T) {
	reg := registry(t)
	_, err := codec.MarshalJSON(reg, &schema.FloatGet{Value: ptr(float32(math.NaN()))})
	requireCode(t, err, propbin.CodeEncodeError, "floatGet.value")
}

func TestMarshalJSON_Pretty(t *testing.T) {
	reg := registry(t)
	out, err := codec.MarshalJSON(reg, &schema.FloatGet{Value: ptr[float32](1.5)}, propbin.JSONOpt{Pretty: true})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"value\": 1.5\n}", string(out))
}

func TestFormatFloat32(t *testing.T) {
	cases := map[float32]string{
		1:        "1.0",
		-2:       "-2.0",
		0.1:      "0.1",
		2.5:      "2.5",
		1e21:     "1e+21",
		16777216: "1.6777216e+07",
	}
	for in, want := range cases {
		got, ok := codec.FormatFloat32(in)
		assert.True(t, ok)
		assert.Equal(t, want, got, "input %v", in)
	}
	_, ok := codec.FormatFloat32(float32(math.Inf(1)))
	assert.False(t, ok)
}

func TestEncode_RequiredNilFails(t *testing.T) {
	reg := registry(t)
	_, err := codec.EncodeAsset(reg, &schema.RootScriptSequence{
		Blocks: []schema.EnumScriptBlock{&schema.SetVarBlock{Dest: "x"}},
	}, 0)
	requireCode(t, err, propbin.CodeEncodeError, "")
}

func TestAssetEntryPoints_RejectNestedRecords(t *testing.T) {
	reg := registry(t)
	w := wire.NewWriter()
	w.BeginEntry(0)
	w.Field(hash.Name("value"), wire.TagF32)
	w.F32(2)
	w.EndEntry()
	body, err := w.Bytes()
	require.NoError(t, err)
	f := &wire.File{Version: 3, Entries: []wire.Entry{{ClassHash: hash.Name("FloatGet"), Data: body}}}
	data, err := f.Encode()
	require.NoError(t, err)

	_, err = codec.DecodeAsset[schema.FloatGet](reg, data)
	e := requireCode(t, err, propbin.CodeAssetTypeMismatch, "floatGet")
	assert.Equal(t, "FloatGet", e.Record)

	_, err = codec.DecodeFile(reg, data)
	requireCode(t, err, propbin.CodeAssetTypeMismatch, "[0]")

	_, err = codec.EncodeAsset(reg, &schema.FloatGet{Value: ptr[float32](2)}, 0)
	requireCode(t, err, propbin.CodeAssetTypeMismatch, "floatGet")

	// the same record still travels as a nested bag
	var got schema.FloatGet
	_, err = codec.DecodeRecord(reg, wire.NewReader(bag(t, "FloatGet", func(w *wire.Writer) {
		w.Field(hash.Name("value"), wire.TagF32)
		w.F32(2)
	})), &got)
	require.NoError(t, err)
	assert.Equal(t, float32(2), *got.Value)
}

func TestDecodeRecord_FailureLeavesTargetUntouched(t *testing.T) {
	reg := registry(t)
	data := bag(t, "CommentBlock", func(w *wire.Writer) {
		w.Field(hash.Name("comment"), wire.TagString)
		w.Str("partial")
		w.Field(hash.Name("mNotDeclared"), wire.TagU32)
		w.U32(9)
	})

	got := schema.CommentBlock{Comment: ptr("before")}
	_, err := codec.DecodeRecord(reg, wire.NewReader(data[:len(data)-2]), &got)
	requireCode(t, err, propbin.CodeTruncatedInput, "")
	assert.Equal(t, "before", *got.Comment)

	_, err = codec.DecodeRecord(reg, wire.NewReader(data), &got)
	require.NoError(t, err)
	assert.Equal(t, "partial", *got.Comment)
}

func TestDecode_NullBlockIsNoOp(t *testing.T) {
	reg := registry(t)
	data := bag(t, "ScriptSequence", func(w *wire.Writer) {
		w.Field(hash.Name("blocks"), wire.TagList)
		w.BeginList(wire.TagPointer, 2)
		w.NullPointer()
		w.BeginBag(hash.Name("BreakBlock"))
		w.EndBag()
		w.EndList()
	})

	var got schema.ScriptSequence
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &got)
	require.NoError(t, err)
	assert.Equal(t, []schema.EnumScriptBlock{&schema.NoOpBlock{}, &schema.BreakBlock{}}, got.Blocks)

	w := wire.NewWriter()
	require.NoError(t, codec.EncodeRecord(reg, w, &got))
	again, err := w.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, again)

	js, err := codec.MarshalJSON(reg, &got)
	require.NoError(t, err)
	assert.Equal(t, `{"blocks":["noOpBlock","breakBlock"]}`, string(js))
	var back schema.ScriptSequence
	_, err = codec.UnmarshalJSON(reg, js, &back)
	require.NoError(t, err)
	assert.Equal(t, &got, &back)
}

func TestDecode_NullElementWithoutSentinel(t *testing.T) {
	reg := registry(t)
	data := bag(t, "ListGet", func(w *wire.Writer) {
		w.Field(hash.Name("values"), wire.TagList)
		w.BeginList(wire.TagPointer, 1)
		w.NullPointer()
		w.EndList()
	})
	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &schema.ListGet{})
	requireCode(t, err, propbin.CodeMalformedInput, "listGet.values[0]")
}
