package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/codec"
	"github.com/reoring/propbin/hash"
	"github.com/reoring/propbin/schema"
)

func TestUnmarshalJSON_Scalars(t *testing.T) {
	reg := registry(t)
	var got schema.ColorGet
	_, err := codec.UnmarshalJSON(reg, []byte(`{"value":[255,128,0,1]}`), &got)
	require.NoError(t, err)
	assert.Equal(t, propbin.Color{255, 128, 0, 1}, *got.Value)

	var vec schema.VectorGet
	_, err = codec.UnmarshalJSON(reg, []byte(`{"value":[1.0,-2.5,3]}`), &vec)
	require.NoError(t, err)
	assert.Equal(t, propbin.Vec3{1, -2.5, 3}, *vec.Value)
}

func TestUnmarshalJSON_NullIsAbsent(t *testing.T) {
	reg := registry(t)
	var got schema.FloatGet
	_, err := codec.UnmarshalJSON(reg, []byte(`{"value":null}`), &got)
	require.NoError(t, err)
	assert.Nil(t, got.Value)
}

func TestUnmarshalJSON_UnknownKeysCounted(t *testing.T) {
	reg := registry(t)
	var got schema.FloatGet
	res, err := codec.UnmarshalJSON(reg, []byte(`{"extra":{"a":[1,2,{"b":null}]},"value":3.5}`), &got,
		propbin.DecodeOpt{CollectUnknown: true})
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), *got.Value)
	assert.Equal(t, 1, res.Unknown)
	require.Len(t, res.UnknownFields, 1)
	assert.Equal(t, hash.Name("extra"), res.UnknownFields[0].Hash)
}

func TestUnmarshalJSON_Variants(t *testing.T) {
	reg := registry(t)
	var got schema.ScriptSequence
	_, err := codec.UnmarshalJSON(reg, []byte(`{"blocks":["returnBlock",{"commentBlock":{"comment":"hi"}},{"breakBlock":{}}]}`), &got)
	require.NoError(t, err)
	require.Len(t, got.Blocks, 3)
	assert.IsType(t, &schema.ReturnBlock{}, got.Blocks[0])
	assert.Equal(t, &schema.CommentBlock{Comment: ptr("hi")}, got.Blocks[1])
	assert.IsType(t, &schema.BreakBlock{}, got.Blocks[2])
}

func TestUnmarshalJSON_Errors(t *testing.T) {
	reg := registry(t)
	cases := []struct {
		name string
		in   string
		v    any
		code string
		path string
	}{
		{"unknown case", `{"blocks":["jumpBlock"]}`, &schema.ScriptSequence{}, propbin.CodeUnknownVariantCase, "scriptSequence.blocks[0]"},
		{"record case as string", `{"blocks":["commentBlock"]}`, &schema.ScriptSequence{}, propbin.CodeMalformedInput, "scriptSequence.blocks[0]"},
		{"missing required", `{"dest":"x"}`, &schema.SetVarBlock{}, propbin.CodeMissingRequiredField, "setVarBlock.value"},
		{"int overflow", `{"value":4294967296}`, &schema.IntGet{}, propbin.CodeIntegerOverflow, "intGet.value"},
		{"fractional int", `{"value":1.5}`, &schema.IntGet{}, propbin.CodeMalformedInput, "intGet.value"},
		{"duplicate field", `{"value":1,"value":2}`, &schema.IntGet{}, propbin.CodeDuplicateKey, ""},
		{"duplicate map key", `{"locale":"x","entries":{"1":"a","01":"b"}}`, &schema.StringTable{}, propbin.CodeDuplicateKey, "stringTable.entries{01}"},
		{"truncated", `{"value":1`, &schema.IntGet{}, propbin.CodeTruncatedInput, ""},
		{"trailing data", `{} {}`, &schema.IntGet{}, propbin.CodeMalformedInput, ""},
		{"wrong type", `{"value":"x"}`, &schema.FloatGet{}, propbin.CodeMalformedInput, "floatGet.value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.UnmarshalJSON(reg, []byte(tc.in), tc.v)
			requireCode(t, err, tc.code, tc.path)
		})
	}
}

func TestUnmarshalJSON_FailureLeavesTargetUntouched(t *testing.T) {
	reg := registry(t)
	got := schema.SetVarBlock{Dest: "before"}
	_, err := codec.UnmarshalJSON(reg, []byte(`{"dest":"after"}`), &got)
	require.Error(t, err)
	assert.Equal(t, "before", got.Dest)
}

func TestJSONRoundTrip_Material(t *testing.T) {
	reg := registry(t)
	in := []byte(`{"dynamicMaterial":{"parameters":[{"driver":{"sineMaterialDriver":{"mDriver":"timeMaterialDriver","mFrequency":2.0}},"name":"pulse"}]},"name":"Skin01"}`)
	var m schema.StaticMaterialDef
	_, err := codec.UnmarshalJSON(reg, in, &m)
	require.NoError(t, err)

	out, err := codec.MarshalJSON(reg, &m)
	require.NoError(t, err)
	assert.Equal(t, string(in), string(out))

	data, err := codec.EncodeAsset(reg, &m, 0)
	require.NoError(t, err)
	res, err := codec.DecodeAsset[schema.StaticMaterialDef](reg, data)
	require.NoError(t, err)
	assert.Equal(t, &m, res.Value)
}
