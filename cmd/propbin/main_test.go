package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/propbin/codec"
	"github.com/reoring/propbin/schema"
)

// sandbox runs the CLI in an empty directory so no stray propbin.yaml is
// picked up, and returns that directory.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func writeTable(t *testing.T, dir, name, locale string, entries map[uint32]string) string {
	t.Helper()
	bin, err := codec.EncodeAsset(schema.MustRegistry(), &schema.StringTable{Locale: locale, Entries: entries}, 0)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, bin, 0o644))
	return path
}

func TestDecode_WritesJSON(t *testing.T) {
	dir := sandbox(t)
	in := writeTable(t, dir, "en.bin", "en_us", map[uint32]string{2: "b", 1: "a"})

	code, out, errOut := runCLI(t, "decode", "StringTable", in)
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, `{"entries":{"1":"a","2":"b"},"locale":"en_us"}`+"\n", out)
}

func TestDecode_MultipleInputsKeepOrder(t *testing.T) {
	dir := sandbox(t)
	var args []string
	var want strings.Builder
	for _, loc := range []string{"a", "b", "c", "d", "e", "f"} {
		args = append(args, writeTable(t, dir, loc+".bin", loc, nil))
		want.WriteString(`{"locale":"` + loc + `"}` + "\n")
	}

	code, out, errOut := runCLI(t, append([]string{"decode", "StringTable"}, args...)...)
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, want.String(), out)
}

func TestDecode_ErrorExitCode(t *testing.T) {
	dir := sandbox(t)
	in := writeTable(t, dir, "en.bin", "en_us", nil)

	code, out, errOut := runCLI(t, "decode", "SpellObject", in)
	assert.Equal(t, exitDecode, code)
	assert.Empty(t, out)
	assert.Equal(t, "error at spellObject: asset_type_mismatch\n", errOut)

	code, _, errOut = runCLI(t, "decode", "FloatGet", in)
	assert.Equal(t, exitDecode, code)
	assert.Equal(t, "error at floatGet: asset_type_mismatch\n", errOut)

	code, _, errOut = runCLI(t, "decode", "NoSuchAsset", in)
	assert.Equal(t, exitDecode, code)
	assert.Equal(t, "error at <root>: unknown_record_name\n", errOut)

	code, _, errOut = runCLI(t, "decode", "StringTable", filepath.Join(dir, "missing.bin"))
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "reading input")
}

func TestDecode_PrettyFromConfig(t *testing.T) {
	dir := sandbox(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "propbin.yaml"), []byte("output:\n  pretty: true\n"), 0o644))
	in := writeTable(t, dir, "en.bin", "en_us", nil)

	code, out, errOut := runCLI(t, "decode", "StringTable", in)
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "{\n  \"locale\": \"en_us\"\n}\n", out)
}

func TestDecode_DepthFromConfig(t *testing.T) {
	dir := sandbox(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "propbin.yaml"), []byte("decode:\n  max_bytes: 8\n"), 0o644))
	in := writeTable(t, dir, "en.bin", "en_us", nil)

	code, _, errOut := runCLI(t, "decode", "StringTable", in)
	assert.Equal(t, exitDecode, code)
	assert.True(t, strings.HasPrefix(errOut, "error at stringTable: "), errOut)
}

func TestEntries(t *testing.T) {
	dir := sandbox(t)
	in := writeTable(t, dir, "en.bin", "en_us", nil)

	code, out, errOut := runCLI(t, "entries", in)
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, `{"class":"StringTable","pathHash":0,"value":{"locale":"en_us"}}`+"\n", out)
}

func TestEncode_JSONAndYAML(t *testing.T) {
	dir := sandbox(t)
	jsonIn := filepath.Join(dir, "t.json")
	require.NoError(t, os.WriteFile(jsonIn, []byte(`{"entries":{"7":"seven"},"locale":"ko_kr"}`), 0o644))
	yamlIn := filepath.Join(dir, "t.yaml")
	require.NoError(t, os.WriteFile(yamlIn, []byte("locale: ko_kr\nentries:\n  7: seven\n"), 0o644))

	for _, in := range []string{jsonIn, yamlIn} {
		bin := filepath.Join(dir, filepath.Base(in)+".bin")
		code, _, errOut := runCLI(t, "encode", "StringTable", in, bin, "--entry", "0x2a")
		require.Equal(t, exitOK, code, errOut)

		code, out, errOut := runCLI(t, "entries", bin)
		require.Equal(t, exitOK, code, errOut)
		assert.Equal(t, `{"class":"StringTable","pathHash":42,"value":{"entries":{"7":"seven"},"locale":"ko_kr"}}`+"\n", out)
	}
}

func TestEncode_BadInput(t *testing.T) {
	dir := sandbox(t)
	in := filepath.Join(dir, "t.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"entries":{}}`), 0o644))

	code, _, errOut := runCLI(t, "encode", "StringTable", in, filepath.Join(dir, "out.bin"))
	assert.Equal(t, exitDecode, code)
	assert.Equal(t, "error at stringTable.locale: missing_required_field\n", errOut)

	code, _, errOut = runCLI(t, "encode", "StringTable", in, "-", "--format", "toml")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "unknown input format")
}

func TestSchema_Formats(t *testing.T) {
	sandbox(t)

	code, out, errOut := runCLI(t, "schema", "StringTable")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "name: StringTable")
	assert.Contains(t, out, "type: map[u32,string]")

	code, out, errOut = runCLI(t, "schema", "StringTable", "--format", "json")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, `"name": "StringTable"`)

	code, out, errOut = runCLI(t, "schema", "EnumClipData", "-f", "jsonschema")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, `"$ref": "#/$defs/EnumClipData"`)
	assert.Contains(t, out, `"atomicClipData"`)

	code, _, errOut = runCLI(t, "schema", "-f", "xml")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "unknown format")
}

func TestHash(t *testing.T) {
	sandbox(t)
	code, out, _ := runCLI(t, "hash", "value", "unk_0xdeadbeef")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "0x425ed3ca  value\n0xdeadbeef  unk_0xdeadbeef\n", out)

	code, out, _ = runCLI(t, "hash", "--path", "0x00000000000000ff")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "0x00000000000000ff  0x00000000000000ff\n", out)
}

func TestList(t *testing.T) {
	sandbox(t)
	code, out, errOut := runCLI(t, "list", "--assets")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "StringTable")
	assert.NotContains(t, out, "variant")

	code, out, _ = runCLI(t, "list")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "EnumClipData")
}
