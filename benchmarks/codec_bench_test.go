package benchmarks_test

import (
	"fmt"
	"strings"
	"testing"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/codec"
	"github.com/reoring/propbin/schema"
)

// ---- Helpers ----

func ptr[T any](v T) *T { return &v }

// hugeTable returns a string table with n entries of ~24 bytes each.
func hugeTable(n int) *schema.StringTable {
	t := &schema.StringTable{Locale: "en_us", Entries: make(map[uint32]string, n)}
	for i := 0; i < n; i++ {
		t.Entries[uint32(i)*2654435761] = fmt.Sprintf("game_string_%06d_text", i)
	}
	return t
}

// wideScript returns a script of width loops, each nesting depth sequences
// that end in a SetVarBlock.
func wideScript(width, depth int) *schema.RootScriptSequence {
	root := &schema.RootScriptSequence{ScriptName: ptr("bench")}
	for i := 0; i < width; i++ {
		inner := &schema.ScriptSequence{Blocks: []schema.EnumScriptBlock{
			&schema.SetVarBlock{Dest: fmt.Sprintf("v%d", i), Value: &schema.FloatGet{Value: ptr(float32(i) / 3)}},
			&schema.CommentBlock{Comment: ptr(strings.Repeat("x", 16))},
		}}
		for d := 0; d < depth; d++ {
			inner = &schema.ScriptSequence{Blocks: []schema.EnumScriptBlock{
				&schema.LoopBlock{Count: &schema.IntGet{Value: ptr(int32(d))}, Sequence: inner},
			}}
		}
		root.Blocks = append(root.Blocks, inner.Blocks...)
	}
	return root
}

func encode(tb testing.TB, v any) []byte {
	tb.Helper()
	data, err := codec.EncodeAsset(schema.MustRegistry(), v, 0)
	if err != nil {
		tb.Fatalf("encode failed: %v", err)
	}
	return data
}

func marshal(tb testing.TB, v any) []byte {
	tb.Helper()
	js, err := codec.MarshalJSON(schema.MustRegistry(), v)
	if err != nil {
		tb.Fatalf("marshal failed: %v", err)
	}
	return js
}

const (
	tableEntries = 10000
	scriptWidth  = 200
	scriptDepth  = 8
)

// ---- Binary decode ----

func Benchmark_DecodeAsset_StringTable(b *testing.B) {
	reg := schema.MustRegistry()
	data := encode(b, hugeTable(tableEntries))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.DecodeAsset[schema.StringTable](reg, data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_DecodeAsset_Script(b *testing.B) {
	reg := schema.MustRegistry()
	data := encode(b, wideScript(scriptWidth, scriptDepth))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.DecodeAsset[schema.RootScriptSequence](reg, data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_DecodeAsset_Script_CollectUnknown(b *testing.B) {
	reg := schema.MustRegistry()
	data := encode(b, wideScript(scriptWidth, scriptDepth))
	opt := propbin.DecodeOpt{CollectUnknown: true}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.DecodeAsset[schema.RootScriptSequence](reg, data, opt); err != nil {
			b.Fatal(err)
		}
	}
}

// Independent assets share one registry; decodes must scale across cores.
func Benchmark_DecodeAsset_Script_Parallel(b *testing.B) {
	reg := schema.MustRegistry()
	data := encode(b, wideScript(scriptWidth, scriptDepth))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := codec.DecodeAsset[schema.RootScriptSequence](reg, data); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

// ---- Binary encode ----

func Benchmark_EncodeAsset_Script(b *testing.B) {
	reg := schema.MustRegistry()
	v := wideScript(scriptWidth, scriptDepth)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.EncodeAsset(reg, v, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- JSON ----

func Benchmark_MarshalJSON_StringTable(b *testing.B) {
	reg := schema.MustRegistry()
	v := hugeTable(tableEntries)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.MarshalJSON(reg, v); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_MarshalJSON_Script_Pretty(b *testing.B) {
	reg := schema.MustRegistry()
	v := wideScript(scriptWidth, scriptDepth)
	opt := propbin.JSONOpt{Pretty: true}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.MarshalJSON(reg, v, opt); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_UnmarshalJSON_Script(b *testing.B) {
	reg := schema.MustRegistry()
	js := marshal(b, wideScript(scriptWidth, scriptDepth))
	b.ReportAllocs()
	b.SetBytes(int64(len(js)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v schema.RootScriptSequence
		if _, err := codec.UnmarshalJSON(reg, js, &v); err != nil {
			b.Fatal(err)
		}
	}
}

// JSON is a YAML subset, so the same document exercises the YAML source.
func Benchmark_UnmarshalYAML_Script(b *testing.B) {
	reg := schema.MustRegistry()
	js := marshal(b, wideScript(scriptWidth, scriptDepth))
	b.ReportAllocs()
	b.SetBytes(int64(len(js)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v schema.RootScriptSequence
		if _, err := codec.UnmarshalYAML(reg, js, &v); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Sanity ----

// The benchmark fixtures must survive a full binary → JSON → binary trip,
// otherwise the numbers above measure error paths.
func TestBenchmarkFixturesRoundTrip(t *testing.T) {
	reg := schema.MustRegistry()
	for name, v := range map[string]any{
		"table":  hugeTable(100),
		"script": wideScript(4, 3),
	} {
		t.Run(name, func(t *testing.T) {
			js := marshal(t, v)
			var back any
			switch v.(type) {
			case *schema.StringTable:
				back = &schema.StringTable{}
			default:
				back = &schema.RootScriptSequence{}
			}
			if _, err := codec.UnmarshalJSON(reg, js, back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := marshal(t, back); string(got) != string(js) {
				t.Fatalf("JSON changed on round trip")
			}
			if _, err := codec.UnmarshalYAML(reg, js, back); err != nil {
				t.Fatalf("unmarshal yaml: %v", err)
			}
			if got := encode(t, back); string(got) != string(encode(t, v)) {
				t.Fatalf("binary changed on round trip")
			}
		})
	}
}
