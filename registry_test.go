package propbin_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/hash"
)

type shape interface{ isShape() }

type circle struct {
	Radius *float32 `bin:"radius,optional"`
}

type square struct {
	Side   float32        `bin:"side"`
	Corner []propbin.Vec2 `bin:"corners,optional"`
}

type dot struct{}

func (*circle) isShape() {}
func (*square) isShape() {}
func (*dot) isShape()    {}

type canvas struct {
	Name   string                  `bin:"name"`
	Shapes []shape                 `bin:"shapes,optional"`
	Main   shape                   `bin:"main,optional"`
	ByName map[string]shape        `bin:"byName,optional"`
	Layers map[uint32]propbin.Hash `bin:"layers,optional"`
	Parent *canvas                 `bin:"parent,optional,indirect"`
	Skip   int                     `bin:"-"`
}

func build(t *testing.T) *propbin.Registry {
	t.Helper()
	b := propbin.NewBuilder()
	propbin.Record[canvas](b, "Canvas", propbin.AsAsset())
	propbin.Record[circle](b, "Circle")
	propbin.Record[square](b, "Square")
	propbin.Record[dot](b, "Dot")
	propbin.Variant[shape](b, "EnumShape", propbin.Case[circle](), propbin.Case[square](), propbin.Case[dot]())
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return reg
}

func TestRegistry_Lookups(t *testing.T) {
	reg := build(t)

	rd, err := reg.Record("Canvas")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !rd.IsAsset || rd.Hash != hash.Name("Canvas") {
		t.Fatalf("descriptor = %+v", rd)
	}
	if byHash, err := reg.RecordByHash(hash.Name("canvas")); err != nil || byHash != rd {
		t.Fatalf("RecordByHash: %v %v", byHash, err)
	}
	if byType, err := reg.RecordOf(&canvas{}); err != nil || byType != rd {
		t.Fatalf("RecordOf: %v %v", byType, err)
	}

	var names []string
	for _, f := range rd.Fields {
		names = append(names, f.Name)
	}
	if got := strings.Join(names, ","); got != "byName,layers,main,name,parent,shapes" {
		t.Fatalf("field order = %s", got)
	}
	name, _ := rd.FieldByName("name")
	if !name.Required || name.Optional() {
		t.Fatalf("name should be required")
	}
	parent, ok := rd.FieldByHash(hash.Name("parent"))
	if !ok || parent.Shape.Kind != propbin.KindIndirect || parent.Shape.Record != rd {
		t.Fatalf("parent shape = %+v", parent)
	}

	if assets := reg.Assets(); len(assets) != 1 || assets[0] != rd {
		t.Fatalf("assets = %v", assets)
	}
	if recs := reg.Records(); len(recs) != 4 || recs[0].Name != "Canvas" || recs[3].Name != "Square" {
		t.Fatalf("records not sorted: %v", recs)
	}
}

func TestRegistry_VariantCases(t *testing.T) {
	reg := build(t)
	v, err := reg.Variant("EnumShape")
	if err != nil {
		t.Fatalf("Variant: %v", err)
	}
	if len(v.Cases) != 3 {
		t.Fatalf("cases = %d", len(v.Cases))
	}
	for i := 1; i < len(v.Cases); i++ {
		if v.Cases[i-1].Tag >= v.Cases[i].Tag {
			t.Fatalf("cases not sorted by tag")
		}
	}
	c, ok := v.Case(hash.Name("Square"))
	if !ok || c.JSONName != "square" || c.Unit() {
		t.Fatalf("square case = %+v", c)
	}
	d, ok := v.CaseByJSONName("dot")
	if !ok || !d.Unit() {
		t.Fatalf("dot should be a unit case")
	}
	if got, ok := v.CaseOf(reflect.ValueOf(&circle{})); !ok || got.Name != "Circle" {
		t.Fatalf("CaseOf circle = %+v", got)
	}
	if _, ok := v.Case(0); ok {
		t.Fatalf("tag 0 must never resolve")
	}
	if v.Sentinel != nil {
		t.Fatalf("EnumShape declares no sentinel case")
	}
}

type blank struct{}

func (*blank) isShape() {}

func TestRegistry_SentinelCase(t *testing.T) {
	b := propbin.NewBuilder()
	propbin.Record[circle](b, "Circle")
	propbin.Record[blank](b, "Blank")
	propbin.Variant[shape](b, "EnumShape", propbin.Case[circle](), propbin.SentinelCase[blank]())
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	v, _ := reg.Variant("EnumShape")
	if v.Sentinel == nil || v.Sentinel.Name != "Blank" || !v.Sentinel.Sentinel || !v.Sentinel.Unit() {
		t.Fatalf("sentinel = %+v", v.Sentinel)
	}
	// the case keeps its own tag and JSON name as well
	if c, ok := v.Case(hash.Name("Blank")); !ok || c != v.Sentinel {
		t.Fatalf("sentinel not in case table")
	}
	if c, ok := v.CaseByJSONName("blank"); !ok || c != v.Sentinel {
		t.Fatalf("sentinel not found by JSON name")
	}
}

func TestRegistry_UnknownNames(t *testing.T) {
	reg := build(t)
	for _, err := range []error{
		func() error { _, err := reg.Record("Triangle"); return err }(),
		func() error { _, err := reg.RecordByHash(1); return err }(),
		func() error { _, err := reg.Variant("EnumColor"); return err }(),
		func() error { _, err := reg.RecordOf(&struct{}{}); return err }(),
	} {
		if propbin.ErrorCode(err) != propbin.CodeUnknownRecordName {
			t.Fatalf("want unknown_record_name, got %v", err)
		}
	}
}

type collide struct {
	A *uint32 `bin:"value,optional"`
	B *uint32 `bin:"unk_0x425ed3ca,optional"`
}

type untagged struct {
	A uint32
}

type badOptional struct {
	A uint32 `bin:"a,optional"`
}

type badPointer struct {
	A *uint32 `bin:"a"`
}

type floatKeys struct {
	M map[float32]string `bin:"m,optional"`
}

type nested struct {
	C circle `bin:"c"`
}

type badOption struct {
	A *uint32 `bin:"a,optional,sometimes"`
}

type optionalSlicePtr struct {
	A *[]uint32 `bin:"a,optional"`
}

type notAShape struct{}

func TestBuilder_Errors(t *testing.T) {
	cases := []struct {
		name  string
		setup func(b *propbin.Builder)
		want  string
	}{
		{"field hash collision", func(b *propbin.Builder) { propbin.Record[collide](b, "Collide") }, "collide on hash"},
		{"missing tag", func(b *propbin.Builder) { propbin.Record[untagged](b, "Untagged") }, "no bin tag"},
		{"non nil-able optional", func(b *propbin.Builder) { propbin.Record[badOptional](b, "Bad") }, "nil-able"},
		{"required pointer", func(b *propbin.Builder) { propbin.Record[badPointer](b, "Bad") }, "optional or indirect"},
		{"float map key", func(b *propbin.Builder) { propbin.Record[floatKeys](b, "FloatKeys") }, "mapping key"},
		{"unregistered nested", func(b *propbin.Builder) { propbin.Record[nested](b, "Nested") }, "unregistered record"},
		{"unknown option", func(b *propbin.Builder) { propbin.Record[badOption](b, "Bad") }, "unknown bin option"},
		{"pointer to slice", func(b *propbin.Builder) { propbin.Record[optionalSlicePtr](b, "Bad") }, "nil-able"},
		{"duplicate record name", func(b *propbin.Builder) {
			propbin.Record[circle](b, "Circle")
			propbin.Record[dot](b, "Circle")
		}, "declared twice"},
		{"duplicate record type", func(b *propbin.Builder) {
			propbin.Record[circle](b, "Circle")
			propbin.Record[circle](b, "Round")
		}, "already declared"},
		{"record name hash collision", func(b *propbin.Builder) {
			propbin.Record[circle](b, "Circle")
			propbin.Record[dot](b, fmt.Sprintf("0x%08x", hash.Name("Circle")))
		}, "collides"},
		{"case does not implement", func(b *propbin.Builder) {
			propbin.Record[notAShape](b, "NotAShape")
			propbin.Variant[shape](b, "EnumShape", propbin.Case[notAShape]())
		}, "does not implement"},
		{"case not registered", func(b *propbin.Builder) {
			propbin.Variant[shape](b, "EnumShape", propbin.Case[dot]())
		}, "not a registered record"},
		{"no cases", func(b *propbin.Builder) { propbin.Variant[shape](b, "EnumShape") }, "no cases"},
		{"sentinel with fields", func(b *propbin.Builder) {
			propbin.Record[circle](b, "Circle")
			propbin.Variant[shape](b, "EnumShape", propbin.SentinelCase[circle]())
		}, "sentinel case Circle declares fields"},
		{"two sentinels", func(b *propbin.Builder) {
			propbin.Record[dot](b, "Dot")
			propbin.Record[blank](b, "Blank")
			propbin.Variant[shape](b, "EnumShape", propbin.SentinelCase[dot](), propbin.SentinelCase[blank]())
		}, "both claim the null tag"},
		{"null case tag", func(b *propbin.Builder) {
			propbin.Record[dot](b, "0x00000000")
			propbin.Variant[shape](b, "EnumShape", propbin.Case[dot]())
		}, "null tag"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := propbin.NewBuilder()
			tc.setup(b)
			_, err := b.Build()
			if err == nil {
				t.Fatalf("expected build error")
			}
			var e *propbin.Error
			if !errors.As(err, &e) || e.Code != propbin.CodeDescriptorBuildError {
				t.Fatalf("want descriptor_build_error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustBuild should panic")
		}
	}()
	b := propbin.NewBuilder()
	propbin.Record[untagged](b, "Untagged")
	b.MustBuild()
}

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"AtomicClipData":      "atomicClipData",
		"UIButtonData":        "uiButtonData",
		"VfxSystemDefinition": "vfxSystemDefinition",
		"already":             "already",
		"X":                   "x",
		"GDSMapObject":        "gdsMapObject",
	}
	for in, want := range cases {
		if got := propbin.CamelCase(in); got != want {
			t.Errorf("CamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}
