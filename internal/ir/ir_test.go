package ir

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/hash"
	"github.com/reoring/propbin/schema"
)

type step interface{ isStep() }

type walk struct {
	Steps []step `bin:"steps,optional"`
	Speed uint16 `bin:"speed"`
}

type halt struct{}

func (*walk) isStep() {}
func (*halt) isStep() {}

func stepRegistry(t *testing.T) *propbin.Registry {
	t.Helper()
	b := propbin.NewBuilder()
	propbin.Record[walk](b, "Walk")
	propbin.Record[halt](b, "Halt")
	propbin.Variant[step](b, "EnumStep", propbin.Case[walk](), propbin.Case[halt]())
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return reg
}

func TestFromRecord_StringTable(t *testing.T) {
	reg := schema.MustRegistry()
	rd, err := reg.Record("StringTable")
	if err != nil {
		t.Fatal(err)
	}
	doc := FromRecord(rd)
	if len(doc.Records) != 1 || len(doc.Variants) != 0 {
		t.Fatalf("doc = %+v", doc)
	}
	r := doc.Records[0]
	if r.Kind != NodeRecord || !r.Asset || r.Hash != hex32(hash.Name("StringTable")) {
		t.Fatalf("record = %+v", r)
	}
	want := []Field{
		{Name: "entries", Hash: hex32(hash.Name("entries")), Type: "map[u32,string]", Wire: "map", GoName: "Entries"},
		{Name: "locale", Hash: hex32(hash.Name("locale")), Type: "string", Wire: "string", Required: true, GoName: "Locale"},
		{Name: "pathHashToSelf", Hash: hex32(hash.Name("pathHashToSelf")), Type: "path", Wire: "file", GoName: "PathHashToSelf"},
	}
	if len(r.Fields) != len(want) {
		t.Fatalf("fields = %+v", r.Fields)
	}
	for i := range want {
		if r.Fields[i] != want[i] {
			t.Fatalf("field %d = %+v, want %+v", i, r.Fields[i], want[i])
		}
	}
}

func TestFromVariant_WalksCases(t *testing.T) {
	reg := stepRegistry(t)
	v, err := reg.Variant("EnumStep")
	if err != nil {
		t.Fatal(err)
	}
	doc := FromVariant(v)
	if len(doc.Variants) != 1 || len(doc.Records) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	var unit int
	for _, c := range doc.Variants[0].Cases {
		if c.Unit {
			unit++
			if c.Name != "Halt" || c.JSON != "halt" || c.Tag != hex32(hash.Name("Halt")) {
				t.Fatalf("unit case = %+v", c)
			}
		}
	}
	if unit != 1 {
		t.Fatalf("unit cases = %d", unit)
	}
}

func TestFromRecord_Recursive(t *testing.T) {
	reg := stepRegistry(t)
	rd, _ := reg.Record("Walk")
	doc := FromRecord(rd)
	if len(doc.Records) != 2 || len(doc.Variants) != 1 {
		t.Fatalf("recursive walk should visit each node once: %+v", doc)
	}
	if doc.Records[0].Name != "Walk" {
		t.Fatalf("first record = %s", doc.Records[0].Name)
	}
}

func TestDocument_Encodings(t *testing.T) {
	doc := FromRegistry(stepRegistry(t))

	y, err := doc.YAML()
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(string(y), "type: list[EnumStep]") {
		t.Fatalf("yaml output:\n%s", y)
	}
	var back Document
	if err := yaml.Unmarshal(y, &back); err != nil {
		t.Fatalf("yaml reparse: %v", err)
	}
	if len(back.Records) != 2 || back.Records[0].Name != "Halt" {
		t.Fatalf("yaml reparse = %+v", back)
	}

	j, err := doc.JSON()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var jback Document
	if err := json.Unmarshal(j, &jback); err != nil {
		t.Fatalf("json reparse: %v", err)
	}
	if len(jback.Variants) != 1 || len(jback.Variants[0].Cases) != 2 {
		t.Fatalf("json reparse = %+v", jback)
	}
}
