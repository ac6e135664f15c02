package jsonschema_test

import (
	"reflect"
	"testing"

	json "github.com/goccy/go-json"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/jsonschema"
	"github.com/reoring/propbin/schema"
)

// normalize marshals v to JSON and back into interface{} so comparisons do
// not depend on Go types.
func normalize(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

type light interface{ isLight() }

type lamp struct {
	Power   *float32       `bin:"power,optional"`
	Tint    propbin.Color  `bin:"tint"`
	Next    *lamp          `bin:"next,optional,indirect"`
	Weights map[int16]bool `bin:"weights,optional"`
	Mode    light          `bin:"mode,optional"`
	Pos     []propbin.Vec3 `bin:"pos,optional"`
}

type off struct{}

type dimmed struct {
	Level uint8 `bin:"level"`
}

func (*off) isLight()    {}
func (*dimmed) isLight() {}

func lampRegistry(t *testing.T) *propbin.Registry {
	t.Helper()
	b := propbin.NewBuilder()
	propbin.Record[lamp](b, "Lamp", propbin.AsAsset())
	propbin.Record[off](b, "Off")
	propbin.Record[dimmed](b, "Dimmed")
	propbin.Variant[light](b, "EnumLight", propbin.Case[off](), propbin.Case[dimmed]())
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return reg
}

func TestForRecord_Lamp(t *testing.T) {
	reg := lampRegistry(t)
	rd, err := reg.Record("Lamp")
	if err != nil {
		t.Fatal(err)
	}
	got := normalize(t, jsonschema.ForRecord(rd))

	wantLamp := map[string]any{
		"title":                "Lamp",
		"type":                 "object",
		"additionalProperties": true,
		"required":             []any{"tint"},
		"properties": map[string]any{
			"power": map[string]any{"type": "number"},
			"tint": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "integer", "minimum": 0, "maximum": 255},
				"minItems": 4,
				"maxItems": 4,
			},
			"next": map[string]any{"$ref": "#/$defs/Lamp"},
			"weights": map[string]any{
				"type":                 "object",
				"propertyNames":        map[string]any{"pattern": "^-?[0-9]+$"},
				"additionalProperties": map[string]any{"type": "boolean"},
			},
			"mode": map[string]any{"$ref": "#/$defs/EnumLight"},
			"pos": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "number"},
					"minItems": 3,
					"maxItems": 3,
				},
			},
		},
	}
	doc, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("document is %T", got)
	}
	if doc["$ref"] != "#/$defs/Lamp" || doc["$schema"] != jsonschema.Draft {
		t.Fatalf("root = %v", doc)
	}
	defs := doc["$defs"].(map[string]any)
	for _, name := range []string{"Lamp", "EnumLight", "Off", "Dimmed"} {
		if _, ok := defs[name]; !ok {
			t.Fatalf("missing $defs/%s", name)
		}
	}
	props := defs["Lamp"].(map[string]any)["properties"].(map[string]any)
	for _, key := range []string{"power", "tint", "next", "weights", "mode", "pos"} {
		want := normalize(t, wantLamp["properties"].(map[string]any)[key])
		if !reflect.DeepEqual(props[key], want) {
			t.Fatalf("%s mismatch\n got=%v\nwant=%v", key, props[key], want)
		}
	}
	if req := defs["Lamp"].(map[string]any)["required"]; !reflect.DeepEqual(req, []any{"tint"}) {
		t.Fatalf("required = %v", req)
	}
}

func TestForRecord_VariantCases(t *testing.T) {
	reg := lampRegistry(t)
	rd, _ := reg.Record("Lamp")
	doc := normalize(t, jsonschema.ForRecord(rd)).(map[string]any)
	enum := doc["$defs"].(map[string]any)["EnumLight"].(map[string]any)

	want := normalize(t, map[string]any{
		"title": "EnumLight",
		"oneOf": []any{
			map[string]any{"const": "off"},
			map[string]any{
				"type":                 "object",
				"properties":           map[string]any{"dimmed": map[string]any{"$ref": "#/$defs/Dimmed"}},
				"required":             []any{"dimmed"},
				"additionalProperties": false,
				"minProperties":        1,
				"maxProperties":        1,
			},
		},
	})
	// case order follows tag order, which is hash order
	if len(enum["oneOf"].([]any)) != 2 {
		t.Fatalf("oneOf = %v", enum["oneOf"])
	}
	for _, w := range want.(map[string]any)["oneOf"].([]any) {
		found := false
		for _, g := range enum["oneOf"].([]any) {
			if reflect.DeepEqual(g, w) {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing case %v in %v", w, enum["oneOf"])
		}
	}
}

func TestForRegistry_Assets(t *testing.T) {
	reg, err := schema.Registry()
	if err != nil {
		t.Fatal(err)
	}
	doc := jsonschema.ForRegistry(reg)
	if len(doc.OneOf) != len(reg.Assets()) {
		t.Fatalf("root oneOf = %d, assets = %d", len(doc.OneOf), len(reg.Assets()))
	}
	for _, rd := range reg.Records() {
		if _, ok := doc.Defs[rd.Name]; !ok {
			t.Fatalf("missing record %s", rd.Name)
		}
	}
	for _, v := range reg.Variants() {
		if _, ok := doc.Defs[v.Name]; !ok {
			t.Fatalf("missing variant %s", v.Name)
		}
	}
	table := doc.Defs["StringTable"]
	if table == nil || table.Properties["entries"].PropertyNames.Pattern != `^[0-9]+$` {
		t.Fatalf("StringTable entries = %+v", table)
	}
}

func TestForName(t *testing.T) {
	reg := lampRegistry(t)
	s, err := jsonschema.ForName(reg, "EnumLight")
	if err != nil {
		t.Fatal(err)
	}
	if s.Ref != "#/$defs/EnumLight" || s.Defs["Dimmed"] == nil {
		t.Fatalf("variant document = %+v", s)
	}
	if _, err := jsonschema.ForName(reg, "Nope"); err == nil {
		t.Fatalf("expected error for unknown name")
	}
}
