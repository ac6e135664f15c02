// Package jsonschema projects record descriptors onto JSON Schema
// (draft 2020-12) documents describing the JSON rendering produced by
// codec.MarshalJSON.
package jsonschema

import (
	"fmt"
	"math"

	propbin "github.com/reoring/propbin"
)

// Draft is the dialect URI written into root documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is the subset of JSON Schema the projection emits.
type Schema struct {
	// Core
	Schema      string `json:"$schema,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Const       any    `json:"const,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// String
	Pattern string `json:"pattern,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema            `json:"propertyNames,omitempty"`
	MinProperties        *int               `json:"minProperties,omitempty"`
	MaxProperties        *int               `json:"maxProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`

	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// ForRecord returns a self-contained document for rd. Every record and
// variant reachable from rd is emitted once under $defs and referenced by
// name, so recursive records terminate.
func ForRecord(rd *propbin.RecordDescriptor) *Schema {
	p := &projector{defs: map[string]*Schema{}}
	p.record(rd)
	return &Schema{
		Schema: Draft,
		Ref:    ref(rd.Name),
		Defs:   p.defs,
	}
}

// ForRegistry returns one document whose $defs hold every record and
// variant of reg, with a oneOf over the asset records at the root.
func ForRegistry(reg *propbin.Registry) *Schema {
	p := &projector{defs: map[string]*Schema{}}
	for _, rd := range reg.Records() {
		p.record(rd)
	}
	for _, v := range reg.Variants() {
		p.variant(v)
	}
	root := &Schema{Schema: Draft, Defs: p.defs}
	for _, rd := range reg.Assets() {
		root.OneOf = append(root.OneOf, &Schema{Ref: ref(rd.Name)})
	}
	return root
}

// ForName resolves name as a record first, then as a variant.
func ForName(reg *propbin.Registry, name string) (*Schema, error) {
	if rd, err := reg.Record(name); err == nil {
		return ForRecord(rd), nil
	}
	v, err := reg.Variant(name)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: %q is neither a record nor a variant: %w", name, err)
	}
	p := &projector{defs: map[string]*Schema{}}
	p.variant(v)
	return &Schema{Schema: Draft, Ref: ref(v.Name), Defs: p.defs}, nil
}

func ref(name string) string { return "#/$defs/" + name }

type projector struct {
	defs map[string]*Schema
}

func (p *projector) record(rd *propbin.RecordDescriptor) {
	if _, ok := p.defs[rd.Name]; ok {
		return
	}
	s := &Schema{
		Title:                rd.Name,
		Type:                 "object",
		Properties:           map[string]*Schema{},
		AdditionalProperties: true,
	}
	// reserve before recursing
	p.defs[rd.Name] = s
	for _, f := range rd.Fields {
		s.Properties[f.Name] = p.shape(f.Shape)
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}
}

func (p *projector) variant(v *propbin.VariantDescriptor) {
	if _, ok := p.defs[v.Name]; ok {
		return
	}
	s := &Schema{Title: v.Name}
	p.defs[v.Name] = s
	for _, c := range v.Cases {
		p.record(c.Record)
		if c.Unit() {
			s.OneOf = append(s.OneOf, &Schema{Const: c.JSONName})
			continue
		}
		one := 1
		s.OneOf = append(s.OneOf, &Schema{
			Type:                 "object",
			Properties:           map[string]*Schema{c.JSONName: {Ref: ref(c.Record.Name)}},
			Required:             []string{c.JSONName},
			AdditionalProperties: false,
			MinProperties:        &one,
			MaxProperties:        &one,
		})
	}
}

var intRanges = map[propbin.Kind][2]float64{
	propbin.KindI8:       {math.MinInt8, math.MaxInt8},
	propbin.KindU8:       {0, math.MaxUint8},
	propbin.KindI16:      {math.MinInt16, math.MaxInt16},
	propbin.KindU16:      {0, math.MaxUint16},
	propbin.KindI32:      {math.MinInt32, math.MaxInt32},
	propbin.KindU32:      {0, math.MaxUint32},
	propbin.KindI64:      {math.MinInt64, math.MaxInt64},
	propbin.KindU64:      {0, math.MaxUint64},
	propbin.KindHash:     {0, math.MaxUint32},
	propbin.KindLink:     {0, math.MaxUint32},
	propbin.KindPathHash: {0, math.MaxUint64},
}

var vectorLens = map[propbin.Kind]int{
	propbin.KindVec2:  2,
	propbin.KindVec3:  3,
	propbin.KindVec4:  4,
	propbin.KindMtx44: 16,
}

const (
	uintKeyPattern = `^[0-9]+$`
	intKeyPattern  = `^-?[0-9]+$`
)

func (p *projector) shape(s *propbin.Shape) *Schema {
	if r, ok := intRanges[s.Kind]; ok {
		lo, hi := r[0], r[1]
		return &Schema{Type: "integer", Minimum: &lo, Maximum: &hi}
	}
	if n, ok := vectorLens[s.Kind]; ok {
		return fixedArray(&Schema{Type: "number"}, n)
	}
	switch s.Kind {
	case propbin.KindBool:
		return &Schema{Type: "boolean"}
	case propbin.KindF32:
		return &Schema{Type: "number"}
	case propbin.KindString:
		return &Schema{Type: "string"}
	case propbin.KindColor:
		lo, hi := 0.0, 255.0
		return fixedArray(&Schema{Type: "integer", Minimum: &lo, Maximum: &hi}, 4)
	case propbin.KindSequence:
		return &Schema{Type: "array", Items: p.shape(s.Elem)}
	case propbin.KindMapping:
		return &Schema{
			Type:                 "object",
			PropertyNames:        keyNames(s.Key.Kind),
			AdditionalProperties: p.shape(s.Elem),
		}
	case propbin.KindRecord, propbin.KindIndirect:
		p.record(s.Record)
		return &Schema{Ref: ref(s.Record.Name)}
	case propbin.KindVariant:
		p.variant(s.Variant)
		return &Schema{Ref: ref(s.Variant.Name)}
	}
	return &Schema{}
}

func fixedArray(item *Schema, n int) *Schema {
	return &Schema{Type: "array", Items: item, MinItems: &n, MaxItems: &n}
}

// keyNames constrains the rendered form of mapping keys: integers render
// as decimal text, bools as "true"/"false", strings verbatim.
func keyNames(k propbin.Kind) *Schema {
	switch {
	case k == propbin.KindBool:
		return &Schema{Pattern: `^(true|false)$`}
	case k == propbin.KindI8, k == propbin.KindI16, k == propbin.KindI32, k == propbin.KindI64:
		return &Schema{Pattern: intKeyPattern}
	case k.IsInteger(), k == propbin.KindHash, k == propbin.KindPathHash, k == propbin.KindLink:
		return &Schema{Pattern: uintKeyPattern}
	}
	return nil
}
