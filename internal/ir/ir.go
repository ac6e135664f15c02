// Package ir flattens record and variant descriptors into plain documents
// for the `schema` dump command. This package is internal and not part of
// the public API.
package ir

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	propbin "github.com/reoring/propbin"
)

// NodeKind identifies a top-level document entry.
type NodeKind string

const (
	NodeRecord  NodeKind = "record"
	NodeVariant NodeKind = "variant"
)

// Document lists records then variants, each sorted by name.
type Document struct {
	Records  []Record  `yaml:"records,omitempty" json:"records,omitempty"`
	Variants []Variant `yaml:"variants,omitempty" json:"variants,omitempty"`
}

// Record is one record descriptor.
type Record struct {
	Kind   NodeKind `yaml:"kind" json:"kind"`
	Name   string   `yaml:"name" json:"name"`
	Hash   string   `yaml:"hash" json:"hash"`
	Asset  bool     `yaml:"asset,omitempty" json:"asset,omitempty"`
	Fields []Field  `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Field is one field in JSON emission order.
type Field struct {
	Name     string `yaml:"name" json:"name"`
	Hash     string `yaml:"hash" json:"hash"`
	Type     string `yaml:"type" json:"type"`
	Wire     string `yaml:"wire" json:"wire"`
	Required bool   `yaml:"required,omitempty" json:"required,omitempty"`
	GoName   string `yaml:"go" json:"go"`
}

// Variant is one tagged union with its cases in tag order.
type Variant struct {
	Kind  NodeKind `yaml:"kind" json:"kind"`
	Name  string   `yaml:"name" json:"name"`
	Cases []Case   `yaml:"cases" json:"cases"`
}

// Case is a variant case.
type Case struct {
	Name string `yaml:"name" json:"name"`
	JSON string `yaml:"json" json:"json"`
	Tag  string `yaml:"tag" json:"tag"`
	Unit bool   `yaml:"unit,omitempty" json:"unit,omitempty"`
}

func hex32(h uint32) string { return fmt.Sprintf("0x%08x", h) }

// FromRegistry dumps every record and variant of reg.
func FromRegistry(reg *propbin.Registry) *Document {
	d := &Document{}
	for _, rd := range reg.Records() {
		d.Records = append(d.Records, record(rd))
	}
	for _, v := range reg.Variants() {
		d.Variants = append(d.Variants, variant(v))
	}
	return d
}

// FromRecord dumps rd followed by every record and variant reachable from
// it, in discovery order.
func FromRecord(rd *propbin.RecordDescriptor) *Document {
	w := &walker{seen: map[string]bool{}, doc: &Document{}}
	w.record(rd)
	return w.doc
}

// FromVariant dumps v and the records its cases reach.
func FromVariant(v *propbin.VariantDescriptor) *Document {
	w := &walker{seen: map[string]bool{}, doc: &Document{}}
	w.variant(v)
	return w.doc
}

type walker struct {
	seen map[string]bool
	doc  *Document
}

func (w *walker) record(rd *propbin.RecordDescriptor) {
	if w.seen[rd.Name] {
		return
	}
	w.seen[rd.Name] = true
	w.doc.Records = append(w.doc.Records, record(rd))
	for _, f := range rd.Fields {
		w.shape(f.Shape)
	}
}

func (w *walker) variant(v *propbin.VariantDescriptor) {
	if w.seen[v.Name] {
		return
	}
	w.seen[v.Name] = true
	w.doc.Variants = append(w.doc.Variants, variant(v))
	for _, c := range v.Cases {
		w.record(c.Record)
	}
}

func (w *walker) shape(s *propbin.Shape) {
	switch s.Kind {
	case propbin.KindSequence, propbin.KindMapping:
		w.shape(s.Elem)
	case propbin.KindRecord, propbin.KindIndirect:
		w.record(s.Record)
	case propbin.KindVariant:
		w.variant(s.Variant)
	}
}

func record(rd *propbin.RecordDescriptor) Record {
	r := Record{Kind: NodeRecord, Name: rd.Name, Hash: hex32(rd.Hash), Asset: rd.IsAsset}
	for _, f := range rd.Fields {
		r.Fields = append(r.Fields, Field{
			Name:     f.Name,
			Hash:     hex32(f.Hash),
			Type:     f.Shape.String(),
			Wire:     f.Shape.WireTag().String(),
			Required: f.Required,
			GoName:   f.GoName,
		})
	}
	return r
}

func variant(v *propbin.VariantDescriptor) Variant {
	out := Variant{Kind: NodeVariant, Name: v.Name}
	for _, c := range v.Cases {
		out.Cases = append(out.Cases, Case{Name: c.Name, JSON: c.JSONName, Tag: hex32(c.Tag), Unit: c.Unit()})
	}
	return out
}

// YAML renders the document with two-space indentation.
func (d *Document) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON renders the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
