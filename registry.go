package propbin

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/reoring/propbin/hash"
)

// Registry holds the frozen record and variant descriptors. It is immutable
// once built and safe for concurrent use.
type Registry struct {
	records       map[string]*RecordDescriptor
	recordsByHash map[uint32]*RecordDescriptor
	recordsByType map[reflect.Type]*RecordDescriptor
	variants      map[string]*VariantDescriptor
	variantByType map[reflect.Type]*VariantDescriptor
	sortedRecords []*RecordDescriptor
	sortedVars    []*VariantDescriptor
}

// Record looks up a record descriptor by name.
func (r *Registry) Record(name string) (*RecordDescriptor, error) {
	if d, ok := r.records[name]; ok {
		return d, nil
	}
	return nil, unknownName("record", name)
}

// RecordByHash looks up a record descriptor by its name hash.
func (r *Registry) RecordByHash(h uint32) (*RecordDescriptor, error) {
	if d, ok := r.recordsByHash[h]; ok {
		return d, nil
	}
	return nil, unknownName("record", fmt.Sprintf("0x%08x", h))
}

// RecordFor looks up the descriptor bound to a Go struct type (or a
// pointer to one).
func (r *Registry) RecordFor(t reflect.Type) (*RecordDescriptor, error) {
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if d, ok := r.recordsByType[t]; ok {
		return d, nil
	}
	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	return nil, unknownName("Go type", name)
}

// RecordOf looks up the descriptor of a record value or pointer.
func (r *Registry) RecordOf(v any) (*RecordDescriptor, error) {
	return r.RecordFor(reflect.TypeOf(v))
}

// Variant looks up a variant descriptor by name.
func (r *Registry) Variant(name string) (*VariantDescriptor, error) {
	if v, ok := r.variants[name]; ok {
		return v, nil
	}
	return nil, unknownName("variant", name)
}

// VariantFor looks up the descriptor bound to a sealed interface type.
func (r *Registry) VariantFor(t reflect.Type) (*VariantDescriptor, error) {
	if v, ok := r.variantByType[t]; ok {
		return v, nil
	}
	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	return nil, unknownName("Go interface", name)
}

// Records returns all record descriptors sorted by name.
func (r *Registry) Records() []*RecordDescriptor {
	return append([]*RecordDescriptor(nil), r.sortedRecords...)
}

// Variants returns all variant descriptors sorted by name.
func (r *Registry) Variants() []*VariantDescriptor {
	return append([]*VariantDescriptor(nil), r.sortedVars...)
}

// Assets returns the descriptors flagged as top-level loadable assets.
func (r *Registry) Assets() []*RecordDescriptor {
	var out []*RecordDescriptor
	for _, d := range r.sortedRecords {
		if d.IsAsset {
			out = append(out, d)
		}
	}
	return out
}

// ---- Builder ----

type pendingRecord struct {
	name  string
	typ   reflect.Type
	asset bool
}

type pendingVariant struct {
	name  string
	typ   reflect.Type
	cases []CaseSpec
}

// Builder collects record and variant declarations and turns them into a
// Registry. Declarations may reference each other in any order.
type Builder struct {
	records  []pendingRecord
	variants []pendingVariant
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// RecordOpt configures a record declaration.
type RecordOpt func(*pendingRecord)

// AsAsset marks a record as a top-level loadable asset.
func AsAsset() RecordOpt { return func(p *pendingRecord) { p.asset = true } }

// Record declares the Go struct T as the record called name.
func Record[T any](b *Builder, name string, opts ...RecordOpt) {
	p := pendingRecord{name: name, typ: reflect.TypeOf((*T)(nil)).Elem()}
	for _, o := range opts {
		o(&p)
	}
	b.records = append(b.records, p)
}

// CaseSpec names one case type of a variant declaration.
type CaseSpec struct {
	typ      reflect.Type
	sentinel bool
}

// Case selects the record struct T as a variant case. T must be declared
// with Record and *T must implement the variant interface.
func Case[T any]() CaseSpec { return CaseSpec{typ: reflect.TypeOf((*T)(nil)).Elem()} }

// SentinelCase is Case for the unit case bound to the reserved null tag:
// it is written as the tag alone and a null tag decodes to it. A variant
// has at most one, and T must declare no fields.
func SentinelCase[T any]() CaseSpec {
	return CaseSpec{typ: reflect.TypeOf((*T)(nil)).Elem(), sentinel: true}
}

// Variant declares the sealed interface I as the variant called name.
func Variant[I any](b *Builder, name string, cases ...CaseSpec) {
	p := pendingVariant{name: name, typ: reflect.TypeOf((*I)(nil)).Elem(), cases: cases}
	b.variants = append(b.variants, p)
}

// MustBuild is Build that panics on error; meant for package init.
func (b *Builder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

// Build validates every declaration and produces the frozen Registry.
// Failures are reported as CodeDescriptorBuildError.
func (b *Builder) Build() (*Registry, error) {
	r := &Registry{
		records:       make(map[string]*RecordDescriptor, len(b.records)),
		recordsByHash: make(map[uint32]*RecordDescriptor, len(b.records)),
		recordsByType: make(map[reflect.Type]*RecordDescriptor, len(b.records)),
		variants:      make(map[string]*VariantDescriptor, len(b.variants)),
		variantByType: make(map[reflect.Type]*VariantDescriptor, len(b.variants)),
	}
	for _, p := range b.records {
		if err := r.addRecordShell(p); err != nil {
			return nil, err
		}
	}
	for _, p := range b.variants {
		if err := r.addVariantShell(p); err != nil {
			return nil, err
		}
	}
	for _, d := range r.sortedRecords {
		if err := r.buildFields(d); err != nil {
			return nil, err
		}
	}
	for i, p := range b.variants {
		if err := r.buildCases(r.sortedVars[i], p.cases); err != nil {
			return nil, err
		}
	}
	sort.Slice(r.sortedRecords, func(i, j int) bool { return r.sortedRecords[i].Name < r.sortedRecords[j].Name })
	sort.Slice(r.sortedVars, func(i, j int) bool { return r.sortedVars[i].Name < r.sortedVars[j].Name })
	return r, nil
}

func (r *Registry) addRecordShell(p pendingRecord) error {
	if p.typ.Kind() != reflect.Struct {
		return buildError("record %s: %s is not a struct", p.name, p.typ)
	}
	if p.name == "" {
		return buildError("record of type %s has no name", p.typ)
	}
	if _, dup := r.records[p.name]; dup {
		return buildError("record %s declared twice", p.name)
	}
	if other, dup := r.recordsByType[p.typ]; dup {
		return buildError("record %s: type %s already declared as %s", p.name, p.typ, other.Name)
	}
	h := hash.Name(p.name)
	if other, dup := r.recordsByHash[h]; dup {
		return buildError("record %s: name hash %#08x collides with %s", p.name, h, other.Name)
	}
	d := &RecordDescriptor{Name: p.name, Hash: h, IsAsset: p.asset, Type: p.typ}
	r.records[p.name] = d
	r.recordsByHash[h] = d
	r.recordsByType[p.typ] = d
	r.sortedRecords = append(r.sortedRecords, d)
	return nil
}

func (r *Registry) addVariantShell(p pendingVariant) error {
	if p.typ.Kind() != reflect.Interface {
		return buildError("variant %s: %s is not an interface", p.name, p.typ)
	}
	if _, dup := r.variants[p.name]; dup {
		return buildError("variant %s declared twice", p.name)
	}
	if other, dup := r.variantByType[p.typ]; dup {
		return buildError("variant %s: type %s already declared as %s", p.name, p.typ, other.Name)
	}
	v := &VariantDescriptor{
		Name:   p.name,
		Type:   p.typ,
		byJSON: make(map[string]*VariantCase, len(p.cases)),
		byType: make(map[reflect.Type]*VariantCase, len(p.cases)),
	}
	r.variants[p.name] = v
	r.variantByType[p.typ] = v
	r.sortedVars = append(r.sortedVars, v)
	return nil
}

func (r *Registry) buildFields(d *RecordDescriptor) error {
	t := d.Type
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, ok, err := parseFieldTag(sf)
		if err != nil {
			return buildError("record %s: %v", d.Name, err.Cause)
		}
		if !ok {
			return buildError("record %s: field %s has no bin tag", d.Name, sf.Name)
		}
		if tag.skip {
			continue
		}
		if sf.Anonymous {
			return buildError("record %s: embedded field %s; records are flat", d.Name, sf.Name)
		}
		fd := &FieldDescriptor{
			Name:     tag.name,
			Hash:     hash.Name(tag.name),
			Required: !tag.optional,
			Index:    i,
			GoName:   sf.Name,
		}
		ft := sf.Type
		switch {
		case tag.indirect:
			if ft.Kind() != reflect.Pointer || ft.Elem().Kind() != reflect.Struct {
				return buildError("record %s: indirect field %s must be a pointer to a record", d.Name, tag.name)
			}
			rd, ok := r.recordsByType[ft.Elem()]
			if !ok {
				return buildError("record %s: field %s references unregistered record %s", d.Name, tag.name, ft.Elem())
			}
			fd.Shape = &Shape{Kind: KindIndirect, Type: ft, Record: rd}
		case ft.Kind() == reflect.Pointer:
			if !tag.optional {
				return buildError("record %s: pointer field %s must be optional or indirect", d.Name, tag.name)
			}
			fd.Pointer = true
			s, err := r.shapeOf(ft.Elem())
			if err != nil {
				return buildError("record %s: field %s: %v", d.Name, tag.name, err.Cause)
			}
			if s.Kind == KindSequence || s.Kind == KindMapping || s.Kind == KindVariant {
				return buildError("record %s: optional field %s: use the nil-able %s directly", d.Name, tag.name, s.Kind)
			}
			fd.Shape = s
		default:
			s, err := r.shapeOf(ft)
			if err != nil {
				return buildError("record %s: field %s: %v", d.Name, tag.name, err.Cause)
			}
			if tag.optional && s.Kind != KindSequence && s.Kind != KindMapping && s.Kind != KindVariant {
				return buildError("record %s: optional field %s must be nil-able (pointer, slice, map or variant)", d.Name, tag.name)
			}
			fd.Shape = s
		}
		d.Fields = append(d.Fields, fd)
	}
	sort.Slice(d.Fields, func(i, j int) bool { return d.Fields[i].Name < d.Fields[j].Name })
	d.byHash = append([]*FieldDescriptor(nil), d.Fields...)
	sort.Slice(d.byHash, func(i, j int) bool { return d.byHash[i].Hash < d.byHash[j].Hash })
	for i := 1; i < len(d.Fields); i++ {
		if d.Fields[i].Name == d.Fields[i-1].Name {
			return buildError("record %s: field %s declared twice", d.Name, d.Fields[i].Name)
		}
	}
	for i := 1; i < len(d.byHash); i++ {
		if d.byHash[i].Hash == d.byHash[i-1].Hash {
			return buildError("record %s: fields %s and %s collide on hash %#08x",
				d.Name, d.byHash[i-1].Name, d.byHash[i].Name, d.byHash[i].Hash)
		}
	}
	return nil
}

// shapeOf derives the shape of a non-pointer Go type.
func (r *Registry) shapeOf(t reflect.Type) (*Shape, *Error) {
	if k, ok := primitiveKind(t); ok {
		return &Shape{Kind: k, Type: t}, nil
	}
	switch t.Kind() {
	case reflect.Slice:
		elem, err := r.shapeOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: KindSequence, Type: t, Elem: elem}, nil
	case reflect.Map:
		key, err := r.shapeOf(t.Key())
		if err != nil {
			return nil, err
		}
		if !key.Kind.IsKeyable() {
			return nil, buildError("%s cannot be a mapping key", key)
		}
		val, err := r.shapeOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: KindMapping, Type: t, Key: key, Elem: val}, nil
	case reflect.Struct:
		d, ok := r.recordsByType[t]
		if !ok {
			return nil, buildError("unregistered record type %s", t)
		}
		return &Shape{Kind: KindRecord, Type: t, Record: d}, nil
	case reflect.Interface:
		v, ok := r.variantByType[t]
		if !ok {
			return nil, buildError("unregistered variant type %s", t)
		}
		return &Shape{Kind: KindVariant, Type: t, Variant: v}, nil
	case reflect.Pointer:
		return nil, buildError("pointer type %s is only allowed for optional or indirect fields", t)
	}
	return nil, buildError("unsupported type %s", t)
}

func (r *Registry) buildCases(v *VariantDescriptor, cases []CaseSpec) error {
	if len(cases) == 0 {
		return buildError("variant %s declares no cases", v.Name)
	}
	for _, cs := range cases {
		ct := cs.typ
		d, ok := r.recordsByType[ct]
		if !ok {
			return buildError("variant %s: case type %s is not a registered record", v.Name, ct)
		}
		if !reflect.PointerTo(ct).Implements(v.Type) {
			return buildError("variant %s: *%s does not implement %s", v.Name, ct, v.Type)
		}
		c := &VariantCase{Tag: d.Hash, Name: d.Name, JSONName: d.JSONName(), Record: d, Sentinel: cs.sentinel}
		if cs.sentinel {
			if !d.IsUnit() {
				return buildError("variant %s: sentinel case %s declares fields", v.Name, d.Name)
			}
			if v.Sentinel != nil {
				return buildError("variant %s: cases %s and %s both claim the null tag", v.Name, v.Sentinel.Name, d.Name)
			}
			v.Sentinel = c
		}
		if _, dup := v.byType[ct]; dup {
			return buildError("variant %s: case %s declared twice", v.Name, d.Name)
		}
		if _, dup := v.byJSON[c.JSONName]; dup {
			return buildError("variant %s: case JSON name %s declared twice", v.Name, c.JSONName)
		}
		v.byType[ct] = c
		v.byJSON[c.JSONName] = c
		v.Cases = append(v.Cases, c)
	}
	sort.Slice(v.Cases, func(i, j int) bool { return v.Cases[i].Tag < v.Cases[j].Tag })
	if v.Cases[0].Tag == 0 {
		return buildError("variant %s: case %s hashes to the null tag", v.Name, v.Cases[0].Name)
	}
	for i := 1; i < len(v.Cases); i++ {
		if v.Cases[i].Tag == v.Cases[i-1].Tag {
			return buildError("variant %s: cases %s and %s share tag %#08x", v.Name, v.Cases[i-1].Name, v.Cases[i].Name, v.Cases[i].Tag)
		}
	}
	return nil
}
