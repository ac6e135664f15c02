package propbin

import (
	"reflect"
	"sort"
	"unicode"

	"github.com/reoring/propbin/wire"
)

// Kind is the type-grammar category of a shape.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindI8
	KindU8
	KindI16
	KindU16
	KindI32
	KindU32
	KindI64
	KindU64
	KindF32
	KindVec2
	KindVec3
	KindVec4
	KindMtx44
	KindColor
	KindString
	KindHash
	KindPathHash
	KindLink
	KindSequence
	KindMapping
	KindRecord
	KindIndirect
	KindVariant
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindBool:     "bool",
	KindI8:       "i8",
	KindU8:       "u8",
	KindI16:      "i16",
	KindU16:      "u16",
	KindI32:      "i32",
	KindU32:      "u32",
	KindI64:      "i64",
	KindU64:      "u64",
	KindF32:      "f32",
	KindVec2:     "vec2",
	KindVec3:     "vec3",
	KindVec4:     "vec4",
	KindMtx44:    "mtx44",
	KindColor:    "rgba",
	KindString:   "string",
	KindHash:     "hash",
	KindPathHash: "path",
	KindLink:     "link",
	KindSequence: "list",
	KindMapping:  "map",
	KindRecord:   "record",
	KindIndirect: "indirect",
	KindVariant:  "variant",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// IsPrimitive reports whether k is a scalar of the primitive layer.
func (k Kind) IsPrimitive() bool { return k >= KindBool && k <= KindLink }

// IsInteger reports whether k is one of the eight plain integer kinds.
func (k Kind) IsInteger() bool { return k >= KindI8 && k <= KindU64 }

// IsKeyable reports whether k may be used as a mapping key.
func (k Kind) IsKeyable() bool {
	switch k {
	case KindBool, KindString, KindHash, KindPathHash, KindLink:
		return true
	}
	return k.IsInteger()
}

var kindTags = [...]wire.Tag{
	KindBool:     wire.TagBool,
	KindI8:       wire.TagI8,
	KindU8:       wire.TagU8,
	KindI16:      wire.TagI16,
	KindU16:      wire.TagU16,
	KindI32:      wire.TagI32,
	KindU32:      wire.TagU32,
	KindI64:      wire.TagI64,
	KindU64:      wire.TagU64,
	KindF32:      wire.TagF32,
	KindVec2:     wire.TagVec2,
	KindVec3:     wire.TagVec3,
	KindVec4:     wire.TagVec4,
	KindMtx44:    wire.TagMtx44,
	KindColor:    wire.TagRGBA,
	KindString:   wire.TagString,
	KindHash:     wire.TagHash,
	KindPathHash: wire.TagFile,
	KindLink:     wire.TagLink,
	KindSequence: wire.TagList,
	KindMapping:  wire.TagMap,
	KindRecord:   wire.TagEmbed,
	KindIndirect: wire.TagPointer,
	KindVariant:  wire.TagPointer,
}

// Shape is a node of the type grammar, bound to the Go type that stores it.
type Shape struct {
	Kind    Kind
	Type    reflect.Type
	Elem    *Shape // sequence element or mapping value
	Key     *Shape // mapping key
	Record  *RecordDescriptor
	Variant *VariantDescriptor
}

// WireTag returns the tag the producer writes for this shape.
func (s *Shape) WireTag() wire.Tag {
	if int(s.Kind) < len(kindTags) {
		return kindTags[s.Kind]
	}
	return wire.TagNone
}

// Accepts reports whether a value written with tag t decodes into s.
// Integer tags are interchangeable (range-checked at decode), bool accepts
// flag, lists accept both encodings and bags accept embed and pointer.
func (s *Shape) Accepts(t wire.Tag) bool {
	switch {
	case s.Kind.IsInteger():
		return t.IsInteger()
	case s.Kind == KindBool:
		return t == wire.TagBool || t == wire.TagFlag
	case s.Kind == KindSequence:
		return t.IsList()
	case s.Kind == KindRecord, s.Kind == KindIndirect, s.Kind == KindVariant:
		return t.IsBag()
	}
	return t == s.WireTag()
}

func (s *Shape) String() string {
	switch s.Kind {
	case KindSequence:
		return "list[" + s.Elem.String() + "]"
	case KindMapping:
		return "map[" + s.Key.String() + "," + s.Elem.String() + "]"
	case KindRecord:
		return s.Record.Name
	case KindIndirect:
		return "*" + s.Record.Name
	case KindVariant:
		return s.Variant.Name
	}
	return s.Kind.String()
}

// FieldDescriptor is one field of one record.
type FieldDescriptor struct {
	Name     string // camelCase name, the JSON key and hash source
	Hash     uint32
	Shape    *Shape
	Required bool
	// Pointer is set when an optional scalar or record is stored behind a
	// pointer in the Go struct.
	Pointer bool
	Index   int // Go struct field index
	GoName  string
}

// Optional reports whether absence is a legal state for the field.
func (f *FieldDescriptor) Optional() bool { return !f.Required }

// RecordDescriptor describes one named record.
type RecordDescriptor struct {
	Name    string
	Hash    uint32
	IsAsset bool
	Type    reflect.Type
	// Fields are sorted by Name, which is also the JSON emission order.
	Fields []*FieldDescriptor
	byHash []*FieldDescriptor
}

// FieldByHash binary-searches the field table by wire hash.
func (d *RecordDescriptor) FieldByHash(h uint32) (*FieldDescriptor, bool) {
	i := sort.Search(len(d.byHash), func(i int) bool { return d.byHash[i].Hash >= h })
	if i < len(d.byHash) && d.byHash[i].Hash == h {
		return d.byHash[i], true
	}
	return nil, false
}

// FieldByName binary-searches the field table by camelCase name.
func (d *RecordDescriptor) FieldByName(name string) (*FieldDescriptor, bool) {
	i := sort.Search(len(d.Fields), func(i int) bool { return d.Fields[i].Name >= name })
	if i < len(d.Fields) && d.Fields[i].Name == name {
		return d.Fields[i], true
	}
	return nil, false
}

// JSONName returns the camelCase form of the record name.
func (d *RecordDescriptor) JSONName() string { return CamelCase(d.Name) }

// IsUnit reports whether the record declares no fields.
func (d *RecordDescriptor) IsUnit() bool { return len(d.Fields) == 0 }

// VariantCase is one case of a tagged union.
type VariantCase struct {
	Tag      uint32
	Name     string
	JSONName string
	Record   *RecordDescriptor
	// Sentinel marks the unit case written as the reserved null tag alone.
	Sentinel bool
}

// Unit reports whether the case carries no payload fields.
func (c *VariantCase) Unit() bool { return c.Record.IsUnit() }

// VariantDescriptor describes a closed tagged union.
type VariantDescriptor struct {
	Name string
	Type reflect.Type // the sealed interface
	// Cases are sorted by Tag.
	Cases []*VariantCase
	// Sentinel is the unit case a null tag decodes to; nil when the variant
	// has none, in which case a null tag means absence.
	Sentinel *VariantCase
	byJSON   map[string]*VariantCase
	byType   map[reflect.Type]*VariantCase
}

// Case binary-searches the case table by tag.
func (v *VariantDescriptor) Case(tag uint32) (*VariantCase, bool) {
	i := sort.Search(len(v.Cases), func(i int) bool { return v.Cases[i].Tag >= tag })
	if i < len(v.Cases) && v.Cases[i].Tag == tag {
		return v.Cases[i], true
	}
	return nil, false
}

// CaseByJSONName finds a case by its camelCase name.
func (v *VariantDescriptor) CaseByJSONName(name string) (*VariantCase, bool) {
	c, ok := v.byJSON[name]
	return c, ok
}

// CaseOf returns the case of a dynamic value held by the interface. The
// value must be a pointer to a case record.
func (v *VariantDescriptor) CaseOf(val reflect.Value) (*VariantCase, bool) {
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return nil, false
	}
	c, ok := v.byType[val.Type().Elem()]
	return c, ok
}

// CamelCase lowers the leading capital run of a PascalCase name, keeping
// the last capital of an acronym when it starts the next word:
// "AtomicClipData" -> "atomicClipData", "UIButtonData" -> "uiButtonData".
func CamelCase(name string) string {
	rs := []rune(name)
	if len(rs) == 0 || !unicode.IsUpper(rs[0]) {
		return name
	}
	i := 0
	for i < len(rs) && unicode.IsUpper(rs[i]) {
		if i > 0 && i+1 < len(rs) && unicode.IsLower(rs[i+1]) {
			break
		}
		rs[i] = unicode.ToLower(rs[i])
		i++
	}
	return string(rs)
}

var primitiveTypes = map[reflect.Type]Kind{
	reflect.TypeOf(Hash(0)):     KindHash,
	reflect.TypeOf(PathHash(0)): KindPathHash,
	reflect.TypeOf(Link(0)):     KindLink,
	reflect.TypeOf(Vec2{}):      KindVec2,
	reflect.TypeOf(Vec3{}):      KindVec3,
	reflect.TypeOf(Vec4{}):      KindVec4,
	reflect.TypeOf(Mtx44{}):     KindMtx44,
	reflect.TypeOf(Color{}):     KindColor,
}

// primitiveKind maps a Go type to its primitive kind. Named types with a
// scalar underlying kind (enums) map to that scalar.
func primitiveKind(t reflect.Type) (Kind, bool) {
	if k, ok := primitiveTypes[t]; ok {
		return k, true
	}
	switch t.Kind() {
	case reflect.Bool:
		return KindBool, true
	case reflect.Int8:
		return KindI8, true
	case reflect.Uint8:
		return KindU8, true
	case reflect.Int16:
		return KindI16, true
	case reflect.Uint16:
		return KindU16, true
	case reflect.Int32:
		return KindI32, true
	case reflect.Uint32:
		return KindU32, true
	case reflect.Int64:
		return KindI64, true
	case reflect.Uint64:
		return KindU64, true
	case reflect.Float32:
		return KindF32, true
	case reflect.String:
		return KindString, true
	}
	return KindInvalid, false
}
