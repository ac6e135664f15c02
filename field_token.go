package propbin

import (
	"fmt"
	"reflect"
)

// FieldRef is a typed handle on one field of record T, resolved from a
// selector so renaming the Go field breaks the build instead of a lookup.
type FieldRef[T any] struct {
	Field *FieldDescriptor
	// Path holds the descriptors from the root record down to Field; it has
	// more than one element when the selector reaches through embedded
	// records.
	Path []*FieldDescriptor
	root *RecordDescriptor
}

// String renders the reference the way error paths do, e.g.
// "animationGraphData.mBlendData.mTrackDataName".
func (r FieldRef[T]) String() string {
	p := Path{RootSeg(r.root)}
	for _, f := range r.Path {
		p = p.Field(f.Name)
	}
	return p.String()
}

// FieldOf resolves the field of record T whose address selector returns:
//
//	FieldOf[schema.LoopBlock](reg, func(b *schema.LoopBlock) *EnumScriptValueGet { return &b.Count })
//
// The selector may descend through record fields held by value; pointer
// hops (indirect records, optional records) are not followed.
func FieldOf[T any, F any](reg *Registry, selector func(*T) *F) (FieldRef[T], error) {
	var out FieldRef[T]
	if selector == nil {
		return out, fmt.Errorf("propbin.FieldOf: selector must not be nil")
	}
	rd, err := reg.RecordFor(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return out, err
	}
	var zero T
	target := reflect.ValueOf(selector(&zero)).Pointer()
	ft := reflect.TypeOf((*F)(nil)).Elem()
	path, ok := findField(rd, reflect.ValueOf(&zero).Elem(), target, ft, 0)
	if !ok {
		return out, fmt.Errorf("propbin.FieldOf: selector does not address a declared field of %s", rd.Name)
	}
	return FieldRef[T]{Field: path[len(path)-1], Path: path, root: rd}, nil
}

// MustFieldOf is FieldOf for package-level handles.
func MustFieldOf[T any, F any](reg *Registry, selector func(*T) *F) FieldRef[T] {
	r, err := FieldOf(reg, selector)
	if err != nil {
		panic(err)
	}
	return r
}

const maxFieldDepth = 32

func findField(rd *RecordDescriptor, v reflect.Value, target uintptr, ft reflect.Type, depth int) ([]*FieldDescriptor, bool) {
	if depth > maxFieldDepth {
		return nil, false
	}
	for _, f := range rd.Fields {
		fv := v.Field(f.Index)
		// a record's first field shares its address, so the type decides
		if fv.Type() == ft && fv.Addr().Pointer() == target {
			return []*FieldDescriptor{f}, true
		}
		if f.Shape.Kind == KindRecord && !f.Pointer {
			if rest, ok := findField(f.Shape.Record, fv, target, ft, depth+1); ok {
				return append([]*FieldDescriptor{f}, rest...), true
			}
		}
	}
	return nil, false
}

// Present reports whether the field is present in v under the absence
// rules of the codec: required fields are always present, optional
// fields are absent when nil. A nil v has nothing present.
func (r FieldRef[T]) Present(v *T) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v).Elem()
	for _, f := range r.Path {
		fv := rv.Field(f.Index)
		if !f.Required && isNil(fv) {
			return false
		}
		rv = fv
	}
	return true
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	}
	return false
}
