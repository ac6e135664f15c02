package propbin_test

import (
	"testing"

	propbin "github.com/reoring/propbin"
)

type inner struct {
	First uint32  `bin:"first"`
	Note  *string `bin:"note,optional"`
}

type outer struct {
	In   inner    `bin:"in"`
	Opt  *inner   `bin:"opt,optional"`
	Tags []string `bin:"tags,optional"`
}

func outerRegistry(t *testing.T) *propbin.Registry {
	t.Helper()
	b := propbin.NewBuilder()
	propbin.Record[inner](b, "Inner")
	propbin.Record[outer](b, "Outer")
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return reg
}

func TestFieldOf_Paths(t *testing.T) {
	reg := outerRegistry(t)

	in := propbin.MustFieldOf(reg, func(o *outer) *inner { return &o.In })
	if in.String() != "outer.in" || in.Field.Name != "in" || len(in.Path) != 1 {
		t.Fatalf("in = %s %+v", in, in.Field)
	}
	// First shares In's address; the selector's type picks the deeper field
	first := propbin.MustFieldOf(reg, func(o *outer) *uint32 { return &o.In.First })
	if first.String() != "outer.in.first" || !first.Field.Required {
		t.Fatalf("first = %s", first)
	}
	note := propbin.MustFieldOf(reg, func(o *outer) **string { return &o.In.Note })
	if note.String() != "outer.in.note" || note.Field.Required {
		t.Fatalf("note = %s", note)
	}
	tags := propbin.MustFieldOf(reg, func(o *outer) *[]string { return &o.Tags })
	if tags.Field.Shape.Kind != propbin.KindSequence {
		t.Fatalf("tags shape = %s", tags.Field.Shape)
	}
}

func TestFieldOf_Errors(t *testing.T) {
	reg := outerRegistry(t)
	if _, err := propbin.FieldOf(reg, func(o *outer) *uint32 { x := uint32(1); return &x }); err == nil {
		t.Fatalf("expected error for a selector outside the record")
	}
	if _, err := propbin.FieldOf[outer, uint32](reg, nil); err == nil {
		t.Fatalf("expected error for nil selector")
	}
	type stray struct {
		A uint32 `bin:"a"`
	}
	_, err := propbin.FieldOf(reg, func(s *stray) *uint32 { return &s.A })
	if propbin.ErrorCode(err) != propbin.CodeUnknownRecordName {
		t.Fatalf("want unknown_record_name, got %v", err)
	}
}

func TestFieldRef_Present(t *testing.T) {
	reg := outerRegistry(t)
	first := propbin.MustFieldOf(reg, func(o *outer) *uint32 { return &o.In.First })
	note := propbin.MustFieldOf(reg, func(o *outer) **string { return &o.In.Note })
	tags := propbin.MustFieldOf(reg, func(o *outer) *[]string { return &o.Tags })

	v := &outer{}
	if !first.Present(v) {
		t.Fatalf("required fields are always present")
	}
	if note.Present(v) || tags.Present(v) {
		t.Fatalf("nil optionals must be absent")
	}
	s := "x"
	v.In.Note = &s
	v.Tags = []string{}
	if !note.Present(v) || !tags.Present(v) {
		t.Fatalf("set optionals must be present")
	}
	if first.Present(nil) {
		t.Fatalf("nil record has nothing present")
	}
}
