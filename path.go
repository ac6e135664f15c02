package propbin

import (
	"strconv"
	"strings"
)

type segmentKind uint8

const (
	segField segmentKind = iota
	segIndex
	segKey
)

// Segment is one step of a Path.
type Segment struct {
	kind  segmentKind
	name  string
	index int
}

// FieldSeg returns a field-name segment.
func FieldSeg(name string) Segment { return Segment{kind: segField, name: name} }

// RootSeg returns the first segment of every path below rd: the record's
// camelCase name, the same form variant cases use in JSON.
func RootSeg(rd *RecordDescriptor) Segment { return FieldSeg(rd.JSONName()) }

// IndexSeg returns a sequence-index segment.
func IndexSeg(i int) Segment { return Segment{kind: segIndex, index: i} }

// KeySeg returns a mapping-key segment.
func KeySeg(key string) Segment { return Segment{kind: segKey, name: key} }

// Path locates a value from the root record: dot-separated field names,
// "[i]" for sequence indices and "{key}" for mapping keys, e.g.
// "rootScriptSequence.blocks[0].sequence.blocks[2]".
type Path []Segment

// Field returns a new Path extended by a field segment.
func (p Path) Field(name string) Path { return p.with(FieldSeg(name)) }

// Index returns a new Path extended by an index segment.
func (p Path) Index(i int) Path { return p.with(IndexSeg(i)) }

// Key returns a new Path extended by a key segment.
func (p Path) Key(k string) Path { return p.with(KeySeg(k)) }

func (p Path) with(s Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, s := range p {
		switch s.kind {
		case segField:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.name)
		case segIndex:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
		case segKey:
			b.WriteByte('{')
			b.WriteString(s.name)
			b.WriteByte('}')
		}
	}
	return b.String()
}
