package wire

import "strconv"

// Tag is the one-byte type identifier the container format stores in front
// of every value. The numeric values are fixed by the file format.
type Tag uint8

const (
	TagNone   Tag = 0
	TagBool   Tag = 1
	TagI8     Tag = 2
	TagU8     Tag = 3
	TagI16    Tag = 4
	TagU16    Tag = 5
	TagI32    Tag = 6
	TagU32    Tag = 7
	TagI64    Tag = 8
	TagU64    Tag = 9
	TagF32    Tag = 10
	TagVec2   Tag = 11
	TagVec3   Tag = 12
	TagVec4   Tag = 13
	TagMtx44  Tag = 14
	TagRGBA   Tag = 15
	TagString Tag = 16
	TagHash   Tag = 17
	TagFile   Tag = 18

	TagList    Tag = 0x80
	TagList2   Tag = 0x81
	TagPointer Tag = 0x82
	TagEmbed   Tag = 0x83
	TagLink    Tag = 0x84
	TagOption  Tag = 0x85
	TagMap     Tag = 0x86
	TagFlag    Tag = 0x87
)

var tagNames = map[Tag]string{
	TagNone:    "none",
	TagBool:    "bool",
	TagI8:      "i8",
	TagU8:      "u8",
	TagI16:     "i16",
	TagU16:     "u16",
	TagI32:     "i32",
	TagU32:     "u32",
	TagI64:     "i64",
	TagU64:     "u64",
	TagF32:     "f32",
	TagVec2:    "vec2",
	TagVec3:    "vec3",
	TagVec4:    "vec4",
	TagMtx44:   "mtx44",
	TagRGBA:    "rgba",
	TagString:  "string",
	TagHash:    "hash",
	TagFile:    "file",
	TagList:    "list",
	TagList2:   "list2",
	TagPointer: "pointer",
	TagEmbed:   "embed",
	TagLink:    "link",
	TagOption:  "option",
	TagMap:     "map",
	TagFlag:    "flag",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "tag(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is a tag the format defines.
func (t Tag) Valid() bool {
	_, ok := tagNames[t]
	return ok
}

// IsInteger reports whether t carries a fixed-width integer.
func (t Tag) IsInteger() bool { return t >= TagI8 && t <= TagU64 }

// IsSigned reports whether an integer tag is signed.
func (t Tag) IsSigned() bool {
	switch t {
	case TagI8, TagI16, TagI32, TagI64:
		return true
	}
	return false
}

// IsList reports whether t is one of the two list encodings.
func (t Tag) IsList() bool { return t == TagList || t == TagList2 }

// IsBag reports whether t introduces a nested field bag.
func (t Tag) IsBag() bool { return t == TagPointer || t == TagEmbed }

// FixedSize returns the encoded size of fixed-width tags and -1 otherwise.
func (t Tag) FixedSize() int {
	switch t {
	case TagNone:
		return 0
	case TagBool, TagI8, TagU8, TagFlag:
		return 1
	case TagI16, TagU16:
		return 2
	case TagI32, TagU32, TagF32, TagHash, TagLink, TagRGBA:
		return 4
	case TagI64, TagU64, TagFile, TagVec2:
		return 8
	case TagVec3:
		return 12
	case TagVec4:
		return 16
	case TagMtx44:
		return 64
	}
	return -1
}
