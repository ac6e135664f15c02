package propbin

import (
	"reflect"
	"strings"
)

// fieldTag is the parsed form of a `bin:"name,opt..."` struct tag.
type fieldTag struct {
	name     string
	optional bool
	indirect bool
	skip     bool
}

// parseFieldTag applies the repository-wide rule for record fields:
// `bin:"<camelCaseName>[,optional][,indirect]"`; "-" excludes the field.
// ok is false when the field carries no bin tag at all.
func parseFieldTag(sf reflect.StructField) (fieldTag, bool, *Error) {
	raw, ok := sf.Tag.Lookup("bin")
	if !ok {
		return fieldTag{}, false, nil
	}
	if raw == "-" {
		return fieldTag{skip: true}, true, nil
	}
	parts := strings.Split(raw, ",")
	ft := fieldTag{name: strings.TrimSpace(parts[0])}
	if ft.name == "" {
		return ft, true, buildError("field %s: empty bin name", sf.Name)
	}
	for _, p := range parts[1:] {
		switch strings.TrimSpace(p) {
		case "optional":
			ft.optional = true
		case "indirect":
			ft.indirect = true
		case "":
		default:
			return ft, true, buildError("field %s: unknown bin option %q", sf.Name, p)
		}
	}
	return ft, true, nil
}
