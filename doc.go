// Package propbin describes the records stored in property-bin ("PROP")
// game assets and the errors produced while converting them.
//
// The root package holds the type grammar only:
//
//   - Registry and Builder compile Go structs tagged `bin:"name,..."` and
//     sealed variant interfaces into record and variant descriptors, keyed
//     by the FNV-1a hash of their names.
//   - Hash, PathHash, Link and the vector/matrix/color types are the
//     primitive layer of the format.
//   - Error carries a code and a path ("rootRecord.field[2]{key}") for every
//     failure; AsError and ErrorCode extract it from wrapped errors.
//
// Conversions live in sub-packages: wire reads and writes the binary
// layout, codec drives it from descriptors (binary ⇄ Go ⇄ JSON/YAML),
// schema declares the game's records, and cmd/propbin is the CLI.
//
// Typical usage:
//
//	reg := schema.MustRegistry()
//	res, err := codec.DecodeAsset[schema.StaticMaterialDef](reg, data)
//	js, err := codec.MarshalJSON(reg, res.Value, propbin.JSONOpt{Pretty: true})
package propbin
