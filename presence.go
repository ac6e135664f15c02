package propbin

import "github.com/reoring/propbin/wire"

// UnknownField describes one field skipped during decode because its hash is
// not declared by the record being decoded.
type UnknownField struct {
	Path string // path of the containing record
	Hash uint32
	Tag  wire.Tag
}

// Decoded carries a decoded value along with per-decode diagnostics.
type Decoded[T any] struct {
	Value T
	// Unknown counts skipped fields across the whole tree.
	Unknown int
	// UnknownFields lists skipped fields when DecodeOpt.CollectUnknown is set.
	UnknownFields []UnknownField
	// PathHash is the container's entry path hash for asset decodes.
	PathHash uint32
}
