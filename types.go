package propbin

import "go.uber.org/zap"

// Hash is a 32-bit name hash (FNV-1a of a lowercased name). It names
// another record, field or string-table key; resolving it is up to callers.
type Hash uint32

// PathHash is a 64-bit hash (XXH64) of a lowercased asset file path.
type PathHash uint64

// Link is a 32-bit hash naming another entry of the same or a linked file.
type Link uint32

// Vec2 is a 2-wide float vector (8 bytes on the wire).
type Vec2 [2]float32

// Vec3 is a 3-wide float vector (12 bytes on the wire).
type Vec3 [3]float32

// Vec4 is a 4-wide float vector (16 bytes on the wire).
type Vec4 [4]float32

// Mtx44 is a row-major 4x4 float matrix (64 bytes on the wire).
type Mtx44 [16]float32

// Color is an RGBA tuple, one byte per channel, alpha always explicit.
type Color [4]uint8

// DefaultMaxDepth bounds record nesting during decode.
const DefaultMaxDepth = 1024

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	// MaxDepth caps nested record/variant depth; 0 means DefaultMaxDepth.
	MaxDepth int
	// MaxBytes rejects inputs larger than this many bytes when > 0.
	MaxBytes int64
	// CollectUnknown records the path of every skipped field in
	// Decoded.UnknownFields. The counter is always maintained.
	CollectUnknown bool
	// Logger receives debug entries for skipped fields. Nil disables logging.
	Logger *zap.Logger
}

// EffectiveMaxDepth returns MaxDepth or the default when unset.
func (o DecodeOpt) EffectiveMaxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

// JSONOpt controls JSON rendering.
type JSONOpt struct {
	// Pretty indents output with two spaces per level.
	Pretty bool
}

// LastOpt returns the last option of a variadic option list, or the zero
// value when none is given.
func LastOpt[O any](opts []O) O {
	var o O
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	return o
}
