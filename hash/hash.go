// Package hash implements the two name hashes used by the property-bin format:
// a 32-bit FNV-1a over the lowercased name (field, record and variant-case
// identity) and a 64-bit XXH64 over the lowercased path (asset path hashes).
package hash

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	fnvOffset32 uint32 = 0x811c9dc5
	fnvPrime32  uint32 = 0x01000193
)

// UnknownPrefix marks field names whose original spelling was never
// recovered; the hash is the hex literal that follows the prefix.
const UnknownPrefix = "unk_0x"

// FNV1a returns the 32-bit FNV-1a hash of s with ASCII letters folded to
// lower case.
func FNV1a(s string) uint32 {
	h := fnvOffset32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		h ^= uint32(c)
		h *= fnvPrime32
	}
	return h
}

// Name returns the wire hash for a declared name. Names of the form
// "unk_0x<hex>" (and bare "0x<hex>") resolve to the literal value.
func Name(name string) uint32 {
	if v, ok := Literal(name); ok {
		return v
	}
	return FNV1a(name)
}

// Literal parses "unk_0x<hex>" or "0x<hex>" names.
func Literal(name string) (uint32, bool) {
	var hex string
	switch {
	case strings.HasPrefix(name, UnknownPrefix):
		hex = name[len(UnknownPrefix):]
	case strings.HasPrefix(name, "0x"):
		hex = name[2:]
	default:
		return 0, false
	}
	if hex == "" || len(hex) > 8 {
		return 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// XXH64 returns the 64-bit XXH64 hash (seed 0) of the lowercased path.
func XXH64(path string) uint64 {
	return xxhash.Sum64String(strings.ToLower(path))
}

// Path returns the 64-bit path hash, honouring "0x<hex>" literals.
func Path(path string) uint64 {
	if strings.HasPrefix(path, "0x") && len(path) > 2 && len(path) <= 18 {
		if v, err := strconv.ParseUint(path[2:], 16, 64); err == nil {
			return v
		}
	}
	return XXH64(path)
}
