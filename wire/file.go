package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

var (
	magicProp  = []byte("PROP")
	magicPatch = []byte("PTCH")
)

// Entry is one top-level record of a container. Data holds the complete
// entry body starting at its size prefix.
type Entry struct {
	ClassHash uint32
	PathHash  uint32
	Data      []byte
}

// Source returns a Reader whose BeginRecord yields this entry's header.
func (e Entry) Source() *Reader { return NewEntryReader(e.Data, e.ClassHash) }

// Patch is one override carried by a PTCH container. Value holds the raw
// encoded value of type Tag.
type Patch struct {
	PathHash uint32
	Path     string
	Tag      Tag
	Value    []byte
}

// File is a decoded container: header, linked files and raw entries.
type File struct {
	Patch   bool
	Version uint32
	Linked  []string
	Entries []Entry
	Patches []Patch
}

// ReadFile splits a container into its entries without decoding them.
func ReadFile(b []byte) (*File, error) {
	r := NewReader(b)
	f := &File{}
	if bytes.HasPrefix(b, magicPatch) {
		f.Patch = true
		if _, err := r.take(4 + 8); err != nil {
			return nil, err
		}
	}
	magic, err := r.take(4)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, magicProp) {
		return nil, &OffsetError{Offset: int64(r.pos - 4), Err: ErrBadMagic}
	}
	if f.Version, err = r.U32(); err != nil {
		return nil, err
	}
	if f.Version >= 2 {
		n, err := r.U32()
		if err != nil {
			return nil, err
		}
		for i := uint32(0); i < n; i++ {
			s, err := r.Str()
			if err != nil {
				return nil, err
			}
			f.Linked = append(f.Linked, s)
		}
	}
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	if int64(count)*4 > int64(r.Remaining()) {
		return nil, r.fail(ErrTruncated)
	}
	f.Entries = make([]Entry, count)
	for i := range f.Entries {
		if f.Entries[i].ClassHash, err = r.U32(); err != nil {
			return nil, err
		}
	}
	for i := range f.Entries {
		start := r.pos
		size, err := r.size()
		if err != nil {
			return nil, err
		}
		if size < 6 {
			return nil, &OffsetError{Offset: int64(start), Err: ErrSizeMismatch}
		}
		f.Entries[i].PathHash = binary.LittleEndian.Uint32(r.buf[r.pos:])
		r.pos += size
		f.Entries[i].Data = r.buf[start:r.pos]
	}
	if f.Patch {
		if err := readPatches(r, f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func readPatches(r *Reader, f *File) error {
	n, err := r.U32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		var p Patch
		if p.PathHash, err = r.U32(); err != nil {
			return err
		}
		size, err := r.size()
		if err != nil {
			return err
		}
		end := r.pos + size
		if p.Tag, err = r.tag(); err != nil {
			return err
		}
		if p.Path, err = r.Str(); err != nil {
			return err
		}
		start := r.pos
		if err := r.Skip(p.Tag); err != nil {
			return err
		}
		if r.pos != end {
			return &OffsetError{Offset: int64(start), Err: ErrSizeMismatch}
		}
		p.Value = r.buf[start:r.pos]
		f.Patches = append(f.Patches, p)
	}
	return nil
}

// Encode serializes the container. Entry Data must hold complete entry
// bodies as produced by Writer.BeginEntry/EndEntry.
func (f *File) Encode() ([]byte, error) {
	w := NewWriter()
	if f.Patch {
		w.Raw(magicPatch)
		w.U32(1)
		w.U32(0)
	}
	w.Raw(magicProp)
	version := f.Version
	if version == 0 {
		version = 3
	}
	w.U32(version)
	if version >= 2 {
		w.U32(uint32(len(f.Linked)))
		for _, s := range f.Linked {
			w.Str(s)
		}
	} else if len(f.Linked) > 0 {
		return nil, fmt.Errorf("wire: version %d cannot carry linked files", version)
	}
	w.U32(uint32(len(f.Entries)))
	for _, e := range f.Entries {
		w.U32(e.ClassHash)
	}
	for _, e := range f.Entries {
		w.Raw(e.Data)
	}
	if f.Patch {
		w.U32(uint32(len(f.Patches)))
		for _, p := range f.Patches {
			w.U32(p.PathHash)
			body := NewWriter()
			body.U8(uint8(p.Tag))
			body.Str(p.Path)
			body.Raw(p.Value)
			b, err := body.Bytes()
			if err != nil {
				return nil, err
			}
			w.U32(uint32(len(b)))
			w.Raw(b)
		}
	}
	return w.Bytes()
}
