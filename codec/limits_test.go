package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/codec"
	"github.com/reoring/propbin/schema"
	"github.com/reoring/propbin/wire"
)

type chainNode struct {
	Level *uint32    `bin:"level,optional"`
	Next  *chainNode `bin:"next,optional,indirect"`
}

func chainRegistry(t *testing.T) *propbin.Registry {
	t.Helper()
	b := propbin.NewBuilder()
	propbin.Record[chainNode](b, "ChainNode")
	reg, err := b.Build()
	require.NoError(t, err)
	return reg
}

// chain builds n nested nodes, which decode as n nested bags.
func chain(n int) *chainNode {
	var head *chainNode
	for i := n; i > 0; i-- {
		lvl := uint32(i)
		head = &chainNode{Level: &lvl, Next: head}
	}
	return head
}

func encodeChain(t *testing.T, reg *propbin.Registry, n int) []byte {
	t.Helper()
	w := wire.NewWriter()
	require.NoError(t, codec.EncodeRecord(reg, w, chain(n)))
	b, err := w.Bytes()
	require.NoError(t, err)
	return b
}

func TestDecode_DepthCap(t *testing.T) {
	reg := chainRegistry(t)

	ok := encodeChain(t, reg, propbin.DefaultMaxDepth)
	var got chainNode
	_, err := codec.DecodeRecord(reg, wire.NewReader(ok), &got)
	require.NoError(t, err)
	assert.Equal(t, chain(propbin.DefaultMaxDepth), &got)

	deep := encodeChain(t, reg, propbin.DefaultMaxDepth+1)
	_, err = codec.DecodeRecord(reg, wire.NewReader(deep), &chainNode{})
	requireCode(t, err, propbin.CodeRecursionLimit, "")
}

func TestDecode_DepthCapConfigurable(t *testing.T) {
	reg := chainRegistry(t)
	data := encodeChain(t, reg, 10)

	_, err := codec.DecodeRecord(reg, wire.NewReader(data), &chainNode{}, propbin.DecodeOpt{MaxDepth: 10})
	require.NoError(t, err)
	_, err = codec.DecodeRecord(reg, wire.NewReader(data), &chainNode{}, propbin.DecodeOpt{MaxDepth: 9})
	requireCode(t, err, propbin.CodeRecursionLimit, "")
}

func TestUnmarshalJSON_DepthCap(t *testing.T) {
	reg := chainRegistry(t)
	js, err := codec.MarshalJSON(reg, chain(20))
	require.NoError(t, err)

	var got chainNode
	_, err = codec.UnmarshalJSON(reg, js, &got, propbin.DecodeOpt{MaxDepth: 20})
	require.NoError(t, err)
	assert.Equal(t, chain(20), &got)

	_, err = codec.UnmarshalJSON(reg, js, &chainNode{}, propbin.DecodeOpt{MaxDepth: 19})
	requireCode(t, err, propbin.CodeRecursionLimit, "")
}

func TestMarshalJSON_ParallelDeterminism(t *testing.T) {
	reg := registry(t)
	v := &schema.StringTable{
		Locale:  "ko_kr",
		Entries: map[uint32]string{},
	}
	for i := uint32(0); i < 500; i++ {
		v.Entries[i*7919%1000] = "entry"
	}
	want, err := codec.MarshalJSON(reg, v)
	require.NoError(t, err)
	data, err := codec.EncodeAsset(reg, v, 3)
	require.NoError(t, err)

	var g errgroup.Group
	outs := make([][]byte, 32)
	for i := range outs {
		g.Go(func() error {
			res, err := codec.DecodeAsset[schema.StringTable](reg, data)
			if err != nil {
				return err
			}
			outs[i], err = codec.MarshalJSON(reg, res.Value)
			return err
		})
	}
	require.NoError(t, g.Wait())
	for i, out := range outs {
		assert.True(t, bytes.Equal(want, out), "output %d differs", i)
	}
}

// nestedLoops builds a script with n loops each wrapping the next, which
// opens a LoopBlock and a ScriptSequence bag per level.
func nestedLoops(n int) *schema.RootScriptSequence {
	inner := &schema.ScriptSequence{Blocks: []schema.EnumScriptBlock{&schema.BreakBlock{}}}
	for i := 1; i < n; i++ {
		inner = &schema.ScriptSequence{Blocks: []schema.EnumScriptBlock{&schema.LoopBlock{Sequence: inner}}}
	}
	return &schema.RootScriptSequence{Blocks: []schema.EnumScriptBlock{&schema.LoopBlock{Sequence: inner}}}
}

func TestDecode_DepthCountsScriptLevels(t *testing.T) {
	reg := registry(t)
	for _, n := range []int{600, propbin.DefaultMaxDepth} {
		data, err := codec.EncodeAsset(reg, nestedLoops(n), 1)
		require.NoError(t, err)
		res, err := codec.DecodeAsset[schema.RootScriptSequence](reg, data)
		require.NoError(t, err, "levels=%d", n)
		assert.Equal(t, nestedLoops(n), res.Value)
	}

	data, err := codec.EncodeAsset(reg, nestedLoops(propbin.DefaultMaxDepth+1), 1)
	require.NoError(t, err)
	_, err = codec.DecodeAsset[schema.RootScriptSequence](reg, data)
	requireCode(t, err, propbin.CodeRecursionLimit, "")
}

func TestUnmarshalJSON_DepthCountsScriptLevels(t *testing.T) {
	reg := registry(t)
	opt := propbin.DecodeOpt{MaxDepth: 50}

	js, err := codec.MarshalJSON(reg, nestedLoops(50))
	require.NoError(t, err)
	var got schema.RootScriptSequence
	_, err = codec.UnmarshalJSON(reg, js, &got, opt)
	require.NoError(t, err)
	assert.Equal(t, nestedLoops(50), &got)

	js, err = codec.MarshalJSON(reg, nestedLoops(51))
	require.NoError(t, err)
	_, err = codec.UnmarshalJSON(reg, js, &schema.RootScriptSequence{}, opt)
	requireCode(t, err, propbin.CodeRecursionLimit, "")
}
