package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/propbin/schema"
)

func TestRegistry_Builds(t *testing.T) {
	reg, err := schema.Registry()
	require.NoError(t, err)

	again, err := schema.Registry()
	require.NoError(t, err)
	assert.Same(t, reg, again)
	assert.Same(t, reg, schema.MustRegistry())
}

func TestRegistry_Breadth(t *testing.T) {
	reg := schema.MustRegistry()

	assert.GreaterOrEqual(t, len(reg.Records()), 1000)
	assert.GreaterOrEqual(t, len(reg.Variants()), 65)
	assert.NotEmpty(t, reg.Assets())

	wide := 0
	for _, rd := range reg.Records() {
		if len(rd.Fields) >= 80 {
			wide++
		}
		assert.LessOrEqual(t, len(rd.Fields), 300, rd.Name)
	}
	assert.GreaterOrEqual(t, wide, 10, "records with 80+ fields")

	for _, name := range []string{"EnumViewController", "EnumScriptBlock"} {
		vd, err := reg.Variant(name)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(vd.Cases), 80, name)
	}
}

func TestRegistry_FamiliesRegistered(t *testing.T) {
	reg := schema.MustRegistry()

	for _, name := range []string{
		"HudViewController", "ShopViewController", "ItemData", "ShopData",
		"TftTraitData", "SkinCharacterDataProperties", "GameModeConstants",
		"AiBehaviorTree", "UnitStatsTable", "CameraConfig", "MissionData",
		"VfxEmitterModules", "PerkData", "ApplyDamageBlock",
	} {
		_, err := reg.Record(name)
		assert.NoError(t, err, name)
	}

	blocks, err := reg.Variant("EnumScriptBlock")
	require.NoError(t, err)
	require.NotNil(t, blocks.Sentinel)
	assert.Equal(t, "NoOpBlock", blocks.Sentinel.Record.Name)
}
