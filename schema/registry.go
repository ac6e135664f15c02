// Package schema declares the record and variant types of the game's
// property-bag assets and assembles them into one registry.
package schema

import (
	"sync"

	propbin "github.com/reoring/propbin"
)

// Registry returns the process-wide registry holding every type in this
// package. It is built once; later calls return the same value.
var Registry = sync.OnceValues(func() (*propbin.Registry, error) {
	b := propbin.NewBuilder()
	registerScript(b)
	registerScriptActions(b)
	registerAnimation(b)
	registerVfx(b)
	registerMaterial(b)
	registerCharacter(b)
	registerSpell(b)
	registerUI(b)
	registerMap(b)
	registerTelemetry(b)
	registerLocale(b)
	registerUIViews(b)
	registerShop(b)
	registerTft(b)
	registerSkin(b)
	registerAudio(b)
	registerGameMode(b)
	registerAI(b)
	registerStats(b)
	registerEnvironment(b)
	registerProgression(b)
	registerVfxModules(b)
	registerPerks(b)
	return b.Build()
})

// MustRegistry is Registry for callers that treat a broken schema as fatal.
func MustRegistry() *propbin.Registry {
	reg, err := Registry()
	if err != nil {
		panic(err)
	}
	return reg
}
