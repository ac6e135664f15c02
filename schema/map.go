package schema

import propbin "github.com/reoring/propbin"

// EnumMapPlaceable is one object placed on a map.
type EnumMapPlaceable interface{ mapPlaceable() }

// MapPlaceableContainer holds every placeable of a map, keyed by name hash.
type MapPlaceableContainer struct {
	Items          map[propbin.Hash]EnumMapPlaceable `bin:"items,optional"`
	PathHashToSelf *propbin.PathHash                 `bin:"pathHashToSelf,optional"`
}

type MapLocator struct {
	Name       string         `bin:"name"`
	Transform  *propbin.Mtx44 `bin:"transform,optional"`
	Visibility *uint8         `bin:"visibilityFlags,optional"`
}

type MapParticle struct {
	Name           string         `bin:"name"`
	Transform      *propbin.Mtx44 `bin:"transform,optional"`
	System         propbin.Link   `bin:"system"`
	EyeCandy       *bool          `bin:"eyeCandy,optional"`
	Quality        *int32         `bin:"quality,optional"`
	ColorModulate  *propbin.Color `bin:"colorModulate,optional"`
	StartDisabled  *bool          `bin:"startDisabled,optional"`
	VisibilityMode *uint32        `bin:"visibilityMode,optional"`
	TransitionTime *float32       `bin:"transitionTime,optional"`
}

type MapAudio struct {
	Name      string         `bin:"name"`
	Transform *propbin.Mtx44 `bin:"transform,optional"`
	EventName *string        `bin:"eventName,optional"`
	AudioType *uint32        `bin:"audioType,optional"`
}

type GdsMapObject struct {
	Name                       string         `bin:"name"`
	Transform                  *propbin.Mtx44 `bin:"transform,optional"`
	Type                       *uint8         `bin:"type,optional"`
	BoxMin                     *propbin.Vec3  `bin:"boxMin,optional"`
	BoxMax                     *propbin.Vec3  `bin:"boxMax,optional"`
	EyeCandy                   *bool          `bin:"eyeCandy,optional"`
	ExtraInfo                  []propbin.Link `bin:"extraInfo,optional"`
	IgnoreCollisionOnPlacement *bool          `bin:"ignoreCollisionOnPlacement,optional"`
}

type MapScriptLocator struct {
	Name       string            `bin:"name"`
	Transform  *propbin.Mtx44    `bin:"transform,optional"`
	ScriptName *string           `bin:"scriptName,optional"`
	Arguments  map[string]string `bin:"arguments,optional"`
}

func (*MapLocator) mapPlaceable()       {}
func (*MapParticle) mapPlaceable()      {}
func (*MapAudio) mapPlaceable()         {}
func (*GdsMapObject) mapPlaceable()     {}
func (*MapScriptLocator) mapPlaceable() {}

func registerMap(b *propbin.Builder) {
	propbin.Record[MapPlaceableContainer](b, "MapPlaceableContainer", propbin.AsAsset())
	propbin.Record[MapLocator](b, "MapLocator")
	propbin.Record[MapParticle](b, "MapParticle")
	propbin.Record[MapAudio](b, "MapAudio")
	propbin.Record[GdsMapObject](b, "GdsMapObject")
	propbin.Record[MapScriptLocator](b, "MapScriptLocator")
	propbin.Variant[EnumMapPlaceable](b, "EnumMapPlaceable",
		propbin.Case[MapLocator](),
		propbin.Case[MapParticle](),
		propbin.Case[MapAudio](),
		propbin.Case[GdsMapObject](),
		propbin.Case[MapScriptLocator](),
	)
}
