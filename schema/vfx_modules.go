package schema

import propbin "github.com/reoring/propbin"

// EnumVfxMaterialDriver animates one material parameter of an emitter.
type EnumVfxMaterialDriver interface{ vfxMaterialDriver() }

// EnumVfxSpawnRule decides when an emitter spawns particles.
type EnumVfxSpawnRule interface{ vfxSpawnRule() }

type VfxSoftParticleDefinitionData struct {
	DeltaIn  *float32 `bin:"deltaIn,optional"`
	DeltaOut *float32 `bin:"deltaOut,optional"`
	BeginIn  *float32 `bin:"beginIn,optional"`
	BeginOut *float32 `bin:"beginOut,optional"`
}

type VfxDistortionDefinitionData struct {
	Distortion       *float32 `bin:"distortion,optional"`
	DistortionMode   *uint8   `bin:"distortionMode,optional"`
	NormalMapTexture *string  `bin:"normalMapTexture,optional"`
}

type VfxReflectionDefinitionData struct {
	ReflectionMapTexture      *string        `bin:"reflectionMapTexture,optional"`
	ReflectionOpacityDirect   *float32       `bin:"reflectionOpacityDirect,optional"`
	ReflectionOpacityGlancing *float32       `bin:"reflectionOpacityGlancing,optional"`
	ReflectionFresnel         *float32       `bin:"reflectionFresnel,optional"`
	Fresnel                   *float32       `bin:"fresnel,optional"`
	FresnelColor              *propbin.Color `bin:"fresnelColor,optional"`
}

type VfxFlexShapeDefinitionData struct {
	ScaleBirthScaleByBoundObjectSize   *float32 `bin:"scaleBirthScaleByBoundObjectSize,optional"`
	ScaleEmitOffsetByBoundObjectSize   *float32 `bin:"scaleEmitOffsetByBoundObjectSize,optional"`
	ScaleEmitOffsetByBoundObjectHeight *float32 `bin:"scaleEmitOffsetByBoundObjectHeight,optional"`
	ScaleEmitOffsetByBoundObjectRadius *float32 `bin:"scaleEmitOffsetByBoundObjectRadius,optional"`
}

type VfxPaletteDefinitionData struct {
	PaletteTexture            *string  `bin:"paletteTexture,optional"`
	PaletteSelector           *float32 `bin:"paletteSelector,optional"`
	PaletteCount              *uint8   `bin:"paletteCount,optional"`
	PaletteTextureAddressMode *uint8   `bin:"paletteTextureAddressMode,optional"`
}

type VfxMaterialOverrideDefinitionData struct {
	Material          *propbin.Link `bin:"material,optional"`
	SubMeshName       *string       `bin:"subMeshName,optional"`
	OverrideBlendMode *uint8        `bin:"overrideBlendMode,optional"`
	Priority          *int32        `bin:"priority,optional"`
	BaseTexture       *string       `bin:"baseTexture,optional"`
}

type VfxFluidDefinitionData struct {
	NumFluids     *uint8                `bin:"mNumFluids,optional"`
	Dissipation   *float32              `bin:"mDissipation,optional"`
	DensityForce  *float32              `bin:"mDensityForce,optional"`
	VelocityForce *float32              `bin:"mVelocityForce,optional"`
	Emitters      []VfxFluidEmitterData `bin:"mEmitters,optional"`
}

type VfxFluidEmitterData struct {
	Name      string        `bin:"mName"`
	Position  *propbin.Vec2 `bin:"mPosition,optional"`
	Direction *propbin.Vec2 `bin:"mDirection,optional"`
	Radius    *float32      `bin:"mRadius,optional"`
	Rate      *float32      `bin:"mRate,optional"`
}

type VfxMigrationResources struct {
	ResourceMap map[propbin.Hash]propbin.Link `bin:"mResourceMap,optional"`
}

type VfxEmissionSurfaceData struct {
	MeshName                        *string  `bin:"meshName,optional"`
	SkeletonName                    *string  `bin:"skeletonName,optional"`
	AnimationName                   *string  `bin:"animationName,optional"`
	MeshScale                       *float32 `bin:"meshScale,optional"`
	UseAvatarPose                   *bool    `bin:"useAvatarPose,optional"`
	UseSurfaceNormalForBirthPhysics *bool    `bin:"useSurfaceNormalForBirthPhysics,optional"`
}

type VfxTextureMultDefinitionData struct {
	TextureMult                   *string       `bin:"textureMult,optional"`
	UvScaleMult                   *propbin.Vec2 `bin:"uvScaleMult,optional"`
	UvRotationMult                *float32      `bin:"uvRotationMult,optional"`
	BirthUVScrollRateMult         *propbin.Vec2 `bin:"birthUVScrollRateMult,optional"`
	ParticleIntegratedTextureAnim *bool         `bin:"particleIntegratedTextureAnim,optional"`
}

type VfxLingerDefinitionData struct {
	UseKeyedLingerDrag     *bool          `bin:"useKeyedLingerDrag,optional"`
	LingerDrag             *propbin.Vec3  `bin:"lingerDrag,optional"`
	UseSeparateLingerColor *bool          `bin:"useSeparateLingerColor,optional"`
	SeparateLingerColor    *propbin.Color `bin:"separateLingerColor,optional"`
	KeyedLingerVelocity    *propbin.Vec3  `bin:"keyedLingerVelocity,optional"`
}

type VfxDirectionDefinitionData struct {
	Direction         *propbin.Vec3 `bin:"direction,optional"`
	LockToEmitterAxis *bool         `bin:"lockToEmitterAxis,optional"`
	RandomDirection   *bool         `bin:"randomDirection,optional"`
}

type VfxAlphaErosionDefinitionData struct {
	ErosionDriveCurve      *float32      `bin:"erosionDriveCurve,optional"`
	ErosionFeatherIn       *float32      `bin:"erosionFeatherIn,optional"`
	ErosionFeatherOut      *float32      `bin:"erosionFeatherOut,optional"`
	ErosionMapName         *string       `bin:"erosionMapName,optional"`
	ErosionMapChannelMixer *propbin.Vec4 `bin:"erosionMapChannelMixer,optional"`
}

type VfxEmitterAudio struct {
	SoundOnCreate      *string `bin:"soundOnCreate,optional"`
	SoundPersistent    *string `bin:"soundPersistent,optional"`
	SoundStopOnDestroy *bool   `bin:"soundStopOnDestroy,optional"`
}

type VfxEmitterLegacySimple struct {
	BirthRotation *propbin.Vec3  `bin:"birthRotation,optional"`
	BirthScale    *propbin.Vec3  `bin:"birthScale,optional"`
	BirthColor    *propbin.Color `bin:"birthColor,optional"`
	Lifetime      *float32       `bin:"lifetime,optional"`
	Rate          *float32       `bin:"rate,optional"`
}

type VfxProjectionDefinitionData struct {
	YRange        *float32       `bin:"mYRange,optional"`
	Fading        *float32       `bin:"mFading,optional"`
	ColorModulate *propbin.Color `bin:"mColorModulate,optional"`
}

// VfxEmitterModules gathers the optional per-emitter feature blocks.
type VfxEmitterModules struct {
	Soft              *VfxSoftParticleDefinitionData         `bin:"soft,optional"`
	Distortion        *VfxDistortionDefinitionData           `bin:"distortion,optional"`
	Reflection        *VfxReflectionDefinitionData           `bin:"reflection,optional"`
	Flex              *VfxFlexShapeDefinitionData            `bin:"flex,optional"`
	Palette           *VfxPaletteDefinitionData              `bin:"palette,optional"`
	MaterialOverrides []VfxMaterialOverrideDefinitionData    `bin:"materialOverrides,optional"`
	Fluid             *VfxFluidDefinitionData                `bin:"fluid,optional"`
	Surface           *VfxEmissionSurfaceData                `bin:"surface,optional"`
	TextureMult       *VfxTextureMultDefinitionData          `bin:"textureMult,optional"`
	Linger            *VfxLingerDefinitionData               `bin:"linger,optional"`
	Direction         *VfxDirectionDefinitionData            `bin:"direction,optional"`
	Erosion           *VfxAlphaErosionDefinitionData         `bin:"erosion,optional"`
	Audio             *VfxEmitterAudio                       `bin:"audio,optional"`
	Legacy            *VfxEmitterLegacySimple                `bin:"legacy,optional"`
	Projection        *VfxProjectionDefinitionData           `bin:"projection,optional"`
	Spawn             EnumVfxSpawnRule                       `bin:"spawn,optional"`
	Drivers           map[propbin.Hash]EnumVfxMaterialDriver `bin:"drivers,optional"`
	Migration         *VfxMigrationResources                 `bin:"migration,optional"`
}

type VfxColorOverLifeMaterialDriver struct {
	Colors []propbin.Color `bin:"colors,optional"`
	Times  []float32       `bin:"times,optional"`
}

type VfxFloatOverLifeMaterialDriver struct {
	Values []float32 `bin:"values,optional"`
	Times  []float32 `bin:"times,optional"`
}

type VfxSineMaterialDriver struct {
	Frequency *float32 `bin:"frequency,optional"`
	Scale     *float32 `bin:"scale,optional"`
	Bias      *float32 `bin:"bias,optional"`
}

type VfxLinearMaterialDriver struct {
	Start    *float32 `bin:"start,optional"`
	End      *float32 `bin:"end,optional"`
	Duration *float32 `bin:"duration,optional"`
}

type VfxRandomMaterialDriver struct {
	Min         *float32 `bin:"min,optional"`
	Max         *float32 `bin:"max,optional"`
	PerParticle *bool    `bin:"perParticle,optional"`
}

type VfxSpawnRate struct {
	Rate         *float32 `bin:"rate,optional"`
	RateVariance *float32 `bin:"rateVariance,optional"`
}

type VfxSpawnBurst struct {
	Count    *uint16  `bin:"count,optional"`
	Interval *float32 `bin:"interval,optional"`
	Repeats  *uint16  `bin:"repeats,optional"`
}

type VfxSpawnDistance struct {
	Distance    *float32 `bin:"distance,optional"`
	MaxPerFrame *uint16  `bin:"maxPerFrame,optional"`
}

type VfxSpawnOnce struct{}

type VfxSystemPreset struct {
	Name         string                        `bin:"mName"`
	Systems      map[propbin.Hash]propbin.Link `bin:"mSystems,optional"`
	Quality      *uint8                        `bin:"mQuality,optional"`
	LodDistances []float32                     `bin:"mLodDistances,optional"`
	Modules      *VfxEmitterModules            `bin:"mModules,optional"`
}

func (*VfxColorOverLifeMaterialDriver) vfxMaterialDriver() {}
func (*VfxFloatOverLifeMaterialDriver) vfxMaterialDriver() {}
func (*VfxSineMaterialDriver) vfxMaterialDriver()          {}
func (*VfxLinearMaterialDriver) vfxMaterialDriver()        {}
func (*VfxRandomMaterialDriver) vfxMaterialDriver()        {}

func (*VfxSpawnRate) vfxSpawnRule()     {}
func (*VfxSpawnBurst) vfxSpawnRule()    {}
func (*VfxSpawnDistance) vfxSpawnRule() {}
func (*VfxSpawnOnce) vfxSpawnRule()     {}

func registerVfxModules(b *propbin.Builder) {
	propbin.Record[VfxSoftParticleDefinitionData](b, "VfxSoftParticleDefinitionData")
	propbin.Record[VfxDistortionDefinitionData](b, "VfxDistortionDefinitionData")
	propbin.Record[VfxReflectionDefinitionData](b, "VfxReflectionDefinitionData")
	propbin.Record[VfxFlexShapeDefinitionData](b, "VfxFlexShapeDefinitionData")
	propbin.Record[VfxPaletteDefinitionData](b, "VfxPaletteDefinitionData")
	propbin.Record[VfxMaterialOverrideDefinitionData](b, "VfxMaterialOverrideDefinitionData")
	propbin.Record[VfxFluidDefinitionData](b, "VfxFluidDefinitionData")
	propbin.Record[VfxFluidEmitterData](b, "VfxFluidEmitterData")
	propbin.Record[VfxMigrationResources](b, "VfxMigrationResources")
	propbin.Record[VfxEmissionSurfaceData](b, "VfxEmissionSurfaceData")
	propbin.Record[VfxTextureMultDefinitionData](b, "VfxTextureMultDefinitionData")
	propbin.Record[VfxLingerDefinitionData](b, "VfxLingerDefinitionData")
	propbin.Record[VfxDirectionDefinitionData](b, "VfxDirectionDefinitionData")
	propbin.Record[VfxAlphaErosionDefinitionData](b, "VfxAlphaErosionDefinitionData")
	propbin.Record[VfxEmitterAudio](b, "VfxEmitterAudio")
	propbin.Record[VfxEmitterLegacySimple](b, "VfxEmitterLegacySimple")
	propbin.Record[VfxProjectionDefinitionData](b, "VfxProjectionDefinitionData")
	propbin.Record[VfxEmitterModules](b, "VfxEmitterModules")
	propbin.Record[VfxColorOverLifeMaterialDriver](b, "VfxColorOverLifeMaterialDriver")
	propbin.Record[VfxFloatOverLifeMaterialDriver](b, "VfxFloatOverLifeMaterialDriver")
	propbin.Record[VfxSineMaterialDriver](b, "VfxSineMaterialDriver")
	propbin.Record[VfxLinearMaterialDriver](b, "VfxLinearMaterialDriver")
	propbin.Record[VfxRandomMaterialDriver](b, "VfxRandomMaterialDriver")
	propbin.Variant[EnumVfxMaterialDriver](b, "EnumVfxMaterialDriver",
		propbin.Case[VfxColorOverLifeMaterialDriver](),
		propbin.Case[VfxFloatOverLifeMaterialDriver](),
		propbin.Case[VfxSineMaterialDriver](),
		propbin.Case[VfxLinearMaterialDriver](),
		propbin.Case[VfxRandomMaterialDriver](),
	)

	propbin.Record[VfxSpawnRate](b, "VfxSpawnRate")
	propbin.Record[VfxSpawnBurst](b, "VfxSpawnBurst")
	propbin.Record[VfxSpawnDistance](b, "VfxSpawnDistance")
	propbin.Record[VfxSpawnOnce](b, "VfxSpawnOnce")
	propbin.Variant[EnumVfxSpawnRule](b, "EnumVfxSpawnRule",
		propbin.Case[VfxSpawnRate](),
		propbin.Case[VfxSpawnBurst](),
		propbin.Case[VfxSpawnDistance](),
		propbin.Case[VfxSpawnOnce](),
	)

	propbin.Record[VfxSystemPreset](b, "VfxSystemPreset", propbin.AsAsset())
}
