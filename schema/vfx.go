package schema

import propbin "github.com/reoring/propbin"

// EnumVfxPrimitive is the geometry an emitter draws.
type EnumVfxPrimitive interface{ vfxPrimitive() }

// EnumVfxShape is the volume particles are born in.
type EnumVfxShape interface{ vfxShape() }

// VfxSystemDefinitionData is a particle system asset.
type VfxSystemDefinitionData struct {
	ComplexEmitterDefinitionData []VfxEmitterDefinitionData    `bin:"complexEmitterDefinitionData,optional"`
	SimpleEmitterDefinitionData  []VfxEmitterDefinitionData    `bin:"simpleEmitterDefinitionData,optional"`
	ParticleName                 string                        `bin:"particleName"`
	ParticlePath                 string                        `bin:"particlePath"`
	Flags                        *uint16                       `bin:"flags,optional"`
	AssetCategory                *string                       `bin:"assetCategory,optional"`
	SoundOnCreateDefault         *string                       `bin:"soundOnCreateDefault,optional"`
	SoundPersistentDefault       *string                       `bin:"soundPersistentDefault,optional"`
	VisibilityRadius             *float32                      `bin:"visibilityRadius,optional"`
	Transform                    *propbin.Mtx44                `bin:"transform,optional"`
	AudioParameterFlexID         *int32                        `bin:"audioParameterFlexID,optional"`
	BuildUpTime                  *float32                      `bin:"buildUpTime,optional"`
	HudLayerDimension            *float32                      `bin:"hudLayerDimension,optional"`
	AssetRemappingTable          map[propbin.Hash]propbin.Link `bin:"assetRemappingTable,optional"`
	PathHashToSelf               *propbin.PathHash             `bin:"pathHashToSelf,optional"`
}

type VfxEmitterDefinitionData struct {
	EmitterName                string                             `bin:"emitterName"`
	Rate                       *ValueFloat                        `bin:"rate,optional"`
	ParticleLifetime           *ValueFloat                        `bin:"particleLifetime,optional"`
	Lifetime                   *float32                           `bin:"lifetime,optional"`
	TimeBeforeFirstEmission    *float32                           `bin:"timeBeforeFirstEmission,optional"`
	IsSingleParticle           *bool                              `bin:"isSingleParticle,optional"`
	IsUniformScale             *bool                              `bin:"isUniformScale,optional"`
	Disabled                   *bool                              `bin:"disabled,optional"`
	BirthColor                 *ValueColor                        `bin:"birthColor,optional"`
	Color                      *ValueColor                        `bin:"color,optional"`
	BirthScale0                *ValueVector3                      `bin:"birthScale0,optional"`
	Scale0                     *ValueVector3                      `bin:"scale0,optional"`
	BirthVelocity              *ValueVector3                      `bin:"birthVelocity,optional"`
	BirthRotation0             *ValueVector3                      `bin:"birthRotation0,optional"`
	EmitterPosition            *ValueVector3                      `bin:"emitterPosition,optional"`
	BindWeight                 *ValueFloat                        `bin:"bindWeight,optional"`
	Primitive                  EnumVfxPrimitive                   `bin:"primitive,optional"`
	Shape                      EnumVfxShape                       `bin:"shape,optional"`
	Texture                    *string                            `bin:"texture,optional"`
	TexDiv                     *propbin.Vec2                      `bin:"texDiv,optional"`
	BlendMode                  *uint8                             `bin:"blendMode,optional"`
	Pass                       *int16                             `bin:"pass,optional"`
	MiscRenderFlags            *uint8                             `bin:"miscRenderFlags,optional"`
	ColorLookUpTypeX           *uint8                             `bin:"colorLookUpTypeX,optional"`
	ColorLookUpTypeY           *uint8                             `bin:"colorLookUpTypeY,optional"`
	FieldCollectionDefinition  *VfxFieldCollectionDefinitionData  `bin:"fieldCollectionDefinition,optional"`
	ChildParticleSetDefinition *VfxChildParticleSetDefinitionData `bin:"childParticleSetDefinition,optional"`
	Material                   *propbin.Link                      `bin:"material,optional"`
}

type ValueFloat struct {
	ConstantValue *float32                      `bin:"constantValue,optional"`
	Dynamics      *VfxAnimatedFloatVariableData `bin:"dynamics,optional"`
}

type ValueVector3 struct {
	ConstantValue *propbin.Vec3                    `bin:"constantValue,optional"`
	Dynamics      *VfxAnimatedVector3fVariableData `bin:"dynamics,optional"`
}

type ValueColor struct {
	ConstantValue *propbin.Vec4                 `bin:"constantValue,optional"`
	Dynamics      *VfxAnimatedColorVariableData `bin:"dynamics,optional"`
}

type VfxAnimatedFloatVariableData struct {
	Times             []float32                 `bin:"times,optional"`
	Values            []float32                 `bin:"values,optional"`
	ProbabilityTables []VfxProbabilityTableData `bin:"probabilityTables,optional"`
}

type VfxAnimatedVector3fVariableData struct {
	Times             []float32                 `bin:"times,optional"`
	Values            []propbin.Vec3            `bin:"values,optional"`
	ProbabilityTables []VfxProbabilityTableData `bin:"probabilityTables,optional"`
}

type VfxAnimatedColorVariableData struct {
	Times             []float32                 `bin:"times,optional"`
	Values            []propbin.Vec4            `bin:"values,optional"`
	ProbabilityTables []VfxProbabilityTableData `bin:"probabilityTables,optional"`
}

type VfxProbabilityTableData struct {
	KeyTimes  []float32 `bin:"keyTimes,optional"`
	KeyValues []float32 `bin:"keyValues,optional"`
}

type VfxFieldCollectionDefinitionData struct {
	FieldAccelerationDefinitions []VfxFieldAccelerationDefinitionData `bin:"fieldAccelerationDefinitions,optional"`
	FieldDragDefinitions         []VfxFieldDragDefinitionData         `bin:"fieldDragDefinitions,optional"`
	FieldNoiseDefinitions        []VfxFieldNoiseDefinitionData        `bin:"fieldNoiseDefinitions,optional"`
	FieldOrbitalDefinitions      []VfxFieldOrbitalDefinitionData      `bin:"fieldOrbitalDefinitions,optional"`
}

type VfxFieldAccelerationDefinitionData struct {
	Acceleration *ValueVector3 `bin:"acceleration,optional"`
	IsLocalSpace *bool         `bin:"isLocalSpace,optional"`
}

type VfxFieldDragDefinitionData struct {
	Position *ValueVector3 `bin:"position,optional"`
	Radius   *ValueFloat   `bin:"radius,optional"`
	Strength *ValueFloat   `bin:"strength,optional"`
}

type VfxFieldNoiseDefinitionData struct {
	Position      *ValueVector3 `bin:"position,optional"`
	Radius        *ValueFloat   `bin:"radius,optional"`
	Frequency     *ValueFloat   `bin:"frequency,optional"`
	VelocityDelta *ValueFloat   `bin:"velocityDelta,optional"`
	AxisFraction  *propbin.Vec3 `bin:"axisFraction,optional"`
}

type VfxFieldOrbitalDefinitionData struct {
	Direction    *ValueVector3 `bin:"direction,optional"`
	IsLocalSpace *bool         `bin:"isLocalSpace,optional"`
}

type VfxChildParticleSetDefinitionData struct {
	ChildrenIdentifiers []VfxChildIdentifier `bin:"childrenIdentifiers,optional"`
	ChildrenProbability *ValueFloat          `bin:"childrenProbability,optional"`
}

type VfxChildIdentifier struct {
	EffectName *string       `bin:"effectName,optional"`
	EffectKey  *propbin.Hash `bin:"effectKey,optional"`
	Effect     *propbin.Link `bin:"effect,optional"`
}

type VfxMeshDefinitionData struct {
	SimpleMeshName   *string        `bin:"mSimpleMeshName,optional"`
	MeshName         *string        `bin:"mMeshName,optional"`
	MeshSkeletonName *string        `bin:"mMeshSkeletonName,optional"`
	AnimationName    *string        `bin:"mAnimationName,optional"`
	SubmeshesToDraw  []propbin.Hash `bin:"mSubmeshesToDraw,optional"`
}

type VfxBeamDefinitionData struct {
	Segments                  *int32        `bin:"mSegments,optional"`
	TrailMode                 *uint8        `bin:"mTrailMode,optional"`
	BirthTiling               *ValueVector3 `bin:"mBirthTilingSize,optional"`
	IsColorBindedWithDistance *bool         `bin:"mIsColorBindedWithDistance,optional"`
}

type VfxTrailDefinitionData struct {
	Mode             *uint8        `bin:"mMode,optional"`
	CutoffLength     *float32      `bin:"mCutoff,optional"`
	MaxAddedPerFrame *uint16       `bin:"mMaxAddedPerFrame,optional"`
	BirthTilingSize  *ValueVector3 `bin:"mBirthTilingSize,optional"`
	SmoothingMode    *uint8        `bin:"mSmoothingMode,optional"`
}

// Primitives.

type VfxPrimitiveArbitraryQuad struct{}

type VfxPrimitiveCameraUnitQuad struct{}

type VfxPrimitiveRay struct{}

type VfxPrimitiveMesh struct {
	Mesh *VfxMeshDefinitionData `bin:"mMesh,optional"`
}

type VfxPrimitiveAttachedMesh struct {
	Mesh                         *VfxMeshDefinitionData `bin:"mMesh,optional"`
	AlignPitchToCamera           *bool                  `bin:"mAlignPitchToCamera,optional"`
	UseAvatarSpecificSubmeshMask *bool                  `bin:"mUseAvatarSpecificSubmeshMask,optional"`
}

type VfxPrimitiveBeam struct {
	Beam *VfxBeamDefinitionData `bin:"mBeam,optional"`
}

type VfxPrimitiveArbitraryTrail struct {
	Trail *VfxTrailDefinitionData `bin:"mTrail,optional"`
}

// Shapes.

type VfxShapeBox struct {
	Size  *propbin.Vec3 `bin:"size,optional"`
	Flags *uint8        `bin:"flags,optional"`
}

type VfxShapeCylinder struct {
	Radius *float32 `bin:"radius,optional"`
	Height *float32 `bin:"height,optional"`
	Flags  *uint8   `bin:"flags,optional"`
}

type VfxShapeSphere struct {
	Radius *float32 `bin:"radius,optional"`
	Flags  *uint8   `bin:"flags,optional"`
}

type VfxShapeLegacy struct {
	EmitOffset         *ValueVector3  `bin:"emitOffset,optional"`
	EmitRotationAngles []ValueFloat   `bin:"emitRotationAngles,optional"`
	EmitRotationAxes   []propbin.Vec3 `bin:"emitRotationAxes,optional"`
}

func (*VfxPrimitiveArbitraryQuad) vfxPrimitive()  {}
func (*VfxPrimitiveCameraUnitQuad) vfxPrimitive() {}
func (*VfxPrimitiveRay) vfxPrimitive()            {}
func (*VfxPrimitiveMesh) vfxPrimitive()           {}
func (*VfxPrimitiveAttachedMesh) vfxPrimitive()   {}
func (*VfxPrimitiveBeam) vfxPrimitive()           {}
func (*VfxPrimitiveArbitraryTrail) vfxPrimitive() {}

func (*VfxShapeBox) vfxShape()      {}
func (*VfxShapeCylinder) vfxShape() {}
func (*VfxShapeSphere) vfxShape()   {}
func (*VfxShapeLegacy) vfxShape()   {}

func registerVfx(b *propbin.Builder) {
	propbin.Record[VfxSystemDefinitionData](b, "VfxSystemDefinitionData", propbin.AsAsset())
	propbin.Record[VfxEmitterDefinitionData](b, "VfxEmitterDefinitionData")
	propbin.Record[ValueFloat](b, "ValueFloat")
	propbin.Record[ValueVector3](b, "ValueVector3")
	propbin.Record[ValueColor](b, "ValueColor")
	propbin.Record[VfxAnimatedFloatVariableData](b, "VfxAnimatedFloatVariableData")
	propbin.Record[VfxAnimatedVector3fVariableData](b, "VfxAnimatedVector3fVariableData")
	propbin.Record[VfxAnimatedColorVariableData](b, "VfxAnimatedColorVariableData")
	propbin.Record[VfxProbabilityTableData](b, "VfxProbabilityTableData")
	propbin.Record[VfxFieldCollectionDefinitionData](b, "VfxFieldCollectionDefinitionData")
	propbin.Record[VfxFieldAccelerationDefinitionData](b, "VfxFieldAccelerationDefinitionData")
	propbin.Record[VfxFieldDragDefinitionData](b, "VfxFieldDragDefinitionData")
	propbin.Record[VfxFieldNoiseDefinitionData](b, "VfxFieldNoiseDefinitionData")
	propbin.Record[VfxFieldOrbitalDefinitionData](b, "VfxFieldOrbitalDefinitionData")
	propbin.Record[VfxChildParticleSetDefinitionData](b, "VfxChildParticleSetDefinitionData")
	propbin.Record[VfxChildIdentifier](b, "VfxChildIdentifier")
	propbin.Record[VfxMeshDefinitionData](b, "VfxMeshDefinitionData")
	propbin.Record[VfxBeamDefinitionData](b, "VfxBeamDefinitionData")
	propbin.Record[VfxTrailDefinitionData](b, "VfxTrailDefinitionData")

	propbin.Record[VfxPrimitiveArbitraryQuad](b, "VfxPrimitiveArbitraryQuad")
	propbin.Record[VfxPrimitiveCameraUnitQuad](b, "VfxPrimitiveCameraUnitQuad")
	propbin.Record[VfxPrimitiveRay](b, "VfxPrimitiveRay")
	propbin.Record[VfxPrimitiveMesh](b, "VfxPrimitiveMesh")
	propbin.Record[VfxPrimitiveAttachedMesh](b, "VfxPrimitiveAttachedMesh")
	propbin.Record[VfxPrimitiveBeam](b, "VfxPrimitiveBeam")
	propbin.Record[VfxPrimitiveArbitraryTrail](b, "VfxPrimitiveArbitraryTrail")
	propbin.Variant[EnumVfxPrimitive](b, "EnumVfxPrimitive",
		propbin.Case[VfxPrimitiveArbitraryQuad](),
		propbin.Case[VfxPrimitiveCameraUnitQuad](),
		propbin.Case[VfxPrimitiveRay](),
		propbin.Case[VfxPrimitiveMesh](),
		propbin.Case[VfxPrimitiveAttachedMesh](),
		propbin.Case[VfxPrimitiveBeam](),
		propbin.Case[VfxPrimitiveArbitraryTrail](),
	)

	propbin.Record[VfxShapeBox](b, "VfxShapeBox")
	propbin.Record[VfxShapeCylinder](b, "VfxShapeCylinder")
	propbin.Record[VfxShapeSphere](b, "VfxShapeSphere")
	propbin.Record[VfxShapeLegacy](b, "VfxShapeLegacy")
	propbin.Variant[EnumVfxShape](b, "EnumVfxShape",
		propbin.Case[VfxShapeBox](),
		propbin.Case[VfxShapeCylinder](),
		propbin.Case[VfxShapeSphere](),
		propbin.Case[VfxShapeLegacy](),
	)
}
