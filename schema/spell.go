package schema

import propbin "github.com/reoring/propbin"

// EnumGameCalculation is a tooltip/gameplay formula.
type EnumGameCalculation interface{ gameCalculation() }

// EnumGameCalculationPart is one term of a formula.
type EnumGameCalculationPart interface{ gameCalculationPart() }

// EnumTargetingType selects how a spell is aimed.
type EnumTargetingType interface{ targetingType() }

// EnumTargeterDefinition is one ground indicator drawn while aiming.
type EnumTargeterDefinition interface{ targeterDefinition() }

// EnumMissileMovement drives a missile's flight.
type EnumMissileMovement interface{ missileMovement() }

// SpellObject is a spell asset.
type SpellObject struct {
	ScriptName     string             `bin:"mScriptName"`
	Spell          *SpellDataResource `bin:"mSpell,optional"`
	Buff           *BuffData          `bin:"mBuff,optional"`
	ObjectName     *string            `bin:"objectName,optional"`
	PathHashToSelf *propbin.PathHash  `bin:"pathHashToSelf,optional"`
}

type SpellDataResource struct {
	Flags                           *uint32                              `bin:"flags,optional"`
	AffectsTypeFlags                *uint32                              `bin:"mAffectsTypeFlags,optional"`
	AffectsStatusFlags              *uint32                              `bin:"mAffectsStatusFlags,optional"`
	AnimationName                   *string                              `bin:"mAnimationName,optional"`
	AnimationLoopName               *string                              `bin:"mAnimationLoopName,optional"`
	CastTime                        *float32                             `bin:"mCastTime,optional"`
	CastRange                       []float32                            `bin:"castRange,optional"`
	CastRadius                      []float32                            `bin:"castRadius,optional"`
	CastConeAngle                   *float32                             `bin:"castConeAngle,optional"`
	CooldownTime                    []float32                            `bin:"cooldownTime,optional"`
	Mana                            []float32                            `bin:"mana,optional"`
	DataValues                      []SpellDataValue                     `bin:"mDataValues,optional"`
	EffectAmounts                   []SpellEffectAmount                  `bin:"mEffectAmount,optional"`
	SpellCalculations               map[propbin.Hash]EnumGameCalculation `bin:"mSpellCalculations,optional"`
	TargetingTypeData               EnumTargetingType                    `bin:"mTargetingTypeData,optional"`
	ClientData                      *SpellDataResourceClient             `bin:"mClientData,optional"`
	CantCancelWhileWindingUp        *bool                                `bin:"mCantCancelWhileWindingUp,optional"`
	CantCancelWhileChanneling       *bool                                `bin:"mCantCancelWhileChanneling,optional"`
	ChannelIsInterruptedByAttacking *bool                                `bin:"mChannelIsInterruptedByAttacking,optional"`
	LineWidth                       *float32                             `bin:"mLineWidth,optional"`
	MissileSpeed                    *float32                             `bin:"missileSpeed,optional"`
	MissileSpec                     *MissileSpecification                `bin:"mMissileSpec,optional"`
	SelectionPriority               *uint32                              `bin:"selectionPriority,optional"`
	CastType                        *uint32                              `bin:"mCastType,optional"`
	AlternateName                   *string                              `bin:"mAlternateName,optional"`
	SpellTags                       []string                             `bin:"mSpellTags,optional"`
	CoefficientBonus                map[uint8]float32                    `bin:"mCoefficientBonus,optional"`
}

type SpellDataValue struct {
	Name   string    `bin:"mName"`
	Values []float32 `bin:"mValues,optional"`
}

type SpellEffectAmount struct {
	Value []float32 `bin:"value,optional"`
}

type BuffData struct {
	Description        *string              `bin:"mDescription,optional"`
	ShowDuration       *bool                `bin:"mShowDuration,optional"`
	FloatVarsDecimals  []int32              `bin:"mFloatVarsDecimals,optional"`
	TooltipData        *TooltipInstanceBuff `bin:"mTooltipData,optional"`
	VfxSpawnConditions []propbin.Link       `bin:"mVfxSpawnConditions,optional"`
}

type TooltipInstanceBuff struct {
	Format     string            `bin:"mFormat"`
	ObjectName *string           `bin:"mObjectName,optional"`
	Loc        map[string]string `bin:"mLocKeys,optional"`
}

type SpellDataResourceClient struct {
	TooltipData                *TooltipInstanceSpell    `bin:"mTooltipData,optional"`
	TargeterDefinitions        []EnumTargeterDefinition `bin:"mTargeterDefinitions,optional"`
	SpawningUIDefinition       *propbin.Link            `bin:"mSpawningUIDefinition,optional"`
	MissileTargeterDefinitions []EnumTargeterDefinition `bin:"mMissileTargeterDefinitions,optional"`
}

type TooltipInstanceSpell struct {
	Format     string                         `bin:"mFormat"`
	ObjectName *string                        `bin:"mObjectName,optional"`
	Lists      map[string]TooltipInstanceList `bin:"mLists,optional"`
	LocKeys    map[string]string              `bin:"mLocKeys,optional"`
}

type TooltipInstanceList struct {
	LevelCount *uint32                      `bin:"levelCount,optional"`
	Elements   []TooltipInstanceListElement `bin:"elements,optional"`
}

type TooltipInstanceListElement struct {
	Type         string   `bin:"type"`
	NameOverride *string  `bin:"nameOverride,optional"`
	Multiplier   *float32 `bin:"multiplier,optional"`
	Style        *uint32  `bin:"Style,optional"`
	TypeIndex    *int32   `bin:"typeIndex,optional"`
}

type MissileSpecification struct {
	MissileWidth      *float32            `bin:"mMissileWidth,optional"`
	MovementComponent EnumMissileMovement `bin:"movementComponent,optional"`
	HeightSolver      *propbin.Link       `bin:"heightSolver,optional"`
	VerticalFacing    *uint8              `bin:"verticalFacing,optional"`
}

type DrawablePositionLocator struct {
	BasePosition      *uint32  `bin:"basePosition,optional"`
	DistanceOffset    *float32 `bin:"distanceOffset,optional"`
	AngleOffsetRadian *float32 `bin:"angleOffsetRadian,optional"`
	OrientationType   *uint32  `bin:"orientationType,optional"`
}

type FloatPerSpellLevel struct {
	PerLevelValues []float32 `bin:"mPerLevelValues,optional"`
	ValueType      *uint32   `bin:"mValueType,optional"`
}

// Calculations.

type GameCalculation struct {
	FormulaParts     []EnumGameCalculationPart `bin:"mFormulaParts,optional"`
	Multiplier       EnumGameCalculationPart   `bin:"mMultiplier,optional"`
	DisplayAsPercent *bool                     `bin:"mDisplayAsPercent,optional"`
	Precision        *int32                    `bin:"mPrecision,optional"`
	Tooltip          *uint8                    `bin:"tooltipOnly,optional"`
}

type GameCalculationModified struct {
	ModifiedGameCalculation propbin.Hash            `bin:"mModifiedGameCalculation"`
	Multiplier              EnumGameCalculationPart `bin:"mMultiplier,optional"`
	OverrideSpellLevel      *int32                  `bin:"mOverrideSpellLevel,optional"`
}

type GameCalculationConditional struct {
	DefaultGameCalculation             propbin.Hash   `bin:"mDefaultGameCalculation"`
	ConditionalGameCalculation         propbin.Hash   `bin:"mConditionalGameCalculation"`
	ConditionalCalculationRequirements []propbin.Link `bin:"mConditionalCalculationRequirements,optional"`
}

type NamedDataValueCalculationPart struct {
	DataValue propbin.Hash `bin:"mDataValue"`
}

type StatByCoefficientCalculationPart struct {
	Stat        *uint8   `bin:"mStat,optional"`
	StatFormula *uint8   `bin:"mStatFormula,optional"`
	Coefficient *float32 `bin:"mCoefficient,optional"`
}

type StatByNamedDataValueCalculationPart struct {
	Stat        *uint8       `bin:"mStat,optional"`
	StatFormula *uint8       `bin:"mStatFormula,optional"`
	DataValue   propbin.Hash `bin:"mDataValue"`
}

type StatBySubPartCalculationPart struct {
	Stat        *uint8                  `bin:"mStat,optional"`
	StatFormula *uint8                  `bin:"mStatFormula,optional"`
	Subpart     EnumGameCalculationPart `bin:"mSubpart"`
}

type NumberCalculationPart struct {
	Number *float32 `bin:"mNumber,optional"`
}

type EffectValueCalculationPart struct {
	EffectIndex *int32 `bin:"mEffectIndex,optional"`
}

type SumOfSubPartsCalculationPart struct {
	Subparts []EnumGameCalculationPart `bin:"mSubparts,optional"`
}

type ProductOfSubPartsCalculationPart struct {
	Part1 EnumGameCalculationPart `bin:"mPart1"`
	Part2 EnumGameCalculationPart `bin:"mPart2"`
}

type ExponentSubPartsCalculationPart struct {
	Part1 EnumGameCalculationPart `bin:"part1"`
	Part2 EnumGameCalculationPart `bin:"part2"`
}

type ClampSubPartsCalculationPart struct {
	Floor    *float32                  `bin:"mFloor,optional"`
	Ceiling  *float32                  `bin:"mCeiling,optional"`
	Subparts []EnumGameCalculationPart `bin:"mSubparts,optional"`
}

type BuffCounterByCoefficientCalculationPart struct {
	BuffName    propbin.Hash `bin:"mBuffName"`
	Coefficient *float32     `bin:"mCoefficient,optional"`
}

type AbilityResourceByCoefficientCalculationPart struct {
	AbilityResource *uint8   `bin:"mAbilityResource,optional"`
	StatFormula     *uint8   `bin:"mStatFormula,optional"`
	Coefficient     *float32 `bin:"mCoefficient,optional"`
}

type ByCharLevelInterpolationCalculationPart struct {
	StartValue *float32 `bin:"mStartValue,optional"`
	EndValue   *float32 `bin:"mEndValue,optional"`
}

type ByCharLevelBreakpointsCalculationPart struct {
	Level1Value *float32          `bin:"mLevel1Value,optional"`
	Breakpoints []LevelBreakpoint `bin:"mBreakpoints,optional"`
}

type LevelBreakpoint struct {
	Level                      *uint32  `bin:"mLevel,optional"`
	AdditionalBonusAtThisLevel *float32 `bin:"mAdditionalBonusAtThisLevel,optional"`
	BonusPerLevelAtAndAfter    *float32 `bin:"mBonusPerLevelAtAndAfter,optional"`
}

// Targeting types: unit cases distinguished by their own tags.

type Location struct{}

type LocationClamped struct{}

type Self struct{}

type SelfAoe struct{}

type Target struct{}

type TargetOrLocation struct{}

type Direction struct{}

type Area struct{}

type AreaClamped struct{}

type Cone struct{}

type DragDirection struct{}

type WallDetection struct {
	WallDetectionRange *float32 `bin:"wallDetectionRange,optional"`
}

// Targeter indicators.

type TargeterDefinitionLine struct {
	EndLocator                *DrawablePositionLocator `bin:"endLocator,optional"`
	LineWidth                 *FloatPerSpellLevel      `bin:"lineWidth,optional"`
	TextureBaseOverrideName   *string                  `bin:"textureBaseOverrideName,optional"`
	TextureTargetOverrideName *string                  `bin:"textureTargetOverrideName,optional"`
	UseGlobalLineIndicator    *bool                    `bin:"useGlobalLineIndicator,optional"`
}

type TargeterDefinitionRange struct {
	Center                *DrawablePositionLocator `bin:"center,optional"`
	OverrideRadius        *FloatPerSpellLevel      `bin:"overrideRadius,optional"`
	TextureOrientation    *uint32                  `bin:"textureOrientation,optional"`
	HideWithLineIndicator *bool                    `bin:"hideWithLineIndicator,optional"`
}

type TargeterDefinitionAoe struct {
	CenterLocator             *DrawablePositionLocator `bin:"centerLocator,optional"`
	OverrideRadius            *FloatPerSpellLevel      `bin:"overrideRadius,optional"`
	TextureRadiusOverrideName *string                  `bin:"textureRadiusOverrideName,optional"`
	IsConstrainedToRange      *bool                    `bin:"isConstrainedToRange,optional"`
}

type TargeterDefinitionCone struct {
	ConeRange               *float32                 `bin:"coneRange,optional"`
	ConeAngleDegrees        *float32                 `bin:"coneAngleDegrees,optional"`
	StartLocator            *DrawablePositionLocator `bin:"startLocator,optional"`
	TextureConeOverrideName *string                  `bin:"textureConeOverrideName,optional"`
}

// Missile movements.

type FixedSpeedMovement struct {
	Speed                    *float32 `bin:"mSpeed,optional"`
	TracksTarget             *bool    `bin:"mTracksTarget,optional"`
	ProjectTargetToCastRange *bool    `bin:"mProjectTargetToCastRange,optional"`
}

type AcceleratingMovement struct {
	InitialSpeed *float32 `bin:"mInitialSpeed,optional"`
	Acceleration *float32 `bin:"mAcceleration,optional"`
	MaxSpeed     *float32 `bin:"mMaxSpeed,optional"`
	MinSpeed     *float32 `bin:"mMinSpeed,optional"`
	TracksTarget *bool    `bin:"mTracksTarget,optional"`
}

type FixedTimeMovement struct {
	TravelTime   *float32 `bin:"mTravelTime,optional"`
	TracksTarget *bool    `bin:"mTracksTarget,optional"`
}

type NullMovement struct{}

func (*GameCalculation) gameCalculation()            {}
func (*GameCalculationModified) gameCalculation()    {}
func (*GameCalculationConditional) gameCalculation() {}

func (*NamedDataValueCalculationPart) gameCalculationPart()               {}
func (*StatByCoefficientCalculationPart) gameCalculationPart()            {}
func (*StatByNamedDataValueCalculationPart) gameCalculationPart()         {}
func (*StatBySubPartCalculationPart) gameCalculationPart()                {}
func (*NumberCalculationPart) gameCalculationPart()                       {}
func (*EffectValueCalculationPart) gameCalculationPart()                  {}
func (*SumOfSubPartsCalculationPart) gameCalculationPart()                {}
func (*ProductOfSubPartsCalculationPart) gameCalculationPart()            {}
func (*ExponentSubPartsCalculationPart) gameCalculationPart()             {}
func (*ClampSubPartsCalculationPart) gameCalculationPart()                {}
func (*BuffCounterByCoefficientCalculationPart) gameCalculationPart()     {}
func (*AbilityResourceByCoefficientCalculationPart) gameCalculationPart() {}
func (*ByCharLevelInterpolationCalculationPart) gameCalculationPart()     {}
func (*ByCharLevelBreakpointsCalculationPart) gameCalculationPart()       {}

func (*Location) targetingType()         {}
func (*LocationClamped) targetingType()  {}
func (*Self) targetingType()             {}
func (*SelfAoe) targetingType()          {}
func (*Target) targetingType()           {}
func (*TargetOrLocation) targetingType() {}
func (*Direction) targetingType()        {}
func (*Area) targetingType()             {}
func (*AreaClamped) targetingType()      {}
func (*Cone) targetingType()             {}
func (*DragDirection) targetingType()    {}
func (*WallDetection) targetingType()    {}

func (*TargeterDefinitionLine) targeterDefinition()  {}
func (*TargeterDefinitionRange) targeterDefinition() {}
func (*TargeterDefinitionAoe) targeterDefinition()   {}
func (*TargeterDefinitionCone) targeterDefinition()  {}

func (*FixedSpeedMovement) missileMovement()   {}
func (*AcceleratingMovement) missileMovement() {}
func (*FixedTimeMovement) missileMovement()    {}
func (*NullMovement) missileMovement()         {}

func registerSpell(b *propbin.Builder) {
	propbin.Record[SpellObject](b, "SpellObject", propbin.AsAsset())
	propbin.Record[SpellDataResource](b, "SpellDataResource")
	propbin.Record[SpellDataValue](b, "SpellDataValue")
	propbin.Record[SpellEffectAmount](b, "SpellEffectAmount")
	propbin.Record[BuffData](b, "BuffData")
	propbin.Record[TooltipInstanceBuff](b, "TooltipInstanceBuff")
	propbin.Record[SpellDataResourceClient](b, "SpellDataResourceClient")
	propbin.Record[TooltipInstanceSpell](b, "TooltipInstanceSpell")
	propbin.Record[TooltipInstanceList](b, "TooltipInstanceList")
	propbin.Record[TooltipInstanceListElement](b, "TooltipInstanceListElement")
	propbin.Record[MissileSpecification](b, "MissileSpecification")
	propbin.Record[DrawablePositionLocator](b, "DrawablePositionLocator")
	propbin.Record[FloatPerSpellLevel](b, "FloatPerSpellLevel")
	propbin.Record[LevelBreakpoint](b, "LevelBreakpoint")

	propbin.Record[GameCalculation](b, "GameCalculation")
	propbin.Record[GameCalculationModified](b, "GameCalculationModified")
	propbin.Record[GameCalculationConditional](b, "GameCalculationConditional")
	propbin.Variant[EnumGameCalculation](b, "EnumGameCalculation",
		propbin.Case[GameCalculation](),
		propbin.Case[GameCalculationModified](),
		propbin.Case[GameCalculationConditional](),
	)

	propbin.Record[NamedDataValueCalculationPart](b, "NamedDataValueCalculationPart")
	propbin.Record[StatByCoefficientCalculationPart](b, "StatByCoefficientCalculationPart")
	propbin.Record[StatByNamedDataValueCalculationPart](b, "StatByNamedDataValueCalculationPart")
	propbin.Record[StatBySubPartCalculationPart](b, "StatBySubPartCalculationPart")
	propbin.Record[NumberCalculationPart](b, "NumberCalculationPart")
	propbin.Record[EffectValueCalculationPart](b, "EffectValueCalculationPart")
	propbin.Record[SumOfSubPartsCalculationPart](b, "SumOfSubPartsCalculationPart")
	propbin.Record[ProductOfSubPartsCalculationPart](b, "ProductOfSubPartsCalculationPart")
	propbin.Record[ExponentSubPartsCalculationPart](b, "ExponentSubPartsCalculationPart")
	propbin.Record[ClampSubPartsCalculationPart](b, "ClampSubPartsCalculationPart")
	propbin.Record[BuffCounterByCoefficientCalculationPart](b, "BuffCounterByCoefficientCalculationPart")
	propbin.Record[AbilityResourceByCoefficientCalculationPart](b, "AbilityResourceByCoefficientCalculationPart")
	propbin.Record[ByCharLevelInterpolationCalculationPart](b, "ByCharLevelInterpolationCalculationPart")
	propbin.Record[ByCharLevelBreakpointsCalculationPart](b, "ByCharLevelBreakpointsCalculationPart")
	propbin.Variant[EnumGameCalculationPart](b, "EnumGameCalculationPart",
		propbin.Case[NamedDataValueCalculationPart](),
		propbin.Case[StatByCoefficientCalculationPart](),
		propbin.Case[StatByNamedDataValueCalculationPart](),
		propbin.Case[StatBySubPartCalculationPart](),
		propbin.Case[NumberCalculationPart](),
		propbin.Case[EffectValueCalculationPart](),
		propbin.Case[SumOfSubPartsCalculationPart](),
		propbin.Case[ProductOfSubPartsCalculationPart](),
		propbin.Case[ExponentSubPartsCalculationPart](),
		propbin.Case[ClampSubPartsCalculationPart](),
		propbin.Case[BuffCounterByCoefficientCalculationPart](),
		propbin.Case[AbilityResourceByCoefficientCalculationPart](),
		propbin.Case[ByCharLevelInterpolationCalculationPart](),
		propbin.Case[ByCharLevelBreakpointsCalculationPart](),
	)

	propbin.Record[Location](b, "Location")
	propbin.Record[LocationClamped](b, "LocationClamped")
	propbin.Record[Self](b, "Self")
	propbin.Record[SelfAoe](b, "SelfAoe")
	propbin.Record[Target](b, "Target")
	propbin.Record[TargetOrLocation](b, "TargetOrLocation")
	propbin.Record[Direction](b, "Direction")
	propbin.Record[Area](b, "Area")
	propbin.Record[AreaClamped](b, "AreaClamped")
	propbin.Record[Cone](b, "Cone")
	propbin.Record[DragDirection](b, "DragDirection")
	propbin.Record[WallDetection](b, "WallDetection")
	propbin.Variant[EnumTargetingType](b, "EnumTargetingType",
		propbin.Case[Location](),
		propbin.Case[LocationClamped](),
		propbin.Case[Self](),
		propbin.Case[SelfAoe](),
		propbin.Case[Target](),
		propbin.Case[TargetOrLocation](),
		propbin.Case[Direction](),
		propbin.Case[Area](),
		propbin.Case[AreaClamped](),
		propbin.Case[Cone](),
		propbin.Case[DragDirection](),
		propbin.Case[WallDetection](),
	)

	propbin.Record[TargeterDefinitionLine](b, "TargeterDefinitionLine")
	propbin.Record[TargeterDefinitionRange](b, "TargeterDefinitionRange")
	propbin.Record[TargeterDefinitionAoe](b, "TargeterDefinitionAoe")
	propbin.Record[TargeterDefinitionCone](b, "TargeterDefinitionCone")
	propbin.Variant[EnumTargeterDefinition](b, "EnumTargeterDefinition",
		propbin.Case[TargeterDefinitionLine](),
		propbin.Case[TargeterDefinitionRange](),
		propbin.Case[TargeterDefinitionAoe](),
		propbin.Case[TargeterDefinitionCone](),
	)

	propbin.Record[FixedSpeedMovement](b, "FixedSpeedMovement")
	propbin.Record[AcceleratingMovement](b, "AcceleratingMovement")
	propbin.Record[FixedTimeMovement](b, "FixedTimeMovement")
	propbin.Record[NullMovement](b, "NullMovement")
	propbin.Variant[EnumMissileMovement](b, "EnumMissileMovement",
		propbin.Case[FixedSpeedMovement](),
		propbin.Case[AcceleratingMovement](),
		propbin.Case[FixedTimeMovement](),
		propbin.Case[NullMovement](),
	)
}
