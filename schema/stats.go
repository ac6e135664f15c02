package schema

import propbin "github.com/reoring/propbin"

// EnumStatModifier changes one stat of the unit holding it.
type EnumStatModifier interface{ statModifier() }

// EnumBuffStacking decides what reapplying a buff does.
type EnumBuffStacking interface{ buffStacking() }

// EnumCrowdControl is a loss-of-control effect applied by a buff.
type EnumCrowdControl interface{ crowdControl() }

// EnumDamageSource is the damage type a hit is mitigated as.
type EnumDamageSource interface{ damageSource() }

// UnitStatsTable is a shared stat block referenced by characters that
// opt out of per-record stats.
type UnitStatsTable struct {
	Name                     string                         `bin:"mName"`
	Curves                   map[propbin.Hash]StatCurveData `bin:"mCurves,optional"`
	PathHashToSelf           *propbin.PathHash              `bin:"pathHashToSelf,optional"`
	AttackDamageBase         *float32                       `bin:"mAttackDamageBase,optional"`
	AttackDamagePerLevel     *float32                       `bin:"mAttackDamagePerLevel,optional"`
	AttackDamageCap          *float32                       `bin:"mAttackDamageCap,optional"`
	AbilityPowerBase         *float32                       `bin:"mAbilityPowerBase,optional"`
	AbilityPowerPerLevel     *float32                       `bin:"mAbilityPowerPerLevel,optional"`
	AbilityPowerCap          *float32                       `bin:"mAbilityPowerCap,optional"`
	ArmorBase                *float32                       `bin:"mArmorBase,optional"`
	ArmorPerLevel            *float32                       `bin:"mArmorPerLevel,optional"`
	ArmorCap                 *float32                       `bin:"mArmorCap,optional"`
	MagicResistBase          *float32                       `bin:"mMagicResistBase,optional"`
	MagicResistPerLevel      *float32                       `bin:"mMagicResistPerLevel,optional"`
	MagicResistCap           *float32                       `bin:"mMagicResistCap,optional"`
	AttackSpeedBase          *float32                       `bin:"mAttackSpeedBase,optional"`
	AttackSpeedPerLevel      *float32                       `bin:"mAttackSpeedPerLevel,optional"`
	AttackSpeedCap           *float32                       `bin:"mAttackSpeedCap,optional"`
	AbilityHasteBase         *float32                       `bin:"mAbilityHasteBase,optional"`
	AbilityHastePerLevel     *float32                       `bin:"mAbilityHastePerLevel,optional"`
	AbilityHasteCap          *float32                       `bin:"mAbilityHasteCap,optional"`
	CritChanceBase           *float32                       `bin:"mCritChanceBase,optional"`
	CritChancePerLevel       *float32                       `bin:"mCritChancePerLevel,optional"`
	CritChanceCap            *float32                       `bin:"mCritChanceCap,optional"`
	CritDamageBase           *float32                       `bin:"mCritDamageBase,optional"`
	CritDamagePerLevel       *float32                       `bin:"mCritDamagePerLevel,optional"`
	CritDamageCap            *float32                       `bin:"mCritDamageCap,optional"`
	MoveSpeedBase            *float32                       `bin:"mMoveSpeedBase,optional"`
	MoveSpeedPerLevel        *float32                       `bin:"mMoveSpeedPerLevel,optional"`
	MoveSpeedCap             *float32                       `bin:"mMoveSpeedCap,optional"`
	LifeStealBase            *float32                       `bin:"mLifeStealBase,optional"`
	LifeStealPerLevel        *float32                       `bin:"mLifeStealPerLevel,optional"`
	LifeStealCap             *float32                       `bin:"mLifeStealCap,optional"`
	OmnivampBase             *float32                       `bin:"mOmnivampBase,optional"`
	OmnivampPerLevel         *float32                       `bin:"mOmnivampPerLevel,optional"`
	OmnivampCap              *float32                       `bin:"mOmnivampCap,optional"`
	PhysicalVampBase         *float32                       `bin:"mPhysicalVampBase,optional"`
	PhysicalVampPerLevel     *float32                       `bin:"mPhysicalVampPerLevel,optional"`
	PhysicalVampCap          *float32                       `bin:"mPhysicalVampCap,optional"`
	ArmorPenetrationBase     *float32                       `bin:"mArmorPenetrationBase,optional"`
	ArmorPenetrationPerLevel *float32                       `bin:"mArmorPenetrationPerLevel,optional"`
	ArmorPenetrationCap      *float32                       `bin:"mArmorPenetrationCap,optional"`
	MagicPenetrationBase     *float32                       `bin:"mMagicPenetrationBase,optional"`
	MagicPenetrationPerLevel *float32                       `bin:"mMagicPenetrationPerLevel,optional"`
	MagicPenetrationCap      *float32                       `bin:"mMagicPenetrationCap,optional"`
	LethalityBase            *float32                       `bin:"mLethalityBase,optional"`
	LethalityPerLevel        *float32                       `bin:"mLethalityPerLevel,optional"`
	LethalityCap             *float32                       `bin:"mLethalityCap,optional"`
	TenacityBase             *float32                       `bin:"mTenacityBase,optional"`
	TenacityPerLevel         *float32                       `bin:"mTenacityPerLevel,optional"`
	TenacityCap              *float32                       `bin:"mTenacityCap,optional"`
	SlowResistBase           *float32                       `bin:"mSlowResistBase,optional"`
	SlowResistPerLevel       *float32                       `bin:"mSlowResistPerLevel,optional"`
	SlowResistCap            *float32                       `bin:"mSlowResistCap,optional"`
	HealthRegenBase          *float32                       `bin:"mHealthRegenBase,optional"`
	HealthRegenPerLevel      *float32                       `bin:"mHealthRegenPerLevel,optional"`
	HealthRegenCap           *float32                       `bin:"mHealthRegenCap,optional"`
	ResourceRegenBase        *float32                       `bin:"mResourceRegenBase,optional"`
	ResourceRegenPerLevel    *float32                       `bin:"mResourceRegenPerLevel,optional"`
	ResourceRegenCap         *float32                       `bin:"mResourceRegenCap,optional"`
	MaxHealthBase            *float32                       `bin:"mMaxHealthBase,optional"`
	MaxHealthPerLevel        *float32                       `bin:"mMaxHealthPerLevel,optional"`
	MaxHealthCap             *float32                       `bin:"mMaxHealthCap,optional"`
	MaxResourceBase          *float32                       `bin:"mMaxResourceBase,optional"`
	MaxResourcePerLevel      *float32                       `bin:"mMaxResourcePerLevel,optional"`
	MaxResourceCap           *float32                       `bin:"mMaxResourceCap,optional"`
	AttackRangeBase          *float32                       `bin:"mAttackRangeBase,optional"`
	AttackRangePerLevel      *float32                       `bin:"mAttackRangePerLevel,optional"`
	AttackRangeCap           *float32                       `bin:"mAttackRangeCap,optional"`
	HealShieldPowerBase      *float32                       `bin:"mHealShieldPowerBase,optional"`
	HealShieldPowerPerLevel  *float32                       `bin:"mHealShieldPowerPerLevel,optional"`
	HealShieldPowerCap       *float32                       `bin:"mHealShieldPowerCap,optional"`
	GoldGenerationBase       *float32                       `bin:"mGoldGenerationBase,optional"`
	GoldGenerationPerLevel   *float32                       `bin:"mGoldGenerationPerLevel,optional"`
	GoldGenerationCap        *float32                       `bin:"mGoldGenerationCap,optional"`
	ExperienceGainBase       *float32                       `bin:"mExperienceGainBase,optional"`
	ExperienceGainPerLevel   *float32                       `bin:"mExperienceGainPerLevel,optional"`
	ExperienceGainCap        *float32                       `bin:"mExperienceGainCap,optional"`
	DamageReductionBase      *float32                       `bin:"mDamageReductionBase,optional"`
	DamageReductionPerLevel  *float32                       `bin:"mDamageReductionPerLevel,optional"`
	DamageReductionCap       *float32                       `bin:"mDamageReductionCap,optional"`
	DamageAmpBase            *float32                       `bin:"mDamageAmpBase,optional"`
	DamageAmpPerLevel        *float32                       `bin:"mDamageAmpPerLevel,optional"`
	DamageAmpCap             *float32                       `bin:"mDamageAmpCap,optional"`
	SizeBase                 *float32                       `bin:"mSizeBase,optional"`
	SizePerLevel             *float32                       `bin:"mSizePerLevel,optional"`
	SizeCap                  *float32                       `bin:"mSizeCap,optional"`
}

type StatCurveData struct {
	Points        []StatCurvePoint `bin:"mPoints,optional"`
	Interpolation *uint8           `bin:"mInterpolation,optional"`
}

type StatCurvePoint struct {
	Level uint8   `bin:"mLevel"`
	Value float32 `bin:"mValue"`
}

type StatModifierSet struct {
	Name      string             `bin:"mName"`
	Modifiers []EnumStatModifier `bin:"mModifiers,optional"`
	Source    EnumDamageSource   `bin:"mSource,optional"`
}

type StatModFlat struct {
	Stat  uint8   `bin:"mStat"`
	Value float32 `bin:"mValue"`
}

type StatModPercent struct {
	Stat   uint8   `bin:"mStat"`
	Value  float32 `bin:"mValue"`
	OfBase *bool   `bin:"mOfBase,optional"`
}

type StatModPerLevel struct {
	Stat  uint8   `bin:"mStat"`
	Value float32 `bin:"mValue"`
}

type StatModScaled struct {
	Stat        uint8               `bin:"mStat"`
	Calculation EnumGameCalculation `bin:"mCalculation"`
}

type StatModConditional struct {
	Condition EnumScriptCondition `bin:"mCondition"`
	Modifiers []EnumStatModifier  `bin:"mModifiers,optional"`
}

type BuffStackingReplace struct{}

type BuffStackingRenew struct {
	KeepStacks *bool `bin:"mKeepStacks,optional"`
}

type BuffStackingStack struct {
	MaxStacks *uint16 `bin:"mMaxStacks,optional"`
}

type BuffStackingStacksAndRenews struct {
	MaxStacks *uint16 `bin:"mMaxStacks,optional"`
	RenewAll  *bool   `bin:"mRenewAll,optional"`
}

type BuffStackingCounter struct {
	MaxCount *uint16 `bin:"mMaxCount,optional"`
}

type BuffStackingStacksAndOverlaps struct {
	MaxStacks *uint16 `bin:"mMaxStacks,optional"`
	PerSource *bool   `bin:"mPerSource,optional"`
}

type CcStun struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type CcRoot struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type CcSlow struct {
	Duration *float32 `bin:"mDuration,optional"`
	Percent  float32  `bin:"mPercent"`
	Decays   *bool    `bin:"mDecays,optional"`
}

type CcSilence struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type CcBlind struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type CcCharm struct {
	Duration  *float32 `bin:"mDuration,optional"`
	PullSpeed *float32 `bin:"mPullSpeed,optional"`
}

type CcFear struct {
	Duration    *float32 `bin:"mDuration,optional"`
	SlowPercent *float32 `bin:"mSlowPercent,optional"`
}

type CcTaunt struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type CcKnockup struct {
	Duration *float32 `bin:"mDuration,optional"`
	Height   *float32 `bin:"mHeight,optional"`
}

type CcKnockback struct {
	Duration *float32 `bin:"mDuration,optional"`
	Distance float32  `bin:"mDistance"`
	Speed    *float32 `bin:"mSpeed,optional"`
}

type CcSuppress struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type CcSleep struct {
	Duration   *float32 `bin:"mDuration,optional"`
	WakeDamage *float32 `bin:"mWakeDamage,optional"`
}

type CcPolymorph struct {
	Duration  *float32 `bin:"mDuration,optional"`
	MoveSpeed *float32 `bin:"mMoveSpeed,optional"`
}

type CcGrounded struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type CcNearsight struct {
	Duration   *float32 `bin:"mDuration,optional"`
	SightRange *float32 `bin:"mSightRange,optional"`
}

type CcDisarm struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type CcDrowsy struct {
	Duration   *float32 `bin:"mDuration,optional"`
	SleepAfter *float32 `bin:"mSleepAfter,optional"`
}

type CcBerserk struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type CcPull struct {
	Duration *float32 `bin:"mDuration,optional"`
	Distance float32  `bin:"mDistance"`
	Speed    *float32 `bin:"mSpeed,optional"`
}

type CcStasis struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type DamageSourcePhysical struct{}

type DamageSourceMagic struct{}

type DamageSourceTrue struct{}

type DamageSourceMixed struct {
	PhysicalRatio float32 `bin:"mPhysicalRatio"`
}

type BuffScriptData struct {
	Name         string               `bin:"mName"`
	Stacking     EnumBuffStacking     `bin:"mStacking,optional"`
	CrowdControl []EnumCrowdControl   `bin:"mCrowdControl,optional"`
	Modifiers    []EnumStatModifier   `bin:"mModifiers,optional"`
	Periodic     []BuffPeriodicEffect `bin:"mPeriodic,optional"`
	OnApply      *ScriptSequence      `bin:"mOnApply,optional,indirect"`
	OnExpire     *ScriptSequence      `bin:"mOnExpire,optional,indirect"`
}

type BuffVisualData struct {
	Icon         *BuffIconData  `bin:"mIcon,optional"`
	AttachedVfx  []propbin.Link `bin:"mAttachedVfx,optional"`
	Tint         *propbin.Color `bin:"mTint,optional"`
	HideFromHud  *bool          `bin:"mHideFromHud,optional"`
	ShowDuration *bool          `bin:"mShowDuration,optional"`
}

type BuffTooltipData struct {
	NameTraKey        *string                              `bin:"mNameTraKey,optional"`
	DescriptionTraKey *string                              `bin:"mDescriptionTraKey,optional"`
	Calculations      map[propbin.Hash]EnumGameCalculation `bin:"mCalculations,optional"`
}

type BuffIconData struct {
	Texture     string         `bin:"mTexture"`
	BorderColor *propbin.Color `bin:"mBorderColor,optional"`
	IsDebuff    *bool          `bin:"mIsDebuff,optional"`
}

type BuffAuraData struct {
	Radius         float32      `bin:"mRadius"`
	Buff           propbin.Link `bin:"mBuff"`
	AffectsAllies  *bool        `bin:"mAffectsAllies,optional"`
	AffectsEnemies *bool        `bin:"mAffectsEnemies,optional"`
	Pulse          *float32     `bin:"mPulse,optional"`
}

type BuffPeriodicEffect struct {
	Interval     float32             `bin:"mInterval"`
	Damage       EnumGameCalculation `bin:"mDamage,optional"`
	DamageSource EnumDamageSource    `bin:"mDamageSource,optional"`
	Heal         EnumGameCalculation `bin:"mHeal,optional"`
}

type CrowdControlImmunity struct {
	ImmuneTo       []EnumCrowdControl `bin:"mImmuneTo,optional"`
	Duration       *float32           `bin:"mDuration,optional"`
	CleanseOnApply *bool              `bin:"mCleanseOnApply,optional"`
}

func (*StatModFlat) statModifier()        {}
func (*StatModPercent) statModifier()     {}
func (*StatModPerLevel) statModifier()    {}
func (*StatModScaled) statModifier()      {}
func (*StatModConditional) statModifier() {}

func (*BuffStackingReplace) buffStacking()           {}
func (*BuffStackingRenew) buffStacking()             {}
func (*BuffStackingStack) buffStacking()             {}
func (*BuffStackingStacksAndRenews) buffStacking()   {}
func (*BuffStackingCounter) buffStacking()           {}
func (*BuffStackingStacksAndOverlaps) buffStacking() {}

func (*CcStun) crowdControl()      {}
func (*CcRoot) crowdControl()      {}
func (*CcSlow) crowdControl()      {}
func (*CcSilence) crowdControl()   {}
func (*CcBlind) crowdControl()     {}
func (*CcCharm) crowdControl()     {}
func (*CcFear) crowdControl()      {}
func (*CcTaunt) crowdControl()     {}
func (*CcKnockup) crowdControl()   {}
func (*CcKnockback) crowdControl() {}
func (*CcSuppress) crowdControl()  {}
func (*CcSleep) crowdControl()     {}
func (*CcPolymorph) crowdControl() {}
func (*CcGrounded) crowdControl()  {}
func (*CcNearsight) crowdControl() {}
func (*CcDisarm) crowdControl()    {}
func (*CcDrowsy) crowdControl()    {}
func (*CcBerserk) crowdControl()   {}
func (*CcPull) crowdControl()      {}
func (*CcStasis) crowdControl()    {}

func (*DamageSourcePhysical) damageSource() {}
func (*DamageSourceMagic) damageSource()    {}
func (*DamageSourceTrue) damageSource()     {}
func (*DamageSourceMixed) damageSource()    {}

func registerStats(b *propbin.Builder) {
	propbin.Record[UnitStatsTable](b, "UnitStatsTable", propbin.AsAsset())
	propbin.Record[StatCurveData](b, "StatCurveData")
	propbin.Record[StatCurvePoint](b, "StatCurvePoint")
	propbin.Record[StatModifierSet](b, "StatModifierSet", propbin.AsAsset())
	propbin.Record[StatModFlat](b, "StatModFlat")
	propbin.Record[StatModPercent](b, "StatModPercent")
	propbin.Record[StatModPerLevel](b, "StatModPerLevel")
	propbin.Record[StatModScaled](b, "StatModScaled")
	propbin.Record[StatModConditional](b, "StatModConditional")
	propbin.Variant[EnumStatModifier](b, "EnumStatModifier",
		propbin.Case[StatModFlat](),
		propbin.Case[StatModPercent](),
		propbin.Case[StatModPerLevel](),
		propbin.Case[StatModScaled](),
		propbin.Case[StatModConditional](),
	)

	propbin.Record[BuffStackingReplace](b, "BuffStackingReplace")
	propbin.Record[BuffStackingRenew](b, "BuffStackingRenew")
	propbin.Record[BuffStackingStack](b, "BuffStackingStack")
	propbin.Record[BuffStackingStacksAndRenews](b, "BuffStackingStacksAndRenews")
	propbin.Record[BuffStackingCounter](b, "BuffStackingCounter")
	propbin.Record[BuffStackingStacksAndOverlaps](b, "BuffStackingStacksAndOverlaps")
	propbin.Variant[EnumBuffStacking](b, "EnumBuffStacking",
		propbin.Case[BuffStackingReplace](),
		propbin.Case[BuffStackingRenew](),
		propbin.Case[BuffStackingStack](),
		propbin.Case[BuffStackingStacksAndRenews](),
		propbin.Case[BuffStackingCounter](),
		propbin.Case[BuffStackingStacksAndOverlaps](),
	)

	propbin.Record[CcStun](b, "CcStun")
	propbin.Record[CcRoot](b, "CcRoot")
	propbin.Record[CcSlow](b, "CcSlow")
	propbin.Record[CcSilence](b, "CcSilence")
	propbin.Record[CcBlind](b, "CcBlind")
	propbin.Record[CcCharm](b, "CcCharm")
	propbin.Record[CcFear](b, "CcFear")
	propbin.Record[CcTaunt](b, "CcTaunt")
	propbin.Record[CcKnockup](b, "CcKnockup")
	propbin.Record[CcKnockback](b, "CcKnockback")
	propbin.Record[CcSuppress](b, "CcSuppress")
	propbin.Record[CcSleep](b, "CcSleep")
	propbin.Record[CcPolymorph](b, "CcPolymorph")
	propbin.Record[CcGrounded](b, "CcGrounded")
	propbin.Record[CcNearsight](b, "CcNearsight")
	propbin.Record[CcDisarm](b, "CcDisarm")
	propbin.Record[CcDrowsy](b, "CcDrowsy")
	propbin.Record[CcBerserk](b, "CcBerserk")
	propbin.Record[CcPull](b, "CcPull")
	propbin.Record[CcStasis](b, "CcStasis")
	propbin.Variant[EnumCrowdControl](b, "EnumCrowdControl",
		propbin.Case[CcStun](),
		propbin.Case[CcRoot](),
		propbin.Case[CcSlow](),
		propbin.Case[CcSilence](),
		propbin.Case[CcBlind](),
		propbin.Case[CcCharm](),
		propbin.Case[CcFear](),
		propbin.Case[CcTaunt](),
		propbin.Case[CcKnockup](),
		propbin.Case[CcKnockback](),
		propbin.Case[CcSuppress](),
		propbin.Case[CcSleep](),
		propbin.Case[CcPolymorph](),
		propbin.Case[CcGrounded](),
		propbin.Case[CcNearsight](),
		propbin.Case[CcDisarm](),
		propbin.Case[CcDrowsy](),
		propbin.Case[CcBerserk](),
		propbin.Case[CcPull](),
		propbin.Case[CcStasis](),
	)

	propbin.Record[DamageSourcePhysical](b, "DamageSourcePhysical")
	propbin.Record[DamageSourceMagic](b, "DamageSourceMagic")
	propbin.Record[DamageSourceTrue](b, "DamageSourceTrue")
	propbin.Record[DamageSourceMixed](b, "DamageSourceMixed")
	propbin.Variant[EnumDamageSource](b, "EnumDamageSource",
		propbin.Case[DamageSourcePhysical](),
		propbin.Case[DamageSourceMagic](),
		propbin.Case[DamageSourceTrue](),
		propbin.Case[DamageSourceMixed](),
	)

	propbin.Record[BuffScriptData](b, "BuffScriptData", propbin.AsAsset())
	propbin.Record[BuffVisualData](b, "BuffVisualData")
	propbin.Record[BuffTooltipData](b, "BuffTooltipData")
	propbin.Record[BuffIconData](b, "BuffIconData")
	propbin.Record[BuffAuraData](b, "BuffAuraData")
	propbin.Record[BuffPeriodicEffect](b, "BuffPeriodicEffect")
	propbin.Record[CrowdControlImmunity](b, "CrowdControlImmunity")
}
