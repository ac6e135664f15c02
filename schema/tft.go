package schema

import propbin "github.com/reoring/propbin"

// EnumTftEffect is one bonus a trait, item or augment applies.
type EnumTftEffect interface{ tftEffect() }

// EnumTftTraitCondition gates a trait tier or effect on board state.
type EnumTftTraitCondition interface{ tftTraitCondition() }

// EnumTftLoot is a reward dropped by a round or orb.
type EnumTftLoot interface{ tftLoot() }

// EnumTftRoundType is what happens in one round of a stage.
type EnumTftRoundType interface{ tftRoundType() }

// EnumTftTargeting picks a unit's next attack target.
type EnumTftTargeting interface{ tftTargeting() }

// TftSetData ties together everything one auto-battler set ships with.
type TftSetData struct {
	SetName        string                 `bin:"mSetName"`
	SetNumber      *uint16                `bin:"mSetNumber,optional"`
	Mutator        *string                `bin:"mMutator,optional"`
	Champions      []propbin.Link         `bin:"mChampions,optional"`
	Traits         []propbin.Link         `bin:"mTraits,optional"`
	Items          []propbin.Link         `bin:"mItems,optional"`
	Augments       []propbin.Link         `bin:"mAugments,optional"`
	ShopOdds       *TftShopOdds           `bin:"mShopOdds,optional"`
	XPTable        *TftXpTable            `bin:"mXpTable,optional"`
	DamageTable    *TftDamageTable        `bin:"mDamageTable,optional"`
	Stages         []TftStageData         `bin:"mStages,optional"`
	Rules          *TftCombatRules        `bin:"mRules,optional"`
	Interest       *TftInterestRules      `bin:"mInterest,optional"`
	Streaks        *TftStreakRules        `bin:"mStreaks,optional"`
	Reroll         *TftRerollRules        `bin:"mReroll,optional"`
	Mana           *TftManaRules          `bin:"mMana,optional"`
	BoardLayout    *TftBoardLayout        `bin:"mBoardLayout,optional"`
	ChampionPool   []TftChampionPoolEntry `bin:"mChampionPool,optional"`
	Encounters     []propbin.Link         `bin:"mEncounters,optional"`
	PathHashToSelf *propbin.PathHash      `bin:"pathHashToSelf,optional"`
}

type TftTraitData struct {
	Name                 string            `bin:"mName"`
	DisplayNameTraKey    *string           `bin:"mDisplayNameTraKey,optional"`
	DescriptionTraKey    *string           `bin:"mDescriptionTraKey,optional"`
	IconPath             *string           `bin:"mIconPath,optional"`
	ConditionalTraitSets []TftTraitSet     `bin:"mConditionalTraitSets,optional"`
	Innate               *bool             `bin:"mInnate,optional"`
	Unique               *bool             `bin:"mUnique,optional"`
	Hidden               *bool             `bin:"mHidden,optional"`
	Category             *uint8            `bin:"mCategory,optional"`
	PathHashToSelf       *propbin.PathHash `bin:"pathHashToSelf,optional"`
}

type TftTraitSet struct {
	MinUnits      uint8                   `bin:"mMinUnits"`
	MaxUnits      *uint8                  `bin:"mMaxUnits,optional"`
	Style         *uint8                  `bin:"mStyle,optional"`
	Effects       []EnumTftEffect         `bin:"mEffects,optional"`
	Conditions    []EnumTftTraitCondition `bin:"mConditions,optional"`
	EffectAmounts []SpellDataValue        `bin:"mEffectAmounts,optional"`
}

type TftUnitData struct {
	CharacterName       string                               `bin:"mCharacterName"`
	DisplayNameTraKey   *string                              `bin:"mDisplayNameTraKey,optional"`
	Tier                *uint8                               `bin:"mTier,optional"`
	Cost                *uint8                               `bin:"mCost,optional"`
	Traits              []propbin.Link                       `bin:"mTraits,optional"`
	LinkedTraits        []propbin.Link                       `bin:"mLinkedTraits,optional"`
	StarLevels          []TftUnitStarLevel                   `bin:"mStarLevels,optional"`
	Spell               *propbin.Link                        `bin:"mSpell,optional"`
	MaxMana             *float32                             `bin:"mMaxMana,optional"`
	InitialMana         *float32                             `bin:"mInitialMana,optional"`
	ManaPerAttack       *float32                             `bin:"mManaPerAttack,optional"`
	ManaPerHit          *float32                             `bin:"mManaPerHit,optional"`
	BaseHP              *float32                             `bin:"mBaseHP,optional"`
	BaseDamage          *float32                             `bin:"mBaseDamage,optional"`
	BaseArmor           *float32                             `bin:"mBaseArmor,optional"`
	BaseMagicResist     *float32                             `bin:"mBaseMagicResist,optional"`
	AttackSpeed         *float32                             `bin:"mAttackSpeed,optional"`
	AttackRange         *uint8                               `bin:"mAttackRange,optional"`
	CritChance          *float32                             `bin:"mCritChance,optional"`
	CritMultiplier      *float32                             `bin:"mCritMultiplier,optional"`
	DodgeChance         *float32                             `bin:"mDodgeChance,optional"`
	MoveSpeed           *float32                             `bin:"mMoveSpeed,optional"`
	Targeting           EnumTftTargeting                     `bin:"mTargeting,optional"`
	ShopIcon            *string                              `bin:"mShopIcon,optional"`
	SquareIcon          *string                              `bin:"mSquareIcon,optional"`
	SplashPath          *string                              `bin:"mSplashPath,optional"`
	IsUnlockable        *bool                                `bin:"mIsUnlockable,optional"`
	IsSummon            *bool                                `bin:"mIsSummon,optional"`
	IsHeadliner         *bool                                `bin:"mIsHeadliner,optional"`
	ShopWeight          *float32                             `bin:"mShopWeight,optional"`
	PoolSize            *uint8                               `bin:"mPoolSize,optional"`
	Role                *uint8                               `bin:"mRole,optional"`
	PreferredRow        *uint8                               `bin:"mPreferredRow,optional"`
	AbilityTooltip      *string                              `bin:"mAbilityTooltip,optional"`
	AbilityCalculations map[propbin.Hash]EnumGameCalculation `bin:"mAbilityCalculations,optional"`
	AbilityValues       []SpellDataValue                     `bin:"mAbilityValues,optional"`
	StarUpVfx           *propbin.Link                        `bin:"mStarUpVfx,optional"`
	SellVfx             *propbin.Link                        `bin:"mSellVfx,optional"`
	BenchScale          *float32                             `bin:"mBenchScale,optional"`
	BoardScale          *float32                             `bin:"mBoardScale,optional"`
	PathHashToSelf      *propbin.PathHash                    `bin:"pathHashToSelf,optional"`
}

type TftUnitStarLevel struct {
	Star             uint8     `bin:"mStar"`
	HealthMultiplier *float32  `bin:"mHealthMultiplier,optional"`
	DamageMultiplier *float32  `bin:"mDamageMultiplier,optional"`
	AbilityValues    []float32 `bin:"mAbilityValues,optional"`
	Scale            *float32  `bin:"mScale,optional"`
}

type TftItemData struct {
	Name               string              `bin:"mName"`
	DisplayNameTraKey  *string             `bin:"mDisplayNameTraKey,optional"`
	DescriptionTraKey  *string             `bin:"mDescriptionTraKey,optional"`
	IconPath           *string             `bin:"mIconPath,optional"`
	Composition        *TftItemComposition `bin:"mComposition,optional"`
	Effects            []EnumTftEffect     `bin:"mEffects,optional"`
	Unique             *bool               `bin:"mUnique,optional"`
	IsComponent        *bool               `bin:"mIsComponent,optional"`
	IsRadiant          *bool               `bin:"mIsRadiant,optional"`
	IsArtifact         *bool               `bin:"mIsArtifact,optional"`
	IsEmblem           *bool               `bin:"mIsEmblem,optional"`
	GrantsTrait        *propbin.Link       `bin:"mGrantsTrait,optional"`
	IncompatibleTraits []propbin.Link      `bin:"mIncompatibleTraits,optional"`
	EffectAmounts      []SpellDataValue    `bin:"mEffectAmounts,optional"`
	PathHashToSelf     *propbin.PathHash   `bin:"pathHashToSelf,optional"`
}

type TftItemComposition struct {
	From        []propbin.Link `bin:"mFrom"`
	IntoRadiant *propbin.Link  `bin:"mIntoRadiant,optional"`
}

type TftAugmentData struct {
	Name                 string            `bin:"mName"`
	DisplayNameTraKey    *string           `bin:"mDisplayNameTraKey,optional"`
	DescriptionTraKey    *string           `bin:"mDescriptionTraKey,optional"`
	IconPath             *string           `bin:"mIconPath,optional"`
	Tier                 *TftAugmentTier   `bin:"mTier,optional"`
	Effects              []EnumTftEffect   `bin:"mEffects,optional"`
	Unique               *bool             `bin:"mUnique,optional"`
	IsHero               *bool             `bin:"mIsHero,optional"`
	LinkedUnit           *propbin.Link     `bin:"mLinkedUnit,optional"`
	LinkedTrait          *propbin.Link     `bin:"mLinkedTrait,optional"`
	IncompatibleAugments []propbin.Link    `bin:"mIncompatibleAugments,optional"`
	EffectAmounts        []SpellDataValue  `bin:"mEffectAmounts,optional"`
	PathHashToSelf       *propbin.PathHash `bin:"pathHashToSelf,optional"`
}

type TftAugmentTier struct {
	Tier         uint8     `bin:"mTier"`
	Weight       *float32  `bin:"mWeight,optional"`
	StageWeights []float32 `bin:"mStageWeights,optional"`
}

type TftShopOdds struct {
	Rows       []TftShopOddsRow `bin:"mRows,optional"`
	RerollCost *uint8           `bin:"mRerollCost,optional"`
}

type TftShopOddsRow struct {
	Level    uint8     `bin:"mLevel"`
	TierOdds []float32 `bin:"mTierOdds,optional"`
}

type TftXpTable struct {
	Levels        []TftXpLevel `bin:"mLevels,optional"`
	XPPerPurchase *uint8       `bin:"mXpPerPurchase,optional"`
	PurchaseCost  *uint8       `bin:"mPurchaseCost,optional"`
	XPPerRound    *uint8       `bin:"mXpPerRound,optional"`
}

type TftXpLevel struct {
	Level      uint8   `bin:"mLevel"`
	XPRequired *uint16 `bin:"mXpRequired,optional"`
	UnitCap    *uint8  `bin:"mUnitCap,optional"`
}

type TftDamageTable struct {
	Rows              []TftPlayerDamageRow `bin:"mRows,optional"`
	BaseDamageByStage []uint8              `bin:"mBaseDamageByStage,optional"`
}

type TftPlayerDamageRow struct {
	Stars  uint8  `bin:"mStars"`
	Tier   uint8  `bin:"mTier"`
	Damage *uint8 `bin:"mDamage,optional"`
}

type TftStageData struct {
	Stage       uint8          `bin:"mStage"`
	Rounds      []TftRoundData `bin:"mRounds,optional"`
	LabelTraKey *string        `bin:"mLabelTraKey,optional"`
}

type TftRoundData struct {
	Type         EnumTftRoundType `bin:"mType"`
	Duration     *float32         `bin:"mDuration,optional"`
	PlanningTime *float32         `bin:"mPlanningTime,optional"`
	Loot         []EnumTftLoot    `bin:"mLoot,optional"`
	Music        *string          `bin:"mMusic,optional"`
	LabelTraKey  *string          `bin:"mLabelTraKey,optional"`
}

type TftPveRound struct {
	Creeps    []TftPveCreep `bin:"mCreeps,optional"`
	LootTable *TftLootTable `bin:"mLootTable,optional"`
}

type TftPveCreep struct {
	Unit       propbin.Link `bin:"mUnit"`
	Hex        *uint8       `bin:"mHex,optional"`
	Stars      *uint8       `bin:"mStars,optional"`
	DropChance *float32     `bin:"mDropChance,optional"`
}

type TftLootTable struct {
	Drops          []TftLootDrop `bin:"mDrops,optional"`
	GuaranteedOrbs *uint8        `bin:"mGuaranteedOrbs,optional"`
}

type TftLootDrop struct {
	Loot   EnumTftLoot `bin:"mLoot"`
	Weight *float32    `bin:"mWeight,optional"`
}

type TftOrbData struct {
	Name      string        `bin:"mName"`
	Vfx       *propbin.Link `bin:"mVfx,optional"`
	Rarity    *uint8        `bin:"mRarity,optional"`
	LootTable *TftLootTable `bin:"mLootTable,optional"`
}

type TftRerollRules struct {
	Cost                *uint8 `bin:"mCost,optional"`
	FreeRerollsPerRound *uint8 `bin:"mFreeRerollsPerRound,optional"`
	LockAllowed         *bool  `bin:"mLockAllowed,optional"`
}

type TftInterestRules struct {
	GoldPerInterest *uint8 `bin:"mGoldPerInterest,optional"`
	MaxInterest     *uint8 `bin:"mMaxInterest,optional"`
	BaseIncome      *uint8 `bin:"mBaseIncome,optional"`
}

type TftStreakRules struct {
	Thresholds []uint8 `bin:"mThresholds,optional"`
	BonusGold  []uint8 `bin:"mBonusGold,optional"`
}

type TftCombatRules struct {
	RoundTimeLimit    *float32 `bin:"mRoundTimeLimit,optional"`
	OvertimeStart     *float32 `bin:"mOvertimeStart,optional"`
	OvertimeDamageAmp *float32 `bin:"mOvertimeDamageAmp,optional"`
	BoardRows         *uint8   `bin:"mBoardRows,optional"`
	BoardColumns      *uint8   `bin:"mBoardColumns,optional"`
	BenchSize         *uint8   `bin:"mBenchSize,optional"`
}

type TftManaRules struct {
	ManaPerPreMitigationDamage  *float32 `bin:"mManaPerPreMitigationDamage,optional"`
	ManaPerPostMitigationDamage *float32 `bin:"mManaPerPostMitigationDamage,optional"`
	MaxManaFromDamage           *float32 `bin:"mMaxManaFromDamage,optional"`
	ManaLockDuration            *float32 `bin:"mManaLockDuration,optional"`
}

type TftBoardLayout struct {
	Hexes        []TftHexData    `bin:"mHexes,optional"`
	Bench        *TftBenchLayout `bin:"mBench,optional"`
	CameraOffset *propbin.Vec3   `bin:"mCameraOffset,optional"`
}

type TftHexData struct {
	Index    uint8         `bin:"mIndex"`
	Position *propbin.Vec3 `bin:"mPosition,optional"`
	Row      *uint8        `bin:"mRow,optional"`
	Column   *uint8        `bin:"mColumn,optional"`
}

type TftBenchLayout struct {
	SlotPositions []propbin.Vec3 `bin:"mSlotPositions,optional"`
	SellZone      *propbin.Vec4  `bin:"mSellZone,optional"`
}

type TftChampionPoolEntry struct {
	Tier   uint8  `bin:"mTier"`
	Copies *uint8 `bin:"mCopies,optional"`
}

type TftEncounterData struct {
	Name               string          `bin:"mName"`
	Weight             *float32        `bin:"mWeight,optional"`
	StageMin           *uint8          `bin:"mStageMin,optional"`
	StageMax           *uint8          `bin:"mStageMax,optional"`
	Effects            []EnumTftEffect `bin:"mEffects,optional"`
	AnnouncementTraKey *string         `bin:"mAnnouncementTraKey,optional"`
	Script             *propbin.Link   `bin:"mScript,optional"`
}

type TftPortalData struct {
	Name              string          `bin:"mName"`
	DescriptionTraKey *string         `bin:"mDescriptionTraKey,optional"`
	BoardSkin         *propbin.Link   `bin:"mBoardSkin,optional"`
	Effects           []EnumTftEffect `bin:"mEffects,optional"`
}

type TftLittleLegendData struct {
	Name            string         `bin:"mName"`
	Species         *string        `bin:"mSpecies,optional"`
	Tier            *uint8         `bin:"mTier,optional"`
	CharacterRecord *propbin.Link  `bin:"mCharacterRecord,optional"`
	Emotes          []propbin.Link `bin:"mEmotes,optional"`
	MoveSpeed       *float32       `bin:"mMoveSpeed,optional"`
	BoomVfx         *propbin.Link  `bin:"mBoomVfx,optional"`
}

type TftArenaSkin struct {
	Name          string         `bin:"mName"`
	MapSkin       *propbin.Link  `bin:"mMapSkin,optional"`
	BoardMaterial *propbin.Link  `bin:"mBoardMaterial,optional"`
	Music         *string        `bin:"mMusic,optional"`
	AmbientVfx    []propbin.Link `bin:"mAmbientVfx,optional"`
}

type TftBoomData struct {
	Name     string       `bin:"mName"`
	Vfx      propbin.Link `bin:"mVfx"`
	Sound    *string      `bin:"mSound,optional"`
	Duration *float32     `bin:"mDuration,optional"`
}

type TftRankedTier struct {
	Name   string  `bin:"mName"`
	MinLp  *uint16 `bin:"mMinLp,optional"`
	MaxLp  *uint16 `bin:"mMaxLp,optional"`
	Emblem *string `bin:"mEmblem,optional"`
}

type TftMatchmakingRules struct {
	Tiers     []TftRankedTier `bin:"mTiers,optional"`
	LpGainTop []int16         `bin:"mLpGainTop,optional"`
	LpLoss    []int16         `bin:"mLpLoss,optional"`
}

type TftHyperRollRules struct {
	StartingHealth *uint8   `bin:"mStartingHealth,optional"`
	RoundTimeScale *float32 `bin:"mRoundTimeScale,optional"`
	FreeRerolls    *uint8   `bin:"mFreeRerolls,optional"`
}

type TftDoubleUpRules struct {
	TeamHealth     *uint8   `bin:"mTeamHealth,optional"`
	ReinforceDelay *float32 `bin:"mReinforceDelay,optional"`
	GiftInterval   *uint8   `bin:"mGiftInterval,optional"`
}

type TftEffectStatBonus struct {
	Stat    uint8     `bin:"mStat"`
	Value   *float32  `bin:"mValue,optional"`
	Percent *bool     `bin:"mPercent,optional"`
	PerStar []float32 `bin:"mPerStar,optional"`
}

type TftEffectShield struct {
	Amount           *float32 `bin:"mAmount,optional"`
	Duration         *float32 `bin:"mDuration,optional"`
	PercentMaxHealth *bool    `bin:"mPercentMaxHealth,optional"`
}

type TftEffectHeal struct {
	Amount               *float32 `bin:"mAmount,optional"`
	PercentMissingHealth *bool    `bin:"mPercentMissingHealth,optional"`
	Interval             *float32 `bin:"mInterval,optional"`
}

type TftEffectDamageAmp struct {
	Percent     *float32      `bin:"mPercent,optional"`
	VersusTrait *propbin.Link `bin:"mVersusTrait,optional"`
}

type TftEffectManaGain struct {
	Amount   *float32 `bin:"mAmount,optional"`
	Interval *float32 `bin:"mInterval,optional"`
	OnCast   *bool    `bin:"mOnCast,optional"`
}

type TftEffectSummon struct {
	Unit  propbin.Link `bin:"mUnit"`
	Stars *uint8       `bin:"mStars,optional"`
	Hex   *uint8       `bin:"mHex,optional"`
}

type TftEffectGold struct {
	Amount *uint8   `bin:"mAmount,optional"`
	Chance *float32 `bin:"mChance,optional"`
}

type TftEffectItemGrant struct {
	Item  propbin.Link `bin:"mItem"`
	Count *uint8       `bin:"mCount,optional"`
}

type TftEffectUnitGrant struct {
	Tier  uint8         `bin:"mTier"`
	Count *uint8        `bin:"mCount,optional"`
	Trait *propbin.Link `bin:"mTrait,optional"`
}

type TftEffectXpGrant struct {
	Amount *uint8 `bin:"mAmount,optional"`
}

type TftEffectRerollGrant struct {
	Count    *uint8 `bin:"mCount,optional"`
	PerRound *bool  `bin:"mPerRound,optional"`
}

type TftEffectBurn struct {
	PercentMaxHealth *float32 `bin:"mPercentMaxHealth,optional"`
	Duration         *float32 `bin:"mDuration,optional"`
}

type TftEffectWound struct {
	HealingReduction *float32 `bin:"mHealingReduction,optional"`
	Duration         *float32 `bin:"mDuration,optional"`
}

type TftEffectStun struct {
	Duration *float32 `bin:"mDuration,optional"`
}

type TftEffectChill struct {
	AttackSpeedReduction *float32 `bin:"mAttackSpeedReduction,optional"`
	Duration             *float32 `bin:"mDuration,optional"`
}

type TftEffectShred struct {
	MagicResistReduction *float32 `bin:"mMagicResistReduction,optional"`
	Duration             *float32 `bin:"mDuration,optional"`
}

type TftEffectSunder struct {
	ArmorReduction *float32 `bin:"mArmorReduction,optional"`
	Duration       *float32 `bin:"mDuration,optional"`
}

type TftEffectTeleport struct {
	Destination *uint8   `bin:"mDestination,optional"`
	Delay       *float32 `bin:"mDelay,optional"`
}

type TftEffectRevive struct {
	HealthPercent *float32 `bin:"mHealthPercent,optional"`
	Delay         *float32 `bin:"mDelay,optional"`
}

type TftEffectCrit struct {
	Chance           *float32 `bin:"mChance,optional"`
	Damage           *float32 `bin:"mDamage,optional"`
	AbilitiesCanCrit *bool    `bin:"mAbilitiesCanCrit,optional"`
}

type TftEffectDodge struct {
	Chance *float32 `bin:"mChance,optional"`
}

type TftEffectOmnivamp struct {
	Percent *float32 `bin:"mPercent,optional"`
}

type TftEffectTargetChange struct {
	Targeting EnumTftTargeting `bin:"mTargeting"`
}

type TftEffectScaleOverTime struct {
	Stat      uint8    `bin:"mStat"`
	PerSecond *float32 `bin:"mPerSecond,optional"`
	MaxStacks *uint16  `bin:"mMaxStacks,optional"`
}

type TftEffectConditional struct {
	Condition EnumTftTraitCondition `bin:"mCondition"`
	Effects   []EnumTftEffect       `bin:"mEffects,optional"`
}

type TftConditionUnitCount struct {
	Trait *propbin.Link `bin:"mTrait,optional"`
	Min   *uint8        `bin:"mMin,optional"`
}

type TftConditionHasItem struct {
	Item propbin.Link `bin:"mItem"`
}

type TftConditionRow struct {
	Row uint8 `bin:"mRow"`
}

type TftConditionHealthBelow struct {
	Percent float32 `bin:"mPercent"`
}

type TftConditionRoundType struct {
	Type EnumTftRoundType `bin:"mType"`
}

type TftConditionAlways struct{}

type TftLootGold struct {
	Amount uint8 `bin:"mAmount"`
}

type TftLootItem struct {
	Item propbin.Link `bin:"mItem"`
}

type TftLootUnit struct {
	Tier  uint8  `bin:"mTier"`
	Stars *uint8 `bin:"mStars,optional"`
}

type TftLootComponent struct {
	Count *uint8 `bin:"mCount,optional"`
}

type TftLootReroll struct {
	Count *uint8 `bin:"mCount,optional"`
}

type TftLootOrb struct {
	Orb propbin.Link `bin:"mOrb"`
}

type TftRoundPvp struct {
	DamageMultiplier *float32 `bin:"mDamageMultiplier,optional"`
}

type TftRoundPve struct {
	Round *TftPveRound `bin:"mRound,optional"`
}

type TftRoundCarousel struct {
	PickDelay *float32       `bin:"mPickDelay,optional"`
	ItemPool  []propbin.Link `bin:"mItemPool,optional"`
}

type TftRoundAugment struct {
	TierWeights []float32 `bin:"mTierWeights,optional"`
}

type TftRoundEncounter struct {
	Encounter propbin.Link `bin:"mEncounter"`
}

type TftTargetNearest struct{}

type TftTargetFarthest struct{}

type TftTargetLowestHealth struct {
	Percent *bool `bin:"mPercent,optional"`
}

type TftTargetHighestStar struct{}

type TftTargetRandom struct {
	SeedPerRound *bool `bin:"mSeedPerRound,optional"`
}

type TftTargetBackline struct {
	Rows *uint8 `bin:"mRows,optional"`
}

func (*TftEffectStatBonus) tftEffect()     {}
func (*TftEffectShield) tftEffect()        {}
func (*TftEffectHeal) tftEffect()          {}
func (*TftEffectDamageAmp) tftEffect()     {}
func (*TftEffectManaGain) tftEffect()      {}
func (*TftEffectSummon) tftEffect()        {}
func (*TftEffectGold) tftEffect()          {}
func (*TftEffectItemGrant) tftEffect()     {}
func (*TftEffectUnitGrant) tftEffect()     {}
func (*TftEffectXpGrant) tftEffect()       {}
func (*TftEffectRerollGrant) tftEffect()   {}
func (*TftEffectBurn) tftEffect()          {}
func (*TftEffectWound) tftEffect()         {}
func (*TftEffectStun) tftEffect()          {}
func (*TftEffectChill) tftEffect()         {}
func (*TftEffectShred) tftEffect()         {}
func (*TftEffectSunder) tftEffect()        {}
func (*TftEffectTeleport) tftEffect()      {}
func (*TftEffectRevive) tftEffect()        {}
func (*TftEffectCrit) tftEffect()          {}
func (*TftEffectDodge) tftEffect()         {}
func (*TftEffectOmnivamp) tftEffect()      {}
func (*TftEffectTargetChange) tftEffect()  {}
func (*TftEffectScaleOverTime) tftEffect() {}
func (*TftEffectConditional) tftEffect()   {}

func (*TftConditionUnitCount) tftTraitCondition()   {}
func (*TftConditionHasItem) tftTraitCondition()     {}
func (*TftConditionRow) tftTraitCondition()         {}
func (*TftConditionHealthBelow) tftTraitCondition() {}
func (*TftConditionRoundType) tftTraitCondition()   {}
func (*TftConditionAlways) tftTraitCondition()      {}

func (*TftLootGold) tftLoot()      {}
func (*TftLootItem) tftLoot()      {}
func (*TftLootUnit) tftLoot()      {}
func (*TftLootComponent) tftLoot() {}
func (*TftLootReroll) tftLoot()    {}
func (*TftLootOrb) tftLoot()       {}

func (*TftRoundPvp) tftRoundType()       {}
func (*TftRoundPve) tftRoundType()       {}
func (*TftRoundCarousel) tftRoundType()  {}
func (*TftRoundAugment) tftRoundType()   {}
func (*TftRoundEncounter) tftRoundType() {}

func (*TftTargetNearest) tftTargeting()      {}
func (*TftTargetFarthest) tftTargeting()     {}
func (*TftTargetLowestHealth) tftTargeting() {}
func (*TftTargetHighestStar) tftTargeting()  {}
func (*TftTargetRandom) tftTargeting()       {}
func (*TftTargetBackline) tftTargeting()     {}

func registerTft(b *propbin.Builder) {
	propbin.Record[TftSetData](b, "TftSetData", propbin.AsAsset())
	propbin.Record[TftTraitData](b, "TftTraitData", propbin.AsAsset())
	propbin.Record[TftTraitSet](b, "TftTraitSet")
	propbin.Record[TftUnitData](b, "TftUnitData", propbin.AsAsset())
	propbin.Record[TftUnitStarLevel](b, "TftUnitStarLevel")
	propbin.Record[TftItemData](b, "TftItemData", propbin.AsAsset())
	propbin.Record[TftItemComposition](b, "TftItemComposition")
	propbin.Record[TftAugmentData](b, "TftAugmentData", propbin.AsAsset())
	propbin.Record[TftAugmentTier](b, "TftAugmentTier")
	propbin.Record[TftShopOdds](b, "TftShopOdds")
	propbin.Record[TftShopOddsRow](b, "TftShopOddsRow")
	propbin.Record[TftXpTable](b, "TftXpTable")
	propbin.Record[TftXpLevel](b, "TftXpLevel")
	propbin.Record[TftDamageTable](b, "TftDamageTable")
	propbin.Record[TftPlayerDamageRow](b, "TftPlayerDamageRow")
	propbin.Record[TftStageData](b, "TftStageData")
	propbin.Record[TftRoundData](b, "TftRoundData")
	propbin.Record[TftPveRound](b, "TftPveRound")
	propbin.Record[TftPveCreep](b, "TftPveCreep")
	propbin.Record[TftLootTable](b, "TftLootTable")
	propbin.Record[TftLootDrop](b, "TftLootDrop")
	propbin.Record[TftOrbData](b, "TftOrbData", propbin.AsAsset())
	propbin.Record[TftRerollRules](b, "TftRerollRules")
	propbin.Record[TftInterestRules](b, "TftInterestRules")
	propbin.Record[TftStreakRules](b, "TftStreakRules")
	propbin.Record[TftCombatRules](b, "TftCombatRules")
	propbin.Record[TftManaRules](b, "TftManaRules")
	propbin.Record[TftBoardLayout](b, "TftBoardLayout")
	propbin.Record[TftHexData](b, "TftHexData")
	propbin.Record[TftBenchLayout](b, "TftBenchLayout")
	propbin.Record[TftChampionPoolEntry](b, "TftChampionPoolEntry")
	propbin.Record[TftEncounterData](b, "TftEncounterData", propbin.AsAsset())
	propbin.Record[TftPortalData](b, "TftPortalData", propbin.AsAsset())
	propbin.Record[TftLittleLegendData](b, "TftLittleLegendData", propbin.AsAsset())
	propbin.Record[TftArenaSkin](b, "TftArenaSkin", propbin.AsAsset())
	propbin.Record[TftBoomData](b, "TftBoomData", propbin.AsAsset())
	propbin.Record[TftRankedTier](b, "TftRankedTier")
	propbin.Record[TftMatchmakingRules](b, "TftMatchmakingRules", propbin.AsAsset())
	propbin.Record[TftHyperRollRules](b, "TftHyperRollRules")
	propbin.Record[TftDoubleUpRules](b, "TftDoubleUpRules")
	propbin.Record[TftEffectStatBonus](b, "TftEffectStatBonus")
	propbin.Record[TftEffectShield](b, "TftEffectShield")
	propbin.Record[TftEffectHeal](b, "TftEffectHeal")
	propbin.Record[TftEffectDamageAmp](b, "TftEffectDamageAmp")
	propbin.Record[TftEffectManaGain](b, "TftEffectManaGain")
	propbin.Record[TftEffectSummon](b, "TftEffectSummon")
	propbin.Record[TftEffectGold](b, "TftEffectGold")
	propbin.Record[TftEffectItemGrant](b, "TftEffectItemGrant")
	propbin.Record[TftEffectUnitGrant](b, "TftEffectUnitGrant")
	propbin.Record[TftEffectXpGrant](b, "TftEffectXpGrant")
	propbin.Record[TftEffectRerollGrant](b, "TftEffectRerollGrant")
	propbin.Record[TftEffectBurn](b, "TftEffectBurn")
	propbin.Record[TftEffectWound](b, "TftEffectWound")
	propbin.Record[TftEffectStun](b, "TftEffectStun")
	propbin.Record[TftEffectChill](b, "TftEffectChill")
	propbin.Record[TftEffectShred](b, "TftEffectShred")
	propbin.Record[TftEffectSunder](b, "TftEffectSunder")
	propbin.Record[TftEffectTeleport](b, "TftEffectTeleport")
	propbin.Record[TftEffectRevive](b, "TftEffectRevive")
	propbin.Record[TftEffectCrit](b, "TftEffectCrit")
	propbin.Record[TftEffectDodge](b, "TftEffectDodge")
	propbin.Record[TftEffectOmnivamp](b, "TftEffectOmnivamp")
	propbin.Record[TftEffectTargetChange](b, "TftEffectTargetChange")
	propbin.Record[TftEffectScaleOverTime](b, "TftEffectScaleOverTime")
	propbin.Record[TftEffectConditional](b, "TftEffectConditional")
	propbin.Variant[EnumTftEffect](b, "EnumTftEffect",
		propbin.Case[TftEffectStatBonus](),
		propbin.Case[TftEffectShield](),
		propbin.Case[TftEffectHeal](),
		propbin.Case[TftEffectDamageAmp](),
		propbin.Case[TftEffectManaGain](),
		propbin.Case[TftEffectSummon](),
		propbin.Case[TftEffectGold](),
		propbin.Case[TftEffectItemGrant](),
		propbin.Case[TftEffectUnitGrant](),
		propbin.Case[TftEffectXpGrant](),
		propbin.Case[TftEffectRerollGrant](),
		propbin.Case[TftEffectBurn](),
		propbin.Case[TftEffectWound](),
		propbin.Case[TftEffectStun](),
		propbin.Case[TftEffectChill](),
		propbin.Case[TftEffectShred](),
		propbin.Case[TftEffectSunder](),
		propbin.Case[TftEffectTeleport](),
		propbin.Case[TftEffectRevive](),
		propbin.Case[TftEffectCrit](),
		propbin.Case[TftEffectDodge](),
		propbin.Case[TftEffectOmnivamp](),
		propbin.Case[TftEffectTargetChange](),
		propbin.Case[TftEffectScaleOverTime](),
		propbin.Case[TftEffectConditional](),
	)

	propbin.Record[TftConditionUnitCount](b, "TftConditionUnitCount")
	propbin.Record[TftConditionHasItem](b, "TftConditionHasItem")
	propbin.Record[TftConditionRow](b, "TftConditionRow")
	propbin.Record[TftConditionHealthBelow](b, "TftConditionHealthBelow")
	propbin.Record[TftConditionRoundType](b, "TftConditionRoundType")
	propbin.Record[TftConditionAlways](b, "TftConditionAlways")
	propbin.Variant[EnumTftTraitCondition](b, "EnumTftTraitCondition",
		propbin.Case[TftConditionUnitCount](),
		propbin.Case[TftConditionHasItem](),
		propbin.Case[TftConditionRow](),
		propbin.Case[TftConditionHealthBelow](),
		propbin.Case[TftConditionRoundType](),
		propbin.Case[TftConditionAlways](),
	)

	propbin.Record[TftLootGold](b, "TftLootGold")
	propbin.Record[TftLootItem](b, "TftLootItem")
	propbin.Record[TftLootUnit](b, "TftLootUnit")
	propbin.Record[TftLootComponent](b, "TftLootComponent")
	propbin.Record[TftLootReroll](b, "TftLootReroll")
	propbin.Record[TftLootOrb](b, "TftLootOrb")
	propbin.Variant[EnumTftLoot](b, "EnumTftLoot",
		propbin.Case[TftLootGold](),
		propbin.Case[TftLootItem](),
		propbin.Case[TftLootUnit](),
		propbin.Case[TftLootComponent](),
		propbin.Case[TftLootReroll](),
		propbin.Case[TftLootOrb](),
	)

	propbin.Record[TftRoundPvp](b, "TftRoundPvp")
	propbin.Record[TftRoundPve](b, "TftRoundPve")
	propbin.Record[TftRoundCarousel](b, "TftRoundCarousel")
	propbin.Record[TftRoundAugment](b, "TftRoundAugment")
	propbin.Record[TftRoundEncounter](b, "TftRoundEncounter")
	propbin.Variant[EnumTftRoundType](b, "EnumTftRoundType",
		propbin.Case[TftRoundPvp](),
		propbin.Case[TftRoundPve](),
		propbin.Case[TftRoundCarousel](),
		propbin.Case[TftRoundAugment](),
		propbin.Case[TftRoundEncounter](),
	)

	propbin.Record[TftTargetNearest](b, "TftTargetNearest")
	propbin.Record[TftTargetFarthest](b, "TftTargetFarthest")
	propbin.Record[TftTargetLowestHealth](b, "TftTargetLowestHealth")
	propbin.Record[TftTargetHighestStar](b, "TftTargetHighestStar")
	propbin.Record[TftTargetRandom](b, "TftTargetRandom")
	propbin.Record[TftTargetBackline](b, "TftTargetBackline")
	propbin.Variant[EnumTftTargeting](b, "EnumTftTargeting",
		propbin.Case[TftTargetNearest](),
		propbin.Case[TftTargetFarthest](),
		propbin.Case[TftTargetLowestHealth](),
		propbin.Case[TftTargetHighestStar](),
		propbin.Case[TftTargetRandom](),
		propbin.Case[TftTargetBackline](),
	)
}
