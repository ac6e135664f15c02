package schema

import propbin "github.com/reoring/propbin"

// EnumPerkSlotRule is how a rune slot is filled.
type EnumPerkSlotRule interface{ perkSlotRule() }

// EnumPerkEffect is what a rune does once triggered.
type EnumPerkEffect interface{ perkEffect() }

// EnumPerkTrigger is the event that fires a rune.
type EnumPerkTrigger interface{ perkTrigger() }

// EnumPerkTracker is an end-of-game stat a rune reports.
type EnumPerkTracker interface{ perkTracker() }

// EnumSummonerSpellEffect is the effect of a summoner spell.
type EnumSummonerSpellEffect interface{ summonerSpellEffect() }

// EnumQueuePickRule is how champions are selected in a queue.
type EnumQueuePickRule interface{ queuePickRule() }

// EnumLoadoutSlot is one cosmetic slot of a player loadout.
type EnumLoadoutSlot interface{ loadoutSlot() }

// EnumChatFilter matches chat text that should be masked.
type EnumChatFilter interface{ chatFilter() }

// EnumHighlightTrigger marks a moment worth clipping into a highlight.
type EnumHighlightTrigger interface{ highlightTrigger() }

// PerkStyleData is one rune path with its keystone and minor slots.
type PerkStyleData struct {
	StyleID         uint32                   `bin:"mStyleID"`
	NameTraKey      string                   `bin:"mNameTraKey"`
	Icon            *string                  `bin:"mIcon,optional"`
	Slots           []PerkSlotData           `bin:"mSlots,optional"`
	SubStyleBonus   map[uint32]PerkStatBonus `bin:"mSubStyleBonus,optional"`
	DefaultPageName *string                  `bin:"mDefaultPageName,optional"`
	Color           *propbin.Color           `bin:"mColor,optional"`
	PathHashToSelf  *propbin.PathHash        `bin:"pathHashToSelf,optional"`
}

type PerkSlotData struct {
	Type  EnumPerkSlotRule `bin:"mType"`
	Perks []propbin.Link   `bin:"mPerks,optional"`
}

type PerkStatBonus struct {
	Modifiers []EnumStatModifier `bin:"mModifiers,optional"`
	Adaptive  *bool              `bin:"mAdaptive,optional"`
}

type PerkData struct {
	PerkID     uint32              `bin:"mPerkID"`
	NameTraKey string              `bin:"mNameTraKey"`
	Icon       *string             `bin:"mIcon,optional"`
	Effects    []EnumPerkEffect    `bin:"mEffects,optional"`
	Tracker    []EnumPerkTracker   `bin:"mTracker,optional"`
	Cooldown   EnumGameCalculation `bin:"mCooldown,optional"`
	Buff       *string             `bin:"mBuff,optional"`
	Script     *ScriptSequence     `bin:"mScript,optional,indirect"`
}

type PerkShardData struct {
	ShardID  uint32           `bin:"mShardID"`
	Modifier EnumStatModifier `bin:"mModifier"`
	Row      *uint8           `bin:"mRow,optional"`
}

type SummonerSpellData struct {
	Name          string                    `bin:"mName"`
	Spell         propbin.Link              `bin:"mSpell"`
	Cooldown      float32                   `bin:"mCooldown"`
	LevelRequired *uint8                    `bin:"mLevelRequired,optional"`
	Modes         []string                  `bin:"mModes,optional"`
	Effects       []EnumSummonerSpellEffect `bin:"mEffects,optional"`
	SmiteUpgrades []propbin.Link            `bin:"mSmiteUpgrades,optional"`
}

type PerkSlotKeystone struct{}

type PerkSlotMinor struct {
	Row uint8 `bin:"mRow"`
}

type PerkSlotShard struct {
	Row     uint8 `bin:"mRow"`
	Offense *bool `bin:"mOffense,optional"`
}

type PerkEffectAdaptiveDamage struct {
	Calculation EnumGameCalculation `bin:"mCalculation"`
}

type PerkEffectHealOnHit struct {
	Calculation EnumGameCalculation `bin:"mCalculation"`
}

type PerkEffectShieldOnLowHealth struct {
	Threshold   float32             `bin:"mThreshold"`
	Calculation EnumGameCalculation `bin:"mCalculation"`
}

type PerkEffectBonusGold struct {
	Amount    uint32  `bin:"mAmount"`
	MaxStacks *uint16 `bin:"mMaxStacks,optional"`
}

type PerkEffectMoveSpeed struct {
	Percent  float32  `bin:"mPercent"`
	Duration *float32 `bin:"mDuration,optional"`
}

type PerkEffectAbilityHaste struct {
	Amount float32 `bin:"mAmount"`
}

type PerkEffectStackingStat struct {
	Modifier  EnumStatModifier `bin:"mModifier"`
	MaxStacks *uint16          `bin:"mMaxStacks,optional"`
}

type PerkEffectApplyBuff struct {
	Buff    string          `bin:"mBuff"`
	Trigger EnumPerkTrigger `bin:"mTrigger"`
}

type PerkTriggerOnHit struct {
	AttacksRequired *uint8 `bin:"mAttacksRequired,optional"`
}

type PerkTriggerOnAbility struct {
	Slot *uint8 `bin:"mSlot,optional"`
}

type PerkTriggerOnTakedown struct {
	ChampionsOnly *bool `bin:"mChampionsOnly,optional"`
}

type PerkTriggerOnDamageTaken struct {
	Threshold *float32 `bin:"mThreshold,optional"`
}

type PerkTriggerOnImmobilize struct{}

type PerkTriggerPeriodic struct {
	Interval float32 `bin:"mInterval"`
}

type PerkTrackerDamageDealt struct {
	LabelTraKey *string `bin:"mLabelTraKey,optional"`
}

type PerkTrackerHealing struct {
	LabelTraKey *string `bin:"mLabelTraKey,optional"`
}

type PerkTrackerGold struct {
	LabelTraKey *string `bin:"mLabelTraKey,optional"`
}

type PerkTrackerStacks struct {
	LabelTraKey *string `bin:"mLabelTraKey,optional"`
	Max         *uint16 `bin:"mMax,optional"`
}

type SummonerEffectFlash struct {
	Range float32 `bin:"mRange"`
}

type SummonerEffectIgnite struct {
	Calculation EnumGameCalculation `bin:"mCalculation"`
	Grievous    *float32            `bin:"mGrievous,optional"`
}

type SummonerEffectHeal struct {
	Calculation  EnumGameCalculation `bin:"mCalculation"`
	SpeedPercent *float32            `bin:"mSpeedPercent,optional"`
}

type SummonerEffectBarrier struct {
	Calculation EnumGameCalculation `bin:"mCalculation"`
}

type SummonerEffectExhaust struct {
	SlowPercent     float32  `bin:"mSlowPercent"`
	DamageReduction *float32 `bin:"mDamageReduction,optional"`
}

type SummonerEffectTeleport struct {
	ChannelTime float32 `bin:"mChannelTime"`
}

type SummonerEffectSmite struct {
	Damage  EnumGameCalculation `bin:"mDamage"`
	Charges *uint8              `bin:"mCharges,optional"`
}

type SummonerEffectCleanse struct {
	Tenacity *float32 `bin:"mTenacity,optional"`
}

type SummonerEffectGhost struct {
	SpeedPercent float32 `bin:"mSpeedPercent"`
}

type SummonerEffectClarity struct {
	ManaPercent float32 `bin:"mManaPercent"`
}

type SummonerEffectMark struct {
	Range     float32       `bin:"mRange"`
	DashSpell *propbin.Link `bin:"mDashSpell,optional"`
}

type QueueRuleDraft struct {
	Bans         *uint8  `bin:"mBans,optional"`
	TimerSeconds *uint16 `bin:"mTimerSeconds,optional"`
}

type QueueRuleBlind struct{}

type QueueRuleAllRandom struct {
	Rerolls *uint8 `bin:"mRerolls,optional"`
}

type QueueRuleOneForAll struct{}

type QueueRuleTournament struct {
	Fearless *bool `bin:"mFearless,optional"`
}

type QueueData struct {
	QueueID    uint32            `bin:"mQueueID"`
	NameTraKey string            `bin:"mNameTraKey"`
	Map        uint32            `bin:"mMap"`
	PickRule   EnumQueuePickRule `bin:"mPickRule"`
	Ranked     *bool             `bin:"mRanked,optional"`
	TeamSize   *uint8            `bin:"mTeamSize,optional"`
	GameMode   *string           `bin:"mGameMode,optional"`
}

type LoadoutSlotIcon struct{}

type LoadoutSlotBorder struct {
	Level *uint16 `bin:"mLevel,optional"`
}

type LoadoutSlotRecallVfx struct {
	Effect propbin.Link `bin:"mEffect"`
}

type LoadoutSlotMapSkin struct {
	Map uint32 `bin:"mMap"`
}

type LoadoutSlotDeathRecap struct {
	Theme string `bin:"mTheme"`
}

type LoadoutSlotVictoryDance struct {
	Animation string `bin:"mAnimation"`
}

type LoadoutItemData struct {
	ItemID     uint32          `bin:"mItemID"`
	Slot       EnumLoadoutSlot `bin:"mSlot"`
	NameTraKey *string         `bin:"mNameTraKey,optional"`
	Rarity     *uint8          `bin:"mRarity,optional"`
}

type ChatFilterExact struct {
	Word string `bin:"mWord"`
}

type ChatFilterPattern struct {
	Pattern string `bin:"mPattern"`
}

type ChatFilterScore struct {
	Threshold float32 `bin:"mThreshold"`
}

type ChatFilterConfig struct {
	Locale  string           `bin:"mLocale"`
	Filters []EnumChatFilter `bin:"mFilters,optional"`
	Mask    *string          `bin:"mMask,optional"`
}

type HighlightTriggerMultikill struct {
	Count uint8 `bin:"mCount"`
}

type HighlightTriggerObjective struct {
	Objective string `bin:"mObjective"`
}

type HighlightTriggerShutdown struct {
	Bounty *uint32 `bin:"mBounty,optional"`
}

type HighlightTriggerOutplay struct {
	HealthPercent float32 `bin:"mHealthPercent"`
}

type HighlightConfig struct {
	Triggers []EnumHighlightTrigger `bin:"mTriggers,optional"`
	PreRoll  *float32               `bin:"mPreRoll,optional"`
	PostRoll *float32               `bin:"mPostRoll,optional"`
}

func (*PerkSlotKeystone) perkSlotRule() {}
func (*PerkSlotMinor) perkSlotRule()    {}
func (*PerkSlotShard) perkSlotRule()    {}

func (*PerkEffectAdaptiveDamage) perkEffect()    {}
func (*PerkEffectHealOnHit) perkEffect()         {}
func (*PerkEffectShieldOnLowHealth) perkEffect() {}
func (*PerkEffectBonusGold) perkEffect()         {}
func (*PerkEffectMoveSpeed) perkEffect()         {}
func (*PerkEffectAbilityHaste) perkEffect()      {}
func (*PerkEffectStackingStat) perkEffect()      {}
func (*PerkEffectApplyBuff) perkEffect()         {}

func (*PerkTriggerOnHit) perkTrigger()         {}
func (*PerkTriggerOnAbility) perkTrigger()     {}
func (*PerkTriggerOnTakedown) perkTrigger()    {}
func (*PerkTriggerOnDamageTaken) perkTrigger() {}
func (*PerkTriggerOnImmobilize) perkTrigger()  {}
func (*PerkTriggerPeriodic) perkTrigger()      {}

func (*PerkTrackerDamageDealt) perkTracker() {}
func (*PerkTrackerHealing) perkTracker()     {}
func (*PerkTrackerGold) perkTracker()        {}
func (*PerkTrackerStacks) perkTracker()      {}

func (*SummonerEffectFlash) summonerSpellEffect()    {}
func (*SummonerEffectIgnite) summonerSpellEffect()   {}
func (*SummonerEffectHeal) summonerSpellEffect()     {}
func (*SummonerEffectBarrier) summonerSpellEffect()  {}
func (*SummonerEffectExhaust) summonerSpellEffect()  {}
func (*SummonerEffectTeleport) summonerSpellEffect() {}
func (*SummonerEffectSmite) summonerSpellEffect()    {}
func (*SummonerEffectCleanse) summonerSpellEffect()  {}
func (*SummonerEffectGhost) summonerSpellEffect()    {}
func (*SummonerEffectClarity) summonerSpellEffect()  {}
func (*SummonerEffectMark) summonerSpellEffect()     {}

func (*QueueRuleDraft) queuePickRule()      {}
func (*QueueRuleBlind) queuePickRule()      {}
func (*QueueRuleAllRandom) queuePickRule()  {}
func (*QueueRuleOneForAll) queuePickRule()  {}
func (*QueueRuleTournament) queuePickRule() {}

func (*LoadoutSlotIcon) loadoutSlot()         {}
func (*LoadoutSlotBorder) loadoutSlot()       {}
func (*LoadoutSlotRecallVfx) loadoutSlot()    {}
func (*LoadoutSlotMapSkin) loadoutSlot()      {}
func (*LoadoutSlotDeathRecap) loadoutSlot()   {}
func (*LoadoutSlotVictoryDance) loadoutSlot() {}

func (*ChatFilterExact) chatFilter()   {}
func (*ChatFilterPattern) chatFilter() {}
func (*ChatFilterScore) chatFilter()   {}

func (*HighlightTriggerMultikill) highlightTrigger() {}
func (*HighlightTriggerObjective) highlightTrigger() {}
func (*HighlightTriggerShutdown) highlightTrigger()  {}
func (*HighlightTriggerOutplay) highlightTrigger()   {}

func registerPerks(b *propbin.Builder) {
	propbin.Record[PerkStyleData](b, "PerkStyleData", propbin.AsAsset())
	propbin.Record[PerkSlotData](b, "PerkSlotData")
	propbin.Record[PerkStatBonus](b, "PerkStatBonus")
	propbin.Record[PerkData](b, "PerkData", propbin.AsAsset())
	propbin.Record[PerkShardData](b, "PerkShardData", propbin.AsAsset())
	propbin.Record[SummonerSpellData](b, "SummonerSpellData", propbin.AsAsset())
	propbin.Record[PerkSlotKeystone](b, "PerkSlotKeystone")
	propbin.Record[PerkSlotMinor](b, "PerkSlotMinor")
	propbin.Record[PerkSlotShard](b, "PerkSlotShard")
	propbin.Variant[EnumPerkSlotRule](b, "EnumPerkSlotRule",
		propbin.Case[PerkSlotKeystone](),
		propbin.Case[PerkSlotMinor](),
		propbin.Case[PerkSlotShard](),
	)

	propbin.Record[PerkEffectAdaptiveDamage](b, "PerkEffectAdaptiveDamage")
	propbin.Record[PerkEffectHealOnHit](b, "PerkEffectHealOnHit")
	propbin.Record[PerkEffectShieldOnLowHealth](b, "PerkEffectShieldOnLowHealth")
	propbin.Record[PerkEffectBonusGold](b, "PerkEffectBonusGold")
	propbin.Record[PerkEffectMoveSpeed](b, "PerkEffectMoveSpeed")
	propbin.Record[PerkEffectAbilityHaste](b, "PerkEffectAbilityHaste")
	propbin.Record[PerkEffectStackingStat](b, "PerkEffectStackingStat")
	propbin.Record[PerkEffectApplyBuff](b, "PerkEffectApplyBuff")
	propbin.Variant[EnumPerkEffect](b, "EnumPerkEffect",
		propbin.Case[PerkEffectAdaptiveDamage](),
		propbin.Case[PerkEffectHealOnHit](),
		propbin.Case[PerkEffectShieldOnLowHealth](),
		propbin.Case[PerkEffectBonusGold](),
		propbin.Case[PerkEffectMoveSpeed](),
		propbin.Case[PerkEffectAbilityHaste](),
		propbin.Case[PerkEffectStackingStat](),
		propbin.Case[PerkEffectApplyBuff](),
	)

	propbin.Record[PerkTriggerOnHit](b, "PerkTriggerOnHit")
	propbin.Record[PerkTriggerOnAbility](b, "PerkTriggerOnAbility")
	propbin.Record[PerkTriggerOnTakedown](b, "PerkTriggerOnTakedown")
	propbin.Record[PerkTriggerOnDamageTaken](b, "PerkTriggerOnDamageTaken")
	propbin.Record[PerkTriggerOnImmobilize](b, "PerkTriggerOnImmobilize")
	propbin.Record[PerkTriggerPeriodic](b, "PerkTriggerPeriodic")
	propbin.Variant[EnumPerkTrigger](b, "EnumPerkTrigger",
		propbin.Case[PerkTriggerOnHit](),
		propbin.Case[PerkTriggerOnAbility](),
		propbin.Case[PerkTriggerOnTakedown](),
		propbin.Case[PerkTriggerOnDamageTaken](),
		propbin.Case[PerkTriggerOnImmobilize](),
		propbin.Case[PerkTriggerPeriodic](),
	)

	propbin.Record[PerkTrackerDamageDealt](b, "PerkTrackerDamageDealt")
	propbin.Record[PerkTrackerHealing](b, "PerkTrackerHealing")
	propbin.Record[PerkTrackerGold](b, "PerkTrackerGold")
	propbin.Record[PerkTrackerStacks](b, "PerkTrackerStacks")
	propbin.Variant[EnumPerkTracker](b, "EnumPerkTracker",
		propbin.Case[PerkTrackerDamageDealt](),
		propbin.Case[PerkTrackerHealing](),
		propbin.Case[PerkTrackerGold](),
		propbin.Case[PerkTrackerStacks](),
	)

	propbin.Record[SummonerEffectFlash](b, "SummonerEffectFlash")
	propbin.Record[SummonerEffectIgnite](b, "SummonerEffectIgnite")
	propbin.Record[SummonerEffectHeal](b, "SummonerEffectHeal")
	propbin.Record[SummonerEffectBarrier](b, "SummonerEffectBarrier")
	propbin.Record[SummonerEffectExhaust](b, "SummonerEffectExhaust")
	propbin.Record[SummonerEffectTeleport](b, "SummonerEffectTeleport")
	propbin.Record[SummonerEffectSmite](b, "SummonerEffectSmite")
	propbin.Record[SummonerEffectCleanse](b, "SummonerEffectCleanse")
	propbin.Record[SummonerEffectGhost](b, "SummonerEffectGhost")
	propbin.Record[SummonerEffectClarity](b, "SummonerEffectClarity")
	propbin.Record[SummonerEffectMark](b, "SummonerEffectMark")
	propbin.Variant[EnumSummonerSpellEffect](b, "EnumSummonerSpellEffect",
		propbin.Case[SummonerEffectFlash](),
		propbin.Case[SummonerEffectIgnite](),
		propbin.Case[SummonerEffectHeal](),
		propbin.Case[SummonerEffectBarrier](),
		propbin.Case[SummonerEffectExhaust](),
		propbin.Case[SummonerEffectTeleport](),
		propbin.Case[SummonerEffectSmite](),
		propbin.Case[SummonerEffectCleanse](),
		propbin.Case[SummonerEffectGhost](),
		propbin.Case[SummonerEffectClarity](),
		propbin.Case[SummonerEffectMark](),
	)

	propbin.Record[QueueRuleDraft](b, "QueueRuleDraft")
	propbin.Record[QueueRuleBlind](b, "QueueRuleBlind")
	propbin.Record[QueueRuleAllRandom](b, "QueueRuleAllRandom")
	propbin.Record[QueueRuleOneForAll](b, "QueueRuleOneForAll")
	propbin.Record[QueueRuleTournament](b, "QueueRuleTournament")
	propbin.Variant[EnumQueuePickRule](b, "EnumQueuePickRule",
		propbin.Case[QueueRuleDraft](),
		propbin.Case[QueueRuleBlind](),
		propbin.Case[QueueRuleAllRandom](),
		propbin.Case[QueueRuleOneForAll](),
		propbin.Case[QueueRuleTournament](),
	)

	propbin.Record[QueueData](b, "QueueData", propbin.AsAsset())
	propbin.Record[LoadoutSlotIcon](b, "LoadoutSlotIcon")
	propbin.Record[LoadoutSlotBorder](b, "LoadoutSlotBorder")
	propbin.Record[LoadoutSlotRecallVfx](b, "LoadoutSlotRecallVfx")
	propbin.Record[LoadoutSlotMapSkin](b, "LoadoutSlotMapSkin")
	propbin.Record[LoadoutSlotDeathRecap](b, "LoadoutSlotDeathRecap")
	propbin.Record[LoadoutSlotVictoryDance](b, "LoadoutSlotVictoryDance")
	propbin.Variant[EnumLoadoutSlot](b, "EnumLoadoutSlot",
		propbin.Case[LoadoutSlotIcon](),
		propbin.Case[LoadoutSlotBorder](),
		propbin.Case[LoadoutSlotRecallVfx](),
		propbin.Case[LoadoutSlotMapSkin](),
		propbin.Case[LoadoutSlotDeathRecap](),
		propbin.Case[LoadoutSlotVictoryDance](),
	)

	propbin.Record[LoadoutItemData](b, "LoadoutItemData", propbin.AsAsset())
	propbin.Record[ChatFilterExact](b, "ChatFilterExact")
	propbin.Record[ChatFilterPattern](b, "ChatFilterPattern")
	propbin.Record[ChatFilterScore](b, "ChatFilterScore")
	propbin.Variant[EnumChatFilter](b, "EnumChatFilter",
		propbin.Case[ChatFilterExact](),
		propbin.Case[ChatFilterPattern](),
		propbin.Case[ChatFilterScore](),
	)

	propbin.Record[ChatFilterConfig](b, "ChatFilterConfig", propbin.AsAsset())
	propbin.Record[HighlightTriggerMultikill](b, "HighlightTriggerMultikill")
	propbin.Record[HighlightTriggerObjective](b, "HighlightTriggerObjective")
	propbin.Record[HighlightTriggerShutdown](b, "HighlightTriggerShutdown")
	propbin.Record[HighlightTriggerOutplay](b, "HighlightTriggerOutplay")
	propbin.Variant[EnumHighlightTrigger](b, "EnumHighlightTrigger",
		propbin.Case[HighlightTriggerMultikill](),
		propbin.Case[HighlightTriggerObjective](),
		propbin.Case[HighlightTriggerShutdown](),
		propbin.Case[HighlightTriggerOutplay](),
	)

	propbin.Record[HighlightConfig](b, "HighlightConfig", propbin.AsAsset())
}
