package schema

import propbin "github.com/reoring/propbin"

// AbilityResourceType enumerates mana-bar flavours.
type AbilityResourceType uint8

const (
	ResourceMana AbilityResourceType = iota
	ResourceEnergy
	ResourceNone
	ResourceShield
	ResourceBattlefury
	ResourceDragonfury
	ResourceRage
	ResourceHeat
	ResourceGnarfury
	ResourceFerocity
	ResourceBloodWell
	ResourceWind
	ResourceAmmo
	ResourceMoonlight
	ResourceOther
)

// CharacterRecord carries the base statistics and loadout of one unit.
// Kept as one flat record; every field has its own stable hash.
type CharacterRecord struct {
	CharacterName                   string                   `bin:"mCharacterName"`
	BaseHP                          *float32                 `bin:"baseHP,optional"`
	HPPerLevel                      *float32                 `bin:"hpPerLevel,optional"`
	BaseStaticHPRegen               *float32                 `bin:"baseStaticHPRegen,optional"`
	HPRegenPerLevel                 *float32                 `bin:"hpRegenPerLevel,optional"`
	HealthBarHeight                 *float32                 `bin:"healthBarHeight,optional"`
	HealthBarFullParallax           *bool                    `bin:"healthBarFullParallax,optional"`
	BaseMoveSpeed                   *float32                 `bin:"baseMoveSpeed,optional"`
	BaseArmor                       *float32                 `bin:"baseArmor,optional"`
	ArmorPerLevel                   *float32                 `bin:"armorPerLevel,optional"`
	BaseSpellBlock                  *float32                 `bin:"baseSpellBlock,optional"`
	SpellBlockPerLevel              *float32                 `bin:"spellBlockPerLevel,optional"`
	BaseDamage                      *float32                 `bin:"baseDamage,optional"`
	DamagePerLevel                  *float32                 `bin:"damagePerLevel,optional"`
	BaseCritChance                  *float32                 `bin:"baseCritChance,optional"`
	CritDamageMultiplier            *float32                 `bin:"critDamageMultiplier,optional"`
	BaseDodge                       *float32                 `bin:"baseDodge,optional"`
	DodgePerLevel                   *float32                 `bin:"dodgePerLevel,optional"`
	AttackRange                     *float32                 `bin:"attackRange,optional"`
	AttackSpeed                     *float32                 `bin:"attackSpeed,optional"`
	AttackSpeedRatio                *float32                 `bin:"attackSpeedRatio,optional"`
	AttackSpeedPerLevel             *float32                 `bin:"attackSpeedPerLevel,optional"`
	AttackAutoInterruptPercent      *float32                 `bin:"attackAutoInterruptPercent,optional"`
	AcquisitionRange                *float32                 `bin:"acquisitionRange,optional"`
	FirstAcquisitionRange           *float32                 `bin:"firstAcquisitionRange,optional"`
	LocalGoldSplitWithLastHitter    *bool                    `bin:"localGoldSplitWithLastHitter,optional"`
	LocalGoldGivenOnDeath           *float32                 `bin:"localGoldGivenOnDeath,optional"`
	LocalExpGivenOnDeath            *float32                 `bin:"localExpGivenOnDeath,optional"`
	GlobalGoldGivenOnDeath          *float32                 `bin:"globalGoldGivenOnDeath,optional"`
	GlobalExpGivenOnDeath           *float32                 `bin:"globalExpGivenOnDeath,optional"`
	ExpGivenOnDeath                 *float32                 `bin:"expGivenOnDeath,optional"`
	GoldGivenOnDeath                *float32                 `bin:"goldGivenOnDeath,optional"`
	SelectionHeight                 *float32                 `bin:"selectionHeight,optional"`
	SelectionRadius                 *float32                 `bin:"selectionRadius,optional"`
	PathfindingCollisionRadius      *float32                 `bin:"pathfindingCollisionRadius,optional"`
	OverrideGameplayCollisionRadius *float32                 `bin:"overrideGameplayCollisionRadius,optional"`
	PerceptionBubbleRadius          *float32                 `bin:"perceptionBubbleRadius,optional"`
	UnitTagsString                  *string                  `bin:"unitTagsString,optional"`
	Flags                           *uint32                  `bin:"flags,optional"`
	MinionFlags                     *uint32                  `bin:"minionFlags,optional"`
	MinionScoreValue                *float32                 `bin:"minionScoreValue,optional"`
	BasicAttack                     *AttackSlotData          `bin:"basicAttack,optional"`
	ExtraAttacks                    []AttackSlotData         `bin:"extraAttacks,optional"`
	CritAttacks                     []AttackSlotData         `bin:"critAttacks,optional"`
	SpellNames                      []string                 `bin:"spellNames,optional"`
	ExtraSpells                     []string                 `bin:"extraSpells,optional"`
	Spells                          []propbin.Link           `bin:"spells,optional"`
	PassiveName                     *string                  `bin:"passiveName,optional"`
	PassiveLuaName                  *string                  `bin:"passiveLuaName,optional"`
	PassiveToolTip                  *string                  `bin:"passiveToolTip,optional"`
	PassiveSpell                    *propbin.Link            `bin:"passiveSpell,optional"`
	PassiveRange                    *float32                 `bin:"passiveRange,optional"`
	PrimaryAbilityResource          *AbilityResourceSlotInfo `bin:"primaryAbilityResource,optional"`
	SecondaryAbilityResource        *AbilityResourceSlotInfo `bin:"secondaryAbilityResource,optional"`
	CharacterToolData               *CharacterToolData       `bin:"characterToolData,optional"`
	PlatformEnabled                 *bool                    `bin:"platformEnabled,optional"`
	PurchaseIdentities              []propbin.Hash           `bin:"purchaseIdentities,optional"`
	SelfIllumination                *float32                 `bin:"selfIllumination,optional"`
	OutlineBBoxExpansion            *float32                 `bin:"outlineBBoxExpansion,optional"`
	SkipDrawOutline                 *bool                    `bin:"skipDrawOutline,optional"`
	DisableContinuousTargetFacing   *bool                    `bin:"disableContinuousTargetFacing,optional"`
	AllowPetControl                 *bool                    `bin:"allowPetControl,optional"`
	DeathTime                       *float32                 `bin:"deathTime,optional"`
	DeathEventListeningRadius       *float32                 `bin:"deathEventListeningRadius,optional"`
	OccludedUnitSelectableDistance  *float32                 `bin:"occludedUnitSelectableDistance,optional"`
	WakeUpRange                     *float32                 `bin:"wakeUpRange,optional"`
	FriendlyUxOverrideTeam          *uint32                  `bin:"friendlyUxOverrideTeam,optional"`
	EnemyTooltip                    *string                  `bin:"enemyTooltip,optional"`
	HitFxScale                      *float32                 `bin:"hitFxScale,optional"`
	DamageShowDistance              *float32                 `bin:"damageShowDistance,optional"`
	UseRiotRelationships            *bool                    `bin:"useRiotRelationships,optional"`
	RecordAsWard                    *bool                    `bin:"recordAsWard,optional"`
	HoverIndicatorRadius            *float32                 `bin:"hoverIndicatorRadius,optional"`
	HoverIndicatorTextureName       *string                  `bin:"hoverIndicatorTextureName,optional"`
	AreaIndicatorRadius             *float32                 `bin:"areaIndicatorRadius,optional"`
	AreaIndicatorTextureName        *string                  `bin:"areaIndicatorTextureName,optional"`
	SearchTags                      []string                 `bin:"searchTags,optional"`
	StatsUIData                     map[uint8]float32        `bin:"statsUiData,optional"`
	Unk0x9836cd87                   *uint8                   `bin:"unk_0x9836cd87,optional"`
	PathHashToSelf                  *propbin.PathHash        `bin:"pathHashToSelf,optional"`
}

type AttackSlotData struct {
	AttackName                                   *string  `bin:"mAttackName,optional"`
	AttackCastTime                               *float32 `bin:"mAttackCastTime,optional"`
	AttackTotalTime                              *float32 `bin:"mAttackTotalTime,optional"`
	AttackDelayCastOffsetPercent                 *float32 `bin:"mAttackDelayCastOffsetPercent,optional"`
	AttackDelayCastOffsetPercentAttackSpeedRatio *float32 `bin:"mAttackDelayCastOffsetPercentAttackSpeedRatio,optional"`
	AttackProbability                            *float32 `bin:"mAttackProbability,optional"`
	AttackCastTimeOverride                       *float32 `bin:"mAttackCastTimeOverride,optional"`
}

type AbilityResourceSlotInfo struct {
	Type                        *AbilityResourceType `bin:"arType,optional"`
	Base                        *float32             `bin:"arBase,optional"`
	PerLevel                    *float32             `bin:"arPerLevel,optional"`
	BaseStaticRegen             *float32             `bin:"arBaseStaticRegen,optional"`
	RegenPerLevel               *float32             `bin:"arRegenPerLevel,optional"`
	HasRegenText                *bool                `bin:"arHasRegenText,optional"`
	AllowMaxValueToBeOverridden *bool                `bin:"arAllowMaxValueToBeOverridden,optional"`
	DisplayAsPips               *bool                `bin:"arDisplayAsPips,optional"`
	IncrementsInPips            *uint8               `bin:"arIncrements,optional"`
	MaxSegments                 *int32               `bin:"arMaxSegments,optional"`
}

type CharacterToolData struct {
	SearchTags          *string  `bin:"searchTags,optional"`
	SearchTagsSecondary *string  `bin:"searchTagsSecondary,optional"`
	ChampionID          *int32   `bin:"championId,optional"`
	Description         *string  `bin:"description,optional"`
	Roles               *string  `bin:"roles,optional"`
	Difficulty          *uint8   `bin:"difficulty,optional"`
	PostAttackMoveDelay *float32 `bin:"postAttackMoveDelay,optional"`
	SoulGivenOnDeath    *float32 `bin:"soulGivenOnDeath,optional"`
}

func registerCharacter(b *propbin.Builder) {
	propbin.Record[CharacterRecord](b, "CharacterRecord", propbin.AsAsset())
	propbin.Record[AttackSlotData](b, "AttackSlotData")
	propbin.Record[AbilityResourceSlotInfo](b, "AbilityResourceSlotInfo")
	propbin.Record[CharacterToolData](b, "CharacterToolData")
}
