package schema

import propbin "github.com/reoring/propbin"

type ApplyDamageBlock struct {
	Target               EnumScriptValueGet `bin:"target,optional"`
	Damage               EnumScriptValueGet `bin:"damage"`
	Source               *uint8             `bin:"source,optional"`
	DamageType           *uint8             `bin:"damageType,optional"`
	SpellShieldBlockable *bool              `bin:"spellShieldBlockable,optional"`
}

type HealBlock struct {
	Target  EnumScriptValueGet `bin:"target,optional"`
	Amount  EnumScriptValueGet `bin:"amount"`
	IsRegen *bool              `bin:"isRegen,optional"`
}

type ShieldBlock struct {
	Target    EnumScriptValueGet `bin:"target,optional"`
	Amount    EnumScriptValueGet `bin:"amount"`
	Duration  *float32           `bin:"duration,optional"`
	MagicOnly *bool              `bin:"magicOnly,optional"`
}

type AddBuffBlock struct {
	Target   EnumScriptValueGet `bin:"target,optional"`
	BuffName string             `bin:"buffName"`
	Stacks   *uint16            `bin:"stacks,optional"`
	Duration EnumScriptValueGet `bin:"duration,optional"`
}

type RemoveBuffBlock struct {
	Target    EnumScriptValueGet `bin:"target,optional"`
	BuffName  string             `bin:"buffName"`
	AllStacks *bool              `bin:"allStacks,optional"`
}

type SpellCastBlock struct {
	Slot               uint8              `bin:"slot"`
	TargetPosition     EnumScriptValueGet `bin:"targetPosition,optional"`
	OverrideForceLevel *uint8             `bin:"overrideForceLevel,optional"`
}

type SpawnMinionBlock struct {
	CharacterName string             `bin:"characterName"`
	Position      EnumScriptValueGet `bin:"position,optional"`
	Team          *uint8             `bin:"team,optional"`
	IsWard        *bool              `bin:"isWard,optional"`
}

type SpawnMissileBlock struct {
	MissileName string             `bin:"missileName"`
	Start       EnumScriptValueGet `bin:"start,optional"`
	End         EnumScriptValueGet `bin:"end,optional"`
	Speed       *float32           `bin:"speed,optional"`
}

type SpawnParticleBlock struct {
	Effect     propbin.Link       `bin:"effect"`
	BindTarget EnumScriptValueGet `bin:"bindTarget,optional"`
	BoneName   *string            `bin:"boneName,optional"`
	Lifetime   *float32           `bin:"lifetime,optional"`
}

type StopParticleBlock struct {
	EffectVar string `bin:"effectVar"`
}

type PlaySoundBlock struct {
	EventName    string             `bin:"eventName"`
	Target       EnumScriptValueGet `bin:"target,optional"`
	FollowTarget *bool              `bin:"followTarget,optional"`
}

type PlayAnimationBlock struct {
	AnimationName string             `bin:"animationName"`
	Target        EnumScriptValueGet `bin:"target,optional"`
	Speed         *float32           `bin:"speed,optional"`
	Loop          *bool              `bin:"loop,optional"`
}

type DashBlock struct {
	Target      EnumScriptValueGet `bin:"target,optional"`
	Destination EnumScriptValueGet `bin:"destination"`
	Speed       float32            `bin:"speed"`
	Gravity     *float32           `bin:"gravity,optional"`
	KeepFacing  *bool              `bin:"keepFacing,optional"`
}

type TeleportBlock struct {
	Target      EnumScriptValueGet `bin:"target,optional"`
	Destination EnumScriptValueGet `bin:"destination"`
}

type KnockbackBlock struct {
	Target   EnumScriptValueGet `bin:"target,optional"`
	Distance float32            `bin:"distance"`
	Duration *float32           `bin:"duration,optional"`
}

type ApplyStunBlock struct {
	Target   EnumScriptValueGet `bin:"target,optional"`
	Duration EnumScriptValueGet `bin:"duration"`
}

type ApplySlowBlock struct {
	Target   EnumScriptValueGet `bin:"target,optional"`
	Percent  EnumScriptValueGet `bin:"percent"`
	Duration *float32           `bin:"duration,optional"`
}

type ApplySilenceBlock struct {
	Target   EnumScriptValueGet `bin:"target,optional"`
	Duration float32            `bin:"duration"`
}

type ApplyRootBlock struct {
	Target   EnumScriptValueGet `bin:"target,optional"`
	Duration float32            `bin:"duration"`
}

type CleanseBlock struct {
	Target EnumScriptValueGet `bin:"target,optional"`
}

type SetStatBlock struct {
	Target EnumScriptValueGet `bin:"target,optional"`
	Stat   uint8              `bin:"stat"`
	Value  EnumScriptValueGet `bin:"value"`
}

type IncStatBlock struct {
	Target EnumScriptValueGet `bin:"target,optional"`
	Stat   uint8              `bin:"stat"`
	Delta  EnumScriptValueGet `bin:"delta"`
}

type IncPermanentStatBlock struct {
	Target EnumScriptValueGet `bin:"target,optional"`
	Stat   uint8              `bin:"stat"`
	Delta  EnumScriptValueGet `bin:"delta"`
}

type SetCooldownBlock struct {
	Slot     uint8              `bin:"slot"`
	Cooldown EnumScriptValueGet `bin:"cooldown"`
}

type ReduceCooldownBlock struct {
	Slot    uint8              `bin:"slot"`
	Amount  EnumScriptValueGet `bin:"amount"`
	Percent *bool              `bin:"percent,optional"`
}

type GiveGoldBlock struct {
	Target           EnumScriptValueGet `bin:"target,optional"`
	Amount           EnumScriptValueGet `bin:"amount"`
	ShowFloatingText *bool              `bin:"showFloatingText,optional"`
}

type GiveExperienceBlock struct {
	Target EnumScriptValueGet `bin:"target,optional"`
	Amount EnumScriptValueGet `bin:"amount"`
}

type RevealUnitBlock struct {
	Target   EnumScriptValueGet `bin:"target,optional"`
	Duration *float32           `bin:"duration,optional"`
	Team     *uint8             `bin:"team,optional"`
}

type AddPositionPerceptionBubbleBlock struct {
	Position      EnumScriptValueGet `bin:"position"`
	Radius        float32            `bin:"radius"`
	Duration      *float32           `bin:"duration,optional"`
	RevealStealth *bool              `bin:"revealStealth,optional"`
}

type SetTargetableBlock struct {
	Target     EnumScriptValueGet `bin:"target,optional"`
	Targetable bool               `bin:"targetable"`
}

type SetInvulnerableBlock struct {
	Target       EnumScriptValueGet `bin:"target,optional"`
	Invulnerable bool               `bin:"invulnerable"`
}

type SetGhostedBlock struct {
	Target  EnumScriptValueGet `bin:"target,optional"`
	Ghosted bool               `bin:"ghosted"`
}

type ForceAttackBlock struct {
	Attacker EnumScriptValueGet `bin:"attacker,optional"`
	Target   EnumScriptValueGet `bin:"target"`
}

type IssueOrderBlock struct {
	Unit     EnumScriptValueGet `bin:"unit,optional"`
	Order    uint8              `bin:"order"`
	Position EnumScriptValueGet `bin:"position,optional"`
}

type FaceDirectionBlock struct {
	Unit      EnumScriptValueGet `bin:"unit,optional"`
	Direction EnumScriptValueGet `bin:"direction"`
}

type SetAnimationStateBlock struct {
	Unit  EnumScriptValueGet `bin:"unit,optional"`
	State string             `bin:"state"`
}

type OverrideAutoAttackBlock struct {
	SpellName    string `bin:"spellName"`
	CancelAttack *bool  `bin:"cancelAttack,optional"`
}

type RemoveOverrideAutoAttackBlock struct {
	CancelAttack *bool `bin:"cancelAttack,optional"`
}

type SealSpellBlock struct {
	Slot   uint8 `bin:"slot"`
	Sealed bool  `bin:"sealed"`
}

type SwapSpellBlock struct {
	Slot      uint8  `bin:"slot"`
	SpellName string `bin:"spellName"`
}

type SetSpellToolTipVarBlock struct {
	Slot  uint8              `bin:"slot"`
	Index uint8              `bin:"index"`
	Value EnumScriptValueGet `bin:"value"`
}

type SetBuffToolTipVarBlock struct {
	Index uint8              `bin:"index"`
	Value EnumScriptValueGet `bin:"value"`
}

type SetResourceBlock struct {
	Target EnumScriptValueGet `bin:"target,optional"`
	Value  EnumScriptValueGet `bin:"value"`
}

type IncResourceBlock struct {
	Target EnumScriptValueGet `bin:"target,optional"`
	Delta  EnumScriptValueGet `bin:"delta"`
}

type KillUnitBlock struct {
	Target EnumScriptValueGet `bin:"target,optional"`
	Killer EnumScriptValueGet `bin:"killer,optional"`
}

type ReviveBlock struct {
	Target        EnumScriptValueGet `bin:"target,optional"`
	HealthPercent *float32           `bin:"healthPercent,optional"`
}

type ChangeSkinBlock struct {
	Target EnumScriptValueGet `bin:"target,optional"`
	SkinID int32              `bin:"skinID"`
}

type SetCameraBlock struct {
	Position     EnumScriptValueGet `bin:"position,optional"`
	LockDuration *float32           `bin:"lockDuration,optional"`
}

type ShowFloatingTextBlock struct {
	Target  EnumScriptValueGet `bin:"target,optional"`
	TextKey string             `bin:"textKey"`
	Color   *propbin.Color     `bin:"color,optional"`
	Value   EnumScriptValueGet `bin:"value,optional"`
}

type ShowHudMessageBlock struct {
	MessageKey string   `bin:"messageKey"`
	Duration   *float32 `bin:"duration,optional"`
	Team       *uint8   `bin:"team,optional"`
}

type SetStatusBlock struct {
	Target  EnumScriptValueGet `bin:"target,optional"`
	Status  uint32             `bin:"status"`
	Enabled bool               `bin:"enabled"`
}

type AddTrapBlock struct {
	Position      EnumScriptValueGet `bin:"position"`
	CharacterName string             `bin:"characterName"`
	ArmTime       *float32           `bin:"armTime,optional"`
}

type CreateCircularAreaBlock struct {
	Center   EnumScriptValueGet `bin:"center"`
	Radius   float32            `bin:"radius"`
	Duration float32            `bin:"duration"`
	OnEnter  *ScriptSequence    `bin:"onEnter,optional,indirect"`
	OnExit   *ScriptSequence    `bin:"onExit,optional,indirect"`
}

type ForEachUnitInRadiusBlock struct {
	Center    EnumScriptValueGet  `bin:"center"`
	Radius    float32             `bin:"radius"`
	OutputVar string              `bin:"outputVar"`
	Filter    EnumScriptCondition `bin:"filter,optional"`
	Sequence  *ScriptSequence     `bin:"sequence,optional,indirect"`
}

type ForEachUnitInConeBlock struct {
	Origin    EnumScriptValueGet `bin:"origin"`
	Direction EnumScriptValueGet `bin:"direction"`
	Angle     float32            `bin:"angle"`
	Range     float32            `bin:"range"`
	OutputVar string             `bin:"outputVar"`
	Sequence  *ScriptSequence    `bin:"sequence,optional,indirect"`
}

type RandomChanceBlock struct {
	Chance   EnumScriptValueGet `bin:"chance"`
	Sequence *ScriptSequence    `bin:"sequence,optional,indirect"`
}

type SwitchBlock struct {
	Value   EnumScriptValueGet       `bin:"value"`
	Cases   map[int32]ScriptSequence `bin:"cases,optional"`
	Default *ScriptSequence          `bin:"default,optional,indirect"`
}

type TryBlock struct {
	Sequence *ScriptSequence `bin:"sequence,optional,indirect"`
	OnFail   *ScriptSequence `bin:"onFail,optional,indirect"`
}

type LogBlock struct {
	Message string             `bin:"message"`
	Value   EnumScriptValueGet `bin:"value,optional"`
}

type AssertBlock struct {
	Condition EnumScriptCondition `bin:"condition"`
	Message   *string             `bin:"message,optional"`
}

type SetVisibilityBlock struct {
	Target  EnumScriptValueGet `bin:"target,optional"`
	Visible bool               `bin:"visible"`
	Fade    *float32           `bin:"fade,optional"`
}

type SetScaleBlock struct {
	Target    EnumScriptValueGet `bin:"target,optional"`
	Scale     EnumScriptValueGet `bin:"scale"`
	BlendTime *float32           `bin:"blendTime,optional"`
}

type AddTetherBlock struct {
	Source      EnumScriptValueGet `bin:"source,optional"`
	Target      EnumScriptValueGet `bin:"target"`
	MaxDistance float32            `bin:"maxDistance"`
	OnBreak     *ScriptSequence    `bin:"onBreak,optional,indirect"`
}

type BreakTetherBlock struct {
	TetherVar string `bin:"tetherVar"`
}

type AddShieldBreakListenerBlock struct {
	ShieldVar string          `bin:"shieldVar"`
	Sequence  *ScriptSequence `bin:"sequence,optional,indirect"`
}

type StartChannelBlock struct {
	Duration      float32         `bin:"duration"`
	Interruptible *bool           `bin:"interruptible,optional"`
	OnComplete    *ScriptSequence `bin:"onComplete,optional,indirect"`
	OnInterrupt   *ScriptSequence `bin:"onInterrupt,optional,indirect"`
}

type StopChannelBlock struct {
	Reason *uint8 `bin:"reason,optional"`
}

type SetMovementBlock struct {
	Target  EnumScriptValueGet `bin:"target,optional"`
	CanMove bool               `bin:"canMove"`
}

type SetCastingBlock struct {
	Target  EnumScriptValueGet `bin:"target,optional"`
	CanCast bool               `bin:"canCast"`
}

type SetAttackingBlock struct {
	Target    EnumScriptValueGet `bin:"target,optional"`
	CanAttack bool               `bin:"canAttack"`
}

type CasterGet struct{}

type OwnerGet struct{}

type TargetGet struct{}

type AttackerGet struct{}

type UnitPositionGet struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type UnitFacingGet struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type UnitStatGet struct {
	Unit      EnumScriptValueGet `bin:"unit,optional"`
	Stat      uint8              `bin:"stat"`
	BonusOnly *bool              `bin:"bonusOnly,optional"`
}

type UnitHealthGet struct {
	Unit    EnumScriptValueGet `bin:"unit,optional"`
	Percent *bool              `bin:"percent,optional"`
	Missing *bool              `bin:"missing,optional"`
}

type UnitResourceGet struct {
	Unit    EnumScriptValueGet `bin:"unit,optional"`
	Percent *bool              `bin:"percent,optional"`
}

type UnitLevelGet struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type SpellLevelGet struct {
	Slot uint8 `bin:"slot"`
}

type SpellCooldownGet struct {
	Slot      uint8 `bin:"slot"`
	Remaining *bool `bin:"remaining,optional"`
}

type BuffStacksGet struct {
	Unit     EnumScriptValueGet `bin:"unit,optional"`
	BuffName string             `bin:"buffName"`
}

type BuffDurationGet struct {
	Unit      EnumScriptValueGet `bin:"unit,optional"`
	BuffName  string             `bin:"buffName"`
	Remaining *bool              `bin:"remaining,optional"`
}

type DistanceGet struct {
	From EnumScriptValueGet `bin:"from"`
	To   EnumScriptValueGet `bin:"to"`
}

type DirectionGet struct {
	From      EnumScriptValueGet `bin:"from"`
	To        EnumScriptValueGet `bin:"to"`
	Normalize *bool              `bin:"normalize,optional"`
}

type OffsetPositionGet struct {
	Position         EnumScriptValueGet `bin:"position"`
	Offset           *propbin.Vec3      `bin:"offset,optional"`
	RelativeToFacing *bool              `bin:"relativeToFacing,optional"`
}

type RandomFloatGet struct {
	Min float32 `bin:"min"`
	Max float32 `bin:"max"`
}

type RandomIntGet struct {
	Min int32 `bin:"min"`
	Max int32 `bin:"max"`
}

type ClampGet struct {
	Value EnumScriptValueGet `bin:"value"`
	Min   *float32           `bin:"min,optional"`
	Max   *float32           `bin:"max,optional"`
}

type LerpGet struct {
	From  EnumScriptValueGet `bin:"from"`
	To    EnumScriptValueGet `bin:"to"`
	Alpha EnumScriptValueGet `bin:"alpha"`
}

type CalculationGet struct {
	Calculation EnumGameCalculation `bin:"calculation"`
}

type SpellDataValueGet struct {
	Slot      uint8        `bin:"slot"`
	ValueName propbin.Hash `bin:"valueName"`
}

type TeamGet struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type UnitCountInRadiusGet struct {
	Center EnumScriptValueGet  `bin:"center"`
	Radius float32             `bin:"radius"`
	Filter EnumScriptCondition `bin:"filter,optional"`
}

type NearestUnitGet struct {
	Center EnumScriptValueGet  `bin:"center"`
	Radius float32             `bin:"radius"`
	Filter EnumScriptCondition `bin:"filter,optional"`
}

type MissilePositionGet struct {
	MissileVar string `bin:"missileVar"`
}

type CursorPositionGet struct {
	ClampToRange *float32 `bin:"clampToRange,optional"`
}

type ChampionNameGet struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type SkinIDGet struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type IsChampionCondition struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type IsMinionCondition struct {
	Unit         EnumScriptValueGet `bin:"unit,optional"`
	IncludeWards *bool              `bin:"includeWards,optional"`
}

type IsMonsterCondition struct {
	Unit     EnumScriptValueGet `bin:"unit,optional"`
	EpicOnly *bool              `bin:"epicOnly,optional"`
}

type IsStructureCondition struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type IsDeadCondition struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type IsAllyCondition struct {
	Unit  EnumScriptValueGet `bin:"unit,optional"`
	Other EnumScriptValueGet `bin:"other,optional"`
}

type IsEnemyCondition struct {
	Unit  EnumScriptValueGet `bin:"unit,optional"`
	Other EnumScriptValueGet `bin:"other,optional"`
}

type HasBuffCondition struct {
	Unit      EnumScriptValueGet `bin:"unit,optional"`
	BuffName  string             `bin:"buffName"`
	MinStacks *uint16            `bin:"minStacks,optional"`
}

type HasBuffOfTypeCondition struct {
	Unit     EnumScriptValueGet `bin:"unit,optional"`
	BuffType uint8              `bin:"buffType"`
}

type IsInRangeCondition struct {
	From  EnumScriptValueGet `bin:"from,optional"`
	To    EnumScriptValueGet `bin:"to"`
	Range float32            `bin:"range"`
}

type IsInBrushCondition struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type IsVisibleCondition struct {
	Unit   EnumScriptValueGet `bin:"unit,optional"`
	ToTeam *uint8             `bin:"toTeam,optional"`
}

type IsMovingCondition struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

type IsCastingCondition struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
	Slot *uint8             `bin:"slot,optional"`
}

type IsCrowdControlledCondition struct {
	Unit     EnumScriptValueGet `bin:"unit,optional"`
	HardOnly *bool              `bin:"hardOnly,optional"`
}

type HealthBelowCondition struct {
	Unit    EnumScriptValueGet `bin:"unit,optional"`
	Percent float32            `bin:"percent"`
}

type ResourceBelowCondition struct {
	Unit    EnumScriptValueGet `bin:"unit,optional"`
	Percent float32            `bin:"percent"`
}

type SpellReadyCondition struct {
	Slot uint8 `bin:"slot"`
}

type SpellLearnedCondition struct {
	Slot uint8 `bin:"slot"`
}

type HasItemCondition struct {
	Unit   EnumScriptValueGet `bin:"unit,optional"`
	ItemID int32              `bin:"itemID"`
}

type IsSkinCondition struct {
	Unit   EnumScriptValueGet `bin:"unit,optional"`
	SkinID int32              `bin:"skinID"`
}

type IsCritCondition struct{}

type IsAutoAttackCondition struct {
	IncludeOnHit *bool `bin:"includeOnHit,optional"`
}

type DamageTypeCondition struct {
	DamageType uint8 `bin:"damageType"`
}

type IsFacingCondition struct {
	Unit   EnumScriptValueGet `bin:"unit,optional"`
	Target EnumScriptValueGet `bin:"target"`
	Angle  *float32           `bin:"angle,optional"`
}

type GameModeCondition struct {
	Mode string `bin:"mode"`
}

type MapCondition struct {
	MapID uint32 `bin:"mapID"`
}

type RandomChanceCondition struct {
	Chance float32 `bin:"chance"`
}

type TeamCondition struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
	Team uint8              `bin:"team"`
}

type IsTurretAggroCondition struct {
	Unit EnumScriptValueGet `bin:"unit,optional"`
}

func (*ApplyDamageBlock) scriptBlock()                 {}
func (*HealBlock) scriptBlock()                        {}
func (*ShieldBlock) scriptBlock()                      {}
func (*AddBuffBlock) scriptBlock()                     {}
func (*RemoveBuffBlock) scriptBlock()                  {}
func (*SpellCastBlock) scriptBlock()                   {}
func (*SpawnMinionBlock) scriptBlock()                 {}
func (*SpawnMissileBlock) scriptBlock()                {}
func (*SpawnParticleBlock) scriptBlock()               {}
func (*StopParticleBlock) scriptBlock()                {}
func (*PlaySoundBlock) scriptBlock()                   {}
func (*PlayAnimationBlock) scriptBlock()               {}
func (*DashBlock) scriptBlock()                        {}
func (*TeleportBlock) scriptBlock()                    {}
func (*KnockbackBlock) scriptBlock()                   {}
func (*ApplyStunBlock) scriptBlock()                   {}
func (*ApplySlowBlock) scriptBlock()                   {}
func (*ApplySilenceBlock) scriptBlock()                {}
func (*ApplyRootBlock) scriptBlock()                   {}
func (*CleanseBlock) scriptBlock()                     {}
func (*SetStatBlock) scriptBlock()                     {}
func (*IncStatBlock) scriptBlock()                     {}
func (*IncPermanentStatBlock) scriptBlock()            {}
func (*SetCooldownBlock) scriptBlock()                 {}
func (*ReduceCooldownBlock) scriptBlock()              {}
func (*GiveGoldBlock) scriptBlock()                    {}
func (*GiveExperienceBlock) scriptBlock()              {}
func (*RevealUnitBlock) scriptBlock()                  {}
func (*AddPositionPerceptionBubbleBlock) scriptBlock() {}
func (*SetTargetableBlock) scriptBlock()               {}
func (*SetInvulnerableBlock) scriptBlock()             {}
func (*SetGhostedBlock) scriptBlock()                  {}
func (*ForceAttackBlock) scriptBlock()                 {}
func (*IssueOrderBlock) scriptBlock()                  {}
func (*FaceDirectionBlock) scriptBlock()               {}
func (*SetAnimationStateBlock) scriptBlock()           {}
func (*OverrideAutoAttackBlock) scriptBlock()          {}
func (*RemoveOverrideAutoAttackBlock) scriptBlock()    {}
func (*SealSpellBlock) scriptBlock()                   {}
func (*SwapSpellBlock) scriptBlock()                   {}
func (*SetSpellToolTipVarBlock) scriptBlock()          {}
func (*SetBuffToolTipVarBlock) scriptBlock()           {}
func (*SetResourceBlock) scriptBlock()                 {}
func (*IncResourceBlock) scriptBlock()                 {}
func (*KillUnitBlock) scriptBlock()                    {}
func (*ReviveBlock) scriptBlock()                      {}
func (*ChangeSkinBlock) scriptBlock()                  {}
func (*SetCameraBlock) scriptBlock()                   {}
func (*ShowFloatingTextBlock) scriptBlock()            {}
func (*ShowHudMessageBlock) scriptBlock()              {}
func (*SetStatusBlock) scriptBlock()                   {}
func (*AddTrapBlock) scriptBlock()                     {}
func (*CreateCircularAreaBlock) scriptBlock()          {}
func (*ForEachUnitInRadiusBlock) scriptBlock()         {}
func (*ForEachUnitInConeBlock) scriptBlock()           {}
func (*RandomChanceBlock) scriptBlock()                {}
func (*SwitchBlock) scriptBlock()                      {}
func (*TryBlock) scriptBlock()                         {}
func (*LogBlock) scriptBlock()                         {}
func (*AssertBlock) scriptBlock()                      {}
func (*SetVisibilityBlock) scriptBlock()               {}
func (*SetScaleBlock) scriptBlock()                    {}
func (*AddTetherBlock) scriptBlock()                   {}
func (*BreakTetherBlock) scriptBlock()                 {}
func (*AddShieldBreakListenerBlock) scriptBlock()      {}
func (*StartChannelBlock) scriptBlock()                {}
func (*StopChannelBlock) scriptBlock()                 {}
func (*SetMovementBlock) scriptBlock()                 {}
func (*SetCastingBlock) scriptBlock()                  {}
func (*SetAttackingBlock) scriptBlock()                {}

func (*CasterGet) scriptValueGet()            {}
func (*OwnerGet) scriptValueGet()             {}
func (*TargetGet) scriptValueGet()            {}
func (*AttackerGet) scriptValueGet()          {}
func (*UnitPositionGet) scriptValueGet()      {}
func (*UnitFacingGet) scriptValueGet()        {}
func (*UnitStatGet) scriptValueGet()          {}
func (*UnitHealthGet) scriptValueGet()        {}
func (*UnitResourceGet) scriptValueGet()      {}
func (*UnitLevelGet) scriptValueGet()         {}
func (*SpellLevelGet) scriptValueGet()        {}
func (*SpellCooldownGet) scriptValueGet()     {}
func (*BuffStacksGet) scriptValueGet()        {}
func (*BuffDurationGet) scriptValueGet()      {}
func (*DistanceGet) scriptValueGet()          {}
func (*DirectionGet) scriptValueGet()         {}
func (*OffsetPositionGet) scriptValueGet()    {}
func (*RandomFloatGet) scriptValueGet()       {}
func (*RandomIntGet) scriptValueGet()         {}
func (*ClampGet) scriptValueGet()             {}
func (*LerpGet) scriptValueGet()              {}
func (*CalculationGet) scriptValueGet()       {}
func (*SpellDataValueGet) scriptValueGet()    {}
func (*TeamGet) scriptValueGet()              {}
func (*UnitCountInRadiusGet) scriptValueGet() {}
func (*NearestUnitGet) scriptValueGet()       {}
func (*MissilePositionGet) scriptValueGet()   {}
func (*CursorPositionGet) scriptValueGet()    {}
func (*ChampionNameGet) scriptValueGet()      {}
func (*SkinIDGet) scriptValueGet()            {}

func (*IsChampionCondition) scriptCondition()        {}
func (*IsMinionCondition) scriptCondition()          {}
func (*IsMonsterCondition) scriptCondition()         {}
func (*IsStructureCondition) scriptCondition()       {}
func (*IsDeadCondition) scriptCondition()            {}
func (*IsAllyCondition) scriptCondition()            {}
func (*IsEnemyCondition) scriptCondition()           {}
func (*HasBuffCondition) scriptCondition()           {}
func (*HasBuffOfTypeCondition) scriptCondition()     {}
func (*IsInRangeCondition) scriptCondition()         {}
func (*IsInBrushCondition) scriptCondition()         {}
func (*IsVisibleCondition) scriptCondition()         {}
func (*IsMovingCondition) scriptCondition()          {}
func (*IsCastingCondition) scriptCondition()         {}
func (*IsCrowdControlledCondition) scriptCondition() {}
func (*HealthBelowCondition) scriptCondition()       {}
func (*ResourceBelowCondition) scriptCondition()     {}
func (*SpellReadyCondition) scriptCondition()        {}
func (*SpellLearnedCondition) scriptCondition()      {}
func (*HasItemCondition) scriptCondition()           {}
func (*IsSkinCondition) scriptCondition()            {}
func (*IsCritCondition) scriptCondition()            {}
func (*IsAutoAttackCondition) scriptCondition()      {}
func (*DamageTypeCondition) scriptCondition()        {}
func (*IsFacingCondition) scriptCondition()          {}
func (*GameModeCondition) scriptCondition()          {}
func (*MapCondition) scriptCondition()               {}
func (*RandomChanceCondition) scriptCondition()      {}
func (*TeamCondition) scriptCondition()              {}
func (*IsTurretAggroCondition) scriptCondition()     {}

func registerScriptActions(b *propbin.Builder) {
	propbin.Record[ApplyDamageBlock](b, "ApplyDamageBlock")
	propbin.Record[HealBlock](b, "HealBlock")
	propbin.Record[ShieldBlock](b, "ShieldBlock")
	propbin.Record[AddBuffBlock](b, "AddBuffBlock")
	propbin.Record[RemoveBuffBlock](b, "RemoveBuffBlock")
	propbin.Record[SpellCastBlock](b, "SpellCastBlock")
	propbin.Record[SpawnMinionBlock](b, "SpawnMinionBlock")
	propbin.Record[SpawnMissileBlock](b, "SpawnMissileBlock")
	propbin.Record[SpawnParticleBlock](b, "SpawnParticleBlock")
	propbin.Record[StopParticleBlock](b, "StopParticleBlock")
	propbin.Record[PlaySoundBlock](b, "PlaySoundBlock")
	propbin.Record[PlayAnimationBlock](b, "PlayAnimationBlock")
	propbin.Record[DashBlock](b, "DashBlock")
	propbin.Record[TeleportBlock](b, "TeleportBlock")
	propbin.Record[KnockbackBlock](b, "KnockbackBlock")
	propbin.Record[ApplyStunBlock](b, "ApplyStunBlock")
	propbin.Record[ApplySlowBlock](b, "ApplySlowBlock")
	propbin.Record[ApplySilenceBlock](b, "ApplySilenceBlock")
	propbin.Record[ApplyRootBlock](b, "ApplyRootBlock")
	propbin.Record[CleanseBlock](b, "CleanseBlock")
	propbin.Record[SetStatBlock](b, "SetStatBlock")
	propbin.Record[IncStatBlock](b, "IncStatBlock")
	propbin.Record[IncPermanentStatBlock](b, "IncPermanentStatBlock")
	propbin.Record[SetCooldownBlock](b, "SetCooldownBlock")
	propbin.Record[ReduceCooldownBlock](b, "ReduceCooldownBlock")
	propbin.Record[GiveGoldBlock](b, "GiveGoldBlock")
	propbin.Record[GiveExperienceBlock](b, "GiveExperienceBlock")
	propbin.Record[RevealUnitBlock](b, "RevealUnitBlock")
	propbin.Record[AddPositionPerceptionBubbleBlock](b, "AddPositionPerceptionBubbleBlock")
	propbin.Record[SetTargetableBlock](b, "SetTargetableBlock")
	propbin.Record[SetInvulnerableBlock](b, "SetInvulnerableBlock")
	propbin.Record[SetGhostedBlock](b, "SetGhostedBlock")
	propbin.Record[ForceAttackBlock](b, "ForceAttackBlock")
	propbin.Record[IssueOrderBlock](b, "IssueOrderBlock")
	propbin.Record[FaceDirectionBlock](b, "FaceDirectionBlock")
	propbin.Record[SetAnimationStateBlock](b, "SetAnimationStateBlock")
	propbin.Record[OverrideAutoAttackBlock](b, "OverrideAutoAttackBlock")
	propbin.Record[RemoveOverrideAutoAttackBlock](b, "RemoveOverrideAutoAttackBlock")
	propbin.Record[SealSpellBlock](b, "SealSpellBlock")
	propbin.Record[SwapSpellBlock](b, "SwapSpellBlock")
	propbin.Record[SetSpellToolTipVarBlock](b, "SetSpellToolTipVarBlock")
	propbin.Record[SetBuffToolTipVarBlock](b, "SetBuffToolTipVarBlock")
	propbin.Record[SetResourceBlock](b, "SetResourceBlock")
	propbin.Record[IncResourceBlock](b, "IncResourceBlock")
	propbin.Record[KillUnitBlock](b, "KillUnitBlock")
	propbin.Record[ReviveBlock](b, "ReviveBlock")
	propbin.Record[ChangeSkinBlock](b, "ChangeSkinBlock")
	propbin.Record[SetCameraBlock](b, "SetCameraBlock")
	propbin.Record[ShowFloatingTextBlock](b, "ShowFloatingTextBlock")
	propbin.Record[ShowHudMessageBlock](b, "ShowHudMessageBlock")
	propbin.Record[SetStatusBlock](b, "SetStatusBlock")
	propbin.Record[AddTrapBlock](b, "AddTrapBlock")
	propbin.Record[CreateCircularAreaBlock](b, "CreateCircularAreaBlock")
	propbin.Record[ForEachUnitInRadiusBlock](b, "ForEachUnitInRadiusBlock")
	propbin.Record[ForEachUnitInConeBlock](b, "ForEachUnitInConeBlock")
	propbin.Record[RandomChanceBlock](b, "RandomChanceBlock")
	propbin.Record[SwitchBlock](b, "SwitchBlock")
	propbin.Record[TryBlock](b, "TryBlock")
	propbin.Record[LogBlock](b, "LogBlock")
	propbin.Record[AssertBlock](b, "AssertBlock")
	propbin.Record[SetVisibilityBlock](b, "SetVisibilityBlock")
	propbin.Record[SetScaleBlock](b, "SetScaleBlock")
	propbin.Record[AddTetherBlock](b, "AddTetherBlock")
	propbin.Record[BreakTetherBlock](b, "BreakTetherBlock")
	propbin.Record[AddShieldBreakListenerBlock](b, "AddShieldBreakListenerBlock")
	propbin.Record[StartChannelBlock](b, "StartChannelBlock")
	propbin.Record[StopChannelBlock](b, "StopChannelBlock")
	propbin.Record[SetMovementBlock](b, "SetMovementBlock")
	propbin.Record[SetCastingBlock](b, "SetCastingBlock")
	propbin.Record[SetAttackingBlock](b, "SetAttackingBlock")
	propbin.Record[CasterGet](b, "CasterGet")
	propbin.Record[OwnerGet](b, "OwnerGet")
	propbin.Record[TargetGet](b, "TargetGet")
	propbin.Record[AttackerGet](b, "AttackerGet")
	propbin.Record[UnitPositionGet](b, "UnitPositionGet")
	propbin.Record[UnitFacingGet](b, "UnitFacingGet")
	propbin.Record[UnitStatGet](b, "UnitStatGet")
	propbin.Record[UnitHealthGet](b, "UnitHealthGet")
	propbin.Record[UnitResourceGet](b, "UnitResourceGet")
	propbin.Record[UnitLevelGet](b, "UnitLevelGet")
	propbin.Record[SpellLevelGet](b, "SpellLevelGet")
	propbin.Record[SpellCooldownGet](b, "SpellCooldownGet")
	propbin.Record[BuffStacksGet](b, "BuffStacksGet")
	propbin.Record[BuffDurationGet](b, "BuffDurationGet")
	propbin.Record[DistanceGet](b, "DistanceGet")
	propbin.Record[DirectionGet](b, "DirectionGet")
	propbin.Record[OffsetPositionGet](b, "OffsetPositionGet")
	propbin.Record[RandomFloatGet](b, "RandomFloatGet")
	propbin.Record[RandomIntGet](b, "RandomIntGet")
	propbin.Record[ClampGet](b, "ClampGet")
	propbin.Record[LerpGet](b, "LerpGet")
	propbin.Record[CalculationGet](b, "CalculationGet")
	propbin.Record[SpellDataValueGet](b, "SpellDataValueGet")
	propbin.Record[TeamGet](b, "TeamGet")
	propbin.Record[UnitCountInRadiusGet](b, "UnitCountInRadiusGet")
	propbin.Record[NearestUnitGet](b, "NearestUnitGet")
	propbin.Record[MissilePositionGet](b, "MissilePositionGet")
	propbin.Record[CursorPositionGet](b, "CursorPositionGet")
	propbin.Record[ChampionNameGet](b, "ChampionNameGet")
	propbin.Record[SkinIDGet](b, "SkinIDGet")
	propbin.Record[IsChampionCondition](b, "IsChampionCondition")
	propbin.Record[IsMinionCondition](b, "IsMinionCondition")
	propbin.Record[IsMonsterCondition](b, "IsMonsterCondition")
	propbin.Record[IsStructureCondition](b, "IsStructureCondition")
	propbin.Record[IsDeadCondition](b, "IsDeadCondition")
	propbin.Record[IsAllyCondition](b, "IsAllyCondition")
	propbin.Record[IsEnemyCondition](b, "IsEnemyCondition")
	propbin.Record[HasBuffCondition](b, "HasBuffCondition")
	propbin.Record[HasBuffOfTypeCondition](b, "HasBuffOfTypeCondition")
	propbin.Record[IsInRangeCondition](b, "IsInRangeCondition")
	propbin.Record[IsInBrushCondition](b, "IsInBrushCondition")
	propbin.Record[IsVisibleCondition](b, "IsVisibleCondition")
	propbin.Record[IsMovingCondition](b, "IsMovingCondition")
	propbin.Record[IsCastingCondition](b, "IsCastingCondition")
	propbin.Record[IsCrowdControlledCondition](b, "IsCrowdControlledCondition")
	propbin.Record[HealthBelowCondition](b, "HealthBelowCondition")
	propbin.Record[ResourceBelowCondition](b, "ResourceBelowCondition")
	propbin.Record[SpellReadyCondition](b, "SpellReadyCondition")
	propbin.Record[SpellLearnedCondition](b, "SpellLearnedCondition")
	propbin.Record[HasItemCondition](b, "HasItemCondition")
	propbin.Record[IsSkinCondition](b, "IsSkinCondition")
	propbin.Record[IsCritCondition](b, "IsCritCondition")
	propbin.Record[IsAutoAttackCondition](b, "IsAutoAttackCondition")
	propbin.Record[DamageTypeCondition](b, "DamageTypeCondition")
	propbin.Record[IsFacingCondition](b, "IsFacingCondition")
	propbin.Record[GameModeCondition](b, "GameModeCondition")
	propbin.Record[MapCondition](b, "MapCondition")
	propbin.Record[RandomChanceCondition](b, "RandomChanceCondition")
	propbin.Record[TeamCondition](b, "TeamCondition")
	propbin.Record[IsTurretAggroCondition](b, "IsTurretAggroCondition")
}

func gameplayBlockCases() []propbin.CaseSpec {
	return []propbin.CaseSpec{
		propbin.Case[ApplyDamageBlock](),
		propbin.Case[HealBlock](),
		propbin.Case[ShieldBlock](),
		propbin.Case[AddBuffBlock](),
		propbin.Case[RemoveBuffBlock](),
		propbin.Case[SpellCastBlock](),
		propbin.Case[SpawnMinionBlock](),
		propbin.Case[SpawnMissileBlock](),
		propbin.Case[SpawnParticleBlock](),
		propbin.Case[StopParticleBlock](),
		propbin.Case[PlaySoundBlock](),
		propbin.Case[PlayAnimationBlock](),
		propbin.Case[DashBlock](),
		propbin.Case[TeleportBlock](),
		propbin.Case[KnockbackBlock](),
		propbin.Case[ApplyStunBlock](),
		propbin.Case[ApplySlowBlock](),
		propbin.Case[ApplySilenceBlock](),
		propbin.Case[ApplyRootBlock](),
		propbin.Case[CleanseBlock](),
		propbin.Case[SetStatBlock](),
		propbin.Case[IncStatBlock](),
		propbin.Case[IncPermanentStatBlock](),
		propbin.Case[SetCooldownBlock](),
		propbin.Case[ReduceCooldownBlock](),
		propbin.Case[GiveGoldBlock](),
		propbin.Case[GiveExperienceBlock](),
		propbin.Case[RevealUnitBlock](),
		propbin.Case[AddPositionPerceptionBubbleBlock](),
		propbin.Case[SetTargetableBlock](),
		propbin.Case[SetInvulnerableBlock](),
		propbin.Case[SetGhostedBlock](),
		propbin.Case[ForceAttackBlock](),
		propbin.Case[IssueOrderBlock](),
		propbin.Case[FaceDirectionBlock](),
		propbin.Case[SetAnimationStateBlock](),
		propbin.Case[OverrideAutoAttackBlock](),
		propbin.Case[RemoveOverrideAutoAttackBlock](),
		propbin.Case[SealSpellBlock](),
		propbin.Case[SwapSpellBlock](),
		propbin.Case[SetSpellToolTipVarBlock](),
		propbin.Case[SetBuffToolTipVarBlock](),
		propbin.Case[SetResourceBlock](),
		propbin.Case[IncResourceBlock](),
		propbin.Case[KillUnitBlock](),
		propbin.Case[ReviveBlock](),
		propbin.Case[ChangeSkinBlock](),
		propbin.Case[SetCameraBlock](),
		propbin.Case[ShowFloatingTextBlock](),
		propbin.Case[ShowHudMessageBlock](),
		propbin.Case[SetStatusBlock](),
		propbin.Case[AddTrapBlock](),
		propbin.Case[CreateCircularAreaBlock](),
		propbin.Case[ForEachUnitInRadiusBlock](),
		propbin.Case[ForEachUnitInConeBlock](),
		propbin.Case[RandomChanceBlock](),
		propbin.Case[SwitchBlock](),
		propbin.Case[TryBlock](),
		propbin.Case[LogBlock](),
		propbin.Case[AssertBlock](),
		propbin.Case[SetVisibilityBlock](),
		propbin.Case[SetScaleBlock](),
		propbin.Case[AddTetherBlock](),
		propbin.Case[BreakTetherBlock](),
		propbin.Case[AddShieldBreakListenerBlock](),
		propbin.Case[StartChannelBlock](),
		propbin.Case[StopChannelBlock](),
		propbin.Case[SetMovementBlock](),
		propbin.Case[SetCastingBlock](),
		propbin.Case[SetAttackingBlock](),
	}
}

func gameplayValueCases() []propbin.CaseSpec {
	return []propbin.CaseSpec{
		propbin.Case[CasterGet](),
		propbin.Case[OwnerGet](),
		propbin.Case[TargetGet](),
		propbin.Case[AttackerGet](),
		propbin.Case[UnitPositionGet](),
		propbin.Case[UnitFacingGet](),
		propbin.Case[UnitStatGet](),
		propbin.Case[UnitHealthGet](),
		propbin.Case[UnitResourceGet](),
		propbin.Case[UnitLevelGet](),
		propbin.Case[SpellLevelGet](),
		propbin.Case[SpellCooldownGet](),
		propbin.Case[BuffStacksGet](),
		propbin.Case[BuffDurationGet](),
		propbin.Case[DistanceGet](),
		propbin.Case[DirectionGet](),
		propbin.Case[OffsetPositionGet](),
		propbin.Case[RandomFloatGet](),
		propbin.Case[RandomIntGet](),
		propbin.Case[ClampGet](),
		propbin.Case[LerpGet](),
		propbin.Case[CalculationGet](),
		propbin.Case[SpellDataValueGet](),
		propbin.Case[TeamGet](),
		propbin.Case[UnitCountInRadiusGet](),
		propbin.Case[NearestUnitGet](),
		propbin.Case[MissilePositionGet](),
		propbin.Case[CursorPositionGet](),
		propbin.Case[ChampionNameGet](),
		propbin.Case[SkinIDGet](),
	}
}

func gameplayConditionCases() []propbin.CaseSpec {
	return []propbin.CaseSpec{
		propbin.Case[IsChampionCondition](),
		propbin.Case[IsMinionCondition](),
		propbin.Case[IsMonsterCondition](),
		propbin.Case[IsStructureCondition](),
		propbin.Case[IsDeadCondition](),
		propbin.Case[IsAllyCondition](),
		propbin.Case[IsEnemyCondition](),
		propbin.Case[HasBuffCondition](),
		propbin.Case[HasBuffOfTypeCondition](),
		propbin.Case[IsInRangeCondition](),
		propbin.Case[IsInBrushCondition](),
		propbin.Case[IsVisibleCondition](),
		propbin.Case[IsMovingCondition](),
		propbin.Case[IsCastingCondition](),
		propbin.Case[IsCrowdControlledCondition](),
		propbin.Case[HealthBelowCondition](),
		propbin.Case[ResourceBelowCondition](),
		propbin.Case[SpellReadyCondition](),
		propbin.Case[SpellLearnedCondition](),
		propbin.Case[HasItemCondition](),
		propbin.Case[IsSkinCondition](),
		propbin.Case[IsCritCondition](),
		propbin.Case[IsAutoAttackCondition](),
		propbin.Case[DamageTypeCondition](),
		propbin.Case[IsFacingCondition](),
		propbin.Case[GameModeCondition](),
		propbin.Case[MapCondition](),
		propbin.Case[RandomChanceCondition](),
		propbin.Case[TeamCondition](),
		propbin.Case[IsTurretAggroCondition](),
	}
}
