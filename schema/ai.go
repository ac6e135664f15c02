package schema

import propbin "github.com/reoring/propbin"

// EnumAiNode is one node of a behaviour tree.
type EnumAiNode interface{ aiNode() }

// EnumAiCondition is a predicate a behaviour tree branches on.
type EnumAiCondition interface{ aiCondition() }

// EnumAiTargetSelector picks a unit for an AI to act on.
type EnumAiTargetSelector interface{ aiTargetSelector() }

// AiBehaviorTree is a bot or monster brain. Nodes nest through
// EnumAiNode, so trees recurse to any depth.
type AiBehaviorTree struct {
	Name           string            `bin:"mName"`
	Root           EnumAiNode        `bin:"mRoot"`
	Blackboard     []AiBlackboardKey `bin:"mBlackboard,optional"`
	TickRate       *float32          `bin:"mTickRate,optional"`
	PathHashToSelf *propbin.PathHash `bin:"pathHashToSelf,optional"`
}

type AiBlackboardKey struct {
	Name    string   `bin:"mName"`
	Type    *uint8   `bin:"mType,optional"`
	Default *float32 `bin:"mDefault,optional"`
}

type AiDifficultyProfile struct {
	Name          string   `bin:"mName"`
	ReactionTime  *float32 `bin:"mReactionTime,optional"`
	Accuracy      *float32 `bin:"mAccuracy,optional"`
	Aggression    *float32 `bin:"mAggression,optional"`
	DodgeChance   *float32 `bin:"mDodgeChance,optional"`
	LastHitChance *float32 `bin:"mLastHitChance,optional"`
}

type AiRoleProfile struct {
	Role           uint8             `bin:"mRole"`
	Tree           *propbin.Link     `bin:"mTree,optional"`
	LanePreference *AiLanePreference `bin:"mLanePreference,optional"`
	ItemPlan       *AiItemBuildPlan  `bin:"mItemPlan,optional"`
	SkillOrder     *AiSkillOrder     `bin:"mSkillOrder,optional"`
}

type AiLanePreference struct {
	Lanes     []uint8  `bin:"mLanes,optional"`
	SwapAfter *float32 `bin:"mSwapAfter,optional"`
}

type AiItemBuildPlan struct {
	Items           []int32 `bin:"mItems,optional"`
	SellStarter     *bool   `bin:"mSellStarter,optional"`
	BuyControlWards *bool   `bin:"mBuyControlWards,optional"`
}

type AiSkillOrder struct {
	Order    []uint8 `bin:"mOrder,optional"`
	MaxFirst *uint8  `bin:"mMaxFirst,optional"`
}

type BotDifficultyTable struct {
	Profiles  map[string]propbin.Link `bin:"mProfiles,optional"`
	Roles     []AiRoleProfile         `bin:"mRoles,optional"`
	Champions map[string]propbin.Link `bin:"mChampions,optional"`
}

type TurretAiData struct {
	Tree                  *propbin.Link          `bin:"mTree,optional"`
	TargetPriority        []EnumAiTargetSelector `bin:"mTargetPriority,optional"`
	AggroOnChampionAttack *bool                  `bin:"mAggroOnChampionAttack,optional"`
}

type MinionAiData struct {
	Tree              *propbin.Link          `bin:"mTree,optional"`
	TargetPriority    []EnumAiTargetSelector `bin:"mTargetPriority,optional"`
	CallForHelpRadius *float32               `bin:"mCallForHelpRadius,optional"`
}

type JungleMonsterAiData struct {
	Tree           *propbin.Link        `bin:"mTree,optional"`
	LeashRadius    *float32             `bin:"mLeashRadius,optional"`
	ResetRegen     *float32             `bin:"mResetRegen,optional"`
	TargetSelector EnumAiTargetSelector `bin:"mTargetSelector,optional"`
}

type AiSequenceNode struct {
	Children []EnumAiNode `bin:"mChildren"`
}

type AiSelectorNode struct {
	Children []EnumAiNode `bin:"mChildren"`
}

type AiParallelNode struct {
	Children         []EnumAiNode `bin:"mChildren"`
	SuccessThreshold *uint8       `bin:"mSuccessThreshold,optional"`
}

type AiInverterNode struct {
	Child EnumAiNode `bin:"mChild"`
}

type AiRepeatNode struct {
	Child EnumAiNode `bin:"mChild"`
	Count *uint16    `bin:"mCount,optional"`
}

type AiCooldownNode struct {
	Child    EnumAiNode `bin:"mChild"`
	Cooldown float32    `bin:"mCooldown"`
}

type AiConditionNode struct {
	Condition EnumAiCondition `bin:"mCondition"`
	Child     EnumAiNode      `bin:"mChild,optional"`
}

type AiWaitNode struct {
	Seconds float32 `bin:"mSeconds"`
}

type AiMoveToNode struct {
	TargetKey    string   `bin:"mTargetKey"`
	AcceptRadius *float32 `bin:"mAcceptRadius,optional"`
}

type AiAttackTargetNode struct {
	TargetKey string `bin:"mTargetKey"`
	Chase     *bool  `bin:"mChase,optional"`
}

type AiCastSpellNode struct {
	Slot      uint8                `bin:"mSlot"`
	TargetKey *string              `bin:"mTargetKey,optional"`
	Targeting EnumAiTargetSelector `bin:"mTargeting,optional"`
}

type AiFleeNode struct {
	Distance     *float32 `bin:"mDistance,optional"`
	TowardsTower *bool    `bin:"mTowardsTower,optional"`
}

type AiPatrolNode struct {
	Points []propbin.Vec3 `bin:"mPoints,optional"`
	Loop   *bool          `bin:"mLoop,optional"`
}

type AiLeashNode struct {
	Home   *propbin.Vec3 `bin:"mHome,optional"`
	Radius *float32      `bin:"mRadius,optional"`
}

type AiAcquireTargetNode struct {
	Selector  EnumAiTargetSelector `bin:"mSelector"`
	Range     *float32             `bin:"mRange,optional"`
	OutputKey *string              `bin:"mOutputKey,optional"`
}

type AiSetBlackboardNode struct {
	Key   string             `bin:"mKey"`
	Value EnumScriptValueGet `bin:"mValue"`
}

type AiCheckBlackboardNode struct {
	Key       string              `bin:"mKey"`
	Condition EnumScriptCondition `bin:"mCondition,optional"`
}

type AiFollowNode struct {
	TargetKey string   `bin:"mTargetKey"`
	Distance  *float32 `bin:"mDistance,optional"`
}

type AiRecallNode struct {
	HealthThreshold *float32 `bin:"mHealthThreshold,optional"`
	GoldThreshold   *int32   `bin:"mGoldThreshold,optional"`
}

type AiBuyItemsNode struct {
	PlanKey *string `bin:"mPlanKey,optional"`
}

type AiLevelSpellNode struct {
	OrderKey *string `bin:"mOrderKey,optional"`
}

type AiUseSummonerNode struct {
	Slot      uint8           `bin:"mSlot"`
	Condition EnumAiCondition `bin:"mCondition,optional"`
}

type AiWardNode struct {
	Spots    []propbin.Vec3 `bin:"mSpots,optional"`
	Interval *float32       `bin:"mInterval,optional"`
}

type AiPushLaneNode struct {
	Lane *uint8 `bin:"mLane,optional"`
}

type AiGankNode struct {
	Lane             *uint8   `bin:"mLane,optional"`
	MinHealthPercent *float32 `bin:"mMinHealthPercent,optional"`
}

type AiDefendNode struct {
	StructureKey *string `bin:"mStructureKey,optional"`
}

type AiRetreatToTowerNode struct {
	HealthThreshold *float32 `bin:"mHealthThreshold,optional"`
}

type AiFarmNode struct {
	LastHitOnly *bool `bin:"mLastHitOnly,optional"`
}

type AiKiteNode struct {
	Range    *float32 `bin:"mRange,optional"`
	StepTime *float32 `bin:"mStepTime,optional"`
}

type AiDodgeSkillshotNode struct {
	ReactionTime *float32 `bin:"mReactionTime,optional"`
}

type AiFocusLowestNode struct {
	Range *float32 `bin:"mRange,optional"`
}

type AiRunScriptNode struct {
	Script *ScriptSequence `bin:"mScript,optional,indirect"`
}

type AiSucceedNode struct{}

type AiFailNode struct{}

type AiHealthBelowCondition struct {
	Percent float32 `bin:"mPercent"`
}

type AiManaBelowCondition struct {
	Percent float32 `bin:"mPercent"`
}

type AiTargetInRangeCondition struct {
	TargetKey string   `bin:"mTargetKey"`
	Range     *float32 `bin:"mRange,optional"`
}

type AiEnemiesNearbyCondition struct {
	Count  uint8    `bin:"mCount"`
	Radius *float32 `bin:"mRadius,optional"`
}

type AiAlliesNearbyCondition struct {
	Count  uint8    `bin:"mCount"`
	Radius *float32 `bin:"mRadius,optional"`
}

type AiUnderTurretCondition struct {
	EnemyTurret *bool `bin:"mEnemyTurret,optional"`
}

type AiHasBuffCondition struct {
	Buff   string  `bin:"mBuff"`
	Stacks *uint16 `bin:"mStacks,optional"`
}

type AiSpellReadyCondition struct {
	Slot uint8 `bin:"mSlot"`
}

type AiGameTimeAfterCondition struct {
	Seconds float32 `bin:"mSeconds"`
}

type AiIsRecallingCondition struct{}

type AiAndCondition struct {
	Conditions []EnumAiCondition `bin:"mConditions"`
}

type AiOrCondition struct {
	Conditions []EnumAiCondition `bin:"mConditions"`
}

type AiNotCondition struct {
	Condition EnumAiCondition `bin:"mCondition"`
}

type AiTargetClosest struct {
	ChampionsOnly *bool `bin:"mChampionsOnly,optional"`
}

type AiTargetLowestHealth struct {
	Percent *bool `bin:"mPercent,optional"`
}

type AiTargetHighestThreat struct {
	Decay *float32 `bin:"mDecay,optional"`
}

type AiTargetRandomUnit struct{}

type AiTargetChampionFirst struct {
	Fallback EnumAiTargetSelector `bin:"mFallback,optional"`
}

type AiTargetLastAttacker struct {
	Memory *float32 `bin:"mMemory,optional"`
}

func (*AiSequenceNode) aiNode()        {}
func (*AiSelectorNode) aiNode()        {}
func (*AiParallelNode) aiNode()        {}
func (*AiInverterNode) aiNode()        {}
func (*AiRepeatNode) aiNode()          {}
func (*AiCooldownNode) aiNode()        {}
func (*AiConditionNode) aiNode()       {}
func (*AiWaitNode) aiNode()            {}
func (*AiMoveToNode) aiNode()          {}
func (*AiAttackTargetNode) aiNode()    {}
func (*AiCastSpellNode) aiNode()       {}
func (*AiFleeNode) aiNode()            {}
func (*AiPatrolNode) aiNode()          {}
func (*AiLeashNode) aiNode()           {}
func (*AiAcquireTargetNode) aiNode()   {}
func (*AiSetBlackboardNode) aiNode()   {}
func (*AiCheckBlackboardNode) aiNode() {}
func (*AiFollowNode) aiNode()          {}
func (*AiRecallNode) aiNode()          {}
func (*AiBuyItemsNode) aiNode()        {}
func (*AiLevelSpellNode) aiNode()      {}
func (*AiUseSummonerNode) aiNode()     {}
func (*AiWardNode) aiNode()            {}
func (*AiPushLaneNode) aiNode()        {}
func (*AiGankNode) aiNode()            {}
func (*AiDefendNode) aiNode()          {}
func (*AiRetreatToTowerNode) aiNode()  {}
func (*AiFarmNode) aiNode()            {}
func (*AiKiteNode) aiNode()            {}
func (*AiDodgeSkillshotNode) aiNode()  {}
func (*AiFocusLowestNode) aiNode()     {}
func (*AiRunScriptNode) aiNode()       {}
func (*AiSucceedNode) aiNode()         {}
func (*AiFailNode) aiNode()            {}

func (*AiHealthBelowCondition) aiCondition()   {}
func (*AiManaBelowCondition) aiCondition()     {}
func (*AiTargetInRangeCondition) aiCondition() {}
func (*AiEnemiesNearbyCondition) aiCondition() {}
func (*AiAlliesNearbyCondition) aiCondition()  {}
func (*AiUnderTurretCondition) aiCondition()   {}
func (*AiHasBuffCondition) aiCondition()       {}
func (*AiSpellReadyCondition) aiCondition()    {}
func (*AiGameTimeAfterCondition) aiCondition() {}
func (*AiIsRecallingCondition) aiCondition()   {}
func (*AiAndCondition) aiCondition()           {}
func (*AiOrCondition) aiCondition()            {}
func (*AiNotCondition) aiCondition()           {}

func (*AiTargetClosest) aiTargetSelector()       {}
func (*AiTargetLowestHealth) aiTargetSelector()  {}
func (*AiTargetHighestThreat) aiTargetSelector() {}
func (*AiTargetRandomUnit) aiTargetSelector()    {}
func (*AiTargetChampionFirst) aiTargetSelector() {}
func (*AiTargetLastAttacker) aiTargetSelector()  {}

func registerAI(b *propbin.Builder) {
	propbin.Record[AiBehaviorTree](b, "AiBehaviorTree", propbin.AsAsset())
	propbin.Record[AiBlackboardKey](b, "AiBlackboardKey")
	propbin.Record[AiDifficultyProfile](b, "AiDifficultyProfile", propbin.AsAsset())
	propbin.Record[AiRoleProfile](b, "AiRoleProfile")
	propbin.Record[AiLanePreference](b, "AiLanePreference")
	propbin.Record[AiItemBuildPlan](b, "AiItemBuildPlan")
	propbin.Record[AiSkillOrder](b, "AiSkillOrder")
	propbin.Record[BotDifficultyTable](b, "BotDifficultyTable", propbin.AsAsset())
	propbin.Record[TurretAiData](b, "TurretAiData", propbin.AsAsset())
	propbin.Record[MinionAiData](b, "MinionAiData", propbin.AsAsset())
	propbin.Record[JungleMonsterAiData](b, "JungleMonsterAiData", propbin.AsAsset())
	propbin.Record[AiSequenceNode](b, "AiSequenceNode")
	propbin.Record[AiSelectorNode](b, "AiSelectorNode")
	propbin.Record[AiParallelNode](b, "AiParallelNode")
	propbin.Record[AiInverterNode](b, "AiInverterNode")
	propbin.Record[AiRepeatNode](b, "AiRepeatNode")
	propbin.Record[AiCooldownNode](b, "AiCooldownNode")
	propbin.Record[AiConditionNode](b, "AiConditionNode")
	propbin.Record[AiWaitNode](b, "AiWaitNode")
	propbin.Record[AiMoveToNode](b, "AiMoveToNode")
	propbin.Record[AiAttackTargetNode](b, "AiAttackTargetNode")
	propbin.Record[AiCastSpellNode](b, "AiCastSpellNode")
	propbin.Record[AiFleeNode](b, "AiFleeNode")
	propbin.Record[AiPatrolNode](b, "AiPatrolNode")
	propbin.Record[AiLeashNode](b, "AiLeashNode")
	propbin.Record[AiAcquireTargetNode](b, "AiAcquireTargetNode")
	propbin.Record[AiSetBlackboardNode](b, "AiSetBlackboardNode")
	propbin.Record[AiCheckBlackboardNode](b, "AiCheckBlackboardNode")
	propbin.Record[AiFollowNode](b, "AiFollowNode")
	propbin.Record[AiRecallNode](b, "AiRecallNode")
	propbin.Record[AiBuyItemsNode](b, "AiBuyItemsNode")
	propbin.Record[AiLevelSpellNode](b, "AiLevelSpellNode")
	propbin.Record[AiUseSummonerNode](b, "AiUseSummonerNode")
	propbin.Record[AiWardNode](b, "AiWardNode")
	propbin.Record[AiPushLaneNode](b, "AiPushLaneNode")
	propbin.Record[AiGankNode](b, "AiGankNode")
	propbin.Record[AiDefendNode](b, "AiDefendNode")
	propbin.Record[AiRetreatToTowerNode](b, "AiRetreatToTowerNode")
	propbin.Record[AiFarmNode](b, "AiFarmNode")
	propbin.Record[AiKiteNode](b, "AiKiteNode")
	propbin.Record[AiDodgeSkillshotNode](b, "AiDodgeSkillshotNode")
	propbin.Record[AiFocusLowestNode](b, "AiFocusLowestNode")
	propbin.Record[AiRunScriptNode](b, "AiRunScriptNode")
	propbin.Record[AiSucceedNode](b, "AiSucceedNode")
	propbin.Record[AiFailNode](b, "AiFailNode")
	propbin.Variant[EnumAiNode](b, "EnumAiNode",
		propbin.Case[AiSequenceNode](),
		propbin.Case[AiSelectorNode](),
		propbin.Case[AiParallelNode](),
		propbin.Case[AiInverterNode](),
		propbin.Case[AiRepeatNode](),
		propbin.Case[AiCooldownNode](),
		propbin.Case[AiConditionNode](),
		propbin.Case[AiWaitNode](),
		propbin.Case[AiMoveToNode](),
		propbin.Case[AiAttackTargetNode](),
		propbin.Case[AiCastSpellNode](),
		propbin.Case[AiFleeNode](),
		propbin.Case[AiPatrolNode](),
		propbin.Case[AiLeashNode](),
		propbin.Case[AiAcquireTargetNode](),
		propbin.Case[AiSetBlackboardNode](),
		propbin.Case[AiCheckBlackboardNode](),
		propbin.Case[AiFollowNode](),
		propbin.Case[AiRecallNode](),
		propbin.Case[AiBuyItemsNode](),
		propbin.Case[AiLevelSpellNode](),
		propbin.Case[AiUseSummonerNode](),
		propbin.Case[AiWardNode](),
		propbin.Case[AiPushLaneNode](),
		propbin.Case[AiGankNode](),
		propbin.Case[AiDefendNode](),
		propbin.Case[AiRetreatToTowerNode](),
		propbin.Case[AiFarmNode](),
		propbin.Case[AiKiteNode](),
		propbin.Case[AiDodgeSkillshotNode](),
		propbin.Case[AiFocusLowestNode](),
		propbin.Case[AiRunScriptNode](),
		propbin.Case[AiSucceedNode](),
		propbin.Case[AiFailNode](),
	)

	propbin.Record[AiHealthBelowCondition](b, "AiHealthBelowCondition")
	propbin.Record[AiManaBelowCondition](b, "AiManaBelowCondition")
	propbin.Record[AiTargetInRangeCondition](b, "AiTargetInRangeCondition")
	propbin.Record[AiEnemiesNearbyCondition](b, "AiEnemiesNearbyCondition")
	propbin.Record[AiAlliesNearbyCondition](b, "AiAlliesNearbyCondition")
	propbin.Record[AiUnderTurretCondition](b, "AiUnderTurretCondition")
	propbin.Record[AiHasBuffCondition](b, "AiHasBuffCondition")
	propbin.Record[AiSpellReadyCondition](b, "AiSpellReadyCondition")
	propbin.Record[AiGameTimeAfterCondition](b, "AiGameTimeAfterCondition")
	propbin.Record[AiIsRecallingCondition](b, "AiIsRecallingCondition")
	propbin.Record[AiAndCondition](b, "AiAndCondition")
	propbin.Record[AiOrCondition](b, "AiOrCondition")
	propbin.Record[AiNotCondition](b, "AiNotCondition")
	propbin.Variant[EnumAiCondition](b, "EnumAiCondition",
		propbin.Case[AiHealthBelowCondition](),
		propbin.Case[AiManaBelowCondition](),
		propbin.Case[AiTargetInRangeCondition](),
		propbin.Case[AiEnemiesNearbyCondition](),
		propbin.Case[AiAlliesNearbyCondition](),
		propbin.Case[AiUnderTurretCondition](),
		propbin.Case[AiHasBuffCondition](),
		propbin.Case[AiSpellReadyCondition](),
		propbin.Case[AiGameTimeAfterCondition](),
		propbin.Case[AiIsRecallingCondition](),
		propbin.Case[AiAndCondition](),
		propbin.Case[AiOrCondition](),
		propbin.Case[AiNotCondition](),
	)

	propbin.Record[AiTargetClosest](b, "AiTargetClosest")
	propbin.Record[AiTargetLowestHealth](b, "AiTargetLowestHealth")
	propbin.Record[AiTargetHighestThreat](b, "AiTargetHighestThreat")
	propbin.Record[AiTargetRandomUnit](b, "AiTargetRandomUnit")
	propbin.Record[AiTargetChampionFirst](b, "AiTargetChampionFirst")
	propbin.Record[AiTargetLastAttacker](b, "AiTargetLastAttacker")
	propbin.Variant[EnumAiTargetSelector](b, "EnumAiTargetSelector",
		propbin.Case[AiTargetClosest](),
		propbin.Case[AiTargetLowestHealth](),
		propbin.Case[AiTargetHighestThreat](),
		propbin.Case[AiTargetRandomUnit](),
		propbin.Case[AiTargetChampionFirst](),
		propbin.Case[AiTargetLastAttacker](),
	)
}
