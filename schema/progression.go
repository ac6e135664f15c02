package schema

import propbin "github.com/reoring/propbin"

// EnumMissionObjective is the progress counter a mission tracks.
type EnumMissionObjective interface{ missionObjective() }

// EnumLootReward is one item granted to an account.
type EnumLootReward interface{ lootReward() }

// EnumChallengeMetric is how a challenge measures progress.
type EnumChallengeMetric interface{ challengeMetric() }

// MissionData is one account-level mission with its objectives and rewards.
type MissionData struct {
	MissionID         propbin.Hash       `bin:"mMissionID"`
	TitleTraKey       *string            `bin:"mTitleTraKey,optional"`
	DescriptionTraKey *string            `bin:"mDescriptionTraKey,optional"`
	Objectives        []MissionObjective `bin:"mObjectives,optional"`
	Rewards           []MissionReward    `bin:"mRewards,optional"`
	StartTime         *uint64            `bin:"mStartTime,optional"`
	EndTime           *uint64            `bin:"mEndTime,optional"`
	Prerequisites     []propbin.Hash     `bin:"mPrerequisites,optional"`
	Series            *string            `bin:"mSeries,optional"`
	Sequence          *uint16            `bin:"mSequence,optional"`
	Repeatable        *bool              `bin:"mRepeatable,optional"`
	Hidden            *bool              `bin:"mHidden,optional"`
	PathHashToSelf    *propbin.PathHash  `bin:"pathHashToSelf,optional"`
}

type MissionObjective struct {
	Objective         EnumMissionObjective `bin:"mObjective"`
	Target            *uint32              `bin:"mTarget,optional"`
	DescriptionTraKey *string              `bin:"mDescriptionTraKey,optional"`
}

type MissionReward struct {
	Reward      EnumLootReward `bin:"mReward"`
	Quantity    *uint32        `bin:"mQuantity,optional"`
	ChoiceGroup *uint8         `bin:"mChoiceGroup,optional"`
}

type ObjectiveKillChampions struct {
	AsChampion *string `bin:"mAsChampion,optional"`
}

type ObjectiveWinGames struct {
	Queue *uint32 `bin:"mQueue,optional"`
}

type ObjectivePlayChampion struct {
	Champion string `bin:"mChampion"`
}

type ObjectiveEarnGold struct {
	PerGame *bool `bin:"mPerGame,optional"`
}

type ObjectiveDealDamage struct {
	DamageType *uint8 `bin:"mDamageType,optional"`
}

type ObjectivePlaceWards struct{}

type ObjectiveDestroyTurrets struct{}

type ObjectiveCompleteMission struct {
	Mission propbin.Hash `bin:"mMission"`
}

type ObjectiveEarnHonor struct{}

type ObjectivePlayWithFriends struct {
	PartySize *uint8 `bin:"mPartySize,optional"`
}

type ObjectiveScoreTakedowns struct {
	Multikill *uint8 `bin:"mMultikill,optional"`
}

type LootRewardCurrency struct {
	Currency string `bin:"mCurrency"`
	Amount   uint32 `bin:"mAmount"`
}

type LootRewardChest struct {
	Chest propbin.Hash `bin:"mChest"`
}

type LootRewardKey struct {
	Fragments *uint8 `bin:"mFragments,optional"`
}

type LootRewardSkin struct {
	SkinID uint32 `bin:"mSkinID"`
}

type LootRewardIcon struct {
	IconID uint32 `bin:"mIconID"`
}

type LootRewardEmote struct {
	Emote propbin.Link `bin:"mEmote"`
}

type LootRewardWard struct {
	WardSkin propbin.Link `bin:"mWardSkin"`
}

type LootRewardPassXp struct {
	Amount uint32 `bin:"mAmount"`
}

type LootRewardTokens struct {
	Event  string `bin:"mEvent"`
	Amount uint32 `bin:"mAmount"`
}

type EventPassData struct {
	Name      string           `bin:"mName"`
	Tracks    []EventPassTrack `bin:"mTracks,optional"`
	Shop      *propbin.Link    `bin:"mShop,optional"`
	StartTime *uint64          `bin:"mStartTime,optional"`
	EndTime   *uint64          `bin:"mEndTime,optional"`
	Price     *uint32          `bin:"mPrice,optional"`
}

type EventPassTrack struct {
	Name       string               `bin:"mName"`
	Milestones []EventPassMilestone `bin:"mMilestones,optional"`
	Premium    *bool                `bin:"mPremium,optional"`
}

type EventPassMilestone struct {
	XPRequired uint32           `bin:"mXpRequired"`
	Rewards    []EnumLootReward `bin:"mRewards,optional"`
}

type EventShopData struct {
	Name          string           `bin:"mName"`
	TokenCurrency string           `bin:"mTokenCurrency"`
	Offers        []EventShopOffer `bin:"mOffers,optional"`
}

type EventShopOffer struct {
	Reward    EnumLootReward `bin:"mReward"`
	TokenCost uint32         `bin:"mTokenCost"`
	Limit     *uint16        `bin:"mLimit,optional"`
}

type EmoteData struct {
	Name     string        `bin:"mName"`
	Texture  *string       `bin:"mTexture,optional"`
	Animated *bool         `bin:"mAnimated,optional"`
	Vfx      *propbin.Link `bin:"mVfx,optional"`
	Sound    *string       `bin:"mSound,optional"`
	Rarity   *uint8        `bin:"mRarity,optional"`
}

type EmoteWheelLayout struct {
	Slots           []propbin.Link `bin:"mSlots,optional"`
	StartEmote      *propbin.Link  `bin:"mStartEmote,optional"`
	VictoryEmote    *propbin.Link  `bin:"mVictoryEmote,optional"`
	FirstBloodEmote *propbin.Link  `bin:"mFirstBloodEmote,optional"`
	AceEmote        *propbin.Link  `bin:"mAceEmote,optional"`
}

type SummonerIconData struct {
	IconID  uint32  `bin:"mIconID"`
	Texture string  `bin:"mTexture"`
	Legacy  *bool   `bin:"mLegacy,optional"`
	Year    *uint16 `bin:"mYear,optional"`
}

type SummonerBannerData struct {
	Name   string         `bin:"mName"`
	Flag   *string        `bin:"mFlag,optional"`
	Frame  *string        `bin:"mFrame,optional"`
	Unlock EnumLootReward `bin:"mUnlock,optional"`
}

type WardSkinData struct {
	Name         string        `bin:"mName"`
	Character    *propbin.Link `bin:"mCharacter,optional"`
	PlacementVfx *propbin.Link `bin:"mPlacementVfx,optional"`
	Icon         *string       `bin:"mIcon,optional"`
}

type ChampionMasteryConfig struct {
	Levels      []MasteryLevelData `bin:"mLevels,optional"`
	TokenGrades []string           `bin:"mTokenGrades,optional"`
}

type MasteryLevelData struct {
	Level          uint8         `bin:"mLevel"`
	PointsRequired *uint32       `bin:"mPointsRequired,optional"`
	TokensRequired *uint8        `bin:"mTokensRequired,optional"`
	Emote          *propbin.Link `bin:"mEmote,optional"`
	Banner         *string       `bin:"mBanner,optional"`
}

type HonorConfig struct {
	Levels       []HonorLevelData `bin:"mLevels,optional"`
	VotesPerGame *uint8           `bin:"mVotesPerGame,optional"`
}

type HonorLevelData struct {
	Level       uint8            `bin:"mLevel"`
	Checkpoints *uint8           `bin:"mCheckpoints,optional"`
	Rewards     []EnumLootReward `bin:"mRewards,optional"`
}

type RankedConfig struct {
	Tiers          []RankedTierData `bin:"mTiers,optional"`
	PlacementGames *uint8           `bin:"mPlacementGames,optional"`
	DecayDays      *uint16          `bin:"mDecayDays,optional"`
}

type RankedTierData struct {
	Tier      string  `bin:"mTier"`
	Divisions *uint8  `bin:"mDivisions,optional"`
	Emblem    *string `bin:"mEmblem,optional"`
	Crest     *string `bin:"mCrest,optional"`
	LpPerWin  *uint8  `bin:"mLpPerWin,optional"`
}

type ClashConfig struct {
	Bracket    *propbin.Link    `bin:"mBracket,optional"`
	TicketCost *uint32          `bin:"mTicketCost,optional"`
	Rewards    []EnumLootReward `bin:"mRewards,optional"`
}

type ChallengeData struct {
	ChallengeID uint32              `bin:"mChallengeID"`
	NameTraKey  *string             `bin:"mNameTraKey,optional"`
	Metric      EnumChallengeMetric `bin:"mMetric"`
	Tiers       []ChallengeTier     `bin:"mTiers,optional"`
	Category    *string             `bin:"mCategory,optional"`
}

type ChallengeTier struct {
	Tier      string        `bin:"mTier"`
	Threshold float32       `bin:"mThreshold"`
	Points    *uint16       `bin:"mPoints,optional"`
	Title     *propbin.Link `bin:"mTitle,optional"`
}

type ChallengeMetricCount struct {
	Stat string `bin:"mStat"`
}

type ChallengeMetricMax struct {
	Stat    string `bin:"mStat"`
	PerGame *bool  `bin:"mPerGame,optional"`
}

type ChallengeMetricRatio struct {
	Numerator   string `bin:"mNumerator"`
	Denominator string `bin:"mDenominator"`
}

type ChallengeMetricStreak struct {
	Stat        string `bin:"mStat"`
	ResetOnLoss *bool  `bin:"mResetOnLoss,optional"`
}

type TitleData struct {
	TitleID    uint32  `bin:"mTitleID"`
	NameTraKey string  `bin:"mNameTraKey"`
	Source     *string `bin:"mSource,optional"`
}

type StatStoneData struct {
	Name       string        `bin:"mName"`
	Stat       string        `bin:"mStat"`
	Milestones []uint32      `bin:"mMilestones,optional"`
	Series     *propbin.Link `bin:"mSeries,optional"`
}

type StatStoneSeries struct {
	Name     string         `bin:"mName"`
	Stones   []propbin.Link `bin:"mStones,optional"`
	Champion *string        `bin:"mChampion,optional"`
}

func (*ObjectiveKillChampions) missionObjective()   {}
func (*ObjectiveWinGames) missionObjective()        {}
func (*ObjectivePlayChampion) missionObjective()    {}
func (*ObjectiveEarnGold) missionObjective()        {}
func (*ObjectiveDealDamage) missionObjective()      {}
func (*ObjectivePlaceWards) missionObjective()      {}
func (*ObjectiveDestroyTurrets) missionObjective()  {}
func (*ObjectiveCompleteMission) missionObjective() {}
func (*ObjectiveEarnHonor) missionObjective()       {}
func (*ObjectivePlayWithFriends) missionObjective() {}
func (*ObjectiveScoreTakedowns) missionObjective()  {}

func (*LootRewardCurrency) lootReward() {}
func (*LootRewardChest) lootReward()    {}
func (*LootRewardKey) lootReward()      {}
func (*LootRewardSkin) lootReward()     {}
func (*LootRewardIcon) lootReward()     {}
func (*LootRewardEmote) lootReward()    {}
func (*LootRewardWard) lootReward()     {}
func (*LootRewardPassXp) lootReward()   {}
func (*LootRewardTokens) lootReward()   {}

func (*ChallengeMetricCount) challengeMetric()  {}
func (*ChallengeMetricMax) challengeMetric()    {}
func (*ChallengeMetricRatio) challengeMetric()  {}
func (*ChallengeMetricStreak) challengeMetric() {}

func registerProgression(b *propbin.Builder) {
	propbin.Record[MissionData](b, "MissionData", propbin.AsAsset())
	propbin.Record[MissionObjective](b, "MissionObjective")
	propbin.Record[MissionReward](b, "MissionReward")
	propbin.Record[ObjectiveKillChampions](b, "ObjectiveKillChampions")
	propbin.Record[ObjectiveWinGames](b, "ObjectiveWinGames")
	propbin.Record[ObjectivePlayChampion](b, "ObjectivePlayChampion")
	propbin.Record[ObjectiveEarnGold](b, "ObjectiveEarnGold")
	propbin.Record[ObjectiveDealDamage](b, "ObjectiveDealDamage")
	propbin.Record[ObjectivePlaceWards](b, "ObjectivePlaceWards")
	propbin.Record[ObjectiveDestroyTurrets](b, "ObjectiveDestroyTurrets")
	propbin.Record[ObjectiveCompleteMission](b, "ObjectiveCompleteMission")
	propbin.Record[ObjectiveEarnHonor](b, "ObjectiveEarnHonor")
	propbin.Record[ObjectivePlayWithFriends](b, "ObjectivePlayWithFriends")
	propbin.Record[ObjectiveScoreTakedowns](b, "ObjectiveScoreTakedowns")
	propbin.Variant[EnumMissionObjective](b, "EnumMissionObjective",
		propbin.Case[ObjectiveKillChampions](),
		propbin.Case[ObjectiveWinGames](),
		propbin.Case[ObjectivePlayChampion](),
		propbin.Case[ObjectiveEarnGold](),
		propbin.Case[ObjectiveDealDamage](),
		propbin.Case[ObjectivePlaceWards](),
		propbin.Case[ObjectiveDestroyTurrets](),
		propbin.Case[ObjectiveCompleteMission](),
		propbin.Case[ObjectiveEarnHonor](),
		propbin.Case[ObjectivePlayWithFriends](),
		propbin.Case[ObjectiveScoreTakedowns](),
	)

	propbin.Record[LootRewardCurrency](b, "LootRewardCurrency")
	propbin.Record[LootRewardChest](b, "LootRewardChest")
	propbin.Record[LootRewardKey](b, "LootRewardKey")
	propbin.Record[LootRewardSkin](b, "LootRewardSkin")
	propbin.Record[LootRewardIcon](b, "LootRewardIcon")
	propbin.Record[LootRewardEmote](b, "LootRewardEmote")
	propbin.Record[LootRewardWard](b, "LootRewardWard")
	propbin.Record[LootRewardPassXp](b, "LootRewardPassXp")
	propbin.Record[LootRewardTokens](b, "LootRewardTokens")
	propbin.Variant[EnumLootReward](b, "EnumLootReward",
		propbin.Case[LootRewardCurrency](),
		propbin.Case[LootRewardChest](),
		propbin.Case[LootRewardKey](),
		propbin.Case[LootRewardSkin](),
		propbin.Case[LootRewardIcon](),
		propbin.Case[LootRewardEmote](),
		propbin.Case[LootRewardWard](),
		propbin.Case[LootRewardPassXp](),
		propbin.Case[LootRewardTokens](),
	)

	propbin.Record[EventPassData](b, "EventPassData", propbin.AsAsset())
	propbin.Record[EventPassTrack](b, "EventPassTrack")
	propbin.Record[EventPassMilestone](b, "EventPassMilestone")
	propbin.Record[EventShopData](b, "EventShopData", propbin.AsAsset())
	propbin.Record[EventShopOffer](b, "EventShopOffer")
	propbin.Record[EmoteData](b, "EmoteData", propbin.AsAsset())
	propbin.Record[EmoteWheelLayout](b, "EmoteWheelLayout")
	propbin.Record[SummonerIconData](b, "SummonerIconData", propbin.AsAsset())
	propbin.Record[SummonerBannerData](b, "SummonerBannerData", propbin.AsAsset())
	propbin.Record[WardSkinData](b, "WardSkinData", propbin.AsAsset())
	propbin.Record[ChampionMasteryConfig](b, "ChampionMasteryConfig", propbin.AsAsset())
	propbin.Record[MasteryLevelData](b, "MasteryLevelData")
	propbin.Record[HonorConfig](b, "HonorConfig", propbin.AsAsset())
	propbin.Record[HonorLevelData](b, "HonorLevelData")
	propbin.Record[RankedConfig](b, "RankedConfig", propbin.AsAsset())
	propbin.Record[RankedTierData](b, "RankedTierData")
	propbin.Record[ClashConfig](b, "ClashConfig", propbin.AsAsset())
	propbin.Record[ChallengeData](b, "ChallengeData", propbin.AsAsset())
	propbin.Record[ChallengeTier](b, "ChallengeTier")
	propbin.Record[ChallengeMetricCount](b, "ChallengeMetricCount")
	propbin.Record[ChallengeMetricMax](b, "ChallengeMetricMax")
	propbin.Record[ChallengeMetricRatio](b, "ChallengeMetricRatio")
	propbin.Record[ChallengeMetricStreak](b, "ChallengeMetricStreak")
	propbin.Variant[EnumChallengeMetric](b, "EnumChallengeMetric",
		propbin.Case[ChallengeMetricCount](),
		propbin.Case[ChallengeMetricMax](),
		propbin.Case[ChallengeMetricRatio](),
		propbin.Case[ChallengeMetricStreak](),
	)

	propbin.Record[TitleData](b, "TitleData", propbin.AsAsset())
	propbin.Record[StatStoneData](b, "StatStoneData", propbin.AsAsset())
	propbin.Record[StatStoneSeries](b, "StatStoneSeries", propbin.AsAsset())
}
