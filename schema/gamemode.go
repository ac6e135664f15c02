package schema

import propbin "github.com/reoring/propbin"

// EnumObjectiveReward is granted to the team that takes an objective.
type EnumObjectiveReward interface{ objectiveReward() }

// EnumMinionWaveRule alters which minions a wave spawns.
type EnumMinionWaveRule interface{ minionWaveRule() }

// EnumGameModeRule is one rule a mode or mutator switches on.
type EnumGameModeRule interface{ gameModeRule() }

// EnumPlantType is a jungle plant species.
type EnumPlantType interface{ plantType() }

// GameModeConstants holds every tunable of one game mode on one map.
type GameModeConstants struct {
	GameMode                   string                `bin:"mGameMode"`
	MapID                      *uint32               `bin:"mMapID,optional"`
	MaxLevel                   *uint8                `bin:"mMaxLevel,optional"`
	StartingGold               *int32                `bin:"mStartingGold,optional"`
	StartingLevel              *uint8                `bin:"mStartingLevel,optional"`
	GoldPer10                  *float32              `bin:"mGoldPer10,optional"`
	GoldIncomeStart            *float32              `bin:"mGoldIncomeStart,optional"`
	ExperienceCurve            *ExperienceCurve      `bin:"mExperienceCurve,optional"`
	Respawn                    *RespawnTimerConfig   `bin:"mRespawn,optional"`
	Bounty                     *BountyConfig         `bin:"mBounty,optional"`
	Shutdown                   *ShutdownBountyConfig `bin:"mShutdown,optional"`
	Assists                    *AssistRules          `bin:"mAssists,optional"`
	Surrender                  *SurrenderRules       `bin:"mSurrender,optional"`
	Afk                        *AfkRules             `bin:"mAfk,optional"`
	Remake                     *RemakeRules          `bin:"mRemake,optional"`
	Vision                     *VisionRules          `bin:"mVision,optional"`
	WardLimits                 *WardLimitRules       `bin:"mWardLimits,optional"`
	Fog                        *FogOfWarConfig       `bin:"mFog,optional"`
	Brush                      *BrushConfig          `bin:"mBrush,optional"`
	Rules                      []EnumGameModeRule    `bin:"mRules,optional"`
	Mutators                   []propbin.Link        `bin:"mMutators,optional"`
	MinionWaves                *MinionWaveConfig     `bin:"mMinionWaves,optional"`
	Dragon                     *DragonConfig         `bin:"mDragon,optional"`
	Baron                      *BaronConfig          `bin:"mBaron,optional"`
	Herald                     *HeraldConfig         `bin:"mHerald,optional"`
	Grubs                      *GrubsConfig          `bin:"mGrubs,optional"`
	Elder                      *ElderConfig          `bin:"mElder,optional"`
	Turrets                    *TurretConfig         `bin:"mTurrets,optional"`
	Inhibitors                 *InhibitorConfig      `bin:"mInhibitors,optional"`
	Nexus                      *NexusConfig          `bin:"mNexus,optional"`
	JungleCamps                []JungleCampConfig    `bin:"mJungleCamps,optional"`
	Scuttler                   *RiftScuttlerConfig   `bin:"mScuttler,optional"`
	Plants                     *PlantConfig          `bin:"mPlants,optional"`
	TerrainChanges             []MapTerrainChange    `bin:"mTerrainChanges,optional"`
	Arena                      *ArenaRoundConfig     `bin:"mArena,optional"`
	PathHashToSelf             *propbin.PathHash     `bin:"pathHashToSelf,optional"`
	RecallTime                 *float32              `bin:"mRecallTime,optional"`
	EmpoweredRecallTime        *float32              `bin:"mEmpoweredRecallTime,optional"`
	FountainHealPerSecond      *float32              `bin:"mFountainHealPerSecond,optional"`
	FountainManaPerSecond      *float32              `bin:"mFountainManaPerSecond,optional"`
	FountainDamagePerSecond    *float32              `bin:"mFountainDamagePerSecond,optional"`
	FountainRadius             *float32              `bin:"mFountainRadius,optional"`
	PlatformRadius             *float32              `bin:"mPlatformRadius,optional"`
	ChampionExpShareRadius     *float32              `bin:"mChampionExpShareRadius,optional"`
	MinionExpShareRadius       *float32              `bin:"mMinionExpShareRadius,optional"`
	GoldShareRadius            *float32              `bin:"mGoldShareRadius,optional"`
	CombatDuration             *float32              `bin:"mCombatDuration,optional"`
	OutOfCombatRegenMultiplier *float32              `bin:"mOutOfCombatRegenMultiplier,optional"`
	DeathTimeScale             *float32              `bin:"mDeathTimeScale,optional"`
	LateGameDeathTimeStart     *float32              `bin:"mLateGameDeathTimeStart,optional"`
	LateGameDeathTimePerMinute *float32              `bin:"mLateGameDeathTimePerMinute,optional"`
	MaxDeathTime               *float32              `bin:"mMaxDeathTime,optional"`
	MinDeathTime               *float32              `bin:"mMinDeathTime,optional"`
	TowerDiveAggroRadius       *float32              `bin:"mTowerDiveAggroRadius,optional"`
	TowerAggroDuration         *float32              `bin:"mTowerAggroDuration,optional"`
	TowerWarmupDamageScale     *float32              `bin:"mTowerWarmupDamageScale,optional"`
	MinionAggroRadius          *float32              `bin:"mMinionAggroRadius,optional"`
	MinionLeashRadius          *float32              `bin:"mMinionLeashRadius,optional"`
	MonsterLeashRadius         *float32              `bin:"mMonsterLeashRadius,optional"`
	MonsterResetTime           *float32              `bin:"mMonsterResetTime,optional"`
	CampRespawnJitter          *float32              `bin:"mCampRespawnJitter,optional"`
	ObjectiveBountyStart       *float32              `bin:"mObjectiveBountyStart,optional"`
	ObjectiveBountyGoldDeficit *float32              `bin:"mObjectiveBountyGoldDeficit,optional"`
	ComebackGoldScale          *float32              `bin:"mComebackGoldScale,optional"`
	TeleportChannelTime        *float32              `bin:"mTeleportChannelTime,optional"`
	TeleportCooldownScale      *float32              `bin:"mTeleportCooldownScale,optional"`
	FlashCooldown              *float32              `bin:"mFlashCooldown,optional"`
	SmiteCooldown              *float32              `bin:"mSmiteCooldown,optional"`
	SmiteDamage                *float32              `bin:"mSmiteDamage,optional"`
	IgniteDamagePerLevel       *float32              `bin:"mIgniteDamagePerLevel,optional"`
	HealAmountPerLevel         *float32              `bin:"mHealAmountPerLevel,optional"`
	BarrierAmountPerLevel      *float32              `bin:"mBarrierAmountPerLevel,optional"`
	ExhaustDamageReduction     *float32              `bin:"mExhaustDamageReduction,optional"`
	CleanseTenacity            *float32              `bin:"mCleanseTenacity,optional"`
	GhostMoveSpeed             *float32              `bin:"mGhostMoveSpeed,optional"`
	ClarityManaPercent         *float32              `bin:"mClarityManaPercent,optional"`
	MarkDamage                 *float32              `bin:"mMarkDamage,optional"`
	SnowballRange              *float32              `bin:"mSnowballRange,optional"`
	DashSpeed                  *float32              `bin:"mDashSpeed,optional"`
	CameraMaxZoom              *float32              `bin:"mCameraMaxZoom,optional"`
	CameraMinZoom              *float32              `bin:"mCameraMinZoom,optional"`
	PingCooldown               *float32              `bin:"mPingCooldown,optional"`
	PingMaxPerWindow           *float32              `bin:"mPingMaxPerWindow,optional"`
	ChatRateLimit              *float32              `bin:"mChatRateLimit,optional"`
	PauseMaxDuration           *float32              `bin:"mPauseMaxDuration,optional"`
	PauseMaxCount              *float32              `bin:"mPauseMaxCount,optional"`
	ReconnectGracePeriod       *float32              `bin:"mReconnectGracePeriod,optional"`
	LoadingTimeout             *float32              `bin:"mLoadingTimeout,optional"`
	EndOfGameDelay             *float32              `bin:"mEndOfGameDelay,optional"`
	SurrenderMinTime           *float32              `bin:"mSurrenderMinTime,optional"`
	EarlySurrenderMinTime      *float32              `bin:"mEarlySurrenderMinTime,optional"`
	NexusDestroyedDelay        *float32              `bin:"mNexusDestroyedDelay,optional"`
	AnnouncerDelay             *float32              `bin:"mAnnouncerDelay,optional"`
	FirstMinionSpawnTime       *float32              `bin:"mFirstMinionSpawnTime,optional"`
	NeutralMonsterSpawnTime    *float32              `bin:"mNeutralMonsterSpawnTime,optional"`
	ScuttlerSpawnTime          *float32              `bin:"mScuttlerSpawnTime,optional"`
	DragonSpawnTime            *float32              `bin:"mDragonSpawnTime,optional"`
	BaronSpawnTime             *float32              `bin:"mBaronSpawnTime,optional"`
	HeraldSpawnTime            *float32              `bin:"mHeraldSpawnTime,optional"`
	GrubsSpawnTime             *float32              `bin:"mGrubsSpawnTime,optional"`
	TurretPlateFalloffTime     *float32              `bin:"mTurretPlateFalloffTime,optional"`
	OuterTurretFortifyTime     *float32              `bin:"mOuterTurretFortifyTime,optional"`
	InhibitorRespawnTime       *float32              `bin:"mInhibitorRespawnTime,optional"`
	SuddenDeathTime            *float32              `bin:"mSuddenDeathTime,optional"`
}

type GameModeMapData struct {
	MapID            uint32        `bin:"mMapID"`
	ModeName         string        `bin:"mModeName"`
	MapSkin          *propbin.Link `bin:"mMapSkin,optional"`
	Constants        *propbin.Link `bin:"mConstants,optional"`
	Shop             *propbin.Link `bin:"mShop,optional"`
	LoadingScreen    *propbin.Link `bin:"mLoadingScreen,optional"`
	Minimap          *propbin.Link `bin:"mMinimap,optional"`
	Audio            *propbin.Link `bin:"mAudio,optional"`
	AllowedChampions []string      `bin:"mAllowedChampions,optional"`
	BannedChampions  []string      `bin:"mBannedChampions,optional"`
}

type MapSkinDefinition struct {
	Name              string                        `bin:"mName"`
	Environment       *propbin.Link                 `bin:"mEnvironment,optional"`
	MinimapTexture    *string                       `bin:"mMinimapTexture,optional"`
	AmbientMusic      *propbin.Link                 `bin:"mAmbientMusic,optional"`
	TerrainMaterial   *propbin.Link                 `bin:"mTerrainMaterial,optional"`
	ParticleOverrides map[propbin.Hash]propbin.Link `bin:"mParticleOverrides,optional"`
}

type MapObjectiveConfig struct {
	Name         string                `bin:"mName"`
	Reward       []EnumObjectiveReward `bin:"mReward,optional"`
	RespawnTime  *float32              `bin:"mRespawnTime,optional"`
	FirstSpawn   *float32              `bin:"mFirstSpawn,optional"`
	Announcement *string               `bin:"mAnnouncement,optional"`
}

type DragonConfig struct {
	Types          []string              `bin:"mTypes,optional"`
	SoulThreshold  *uint8                `bin:"mSoulThreshold,optional"`
	Soul           *DragonSoulConfig     `bin:"mSoul,optional"`
	Rewards        []EnumObjectiveReward `bin:"mRewards,optional"`
	RespawnTime    *float32              `bin:"mRespawnTime,optional"`
	ElderAfterSoul *bool                 `bin:"mElderAfterSoul,optional"`
}

type DragonSoulConfig struct {
	Buffs              map[string]propbin.Link `bin:"mBuffs,optional"`
	SoulPointThreshold *uint8                  `bin:"mSoulPointThreshold,optional"`
	RiftTransformAt    *uint8                  `bin:"mRiftTransformAt,optional"`
}

type BaronConfig struct {
	Rewards        []EnumObjectiveReward `bin:"mRewards,optional"`
	BuffDuration   *float32              `bin:"mBuffDuration,optional"`
	RespawnTime    *float32              `bin:"mRespawnTime,optional"`
	EmpowerMinions *bool                 `bin:"mEmpowerMinions,optional"`
	PitTerrain     *propbin.Link         `bin:"mPitTerrain,optional"`
}

type HeraldConfig struct {
	Rewards     []EnumObjectiveReward `bin:"mRewards,optional"`
	DespawnTime *float32              `bin:"mDespawnTime,optional"`
	SecondSpawn *bool                 `bin:"mSecondSpawn,optional"`
	EyeDuration *float32              `bin:"mEyeDuration,optional"`
}

type GrubsConfig struct {
	Count   *uint8                `bin:"mCount,optional"`
	Waves   *uint8                `bin:"mWaves,optional"`
	Rewards []EnumObjectiveReward `bin:"mRewards,optional"`
}

type ElderConfig struct {
	Rewards          []EnumObjectiveReward `bin:"mRewards,optional"`
	ExecuteThreshold *float32              `bin:"mExecuteThreshold,optional"`
	BuffDuration     *float32              `bin:"mBuffDuration,optional"`
}

type TurretConfig struct {
	Plates             *TurretPlateConfig `bin:"mPlates,optional"`
	WarmupTime         *float32           `bin:"mWarmupTime,optional"`
	DamageRamp         *float32           `bin:"mDamageRamp,optional"`
	ArmorPerChampion   *float32           `bin:"mArmorPerChampion,optional"`
	BackdoorProtection *float32           `bin:"mBackdoorProtection,optional"`
	GoldLocal          *int32             `bin:"mGoldLocal,optional"`
	GoldGlobal         *int32             `bin:"mGoldGlobal,optional"`
}

type TurretPlateConfig struct {
	PlateCount    *uint8   `bin:"mPlateCount,optional"`
	GoldPerPlate  *int32   `bin:"mGoldPerPlate,optional"`
	ArmorPerPlate *float32 `bin:"mArmorPerPlate,optional"`
	FalloffTime   *float32 `bin:"mFalloffTime,optional"`
}

type InhibitorConfig struct {
	RespawnTime  *float32         `bin:"mRespawnTime,optional"`
	SuperMinions *SuperMinionRule `bin:"mSuperMinions,optional"`
	Gold         *int32           `bin:"mGold,optional"`
}

type NexusConfig struct {
	RegenPerSecond *float32 `bin:"mRegenPerSecond,optional"`
	TurretsProtect *bool    `bin:"mTurretsProtect,optional"`
	LaserDamage    *float32 `bin:"mLaserDamage,optional"`
}

type JungleCampConfig struct {
	Name        string              `bin:"mName"`
	Monsters    []JungleMonsterData `bin:"mMonsters,optional"`
	RespawnTime *float32            `bin:"mRespawnTime,optional"`
	FirstSpawn  *float32            `bin:"mFirstSpawn,optional"`
	Gold        *int32              `bin:"mGold,optional"`
	Experience  *float32            `bin:"mExperience,optional"`
	Position    *propbin.Vec3       `bin:"mPosition,optional"`
}

type JungleMonsterData struct {
	Character    propbin.Link  `bin:"mCharacter"`
	IsLarge      *bool         `bin:"mIsLarge,optional"`
	Buff         *propbin.Link `bin:"mBuff,optional"`
	LevelScaling *float32      `bin:"mLevelScaling,optional"`
}

type MinionWaveConfig struct {
	Interval   *float32             `bin:"mInterval,optional"`
	SpawnOrder []MinionSpawnEntry   `bin:"mSpawnOrder,optional"`
	Rules      []EnumMinionWaveRule `bin:"mRules,optional"`
	Upgrades   []MinionUpgradeRule  `bin:"mUpgrades,optional"`
	Cannon     *CannonWaveRule      `bin:"mCannon,optional"`
}

type MinionSpawnEntry struct {
	Minion   propbin.Link `bin:"mMinion"`
	Count    *uint8       `bin:"mCount,optional"`
	LaneMask *uint8       `bin:"mLaneMask,optional"`
}

type MinionUpgradeRule struct {
	Interval float32  `bin:"mInterval"`
	Health   *float32 `bin:"mHealth,optional"`
	Damage   *float32 `bin:"mDamage,optional"`
	Armor    *float32 `bin:"mArmor,optional"`
	Gold     *float32 `bin:"mGold,optional"`
}

type CannonWaveRule struct {
	EveryNthWave []uint8   `bin:"mEveryNthWave,optional"`
	AfterTime    []float32 `bin:"mAfterTime,optional"`
}

type SuperMinionRule struct {
	Minion        propbin.Link `bin:"mMinion"`
	Count         *uint8       `bin:"mCount,optional"`
	ReplaceCannon *bool        `bin:"mReplaceCannon,optional"`
}

type RespawnTimerConfig struct {
	Rows              []RespawnTimerRow `bin:"mRows,optional"`
	ScaleAfterMinutes *float32          `bin:"mScaleAfterMinutes,optional"`
	ScalePerMinute    *float32          `bin:"mScalePerMinute,optional"`
}

type RespawnTimerRow struct {
	Level   uint8   `bin:"mLevel"`
	Seconds float32 `bin:"mSeconds"`
}

type ExperienceCurve struct {
	Rows              []ExperienceCurveRow `bin:"mRows,optional"`
	CatchUpMultiplier *float32             `bin:"mCatchUpMultiplier,optional"`
}

type ExperienceCurveRow struct {
	Level      uint8   `bin:"mLevel"`
	Experience float32 `bin:"mExperience"`
}

type BountyConfig struct {
	BaseGold           *int32    `bin:"mBaseGold,optional"`
	FirstBloodGold     *int32    `bin:"mFirstBloodGold,optional"`
	AssistFraction     *float32  `bin:"mAssistFraction,optional"`
	StreakBonus        []int32   `bin:"mStreakBonus,optional"`
	DeathStreakPenalty []float32 `bin:"mDeathStreakPenalty,optional"`
}

type ShutdownBountyConfig struct {
	MinStreak       *uint8   `bin:"mMinStreak,optional"`
	GoldPerStreak   *int32   `bin:"mGoldPerStreak,optional"`
	MaxGold         *int32   `bin:"mMaxGold,optional"`
	GoldLeadScaling *float32 `bin:"mGoldLeadScaling,optional"`
}

type AssistRules struct {
	Window             *float32 `bin:"mWindow,optional"`
	CountsHealing      *bool    `bin:"mCountsHealing,optional"`
	CountsShielding    *bool    `bin:"mCountsShielding,optional"`
	CountsCrowdControl *bool    `bin:"mCountsCrowdControl,optional"`
}

type SurrenderRules struct {
	MinTime       *float32 `bin:"mMinTime,optional"`
	VoteDuration  *float32 `bin:"mVoteDuration,optional"`
	RequiredVotes *uint8   `bin:"mRequiredVotes,optional"`
	Cooldown      *float32 `bin:"mCooldown,optional"`
}

type AfkRules struct {
	WarningTime   *float32 `bin:"mWarningTime,optional"`
	KickTime      *float32 `bin:"mKickTime,optional"`
	LeaverPenalty *bool    `bin:"mLeaverPenalty,optional"`
}

type RemakeRules struct {
	Window        *float32 `bin:"mWindow,optional"`
	RequiredVotes *uint8   `bin:"mRequiredVotes,optional"`
}

type VisionRules struct {
	ChampionSightRange *float32 `bin:"mChampionSightRange,optional"`
	MinionSightRange   *float32 `bin:"mMinionSightRange,optional"`
	TurretSightRange   *float32 `bin:"mTurretSightRange,optional"`
	WardSightRange     *float32 `bin:"mWardSightRange,optional"`
	RevealDuration     *float32 `bin:"mRevealDuration,optional"`
}

type WardLimitRules struct {
	StealthWards   *uint8 `bin:"mStealthWards,optional"`
	ControlWards   *uint8 `bin:"mControlWards,optional"`
	TrinketCharges *uint8 `bin:"mTrinketCharges,optional"`
}

type FogOfWarConfig struct {
	Enabled            *bool    `bin:"mEnabled,optional"`
	GridSize           *uint16  `bin:"mGridSize,optional"`
	UpdateRate         *float32 `bin:"mUpdateRate,optional"`
	TerrainBlocksSight *bool    `bin:"mTerrainBlocksSight,optional"`
}

type BrushConfig struct {
	RevealOnAttack *float32 `bin:"mRevealOnAttack,optional"`
	PlantsBlock    *bool    `bin:"mPlantsBlock,optional"`
}

type RiftScuttlerConfig struct {
	Path           []propbin.Vec3 `bin:"mPath,optional"`
	ShrineDuration *float32       `bin:"mShrineDuration,optional"`
	ShrineSpeed    *float32       `bin:"mShrineSpeed,optional"`
	RespawnTime    *float32       `bin:"mRespawnTime,optional"`
}

type PlantConfig struct {
	Types      []EnumPlantType  `bin:"mTypes,optional"`
	SpawnRules []PlantSpawnRule `bin:"mSpawnRules,optional"`
}

type PlantSpawnRule struct {
	Type     EnumPlantType  `bin:"mType"`
	Zones    []propbin.Vec4 `bin:"mZones,optional"`
	Interval *float32       `bin:"mInterval,optional"`
	MaxAlive *uint8         `bin:"mMaxAlive,optional"`
}

type MapTerrainChange struct {
	Name           string        `bin:"mName"`
	Trigger        *string       `bin:"mTrigger,optional"`
	MeshSwap       *propbin.Link `bin:"mMeshSwap,optional"`
	NavGridOverlay *string       `bin:"mNavGridOverlay,optional"`
	Vfx            *propbin.Link `bin:"mVfx,optional"`
}

type ArenaRoundConfig struct {
	Rounds        *uint8            `bin:"mRounds,optional"`
	Ring          *ArenaRingConfig  `bin:"mRing,optional"`
	AugmentRounds []uint8           `bin:"mAugmentRounds,optional"`
	AugmentRule   *ArenaAugmentRule `bin:"mAugmentRule,optional"`
	ShopTime      *float32          `bin:"mShopTime,optional"`
}

type ArenaAugmentRule struct {
	TierWeights []float32 `bin:"mTierWeights,optional"`
	Rerolls     *uint8    `bin:"mRerolls,optional"`
}

type ArenaRingConfig struct {
	StartRadius     *float32 `bin:"mStartRadius,optional"`
	EndRadius       *float32 `bin:"mEndRadius,optional"`
	ShrinkTime      *float32 `bin:"mShrinkTime,optional"`
	DamagePerSecond *float32 `bin:"mDamagePerSecond,optional"`
}

type ClashBracketConfig struct {
	Teams  *uint8   `bin:"mTeams,optional"`
	Tiers  []string `bin:"mTiers,optional"`
	Rounds *uint8   `bin:"mRounds,optional"`
}

type MutatorDefinition struct {
	Name              string             `bin:"mName"`
	DescriptionTraKey *string            `bin:"mDescriptionTraKey,optional"`
	Rules             []EnumGameModeRule `bin:"mRules,optional"`
	Incompatible      []propbin.Link     `bin:"mIncompatible,optional"`
}

type MutatorSet struct {
	Name        string         `bin:"mName"`
	Mutators    []propbin.Link `bin:"mMutators,optional"`
	RandomCount *uint8         `bin:"mRandomCount,optional"`
}

type ObjectiveRewardGold struct {
	Amount   int32 `bin:"mAmount"`
	TeamWide *bool `bin:"mTeamWide,optional"`
}

type ObjectiveRewardBuff struct {
	Buff     propbin.Link `bin:"mBuff"`
	Duration *float32     `bin:"mDuration,optional"`
	TeamWide *bool        `bin:"mTeamWide,optional"`
}

type ObjectiveRewardExperience struct {
	Amount   float32 `bin:"mAmount"`
	TeamWide *bool   `bin:"mTeamWide,optional"`
}

type ObjectiveRewardSpawn struct {
	Unit  propbin.Link `bin:"mUnit"`
	Count *uint8       `bin:"mCount,optional"`
}

type ObjectiveRewardVision struct {
	Radius   *float32 `bin:"mRadius,optional"`
	Duration *float32 `bin:"mDuration,optional"`
}

type MinionWaveEveryN struct {
	N     uint8             `bin:"mN"`
	Entry *MinionSpawnEntry `bin:"mEntry,optional"`
}

type MinionWaveAfterTime struct {
	Seconds float32           `bin:"mSeconds"`
	Entry   *MinionSpawnEntry `bin:"mEntry,optional"`
}

type MinionWaveOnInhibitorDown struct {
	Entry *MinionSpawnEntry `bin:"mEntry,optional"`
}

type MinionWaveFixed struct {
	Entries []MinionSpawnEntry `bin:"mEntries,optional"`
}

type GameModeRuleMaxLevel struct {
	Level uint8 `bin:"mLevel"`
}

type GameModeRuleStartingGold struct {
	Gold int32 `bin:"mGold"`
}

type GameModeRuleGoldMultiplier struct {
	Multiplier float32 `bin:"mMultiplier"`
}

type GameModeRuleCooldownMultiplier struct {
	Multiplier    float32 `bin:"mMultiplier"`
	UltimatesOnly *bool   `bin:"mUltimatesOnly,optional"`
}

type GameModeRuleRandomChampion struct {
	Rerolls *uint8 `bin:"mRerolls,optional"`
}

type GameModeRuleSingleLane struct {
	Lane *uint8 `bin:"mLane,optional"`
}

type GameModeRuleNoRecall struct{}

type GameModeRuleSuddenDeath struct {
	AfterSeconds    float32  `bin:"mAfterSeconds"`
	DamagePerSecond *float32 `bin:"mDamagePerSecond,optional"`
}

type PlantBlastCone struct {
	KnockbackDistance *float32 `bin:"mKnockbackDistance,optional"`
	RevealRadius      *float32 `bin:"mRevealRadius,optional"`
}

type PlantHoneyfruit struct {
	HealAmount *float32 `bin:"mHealAmount,optional"`
	Slow       *float32 `bin:"mSlow,optional"`
}

type PlantScryersBloom struct {
	RevealRadius   *float32 `bin:"mRevealRadius,optional"`
	RevealDuration *float32 `bin:"mRevealDuration,optional"`
}

func (*ObjectiveRewardGold) objectiveReward()       {}
func (*ObjectiveRewardBuff) objectiveReward()       {}
func (*ObjectiveRewardExperience) objectiveReward() {}
func (*ObjectiveRewardSpawn) objectiveReward()      {}
func (*ObjectiveRewardVision) objectiveReward()     {}

func (*MinionWaveEveryN) minionWaveRule()          {}
func (*MinionWaveAfterTime) minionWaveRule()       {}
func (*MinionWaveOnInhibitorDown) minionWaveRule() {}
func (*MinionWaveFixed) minionWaveRule()           {}

func (*GameModeRuleMaxLevel) gameModeRule()           {}
func (*GameModeRuleStartingGold) gameModeRule()       {}
func (*GameModeRuleGoldMultiplier) gameModeRule()     {}
func (*GameModeRuleCooldownMultiplier) gameModeRule() {}
func (*GameModeRuleRandomChampion) gameModeRule()     {}
func (*GameModeRuleSingleLane) gameModeRule()         {}
func (*GameModeRuleNoRecall) gameModeRule()           {}
func (*GameModeRuleSuddenDeath) gameModeRule()        {}

func (*PlantBlastCone) plantType()    {}
func (*PlantHoneyfruit) plantType()   {}
func (*PlantScryersBloom) plantType() {}

func registerGameMode(b *propbin.Builder) {
	propbin.Record[GameModeConstants](b, "GameModeConstants", propbin.AsAsset())
	propbin.Record[GameModeMapData](b, "GameModeMapData", propbin.AsAsset())
	propbin.Record[MapSkinDefinition](b, "MapSkinDefinition", propbin.AsAsset())
	propbin.Record[MapObjectiveConfig](b, "MapObjectiveConfig")
	propbin.Record[DragonConfig](b, "DragonConfig")
	propbin.Record[DragonSoulConfig](b, "DragonSoulConfig")
	propbin.Record[BaronConfig](b, "BaronConfig")
	propbin.Record[HeraldConfig](b, "HeraldConfig")
	propbin.Record[GrubsConfig](b, "GrubsConfig")
	propbin.Record[ElderConfig](b, "ElderConfig")
	propbin.Record[TurretConfig](b, "TurretConfig")
	propbin.Record[TurretPlateConfig](b, "TurretPlateConfig")
	propbin.Record[InhibitorConfig](b, "InhibitorConfig")
	propbin.Record[NexusConfig](b, "NexusConfig")
	propbin.Record[JungleCampConfig](b, "JungleCampConfig")
	propbin.Record[JungleMonsterData](b, "JungleMonsterData")
	propbin.Record[MinionWaveConfig](b, "MinionWaveConfig")
	propbin.Record[MinionSpawnEntry](b, "MinionSpawnEntry")
	propbin.Record[MinionUpgradeRule](b, "MinionUpgradeRule")
	propbin.Record[CannonWaveRule](b, "CannonWaveRule")
	propbin.Record[SuperMinionRule](b, "SuperMinionRule")
	propbin.Record[RespawnTimerConfig](b, "RespawnTimerConfig")
	propbin.Record[RespawnTimerRow](b, "RespawnTimerRow")
	propbin.Record[ExperienceCurve](b, "ExperienceCurve")
	propbin.Record[ExperienceCurveRow](b, "ExperienceCurveRow")
	propbin.Record[BountyConfig](b, "BountyConfig")
	propbin.Record[ShutdownBountyConfig](b, "ShutdownBountyConfig")
	propbin.Record[AssistRules](b, "AssistRules")
	propbin.Record[SurrenderRules](b, "SurrenderRules")
	propbin.Record[AfkRules](b, "AfkRules")
	propbin.Record[RemakeRules](b, "RemakeRules")
	propbin.Record[VisionRules](b, "VisionRules")
	propbin.Record[WardLimitRules](b, "WardLimitRules")
	propbin.Record[FogOfWarConfig](b, "FogOfWarConfig")
	propbin.Record[BrushConfig](b, "BrushConfig")
	propbin.Record[RiftScuttlerConfig](b, "RiftScuttlerConfig")
	propbin.Record[PlantConfig](b, "PlantConfig")
	propbin.Record[PlantSpawnRule](b, "PlantSpawnRule")
	propbin.Record[MapTerrainChange](b, "MapTerrainChange")
	propbin.Record[ArenaRoundConfig](b, "ArenaRoundConfig")
	propbin.Record[ArenaAugmentRule](b, "ArenaAugmentRule")
	propbin.Record[ArenaRingConfig](b, "ArenaRingConfig")
	propbin.Record[ClashBracketConfig](b, "ClashBracketConfig", propbin.AsAsset())
	propbin.Record[MutatorDefinition](b, "MutatorDefinition", propbin.AsAsset())
	propbin.Record[MutatorSet](b, "MutatorSet", propbin.AsAsset())
	propbin.Record[ObjectiveRewardGold](b, "ObjectiveRewardGold")
	propbin.Record[ObjectiveRewardBuff](b, "ObjectiveRewardBuff")
	propbin.Record[ObjectiveRewardExperience](b, "ObjectiveRewardExperience")
	propbin.Record[ObjectiveRewardSpawn](b, "ObjectiveRewardSpawn")
	propbin.Record[ObjectiveRewardVision](b, "ObjectiveRewardVision")
	propbin.Variant[EnumObjectiveReward](b, "EnumObjectiveReward",
		propbin.Case[ObjectiveRewardGold](),
		propbin.Case[ObjectiveRewardBuff](),
		propbin.Case[ObjectiveRewardExperience](),
		propbin.Case[ObjectiveRewardSpawn](),
		propbin.Case[ObjectiveRewardVision](),
	)

	propbin.Record[MinionWaveEveryN](b, "MinionWaveEveryN")
	propbin.Record[MinionWaveAfterTime](b, "MinionWaveAfterTime")
	propbin.Record[MinionWaveOnInhibitorDown](b, "MinionWaveOnInhibitorDown")
	propbin.Record[MinionWaveFixed](b, "MinionWaveFixed")
	propbin.Variant[EnumMinionWaveRule](b, "EnumMinionWaveRule",
		propbin.Case[MinionWaveEveryN](),
		propbin.Case[MinionWaveAfterTime](),
		propbin.Case[MinionWaveOnInhibitorDown](),
		propbin.Case[MinionWaveFixed](),
	)

	propbin.Record[GameModeRuleMaxLevel](b, "GameModeRuleMaxLevel")
	propbin.Record[GameModeRuleStartingGold](b, "GameModeRuleStartingGold")
	propbin.Record[GameModeRuleGoldMultiplier](b, "GameModeRuleGoldMultiplier")
	propbin.Record[GameModeRuleCooldownMultiplier](b, "GameModeRuleCooldownMultiplier")
	propbin.Record[GameModeRuleRandomChampion](b, "GameModeRuleRandomChampion")
	propbin.Record[GameModeRuleSingleLane](b, "GameModeRuleSingleLane")
	propbin.Record[GameModeRuleNoRecall](b, "GameModeRuleNoRecall")
	propbin.Record[GameModeRuleSuddenDeath](b, "GameModeRuleSuddenDeath")
	propbin.Variant[EnumGameModeRule](b, "EnumGameModeRule",
		propbin.Case[GameModeRuleMaxLevel](),
		propbin.Case[GameModeRuleStartingGold](),
		propbin.Case[GameModeRuleGoldMultiplier](),
		propbin.Case[GameModeRuleCooldownMultiplier](),
		propbin.Case[GameModeRuleRandomChampion](),
		propbin.Case[GameModeRuleSingleLane](),
		propbin.Case[GameModeRuleNoRecall](),
		propbin.Case[GameModeRuleSuddenDeath](),
	)

	propbin.Record[PlantBlastCone](b, "PlantBlastCone")
	propbin.Record[PlantHoneyfruit](b, "PlantHoneyfruit")
	propbin.Record[PlantScryersBloom](b, "PlantScryersBloom")
	propbin.Variant[EnumPlantType](b, "EnumPlantType",
		propbin.Case[PlantBlastCone](),
		propbin.Case[PlantHoneyfruit](),
		propbin.Case[PlantScryersBloom](),
	)
}
