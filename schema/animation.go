package schema

import propbin "github.com/reoring/propbin"

// EnumClipData is one node of an animation graph.
type EnumClipData interface{ clipData() }

// EnumEventData is an event fired while a clip plays.
type EnumEventData interface{ eventData() }

// EnumBlendData selects how two clips are blended.
type EnumBlendData interface{ blendData() }

// EnumParametricUpdater feeds the parameter of parametric and conditional
// clips.
type EnumParametricUpdater interface{ parametricUpdater() }

// AnimationGraphData is the asset bound to a skinned character.
type AnimationGraphData struct {
	ClipDataMap       map[propbin.Hash]EnumClipData  `bin:"mClipDataMap,optional"`
	BlendDataTable    map[uint64]EnumBlendData       `bin:"mBlendDataTable,optional"`
	MaskDataMap       map[propbin.Hash]MaskData      `bin:"mMaskDataMap,optional"`
	TrackDataMap      map[propbin.Hash]TrackData     `bin:"mTrackDataMap,optional"`
	SyncGroupDataMap  map[propbin.Hash]SyncGroupData `bin:"mSyncGroupDataMap,optional"`
	UseCascadeBlend   *bool                          `bin:"mUseCascadeBlend,optional"`
	CascadeBlendValue *float32                       `bin:"mCascadeBlendValue,optional"`
	PathHashToSelf    *propbin.PathHash              `bin:"pathHashToSelf,optional"`
}

type AnimationResourceData struct {
	AnimationFilePath string `bin:"mAnimationFilePath"`
}

type MaskData struct {
	ID         *uint32   `bin:"mId,optional"`
	WeightList []float32 `bin:"mWeightList,optional"`
}

type TrackData struct {
	Priority    *uint8   `bin:"mPriority,optional"`
	BlendMode   *uint8   `bin:"mBlendMode,optional"`
	BlendWeight *float32 `bin:"mBlendWeight,optional"`
}

type SyncGroupData struct {
	Type *uint32 `bin:"mType,optional"`
}

// Clips.

type AtomicClipData struct {
	AnimationResourceData AnimationResourceData          `bin:"mAnimationResourceData"`
	TrackDataName         propbin.Hash                   `bin:"mTrackDataName"`
	Flags                 *uint32                        `bin:"mFlags,optional"`
	TickDuration          *float32                       `bin:"mTickDuration,optional"`
	EventDataMap          map[propbin.Hash]EnumEventData `bin:"mEventDataMap,optional"`
	MaskDataName          *propbin.Hash                  `bin:"mMaskDataName,optional"`
	SyncGroupDataName     *propbin.Hash                  `bin:"mSyncGroupDataName,optional"`
	UpdaterResourceData   *UpdaterResourceData           `bin:"mUpdaterResourceData,optional"`
	AccessorList          []propbin.Hash                 `bin:"mAccessorList,optional"`
}

type SequencerClipData struct {
	ClipNameList []propbin.Hash                 `bin:"mClipNameList,optional"`
	Flags        *uint32                        `bin:"mFlags,optional"`
	EventDataMap map[propbin.Hash]EnumEventData `bin:"mEventDataMap,optional"`
}

type SelectorPairData struct {
	ClipName    propbin.Hash `bin:"mClipName"`
	Probability *float32     `bin:"mProbability,optional"`
}

type SelectorClipData struct {
	SelectorPairDataList []SelectorPairData `bin:"mSelectorPairDataList,optional"`
	Flags                *uint32            `bin:"mFlags,optional"`
}

type ParallelClipData struct {
	ClipNameList []propbin.Hash `bin:"mClipNameList,optional"`
	Flags        *uint32        `bin:"mFlags,optional"`
}

type ParametricPairData struct {
	ClipName propbin.Hash `bin:"mClipName"`
	Value    *float32     `bin:"mValue,optional"`
}

type ParametricClipData struct {
	ParametricPairDataList []ParametricPairData           `bin:"mParametricPairDataList,optional"`
	Updater                EnumParametricUpdater          `bin:"mUpdater,optional"`
	TrackDataName          *propbin.Hash                  `bin:"mTrackDataName,optional"`
	MaskDataName           *propbin.Hash                  `bin:"mMaskDataName,optional"`
	EventDataMap           map[propbin.Hash]EnumEventData `bin:"mEventDataMap,optional"`
	Flags                  *uint32                        `bin:"mFlags,optional"`
}

type ConditionBoolClipData struct {
	TrueConditionClipName   propbin.Hash          `bin:"mTrueConditionClipName"`
	FalseConditionClipName  propbin.Hash          `bin:"mFalseConditionClipName"`
	Updater                 EnumParametricUpdater `bin:"mUpdater,optional"`
	ChildAnimDelaySwitch    *bool                 `bin:"mChildAnimDelaySwitch,optional"`
	DontStompTransitionClip *bool                 `bin:"mDontStompTransitionClip,optional"`
	Flags                   *uint32               `bin:"mFlags,optional"`
}

type ConditionFloatPairData struct {
	ClipName              propbin.Hash `bin:"mClipName"`
	Value                 *float32     `bin:"mValue,optional"`
	HoldAnimationToHigher *float32     `bin:"mHoldAnimationToHigher,optional"`
	HoldAnimationToLower  *float32     `bin:"mHoldAnimationToLower,optional"`
}

type ConditionFloatClipData struct {
	ConditionFloatPairDataList []ConditionFloatPairData `bin:"mConditionFloatPairDataList,optional"`
	Updater                    EnumParametricUpdater    `bin:"mUpdater,optional"`
	ChangeAnimationMidPlay     *bool                    `bin:"mChangeAnimationMidPlay,optional"`
	Flags                      *uint32                  `bin:"mFlags,optional"`
}

type UpdaterResourceData struct {
	UpdaterDataList []UpdaterData `bin:"mUpdaterDataList,optional"`
}

type UpdaterData struct {
	InputType  *uint32  `bin:"mInputType,optional"`
	OutputType *uint32  `bin:"mOutputType,optional"`
	Multiplier *float32 `bin:"mMultiplier,optional"`
}

// Events.

type ParticleEventData struct {
	Name                      *propbin.Hash           `bin:"mName,optional"`
	EffectKey                 *propbin.Hash           `bin:"mEffectKey,optional"`
	StartFrame                *float32                `bin:"mStartFrame,optional"`
	EndFrame                  *float32                `bin:"mEndFrame,optional"`
	IsLoop                    *bool                   `bin:"mIsLoop,optional"`
	IsKillEvent               *bool                   `bin:"mIsKillEvent,optional"`
	IsDetachable              *bool                   `bin:"mIsDetachable,optional"`
	Scale                     *float32                `bin:"mScale,optional"`
	ParticleEventDataPairList []ParticleEventDataPair `bin:"mParticleEventDataPairList,optional"`
}

type ParticleEventDataPair struct {
	BoneName       *propbin.Hash `bin:"mBoneName,optional"`
	TargetBoneName *propbin.Hash `bin:"mTargetBoneName,optional"`
}

type SoundEventData struct {
	Name       *propbin.Hash `bin:"mName,optional"`
	SoundName  *string       `bin:"mSoundName,optional"`
	StartFrame *float32      `bin:"mStartFrame,optional"`
	IsLoop     *bool         `bin:"mIsLoop,optional"`
	IsSelfOnly *bool         `bin:"mIsSelfOnly,optional"`
}

type SubmeshVisibilityEventData struct {
	Name            *propbin.Hash  `bin:"mName,optional"`
	StartFrame      *float32       `bin:"mStartFrame,optional"`
	EndFrame        *float32       `bin:"mEndFrame,optional"`
	ShowSubmeshList []propbin.Hash `bin:"mShowSubmeshList,optional"`
	HideSubmeshList []propbin.Hash `bin:"mHideSubmeshList,optional"`
}

type FaceTargetEventData struct {
	Name         *propbin.Hash `bin:"mName,optional"`
	StartFrame   *float32      `bin:"mStartFrame,optional"`
	EndFrame     *float32      `bin:"mEndFrame,optional"`
	FaceTarget   *uint8        `bin:"mFaceTarget,optional"`
	BlendInTime  *float32      `bin:"mBlendInTime,optional"`
	BlendOutTime *float32      `bin:"mBlendOutTime,optional"`
}

type IdleParticlesVisibilityEventData struct {
	Name       *propbin.Hash `bin:"mName,optional"`
	StartFrame *float32      `bin:"mStartFrame,optional"`
	Show       *bool         `bin:"mShow,optional"`
}

type StopAnimationEventData struct {
	Name              *propbin.Hash `bin:"mName,optional"`
	StartFrame        *float32      `bin:"mStartFrame,optional"`
	StopAnimationName propbin.Hash  `bin:"mStopAnimationName"`
}

type EnableLookAtEventData struct {
	Name              *propbin.Hash `bin:"mName,optional"`
	StartFrame        *float32      `bin:"mStartFrame,optional"`
	EnableLookAt      *bool         `bin:"mEnableLookAt,optional"`
	LockCurrentValues *bool         `bin:"mLockCurrentValues,optional"`
}

// Blends.

type TimeBlendData struct {
	Time *float32 `bin:"mTime,optional"`
}

type TransitionClipBlendData struct {
	ClipName propbin.Hash `bin:"mClipName"`
}

// Updaters.

type MoveSpeedParametricUpdater struct{}

type AttackSpeedParametricUpdater struct{}

type FacingParametricUpdater struct{}

type IsMovingParametricUpdater struct{}

type LookAtInterestAngleParametricUpdater struct {
	LookAtInterest *uint32 `bin:"mLookAtInterest,optional"`
}

func (*AtomicClipData) clipData()         {}
func (*SequencerClipData) clipData()      {}
func (*SelectorClipData) clipData()       {}
func (*ParallelClipData) clipData()       {}
func (*ParametricClipData) clipData()     {}
func (*ConditionBoolClipData) clipData()  {}
func (*ConditionFloatClipData) clipData() {}

func (*ParticleEventData) eventData()                {}
func (*SoundEventData) eventData()                   {}
func (*SubmeshVisibilityEventData) eventData()       {}
func (*FaceTargetEventData) eventData()              {}
func (*IdleParticlesVisibilityEventData) eventData() {}
func (*StopAnimationEventData) eventData()           {}
func (*EnableLookAtEventData) eventData()            {}

func (*TimeBlendData) blendData()           {}
func (*TransitionClipBlendData) blendData() {}

func (*MoveSpeedParametricUpdater) parametricUpdater()           {}
func (*AttackSpeedParametricUpdater) parametricUpdater()         {}
func (*FacingParametricUpdater) parametricUpdater()              {}
func (*IsMovingParametricUpdater) parametricUpdater()            {}
func (*LookAtInterestAngleParametricUpdater) parametricUpdater() {}

func registerAnimation(b *propbin.Builder) {
	propbin.Record[AnimationGraphData](b, "AnimationGraphData", propbin.AsAsset())
	propbin.Record[AnimationResourceData](b, "AnimationResourceData")
	propbin.Record[MaskData](b, "MaskData")
	propbin.Record[TrackData](b, "TrackData")
	propbin.Record[SyncGroupData](b, "SyncGroupData")
	propbin.Record[UpdaterResourceData](b, "UpdaterResourceData")
	propbin.Record[UpdaterData](b, "UpdaterData")
	propbin.Record[SelectorPairData](b, "SelectorPairData")
	propbin.Record[ParametricPairData](b, "ParametricPairData")
	propbin.Record[ConditionFloatPairData](b, "ConditionFloatPairData")
	propbin.Record[ParticleEventDataPair](b, "ParticleEventDataPair")

	propbin.Record[AtomicClipData](b, "AtomicClipData")
	propbin.Record[SequencerClipData](b, "SequencerClipData")
	propbin.Record[SelectorClipData](b, "SelectorClipData")
	propbin.Record[ParallelClipData](b, "ParallelClipData")
	propbin.Record[ParametricClipData](b, "ParametricClipData")
	propbin.Record[ConditionBoolClipData](b, "ConditionBoolClipData")
	propbin.Record[ConditionFloatClipData](b, "ConditionFloatClipData")
	propbin.Variant[EnumClipData](b, "EnumClipData",
		propbin.Case[AtomicClipData](),
		propbin.Case[SequencerClipData](),
		propbin.Case[SelectorClipData](),
		propbin.Case[ParallelClipData](),
		propbin.Case[ParametricClipData](),
		propbin.Case[ConditionBoolClipData](),
		propbin.Case[ConditionFloatClipData](),
	)

	propbin.Record[ParticleEventData](b, "ParticleEventData")
	propbin.Record[SoundEventData](b, "SoundEventData")
	propbin.Record[SubmeshVisibilityEventData](b, "SubmeshVisibilityEventData")
	propbin.Record[FaceTargetEventData](b, "FaceTargetEventData")
	propbin.Record[IdleParticlesVisibilityEventData](b, "IdleParticlesVisibilityEventData")
	propbin.Record[StopAnimationEventData](b, "StopAnimationEventData")
	propbin.Record[EnableLookAtEventData](b, "EnableLookAtEventData")
	propbin.Variant[EnumEventData](b, "EnumEventData",
		propbin.Case[ParticleEventData](),
		propbin.Case[SoundEventData](),
		propbin.Case[SubmeshVisibilityEventData](),
		propbin.Case[FaceTargetEventData](),
		propbin.Case[IdleParticlesVisibilityEventData](),
		propbin.Case[StopAnimationEventData](),
		propbin.Case[EnableLookAtEventData](),
	)

	propbin.Record[TimeBlendData](b, "TimeBlendData")
	propbin.Record[TransitionClipBlendData](b, "TransitionClipBlendData")
	propbin.Variant[EnumBlendData](b, "EnumBlendData",
		propbin.Case[TimeBlendData](),
		propbin.Case[TransitionClipBlendData](),
	)

	propbin.Record[MoveSpeedParametricUpdater](b, "MoveSpeedParametricUpdater")
	propbin.Record[AttackSpeedParametricUpdater](b, "AttackSpeedParametricUpdater")
	propbin.Record[FacingParametricUpdater](b, "FacingParametricUpdater")
	propbin.Record[IsMovingParametricUpdater](b, "IsMovingParametricUpdater")
	propbin.Record[LookAtInterestAngleParametricUpdater](b, "LookAtInterestAngleParametricUpdater")
	propbin.Variant[EnumParametricUpdater](b, "EnumParametricUpdater",
		propbin.Case[MoveSpeedParametricUpdater](),
		propbin.Case[AttackSpeedParametricUpdater](),
		propbin.Case[FacingParametricUpdater](),
		propbin.Case[IsMovingParametricUpdater](),
		propbin.Case[LookAtInterestAngleParametricUpdater](),
	)
}
