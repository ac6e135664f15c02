package schema

import propbin "github.com/reoring/propbin"

// EnumAudioParameter is a parameter set on an event when it plays.
type EnumAudioParameter interface{ audioParameter() }

// EnumMusicCondition decides when the music moves to another track.
type EnumMusicCondition interface{ musicCondition() }

// EnumAnnouncerTrigger is the game event an announcer line reacts to.
type EnumAnnouncerTrigger interface{ announcerTrigger() }

// AudioBankData lists the sound banks and events a character or map loads.
type AudioBankData struct {
	Name           string            `bin:"mName"`
	BankPaths      []string          `bin:"mBankPaths,optional"`
	Events         []AudioEventData  `bin:"mEvents,optional"`
	Streaming      *bool             `bin:"mStreaming,optional"`
	AsyncLoad      *bool             `bin:"mAsyncLoad,optional"`
	MemoryBudget   *uint32           `bin:"mMemoryBudget,optional"`
	PathHashToSelf *propbin.PathHash `bin:"pathHashToSelf,optional"`
}

type AudioBankUnit struct {
	Name       string   `bin:"name"`
	BankPath   []string `bin:"bankPath,optional"`
	Events     []string `bin:"events,optional"`
	Asynchrone *bool    `bin:"asynchrone,optional"`
	VoiceOver  *bool    `bin:"voiceOver,optional"`
}

type AudioEventData struct {
	Name         string                `bin:"mName"`
	Bus          *propbin.Link         `bin:"mBus,optional"`
	Priority     *AudioPriorityRule    `bin:"mPriority,optional"`
	Parameters   []EnumAudioParameter  `bin:"mParameters,optional"`
	Spatial      *AudioSpatialSettings `bin:"mSpatial,optional"`
	Volume       *float32              `bin:"mVolume,optional"`
	Pitch        *float32              `bin:"mPitch,optional"`
	Cooldown     *float32              `bin:"mCooldown,optional"`
	MaxInstances *uint8                `bin:"mMaxInstances,optional"`
}

type AudioSwitchGroup struct {
	Name     string   `bin:"mName"`
	Switches []string `bin:"mSwitches,optional"`
	Default  *string  `bin:"mDefault,optional"`
}

type AudioStateGroup struct {
	Name           string   `bin:"mName"`
	States         []string `bin:"mStates,optional"`
	Default        *string  `bin:"mDefault,optional"`
	TransitionTime *float32 `bin:"mTransitionTime,optional"`
}

type AudioRtpcData struct {
	Name    string            `bin:"mName"`
	Min     *float32          `bin:"mMin,optional"`
	Max     *float32          `bin:"mMax,optional"`
	Default *float32          `bin:"mDefault,optional"`
	Curve   *AudioVolumeCurve `bin:"mCurve,optional"`
}

type AudioMixerBus struct {
	Name      string             `bin:"mName"`
	Parent    *propbin.Link      `bin:"mParent,optional"`
	Volume    *float32           `bin:"mVolume,optional"`
	Ducking   []AudioDuckingRule `bin:"mDucking,optional"`
	MaxVoices *uint16            `bin:"mMaxVoices,optional"`
}

type AudioDuckingRule struct {
	TargetBus propbin.Link `bin:"mTargetBus"`
	Amount    *float32     `bin:"mAmount,optional"`
	Attack    *float32     `bin:"mAttack,optional"`
	Release   *float32     `bin:"mRelease,optional"`
}

type AudioListenerConfig struct {
	HeightOffset  *float32 `bin:"mHeightOffset,optional"`
	FollowCamera  *bool    `bin:"mFollowCamera,optional"`
	DistanceScale *float32 `bin:"mDistanceScale,optional"`
}

type AudioOcclusionConfig struct {
	Enabled       *bool    `bin:"mEnabled,optional"`
	FogOcclusion  *float32 `bin:"mFogOcclusion,optional"`
	WallOcclusion *float32 `bin:"mWallOcclusion,optional"`
	LowPassCutoff *float32 `bin:"mLowPassCutoff,optional"`
}

type AudioReverbZone struct {
	Name   string        `bin:"mName"`
	Center *propbin.Vec3 `bin:"mCenter,optional"`
	Radius *float32      `bin:"mRadius,optional"`
	Preset *string       `bin:"mPreset,optional"`
	Mix    *float32      `bin:"mMix,optional"`
}

type AudioAmbientEmitter struct {
	Name           string        `bin:"mName"`
	Event          string        `bin:"mEvent"`
	Position       *propbin.Vec3 `bin:"mPosition,optional"`
	Radius         *float32      `bin:"mRadius,optional"`
	RandomInterval *propbin.Vec2 `bin:"mRandomInterval,optional"`
}

type AudioFootstepSet struct {
	Name         string                 `bin:"mName"`
	Surfaces     []AudioFootstepSurface `bin:"mSurfaces,optional"`
	DefaultEvent *string                `bin:"mDefaultEvent,optional"`
}

type AudioFootstepSurface struct {
	Surface propbin.Hash `bin:"mSurface"`
	Event   string       `bin:"mEvent"`
	Volume  *float32     `bin:"mVolume,optional"`
}

type AudioVoiceOverTrigger struct {
	Trigger  string               `bin:"mTrigger"`
	Lines    []AudioVoiceOverLine `bin:"mLines,optional"`
	Cooldown *float32             `bin:"mCooldown,optional"`
	Chance   *float32             `bin:"mChance,optional"`
	Priority *uint8               `bin:"mPriority,optional"`
}

type AudioVoiceOverLine struct {
	Event     string   `bin:"mEvent"`
	Weight    *float32 `bin:"mWeight,optional"`
	Condition *string  `bin:"mCondition,optional"`
}

type AudioMusicTrack struct {
	Name    string   `bin:"mName"`
	Event   string   `bin:"mEvent"`
	Loop    *bool    `bin:"mLoop,optional"`
	FadeIn  *float32 `bin:"mFadeIn,optional"`
	FadeOut *float32 `bin:"mFadeOut,optional"`
}

type AudioMusicPlaylist struct {
	Name        string                 `bin:"mName"`
	Tracks      []AudioMusicTrack      `bin:"mTracks,optional"`
	Transitions []AudioMusicTransition `bin:"mTransitions,optional"`
	Shuffle     *bool                  `bin:"mShuffle,optional"`
}

type AudioMusicTransition struct {
	From      string             `bin:"mFrom"`
	To        string             `bin:"mTo"`
	Condition EnumMusicCondition `bin:"mCondition,optional"`
	Crossfade *float32           `bin:"mCrossfade,optional"`
}

type AudioAnnouncerData struct {
	Name           string               `bin:"mName"`
	Lines          []AudioAnnouncerLine `bin:"mLines,optional"`
	Locale         *string              `bin:"mLocale,optional"`
	Volume         *float32             `bin:"mVolume,optional"`
	PathHashToSelf *propbin.PathHash    `bin:"pathHashToSelf,optional"`
}

type AudioAnnouncerLine struct {
	Trigger   EnumAnnouncerTrigger `bin:"mTrigger"`
	Event     string               `bin:"mEvent"`
	Priority  *uint8               `bin:"mPriority,optional"`
	Queueable *bool                `bin:"mQueueable,optional"`
	Cooldown  *float32             `bin:"mCooldown,optional"`
}

type AudioSpatialSettings struct {
	MinDistance         *float32 `bin:"mMinDistance,optional"`
	MaxDistance         *float32 `bin:"mMaxDistance,optional"`
	Rolloff             *uint8   `bin:"mRolloff,optional"`
	FogOfWarAttenuation *bool    `bin:"mFogOfWarAttenuation,optional"`
}

type AudioCompressionSettings struct {
	Format     *uint8   `bin:"mFormat,optional"`
	Quality    *float32 `bin:"mQuality,optional"`
	SampleRate *uint32  `bin:"mSampleRate,optional"`
}

type AudioPriorityRule struct {
	Priority             uint8 `bin:"mPriority"`
	StealOldest          *bool `bin:"mStealOldest,optional"`
	VirtualizeWhenSilent *bool `bin:"mVirtualizeWhenSilent,optional"`
}

type AudioVolumeCurve struct {
	Points        []AudioCurvePoint `bin:"mPoints,optional"`
	Interpolation *uint8            `bin:"mInterpolation,optional"`
}

type AudioCurvePoint struct {
	X float32 `bin:"mX"`
	Y float32 `bin:"mY"`
}

type AudioEmitterGroup struct {
	Name       string                `bin:"mName"`
	Emitters   []AudioAmbientEmitter `bin:"mEmitters,optional"`
	MaxPlaying *uint8                `bin:"mMaxPlaying,optional"`
}

type AudioTriggerVolume struct {
	Name       string        `bin:"mName"`
	Min        *propbin.Vec3 `bin:"mMin,optional"`
	Max        *propbin.Vec3 `bin:"mMax,optional"`
	EnterEvent *string       `bin:"mEnterEvent,optional"`
	ExitEvent  *string       `bin:"mExitEvent,optional"`
}

type AudioMapConfig struct {
	Banks          []propbin.Link            `bin:"mBanks,optional"`
	Listener       *AudioListenerConfig      `bin:"mListener,optional"`
	Occlusion      *AudioOcclusionConfig     `bin:"mOcclusion,optional"`
	ReverbZones    []AudioReverbZone         `bin:"mReverbZones,optional"`
	EmitterGroups  []AudioEmitterGroup       `bin:"mEmitterGroups,optional"`
	TriggerVolumes []AudioTriggerVolume      `bin:"mTriggerVolumes,optional"`
	Playlist       *propbin.Link             `bin:"mPlaylist,optional"`
	SwitchGroups   []AudioSwitchGroup        `bin:"mSwitchGroups,optional"`
	StateGroups    []AudioStateGroup         `bin:"mStateGroups,optional"`
	Rtpcs          []AudioRtpcData           `bin:"mRtpcs,optional"`
	Compression    *AudioCompressionSettings `bin:"mCompression,optional"`
	PathHashToSelf *propbin.PathHash         `bin:"pathHashToSelf,optional"`
}

type AudioParameterFloat struct {
	Name  string        `bin:"mName"`
	Value *float32      `bin:"mValue,optional"`
	Rtpc  *propbin.Link `bin:"mRtpc,optional"`
}

type AudioParameterSwitch struct {
	Group  string `bin:"mGroup"`
	Switch string `bin:"mSwitch"`
}

type AudioParameterState struct {
	Group string `bin:"mGroup"`
	State string `bin:"mState"`
}

type AudioParameterTrigger struct {
	Name string `bin:"mName"`
}

type MusicConditionGameTime struct {
	AfterSeconds float32 `bin:"mAfterSeconds"`
}

type MusicConditionTeamGoldLead struct {
	MinLead *int32 `bin:"mMinLead,optional"`
	Ahead   *bool  `bin:"mAhead,optional"`
}

type MusicConditionObjective struct {
	Objective propbin.Hash `bin:"mObjective"`
}

type MusicConditionCombat struct {
	Intensity *float32 `bin:"mIntensity,optional"`
}

type MusicConditionAlways struct{}

type AnnouncerTriggerKill struct {
	FirstBlood *bool `bin:"mFirstBlood,optional"`
	Shutdown   *bool `bin:"mShutdown,optional"`
}

type AnnouncerTriggerMultiKill struct {
	Count uint8 `bin:"mCount"`
}

type AnnouncerTriggerObjective struct {
	Objective propbin.Hash `bin:"mObjective"`
	Ally      *bool        `bin:"mAlly,optional"`
}

type AnnouncerTriggerStructure struct {
	StructureType uint8 `bin:"mStructureType"`
	Ally          *bool `bin:"mAlly,optional"`
}

type AnnouncerTriggerGameState struct {
	State string `bin:"mState"`
}

type AnnouncerTriggerAce struct {
	Ally *bool `bin:"mAlly,optional"`
}

func (*AudioParameterFloat) audioParameter()   {}
func (*AudioParameterSwitch) audioParameter()  {}
func (*AudioParameterState) audioParameter()   {}
func (*AudioParameterTrigger) audioParameter() {}

func (*MusicConditionGameTime) musicCondition()     {}
func (*MusicConditionTeamGoldLead) musicCondition() {}
func (*MusicConditionObjective) musicCondition()    {}
func (*MusicConditionCombat) musicCondition()       {}
func (*MusicConditionAlways) musicCondition()       {}

func (*AnnouncerTriggerKill) announcerTrigger()      {}
func (*AnnouncerTriggerMultiKill) announcerTrigger() {}
func (*AnnouncerTriggerObjective) announcerTrigger() {}
func (*AnnouncerTriggerStructure) announcerTrigger() {}
func (*AnnouncerTriggerGameState) announcerTrigger() {}
func (*AnnouncerTriggerAce) announcerTrigger()       {}

func registerAudio(b *propbin.Builder) {
	propbin.Record[AudioBankData](b, "AudioBankData", propbin.AsAsset())
	propbin.Record[AudioBankUnit](b, "AudioBankUnit")
	propbin.Record[AudioEventData](b, "AudioEventData")
	propbin.Record[AudioSwitchGroup](b, "AudioSwitchGroup")
	propbin.Record[AudioStateGroup](b, "AudioStateGroup")
	propbin.Record[AudioRtpcData](b, "AudioRtpcData")
	propbin.Record[AudioMixerBus](b, "AudioMixerBus", propbin.AsAsset())
	propbin.Record[AudioDuckingRule](b, "AudioDuckingRule")
	propbin.Record[AudioListenerConfig](b, "AudioListenerConfig")
	propbin.Record[AudioOcclusionConfig](b, "AudioOcclusionConfig")
	propbin.Record[AudioReverbZone](b, "AudioReverbZone")
	propbin.Record[AudioAmbientEmitter](b, "AudioAmbientEmitter")
	propbin.Record[AudioFootstepSet](b, "AudioFootstepSet", propbin.AsAsset())
	propbin.Record[AudioFootstepSurface](b, "AudioFootstepSurface")
	propbin.Record[AudioVoiceOverTrigger](b, "AudioVoiceOverTrigger")
	propbin.Record[AudioVoiceOverLine](b, "AudioVoiceOverLine")
	propbin.Record[AudioMusicTrack](b, "AudioMusicTrack")
	propbin.Record[AudioMusicPlaylist](b, "AudioMusicPlaylist", propbin.AsAsset())
	propbin.Record[AudioMusicTransition](b, "AudioMusicTransition")
	propbin.Record[AudioAnnouncerData](b, "AudioAnnouncerData", propbin.AsAsset())
	propbin.Record[AudioAnnouncerLine](b, "AudioAnnouncerLine")
	propbin.Record[AudioSpatialSettings](b, "AudioSpatialSettings")
	propbin.Record[AudioCompressionSettings](b, "AudioCompressionSettings")
	propbin.Record[AudioPriorityRule](b, "AudioPriorityRule")
	propbin.Record[AudioVolumeCurve](b, "AudioVolumeCurve")
	propbin.Record[AudioCurvePoint](b, "AudioCurvePoint")
	propbin.Record[AudioEmitterGroup](b, "AudioEmitterGroup")
	propbin.Record[AudioTriggerVolume](b, "AudioTriggerVolume")
	propbin.Record[AudioMapConfig](b, "AudioMapConfig", propbin.AsAsset())
	propbin.Record[AudioParameterFloat](b, "AudioParameterFloat")
	propbin.Record[AudioParameterSwitch](b, "AudioParameterSwitch")
	propbin.Record[AudioParameterState](b, "AudioParameterState")
	propbin.Record[AudioParameterTrigger](b, "AudioParameterTrigger")
	propbin.Variant[EnumAudioParameter](b, "EnumAudioParameter",
		propbin.Case[AudioParameterFloat](),
		propbin.Case[AudioParameterSwitch](),
		propbin.Case[AudioParameterState](),
		propbin.Case[AudioParameterTrigger](),
	)

	propbin.Record[MusicConditionGameTime](b, "MusicConditionGameTime")
	propbin.Record[MusicConditionTeamGoldLead](b, "MusicConditionTeamGoldLead")
	propbin.Record[MusicConditionObjective](b, "MusicConditionObjective")
	propbin.Record[MusicConditionCombat](b, "MusicConditionCombat")
	propbin.Record[MusicConditionAlways](b, "MusicConditionAlways")
	propbin.Variant[EnumMusicCondition](b, "EnumMusicCondition",
		propbin.Case[MusicConditionGameTime](),
		propbin.Case[MusicConditionTeamGoldLead](),
		propbin.Case[MusicConditionObjective](),
		propbin.Case[MusicConditionCombat](),
		propbin.Case[MusicConditionAlways](),
	)

	propbin.Record[AnnouncerTriggerKill](b, "AnnouncerTriggerKill")
	propbin.Record[AnnouncerTriggerMultiKill](b, "AnnouncerTriggerMultiKill")
	propbin.Record[AnnouncerTriggerObjective](b, "AnnouncerTriggerObjective")
	propbin.Record[AnnouncerTriggerStructure](b, "AnnouncerTriggerStructure")
	propbin.Record[AnnouncerTriggerGameState](b, "AnnouncerTriggerGameState")
	propbin.Record[AnnouncerTriggerAce](b, "AnnouncerTriggerAce")
	propbin.Variant[EnumAnnouncerTrigger](b, "EnumAnnouncerTrigger",
		propbin.Case[AnnouncerTriggerKill](),
		propbin.Case[AnnouncerTriggerMultiKill](),
		propbin.Case[AnnouncerTriggerObjective](),
		propbin.Case[AnnouncerTriggerStructure](),
		propbin.Case[AnnouncerTriggerGameState](),
		propbin.Case[AnnouncerTriggerAce](),
	)
}
