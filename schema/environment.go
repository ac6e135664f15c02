package schema

import propbin "github.com/reoring/propbin"

// EnumCameraMode is how the camera picks its position each frame.
type EnumCameraMode interface{ cameraMode() }

// EnumMinimapIcon is how a unit is drawn on the minimap.
type EnumMinimapIcon interface{ minimapIcon() }

// EnumPingType is one entry of the ping wheel.
type EnumPingType interface{ pingType() }

// EnumPostEffect is one full-screen pass applied after lighting.
type EnumPostEffect interface{ postEffect() }

// CameraConfig tunes the gameplay camera for a map.
type CameraConfig struct {
	Mode               EnumCameraMode                   `bin:"mMode,optional"`
	Modes              map[propbin.Hash]EnumCameraMode  `bin:"mModes,optional"`
	Shakes             map[propbin.Hash]CameraShakeData `bin:"mShakes,optional"`
	PathHashToSelf     *propbin.PathHash                `bin:"pathHashToSelf,optional"`
	FieldOfView        *float32                         `bin:"mFieldOfView,optional"`
	NearPlane          *float32                         `bin:"mNearPlane,optional"`
	FarPlane           *float32                         `bin:"mFarPlane,optional"`
	Pitch              *float32                         `bin:"mPitch,optional"`
	Yaw                *float32                         `bin:"mYaw,optional"`
	MinZoom            *float32                         `bin:"mMinZoom,optional"`
	MaxZoom            *float32                         `bin:"mMaxZoom,optional"`
	DefaultZoom        *float32                         `bin:"mDefaultZoom,optional"`
	ZoomSpeed          *float32                         `bin:"mZoomSpeed,optional"`
	ZoomSmoothing      *float32                         `bin:"mZoomSmoothing,optional"`
	PanSpeed           *float32                         `bin:"mPanSpeed,optional"`
	PanSmoothing       *float32                         `bin:"mPanSmoothing,optional"`
	EdgePanMargin      *float32                         `bin:"mEdgePanMargin,optional"`
	EdgePanSpeed       *float32                         `bin:"mEdgePanSpeed,optional"`
	DragPanSpeed       *float32                         `bin:"mDragPanSpeed,optional"`
	FollowLag          *float32                         `bin:"mFollowLag,optional"`
	FollowLeadDistance *float32                         `bin:"mFollowLeadDistance,optional"`
	DeathDesaturation  *float32                         `bin:"mDeathDesaturation,optional"`
	DeathZoom          *float32                         `bin:"mDeathZoom,optional"`
	RecenterSpeed      *float32                         `bin:"mRecenterSpeed,optional"`
	BoundsPadding      *float32                         `bin:"mBoundsPadding,optional"`
	ShakeScale         *float32                         `bin:"mShakeScale,optional"`
	HeightOffset       *float32                         `bin:"mHeightOffset,optional"`
	TiltAtMaxZoom      *float32                         `bin:"mTiltAtMaxZoom,optional"`
	TiltAtMinZoom      *float32                         `bin:"mTiltAtMinZoom,optional"`
	SpectatorZoom      *float32                         `bin:"mSpectatorZoom,optional"`
	SpectatorSpeed     *float32                         `bin:"mSpectatorSpeed,optional"`
	CinematicBlendTime *float32                         `bin:"mCinematicBlendTime,optional"`
	ClampMarginX       *float32                         `bin:"mClampMarginX,optional"`
	ClampMarginY       *float32                         `bin:"mClampMarginY,optional"`
}

type CameraShakeData struct {
	Layers        []CameraShakeLayer `bin:"mLayers,optional"`
	FalloffRadius *float32           `bin:"mFalloffRadius,optional"`
	Duration      *float32           `bin:"mDuration,optional"`
}

type CameraShakeLayer struct {
	Amplitude *propbin.Vec3 `bin:"mAmplitude,optional"`
	Frequency *float32      `bin:"mFrequency,optional"`
	Decay     *float32      `bin:"mDecay,optional"`
}

type CameraKeyframe struct {
	Time        float32       `bin:"mTime"`
	Position    *propbin.Vec3 `bin:"mPosition,optional"`
	LookAt      *propbin.Vec3 `bin:"mLookAt,optional"`
	FieldOfView *float32      `bin:"mFieldOfView,optional"`
}

type CameraModeLocked struct {
	Offset *propbin.Vec3 `bin:"mOffset,optional"`
}

type CameraModeFree struct {
	EdgePan *bool `bin:"mEdgePan,optional"`
}

type CameraModeFollow struct {
	Target *propbin.Link `bin:"mTarget,optional"`
	Lag    *float32      `bin:"mLag,optional"`
}

type CameraModeSpectator struct {
	AutoDirector *bool `bin:"mAutoDirector,optional"`
}

type CameraModeDirected struct {
	Keyframes []CameraKeyframe `bin:"mKeyframes,optional"`
}

type CameraModeCinematic struct {
	Path      []CameraKeyframe `bin:"mPath,optional"`
	Letterbox *bool            `bin:"mLetterbox,optional"`
}

type MinimapData struct {
	Texture        string                           `bin:"mTexture"`
	WorldBounds    *propbin.Vec4                    `bin:"mWorldBounds,optional"`
	IconScale      *float32                         `bin:"mIconScale,optional"`
	Icons          map[propbin.Hash]EnumMinimapIcon `bin:"mIcons,optional"`
	Pings          map[propbin.Hash]PingTypeData    `bin:"mPings,optional"`
	PathHashToSelf *propbin.PathHash                `bin:"pathHashToSelf,optional"`
}

type MinimapIconStatic struct {
	Texture string        `bin:"mTexture"`
	Size    *propbin.Vec2 `bin:"mSize,optional"`
}

type MinimapIconAnimated struct {
	Flipbook string   `bin:"mFlipbook"`
	Frames   *uint16  `bin:"mFrames,optional"`
	Fps      *float32 `bin:"mFps,optional"`
}

type MinimapIconChampion struct {
	BorderAlly  *propbin.Color `bin:"mBorderAlly,optional"`
	BorderEnemy *propbin.Color `bin:"mBorderEnemy,optional"`
}

type MinimapIconObjective struct {
	Texture   string `bin:"mTexture"`
	TimerText *bool  `bin:"mTimerText,optional"`
}

type MinimapIconPing struct {
	Texture  string   `bin:"mTexture"`
	Duration *float32 `bin:"mDuration,optional"`
}

type MinimapPingData struct {
	Type     EnumPingType  `bin:"mType"`
	Position *propbin.Vec3 `bin:"mPosition,optional"`
	Target   *propbin.Link `bin:"mTarget,optional"`
}

type PingTypeData struct {
	Name     string        `bin:"mName"`
	Icon     *string       `bin:"mIcon,optional"`
	Sound    *string       `bin:"mSound,optional"`
	Vfx      *propbin.Link `bin:"mVfx,optional"`
	Cooldown *float32      `bin:"mCooldown,optional"`
	Type     EnumPingType  `bin:"mType,optional"`
}

type PingAlert struct {
	AllowOnUnits *bool `bin:"mAllowOnUnits,optional"`
}

type PingDanger struct {
	AllowOnUnits *bool `bin:"mAllowOnUnits,optional"`
}

type PingOnMyWay struct{}

type PingAssistMe struct {
	AllowOnUnits *bool `bin:"mAllowOnUnits,optional"`
}

type PingMissing struct{}

type PingEnemyVision struct{}

type PingNeedVision struct{}

type PingRetreat struct{}

type PingPush struct{}

type PingAllIn struct{}

type PingHold struct{}

type PingBait struct{}

type WeatherData struct {
	Name              string        `bin:"mName"`
	RainVfx           *propbin.Link `bin:"mRainVfx,optional"`
	FogDensity        *float32      `bin:"mFogDensity,optional"`
	WindDirection     *propbin.Vec2 `bin:"mWindDirection,optional"`
	WindStrength      *float32      `bin:"mWindStrength,optional"`
	LightningInterval *propbin.Vec2 `bin:"mLightningInterval,optional"`
}

type SkyboxData struct {
	Texture  string         `bin:"mTexture"`
	Rotation *float32       `bin:"mRotation,optional"`
	Tint     *propbin.Color `bin:"mTint,optional"`
}

type LightingEnvironmentData struct {
	Name             string               `bin:"mName"`
	Sun              *SunPropertiesData   `bin:"mSun,optional"`
	Skybox           *SkyboxData          `bin:"mSkybox,optional"`
	Shadows          *ShadowSettingsData  `bin:"mShadows,optional"`
	Post             *PostProcessSettings `bin:"mPost,optional"`
	Grass            *GrassTintData       `bin:"mGrass,optional"`
	Water            *WaterSettingsData   `bin:"mWater,optional"`
	AmbientColor     *propbin.Color       `bin:"mAmbientColor,optional"`
	AmbientIntensity *float32             `bin:"mAmbientIntensity,optional"`
	Effects          []EnumPostEffect     `bin:"mEffects,optional"`
	PathHashToSelf   *propbin.PathHash    `bin:"pathHashToSelf,optional"`
}

type SunPropertiesData struct {
	Direction   *propbin.Vec3  `bin:"mDirection,optional"`
	Color       *propbin.Color `bin:"mColor,optional"`
	Intensity   *float32       `bin:"mIntensity,optional"`
	ShadowColor *propbin.Color `bin:"mShadowColor,optional"`
}

type ShadowSettingsData struct {
	Resolution *uint16  `bin:"mResolution,optional"`
	Distance   *float32 `bin:"mDistance,optional"`
	Bias       *float32 `bin:"mBias,optional"`
	Softness   *float32 `bin:"mSoftness,optional"`
}

type PostProcessSettings struct {
	ColorGrading *ColorGradingData     `bin:"mColorGrading,optional"`
	Bloom        *BloomSettings        `bin:"mBloom,optional"`
	DepthOfField *DepthOfFieldSettings `bin:"mDepthOfField,optional"`
	Exposure     *float32              `bin:"mExposure,optional"`
}

type ColorGradingData struct {
	Lut        *string        `bin:"mLut,optional"`
	Contrast   *float32       `bin:"mContrast,optional"`
	Saturation *float32       `bin:"mSaturation,optional"`
	Tint       *propbin.Color `bin:"mTint,optional"`
}

type BloomSettings struct {
	Threshold *float32 `bin:"mThreshold,optional"`
	Intensity *float32 `bin:"mIntensity,optional"`
	Radius    *float32 `bin:"mRadius,optional"`
}

type DepthOfFieldSettings struct {
	FocusDistance *float32 `bin:"mFocusDistance,optional"`
	Aperture      *float32 `bin:"mAperture,optional"`
	MaxBlur       *float32 `bin:"mMaxBlur,optional"`
}

type GrassTintData struct {
	Texture   *string        `bin:"mTexture,optional"`
	AllyTint  *propbin.Color `bin:"mAllyTint,optional"`
	EnemyTint *propbin.Color `bin:"mEnemyTint,optional"`
}

type WaterSettingsData struct {
	Color        *propbin.Color `bin:"mColor,optional"`
	Reflectivity *float32       `bin:"mReflectivity,optional"`
	WaveSpeed    *float32       `bin:"mWaveSpeed,optional"`
	FoamTexture  *string        `bin:"mFoamTexture,optional"`
}

type PostEffectBloom struct {
	Settings *BloomSettings `bin:"mSettings,optional"`
}

type PostEffectVignette struct {
	Intensity *float32       `bin:"mIntensity,optional"`
	Color     *propbin.Color `bin:"mColor,optional"`
}

type PostEffectColorGrade struct {
	Settings *ColorGradingData `bin:"mSettings,optional"`
}

type PostEffectChromaticAberration struct {
	Strength *float32 `bin:"mStrength,optional"`
}

type PostEffectFilmGrain struct {
	Intensity *float32 `bin:"mIntensity,optional"`
	Size      *float32 `bin:"mSize,optional"`
}

type PostEffectDepthOfField struct {
	Settings *DepthOfFieldSettings `bin:"mSettings,optional"`
}

func (*CameraModeLocked) cameraMode()    {}
func (*CameraModeFree) cameraMode()      {}
func (*CameraModeFollow) cameraMode()    {}
func (*CameraModeSpectator) cameraMode() {}
func (*CameraModeDirected) cameraMode()  {}
func (*CameraModeCinematic) cameraMode() {}

func (*MinimapIconStatic) minimapIcon()    {}
func (*MinimapIconAnimated) minimapIcon()  {}
func (*MinimapIconChampion) minimapIcon()  {}
func (*MinimapIconObjective) minimapIcon() {}
func (*MinimapIconPing) minimapIcon()      {}

func (*PingAlert) pingType()       {}
func (*PingDanger) pingType()      {}
func (*PingOnMyWay) pingType()     {}
func (*PingAssistMe) pingType()    {}
func (*PingMissing) pingType()     {}
func (*PingEnemyVision) pingType() {}
func (*PingNeedVision) pingType()  {}
func (*PingRetreat) pingType()     {}
func (*PingPush) pingType()        {}
func (*PingAllIn) pingType()       {}
func (*PingHold) pingType()        {}
func (*PingBait) pingType()        {}

func (*PostEffectBloom) postEffect()               {}
func (*PostEffectVignette) postEffect()            {}
func (*PostEffectColorGrade) postEffect()          {}
func (*PostEffectChromaticAberration) postEffect() {}
func (*PostEffectFilmGrain) postEffect()           {}
func (*PostEffectDepthOfField) postEffect()        {}

func registerEnvironment(b *propbin.Builder) {
	propbin.Record[CameraConfig](b, "CameraConfig", propbin.AsAsset())
	propbin.Record[CameraShakeData](b, "CameraShakeData")
	propbin.Record[CameraShakeLayer](b, "CameraShakeLayer")
	propbin.Record[CameraKeyframe](b, "CameraKeyframe")
	propbin.Record[CameraModeLocked](b, "CameraModeLocked")
	propbin.Record[CameraModeFree](b, "CameraModeFree")
	propbin.Record[CameraModeFollow](b, "CameraModeFollow")
	propbin.Record[CameraModeSpectator](b, "CameraModeSpectator")
	propbin.Record[CameraModeDirected](b, "CameraModeDirected")
	propbin.Record[CameraModeCinematic](b, "CameraModeCinematic")
	propbin.Variant[EnumCameraMode](b, "EnumCameraMode",
		propbin.Case[CameraModeLocked](),
		propbin.Case[CameraModeFree](),
		propbin.Case[CameraModeFollow](),
		propbin.Case[CameraModeSpectator](),
		propbin.Case[CameraModeDirected](),
		propbin.Case[CameraModeCinematic](),
	)

	propbin.Record[MinimapData](b, "MinimapData", propbin.AsAsset())
	propbin.Record[MinimapIconStatic](b, "MinimapIconStatic")
	propbin.Record[MinimapIconAnimated](b, "MinimapIconAnimated")
	propbin.Record[MinimapIconChampion](b, "MinimapIconChampion")
	propbin.Record[MinimapIconObjective](b, "MinimapIconObjective")
	propbin.Record[MinimapIconPing](b, "MinimapIconPing")
	propbin.Variant[EnumMinimapIcon](b, "EnumMinimapIcon",
		propbin.Case[MinimapIconStatic](),
		propbin.Case[MinimapIconAnimated](),
		propbin.Case[MinimapIconChampion](),
		propbin.Case[MinimapIconObjective](),
		propbin.Case[MinimapIconPing](),
	)

	propbin.Record[MinimapPingData](b, "MinimapPingData")
	propbin.Record[PingTypeData](b, "PingTypeData")
	propbin.Record[PingAlert](b, "PingAlert")
	propbin.Record[PingDanger](b, "PingDanger")
	propbin.Record[PingOnMyWay](b, "PingOnMyWay")
	propbin.Record[PingAssistMe](b, "PingAssistMe")
	propbin.Record[PingMissing](b, "PingMissing")
	propbin.Record[PingEnemyVision](b, "PingEnemyVision")
	propbin.Record[PingNeedVision](b, "PingNeedVision")
	propbin.Record[PingRetreat](b, "PingRetreat")
	propbin.Record[PingPush](b, "PingPush")
	propbin.Record[PingAllIn](b, "PingAllIn")
	propbin.Record[PingHold](b, "PingHold")
	propbin.Record[PingBait](b, "PingBait")
	propbin.Variant[EnumPingType](b, "EnumPingType",
		propbin.Case[PingAlert](),
		propbin.Case[PingDanger](),
		propbin.Case[PingOnMyWay](),
		propbin.Case[PingAssistMe](),
		propbin.Case[PingMissing](),
		propbin.Case[PingEnemyVision](),
		propbin.Case[PingNeedVision](),
		propbin.Case[PingRetreat](),
		propbin.Case[PingPush](),
		propbin.Case[PingAllIn](),
		propbin.Case[PingHold](),
		propbin.Case[PingBait](),
	)

	propbin.Record[WeatherData](b, "WeatherData", propbin.AsAsset())
	propbin.Record[SkyboxData](b, "SkyboxData")
	propbin.Record[LightingEnvironmentData](b, "LightingEnvironmentData", propbin.AsAsset())
	propbin.Record[SunPropertiesData](b, "SunPropertiesData")
	propbin.Record[ShadowSettingsData](b, "ShadowSettingsData")
	propbin.Record[PostProcessSettings](b, "PostProcessSettings")
	propbin.Record[ColorGradingData](b, "ColorGradingData")
	propbin.Record[BloomSettings](b, "BloomSettings")
	propbin.Record[DepthOfFieldSettings](b, "DepthOfFieldSettings")
	propbin.Record[GrassTintData](b, "GrassTintData")
	propbin.Record[WaterSettingsData](b, "WaterSettingsData")
	propbin.Record[PostEffectBloom](b, "PostEffectBloom")
	propbin.Record[PostEffectVignette](b, "PostEffectVignette")
	propbin.Record[PostEffectColorGrade](b, "PostEffectColorGrade")
	propbin.Record[PostEffectChromaticAberration](b, "PostEffectChromaticAberration")
	propbin.Record[PostEffectFilmGrain](b, "PostEffectFilmGrain")
	propbin.Record[PostEffectDepthOfField](b, "PostEffectDepthOfField")
	propbin.Variant[EnumPostEffect](b, "EnumPostEffect",
		propbin.Case[PostEffectBloom](),
		propbin.Case[PostEffectVignette](),
		propbin.Case[PostEffectColorGrade](),
		propbin.Case[PostEffectChromaticAberration](),
		propbin.Case[PostEffectFilmGrain](),
		propbin.Case[PostEffectDepthOfField](),
	)
}
