package schema

import propbin "github.com/reoring/propbin"

// EnumSkinForm decides when a skin switches to an alternate form.
type EnumSkinForm interface{ skinForm() }

// EnumRigPoseModifier adjusts the skeleton pose after animation blending.
type EnumRigPoseModifier interface{ rigPoseModifier() }

// EnumSkinFilter is the colour treatment a skin is shown with.
type EnumSkinFilter interface{ skinFilter() }

// SkinCharacterDataProperties is the per-skin override bundle for a
// character. It is deliberately one flat record.
type SkinCharacterDataProperties struct {
	ChampionSkinName            *string                  `bin:"championSkinName,optional"`
	SkinClassification          *uint32                  `bin:"skinClassification,optional"`
	MetaDataTags                *string                  `bin:"metaDataTags,optional"`
	Loadscreen                  *SkinLoadscreenData      `bin:"loadscreen,optional"`
	IconCircle                  *string                  `bin:"iconCircle,optional"`
	IconSquare                  *string                  `bin:"iconSquare,optional"`
	SkinMeshProperties          *SkinMeshDataProperties  `bin:"skinMeshProperties,optional"`
	SkinAnimationProperties     *SkinAnimationProperties `bin:"skinAnimationProperties,optional"`
	SkinAudioProperties         *SkinAudioProperties     `bin:"skinAudioProperties,optional"`
	Emblems                     []SkinEmblem             `bin:"mEmblems,optional"`
	SkinUpgradeData             *SkinUpgradeData         `bin:"mSkinUpgradeData,optional"`
	SkinParent                  *int32                   `bin:"skinParent,optional"`
	SkinUpgradePreviews         []propbin.Link           `bin:"skinUpgradePreviews,optional"`
	HealthBarData               *SkinHealthBarData       `bin:"healthBarData,optional"`
	ContextualActionData        *propbin.Link            `bin:"mContextualActionData,optional"`
	AdditionalResourceResolvers []propbin.Link           `bin:"mAdditionalResourceResolvers,optional"`
	ResourceResolver            *propbin.Link            `bin:"mResourceResolver,optional"`
	SpellOverrides              []SkinSpellOverride      `bin:"mSpellOverrides,optional"`
	VfxOverrides                []SkinVfxOverride        `bin:"mVfxOverrides,optional"`
	Recolor                     *SkinRecolorData         `bin:"mRecolor,optional"`
	Forms                       []SkinFormData           `bin:"mForms,optional"`
	FormTransitions             []SkinFormTransition     `bin:"mFormTransitions,optional"`
	MaterialOverrides           []SkinMaterialOverride   `bin:"mMaterialOverrides,optional"`
	AlternateMeshes             []SkinAlternateMesh      `bin:"mAlternateMeshes,optional"`
	RigPoseModifiers            []EnumRigPoseModifier    `bin:"mRigPoseModifiers,optional"`
	IdleParticles               []SkinIdleParticle       `bin:"mIdleParticles,optional"`
	BoneOverrides               []SkinBoneOverride       `bin:"mBoneOverrides,optional"`
	SubmeshRenderOrder          []SkinSubmeshRenderOrder `bin:"mSubmeshRenderOrder,optional"`
	VoiceOver                   *SkinVoiceOverData       `bin:"mVoiceOver,optional"`
	EmoteOverrides              []SkinEmoteOverride      `bin:"mEmoteOverrides,optional"`
	Recall                      *SkinRecallData          `bin:"mRecall,optional"`
	Homeguard                   *SkinHomeguardData       `bin:"mHomeguard,optional"`
	DeathRecap                  *SkinDeathRecapData      `bin:"mDeathRecap,optional"`
	PingOverrides               []SkinPingOverride       `bin:"mPingOverrides,optional"`
	Ward                        *SkinWardData            `bin:"mWard,optional"`
	MinionOverrides             []SkinMinionOverride     `bin:"mMinionOverrides,optional"`
	Filter                      EnumSkinFilter           `bin:"mFilter,optional"`
	Chromas                     []SkinChromaData         `bin:"mChromas,optional"`
	TargetingOverrides          *SkinTargetingOverrides  `bin:"mTargetingOverrides,optional"`
	Lighting                    *SkinLightingData        `bin:"mLighting,optional"`
	Reflection                  *SkinReflectionData      `bin:"mReflection,optional"`
	Shadow                      *SkinShadowData          `bin:"mShadow,optional"`
	Outline                     *SkinOutlineData         `bin:"mOutline,optional"`
	JointSnaps                  []SkinJointSnap          `bin:"mJointSnaps,optional"`
	IconAvatar                  *string                  `bin:"iconAvatar,optional"`
	OptionalBin                 *bool                    `bin:"mOptionalBin,optional"`
	GodrayF                     *float32                 `bin:"godrayF,optional"`
	SelectionRadiusScale        *float32                 `bin:"mSelectionRadiusScale,optional"`
	HealthBarHeightOverride     *float32                 `bin:"mHealthBarHeightOverride,optional"`
	UseLegacyPortrait           *bool                    `bin:"mUseLegacyPortrait,optional"`
	HeadAttachment              *propbin.Link            `bin:"mHeadAttachment,optional"`
	HeadScale                   *float32                 `bin:"mHeadScale,optional"`
	HeadTint                    *propbin.Color           `bin:"mHeadTint,optional"`
	ChestAttachment             *propbin.Link            `bin:"mChestAttachment,optional"`
	ChestScale                  *float32                 `bin:"mChestScale,optional"`
	ChestTint                   *propbin.Color           `bin:"mChestTint,optional"`
	LeftHandAttachment          *propbin.Link            `bin:"mLeftHandAttachment,optional"`
	LeftHandScale               *float32                 `bin:"mLeftHandScale,optional"`
	LeftHandTint                *propbin.Color           `bin:"mLeftHandTint,optional"`
	RightHandAttachment         *propbin.Link            `bin:"mRightHandAttachment,optional"`
	RightHandScale              *float32                 `bin:"mRightHandScale,optional"`
	RightHandTint               *propbin.Color           `bin:"mRightHandTint,optional"`
	WeaponAttachment            *propbin.Link            `bin:"mWeaponAttachment,optional"`
	WeaponScale                 *float32                 `bin:"mWeaponScale,optional"`
	WeaponTint                  *propbin.Color           `bin:"mWeaponTint,optional"`
	BackAttachment              *propbin.Link            `bin:"mBackAttachment,optional"`
	BackScale                   *float32                 `bin:"mBackScale,optional"`
	BackTint                    *propbin.Color           `bin:"mBackTint,optional"`
	FeetAttachment              *propbin.Link            `bin:"mFeetAttachment,optional"`
	FeetScale                   *float32                 `bin:"mFeetScale,optional"`
	FeetTint                    *propbin.Color           `bin:"mFeetTint,optional"`
	CapeAttachment              *propbin.Link            `bin:"mCapeAttachment,optional"`
	CapeScale                   *float32                 `bin:"mCapeScale,optional"`
	CapeTint                    *propbin.Color           `bin:"mCapeTint,optional"`
	HairAttachment              *propbin.Link            `bin:"mHairAttachment,optional"`
	HairScale                   *float32                 `bin:"mHairScale,optional"`
	HairTint                    *propbin.Color           `bin:"mHairTint,optional"`
	PetAttachment               *propbin.Link            `bin:"mPetAttachment,optional"`
	PetScale                    *float32                 `bin:"mPetScale,optional"`
	PetTint                     *propbin.Color           `bin:"mPetTint,optional"`
	MountAttachment             *propbin.Link            `bin:"mMountAttachment,optional"`
	MountScale                  *float32                 `bin:"mMountScale,optional"`
	MountTint                   *propbin.Color           `bin:"mMountTint,optional"`
	AccessoryAttachment         *propbin.Link            `bin:"mAccessoryAttachment,optional"`
	AccessoryScale              *float32                 `bin:"mAccessoryScale,optional"`
	AccessoryTint               *propbin.Color           `bin:"mAccessoryTint,optional"`
}

type SkinMeshDataProperties struct {
	Skeleton                       *string                `bin:"skeleton,optional"`
	SimpleSkin                     *string                `bin:"simpleSkin,optional"`
	Texture                        *string                `bin:"texture,optional"`
	SkinScale                      *float32               `bin:"skinScale,optional"`
	SelfIllumination               *float32               `bin:"selfIllumination,optional"`
	BrushAlphaOverride             *float32               `bin:"brushAlphaOverride,optional"`
	CastShadows                    *bool                  `bin:"castShadows,optional"`
	ReceiveShadows                 *bool                  `bin:"receiveShadows,optional"`
	UsesSkinVO                     *bool                  `bin:"usesSkinVo,optional"`
	Material                       *propbin.Link          `bin:"material,optional"`
	MaterialOverride               []SkinMaterialOverride `bin:"materialOverride,optional"`
	BoundingCylinderRadius         *float32               `bin:"boundingCylinderRadius,optional"`
	BoundingCylinderHeight         *float32               `bin:"boundingCylinderHeight,optional"`
	BoundingSphereRadius           *float32               `bin:"boundingSphereRadius,optional"`
	OverrideBoundingBox            *propbin.Vec3          `bin:"overrideBoundingBox,optional"`
	InitialSubmeshToHide           *string                `bin:"initialSubmeshToHide,optional"`
	InitialSubmeshShadowsToHide    *string                `bin:"initialSubmeshShadowsToHide,optional"`
	InitialSubmeshMouseOversToHide *string                `bin:"initialSubmeshMouseOversToHide,optional"`
	SubmeshRenderOrder             *string                `bin:"submeshRenderOrder,optional"`
	ReflectionMap                  *string                `bin:"reflectionMap,optional"`
	ReflectionOpacityGlancing      *float32               `bin:"reflectionOpacityGlancing,optional"`
	ReflectionOpacityDirect        *float32               `bin:"reflectionOpacityDirect,optional"`
	ReflectionFresnel              *float32               `bin:"reflectionFresnel,optional"`
	ReflectionFresnelColor         *propbin.Color         `bin:"reflectionFresnelColor,optional"`
	Fresnel                        *float32               `bin:"fresnel,optional"`
	FresnelColor                   *propbin.Color         `bin:"fresnelColor,optional"`
	EmissiveTexture                *string                `bin:"emissiveTexture,optional"`
	AllowCharacterInking           *bool                  `bin:"allowCharacterInking,optional"`
	ForceDrawLast                  *bool                  `bin:"forceDrawLast,optional"`
	EnablePicking                  *bool                  `bin:"enablePicking,optional"`
	RigPoseModifierData            []EnumRigPoseModifier  `bin:"rigPoseModifierData,optional"`
	RenderPriority                 *int32                 `bin:"mRenderPriority,optional"`
}

type SkinAnimationProperties struct {
	AnimationGraphData *propbin.Link `bin:"animationGraphData,optional"`
	IdleVariations     []string      `bin:"mIdleVariations,optional"`
	PlaybackRateScale  *float32      `bin:"mPlaybackRateScale,optional"`
	ForceLegacyBlend   *bool         `bin:"mForceLegacyBlend,optional"`
}

type SkinAudioProperties struct {
	TagEventList []string       `bin:"tagEventList,optional"`
	BankUnits    []propbin.Link `bin:"bankUnits,optional"`
	VoiceBank    *string        `bin:"mVoiceBank,optional"`
	SfxBank      *string        `bin:"mSfxBank,optional"`
	VolumeScale  *float32       `bin:"mVolumeScale,optional"`
}

type SkinEmblem struct {
	EmblemData     propbin.Link `bin:"mEmblemData"`
	EmblemPosition *uint8       `bin:"mEmblemPosition,optional"`
	Priority       *int32       `bin:"mPriority,optional"`
}

type SkinUpgradeData struct {
	GearSkinUpgrades []propbin.Link `bin:"mGearSkinUpgrades,optional"`
	SkinUpgradeTag   *string        `bin:"mSkinUpgradeTag,optional"`
	DefaultIndex     *uint8         `bin:"mDefaultIndex,optional"`
}

type SkinChromaData struct {
	Name             string          `bin:"mName"`
	Colors           []propbin.Color `bin:"mColors,optional"`
	MaterialOverride *propbin.Link   `bin:"mMaterialOverride,optional"`
	PriceTier        *uint8          `bin:"mPriceTier,optional"`
}

type SkinLoadscreenData struct {
	Texture string        `bin:"mTexture"`
	Crop    *propbin.Vec4 `bin:"mCrop,optional"`
	Vintage *bool         `bin:"mVintage,optional"`
}

type SkinHealthBarData struct {
	UnitHealthBarStyle    *uint8   `bin:"unitHealthBarStyle,optional"`
	AttachToBone          *string  `bin:"attachToBone,optional"`
	ShowWhileUntargetable *bool    `bin:"showWhileUntargetable,optional"`
	HeightOffset          *float32 `bin:"mHeightOffset,optional"`
}

type SkinTargetingOverrides struct {
	Targeters           map[propbin.Hash]EnumTargeterDefinition `bin:"mTargeters,optional"`
	RangeIndicatorColor *propbin.Color                          `bin:"mRangeIndicatorColor,optional"`
}

type SkinSpellOverride struct {
	Spell         propbin.Link  `bin:"mSpell"`
	Replacement   *propbin.Link `bin:"mReplacement,optional"`
	IconName      *string       `bin:"mIconName,optional"`
	AnimationName *string       `bin:"mAnimationName,optional"`
}

type SkinVfxOverride struct {
	Original      propbin.Link   `bin:"mOriginal"`
	Replacement   *propbin.Link  `bin:"mReplacement,optional"`
	Scale         *float32       `bin:"mScale,optional"`
	ColorModulate *propbin.Color `bin:"mColorModulate,optional"`
}

type SkinRecolorData struct {
	Palette    *string  `bin:"mPalette,optional"`
	HueShift   *float32 `bin:"mHueShift,optional"`
	Saturation *float32 `bin:"mSaturation,optional"`
	Brightness *float32 `bin:"mBrightness,optional"`
}

type SkinFormData struct {
	Name      string                  `bin:"mName"`
	Rule      EnumSkinForm            `bin:"mRule,optional"`
	Mesh      *SkinMeshDataProperties `bin:"mMesh,optional"`
	Animation *propbin.Link           `bin:"mAnimation,optional"`
	Icon      *string                 `bin:"mIcon,optional"`
}

type SkinFormTransition struct {
	From     string        `bin:"mFrom"`
	To       string        `bin:"mTo"`
	Vfx      *propbin.Link `bin:"mVfx,optional"`
	Sound    *string       `bin:"mSound,optional"`
	Duration *float32      `bin:"mDuration,optional"`
}

type SkinMaterialOverride struct {
	Material       *propbin.Link `bin:"material,optional"`
	Texture        *string       `bin:"texture,optional"`
	Submesh        *string       `bin:"submesh,optional"`
	RenderPriority *int32        `bin:"mRenderPriority,optional"`
}

type SkinAlternateMesh struct {
	Name      string                  `bin:"mName"`
	Mesh      *SkinMeshDataProperties `bin:"mMesh,optional"`
	Condition *string                 `bin:"mCondition,optional"`
}

type SkinReflectionData struct {
	Map     *string  `bin:"mMap,optional"`
	Opacity *float32 `bin:"mOpacity,optional"`
	Fresnel *float32 `bin:"mFresnel,optional"`
}

type SkinShadowData struct {
	CastShadows  *bool         `bin:"mCastShadows,optional"`
	ShadowScale  *float32      `bin:"mShadowScale,optional"`
	ShadowOffset *propbin.Vec2 `bin:"mShadowOffset,optional"`
}

type SkinOutlineData struct {
	Color      *propbin.Color `bin:"mColor,optional"`
	Thickness  *float32       `bin:"mThickness,optional"`
	AllyColor  *propbin.Color `bin:"mAllyColor,optional"`
	EnemyColor *propbin.Color `bin:"mEnemyColor,optional"`
}

type SkinLightingData struct {
	RimColor     *propbin.Color `bin:"mRimColor,optional"`
	RimIntensity *float32       `bin:"mRimIntensity,optional"`
	AmbientScale *float32       `bin:"mAmbientScale,optional"`
}

type SkinJointSnap struct {
	JointToOverride string        `bin:"mJointToOverride"`
	JointToSnapTo   string        `bin:"mJointToSnapTo"`
	Offset          *propbin.Vec3 `bin:"mOffset,optional"`
}

type SkinIdleParticle struct {
	EffectKey        *propbin.Hash `bin:"effectKey,optional"`
	BoneName         *string       `bin:"boneName,optional"`
	System           *propbin.Link `bin:"mSystem,optional"`
	ShowOnlyWhenIdle *bool         `bin:"mShowOnlyWhenIdle,optional"`
}

type SkinBoneOverride struct {
	Bone   string        `bin:"mBone"`
	Scale  *propbin.Vec3 `bin:"mScale,optional"`
	Offset *propbin.Vec3 `bin:"mOffset,optional"`
	Hidden *bool         `bin:"mHidden,optional"`
}

type SkinSubmeshRenderOrder struct {
	Submesh string `bin:"mSubmesh"`
	Order   *int32 `bin:"mOrder,optional"`
}

type SkinVoiceOverData struct {
	Bank            *string           `bin:"mBank,optional"`
	EventPrefix     *string           `bin:"mEventPrefix,optional"`
	LocaleOverrides map[string]string `bin:"mLocaleOverrides,optional"`
}

type SkinEmoteOverride struct {
	Emote     propbin.Link  `bin:"mEmote"`
	Animation *string       `bin:"mAnimation,optional"`
	Vfx       *propbin.Link `bin:"mVfx,optional"`
}

type SkinRecallData struct {
	Animation *string       `bin:"mAnimation,optional"`
	Vfx       *propbin.Link `bin:"mVfx,optional"`
	Sound     *string       `bin:"mSound,optional"`
	Duration  *float32      `bin:"mDuration,optional"`
}

type SkinHomeguardData struct {
	Vfx      *propbin.Link `bin:"mVfx,optional"`
	Sound    *string       `bin:"mSound,optional"`
	TrailVfx *propbin.Link `bin:"mTrailVfx,optional"`
}

type SkinDeathRecapData struct {
	Icon   *string `bin:"mIcon,optional"`
	Splash *string `bin:"mSplash,optional"`
}

type SkinPingOverride struct {
	Ping  propbin.Link `bin:"mPing"`
	Icon  *string      `bin:"mIcon,optional"`
	Sound *string      `bin:"mSound,optional"`
}

type SkinWardData struct {
	WardSkin    *propbin.Link `bin:"mWardSkin,optional"`
	AttachedVfx *propbin.Link `bin:"mAttachedVfx,optional"`
}

type SkinMinionOverride struct {
	MinionName  string        `bin:"mMinionName"`
	Replacement *propbin.Link `bin:"mReplacement,optional"`
}

type SkinFormStatic struct{}

type SkinFormLevelGated struct {
	MinLevel uint8  `bin:"mMinLevel"`
	MaxLevel *uint8 `bin:"mMaxLevel,optional"`
}

type SkinFormEventGated struct {
	Event         string `bin:"mEvent"`
	RevertOnDeath *bool  `bin:"mRevertOnDeath,optional"`
}

type SkinFormStackGated struct {
	Buff   propbin.Link `bin:"mBuff"`
	Stacks *uint16      `bin:"mStacks,optional"`
}

type ConformToPathRigPoseModifierData struct {
	StartingJointName *propbin.Hash `bin:"mStartingJointName,optional"`
	EndingJointName   *propbin.Hash `bin:"mEndingJointName,optional"`
	DefaultMaskName   *propbin.Hash `bin:"mDefaultMaskName,optional"`
	MaxBoneAngle      *float32      `bin:"mMaxBoneAngle,optional"`
	DampingValue      *float32      `bin:"mDampingValue,optional"`
	VelMultiplier     *float32      `bin:"mVelMultiplier,optional"`
	Frequency         *float32      `bin:"mFrequency,optional"`
}

type LockRootOrientationRigPoseModifierData struct {
	JointName *propbin.Hash `bin:"mJointName,optional"`
	BlendTime *float32      `bin:"mBlendTime,optional"`
}

type VertexAnimationRigPoseModifierData struct {
	TargetJoints    []propbin.Hash `bin:"mTargetJoints,optional"`
	SpringStiffness *float32       `bin:"mSpringStiffness,optional"`
	Damping         *float32       `bin:"mDamping,optional"`
	Mass            *float32       `bin:"mMass,optional"`
}

type SyncedAnimationRigPoseModifierData struct {
	AnimationName *propbin.Hash `bin:"mAnimationName,optional"`
	SyncJoint     *propbin.Hash `bin:"mSyncJoint,optional"`
}

type JointSnapRigPoseModifierData struct {
	JointToOverride *propbin.Hash `bin:"mJointToOverride,optional"`
	JointToSnapTo   *propbin.Hash `bin:"mJointToSnapTo,optional"`
}

type MaterialFloatRigPoseModifierData struct {
	Parameter string                    `bin:"mParameter"`
	Driver    EnumDynamicMaterialDriver `bin:"mDriver,optional"`
}

type SkinFilterChroma struct {
	Chroma propbin.Link `bin:"mChroma"`
}

type SkinFilterLegacy struct {
	Texture *string `bin:"mTexture,optional"`
}

type SkinFilterNone struct{}

func (*SkinFormStatic) skinForm()     {}
func (*SkinFormLevelGated) skinForm() {}
func (*SkinFormEventGated) skinForm() {}
func (*SkinFormStackGated) skinForm() {}

func (*ConformToPathRigPoseModifierData) rigPoseModifier()       {}
func (*LockRootOrientationRigPoseModifierData) rigPoseModifier() {}
func (*VertexAnimationRigPoseModifierData) rigPoseModifier()     {}
func (*SyncedAnimationRigPoseModifierData) rigPoseModifier()     {}
func (*JointSnapRigPoseModifierData) rigPoseModifier()           {}
func (*MaterialFloatRigPoseModifierData) rigPoseModifier()       {}

func (*SkinFilterChroma) skinFilter() {}
func (*SkinFilterLegacy) skinFilter() {}
func (*SkinFilterNone) skinFilter()   {}

func registerSkin(b *propbin.Builder) {
	propbin.Record[SkinCharacterDataProperties](b, "SkinCharacterDataProperties", propbin.AsAsset())
	propbin.Record[SkinMeshDataProperties](b, "SkinMeshDataProperties")
	propbin.Record[SkinAnimationProperties](b, "SkinAnimationProperties")
	propbin.Record[SkinAudioProperties](b, "SkinAudioProperties")
	propbin.Record[SkinEmblem](b, "SkinEmblem")
	propbin.Record[SkinUpgradeData](b, "SkinUpgradeData")
	propbin.Record[SkinChromaData](b, "SkinChromaData")
	propbin.Record[SkinLoadscreenData](b, "SkinLoadscreenData")
	propbin.Record[SkinHealthBarData](b, "SkinHealthBarData")
	propbin.Record[SkinTargetingOverrides](b, "SkinTargetingOverrides")
	propbin.Record[SkinSpellOverride](b, "SkinSpellOverride")
	propbin.Record[SkinVfxOverride](b, "SkinVfxOverride")
	propbin.Record[SkinRecolorData](b, "SkinRecolorData")
	propbin.Record[SkinFormData](b, "SkinFormData")
	propbin.Record[SkinFormTransition](b, "SkinFormTransition")
	propbin.Record[SkinMaterialOverride](b, "SkinMaterialOverride")
	propbin.Record[SkinAlternateMesh](b, "SkinAlternateMesh")
	propbin.Record[SkinReflectionData](b, "SkinReflectionData")
	propbin.Record[SkinShadowData](b, "SkinShadowData")
	propbin.Record[SkinOutlineData](b, "SkinOutlineData")
	propbin.Record[SkinLightingData](b, "SkinLightingData")
	propbin.Record[SkinJointSnap](b, "SkinJointSnap")
	propbin.Record[SkinIdleParticle](b, "SkinIdleParticle")
	propbin.Record[SkinBoneOverride](b, "SkinBoneOverride")
	propbin.Record[SkinSubmeshRenderOrder](b, "SkinSubmeshRenderOrder")
	propbin.Record[SkinVoiceOverData](b, "SkinVoiceOverData")
	propbin.Record[SkinEmoteOverride](b, "SkinEmoteOverride")
	propbin.Record[SkinRecallData](b, "SkinRecallData")
	propbin.Record[SkinHomeguardData](b, "SkinHomeguardData")
	propbin.Record[SkinDeathRecapData](b, "SkinDeathRecapData")
	propbin.Record[SkinPingOverride](b, "SkinPingOverride")
	propbin.Record[SkinWardData](b, "SkinWardData")
	propbin.Record[SkinMinionOverride](b, "SkinMinionOverride")
	propbin.Record[SkinFormStatic](b, "SkinFormStatic")
	propbin.Record[SkinFormLevelGated](b, "SkinFormLevelGated")
	propbin.Record[SkinFormEventGated](b, "SkinFormEventGated")
	propbin.Record[SkinFormStackGated](b, "SkinFormStackGated")
	propbin.Variant[EnumSkinForm](b, "EnumSkinForm",
		propbin.Case[SkinFormStatic](),
		propbin.Case[SkinFormLevelGated](),
		propbin.Case[SkinFormEventGated](),
		propbin.Case[SkinFormStackGated](),
	)

	propbin.Record[ConformToPathRigPoseModifierData](b, "ConformToPathRigPoseModifierData")
	propbin.Record[LockRootOrientationRigPoseModifierData](b, "LockRootOrientationRigPoseModifierData")
	propbin.Record[VertexAnimationRigPoseModifierData](b, "VertexAnimationRigPoseModifierData")
	propbin.Record[SyncedAnimationRigPoseModifierData](b, "SyncedAnimationRigPoseModifierData")
	propbin.Record[JointSnapRigPoseModifierData](b, "JointSnapRigPoseModifierData")
	propbin.Record[MaterialFloatRigPoseModifierData](b, "MaterialFloatRigPoseModifierData")
	propbin.Variant[EnumRigPoseModifier](b, "EnumRigPoseModifier",
		propbin.Case[ConformToPathRigPoseModifierData](),
		propbin.Case[LockRootOrientationRigPoseModifierData](),
		propbin.Case[VertexAnimationRigPoseModifierData](),
		propbin.Case[SyncedAnimationRigPoseModifierData](),
		propbin.Case[JointSnapRigPoseModifierData](),
		propbin.Case[MaterialFloatRigPoseModifierData](),
	)

	propbin.Record[SkinFilterChroma](b, "SkinFilterChroma")
	propbin.Record[SkinFilterLegacy](b, "SkinFilterLegacy")
	propbin.Record[SkinFilterNone](b, "SkinFilterNone")
	propbin.Variant[EnumSkinFilter](b, "EnumSkinFilter",
		propbin.Case[SkinFilterChroma](),
		propbin.Case[SkinFilterLegacy](),
		propbin.Case[SkinFilterNone](),
	)
}
