package schema

import propbin "github.com/reoring/propbin"

// EnumUiSceneTransition animates a scene as it is shown or hidden.
type EnumUiSceneTransition interface{ uiSceneTransition() }

// EnumUiDraggable is how a grabbed element follows the cursor.
type EnumUiDraggable interface{ uiDraggable() }

// EnumUiMetricFormat renders a number into a text element.
type EnumUiMetricFormat interface{ uiMetricFormat() }

// EnumUiAnimation plays on an element while a state is active.
type EnumUiAnimation interface{ uiAnimation() }

// EnumUiElementEffect is a render effect layered over an element.
type EnumUiElementEffect interface{ uiElementEffect() }

// EnumViewController is one controller of a view pane; every HUD screen
// is a case.
type EnumViewController interface{ viewController() }

type UiSceneTransitionFade struct {
	Duration *float32 `bin:"mDuration,optional"`
	Delay    *float32 `bin:"mDelay,optional"`
	Easing   *uint8   `bin:"mEasing,optional"`
}

type UiSceneTransitionSlide struct {
	Duration *float32      `bin:"mDuration,optional"`
	Delay    *float32      `bin:"mDelay,optional"`
	Easing   *uint8        `bin:"mEasing,optional"`
	Offset   *propbin.Vec2 `bin:"mOffset,optional"`
}

type UiSceneTransitionScale struct {
	Duration   *float32 `bin:"mDuration,optional"`
	Delay      *float32 `bin:"mDelay,optional"`
	Easing     *uint8   `bin:"mEasing,optional"`
	StartScale *float32 `bin:"mStartScale,optional"`
	EndScale   *float32 `bin:"mEndScale,optional"`
}

type UiSceneTransitionNone struct{}

type UiDraggableProxy struct {
	ProxyElement  propbin.Link `bin:"mProxyElement"`
	SnapBack      *bool        `bin:"mSnapBack,optional"`
	DragThreshold *float32     `bin:"mDragThreshold,optional"`
}

type UiDraggableElement struct {
	Element          propbin.Link `bin:"mElement"`
	RestrictToParent *bool        `bin:"mRestrictToParent,optional"`
	DragThreshold    *float32     `bin:"mDragThreshold,optional"`
}

type UiDraggableSceneDrag struct {
	Scene            propbin.Link `bin:"mScene"`
	RestrictToScreen *bool        `bin:"mRestrictToScreen,optional"`
}

type UiDraggableBasic struct {
	UseStickyDrag *bool `bin:"mUseStickyDrag,optional"`
}

type UiMetricFormatInteger struct {
	ThousandsSeparator *bool  `bin:"mThousandsSeparator,optional"`
	MinDigits          *uint8 `bin:"mMinDigits,optional"`
}

type UiMetricFormatPercent struct {
	Decimals *uint8 `bin:"mDecimals,optional"`
	ShowSign *bool  `bin:"mShowSign,optional"`
}

type UiMetricFormatDuration struct {
	ShowHours  *bool `bin:"mShowHours,optional"`
	ShowTenths *bool `bin:"mShowTenths,optional"`
}

type UiMetricFormatDecimal struct {
	Decimals  *uint8 `bin:"mDecimals,optional"`
	TrimZeros *bool  `bin:"mTrimZeros,optional"`
}

type UiMetricFormatAbbreviated struct {
	Threshold *float32 `bin:"mThreshold,optional"`
	Suffix    *string  `bin:"mSuffix,optional"`
}

type UiAnimationFade struct {
	From     *float32 `bin:"mFrom,optional"`
	To       *float32 `bin:"mTo,optional"`
	Duration *float32 `bin:"mDuration,optional"`
	Loop     *bool    `bin:"mLoop,optional"`
}

type UiAnimationMove struct {
	From     *propbin.Vec2 `bin:"mFrom,optional"`
	To       *propbin.Vec2 `bin:"mTo,optional"`
	Duration *float32      `bin:"mDuration,optional"`
	Easing   *uint8        `bin:"mEasing,optional"`
}

type UiAnimationPulse struct {
	MinScale *float32 `bin:"mMinScale,optional"`
	MaxScale *float32 `bin:"mMaxScale,optional"`
	Period   *float32 `bin:"mPeriod,optional"`
}

type UiAnimationFlipbook struct {
	TextureName     string   `bin:"mTextureName"`
	FrameCount      *uint16  `bin:"mFrameCount,optional"`
	FramesPerSecond *float32 `bin:"mFramesPerSecond,optional"`
	Columns         *uint16  `bin:"mColumns,optional"`
	Loop            *bool    `bin:"mLoop,optional"`
}

type UiAnimationRotate struct {
	DegreesPerSecond *float32      `bin:"mDegreesPerSecond,optional"`
	Pivot            *propbin.Vec2 `bin:"mPivot,optional"`
}

type UiAnimationSequence struct {
	Steps []EnumUiAnimation `bin:"mSteps"`
	Loop  *bool             `bin:"mLoop,optional"`
}

type UiElementEffectGlow struct {
	Name      string          `bin:"name"`
	Scene     *propbin.Link   `bin:"scene,optional"`
	Color     *propbin.Color  `bin:"mColor,optional"`
	Radius    *float32        `bin:"mRadius,optional"`
	Animation EnumUiAnimation `bin:"mAnimation,optional"`
}

type UiElementEffectDesaturate struct {
	Name   string        `bin:"name"`
	Scene  *propbin.Link `bin:"scene,optional"`
	Amount *float32      `bin:"mAmount,optional"`
}

type UiElementEffectCooldownRadial struct {
	Name      string         `bin:"name"`
	Scene     *propbin.Link  `bin:"scene,optional"`
	Color     *propbin.Color `bin:"mColor,optional"`
	Clockwise *bool          `bin:"mClockwise,optional"`
	ShowText  *bool          `bin:"mShowText,optional"`
}

type UiElementEffectFillPercentage struct {
	Name      string         `bin:"name"`
	Scene     *propbin.Link  `bin:"scene,optional"`
	Direction *uint8         `bin:"mDirection,optional"`
	FillColor *propbin.Color `bin:"mFillColor,optional"`
}

type UiElementEffectInstancedSprite struct {
	Name        string        `bin:"name"`
	Scene       *propbin.Link `bin:"scene,optional"`
	TextureName *string       `bin:"mTextureName,optional"`
	Instances   *uint16       `bin:"mInstances,optional"`
	Spacing     *propbin.Vec2 `bin:"mSpacing,optional"`
}

type UiElementScissorRegion struct {
	Name    string         `bin:"name"`
	Scene   *propbin.Link  `bin:"scene,optional"`
	Rect    *UiElementRect `bin:"mRect,optional"`
	Feather *float32       `bin:"mFeather,optional"`
}

type UiElementScrollBar struct {
	Name        string          `bin:"name"`
	Scene       *propbin.Link   `bin:"scene,optional"`
	Track       *propbin.Link   `bin:"mTrack,optional"`
	Thumb       *propbin.Link   `bin:"mThumb,optional"`
	UpButton    *propbin.Link   `bin:"mUpButton,optional"`
	DownButton  *propbin.Link   `bin:"mDownButton,optional"`
	ScrollSpeed *float32        `bin:"mScrollSpeed,optional"`
	Draggable   EnumUiDraggable `bin:"mDraggable,optional"`
}

type UiElementSliderData struct {
	Name      string             `bin:"name"`
	Scene     *propbin.Link      `bin:"scene,optional"`
	Track     *propbin.Link      `bin:"mTrack,optional"`
	Thumb     *propbin.Link      `bin:"mThumb,optional"`
	Fill      *propbin.Link      `bin:"mFill,optional"`
	Min       *float32           `bin:"mMin,optional"`
	Max       *float32           `bin:"mMax,optional"`
	Step      *float32           `bin:"mStep,optional"`
	Format    EnumUiMetricFormat `bin:"mFormat,optional"`
	ValueText *propbin.Link      `bin:"mValueText,optional"`
}

type UiElementCheckBoxData struct {
	Name           string        `bin:"name"`
	Scene          *propbin.Link `bin:"scene,optional"`
	CheckedIcon    *propbin.Link `bin:"mCheckedIcon,optional"`
	UncheckedIcon  *propbin.Link `bin:"mUncheckedIcon,optional"`
	Label          *propbin.Link `bin:"mLabel,optional"`
	DefaultChecked *bool         `bin:"mDefaultChecked,optional"`
}

type UiElementDropdownData struct {
	Name            string        `bin:"name"`
	Scene           *propbin.Link `bin:"scene,optional"`
	Header          *propbin.Link `bin:"mHeader,optional"`
	List            *propbin.Link `bin:"mList,optional"`
	ItemTemplate    *propbin.Link `bin:"mItemTemplate,optional"`
	MaxVisibleItems *uint8        `bin:"mMaxVisibleItems,optional"`
}

type UiElementTextInputData struct {
	Name              string        `bin:"name"`
	Scene             *propbin.Link `bin:"scene,optional"`
	Text              *propbin.Link `bin:"mText,optional"`
	Caret             *propbin.Link `bin:"mCaret,optional"`
	PlaceholderTraKey *string       `bin:"mPlaceholderTraKey,optional"`
	MaxLength         *uint16       `bin:"mMaxLength,optional"`
	Password          *bool         `bin:"mPassword,optional"`
}

type UiElementGridData struct {
	Name         string        `bin:"name"`
	Scene        *propbin.Link `bin:"scene,optional"`
	CellTemplate *propbin.Link `bin:"mCellTemplate,optional"`
	Columns      *uint16       `bin:"mColumns,optional"`
	Rows         *uint16       `bin:"mRows,optional"`
	CellSpacing  *propbin.Vec2 `bin:"mCellSpacing,optional"`
	ScrollBar    *propbin.Link `bin:"mScrollBar,optional"`
}

type UiElementTooltipAnchor struct {
	Name         string        `bin:"name"`
	Scene        *propbin.Link `bin:"scene,optional"`
	TooltipScene *propbin.Link `bin:"mTooltipScene,optional"`
	Offset       *propbin.Vec2 `bin:"mOffset,optional"`
	Delay        *float32      `bin:"mDelay,optional"`
}

type UiElementHealthBarData struct {
	Name         string        `bin:"name"`
	Scene        *propbin.Link `bin:"scene,optional"`
	Background   *propbin.Link `bin:"mBackground,optional"`
	Fill         *propbin.Link `bin:"mFill,optional"`
	DamageFill   *propbin.Link `bin:"mDamageFill,optional"`
	ShieldFill   *propbin.Link `bin:"mShieldFill,optional"`
	TickMarks    *propbin.Link `bin:"mTickMarks,optional"`
	TickInterval *float32      `bin:"mTickInterval,optional"`
}

type UiElementRegionData struct {
	Name     string         `bin:"name"`
	Scene    *propbin.Link  `bin:"scene,optional"`
	Rect     *UiElementRect `bin:"mRect,optional"`
	Position EnumUiPosition `bin:"mPosition,optional"`
	HitTest  *bool          `bin:"mHitTest,optional"`
}

type UiElementEffectList struct {
	Effects    map[propbin.Hash]EnumUiElementEffect `bin:"mEffects,optional"`
	Animations map[propbin.Hash]EnumUiAnimation     `bin:"mAnimations,optional"`
}

type UiFontDescription struct {
	TypeFace     string            `bin:"mTypeFace"`
	Height       *uint16           `bin:"mHeight,optional"`
	OutlineColor *propbin.Color    `bin:"mOutlineColor,optional"`
	ShadowColor  *propbin.Color    `bin:"mShadowColor,optional"`
	Color        *propbin.Color    `bin:"mColor,optional"`
	Locale       map[string]string `bin:"mLocale,optional"`
}

type UiHotkeyBinding struct {
	Action       string  `bin:"mAction"`
	Key          *uint32 `bin:"mKey,optional"`
	Modifiers    *uint32 `bin:"mModifiers,optional"`
	AlternateKey *uint32 `bin:"mAlternateKey,optional"`
}

type UiHotkeySet struct {
	Bindings       []UiHotkeyBinding `bin:"mBindings,optional"`
	AllowRebinding *bool             `bin:"mAllowRebinding,optional"`
}

// ViewPaneDefinition groups the controllers shown together in one pane.
type ViewPaneDefinition struct {
	Scene       propbin.Link   `bin:"mScene"`
	PaneName    string         `bin:"mPaneName"`
	Controllers []propbin.Link `bin:"mControllers,optional"`
	BlocksInput *bool          `bin:"mBlocksInput,optional"`
	Modal       *bool          `bin:"mModal,optional"`
	Priority    *int32         `bin:"mPriority,optional"`
	Hotkeys     *UiHotkeySet   `bin:"mHotkeys,optional"`
}

// ViewControllerSet is the asset holding every view controller of a HUD
// layout, keyed by controller name hash.
type ViewControllerSet struct {
	ViewControllers map[propbin.Hash]EnumViewController `bin:"mViewControllers,optional"`
	Panes           []propbin.Link                      `bin:"mPanes,optional"`
	PathHashToSelf  *propbin.PathHash                   `bin:"pathHashToSelf,optional"`
}

type UiElementGroupData struct {
	Name           string               `bin:"name"`
	Scene          *propbin.Link        `bin:"scene,optional"`
	Elements       []propbin.Link       `bin:"mElements,optional"`
	Effects        *UiElementEffectList `bin:"mEffects,optional"`
	Draggable      EnumUiDraggable      `bin:"mDraggable,optional"`
	PathHashToSelf *propbin.PathHash    `bin:"pathHashToSelf,optional"`
}

type UiPropertyLoadable struct {
	FilePath    string `bin:"mFilePath"`
	LoadOnStart *bool  `bin:"mLoadOnStart,optional"`
	Priority    *uint8 `bin:"mPriority,optional"`
}

type UiComboBoxItem struct {
	TraKey string        `bin:"mTraKey"`
	Value  *int32        `bin:"mValue,optional"`
	Icon   *propbin.Link `bin:"mIcon,optional"`
}

// HudViewController drives the main gameplay HUD. One flat record; every
// slot element is its own field.
type HudViewController struct {
	Scene                    propbin.Link          `bin:"scene"`
	Enabled                  *bool                 `bin:"mEnabled,optional"`
	StartHidden              *bool                 `bin:"mStartHidden,optional"`
	LayerOffset              *int32                `bin:"mLayerOffset,optional"`
	TransitionIn             EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut            EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	SpellPassiveIcon         *propbin.Link         `bin:"spellPassiveIcon,optional"`
	SpellPassiveCooldownText *propbin.Link         `bin:"spellPassiveCooldownText,optional"`
	SpellPassiveLevelPips    *propbin.Link         `bin:"spellPassiveLevelPips,optional"`
	SpellPassiveCostText     *propbin.Link         `bin:"spellPassiveCostText,optional"`
	SpellPassiveHotkeyText   *propbin.Link         `bin:"spellPassiveHotkeyText,optional"`
	SpellQIcon               *propbin.Link         `bin:"spellQIcon,optional"`
	SpellQCooldownText       *propbin.Link         `bin:"spellQCooldownText,optional"`
	SpellQLevelPips          *propbin.Link         `bin:"spellQLevelPips,optional"`
	SpellQCostText           *propbin.Link         `bin:"spellQCostText,optional"`
	SpellQHotkeyText         *propbin.Link         `bin:"spellQHotkeyText,optional"`
	SpellWIcon               *propbin.Link         `bin:"spellWIcon,optional"`
	SpellWCooldownText       *propbin.Link         `bin:"spellWCooldownText,optional"`
	SpellWLevelPips          *propbin.Link         `bin:"spellWLevelPips,optional"`
	SpellWCostText           *propbin.Link         `bin:"spellWCostText,optional"`
	SpellWHotkeyText         *propbin.Link         `bin:"spellWHotkeyText,optional"`
	SpellEIcon               *propbin.Link         `bin:"spellEIcon,optional"`
	SpellECooldownText       *propbin.Link         `bin:"spellECooldownText,optional"`
	SpellELevelPips          *propbin.Link         `bin:"spellELevelPips,optional"`
	SpellECostText           *propbin.Link         `bin:"spellECostText,optional"`
	SpellEHotkeyText         *propbin.Link         `bin:"spellEHotkeyText,optional"`
	SpellRIcon               *propbin.Link         `bin:"spellRIcon,optional"`
	SpellRCooldownText       *propbin.Link         `bin:"spellRCooldownText,optional"`
	SpellRLevelPips          *propbin.Link         `bin:"spellRLevelPips,optional"`
	SpellRCostText           *propbin.Link         `bin:"spellRCostText,optional"`
	SpellRHotkeyText         *propbin.Link         `bin:"spellRHotkeyText,optional"`
	SpellDIcon               *propbin.Link         `bin:"spellDIcon,optional"`
	SpellDCooldownText       *propbin.Link         `bin:"spellDCooldownText,optional"`
	SpellDLevelPips          *propbin.Link         `bin:"spellDLevelPips,optional"`
	SpellDCostText           *propbin.Link         `bin:"spellDCostText,optional"`
	SpellDHotkeyText         *propbin.Link         `bin:"spellDHotkeyText,optional"`
	SpellFIcon               *propbin.Link         `bin:"spellFIcon,optional"`
	SpellFCooldownText       *propbin.Link         `bin:"spellFCooldownText,optional"`
	SpellFLevelPips          *propbin.Link         `bin:"spellFLevelPips,optional"`
	SpellFCostText           *propbin.Link         `bin:"spellFCostText,optional"`
	SpellFHotkeyText         *propbin.Link         `bin:"spellFHotkeyText,optional"`
	Item1Icon                *propbin.Link         `bin:"item1Icon,optional"`
	Item1CooldownText        *propbin.Link         `bin:"item1CooldownText,optional"`
	Item1ChargesText         *propbin.Link         `bin:"item1ChargesText,optional"`
	Item1HotkeyText          *propbin.Link         `bin:"item1HotkeyText,optional"`
	Item2Icon                *propbin.Link         `bin:"item2Icon,optional"`
	Item2CooldownText        *propbin.Link         `bin:"item2CooldownText,optional"`
	Item2ChargesText         *propbin.Link         `bin:"item2ChargesText,optional"`
	Item2HotkeyText          *propbin.Link         `bin:"item2HotkeyText,optional"`
	Item3Icon                *propbin.Link         `bin:"item3Icon,optional"`
	Item3CooldownText        *propbin.Link         `bin:"item3CooldownText,optional"`
	Item3ChargesText         *propbin.Link         `bin:"item3ChargesText,optional"`
	Item3HotkeyText          *propbin.Link         `bin:"item3HotkeyText,optional"`
	Item4Icon                *propbin.Link         `bin:"item4Icon,optional"`
	Item4CooldownText        *propbin.Link         `bin:"item4CooldownText,optional"`
	Item4ChargesText         *propbin.Link         `bin:"item4ChargesText,optional"`
	Item4HotkeyText          *propbin.Link         `bin:"item4HotkeyText,optional"`
	Item5Icon                *propbin.Link         `bin:"item5Icon,optional"`
	Item5CooldownText        *propbin.Link         `bin:"item5CooldownText,optional"`
	Item5ChargesText         *propbin.Link         `bin:"item5ChargesText,optional"`
	Item5HotkeyText          *propbin.Link         `bin:"item5HotkeyText,optional"`
	Item6Icon                *propbin.Link         `bin:"item6Icon,optional"`
	Item6CooldownText        *propbin.Link         `bin:"item6CooldownText,optional"`
	Item6ChargesText         *propbin.Link         `bin:"item6ChargesText,optional"`
	Item6HotkeyText          *propbin.Link         `bin:"item6HotkeyText,optional"`
	Item7Icon                *propbin.Link         `bin:"item7Icon,optional"`
	Item7CooldownText        *propbin.Link         `bin:"item7CooldownText,optional"`
	Item7ChargesText         *propbin.Link         `bin:"item7ChargesText,optional"`
	Item7HotkeyText          *propbin.Link         `bin:"item7HotkeyText,optional"`
	StatAttackDamageText     *propbin.Link         `bin:"statAttackDamageText,optional"`
	StatAbilityPowerText     *propbin.Link         `bin:"statAbilityPowerText,optional"`
	StatArmorText            *propbin.Link         `bin:"statArmorText,optional"`
	StatMagicResistText      *propbin.Link         `bin:"statMagicResistText,optional"`
	StatAttackSpeedText      *propbin.Link         `bin:"statAttackSpeedText,optional"`
	StatAbilityHasteText     *propbin.Link         `bin:"statAbilityHasteText,optional"`
	StatCritChanceText       *propbin.Link         `bin:"statCritChanceText,optional"`
	StatMoveSpeedText        *propbin.Link         `bin:"statMoveSpeedText,optional"`
	StatLifeStealText        *propbin.Link         `bin:"statLifeStealText,optional"`
	StatOmnivampText         *propbin.Link         `bin:"statOmnivampText,optional"`
	StatArmorPenText         *propbin.Link         `bin:"statArmorPenText,optional"`
	StatMagicPenText         *propbin.Link         `bin:"statMagicPenText,optional"`
	StatTenacityText         *propbin.Link         `bin:"statTenacityText,optional"`
	StatAttackRangeText      *propbin.Link         `bin:"statAttackRangeText,optional"`
	StatHealthRegenText      *propbin.Link         `bin:"statHealthRegenText,optional"`
	StatResourceRegenText    *propbin.Link         `bin:"statResourceRegenText,optional"`
	PortraitIcon             *propbin.Link         `bin:"portraitIcon,optional"`
	LevelText                *propbin.Link         `bin:"levelText,optional"`
	ExperienceBar            *propbin.Link         `bin:"experienceBar,optional"`
	HealthBar                *propbin.Link         `bin:"healthBar,optional"`
	HealthText               *propbin.Link         `bin:"healthText,optional"`
	ResourceBar              *propbin.Link         `bin:"resourceBar,optional"`
	ResourceText             *propbin.Link         `bin:"resourceText,optional"`
	GoldText                 *propbin.Link         `bin:"goldText,optional"`
	RecallButton             *propbin.Link         `bin:"recallButton,optional"`
	ShopButton               *propbin.Link         `bin:"shopButton,optional"`
	TrinketIcon              *propbin.Link         `bin:"trinketIcon,optional"`
	TrinketCooldownText      *propbin.Link         `bin:"trinketCooldownText,optional"`
	Hotkeys                  *UiHotkeySet          `bin:"mHotkeys,optional"`
	ScaleWithResolution      *bool                 `bin:"mScaleWithResolution,optional"`
	MinimapOnLeft            *bool                 `bin:"mMinimapOnLeft,optional"`
}

type ScoreboardViewController struct {
	Scene                      propbin.Link          `bin:"scene"`
	Enabled                    *bool                 `bin:"mEnabled,optional"`
	StartHidden                *bool                 `bin:"mStartHidden,optional"`
	LayerOffset                *int32                `bin:"mLayerOffset,optional"`
	TransitionIn               EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut              EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	HeaderOrderKills           *propbin.Link         `bin:"headerOrderKills,optional"`
	HeaderChaosKills           *propbin.Link         `bin:"headerChaosKills,optional"`
	HeaderGameTime             *propbin.Link         `bin:"headerGameTime,optional"`
	HeaderOrderTowers          *propbin.Link         `bin:"headerOrderTowers,optional"`
	HeaderChaosTowers          *propbin.Link         `bin:"headerChaosTowers,optional"`
	HeaderOrderDragons         *propbin.Link         `bin:"headerOrderDragons,optional"`
	HeaderChaosDragons         *propbin.Link         `bin:"headerChaosDragons,optional"`
	HeaderOrderGold            *propbin.Link         `bin:"headerOrderGold,optional"`
	HeaderChaosGold            *propbin.Link         `bin:"headerChaosGold,optional"`
	CloseButton                *propbin.Link         `bin:"closeButton,optional"`
	OrderPlayer1Portrait       *propbin.Link         `bin:"orderPlayer1Portrait,optional"`
	OrderPlayer1ChampionName   *propbin.Link         `bin:"orderPlayer1ChampionName,optional"`
	OrderPlayer1SummonerName   *propbin.Link         `bin:"orderPlayer1SummonerName,optional"`
	OrderPlayer1LevelText      *propbin.Link         `bin:"orderPlayer1LevelText,optional"`
	OrderPlayer1KillsText      *propbin.Link         `bin:"orderPlayer1KillsText,optional"`
	OrderPlayer1DeathsText     *propbin.Link         `bin:"orderPlayer1DeathsText,optional"`
	OrderPlayer1AssistsText    *propbin.Link         `bin:"orderPlayer1AssistsText,optional"`
	OrderPlayer1CreepScoreText *propbin.Link         `bin:"orderPlayer1CreepScoreText,optional"`
	OrderPlayer1Item1          *propbin.Link         `bin:"orderPlayer1Item1,optional"`
	OrderPlayer1Item2          *propbin.Link         `bin:"orderPlayer1Item2,optional"`
	OrderPlayer1Item3          *propbin.Link         `bin:"orderPlayer1Item3,optional"`
	OrderPlayer1Item4          *propbin.Link         `bin:"orderPlayer1Item4,optional"`
	OrderPlayer1Item5          *propbin.Link         `bin:"orderPlayer1Item5,optional"`
	OrderPlayer1Item6          *propbin.Link         `bin:"orderPlayer1Item6,optional"`
	OrderPlayer1Trinket        *propbin.Link         `bin:"orderPlayer1Trinket,optional"`
	OrderPlayer2Portrait       *propbin.Link         `bin:"orderPlayer2Portrait,optional"`
	OrderPlayer2ChampionName   *propbin.Link         `bin:"orderPlayer2ChampionName,optional"`
	OrderPlayer2SummonerName   *propbin.Link         `bin:"orderPlayer2SummonerName,optional"`
	OrderPlayer2LevelText      *propbin.Link         `bin:"orderPlayer2LevelText,optional"`
	OrderPlayer2KillsText      *propbin.Link         `bin:"orderPlayer2KillsText,optional"`
	OrderPlayer2DeathsText     *propbin.Link         `bin:"orderPlayer2DeathsText,optional"`
	OrderPlayer2AssistsText    *propbin.Link         `bin:"orderPlayer2AssistsText,optional"`
	OrderPlayer2CreepScoreText *propbin.Link         `bin:"orderPlayer2CreepScoreText,optional"`
	OrderPlayer2Item1          *propbin.Link         `bin:"orderPlayer2Item1,optional"`
	OrderPlayer2Item2          *propbin.Link         `bin:"orderPlayer2Item2,optional"`
	OrderPlayer2Item3          *propbin.Link         `bin:"orderPlayer2Item3,optional"`
	OrderPlayer2Item4          *propbin.Link         `bin:"orderPlayer2Item4,optional"`
	OrderPlayer2Item5          *propbin.Link         `bin:"orderPlayer2Item5,optional"`
	OrderPlayer2Item6          *propbin.Link         `bin:"orderPlayer2Item6,optional"`
	OrderPlayer2Trinket        *propbin.Link         `bin:"orderPlayer2Trinket,optional"`
	OrderPlayer3Portrait       *propbin.Link         `bin:"orderPlayer3Portrait,optional"`
	OrderPlayer3ChampionName   *propbin.Link         `bin:"orderPlayer3ChampionName,optional"`
	OrderPlayer3SummonerName   *propbin.Link         `bin:"orderPlayer3SummonerName,optional"`
	OrderPlayer3LevelText      *propbin.Link         `bin:"orderPlayer3LevelText,optional"`
	OrderPlayer3KillsText      *propbin.Link         `bin:"orderPlayer3KillsText,optional"`
	OrderPlayer3DeathsText     *propbin.Link         `bin:"orderPlayer3DeathsText,optional"`
	OrderPlayer3AssistsText    *propbin.Link         `bin:"orderPlayer3AssistsText,optional"`
	OrderPlayer3CreepScoreText *propbin.Link         `bin:"orderPlayer3CreepScoreText,optional"`
	OrderPlayer3Item1          *propbin.Link         `bin:"orderPlayer3Item1,optional"`
	OrderPlayer3Item2          *propbin.Link         `bin:"orderPlayer3Item2,optional"`
	OrderPlayer3Item3          *propbin.Link         `bin:"orderPlayer3Item3,optional"`
	OrderPlayer3Item4          *propbin.Link         `bin:"orderPlayer3Item4,optional"`
	OrderPlayer3Item5          *propbin.Link         `bin:"orderPlayer3Item5,optional"`
	OrderPlayer3Item6          *propbin.Link         `bin:"orderPlayer3Item6,optional"`
	OrderPlayer3Trinket        *propbin.Link         `bin:"orderPlayer3Trinket,optional"`
	OrderPlayer4Portrait       *propbin.Link         `bin:"orderPlayer4Portrait,optional"`
	OrderPlayer4ChampionName   *propbin.Link         `bin:"orderPlayer4ChampionName,optional"`
	OrderPlayer4SummonerName   *propbin.Link         `bin:"orderPlayer4SummonerName,optional"`
	OrderPlayer4LevelText      *propbin.Link         `bin:"orderPlayer4LevelText,optional"`
	OrderPlayer4KillsText      *propbin.Link         `bin:"orderPlayer4KillsText,optional"`
	OrderPlayer4DeathsText     *propbin.Link         `bin:"orderPlayer4DeathsText,optional"`
	OrderPlayer4AssistsText    *propbin.Link         `bin:"orderPlayer4AssistsText,optional"`
	OrderPlayer4CreepScoreText *propbin.Link         `bin:"orderPlayer4CreepScoreText,optional"`
	OrderPlayer4Item1          *propbin.Link         `bin:"orderPlayer4Item1,optional"`
	OrderPlayer4Item2          *propbin.Link         `bin:"orderPlayer4Item2,optional"`
	OrderPlayer4Item3          *propbin.Link         `bin:"orderPlayer4Item3,optional"`
	OrderPlayer4Item4          *propbin.Link         `bin:"orderPlayer4Item4,optional"`
	OrderPlayer4Item5          *propbin.Link         `bin:"orderPlayer4Item5,optional"`
	OrderPlayer4Item6          *propbin.Link         `bin:"orderPlayer4Item6,optional"`
	OrderPlayer4Trinket        *propbin.Link         `bin:"orderPlayer4Trinket,optional"`
	OrderPlayer5Portrait       *propbin.Link         `bin:"orderPlayer5Portrait,optional"`
	OrderPlayer5ChampionName   *propbin.Link         `bin:"orderPlayer5ChampionName,optional"`
	OrderPlayer5SummonerName   *propbin.Link         `bin:"orderPlayer5SummonerName,optional"`
	OrderPlayer5LevelText      *propbin.Link         `bin:"orderPlayer5LevelText,optional"`
	OrderPlayer5KillsText      *propbin.Link         `bin:"orderPlayer5KillsText,optional"`
	OrderPlayer5DeathsText     *propbin.Link         `bin:"orderPlayer5DeathsText,optional"`
	OrderPlayer5AssistsText    *propbin.Link         `bin:"orderPlayer5AssistsText,optional"`
	OrderPlayer5CreepScoreText *propbin.Link         `bin:"orderPlayer5CreepScoreText,optional"`
	OrderPlayer5Item1          *propbin.Link         `bin:"orderPlayer5Item1,optional"`
	OrderPlayer5Item2          *propbin.Link         `bin:"orderPlayer5Item2,optional"`
	OrderPlayer5Item3          *propbin.Link         `bin:"orderPlayer5Item3,optional"`
	OrderPlayer5Item4          *propbin.Link         `bin:"orderPlayer5Item4,optional"`
	OrderPlayer5Item5          *propbin.Link         `bin:"orderPlayer5Item5,optional"`
	OrderPlayer5Item6          *propbin.Link         `bin:"orderPlayer5Item6,optional"`
	OrderPlayer5Trinket        *propbin.Link         `bin:"orderPlayer5Trinket,optional"`
	ChaosPlayer1Portrait       *propbin.Link         `bin:"chaosPlayer1Portrait,optional"`
	ChaosPlayer1ChampionName   *propbin.Link         `bin:"chaosPlayer1ChampionName,optional"`
	ChaosPlayer1SummonerName   *propbin.Link         `bin:"chaosPlayer1SummonerName,optional"`
	ChaosPlayer1LevelText      *propbin.Link         `bin:"chaosPlayer1LevelText,optional"`
	ChaosPlayer1KillsText      *propbin.Link         `bin:"chaosPlayer1KillsText,optional"`
	ChaosPlayer1DeathsText     *propbin.Link         `bin:"chaosPlayer1DeathsText,optional"`
	ChaosPlayer1AssistsText    *propbin.Link         `bin:"chaosPlayer1AssistsText,optional"`
	ChaosPlayer1CreepScoreText *propbin.Link         `bin:"chaosPlayer1CreepScoreText,optional"`
	ChaosPlayer1Item1          *propbin.Link         `bin:"chaosPlayer1Item1,optional"`
	ChaosPlayer1Item2          *propbin.Link         `bin:"chaosPlayer1Item2,optional"`
	ChaosPlayer1Item3          *propbin.Link         `bin:"chaosPlayer1Item3,optional"`
	ChaosPlayer1Item4          *propbin.Link         `bin:"chaosPlayer1Item4,optional"`
	ChaosPlayer1Item5          *propbin.Link         `bin:"chaosPlayer1Item5,optional"`
	ChaosPlayer1Item6          *propbin.Link         `bin:"chaosPlayer1Item6,optional"`
	ChaosPlayer1Trinket        *propbin.Link         `bin:"chaosPlayer1Trinket,optional"`
	ChaosPlayer2Portrait       *propbin.Link         `bin:"chaosPlayer2Portrait,optional"`
	ChaosPlayer2ChampionName   *propbin.Link         `bin:"chaosPlayer2ChampionName,optional"`
	ChaosPlayer2SummonerName   *propbin.Link         `bin:"chaosPlayer2SummonerName,optional"`
	ChaosPlayer2LevelText      *propbin.Link         `bin:"chaosPlayer2LevelText,optional"`
	ChaosPlayer2KillsText      *propbin.Link         `bin:"chaosPlayer2KillsText,optional"`
	ChaosPlayer2DeathsText     *propbin.Link         `bin:"chaosPlayer2DeathsText,optional"`
	ChaosPlayer2AssistsText    *propbin.Link         `bin:"chaosPlayer2AssistsText,optional"`
	ChaosPlayer2CreepScoreText *propbin.Link         `bin:"chaosPlayer2CreepScoreText,optional"`
	ChaosPlayer2Item1          *propbin.Link         `bin:"chaosPlayer2Item1,optional"`
	ChaosPlayer2Item2          *propbin.Link         `bin:"chaosPlayer2Item2,optional"`
	ChaosPlayer2Item3          *propbin.Link         `bin:"chaosPlayer2Item3,optional"`
	ChaosPlayer2Item4          *propbin.Link         `bin:"chaosPlayer2Item4,optional"`
	ChaosPlayer2Item5          *propbin.Link         `bin:"chaosPlayer2Item5,optional"`
	ChaosPlayer2Item6          *propbin.Link         `bin:"chaosPlayer2Item6,optional"`
	ChaosPlayer2Trinket        *propbin.Link         `bin:"chaosPlayer2Trinket,optional"`
	ChaosPlayer3Portrait       *propbin.Link         `bin:"chaosPlayer3Portrait,optional"`
	ChaosPlayer3ChampionName   *propbin.Link         `bin:"chaosPlayer3ChampionName,optional"`
	ChaosPlayer3SummonerName   *propbin.Link         `bin:"chaosPlayer3SummonerName,optional"`
	ChaosPlayer3LevelText      *propbin.Link         `bin:"chaosPlayer3LevelText,optional"`
	ChaosPlayer3KillsText      *propbin.Link         `bin:"chaosPlayer3KillsText,optional"`
	ChaosPlayer3DeathsText     *propbin.Link         `bin:"chaosPlayer3DeathsText,optional"`
	ChaosPlayer3AssistsText    *propbin.Link         `bin:"chaosPlayer3AssistsText,optional"`
	ChaosPlayer3CreepScoreText *propbin.Link         `bin:"chaosPlayer3CreepScoreText,optional"`
	ChaosPlayer3Item1          *propbin.Link         `bin:"chaosPlayer3Item1,optional"`
	ChaosPlayer3Item2          *propbin.Link         `bin:"chaosPlayer3Item2,optional"`
	ChaosPlayer3Item3          *propbin.Link         `bin:"chaosPlayer3Item3,optional"`
	ChaosPlayer3Item4          *propbin.Link         `bin:"chaosPlayer3Item4,optional"`
	ChaosPlayer3Item5          *propbin.Link         `bin:"chaosPlayer3Item5,optional"`
	ChaosPlayer3Item6          *propbin.Link         `bin:"chaosPlayer3Item6,optional"`
	ChaosPlayer3Trinket        *propbin.Link         `bin:"chaosPlayer3Trinket,optional"`
	ChaosPlayer4Portrait       *propbin.Link         `bin:"chaosPlayer4Portrait,optional"`
	ChaosPlayer4ChampionName   *propbin.Link         `bin:"chaosPlayer4ChampionName,optional"`
	ChaosPlayer4SummonerName   *propbin.Link         `bin:"chaosPlayer4SummonerName,optional"`
	ChaosPlayer4LevelText      *propbin.Link         `bin:"chaosPlayer4LevelText,optional"`
	ChaosPlayer4KillsText      *propbin.Link         `bin:"chaosPlayer4KillsText,optional"`
	ChaosPlayer4DeathsText     *propbin.Link         `bin:"chaosPlayer4DeathsText,optional"`
	ChaosPlayer4AssistsText    *propbin.Link         `bin:"chaosPlayer4AssistsText,optional"`
	ChaosPlayer4CreepScoreText *propbin.Link         `bin:"chaosPlayer4CreepScoreText,optional"`
	ChaosPlayer4Item1          *propbin.Link         `bin:"chaosPlayer4Item1,optional"`
	ChaosPlayer4Item2          *propbin.Link         `bin:"chaosPlayer4Item2,optional"`
	ChaosPlayer4Item3          *propbin.Link         `bin:"chaosPlayer4Item3,optional"`
	ChaosPlayer4Item4          *propbin.Link         `bin:"chaosPlayer4Item4,optional"`
	ChaosPlayer4Item5          *propbin.Link         `bin:"chaosPlayer4Item5,optional"`
	ChaosPlayer4Item6          *propbin.Link         `bin:"chaosPlayer4Item6,optional"`
	ChaosPlayer4Trinket        *propbin.Link         `bin:"chaosPlayer4Trinket,optional"`
	ChaosPlayer5Portrait       *propbin.Link         `bin:"chaosPlayer5Portrait,optional"`
	ChaosPlayer5ChampionName   *propbin.Link         `bin:"chaosPlayer5ChampionName,optional"`
	ChaosPlayer5SummonerName   *propbin.Link         `bin:"chaosPlayer5SummonerName,optional"`
	ChaosPlayer5LevelText      *propbin.Link         `bin:"chaosPlayer5LevelText,optional"`
	ChaosPlayer5KillsText      *propbin.Link         `bin:"chaosPlayer5KillsText,optional"`
	ChaosPlayer5DeathsText     *propbin.Link         `bin:"chaosPlayer5DeathsText,optional"`
	ChaosPlayer5AssistsText    *propbin.Link         `bin:"chaosPlayer5AssistsText,optional"`
	ChaosPlayer5CreepScoreText *propbin.Link         `bin:"chaosPlayer5CreepScoreText,optional"`
	ChaosPlayer5Item1          *propbin.Link         `bin:"chaosPlayer5Item1,optional"`
	ChaosPlayer5Item2          *propbin.Link         `bin:"chaosPlayer5Item2,optional"`
	ChaosPlayer5Item3          *propbin.Link         `bin:"chaosPlayer5Item3,optional"`
	ChaosPlayer5Item4          *propbin.Link         `bin:"chaosPlayer5Item4,optional"`
	ChaosPlayer5Item5          *propbin.Link         `bin:"chaosPlayer5Item5,optional"`
	ChaosPlayer5Item6          *propbin.Link         `bin:"chaosPlayer5Item6,optional"`
	ChaosPlayer5Trinket        *propbin.Link         `bin:"chaosPlayer5Trinket,optional"`
	ShowGoldDifference         *bool                 `bin:"mShowGoldDifference,optional"`
	RefreshInterval            *float32              `bin:"mRefreshInterval,optional"`
	MetricFormat               EnumUiMetricFormat    `bin:"mMetricFormat,optional"`
}

// ShopViewController is the in-game item shop screen.
type ShopViewController struct {
	Scene                    propbin.Link          `bin:"scene"`
	Enabled                  *bool                 `bin:"mEnabled,optional"`
	StartHidden              *bool                 `bin:"mStartHidden,optional"`
	LayerOffset              *int32                `bin:"mLayerOffset,optional"`
	TransitionIn             EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut            EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	CloseButton              *propbin.Link         `bin:"closeButton,optional"`
	SearchBox                *propbin.Link         `bin:"searchBox,optional"`
	SearchClearButton        *propbin.Link         `bin:"searchClearButton,optional"`
	GoldText                 *propbin.Link         `bin:"goldText,optional"`
	UndoButton               *propbin.Link         `bin:"undoButton,optional"`
	SellButton               *propbin.Link         `bin:"sellButton,optional"`
	BuyButton                *propbin.Link         `bin:"buyButton,optional"`
	ItemNameText             *propbin.Link         `bin:"itemNameText,optional"`
	ItemPriceText            *propbin.Link         `bin:"itemPriceText,optional"`
	ItemDescriptionText      *propbin.Link         `bin:"itemDescriptionText,optional"`
	ItemStatsText            *propbin.Link         `bin:"itemStatsText,optional"`
	ItemIconLarge            *propbin.Link         `bin:"itemIconLarge,optional"`
	BuildsIntoLabel          *propbin.Link         `bin:"buildsIntoLabel,optional"`
	BuildsFromLabel          *propbin.Link         `bin:"buildsFromLabel,optional"`
	AllItemsTab              *propbin.Link         `bin:"allItemsTab,optional"`
	RecommendedTab           *propbin.Link         `bin:"recommendedTab,optional"`
	FavoritesTab             *propbin.Link         `bin:"favoritesTab,optional"`
	Category1Button          *propbin.Link         `bin:"category1Button,optional"`
	Category1Icon            *propbin.Link         `bin:"category1Icon,optional"`
	Category2Button          *propbin.Link         `bin:"category2Button,optional"`
	Category2Icon            *propbin.Link         `bin:"category2Icon,optional"`
	Category3Button          *propbin.Link         `bin:"category3Button,optional"`
	Category3Icon            *propbin.Link         `bin:"category3Icon,optional"`
	Category4Button          *propbin.Link         `bin:"category4Button,optional"`
	Category4Icon            *propbin.Link         `bin:"category4Icon,optional"`
	Category5Button          *propbin.Link         `bin:"category5Button,optional"`
	Category5Icon            *propbin.Link         `bin:"category5Icon,optional"`
	Category6Button          *propbin.Link         `bin:"category6Button,optional"`
	Category6Icon            *propbin.Link         `bin:"category6Icon,optional"`
	Category7Button          *propbin.Link         `bin:"category7Button,optional"`
	Category7Icon            *propbin.Link         `bin:"category7Icon,optional"`
	Category8Button          *propbin.Link         `bin:"category8Button,optional"`
	Category8Icon            *propbin.Link         `bin:"category8Icon,optional"`
	Category9Button          *propbin.Link         `bin:"category9Button,optional"`
	Category9Icon            *propbin.Link         `bin:"category9Icon,optional"`
	Category10Button         *propbin.Link         `bin:"category10Button,optional"`
	Category10Icon           *propbin.Link         `bin:"category10Icon,optional"`
	Category11Button         *propbin.Link         `bin:"category11Button,optional"`
	Category11Icon           *propbin.Link         `bin:"category11Icon,optional"`
	Category12Button         *propbin.Link         `bin:"category12Button,optional"`
	Category12Icon           *propbin.Link         `bin:"category12Icon,optional"`
	Category13Button         *propbin.Link         `bin:"category13Button,optional"`
	Category13Icon           *propbin.Link         `bin:"category13Icon,optional"`
	Category14Button         *propbin.Link         `bin:"category14Button,optional"`
	Category14Icon           *propbin.Link         `bin:"category14Icon,optional"`
	Category15Button         *propbin.Link         `bin:"category15Button,optional"`
	Category15Icon           *propbin.Link         `bin:"category15Icon,optional"`
	Category16Button         *propbin.Link         `bin:"category16Button,optional"`
	Category16Icon           *propbin.Link         `bin:"category16Icon,optional"`
	Category17Button         *propbin.Link         `bin:"category17Button,optional"`
	Category17Icon           *propbin.Link         `bin:"category17Icon,optional"`
	Category18Button         *propbin.Link         `bin:"category18Button,optional"`
	Category18Icon           *propbin.Link         `bin:"category18Icon,optional"`
	Category19Button         *propbin.Link         `bin:"category19Button,optional"`
	Category19Icon           *propbin.Link         `bin:"category19Icon,optional"`
	Category20Button         *propbin.Link         `bin:"category20Button,optional"`
	Category20Icon           *propbin.Link         `bin:"category20Icon,optional"`
	Recommended1Icon         *propbin.Link         `bin:"recommended1Icon,optional"`
	Recommended1Price        *propbin.Link         `bin:"recommended1Price,optional"`
	Recommended1Button       *propbin.Link         `bin:"recommended1Button,optional"`
	Recommended2Icon         *propbin.Link         `bin:"recommended2Icon,optional"`
	Recommended2Price        *propbin.Link         `bin:"recommended2Price,optional"`
	Recommended2Button       *propbin.Link         `bin:"recommended2Button,optional"`
	Recommended3Icon         *propbin.Link         `bin:"recommended3Icon,optional"`
	Recommended3Price        *propbin.Link         `bin:"recommended3Price,optional"`
	Recommended3Button       *propbin.Link         `bin:"recommended3Button,optional"`
	Recommended4Icon         *propbin.Link         `bin:"recommended4Icon,optional"`
	Recommended4Price        *propbin.Link         `bin:"recommended4Price,optional"`
	Recommended4Button       *propbin.Link         `bin:"recommended4Button,optional"`
	Recommended5Icon         *propbin.Link         `bin:"recommended5Icon,optional"`
	Recommended5Price        *propbin.Link         `bin:"recommended5Price,optional"`
	Recommended5Button       *propbin.Link         `bin:"recommended5Button,optional"`
	Recommended6Icon         *propbin.Link         `bin:"recommended6Icon,optional"`
	Recommended6Price        *propbin.Link         `bin:"recommended6Price,optional"`
	Recommended6Button       *propbin.Link         `bin:"recommended6Button,optional"`
	Recommended7Icon         *propbin.Link         `bin:"recommended7Icon,optional"`
	Recommended7Price        *propbin.Link         `bin:"recommended7Price,optional"`
	Recommended7Button       *propbin.Link         `bin:"recommended7Button,optional"`
	Recommended8Icon         *propbin.Link         `bin:"recommended8Icon,optional"`
	Recommended8Price        *propbin.Link         `bin:"recommended8Price,optional"`
	Recommended8Button       *propbin.Link         `bin:"recommended8Button,optional"`
	Recommended9Icon         *propbin.Link         `bin:"recommended9Icon,optional"`
	Recommended9Price        *propbin.Link         `bin:"recommended9Price,optional"`
	Recommended9Button       *propbin.Link         `bin:"recommended9Button,optional"`
	Recommended10Icon        *propbin.Link         `bin:"recommended10Icon,optional"`
	Recommended10Price       *propbin.Link         `bin:"recommended10Price,optional"`
	Recommended10Button      *propbin.Link         `bin:"recommended10Button,optional"`
	Recommended11Icon        *propbin.Link         `bin:"recommended11Icon,optional"`
	Recommended11Price       *propbin.Link         `bin:"recommended11Price,optional"`
	Recommended11Button      *propbin.Link         `bin:"recommended11Button,optional"`
	Recommended12Icon        *propbin.Link         `bin:"recommended12Icon,optional"`
	Recommended12Price       *propbin.Link         `bin:"recommended12Price,optional"`
	Recommended12Button      *propbin.Link         `bin:"recommended12Button,optional"`
	BuildTreeNode1Icon       *propbin.Link         `bin:"buildTreeNode1Icon,optional"`
	BuildTreeNode1Price      *propbin.Link         `bin:"buildTreeNode1Price,optional"`
	BuildTreeNode1Connector  *propbin.Link         `bin:"buildTreeNode1Connector,optional"`
	BuildTreeNode2Icon       *propbin.Link         `bin:"buildTreeNode2Icon,optional"`
	BuildTreeNode2Price      *propbin.Link         `bin:"buildTreeNode2Price,optional"`
	BuildTreeNode2Connector  *propbin.Link         `bin:"buildTreeNode2Connector,optional"`
	BuildTreeNode3Icon       *propbin.Link         `bin:"buildTreeNode3Icon,optional"`
	BuildTreeNode3Price      *propbin.Link         `bin:"buildTreeNode3Price,optional"`
	BuildTreeNode3Connector  *propbin.Link         `bin:"buildTreeNode3Connector,optional"`
	BuildTreeNode4Icon       *propbin.Link         `bin:"buildTreeNode4Icon,optional"`
	BuildTreeNode4Price      *propbin.Link         `bin:"buildTreeNode4Price,optional"`
	BuildTreeNode4Connector  *propbin.Link         `bin:"buildTreeNode4Connector,optional"`
	BuildTreeNode5Icon       *propbin.Link         `bin:"buildTreeNode5Icon,optional"`
	BuildTreeNode5Price      *propbin.Link         `bin:"buildTreeNode5Price,optional"`
	BuildTreeNode5Connector  *propbin.Link         `bin:"buildTreeNode5Connector,optional"`
	BuildTreeNode6Icon       *propbin.Link         `bin:"buildTreeNode6Icon,optional"`
	BuildTreeNode6Price      *propbin.Link         `bin:"buildTreeNode6Price,optional"`
	BuildTreeNode6Connector  *propbin.Link         `bin:"buildTreeNode6Connector,optional"`
	BuildTreeNode7Icon       *propbin.Link         `bin:"buildTreeNode7Icon,optional"`
	BuildTreeNode7Price      *propbin.Link         `bin:"buildTreeNode7Price,optional"`
	BuildTreeNode7Connector  *propbin.Link         `bin:"buildTreeNode7Connector,optional"`
	BuildTreeNode8Icon       *propbin.Link         `bin:"buildTreeNode8Icon,optional"`
	BuildTreeNode8Price      *propbin.Link         `bin:"buildTreeNode8Price,optional"`
	BuildTreeNode8Connector  *propbin.Link         `bin:"buildTreeNode8Connector,optional"`
	BuildTreeNode9Icon       *propbin.Link         `bin:"buildTreeNode9Icon,optional"`
	BuildTreeNode9Price      *propbin.Link         `bin:"buildTreeNode9Price,optional"`
	BuildTreeNode9Connector  *propbin.Link         `bin:"buildTreeNode9Connector,optional"`
	BuildTreeNode10Icon      *propbin.Link         `bin:"buildTreeNode10Icon,optional"`
	BuildTreeNode10Price     *propbin.Link         `bin:"buildTreeNode10Price,optional"`
	BuildTreeNode10Connector *propbin.Link         `bin:"buildTreeNode10Connector,optional"`
	BuildTreeNode11Icon      *propbin.Link         `bin:"buildTreeNode11Icon,optional"`
	BuildTreeNode11Price     *propbin.Link         `bin:"buildTreeNode11Price,optional"`
	BuildTreeNode11Connector *propbin.Link         `bin:"buildTreeNode11Connector,optional"`
	BuildTreeNode12Icon      *propbin.Link         `bin:"buildTreeNode12Icon,optional"`
	BuildTreeNode12Price     *propbin.Link         `bin:"buildTreeNode12Price,optional"`
	BuildTreeNode12Connector *propbin.Link         `bin:"buildTreeNode12Connector,optional"`
	BuildTreeNode13Icon      *propbin.Link         `bin:"buildTreeNode13Icon,optional"`
	BuildTreeNode13Price     *propbin.Link         `bin:"buildTreeNode13Price,optional"`
	BuildTreeNode13Connector *propbin.Link         `bin:"buildTreeNode13Connector,optional"`
	BuildTreeNode14Icon      *propbin.Link         `bin:"buildTreeNode14Icon,optional"`
	BuildTreeNode14Price     *propbin.Link         `bin:"buildTreeNode14Price,optional"`
	BuildTreeNode14Connector *propbin.Link         `bin:"buildTreeNode14Connector,optional"`
	BuildTreeNode15Icon      *propbin.Link         `bin:"buildTreeNode15Icon,optional"`
	BuildTreeNode15Price     *propbin.Link         `bin:"buildTreeNode15Price,optional"`
	BuildTreeNode15Connector *propbin.Link         `bin:"buildTreeNode15Connector,optional"`
	Inventory1Icon           *propbin.Link         `bin:"inventory1Icon,optional"`
	Inventory1SellButton     *propbin.Link         `bin:"inventory1SellButton,optional"`
	Inventory2Icon           *propbin.Link         `bin:"inventory2Icon,optional"`
	Inventory2SellButton     *propbin.Link         `bin:"inventory2SellButton,optional"`
	Inventory3Icon           *propbin.Link         `bin:"inventory3Icon,optional"`
	Inventory3SellButton     *propbin.Link         `bin:"inventory3SellButton,optional"`
	Inventory4Icon           *propbin.Link         `bin:"inventory4Icon,optional"`
	Inventory4SellButton     *propbin.Link         `bin:"inventory4SellButton,optional"`
	Inventory5Icon           *propbin.Link         `bin:"inventory5Icon,optional"`
	Inventory5SellButton     *propbin.Link         `bin:"inventory5SellButton,optional"`
	Inventory6Icon           *propbin.Link         `bin:"inventory6Icon,optional"`
	Inventory6SellButton     *propbin.Link         `bin:"inventory6SellButton,optional"`
	Inventory7Icon           *propbin.Link         `bin:"inventory7Icon,optional"`
	Inventory7SellButton     *propbin.Link         `bin:"inventory7SellButton,optional"`
	BuildsInto1Icon          *propbin.Link         `bin:"buildsInto1Icon,optional"`
	BuildsInto2Icon          *propbin.Link         `bin:"buildsInto2Icon,optional"`
	BuildsInto3Icon          *propbin.Link         `bin:"buildsInto3Icon,optional"`
	BuildsInto4Icon          *propbin.Link         `bin:"buildsInto4Icon,optional"`
	BuildsInto5Icon          *propbin.Link         `bin:"buildsInto5Icon,optional"`
	BuildsInto6Icon          *propbin.Link         `bin:"buildsInto6Icon,optional"`
	BuildsInto7Icon          *propbin.Link         `bin:"buildsInto7Icon,optional"`
	BuildsInto8Icon          *propbin.Link         `bin:"buildsInto8Icon,optional"`
	BuildsInto9Icon          *propbin.Link         `bin:"buildsInto9Icon,optional"`
	BuildsInto10Icon         *propbin.Link         `bin:"buildsInto10Icon,optional"`
	GridColumns              *uint16               `bin:"mGridColumns,optional"`
	ItemCellTemplate         *propbin.Link         `bin:"mItemCellTemplate,optional"`
	DoubleClickToBuy         *bool                 `bin:"mDoubleClickToBuy,optional"`
	ShowUnavailableItems     *bool                 `bin:"mShowUnavailableItems,optional"`
	SearchAliases            map[string][]uint32   `bin:"mSearchAliases,optional"`
}

type LoadingScreenViewController struct {
	Scene                     propbin.Link          `bin:"scene"`
	Enabled                   *bool                 `bin:"mEnabled,optional"`
	StartHidden               *bool                 `bin:"mStartHidden,optional"`
	LayerOffset               *int32                `bin:"mLayerOffset,optional"`
	TransitionIn              EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut             EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	BackgroundImage           *propbin.Link         `bin:"backgroundImage,optional"`
	GameModeText              *propbin.Link         `bin:"gameModeText,optional"`
	MapNameText               *propbin.Link         `bin:"mapNameText,optional"`
	TipText                   *propbin.Link         `bin:"tipText,optional"`
	VersionText               *propbin.Link         `bin:"versionText,optional"`
	Player1Splash             *propbin.Link         `bin:"player1Splash,optional"`
	Player1ChampionName       *propbin.Link         `bin:"player1ChampionName,optional"`
	Player1SummonerName       *propbin.Link         `bin:"player1SummonerName,optional"`
	Player1RankEmblem         *propbin.Link         `bin:"player1RankEmblem,optional"`
	Player1SummonerSpell1     *propbin.Link         `bin:"player1SummonerSpell1,optional"`
	Player1SummonerSpell2     *propbin.Link         `bin:"player1SummonerSpell2,optional"`
	Player1KeystoneRune       *propbin.Link         `bin:"player1KeystoneRune,optional"`
	Player1SecondaryRuneTree  *propbin.Link         `bin:"player1SecondaryRuneTree,optional"`
	Player1MasteryBanner      *propbin.Link         `bin:"player1MasteryBanner,optional"`
	Player1LoadingProgress    *propbin.Link         `bin:"player1LoadingProgress,optional"`
	Player2Splash             *propbin.Link         `bin:"player2Splash,optional"`
	Player2ChampionName       *propbin.Link         `bin:"player2ChampionName,optional"`
	Player2SummonerName       *propbin.Link         `bin:"player2SummonerName,optional"`
	Player2RankEmblem         *propbin.Link         `bin:"player2RankEmblem,optional"`
	Player2SummonerSpell1     *propbin.Link         `bin:"player2SummonerSpell1,optional"`
	Player2SummonerSpell2     *propbin.Link         `bin:"player2SummonerSpell2,optional"`
	Player2KeystoneRune       *propbin.Link         `bin:"player2KeystoneRune,optional"`
	Player2SecondaryRuneTree  *propbin.Link         `bin:"player2SecondaryRuneTree,optional"`
	Player2MasteryBanner      *propbin.Link         `bin:"player2MasteryBanner,optional"`
	Player2LoadingProgress    *propbin.Link         `bin:"player2LoadingProgress,optional"`
	Player3Splash             *propbin.Link         `bin:"player3Splash,optional"`
	Player3ChampionName       *propbin.Link         `bin:"player3ChampionName,optional"`
	Player3SummonerName       *propbin.Link         `bin:"player3SummonerName,optional"`
	Player3RankEmblem         *propbin.Link         `bin:"player3RankEmblem,optional"`
	Player3SummonerSpell1     *propbin.Link         `bin:"player3SummonerSpell1,optional"`
	Player3SummonerSpell2     *propbin.Link         `bin:"player3SummonerSpell2,optional"`
	Player3KeystoneRune       *propbin.Link         `bin:"player3KeystoneRune,optional"`
	Player3SecondaryRuneTree  *propbin.Link         `bin:"player3SecondaryRuneTree,optional"`
	Player3MasteryBanner      *propbin.Link         `bin:"player3MasteryBanner,optional"`
	Player3LoadingProgress    *propbin.Link         `bin:"player3LoadingProgress,optional"`
	Player4Splash             *propbin.Link         `bin:"player4Splash,optional"`
	Player4ChampionName       *propbin.Link         `bin:"player4ChampionName,optional"`
	Player4SummonerName       *propbin.Link         `bin:"player4SummonerName,optional"`
	Player4RankEmblem         *propbin.Link         `bin:"player4RankEmblem,optional"`
	Player4SummonerSpell1     *propbin.Link         `bin:"player4SummonerSpell1,optional"`
	Player4SummonerSpell2     *propbin.Link         `bin:"player4SummonerSpell2,optional"`
	Player4KeystoneRune       *propbin.Link         `bin:"player4KeystoneRune,optional"`
	Player4SecondaryRuneTree  *propbin.Link         `bin:"player4SecondaryRuneTree,optional"`
	Player4MasteryBanner      *propbin.Link         `bin:"player4MasteryBanner,optional"`
	Player4LoadingProgress    *propbin.Link         `bin:"player4LoadingProgress,optional"`
	Player5Splash             *propbin.Link         `bin:"player5Splash,optional"`
	Player5ChampionName       *propbin.Link         `bin:"player5ChampionName,optional"`
	Player5SummonerName       *propbin.Link         `bin:"player5SummonerName,optional"`
	Player5RankEmblem         *propbin.Link         `bin:"player5RankEmblem,optional"`
	Player5SummonerSpell1     *propbin.Link         `bin:"player5SummonerSpell1,optional"`
	Player5SummonerSpell2     *propbin.Link         `bin:"player5SummonerSpell2,optional"`
	Player5KeystoneRune       *propbin.Link         `bin:"player5KeystoneRune,optional"`
	Player5SecondaryRuneTree  *propbin.Link         `bin:"player5SecondaryRuneTree,optional"`
	Player5MasteryBanner      *propbin.Link         `bin:"player5MasteryBanner,optional"`
	Player5LoadingProgress    *propbin.Link         `bin:"player5LoadingProgress,optional"`
	Player6Splash             *propbin.Link         `bin:"player6Splash,optional"`
	Player6ChampionName       *propbin.Link         `bin:"player6ChampionName,optional"`
	Player6SummonerName       *propbin.Link         `bin:"player6SummonerName,optional"`
	Player6RankEmblem         *propbin.Link         `bin:"player6RankEmblem,optional"`
	Player6SummonerSpell1     *propbin.Link         `bin:"player6SummonerSpell1,optional"`
	Player6SummonerSpell2     *propbin.Link         `bin:"player6SummonerSpell2,optional"`
	Player6KeystoneRune       *propbin.Link         `bin:"player6KeystoneRune,optional"`
	Player6SecondaryRuneTree  *propbin.Link         `bin:"player6SecondaryRuneTree,optional"`
	Player6MasteryBanner      *propbin.Link         `bin:"player6MasteryBanner,optional"`
	Player6LoadingProgress    *propbin.Link         `bin:"player6LoadingProgress,optional"`
	Player7Splash             *propbin.Link         `bin:"player7Splash,optional"`
	Player7ChampionName       *propbin.Link         `bin:"player7ChampionName,optional"`
	Player7SummonerName       *propbin.Link         `bin:"player7SummonerName,optional"`
	Player7RankEmblem         *propbin.Link         `bin:"player7RankEmblem,optional"`
	Player7SummonerSpell1     *propbin.Link         `bin:"player7SummonerSpell1,optional"`
	Player7SummonerSpell2     *propbin.Link         `bin:"player7SummonerSpell2,optional"`
	Player7KeystoneRune       *propbin.Link         `bin:"player7KeystoneRune,optional"`
	Player7SecondaryRuneTree  *propbin.Link         `bin:"player7SecondaryRuneTree,optional"`
	Player7MasteryBanner      *propbin.Link         `bin:"player7MasteryBanner,optional"`
	Player7LoadingProgress    *propbin.Link         `bin:"player7LoadingProgress,optional"`
	Player8Splash             *propbin.Link         `bin:"player8Splash,optional"`
	Player8ChampionName       *propbin.Link         `bin:"player8ChampionName,optional"`
	Player8SummonerName       *propbin.Link         `bin:"player8SummonerName,optional"`
	Player8RankEmblem         *propbin.Link         `bin:"player8RankEmblem,optional"`
	Player8SummonerSpell1     *propbin.Link         `bin:"player8SummonerSpell1,optional"`
	Player8SummonerSpell2     *propbin.Link         `bin:"player8SummonerSpell2,optional"`
	Player8KeystoneRune       *propbin.Link         `bin:"player8KeystoneRune,optional"`
	Player8SecondaryRuneTree  *propbin.Link         `bin:"player8SecondaryRuneTree,optional"`
	Player8MasteryBanner      *propbin.Link         `bin:"player8MasteryBanner,optional"`
	Player8LoadingProgress    *propbin.Link         `bin:"player8LoadingProgress,optional"`
	Player9Splash             *propbin.Link         `bin:"player9Splash,optional"`
	Player9ChampionName       *propbin.Link         `bin:"player9ChampionName,optional"`
	Player9SummonerName       *propbin.Link         `bin:"player9SummonerName,optional"`
	Player9RankEmblem         *propbin.Link         `bin:"player9RankEmblem,optional"`
	Player9SummonerSpell1     *propbin.Link         `bin:"player9SummonerSpell1,optional"`
	Player9SummonerSpell2     *propbin.Link         `bin:"player9SummonerSpell2,optional"`
	Player9KeystoneRune       *propbin.Link         `bin:"player9KeystoneRune,optional"`
	Player9SecondaryRuneTree  *propbin.Link         `bin:"player9SecondaryRuneTree,optional"`
	Player9MasteryBanner      *propbin.Link         `bin:"player9MasteryBanner,optional"`
	Player9LoadingProgress    *propbin.Link         `bin:"player9LoadingProgress,optional"`
	Player10Splash            *propbin.Link         `bin:"player10Splash,optional"`
	Player10ChampionName      *propbin.Link         `bin:"player10ChampionName,optional"`
	Player10SummonerName      *propbin.Link         `bin:"player10SummonerName,optional"`
	Player10RankEmblem        *propbin.Link         `bin:"player10RankEmblem,optional"`
	Player10SummonerSpell1    *propbin.Link         `bin:"player10SummonerSpell1,optional"`
	Player10SummonerSpell2    *propbin.Link         `bin:"player10SummonerSpell2,optional"`
	Player10KeystoneRune      *propbin.Link         `bin:"player10KeystoneRune,optional"`
	Player10SecondaryRuneTree *propbin.Link         `bin:"player10SecondaryRuneTree,optional"`
	Player10MasteryBanner     *propbin.Link         `bin:"player10MasteryBanner,optional"`
	Player10LoadingProgress   *propbin.Link         `bin:"player10LoadingProgress,optional"`
	TipRotationTime           *float32              `bin:"mTipRotationTime,optional"`
	ShowRanks                 *bool                 `bin:"mShowRanks,optional"`
}

type SpectatorHudViewController struct {
	Scene                     propbin.Link          `bin:"scene"`
	Enabled                   *bool                 `bin:"mEnabled,optional"`
	StartHidden               *bool                 `bin:"mStartHidden,optional"`
	LayerOffset               *int32                `bin:"mLayerOffset,optional"`
	TransitionIn              EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut             EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	GameClock                 *propbin.Link         `bin:"gameClock,optional"`
	OrderGoldText             *propbin.Link         `bin:"orderGoldText,optional"`
	ChaosGoldText             *propbin.Link         `bin:"chaosGoldText,optional"`
	GoldGraph                 *propbin.Link         `bin:"goldGraph,optional"`
	OrderTowersText           *propbin.Link         `bin:"orderTowersText,optional"`
	ChaosTowersText           *propbin.Link         `bin:"chaosTowersText,optional"`
	OrderDragonIcons          *propbin.Link         `bin:"orderDragonIcons,optional"`
	ChaosDragonIcons          *propbin.Link         `bin:"chaosDragonIcons,optional"`
	BaronTimer                *propbin.Link         `bin:"baronTimer,optional"`
	DragonTimer               *propbin.Link         `bin:"dragonTimer,optional"`
	HeraldTimer               *propbin.Link         `bin:"heraldTimer,optional"`
	Player1Portrait           *propbin.Link         `bin:"player1Portrait,optional"`
	Player1HealthBar          *propbin.Link         `bin:"player1HealthBar,optional"`
	Player1ResourceBar        *propbin.Link         `bin:"player1ResourceBar,optional"`
	Player1UltimateIndicator  *propbin.Link         `bin:"player1UltimateIndicator,optional"`
	Player1LevelText          *propbin.Link         `bin:"player1LevelText,optional"`
	Player1RespawnTimer       *propbin.Link         `bin:"player1RespawnTimer,optional"`
	Player1GoldText           *propbin.Link         `bin:"player1GoldText,optional"`
	Player2Portrait           *propbin.Link         `bin:"player2Portrait,optional"`
	Player2HealthBar          *propbin.Link         `bin:"player2HealthBar,optional"`
	Player2ResourceBar        *propbin.Link         `bin:"player2ResourceBar,optional"`
	Player2UltimateIndicator  *propbin.Link         `bin:"player2UltimateIndicator,optional"`
	Player2LevelText          *propbin.Link         `bin:"player2LevelText,optional"`
	Player2RespawnTimer       *propbin.Link         `bin:"player2RespawnTimer,optional"`
	Player2GoldText           *propbin.Link         `bin:"player2GoldText,optional"`
	Player3Portrait           *propbin.Link         `bin:"player3Portrait,optional"`
	Player3HealthBar          *propbin.Link         `bin:"player3HealthBar,optional"`
	Player3ResourceBar        *propbin.Link         `bin:"player3ResourceBar,optional"`
	Player3UltimateIndicator  *propbin.Link         `bin:"player3UltimateIndicator,optional"`
	Player3LevelText          *propbin.Link         `bin:"player3LevelText,optional"`
	Player3RespawnTimer       *propbin.Link         `bin:"player3RespawnTimer,optional"`
	Player3GoldText           *propbin.Link         `bin:"player3GoldText,optional"`
	Player4Portrait           *propbin.Link         `bin:"player4Portrait,optional"`
	Player4HealthBar          *propbin.Link         `bin:"player4HealthBar,optional"`
	Player4ResourceBar        *propbin.Link         `bin:"player4ResourceBar,optional"`
	Player4UltimateIndicator  *propbin.Link         `bin:"player4UltimateIndicator,optional"`
	Player4LevelText          *propbin.Link         `bin:"player4LevelText,optional"`
	Player4RespawnTimer       *propbin.Link         `bin:"player4RespawnTimer,optional"`
	Player4GoldText           *propbin.Link         `bin:"player4GoldText,optional"`
	Player5Portrait           *propbin.Link         `bin:"player5Portrait,optional"`
	Player5HealthBar          *propbin.Link         `bin:"player5HealthBar,optional"`
	Player5ResourceBar        *propbin.Link         `bin:"player5ResourceBar,optional"`
	Player5UltimateIndicator  *propbin.Link         `bin:"player5UltimateIndicator,optional"`
	Player5LevelText          *propbin.Link         `bin:"player5LevelText,optional"`
	Player5RespawnTimer       *propbin.Link         `bin:"player5RespawnTimer,optional"`
	Player5GoldText           *propbin.Link         `bin:"player5GoldText,optional"`
	Player6Portrait           *propbin.Link         `bin:"player6Portrait,optional"`
	Player6HealthBar          *propbin.Link         `bin:"player6HealthBar,optional"`
	Player6ResourceBar        *propbin.Link         `bin:"player6ResourceBar,optional"`
	Player6UltimateIndicator  *propbin.Link         `bin:"player6UltimateIndicator,optional"`
	Player6LevelText          *propbin.Link         `bin:"player6LevelText,optional"`
	Player6RespawnTimer       *propbin.Link         `bin:"player6RespawnTimer,optional"`
	Player6GoldText           *propbin.Link         `bin:"player6GoldText,optional"`
	Player7Portrait           *propbin.Link         `bin:"player7Portrait,optional"`
	Player7HealthBar          *propbin.Link         `bin:"player7HealthBar,optional"`
	Player7ResourceBar        *propbin.Link         `bin:"player7ResourceBar,optional"`
	Player7UltimateIndicator  *propbin.Link         `bin:"player7UltimateIndicator,optional"`
	Player7LevelText          *propbin.Link         `bin:"player7LevelText,optional"`
	Player7RespawnTimer       *propbin.Link         `bin:"player7RespawnTimer,optional"`
	Player7GoldText           *propbin.Link         `bin:"player7GoldText,optional"`
	Player8Portrait           *propbin.Link         `bin:"player8Portrait,optional"`
	Player8HealthBar          *propbin.Link         `bin:"player8HealthBar,optional"`
	Player8ResourceBar        *propbin.Link         `bin:"player8ResourceBar,optional"`
	Player8UltimateIndicator  *propbin.Link         `bin:"player8UltimateIndicator,optional"`
	Player8LevelText          *propbin.Link         `bin:"player8LevelText,optional"`
	Player8RespawnTimer       *propbin.Link         `bin:"player8RespawnTimer,optional"`
	Player8GoldText           *propbin.Link         `bin:"player8GoldText,optional"`
	Player9Portrait           *propbin.Link         `bin:"player9Portrait,optional"`
	Player9HealthBar          *propbin.Link         `bin:"player9HealthBar,optional"`
	Player9ResourceBar        *propbin.Link         `bin:"player9ResourceBar,optional"`
	Player9UltimateIndicator  *propbin.Link         `bin:"player9UltimateIndicator,optional"`
	Player9LevelText          *propbin.Link         `bin:"player9LevelText,optional"`
	Player9RespawnTimer       *propbin.Link         `bin:"player9RespawnTimer,optional"`
	Player9GoldText           *propbin.Link         `bin:"player9GoldText,optional"`
	Player10Portrait          *propbin.Link         `bin:"player10Portrait,optional"`
	Player10HealthBar         *propbin.Link         `bin:"player10HealthBar,optional"`
	Player10ResourceBar       *propbin.Link         `bin:"player10ResourceBar,optional"`
	Player10UltimateIndicator *propbin.Link         `bin:"player10UltimateIndicator,optional"`
	Player10LevelText         *propbin.Link         `bin:"player10LevelText,optional"`
	Player10RespawnTimer      *propbin.Link         `bin:"player10RespawnTimer,optional"`
	Player10GoldText          *propbin.Link         `bin:"player10GoldText,optional"`
	AutoDirectorEnabled       *bool                 `bin:"mAutoDirectorEnabled,optional"`
	ShowNeutralTimers         *bool                 `bin:"mShowNeutralTimers,optional"`
}

type PostGameStatsViewController struct {
	Scene                   propbin.Link          `bin:"scene"`
	Enabled                 *bool                 `bin:"mEnabled,optional"`
	StartHidden             *bool                 `bin:"mStartHidden,optional"`
	LayerOffset             *int32                `bin:"mLayerOffset,optional"`
	TransitionIn            EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut           EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	VictoryBanner           *propbin.Link         `bin:"victoryBanner,optional"`
	DefeatBanner            *propbin.Link         `bin:"defeatBanner,optional"`
	ContinueButton          *propbin.Link         `bin:"continueButton,optional"`
	PlayAgainButton         *propbin.Link         `bin:"playAgainButton,optional"`
	TabOverview             *propbin.Link         `bin:"tabOverview,optional"`
	TabGraphs               *propbin.Link         `bin:"tabGraphs,optional"`
	TabDetails              *propbin.Link         `bin:"tabDetails,optional"`
	Player1KillsText        *propbin.Link         `bin:"player1KillsText,optional"`
	Player2KillsText        *propbin.Link         `bin:"player2KillsText,optional"`
	Player3KillsText        *propbin.Link         `bin:"player3KillsText,optional"`
	Player4KillsText        *propbin.Link         `bin:"player4KillsText,optional"`
	Player5KillsText        *propbin.Link         `bin:"player5KillsText,optional"`
	Player6KillsText        *propbin.Link         `bin:"player6KillsText,optional"`
	Player7KillsText        *propbin.Link         `bin:"player7KillsText,optional"`
	Player8KillsText        *propbin.Link         `bin:"player8KillsText,optional"`
	Player9KillsText        *propbin.Link         `bin:"player9KillsText,optional"`
	Player10KillsText       *propbin.Link         `bin:"player10KillsText,optional"`
	Player1DeathsText       *propbin.Link         `bin:"player1DeathsText,optional"`
	Player2DeathsText       *propbin.Link         `bin:"player2DeathsText,optional"`
	Player3DeathsText       *propbin.Link         `bin:"player3DeathsText,optional"`
	Player4DeathsText       *propbin.Link         `bin:"player4DeathsText,optional"`
	Player5DeathsText       *propbin.Link         `bin:"player5DeathsText,optional"`
	Player6DeathsText       *propbin.Link         `bin:"player6DeathsText,optional"`
	Player7DeathsText       *propbin.Link         `bin:"player7DeathsText,optional"`
	Player8DeathsText       *propbin.Link         `bin:"player8DeathsText,optional"`
	Player9DeathsText       *propbin.Link         `bin:"player9DeathsText,optional"`
	Player10DeathsText      *propbin.Link         `bin:"player10DeathsText,optional"`
	Player1AssistsText      *propbin.Link         `bin:"player1AssistsText,optional"`
	Player2AssistsText      *propbin.Link         `bin:"player2AssistsText,optional"`
	Player3AssistsText      *propbin.Link         `bin:"player3AssistsText,optional"`
	Player4AssistsText      *propbin.Link         `bin:"player4AssistsText,optional"`
	Player5AssistsText      *propbin.Link         `bin:"player5AssistsText,optional"`
	Player6AssistsText      *propbin.Link         `bin:"player6AssistsText,optional"`
	Player7AssistsText      *propbin.Link         `bin:"player7AssistsText,optional"`
	Player8AssistsText      *propbin.Link         `bin:"player8AssistsText,optional"`
	Player9AssistsText      *propbin.Link         `bin:"player9AssistsText,optional"`
	Player10AssistsText     *propbin.Link         `bin:"player10AssistsText,optional"`
	Player1DamageText       *propbin.Link         `bin:"player1DamageText,optional"`
	Player2DamageText       *propbin.Link         `bin:"player2DamageText,optional"`
	Player3DamageText       *propbin.Link         `bin:"player3DamageText,optional"`
	Player4DamageText       *propbin.Link         `bin:"player4DamageText,optional"`
	Player5DamageText       *propbin.Link         `bin:"player5DamageText,optional"`
	Player6DamageText       *propbin.Link         `bin:"player6DamageText,optional"`
	Player7DamageText       *propbin.Link         `bin:"player7DamageText,optional"`
	Player8DamageText       *propbin.Link         `bin:"player8DamageText,optional"`
	Player9DamageText       *propbin.Link         `bin:"player9DamageText,optional"`
	Player10DamageText      *propbin.Link         `bin:"player10DamageText,optional"`
	Player1DamageTakenText  *propbin.Link         `bin:"player1DamageTakenText,optional"`
	Player2DamageTakenText  *propbin.Link         `bin:"player2DamageTakenText,optional"`
	Player3DamageTakenText  *propbin.Link         `bin:"player3DamageTakenText,optional"`
	Player4DamageTakenText  *propbin.Link         `bin:"player4DamageTakenText,optional"`
	Player5DamageTakenText  *propbin.Link         `bin:"player5DamageTakenText,optional"`
	Player6DamageTakenText  *propbin.Link         `bin:"player6DamageTakenText,optional"`
	Player7DamageTakenText  *propbin.Link         `bin:"player7DamageTakenText,optional"`
	Player8DamageTakenText  *propbin.Link         `bin:"player8DamageTakenText,optional"`
	Player9DamageTakenText  *propbin.Link         `bin:"player9DamageTakenText,optional"`
	Player10DamageTakenText *propbin.Link         `bin:"player10DamageTakenText,optional"`
	Player1HealingText      *propbin.Link         `bin:"player1HealingText,optional"`
	Player2HealingText      *propbin.Link         `bin:"player2HealingText,optional"`
	Player3HealingText      *propbin.Link         `bin:"player3HealingText,optional"`
	Player4HealingText      *propbin.Link         `bin:"player4HealingText,optional"`
	Player5HealingText      *propbin.Link         `bin:"player5HealingText,optional"`
	Player6HealingText      *propbin.Link         `bin:"player6HealingText,optional"`
	Player7HealingText      *propbin.Link         `bin:"player7HealingText,optional"`
	Player8HealingText      *propbin.Link         `bin:"player8HealingText,optional"`
	Player9HealingText      *propbin.Link         `bin:"player9HealingText,optional"`
	Player10HealingText     *propbin.Link         `bin:"player10HealingText,optional"`
	Player1ShieldingText    *propbin.Link         `bin:"player1ShieldingText,optional"`
	Player2ShieldingText    *propbin.Link         `bin:"player2ShieldingText,optional"`
	Player3ShieldingText    *propbin.Link         `bin:"player3ShieldingText,optional"`
	Player4ShieldingText    *propbin.Link         `bin:"player4ShieldingText,optional"`
	Player5ShieldingText    *propbin.Link         `bin:"player5ShieldingText,optional"`
	Player6ShieldingText    *propbin.Link         `bin:"player6ShieldingText,optional"`
	Player7ShieldingText    *propbin.Link         `bin:"player7ShieldingText,optional"`
	Player8ShieldingText    *propbin.Link         `bin:"player8ShieldingText,optional"`
	Player9ShieldingText    *propbin.Link         `bin:"player9ShieldingText,optional"`
	Player10ShieldingText   *propbin.Link         `bin:"player10ShieldingText,optional"`
	Player1GoldText         *propbin.Link         `bin:"player1GoldText,optional"`
	Player2GoldText         *propbin.Link         `bin:"player2GoldText,optional"`
	Player3GoldText         *propbin.Link         `bin:"player3GoldText,optional"`
	Player4GoldText         *propbin.Link         `bin:"player4GoldText,optional"`
	Player5GoldText         *propbin.Link         `bin:"player5GoldText,optional"`
	Player6GoldText         *propbin.Link         `bin:"player6GoldText,optional"`
	Player7GoldText         *propbin.Link         `bin:"player7GoldText,optional"`
	Player8GoldText         *propbin.Link         `bin:"player8GoldText,optional"`
	Player9GoldText         *propbin.Link         `bin:"player9GoldText,optional"`
	Player10GoldText        *propbin.Link         `bin:"player10GoldText,optional"`
	Player1CreepScoreText   *propbin.Link         `bin:"player1CreepScoreText,optional"`
	Player2CreepScoreText   *propbin.Link         `bin:"player2CreepScoreText,optional"`
	Player3CreepScoreText   *propbin.Link         `bin:"player3CreepScoreText,optional"`
	Player4CreepScoreText   *propbin.Link         `bin:"player4CreepScoreText,optional"`
	Player5CreepScoreText   *propbin.Link         `bin:"player5CreepScoreText,optional"`
	Player6CreepScoreText   *propbin.Link         `bin:"player6CreepScoreText,optional"`
	Player7CreepScoreText   *propbin.Link         `bin:"player7CreepScoreText,optional"`
	Player8CreepScoreText   *propbin.Link         `bin:"player8CreepScoreText,optional"`
	Player9CreepScoreText   *propbin.Link         `bin:"player9CreepScoreText,optional"`
	Player10CreepScoreText  *propbin.Link         `bin:"player10CreepScoreText,optional"`
	Player1VisionScoreText  *propbin.Link         `bin:"player1VisionScoreText,optional"`
	Player2VisionScoreText  *propbin.Link         `bin:"player2VisionScoreText,optional"`
	Player3VisionScoreText  *propbin.Link         `bin:"player3VisionScoreText,optional"`
	Player4VisionScoreText  *propbin.Link         `bin:"player4VisionScoreText,optional"`
	Player5VisionScoreText  *propbin.Link         `bin:"player5VisionScoreText,optional"`
	Player6VisionScoreText  *propbin.Link         `bin:"player6VisionScoreText,optional"`
	Player7VisionScoreText  *propbin.Link         `bin:"player7VisionScoreText,optional"`
	Player8VisionScoreText  *propbin.Link         `bin:"player8VisionScoreText,optional"`
	Player9VisionScoreText  *propbin.Link         `bin:"player9VisionScoreText,optional"`
	Player10VisionScoreText *propbin.Link         `bin:"player10VisionScoreText,optional"`
	MetricFormat            EnumUiMetricFormat    `bin:"mMetricFormat,optional"`
	HighlightBest           *bool                 `bin:"mHighlightBest,optional"`
}

type SettingsMenuViewController struct {
	Scene                             propbin.Link                           `bin:"scene"`
	Enabled                           *bool                                  `bin:"mEnabled,optional"`
	StartHidden                       *bool                                  `bin:"mStartHidden,optional"`
	LayerOffset                       *int32                                 `bin:"mLayerOffset,optional"`
	TransitionIn                      EnumUiSceneTransition                  `bin:"mTransitionIn,optional"`
	TransitionOut                     EnumUiSceneTransition                  `bin:"mTransitionOut,optional"`
	CloseButton                       *propbin.Link                          `bin:"closeButton,optional"`
	OkButton                          *propbin.Link                          `bin:"okButton,optional"`
	CancelButton                      *propbin.Link                          `bin:"cancelButton,optional"`
	RestoreDefaultsButton             *propbin.Link                          `bin:"restoreDefaultsButton,optional"`
	TabGame                           *propbin.Link                          `bin:"tabGame,optional"`
	TabVideo                          *propbin.Link                          `bin:"tabVideo,optional"`
	TabSound                          *propbin.Link                          `bin:"tabSound,optional"`
	TabInterface                      *propbin.Link                          `bin:"tabInterface,optional"`
	TabHotkeys                        *propbin.Link                          `bin:"tabHotkeys,optional"`
	OptionWindowModeLabel             *propbin.Link                          `bin:"optionWindowModeLabel,optional"`
	OptionWindowModeControl           *propbin.Link                          `bin:"optionWindowModeControl,optional"`
	OptionResolutionLabel             *propbin.Link                          `bin:"optionResolutionLabel,optional"`
	OptionResolutionControl           *propbin.Link                          `bin:"optionResolutionControl,optional"`
	OptionCharacterQualityLabel       *propbin.Link                          `bin:"optionCharacterQualityLabel,optional"`
	OptionCharacterQualityControl     *propbin.Link                          `bin:"optionCharacterQualityControl,optional"`
	OptionEnvironmentQualityLabel     *propbin.Link                          `bin:"optionEnvironmentQualityLabel,optional"`
	OptionEnvironmentQualityControl   *propbin.Link                          `bin:"optionEnvironmentQualityControl,optional"`
	OptionEffectsQualityLabel         *propbin.Link                          `bin:"optionEffectsQualityLabel,optional"`
	OptionEffectsQualityControl       *propbin.Link                          `bin:"optionEffectsQualityControl,optional"`
	OptionShadowQualityLabel          *propbin.Link                          `bin:"optionShadowQualityLabel,optional"`
	OptionShadowQualityControl        *propbin.Link                          `bin:"optionShadowQualityControl,optional"`
	OptionFrameRateCapLabel           *propbin.Link                          `bin:"optionFrameRateCapLabel,optional"`
	OptionFrameRateCapControl         *propbin.Link                          `bin:"optionFrameRateCapControl,optional"`
	OptionAntiAliasingLabel           *propbin.Link                          `bin:"optionAntiAliasingLabel,optional"`
	OptionAntiAliasingControl         *propbin.Link                          `bin:"optionAntiAliasingControl,optional"`
	OptionVerticalSyncLabel           *propbin.Link                          `bin:"optionVerticalSyncLabel,optional"`
	OptionVerticalSyncControl         *propbin.Link                          `bin:"optionVerticalSyncControl,optional"`
	OptionColorblindModeLabel         *propbin.Link                          `bin:"optionColorblindModeLabel,optional"`
	OptionColorblindModeControl       *propbin.Link                          `bin:"optionColorblindModeControl,optional"`
	OptionMasterVolumeLabel           *propbin.Link                          `bin:"optionMasterVolumeLabel,optional"`
	OptionMasterVolumeControl         *propbin.Link                          `bin:"optionMasterVolumeControl,optional"`
	OptionMusicVolumeLabel            *propbin.Link                          `bin:"optionMusicVolumeLabel,optional"`
	OptionMusicVolumeControl          *propbin.Link                          `bin:"optionMusicVolumeControl,optional"`
	OptionSoundFXVolumeLabel          *propbin.Link                          `bin:"optionSoundFxVolumeLabel,optional"`
	OptionSoundFXVolumeControl        *propbin.Link                          `bin:"optionSoundFxVolumeControl,optional"`
	OptionVoiceVolumeLabel            *propbin.Link                          `bin:"optionVoiceVolumeLabel,optional"`
	OptionVoiceVolumeControl          *propbin.Link                          `bin:"optionVoiceVolumeControl,optional"`
	OptionAmbienceVolumeLabel         *propbin.Link                          `bin:"optionAmbienceVolumeLabel,optional"`
	OptionAmbienceVolumeControl       *propbin.Link                          `bin:"optionAmbienceVolumeControl,optional"`
	OptionPingVolumeLabel             *propbin.Link                          `bin:"optionPingVolumeLabel,optional"`
	OptionPingVolumeControl           *propbin.Link                          `bin:"optionPingVolumeControl,optional"`
	OptionHudScaleLabel               *propbin.Link                          `bin:"optionHudScaleLabel,optional"`
	OptionHudScaleControl             *propbin.Link                          `bin:"optionHudScaleControl,optional"`
	OptionChatScaleLabel              *propbin.Link                          `bin:"optionChatScaleLabel,optional"`
	OptionChatScaleControl            *propbin.Link                          `bin:"optionChatScaleControl,optional"`
	OptionMinimapScaleLabel           *propbin.Link                          `bin:"optionMinimapScaleLabel,optional"`
	OptionMinimapScaleControl         *propbin.Link                          `bin:"optionMinimapScaleControl,optional"`
	OptionCursorScaleLabel            *propbin.Link                          `bin:"optionCursorScaleLabel,optional"`
	OptionCursorScaleControl          *propbin.Link                          `bin:"optionCursorScaleControl,optional"`
	OptionCameraMoveSpeedLabel        *propbin.Link                          `bin:"optionCameraMoveSpeedLabel,optional"`
	OptionCameraMoveSpeedControl      *propbin.Link                          `bin:"optionCameraMoveSpeedControl,optional"`
	OptionMouseSpeedLabel             *propbin.Link                          `bin:"optionMouseSpeedLabel,optional"`
	OptionMouseSpeedControl           *propbin.Link                          `bin:"optionMouseSpeedControl,optional"`
	OptionScrollSpeedLabel            *propbin.Link                          `bin:"optionScrollSpeedLabel,optional"`
	OptionScrollSpeedControl          *propbin.Link                          `bin:"optionScrollSpeedControl,optional"`
	OptionShowHealthBarsLabel         *propbin.Link                          `bin:"optionShowHealthBarsLabel,optional"`
	OptionShowHealthBarsControl       *propbin.Link                          `bin:"optionShowHealthBarsControl,optional"`
	OptionShowTimestampsLabel         *propbin.Link                          `bin:"optionShowTimestampsLabel,optional"`
	OptionShowTimestampsControl       *propbin.Link                          `bin:"optionShowTimestampsControl,optional"`
	OptionShowAllChatLabel            *propbin.Link                          `bin:"optionShowAllChatLabel,optional"`
	OptionShowAllChatControl          *propbin.Link                          `bin:"optionShowAllChatControl,optional"`
	OptionShowEmotesLabel             *propbin.Link                          `bin:"optionShowEmotesLabel,optional"`
	OptionShowEmotesControl           *propbin.Link                          `bin:"optionShowEmotesControl,optional"`
	OptionFlashOnMinimapLabel         *propbin.Link                          `bin:"optionFlashOnMinimapLabel,optional"`
	OptionFlashOnMinimapControl       *propbin.Link                          `bin:"optionFlashOnMinimapControl,optional"`
	OptionAutoAttackLabel             *propbin.Link                          `bin:"optionAutoAttackLabel,optional"`
	OptionAutoAttackControl           *propbin.Link                          `bin:"optionAutoAttackControl,optional"`
	OptionQuickCastModeLabel          *propbin.Link                          `bin:"optionQuickCastModeLabel,optional"`
	OptionQuickCastModeControl        *propbin.Link                          `bin:"optionQuickCastModeControl,optional"`
	OptionAttackMoveOnCursorLabel     *propbin.Link                          `bin:"optionAttackMoveOnCursorLabel,optional"`
	OptionAttackMoveOnCursorControl   *propbin.Link                          `bin:"optionAttackMoveOnCursorControl,optional"`
	OptionShowSpellCostsLabel         *propbin.Link                          `bin:"optionShowSpellCostsLabel,optional"`
	OptionShowSpellCostsControl       *propbin.Link                          `bin:"optionShowSpellCostsControl,optional"`
	OptionShowNeutralCampsLabel       *propbin.Link                          `bin:"optionShowNeutralCampsLabel,optional"`
	OptionShowNeutralCampsControl     *propbin.Link                          `bin:"optionShowNeutralCampsControl,optional"`
	OptionLockCameraLabel             *propbin.Link                          `bin:"optionLockCameraLabel,optional"`
	OptionLockCameraControl           *propbin.Link                          `bin:"optionLockCameraControl,optional"`
	OptionRelativeTeamColorsLabel     *propbin.Link                          `bin:"optionRelativeTeamColorsLabel,optional"`
	OptionRelativeTeamColorsControl   *propbin.Link                          `bin:"optionRelativeTeamColorsControl,optional"`
	OptionSmartCastIndicatorsLabel    *propbin.Link                          `bin:"optionSmartCastIndicatorsLabel,optional"`
	OptionSmartCastIndicatorsControl  *propbin.Link                          `bin:"optionSmartCastIndicatorsControl,optional"`
	OptionShowSummonerNamesLabel      *propbin.Link                          `bin:"optionShowSummonerNamesLabel,optional"`
	OptionShowSummonerNamesControl    *propbin.Link                          `bin:"optionShowSummonerNamesControl,optional"`
	OptionShowChampionOutlinesLabel   *propbin.Link                          `bin:"optionShowChampionOutlinesLabel,optional"`
	OptionShowChampionOutlinesControl *propbin.Link                          `bin:"optionShowChampionOutlinesControl,optional"`
	OptionScreenShakeLabel            *propbin.Link                          `bin:"optionScreenShakeLabel,optional"`
	OptionScreenShakeControl          *propbin.Link                          `bin:"optionScreenShakeControl,optional"`
	OptionHideEyeCandyLabel           *propbin.Link                          `bin:"optionHideEyeCandyLabel,optional"`
	OptionHideEyeCandyControl         *propbin.Link                          `bin:"optionHideEyeCandyControl,optional"`
	Sliders                           map[propbin.Hash]UiElementSliderData   `bin:"mSliders,optional"`
	CheckBoxes                        map[propbin.Hash]UiElementCheckBoxData `bin:"mCheckBoxes,optional"`
	Dropdowns                         map[propbin.Hash]UiElementDropdownData `bin:"mDropdowns,optional"`
}

type PracticeToolViewController struct {
	Scene                                   propbin.Link          `bin:"scene"`
	Enabled                                 *bool                 `bin:"mEnabled,optional"`
	StartHidden                             *bool                 `bin:"mStartHidden,optional"`
	LayerOffset                             *int32                `bin:"mLayerOffset,optional"`
	TransitionIn                            EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut                           EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	CloseButton                             *propbin.Link         `bin:"closeButton,optional"`
	TitleText                               *propbin.Link         `bin:"titleText,optional"`
	ActionResetGameButton                   *propbin.Link         `bin:"actionResetGameButton,optional"`
	ActionResetGameHotkeyText               *propbin.Link         `bin:"actionResetGameHotkeyText,optional"`
	ActionPauseGameButton                   *propbin.Link         `bin:"actionPauseGameButton,optional"`
	ActionPauseGameHotkeyText               *propbin.Link         `bin:"actionPauseGameHotkeyText,optional"`
	ActionSpawnDummyButton                  *propbin.Link         `bin:"actionSpawnDummyButton,optional"`
	ActionSpawnDummyHotkeyText              *propbin.Link         `bin:"actionSpawnDummyHotkeyText,optional"`
	ActionRemoveDummiesButton               *propbin.Link         `bin:"actionRemoveDummiesButton,optional"`
	ActionRemoveDummiesHotkeyText           *propbin.Link         `bin:"actionRemoveDummiesHotkeyText,optional"`
	ActionToggleDummyAttackButton           *propbin.Link         `bin:"actionToggleDummyAttackButton,optional"`
	ActionToggleDummyAttackHotkeyText       *propbin.Link         `bin:"actionToggleDummyAttackHotkeyText,optional"`
	ActionMaxLevelButton                    *propbin.Link         `bin:"actionMaxLevelButton,optional"`
	ActionMaxLevelHotkeyText                *propbin.Link         `bin:"actionMaxLevelHotkeyText,optional"`
	ActionResetLevelButton                  *propbin.Link         `bin:"actionResetLevelButton,optional"`
	ActionResetLevelHotkeyText              *propbin.Link         `bin:"actionResetLevelHotkeyText,optional"`
	ActionGiveGoldButton                    *propbin.Link         `bin:"actionGiveGoldButton,optional"`
	ActionGiveGoldHotkeyText                *propbin.Link         `bin:"actionGiveGoldHotkeyText,optional"`
	ActionDisableGoldGainButton             *propbin.Link         `bin:"actionDisableGoldGainButton,optional"`
	ActionDisableGoldGainHotkeyText         *propbin.Link         `bin:"actionDisableGoldGainHotkeyText,optional"`
	ActionRefillHealthButton                *propbin.Link         `bin:"actionRefillHealthButton,optional"`
	ActionRefillHealthHotkeyText            *propbin.Link         `bin:"actionRefillHealthHotkeyText,optional"`
	ActionRefillResourceButton              *propbin.Link         `bin:"actionRefillResourceButton,optional"`
	ActionRefillResourceHotkeyText          *propbin.Link         `bin:"actionRefillResourceHotkeyText,optional"`
	ActionToggleNoCooldownsButton           *propbin.Link         `bin:"actionToggleNoCooldownsButton,optional"`
	ActionToggleNoCooldownsHotkeyText       *propbin.Link         `bin:"actionToggleNoCooldownsHotkeyText,optional"`
	ActionToggleInvulnerableButton          *propbin.Link         `bin:"actionToggleInvulnerableButton,optional"`
	ActionToggleInvulnerableHotkeyText      *propbin.Link         `bin:"actionToggleInvulnerableHotkeyText,optional"`
	ActionToggleUnlimitedResourceButton     *propbin.Link         `bin:"actionToggleUnlimitedResourceButton,optional"`
	ActionToggleUnlimitedResourceHotkeyText *propbin.Link         `bin:"actionToggleUnlimitedResourceHotkeyText,optional"`
	ActionSpawnWaveButton                   *propbin.Link         `bin:"actionSpawnWaveButton,optional"`
	ActionSpawnWaveHotkeyText               *propbin.Link         `bin:"actionSpawnWaveHotkeyText,optional"`
	ActionDisableMinionsButton              *propbin.Link         `bin:"actionDisableMinionsButton,optional"`
	ActionDisableMinionsHotkeyText          *propbin.Link         `bin:"actionDisableMinionsHotkeyText,optional"`
	ActionToggleTurretsButton               *propbin.Link         `bin:"actionToggleTurretsButton,optional"`
	ActionToggleTurretsHotkeyText           *propbin.Link         `bin:"actionToggleTurretsHotkeyText,optional"`
	ActionRespawnTurretsButton              *propbin.Link         `bin:"actionRespawnTurretsButton,optional"`
	ActionRespawnTurretsHotkeyText          *propbin.Link         `bin:"actionRespawnTurretsHotkeyText,optional"`
	ActionSpawnDragonButton                 *propbin.Link         `bin:"actionSpawnDragonButton,optional"`
	ActionSpawnDragonHotkeyText             *propbin.Link         `bin:"actionSpawnDragonHotkeyText,optional"`
	ActionSpawnBaronButton                  *propbin.Link         `bin:"actionSpawnBaronButton,optional"`
	ActionSpawnBaronHotkeyText              *propbin.Link         `bin:"actionSpawnBaronHotkeyText,optional"`
	ActionSpawnHeraldButton                 *propbin.Link         `bin:"actionSpawnHeraldButton,optional"`
	ActionSpawnHeraldHotkeyText             *propbin.Link         `bin:"actionSpawnHeraldHotkeyText,optional"`
	ActionSpawnJungleButton                 *propbin.Link         `bin:"actionSpawnJungleButton,optional"`
	ActionSpawnJungleHotkeyText             *propbin.Link         `bin:"actionSpawnJungleHotkeyText,optional"`
	ActionFastForwardButton                 *propbin.Link         `bin:"actionFastForwardButton,optional"`
	ActionFastForwardHotkeyText             *propbin.Link         `bin:"actionFastForwardHotkeyText,optional"`
	ActionRevealMapButton                   *propbin.Link         `bin:"actionRevealMapButton,optional"`
	ActionRevealMapHotkeyText               *propbin.Link         `bin:"actionRevealMapHotkeyText,optional"`
	ActionToggleFogButton                   *propbin.Link         `bin:"actionToggleFogButton,optional"`
	ActionToggleFogHotkeyText               *propbin.Link         `bin:"actionToggleFogHotkeyText,optional"`
	ActionTeleportToCursorButton            *propbin.Link         `bin:"actionTeleportToCursorButton,optional"`
	ActionTeleportToCursorHotkeyText        *propbin.Link         `bin:"actionTeleportToCursorHotkeyText,optional"`
	ActionSwapTeamsButton                   *propbin.Link         `bin:"actionSwapTeamsButton,optional"`
	ActionSwapTeamsHotkeyText               *propbin.Link         `bin:"actionSwapTeamsHotkeyText,optional"`
	ActionLockCameraButton                  *propbin.Link         `bin:"actionLockCameraButton,optional"`
	ActionLockCameraHotkeyText              *propbin.Link         `bin:"actionLockCameraHotkeyText,optional"`
	ActionToggleHudButton                   *propbin.Link         `bin:"actionToggleHudButton,optional"`
	ActionToggleHudHotkeyText               *propbin.Link         `bin:"actionToggleHudHotkeyText,optional"`
	ActionShowDamageButton                  *propbin.Link         `bin:"actionShowDamageButton,optional"`
	ActionShowDamageHotkeyText              *propbin.Link         `bin:"actionShowDamageHotkeyText,optional"`
	ActionClearDamageButton                 *propbin.Link         `bin:"actionClearDamageButton,optional"`
	ActionClearDamageHotkeyText             *propbin.Link         `bin:"actionClearDamageHotkeyText,optional"`
	ActionSaveLoadoutButton                 *propbin.Link         `bin:"actionSaveLoadoutButton,optional"`
	ActionSaveLoadoutHotkeyText             *propbin.Link         `bin:"actionSaveLoadoutHotkeyText,optional"`
	ActionLoadLoadoutButton                 *propbin.Link         `bin:"actionLoadLoadoutButton,optional"`
	ActionLoadLoadoutHotkeyText             *propbin.Link         `bin:"actionLoadLoadoutHotkeyText,optional"`
	ActionChangeDummyLevelButton            *propbin.Link         `bin:"actionChangeDummyLevelButton,optional"`
	ActionChangeDummyLevelHotkeyText        *propbin.Link         `bin:"actionChangeDummyLevelHotkeyText,optional"`
	ActionChangeDummyArmorButton            *propbin.Link         `bin:"actionChangeDummyArmorButton,optional"`
	ActionChangeDummyArmorHotkeyText        *propbin.Link         `bin:"actionChangeDummyArmorHotkeyText,optional"`
	ActionChangeDummyMagicResistButton      *propbin.Link         `bin:"actionChangeDummyMagicResistButton,optional"`
	ActionChangeDummyMagicResistHotkeyText  *propbin.Link         `bin:"actionChangeDummyMagicResistHotkeyText,optional"`
	ActionChangeDummyHealthButton           *propbin.Link         `bin:"actionChangeDummyHealthButton,optional"`
	ActionChangeDummyHealthHotkeyText       *propbin.Link         `bin:"actionChangeDummyHealthHotkeyText,optional"`
	ActionToggleAIAlliesButton              *propbin.Link         `bin:"actionToggleAiAlliesButton,optional"`
	ActionToggleAIAlliesHotkeyText          *propbin.Link         `bin:"actionToggleAiAlliesHotkeyText,optional"`
	ActionToggleAIEnemiesButton             *propbin.Link         `bin:"actionToggleAiEnemiesButton,optional"`
	ActionToggleAIEnemiesHotkeyText         *propbin.Link         `bin:"actionToggleAiEnemiesHotkeyText,optional"`
	ActionResetCooldownsButton              *propbin.Link         `bin:"actionResetCooldownsButton,optional"`
	ActionResetCooldownsHotkeyText          *propbin.Link         `bin:"actionResetCooldownsHotkeyText,optional"`
	DamageTrackerWindow                     *float32              `bin:"mDamageTrackerWindow,optional"`
	DefaultDummyHealth                      *float32              `bin:"mDefaultDummyHealth,optional"`
}

type TftShopViewController struct {
	Scene                    propbin.Link          `bin:"scene"`
	Enabled                  *bool                 `bin:"mEnabled,optional"`
	StartHidden              *bool                 `bin:"mStartHidden,optional"`
	LayerOffset              *int32                `bin:"mLayerOffset,optional"`
	TransitionIn             EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut            EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	RerollButton             *propbin.Link         `bin:"rerollButton,optional"`
	RerollCostText           *propbin.Link         `bin:"rerollCostText,optional"`
	BuyXPButton              *propbin.Link         `bin:"buyXpButton,optional"`
	BuyXPCostText            *propbin.Link         `bin:"buyXpCostText,optional"`
	LockButton               *propbin.Link         `bin:"lockButton,optional"`
	GoldText                 *propbin.Link         `bin:"goldText,optional"`
	LevelText                *propbin.Link         `bin:"levelText,optional"`
	XPBar                    *propbin.Link         `bin:"xpBar,optional"`
	OddsText                 *propbin.Link         `bin:"oddsText,optional"`
	InterestPips             *propbin.Link         `bin:"interestPips,optional"`
	StreakIcon               *propbin.Link         `bin:"streakIcon,optional"`
	ShopSlot1Portrait        *propbin.Link         `bin:"shopSlot1Portrait,optional"`
	ShopSlot1NameText        *propbin.Link         `bin:"shopSlot1NameText,optional"`
	ShopSlot1CostText        *propbin.Link         `bin:"shopSlot1CostText,optional"`
	ShopSlot1TraitIcon1      *propbin.Link         `bin:"shopSlot1TraitIcon1,optional"`
	ShopSlot1TraitIcon2      *propbin.Link         `bin:"shopSlot1TraitIcon2,optional"`
	ShopSlot1TraitIcon3      *propbin.Link         `bin:"shopSlot1TraitIcon3,optional"`
	ShopSlot1BuyButton       *propbin.Link         `bin:"shopSlot1BuyButton,optional"`
	ShopSlot1StarUpIndicator *propbin.Link         `bin:"shopSlot1StarUpIndicator,optional"`
	ShopSlot2Portrait        *propbin.Link         `bin:"shopSlot2Portrait,optional"`
	ShopSlot2NameText        *propbin.Link         `bin:"shopSlot2NameText,optional"`
	ShopSlot2CostText        *propbin.Link         `bin:"shopSlot2CostText,optional"`
	ShopSlot2TraitIcon1      *propbin.Link         `bin:"shopSlot2TraitIcon1,optional"`
	ShopSlot2TraitIcon2      *propbin.Link         `bin:"shopSlot2TraitIcon2,optional"`
	ShopSlot2TraitIcon3      *propbin.Link         `bin:"shopSlot2TraitIcon3,optional"`
	ShopSlot2BuyButton       *propbin.Link         `bin:"shopSlot2BuyButton,optional"`
	ShopSlot2StarUpIndicator *propbin.Link         `bin:"shopSlot2StarUpIndicator,optional"`
	ShopSlot3Portrait        *propbin.Link         `bin:"shopSlot3Portrait,optional"`
	ShopSlot3NameText        *propbin.Link         `bin:"shopSlot3NameText,optional"`
	ShopSlot3CostText        *propbin.Link         `bin:"shopSlot3CostText,optional"`
	ShopSlot3TraitIcon1      *propbin.Link         `bin:"shopSlot3TraitIcon1,optional"`
	ShopSlot3TraitIcon2      *propbin.Link         `bin:"shopSlot3TraitIcon2,optional"`
	ShopSlot3TraitIcon3      *propbin.Link         `bin:"shopSlot3TraitIcon3,optional"`
	ShopSlot3BuyButton       *propbin.Link         `bin:"shopSlot3BuyButton,optional"`
	ShopSlot3StarUpIndicator *propbin.Link         `bin:"shopSlot3StarUpIndicator,optional"`
	ShopSlot4Portrait        *propbin.Link         `bin:"shopSlot4Portrait,optional"`
	ShopSlot4NameText        *propbin.Link         `bin:"shopSlot4NameText,optional"`
	ShopSlot4CostText        *propbin.Link         `bin:"shopSlot4CostText,optional"`
	ShopSlot4TraitIcon1      *propbin.Link         `bin:"shopSlot4TraitIcon1,optional"`
	ShopSlot4TraitIcon2      *propbin.Link         `bin:"shopSlot4TraitIcon2,optional"`
	ShopSlot4TraitIcon3      *propbin.Link         `bin:"shopSlot4TraitIcon3,optional"`
	ShopSlot4BuyButton       *propbin.Link         `bin:"shopSlot4BuyButton,optional"`
	ShopSlot4StarUpIndicator *propbin.Link         `bin:"shopSlot4StarUpIndicator,optional"`
	ShopSlot5Portrait        *propbin.Link         `bin:"shopSlot5Portrait,optional"`
	ShopSlot5NameText        *propbin.Link         `bin:"shopSlot5NameText,optional"`
	ShopSlot5CostText        *propbin.Link         `bin:"shopSlot5CostText,optional"`
	ShopSlot5TraitIcon1      *propbin.Link         `bin:"shopSlot5TraitIcon1,optional"`
	ShopSlot5TraitIcon2      *propbin.Link         `bin:"shopSlot5TraitIcon2,optional"`
	ShopSlot5TraitIcon3      *propbin.Link         `bin:"shopSlot5TraitIcon3,optional"`
	ShopSlot5BuyButton       *propbin.Link         `bin:"shopSlot5BuyButton,optional"`
	ShopSlot5StarUpIndicator *propbin.Link         `bin:"shopSlot5StarUpIndicator,optional"`
	OddsFormat               EnumUiMetricFormat    `bin:"mOddsFormat,optional"`
	HighlightOwned           *bool                 `bin:"mHighlightOwned,optional"`
}

type AbilityBarViewController struct {
	Scene                 propbin.Link          `bin:"scene"`
	Enabled               *bool                 `bin:"mEnabled,optional"`
	StartHidden           *bool                 `bin:"mStartHidden,optional"`
	LayerOffset           *int32                `bin:"mLayerOffset,optional"`
	TransitionIn          EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut         EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	SpellQFrame           *propbin.Link         `bin:"spellQFrame,optional"`
	SpellQIcon            *propbin.Link         `bin:"spellQIcon,optional"`
	SpellQCooldownOverlay *propbin.Link         `bin:"spellQCooldownOverlay,optional"`
	SpellQCooldownText    *propbin.Link         `bin:"spellQCooldownText,optional"`
	SpellQLevelUpButton   *propbin.Link         `bin:"spellQLevelUpButton,optional"`
	SpellQAmmoText        *propbin.Link         `bin:"spellQAmmoText,optional"`
	SpellQToggleBorder    *propbin.Link         `bin:"spellQToggleBorder,optional"`
	SpellQSealOverlay     *propbin.Link         `bin:"spellQSealOverlay,optional"`
	SpellWFrame           *propbin.Link         `bin:"spellWFrame,optional"`
	SpellWIcon            *propbin.Link         `bin:"spellWIcon,optional"`
	SpellWCooldownOverlay *propbin.Link         `bin:"spellWCooldownOverlay,optional"`
	SpellWCooldownText    *propbin.Link         `bin:"spellWCooldownText,optional"`
	SpellWLevelUpButton   *propbin.Link         `bin:"spellWLevelUpButton,optional"`
	SpellWAmmoText        *propbin.Link         `bin:"spellWAmmoText,optional"`
	SpellWToggleBorder    *propbin.Link         `bin:"spellWToggleBorder,optional"`
	SpellWSealOverlay     *propbin.Link         `bin:"spellWSealOverlay,optional"`
	SpellEFrame           *propbin.Link         `bin:"spellEFrame,optional"`
	SpellEIcon            *propbin.Link         `bin:"spellEIcon,optional"`
	SpellECooldownOverlay *propbin.Link         `bin:"spellECooldownOverlay,optional"`
	SpellECooldownText    *propbin.Link         `bin:"spellECooldownText,optional"`
	SpellELevelUpButton   *propbin.Link         `bin:"spellELevelUpButton,optional"`
	SpellEAmmoText        *propbin.Link         `bin:"spellEAmmoText,optional"`
	SpellEToggleBorder    *propbin.Link         `bin:"spellEToggleBorder,optional"`
	SpellESealOverlay     *propbin.Link         `bin:"spellESealOverlay,optional"`
	SpellRFrame           *propbin.Link         `bin:"spellRFrame,optional"`
	SpellRIcon            *propbin.Link         `bin:"spellRIcon,optional"`
	SpellRCooldownOverlay *propbin.Link         `bin:"spellRCooldownOverlay,optional"`
	SpellRCooldownText    *propbin.Link         `bin:"spellRCooldownText,optional"`
	SpellRLevelUpButton   *propbin.Link         `bin:"spellRLevelUpButton,optional"`
	SpellRAmmoText        *propbin.Link         `bin:"spellRAmmoText,optional"`
	SpellRToggleBorder    *propbin.Link         `bin:"spellRToggleBorder,optional"`
	SpellRSealOverlay     *propbin.Link         `bin:"spellRSealOverlay,optional"`
	PassiveFrame          *propbin.Link         `bin:"passiveFrame,optional"`
	PassiveIcon           *propbin.Link         `bin:"passiveIcon,optional"`
	PassiveStacks         *propbin.Link         `bin:"passiveStacks,optional"`
	CooldownEffect        EnumUiElementEffect   `bin:"mCooldownEffect,optional"`
	ShowDecimalsUnder     *float32              `bin:"mShowDecimalsUnder,optional"`
}

type ChatViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ChatLog       *propbin.Link         `bin:"chatLog,optional"`
	ChatInput     *propbin.Link         `bin:"chatInput,optional"`
	ChannelLabel  *propbin.Link         `bin:"channelLabel,optional"`
	ScrollBar     *propbin.Link         `bin:"scrollBar,optional"`
	MuteButton    *propbin.Link         `bin:"muteButton,optional"`
	AllChatToggle *propbin.Link         `bin:"allChatToggle,optional"`
	MaxLines      *uint16               `bin:"mMaxLines,optional"`
	FadeDelay     *float32              `bin:"mFadeDelay,optional"`
	Font          *UiFontDescription    `bin:"mFont,optional"`
}

type MinimapViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	MapImage       *propbin.Link         `bin:"mapImage,optional"`
	CameraFrame    *propbin.Link         `bin:"cameraFrame,optional"`
	PingLayer      *propbin.Link         `bin:"pingLayer,optional"`
	IconLayer      *propbin.Link         `bin:"iconLayer,optional"`
	FogLayer       *propbin.Link         `bin:"fogLayer,optional"`
	PathLayer      *propbin.Link         `bin:"pathLayer,optional"`
	ResizeHandle   *propbin.Link         `bin:"resizeHandle,optional"`
	MinimizeButton *propbin.Link         `bin:"minimizeButton,optional"`
	MinimapScale   *float32              `bin:"mMinimapScale,optional"`
	FlipForChaos   *bool                 `bin:"mFlipForChaos,optional"`
	IconScale      *float32              `bin:"mIconScale,optional"`
}

type BuffBarViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	BuffTemplate   *propbin.Link         `bin:"buffTemplate,optional"`
	DebuffTemplate *propbin.Link         `bin:"debuffTemplate,optional"`
	StackText      *propbin.Link         `bin:"stackText,optional"`
	DurationBar    *propbin.Link         `bin:"durationBar,optional"`
	OverflowText   *propbin.Link         `bin:"overflowText,optional"`
	MaxVisible     *uint8                `bin:"mMaxVisible,optional"`
	SortByDuration *bool                 `bin:"mSortByDuration,optional"`
}

type PlayerFrameViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	Portrait      *propbin.Link         `bin:"portrait,optional"`
	LevelText     *propbin.Link         `bin:"levelText,optional"`
	HealthBar     *propbin.Link         `bin:"healthBar,optional"`
	ResourceBar   *propbin.Link         `bin:"resourceBar,optional"`
	ShieldBar     *propbin.Link         `bin:"shieldBar,optional"`
	NameText      *propbin.Link         `bin:"nameText,optional"`
	RespawnText   *propbin.Link         `bin:"respawnText,optional"`
}

type TargetFrameViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	Portrait      *propbin.Link         `bin:"portrait,optional"`
	LevelText     *propbin.Link         `bin:"levelText,optional"`
	HealthBar     *propbin.Link         `bin:"healthBar,optional"`
	ResourceBar   *propbin.Link         `bin:"resourceBar,optional"`
	NameText      *propbin.Link         `bin:"nameText,optional"`
	StatsButton   *propbin.Link         `bin:"statsButton,optional"`
	ItemsRow      *propbin.Link         `bin:"itemsRow,optional"`
}

type InventoryViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	Slot1         *propbin.Link         `bin:"slot1,optional"`
	Slot2         *propbin.Link         `bin:"slot2,optional"`
	Slot3         *propbin.Link         `bin:"slot3,optional"`
	Slot4         *propbin.Link         `bin:"slot4,optional"`
	Slot5         *propbin.Link         `bin:"slot5,optional"`
	Slot6         *propbin.Link         `bin:"slot6,optional"`
	TrinketSlot   *propbin.Link         `bin:"trinketSlot,optional"`
	QuestSlot     *propbin.Link         `bin:"questSlot,optional"`
	GoldText      *propbin.Link         `bin:"goldText,optional"`
}

type DeathRecapViewController struct {
	Scene              propbin.Link          `bin:"scene"`
	Enabled            *bool                 `bin:"mEnabled,optional"`
	StartHidden        *bool                 `bin:"mStartHidden,optional"`
	LayerOffset        *int32                `bin:"mLayerOffset,optional"`
	TransitionIn       EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut      EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	Header             *propbin.Link         `bin:"header,optional"`
	TotalDamageText    *propbin.Link         `bin:"totalDamageText,optional"`
	PhysicalBar        *propbin.Link         `bin:"physicalBar,optional"`
	MagicBar           *propbin.Link         `bin:"magicBar,optional"`
	TrueBar            *propbin.Link         `bin:"trueBar,optional"`
	SourceListTemplate *propbin.Link         `bin:"sourceListTemplate,optional"`
	CloseButton        *propbin.Link         `bin:"closeButton,optional"`
}

type SurrenderVoteViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	QuestionText  *propbin.Link         `bin:"questionText,optional"`
	YesButton     *propbin.Link         `bin:"yesButton,optional"`
	NoButton      *propbin.Link         `bin:"noButton,optional"`
	VoteTally     *propbin.Link         `bin:"voteTally,optional"`
	TimerBar      *propbin.Link         `bin:"timerBar,optional"`
}

type PingWheelViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	WheelBackground *propbin.Link         `bin:"wheelBackground,optional"`
	CenterIcon      *propbin.Link         `bin:"centerIcon,optional"`
	SegmentDanger   *propbin.Link         `bin:"segmentDanger,optional"`
	SegmentOnMyWay  *propbin.Link         `bin:"segmentOnMyWay,optional"`
	SegmentAssist   *propbin.Link         `bin:"segmentAssist,optional"`
	SegmentMissing  *propbin.Link         `bin:"segmentMissing,optional"`
	SegmentVision   *propbin.Link         `bin:"segmentVision,optional"`
	SegmentRetreat  *propbin.Link         `bin:"segmentRetreat,optional"`
	SegmentPush     *propbin.Link         `bin:"segmentPush,optional"`
	SegmentHold     *propbin.Link         `bin:"segmentHold,optional"`
	DeadZone        *float32              `bin:"mDeadZone,optional"`
	HoldTime        *float32              `bin:"mHoldTime,optional"`
}

type EmoteWheelViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	WheelBackground *propbin.Link         `bin:"wheelBackground,optional"`
	SegmentTop      *propbin.Link         `bin:"segmentTop,optional"`
	SegmentRight    *propbin.Link         `bin:"segmentRight,optional"`
	SegmentBottom   *propbin.Link         `bin:"segmentBottom,optional"`
	SegmentLeft     *propbin.Link         `bin:"segmentLeft,optional"`
	SegmentCenter   *propbin.Link         `bin:"segmentCenter,optional"`
}

type ReplayControlsViewController struct {
	Scene            propbin.Link          `bin:"scene"`
	Enabled          *bool                 `bin:"mEnabled,optional"`
	StartHidden      *bool                 `bin:"mStartHidden,optional"`
	LayerOffset      *int32                `bin:"mLayerOffset,optional"`
	TransitionIn     EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut    EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	PlayButton       *propbin.Link         `bin:"playButton,optional"`
	PauseButton      *propbin.Link         `bin:"pauseButton,optional"`
	SpeedText        *propbin.Link         `bin:"speedText,optional"`
	SlowerButton     *propbin.Link         `bin:"slowerButton,optional"`
	FasterButton     *propbin.Link         `bin:"fasterButton,optional"`
	Timeline         *propbin.Link         `bin:"timeline,optional"`
	TimeText         *propbin.Link         `bin:"timeText,optional"`
	CameraModeButton *propbin.Link         `bin:"cameraModeButton,optional"`
}

type KillCalloutViewController struct {
	Scene            propbin.Link          `bin:"scene"`
	Enabled          *bool                 `bin:"mEnabled,optional"`
	StartHidden      *bool                 `bin:"mStartHidden,optional"`
	LayerOffset      *int32                `bin:"mLayerOffset,optional"`
	TransitionIn     EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut    EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	KillerPortrait   *propbin.Link         `bin:"killerPortrait,optional"`
	VictimPortrait   *propbin.Link         `bin:"victimPortrait,optional"`
	AssistIcons      *propbin.Link         `bin:"assistIcons,optional"`
	WeaponIcon       *propbin.Link         `bin:"weaponIcon,optional"`
	BannerBackground *propbin.Link         `bin:"bannerBackground,optional"`
}

type AnnouncementViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	TitleText     *propbin.Link         `bin:"titleText,optional"`
	SubtitleText  *propbin.Link         `bin:"subtitleText,optional"`
	IconLeft      *propbin.Link         `bin:"iconLeft,optional"`
	IconRight     *propbin.Link         `bin:"iconRight,optional"`
	Background    *propbin.Link         `bin:"background,optional"`
}

type ObjectiveTimerViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	DragonIcon    *propbin.Link         `bin:"dragonIcon,optional"`
	DragonTimer   *propbin.Link         `bin:"dragonTimer,optional"`
	BaronIcon     *propbin.Link         `bin:"baronIcon,optional"`
	BaronTimer    *propbin.Link         `bin:"baronTimer,optional"`
	HeraldIcon    *propbin.Link         `bin:"heraldIcon,optional"`
	HeraldTimer   *propbin.Link         `bin:"heraldTimer,optional"`
}

type TeamFramesViewController struct {
	Scene              propbin.Link          `bin:"scene"`
	Enabled            *bool                 `bin:"mEnabled,optional"`
	StartHidden        *bool                 `bin:"mStartHidden,optional"`
	LayerOffset        *int32                `bin:"mLayerOffset,optional"`
	TransitionIn       EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut      EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	Ally1Frame         *propbin.Link         `bin:"ally1Frame,optional"`
	Ally2Frame         *propbin.Link         `bin:"ally2Frame,optional"`
	Ally3Frame         *propbin.Link         `bin:"ally3Frame,optional"`
	Ally4Frame         *propbin.Link         `bin:"ally4Frame,optional"`
	UltimateIndicators *propbin.Link         `bin:"ultimateIndicators,optional"`
	RespawnTimers      *propbin.Link         `bin:"respawnTimers,optional"`
}

type ItemTooltipViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	NameText      *propbin.Link         `bin:"nameText,optional"`
	PriceText     *propbin.Link         `bin:"priceText,optional"`
	IconImage     *propbin.Link         `bin:"iconImage,optional"`
	StatsText     *propbin.Link         `bin:"statsText,optional"`
	PassiveText   *propbin.Link         `bin:"passiveText,optional"`
	ActiveText    *propbin.Link         `bin:"activeText,optional"`
	CooldownText  *propbin.Link         `bin:"cooldownText,optional"`
	BuildPathRow  *propbin.Link         `bin:"buildPathRow,optional"`
}

type SpellTooltipViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	NameText        *propbin.Link         `bin:"nameText,optional"`
	HotkeyText      *propbin.Link         `bin:"hotkeyText,optional"`
	IconImage       *propbin.Link         `bin:"iconImage,optional"`
	CostText        *propbin.Link         `bin:"costText,optional"`
	CooldownText    *propbin.Link         `bin:"cooldownText,optional"`
	RangeText       *propbin.Link         `bin:"rangeText,optional"`
	DescriptionText *propbin.Link         `bin:"descriptionText,optional"`
	ScalingText     *propbin.Link         `bin:"scalingText,optional"`
}

type CursorViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	DefaultCursor  *propbin.Link         `bin:"defaultCursor,optional"`
	AttackCursor   *propbin.Link         `bin:"attackCursor,optional"`
	TargetCursor   *propbin.Link         `bin:"targetCursor,optional"`
	AllyCursor     *propbin.Link         `bin:"allyCursor,optional"`
	DisabledCursor *propbin.Link         `bin:"disabledCursor,optional"`
	RingIndicator  *propbin.Link         `bin:"ringIndicator,optional"`
}

type HealthBarViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ChampionBar   *propbin.Link         `bin:"championBar,optional"`
	MinionBar     *propbin.Link         `bin:"minionBar,optional"`
	StructureBar  *propbin.Link         `bin:"structureBar,optional"`
	MonsterBar    *propbin.Link         `bin:"monsterBar,optional"`
	TitleText     *propbin.Link         `bin:"titleText,optional"`
	LevelBadge    *propbin.Link         `bin:"levelBadge,optional"`
}

type KeybindingsViewController struct {
	Scene              propbin.Link          `bin:"scene"`
	Enabled            *bool                 `bin:"mEnabled,optional"`
	StartHidden        *bool                 `bin:"mStartHidden,optional"`
	LayerOffset        *int32                `bin:"mLayerOffset,optional"`
	TransitionIn       EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut      EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ListTemplate       *propbin.Link         `bin:"listTemplate,optional"`
	PrimaryKeyButton   *propbin.Link         `bin:"primaryKeyButton,optional"`
	SecondaryKeyButton *propbin.Link         `bin:"secondaryKeyButton,optional"`
	ResetButton        *propbin.Link         `bin:"resetButton,optional"`
	ConflictWarning    *propbin.Link         `bin:"conflictWarning,optional"`
	SearchBox          *propbin.Link         `bin:"searchBox,optional"`
}

type VideoOptionsViewController struct {
	Scene                 propbin.Link          `bin:"scene"`
	Enabled               *bool                 `bin:"mEnabled,optional"`
	StartHidden           *bool                 `bin:"mStartHidden,optional"`
	LayerOffset           *int32                `bin:"mLayerOffset,optional"`
	TransitionIn          EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut         EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ResolutionDropdown    *propbin.Link         `bin:"resolutionDropdown,optional"`
	WindowModeDropdown    *propbin.Link         `bin:"windowModeDropdown,optional"`
	QualityPresetDropdown *propbin.Link         `bin:"qualityPresetDropdown,optional"`
	FrameCapDropdown      *propbin.Link         `bin:"frameCapDropdown,optional"`
	VsyncCheck            *propbin.Link         `bin:"vsyncCheck,optional"`
	AaCheck               *propbin.Link         `bin:"aaCheck,optional"`
}

type SoundOptionsViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	MasterSlider    *propbin.Link         `bin:"masterSlider,optional"`
	MusicSlider     *propbin.Link         `bin:"musicSlider,optional"`
	EffectsSlider   *propbin.Link         `bin:"effectsSlider,optional"`
	VoiceSlider     *propbin.Link         `bin:"voiceSlider,optional"`
	AnnouncerSlider *propbin.Link         `bin:"announcerSlider,optional"`
	MuteAllCheck    *propbin.Link         `bin:"muteAllCheck,optional"`
}

type InterfaceOptionsViewController struct {
	Scene              propbin.Link          `bin:"scene"`
	Enabled            *bool                 `bin:"mEnabled,optional"`
	StartHidden        *bool                 `bin:"mStartHidden,optional"`
	LayerOffset        *int32                `bin:"mLayerOffset,optional"`
	TransitionIn       EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut      EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	HudScaleSlider     *propbin.Link         `bin:"hudScaleSlider,optional"`
	ChatScaleSlider    *propbin.Link         `bin:"chatScaleSlider,optional"`
	MinimapScaleSlider *propbin.Link         `bin:"minimapScaleSlider,optional"`
	TimestampsCheck    *propbin.Link         `bin:"timestampsCheck,optional"`
	HealthBarsCheck    *propbin.Link         `bin:"healthBarsCheck,optional"`
}

type GameOptionsViewController struct {
	Scene             propbin.Link          `bin:"scene"`
	Enabled           *bool                 `bin:"mEnabled,optional"`
	StartHidden       *bool                 `bin:"mStartHidden,optional"`
	LayerOffset       *int32                `bin:"mLayerOffset,optional"`
	TransitionIn      EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut     EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	CameraSpeedSlider *propbin.Link         `bin:"cameraSpeedSlider,optional"`
	MouseSpeedSlider  *propbin.Link         `bin:"mouseSpeedSlider,optional"`
	AutoAttackCheck   *propbin.Link         `bin:"autoAttackCheck,optional"`
	SmartCastCheck    *propbin.Link         `bin:"smartCastCheck,optional"`
	CameraLockCheck   *propbin.Link         `bin:"cameraLockCheck,optional"`
}

type EscapeMenuViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ResumeButton    *propbin.Link         `bin:"resumeButton,optional"`
	SettingsButton  *propbin.Link         `bin:"settingsButton,optional"`
	HotkeysButton   *propbin.Link         `bin:"hotkeysButton,optional"`
	SurrenderButton *propbin.Link         `bin:"surrenderButton,optional"`
	ExitButton      *propbin.Link         `bin:"exitButton,optional"`
}

type TftBoardViewController struct {
	Scene             propbin.Link          `bin:"scene"`
	Enabled           *bool                 `bin:"mEnabled,optional"`
	StartHidden       *bool                 `bin:"mStartHidden,optional"`
	LayerOffset       *int32                `bin:"mLayerOffset,optional"`
	TransitionIn      EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut     EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	BoardRoot         *propbin.Link         `bin:"boardRoot,optional"`
	HexTemplate       *propbin.Link         `bin:"hexTemplate,optional"`
	BenchRoot         *propbin.Link         `bin:"benchRoot,optional"`
	OpponentBoardRoot *propbin.Link         `bin:"opponentBoardRoot,optional"`
	UnitCountText     *propbin.Link         `bin:"unitCountText,optional"`
	DragHighlight     *propbin.Link         `bin:"dragHighlight,optional"`
}

type TftBenchViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	Slot1         *propbin.Link         `bin:"slot1,optional"`
	Slot2         *propbin.Link         `bin:"slot2,optional"`
	Slot3         *propbin.Link         `bin:"slot3,optional"`
	Slot4         *propbin.Link         `bin:"slot4,optional"`
	Slot5         *propbin.Link         `bin:"slot5,optional"`
	Slot6         *propbin.Link         `bin:"slot6,optional"`
	Slot7         *propbin.Link         `bin:"slot7,optional"`
	Slot8         *propbin.Link         `bin:"slot8,optional"`
	Slot9         *propbin.Link         `bin:"slot9,optional"`
	SellZone      *propbin.Link         `bin:"sellZone,optional"`
}

type TftTraitTrackerViewController struct {
	Scene            propbin.Link          `bin:"scene"`
	Enabled          *bool                 `bin:"mEnabled,optional"`
	StartHidden      *bool                 `bin:"mStartHidden,optional"`
	LayerOffset      *int32                `bin:"mLayerOffset,optional"`
	TransitionIn     EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut    EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	TraitTemplate    *propbin.Link         `bin:"traitTemplate,optional"`
	TraitIcon        *propbin.Link         `bin:"traitIcon,optional"`
	TraitCountText   *propbin.Link         `bin:"traitCountText,optional"`
	TraitBreakpoints *propbin.Link         `bin:"traitBreakpoints,optional"`
	InactiveDivider  *propbin.Link         `bin:"inactiveDivider,optional"`
	ExpandButton     *propbin.Link         `bin:"expandButton,optional"`
}

type TftPlayerListViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	PlayerTemplate *propbin.Link         `bin:"playerTemplate,optional"`
	HealthText     *propbin.Link         `bin:"healthText,optional"`
	AvatarIcon     *propbin.Link         `bin:"avatarIcon,optional"`
	StreakIcon     *propbin.Link         `bin:"streakIcon,optional"`
	GoldText       *propbin.Link         `bin:"goldText,optional"`
	LevelText      *propbin.Link         `bin:"levelText,optional"`
}

type TftCarouselViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	RoundTitle    *propbin.Link         `bin:"roundTitle,optional"`
	CountdownText *propbin.Link         `bin:"countdownText,optional"`
	PickOrderList *propbin.Link         `bin:"pickOrderList,optional"`
	LockIcon      *propbin.Link         `bin:"lockIcon,optional"`
}

type TftAugmentSelectViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	TitleText     *propbin.Link         `bin:"titleText,optional"`
	Option1Card   *propbin.Link         `bin:"option1Card,optional"`
	Option2Card   *propbin.Link         `bin:"option2Card,optional"`
	Option3Card   *propbin.Link         `bin:"option3Card,optional"`
	RerollButton1 *propbin.Link         `bin:"rerollButton1,optional"`
	RerollButton2 *propbin.Link         `bin:"rerollButton2,optional"`
	RerollButton3 *propbin.Link         `bin:"rerollButton3,optional"`
	HideButton    *propbin.Link         `bin:"hideButton,optional"`
	RevealDelay   *float32              `bin:"mRevealDelay,optional"`
	CardAnimation EnumUiAnimation       `bin:"mCardAnimation,optional"`
}

type TftItemBenchViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	SlotTemplate  *propbin.Link         `bin:"slotTemplate,optional"`
	ComponentIcon *propbin.Link         `bin:"componentIcon,optional"`
	CompletedIcon *propbin.Link         `bin:"completedIcon,optional"`
	RecipeTooltip *propbin.Link         `bin:"recipeTooltip,optional"`
}

type TftRoundTrackerViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	StageText     *propbin.Link         `bin:"stageText,optional"`
	RoundIcons    *propbin.Link         `bin:"roundIcons,optional"`
	TimerBar      *propbin.Link         `bin:"timerBar,optional"`
	TimerText     *propbin.Link         `bin:"timerText,optional"`
	PhaseText     *propbin.Link         `bin:"phaseText,optional"`
}

type TftCombatRecapViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	DamageTab       *propbin.Link         `bin:"damageTab,optional"`
	HealingTab      *propbin.Link         `bin:"healingTab,optional"`
	UnitRowTemplate *propbin.Link         `bin:"unitRowTemplate,optional"`
	DamageBar       *propbin.Link         `bin:"damageBar,optional"`
	CloseButton     *propbin.Link         `bin:"closeButton,optional"`
}

type TftLittleLegendViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	LegendPortrait *propbin.Link         `bin:"legendPortrait,optional"`
	EmoteButton    *propbin.Link         `bin:"emoteButton,optional"`
	DanceButton    *propbin.Link         `bin:"danceButton,optional"`
	TauntButton    *propbin.Link         `bin:"tauntButton,optional"`
}

type TftHextechViewController struct {
	Scene                propbin.Link          `bin:"scene"`
	Enabled              *bool                 `bin:"mEnabled,optional"`
	StartHidden          *bool                 `bin:"mStartHidden,optional"`
	LayerOffset          *int32                `bin:"mLayerOffset,optional"`
	TransitionIn         EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut        EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	HextechIcon          *propbin.Link         `bin:"hextechIcon,optional"`
	AffectedRowHighlight *propbin.Link         `bin:"affectedRowHighlight,optional"`
	TimerText            *propbin.Link         `bin:"timerText,optional"`
}

type ArenaRoundViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	RoundText     *propbin.Link         `bin:"roundText,optional"`
	RingTimer     *propbin.Link         `bin:"ringTimer,optional"`
	Team1Banner   *propbin.Link         `bin:"team1Banner,optional"`
	Team2Banner   *propbin.Link         `bin:"team2Banner,optional"`
	ScoreText     *propbin.Link         `bin:"scoreText,optional"`
}

type ArenaAugmentViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	TitleText     *propbin.Link         `bin:"titleText,optional"`
	Option1Card   *propbin.Link         `bin:"option1Card,optional"`
	Option2Card   *propbin.Link         `bin:"option2Card,optional"`
	Option3Card   *propbin.Link         `bin:"option3Card,optional"`
	RerollButton  *propbin.Link         `bin:"rerollButton,optional"`
}

type ArenaTeamStatusViewController struct {
	Scene             propbin.Link          `bin:"scene"`
	Enabled           *bool                 `bin:"mEnabled,optional"`
	StartHidden       *bool                 `bin:"mStartHidden,optional"`
	LayerOffset       *int32                `bin:"mLayerOffset,optional"`
	TransitionIn      EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut     EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	TeamTemplate      *propbin.Link         `bin:"teamTemplate,optional"`
	HealthPips        *propbin.Link         `bin:"healthPips,optional"`
	PlacementText     *propbin.Link         `bin:"placementText,optional"`
	EliminatedOverlay *propbin.Link         `bin:"eliminatedOverlay,optional"`
}

type StatStonesViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	StoneTemplate   *propbin.Link         `bin:"stoneTemplate,optional"`
	ProgressBar     *propbin.Link         `bin:"progressBar,optional"`
	MilestoneText   *propbin.Link         `bin:"milestoneText,optional"`
	ToastBackground *propbin.Link         `bin:"toastBackground,optional"`
}

type MissionTrackerViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	MissionTemplate *propbin.Link         `bin:"missionTemplate,optional"`
	ProgressText    *propbin.Link         `bin:"progressText,optional"`
	ProgressBar     *propbin.Link         `bin:"progressBar,optional"`
	RewardIcon      *propbin.Link         `bin:"rewardIcon,optional"`
	CollapseButton  *propbin.Link         `bin:"collapseButton,optional"`
}

type QuestTrackerViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	QuestIcon      *propbin.Link         `bin:"questIcon,optional"`
	QuestText      *propbin.Link         `bin:"questText,optional"`
	ProgressBar    *propbin.Link         `bin:"progressBar,optional"`
	CompletionGlow *propbin.Link         `bin:"completionGlow,optional"`
}

type TutorialOverlayViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	Dimmer        *propbin.Link         `bin:"dimmer,optional"`
	Spotlight     *propbin.Link         `bin:"spotlight,optional"`
	Arrow         *propbin.Link         `bin:"arrow,optional"`
	MessageText   *propbin.Link         `bin:"messageText,optional"`
	NextButton    *propbin.Link         `bin:"nextButton,optional"`
	SkipButton    *propbin.Link         `bin:"skipButton,optional"`
}

type TutorialHintViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	HintText      *propbin.Link         `bin:"hintText,optional"`
	HintIcon      *propbin.Link         `bin:"hintIcon,optional"`
	DismissButton *propbin.Link         `bin:"dismissButton,optional"`
}

type FloatingTextViewController struct {
	Scene              propbin.Link                     `bin:"scene"`
	Enabled            *bool                            `bin:"mEnabled,optional"`
	StartHidden        *bool                            `bin:"mStartHidden,optional"`
	LayerOffset        *int32                           `bin:"mLayerOffset,optional"`
	TransitionIn       EnumUiSceneTransition            `bin:"mTransitionIn,optional"`
	TransitionOut      EnumUiSceneTransition            `bin:"mTransitionOut,optional"`
	DamageTemplate     *propbin.Link                    `bin:"damageTemplate,optional"`
	HealTemplate       *propbin.Link                    `bin:"healTemplate,optional"`
	GoldTemplate       *propbin.Link                    `bin:"goldTemplate,optional"`
	ExperienceTemplate *propbin.Link                    `bin:"experienceTemplate,optional"`
	CritTemplate       *propbin.Link                    `bin:"critTemplate,optional"`
	MissTemplate       *propbin.Link                    `bin:"missTemplate,optional"`
	RiseSpeed          *float32                         `bin:"mRiseSpeed,optional"`
	Lifetime           *float32                         `bin:"mLifetime,optional"`
	Animations         map[propbin.Hash]EnumUiAnimation `bin:"mAnimations,optional"`
}

type VoiceChatViewController struct {
	Scene               propbin.Link          `bin:"scene"`
	Enabled             *bool                 `bin:"mEnabled,optional"`
	StartHidden         *bool                 `bin:"mStartHidden,optional"`
	LayerOffset         *int32                `bin:"mLayerOffset,optional"`
	TransitionIn        EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut       EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	SpeakerTemplate     *propbin.Link         `bin:"speakerTemplate,optional"`
	MuteButton          *propbin.Link         `bin:"muteButton,optional"`
	PushToTalkIndicator *propbin.Link         `bin:"pushToTalkIndicator,optional"`
	VolumeSlider        *propbin.Link         `bin:"volumeSlider,optional"`
}

type PerformanceOverlayViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	FpsText        *propbin.Link         `bin:"fpsText,optional"`
	LatencyText    *propbin.Link         `bin:"latencyText,optional"`
	PacketLossText *propbin.Link         `bin:"packetLossText,optional"`
	CpuText        *propbin.Link         `bin:"cpuText,optional"`
}

type NetworkStatusViewController struct {
	Scene            propbin.Link          `bin:"scene"`
	Enabled          *bool                 `bin:"mEnabled,optional"`
	StartHidden      *bool                 `bin:"mStartHidden,optional"`
	LayerOffset      *int32                `bin:"mLayerOffset,optional"`
	TransitionIn     EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut    EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	DisconnectBanner *propbin.Link         `bin:"disconnectBanner,optional"`
	ReconnectingText *propbin.Link         `bin:"reconnectingText,optional"`
	LatencyWarning   *propbin.Link         `bin:"latencyWarning,optional"`
}

type ClockViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ClockText     *propbin.Link         `bin:"clockText,optional"`
	PauseIcon     *propbin.Link         `bin:"pauseIcon,optional"`
}

type GoldDisplayViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	GoldText      *propbin.Link         `bin:"goldText,optional"`
	GoldIcon      *propbin.Link         `bin:"goldIcon,optional"`
	IncomeText    *propbin.Link         `bin:"incomeText,optional"`
}

type CreepScoreViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ScoreText     *propbin.Link         `bin:"scoreText,optional"`
	PerMinuteText *propbin.Link         `bin:"perMinuteText,optional"`
	Icon          *propbin.Link         `bin:"icon,optional"`
}

type KdaViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	KillsText     *propbin.Link         `bin:"killsText,optional"`
	DeathsText    *propbin.Link         `bin:"deathsText,optional"`
	AssistsText   *propbin.Link         `bin:"assistsText,optional"`
	RatioText     *propbin.Link         `bin:"ratioText,optional"`
}

type LevelUpViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	LevelUpBurst   *propbin.Link         `bin:"levelUpBurst,optional"`
	LevelText      *propbin.Link         `bin:"levelText,optional"`
	SkillPointGlow *propbin.Link         `bin:"skillPointGlow,optional"`
}

type SkillPointViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	PointsText    *propbin.Link         `bin:"pointsText,optional"`
	QUpButton     *propbin.Link         `bin:"qUpButton,optional"`
	WUpButton     *propbin.Link         `bin:"wUpButton,optional"`
	EUpButton     *propbin.Link         `bin:"eUpButton,optional"`
	RUpButton     *propbin.Link         `bin:"rUpButton,optional"`
}

type RecallProgressViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ProgressBar   *propbin.Link         `bin:"progressBar,optional"`
	RecallIcon    *propbin.Link         `bin:"recallIcon,optional"`
	TimeText      *propbin.Link         `bin:"timeText,optional"`
}

type CastBarViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	CastBar        *propbin.Link         `bin:"castBar,optional"`
	SpellNameText  *propbin.Link         `bin:"spellNameText,optional"`
	InterruptFlash *propbin.Link         `bin:"interruptFlash,optional"`
}

type ChannelBarViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ChannelBar    *propbin.Link         `bin:"channelBar,optional"`
	SpellNameText *propbin.Link         `bin:"spellNameText,optional"`
	CancelHint    *propbin.Link         `bin:"cancelHint,optional"`
	MetricFormat  EnumUiMetricFormat    `bin:"mMetricFormat,optional"`
}

type ShieldBarViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	PhysicalShield *propbin.Link         `bin:"physicalShield,optional"`
	MagicShield    *propbin.Link         `bin:"magicShield,optional"`
	AllShield      *propbin.Link         `bin:"allShield,optional"`
}

type ResourceBarViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ResourceBar   *propbin.Link         `bin:"resourceBar,optional"`
	ResourceText  *propbin.Link         `bin:"resourceText,optional"`
	TickMarks     *propbin.Link         `bin:"tickMarks,optional"`
}

type ExperienceBarViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ExperienceBar *propbin.Link         `bin:"experienceBar,optional"`
	LevelText     *propbin.Link         `bin:"levelText,optional"`
	TooltipAnchor *propbin.Link         `bin:"tooltipAnchor,optional"`
}

type MinimapIconViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ChampionIcons  *propbin.Link         `bin:"championIcons,optional"`
	StructureIcons *propbin.Link         `bin:"structureIcons,optional"`
	WardIcons      *propbin.Link         `bin:"wardIcons,optional"`
	CampIcons      *propbin.Link         `bin:"campIcons,optional"`
	PingIcons      *propbin.Link         `bin:"pingIcons,optional"`
}

type FogOfWarViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	FogLayer      *propbin.Link         `bin:"fogLayer,optional"`
	BrushLayer    *propbin.Link         `bin:"brushLayer,optional"`
	RevealLayer   *propbin.Link         `bin:"revealLayer,optional"`
}

type CameraLockViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	LockIcon      *propbin.Link         `bin:"lockIcon,optional"`
	UnlockIcon    *propbin.Link         `bin:"unlockIcon,optional"`
	HotkeyText    *propbin.Link         `bin:"hotkeyText,optional"`
}

type SelectionViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	SelectionRing  *propbin.Link         `bin:"selectionRing,optional"`
	HoverRing      *propbin.Link         `bin:"hoverRing,optional"`
	MultiSelectBox *propbin.Link         `bin:"multiSelectBox,optional"`
}

type UnitSwapViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	UnitIcons     *propbin.Link         `bin:"unitIcons,optional"`
	ActiveFrame   *propbin.Link         `bin:"activeFrame,optional"`
	HotkeyText    *propbin.Link         `bin:"hotkeyText,optional"`
}

type WardTrackerViewController struct {
	Scene            propbin.Link          `bin:"scene"`
	Enabled          *bool                 `bin:"mEnabled,optional"`
	StartHidden      *bool                 `bin:"mStartHidden,optional"`
	LayerOffset      *int32                `bin:"mLayerOffset,optional"`
	TransitionIn     EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut    EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	WardCountText    *propbin.Link         `bin:"wardCountText,optional"`
	TrinketCharges   *propbin.Link         `bin:"trinketCharges,optional"`
	ControlWardCount *propbin.Link         `bin:"controlWardCount,optional"`
}

type DragonTrackerViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	OrderSouls     *propbin.Link         `bin:"orderSouls,optional"`
	ChaosSouls     *propbin.Link         `bin:"chaosSouls,optional"`
	NextDragonIcon *propbin.Link         `bin:"nextDragonIcon,optional"`
	SoulPointText  *propbin.Link         `bin:"soulPointText,optional"`
}

type BaronTimerViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	BaronIcon     *propbin.Link         `bin:"baronIcon,optional"`
	BuffTimer     *propbin.Link         `bin:"buffTimer,optional"`
	PowerPlayText *propbin.Link         `bin:"powerPlayText,optional"`
}

type HeraldTimerViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	HeraldIcon    *propbin.Link         `bin:"heraldIcon,optional"`
	SpawnTimer    *propbin.Link         `bin:"spawnTimer,optional"`
	EyeIcon       *propbin.Link         `bin:"eyeIcon,optional"`
}

type InhibitorTimerViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	TopInhibitor  *propbin.Link         `bin:"topInhibitor,optional"`
	MidInhibitor  *propbin.Link         `bin:"midInhibitor,optional"`
	BotInhibitor  *propbin.Link         `bin:"botInhibitor,optional"`
}

type TurretPlateViewController struct {
	Scene              propbin.Link          `bin:"scene"`
	Enabled            *bool                 `bin:"mEnabled,optional"`
	StartHidden        *bool                 `bin:"mStartHidden,optional"`
	LayerOffset        *int32                `bin:"mLayerOffset,optional"`
	TransitionIn       EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut      EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	PlateIcons         *propbin.Link         `bin:"plateIcons,optional"`
	PlateGoldText      *propbin.Link         `bin:"plateGoldText,optional"`
	FortificationTimer *propbin.Link         `bin:"fortificationTimer,optional"`
}

type ObjectiveBountyViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	BountyBanner    *propbin.Link         `bin:"bountyBanner,optional"`
	OrderBountyText *propbin.Link         `bin:"orderBountyText,optional"`
	ChaosBountyText *propbin.Link         `bin:"chaosBountyText,optional"`
}

type ShutdownBountyViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	ShutdownIcon  *propbin.Link         `bin:"shutdownIcon,optional"`
	BountyText    *propbin.Link         `bin:"bountyText,optional"`
	StreakText    *propbin.Link         `bin:"streakText,optional"`
}

type StreakAnnouncerViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	StreakBanner  *propbin.Link         `bin:"streakBanner,optional"`
	StreakText    *propbin.Link         `bin:"streakText,optional"`
	StreakIcon    *propbin.Link         `bin:"streakIcon,optional"`
}

type HonorVoteViewController struct {
	Scene            propbin.Link          `bin:"scene"`
	Enabled          *bool                 `bin:"mEnabled,optional"`
	StartHidden      *bool                 `bin:"mStartHidden,optional"`
	LayerOffset      *int32                `bin:"mLayerOffset,optional"`
	TransitionIn     EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut    EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	TeammateTemplate *propbin.Link         `bin:"teammateTemplate,optional"`
	VoteButton       *propbin.Link         `bin:"voteButton,optional"`
	SkipButton       *propbin.Link         `bin:"skipButton,optional"`
	TimerBar         *propbin.Link         `bin:"timerBar,optional"`
}

type PostGameGraphsViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	GoldGraph       *propbin.Link         `bin:"goldGraph,optional"`
	ExperienceGraph *propbin.Link         `bin:"experienceGraph,optional"`
	DamageGraph     *propbin.Link         `bin:"damageGraph,optional"`
	Legend          *propbin.Link         `bin:"legend,optional"`
}

type ReportPlayerViewController struct {
	Scene            propbin.Link          `bin:"scene"`
	Enabled          *bool                 `bin:"mEnabled,optional"`
	StartHidden      *bool                 `bin:"mStartHidden,optional"`
	LayerOffset      *int32                `bin:"mLayerOffset,optional"`
	TransitionIn     EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut    EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	PlayerList       *propbin.Link         `bin:"playerList,optional"`
	ReasonCheckBoxes *propbin.Link         `bin:"reasonCheckBoxes,optional"`
	CommentBox       *propbin.Link         `bin:"commentBox,optional"`
	SubmitButton     *propbin.Link         `bin:"submitButton,optional"`
}

type MuteListViewController struct {
	Scene           propbin.Link          `bin:"scene"`
	Enabled         *bool                 `bin:"mEnabled,optional"`
	StartHidden     *bool                 `bin:"mStartHidden,optional"`
	LayerOffset     *int32                `bin:"mLayerOffset,optional"`
	TransitionIn    EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut   EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	PlayerTemplate  *propbin.Link         `bin:"playerTemplate,optional"`
	MuteChatToggle  *propbin.Link         `bin:"muteChatToggle,optional"`
	MutePingsToggle *propbin.Link         `bin:"mutePingsToggle,optional"`
	MuteAllButton   *propbin.Link         `bin:"muteAllButton,optional"`
}

type CheatMenuViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	CommandInput  *propbin.Link         `bin:"commandInput,optional"`
	HistoryList   *propbin.Link         `bin:"historyList,optional"`
	RunButton     *propbin.Link         `bin:"runButton,optional"`
}

type ReplayTimelineViewController struct {
	Scene         propbin.Link          `bin:"scene"`
	Enabled       *bool                 `bin:"mEnabled,optional"`
	StartHidden   *bool                 `bin:"mStartHidden,optional"`
	LayerOffset   *int32                `bin:"mLayerOffset,optional"`
	TransitionIn  EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	TimelineBar   *propbin.Link         `bin:"timelineBar,optional"`
	EventMarkers  *propbin.Link         `bin:"eventMarkers,optional"`
	HoverPreview  *propbin.Link         `bin:"hoverPreview,optional"`
	ScrubHandle   *propbin.Link         `bin:"scrubHandle,optional"`
	Draggable     EnumUiDraggable       `bin:"mDraggable,optional"`
}

type ReplayCameraViewController struct {
	Scene          propbin.Link          `bin:"scene"`
	Enabled        *bool                 `bin:"mEnabled,optional"`
	StartHidden    *bool                 `bin:"mStartHidden,optional"`
	LayerOffset    *int32                `bin:"mLayerOffset,optional"`
	TransitionIn   EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut  EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	FreeCamButton  *propbin.Link         `bin:"freeCamButton,optional"`
	FollowButton   *propbin.Link         `bin:"followButton,optional"`
	DirectedButton *propbin.Link         `bin:"directedButton,optional"`
	FovSlider      *propbin.Link         `bin:"fovSlider,optional"`
}

type ObserverGraphsViewController struct {
	Scene            propbin.Link          `bin:"scene"`
	Enabled          *bool                 `bin:"mEnabled,optional"`
	StartHidden      *bool                 `bin:"mStartHidden,optional"`
	LayerOffset      *int32                `bin:"mLayerOffset,optional"`
	TransitionIn     EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut    EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	GoldDiffGraph    *propbin.Link         `bin:"goldDiffGraph,optional"`
	XPDiffGraph      *propbin.Link         `bin:"xpDiffGraph,optional"`
	ObjectiveMarkers *propbin.Link         `bin:"objectiveMarkers,optional"`
}

type ObserverItemsViewController struct {
	Scene             propbin.Link          `bin:"scene"`
	Enabled           *bool                 `bin:"mEnabled,optional"`
	StartHidden       *bool                 `bin:"mStartHidden,optional"`
	LayerOffset       *int32                `bin:"mLayerOffset,optional"`
	TransitionIn      EnumUiSceneTransition `bin:"mTransitionIn,optional"`
	TransitionOut     EnumUiSceneTransition `bin:"mTransitionOut,optional"`
	PlayerItemRows    *propbin.Link         `bin:"playerItemRows,optional"`
	CompletedItemGlow *propbin.Link         `bin:"completedItemGlow,optional"`
	ItemTimerTemplate *propbin.Link         `bin:"itemTimerTemplate,optional"`
}

func (*UiSceneTransitionFade) uiSceneTransition()  {}
func (*UiSceneTransitionSlide) uiSceneTransition() {}
func (*UiSceneTransitionScale) uiSceneTransition() {}
func (*UiSceneTransitionNone) uiSceneTransition()  {}

func (*UiDraggableProxy) uiDraggable()     {}
func (*UiDraggableElement) uiDraggable()   {}
func (*UiDraggableSceneDrag) uiDraggable() {}
func (*UiDraggableBasic) uiDraggable()     {}

func (*UiMetricFormatInteger) uiMetricFormat()     {}
func (*UiMetricFormatPercent) uiMetricFormat()     {}
func (*UiMetricFormatDuration) uiMetricFormat()    {}
func (*UiMetricFormatDecimal) uiMetricFormat()     {}
func (*UiMetricFormatAbbreviated) uiMetricFormat() {}

func (*UiAnimationFade) uiAnimation()     {}
func (*UiAnimationMove) uiAnimation()     {}
func (*UiAnimationPulse) uiAnimation()    {}
func (*UiAnimationFlipbook) uiAnimation() {}
func (*UiAnimationRotate) uiAnimation()   {}
func (*UiAnimationSequence) uiAnimation() {}

func (*UiElementEffectGlow) uiElementEffect()            {}
func (*UiElementEffectDesaturate) uiElementEffect()      {}
func (*UiElementEffectCooldownRadial) uiElementEffect()  {}
func (*UiElementEffectFillPercentage) uiElementEffect()  {}
func (*UiElementEffectInstancedSprite) uiElementEffect() {}

func (*HudViewController) viewController()                {}
func (*ScoreboardViewController) viewController()         {}
func (*ShopViewController) viewController()               {}
func (*LoadingScreenViewController) viewController()      {}
func (*SpectatorHudViewController) viewController()       {}
func (*PostGameStatsViewController) viewController()      {}
func (*SettingsMenuViewController) viewController()       {}
func (*PracticeToolViewController) viewController()       {}
func (*TftShopViewController) viewController()            {}
func (*AbilityBarViewController) viewController()         {}
func (*ChatViewController) viewController()               {}
func (*MinimapViewController) viewController()            {}
func (*BuffBarViewController) viewController()            {}
func (*PlayerFrameViewController) viewController()        {}
func (*TargetFrameViewController) viewController()        {}
func (*InventoryViewController) viewController()          {}
func (*DeathRecapViewController) viewController()         {}
func (*SurrenderVoteViewController) viewController()      {}
func (*PingWheelViewController) viewController()          {}
func (*EmoteWheelViewController) viewController()         {}
func (*ReplayControlsViewController) viewController()     {}
func (*KillCalloutViewController) viewController()        {}
func (*AnnouncementViewController) viewController()       {}
func (*ObjectiveTimerViewController) viewController()     {}
func (*TeamFramesViewController) viewController()         {}
func (*ItemTooltipViewController) viewController()        {}
func (*SpellTooltipViewController) viewController()       {}
func (*CursorViewController) viewController()             {}
func (*HealthBarViewController) viewController()          {}
func (*KeybindingsViewController) viewController()        {}
func (*VideoOptionsViewController) viewController()       {}
func (*SoundOptionsViewController) viewController()       {}
func (*InterfaceOptionsViewController) viewController()   {}
func (*GameOptionsViewController) viewController()        {}
func (*EscapeMenuViewController) viewController()         {}
func (*TftBoardViewController) viewController()           {}
func (*TftBenchViewController) viewController()           {}
func (*TftTraitTrackerViewController) viewController()    {}
func (*TftPlayerListViewController) viewController()      {}
func (*TftCarouselViewController) viewController()        {}
func (*TftAugmentSelectViewController) viewController()   {}
func (*TftItemBenchViewController) viewController()       {}
func (*TftRoundTrackerViewController) viewController()    {}
func (*TftCombatRecapViewController) viewController()     {}
func (*TftLittleLegendViewController) viewController()    {}
func (*TftHextechViewController) viewController()         {}
func (*ArenaRoundViewController) viewController()         {}
func (*ArenaAugmentViewController) viewController()       {}
func (*ArenaTeamStatusViewController) viewController()    {}
func (*StatStonesViewController) viewController()         {}
func (*MissionTrackerViewController) viewController()     {}
func (*QuestTrackerViewController) viewController()       {}
func (*TutorialOverlayViewController) viewController()    {}
func (*TutorialHintViewController) viewController()       {}
func (*FloatingTextViewController) viewController()       {}
func (*VoiceChatViewController) viewController()          {}
func (*PerformanceOverlayViewController) viewController() {}
func (*NetworkStatusViewController) viewController()      {}
func (*ClockViewController) viewController()              {}
func (*GoldDisplayViewController) viewController()        {}
func (*CreepScoreViewController) viewController()         {}
func (*KdaViewController) viewController()                {}
func (*LevelUpViewController) viewController()            {}
func (*SkillPointViewController) viewController()         {}
func (*RecallProgressViewController) viewController()     {}
func (*CastBarViewController) viewController()            {}
func (*ChannelBarViewController) viewController()         {}
func (*ShieldBarViewController) viewController()          {}
func (*ResourceBarViewController) viewController()        {}
func (*ExperienceBarViewController) viewController()      {}
func (*MinimapIconViewController) viewController()        {}
func (*FogOfWarViewController) viewController()           {}
func (*CameraLockViewController) viewController()         {}
func (*SelectionViewController) viewController()          {}
func (*UnitSwapViewController) viewController()           {}
func (*WardTrackerViewController) viewController()        {}
func (*DragonTrackerViewController) viewController()      {}
func (*BaronTimerViewController) viewController()         {}
func (*HeraldTimerViewController) viewController()        {}
func (*InhibitorTimerViewController) viewController()     {}
func (*TurretPlateViewController) viewController()        {}
func (*ObjectiveBountyViewController) viewController()    {}
func (*ShutdownBountyViewController) viewController()     {}
func (*StreakAnnouncerViewController) viewController()    {}
func (*HonorVoteViewController) viewController()          {}
func (*PostGameGraphsViewController) viewController()     {}
func (*ReportPlayerViewController) viewController()       {}
func (*MuteListViewController) viewController()           {}
func (*CheatMenuViewController) viewController()          {}
func (*ReplayTimelineViewController) viewController()     {}
func (*ReplayCameraViewController) viewController()       {}
func (*ObserverGraphsViewController) viewController()     {}
func (*ObserverItemsViewController) viewController()      {}

func registerUIViews(b *propbin.Builder) {
	propbin.Record[UiSceneTransitionFade](b, "UiSceneTransitionFade")
	propbin.Record[UiSceneTransitionSlide](b, "UiSceneTransitionSlide")
	propbin.Record[UiSceneTransitionScale](b, "UiSceneTransitionScale")
	propbin.Record[UiSceneTransitionNone](b, "UiSceneTransitionNone")
	propbin.Variant[EnumUiSceneTransition](b, "EnumUiSceneTransition",
		propbin.Case[UiSceneTransitionFade](),
		propbin.Case[UiSceneTransitionSlide](),
		propbin.Case[UiSceneTransitionScale](),
		propbin.Case[UiSceneTransitionNone](),
	)

	propbin.Record[UiDraggableProxy](b, "UiDraggableProxy")
	propbin.Record[UiDraggableElement](b, "UiDraggableElement")
	propbin.Record[UiDraggableSceneDrag](b, "UiDraggableSceneDrag")
	propbin.Record[UiDraggableBasic](b, "UiDraggableBasic")
	propbin.Variant[EnumUiDraggable](b, "EnumUiDraggable",
		propbin.Case[UiDraggableProxy](),
		propbin.Case[UiDraggableElement](),
		propbin.Case[UiDraggableSceneDrag](),
		propbin.Case[UiDraggableBasic](),
	)

	propbin.Record[UiMetricFormatInteger](b, "UiMetricFormatInteger")
	propbin.Record[UiMetricFormatPercent](b, "UiMetricFormatPercent")
	propbin.Record[UiMetricFormatDuration](b, "UiMetricFormatDuration")
	propbin.Record[UiMetricFormatDecimal](b, "UiMetricFormatDecimal")
	propbin.Record[UiMetricFormatAbbreviated](b, "UiMetricFormatAbbreviated")
	propbin.Variant[EnumUiMetricFormat](b, "EnumUiMetricFormat",
		propbin.Case[UiMetricFormatInteger](),
		propbin.Case[UiMetricFormatPercent](),
		propbin.Case[UiMetricFormatDuration](),
		propbin.Case[UiMetricFormatDecimal](),
		propbin.Case[UiMetricFormatAbbreviated](),
	)

	propbin.Record[UiAnimationFade](b, "UiAnimationFade")
	propbin.Record[UiAnimationMove](b, "UiAnimationMove")
	propbin.Record[UiAnimationPulse](b, "UiAnimationPulse")
	propbin.Record[UiAnimationFlipbook](b, "UiAnimationFlipbook")
	propbin.Record[UiAnimationRotate](b, "UiAnimationRotate")
	propbin.Record[UiAnimationSequence](b, "UiAnimationSequence")
	propbin.Variant[EnumUiAnimation](b, "EnumUiAnimation",
		propbin.Case[UiAnimationFade](),
		propbin.Case[UiAnimationMove](),
		propbin.Case[UiAnimationPulse](),
		propbin.Case[UiAnimationFlipbook](),
		propbin.Case[UiAnimationRotate](),
		propbin.Case[UiAnimationSequence](),
	)

	propbin.Record[UiElementEffectGlow](b, "UiElementEffectGlow")
	propbin.Record[UiElementEffectDesaturate](b, "UiElementEffectDesaturate")
	propbin.Record[UiElementEffectCooldownRadial](b, "UiElementEffectCooldownRadial")
	propbin.Record[UiElementEffectFillPercentage](b, "UiElementEffectFillPercentage")
	propbin.Record[UiElementEffectInstancedSprite](b, "UiElementEffectInstancedSprite")
	propbin.Variant[EnumUiElementEffect](b, "EnumUiElementEffect",
		propbin.Case[UiElementEffectGlow](),
		propbin.Case[UiElementEffectDesaturate](),
		propbin.Case[UiElementEffectCooldownRadial](),
		propbin.Case[UiElementEffectFillPercentage](),
		propbin.Case[UiElementEffectInstancedSprite](),
	)

	propbin.Record[UiElementScissorRegion](b, "UiElementScissorRegion")
	propbin.Record[UiElementScrollBar](b, "UiElementScrollBar")
	propbin.Record[UiElementSliderData](b, "UiElementSliderData")
	propbin.Record[UiElementCheckBoxData](b, "UiElementCheckBoxData")
	propbin.Record[UiElementDropdownData](b, "UiElementDropdownData")
	propbin.Record[UiElementTextInputData](b, "UiElementTextInputData")
	propbin.Record[UiElementGridData](b, "UiElementGridData")
	propbin.Record[UiElementTooltipAnchor](b, "UiElementTooltipAnchor")
	propbin.Record[UiElementHealthBarData](b, "UiElementHealthBarData")
	propbin.Record[UiElementRegionData](b, "UiElementRegionData")
	propbin.Record[UiElementEffectList](b, "UiElementEffectList")
	propbin.Record[UiFontDescription](b, "UiFontDescription")
	propbin.Record[UiHotkeyBinding](b, "UiHotkeyBinding")
	propbin.Record[UiHotkeySet](b, "UiHotkeySet")
	propbin.Record[ViewPaneDefinition](b, "ViewPaneDefinition", propbin.AsAsset())
	propbin.Record[ViewControllerSet](b, "ViewControllerSet", propbin.AsAsset())
	propbin.Record[UiElementGroupData](b, "UiElementGroupData", propbin.AsAsset())
	propbin.Record[UiPropertyLoadable](b, "UiPropertyLoadable")
	propbin.Record[UiComboBoxItem](b, "UiComboBoxItem")
	propbin.Record[HudViewController](b, "HudViewController")
	propbin.Record[ScoreboardViewController](b, "ScoreboardViewController")
	propbin.Record[ShopViewController](b, "ShopViewController")
	propbin.Record[LoadingScreenViewController](b, "LoadingScreenViewController")
	propbin.Record[SpectatorHudViewController](b, "SpectatorHudViewController")
	propbin.Record[PostGameStatsViewController](b, "PostGameStatsViewController")
	propbin.Record[SettingsMenuViewController](b, "SettingsMenuViewController")
	propbin.Record[PracticeToolViewController](b, "PracticeToolViewController")
	propbin.Record[TftShopViewController](b, "TftShopViewController")
	propbin.Record[AbilityBarViewController](b, "AbilityBarViewController")
	propbin.Record[ChatViewController](b, "ChatViewController")
	propbin.Record[MinimapViewController](b, "MinimapViewController")
	propbin.Record[BuffBarViewController](b, "BuffBarViewController")
	propbin.Record[PlayerFrameViewController](b, "PlayerFrameViewController")
	propbin.Record[TargetFrameViewController](b, "TargetFrameViewController")
	propbin.Record[InventoryViewController](b, "InventoryViewController")
	propbin.Record[DeathRecapViewController](b, "DeathRecapViewController")
	propbin.Record[SurrenderVoteViewController](b, "SurrenderVoteViewController")
	propbin.Record[PingWheelViewController](b, "PingWheelViewController")
	propbin.Record[EmoteWheelViewController](b, "EmoteWheelViewController")
	propbin.Record[ReplayControlsViewController](b, "ReplayControlsViewController")
	propbin.Record[KillCalloutViewController](b, "KillCalloutViewController")
	propbin.Record[AnnouncementViewController](b, "AnnouncementViewController")
	propbin.Record[ObjectiveTimerViewController](b, "ObjectiveTimerViewController")
	propbin.Record[TeamFramesViewController](b, "TeamFramesViewController")
	propbin.Record[ItemTooltipViewController](b, "ItemTooltipViewController")
	propbin.Record[SpellTooltipViewController](b, "SpellTooltipViewController")
	propbin.Record[CursorViewController](b, "CursorViewController")
	propbin.Record[HealthBarViewController](b, "HealthBarViewController")
	propbin.Record[KeybindingsViewController](b, "KeybindingsViewController")
	propbin.Record[VideoOptionsViewController](b, "VideoOptionsViewController")
	propbin.Record[SoundOptionsViewController](b, "SoundOptionsViewController")
	propbin.Record[InterfaceOptionsViewController](b, "InterfaceOptionsViewController")
	propbin.Record[GameOptionsViewController](b, "GameOptionsViewController")
	propbin.Record[EscapeMenuViewController](b, "EscapeMenuViewController")
	propbin.Record[TftBoardViewController](b, "TftBoardViewController")
	propbin.Record[TftBenchViewController](b, "TftBenchViewController")
	propbin.Record[TftTraitTrackerViewController](b, "TftTraitTrackerViewController")
	propbin.Record[TftPlayerListViewController](b, "TftPlayerListViewController")
	propbin.Record[TftCarouselViewController](b, "TftCarouselViewController")
	propbin.Record[TftAugmentSelectViewController](b, "TftAugmentSelectViewController")
	propbin.Record[TftItemBenchViewController](b, "TftItemBenchViewController")
	propbin.Record[TftRoundTrackerViewController](b, "TftRoundTrackerViewController")
	propbin.Record[TftCombatRecapViewController](b, "TftCombatRecapViewController")
	propbin.Record[TftLittleLegendViewController](b, "TftLittleLegendViewController")
	propbin.Record[TftHextechViewController](b, "TftHextechViewController")
	propbin.Record[ArenaRoundViewController](b, "ArenaRoundViewController")
	propbin.Record[ArenaAugmentViewController](b, "ArenaAugmentViewController")
	propbin.Record[ArenaTeamStatusViewController](b, "ArenaTeamStatusViewController")
	propbin.Record[StatStonesViewController](b, "StatStonesViewController")
	propbin.Record[MissionTrackerViewController](b, "MissionTrackerViewController")
	propbin.Record[QuestTrackerViewController](b, "QuestTrackerViewController")
	propbin.Record[TutorialOverlayViewController](b, "TutorialOverlayViewController")
	propbin.Record[TutorialHintViewController](b, "TutorialHintViewController")
	propbin.Record[FloatingTextViewController](b, "FloatingTextViewController")
	propbin.Record[VoiceChatViewController](b, "VoiceChatViewController")
	propbin.Record[PerformanceOverlayViewController](b, "PerformanceOverlayViewController")
	propbin.Record[NetworkStatusViewController](b, "NetworkStatusViewController")
	propbin.Record[ClockViewController](b, "ClockViewController")
	propbin.Record[GoldDisplayViewController](b, "GoldDisplayViewController")
	propbin.Record[CreepScoreViewController](b, "CreepScoreViewController")
	propbin.Record[KdaViewController](b, "KdaViewController")
	propbin.Record[LevelUpViewController](b, "LevelUpViewController")
	propbin.Record[SkillPointViewController](b, "SkillPointViewController")
	propbin.Record[RecallProgressViewController](b, "RecallProgressViewController")
	propbin.Record[CastBarViewController](b, "CastBarViewController")
	propbin.Record[ChannelBarViewController](b, "ChannelBarViewController")
	propbin.Record[ShieldBarViewController](b, "ShieldBarViewController")
	propbin.Record[ResourceBarViewController](b, "ResourceBarViewController")
	propbin.Record[ExperienceBarViewController](b, "ExperienceBarViewController")
	propbin.Record[MinimapIconViewController](b, "MinimapIconViewController")
	propbin.Record[FogOfWarViewController](b, "FogOfWarViewController")
	propbin.Record[CameraLockViewController](b, "CameraLockViewController")
	propbin.Record[SelectionViewController](b, "SelectionViewController")
	propbin.Record[UnitSwapViewController](b, "UnitSwapViewController")
	propbin.Record[WardTrackerViewController](b, "WardTrackerViewController")
	propbin.Record[DragonTrackerViewController](b, "DragonTrackerViewController")
	propbin.Record[BaronTimerViewController](b, "BaronTimerViewController")
	propbin.Record[HeraldTimerViewController](b, "HeraldTimerViewController")
	propbin.Record[InhibitorTimerViewController](b, "InhibitorTimerViewController")
	propbin.Record[TurretPlateViewController](b, "TurretPlateViewController")
	propbin.Record[ObjectiveBountyViewController](b, "ObjectiveBountyViewController")
	propbin.Record[ShutdownBountyViewController](b, "ShutdownBountyViewController")
	propbin.Record[StreakAnnouncerViewController](b, "StreakAnnouncerViewController")
	propbin.Record[HonorVoteViewController](b, "HonorVoteViewController")
	propbin.Record[PostGameGraphsViewController](b, "PostGameGraphsViewController")
	propbin.Record[ReportPlayerViewController](b, "ReportPlayerViewController")
	propbin.Record[MuteListViewController](b, "MuteListViewController")
	propbin.Record[CheatMenuViewController](b, "CheatMenuViewController")
	propbin.Record[ReplayTimelineViewController](b, "ReplayTimelineViewController")
	propbin.Record[ReplayCameraViewController](b, "ReplayCameraViewController")
	propbin.Record[ObserverGraphsViewController](b, "ObserverGraphsViewController")
	propbin.Record[ObserverItemsViewController](b, "ObserverItemsViewController")
	propbin.Variant[EnumViewController](b, "EnumViewController",
		propbin.Case[HudViewController](),
		propbin.Case[ScoreboardViewController](),
		propbin.Case[ShopViewController](),
		propbin.Case[LoadingScreenViewController](),
		propbin.Case[SpectatorHudViewController](),
		propbin.Case[PostGameStatsViewController](),
		propbin.Case[SettingsMenuViewController](),
		propbin.Case[PracticeToolViewController](),
		propbin.Case[TftShopViewController](),
		propbin.Case[AbilityBarViewController](),
		propbin.Case[ChatViewController](),
		propbin.Case[MinimapViewController](),
		propbin.Case[BuffBarViewController](),
		propbin.Case[PlayerFrameViewController](),
		propbin.Case[TargetFrameViewController](),
		propbin.Case[InventoryViewController](),
		propbin.Case[DeathRecapViewController](),
		propbin.Case[SurrenderVoteViewController](),
		propbin.Case[PingWheelViewController](),
		propbin.Case[EmoteWheelViewController](),
		propbin.Case[ReplayControlsViewController](),
		propbin.Case[KillCalloutViewController](),
		propbin.Case[AnnouncementViewController](),
		propbin.Case[ObjectiveTimerViewController](),
		propbin.Case[TeamFramesViewController](),
		propbin.Case[ItemTooltipViewController](),
		propbin.Case[SpellTooltipViewController](),
		propbin.Case[CursorViewController](),
		propbin.Case[HealthBarViewController](),
		propbin.Case[KeybindingsViewController](),
		propbin.Case[VideoOptionsViewController](),
		propbin.Case[SoundOptionsViewController](),
		propbin.Case[InterfaceOptionsViewController](),
		propbin.Case[GameOptionsViewController](),
		propbin.Case[EscapeMenuViewController](),
		propbin.Case[TftBoardViewController](),
		propbin.Case[TftBenchViewController](),
		propbin.Case[TftTraitTrackerViewController](),
		propbin.Case[TftPlayerListViewController](),
		propbin.Case[TftCarouselViewController](),
		propbin.Case[TftAugmentSelectViewController](),
		propbin.Case[TftItemBenchViewController](),
		propbin.Case[TftRoundTrackerViewController](),
		propbin.Case[TftCombatRecapViewController](),
		propbin.Case[TftLittleLegendViewController](),
		propbin.Case[TftHextechViewController](),
		propbin.Case[ArenaRoundViewController](),
		propbin.Case[ArenaAugmentViewController](),
		propbin.Case[ArenaTeamStatusViewController](),
		propbin.Case[StatStonesViewController](),
		propbin.Case[MissionTrackerViewController](),
		propbin.Case[QuestTrackerViewController](),
		propbin.Case[TutorialOverlayViewController](),
		propbin.Case[TutorialHintViewController](),
		propbin.Case[FloatingTextViewController](),
		propbin.Case[VoiceChatViewController](),
		propbin.Case[PerformanceOverlayViewController](),
		propbin.Case[NetworkStatusViewController](),
		propbin.Case[ClockViewController](),
		propbin.Case[GoldDisplayViewController](),
		propbin.Case[CreepScoreViewController](),
		propbin.Case[KdaViewController](),
		propbin.Case[LevelUpViewController](),
		propbin.Case[SkillPointViewController](),
		propbin.Case[RecallProgressViewController](),
		propbin.Case[CastBarViewController](),
		propbin.Case[ChannelBarViewController](),
		propbin.Case[ShieldBarViewController](),
		propbin.Case[ResourceBarViewController](),
		propbin.Case[ExperienceBarViewController](),
		propbin.Case[MinimapIconViewController](),
		propbin.Case[FogOfWarViewController](),
		propbin.Case[CameraLockViewController](),
		propbin.Case[SelectionViewController](),
		propbin.Case[UnitSwapViewController](),
		propbin.Case[WardTrackerViewController](),
		propbin.Case[DragonTrackerViewController](),
		propbin.Case[BaronTimerViewController](),
		propbin.Case[HeraldTimerViewController](),
		propbin.Case[InhibitorTimerViewController](),
		propbin.Case[TurretPlateViewController](),
		propbin.Case[ObjectiveBountyViewController](),
		propbin.Case[ShutdownBountyViewController](),
		propbin.Case[StreakAnnouncerViewController](),
		propbin.Case[HonorVoteViewController](),
		propbin.Case[PostGameGraphsViewController](),
		propbin.Case[ReportPlayerViewController](),
		propbin.Case[MuteListViewController](),
		propbin.Case[CheatMenuViewController](),
		propbin.Case[ReplayTimelineViewController](),
		propbin.Case[ReplayCameraViewController](),
		propbin.Case[ObserverGraphsViewController](),
		propbin.Case[ObserverItemsViewController](),
	)
}
