package schema

import propbin "github.com/reoring/propbin"

// EnumUiTextureData is the texture source of an icon element.
type EnumUiTextureData interface{ uiTextureData() }

// EnumUiPosition places an element inside its scene.
type EnumUiPosition interface{ uiPosition() }

// UiSceneData is a UI scene asset.
type UiSceneData struct {
	Name           string              `bin:"name"`
	Layer          *uint32             `bin:"layer,optional"`
	Parent         *propbin.Link       `bin:"parentScene,optional"`
	Enabled        *bool               `bin:"enabled,optional"`
	Elements       []propbin.Link      `bin:"elements,optional"`
	Buttons        []UIButtonData      `bin:"buttons,optional"`
	Icons          []UiElementIconData `bin:"icons,optional"`
	Texts          []UiElementTextData `bin:"texts,optional"`
	PathHashToSelf *propbin.PathHash   `bin:"pathHashToSelf,optional"`
}

type UIButtonData struct {
	Name                         string               `bin:"name"`
	Scene                        *propbin.Link        `bin:"scene,optional"`
	Enabled                      *bool                `bin:"enabled,optional"`
	IsActive                     *bool                `bin:"isActive,optional"`
	HitRegionElement             *propbin.Link        `bin:"hitRegionElement,optional"`
	DefaultStateElements         *UIButtonState       `bin:"defaultStateElements,optional"`
	InactiveStateElements        *UIButtonState       `bin:"inactiveStateElements,optional"`
	HoverStateElements           *UIButtonState       `bin:"hoverStateElements,optional"`
	ClickedStateElements         *UIButtonState       `bin:"clickedStateElements,optional"`
	SelectedStateElements        *UIButtonState       `bin:"selectedStateElements,optional"`
	SelectedHoverStateElements   *UIButtonState       `bin:"selectedHoverStateElements,optional"`
	SelectedClickedStateElements *UIButtonState       `bin:"selectedClickedStateElements,optional"`
	SoundEvents                  *UIButtonSoundEvents `bin:"soundEvents,optional"`
	ClickReleaseParticleElement  *propbin.Link        `bin:"clickReleaseParticleElement,optional"`
	IsEnabled                    *bool                `bin:"isEnabled,optional"`
	DragType                     *uint8               `bin:"dragType,optional"`
	ClickOnPress                 *bool                `bin:"clickOnPress,optional"`
	TooltipText                  *string              `bin:"tooltipTraKey,optional"`
	Position                     EnumUiPosition       `bin:"position,optional"`
	HotkeyName                   *string              `bin:"hotkeyName,optional"`
	HotkeyModifiers              *uint32              `bin:"hotkeyModifiers,optional"`
	RenderOrder                  *int32               `bin:"renderOrder,optional"`
}

type UIButtonState struct {
	DisplayElements  []propbin.Link `bin:"displayElementList,optional"`
	TextFrameElement *propbin.Link  `bin:"textFrameElement,optional"`
	TextColor        *propbin.Color `bin:"textColor,optional"`
}

type UIButtonSoundEvents struct {
	MouseUpEvent         *string `bin:"mouseUpEvent,optional"`
	MouseDownEvent       *string `bin:"mouseDownEvent,optional"`
	RolloverEvent        *string `bin:"rolloverEvent,optional"`
	MouseUpSelectedEvent *string `bin:"mouseUpSelectedEvent,optional"`
	DisabledEvent        *string `bin:"disabledEvent,optional"`
}

type UiElementIconData struct {
	Name            string            `bin:"name"`
	Scene           *propbin.Link     `bin:"scene,optional"`
	Enabled         *bool             `bin:"enabled,optional"`
	Layer           *uint32           `bin:"layer,optional"`
	Position        EnumUiPosition    `bin:"position,optional"`
	TextureData     EnumUiTextureData `bin:"textureData,optional"`
	Color           *propbin.Color    `bin:"color,optional"`
	BlendMode       *uint8            `bin:"blendMode,optional"`
	FlipX           *bool             `bin:"flipX,optional"`
	FlipY           *bool             `bin:"flipY,optional"`
	PerPixelHitTest *bool             `bin:"perPixelHitTest,optional"`
}

type UiElementTextData struct {
	Name                    string         `bin:"name"`
	Scene                   *propbin.Link  `bin:"scene,optional"`
	Enabled                 *bool          `bin:"enabled,optional"`
	Layer                   *uint32        `bin:"layer,optional"`
	Position                EnumUiPosition `bin:"position,optional"`
	TraKey                  *string        `bin:"traKey,optional"`
	FontDescription         *propbin.Link  `bin:"fontDescription,optional"`
	TextAlignmentHorizontal *uint8         `bin:"textAlignmentHorizontal,optional"`
	TextAlignmentVertical   *uint8         `bin:"textAlignmentVertical,optional"`
	WrappingMode            *uint8         `bin:"wrappingMode,optional"`
}

type UiElementRect struct {
	Position               *propbin.Vec2 `bin:"position,optional"`
	Size                   *propbin.Vec2 `bin:"size,optional"`
	SourceResolutionWidth  *uint16       `bin:"sourceResolutionWidth,optional"`
	SourceResolutionHeight *uint16       `bin:"sourceResolutionHeight,optional"`
}

type AnchorSingle struct {
	Anchor *propbin.Vec2 `bin:"anchor,optional"`
}

type AnchorDouble struct {
	AnchorLeft  *propbin.Vec2 `bin:"anchorLeft,optional"`
	AnchorRight *propbin.Vec2 `bin:"anchorRight,optional"`
}

type UiPositionRect struct {
	UIRect            *UiElementRect `bin:"uIRect,optional"`
	Anchors           *AnchorSingle  `bin:"anchors,optional"`
	IgnoreGlobalScale *bool          `bin:"ignoreGlobalScale,optional"`
}

type UiPositionFullScreen struct{}

type AtlasData struct {
	TextureName                   string        `bin:"mTextureName"`
	TextureSourceResolutionWidth  *uint32       `bin:"mTextureSourceResolutionWidth,optional"`
	TextureSourceResolutionHeight *uint32       `bin:"mTextureSourceResolutionHeight,optional"`
	TextureUVs                    *propbin.Vec4 `bin:"mTextureUVs,optional"`
}

type NineSliceData struct {
	TextureName      string        `bin:"mTextureName"`
	TextureUVs       *propbin.Vec4 `bin:"mTextureUVs,optional"`
	LeftRightWidths  *propbin.Vec2 `bin:"leftRightWidths,optional"`
	TopBottomHeights *propbin.Vec2 `bin:"topBottomHeights,optional"`
}

func (*AtlasData) uiTextureData()     {}
func (*NineSliceData) uiTextureData() {}

func (*UiPositionRect) uiPosition()       {}
func (*UiPositionFullScreen) uiPosition() {}

func registerUI(b *propbin.Builder) {
	propbin.Record[UiSceneData](b, "UiSceneData", propbin.AsAsset())
	propbin.Record[UIButtonData](b, "UiElementGroupButtonData")
	propbin.Record[UIButtonState](b, "UiElementGroupButtonState")
	propbin.Record[UIButtonSoundEvents](b, "UiElementGroupButtonSoundEvents")
	propbin.Record[UiElementIconData](b, "UiElementIconData")
	propbin.Record[UiElementTextData](b, "UiElementTextData")
	propbin.Record[UiElementRect](b, "UiElementRect")
	propbin.Record[AnchorSingle](b, "AnchorSingle")
	propbin.Record[AnchorDouble](b, "AnchorDouble")
	propbin.Record[UiPositionRect](b, "UiPositionRect")
	propbin.Record[UiPositionFullScreen](b, "UiPositionFullScreen")
	propbin.Record[AtlasData](b, "AtlasData")
	propbin.Record[NineSliceData](b, "NineSliceData")
	propbin.Variant[EnumUiTextureData](b, "EnumUiTextureData",
		propbin.Case[AtlasData](),
		propbin.Case[NineSliceData](),
	)
	propbin.Variant[EnumUiPosition](b, "EnumUiPosition",
		propbin.Case[UiPositionRect](),
		propbin.Case[UiPositionFullScreen](),
	)
}
