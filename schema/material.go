package schema

import propbin "github.com/reoring/propbin"

// EnumDynamicMaterialDriver yields a float that drives a material parameter.
type EnumDynamicMaterialDriver interface{ materialDriver() }

// EnumDynamicMaterialBoolDriver yields a bool that toggles material state.
type EnumDynamicMaterialBoolDriver interface{ materialBoolDriver() }

// StaticMaterialDef is a material asset.
type StaticMaterialDef struct {
	Name             string                            `bin:"name"`
	Type             *uint32                           `bin:"type,optional"`
	DefaultTechnique *string                           `bin:"defaultTechnique,optional"`
	SamplerValues    []StaticMaterialShaderSamplerDef  `bin:"samplerValues,optional"`
	ParamValues      []StaticMaterialShaderParamDef    `bin:"paramValues,optional"`
	Switches         []StaticMaterialSwitchDef         `bin:"switches,optional"`
	ShaderMacros     map[string]string                 `bin:"shaderMacros,optional"`
	Techniques       []StaticMaterialTechniqueDef      `bin:"techniques,optional"`
	ChildTechniques  []StaticMaterialChildTechniqueDef `bin:"childTechniques,optional"`
	DynamicMaterial  *DynamicMaterialDef               `bin:"dynamicMaterial,optional"`
	PathHashToSelf   *propbin.PathHash                 `bin:"pathHashToSelf,optional"`
}

type StaticMaterialShaderSamplerDef struct {
	SamplerName        string                  `bin:"samplerName"`
	TextureName        *string                 `bin:"textureName,optional"`
	TexturePath        *string                 `bin:"texturePath,optional"`
	AddressU           *uint32                 `bin:"addressU,optional"`
	AddressV           *uint32                 `bin:"addressV,optional"`
	AddressW           *uint32                 `bin:"addressW,optional"`
	FilterMin          *uint32                 `bin:"filterMin,optional"`
	FilterMag          *uint32                 `bin:"filterMag,optional"`
	FilterMip          *uint32                 `bin:"filterMip,optional"`
	UncensoredTextures map[propbin.Hash]string `bin:"uncensoredTextures,optional"`
}

type StaticMaterialShaderParamDef struct {
	Name          string        `bin:"name"`
	Value         *propbin.Vec4 `bin:"value,optional"`
	IsPerInstance *bool         `bin:"isPerInstance,optional"`
}

type StaticMaterialSwitchDef struct {
	Name string `bin:"name"`
	On   *bool  `bin:"on,optional"`
}

type StaticMaterialTechniqueDef struct {
	Name   string                  `bin:"name"`
	Passes []StaticMaterialPassDef `bin:"passes,optional"`
}

type StaticMaterialChildTechniqueDef struct {
	Name         string            `bin:"name"`
	ParentName   string            `bin:"parentName"`
	ShaderMacros map[string]string `bin:"shaderMacros,optional"`
}

type StaticMaterialPassDef struct {
	Shader                propbin.Link                   `bin:"shader"`
	BlendEnable           *bool                          `bin:"blendEnable,optional"`
	CullEnable            *bool                          `bin:"cullEnable,optional"`
	DepthEnable           *bool                          `bin:"depthEnable,optional"`
	WriteMask             *uint32                        `bin:"writeMask,optional"`
	DepthCompareFunc      *uint32                        `bin:"depthCompareFunc,optional"`
	SrcColorBlendFactor   *uint32                        `bin:"srcColorBlendFactor,optional"`
	DstColorBlendFactor   *uint32                        `bin:"dstColorBlendFactor,optional"`
	SrcAlphaBlendFactor   *uint32                        `bin:"srcAlphaBlendFactor,optional"`
	DstAlphaBlendFactor   *uint32                        `bin:"dstAlphaBlendFactor,optional"`
	PolygonDepthBiasSlope *float32                       `bin:"polygonDepthBiasSlope,optional"`
	ShaderMacros          map[string]string              `bin:"shaderMacros,optional"`
	ParamValues           []StaticMaterialShaderParamDef `bin:"paramValues,optional"`
}

type DynamicMaterialDef struct {
	Parameters   []DynamicMaterialParameterDef   `bin:"parameters,optional"`
	Textures     []DynamicMaterialTextureSwapDef `bin:"textures,optional"`
	StaticSwitch *DynamicMaterialStaticSwitch    `bin:"staticSwitch,optional"`
}

type DynamicMaterialParameterDef struct {
	Name    string                    `bin:"name"`
	Enabled *bool                     `bin:"enabled,optional"`
	Driver  EnumDynamicMaterialDriver `bin:"driver,optional"`
}

type DynamicMaterialTextureSwapDef struct {
	Name    string                             `bin:"name"`
	Enabled *bool                              `bin:"enabled,optional"`
	Options []DynamicMaterialTextureSwapOption `bin:"options,optional"`
}

type DynamicMaterialTextureSwapOption struct {
	Driver      EnumDynamicMaterialBoolDriver `bin:"driver"`
	TextureName string                        `bin:"textureName"`
}

type DynamicMaterialStaticSwitch struct {
	Name    string                        `bin:"name"`
	Enabled *bool                         `bin:"enabled,optional"`
	Driver  EnumDynamicMaterialBoolDriver `bin:"driver,optional"`
}

type SwitchMaterialDriverElement struct {
	Condition EnumDynamicMaterialBoolDriver `bin:"mCondition,optional"`
	Value     EnumDynamicMaterialDriver     `bin:"mValue,optional"`
}

// Float drivers.

type FloatLiteralMaterialDriver struct {
	Value *float32 `bin:"mValue,optional"`
}

type TimeMaterialDriver struct{}

type SineMaterialDriver struct {
	Driver    EnumDynamicMaterialDriver `bin:"mDriver,optional"`
	Frequency *float32                  `bin:"mFrequency,optional"`
	Scale     *float32                  `bin:"mScale,optional"`
	Bias      *float32                  `bin:"mBias,optional"`
}

type SwitchMaterialDriver struct {
	Elements     []SwitchMaterialDriverElement `bin:"mElements,optional"`
	DefaultValue EnumDynamicMaterialDriver     `bin:"mDefaultValue,optional"`
}

type BlendingSwitchMaterialDriver struct {
	Elements     []SwitchMaterialDriverElement `bin:"mElements,optional"`
	DefaultValue EnumDynamicMaterialDriver     `bin:"mDefaultValue,optional"`
	BlendTime    *float32                      `bin:"mBlendTime,optional"`
}

type LerpMaterialDriver struct {
	StartValue     *float32                      `bin:"mStartValue,optional"`
	EndValue       *float32                      `bin:"mEndValue,optional"`
	BoolDriver     EnumDynamicMaterialBoolDriver `bin:"mBoolDriver,optional"`
	TurnOnTimeSec  *float32                      `bin:"mTurnOnTimeSec,optional"`
	TurnOffTimeSec *float32                      `bin:"mTurnOffTimeSec,optional"`
}

type SpecificColorMaterialDriver struct {
	Color *propbin.Vec4 `bin:"mColor,optional"`
}

type MaxMaterialDriver struct {
	Drivers []EnumDynamicMaterialDriver `bin:"mDrivers,optional"`
}

type MinMaterialDriver struct {
	Drivers []EnumDynamicMaterialDriver `bin:"mDrivers,optional"`
}

type RemapFloatMaterialDriver struct {
	Driver    EnumDynamicMaterialDriver `bin:"mDriver,optional"`
	MinValue  *float32                  `bin:"mMinValue,optional"`
	MaxValue  *float32                  `bin:"mMaxValue,optional"`
	OutputMin *float32                  `bin:"mOutputMin,optional"`
	OutputMax *float32                  `bin:"mOutputMax,optional"`
}

// Bool drivers.

type HasBuffDynamicMaterialBoolDriver struct {
	ScriptName *string `bin:"mScriptName,optional"`
	Deprecated *bool   `bin:"mDeprecated,optional"`
}

type IsDeadDynamicMaterialBoolDriver struct{}

type IsMovingDynamicMaterialBoolDriver struct{}

type AllTrueMaterialDriver struct {
	Drivers []EnumDynamicMaterialBoolDriver `bin:"mDrivers,optional"`
}

type OneTrueMaterialDriver struct {
	Drivers []EnumDynamicMaterialBoolDriver `bin:"mDrivers,optional"`
}

type NotMaterialDriver struct {
	Driver EnumDynamicMaterialBoolDriver `bin:"mDriver"`
}

type FloatComparisonMaterialDriver struct {
	Operator *CompareOp                `bin:"mOperator,optional"`
	ValueA   EnumDynamicMaterialDriver `bin:"mValueA,optional"`
	ValueB   EnumDynamicMaterialDriver `bin:"mValueB,optional"`
}

func (*FloatLiteralMaterialDriver) materialDriver()   {}
func (*TimeMaterialDriver) materialDriver()           {}
func (*SineMaterialDriver) materialDriver()           {}
func (*SwitchMaterialDriver) materialDriver()         {}
func (*BlendingSwitchMaterialDriver) materialDriver() {}
func (*LerpMaterialDriver) materialDriver()           {}
func (*SpecificColorMaterialDriver) materialDriver()  {}
func (*MaxMaterialDriver) materialDriver()            {}
func (*MinMaterialDriver) materialDriver()            {}
func (*RemapFloatMaterialDriver) materialDriver()     {}

func (*HasBuffDynamicMaterialBoolDriver) materialBoolDriver()  {}
func (*IsDeadDynamicMaterialBoolDriver) materialBoolDriver()   {}
func (*IsMovingDynamicMaterialBoolDriver) materialBoolDriver() {}
func (*AllTrueMaterialDriver) materialBoolDriver()             {}
func (*OneTrueMaterialDriver) materialBoolDriver()             {}
func (*NotMaterialDriver) materialBoolDriver()                 {}
func (*FloatComparisonMaterialDriver) materialBoolDriver()     {}

func registerMaterial(b *propbin.Builder) {
	propbin.Record[StaticMaterialDef](b, "StaticMaterialDef", propbin.AsAsset())
	propbin.Record[StaticMaterialShaderSamplerDef](b, "StaticMaterialShaderSamplerDef")
	propbin.Record[StaticMaterialShaderParamDef](b, "StaticMaterialShaderParamDef")
	propbin.Record[StaticMaterialSwitchDef](b, "StaticMaterialSwitchDef")
	propbin.Record[StaticMaterialTechniqueDef](b, "StaticMaterialTechniqueDef")
	propbin.Record[StaticMaterialChildTechniqueDef](b, "StaticMaterialChildTechniqueDef")
	propbin.Record[StaticMaterialPassDef](b, "StaticMaterialPassDef")
	propbin.Record[DynamicMaterialDef](b, "DynamicMaterialDef")
	propbin.Record[DynamicMaterialParameterDef](b, "DynamicMaterialParameterDef")
	propbin.Record[DynamicMaterialTextureSwapDef](b, "DynamicMaterialTextureSwapDef")
	propbin.Record[DynamicMaterialTextureSwapOption](b, "DynamicMaterialTextureSwapOption")
	propbin.Record[DynamicMaterialStaticSwitch](b, "DynamicMaterialStaticSwitch")
	propbin.Record[SwitchMaterialDriverElement](b, "SwitchMaterialDriverElement")

	propbin.Record[FloatLiteralMaterialDriver](b, "FloatLiteralMaterialDriver")
	propbin.Record[TimeMaterialDriver](b, "TimeMaterialDriver")
	propbin.Record[SineMaterialDriver](b, "SineMaterialDriver")
	propbin.Record[SwitchMaterialDriver](b, "SwitchMaterialDriver")
	propbin.Record[BlendingSwitchMaterialDriver](b, "BlendingSwitchMaterialDriver")
	propbin.Record[LerpMaterialDriver](b, "LerpMaterialDriver")
	propbin.Record[SpecificColorMaterialDriver](b, "SpecificColorMaterialDriver")
	propbin.Record[MaxMaterialDriver](b, "MaxMaterialDriver")
	propbin.Record[MinMaterialDriver](b, "MinMaterialDriver")
	propbin.Record[RemapFloatMaterialDriver](b, "RemapFloatMaterialDriver")
	propbin.Variant[EnumDynamicMaterialDriver](b, "EnumDynamicMaterialDriver",
		propbin.Case[FloatLiteralMaterialDriver](),
		propbin.Case[TimeMaterialDriver](),
		propbin.Case[SineMaterialDriver](),
		propbin.Case[SwitchMaterialDriver](),
		propbin.Case[BlendingSwitchMaterialDriver](),
		propbin.Case[LerpMaterialDriver](),
		propbin.Case[SpecificColorMaterialDriver](),
		propbin.Case[MaxMaterialDriver](),
		propbin.Case[MinMaterialDriver](),
		propbin.Case[RemapFloatMaterialDriver](),
	)

	propbin.Record[HasBuffDynamicMaterialBoolDriver](b, "HasBuffDynamicMaterialBoolDriver")
	propbin.Record[IsDeadDynamicMaterialBoolDriver](b, "IsDeadDynamicMaterialBoolDriver")
	propbin.Record[IsMovingDynamicMaterialBoolDriver](b, "IsMovingDynamicMaterialBoolDriver")
	propbin.Record[AllTrueMaterialDriver](b, "AllTrueMaterialDriver")
	propbin.Record[OneTrueMaterialDriver](b, "OneTrueMaterialDriver")
	propbin.Record[NotMaterialDriver](b, "NotMaterialDriver")
	propbin.Record[FloatComparisonMaterialDriver](b, "FloatComparisonMaterialDriver")
	propbin.Variant[EnumDynamicMaterialBoolDriver](b, "EnumDynamicMaterialBoolDriver",
		propbin.Case[HasBuffDynamicMaterialBoolDriver](),
		propbin.Case[IsDeadDynamicMaterialBoolDriver](),
		propbin.Case[IsMovingDynamicMaterialBoolDriver](),
		propbin.Case[AllTrueMaterialDriver](),
		propbin.Case[OneTrueMaterialDriver](),
		propbin.Case[NotMaterialDriver](),
		propbin.Case[FloatComparisonMaterialDriver](),
	)
}
