package schema

import propbin "github.com/reoring/propbin"

// EnumScriptBlock is one statement of a script sequence.
type EnumScriptBlock interface{ scriptBlock() }

// EnumScriptValueGet produces a value for a script statement.
type EnumScriptValueGet interface{ scriptValueGet() }

// EnumScriptCondition is a boolean test evaluated by branching blocks.
type EnumScriptCondition interface{ scriptCondition() }

// ScriptVarType enumerates the storage types of script variables.
type ScriptVarType uint8

const (
	ScriptVarFloat ScriptVarType = iota
	ScriptVarInt
	ScriptVarBool
	ScriptVarString
	ScriptVarVector
	ScriptVarHash
)

// CompareOp enumerates comparison operators.
type CompareOp uint32

const (
	CompareEqual CompareOp = iota
	CompareNotEqual
	CompareLess
	CompareLessEqual
	CompareGreater
	CompareGreaterEqual
)

type ScriptSequence struct {
	Blocks []EnumScriptBlock `bin:"blocks,optional"`
}

type RootScriptSequence struct {
	Blocks         []EnumScriptBlock               `bin:"blocks,optional"`
	ScriptName     *string                         `bin:"scriptName,optional"`
	InputVars      []ScriptVariable                `bin:"inputVars,optional"`
	OutputVars     []ScriptVariable                `bin:"outputVars,optional"`
	LocalVars      []ScriptVariable                `bin:"localVars,optional"`
	Metadata       *ScriptMetadata                 `bin:"metadata,optional"`
	Functions      map[propbin.Hash]ScriptFunction `bin:"functions,optional"`
	PathHashToSelf *propbin.PathHash               `bin:"pathHashToSelf,optional"`
}

type ScriptVariable struct {
	Name    string             `bin:"name"`
	VarType ScriptVarType      `bin:"varType"`
	Default EnumScriptValueGet `bin:"default,optional"`
}

type ScriptMetadata struct {
	Author      *string  `bin:"author,optional"`
	Description *string  `bin:"description,optional"`
	Tags        []string `bin:"tags,optional"`
	Version     *uint32  `bin:"version,optional"`
}

type ScriptFunction struct {
	Params   []ScriptVariable `bin:"params,optional"`
	Sequence *ScriptSequence  `bin:"sequence,indirect"`
}

// Blocks.

type LoopBlock struct {
	Count    EnumScriptValueGet `bin:"count,optional"`
	Sequence *ScriptSequence    `bin:"sequence,optional,indirect"`
}

type WhileBlock struct {
	Condition EnumScriptCondition `bin:"condition"`
	Sequence  *ScriptSequence     `bin:"sequence,optional,indirect"`
}

type IfBlock struct {
	Condition    EnumScriptCondition `bin:"condition"`
	IfSequence   *ScriptSequence     `bin:"ifSequence,optional,indirect"`
	ElseSequence *ScriptSequence     `bin:"elseSequence,optional,indirect"`
}

type ForEachBlock struct {
	Collection EnumScriptValueGet `bin:"collection"`
	ItemVar    string             `bin:"itemVar"`
	Sequence   *ScriptSequence    `bin:"sequence,optional,indirect"`
}

type SequenceBlock struct {
	Sequence  *ScriptSequence `bin:"sequence,indirect"`
	IsEnabled *bool           `bin:"isEnabled,optional"`
}

type SetVarBlock struct {
	Dest  string             `bin:"dest"`
	Value EnumScriptValueGet `bin:"value"`
}

type DelayBlock struct {
	Seconds EnumScriptValueGet `bin:"seconds"`
}

type CallFunctionBlock struct {
	Function propbin.Hash         `bin:"function"`
	Args     []EnumScriptValueGet `bin:"args,optional"`
	Result   *string              `bin:"result,optional"`
}

type CommentBlock struct {
	Comment *string `bin:"comment,optional"`
}

type BreakBlock struct{}

type ReturnBlock struct{}

// NoOpBlock is the statement a null block pointer stands for.
type NoOpBlock struct{}

// Value gets.

type FloatGet struct {
	Value *float32 `bin:"value,optional"`
}

type IntGet struct {
	Value *int32 `bin:"value,optional"`
}

type BoolGet struct {
	Value *bool `bin:"value,optional"`
}

type StringGet struct {
	Value *string `bin:"value,optional"`
}

type VectorGet struct {
	Value *propbin.Vec3 `bin:"value,optional"`
}

type ColorGet struct {
	Value *propbin.Color `bin:"value,optional"`
}

type HashGet struct {
	Value *propbin.Hash `bin:"value,optional"`
}

type VarGet struct {
	Name string `bin:"name"`
}

type TableGet struct {
	Table propbin.Hash `bin:"table"`
	Key   string       `bin:"key"`
}

type FloatTableGet struct {
	Table propbin.Hash `bin:"table"`
	Index *uint32      `bin:"index,optional"`
}

type ListGet struct {
	Values []EnumScriptValueGet `bin:"values,optional"`
}

type MathGet struct {
	Op    uint8              `bin:"op"`
	Left  EnumScriptValueGet `bin:"left"`
	Right EnumScriptValueGet `bin:"right,optional"`
}

type GameTimeGet struct{}

// Conditions.

type AndCondition struct {
	Conditions []EnumScriptCondition `bin:"conditions,optional"`
}

type OrCondition struct {
	Conditions []EnumScriptCondition `bin:"conditions,optional"`
}

type NotCondition struct {
	Condition EnumScriptCondition `bin:"condition"`
}

type CompareFloatCondition struct {
	Left     EnumScriptValueGet `bin:"left"`
	Operator *CompareOp         `bin:"operator,optional"`
	Right    EnumScriptValueGet `bin:"right"`
}

type CompareIntCondition struct {
	Left     EnumScriptValueGet `bin:"left"`
	Operator *CompareOp         `bin:"operator,optional"`
	Right    EnumScriptValueGet `bin:"right"`
}

type BoolCondition struct {
	Value EnumScriptValueGet `bin:"value"`
}

type HasVarCondition struct {
	Name string `bin:"name"`
}

type TrueCondition struct{}

type FalseCondition struct{}

func (*LoopBlock) scriptBlock()         {}
func (*WhileBlock) scriptBlock()        {}
func (*IfBlock) scriptBlock()           {}
func (*ForEachBlock) scriptBlock()      {}
func (*SequenceBlock) scriptBlock()     {}
func (*SetVarBlock) scriptBlock()       {}
func (*DelayBlock) scriptBlock()        {}
func (*CallFunctionBlock) scriptBlock() {}
func (*CommentBlock) scriptBlock()      {}
func (*BreakBlock) scriptBlock()        {}
func (*ReturnBlock) scriptBlock()       {}
func (*NoOpBlock) scriptBlock()         {}

func (*FloatGet) scriptValueGet()      {}
func (*IntGet) scriptValueGet()        {}
func (*BoolGet) scriptValueGet()       {}
func (*StringGet) scriptValueGet()     {}
func (*VectorGet) scriptValueGet()     {}
func (*ColorGet) scriptValueGet()      {}
func (*HashGet) scriptValueGet()       {}
func (*VarGet) scriptValueGet()        {}
func (*TableGet) scriptValueGet()      {}
func (*FloatTableGet) scriptValueGet() {}
func (*ListGet) scriptValueGet()       {}
func (*MathGet) scriptValueGet()       {}
func (*GameTimeGet) scriptValueGet()   {}

func (*AndCondition) scriptCondition()          {}
func (*OrCondition) scriptCondition()           {}
func (*NotCondition) scriptCondition()          {}
func (*CompareFloatCondition) scriptCondition() {}
func (*CompareIntCondition) scriptCondition()   {}
func (*BoolCondition) scriptCondition()         {}
func (*HasVarCondition) scriptCondition()       {}
func (*TrueCondition) scriptCondition()         {}
func (*FalseCondition) scriptCondition()        {}

func registerScript(b *propbin.Builder) {
	propbin.Record[RootScriptSequence](b, "RootScriptSequence", propbin.AsAsset())
	propbin.Record[ScriptSequence](b, "ScriptSequence")
	propbin.Record[ScriptVariable](b, "ScriptVariable")
	propbin.Record[ScriptMetadata](b, "ScriptMetadata")
	propbin.Record[ScriptFunction](b, "ScriptFunction")

	propbin.Record[LoopBlock](b, "LoopBlock")
	propbin.Record[WhileBlock](b, "WhileBlock")
	propbin.Record[IfBlock](b, "IfBlock")
	propbin.Record[ForEachBlock](b, "ForEachBlock")
	propbin.Record[SequenceBlock](b, "SequenceBlock")
	propbin.Record[SetVarBlock](b, "SetVarBlock")
	propbin.Record[DelayBlock](b, "DelayBlock")
	propbin.Record[CallFunctionBlock](b, "CallFunctionBlock")
	propbin.Record[CommentBlock](b, "CommentBlock")
	propbin.Record[BreakBlock](b, "BreakBlock")
	propbin.Record[ReturnBlock](b, "ReturnBlock")
	propbin.Record[NoOpBlock](b, "NoOpBlock")
	propbin.Variant[EnumScriptBlock](b, "EnumScriptBlock", append([]propbin.CaseSpec{
		propbin.Case[LoopBlock](),
		propbin.Case[WhileBlock](),
		propbin.Case[IfBlock](),
		propbin.Case[ForEachBlock](),
		propbin.Case[SequenceBlock](),
		propbin.Case[SetVarBlock](),
		propbin.Case[DelayBlock](),
		propbin.Case[CallFunctionBlock](),
		propbin.Case[CommentBlock](),
		propbin.Case[BreakBlock](),
		propbin.Case[ReturnBlock](),
		propbin.SentinelCase[NoOpBlock](),
	}, gameplayBlockCases()...)...)

	propbin.Record[FloatGet](b, "FloatGet")
	propbin.Record[IntGet](b, "IntGet")
	propbin.Record[BoolGet](b, "BoolGet")
	propbin.Record[StringGet](b, "StringGet")
	propbin.Record[VectorGet](b, "VectorGet")
	propbin.Record[ColorGet](b, "ColorGet")
	propbin.Record[HashGet](b, "HashGet")
	propbin.Record[VarGet](b, "VarGet")
	propbin.Record[TableGet](b, "TableGet")
	propbin.Record[FloatTableGet](b, "FloatTableGet")
	propbin.Record[ListGet](b, "ListGet")
	propbin.Record[MathGet](b, "MathGet")
	propbin.Record[GameTimeGet](b, "GameTimeGet")
	propbin.Variant[EnumScriptValueGet](b, "EnumScriptValueGet", append([]propbin.CaseSpec{
		propbin.Case[FloatGet](),
		propbin.Case[IntGet](),
		propbin.Case[BoolGet](),
		propbin.Case[StringGet](),
		propbin.Case[VectorGet](),
		propbin.Case[ColorGet](),
		propbin.Case[HashGet](),
		propbin.Case[VarGet](),
		propbin.Case[TableGet](),
		propbin.Case[FloatTableGet](),
		propbin.Case[ListGet](),
		propbin.Case[MathGet](),
		propbin.Case[GameTimeGet](),
	}, gameplayValueCases()...)...)

	propbin.Record[AndCondition](b, "AndCondition")
	propbin.Record[OrCondition](b, "OrCondition")
	propbin.Record[NotCondition](b, "NotCondition")
	propbin.Record[CompareFloatCondition](b, "CompareFloatCondition")
	propbin.Record[CompareIntCondition](b, "CompareIntCondition")
	propbin.Record[BoolCondition](b, "BoolCondition")
	propbin.Record[HasVarCondition](b, "HasVarCondition")
	propbin.Record[TrueCondition](b, "TrueCondition")
	propbin.Record[FalseCondition](b, "FalseCondition")
	propbin.Variant[EnumScriptCondition](b, "EnumScriptCondition", append([]propbin.CaseSpec{
		propbin.Case[AndCondition](),
		propbin.Case[OrCondition](),
		propbin.Case[NotCondition](),
		propbin.Case[CompareFloatCondition](),
		propbin.Case[CompareIntCondition](),
		propbin.Case[BoolCondition](),
		propbin.Case[HasVarCondition](),
		propbin.Case[TrueCondition](),
		propbin.Case[FalseCondition](),
	}, gameplayConditionCases()...)...)
}
