// Package quinex parses free-text quantity expressions into a structured
// form: a sequence of normalized quantities each carrying a numeric value,
// prefixed/suffixed units linked to a unit ontology, prefixed/suffixed
// modifiers, and any uncertainty expression.
package quinex

import "github.com/shopspring/decimal"

// SuperstructureType classifies the overall shape of a parsed expression.
type SuperstructureType string

const (
	TypeSingleQuantity SuperstructureType = "single_quantity"
	TypeRange          SuperstructureType = "range"
	TypeList           SuperstructureType = "list"
	TypeRatio          SuperstructureType = "ratio"
	TypeMultidim       SuperstructureType = "multidim"
	TypeUnknown        SuperstructureType = "unknown"
)

// Success reflects the three-valued confidence flag a parse carries.
type Success string

const (
	SuccessTrue    Success = "true"
	SuccessFalse   Success = "false"
	SuccessUnknown Success = "unknown"
)

// ModifierSymbol is a normalized symbolic operator for a quantity modifier.
type ModifierSymbol string

const (
	ModEqual       ModifierSymbol = "="
	ModNotEqual    ModifierSymbol = "!="
	ModTolerance   ModifierSymbol = "±"
	ModLess        ModifierSymbol = "<"
	ModGreater     ModifierSymbol = ">"
	ModLessEq      ModifierSymbol = "≤"
	ModGreaterEq   ModifierSymbol = "≥"
	ModMuchGreater ModifierSymbol = ">>"
	ModMuchLess    ModifierSymbol = "<<"
	ModApprox      ModifierSymbol = "~"
	ModApproxLess  ModifierSymbol = "~<"
	ModApproxGtEq  ModifierSymbol = "~>="
	ModLessApprox  ModifierSymbol = "<~"
	ModGreatApprox ModifierSymbol = ">~"
	ModGreatApproxEq ModifierSymbol = ">~="
	ModLessApproxEq  ModifierSymbol = "<~="
	ModDiamond1    ModifierSymbol = "<>"
	ModDiamond2    ModifierSymbol = "><"
	ModDiamondEq   ModifierSymbol = "<>="
	ModProportional ModifierSymbol = "∝"
	ModMean        ModifierSymbol = "mean"
	ModMedian      ModifierSymbol = "median"
	ModPlus        ModifierSymbol = "+"
	ModMinus       ModifierSymbol = "-"
)

// UncertaintyType classifies a recognized uncertainty expression.
type UncertaintyType string

const (
	UncertaintyTolerance UncertaintyType = "tolerance"
	UncertaintySD        UncertaintyType = "standard_deviation"
	UncertaintyCI        UncertaintyType = "CI"
	UncertaintyUI        UncertaintyType = "UI"
	UncertaintyCrI       UncertaintyType = "CrI"
	UncertaintyUnknown   UncertaintyType = "unknown"
)

// NormalizedValue is the numeric interpretation of a Value's raw text.
// Exactly one of NumericValue/IsImprecise is meaningful: a finite numeric
// value, or an imprecise quantity ("a few", "several") with no number.
type NormalizedValue struct {
	NumericValue     *decimal.Decimal
	IsImprecise      bool
	OrderOfMagnitude *int
}

// Value is the numeric slot of a quantity.
type Value struct {
	Text       string
	Normalized *NormalizedValue
}

// UnitComponent is one decomposed term of a (possibly compound) unit.
type UnitComponent struct {
	Surface  string
	Exponent int
	URI      string
	Year     *int
}

// UnitReference is the prefixed- or suffixed-unit slot of a quantity.
type UnitReference struct {
	Text         string
	IsEllipsed   bool
	EllipsedText string
	Normalized   []UnitComponent
	// CollapsedURI is set when a multi-component compound reduces to a
	// single known unit via dimensional analysis (spec.md §4.3 compound
	// aggregation). Empty when no single-class collapse applies.
	CollapsedURI string
}

// Modifier is the prefixed- or suffixed-modifier slot of a quantity.
type Modifier struct {
	Text       string
	Normalized *ModifierSymbol
}

// UncertaintyUnitSlots holds the linked units found inside an uncertainty
// expression, keyed by where they appeared relative to the bounds.
type UncertaintyUnitSlots struct {
	IsSameAsMean bool
	Prefixed     *UnitReference
	Suffixed     *UnitReference
	PrefixedLB   *UnitReference
	SuffixedLB   *UnitReference
	PrefixedUB   *UnitReference
	SuffixedUB   *UnitReference
}

// NormalizedUncertainty is the parsed form of an uncertainty expression.
type NormalizedUncertainty struct {
	Type  UncertaintyType
	Lower decimal.Decimal
	Upper decimal.Decimal
	Unit  *UncertaintyUnitSlots
}

// Uncertainty is an uncertainty-expression slot of a quantity.
type Uncertainty struct {
	Text       string
	Normalized *NormalizedUncertainty
}

// NormalizedQuantity holds the seven positional slots of a single parsed
// quantity. Every slot is independently nullable.
type NormalizedQuantity struct {
	PrefixedModifier             *Modifier
	PrefixedUnit                 *UnitReference
	Value                        *Value
	UncertaintyExprPreUnit       *Uncertainty
	SuffixedUnit                 *UnitReference
	UncertaintyExprPostUnit      *Uncertainty
	SuffixedModifier             *Modifier

	// Simplify collapses the two uncertainty slots into this field when
	// ParseOptions.Simplify was requested; nil otherwise.
	Uncertainty *Uncertainty
}

// Separator records one inter-quantity separator and its role.
type Separator struct {
	Surface string
	Role    string
}

// ParseResult is the top-level output of a single call to Parse.
type ParseResult struct {
	Text               string
	Type               SuperstructureType
	NbrQuantities      int
	NormalizedQuantities []NormalizedQuantity
	Separators         []Separator
	Success            Success

	// UnlikelinessScore is the internal diagnostic accumulated by the
	// validation pass (§4.5.9); exposed for debugging/testing output (the
	// report formatters print it when Options.IncludeErrors is set), not part
	// of the ontology-neutral core contract.
	UnlikelinessScore int
}
