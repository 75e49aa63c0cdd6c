// Package quantparse implements the quantity-parser driver (spec.md §4.5):
// phrase protection, tokenization, superstructure segmentation, slot-grammar
// matching, per-quantity normalization, ellipsis resolution, and validation.
package quantparse

import "github.com/shopspring/decimal"

type SuperstructureType string

const (
	TypeSingleQuantity SuperstructureType = "single_quantity"
	TypeRange          SuperstructureType = "range"
	TypeList           SuperstructureType = "list"
	TypeRatio          SuperstructureType = "ratio"
	TypeMultidim       SuperstructureType = "multidim"
	TypeUnknown        SuperstructureType = "unknown"
)

type Success string

const (
	SuccessTrue    Success = "true"
	SuccessFalse   Success = "false"
	SuccessUnknown Success = "unknown"
)

type NormalizedValue struct {
	NumericValue     *decimal.Decimal
	IsImprecise      bool
	OrderOfMagnitude *int
}

type Value struct {
	Text       string
	Normalized *NormalizedValue
}

type UnitComponent struct {
	Surface  string
	Exponent int
	URI      string
	Year     *int
}

type UnitReference struct {
	Text         string
	IsEllipsed   bool
	EllipsedText string
	Normalized   []UnitComponent
	// CollapsedURI is set when a multi-component compound (e.g. "kg m / s^2")
	// reduces to a single known unit via dimensional analysis (spec.md §4.3
	// compound aggregation). Empty when no single-class collapse applies.
	CollapsedURI string
}

type Modifier struct {
	Text       string
	Normalized *string
}

type UncertaintyUnitSlots struct {
	IsSameAsMean bool
	Prefixed     *UnitReference
	Suffixed     *UnitReference
	PrefixedLB   *UnitReference
	SuffixedLB   *UnitReference
	PrefixedUB   *UnitReference
	SuffixedUB   *UnitReference
}

type NormalizedUncertainty struct {
	Type  string
	Lower decimal.Decimal
	Upper decimal.Decimal
	Unit  *UncertaintyUnitSlots
}

type Uncertainty struct {
	Text       string
	Normalized *NormalizedUncertainty
}

// Quantity holds the seven positional slots of one parsed quantity, both
// raw surface text (populated during segmentation) and normalized form
// (populated during §4.5.7).
type Quantity struct {
	PrefixedModifierText        string
	PrefixedUnitText            string
	ValueText                   string
	UncertaintyPreText          string
	SuffixedUnitText            string
	UncertaintyPostText         string
	SuffixedModifierText        string

	PrefixedModifier        *Modifier
	PrefixedUnit            *UnitReference
	Value                   *Value
	UncertaintyExprPreUnit  *Uncertainty
	SuffixedUnit            *UnitReference
	UncertaintyExprPostUnit *Uncertainty
	SuffixedModifier        *Modifier
}

type Separator struct {
	Surface string
	Role    string
}

type Result struct {
	Text                 string
	Type                 SuperstructureType
	NbrQuantities        int
	NormalizedQuantities []Quantity
	Separators           []Separator
	Success              Success
	UnlikelinessScore    int
}
