package lookups

import (
	"strings"

	"github.com/shopspring/decimal"
	martinunit "github.com/martinlindhe/unit"
)

// UnitKind distinguishes the handful of unit categories that need
// special-cased behavior beyond a plain multiplicative conversion.
type UnitKind int

const (
	KindOrdinary UnitKind = iota
	KindCurrency
	KindTemperature // has a non-zero conversion offset
)

// UnitEntry is one ontology entry: a URI plus everything the linker and
// dimensional-analysis aggregator need to reason about it.
type UnitEntry struct {
	URI                string
	DimensionVector    DimensionVector
	ConversionMultiplier decimal.Decimal // to the entry's dimension's SI base unit
	ConversionOffset     decimal.Decimal // non-zero only for temperature-like units
	ApplicableSystems    []string
	IsCurrency           bool
	Kind                 UnitKind

	// Symbols are exact, case-sensitive surfaces (e.g. "kg", "€").
	Symbols []string
	// Labels are case-insensitive surfaces (e.g. "kilogram", "euro").
	// Plural forms are generated automatically by the loader unless
	// already present.
	Labels []string
}

// decFloat converts a float64 obtained from a martinlindhe/unit conversion
// into a decimal.Decimal. martinlindhe/unit operates in float64; the
// resulting constant is then used exactly (no further float arithmetic) by
// the arbitrary-precision aggregation in internal/units.
func decFloat(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// UnitEntries is the ontology-neutral unit table. URIs are opaque strings of
// the form "quinex:<category>:<name>" standing in for a QUDT-style URI,
// per spec.md §3 ("a URI is any stable identifier string").
var UnitEntries = buildUnitEntries()

func buildUnitEntries() []UnitEntry {
	si := []string{"SI"}
	us := []string{"USCustomary"}
	both := []string{"SI", "USCustomary"}

	entries := []UnitEntry{
		// --- Length (martinlindhe/unit constants, grounded on
		// impl/interpreter/unit_library.go addLengthUnits) ---
		{URI: "quinex:length:meter", DimensionVector: dimLength, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: si,
			Symbols: []string{"m"}, Labels: []string{"meter", "metre"}},
		{URI: "quinex:length:kilometer", DimensionVector: dimLength,
			ConversionMultiplier: decFloat((martinunit.Length(1) * martinunit.Kilometer).Meters()), ApplicableSystems: si,
			Symbols: []string{"km"}, Labels: []string{"kilometer", "kilometre"}},
		{URI: "quinex:length:centimeter", DimensionVector: dimLength,
			ConversionMultiplier: decFloat((martinunit.Length(1) * martinunit.Centimeter).Meters()), ApplicableSystems: si,
			Symbols: []string{"cm"}, Labels: []string{"centimeter", "centimetre"}},
		{URI: "quinex:length:millimeter", DimensionVector: dimLength,
			ConversionMultiplier: decFloat((martinunit.Length(1) * martinunit.Millimeter).Meters()), ApplicableSystems: si,
			Symbols: []string{"mm"}, Labels: []string{"millimeter", "millimetre"}},
		{URI: "quinex:length:foot", DimensionVector: dimLength,
			ConversionMultiplier: decFloat((martinunit.Length(1) * martinunit.Foot).Meters()), ApplicableSystems: us,
			Symbols: []string{"ft", "'"}, Labels: []string{"foot", "feet"}},
		{URI: "quinex:length:inch", DimensionVector: dimLength,
			ConversionMultiplier: decFloat((martinunit.Length(1) * martinunit.Inch).Meters()), ApplicableSystems: us,
			Symbols: []string{"in", "\""}, Labels: []string{"inch"}},
		{URI: "quinex:length:yard", DimensionVector: dimLength,
			ConversionMultiplier: decFloat((martinunit.Length(1) * martinunit.Yard).Meters()), ApplicableSystems: us,
			Symbols: []string{"yd"}, Labels: []string{"yard"}},
		{URI: "quinex:length:mile", DimensionVector: dimLength,
			ConversionMultiplier: decFloat((martinunit.Length(1) * martinunit.Mile).Meters()), ApplicableSystems: us,
			Symbols: []string{"mi"}, Labels: []string{"mile"}},
		{URI: "quinex:length:nauticalmile", DimensionVector: dimLength,
			ConversionMultiplier: decFloat((martinunit.Length(1) * martinunit.NauticalMile).Meters()), ApplicableSystems: both,
			Symbols: []string{"nmi"}, Labels: []string{"nautical mile"}},

		// --- Mass ---
		{URI: "quinex:mass:kilogram", DimensionVector: dimMass, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: si,
			Symbols: []string{"kg"}, Labels: []string{"kilogram"}},
		{URI: "quinex:mass:gram", DimensionVector: dimMass,
			ConversionMultiplier: decFloat((martinunit.Mass(1) * martinunit.Gram).Kilograms()), ApplicableSystems: si,
			Symbols: []string{"g"}, Labels: []string{"gram"}},
		{URI: "quinex:mass:milligram", DimensionVector: dimMass,
			ConversionMultiplier: decFloat((martinunit.Mass(1) * martinunit.Milligram).Kilograms()), ApplicableSystems: si,
			Symbols: []string{"mg"}, Labels: []string{"milligram"}},
		{URI: "quinex:mass:tonne", DimensionVector: dimMass,
			ConversionMultiplier: decFloat((martinunit.Mass(1) * martinunit.Tonne).Kilograms()), ApplicableSystems: si,
			Symbols: []string{"t"}, Labels: []string{"tonne", "metric ton"}},
		{URI: "quinex:mass:pound", DimensionVector: dimMass,
			ConversionMultiplier: decFloat((martinunit.Mass(1) * martinunit.AvoirdupoisPound).Kilograms()), ApplicableSystems: us,
			Symbols: []string{"lb", "lbs"}, Labels: []string{"pound"}},
		{URI: "quinex:mass:ounce", DimensionVector: dimMass,
			ConversionMultiplier: decFloat((martinunit.Mass(1) * martinunit.AvoirdupoisOunce).Kilograms()), ApplicableSystems: us,
			Symbols: []string{"oz"}, Labels: []string{"ounce"}},

		// --- Volume ---
		{URI: "quinex:volume:liter", DimensionVector: dimVolume, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: si,
			Symbols: []string{"l", "L"}, Labels: []string{"liter", "litre"}},
		{URI: "quinex:volume:milliliter", DimensionVector: dimVolume,
			ConversionMultiplier: decFloat((martinunit.Volume(1) * martinunit.Milliliter).Liters()), ApplicableSystems: si,
			Symbols: []string{"ml"}, Labels: []string{"milliliter", "millilitre"}},
		{URI: "quinex:volume:gallon", DimensionVector: dimVolume,
			ConversionMultiplier: decFloat((martinunit.Volume(1) * martinunit.USLiquidGallon).Liters()), ApplicableSystems: us,
			Symbols: []string{"gal"}, Labels: []string{"gallon"}},
		{URI: "quinex:volume:pint", DimensionVector: dimVolume,
			ConversionMultiplier: decFloat((martinunit.Volume(1) * martinunit.USLiquidPint).Liters()), ApplicableSystems: us,
			Symbols: []string{"pt"}, Labels: []string{"pint"}},
		{URI: "quinex:volume:quart", DimensionVector: dimVolume,
			ConversionMultiplier: decFloat((martinunit.Volume(1) * martinunit.USLiquidQuart).Liters()), ApplicableSystems: us,
			Symbols: []string{"qt"}, Labels: []string{"quart"}},
		{URI: "quinex:volume:cup", DimensionVector: dimVolume,
			ConversionMultiplier: decFloat((martinunit.Volume(1) * martinunit.USLegalCup).Liters()), ApplicableSystems: us,
			Symbols: []string{"cup"}, Labels: []string{"cup"}},
		{URI: "quinex:volume:tablespoon", DimensionVector: dimVolume,
			ConversionMultiplier: decFloat((martinunit.Volume(1) * martinunit.USTableSpoon).Liters()), ApplicableSystems: us,
			Symbols: []string{"tbsp"}, Labels: []string{"tablespoon"}},
		{URI: "quinex:volume:teaspoon", DimensionVector: dimVolume,
			ConversionMultiplier: decFloat((martinunit.Volume(1) * martinunit.USTeaSpoon).Liters()), ApplicableSystems: us,
			Symbols: []string{"tsp"}, Labels: []string{"teaspoon"}},

		// --- Temperature. Conversion multipliers/offsets are standard SI
		// factors; martinlindhe/unit's temperature API was not observed in
		// the retrieved corpus, so these are literal constants (see
		// DESIGN.md). ---
		{URI: "quinex:temperature:kelvin", DimensionVector: dimTemperature, ConversionMultiplier: decimal.NewFromInt(1),
			ApplicableSystems: si, Kind: KindTemperature, Symbols: []string{"K"}, Labels: []string{"kelvin"}},
		{URI: "quinex:temperature:celsius", DimensionVector: dimTemperature, ConversionMultiplier: decimal.NewFromInt(1),
			ConversionOffset: decimal.NewFromFloat(273.15), ApplicableSystems: si, Kind: KindTemperature,
			Symbols: []string{"°C", "degC"}, Labels: []string{"celsius", "centigrade"}},
		{URI: "quinex:temperature:fahrenheit", DimensionVector: dimTemperature,
			ConversionMultiplier: decimal.NewFromFloat(5.0 / 9.0), ConversionOffset: decimal.NewFromFloat(459.67),
			ApplicableSystems: us, Kind: KindTemperature, Symbols: []string{"°F", "degF"}, Labels: []string{"fahrenheit"}},

		// --- Time ---
		{URI: "quinex:time:second", DimensionVector: dimTime, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: both,
			Symbols: []string{"s", "sec"}, Labels: []string{"second"}},
		{URI: "quinex:time:minute", DimensionVector: dimTime, ConversionMultiplier: decimal.NewFromInt(60), ApplicableSystems: both,
			Symbols: []string{"min"}, Labels: []string{"minute"}},
		{URI: "quinex:time:hour", DimensionVector: dimTime, ConversionMultiplier: decimal.NewFromInt(3600), ApplicableSystems: both,
			Symbols: []string{"h", "hr"}, Labels: []string{"hour"}},
		{URI: "quinex:time:day", DimensionVector: dimTime, ConversionMultiplier: decimal.NewFromInt(86400), ApplicableSystems: both,
			Symbols: []string{"d"}, Labels: []string{"day"}},
		{URI: "quinex:time:year", DimensionVector: dimTime, ConversionMultiplier: decimal.NewFromInt(31557600), ApplicableSystems: both,
			Symbols: []string{"yr"}, Labels: []string{"year"}},

		// --- Energy / power (literal SI factors; same rationale as
		// temperature above) ---
		{URI: "quinex:energy:joule", DimensionVector: dimEnergy, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: si,
			Symbols: []string{"J"}, Labels: []string{"joule"}},
		{URI: "quinex:energy:kilojoule", DimensionVector: dimEnergy, ConversionMultiplier: decimal.NewFromInt(1000), ApplicableSystems: si,
			Symbols: []string{"kJ"}, Labels: []string{"kilojoule"}},
		{URI: "quinex:energy:calorie", DimensionVector: dimEnergy, ConversionMultiplier: decimal.NewFromFloat(4.184), ApplicableSystems: si,
			Symbols: []string{"cal"}, Labels: []string{"calorie"}},
		{URI: "quinex:energy:kilowatthour", DimensionVector: dimEnergy, ConversionMultiplier: decimal.NewFromInt(3600000), ApplicableSystems: si,
			Symbols: []string{"kWh"}, Labels: []string{"kilowatt-hour", "kilowatt hour"}},
		{URI: "quinex:power:watt", DimensionVector: dimPower, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: si,
			Symbols: []string{"W"}, Labels: []string{"watt"}},
		{URI: "quinex:power:kilowatt", DimensionVector: dimPower, ConversionMultiplier: decimal.NewFromInt(1000), ApplicableSystems: si,
			Symbols: []string{"kW"}, Labels: []string{"kilowatt"}},
		{URI: "quinex:power:megawatt", DimensionVector: dimPower, ConversionMultiplier: decimal.NewFromInt(1000000), ApplicableSystems: si,
			Symbols: []string{"MW"}, Labels: []string{"megawatt"}},

		// --- Electrical (literal SI factors; martinlindhe/unit does not
		// model electrical units either) ---
		{URI: "quinex:current:ampere", DimensionVector: dimCurrent, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: si,
			Symbols: []string{"A"}, Labels: []string{"ampere", "amp"}},
		{URI: "quinex:voltage:volt", DimensionVector: dimVoltage, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: si,
			Symbols: []string{"V"}, Labels: []string{"volt"}},
		{URI: "quinex:resistance:ohm", DimensionVector: dimResistance, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: si,
			Symbols: []string{"Ω", "ohm"}, Labels: []string{"ohm"}},

		// --- Speed (atomic — the corpus's unit_library.go defers
		// rate-based units to "Phase 2+"; quinex implements them directly
		// as single-dimension entries rather than via runtime division) ---
		{URI: "quinex:speed:meterpersecond", DimensionVector: dimSpeed, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: si,
			Symbols: []string{"m/s"}, Labels: []string{"meters per second", "metres per second"}},
		{URI: "quinex:speed:kilometerperhour", DimensionVector: dimSpeed, ConversionMultiplier: decimal.NewFromFloat(1.0 / 3.6), ApplicableSystems: si,
			Symbols: []string{"km/h", "kph"}, Labels: []string{"kilometers per hour", "kilometres per hour"}},
		{URI: "quinex:speed:milesperhour", DimensionVector: dimSpeed, ConversionMultiplier: decimal.NewFromFloat(0.44704), ApplicableSystems: us,
			Symbols: []string{"mph"}, Labels: []string{"miles per hour"}},
		{URI: "quinex:speed:knot", DimensionVector: dimSpeed, ConversionMultiplier: decimal.NewFromFloat(0.514444), ApplicableSystems: both,
			Symbols: []string{"kn", "kt"}, Labels: []string{"knot"}},

		// --- Dimensionless ---
		{URI: "quinex:dimensionless:percent", DimensionVector: dimDimless, ConversionMultiplier: decimal.NewFromFloat(0.01), ApplicableSystems: both,
			Symbols: []string{"%"}, Labels: []string{"percent"}},
		{URI: "quinex:dimensionless:permille", DimensionVector: dimDimless, ConversionMultiplier: decimal.NewFromFloat(0.001), ApplicableSystems: both,
			Symbols: []string{"‰"}, Labels: []string{"permille", "per mille"}},
		{URI: "quinex:dimensionless:ppm", DimensionVector: dimDimless, ConversionMultiplier: decimal.NewFromFloat(0.000001), ApplicableSystems: both,
			Symbols: []string{"ppm"}, Labels: []string{"parts per million"}},
		{URI: "quinex:dimensionless:radian", DimensionVector: dimDimless, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: si,
			Symbols: []string{"rad"}, Labels: []string{"radian"}},
		{URI: "quinex:dimensionless:degree", DimensionVector: dimDimless, ConversionMultiplier: decimal.NewFromFloat(0.017453292519943295), ApplicableSystems: both,
			Symbols: []string{"°", "deg"}, Labels: []string{"degree"}},
		{URI: "quinex:dimensionless:fold", DimensionVector: dimDimless, ConversionMultiplier: decimal.NewFromInt(1), ApplicableSystems: both,
			Labels: []string{"fold", "x", "times"}},

		// --- Currency. Multipliers are not fixed exchange rates; see
		// internal/currencysvc for conversion, which always delegates to
		// the external collaborator (spec.md §4.3 "Conversion is offered as
		// a side operation"). ---
		{URI: "quinex:currency:usd", IsCurrency: true, Kind: KindCurrency, ApplicableSystems: both,
			Symbols: []string{"$", "USD"}, Labels: []string{"dollar", "us dollar", "dollars"}},
		{URI: "quinex:currency:eur", IsCurrency: true, Kind: KindCurrency, ApplicableSystems: both,
			Symbols: []string{"€", "EUR"}, Labels: []string{"euro", "euros"}},
		{URI: "quinex:currency:gbp", IsCurrency: true, Kind: KindCurrency, ApplicableSystems: both,
			Symbols: []string{"£", "GBP"}, Labels: []string{"pound sterling", "british pound"}},
		{URI: "quinex:currency:jpy", IsCurrency: true, Kind: KindCurrency, ApplicableSystems: both,
			Symbols: []string{"¥", "JPY"}, Labels: []string{"yen"}},
		{URI: "quinex:currency:sek", IsCurrency: true, Kind: KindCurrency, ApplicableSystems: both,
			Symbols: []string{"SEK"}, Labels: []string{"swedish krona"}},
		{URI: "quinex:currency:chf", IsCurrency: true, Kind: KindCurrency, ApplicableSystems: both,
			Symbols: []string{"CHF"}, Labels: []string{"swiss franc"}},
		// PLACEHOLDER_CENT: per spec.md §4.3, valid only paired with another
		// currency (cent = that currency / 100); alone it fails to convert.
		{URI: "quinex:currency:placeholder_cent", IsCurrency: true, Kind: KindCurrency, ApplicableSystems: both,
			Symbols: []string{"¢"}, Labels: []string{"cent", "cents"}},
	}

	return expandPlurals(entries)
}

// expandPlurals adds a mechanical "+s" plural to every label that doesn't
// already end in "s", matching the teacher's unit_library.go convention of
// registering singular and plural spellings side by side.
func expandPlurals(entries []UnitEntry) []UnitEntry {
	for i := range entries {
		seen := make(map[string]bool, len(entries[i].Labels))
		for _, l := range entries[i].Labels {
			seen[l] = true
		}
		extra := make([]string, 0)
		for _, l := range entries[i].Labels {
			if !strings.HasSuffix(l, "s") {
				plural := l + "s"
				if !seen[plural] {
					extra = append(extra, plural)
					seen[plural] = true
				}
			}
		}
		entries[i].Labels = append(entries[i].Labels, extra...)
	}
	return entries
}

// UnitSymbolLookup is the case-sensitive symbol→URIs map (unit_symbol_lookup.json).
var UnitSymbolLookup = buildUnitSymbolLookup()

// UnitLabelLookup is the lowercased-label→URIs map (unit_label_lookup.json).
var UnitLabelLookup = buildUnitLabelLookup()

// UnitsByURI indexes UnitEntries by URI for O(1) lookup.
var UnitsByURI = buildUnitsByURI()

func buildUnitSymbolLookup() map[string][]string {
	m := make(map[string][]string)
	for _, e := range UnitEntries {
		for _, s := range e.Symbols {
			m[s] = append(m[s], e.URI)
		}
	}
	return m
}

func buildUnitLabelLookup() map[string][]string {
	m := make(map[string][]string)
	for _, e := range UnitEntries {
		for _, l := range e.Labels {
			key := strings.ToLower(l)
			m[key] = append(m[key], e.URI)
		}
	}
	return m
}

func buildUnitsByURI() map[string]UnitEntry {
	m := make(map[string]UnitEntry, len(UnitEntries))
	for _, e := range UnitEntries {
		m[e.URI] = e
	}
	return m
}

// AmbiguousUnitPriorities resolves surfaces that map to more than one URI.
// Lower number wins; a nil entry for a URI means "blocked" (spec.md §6
// ambiguous_unit_priorities_curated.json semantics). "m" is the canonical
// seed case: meter outranks the (unmodeled) minute-symbol collision.
var AmbiguousUnitPriorities = map[string]map[string]*int{
	"m": {"quinex:length:meter": intPtr(0)},
	"t": {"quinex:mass:tonne": intPtr(0), "quinex:time:year": nil},
}

func intPtr(v int) *int { return &v }
