package lookups

// DimensionVector is the 8-tuple of integer exponents over base dimensions,
// in the order the data model names them: Amount, Electric current, Length,
// luminous Intensity, Mass, Heat (temperature), Time, Dimensionless.
type DimensionVector struct {
	Amount        int
	Current       int
	Length        int
	Luminous      int
	Mass          int
	Temperature   int
	Time          int
	Dimensionless int
}

// IsZero reports whether every physical-dimension slot is zero. The
// Dimensionless slot is tracked separately: a vector can be "physically
// zero" (a plain number) while still carrying Dimensionless=1 (a percent,
// an angle, a count) until compound aggregation cancels it against a
// non-zero physical dimension (spec.md §4.3 compound aggregation).
func (d DimensionVector) IsZero() bool {
	return d.Amount == 0 && d.Current == 0 && d.Length == 0 && d.Luminous == 0 &&
		d.Mass == 0 && d.Temperature == 0 && d.Time == 0
}

// Add returns the component-wise sum of two dimension vectors.
func (d DimensionVector) Add(o DimensionVector) DimensionVector {
	return DimensionVector{
		Amount:        d.Amount + o.Amount,
		Current:       d.Current + o.Current,
		Length:        d.Length + o.Length,
		Luminous:      d.Luminous + o.Luminous,
		Mass:          d.Mass + o.Mass,
		Temperature:   d.Temperature + o.Temperature,
		Time:          d.Time + o.Time,
		Dimensionless: d.Dimensionless + o.Dimensionless,
	}
}

// Scale returns the dimension vector multiplied by an integer exponent.
func (d DimensionVector) Scale(n int) DimensionVector {
	return DimensionVector{
		Amount:        d.Amount * n,
		Current:       d.Current * n,
		Length:        d.Length * n,
		Luminous:      d.Luminous * n,
		Mass:          d.Mass * n,
		Temperature:   d.Temperature * n,
		Time:          d.Time * n,
		Dimensionless: d.Dimensionless * n,
	}
}

// Equal reports whether two dimension vectors are identical, including the
// Dimensionless slot.
func (d DimensionVector) Equal(o DimensionVector) bool {
	return d == o
}

var (
	dimLength      = DimensionVector{Length: 1}
	dimMass        = DimensionVector{Mass: 1}
	dimTime        = DimensionVector{Time: 1}
	dimTemperature = DimensionVector{Temperature: 1}
	dimCurrent     = DimensionVector{Current: 1}
	dimLuminous    = DimensionVector{Luminous: 1}
	dimAmount      = DimensionVector{Amount: 1}
	dimDimless     = DimensionVector{Dimensionless: 1}
	dimVolume      = dimLength.Scale(3)
	dimEnergy      = dimMass.Add(dimLength.Scale(2)).Add(dimTime.Scale(-2))
	dimPower       = dimEnergy.Add(dimTime.Scale(-1))
	dimSpeed       = dimLength.Add(dimTime.Scale(-1))
	dimVoltage     = dimPower.Add(dimCurrent.Scale(-1))
	dimResistance  = dimVoltage.Add(dimCurrent.Scale(-1))
)
