package catalog

import (
	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/quantity"
	"github.com/hupe1980/unitgo/ratio"
)

var (
	length      = dimension.Of(dimension.Length)
	mass        = dimension.Of(dimension.Mass)
	duration    = dimension.Of(dimension.Time)
	current     = dimension.Of(dimension.Current)
	temperature = dimension.Of(dimension.Temperature)
	amount      = dimension.Of(dimension.Amount)
	intensity   = dimension.Of(dimension.Intensity)
	angle       = dimension.Of(dimension.Angle)

	area         = length.Mul(length)
	volume       = area.Mul(length)
	velocity     = length.Div(duration)
	acceleration = velocity.Div(duration)
	force        = mass.Mul(acceleration)
	energy       = force.Mul(length)
	power        = energy.Div(duration)
	pressure     = force.Div(area)
	frequency    = dimension.Scalar.Div(duration)
	charge       = current.Mul(duration)
	voltage      = power.Div(current)
	resistance   = voltage.Div(current)
	molarity     = amount.Div(volume)
)

type def struct {
	name, symbol, unicode string
	num, den              int64
	dim                   dimension.Dimension
	offset                float64
}

// Order matters: Resolve picks the first entry for a unit.
var builtinDefs = []def{
	// Length
	{"meter", "m", "", 1, 1, length, 0},
	{"kilometer", "km", "", 1000, 1, length, 0},
	{"centimeter", "cm", "", 1, 100, length, 0},
	{"millimeter", "mm", "", 1, 1000, length, 0},
	{"micrometer", "um", "µm", 1, 1_000_000, length, 0},
	{"nanometer", "nm", "", 1, 1_000_000_000, length, 0},
	{"inch", "in", "", 254, 10_000, length, 0},
	{"foot", "ft", "", 3048, 10_000, length, 0},
	{"yard", "yd", "", 9144, 10_000, length, 0},
	{"mile", "mi", "", 1_609_344, 1000, length, 0},
	{"nautical_mile", "nmi", "", 1852, 1, length, 0},
	{"astronomical_unit", "au", "", 149_597_870_700, 1, length, 0},

	// Mass
	{"kilogram", "kg", "", 1, 1, mass, 0},
	{"gram", "g", "", 1, 1000, mass, 0},
	{"milligram", "mg", "", 1, 1_000_000, mass, 0},
	{"tonne", "t", "", 1000, 1, mass, 0},
	{"pound", "lb", "", 45_359_237, 100_000_000, mass, 0},
	{"ounce", "oz", "", 28_349_523_125, 1_000_000_000_000, mass, 0},

	// Time
	{"second", "s", "", 1, 1, duration, 0},
	{"millisecond", "ms", "", 1, 1000, duration, 0},
	{"microsecond", "us", "µs", 1, 1_000_000, duration, 0},
	{"nanosecond", "ns", "", 1, 1_000_000_000, duration, 0},
	{"minute", "min", "", 60, 1, duration, 0},
	{"hour", "h", "", 3600, 1, duration, 0},
	{"day", "d", "", 86_400, 1, duration, 0},

	// Current
	{"ampere", "A", "", 1, 1, current, 0},
	{"milliampere", "mA", "", 1, 1000, current, 0},

	// Temperature
	{"kelvin", "K", "", 1, 1, temperature, 0},
	{"celsius", "degC", "°C", 1, 1, temperature, 273.15},
	{"fahrenheit", "degF", "°F", 5, 9, temperature, 273.15 - 32.0*5/9},
	{"rankine", "degR", "°R", 5, 9, temperature, 0},

	// Amount
	{"mole", "mol", "", 1, 1, amount, 0},
	{"millimole", "mmol", "", 1, 1000, amount, 0},

	// Luminous intensity
	{"candela", "cd", "", 1, 1, intensity, 0},

	// Angle. Degree uses the closest rational to pi/180 whose square still
	// fits in int64.
	{"radian", "rad", "", 1, 1, angle, 0},
	{"degree", "deg", "°", 14_964_008, 857_374_503, angle, 0},

	// Dimensionless
	{"percent", "%", "", 1, 100, dimension.Scalar, 0},
	{"parts_per_million", "ppm", "", 1, 1_000_000, dimension.Scalar, 0},

	// Derived
	{"square_meter", "m^2", "m²", 1, 1, area, 0},
	{"square_kilometer", "km^2", "km²", 1_000_000, 1, area, 0},
	{"hectare", "ha", "", 10_000, 1, area, 0},
	{"cubic_meter", "m^3", "m³", 1, 1, volume, 0},
	{"liter", "L", "", 1, 1000, volume, 0},
	{"milliliter", "mL", "", 1, 1_000_000, volume, 0},
	{"meter_per_second", "m/s", "", 1, 1, velocity, 0},
	{"kilometer_per_hour", "km/h", "", 5, 18, velocity, 0},
	{"mile_per_hour", "mph", "", 1397, 3125, velocity, 0},
	{"knot", "kn", "", 463, 900, velocity, 0},
	{"meter_per_second_squared", "m/s^2", "m/s²", 1, 1, acceleration, 0},
	{"newton", "N", "", 1, 1, force, 0},
	{"joule", "J", "", 1, 1, energy, 0},
	{"kilojoule", "kJ", "", 1000, 1, energy, 0},
	{"calorie", "cal", "", 4184, 1000, energy, 0},
	{"kilowatt_hour", "kWh", "", 3_600_000, 1, energy, 0},
	{"watt", "W", "", 1, 1, power, 0},
	{"kilowatt", "kW", "", 1000, 1, power, 0},
	{"pascal", "Pa", "", 1, 1, pressure, 0},
	{"kilopascal", "kPa", "", 1000, 1, pressure, 0},
	{"bar", "bar", "", 100_000, 1, pressure, 0},
	{"atmosphere", "atm", "", 101_325, 1, pressure, 0},
	{"hertz", "Hz", "", 1, 1, frequency, 0},
	{"coulomb", "C", "", 1, 1, charge, 0},
	{"volt", "V", "", 1, 1, voltage, 0},
	{"ohm", "ohm", "Ω", 1, 1, resistance, 0},
	{"mole_per_cubic_meter", "mol/m^3", "mol/m³", 1, 1, molarity, 0},
	{"mole_per_liter", "mol/L", "", 1000, 1, molarity, 0},
	{"millimole_per_liter", "mmol/L", "", 1, 1, molarity, 0},
}

func builtin() []Entry {
	entries := make([]Entry, 0, len(builtinDefs))
	for _, d := range builtinDefs {
		scale := ratio.MustNew(d.num, d.den)
		var u quantity.Unit
		if d.offset != 0 {
			u = quantity.NewAffineUnit(scale, d.dim, d.offset)
		} else {
			u = quantity.NewUnit(scale, d.dim)
		}
		entries = append(entries, Entry{Name: d.name, Symbol: d.symbol, UnicodeSymbol: d.unicode, Unit: u})
	}
	return entries
}
