// Package catalog names units.
//
// A Registry maps names and symbols to quantity.Unit values and resolves an
// arbitrary unit, such as the result of an arithmetic operation, back to the
// first registered entry with the same scale and dimension. Default returns
// a frozen registry of SI, imperial and common derived units; Clone it to
// add units, or Load them from a TOML or YAML file:
//
//	[[units]]
//	name = "furlong"
//	symbol = "fur"
//	num = 201168
//	den = 1000
//	dimension = { length = 1 }
//
// A unit may also be defined relative to an existing one with `of`, in
// which case num/den scale that unit.
package catalog
