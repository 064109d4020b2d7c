package service

// ResolveQuantity caps a request for distinct draws at the population size.
// clamped reports whether the request had to be reduced.
func ResolveQuantity(requested, populationSize int) (effective int, clamped bool) {
	if requested <= populationSize {
		return requested, false
	}
	return populationSize, true
}
