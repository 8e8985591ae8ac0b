package calculator

// WeightedShare returns the selected category's share of a shared pool:
// weighted(cat) = counts[cat] × multiplier(cat), share = weighted(selected)
// over the sum of all weights. Returns 0 when the total weight is 0.
func WeightedShare(counts map[string]int, multipliers map[string]float64, selected string) float64 {
	var totalWeighted float64
	for cat, count := range counts {
		totalWeighted += float64(count) * multiplierFor(multipliers, cat)
	}
	if totalWeighted == 0 {
		return 0
	}
	selectedWeighted := float64(counts[selected]) * multiplierFor(multipliers, selected)
	return selectedWeighted / totalWeighted
}

// DisplayAmount is the wave amount shown for a category at this moment:
// the pool total scaled by the category's share and the reveal ratio.
func DisplayAmount(hourlyPoolTotal, share, revealRatio float64) float64 {
	return hourlyPoolTotal * share * revealRatio
}

func multiplierFor(multipliers map[string]float64, cat string) float64 {
	if m, ok := multipliers[cat]; ok {
		return m
	}
	return 1
}
