package calculator

// CountCategories tallies rows by their "category" string field.
// Rows where the field is missing or not a string are skipped in the
// counts, but total reflects every row regardless of validity — the
// rows come from an external data source and may be malformed.
func CountCategories(rows []map[string]any) (counts map[string]int, total int) {
	counts = make(map[string]int)
	for _, row := range rows {
		total++
		cat, ok := row["category"].(string)
		if !ok || cat == "" {
			continue
		}
		counts[cat]++
	}
	return counts, total
}

// BuildMultiplierByCategory extracts each row's "reward_multiplier",
// defaulting to 1 when the value is missing or unparseable.
func BuildMultiplierByCategory(rows []map[string]any) map[string]float64 {
	multipliers := make(map[string]float64)
	for _, row := range rows {
		cat, ok := row["category"].(string)
		if !ok || cat == "" {
			continue
		}
		mult, ok := ParseNumeric(row["reward_multiplier"])
		if !ok {
			mult = 1
		}
		multipliers[cat] = mult
	}
	return multipliers
}
