package calculator

import "testing"

func TestCountCategories(t *testing.T) {
	rows := []map[string]any{
		{"category": "A"},
		{"category": "A"},
		{"category": "B"},
		{"category": 123},
		{},
	}
	counts, total := CountCategories(rows)

	if total != 5 {
		t.Errorf("total = %d, want 5 (malformed rows still count)", total)
	}
	if counts["A"] != 2 {
		t.Errorf("counts[A] = %d, want 2", counts["A"])
	}
	if counts["B"] != 1 {
		t.Errorf("counts[B] = %d, want 1", counts["B"])
	}
	if len(counts) != 2 {
		t.Errorf("expected 2 valid categories, got %d", len(counts))
	}
}

func TestCountCategories_Empty(t *testing.T) {
	counts, total := CountCategories(nil)
	if total != 0 || len(counts) != 0 {
		t.Errorf("expected empty result, got counts=%v total=%d", counts, total)
	}
}

func TestBuildMultiplierByCategory(t *testing.T) {
	rows := []map[string]any{
		{"category": "A", "reward_multiplier": "1.5"},
		{"category": "B", "reward_multiplier": nil},
		{"category": "C", "reward_multiplier": 2.0},
		{"category": "D", "reward_multiplier": "garbage"},
		{"category": "E"},
		{"reward_multiplier": 9.0}, // no category, skipped
	}
	mults := BuildMultiplierByCategory(rows)

	tests := []struct {
		cat  string
		want float64
	}{
		{"A", 1.5},
		{"B", 1},
		{"C", 2.0},
		{"D", 1},
		{"E", 1},
	}
	for _, tt := range tests {
		if got := mults[tt.cat]; got != tt.want {
			t.Errorf("multiplier[%s] = %v, want %v", tt.cat, got, tt.want)
		}
	}
	if len(mults) != 5 {
		t.Errorf("expected 5 categories, got %d", len(mults))
	}
}
