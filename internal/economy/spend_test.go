package economy

import (
	"strings"
	"testing"

	"PointWave/internal/model"
)

func TestValidateSpend_InsufficientBalanceFirst(t *testing.T) {
	// Balance check wins regardless of purpose, even when the amount
	// would also violate a limit.
	for _, purpose := range []model.SpendPurpose{
		model.PurposePrediction,
		model.PurposeDonation,
		model.PurposeInvestment,
		model.SpendPurpose("unknown"),
	} {
		result := ValidateSpend(model.SpendRequest{
			Purpose:     purpose,
			Amount:      100,
			UserBalance: 99,
			UserLevel:   1,
		})
		if result.Valid {
			t.Errorf("%s: spend over balance should be invalid", purpose)
		}
		if result.Reason != "insufficient balance" {
			t.Errorf("%s: reason = %q, want %q", purpose, result.Reason, "insufficient balance")
		}
	}
}

func TestValidateSpend_MinimumBoundary(t *testing.T) {
	// Exactly at the minimum is valid; one unit below is not.
	min := MinimumSpend(model.PurposePrediction)

	at := ValidateSpend(model.SpendRequest{
		Purpose: model.PurposePrediction, Amount: min, UserBalance: 10000, UserLevel: 1,
	})
	if !at.Valid {
		t.Errorf("amount at minimum should be valid, got reason %q", at.Reason)
	}

	below := ValidateSpend(model.SpendRequest{
		Purpose: model.PurposePrediction, Amount: min - 1, UserBalance: 10000, UserLevel: 1,
	})
	if below.Valid {
		t.Error("amount below minimum should be invalid")
	}
	if !strings.Contains(below.Reason, string(model.PurposePrediction)) {
		t.Errorf("reason should name the purpose, got %q", below.Reason)
	}
}

func TestValidateSpend_MaximumScalesWithLevel(t *testing.T) {
	// Level 1: max(1, 0.5) = 1 → prediction cap 500.
	over := ValidateSpend(model.SpendRequest{
		Purpose: model.PurposePrediction, Amount: 501, UserBalance: 100000, UserLevel: 1,
	})
	if over.Valid {
		t.Error("501 should exceed the level-1 prediction cap of 500")
	}
	if !strings.Contains(over.Reason, "maximum") {
		t.Errorf("reason = %q, want a maximum message", over.Reason)
	}

	// Level 4: ×2 → cap 1000, so 501 passes.
	higher := ValidateSpend(model.SpendRequest{
		Purpose: model.PurposePrediction, Amount: 501, UserBalance: 100000, UserLevel: 4,
	})
	if !higher.Valid {
		t.Errorf("level 4 should unlock larger spends, got reason %q", higher.Reason)
	}
}

func TestValidateSpend_AtMaximumBoundary(t *testing.T) {
	result := ValidateSpend(model.SpendRequest{
		Purpose: model.PurposeDonation, Amount: 1000, UserBalance: 100000, UserLevel: 1,
	})
	if !result.Valid {
		t.Errorf("amount at maximum should be valid, got reason %q", result.Reason)
	}
}

func TestValidateSpend_UnknownPurposeUsesConservativeLimits(t *testing.T) {
	ok := ValidateSpend(model.SpendRequest{
		Purpose: model.SpendPurpose("mystery"), Amount: 50, UserBalance: 1000, UserLevel: 1,
	})
	if !ok.Valid {
		t.Errorf("unknown purpose within fallback limits should pass, got %q", ok.Reason)
	}

	over := ValidateSpend(model.SpendRequest{
		Purpose: model.SpendPurpose("mystery"), Amount: 101, UserBalance: 1000, UserLevel: 1,
	})
	if over.Valid {
		t.Error("unknown purpose above fallback cap should be rejected")
	}
}

func TestValidateSpend_PassHasNoReason(t *testing.T) {
	result := ValidateSpend(model.SpendRequest{
		Purpose: model.PurposeInvestment, Amount: 100, UserBalance: 500, UserLevel: 2,
	})
	if !result.Valid {
		t.Fatalf("expected valid, got reason %q", result.Reason)
	}
	if result.Reason != "" {
		t.Errorf("valid result should carry no reason, got %q", result.Reason)
	}
}
