package economy

import (
	"fmt"
	"math"

	"PointWave/internal/model"
)

// spendLimit bounds a single transaction for one purpose.
type spendLimit struct {
	Min float64
	Max float64 // before level scaling
}

// spendLimits is the per-purpose bound table.
var spendLimits = map[model.SpendPurpose]spendLimit{
	model.PurposePrediction: {Min: 10, Max: 500},
	model.PurposeDonation:   {Min: 5, Max: 1000},
	model.PurposeInvestment: {Min: 50, Max: 2000},
}

// fallbackSpendLimit applies to purposes not in the table: a tight,
// conservative bound rather than a rejection.
var fallbackSpendLimit = spendLimit{Min: 1, Max: 100}

// ValidateSpend checks a proposed PMC spend against the user's balance
// and the purpose's limits. Checks run in order and the first failure
// wins. It performs no mutation; callers must treat validate-then-debit
// as one logical transaction.
func ValidateSpend(req model.SpendRequest) model.SpendResult {
	if req.UserBalance < req.Amount {
		return model.SpendResult{Valid: false, Reason: "insufficient balance"}
	}

	limit, ok := spendLimits[req.Purpose]
	if !ok {
		limit = fallbackSpendLimit
	}

	if req.Amount < limit.Min {
		return model.SpendResult{
			Valid:  false,
			Reason: fmt.Sprintf("minimum spend for %s is %.0f PMC", req.Purpose, limit.Min),
		}
	}

	max := MaximumSpend(req.Purpose, req.UserLevel)
	if req.Amount > max {
		return model.SpendResult{
			Valid:  false,
			Reason: fmt.Sprintf("maximum spend for %s at level %d is %.0f PMC", req.Purpose, req.UserLevel, max),
		}
	}

	return model.SpendResult{Valid: true}
}

// MinimumSpend returns the fixed minimum for a purpose.
func MinimumSpend(purpose model.SpendPurpose) float64 {
	limit, ok := spendLimits[purpose]
	if !ok {
		limit = fallbackSpendLimit
	}
	return limit.Min
}

// MaximumSpend returns the purpose maximum scaled by user level:
// higher-level users unlock proportionally larger single transactions.
func MaximumSpend(purpose model.SpendPurpose, userLevel int) float64 {
	limit, ok := spendLimits[purpose]
	if !ok {
		limit = fallbackSpendLimit
	}
	return limit.Max * math.Max(1, float64(userLevel)*0.5)
}
