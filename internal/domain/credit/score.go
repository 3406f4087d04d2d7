// Package credit holds the two scoring formulas. They intentionally
// diverge (different bases, different inputs) because they back different
// views; do not merge them.
package credit

import (
	"lendlink-backend/internal/domain/application"
	"lendlink-backend/internal/domain/payment"
)

const (
	MinScore = 300
	MaxScore = 850

	adminBase    = 700
	borrowerBase = 650
)

// ForAdmin derives the score shown on admin borrower overviews:
// +5 per recorded payment event, +20 per approved application.
func ForAdmin(apps []application.LoanApplication, records []payment.Record) int {
	score := adminBase
	for _, r := range records {
		score += len(r.Entries) * 5
	}
	for _, a := range apps {
		if a.Status == application.StatusApproved {
			score += 20
		}
	}
	return clamp(score)
}

// ForBorrower derives the borrower's self-view score from entry statuses.
// Repayment recording never sets Status, so in practice this returns the
// base; kept as-is because the formula is part of the observable surface.
func ForBorrower(entries []payment.Entry) int {
	score := borrowerBase
	for _, e := range entries {
		switch e.Status {
		case "ontime":
			score += 5
		case "late":
			score -= 10
		}
	}
	return clamp(score)
}

func clamp(s int) int {
	if s < MinScore {
		return MinScore
	}
	if s > MaxScore {
		return MaxScore
	}
	return s
}
