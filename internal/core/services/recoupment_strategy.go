package services

import (
	"github.com/shopspring/decimal"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// recoupmentInputs are the period aggregates a strategy works from. Income,
// TimeCharges, Expenses and Writeoffs are non-negative magnitudes taken from
// the ledgers; OpeningBalance is the running sum of prior recoupment entries
// for the scope.
type recoupmentInputs struct {
	ArtistID       string
	ProjectID      *string
	OpeningBalance int64
	Income         int64
	TimeCharges    int64
	Expenses       int64
	Writeoffs      int64
}

// RecoupmentStrategy computes an artist/label split for one accounting mode.
// Implementations are pure: they return a calculation and mutate nothing.
type RecoupmentStrategy interface {
	Calculate(in recoupmentInputs) domain.RecoupmentCalculation
	Scope() domain.RecoupmentScope
}

// strategyForMode selects the strategy for a project's mode. The mode is a
// closed set; an unknown mode falls back to standalone.
func strategyForMode(mode domain.ProjectMode) RecoupmentStrategy {
	if mode == domain.ModeMainTab {
		return mainTabStrategy{}
	}
	return standaloneStrategy{}
}

// standaloneStrategy settles a project on its own: positive net profit is
// split 50/50, a loss accrues entirely to the artist's per-project balance.
type standaloneStrategy struct{}

var _ RecoupmentStrategy = standaloneStrategy{}

func (standaloneStrategy) Scope() domain.RecoupmentScope { return domain.ScopeProject }

func (standaloneStrategy) Calculate(in recoupmentInputs) domain.RecoupmentCalculation {
	totalCosts := in.TimeCharges + in.Expenses - in.Writeoffs
	netAmount := in.Income - totalCosts

	var artistShare, labelShare int64
	if netAmount > 0 {
		artistShare = halve(netAmount)
		labelShare = netAmount - artistShare
	} else {
		// A loss carries to the artist's recoupable balance in full.
		artistShare = netAmount
	}

	return domain.RecoupmentCalculation{
		ArtistID:       in.ArtistID,
		ProjectID:      in.ProjectID,
		Scope:          domain.ScopeProject,
		OpeningBalance: in.OpeningBalance,
		Income:         in.Income,
		Expenses:       in.Expenses,
		TimeCharges:    in.TimeCharges,
		Writeoffs:      in.Writeoffs,
		NetAmount:      netAmount,
		ArtistShare:    artistShare,
		LabelShare:     labelShare,
		ClosingBalance: in.OpeningBalance + artistShare,
	}
}

// mainTabStrategy pays the artist immediately on gross income while the
// label's income share services the outstanding tab balance first; only the
// remainder after servicing counts as label profit.
//
// When the tab balance after costs is negative the reduction clamps to zero
// and the label keeps its full income share while the negative balance
// carries forward. Kept as specified pending product confirmation.
type mainTabStrategy struct{}

var _ RecoupmentStrategy = mainTabStrategy{}

func (mainTabStrategy) Scope() domain.RecoupmentScope { return domain.ScopeMainTab }

func (mainTabStrategy) Calculate(in recoupmentInputs) domain.RecoupmentCalculation {
	totalCosts := in.TimeCharges + in.Expenses - in.Writeoffs

	artistImmediateShare := halve(in.Income)
	labelIncomeShare := in.Income - artistImmediateShare

	balanceAfterCosts := in.OpeningBalance + totalCosts
	mainTabReduction := min64(max64(0, balanceAfterCosts), labelIncomeShare)
	remainingLabelIncome := max64(0, labelIncomeShare-max64(0, balanceAfterCosts))

	return domain.RecoupmentCalculation{
		ArtistID:       in.ArtistID,
		ProjectID:      in.ProjectID,
		Scope:          domain.ScopeMainTab,
		OpeningBalance: in.OpeningBalance,
		Income:         in.Income,
		Expenses:       in.Expenses,
		TimeCharges:    in.TimeCharges,
		Writeoffs:      in.Writeoffs,
		NetAmount:      in.Income - totalCosts,
		ArtistShare:    artistImmediateShare,
		LabelShare:     remainingLabelIncome,
		ClosingBalance: balanceAfterCosts - mainTabReduction,
	}
}

// halve returns round(n × 0.5) with rounding half away from zero, staying in
// integer minor units throughout.
func halve(n int64) int64 {
	return decimal.NewFromInt(n).
		Div(decimal.NewFromInt(2)).
		Round(0).
		IntPart()
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
