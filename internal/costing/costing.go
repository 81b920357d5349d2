// Package costing holds the pure production-cost arithmetic: planned and
// actual amounts, variance classification, and inventory reorder math.
// Functions here perform no I/O and hold no state.
package costing

import (
	"errors"
	"math"
)

// ErrInvalidInput indicates a non-finite or non-positive figure where a
// positive one is required. Use errors.Is() to check it.
var ErrInvalidInput = errors.New("invalid input")

// Status classifies an order's cost variance.
type Status string

const (
	// StatusLoss means actual cost exceeded plan (overspend).
	StatusLoss Status = "Loss"
	// StatusProfit means actual cost came in under plan.
	StatusProfit Status = "Profit"
	// StatusBalanced means actual cost matched plan exactly.
	StatusBalanced Status = "Balanced"
)

func positiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// PlannedAmount computes plannedQty × plannedRate.
// Both inputs must be finite and strictly positive.
func PlannedAmount(qty, rate float64) (float64, error) {
	if !positiveFinite(qty) || !positiveFinite(rate) {
		return 0, ErrInvalidInput
	}
	return qty * rate, nil
}

// ActualAmount computes actualQty × actualRate.
// Both inputs must be finite and strictly positive.
func ActualAmount(qty, rate float64) (float64, error) {
	if !positiveFinite(qty) || !positiveFinite(rate) {
		return 0, ErrInvalidInput
	}
	return qty * rate, nil
}

// Variance is actualAmount − plannedAmount. Positive means overspend.
func Variance(actualAmount, plannedAmount float64) float64 {
	return actualAmount - plannedAmount
}

// ClassifyVariance maps a variance to its status. A variance > 0 is Loss
// (spent more than planned), < 0 is Profit.
func ClassifyVariance(variance float64) Status {
	switch {
	case variance > 0:
		return StatusLoss
	case variance < 0:
		return StatusProfit
	default:
		return StatusBalanced
	}
}

// ReorderLevel is the stock threshold below which replenishment should
// start: consumption during lead time plus the safety margin.
func ReorderLevel(dailyConsumption, leadTime, safetyStock float64) float64 {
	return dailyConsumption*leadTime + safetyStock
}

// ReorderQuantity is the shortfall between reorder level and current
// stock, clamped at zero.
func ReorderQuantity(reorderLevel, currentStock float64) float64 {
	return math.Max(0, reorderLevel-currentStock)
}

// ReorderNeeded reports whether a reorder quantity calls for action.
func ReorderNeeded(reorderQuantity float64) bool {
	return reorderQuantity > 0
}
