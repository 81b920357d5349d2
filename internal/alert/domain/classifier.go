package domain

import (
	"fmt"
	"math"

	"github.com/sumitd/costtrack/internal/costing"
)

// Variance alert thresholds, as fractions of the planned amount.
const (
	varianceAlertThreshold  = 0.10
	varianceUrgentThreshold = 0.20
)

// Stock within this factor of the reorder level is considered close
// enough to escalate a reorder alert to high priority.
const reorderHighFactor = 1.2

// Draft is an alert waiting to be persisted for a specific user.
type Draft struct {
	ItemName string
	Message  string
	Priority string
	Type     string
}

// ClassifyVariance decides whether a cost variance warrants an alert.
// Only deviations strictly above 10% of the planned amount alert;
// above 20% they are urgent, otherwise high.
func ClassifyVariance(orderID, itemName string, status costing.Status, variance, plannedAmount float64) (Draft, bool) {
	if math.Abs(variance) <= plannedAmount*varianceAlertThreshold {
		return Draft{}, false
	}

	priority := PriorityHigh
	if math.Abs(variance) > plannedAmount*varianceUrgentThreshold {
		priority = PriorityUrgent
	}

	return Draft{
		ItemName: itemName,
		Message:  fmt.Sprintf("High variance for order %s: %s of ₹%.2f", orderID, status, math.Abs(variance)),
		Priority: priority,
		Type:     TypeVariance,
	}, true
}

// ClassifyReorder decides whether a stock position warrants a reorder
// alert. Any positive reorder quantity alerts; priority escalates as the
// stock position worsens.
func ClassifyReorder(itemName string, currentStock, minimumStock, reorderLevel, reorderQuantity float64) (Draft, bool) {
	if !costing.ReorderNeeded(reorderQuantity) {
		return Draft{}, false
	}

	priority := PriorityMedium
	switch {
	case currentStock < minimumStock:
		priority = PriorityUrgent
	case currentStock < reorderLevel*reorderHighFactor:
		priority = PriorityHigh
	}

	return Draft{
		ItemName: itemName,
		Message:  fmt.Sprintf("%s needs reorder. Current: %g, Reorder Qty: %.2f", itemName, currentStock, reorderQuantity),
		Priority: priority,
		Type:     TypeReorder,
	}, true
}
