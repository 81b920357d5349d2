// Package domain folds orders, usages, inventory and alerts into the
// dashboard and report shapes. All builders are pure functions over
// already-fetched records.
package domain

import (
	"fmt"
	"time"

	alertdomain "github.com/sumitd/costtrack/internal/alert/domain"
	inventorydomain "github.com/sumitd/costtrack/internal/inventory/domain"
	orderdomain "github.com/sumitd/costtrack/internal/order/domain"
)

// StatusPending marks an order with no recorded usage yet.
const StatusPending = "Pending"

// VarianceRow is one order's planned-versus-actual comparison.
type VarianceRow struct {
	OrderID       string  `json:"orderId"`
	ItemName      string  `json:"itemName"`
	PlannedAmount float64 `json:"plannedAmount"`
	ActualAmount  float64 `json:"actualAmount"`
	Variance      float64 `json:"variance"`
	Status        string  `json:"status"`
}

// ReorderRow is one shortfall line in the reorder report.
type ReorderRow struct {
	ItemName        string  `json:"itemName"`
	CurrentStock    float64 `json:"currentStock"`
	MinimumStock    float64 `json:"minimumStock"`
	ReorderLevel    float64 `json:"reorderLevel"`
	ReorderQuantity float64 `json:"reorderQuantity"`
	Priority        string  `json:"priority"`
}

// OrderSummaryRow is one order's cost totals with its creation time.
type OrderSummaryRow struct {
	OrderID          string    `json:"orderId"`
	ItemName         string    `json:"itemName"`
	TotalPlannedCost float64   `json:"totalPlannedCost"`
	TotalActualCost  float64   `json:"totalActualCost"`
	TotalVariance    float64   `json:"totalVariance"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Stats are the dashboard headline figures. Money totals are formatted
// to two decimal places as strings for direct rendering.
type Stats struct {
	TotalOrders      int    `json:"totalOrders"`
	TotalPlannedCost string `json:"totalPlannedCost"`
	TotalActualCost  string `json:"totalActualCost"`
	TotalProfitLoss  string `json:"totalProfitLoss"`
	LowStockItems    int    `json:"lowStockItems"`
	RecentAlerts     int    `json:"recentAlerts"`
}

// PlannedVsActualPoint is one bar pair in the cost comparison chart.
type PlannedVsActualPoint struct {
	OrderID string  `json:"orderId"`
	Planned float64 `json:"planned"`
	Actual  float64 `json:"actual"`
}

// InventoryLevel is one item's stock line in the inventory chart.
type InventoryLevel struct {
	ItemName     string  `json:"itemName"`
	CurrentStock float64 `json:"currentStock"`
	MinimumStock float64 `json:"minimumStock"`
	ReorderLevel float64 `json:"reorderLevel"`
}

// ChartData groups the dashboard chart series.
type ChartData struct {
	PlannedVsActual []PlannedVsActualPoint `json:"plannedVsActual"`
	InventoryLevels []InventoryLevel       `json:"inventoryLevels"`
}

// Dashboard is the full dashboard payload.
type Dashboard struct {
	Stats        Stats               `json:"stats"`
	ChartData    ChartData           `json:"chartData"`
	RecentAlerts []alertdomain.Alert `json:"recentAlerts"`
}

func usagesByOrder(usages []orderdomain.ActualUsage) map[string]orderdomain.ActualUsage {
	byOrder := make(map[string]orderdomain.ActualUsage, len(usages))
	for _, u := range usages {
		byOrder[u.OrderID] = u
	}
	return byOrder
}

// BuildVarianceReport joins each order with its usage, if any. Orders
// without usage report zero amounts and a Pending status.
func BuildVarianceReport(orders []orderdomain.Order, usages []orderdomain.ActualUsage) []VarianceRow {
	byOrder := usagesByOrder(usages)
	rows := make([]VarianceRow, 0, len(orders))
	for _, order := range orders {
		row := VarianceRow{
			OrderID:       order.OrderID,
			ItemName:      order.ItemName,
			PlannedAmount: order.PlannedAmount,
			Status:        StatusPending,
		}
		if usage, ok := byOrder[order.OrderID]; ok {
			row.ActualAmount = usage.ActualAmount
			row.Variance = usage.Variance
			row.Status = usage.Status
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildReorderReport lists the shortfall items. Priority is Urgent when
// stock has fallen below the minimum, Normal otherwise.
func BuildReorderReport(items []inventorydomain.Item) []ReorderRow {
	rows := make([]ReorderRow, 0, len(items))
	for _, item := range items {
		priority := "Normal"
		if item.CurrentStock < item.MinimumStock {
			priority = "Urgent"
		}
		rows = append(rows, ReorderRow{
			ItemName:        item.ItemName,
			CurrentStock:    item.CurrentStock,
			MinimumStock:    item.MinimumStock,
			ReorderLevel:    item.ReorderLevel,
			ReorderQuantity: item.ReorderQuantity,
			Priority:        priority,
		})
	}
	return rows
}

// BuildOrderSummary joins each order with its usage totals.
func BuildOrderSummary(orders []orderdomain.Order, usages []orderdomain.ActualUsage) []OrderSummaryRow {
	byOrder := usagesByOrder(usages)
	rows := make([]OrderSummaryRow, 0, len(orders))
	for _, order := range orders {
		row := OrderSummaryRow{
			OrderID:          order.OrderID,
			ItemName:         order.ItemName,
			TotalPlannedCost: order.PlannedAmount,
			Status:           StatusPending,
			CreatedAt:        order.CreatedAt,
		}
		if usage, ok := byOrder[order.OrderID]; ok {
			row.TotalActualCost = usage.ActualAmount
			row.TotalVariance = usage.Variance
			row.Status = usage.Status
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildDashboard folds all of a user's records into the dashboard
// payload. Profit/loss is the negated variance total: overspend reads
// as a negative figure.
func BuildDashboard(
	orders []orderdomain.Order,
	usages []orderdomain.ActualUsage,
	items []inventorydomain.Item,
	unreadAlerts int,
	recentAlerts []alertdomain.Alert,
) Dashboard {
	var plannedTotal, actualTotal, varianceTotal float64
	for _, o := range orders {
		plannedTotal += o.PlannedAmount
	}
	for _, u := range usages {
		actualTotal += u.ActualAmount
		varianceTotal += u.Variance
	}

	lowStock := 0
	byOrder := usagesByOrder(usages)

	chart := make([]PlannedVsActualPoint, 0, len(orders))
	for _, order := range orders {
		point := PlannedVsActualPoint{OrderID: order.OrderID, Planned: order.PlannedAmount}
		if usage, ok := byOrder[order.OrderID]; ok {
			point.Actual = usage.ActualAmount
		}
		chart = append(chart, point)
	}

	levels := make([]InventoryLevel, 0, len(items))
	for _, item := range items {
		if item.AlertStatus {
			lowStock++
		}
		levels = append(levels, InventoryLevel{
			ItemName:     item.ItemName,
			CurrentStock: item.CurrentStock,
			MinimumStock: item.MinimumStock,
			ReorderLevel: item.ReorderLevel,
		})
	}

	if recentAlerts == nil {
		recentAlerts = []alertdomain.Alert{}
	}

	return Dashboard{
		Stats: Stats{
			TotalOrders:      len(orders),
			TotalPlannedCost: fmt.Sprintf("%.2f", plannedTotal),
			TotalActualCost:  fmt.Sprintf("%.2f", actualTotal),
			TotalProfitLoss:  fmt.Sprintf("%.2f", -varianceTotal),
			LowStockItems:    lowStock,
			RecentAlerts:     unreadAlerts,
		},
		ChartData: ChartData{
			PlannedVsActual: chart,
			InventoryLevels: levels,
		},
		RecentAlerts: recentAlerts,
	}
}
