package domain

import (
	"testing"
	"time"

	alertdomain "github.com/sumitd/costtrack/internal/alert/domain"
	inventorydomain "github.com/sumitd/costtrack/internal/inventory/domain"
	orderdomain "github.com/sumitd/costtrack/internal/order/domain"
)

func sampleOrders() []orderdomain.Order {
	return []orderdomain.Order{
		{OrderID: "ORD-1", ItemName: "Steel", PlannedQty: 100, PlannedRate: 50, PlannedAmount: 5000, CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{OrderID: "ORD-2", ItemName: "Copper", PlannedQty: 10, PlannedRate: 200, PlannedAmount: 2000},
	}
}

func sampleUsages() []orderdomain.ActualUsage {
	return []orderdomain.ActualUsage{
		{OrderID: "ORD-1", ActualQty: 100, ActualRate: 60, ActualAmount: 6000, Variance: 1000, Status: "Loss"},
	}
}

func TestBuildVarianceReport(t *testing.T) {
	rows := BuildVarianceReport(sampleOrders(), sampleUsages())
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0].Variance != 1000 || rows[0].Status != "Loss" {
		t.Errorf("ORD-1 row = %+v, want variance 1000 and Loss", rows[0])
	}
	if rows[1].ActualAmount != 0 || rows[1].Variance != 0 || rows[1].Status != StatusPending {
		t.Errorf("ORD-2 row = %+v, want zero amounts and Pending", rows[1])
	}
}

func TestBuildReorderReport(t *testing.T) {
	rows := BuildReorderReport([]inventorydomain.Item{
		{ItemName: "Bolts", CurrentStock: 5, MinimumStock: 10, ReorderLevel: 13, ReorderQuantity: 8},
		{ItemName: "Nuts", CurrentStock: 12, MinimumStock: 10, ReorderLevel: 15, ReorderQuantity: 3},
	})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Priority != "Urgent" {
		t.Errorf("Bolts priority = %q, want Urgent", rows[0].Priority)
	}
	if rows[1].Priority != "Normal" {
		t.Errorf("Nuts priority = %q, want Normal", rows[1].Priority)
	}
}

func TestBuildOrderSummary(t *testing.T) {
	rows := BuildOrderSummary(sampleOrders(), sampleUsages())
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].TotalActualCost != 6000 || rows[0].TotalVariance != 1000 {
		t.Errorf("ORD-1 summary = %+v", rows[0])
	}
	if rows[0].CreatedAt.IsZero() {
		t.Error("expected ORD-1 CreatedAt to be carried over")
	}
	if rows[1].Status != StatusPending {
		t.Errorf("ORD-2 status = %q, want Pending", rows[1].Status)
	}
}

func TestBuildDashboard(t *testing.T) {
	items := []inventorydomain.Item{
		{ItemName: "Bolts", CurrentStock: 5, MinimumStock: 10, ReorderLevel: 13, ReorderQuantity: 8, AlertStatus: true},
		{ItemName: "Nuts", CurrentStock: 50, MinimumStock: 10, ReorderLevel: 15, AlertStatus: false},
	}
	alerts := []alertdomain.Alert{{ID: 1, Message: "High variance for order ORD-1: Loss of ₹1000.00"}}

	d := BuildDashboard(sampleOrders(), sampleUsages(), items, 3, alerts)

	if d.Stats.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", d.Stats.TotalOrders)
	}
	if d.Stats.TotalPlannedCost != "7000.00" {
		t.Errorf("TotalPlannedCost = %q, want 7000.00", d.Stats.TotalPlannedCost)
	}
	if d.Stats.TotalActualCost != "6000.00" {
		t.Errorf("TotalActualCost = %q, want 6000.00", d.Stats.TotalActualCost)
	}
	// Overspend of 1000 reads as a profit/loss of -1000.
	if d.Stats.TotalProfitLoss != "-1000.00" {
		t.Errorf("TotalProfitLoss = %q, want -1000.00", d.Stats.TotalProfitLoss)
	}
	if d.Stats.LowStockItems != 1 {
		t.Errorf("LowStockItems = %d, want 1", d.Stats.LowStockItems)
	}
	if d.Stats.RecentAlerts != 3 {
		t.Errorf("RecentAlerts = %d, want 3", d.Stats.RecentAlerts)
	}

	if len(d.ChartData.PlannedVsActual) != 2 {
		t.Fatalf("got %d chart points, want 2", len(d.ChartData.PlannedVsActual))
	}
	if d.ChartData.PlannedVsActual[1].Actual != 0 {
		t.Errorf("ORD-2 actual = %v, want 0", d.ChartData.PlannedVsActual[1].Actual)
	}
	if len(d.ChartData.InventoryLevels) != 2 {
		t.Errorf("got %d inventory levels, want 2", len(d.ChartData.InventoryLevels))
	}
	if len(d.RecentAlerts) != 1 {
		t.Errorf("got %d recent alerts, want 1", len(d.RecentAlerts))
	}
}

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(nil, nil, nil, 0, nil)
	if d.Stats.TotalPlannedCost != "0.00" || d.Stats.TotalProfitLoss != "0.00" {
		t.Errorf("empty dashboard stats = %+v", d.Stats)
	}
	if d.RecentAlerts == nil {
		t.Error("RecentAlerts should marshal as an empty array, not null")
	}
}
