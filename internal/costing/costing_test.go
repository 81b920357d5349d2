package costing

import (
	"errors"
	"math"
	"testing"
)

func TestPlannedAmount(t *testing.T) {
	testCases := []struct {
		name    string
		qty     float64
		rate    float64
		want    float64
		wantErr bool
	}{
		{"steel order", 100, 50, 5000, false},
		{"fractional rate", 3, 2.5, 7.5, false},
		{"zero qty", 0, 50, 0, true},
		{"zero rate", 100, 0, 0, true},
		{"negative qty", -1, 50, 0, true},
		{"negative rate", 100, -2, 0, true},
		{"nan qty", math.NaN(), 50, 0, true},
		{"inf rate", 100, math.Inf(1), 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PlannedAmount(tc.qty, tc.rate)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestActualAmount(t *testing.T) {
	got, err := ActualAmount(100, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6000 {
		t.Errorf("expected 6000, got %v", got)
	}

	if _, err := ActualAmount(0, 60); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for zero qty, got %v", err)
	}
}

func TestVariance(t *testing.T) {
	if v := Variance(6000, 5000); v != 1000 {
		t.Errorf("expected variance 1000, got %v", v)
	}
	if v := Variance(4500, 5000); v != -500 {
		t.Errorf("expected variance -500, got %v", v)
	}
	if v := Variance(5000, 5000); v != 0 {
		t.Errorf("expected variance 0, got %v", v)
	}
}

func TestClassifyVariance(t *testing.T) {
	testCases := []struct {
		variance float64
		want     Status
	}{
		{1000, StatusLoss},
		{0.01, StatusLoss},
		{-500, StatusProfit},
		{-0.01, StatusProfit},
		{0, StatusBalanced},
	}

	for _, tc := range testCases {
		if got := ClassifyVariance(tc.variance); got != tc.want {
			t.Errorf("ClassifyVariance(%v): expected %s, got %s", tc.variance, tc.want, got)
		}
	}
}

func TestReorderLevel(t *testing.T) {
	// dailyConsumption=2, leadTime=5, safetyStock=3 -> 13
	if got := ReorderLevel(2, 5, 3); got != 13 {
		t.Errorf("expected reorder level 13, got %v", got)
	}
}

func TestReorderQuantityNeverNegative(t *testing.T) {
	testCases := []struct {
		level   float64
		current float64
		want    float64
	}{
		{13, 5, 8},
		{13, 13, 0},
		{13, 50, 0},
		{0, 10, 0},
	}

	for _, tc := range testCases {
		got := ReorderQuantity(tc.level, tc.current)
		if got != tc.want {
			t.Errorf("ReorderQuantity(%v, %v): expected %v, got %v", tc.level, tc.current, tc.want, got)
		}
		if got < 0 {
			t.Errorf("ReorderQuantity(%v, %v) returned negative %v", tc.level, tc.current, got)
		}
	}
}

func TestReorderNeeded(t *testing.T) {
	if !ReorderNeeded(8) {
		t.Error("expected reorder to be needed for qty 8")
	}
	if ReorderNeeded(0) {
		t.Error("expected no reorder for qty 0")
	}
}

// Full arithmetic chain for a tracked order.
func TestOrderCostingScenario(t *testing.T) {
	planned, err := PlannedAmount(100, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	actual, err := ActualAmount(100, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	variance := Variance(actual, planned)
	if variance != 1000 {
		t.Errorf("expected variance 1000, got %v", variance)
	}
	if status := ClassifyVariance(variance); status != StatusLoss {
		t.Errorf("expected Loss, got %s", status)
	}
}
