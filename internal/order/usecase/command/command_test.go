package command

import (
	"context"
	"errors"
	"fmt"
	"testing"

	alertdomain "github.com/sumitd/costtrack/internal/alert/domain"
	alertcommand "github.com/sumitd/costtrack/internal/alert/usecase/command"
	"github.com/sumitd/costtrack/internal/costing"
	"github.com/sumitd/costtrack/internal/order/domain"
)

// In-memory fakes keyed the same way the store is: (user id, order id).

type memOrderRepo struct {
	orders map[string]*domain.Order
	nextID uint
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*domain.Order{}}
}

func (r *memOrderRepo) key(userID uint, orderID string) string {
	return fmt.Sprintf("%d/%s", userID, orderID)
}

func (r *memOrderRepo) Create(order *domain.Order) error {
	k := r.key(order.UserID, order.OrderID)
	if _, ok := r.orders[k]; ok {
		return domain.ErrDuplicateOrderID
	}
	r.nextID++
	order.ID = r.nextID
	cp := *order
	r.orders[k] = &cp
	return nil
}

func (r *memOrderRepo) FindByOrderID(userID uint, orderID string) (*domain.Order, error) {
	o, ok := r.orders[r.key(userID, orderID)]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) FindByUser(userID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) Update(order *domain.Order) error {
	k := r.key(order.UserID, order.OrderID)
	if _, ok := r.orders[k]; !ok {
		return domain.ErrOrderNotFound
	}
	cp := *order
	r.orders[k] = &cp
	return nil
}

func (r *memOrderRepo) Delete(userID uint, orderID string) error {
	k := r.key(userID, orderID)
	if _, ok := r.orders[k]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, k)
	return nil
}

func (r *memOrderRepo) Count(userID uint) (int64, error) {
	orders, _ := r.FindByUser(userID)
	return int64(len(orders)), nil
}

type memUsageRepo struct {
	usages map[string]*domain.ActualUsage
	nextID uint
}

func newMemUsageRepo() *memUsageRepo {
	return &memUsageRepo{usages: map[string]*domain.ActualUsage{}}
}

func (r *memUsageRepo) key(userID uint, orderID string) string {
	return fmt.Sprintf("%d/%s", userID, orderID)
}

func (r *memUsageRepo) Upsert(usage *domain.ActualUsage) (bool, error) {
	k := r.key(usage.UserID, usage.OrderID)
	if existing, ok := r.usages[k]; ok {
		existing.ActualQty = usage.ActualQty
		existing.ActualRate = usage.ActualRate
		existing.ActualAmount = usage.ActualAmount
		existing.Variance = usage.Variance
		existing.Status = usage.Status
		*usage = *existing
		return false, nil
	}
	r.nextID++
	usage.ID = r.nextID
	cp := *usage
	r.usages[k] = &cp
	return true, nil
}

func (r *memUsageRepo) FindByOrderID(userID uint, orderID string) (*domain.ActualUsage, error) {
	u, ok := r.usages[r.key(userID, orderID)]
	if !ok {
		return nil, domain.ErrUsageNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUsageRepo) FindByUser(userID uint) ([]domain.ActualUsage, error) {
	var out []domain.ActualUsage
	for _, u := range r.usages {
		if u.UserID == userID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUsageRepo) DeleteByOrderID(userID uint, orderID string) error {
	delete(r.usages, r.key(userID, orderID))
	return nil
}

type memAlertRepo struct {
	alerts []alertdomain.Alert
	nextID uint
}

func (r *memAlertRepo) Create(alert *alertdomain.Alert) error {
	r.nextID++
	alert.ID = r.nextID
	r.alerts = append(r.alerts, *alert)
	return nil
}

func (r *memAlertRepo) FindByUser(userID uint) ([]alertdomain.Alert, error) { return r.alerts, nil }
func (r *memAlertRepo) FindUnread(userID uint) ([]alertdomain.Alert, error) { return r.alerts, nil }
func (r *memAlertRepo) FindRecent(userID uint, limit int) ([]alertdomain.Alert, error) {
	return r.alerts, nil
}
func (r *memAlertRepo) CountUnread(userID uint) (int64, error) { return int64(len(r.alerts)), nil }
func (r *memAlertRepo) MarkRead(userID, id uint) (*alertdomain.Alert, error) {
	return nil, alertdomain.ErrAlertNotFound
}
func (r *memAlertRepo) MarkAllRead(userID uint) error { return nil }
func (r *memAlertRepo) Delete(userID, id uint) error  { return alertdomain.ErrAlertNotFound }

func newFixture() (*memOrderRepo, *memUsageRepo, *memAlertRepo, *RecordUsageHandler) {
	orders := newMemOrderRepo()
	usages := newMemUsageRepo()
	alerts := &memAlertRepo{}
	raise := alertcommand.NewRaiseAlertHandler(alerts, nil)
	return orders, usages, alerts, NewRecordUsageHandler(orders, usages, raise)
}

func TestCreateOrder(t *testing.T) {
	orders := newMemOrderRepo()
	h := NewCreateOrderHandler(orders)

	order, err := h.Handle(CreateOrderCommand{
		UserID: 1, OrderID: "O1", ItemName: "Steel", PlannedQty: 100, PlannedRate: 50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.PlannedAmount != 5000 {
		t.Errorf("expected planned amount 5000, got %v", order.PlannedAmount)
	}

	// Same order id for the same user is a conflict
	_, err = h.Handle(CreateOrderCommand{
		UserID: 1, OrderID: "O1", ItemName: "Steel", PlannedQty: 10, PlannedRate: 5,
	})
	if !errors.Is(err, domain.ErrDuplicateOrderID) {
		t.Errorf("expected ErrDuplicateOrderID, got %v", err)
	}

	// Same order id for another user is fine
	if _, err := h.Handle(CreateOrderCommand{
		UserID: 2, OrderID: "O1", ItemName: "Steel", PlannedQty: 10, PlannedRate: 5,
	}); err != nil {
		t.Errorf("unexpected error for second user: %v", err)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	h := NewCreateOrderHandler(newMemOrderRepo())

	testCases := []struct {
		name string
		cmd  CreateOrderCommand
	}{
		{"missing order id", CreateOrderCommand{UserID: 1, ItemName: "Steel", PlannedQty: 1, PlannedRate: 1}},
		{"missing item name", CreateOrderCommand{UserID: 1, OrderID: "O1", PlannedQty: 1, PlannedRate: 1}},
		{"zero qty", CreateOrderCommand{UserID: 1, OrderID: "O1", ItemName: "Steel", PlannedRate: 1}},
		{"negative rate", CreateOrderCommand{UserID: 1, OrderID: "O1", ItemName: "Steel", PlannedQty: 1, PlannedRate: -2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := h.Handle(tc.cmd); !errors.Is(err, costing.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRecordUsageComputesVariance(t *testing.T) {
	orders, _, alerts, h := newFixture()
	create := NewCreateOrderHandler(orders)
	if _, err := create.Handle(CreateOrderCommand{
		UserID: 1, OrderID: "O1", ItemName: "Steel", PlannedQty: 100, PlannedRate: 50,
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	res, err := h.Handle(context.Background(), RecordUsageCommand{
		UserID: 1, OrderID: "O1", ActualQty: 100, ActualRate: 60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Created {
		t.Error("expected first submission to create the usage")
	}
	if res.Usage.ActualAmount != 6000 {
		t.Errorf("expected actual amount 6000, got %v", res.Usage.ActualAmount)
	}
	if res.Usage.Variance != 1000 {
		t.Errorf("expected variance 1000, got %v", res.Usage.Variance)
	}
	if res.Usage.Status != string(costing.StatusLoss) {
		t.Errorf("expected status Loss, got %s", res.Usage.Status)
	}

	// 1000 > 0.1×5000 but not > 0.2×5000, so exactly one high alert
	if len(alerts.alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts.alerts))
	}
	if alerts.alerts[0].Priority != alertdomain.PriorityHigh {
		t.Errorf("expected high priority, got %s", alerts.alerts[0].Priority)
	}
	if alerts.alerts[0].Type != alertdomain.TypeVariance {
		t.Errorf("expected variance alert, got %s", alerts.alerts[0].Type)
	}
}

func TestRecordUsageUpsertIsIdempotent(t *testing.T) {
	orders, usages, _, h := newFixture()
	create := NewCreateOrderHandler(orders)
	if _, err := create.Handle(CreateOrderCommand{
		UserID: 1, OrderID: "O1", ItemName: "Steel", PlannedQty: 100, PlannedRate: 50,
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	first, err := h.Handle(context.Background(), RecordUsageCommand{UserID: 1, OrderID: "O1", ActualQty: 100, ActualRate: 60})
	if err != nil {
		t.Fatalf("first submission: %v", err)
	}
	second, err := h.Handle(context.Background(), RecordUsageCommand{UserID: 1, OrderID: "O1", ActualQty: 90, ActualRate: 55})
	if err != nil {
		t.Fatalf("second submission: %v", err)
	}

	if second.Created {
		t.Error("expected second submission to overwrite, not create")
	}
	if second.Usage.ID != first.Usage.ID {
		t.Errorf("expected the same usage row, got ids %d and %d", first.Usage.ID, second.Usage.ID)
	}
	if len(usages.usages) != 1 {
		t.Fatalf("expected exactly one usage record, got %d", len(usages.usages))
	}
	if second.Usage.ActualAmount != 4950 {
		t.Errorf("expected overwritten amount 4950, got %v", second.Usage.ActualAmount)
	}
}

func TestRecordUsageBelowThresholdRaisesNoAlert(t *testing.T) {
	orders, _, alerts, h := newFixture()
	create := NewCreateOrderHandler(orders)
	if _, err := create.Handle(CreateOrderCommand{
		UserID: 1, OrderID: "O1", ItemName: "Steel", PlannedQty: 100, PlannedRate: 50,
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	// variance = 500 = exactly 10% of plan: strictly-greater rule says no
	if _, err := h.Handle(context.Background(), RecordUsageCommand{UserID: 1, OrderID: "O1", ActualQty: 100, ActualRate: 55}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts.alerts) != 0 {
		t.Errorf("expected no alerts, got %d", len(alerts.alerts))
	}
}

func TestRecordUsageUnknownOrder(t *testing.T) {
	_, usages, alerts, h := newFixture()

	_, err := h.Handle(context.Background(), RecordUsageCommand{UserID: 1, OrderID: "missing", ActualQty: 1, ActualRate: 1})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if len(usages.usages) != 0 || len(alerts.alerts) != 0 {
		t.Error("expected no side effects for unknown order")
	}
}

func TestDeleteOrderCascades(t *testing.T) {
	orders, usages, _, record := newFixture()
	create := NewCreateOrderHandler(orders)
	del := NewDeleteOrderHandler(orders, usages)

	if _, err := create.Handle(CreateOrderCommand{
		UserID: 1, OrderID: "O1", ItemName: "Steel", PlannedQty: 100, PlannedRate: 50,
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := record.Handle(context.Background(), RecordUsageCommand{UserID: 1, OrderID: "O1", ActualQty: 100, ActualRate: 60}); err != nil {
		t.Fatalf("record usage: %v", err)
	}

	if err := del.Handle(DeleteOrderCommand{UserID: 1, OrderID: "O1"}); err != nil {
		t.Fatalf("delete order: %v", err)
	}

	if _, err := orders.FindByOrderID(1, "O1"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Error("expected order to be gone")
	}
	if _, err := usages.FindByOrderID(1, "O1"); !errors.Is(err, domain.ErrUsageNotFound) {
		t.Error("expected usage to be cascade-deleted")
	}
}

func TestDeleteOrderMissing(t *testing.T) {
	orders, usages, _, _ := newFixture()
	del := NewDeleteOrderHandler(orders, usages)

	err := del.Handle(DeleteOrderCommand{UserID: 1, OrderID: "nope"})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateOrderRecomputesPlannedAmount(t *testing.T) {
	orders := newMemOrderRepo()
	create := NewCreateOrderHandler(orders)
	update := NewUpdateOrderHandler(orders)

	if _, err := create.Handle(CreateOrderCommand{
		UserID: 1, OrderID: "O1", ItemName: "Steel", PlannedQty: 100, PlannedRate: 50,
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	order, err := update.Handle(UpdateOrderCommand{
		UserID: 1, OrderID: "O1", ItemName: "Steel", PlannedQty: 200, PlannedRate: 40,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.PlannedAmount != 8000 {
		t.Errorf("expected recomputed planned amount 8000, got %v", order.PlannedAmount)
	}
}
