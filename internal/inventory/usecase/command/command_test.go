package command

import (
	"context"
	"errors"
	"fmt"
	"testing"

	alertdomain "github.com/sumitd/costtrack/internal/alert/domain"
	alertcommand "github.com/sumitd/costtrack/internal/alert/usecase/command"
	"github.com/sumitd/costtrack/internal/costing"
	"github.com/sumitd/costtrack/internal/inventory/domain"
)

type memItemRepo struct {
	items map[string]*domain.Item
	next  uint
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[string]*domain.Item)}
}

func itemKey(userID uint, name string) string {
	return fmt.Sprintf("%d/%s", userID, name)
}

func (m *memItemRepo) Upsert(item *domain.Item) (bool, error) {
	key := itemKey(item.UserID, item.ItemName)
	if existing, ok := m.items[key]; ok {
		item.ID = existing.ID
		m.items[key] = item
		return false, nil
	}
	m.next++
	item.ID = m.next
	m.items[key] = item
	return true, nil
}

func (m *memItemRepo) FindByName(userID uint, itemName string) (*domain.Item, error) {
	item, ok := m.items[itemKey(userID, itemName)]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (m *memItemRepo) FindByUser(userID uint) ([]domain.Item, error) {
	var out []domain.Item
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *memItemRepo) FindLowStock(userID uint) ([]domain.Item, error) {
	var out []domain.Item
	for _, item := range m.items {
		if item.UserID == userID && item.AlertStatus {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *memItemRepo) Delete(userID uint, itemName string) error {
	key := itemKey(userID, itemName)
	if _, ok := m.items[key]; !ok {
		return domain.ErrItemNotFound
	}
	delete(m.items, key)
	return nil
}

type memAlertRepo struct {
	alerts []*alertdomain.Alert
}

func (m *memAlertRepo) Create(a *alertdomain.Alert) error {
	a.ID = uint(len(m.alerts) + 1)
	m.alerts = append(m.alerts, a)
	return nil
}

func (m *memAlertRepo) FindByUser(userID uint) ([]alertdomain.Alert, error) { return nil, nil }
func (m *memAlertRepo) FindUnread(userID uint) ([]alertdomain.Alert, error) { return nil, nil }
func (m *memAlertRepo) FindRecent(userID uint, limit int) ([]alertdomain.Alert, error) {
	return nil, nil
}
func (m *memAlertRepo) CountUnread(userID uint) (int64, error) { return 0, nil }
func (m *memAlertRepo) MarkRead(userID, id uint) (*alertdomain.Alert, error) { return nil, nil }
func (m *memAlertRepo) MarkAllRead(userID uint) error { return nil }
func (m *memAlertRepo) Delete(userID, id uint) error { return nil }

type fixture struct {
	items  *memItemRepo
	alerts *memAlertRepo
	upsert *UpsertItemHandler
	remove *DeleteItemHandler
}

func newFixture() *fixture {
	items := newMemItemRepo()
	alerts := &memAlertRepo{}
	raise := alertcommand.NewRaiseAlertHandler(alerts, nil)
	return &fixture{
		items:  items,
		alerts: alerts,
		upsert: NewUpsertItemHandler(items, raise),
		remove: NewDeleteItemHandler(items),
	}
}

func TestUpsertItemDerivesReorderFigures(t *testing.T) {
	f := newFixture()

	res, err := f.upsert.Handle(context.Background(), UpsertItemCommand{
		UserID:           1,
		ItemName:         "Bolts",
		CurrentStock:     5,
		MinimumStock:     10,
		DailyConsumption: 2,
		LeadTime:         3,
		SafetyStock:      7,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !res.Created {
		t.Error("expected a newly created item")
	}
	if res.Item.ReorderLevel != 13 {
		t.Errorf("ReorderLevel = %v, want 13", res.Item.ReorderLevel)
	}
	if res.Item.ReorderQuantity != 8 {
		t.Errorf("ReorderQuantity = %v, want 8", res.Item.ReorderQuantity)
	}
	if !res.Item.AlertStatus {
		t.Error("expected AlertStatus to be set")
	}
}

func TestUpsertItemRaisesUrgentReorderAlert(t *testing.T) {
	f := newFixture()

	// Stock below the minimum escalates the reorder alert to urgent.
	_, err := f.upsert.Handle(context.Background(), UpsertItemCommand{
		UserID:           1,
		ItemName:         "Bolts",
		CurrentStock:     5,
		MinimumStock:     10,
		DailyConsumption: 2,
		LeadTime:         3,
		SafetyStock:      7,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if len(f.alerts.alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(f.alerts.alerts))
	}
	alert := f.alerts.alerts[0]
	if alert.Priority != alertdomain.PriorityUrgent {
		t.Errorf("Priority = %q, want %q", alert.Priority, alertdomain.PriorityUrgent)
	}
	if alert.Type != alertdomain.TypeReorder {
		t.Errorf("Type = %q, want %q", alert.Type, alertdomain.TypeReorder)
	}
	want := "Bolts needs reorder. Current: 5, Reorder Qty: 8.00"
	if alert.Message != want {
		t.Errorf("Message = %q, want %q", alert.Message, want)
	}
}

func TestUpsertItemWellStockedRaisesNoAlert(t *testing.T) {
	f := newFixture()

	res, err := f.upsert.Handle(context.Background(), UpsertItemCommand{
		UserID:           1,
		ItemName:         "Steel",
		CurrentStock:     100,
		MinimumStock:     10,
		DailyConsumption: 2,
		LeadTime:         3,
		SafetyStock:      7,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if res.Item.ReorderQuantity != 0 {
		t.Errorf("ReorderQuantity = %v, want 0", res.Item.ReorderQuantity)
	}
	if res.Item.AlertStatus {
		t.Error("expected AlertStatus to be clear")
	}
	if len(f.alerts.alerts) != 0 {
		t.Errorf("got %d alerts, want 0", len(f.alerts.alerts))
	}
}

func TestUpsertItemOverwrites(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cmd := UpsertItemCommand{
		UserID:           1,
		ItemName:         "Bolts",
		CurrentStock:     5,
		MinimumStock:     10,
		DailyConsumption: 2,
		LeadTime:         3,
		SafetyStock:      7,
	}
	if _, err := f.upsert.Handle(ctx, cmd); err != nil {
		t.Fatalf("first Handle() error = %v", err)
	}

	// Restocking the same item replaces the row and clears the flag.
	cmd.CurrentStock = 50
	res, err := f.upsert.Handle(ctx, cmd)
	if err != nil {
		t.Fatalf("second Handle() error = %v", err)
	}
	if res.Created {
		t.Error("expected an overwrite, not a new row")
	}
	if res.Item.AlertStatus {
		t.Error("expected AlertStatus to be clear after restock")
	}

	items, _ := f.items.FindByUser(1)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].CurrentStock != 50 {
		t.Errorf("CurrentStock = %v, want 50", items[0].CurrentStock)
	}
}

func TestUpsertItemValidation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		cmd  UpsertItemCommand
	}{
		{"missing name", UpsertItemCommand{UserID: 1, CurrentStock: 5}},
		{"negative stock", UpsertItemCommand{UserID: 1, ItemName: "Bolts", CurrentStock: -1}},
		{"negative lead time", UpsertItemCommand{UserID: 1, ItemName: "Bolts", LeadTime: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.upsert.Handle(context.Background(), tt.cmd)
			if !errors.Is(err, costing.ErrInvalidInput) {
				t.Errorf("Handle() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestDeleteItem(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.upsert.Handle(ctx, UpsertItemCommand{
		UserID: 1, ItemName: "Bolts", CurrentStock: 50,
	}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if err := f.remove.Handle(ctx, DeleteItemCommand{UserID: 1, ItemName: "Bolts"}); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if err := f.remove.Handle(ctx, DeleteItemCommand{UserID: 1, ItemName: "Bolts"}); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("second delete error = %v, want ErrItemNotFound", err)
	}
}
