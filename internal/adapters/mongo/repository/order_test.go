package repository_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gostore/order-service/internal/adapters/mongo/repository"
	"github.com/gostore/order-service/internal/core/domain"
	"github.com/gostore/order-service/internal/core/port"
	"github.com/gostore/order-service/internal/core/serviceerrors"
)

func createTestOrder(t *testing.T, orderRepo port.OrderPort, customerID domain.ID) *domain.Order {
	t.Helper()
	items := []domain.OrderItem{
		*domain.NewOrderItem("aabbccddee112233aabbccd1", "Product A", 2, domain.Amount(1000)),
		*domain.NewOrderItem("aabbccddee112233aabbccd2", "Product B", 1, domain.Amount(2000)),
	}
	order := domain.NewOrder(customerID, items)
	if err := orderRepo.Create(context.Background(), order); err != nil {
		t.Fatalf("setup: create order failed: %v", err)
	}
	return order
}

func TestOrderRepository_Create(t *testing.T) {
	freshDB := testClient.Database("test_order_create")
	outboxRepo := repository.NewOutboxRepository(freshDB)
	orderRepo := repository.NewOrderRepository(freshDB, outboxRepo)
	ctx := context.Background()

	t.Run("creates order and assigns IDs", func(t *testing.T) {
		items := []domain.OrderItem{
			*domain.NewOrderItem("aabbccddee112233aabbccd1", "Product A", 2, domain.Amount(1500)),
		}
		order := domain.NewOrder("ccddaabbee112233aabbccdd", items)

		err := orderRepo.Create(ctx, order)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.ID == "" {
			t.Fatal("expected order ID to be assigned")
		}
		if len(string(order.ID)) != 24 {
			t.Fatalf("expected 24-char hex order ID, got %q", order.ID)
		}
		for i, item := range order.Items {
			if item.ID == "" {
				t.Fatalf("expected item[%d] ID to be assigned", i)
			}
		}
	})

	t.Run("writes order.created outbox entry in same transaction", func(t *testing.T) {
		txDB := testClient.Database("test_order_create_outbox")
		txOutboxRepo := repository.NewOutboxRepository(txDB)
		txOrderRepo := repository.NewOrderRepository(txDB, txOutboxRepo)

		items := []domain.OrderItem{
			*domain.NewOrderItem("aabbccddee112233aabbccd1", "Product A", 2, domain.Amount(1500)),
		}
		order := domain.NewOrder("ccddaabbee112233aabbccdd", items)

		if err := txOrderRepo.Create(ctx, order); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		entries, err := txOutboxRepo.FetchPending(ctx, 10)
		if err != nil {
			t.Fatalf("expected no error fetching outbox, got %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 outbox entry, got %d", len(entries))
		}
		if entries[0].EventName != "order.created" || entries[0].EntityName != "order" {
			t.Fatalf("unexpected outbox entry: %+v", entries[0])
		}

		var event domain.OrderCreatedEvent
		if err := json.Unmarshal(entries[0].EventData, &event); err != nil {
			t.Fatalf("failed to unmarshal event data: %v", err)
		}
		if event.OrderID != order.ID {
			t.Fatalf("expected event order id %s, got %s", order.ID, event.OrderID)
		}
		if event.TotalAmount != order.TotalAmount {
			t.Fatalf("expected event total %d, got %d", order.TotalAmount, event.TotalAmount)
		}
		if len(event.Items) != 1 {
			t.Fatalf("expected 1 event item, got %d", len(event.Items))
		}
	})

	t.Run("rejects order with pre-existing ID", func(t *testing.T) {
		items := []domain.OrderItem{
			*domain.NewOrderItem("aabbccddee112233aabbccd1", "Product A", 1, domain.Amount(500)),
		}
		order := domain.NewOrder("ccddaabbee112233aabbccdd", items)
		order.ID = "aabbccddee112233aabbccdd"

		err := orderRepo.Create(ctx, order)
		if err == nil {
			t.Fatal("expected error for order with existing ID, got nil")
		}
	})

	t.Run("persists snapshot prices and total", func(t *testing.T) {
		items := []domain.OrderItem{
			*domain.NewOrderItem("aabbccddee112233aabbccd1", "Product A", 3, domain.Amount(1000)),
			*domain.NewOrderItem("aabbccddee112233aabbccd2", "Product B", 2, domain.Amount(2500)),
		}
		order := domain.NewOrder("ccddaabbee112233aabbccdd", items)

		if err := orderRepo.Create(ctx, order); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		found, err := orderRepo.GetByID(ctx, order.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		// 3*1000 + 2*2500 = 3000 + 5000 = 8000
		if found.TotalAmount != domain.Amount(8000) {
			t.Fatalf("expected total 8000, got %d", found.TotalAmount)
		}
		if found.Items[0].UnitPrice != domain.Amount(1000) {
			t.Fatalf("expected unit price 1000, got %d", found.Items[0].UnitPrice)
		}
	})
}

func TestOrderRepository_GetByID(t *testing.T) {
	freshDB := testClient.Database("test_order_getbyid")
	outboxRepo := repository.NewOutboxRepository(freshDB)
	orderRepo := repository.NewOrderRepository(freshDB, outboxRepo)
	ctx := context.Background()
	customerID := domain.ID("ccddaabbee112233aabbccdd")

	t.Run("returns order by ID", func(t *testing.T) {
		created := createTestOrder(t, orderRepo, customerID)

		found, err := orderRepo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.ID != created.ID {
			t.Fatalf("expected id %s, got %s", created.ID, found.ID)
		}
		if found.CustomerID != customerID {
			t.Fatalf("expected customer id %s, got %s", customerID, found.CustomerID)
		}
		if len(found.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(found.Items))
		}
	})

	t.Run("returns not found for non-existing order", func(t *testing.T) {
		_, err := orderRepo.GetByID(ctx, "aabbccddee112233aabb0000")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("returns error for invalid ID", func(t *testing.T) {
		_, err := orderRepo.GetByID(ctx, "bad-id")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestOrderRepository_GetByCustomerID(t *testing.T) {
	freshDB := testClient.Database("test_order_by_customer")
	outboxRepo := repository.NewOutboxRepository(freshDB)
	orderRepo := repository.NewOrderRepository(freshDB, outboxRepo)
	ctx := context.Background()
	customerID := domain.ID("ccddaabbee112233aabbcc01")

	t.Run("returns empty list when no orders", func(t *testing.T) {
		orders, err := orderRepo.GetByCustomerID(ctx, customerID, 10, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(orders) != 0 {
			t.Fatalf("expected 0 orders, got %d", len(orders))
		}
	})

	t.Run("returns orders for customer only", func(t *testing.T) {
		createTestOrder(t, orderRepo, customerID)
		createTestOrder(t, orderRepo, customerID)

		otherCustomer := domain.ID("ccddaabbee112233aabbcc02")
		createTestOrder(t, orderRepo, otherCustomer)

		orders, err := orderRepo.GetByCustomerID(ctx, customerID, 10, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders for customer, got %d", len(orders))
		}
		for _, order := range orders {
			if order.CustomerID != customerID {
				t.Fatalf("expected customer id %s, got %s", customerID, order.CustomerID)
			}
		}
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		pagedCustomer := domain.ID("ccddaabbee112233aabbcc03")
		createTestOrder(t, orderRepo, pagedCustomer)
		createTestOrder(t, orderRepo, pagedCustomer)
		createTestOrder(t, orderRepo, pagedCustomer)

		first, err := orderRepo.GetByCustomerID(ctx, pagedCustomer, 2, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(first) != 2 {
			t.Fatalf("expected 2 orders on first page, got %d", len(first))
		}

		second, err := orderRepo.GetByCustomerID(ctx, pagedCustomer, 2, 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(second) != 1 {
			t.Fatalf("expected 1 order on second page, got %d", len(second))
		}
	})

	t.Run("returns error for invalid customer ID", func(t *testing.T) {
		_, err := orderRepo.GetByCustomerID(ctx, "bad-id", 10, 0)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}
