package domain

import "time"

// Order is an immutable aggregate: once created, its line items and their
// snapshotted unit prices never change.
type Order struct {
	ID          ID
	CustomerID  ID
	Items       []OrderItem
	TotalAmount Amount
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem carries the product's price as it was at order time. Later
// catalog price changes do not affect it.
type OrderItem struct {
	ID          ID
	ProductID   ID
	ProductName string
	Quantity    int
	UnitPrice   Amount
}

func (o *OrderItem) CalculateTotalAmount() Amount {
	return o.UnitPrice.Multiply(o.Quantity)
}

func NewOrderItem(productID ID, productName string, quantity int, unitPrice Amount) *OrderItem {
	return &OrderItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
}

func CalculateTotalAmount(items []OrderItem) Amount {
	totalAmount := Amount(0)
	for _, item := range items {
		totalAmount = totalAmount.Add(item.UnitPrice.Multiply(item.Quantity))
	}
	return totalAmount
}

func NewOrder(customerID ID, items []OrderItem) *Order {
	return &Order{
		CustomerID:  customerID,
		Items:       items,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		TotalAmount: CalculateTotalAmount(items),
	}
}

type OrderCreatedItem struct {
	ProductID ID     `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice Amount `json:"unit_price"`
}

type OrderCreatedEvent struct {
	OrderID     ID                 `json:"order_id"`
	CustomerID  ID                 `json:"customer_id"`
	Items       []OrderCreatedItem `json:"items"`
	TotalAmount Amount             `json:"total_amount"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (e *OrderCreatedEvent) GetName() string {
	return "order.created"
}

func (e *OrderCreatedEvent) GetEntityName() string {
	return "order"
}

func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	items := make([]OrderCreatedItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderCreatedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return &OrderCreatedEvent{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Items:       items,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
}
