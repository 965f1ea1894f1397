package kafka

import "time"

// OrderPlacedEvent is emitted once a checkout has been committed
type OrderPlacedEvent struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	OrderID   uint             `json:"order_id"`
	Reference string           `json:"reference"`
	UserID    uint             `json:"user_id"`
	TotalQty  int              `json:"total_qty"`
	TotalCost float64          `json:"total_cost"`
	Items     []OrderEventItem `json:"items"`
	Timestamp time.Time        `json:"timestamp"`
}

// OrderEventItem is one purchased line of an order
type OrderEventItem struct {
	ProductID uint    `json:"product_id"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
