package storefront

import "time"

// OrderStatus values are owned by the API.
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPending OrderStatus = "pending"
	OrderStatusDone    OrderStatus = "done"
)

type Order struct {
	ID          string      `json:"_id"`
	Number      int         `json:"number"`
	Name        string      `json:"name"`
	Status      OrderStatus `json:"status"`
	Ingredients []string    `json:"ingredients"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// FeedSnapshot is one observation of the order feed: the visible orders plus
// the all-time and today's totals. The live feed delivers a fresh snapshot on
// every change; the REST feed endpoint returns the same shape once.
type FeedSnapshot struct {
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	TotalToday int     `json:"totalToday"`
}
