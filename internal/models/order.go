package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	OrderNumber   string         `json:"order_number" gorm:"unique;not null"`
	UserID        uint           `json:"user_id" gorm:"not null;index"`
	User          User           `json:"user,omitempty"`
	RestaurantID  uint           `json:"restaurant_id" gorm:"not null;index"`
	Restaurant    Restaurant     `json:"restaurant,omitempty"`
	AddressID     *uint          `json:"address_id"`
	Address       *Address       `json:"address,omitempty"`
	Status        OrderStatus    `json:"status" gorm:"type:varchar(20);default:'CREATED'"`
	PaymentStatus PaymentStatus  `json:"payment_status" gorm:"type:varchar(20);default:'UNPAID'"`
	PaymentMethod PaymentMethod  `json:"payment_method" gorm:"type:varchar(20);default:'CASH_ON_DELIVERY'"`
	Subtotal      float64        `json:"subtotal" gorm:"not null"`
	DeliveryFee   float64        `json:"delivery_fee" gorm:"not null"`
	Tax           float64        `json:"tax" gorm:"not null"`
	Discount      float64        `json:"discount" gorm:"not null"`
	Total         float64        `json:"total" gorm:"not null"`
	Notes         string         `json:"notes" gorm:"type:text"`
	DeliveredAt   *time.Time     `json:"delivered_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	Items []OrderItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
}

// OrderItem captures one catalog line at order time. The unit price is a
// snapshot; later catalog price changes never touch placed orders.
type OrderItem struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	OrderID    uint           `json:"order_id" gorm:"not null;index"`
	MenuItemID uint           `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem       `json:"menu_item,omitempty"`
	Quantity   int            `json:"quantity" gorm:"not null"`
	UnitPrice  float64        `json:"unit_price" gorm:"not null"`
	Notes      string         `json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderCreated        OrderStatus = "CREATED"
	OrderConfirmed      OrderStatus = "CONFIRMED"
	OrderPreparing      OrderStatus = "PREPARING"
	OrderReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderPickedUp       OrderStatus = "PICKED_UP"
	OrderEnRoute        OrderStatus = "EN_ROUTE"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

// orderTransitions is the forward-only progression. CANCELLED is reachable
// from every non-terminal state; DELIVERED and CANCELLED are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderCreated:        {OrderConfirmed, OrderCancelled},
	OrderConfirmed:      {OrderPreparing, OrderCancelled},
	OrderPreparing:      {OrderReadyForPickup, OrderCancelled},
	OrderReadyForPickup: {OrderPickedUp, OrderCancelled},
	OrderPickedUp:       {OrderEnRoute, OrderCancelled},
	OrderEnRoute:        {OrderDelivered, OrderCancelled},
	OrderDelivered:      {},
	OrderCancelled:      {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentCard           PaymentMethod = "CARD"
)
