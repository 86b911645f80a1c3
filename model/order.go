package model

import "time"

type Order struct {
	DTO
	PublicCode      string      `gorm:"uniqueIndex;size:20" json:"publicCode"`
	OrderType       string      `gorm:"not null;index" json:"orderType"`
	SeatingUnitId   *uint       `gorm:"index" json:"seatingUnitId,omitempty"`
	TableNumber     *int        `json:"tableNumber,omitempty"`
	RoomNumber      *int        `json:"roomNumber,omitempty"`
	SeatingType     string      `json:"seatingType,omitempty"`
	Address         string      `json:"address,omitempty"`
	PhoneNumber     string      `json:"phoneNumber,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        int64       `json:"subtotal"`
	DeliveryFee     int64       `json:"deliveryFee"`
	ContainerCost   int64       `json:"containerCost"`
	Total           int64       `json:"total"`
	Status          string      `gorm:"not null;index" json:"status"`
	IsPaid          bool        `gorm:"not null;default:false;index" json:"isPaid"`
	PaidAt          *time.Time  `json:"paidAt,omitempty"`
	WaiterId        *uint       `gorm:"index" json:"waiterId,omitempty"`
	WaiterName      string      `json:"waiterName,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	ClientSignature string      `gorm:"index;size:64" json:"-"`
}

type OrderItem struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	OrderId        uint   `gorm:"index;not null" json:"-"`
	MenuItemId     uint   `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	Quantity       int    `json:"quantity"`
	NeedsContainer bool   `json:"needsContainer"`
	ContainerPrice int64  `json:"containerPrice"`
}

// OrderHistory is an archived copy of an order removed from the live table.
type OrderHistory struct {
	DTO
	OriginalOrderId uint      `gorm:"index" json:"originalOrderId"`
	PublicCode      string    `gorm:"index;size:20" json:"publicCode"`
	OrderType       string    `json:"orderType"`
	Status          string    `json:"status"`
	Total           int64     `json:"total"`
	WaiterName      string    `json:"waiterName"`
	OrderCreatedAt  time.Time `json:"orderCreatedAt"`
	ArchivedAt      time.Time `gorm:"index" json:"archivedAt"`
	Reason          string    `json:"reason"`
	Snapshot        string    `gorm:"type:text" json:"snapshot"`
}

type CartItemInput struct {
	Id       uint `json:"id" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,min=1,max=999"`
}

type PlaceOrderInput struct {
	OrderType       string          `json:"orderType" validate:"required,oneof=table delivery"`
	SeatingUnitId   *uint           `json:"seatingUnitId"`
	Address         string          `json:"address" validate:"max=500"`
	PhoneNumber     string          `json:"phoneNumber" validate:"max=30"`
	Notes           string          `json:"notes" validate:"max=1000"`
	Items           []CartItemInput `json:"items" validate:"dive"`
	ClientSignature string          `json:"clientSignature" validate:"max=64"`
}

// OrderMemo is what the client keeps locally to auto-fill its next order.
type OrderMemo struct {
	SeatingUnitId *uint     `json:"seatingUnitId,omitempty"`
	WaiterId      *uint     `json:"waiterId,omitempty"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type PlaceOrderResult struct {
	Order           Order     `json:"order"`
	Memo            OrderMemo `json:"memo"`
	ClientSignature string    `json:"clientSignature"`
	ReusedSeat      bool      `json:"reusedSeat"`
}

type OrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type OrderNotesInput struct {
	Notes string `json:"notes" validate:"max=1000"`
}

type OrderLookupInput struct {
	Codes []string `json:"codes" validate:"required,min=1,max=50,dive,required"`
}

type FilterOrder struct {
	Pagination
	Status    string `query:"status"`
	OrderType string `query:"orderType"`
	From      string `query:"from"`
	To        string `query:"to"`
	IsPaid    *bool  `query:"isPaid"`
}

type FilterOrderHistory struct {
	Pagination
	From string `query:"from"`
	To   string `query:"to"`
}

type OrderBoard struct {
	Orders []Order        `json:"orders"`
	Counts map[string]int `json:"counts"`
}
