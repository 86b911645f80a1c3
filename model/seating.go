package model

import "time"

type SeatingType struct {
	DTO
	Name            string `gorm:"uniqueIndex;not null" json:"name"`
	DefaultCapacity int    `gorm:"not null;default:4" json:"defaultCapacity"`
	Count           int    `gorm:"not null;default:0" json:"count"`
}

type SeatingUnit struct {
	DTO
	Number     int        `gorm:"not null;uniqueIndex:idx_seating_number_type" json:"number"`
	Type       string     `gorm:"not null;uniqueIndex:idx_seating_number_type;index" json:"type"`
	Seats      int        `gorm:"not null" json:"seats"`
	Status     string     `gorm:"not null;default:available;index" json:"status"`
	WaiterId   *uint      `gorm:"index" json:"waiterId"`
	Waiter     *Staff     `gorm:"foreignKey:WaiterId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"waiter,omitempty"`
	OccupiedAt *time.Time `json:"occupiedAt"`
}

type SeatingTypeInput struct {
	Name            string `json:"name" validate:"required,min=1,max=50"`
	DefaultCapacity int    `json:"defaultCapacity" validate:"required,min=1,max=100"`
}

type EditSeatingTypeInput struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=50"`
	DefaultCapacity *int    `json:"defaultCapacity" validate:"omitempty,min=1,max=100"`
}

type CreateSeatingUnitInput struct {
	Number   int    `json:"number" validate:"required,min=1"`
	Type     string `json:"type" validate:"required"`
	Seats    int    `json:"seats" validate:"omitempty,min=1,max=100"`
	WaiterId *uint  `json:"waiterId"`
}

type BatchSeatingUnitInput struct {
	Type  string `json:"type" validate:"required"`
	From  int    `json:"from" validate:"required,min=1"`
	To    int    `json:"to" validate:"required,min=1,gtefield=From"`
	Seats int    `json:"seats" validate:"omitempty,min=1,max=100"`
}

type EditSeatingUnitInput struct {
	Number *int    `json:"number" validate:"omitempty,min=1"`
	Type   *string `json:"type" validate:"omitempty,min=1"`
	Seats  *int    `json:"seats" validate:"omitempty,min=1,max=100"`
}

type SeatingStatusInput struct {
	Status string `json:"status" validate:"required,oneof=available occupied reserved"`
}

type AssignWaiterInput struct {
	WaiterId *uint `json:"waiterId"`
}

type FilterSeatingUnit struct {
	Type     string `query:"type"`
	Status   string `query:"status"`
	WaiterId *uint  `query:"waiterId"`
}

type SeatingTypeStat struct {
	Type      string `json:"type"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	Occupied  int    `json:"occupied"`
	Reserved  int    `json:"reserved"`
}

type SeatingOverview struct {
	Units  []SeatingUnit     `json:"units"`
	ByType []SeatingTypeStat `json:"byType"`
	Totals SeatingTypeStat   `json:"totals"`
}
