package model

type Category struct {
	DTO
	Name  string     `gorm:"uniqueIndex;not null" json:"name"`
	Slug  string     `gorm:"uniqueIndex;not null" json:"slug"`
	Items []MenuItem `gorm:"foreignKey:CategoryId" json:"items,omitempty"`
}

type MenuItem struct {
	DTO
	Name              string   `gorm:"not null" json:"name"`
	Description       string   `json:"description"`
	Price             int64    `gorm:"not null" json:"price"`
	CategoryId        uint     `gorm:"index" json:"categoryId"`
	Category          Category `gorm:"foreignKey:CategoryId;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ImageUrl          string   `json:"imageUrl"`
	ImagePublicId     string   `json:"-"`
	IsAvailable       bool     `gorm:"not null" json:"isAvailable"`
	ServesCount       int      `gorm:"not null;default:0" json:"servesCount"`
	RemainingServings int      `gorm:"not null;default:0" json:"remainingServings"`
	NeedsContainer    bool     `gorm:"not null;default:false" json:"needsContainer"`
	ContainerPrice    int64    `gorm:"not null;default:0" json:"containerPrice"`
}

// TracksServings reports whether the item has a finite servings counter.
// Items with ServesCount 0 are never sold out by quantity.
func (m MenuItem) TracksServings() bool {
	return m.ServesCount > 0
}

func (m MenuItem) SoldOut() bool {
	return !m.IsAvailable || (m.TracksServings() && m.RemainingServings <= 0)
}

type MenuItemView struct {
	MenuItem
	SoldOut bool `json:"soldOut"`
}

func NewMenuItemView(m MenuItem) MenuItemView {
	return MenuItemView{MenuItem: m, SoldOut: m.SoldOut()}
}

type MenuCategoryView struct {
	Id    uint           `json:"id"`
	Name  string         `json:"name"`
	Slug  string         `json:"slug"`
	Items []MenuItemView `json:"items"`
}

type CategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type CreateMenuItemInput struct {
	Name           string `json:"name" validate:"required,min=1,max=150"`
	Description    string `json:"description" validate:"max=1000"`
	Price          int64  `json:"price" validate:"required,gt=0"`
	CategoryId     uint   `json:"categoryId" validate:"required"`
	ImageUrl       string `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable    *bool  `json:"isAvailable"`
	ServesCount    int    `json:"servesCount" validate:"gte=0"`
	NeedsContainer bool   `json:"needsContainer"`
	ContainerPrice int64  `json:"containerPrice" validate:"gte=0"`
}

type EditMenuItemInput struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=150"`
	Description    *string `json:"description" validate:"omitempty,max=1000"`
	Price          *int64  `json:"price" validate:"omitempty,gt=0"`
	CategoryId     *uint   `json:"categoryId"`
	ImageUrl       *string `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable    *bool   `json:"isAvailable"`
	NeedsContainer *bool   `json:"needsContainer"`
	ContainerPrice *int64  `json:"containerPrice" validate:"omitempty,gte=0"`
}

type ServingsInput struct {
	ServesCount       int  `json:"servesCount" validate:"gte=0"`
	RemainingServings *int `json:"remainingServings" validate:"omitempty,gte=0"`
}

type AvailabilityInput struct {
	IsAvailable bool `json:"isAvailable"`
}

type FilterMenuItem struct {
	Pagination
	CategoryId  *uint  `query:"categoryId"`
	SearchKey   string `query:"searchKey"`
	IsAvailable *bool  `query:"isAvailable"`
}
