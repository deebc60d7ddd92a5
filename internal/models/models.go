package models

import "time"

// Статусы заказа.
const (
	OrderStatusProcessing = "processing"
	OrderStatusDelivery   = "delivery"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusProcessing, OrderStatusDelivery, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Employee struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Position    string    `gorm:"not null"                 json:"position"`
	Description string    `json:"description"`
	Experience  string    `json:"experience"`
	Photo       string    `json:"photo"`
	CreatedAt   time.Time `json:"created_at"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `gorm:"column:image_url"         json:"image_url"`
	Category    string    `json:"category"`
	Weight      string    `json:"weight"`
	IsNew       bool      `gorm:"column:is_new;default:false"     json:"is_new"`
	OnSale      bool      `gorm:"column:on_sale;default:false"    json:"on_sale"`
	OldPrice    *float64  `gorm:"column:old_price"                json:"old_price"`
	IsPopular   bool      `gorm:"column:is_popular;default:false" json:"is_popular"`
	CreatedAt   time.Time `json:"created_at"`
}

// Order хранит позиции как сериализованный JSON-блоб: сервер никогда не
// заглядывает внутрь items, их содержимое принадлежит клиенту.
type Order struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"index;not null"           json:"user_id"`
	Items       string    `gorm:"not null"                 json:"items"`
	TotalAmount float64   `gorm:"column:total_amount;not null" json:"total_amount"`
	Status      string    `gorm:"default:processing"       json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null"           json:"user_id"`
	ProductID uint      `gorm:"index;not null"           json:"product_id"`
	Review    string    `gorm:"not null"                 json:"review"`
	Stars     int       `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"`
	CreatedAt time.Time `json:"created_at"`
}

type Shop struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Address      string    `gorm:"not null"                 json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	WorkingHours string    `gorm:"column:working_hours"     json:"working_hours"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	CreatedAt    time.Time `json:"created_at"`
}
