package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// Persisted record shapes. Field names follow the storefront's stored JSON so
// existing data stays readable.

type ProductRecord struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

type CartLineRecord struct {
	ProductRecord
	Quantity int `json:"quantity"`
}

type OrderRecord struct {
	ID             string           `json:"id"`
	Items          []CartLineRecord `json:"items"`
	Total          decimal.Decimal  `json:"total"`
	Status         string           `json:"status"`
	Date           time.Time        `json:"date"`
	EstimatedReady time.Time        `json:"estimatedReady"`
}

type ReservationRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
	Status string `json:"status"`
}

type ReviewRecord struct {
	ID        string    `json:"id"`
	ProductID int       `json:"productId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
}
