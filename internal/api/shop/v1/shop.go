// Package shopv1 holds the JSON bodies of the shop HTTP API.
package shopv1

import (
	"encoding/json"
	"time"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Index struct {
	Shapes   []string `json:"shapes"`
	Features []string `json:"features"`
}

// PredictRequest accepts numbers or numeric strings for every feature.
type PredictRequest struct {
	DressSize json.Number `json:"Dress_size"`
	Breasts   json.Number `json:"Breasts"`
	Waist     json.Number `json:"Waist"`
	Hips      json.Number `json:"Hips"`
	Shoe      json.Number `json:"Shoe"`
	Height    json.Number `json:"Height"`
	Weight    json.Number `json:"Weight"`
}

type PredictResponse struct {
	Shape           string `json:"shape"`
	Slug            string `json:"slug"`
	PredictionID    int64  `json:"prediction_id,omitempty"`
	Saved           bool   `json:"saved"`
	Recommendations string `json:"recommendations_url"`
}

type Measurements struct {
	DressSize float64 `json:"Dress_size"`
	Breasts   float64 `json:"Breasts"`
	Waist     float64 `json:"Waist"`
	Hips      float64 `json:"Hips"`
	Shoe      float64 `json:"Shoe"`
	Height    float64 `json:"Height"`
	Weight    float64 `json:"Weight"`
}

type Prediction struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"user_id"`
	Shape        string       `json:"shape"`
	Measurements Measurements `json:"measurements"`
	CreatedAt    time.Time    `json:"created_at"`
}

type PredictionList struct {
	Predictions []Prediction `json:"predictions"`
}

type CatalogItem struct {
	ID    int64  `json:"id"`
	Shape string `json:"shape"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Price string `json:"price"`
}

type CatalogItemRequest struct {
	Shape string `json:"shape"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Price string `json:"price"`
}

type Recommendations struct {
	Shape string        `json:"shape"`
	Items []CatalogItem `json:"items"`
}

type CatalogItemList struct {
	Items []CatalogItem `json:"items"`
}

type CartLine struct {
	Item     CatalogItem `json:"item"`
	Quantity int64       `json:"quantity"`
	Subtotal string      `json:"subtotal"`
}

type Cart struct {
	Lines []CartLine `json:"lines"`
	Units int64      `json:"units"`
	Total string     `json:"total"`
}

type PaymentRequest struct {
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type Receipt struct {
	TransactionID string     `json:"transaction_id"`
	Lines         []CartLine `json:"lines"`
	Total         string     `json:"total"`
}

type Purchase struct {
	EventID       string    `json:"event_id"`
	UserID        int64     `json:"user_id"`
	TransactionID string    `json:"transaction_id"`
	Total         string    `json:"total"`
	LineCount     int       `json:"line_count"`
	Units         int64     `json:"units"`
	RecordedAt    time.Time `json:"recorded_at"`
}

type PurchaseList struct {
	Purchases []Purchase `json:"purchases"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type UserList struct {
	Users []User `json:"users"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}
