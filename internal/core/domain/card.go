package domain

import "time"

// CardInfo is a payment card attached to exactly one user. A card has no
// owning credential of its own: authorization follows the card → user →
// credentials chain.
type CardInfo struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	UserID         string    `json:"user_id" bson:"user_id"`
	Number         string    `json:"number" bson:"number"`
	Holder         string    `json:"holder" bson:"holder"`
	ExpirationDate string    `json:"expiration_date" bson:"expiration_date"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
