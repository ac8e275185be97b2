package domain

import "time"

// User is the aggregate root for a registered profile. CredentialsID is the
// subject of the bearer token that created the record; it is set once at
// creation and never changed by updates.
type User struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Surname       string    `json:"surname,omitempty" bson:"surname,omitempty"`
	BirthDate     time.Time `json:"birth_date" bson:"birth_date"`
	Email         string    `json:"email" bson:"email"`
	CredentialsID string    `json:"credentials_id" bson:"credentials_id"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
