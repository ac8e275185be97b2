package handler

// cardRequest is the payload for both POST and PUT /api/cards. The owning
// user is never part of the request: it is resolved from the bearer token.
type cardRequest struct {
	Number         string `json:"number" validate:"required,len=16,numeric"`
	Holder         string `json:"holder" validate:"required"`
	ExpirationDate string `json:"expirationDate" validate:"required,mmyy"`
}

type cardResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	Number         string `json:"number"`
	Holder         string `json:"holder"`
	ExpirationDate string `json:"expirationDate"`
}
