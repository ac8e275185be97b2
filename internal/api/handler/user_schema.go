package handler

// userRequest is the payload for both POST and PUT /api/users. Field names
// follow the original wire contract (camelCase).
type userRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	Surname   string `json:"surname" validate:"omitempty,max=50"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02,pastdate"`
	Email     string `json:"email" validate:"required,email"`
}

type userResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Surname   string         `json:"surname,omitempty"`
	BirthDate string         `json:"birthDate"`
	Email     string         `json:"email"`
	Cards     []cardResponse `json:"cards"`
}
