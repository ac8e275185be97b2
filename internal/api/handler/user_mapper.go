package handler

import (
	"time"

	"github.com/internship/user-service/internal/core/ports"
)

const dateLayout = "2006-01-02"

// --- Request → Service input ---

func toCreateUserInput(req userRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:      req.Name,
		Surname:   req.Surname,
		BirthDate: parseDate(req.BirthDate),
		Email:     req.Email,
	}
}

func toUpdateUserInput(req userRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:      req.Name,
		Surname:   req.Surname,
		BirthDate: parseDate(req.BirthDate),
		Email:     req.Email,
	}
}

// parseDate assumes the datetime validation rule already ran.
func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

// --- Service result → HTTP response ---

func toUserResponse(r *ports.UserResult) userResponse {
	return userResponse{
		ID:        r.ID,
		Name:      r.Name,
		Surname:   r.Surname,
		BirthDate: r.BirthDate.Format(dateLayout),
		Email:     r.Email,
		Cards:     toCardResponses(r.Cards),
	}
}

func toUserResponses(results []ports.UserResult) []userResponse {
	out := make([]userResponse, len(results))
	for i := range results {
		out[i] = toUserResponse(&results[i])
	}
	return out
}
