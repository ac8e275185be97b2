package handler

import "github.com/internship/user-service/internal/core/ports"

func toCreateCardInput(req cardRequest) ports.CreateCardInput {
	return ports.CreateCardInput{
		Number:         req.Number,
		Holder:         req.Holder,
		ExpirationDate: req.ExpirationDate,
	}
}

func toUpdateCardInput(req cardRequest) ports.UpdateCardInput {
	return ports.UpdateCardInput{
		Number:         req.Number,
		Holder:         req.Holder,
		ExpirationDate: req.ExpirationDate,
	}
}

func toCardResponse(r *ports.CardResult) cardResponse {
	return cardResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		Number:         r.Number,
		Holder:         r.Holder,
		ExpirationDate: r.ExpirationDate,
	}
}

func toCardResponses(results []ports.CardResult) []cardResponse {
	out := make([]cardResponse, len(results))
	for i := range results {
		out[i] = toCardResponse(&results[i])
	}
	return out
}
