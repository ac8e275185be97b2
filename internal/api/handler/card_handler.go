package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/internship/user-service/internal/core/ports"
)

// CardHandler handles HTTP requests for card operations.
type CardHandler struct {
	service ports.CardService
}

func NewCardHandler(service ports.CardService) *CardHandler {
	return &CardHandler{service: service}
}

// Create handles POST /api/cards. The card is attached to the user owned by
// the bearer token's subject.
//
// @Summary      Attach a new card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      cardRequest  true  "Card details"
// @Success      201   {object}  cardResponse
// @Failure      400   {object}  APIError
// @Failure      404   {object}  APIError
// @Failure      409   {object}  APIError
// @Router       /api/cards [post]
func (h *CardHandler) Create(c echo.Context) error {
	var req cardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	credentialsID, err := ctxCredentialsID(c)
	if err != nil {
		return err
	}

	result, err := h.service.Create(c.Request().Context(), toCreateCardInput(req), credentialsID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCardResponse(result))
}

// GetByID handles GET /api/cards/:id.
//
// @Summary      Get a card by id
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Card id"
// @Success      200  {object}  cardResponse
// @Failure      404  {object}  APIError
// @Router       /api/cards/{id} [get]
func (h *CardHandler) GetByID(c echo.Context) error {
	result, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCardResponse(result))
}

// GetByIDs handles GET /api/cards?ids=a,b.
//
// @Summary      Get cards by a list of ids
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        ids  query     string  true  "Comma-separated card ids"
// @Success      200  {array}   cardResponse
// @Router       /api/cards [get]
func (h *CardHandler) GetByIDs(c echo.Context) error {
	ids, err := queryIDs(c)
	if err != nil {
		return err
	}

	results, err := h.service.GetAllByIDs(c.Request().Context(), ids)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCardResponses(results))
}

// GetByUser handles GET /api/cards/by-user/:userId.
//
// @Summary      List a user's cards
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path     string  true  "User id"
// @Success      200     {array}  cardResponse
// @Router       /api/cards/by-user/{userId} [get]
func (h *CardHandler) GetByUser(c echo.Context) error {
	results, err := h.service.GetByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCardResponses(results))
}

// Update handles PUT /api/cards/:id (owner only).
//
// @Summary      Update a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Card id"
// @Param        body  body      cardRequest  true  "Updated details"
// @Success      200   {object}  cardResponse
// @Failure      403   {object}  APIError
// @Failure      404   {object}  APIError
// @Failure      409   {object}  APIError
// @Router       /api/cards/{id} [put]
func (h *CardHandler) Update(c echo.Context) error {
	var req cardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	credentialsID, err := ctxCredentialsID(c)
	if err != nil {
		return err
	}

	result, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateCardInput(req), credentialsID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCardResponse(result))
}

// Delete handles DELETE /api/cards/:id (owner only).
//
// @Summary      Delete a card
// @Tags         cards
// @Security     BearerAuth
// @Param        id  path  string  true  "Card id"
// @Success      204
// @Failure      403  {object}  APIError
// @Failure      404  {object}  APIError
// @Router       /api/cards/{id} [delete]
func (h *CardHandler) Delete(c echo.Context) error {
	credentialsID, err := ctxCredentialsID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), credentialsID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
