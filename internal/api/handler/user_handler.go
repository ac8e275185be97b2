package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/internship/user-service/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  APIError
// @Failure      401   {object}  APIError
// @Failure      409   {object}  APIError
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
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

	result, err := h.service.Create(c.Request().Context(), toCreateUserInput(req), credentialsID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(result))
}

// GetByID handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  APIError
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	result, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(result))
}

// GetByEmail handles GET /api/users/by-email?email=.
//
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Email address"
// @Success      200    {object}  userResponse
// @Failure      404    {object}  APIError
// @Router       /api/users/by-email [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	result, err := h.service.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(result))
}

// GetByIDs handles GET /api/users?ids=a,b.
//
// @Summary      Get users by a list of ids
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        ids  query     string  true  "Comma-separated user ids"
// @Success      200  {array}   userResponse
// @Router       /api/users [get]
func (h *UserHandler) GetByIDs(c echo.Context) error {
	ids, err := queryIDs(c)
	if err != nil {
		return err
	}

	results, err := h.service.GetAllByIDs(c.Request().Context(), ids)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(results))
}

// GetAll handles GET /api/users/all.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  userResponse
// @Router       /api/users/all [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	results, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(results))
}

// Update handles PUT /api/users/:id (owner only).
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "User id"
// @Param        body  body      userRequest  true  "Updated details"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  APIError
// @Failure      404   {object}  APIError
// @Failure      409   {object}  APIError
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req userRequest
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

	result, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateUserInput(req), credentialsID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(result))
}

// Delete handles DELETE /api/users/:id (owner only, cascades to cards).
//
// @Summary      Delete a user and all of its cards
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  APIError
// @Failure      404  {object}  APIError
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	credentialsID, err := ctxCredentialsID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), credentialsID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
