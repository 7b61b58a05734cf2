package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/users-api/internal/core/ports"
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
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	req, err := bindCreateRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
	}

	res := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	return c.JSON(statusFor(res.Success, http.StatusCreated, http.StatusBadRequest), res)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	res := h.service.GetUser(c.Request().Context(), c.Param("id"))
	return c.JSON(statusFor(res.Success, http.StatusOK, http.StatusNotFound), res)
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  userListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListUsers(c.Request().Context()))
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	res := h.service.DeleteUser(c.Request().Context(), c.Param("id"))
	return c.JSON(statusFor(res.Success, http.StatusOK, http.StatusNotFound), res)
}

var errBodyNotObject = errors.New("request body must be a single JSON object")

// bindCreateRequest decodes the body regardless of Content-Type. The body must
// be exactly one JSON object: empty bodies, null, arrays, scalars and trailing
// data after the object are all rejected.
func bindCreateRequest(c echo.Context) (createUserRequest, error) {
	var req createUserRequest

	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return req, err
	}
	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) || raw[0] != '{' {
		return req, errBodyNotObject
	}

	c.Request().Body = io.NopCloser(bytes.NewReader(raw))
	if err := c.Echo().JSONSerializer.Deserialize(c, &req); err != nil {
		return req, err
	}
	return req, nil
}

func statusFor(success bool, ok, failed int) int {
	if success {
		return ok
	}
	return failed
}
