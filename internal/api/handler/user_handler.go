package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Status *string `json:"status" validate:"omitempty,oneof=active disabled"`
	RoleID *string `json:"role_id"`
}

type paginationMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type userPageResponse struct {
	Users      []*domain.User `json:"users"`
	Pagination paginationMeta `json:"pagination"`
}

// List returns a page of users. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number, starting at 1"
// @Param        limit  query     int  false  "Page size, capped at 100"
// @Success      200    {object}  successResponse
// @Failure      403    {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.userService.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, userPageResponse{
		Users: result.Users,
		Pagination: paginationMeta{
			Total: result.Total,
			Page:  result.Page,
			Limit: result.Limit,
			Pages: result.TotalPages,
		},
	})
}

// Get returns a single user. Self or admin.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, user)
}

// Update edits a profile. Self or admin; status and role changes are admin
// only regardless of whose profile it is.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateUserInput{
		Name:   req.Name,
		RoleID: req.RoleID,
	}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		input.Status = &status
	}

	user, err := h.userService.Update(c.Request().Context(), identity, c.Param("id"), input)
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, user)
}

// Delete disables an account. Admin only; the account is kept on record so
// its posts and comments stay attributed.
//
// @Summary      Disable a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, "user disabled")
}
