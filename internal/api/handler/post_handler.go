package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devnews/devnews-api/internal/api/metrics"
	"github.com/devnews/devnews-api/internal/core/ports"
)

type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type createPostRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Content    string   `json:"content" validate:"required"`
	CategoryID string   `json:"category_id"`
	Tags       []string `json:"tags" validate:"omitempty,dive,required,max=50"`
}

type updatePostRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Content    string   `json:"content" validate:"required"`
	Published  *bool    `json:"published"`
	CategoryID string   `json:"category_id"`
	Tags       []string `json:"tags" validate:"omitempty,dive,required,max=50"`
}

// List returns all published posts, newest first.
//
// @Summary      List published posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, posts)
}

// Get returns a single post by ID, drafts included.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, post)
}

// Create stores a new post owned by the caller. Tag names are upserted.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post payload"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.Create(c.Request().Context(), identity, ports.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		TagNames:   req.Tags,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return respondData(c, http.StatusCreated, post)
}

// Update rewrites a post. Owner or admin only; the tag set is replaced
// wholesale with the submitted names.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post ID"
// @Param        body  body      updatePostRequest  true  "Post payload"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.Update(c.Request().Context(), identity, c.Param("id"), ports.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Published:  req.Published,
		CategoryID: req.CategoryID,
		TagNames:   req.Tags,
	})
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, post)
}

// Delete removes a post and its comments. Owner or admin only.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, "post deleted")
}
