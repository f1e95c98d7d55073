package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devnews/devnews-api/internal/api/metrics"
	"github.com/devnews/devnews-api/internal/core/ports"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type createCommentRequest struct {
	Content  string `json:"content" validate:"required,max=2000"`
	PostID   string `json:"post_id" validate:"required"`
	ParentID string `json:"parent_id"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// ListByPost returns the comments of a post: top-level entries newest first,
// each carrying its direct replies oldest first.
//
// @Summary      List comments for a post
// @Tags         comments
// @Produce      json
// @Param        postId  path      string  true  "Post ID"
// @Success      200     {object}  successResponse
// @Router       /comments/post/{postId} [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	comments, err := h.commentService.ListByPost(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, comments)
}

// Create stores a comment or a reply to an existing comment.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment payload"
// @Success      201   {object}  successResponse
// @Failure      404   {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Create(c.Request().Context(), identity, ports.CreateCommentInput{
		Content:  req.Content,
		PostID:   req.PostID,
		ParentID: req.ParentID,
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return respondData(c, http.StatusCreated, comment)
}

// Update edits a comment's text. Author only; admins cannot rewrite what
// someone else said.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Comment ID"
// @Param        body  body      updateCommentRequest  true  "Comment payload"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Update(c.Request().Context(), identity, c.Param("id"), req.Content)
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, comment)
}

// Delete removes a comment and its replies. Author or admin.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment ID"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, "comment deleted")
}
