package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/designershaven/marketplace-api/internal/application"
	"github.com/designershaven/marketplace-api/internal/domain/entity"
	"github.com/designershaven/marketplace-api/pkg/response"
	"github.com/designershaven/marketplace-api/pkg/validation"
)

type EngagementHandler struct {
	Svc    *application.EngagementService
	Logger *logrus.Logger
}

func NewEngagementHandler(svc *application.EngagementService, logger *logrus.Logger) *EngagementHandler {
	return &EngagementHandler{Svc: svc, Logger: logger}
}

type followRequest struct {
	TargetUserID string `json:"target_user_id" binding:"required,uuid"`
}

type addCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type commentView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
	Text      string    `json:"text"`
	Date      time.Time `json:"date"`
}

func toCommentView(c *entity.Comment) commentView {
	return commentView{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.AuthorName,
		AvatarURL: c.AuthorAvatarURL,
		Text:      c.Body,
		Date:      c.CreatedAt,
	}
}

// ToggleLike POST /api/products/:id/like
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	uid := c.GetString("userID")
	res, err := h.Svc.ToggleLike(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		h.fail(c, err, "failed to toggle like")
		return
	}
	response.OK(c, http.StatusOK, res, "like toggled", nil)
}

// ToggleFollow POST /api/user/follow
func (h *EngagementHandler) ToggleFollow(c *gin.Context) {
	uid := c.GetString("userID")
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.ToggleFollow(c.Request.Context(), uid, req.TargetUserID)
	if err != nil {
		h.fail(c, err, "failed to toggle follow")
		return
	}
	response.OK(c, http.StatusOK, res, "follow toggled", nil)
}

// ListComments GET /api/products/:id/comments
func (h *EngagementHandler) ListComments(c *gin.Context) {
	comments, err := h.Svc.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to list comments")
		return
	}
	views := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		views = append(views, toCommentView(cm))
	}
	response.OK(c, http.StatusOK, gin.H{"comments": views}, "comments", nil)
}

// AddComment POST /api/products/:id/comments
func (h *EngagementHandler) AddComment(c *gin.Context) {
	uid := c.GetString("userID")
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	comment, err := h.Svc.AddComment(c.Request.Context(), c.Param("id"), uid, req.Text)
	if err != nil {
		h.fail(c, err, "failed to add comment")
		return
	}
	response.OK(c, http.StatusCreated, toCommentView(comment), "comment added", nil)
}

// DeleteComment DELETE /api/products/:id/comments/:commentId
func (h *EngagementHandler) DeleteComment(c *gin.Context) {
	uid := c.GetString("userID")
	err := h.Svc.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("commentId"), uid)
	if err != nil {
		h.fail(c, err, "failed to delete comment")
		return
	}
	response.OK[any](c, http.StatusOK, gin.H{"message": "comment deleted"}, "comment deleted", nil)
}

// GetProfile GET /api/users/:id
func (h *EngagementHandler) GetProfile(c *gin.Context) {
	viewerID := c.GetString("userID")
	profile, err := h.Svc.GetProfile(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		h.fail(c, err, "failed to load profile")
		return
	}
	response.OK(c, http.StatusOK, profile, "profile", nil)
}

// fail maps service errors onto the HTTP taxonomy: validation first,
// ownership, missing entities, then a generic 500.
func (h *EngagementHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, application.ErrSelfFollow), errors.Is(err, application.ErrEmptyComment):
		response.Fail(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrNotCommentOwner):
		response.Fail(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrProductNotFound),
		errors.Is(err, application.ErrCommentNotFound):
		response.Fail(c, http.StatusNotFound, err.Error(), nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error(msg)
		}
		response.Fail(c, http.StatusInternalServerError, msg, nil)
	}
}
