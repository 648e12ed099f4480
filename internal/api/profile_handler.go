package api

import (
	"errors"
	"net/http"

	"sanam/my-workouts/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type AvatarUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// Me returns the caller's own profile.
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	user, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		}
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// AvatarUploadURL hands the client a presigned PUT URL; the image bytes go
// straight to object storage.
func (h *ProfileHandler) AvatarUploadURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "contentType is required")
		return
	}

	url, err := h.profileService.AvatarUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "User not found.")
		default:
			abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploadUrl": url})
}

// Avatar returns a presigned GET URL for the caller's stored avatar.
func (h *ProfileHandler) Avatar(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	url, err := h.profileService.AvatarURL(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoAvatar):
			abortWithError(c, http.StatusNotFound, "No avatar uploaded.")
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "User not found.")
		default:
			abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
