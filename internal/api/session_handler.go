package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sanam/my-workouts/internal/domain"
	"sanam/my-workouts/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler holds the session service dependency.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- DTOs ---

type AddWorkoutRequest struct {
	Type   domain.WorkoutType `json:"type" binding:"required"`
	Name   string             `json:"name" binding:"required"`
	Weight float64            `json:"weight"`
	Reps   int                `json:"reps" binding:"required,min=1"`
}

// SessionResponse is the DTO for a workout session. Display fields are
// rendered server-side so every client shows timestamps and durations the
// same way.
type SessionResponse struct {
	ID          string                      `json:"id"`
	CreatedAt   time.Time                   `json:"createdAt"`
	CompletedAt *time.Time                  `json:"completedAt,omitempty"`
	StartedAt   string                      `json:"startedAt"`
	Duration    string                      `json:"duration,omitempty"`
	Types       []domain.WorkoutType        `json:"types"`
	Workouts    []domain.Workout            `json:"workouts"`
	Grouped     map[string][]domain.Workout `json:"groupedWorkouts"`
}

// MapSessionToResponse converts a domain session to its DTO, attaching the
// grouped view and display strings.
func MapSessionToResponse(session *domain.WorkoutSession) SessionResponse {
	if session == nil {
		return SessionResponse{}
	}
	resp := SessionResponse{
		ID:          session.ID.Hex(),
		CreatedAt:   session.CreatedAt,
		CompletedAt: session.CompletedAt,
		StartedAt:   domain.FormatTimestamp(session.CreatedAt),
		Types:       domain.TypesPresent(session.Workouts),
		Workouts:    session.Workouts,
		Grouped:     domain.GroupByName(session.Workouts),
	}
	if session.CompletedAt != nil {
		resp.Duration = domain.FormatDuration(session.CreatedAt, *session.CompletedAt)
	}
	return resp
}

// --- Handler Methods ---

// GetCurrent returns the caller's active session. A 404 with the fixed
// message tells the client to offer session creation, not to show an error.
func (h *SessionHandler) GetCurrent(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	session, err := h.sessionService.Current(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			abortWithError(c, http.StatusNotFound, noActiveSessionMessage)
		} else {
			abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		}
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(session))
}

// Start begins a new session for the caller.
func (h *SessionHandler) Start(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	session, err := h.sessionService.Start(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrSessionInProgress) {
			abortWithError(c, http.StatusConflict, sessionActiveMessage)
		} else {
			abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		}
		return
	}
	c.JSON(http.StatusCreated, MapSessionToResponse(session))
}

// AddWorkout logs one set against a session.
func (h *SessionHandler) AddWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	var req AddWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout payload.")
		return
	}

	workout, err := h.sessionService.AddWorkout(c.Request.Context(), userID, c.Param("id"), service.AddWorkoutInput{
		Type:   req.Type,
		Name:   req.Name,
		Weight: req.Weight,
		Reps:   req.Reps,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSessionNotFound):
			abortWithError(c, http.StatusNotFound, sessionNotFoundMessage)
		default:
			abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		}
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// RemoveWorkout deletes one logged set by its entry id. Removing an id that
// matches nothing still returns 204.
func (h *SessionHandler) RemoveWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	err = h.sessionService.RemoveWorkout(c.Request.Context(), userID, c.Param("id"), c.Param("workoutId"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, sessionNotFoundMessage)
		} else {
			abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// End finalizes a session; it moves from "current" to the history listing.
func (h *SessionHandler) End(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	err = h.sessionService.End(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, sessionNotFoundMessage)
		} else {
			abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete discards a session and everything logged in it.
func (h *SessionHandler) Delete(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	err = h.sessionService.Discard(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, sessionNotFoundMessage)
		} else {
			abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPrevious lists finalized sessions, newest first. An empty list is a
// normal response, not an error.
func (h *SessionHandler) GetPrevious(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	count := 0
	if raw := c.Query("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 {
			abortWithError(c, http.StatusBadRequest, "count must be a positive integer")
			return
		}
	}

	sessions, err := h.sessionService.History(c.Request.Context(), userID, count)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = MapSessionToResponse(&sessions[i])
	}
	c.JSON(http.StatusOK, responses)
}

// ListWorkouts returns the caller's logged sets flattened across sessions.
func (h *SessionHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	workouts, err := h.sessionService.AllWorkouts(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Error fetching workouts")
		return
	}
	c.JSON(http.StatusOK, workouts)
}
