package api

import (
	"net/http"

	"sanam/my-workouts/internal/domain"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the fixed exercise catalog the workout form is
// built from. The catalog is static; no service dependency is needed.
type ExerciseHandler struct{}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler() *ExerciseHandler {
	return &ExerciseHandler{}
}

// CatalogResponse groups exercise names per workout type.
type CatalogResponse struct {
	Types     []domain.WorkoutType            `json:"types"`
	Exercises map[domain.WorkoutType][]string `json:"exercises"`
}

// GetCatalog returns the whole catalog, or only the names for one type
// when ?type= is supplied. An unknown type yields an empty list.
func (h *ExerciseHandler) GetCatalog(c *gin.Context) {
	if raw := c.Query("type"); raw != "" {
		names := domain.CatalogForType(domain.WorkoutType(raw))
		if names == nil {
			names = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"type": raw, "exercises": names})
		return
	}

	resp := CatalogResponse{
		Types:     domain.WorkoutTypes,
		Exercises: make(map[domain.WorkoutType][]string, len(domain.WorkoutTypes)),
	}
	for _, t := range domain.WorkoutTypes {
		resp.Exercises[t] = domain.CatalogForType(t)
	}
	c.JSON(http.StatusOK, resp)
}
