package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bukness/bukness-api/internal/domain"
)

// getPathObjectID extracts an ObjectID from the named URL path parameter.
func getPathObjectID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: %s is required", domain.ErrValidation, paramName)
	}

	id, err := primitive.ObjectIDFromHex(pathParam)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s %q is not a valid object id", domain.ErrInvalidID, paramName, pathParam)
	}

	return id, nil
}
