package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prodcat/product-api/internal/domain"
	"github.com/prodcat/product-api/internal/http/response"
)

// writeDomainError maps use-case failures onto the error envelope:
// validation-class errors become 422, missing products 404, storage
// failures 500.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidRequest):
		response.WriteError(c, http.StatusUnprocessableEntity, "Validation Error", err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		response.WriteError(c, http.StatusNotFound, "Resource Not Found", err.Error())
	default:
		var persistErr *domain.PersistenceError
		if errors.As(err, &persistErr) {
			slog.Error("storage failure", slog.String("op", persistErr.Op), slog.Any("err", persistErr.Err))
		} else {
			slog.Error("unexpected error", slog.Any("err", err))
		}
		response.WriteInternalError(c)
	}
}
