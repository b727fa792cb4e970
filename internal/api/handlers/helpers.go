package handlers

import (
	"net/http"

	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/utils"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/validator"
)

// writeErr writes err as an API error. Server-side failures are logged.
func writeErr(w http.ResponseWriter, log *logger.Logger, err error, fallback string) {
	appErr := errors.As(err, fallback)
	if appErr.StatusCode >= http.StatusInternalServerError {
		log.ErrorWithErr(err, fallback)
	}
	utils.WriteError(w, appErr)
}

// validate runs struct validation and writes a 400 on failure
func validate(w http.ResponseWriter, val *validator.Validator, v interface{}) bool {
	if errs := val.Validate(v); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return false
	}
	return true
}
