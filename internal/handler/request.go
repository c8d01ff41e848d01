package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bankcore/customer-service/internal/models"
)

var validate = validator.New()

// decode reads the JSON body into v and checks its structural validation tags
// (required fields, email format). Domain rules run later in the service.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return models.ErrInvalidInput("invalid JSON format")
	}
	if err := validate.Struct(v); err != nil {
		return models.ErrInvalidInput("validation error: " + err.Error())
	}
	return nil
}
