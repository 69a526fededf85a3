package http

import (
	"encoding/json"
	"errors"
	"event-map/common/errs"
	"event-map/model"
	"github.com/go-playground/validator/v10"
	"io"
	"net/http"
	"strconv"
)

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var message string
	var data any
	if httpErr, ok := err.(*errs.HttpError); ok {
		message = httpErr.Message
		data = httpErr.Data
		w.WriteHeader(httpErr.Code)
	} else if validationErr, ok := err.(validator.ValidationErrors); ok {
		message = "Validation failed"
		w.WriteHeader(http.StatusBadRequest)

		validationErrors := make(map[string]string)
		for _, fieldErr := range validationErr {
			fieldName := fieldErr.Field()
			validationErrors[fieldName] = fieldErr.Tag()
		}

		data = validationErrors
	} else {
		message = "Internal Server Error"
		w.WriteHeader(500)
	}

	errorResponse := model.ErrorResponse{Error: message, Data: data}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// decodeRequest reads a JSON body into req and validates it. An empty body
// is accepted and leaves req at its zero value.
func decodeRequest(r *http.Request, validate *validator.Validate, req any) error {
	if r.Body != nil {
		err := json.NewDecoder(r.Body).Decode(req)
		if err != nil && !errors.Is(err, io.EOF) {
			return &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"}
		}
	}

	return validate.Struct(req)
}

func pathEventId(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid event id"}
	}
	return id, nil
}
