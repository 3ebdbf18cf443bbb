// Package response renders the API envelope. Every endpoint answers with the
// same shape so clients never branch on the response layout:
//
//	{success, data?, message?, error?, errors?, pagination?, timestamp, requestId}
package response

import (
	"encoding/json"
	"net/http"
	"posada/shared/constant"
	"posada/shared/failure"
	"posada/shared/logger"
	"posada/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type Envelope struct {
	Success    bool                 `json:"success"`
	Data       any                  `json:"data,omitempty"`
	Message    string               `json:"message,omitempty"`
	Error      string               `json:"error,omitempty"`
	Errors     []failure.FieldError `json:"errors,omitempty"`
	Pagination *Pagination          `json:"pagination,omitempty"`
	Timestamp  string               `json:"timestamp"`
	RequestID  string               `json:"requestId"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// WithJSON sends a success envelope containing a JSON payload
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	respond(writer, code, Envelope{
		Success: true,
		Data:    jsonPayload,
	})
}

// WithDataMessage sends a success envelope carrying both a payload and a
// confirmation message.
func WithDataMessage(writer http.ResponseWriter, code int, jsonPayload interface{}, message string) {
	respond(writer, code, Envelope{
		Success: true,
		Data:    jsonPayload,
		Message: message,
	})
}

// WithPaginated sends a success envelope containing a page of results
func WithPaginated(writer http.ResponseWriter, code int, jsonPayload interface{}, pagination Pagination) {
	respond(writer, code, Envelope{
		Success:    true,
		Data:       jsonPayload,
		Pagination: &pagination,
	})
}

// WithMessage sends an envelope with a simple text message. The message lands
// in `message` for success codes and in `error` otherwise.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	envelope := Envelope{Success: code < http.StatusBadRequest}

	if envelope.Success {
		envelope.Message = message
	} else {
		envelope.Error = message
	}

	respond(writer, code, envelope)
}

// WithError sends a failure envelope with the code and message derived from
// the error. Validation failures additionally carry the per-field error list.
func WithError(writer http.ResponseWriter, err error) {
	respond(writer, failure.GetCode(err), Envelope{
		Success: false,
		Error:   err.Error(),
		Errors:  failure.GetFieldErrors(err),
	})
}

// WithMethodNotAllowed sends the 405 envelope and advertises the allowed
// methods through the Allow header. When no methods are passed an Allow
// header already set by the router is left untouched.
func WithMethodNotAllowed(writer http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		writer.Header().Set(constant.RequestHeaderAllow, strings.Join(allowed, ", "))
	}

	respond(writer, http.StatusMethodNotAllowed, Envelope{
		Success: false,
		Error:   "Method not allowed",
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func respond(writer http.ResponseWriter, code int, envelope Envelope) {
	envelope.Timestamp = timezone.Now().Format(constant.DateFormat)
	envelope.RequestID = requestID(writer)

	body, err := json.Marshal(envelope)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(body)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}

// requestID reads the id stamped on the response by the request-id
// middleware, minting one only when the middleware never ran.
func requestID(writer http.ResponseWriter) string {
	if id := writer.Header().Get(constant.RequestHeaderRequestID); id != "" {
		return id
	}

	id := "req_" + uuid.NewString()
	writer.Header().Set(constant.RequestHeaderRequestID, id)

	return id
}
