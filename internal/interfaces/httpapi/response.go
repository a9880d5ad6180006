package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/club-stats/internal/usecase"
)

const apiVersion = "2.0"

type responseEnvelope struct {
	APIVersion string `json:"apiVersion"`
	Data       any    `json:"data,omitempty"`
}

// errorEnvelope keeps error as a plain message so UI clients can show it as is.
type errorEnvelope struct {
	APIVersion string        `json:"apiVersion"`
	Error      string        `json:"error"`
	Code       int           `json:"code"`
	Status     string        `json:"status"`
	Reason     string        `json:"reason"`
	Details    *errorDetails `json:"details,omitempty"`
}

type errorDetails struct {
	Expected int `json:"expected"`
	Actual   int `json:"actual"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, responseEnvelope{
		APIVersion: apiVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	body := errorEnvelope{
		APIVersion: apiVersion,
		Error:      err.Error(),
		Code:       mapped.HTTPStatus,
		Status:     mapped.Status,
		Reason:     mapped.Reason,
	}

	var consistency *usecase.ConsistencyError
	if errors.As(err, &consistency) {
		body.Details = &errorDetails{Expected: consistency.Expected, Actual: consistency.Actual}
	}
	if mapped.HTTPStatus == http.StatusInternalServerError {
		body.Error = "internal server error"
	}

	writeJSON(ctx, w, mapped.HTTPStatus, body)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{
		APIVersion: apiVersion,
		Error:      "internal server error",
		Code:       http.StatusInternalServerError,
		Status:     "INTERNAL",
		Reason:     "internalError",
	})
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrParse):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "parseError",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrInconsistent):
		return mappedError{
			HTTPStatus: http.StatusUnprocessableEntity,
			Reason:     "inconsistentData",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Reason:     "unauthorized",
			Status:     "UNAUTHENTICATED",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
