package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/angularstore/catalog/pkg/result"
	"github.com/angularstore/catalog/pkg/zerror"
)

const unknownErrorMsg = "an unknown error occurred"

func writeJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

// writeError maps err to an HTTP status and a failed envelope. Errors that do
// not carry a status are reported as 500 with a generic message so internals
// never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, msg := classifyError(err)

	logLevel := slog.LevelWarn
	if status >= 500 {
		logLevel = slog.LevelError
	}
	logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	writeJSON(w, r, logger, status, result.Fail(msg))
}

func classifyError(err error) (int, string) {
	var zerr zerror.ZError
	if errors.As(err, &zerr) {
		switch zerr.Status() {
		case zerror.StatusNotFound:
			return http.StatusNotFound, zerr.Msg()
		case zerror.StatusBadRequest, zerror.StatusValidationFailed:
			return http.StatusBadRequest, zerr.Msg()
		case zerror.StatusServiceUnavailable:
			return http.StatusServiceUnavailable, zerr.Msg()
		}
	}
	return http.StatusInternalServerError, unknownErrorMsg
}
