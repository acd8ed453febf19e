package main

import (
	"net/http"

	"paytrack/internal/apperr"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter+"s")
}

// serviceError writes the response for an error returned by a service. The
// kind decides the status; the message is the one the service chose.
func (app *application) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	msg := apperr.MessageOf(err)

	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		app.logger.Warnw("request rejected", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeJSONError(w, http.StatusBadRequest, msg)
	case apperr.KindAuth:
		app.logger.Warnw("unauthorized", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeJSONError(w, http.StatusUnauthorized, msg)
	case apperr.KindForbidden:
		app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		if status := apperr.StatusOf(err); status != "" {
			writeJSONStatusError(w, http.StatusForbidden, msg, status)
			return
		}
		writeJSONError(w, http.StatusForbidden, msg)
	case apperr.KindNotFound:
		app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeJSONError(w, http.StatusNotFound, msg)
	default:
		app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeJSONError(w, http.StatusInternalServerError, msg)
	}
}
