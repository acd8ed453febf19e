package main

import (
	"net/http"

	"paytrack/internal/apperr"
	"paytrack/internal/auth"
	"paytrack/internal/domain/accounts"
	"paytrack/internal/metrics"
)

// ErrorBadRequestResponse represents the standard error format for bad request API responses.
//
//	@name			ErrorBadRequestResponse
//	@description	Standard error response format returned by all bad request API endpoints
type ErrorBadRequestResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Email already registered"`
	Status  int    `json:"status" example:"400"`
}

// ErrorForbiddenResponse is returned when the approval gate refuses an account.
//
//	@name	ErrorForbiddenResponse
type ErrorForbiddenResponse struct {
	Success       bool   `json:"success" example:"false"`
	Message       string `json:"message" example:"Your account is pending approval. Please wait for admin to approve your account."`
	Status        int    `json:"status" example:"403"`
	AccountStatus string `json:"account_status,omitempty" example:"pending"`
}

// ErrorInternalServerResponse represents the standard error format for internal server API responses.
//
//	@name			ErrorInternalServerResponse
//	@description	Standard error response format returned by all internal server error API endpoints
type ErrorInternalServerResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"the server encountered a problem"`
	Status  int    `json:"status" example:"500"`
}

type RegisterResponse struct {
	Message string            `json:"message"`
	User    *accounts.Account `json:"user"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// registerHandler godoc
//
//	@Summary		Registers a shop owner
//	@Description	Creates a pending account. An admin has to approve it before the owner can log in.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		auth.RegisterInput			true	"Account details"
//	@Success		201		{object}	RegisterResponse			"Registered, pending approval"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/auth/register [post]
func (app *application) registerHandler(w http.ResponseWriter, r *http.Request) {
	var payload auth.RegisterInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	account, err := app.gateway.Register(r.Context(), payload)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	app.metrics.RecordRegistration()

	if err := app.jsonResponse(w, http.StatusCreated, RegisterResponse{
		Message: "Registration successful! Please wait for admin approval.",
		User:    account,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// loginHandler godoc
//
//	@Summary		Logs in a shop owner or admin
//	@Description	Returns a bearer token for approved accounts
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		LoginPayload				true	"Credentials"
//	@Success		200		{object}	auth.LoginResult			"Token and account"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		401		{object}	ErrorBadRequestResponse		"Invalid email or password"
//	@Failure		403		{object}	ErrorForbiddenResponse		"Account pending or rejected"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/auth/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	result, err := app.gateway.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		app.metrics.RecordLogin(loginOutcome(err))
		app.serviceError(w, r, err)
		return
	}

	app.metrics.RecordLogin(metrics.LoginSuccess)

	if err := app.jsonResponse(w, http.StatusOK, result); err != nil {
		app.internalServerError(w, r, err)
	}
}

func loginOutcome(err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindAuth, apperr.KindValidation:
		return metrics.LoginInvalid
	case apperr.KindForbidden:
		return metrics.LoginForbidden
	default:
		return metrics.LoginError
	}
}

// verifyHandler godoc
//
//	@Summary		Verifies the bearer token
//	@Description	Reloads the account named by the token and returns it
//	@Tags			authentication
//	@Produce		json
//	@Success		200	{object}	accounts.Account			"Current account"
//	@Failure		401	{object}	ErrorBadRequestResponse		"Missing or invalid token"
//	@Failure		403	{object}	ErrorForbiddenResponse		"Account pending or rejected"
//	@Failure		500	{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/auth/verify [get]
func (app *application) verifyHandler(w http.ResponseWriter, r *http.Request) {
	identity := getIdentity(r)

	type verifyResponse struct {
		User any `json:"user"`
	}

	var user any = identity
	if identity.Account != nil {
		user = identity.Account
	}

	if err := app.jsonResponse(w, http.StatusOK, verifyResponse{User: user}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// changePasswordHandler godoc
//
//	@Summary		Changes the caller's password
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		auth.ChangePasswordInput	true	"Current and new password"
//	@Success		200		{object}	MessageResponse				"Password updated"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request or incorrect current password"
//	@Failure		404		{object}	ErrorBadRequestResponse		"User not found"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/auth/change-password [post]
func (app *application) changePasswordHandler(w http.ResponseWriter, r *http.Request) {
	var payload auth.ChangePasswordInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.gateway.ChangePassword(r.Context(), getIdentity(r).ID, payload); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, MessageResponse{Message: "Password updated successfully"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
