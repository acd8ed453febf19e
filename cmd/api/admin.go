package main

import (
	"net/http"

	"paytrack/internal/apperr"
	"paytrack/internal/domain/accounts"
	"paytrack/internal/moderation"
	"paytrack/internal/params"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AccountListResponse struct {
	Users []accounts.Account `json:"users"`
	Count int                `json:"count"`
}

type AccountActionResponse struct {
	Message string            `json:"message"`
	User    *accounts.Account `json:"user"`
}

type DeleteAccountResponse struct {
	Message string `json:"message"`
	moderation.DeleteResult
}

func accountIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := params.UUID(chi.URLParam(r, "userID"), "user id")
	if err != nil {
		return uuid.Nil, apperr.Validation(err.Error())
	}
	return id, nil
}

// listAccountsHandler godoc
//
//	@Summary		Lists accounts
//	@Description	Newest first. status=all or no status lists every account.
//	@Tags			admin
//	@Produce		json
//	@Param			status	query		string	false	"pending, approved, rejected or all"
//	@Success		200		{object}	AccountListResponse
//	@Failure		401		{object}	ErrorBadRequestResponse
//	@Failure		403		{object}	ErrorBadRequestResponse
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/users [get]
func (app *application) listAccountsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.moderation.ListAccounts(r.Context(), getIdentity(r), r.URL.Query().Get("status"))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if list == nil {
		list = []accounts.Account{}
	}

	if err := app.jsonResponse(w, http.StatusOK, AccountListResponse{Users: list, Count: len(list)}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// accountStatsHandler godoc
//
//	@Summary	Account counts by status
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	accounts.Stats
//	@Failure	401	{object}	ErrorBadRequestResponse
//	@Failure	403	{object}	ErrorBadRequestResponse
//	@Failure	500	{object}	ErrorInternalServerResponse
//	@Security	ApiKeyAuth
//	@Router		/admin/stats [get]
func (app *application) accountStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.moderation.Stats(r.Context(), getIdentity(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, stats); err != nil {
		app.internalServerError(w, r, err)
	}
}

// approveAccountHandler godoc
//
//	@Summary		Approves a pending or rejected account
//	@Description	Fails when the account is already approved. The owner is emailed.
//	@Tags			admin
//	@Produce		json
//	@Param			userID	path		string	true	"Account ID"
//	@Success		200		{object}	AccountActionResponse
//	@Failure		400		{object}	ErrorBadRequestResponse	"Already approved"
//	@Failure		404		{object}	ErrorBadRequestResponse	"User not found"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID}/approve [put]
func (app *application) approveAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountIDParam(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	account, err := app.moderation.Approve(r.Context(), getIdentity(r), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	app.metrics.RecordModeration("approve")

	if err := app.jsonResponse(w, http.StatusOK, AccountActionResponse{
		Message: "User approved successfully",
		User:    account,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// rejectAccountHandler godoc
//
//	@Summary		Rejects an account
//	@Description	Rejecting an already rejected account succeeds.
//	@Tags			admin
//	@Produce		json
//	@Param			userID	path		string	true	"Account ID"
//	@Success		200		{object}	AccountActionResponse
//	@Failure		404		{object}	ErrorBadRequestResponse	"User not found"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID}/reject [put]
func (app *application) rejectAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountIDParam(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	account, err := app.moderation.Reject(r.Context(), getIdentity(r), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	app.metrics.RecordModeration("reject")

	if err := app.jsonResponse(w, http.StatusOK, AccountActionResponse{
		Message: "User rejected successfully",
		User:    account,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteAccountHandler godoc
//
//	@Summary		Deletes an account and everything it owns
//	@Description	Removes the account with its customers and transactions. Admin accounts cannot be deleted.
//	@Tags			admin
//	@Produce		json
//	@Param			userID	path		string	true	"Account ID"
//	@Success		200		{object}	DeleteAccountResponse
//	@Failure		403		{object}	ErrorBadRequestResponse	"Cannot delete admin users"
//	@Failure		404		{object}	ErrorBadRequestResponse	"User not found"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID} [delete]
func (app *application) deleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountIDParam(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	res, err := app.moderation.DeleteAccount(r.Context(), getIdentity(r), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	app.metrics.RecordModeration("delete")

	if err := app.jsonResponse(w, http.StatusOK, DeleteAccountResponse{
		Message:      "User and associated data deleted successfully",
		DeleteResult: *res,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}
