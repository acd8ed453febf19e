package main

import (
	"net/http"

	"paytrack/internal/apperr"
	"paytrack/internal/bookkeeping"
	"paytrack/internal/domain/transactions"
	"paytrack/internal/params"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TransactionListResponse struct {
	Transactions []transactions.Transaction `json:"transactions"`
	Pagination   *params.Pagination         `json:"pagination,omitempty"`
}

func transactionIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := params.UUID(chi.URLParam(r, "transactionID"), "transaction id")
	if err != nil {
		return uuid.Nil, apperr.Validation(err.Error())
	}
	return id, nil
}

// listTransactionsHandler godoc
//
//	@Summary		Lists the caller's transactions, most recent first
//	@Description	Unpaged unless page or limit is given.
//	@Tags			transactions
//	@Produce		json
//	@Param			page	query		int	false	"Page number (default 1)"
//	@Param			limit	query		int	false	"Items per page (default 50, max 200)"
//	@Success		200		{object}	TransactionListResponse
//	@Failure		500		{object}	ErrorInternalServerResponse	"Failed to fetch transactions"
//	@Security		ApiKeyAuth
//	@Router			/transactions [get]
func (app *application) listTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	txns, err := app.bookkeeping.ListTransactions(r.Context(), getIdentity(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if txns == nil {
		txns = []transactions.Transaction{}
	}

	resp := TransactionListResponse{Transactions: txns}
	if p, ok := params.ParsePagination(r.URL.Query()); ok {
		start, end := p.Window(len(txns))
		p.ComputeMeta(len(txns))
		resp.Transactions = txns[start:end]
		resp.Pagination = &p
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createTransactionHandler godoc
//
//	@Summary		Records a purchase or a payment
//	@Description	The customer must belong to the caller. dueDate is only accepted on purchases and paymentMethod only on payments.
//	@Tags			transactions
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		bookkeeping.TransactionInput	true	"Transaction"
//	@Success		201		{object}	transactions.Transaction
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	ErrorBadRequestResponse	"Customer not found"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/transactions [post]
func (app *application) createTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var payload bookkeeping.TransactionInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	t, err := app.bookkeeping.CreateTransaction(r.Context(), getIdentity(r), payload)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, t); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getTransactionHandler godoc
//
//	@Summary	Fetches one transaction
//	@Tags		transactions
//	@Produce	json
//	@Param		transactionID	path		string	true	"Transaction ID"
//	@Success	200				{object}	transactions.Transaction
//	@Failure	404				{object}	ErrorBadRequestResponse	"Transaction not found"
//	@Failure	500				{object}	ErrorInternalServerResponse
//	@Security	ApiKeyAuth
//	@Router		/transactions/{transactionID} [get]
func (app *application) getTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := transactionIDParam(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	t, err := app.bookkeeping.GetTransaction(r.Context(), getIdentity(r), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, t); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateTransactionHandler godoc
//
//	@Summary		Updates amount, description, date or due date
//	@Description	Type, customer and line items never change.
//	@Tags			transactions
//	@Accept			json
//	@Produce		json
//	@Param			transactionID	path		string							true	"Transaction ID"
//	@Param			payload			body		bookkeeping.TransactionUpdate	true	"Fields to change"
//	@Success		200				{object}	transactions.Transaction
//	@Failure		400				{object}	ErrorBadRequestResponse
//	@Failure		404				{object}	ErrorBadRequestResponse	"Transaction not found"
//	@Failure		500				{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/transactions/{transactionID} [put]
func (app *application) updateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := transactionIDParam(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	var payload bookkeeping.TransactionUpdate
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	t, err := app.bookkeeping.UpdateTransaction(r.Context(), getIdentity(r), id, payload)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, t); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteTransactionHandler godoc
//
//	@Summary	Deletes a transaction
//	@Tags		transactions
//	@Produce	json
//	@Param		transactionID	path		string	true	"Transaction ID"
//	@Success	200				{object}	MessageResponse
//	@Failure	404				{object}	ErrorBadRequestResponse	"Transaction not found"
//	@Failure	500				{object}	ErrorInternalServerResponse
//	@Security	ApiKeyAuth
//	@Router		/transactions/{transactionID} [delete]
func (app *application) deleteTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := transactionIDParam(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.bookkeeping.DeleteTransaction(r.Context(), getIdentity(r), id); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, MessageResponse{Message: "Transaction deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
