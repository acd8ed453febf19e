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

type CustomerListResponse struct {
	Customers []bookkeeping.CustomerSummary `json:"customers"`
	Count     int                           `json:"count"`
}

func customerIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := params.UUID(chi.URLParam(r, "customerID"), "customer id")
	if err != nil {
		return uuid.Nil, apperr.Validation(err.Error())
	}
	return id, nil
}

func customerFilter(r *http.Request) (bookkeeping.CustomerFilter, error) {
	q := r.URL.Query()

	f := bookkeeping.CustomerFilter{Search: q.Get("search")}

	var err error
	if f.MinBalance, err = params.Decimal(q, "min_balance"); err != nil {
		return f, apperr.Validation(err.Error())
	}
	if f.MaxBalance, err = params.Decimal(q, "max_balance"); err != nil {
		return f, apperr.Validation(err.Error())
	}
	return f, nil
}

// listCustomersHandler godoc
//
//	@Summary		Lists the caller's customers with their balances
//	@Tags			customers
//	@Produce		json
//	@Param			search		query		string	false	"Matches name or contact"
//	@Param			min_balance	query		number	false	"Inclusive lower bound on balance"
//	@Param			max_balance	query		number	false	"Inclusive upper bound on balance"
//	@Success		200			{object}	CustomerListResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/customers [get]
func (app *application) listCustomersHandler(w http.ResponseWriter, r *http.Request) {
	f, err := customerFilter(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	list, err := app.bookkeeping.ListCustomers(r.Context(), getIdentity(r), f)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, CustomerListResponse{Customers: list, Count: len(list)}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createCustomerHandler godoc
//
//	@Summary	Adds a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		bookkeeping.CustomerInput	true	"Customer"
//	@Success	201		{object}	customers.Customer
//	@Failure	400		{object}	ErrorBadRequestResponse
//	@Failure	500		{object}	ErrorInternalServerResponse
//	@Security	ApiKeyAuth
//	@Router		/customers [post]
func (app *application) createCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var payload bookkeeping.CustomerInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	c, err := app.bookkeeping.CreateCustomer(r.Context(), getIdentity(r), payload)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, c); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCustomerHandler godoc
//
//	@Summary	Fetches a customer with balance and transactions
//	@Tags		customers
//	@Produce	json
//	@Param		customerID	path		string	true	"Customer ID"
//	@Success	200			{object}	bookkeeping.CustomerDetail
//	@Failure	404			{object}	ErrorBadRequestResponse	"Customer not found"
//	@Failure	500			{object}	ErrorInternalServerResponse
//	@Security	ApiKeyAuth
//	@Router		/customers/{customerID} [get]
func (app *application) getCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := customerIDParam(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	detail, err := app.bookkeeping.GetCustomer(r.Context(), getIdentity(r), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, detail); err != nil {
		app.internalServerError(w, r, err)
	}
}

// customerTransactionsHandler godoc
//
//	@Summary	Lists one customer's transactions, most recent first
//	@Tags		customers
//	@Produce	json
//	@Param		customerID	path		string	true	"Customer ID"
//	@Success	200			{array}		transactions.Transaction
//	@Failure	404			{object}	ErrorBadRequestResponse	"Customer not found"
//	@Failure	500			{object}	ErrorInternalServerResponse
//	@Security	ApiKeyAuth
//	@Router		/customers/{customerID}/transactions [get]
func (app *application) customerTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := customerIDParam(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	txns, err := app.bookkeeping.CustomerTransactions(r.Context(), getIdentity(r), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if txns == nil {
		txns = []transactions.Transaction{}
	}

	if err := app.jsonResponse(w, http.StatusOK, txns); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCustomerHandler godoc
//
//	@Summary	Updates a customer's name, contact and email
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		customerID	path		string						true	"Customer ID"
//	@Param		payload		body		bookkeeping.CustomerInput	true	"Customer"
//	@Success	200			{object}	customers.Customer
//	@Failure	400			{object}	ErrorBadRequestResponse
//	@Failure	404			{object}	ErrorBadRequestResponse	"Customer not found"
//	@Failure	500			{object}	ErrorInternalServerResponse
//	@Security	ApiKeyAuth
//	@Router		/customers/{customerID} [put]
func (app *application) updateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := customerIDParam(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	var payload bookkeeping.CustomerInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	c, err := app.bookkeeping.UpdateCustomer(r.Context(), getIdentity(r), id, payload)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, c); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCustomerHandler godoc
//
//	@Summary		Deletes a customer and its transactions
//	@Description	The owner or an admin may delete a customer.
//	@Tags			customers
//	@Produce		json
//	@Param			customerID	path		string	true	"Customer ID"
//	@Success		200			{object}	MessageResponse
//	@Failure		404			{object}	ErrorBadRequestResponse	"Customer not found"
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/customers/{customerID} [delete]
func (app *application) deleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := customerIDParam(r)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.bookkeeping.DeleteCustomer(r.Context(), getIdentity(r), id); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, MessageResponse{Message: "Customer deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
