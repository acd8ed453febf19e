package main

import "net/http"

// remindersHandler godoc
//
//	@Summary		Payment reminders
//	@Description	One alert per customer that still owes money, most urgent first, with a WhatsApp reminder link.
//	@Tags			reports
//	@Produce		json
//	@Success		200	{object}	bookkeeping.Reminders
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/reminders [get]
func (app *application) remindersHandler(w http.ResponseWriter, r *http.Request) {
	reminders, err := app.bookkeeping.Reminders(r.Context(), getIdentity(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, reminders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// dashboardHandler godoc
//
//	@Summary	Dashboard figures for the caller's shop
//	@Tags		reports
//	@Produce	json
//	@Success	200	{object}	ledger.Summary
//	@Failure	500	{object}	ErrorInternalServerResponse
//	@Security	ApiKeyAuth
//	@Router		/dashboard [get]
func (app *application) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := app.bookkeeping.Dashboard(r.Context(), getIdentity(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, summary); err != nil {
		app.internalServerError(w, r, err)
	}
}
