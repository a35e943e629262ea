package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/souyave/payments-engine/internal/adapter/http/models"
	"github.com/souyave/payments-engine/internal/commons"
	"github.com/souyave/payments-engine/internal/domain"
	"github.com/souyave/payments-engine/internal/usecase/service_interfaces"
)

// AccountsController renders the ledger service's results and errors into the
// HTTP transport. It carries no invariants of its own.
type AccountsController struct {
	service            service_interfaces.LedgerService
	miniStatementLimit int
}

func NewAccountsController(service service_interfaces.LedgerService, miniStatementLimit int) *AccountsController {
	return &AccountsController{
		service:            service,
		miniStatementLimit: miniStatementLimit,
	}
}

func (c *AccountsController) RegisterRoutes(r chi.Router) {
	r.Post("/accounts", c.createAccount)
	r.Get("/accounts/{accountId}/balance", c.getBalance)
	r.Patch("/accounts/{accountId}/transfer/{toAccountId}/{amount}", c.transfer)
	r.Get("/accounts/{accountId}/statements/mini", c.miniStatement)
	r.Delete("/accounts/{accountId}", c.deleteAccount)
}

func (c *AccountsController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		return
	}

	account, err := c.service.CreateAccount(r.Context(), req.Currency)
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.AccountResponse]("failed to create account", err.Error())
		writeJSON(w, statusForError(err), response)
		return
	}

	response := commons.SuccessResponse("account created successfully", models.AccountFromDomain(account))
	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, start)
}

func (c *AccountsController) getBalance(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(w, r, "accountId")
	if !ok {
		return
	}

	account, err := c.service.GetAccount(r.Context(), accountID)
	if err != nil {
		logError(r, err, accountFields(accountID))
		response := commons.ErrorResponse[models.AccountResponse]("failed to get account", err.Error())
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("account fetched successfully", models.AccountFromDomain(account)))
}

func (c *AccountsController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	fromAccountID, ok := pathID(w, r, "accountId")
	if !ok {
		return
	}
	toAccountID, ok := pathID(w, r, "toAccountId")
	if !ok {
		return
	}

	amount, err := decimal.NewFromString(chi.URLParam(r, "amount"))
	if err != nil {
		response := commons.ErrorResponse[models.TransactionResponse]("validation failed", "amount must be a decimal number")
		writeJSON(w, http.StatusBadRequest, response)
		return
	}

	params := models.TransferParams{
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
	}
	if err := params.Validate(); err != nil {
		response := commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		return
	}

	transaction, err := c.service.Transfer(r.Context(), params.FromAccountID, params.ToAccountID, params.Amount)
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.TransactionResponse]("transfer failed", err.Error())
		writeJSON(w, statusForError(err), response)
		return
	}

	response := commons.SuccessResponse("transfer completed successfully", models.TransactionFromDomain(transaction))
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, start)
}

func (c *AccountsController) miniStatement(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(w, r, "accountId")
	if !ok {
		return
	}

	transactions, err := c.service.RecentTransactions(r.Context(), accountID, c.miniStatementLimit)
	if err != nil {
		logError(r, err, accountFields(accountID))
		response := commons.ErrorResponse[[]models.TransactionResponse]("failed to get statement", err.Error())
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("statement fetched successfully", models.TransactionsFromDomain(transactions)))
}

func (c *AccountsController) deleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(w, r, "accountId")
	if !ok {
		return
	}

	if err := c.service.DeleteAccount(r.Context(), accountID); err != nil {
		logError(r, err, accountFields(accountID))
		response := commons.ErrorResponse[commons.Empty]("failed to delete account", err.Error())
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("account deleted successfully", commons.Empty{}))
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		response := commons.ErrorResponse[commons.Empty]("validation failed", name+" must be an integer")
		writeJSON(w, http.StatusBadRequest, response)
		return 0, false
	}
	return id, true
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAccount),
		errors.Is(err, domain.ErrUnmatchedCurrencies),
		errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
