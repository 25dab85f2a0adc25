package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/fin_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/fin_tracker_app/internal/dto"
	"github.com/SscSPs/fin_tracker_app/internal/middleware"
)

// moneyHandler handles the ledger routes: transfers, plain expense/income
// records, the combined transaction listing and CSV imports.
type moneyHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	expenseService   portssvc.ExpenseSvcFacade
	incomeService    portssvc.IncomeSvcFacade
	csvImportService portssvc.CSVImportSvcFacade
}

func newMoneyHandler(
	ledgerService portssvc.LedgerSvcFacade,
	expenseService portssvc.ExpenseSvcFacade,
	incomeService portssvc.IncomeSvcFacade,
	csvImportService portssvc.CSVImportSvcFacade,
) *moneyHandler {
	return &moneyHandler{
		ledgerService:    ledgerService,
		expenseService:   expenseService,
		incomeService:    incomeService,
		csvImportService: csvImportService,
	}
}

// registerMoneyRoutes sets up the /money routes.
func registerMoneyRoutes(
	rg *gin.RouterGroup,
	ledgerService portssvc.LedgerSvcFacade,
	expenseService portssvc.ExpenseSvcFacade,
	incomeService portssvc.IncomeSvcFacade,
	csvImportService portssvc.CSVImportSvcFacade,
) {
	h := newMoneyHandler(ledgerService, expenseService, incomeService, csvImportService)
	money := rg.Group("/money")
	{
		money.POST("/transfer", h.transfer)
		money.GET("/transactions", h.listTransactions)

		money.POST("/expense", h.recordExpense)
		money.GET("/expense/:id", h.getExpense)
		money.PUT("/expense/:id", h.updateExpense)
		money.DELETE("/expense/:id", h.deleteExpense)
		money.POST("/expense/csv", h.importExpensesCSV)

		money.POST("/income", h.recordIncome)
		money.GET("/income/:id", h.getIncome)
		money.PUT("/income/:id", h.updateIncome)
		money.DELETE("/income/:id", h.deleteIncome)
		money.POST("/income/csv", h.importIncomesCSV)
	}
}

// callerID pulls the authenticated user from the request context, writing the
// 401 itself when the middleware did not set one.
func callerID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// transfer godoc
// @Summary Transfer money to another user
// @Description Moves an amount from the caller to the payee, creating a paired expense/income entry atomically. The payee is resolved by ID first, then by email.
// @Tags money
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse "Validation failure or self transfer"
// @Failure 403 {object} ErrorResponse "Insufficient balance"
// @Failure 404 {object} ErrorResponse "Receiver not found"
// @Failure 503 {object} ErrorResponse "Transfer timed out"
// @Security BearerAuth
// @Router /money/transfer [post]
func (h *moneyHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payerID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	result, err := h.ledgerService.Transfer(c.Request.Context(), payerID, req)
	if err != nil {
		respondWithError(c, err, "Failed to process transfer")
		return
	}

	logger.Info("Transfer completed", slog.String("transfer_id", result.TransferID))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(result))
}

// listTransactions godoc
// @Summary List the caller's transactions
// @Description Returns the caller's expenses and incomes, newest first on both sides. Transfer-derived rows are included.
// @Tags money
// @Produce json
// @Success 200 {object} dto.TransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/transactions [get]
func (h *moneyHandler) listTransactions(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// recordExpense godoc
// @Summary Record a plain expense
// @Description Creates a single-sided expense entry. The caller's balance is not affected.
// @Tags money
// @Accept json
// @Produce json
// @Param expense body dto.RecordExpenseRequest true "Expense details"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/expense [post]
func (h *moneyHandler) recordExpense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	expense, err := h.expenseService.RecordExpense(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to record expense")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// getExpense godoc
// @Summary Get an expense by ID
// @Description Returns the expense if it belongs to the caller. Other users' entries read as not found.
// @Tags money
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} domain.Expense
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/expense/{id} [get]
func (h *moneyHandler) getExpense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to fetch expense")
		return
	}

	c.JSON(http.StatusOK, expense)
}

// updateExpense godoc
// @Summary Update an expense
// @Description Applies a partial update to an expense owned by the caller. Owner and counterparty are immutable.
// @Tags money
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/expense/{id} [put]
func (h *moneyHandler) updateExpense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update expense")
		return
	}

	c.JSON(http.StatusOK, expense)
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Deletes an expense owned by the caller. Balances of transfer-derived entries are not reversed.
// @Tags money
// @Param id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/expense/{id} [delete]
func (h *moneyHandler) deleteExpense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondWithError(c, err, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}

// recordIncome godoc
// @Summary Record a plain income
// @Description Creates a single-sided income entry. The caller's balance is not affected.
// @Tags money
// @Accept json
// @Produce json
// @Param income body dto.RecordIncomeRequest true "Income details"
// @Success 201 {object} domain.Income
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/income [post]
func (h *moneyHandler) recordIncome(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.RecordIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	income, err := h.incomeService.RecordIncome(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to record income")
		return
	}

	c.JSON(http.StatusCreated, income)
}

// getIncome godoc
// @Summary Get an income by ID
// @Tags money
// @Produce json
// @Param id path string true "Income ID"
// @Success 200 {object} domain.Income
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/income/{id} [get]
func (h *moneyHandler) getIncome(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	income, err := h.incomeService.GetIncomeByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to fetch income")
		return
	}

	c.JSON(http.StatusOK, income)
}

// updateIncome godoc
// @Summary Update an income
// @Tags money
// @Accept json
// @Produce json
// @Param id path string true "Income ID"
// @Param income body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} domain.Income
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/income/{id} [put]
func (h *moneyHandler) updateIncome(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	income, err := h.incomeService.UpdateIncome(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update income")
		return
	}

	c.JSON(http.StatusOK, income)
}

// deleteIncome godoc
// @Summary Delete an income
// @Tags money
// @Param id path string true "Income ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/income/{id} [delete]
func (h *moneyHandler) deleteIncome(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.incomeService.DeleteIncome(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondWithError(c, err, "Failed to delete income")
		return
	}

	c.Status(http.StatusNoContent)
}

// importCSV runs the shared multipart handling for both import endpoints.
func (h *moneyHandler) importCSV(c *gin.Context, kind domain.ImportKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := callerID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A csv file upload named 'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, err, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	report, err := h.csvImportService.ImportBatch(c.Request.Context(), userID, file, kind)
	if err != nil {
		respondWithError(c, err, "Failed to import csv")
		return
	}

	logger.Info("CSV import handled",
		slog.String("file", fileHeader.Filename),
		slog.Int("successful", report.SuccessfulRows),
		slog.Int("failed", report.FailedRows))

	message := "Import completed"
	if report.FailedRows > 0 {
		message = "Import completed with failures"
	}
	c.JSON(http.StatusCreated, dto.ToImportReportResponse(message, report))
}

// importExpensesCSV godoc
// @Summary Bulk import expenses from CSV
// @Description Imports a CSV of expense rows. Valid rows are committed, invalid rows come back in the report. Imported rows never affect balances.
// @Tags money
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with a header row"
// @Success 201 {object} dto.ImportReportResponse
// @Failure 400 {object} ErrorResponse "File missing or unparseable"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/expense/csv [post]
func (h *moneyHandler) importExpensesCSV(c *gin.Context) {
	h.importCSV(c, domain.ImportExpenses)
}

// importIncomesCSV godoc
// @Summary Bulk import incomes from CSV
// @Tags money
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with a header row"
// @Success 201 {object} dto.ImportReportResponse
// @Failure 400 {object} ErrorResponse "File missing or unparseable"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /money/income/csv [post]
func (h *moneyHandler) importIncomesCSV(c *gin.Context) {
	h.importCSV(c, domain.ImportIncomes)
}
