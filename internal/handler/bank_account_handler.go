package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
	"github.com/edulink/edulink-backend/internal/validator"
)

type BankAccountHandler struct {
	bankAccountService *service.BankAccountService
}

func NewBankAccountHandler(bankAccountService *service.BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{bankAccountService: bankAccountService}
}

// List godoc
// GET /api/v1/settings/bank-accounts
func (h *BankAccountHandler) List(c *gin.Context) {
	accounts, err := h.bankAccountService.List(c.Request.Context(), tenantID(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	if accounts == nil {
		accounts = []model.BankAccount{}
	}
	response.Success(c, http.StatusOK, "Bank accounts retrieved successfully.", accounts)
}

// Create godoc
// POST /api/v1/settings/bank-accounts
func (h *BankAccountHandler) Create(c *gin.Context) {
	var req model.CreateBankAccountRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	account, err := h.bankAccountService.Create(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Bank account created successfully.", account)
}

// Update godoc
// PUT /api/v1/settings/bank-accounts/:id
func (h *BankAccountHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateBankAccountRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	account, err := h.bankAccountService.Update(c.Request.Context(), tenantID(c), id, &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Bank account updated successfully.", account)
}

// UploadLogo godoc
// POST /api/v1/settings/bank-accounts/:id/logo (multipart: file)
func (h *BankAccountHandler) UploadLogo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	defer file.Close()

	account, err := h.bankAccountService.SetLogo(c.Request.Context(), tenantID(c), id,
		file, fileHeader.Header.Get("Content-Type"), fileHeader.Size)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Bank account logo updated successfully.", account)
}

// Delete godoc
// DELETE /api/v1/settings/bank-accounts/:id
func (h *BankAccountHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.bankAccountService.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Bank account deleted successfully.", nil)
}
