package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	bookingRepo "voyago/database/repository/booking"
	invoiceRepo "voyago/database/repository/invoice"
	"voyago/models"
	"voyago/services/invoice"
	"voyago/services/storage"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// InvoiceHandler exposes invoice generation, lifecycle and document
// archival endpoints. Archival goes through the storage service so invoice
// documents are encrypted at rest; the repository is only touched directly
// to record the archived document handle.
type InvoiceHandler struct {
	InvoiceService invoice.InvoiceService
	StorageSvc     storage.StorageService
	Invoices       invoiceRepo.InvoiceRepository
	DocumentKey    string
}

// NewInvoiceHandler creates an InvoiceHandler, fetching the document
// encryption key from configuration.
func NewInvoiceHandler(svc invoice.InvoiceService, storageSvc storage.StorageService, invoices invoiceRepo.InvoiceRepository) *InvoiceHandler {
	documentKey := viper.GetString("cloudinary.documentKey")
	return &InvoiceHandler{
		InvoiceService: svc,
		StorageSvc:     storageSvc,
		Invoices:       invoices,
		DocumentKey:    documentKey,
	}
}

// GenerateInvoiceHandler handles POST /api/invoices. It builds a draft
// invoice over the requested bookings, or over everything uninvoiced for the
// entity when no booking IDs are given.
func (h *InvoiceHandler) GenerateInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input invoice.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid invoice request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	inv, err := h.InvoiceService.Generate(input)
	if err != nil {
		logger.Error("Invoice generation failed", zap.String("entityId", input.EntityID), zap.Error(err))
		c.JSON(invoiceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// GenerateCustomInvoiceHandler handles POST /api/invoices/custom. Custom
// invoices bill free-form line items and never claim bookings.
func (h *InvoiceHandler) GenerateCustomInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input invoice.CustomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid custom invoice request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	inv, err := h.InvoiceService.GenerateCustom(input)
	if err != nil {
		logger.Error("Custom invoice generation failed", zap.String("entityId", input.EntityID), zap.Error(err))
		c.JSON(invoiceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// GetInvoiceByIDHandler handles GET /api/invoices/id/:id.
func (h *InvoiceHandler) GetInvoiceByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	inv, err := h.InvoiceService.GetByID(id)
	if err != nil {
		logger.Error("Invoice not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// GetInvoiceByNumberHandler handles GET /api/invoices/number/:number.
func (h *InvoiceHandler) GetInvoiceByNumberHandler(c *gin.Context) {
	logger := utils.GetLogger()
	number := c.Param("number")

	inv, err := h.InvoiceService.GetByNumber(number)
	if err != nil {
		logger.Error("Invoice not found by number", zap.String("number", number), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ListInvoicesHandler handles GET /api/invoices. One of the entityId or type
// query parameters scopes the listing.
func (h *InvoiceHandler) ListInvoicesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var (
		invoices []models.Invoice
		err      error
	)
	switch {
	case c.Query("entityId") != "":
		invoices, err = h.InvoiceService.ListByEntity(c.Query("entityId"))
	case c.Query("type") != "":
		invoices, err = h.InvoiceService.ListByType(c.Query("type"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "one of entityId or type is required"})
		return
	}
	if err != nil {
		logger.Error("Invoice listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices, "count": len(invoices)})
}

// IssueInvoiceHandler handles PUT /api/invoices/:id/issue.
func (h *InvoiceHandler) IssueInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	inv, err := h.InvoiceService.Issue(id)
	if err != nil {
		logger.Error("Invoice issue failed", zap.String("id", id), zap.Error(err))
		c.JSON(invoiceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// MarkInvoicePaidHandler handles PUT /api/invoices/:id/paid.
func (h *InvoiceHandler) MarkInvoicePaidHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	inv, err := h.InvoiceService.MarkPaid(id)
	if err != nil {
		logger.Error("Invoice payment marking failed", zap.String("id", id), zap.Error(err))
		c.JSON(invoiceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// VoidInvoiceHandler handles PUT /api/invoices/:id/void. Voiding releases
// the invoice's bookings for re-invoicing.
func (h *InvoiceHandler) VoidInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	inv, err := h.InvoiceService.Void(id)
	if err != nil {
		logger.Error("Invoice void failed", zap.String("id", id), zap.Error(err))
		c.JSON(invoiceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// AmendInvoiceHandler handles POST /api/invoices/:id/amend. The original is
// superseded and its bookings are re-billed onto a fresh draft at their
// current prices.
func (h *InvoiceHandler) AmendInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		TaxRatePct *float64 `json:"taxRatePct,omitempty"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid amend request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
	}

	replacement, err := h.InvoiceService.Amend(id, req.TaxRatePct)
	if err != nil {
		logger.Error("Invoice amendment failed", zap.String("id", id), zap.Error(err))
		c.JSON(invoiceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, replacement)
}

// OpenPaymentIntentHandler handles POST /api/invoices/:id/payment-intent.
func (h *InvoiceHandler) OpenPaymentIntentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	inv, err := h.InvoiceService.OpenPaymentIntent(id)
	if err != nil {
		logger.Error("Payment intent creation failed", zap.String("id", id), zap.Error(err))
		c.JSON(invoiceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoiceId": inv.ID, "paymentIntentId": inv.PaymentIntentID})
}

// ArchiveInvoiceDocumentHandler handles POST /api/invoices/:id/document. The
// uploaded PDF is encrypted before storage and its handle recorded on the
// invoice.
func (h *InvoiceHandler) ArchiveInvoiceDocumentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if _, err := h.InvoiceService.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadEncryptedFile(c, tempFilePath, "invoices/documents", h.DocumentKey)
	if err != nil {
		logger.Error("Invoice document upload failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to archive document", "detail": err.Error()})
		return
	}

	if err := h.Invoices.SetDocumentID(id, publicID); err != nil {
		logger.Error("Failed to record document on invoice", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "document archived", "documentId": publicID})
}

// GetInvoiceDocumentURLHandler handles GET /api/invoices/:id/document. It
// returns a signed, short-lived download URL for the archived document.
func (h *InvoiceHandler) GetInvoiceDocumentURLHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	inv, err := h.InvoiceService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if inv.DocumentID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice has no archived document"})
		return
	}

	expiry := 15 * time.Minute
	if expStr := c.Query("expires"); expStr != "" {
		if exp, err := time.ParseDuration(expStr); err == nil {
			expiry = exp
		}
	}

	url, err := h.StorageSvc.GetSecureDownloadURL(c, "raw", inv.DocumentID, expiry)
	if err != nil {
		logger.Error("Failed to generate document URL", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate download URL", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// invoiceErrorStatus maps invoice service errors to HTTP status codes.
func invoiceErrorStatus(err error) int {
	var (
		eligibilityErr *invoice.EligibilityError
		stateErr       *invoice.StateError
	)
	switch {
	case errors.As(err, &eligibilityErr), errors.As(err, &stateErr):
		return http.StatusConflict
	case errors.Is(err, bookingRepo.ErrAlreadyInvoiced):
		return http.StatusConflict
	case errors.Is(err, invoice.ErrNoBookings), errors.Is(err, invoice.ErrNoLineItems):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
