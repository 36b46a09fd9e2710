package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
	apperrors "github.com/yanqian/faq-chatbot/pkg/errors"
)

// Handler wires the HTTP transport to the FAQ service.
type Handler struct {
	faqSvc faq.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Health reports that the backend is up.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "faq chatbot backend is running"})
}

// Ask answers a free-text question, optionally scoped to a category.
func (h *Handler) Ask(c *gin.Context) {
	var req faq.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.faqSvc.Answer(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, faqHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Categories lists the distinct category tags across the active corpus.
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.faqSvc.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, faqHTTPError(err))
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Reload rebuilds the corpus snapshot from its source.
func (h *Handler) Reload(c *gin.Context) {
	if err := h.faqSvc.Reload(c.Request.Context()); err != nil {
		abortWithError(c, faqHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}

// faqHTTPError maps domain errors onto statuses. 5xx responses carry a
// fixed message; the underlying error stays in Err for the middleware log.
func faqHTTPError(err error) *HTTPError {
	status := http.StatusInternalServerError
	code := "faq_failed"
	message := "faq lookup failed"
	switch {
	case apperrors.IsCode(err, "corpus_unavailable"), apperrors.IsCode(err, "corpus_load"):
		status = http.StatusServiceUnavailable
		code = "corpus_unavailable"
		message = "faq corpus is temporarily unavailable"
	case apperrors.IsCode(err, "invalid_request"):
		status = http.StatusBadRequest
		code = "invalid_request"
		message = errMessage(err)
	}
	return NewHTTPError(status, code, message, err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
