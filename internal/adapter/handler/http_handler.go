package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/buildmate/quote-service/internal/core/domain"
	"github.com/buildmate/quote-service/internal/core/pdf"
	"github.com/buildmate/quote-service/internal/core/service"
)

type HTTPHandler struct {
	quoteService *service.QuoteService
	renderer     *pdf.Renderer
	logger       zerolog.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPHandler(quoteService *service.QuoteService, renderer *pdf.Renderer, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		quoteService: quoteService,
		renderer:     renderer,
		logger:       logger,
	}
}

func (h *HTTPHandler) Register(e *echo.Echo) {
	e.GET("/health", h.HealthCheck)
	e.GET("/api/options", h.GetOptions)
	e.POST("/api/quotes", h.CreateQuote)
	e.POST("/api/quotes/pdf", h.DownloadQuote)
}

// GetOptions dumps the catalog for client-side choice population.
func (h *HTTPHandler) GetOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.quoteService.Options())
}

func (h *HTTPHandler) CreateQuote(c echo.Context) error {
	result, err := h.createQuote(c)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// DownloadQuote computes the quote and streams it as a PDF
// attachment.
func (h *HTTPHandler) DownloadQuote(c echo.Context) error {
	result, err := h.createQuote(c)
	if err != nil {
		return h.writeError(c, err)
	}

	data, err := h.renderer.Render(result)
	if err != nil {
		h.logger.Error().Err(err).Str("quote_id", result.ID).Msg("quote pdf render failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="quotation.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func (h *HTTPHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) createQuote(c echo.Context) (*domain.QuoteResult, error) {
	var req domain.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return nil, fmt.Errorf("%w: body", domain.ErrMalformedRequest)
	}
	return h.quoteService.CreateQuote(c.Request().Context(), &req)
}

// writeError maps validation failures to client statuses: unresolved
// catalog references are 404, every other validation kind is 400.
func (h *HTTPHandler) writeError(c echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrContainerNotFound),
		errors.Is(err, domain.ErrPaymentMethodNotFound),
		errors.Is(err, domain.ErrBankNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedRequest),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidIncoterm),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrBelowMinOrder),
		errors.Is(err, domain.ErrPriceOutOfRange):
		status = http.StatusBadRequest
	default:
		h.logger.Error().Err(err).Msg("quote creation failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}
