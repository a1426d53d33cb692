package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/buildmate/quote-service/internal/core/domain"
	"github.com/buildmate/quote-service/internal/port"
)

// Capacity advisory messages, in precedence order.
const (
	capacityExceededMsg = "数量超过参考柜容量，建议调整柜型或拆分发货。"
	capacityNearMsg     = "已接近柜子参考容量，请确认包装尺寸和装柜方式。"
	capacityWithinMsg   = "数量在参考容量范围内。"

	nearCapacityRatio = 0.85
)

// QuoteService validates quote requests against the catalog, computes
// totals and assembles the denormalized result. It is stateless with
// respect to request data.
type QuoteService struct {
	catalog   port.CatalogRepository
	sequence  port.SequenceRepository
	publisher port.EventPublisher
	logger    zerolog.Logger
}

func NewQuoteService(catalog port.CatalogRepository, sequence port.SequenceRepository,
	publisher port.EventPublisher, logger zerolog.Logger) *QuoteService {
	return &QuoteService{
		catalog:   catalog,
		sequence:  sequence,
		publisher: publisher,
		logger:    logger,
	}
}

// Options returns the full catalog dump used to populate client-side
// choices.
func (s *QuoteService) Options() domain.CatalogData {
	return domain.CatalogData{
		Products:       s.catalog.Products(),
		Containers:     s.catalog.Containers(),
		PaymentMethods: s.catalog.PaymentMethods(),
		Banks:          s.catalog.Banks(),
		Incoterms:      s.catalog.Incoterms(),
		Currencies:     s.catalog.Currencies(),
	}
}

// CreateQuote resolves the referenced catalog entities, validates the
// business constraints and computes the quote. Checks run in a fixed
// order and return on the first violation.
func (s *QuoteService) CreateQuote(ctx context.Context, req *domain.QuoteRequest) (*domain.QuoteResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product := s.catalog.FindProduct(req.Item.ProductID)
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	container := s.catalog.FindContainer(req.ContainerID)
	if container == nil {
		return nil, domain.ErrContainerNotFound
	}
	payment := s.catalog.FindPaymentMethod(req.PaymentMethodID)
	if payment == nil {
		return nil, domain.ErrPaymentMethodNotFound
	}
	bank := s.catalog.FindBank(req.BankID)
	if bank == nil {
		return nil, domain.ErrBankNotFound
	}
	if !s.catalog.HasIncoterm(req.Incoterm) {
		return nil, domain.ErrInvalidIncoterm
	}
	if !s.catalog.HasCurrency(req.Currency) {
		return nil, domain.ErrInvalidCurrency
	}
	if req.Item.Quantity < product.MinOrder {
		return nil, domain.ErrBelowMinOrder
	}
	if req.Item.UnitPrice < product.PriceRange[0] || req.Item.UnitPrice > product.PriceRange[1] {
		return nil, domain.ErrPriceOutOfRange
	}

	// Subtotal and total are rounded independently; the sum is rounded
	// again after adding freight.
	subtotal := round2(float64(req.Item.Quantity) * req.Item.UnitPrice)
	total := round2(subtotal + req.Freight)

	result := &domain.QuoteResult{
		ID:                  uuid.NewString(),
		ProductName:         product.Name,
		ProductSpecs:        product.Specs,
		MinOrder:            product.MinOrder,
		SuggestedPriceRange: fmt.Sprintf("%.2f - %.2f", product.PriceRange[0], product.PriceRange[1]),
		Subtotal:            subtotal,
		Freight:             req.Freight,
		TotalAmount:         total,
		ContainerName:       container.Name,
		Capacity:            container.Capacity,
		CapacityMessage:     capacityMessage(req.Item.Quantity, container.Capacity),
		ContainerNotes:      container.Notes,
		Currency:            req.Currency,
		SellerCompany:       req.SellerCompany,
		BuyerCompany:        req.BuyerCompany,
		Incoterm:            req.Incoterm,
		PaymentMethod:       payment.Name,
		BankInfo: fmt.Sprintf("%s / %s / %s (SWIFT: %s)",
			bank.Name, bank.AccountName, bank.AccountNumber, bank.SWIFT),
		QuoteDate:  req.QuoteDate,
		ValidUntil: req.ValidUntil,
		Remark:     req.Remark,
	}
	result.QuoteNumber = s.nextQuoteNumber(ctx, result.ID, req.QuoteDate)

	if err := s.publisher.PublishQuoteCreated(ctx, *result); err != nil {
		s.logger.Warn().Err(err).Str("quote_id", result.ID).Msg("quote event publish failed")
	}

	return result, nil
}

// nextQuoteNumber builds "Q-YYYYMMDD-NNNN" from the per-day sequence.
// A sequence outage degrades to an id-derived suffix instead of
// failing the quote.
func (s *QuoteService) nextQuoteNumber(ctx context.Context, id, quoteDate string) string {
	day := strings.ReplaceAll(quoteDate, "-", "")

	n, err := s.sequence.Next(ctx, day)
	if err != nil {
		s.logger.Warn().Err(err).Msg("quote sequence unavailable")
		return fmt.Sprintf("Q-%s-%s", day, strings.ToUpper(id[:4]))
	}
	return fmt.Sprintf("Q-%s-%04d", day, n)
}

func capacityMessage(quantity, capacity int) string {
	switch {
	case quantity > capacity:
		return capacityExceededMsg
	case float64(quantity) > float64(capacity)*nearCapacityRatio:
		return capacityNearMsg
	default:
		return capacityWithinMsg
	}
}

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
