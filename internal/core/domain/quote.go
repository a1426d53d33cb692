package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for quote dates.
const DateLayout = "2006-01-02"

type QuoteItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// QuoteRequest is the transient caller input. It references catalog
// entities by id; resolution happens during quote creation and nothing
// is stored afterwards.
type QuoteRequest struct {
	SellerCompany   string    `json:"seller_company"`
	BuyerCompany    string    `json:"buyer_company"`
	Incoterm        string    `json:"incoterm"`
	Currency        string    `json:"currency"`
	PaymentMethodID string    `json:"payment_method_id"`
	BankID          string    `json:"bank_id"`
	ContainerID     string    `json:"container_id"`
	Freight         float64   `json:"freight"`
	QuoteDate       string    `json:"quote_date"`
	ValidUntil      string    `json:"valid_until"`
	Remark          string    `json:"remark,omitempty"`
	Item            QuoteItem `json:"item"`
}

// Validate checks request shape before any catalog lookup: required
// fields, sign constraints and date sanity. Field order is fixed so
// the first violation reported is deterministic.
func (r *QuoteRequest) Validate() error {
	switch {
	case r.SellerCompany == "":
		return fmt.Errorf("%w: seller_company", ErrMalformedRequest)
	case r.BuyerCompany == "":
		return fmt.Errorf("%w: buyer_company", ErrMalformedRequest)
	case r.Item.ProductID == "":
		return fmt.Errorf("%w: item.product_id", ErrMalformedRequest)
	case r.Item.Quantity <= 0:
		return fmt.Errorf("%w: item.quantity", ErrMalformedRequest)
	case r.Item.UnitPrice <= 0:
		return fmt.Errorf("%w: item.unit_price", ErrMalformedRequest)
	case r.Freight < 0:
		return fmt.Errorf("%w: freight", ErrMalformedRequest)
	}

	quoteDate, err := time.Parse(DateLayout, r.QuoteDate)
	if err != nil {
		return fmt.Errorf("%w: quote_date", ErrMalformedRequest)
	}
	validUntil, err := time.Parse(DateLayout, r.ValidUntil)
	if err != nil {
		return fmt.Errorf("%w: valid_until", ErrMalformedRequest)
	}
	if validUntil.Before(quoteDate) {
		return ErrInvalidDateRange
	}

	return nil
}

// QuoteResult is the denormalized snapshot of a computed quote. It is
// produced fresh per request, never mutated afterwards, and is the
// sole input to the PDF renderer.
type QuoteResult struct {
	ID                  string  `json:"id"`
	QuoteNumber         string  `json:"quote_number"`
	ProductName         string  `json:"product_name"`
	ProductSpecs        string  `json:"product_specs"`
	MinOrder            int     `json:"min_order"`
	SuggestedPriceRange string  `json:"suggested_price_range"`
	Subtotal            float64 `json:"subtotal"`
	Freight             float64 `json:"freight"`
	TotalAmount         float64 `json:"total_amount"`
	ContainerName       string  `json:"container_name"`
	Capacity            int     `json:"capacity"`
	CapacityMessage     string  `json:"capacity_message"`
	ContainerNotes      string  `json:"container_notes"`
	Currency            string  `json:"currency"`
	SellerCompany       string  `json:"seller_company"`
	BuyerCompany        string  `json:"buyer_company"`
	Incoterm            string  `json:"incoterm"`
	PaymentMethod       string  `json:"payment_method"`
	BankInfo            string  `json:"bank_info"`
	QuoteDate           string  `json:"quote_date"`
	ValidUntil          string  `json:"valid_until"`
	Remark              string  `json:"remark,omitempty"`
}
