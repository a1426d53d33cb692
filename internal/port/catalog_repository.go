package port

import "github.com/buildmate/quote-service/internal/core/domain"

// CatalogRepository serves the reference data quotes are validated
// against. Implementations are immutable snapshots fixed at process
// start, so they are safe for concurrent readers without locking.
type CatalogRepository interface {
	Products() []domain.Product
	Containers() []domain.ContainerType
	PaymentMethods() []domain.PaymentMethod
	Banks() []domain.Bank
	Incoterms() []string
	Currencies() []string

	// Find* return nil for an unknown id; the caller decides how
	// absence is reported.
	FindProduct(id string) *domain.Product
	FindContainer(id string) *domain.ContainerType
	FindPaymentMethod(id string) *domain.PaymentMethod
	FindBank(id string) *domain.Bank

	HasIncoterm(code string) bool
	HasCurrency(code string) bool
}
