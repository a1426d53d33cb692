package storage

import (
	"slices"

	"github.com/buildmate/quote-service/internal/core/domain"
)

// MemoryCatalog is an immutable in-memory catalog snapshot. The
// collections are small, so lookups scan linearly.
type MemoryCatalog struct {
	data domain.CatalogData
}

func NewMemoryCatalog(data domain.CatalogData) *MemoryCatalog {
	return &MemoryCatalog{data: data}
}

func (c *MemoryCatalog) Products() []domain.Product             { return c.data.Products }
func (c *MemoryCatalog) Containers() []domain.ContainerType     { return c.data.Containers }
func (c *MemoryCatalog) PaymentMethods() []domain.PaymentMethod { return c.data.PaymentMethods }
func (c *MemoryCatalog) Banks() []domain.Bank                   { return c.data.Banks }
func (c *MemoryCatalog) Incoterms() []string                    { return c.data.Incoterms }
func (c *MemoryCatalog) Currencies() []string                   { return c.data.Currencies }

func (c *MemoryCatalog) FindProduct(id string) *domain.Product {
	for i := range c.data.Products {
		if c.data.Products[i].ID == id {
			return &c.data.Products[i]
		}
	}
	return nil
}

func (c *MemoryCatalog) FindContainer(id string) *domain.ContainerType {
	for i := range c.data.Containers {
		if c.data.Containers[i].ID == id {
			return &c.data.Containers[i]
		}
	}
	return nil
}

func (c *MemoryCatalog) FindPaymentMethod(id string) *domain.PaymentMethod {
	for i := range c.data.PaymentMethods {
		if c.data.PaymentMethods[i].ID == id {
			return &c.data.PaymentMethods[i]
		}
	}
	return nil
}

func (c *MemoryCatalog) FindBank(id string) *domain.Bank {
	for i := range c.data.Banks {
		if c.data.Banks[i].ID == id {
			return &c.data.Banks[i]
		}
	}
	return nil
}

func (c *MemoryCatalog) HasIncoterm(code string) bool {
	return slices.Contains(c.data.Incoterms, code)
}

func (c *MemoryCatalog) HasCurrency(code string) bool {
	return slices.Contains(c.data.Currencies, code)
}
