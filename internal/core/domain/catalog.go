package domain

// Container type ids form a closed set; the catalog never carries
// other values.
const (
	Container20GP = "20GP"
	Container40HQ = "40HQ"
)

// Product is a sellable catalog entry. PriceRange holds the suggested
// [min, max] unit price, min <= max, both positive.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Specs       string     `json:"specs"`
	MinOrder    int        `json:"min_order"`
	PriceRange  [2]float64 `json:"price_range"`
	Description string     `json:"description"`
}

// ContainerType describes a shipping container with its reference
// capacity in order-quantity units.
type ContainerType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Notes    string `json:"notes"`
}

type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Bank struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	SWIFT         string `json:"swift"`
	Address       string `json:"address"`
}

// CatalogData is the full reference data set a catalog serves. It is
// populated once at process start and read-only afterwards.
type CatalogData struct {
	Products       []Product       `json:"products"`
	Containers     []ContainerType `json:"containers"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	Banks          []Bank          `json:"banks"`
	Incoterms      []string        `json:"incoterms"`
	Currencies     []string        `json:"currencies"`
}
