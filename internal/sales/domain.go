package sales

import "time"

// TopProductsLimit caps how many products are listed per seller in a report.
const TopProductsLimit = 10

// Seller is a person that sales are attributed to.
type Seller struct {
	ID        ID     `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Product is a catalog entry with its purchase (cost) price.
type Product struct {
	SKU           string `json:"sku"`
	PurchasePrice Number `json:"purchase_price"`
}

// Item is one line of a purchase record.
type Item struct {
	SKU       string `json:"sku"`
	Quantity  Number `json:"quantity"`
	Discount  Number `json:"discount"`
	SalePrice Number `json:"sale_price"`
}

// PurchaseRecord is a single receipt attributed to one seller.
type PurchaseRecord struct {
	SellerID ID     `json:"seller_id"`
	Items    []Item `json:"items"`
}

// Dataset groups the three collections a report is computed from.
type Dataset struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}

// TopProduct is a sku together with the quantity a seller sold of it.
type TopProduct struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

// ReportEntry is the per-seller line of a sales report.
type ReportEntry struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	TopProducts []TopProduct `json:"top_products"`
	Bonus       float64      `json:"bonus"`
}

// Report is a stored analysis result.
type Report struct {
	ID              string        `json:"id"`
	CreatedAt       time.Time     `json:"created_at"`
	RevenueStrategy string        `json:"revenue_strategy"`
	BonusStrategy   string        `json:"bonus_strategy"`
	Entries         []ReportEntry `json:"entries"`
	Summary         Summary       `json:"summary"`
}

// Summary holds report-wide totals.
type Summary struct {
	Sellers      int     `json:"sellers"`
	TotalSales   int     `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalProfit  float64 `json:"total_profit"`
	TotalBonus   float64 `json:"total_bonus"`
}
