package sales

import (
	"fmt"
	"sort"
)

// Options carries the calculation strategies used by AnalyzeSalesData.
type Options struct {
	CalculateRevenue RevenueCalculator
	CalculateBonus   BonusCalculator
}

// SellerStat accumulates a seller's figures while purchase records are folded.
type SellerStat struct {
	ID           string
	Name         string
	Revenue      float64
	Profit       float64
	SalesCount   int
	ProductsSold map[string]float64

	// skus in the order they were first sold, used to break quantity ties
	skuOrder []string
}

func newSellerStat(s Seller) *SellerStat {
	return &SellerStat{
		ID:           string(s.ID),
		Name:         s.FirstName + " " + s.LastName,
		ProductsSold: map[string]float64{},
	}
}

func (s *SellerStat) addItem(sku string, quantity, revenue, profit float64) {
	s.Revenue = round2(s.Revenue + revenue)
	s.Profit = round2(s.Profit + profit)

	if _, seen := s.ProductsSold[sku]; !seen {
		s.skuOrder = append(s.skuOrder, sku)
	}
	s.ProductsSold[sku] += quantity
}

// TopProducts returns up to limit products ordered by quantity sold,
// descending. Equal quantities keep the order the skus were first sold in.
func (s *SellerStat) TopProducts(limit int) []TopProduct {
	top := make([]TopProduct, 0, len(s.skuOrder))
	for _, sku := range s.skuOrder {
		top = append(top, TopProduct{SKU: sku, Quantity: s.ProductsSold[sku]})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Quantity > top[j].Quantity
	})

	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

func validateDataset(data *Dataset) error {
	switch {
	case data == nil:
		return fmt.Errorf("%w: no data", ErrInvalidInput)
	case len(data.Sellers) == 0:
		return fmt.Errorf("%w: sellers is empty", ErrInvalidInput)
	case len(data.Products) == 0:
		return fmt.Errorf("%w: products is empty", ErrInvalidInput)
	case len(data.PurchaseRecords) == 0:
		return fmt.Errorf("%w: purchase_records is empty", ErrInvalidInput)
	}
	return nil
}

func revenueMissing(calc RevenueCalculator) bool {
	switch f := calc.(type) {
	case nil:
		return true
	case RevenueFunc:
		return f == nil
	}
	return false
}

func bonusMissing(calc BonusCalculator) bool {
	switch f := calc.(type) {
	case nil:
		return true
	case BonusFunc:
		return f == nil
	}
	return false
}

// AnalyzeSalesData builds the per-seller report for data, ordered by profit
// descending. Records of unknown sellers and items of unknown products are
// skipped. Running revenue and profit are rounded to cents after every item.
func AnalyzeSalesData(data *Dataset, opts Options) ([]ReportEntry, error) {
	if err := validateDataset(data); err != nil {
		return nil, err
	}
	if revenueMissing(opts.CalculateRevenue) || bonusMissing(opts.CalculateBonus) {
		return nil, ErrMissingStrategy
	}

	stats := make([]*SellerStat, 0, len(data.Sellers))
	sellerIndex := make(map[string]*SellerStat, len(data.Sellers))
	for _, seller := range data.Sellers {
		stat := newSellerStat(seller)
		stats = append(stats, stat)
		sellerIndex[string(seller.ID)] = stat
	}

	productIndex := make(map[string]Product, len(data.Products))
	for _, product := range data.Products {
		productIndex[product.SKU] = product
	}

	for _, record := range data.PurchaseRecords {
		seller, ok := sellerIndex[string(record.SellerID)]
		if !ok {
			continue
		}
		seller.SalesCount++

		for _, item := range record.Items {
			product, ok := productIndex[item.SKU]
			if !ok {
				continue
			}

			revenue := opts.CalculateRevenue.Revenue(item, product)
			cost := product.PurchasePrice.Float64() * item.Quantity.Float64()
			seller.addItem(item.SKU, item.Quantity.Float64(), revenue, revenue-cost)
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Profit > stats[j].Profit
	})

	entries := make([]ReportEntry, 0, len(stats))
	for rank, seller := range stats {
		bonus := opts.CalculateBonus.Bonus(rank, len(stats), *seller)
		entries = append(entries, ReportEntry{
			SellerID:    seller.ID,
			Name:        seller.Name,
			Revenue:     round2(seller.Revenue),
			Profit:      round2(seller.Profit),
			SalesCount:  seller.SalesCount,
			TopProducts: seller.TopProducts(TopProductsLimit),
			Bonus:       round2(bonus),
		})
	}

	return entries, nil
}
