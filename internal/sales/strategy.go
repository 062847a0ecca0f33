package sales

import (
	"fmt"
	"sort"
	"strings"
)

// Registered strategy names.
const (
	RevenueSimple = "simple"
	BonusByProfit = "by_profit"
)

// RevenueCalculator computes the revenue of a single purchase item.
type RevenueCalculator interface {
	Revenue(item Item, product Product) float64
}

// RevenueFunc adapts a plain function to RevenueCalculator.
type RevenueFunc func(item Item, product Product) float64

// Revenue calls f(item, product).
func (f RevenueFunc) Revenue(item Item, product Product) float64 {
	return f(item, product)
}

// BonusCalculator computes a seller bonus from its zero-based rank by profit.
type BonusCalculator interface {
	Bonus(rank, total int, seller SellerStat) float64
}

// BonusFunc adapts a plain function to BonusCalculator.
type BonusFunc func(rank, total int, seller SellerStat) float64

// Bonus calls f(rank, total, seller).
func (f BonusFunc) Bonus(rank, total int, seller SellerStat) float64 {
	return f(rank, total, seller)
}

// CalculateSimpleRevenue returns sale_price * quantity reduced by the
// discount percentage. The discount is not range checked.
func CalculateSimpleRevenue(item Item, _ Product) float64 {
	return item.SalePrice.Float64() * item.Quantity.Float64() * (1 - item.Discount.Float64()/100)
}

// CalculateBonusByProfit pays 15% of profit to the top seller, 10% to the
// next two, nothing to the last one and 5% to everybody else. The first
// matching rule wins, so a lone seller gets 15%.
func CalculateBonusByProfit(rank, total int, seller SellerStat) float64 {
	switch {
	case rank == 0:
		return seller.Profit * 0.15
	case rank == 1 || rank == 2:
		return seller.Profit * 0.10
	case rank == total-1:
		return 0
	default:
		return seller.Profit * 0.05
	}
}

var revenueStrategies = map[string]RevenueCalculator{
	RevenueSimple: RevenueFunc(CalculateSimpleRevenue),
}

var bonusStrategies = map[string]BonusCalculator{
	BonusByProfit: BonusFunc(CalculateBonusByProfit),
}

// LookupRevenueStrategy returns the revenue strategy registered under name.
func LookupRevenueStrategy(name string) (RevenueCalculator, error) {
	calc, ok := revenueStrategies[name]
	if !ok {
		available, _ := StrategyNames()
		return nil, fmt.Errorf("%w: revenue %q (available: %s)", ErrUnknownStrategy, name, strings.Join(available, ", "))
	}
	return calc, nil
}

// LookupBonusStrategy returns the bonus strategy registered under name.
func LookupBonusStrategy(name string) (BonusCalculator, error) {
	calc, ok := bonusStrategies[name]
	if !ok {
		_, available := StrategyNames()
		return nil, fmt.Errorf("%w: bonus %q (available: %s)", ErrUnknownStrategy, name, strings.Join(available, ", "))
	}
	return calc, nil
}

// StrategyNames lists the registered revenue and bonus strategy names.
func StrategyNames() (revenue, bonus []string) {
	for name := range revenueStrategies {
		revenue = append(revenue, name)
	}
	for name := range bonusStrategies {
		bonus = append(bonus, name)
	}
	sort.Strings(revenue)
	sort.Strings(bonus)
	return revenue, bonus
}
