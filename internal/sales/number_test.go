package sales

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetDecodesNumericStrings(t *testing.T) {
	payload := `{
		"sellers": [{"id": "seller_1", "first_name": "Ann", "last_name": "Lee"}],
		"products": [{"sku": "SKU_001", "purchase_price": "12.5"}],
		"purchase_records": [{
			"seller_id": "seller_1",
			"items": [
				{"sku": "SKU_001", "quantity": "3", "discount": "", "sale_price": 20},
				{"sku": "SKU_001", "quantity": 1, "discount": null, "sale_price": " 7.25 "}
			]
		}]
	}`

	var data Dataset
	require.NoError(t, json.Unmarshal([]byte(payload), &data))

	assert.Equal(t, Number(12.5), data.Products[0].PurchasePrice)
	items := data.PurchaseRecords[0].Items
	assert.Equal(t, Item{SKU: "SKU_001", Quantity: 3, Discount: 0, SalePrice: 20}, items[0])
	assert.Equal(t, Item{SKU: "SKU_001", Quantity: 1, Discount: 0, SalePrice: 7.25}, items[1])
}

func TestNumberRejectsGarbage(t *testing.T) {
	inputs := []string{`"twelve"`, `true`, `"NaN"`, `"nan"`, `"Inf"`, `"-Infinity"`, `"1e309"`, `1e309`}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var n Number
			assert.Error(t, json.Unmarshal([]byte(in), &n))
		})
	}

	var item Item
	assert.Error(t, json.Unmarshal([]byte(`{"sku": "p", "sale_price": "NaN", "quantity": 1}`), &item))
}

func TestIDAcceptsStringsAndNumbers(t *testing.T) {
	var record PurchaseRecord
	require.NoError(t, json.Unmarshal([]byte(`{"seller_id": 42, "items": []}`), &record))
	assert.Equal(t, ID("42"), record.SellerID)

	var seller Seller
	require.NoError(t, json.Unmarshal([]byte(`{"id": "seller_1"}`), &seller))
	assert.Equal(t, ID("seller_1"), seller.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &seller))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.9, round2(39*0.1))
	assert.Equal(t, 0.01, round2(0.005))
	assert.Equal(t, -0.01, round2(-0.005))
	assert.Equal(t, 10.0, round2(200*0.05))
	assert.Equal(t, 0.3, sum2(0.1, 0.2))

	assert.NotPanics(t, func() {
		assert.True(t, math.IsInf(round2(math.Inf(1)), 1))
		assert.True(t, math.IsInf(round2(math.Inf(-1)), -1))
		assert.True(t, math.IsNaN(round2(math.NaN())))
		assert.True(t, math.IsInf(sum2(1, math.Inf(1)), 1))
		assert.True(t, math.IsNaN(sum2(math.NaN(), 2)))
	})
}
