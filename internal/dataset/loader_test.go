package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales_report/internal/sales"
)

const datasetJSON = `{
	"sellers": [{"id": "seller_1", "first_name": "Ann", "last_name": "Lee"}],
	"products": [{"sku": "SKU_001", "purchase_price": 10}],
	"purchase_records": [
		{"seller_id": "seller_1", "items": [{"sku": "SKU_001", "quantity": "2", "discount": 0, "sale_price": 25}]}
	]
}`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(datasetJSON), 0o644))

	data, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, data.Sellers, 1)
	require.Len(t, data.PurchaseRecords, 1)
	assert.Equal(t, sales.Number(2), data.PurchaseRecords[0].Items[0].Quantity)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sellers": [`), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.json":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(datasetJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("not found"))
		}
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	defer client.Close()

	t.Run("ok", func(t *testing.T) {
		data, err := client.Fetch(context.Background(), server.URL+"/data.json")
		require.NoError(t, err)
		require.Len(t, data.Products, 1)
		assert.Equal(t, "SKU_001", data.Products[0].SKU)
		assert.Equal(t, sales.Number(10), data.Products[0].PurchasePrice)
	})

	t.Run("not found", func(t *testing.T) {
		data, err := client.Fetch(context.Background(), server.URL+"/other.json")
		assert.Error(t, err)
		assert.Nil(t, data)
	})
}
