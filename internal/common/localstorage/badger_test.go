package localstorage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasledger/go-bank-recon/internal/common/localstorage"
	"github.com/atlasledger/go-bank-recon/internal/models"
)

func TestBadgerStorage_InMemory(t *testing.T) {
	storage, err := localstorage.NewInMemoryBadgerStorage[models.FinancialDocument]()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, storage.Close())
	}()

	doc := models.FinancialDocument{
		ID:          204,
		Type:        models.DocumentTypeBill,
		Number:      "BILL/2025/0204",
		PartnerName: "Alpha Consulting Ltd",
	}

	t.Run("get missing key returns zero value", func(t *testing.T) {
		got, err := storage.Get("bill-999")
		assert.NoError(t, err)
		assert.Zero(t, got.ID)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, storage.Set("bill-204", doc))

		got, err := storage.Get("bill-204")
		assert.NoError(t, err)
		assert.Equal(t, doc.ID, got.ID)
		assert.Equal(t, doc.Number, got.Number)
	})

	t.Run("foreach visits stored entries", func(t *testing.T) {
		var visited []string
		err := storage.ForEach(func(key string, value models.FinancialDocument) error {
			visited = append(visited, key)
			return nil
		})
		assert.NoError(t, err)
		assert.Contains(t, visited, "bill-204")
	})

	t.Run("delete removes the key", func(t *testing.T) {
		require.NoError(t, storage.Delete("bill-204"))

		got, err := storage.Get("bill-204")
		assert.NoError(t, err)
		assert.Zero(t, got.ID)
	})

	t.Run("clean drops everything", func(t *testing.T) {
		require.NoError(t, storage.Set("bill-205", doc))
		require.NoError(t, storage.Clean())

		got, err := storage.Get("bill-205")
		assert.NoError(t, err)
		assert.Zero(t, got.ID)
	})
}
