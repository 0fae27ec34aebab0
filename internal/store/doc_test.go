package store_test

import (
	"testing"

	"hr-portal/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Run("mentioned keys overwrite, unmentioned persist", func(t *testing.T) {
		doc := map[string]any{"name": "Jane", "city": "Austin", "zip": "78701"}
		partial := map[string]any{"city": "Dallas"}

		merged := store.Merge(doc, partial)

		assert.Equal(t, "Jane", merged["name"])
		assert.Equal(t, "Dallas", merged["city"])
		assert.Equal(t, "78701", merged["zip"])
	})

	t.Run("nested objects replaced wholesale", func(t *testing.T) {
		doc := map[string]any{
			"address": map[string]any{"line1": "1 Main St", "city": "Austin"},
		}
		partial := map[string]any{
			"address": map[string]any{"city": "Dallas"},
		}

		merged := store.Merge(doc, partial)

		addr, ok := merged["address"].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, "Dallas", addr["city"])
		_, hasLine1 := addr["line1"]
		assert.False(t, hasLine1)
	})

	t.Run("inputs untouched", func(t *testing.T) {
		doc := map[string]any{"a": 1}
		partial := map[string]any{"b": 2}

		_ = store.Merge(doc, partial)

		assert.Len(t, doc, 1)
		assert.Len(t, partial, 1)
	})
}

func TestMatches(t *testing.T) {
	doc := map[string]any{"employeeId": "e-1", "status": "Pending", "count": float64(3)}

	t.Run("all fields equal", func(t *testing.T) {
		assert.True(t, store.Matches(doc, store.Filter{"employeeId": "e-1", "status": "Pending"}))
	})

	t.Run("non-string values compared by string form", func(t *testing.T) {
		assert.True(t, store.Matches(doc, store.Filter{"count": "3"}))
	})

	t.Run("mismatch", func(t *testing.T) {
		assert.False(t, store.Matches(doc, store.Filter{"status": "Approved"}))
	})

	t.Run("missing field never matches", func(t *testing.T) {
		assert.False(t, store.Matches(doc, store.Filter{"nope": ""}))
	})

	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.True(t, store.Matches(doc, nil))
	})
}

func TestEncodeDecode(t *testing.T) {
	type rec struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}

	doc, err := store.Encode(rec{ID: "r-1", Count: 7})
	assert.NoError(t, err)
	assert.Equal(t, "r-1", doc["id"])

	back, err := store.Decode[rec](doc)
	assert.NoError(t, err)
	assert.Equal(t, "r-1", back.ID)
	assert.Equal(t, 7, back.Count)
}
