package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		params      PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{name: "defaults applied", params: PaginationParams{}, wantPage: 1, wantPerPage: 15},
		{name: "negative page", params: PaginationParams{Page: -3, PerPage: 10}, wantPage: 1, wantPerPage: 10},
		{name: "per page capped", params: PaginationParams{Page: 2, PerPage: 500}, wantPage: 2, wantPerPage: 100},
		{name: "valid untouched", params: PaginationParams{Page: 4, PerPage: 25}, wantPage: 4, wantPerPage: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Validate()
			assert.Equal(t, tt.wantPage, tt.params.Page)
			assert.Equal(t, tt.wantPerPage, tt.params.PerPage)
		})
	}
}

func TestOffset(t *testing.T) {
	params := PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, params.Offset())
}

func TestNewPagination(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := NewPagination(2, 10, 35)
		assert.Equal(t, 4, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("last page", func(t *testing.T) {
		p := NewPagination(4, 10, 35)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("empty result", func(t *testing.T) {
		p := NewPagination(1, 10, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})
}
