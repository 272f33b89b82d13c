package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta_ThreePages(t *testing.T) {
	// 37 rows at limit 15 => pages of 15/15/7
	cases := []struct {
		page     int
		wantFrom int
		wantTo   int
	}{
		{1, 1, 15},
		{2, 16, 30},
		{3, 31, 37},
	}

	for _, c := range cases {
		meta := NewMeta(c.page, 15, 37)
		assert.Equal(t, 3, meta.TotalPages, "page %d", c.page)
		assert.Equal(t, int64(37), meta.TotalItems, "page %d", c.page)
		assert.Equal(t, c.wantFrom, meta.From, "page %d", c.page)
		assert.Equal(t, c.wantTo, meta.To, "page %d", c.page)
		assert.Equal(t, c.wantTo-c.wantFrom+1, meta.To-meta.From+1, "page %d", c.page)
	}
}

func TestNewMeta_PastEnd(t *testing.T) {
	meta := NewMeta(4, 15, 37)
	assert.Equal(t, 0, meta.From)
	assert.Equal(t, 0, meta.To)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestNewMeta_Empty(t *testing.T) {
	meta := NewMeta(1, 15, 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, 0, meta.From)
	assert.Equal(t, 0, meta.To)
}

func TestNewMeta_ExactFit(t *testing.T) {
	meta := NewMeta(2, 15, 30)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, 16, meta.From)
	assert.Equal(t, 30, meta.To)
}

func TestNewMeta_DefaultsInvalidInput(t *testing.T) {
	meta := NewMeta(0, 0, 10)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 1, meta.Limit)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 15))
	assert.Equal(t, 15, Offset(2, 15))
	assert.Equal(t, 0, Offset(0, 15))
	assert.Equal(t, 40, Offset(3, 20))
}
