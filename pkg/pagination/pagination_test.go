package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams_Defaults(t *testing.T) {
	p := NewParams(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)

	p = NewParams(-3, -1)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
}

func TestNewParams_ClampsPerPage(t *testing.T) {
	p := NewParams(2, 500)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, NewParams(1, 10).Offset())
	assert.Equal(t, 10, NewParams(2, 10).Offset())
	assert.Equal(t, 45, NewParams(4, 15).Offset())
}

func TestNewMeta_MiddlePage(t *testing.T) {
	meta := NewMeta(NewParams(2, 10), 35)

	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.LastPage)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 10, meta.PerPage)
	if assert.NotNil(t, meta.Prev) {
		assert.Equal(t, 1, *meta.Prev)
	}
	if assert.NotNil(t, meta.Next) {
		assert.Equal(t, 3, *meta.Next)
	}
}

func TestNewMeta_FirstAndLastPage(t *testing.T) {
	first := NewMeta(NewParams(1, 10), 35)
	assert.Nil(t, first.Prev)
	assert.NotNil(t, first.Next)

	last := NewMeta(NewParams(4, 10), 35)
	assert.NotNil(t, last.Prev)
	assert.Nil(t, last.Next)
}

func TestNewMeta_EmptyTable(t *testing.T) {
	meta := NewMeta(NewParams(1, 10), 0)
	assert.Equal(t, int64(0), meta.Total)
	assert.Equal(t, 1, meta.LastPage)
	assert.Nil(t, meta.Prev)
	assert.Nil(t, meta.Next)
}

func TestNewMeta_PageBeyondRange(t *testing.T) {
	// Requesting a page past the end keeps the true total and last page.
	meta := NewMeta(NewParams(9, 10), 35)
	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.LastPage)
	assert.Equal(t, 9, meta.CurrentPage)
	assert.Nil(t, meta.Next)
}

func TestNewEnvelope_NeverNullData(t *testing.T) {
	env := NewEnvelope[string](nil, NewParams(1, 10), 0)
	assert.NotNil(t, env.Data)
	assert.Len(t, env.Data, 0)
}
