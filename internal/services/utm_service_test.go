package services

import (
	"testing"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUtmRepository struct {
	rows  []models.UtmParam
	total int64
}

func (r *stubUtmRepository) Create(param *models.UtmParam) error {
	param.ID = uint(len(r.rows) + 1)
	r.rows = append(r.rows, *param)
	return nil
}

func (r *stubUtmRepository) FindAll(p pagination.Params) ([]models.UtmParam, int64, error) {
	return r.rows, r.total, nil
}

func TestUtmListEnvelope(t *testing.T) {
	repo := &stubUtmRepository{
		rows: []models.UtmParam{
			{BaseModel: models.BaseModel{ID: 1}, UtmSource: "instagram"},
			{BaseModel: models.BaseModel{ID: 2}, UtmSource: "youtube"},
		},
		total: 25,
	}
	service := NewUtmService(repo)

	envelope, err := service.List(pagination.NewParams(2, 10))
	require.NoError(t, err)

	assert.Len(t, envelope.Data, 2)
	assert.Equal(t, "instagram", envelope.Data[0].UtmSource)
	assert.Equal(t, int64(25), envelope.Meta.Total)
	assert.Equal(t, 2, envelope.Meta.CurrentPage)
	assert.Equal(t, 10, envelope.Meta.PerPage)
	assert.Equal(t, 3, envelope.Meta.LastPage)
	require.NotNil(t, envelope.Meta.Prev)
	assert.Equal(t, 1, *envelope.Meta.Prev)
	require.NotNil(t, envelope.Meta.Next)
	assert.Equal(t, 3, *envelope.Meta.Next)
}

func TestUtmListEmptyPage(t *testing.T) {
	service := NewUtmService(&stubUtmRepository{total: 0})

	envelope, err := service.List(pagination.NewParams(1, 10))
	require.NoError(t, err)

	assert.NotNil(t, envelope.Data)
	assert.Empty(t, envelope.Data)
	assert.Equal(t, int64(0), envelope.Meta.Total)
	assert.Equal(t, 1, envelope.Meta.LastPage)
	assert.Nil(t, envelope.Meta.Prev)
	assert.Nil(t, envelope.Meta.Next)
}
