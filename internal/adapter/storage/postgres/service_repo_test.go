package postgres

import (
	"context"
	"testing"

	"yield-spend-gateway/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceTestColumns() []string {
	return []string{"id", "name", "description", "category", "price", "platform_fee",
		"pricing_scheme", "prepaid_discount_percent", "endpoint_url", "is_active"}
}

func TestServiceRepo_ListActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewServiceRepo(mock)

	rows := pgxmock.NewRows(serviceTestColumns()).
		AddRow("svc-translate", "Translation", "Text translation", "ai",
			"1.000000", "0.050000", domain.PricingPayPerUse, "10", "http://translate.internal/v1", true).
		AddRow("svc-summarize", "Summarizer", "Document summaries", "ai",
			"0.500000", "0.025000", domain.PricingPayPerUse, "0", "http://summarize.internal/v1", true)

	mock.ExpectQuery("SELECT .+ FROM services WHERE is_active").
		WillReturnRows(rows)

	services, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "svc-translate", services[0].ID)
	assert.True(t, services[0].TotalCost().Equal(decimal.RequireFromString("1.05")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewServiceRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM services WHERE id").
		WithArgs("svc-translate").
		WillReturnRows(pgxmock.NewRows(serviceTestColumns()).
			AddRow("svc-translate", "Translation", "Text translation", "ai",
				"1.000000", "0.050000", domain.PricingPayPerUse, "10", "http://translate.internal/v1", true))

	s, err := repo.GetByID(context.Background(), "svc-translate")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Translation", s.Name)
	assert.True(t, s.PrepaidDiscountPercent.Equal(decimal.NewFromInt(10)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewServiceRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM services WHERE id").
		WithArgs("svc-missing").
		WillReturnRows(pgxmock.NewRows(serviceTestColumns()))

	s, err := repo.GetByID(context.Background(), "svc-missing")
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}
