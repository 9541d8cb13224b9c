package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/solar-crm/internal/entity"
)

func TestSalespersonUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO salespersons`).
		WithArgs(sqlmock.AnyArg(), "Ann", "ann@x.com", "555", "Sales", "North").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("sp-1", now, now))

	repo := NewSalespersonRepository(db)
	p := &entity.Salesperson{
		Name:       "Ann",
		Email:      "ann@x.com",
		Phone:      "555",
		Department: "Sales",
		Region:     "North",
	}

	require.NoError(t, repo.Upsert(context.Background(), p))
	assert.Equal(t, "sp-1", p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalespersonDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM salespersons WHERE id`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewSalespersonRepository(db)

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
