package trend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/ledger-atlas/pkg/models/store"
)

func TestNewStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("nil db", func(t *testing.T) {
		s, err := NewStore(nil)
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestStore_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	snapshots := []store.TrendSnapshot{
		{RealmID: "123", Year: 2024, Month: 1, Revenue: 1000, Expenses: 400, FetchedAt: time.Now()},
		{RealmID: "123", Year: 2024, Month: 2, Revenue: 1100, Expenses: 500, FetchedAt: time.Now()},
	}

	mock.ExpectBegin()
	for range snapshots {
		mock.ExpectExec("INSERT INTO trend_snapshots").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background(), snapshots))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Save_EmptySeriesIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Save_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trend_snapshots").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = s.Save(context.Background(), []store.TrendSnapshot{
		{RealmID: "123", Year: 2024, Month: 1},
	})

	assert.ErrorContains(t, err, "failed to store snapshot")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	fetchedAt := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"realm_id", "year", "month", "revenue", "expenses", "fetched_at"}).
		AddRow("123", 2024, 1, 1000.0, 400.0, fetchedAt).
		AddRow("123", 2024, 2, 1100.0, 500.0, fetchedAt)

	mock.ExpectQuery("SELECT realm_id, year, month, revenue, expenses, fetched_at").
		WithArgs("123", 2024).
		WillReturnRows(rows)

	snapshots, err := s.Get(context.Background(), "123", 2024)

	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, 1, snapshots[0].Month)
	assert.Equal(t, 1100.0, snapshots[1].Revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Get_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT realm_id, year, month, revenue, expenses, fetched_at").
		WithArgs("999", 2024).
		WillReturnRows(sqlmock.NewRows([]string{"realm_id", "year", "month", "revenue", "expenses", "fetched_at"}))

	snapshots, err := s.Get(context.Background(), "999", 2024)

	require.NoError(t, err)
	assert.Empty(t, snapshots)
}
