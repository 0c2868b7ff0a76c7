package trend

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/ledger-atlas/pkg/models/store"
)

type Store interface {
	// Save replaces the stored series for (realm, year) with the given
	// snapshots, one row per month, inside a single transaction.
	Save(ctx context.Context, snapshots []store.TrendSnapshot) error
	// Get returns the stored series for (realm, year) in month order;
	// an empty slice when nothing is stored.
	Get(ctx context.Context, realmID string, year int) ([]store.TrendSnapshot, error)
}

type defaultStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &defaultStore{db: db}, nil
}

func (s *defaultStore) Save(ctx context.Context, snapshots []store.TrendSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	const upsert = `
		INSERT INTO trend_snapshots (realm_id, year, month, revenue, expenses, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (realm_id, year, month)
		DO UPDATE SET revenue = excluded.revenue, expenses = excluded.expenses, fetched_at = excluded.fetched_at`

	for _, snap := range snapshots {
		fetchedAt := snap.FetchedAt
		if fetchedAt.IsZero() {
			fetchedAt = time.Now().UTC()
		}
		_, err := tx.ExecContext(ctx, upsert,
			snap.RealmID, snap.Year, snap.Month, snap.Revenue, snap.Expenses, fetchedAt)
		if err != nil {
			return fmt.Errorf("failed to store snapshot %s/%d-%02d: %w",
				snap.RealmID, snap.Year, snap.Month, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshots: %w", err)
	}
	return nil
}

func (s *defaultStore) Get(ctx context.Context, realmID string, year int) ([]store.TrendSnapshot, error) {
	const query = `
		SELECT realm_id, year, month, revenue, expenses, fetched_at
		FROM trend_snapshots
		WHERE realm_id = ? AND year = ?
		ORDER BY month`

	rows, err := s.db.QueryContext(ctx, query, realmID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []store.TrendSnapshot
	for rows.Next() {
		var snap store.TrendSnapshot
		err := rows.Scan(&snap.RealmID, &snap.Year, &snap.Month,
			&snap.Revenue, &snap.Expenses, &snap.FetchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}
