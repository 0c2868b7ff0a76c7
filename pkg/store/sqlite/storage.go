package sqlite

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

const trendSnapshotSchema = `
	CREATE TABLE IF NOT EXISTS trend_snapshots (
		realm_id TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		revenue REAL NOT NULL,
		expenses REAL NOT NULL,
		fetched_at TIMESTAMP NOT NULL,
		PRIMARY KEY (realm_id, year, month)
	);
`

var bootQueries = []string{
	trendSnapshotSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, err
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
