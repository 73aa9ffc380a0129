package database

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations lists schema versions in order. Intervals store the parsed
// classification alongside the raw description so an analysis run never
// depends on the upstream parser being available.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_boreholes",
		SQL: `
			CREATE TABLE IF NOT EXISTS boreholes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				site TEXT NOT NULL,
				name TEXT NOT NULL,
				easting REAL NOT NULL,
				northing REAL NOT NULL,
				elevation REAL NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				UNIQUE(site, name)
			);
			CREATE INDEX IF NOT EXISTS idx_boreholes_site ON boreholes(site);
		`,
	},
	{
		Version: 2,
		Name:    "create_intervals",
		SQL: `
			CREATE TABLE IF NOT EXISTS intervals (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				borehole_id INTEGER NOT NULL REFERENCES boreholes(id) ON DELETE CASCADE,
				depth_top REAL NOT NULL,
				depth_bottom REAL NOT NULL,
				raw_description TEXT NOT NULL DEFAULT '',
				material_type TEXT NOT NULL,
				primary_soil_type TEXT,
				primary_rock_type TEXT,
				consistency TEXT,
				density TEXT,
				rock_strength TEXT,
				weathering_grade TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_intervals_borehole ON intervals(borehole_id);
		`,
	},
}

// Migrate applies all pending migrations
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(migrations))
	for _, m := range migrations {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Version < pending[j].Version })

	for _, m := range pending {
		err := Transaction(func(tx *sql.Tx) error {
			if _, err := tx.Exec(m.SQL); err != nil {
				return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
			}
			if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
