// Package db is the database collaborator: it opens a connection from a DSN,
// introspects the schema into a text description for prompting, and executes
// one SQL statement at a time, rendering the rows as text.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const pingTimeout = 5 * time.Second

// Database wraps a sql.DB for schema introspection and statement execution.
type Database struct {
	db *sql.DB
}

// Open connects to the database at dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*Database, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database dsn is required")
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{db: sqlDB}, nil
}

// NewWithDB wraps an existing sql.DB. Used by tests.
func NewWithDB(sqlDB *sql.DB) *Database {
	return &Database{db: sqlDB}
}

// Describe returns a text description of the tables and columns visible in
// the public schema, one table per block, suitable for prompting.
func (d *Database) Describe(ctx context.Context) (string, error) {
	const query = `
		SELECT table_name, column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = 'public'
		ORDER BY table_name, ordinal_position`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return "", fmt.Errorf("introspect schema: %w", err)
	}
	defer rows.Close()

	var (
		builder   strings.Builder
		lastTable string
	)
	for rows.Next() {
		var table, column, dataType string
		if err := rows.Scan(&table, &column, &dataType); err != nil {
			return "", fmt.Errorf("scan schema row: %w", err)
		}
		if table != lastTable {
			if lastTable != "" {
				builder.WriteString("\n")
			}
			builder.WriteString("Table " + table + ":\n")
			lastTable = table
		}
		builder.WriteString(fmt.Sprintf("  %s %s\n", column, dataType))
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate schema rows: %w", err)
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}

// Run executes a single statement and renders the result set as a list of
// tuples, e.g. [(Product A, 10), (Product B, 15)]. The rendering is what the
// chart prompt consumes; it is not meant to round-trip.
func (d *Database) Run(ctx context.Context, query string) (string, error) {
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return "", fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("read columns: %w", err)
	}

	var rendered []string
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return "", fmt.Errorf("scan row: %w", err)
		}

		fields := make([]string, len(values))
		for i, v := range values {
			fields[i] = renderValue(v)
		}
		rendered = append(rendered, "("+strings.Join(fields, ", ")+")")
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate rows: %w", err)
	}

	return "[" + strings.Join(rendered, ", ") + "]", nil
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}

func renderValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(value)
	case time.Time:
		return value.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", value)
	}
}
