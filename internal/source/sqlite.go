package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver.

	"github.com/tablewise/tablewise/internal/table"
)

// DB wraps read-only SQLite access for profiling.
type DB struct {
	db *sql.DB
}

// OpenDB opens an existing SQLite database file. Connection strings of the
// form "sqlite:///path" are accepted alongside plain paths.
func OpenDB(conn string) (*DB, error) {
	path := strings.TrimPrefix(conn, "sqlite:///")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sqlite database %s: %w", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error { return d.db.Close() }

// Tables lists user tables, excluding SQLite internals.
func (d *DB) Tables(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// TableRowCount returns the number of rows in a table.
func (d *DB) TableRowCount(ctx context.Context, name string) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %q", name)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count rows of %s: %w", name, err)
	}
	return count, nil
}

// QueryTable loads up to limit rows of one table. The limit bounds what
// reaches the profiling engine, which scans whatever it is given in full.
func (d *DB) QueryTable(ctx context.Context, name string, limit int) (*table.Table, error) {
	return d.Query(ctx, fmt.Sprintf("SELECT * FROM %q LIMIT %d", name, limit))
}

// Query runs an arbitrary SQL statement and renders the result set as a
// Table. Every value is formatted as text; NULL becomes the empty cell.
func (d *DB) Query(ctx context.Context, query string) (*table.Table, error) {
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("result columns: %w", err)
	}

	var data [][]string
	values := make([]any, len(headers))
	ptrs := make([]any, len(headers))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		record := make([]string, len(headers))
		for i, v := range values {
			record[i] = formatValue(v)
		}
		data = append(data, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return table.New(headers, data), nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
