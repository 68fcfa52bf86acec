// Package sqlitestore keeps the built calendar in SQLite so it can be queried
// by date, month or upcoming window.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
)

const memoryPath = ":memory:"

// Store is safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates tables if they don't exist. File databases use WAL mode.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == memoryPath {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, openErr(dbPath, fmt.Errorf("open database: %w", err))
	}
	if dbPath == memoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, openErr(dbPath, fmt.Errorf("ping database: %w", err))
	}

	if dbPath != memoryPath {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, openErr(dbPath, fmt.Errorf("enable WAL mode: %w", err))
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, openErr(dbPath, fmt.Errorf("create tables: %w", err))
	}
	return s, nil
}

var _ ports.CalendarStore = (*Store)(nil)

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date_day INTEGER NOT NULL CHECK (date_day BETWEEN 1 AND 31),
		date_month INTEGER NOT NULL CHECK (date_month BETWEEN 1 AND 12),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		traditions TEXT NOT NULL DEFAULT '',
		preparation TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (date_day, date_month)
	);

	CREATE INDEX IF NOT EXISTS idx_events_month ON events(date_month, date_day);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// DefaultTitle is stored for rows that have no title.
func DefaultTitle(date domain.NormalizedDate) string {
	return "День " + date.String()
}

// Import upserts rows in one transaction and returns the number written.
func (s *Store) Import(ctx context.Context, rows []domain.CalendarRow) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, execErr("sqlitestore.import", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO events (date_day, date_month, title, description, traditions, preparation)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (date_day, date_month) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			traditions = excluded.traditions,
			preparation = excluded.preparation,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return 0, execErr("sqlitestore.import", err)
	}
	defer stmt.Close()

	n := 0
	for _, r := range rows {
		day, month := r.Date.Day(), r.Date.Month()
		if day == 0 || month == 0 {
			return 0, &domain.OpError{
				Op:   "sqlitestore.import",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("row %q: %w", r.Date, domain.ErrInvalidDate),
			}
		}
		title := strings.TrimSpace(r.Title)
		if title == "" {
			title = DefaultTitle(r.Date)
		}
		if _, err := stmt.ExecContext(ctx, day, month, title, r.Description, r.Traditions, r.Preparation); err != nil {
			return 0, execErr("sqlitestore.import", fmt.Errorf("row %s: %w", r.Date, err))
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, execErr("sqlitestore.import", err)
	}
	return n, nil
}

// Stats counts all rows and those with both a title and a description.
func (s *Store) Stats(ctx context.Context) (domain.CalendarStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st domain.CalendarStats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN title != '' AND description != '' THEN 1 ELSE 0 END), 0)
		FROM events
	`).Scan(&st.Total, &st.Filled)
	if err != nil {
		return domain.CalendarStats{}, execErr("sqlitestore.stats", err)
	}
	return st, nil
}

// ByDate returns the active row for date or a KindNotFound error.
func (s *Store) ByDate(ctx context.Context, date domain.NormalizedDate) (domain.CalendarRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, selectRows+`
		WHERE date_day = ? AND date_month = ? AND is_active = 1
	`, date.Day(), date.Month())

	r, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CalendarRow{}, &domain.OpError{
			Op:   "sqlitestore.by_date",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: %w", date, domain.ErrNotFound),
		}
	}
	if err != nil {
		return domain.CalendarRow{}, execErr("sqlitestore.by_date", err)
	}
	return r, nil
}

// ByMonth returns the active rows of month in day order.
func (s *Store) ByMonth(ctx context.Context, month int) ([]domain.CalendarRow, error) {
	if month < 1 || month > 12 {
		return nil, &domain.OpError{
			Op:   "sqlitestore.by_month",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("month %d: %w", month, domain.ErrInvalidDate),
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, selectRows+`
		WHERE date_month = ? AND is_active = 1
		ORDER BY date_day
	`, month)
	if err != nil {
		return nil, execErr("sqlitestore.by_month", err)
	}
	defer rows.Close()

	return collect(rows, "sqlitestore.by_month")
}

// Upcoming returns the active rows for the days days starting at from,
// wrapping past the end of the year, in calendar order.
func (s *Store) Upcoming(ctx context.Context, from time.Time, days int) ([]domain.CalendarRow, error) {
	if days <= 0 {
		return nil, nil
	}
	if days > 366 {
		days = 366
	}

	order := make(map[domain.NormalizedDate]int, days)
	keys := make([]any, 0, days)
	for i := 0; i < days; i++ {
		t := from.AddDate(0, 0, i)
		d := domain.NewDate(t.Day(), int(t.Month()))
		if _, seen := order[d]; seen {
			continue
		}
		order[d] = i
		keys = append(keys, int(t.Month())*100+t.Day())
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	rows, err := s.db.QueryContext(ctx, selectRows+`
		WHERE is_active = 1 AND (date_month * 100 + date_day) IN (`+placeholders+`)
	`, keys...)
	if err != nil {
		return nil, execErr("sqlitestore.upcoming", err)
	}
	defer rows.Close()

	out, err := collect(rows, "sqlitestore.upcoming")
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return order[out[i].Date] < order[out[j].Date]
	})
	return out, nil
}

const selectRows = `SELECT date_day, date_month, title, description, traditions, preparation FROM events`

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(sc scanner) (domain.CalendarRow, error) {
	var (
		day, month int
		r          domain.CalendarRow
	)
	if err := sc.Scan(&day, &month, &r.Title, &r.Description, &r.Traditions, &r.Preparation); err != nil {
		return domain.CalendarRow{}, err
	}
	r.Date = domain.NewDate(day, month)
	return r, nil
}

func collect(rows *sql.Rows, op string) ([]domain.CalendarRow, error) {
	var out []domain.CalendarRow
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, execErr(op, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, execErr(op, err)
	}
	return out, nil
}

func openErr(path string, err error) error {
	return &domain.OpError{
		Op:   "sqlitestore.open",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

func execErr(op string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Err:  err,
	}
}
