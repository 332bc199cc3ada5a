// Package report renders a read-only console dump of the users and todos store.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"todoapi/internal/models"
)

const ruleWidth = 60

// UserRow is one line of the users table.
type UserRow struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Age       sql.NullInt64  `db:"age"`
	City      sql.NullString `db:"city"`
	CreatedAt time.Time      `db:"created_at"`
}

// TodoRow is one line of the todos table joined with its owner.
type TodoRow struct {
	ID        int64          `db:"id"`
	Title     string         `db:"title"`
	Completed bool           `db:"completed"`
	Priority  string         `db:"priority"`
	Owner     sql.NullString `db:"owner"`
	CreatedAt time.Time      `db:"created_at"`
}

// Totals are the headline numbers of the report.
type Totals struct {
	Users          int64           `db:"total_users"`
	AverageAge     sql.NullFloat64 `db:"avg_age"`
	Todos          int64           `db:"total_todos"`
	CompletedTodos int64           `db:"completed_todos"`
}

// Snapshot is everything the report prints.
type Snapshot struct {
	Users  []UserRow
	Todos  []TodoRow
	Totals Totals
	Cities []models.CityCount
}

// Open connects to the store behind dsn and pings it. Callers pass a
// read-only DSN, see database.DSN.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dsn, err)
	}
	return db, nil
}

// Load reads a consistent snapshot of the store.
func Load(ctx context.Context, db *sqlx.DB) (*Snapshot, error) {
	s := &Snapshot{}

	if err := db.SelectContext(ctx, &s.Users, `SELECT id, name, email, age, city, created_at FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	err := db.SelectContext(ctx, &s.Todos, `
		SELECT t.id, t.title, t.completed, t.priority, u.name AS owner, t.created_at
		FROM todos t
		LEFT JOIN users u ON t.user_id = u.id
		ORDER BY t.id`)
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}

	err = db.GetContext(ctx, &s.Totals, `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT AVG(age) FROM users) AS avg_age,
			(SELECT COUNT(*) FROM todos) AS total_todos,
			(SELECT COUNT(*) FROM todos WHERE completed = 1) AS completed_todos`)
	if err != nil {
		return nil, fmt.Errorf("load totals: %w", err)
	}

	err = db.SelectContext(ctx, &s.Cities, `
		SELECT city, COUNT(*) AS count
		FROM users
		WHERE city IS NOT NULL
		GROUP BY city
		ORDER BY count DESC, city ASC`)
	if err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}
	return s, nil
}

// Render writes the snapshot as a plain-text report.
func Render(w io.Writer, s *Snapshot) error {
	rule := strings.Repeat("-", ruleWidth)
	var b strings.Builder

	fmt.Fprintf(&b, "\nDATABASE REPORT\n%s\n", strings.Repeat("=", ruleWidth))

	fmt.Fprintf(&b, "\nUSERS:\n%s\n", rule)
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tAGE\tCITY\tCREATED")
	for _, u := range s.Users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email,
			nullInt(u.Age), nullString(u.City), u.CreatedAt.Format(time.DateTime))
	}
	tw.Flush()
	fmt.Fprintf(&b, "Total users: %d\n", len(s.Users))

	fmt.Fprintf(&b, "\nTODOS:\n%s\n", rule)
	tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDONE\tPRIORITY\tOWNER\tCREATED")
	for _, t := range s.Todos {
		fmt.Fprintf(tw, "%d\t%s\t%t\t%s\t%s\t%s\n", t.ID, t.Title, t.Completed,
			t.Priority, nullString(t.Owner), t.CreatedAt.Format(time.DateTime))
	}
	tw.Flush()
	fmt.Fprintf(&b, "Total todos: %d\n", len(s.Todos))

	avg := "N/A"
	if s.Totals.AverageAge.Valid {
		avg = fmt.Sprintf("%d", int64(math.Round(s.Totals.AverageAge.Float64)))
	}
	fmt.Fprintf(&b, "\nSTATS:\n%s\n", rule)
	fmt.Fprintf(&b, "* Users: %d\n", s.Totals.Users)
	fmt.Fprintf(&b, "* Average age: %s\n", avg)
	fmt.Fprintf(&b, "* All todos: %d\n", s.Totals.Todos)
	fmt.Fprintf(&b, "* Completed todos: %d\n", s.Totals.CompletedTodos)
	fmt.Fprintf(&b, "* Pending todos: %d\n", s.Totals.Todos-s.Totals.CompletedTodos)

	fmt.Fprintf(&b, "\nCITIES:\n%s\n", rule)
	for _, c := range s.Cities {
		fmt.Fprintf(&b, "* %s: %d users\n", c.City, c.Count)
	}

	fmt.Fprintf(&b, "\n%s\nEnd of report\n", strings.Repeat("=", ruleWidth))

	_, err := io.WriteString(w, b.String())
	return err
}

func nullInt(v sql.NullInt64) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprintf("%d", v.Int64)
}

func nullString(v sql.NullString) string {
	if !v.Valid {
		return "-"
	}
	return v.String
}
