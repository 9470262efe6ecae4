package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ruival/obracap/internal/domain"
	"github.com/ruival/obracap/internal/usecase"
)

const movementColumns = `id, account_id, project_id, kind, source, ref_kind, ref_id, date, amount, description, balance_after, created_at`

const insertMovementSQL = `
INSERT INTO movements (` + movementColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

// MovementRepository implements usecase.MovementRepository on PostgreSQL.
// The movements table is append-oriented: inserts only, balance_after is
// never rewritten.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

// Insert inserts a movement outside any caller-managed transaction.
func (r *MovementRepository) Insert(ctx context.Context, movement *domain.Movement) error {
	_, err := r.pool.Exec(ctx, insertMovementSQL, insertArgs(movement)...)

	return err
}

// InsertTx inserts a movement inside the given transaction.
func (r *MovementRepository) InsertTx(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertMovementSQL, insertArgs(movement)...)

	return err
}

// GetByID retrieves a movement by id.
func (r *MovementRepository) GetByID(ctx context.Context, id string) (*domain.Movement, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+movementColumns+` FROM movements WHERE id = $1`, id)

	movement, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovementNotFound
		}

		return nil, err
	}

	return movement, nil
}

// Query returns movements matching the filter. Rows come back in
// (date DESC, id DESC) for presentation convenience; callers that fold
// balances re-sort ascending themselves.
func (r *MovementRepository) Query(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error) {
	sql, args := buildQuery(`SELECT `+movementColumns+` FROM movements`, filter)
	sql += ` ORDER BY date DESC, id DESC`

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMovements(rows)
}

// QueryTx is Query inside the given transaction.
func (r *MovementRepository) QueryTx(ctx context.Context, tx usecase.Transaction, filter domain.Filter) ([]*domain.Movement, error) {
	pgxTx := tx.(*Tx).PgxTx()

	sql, args := buildQuery(`SELECT `+movementColumns+` FROM movements`, filter)

	rows, err := pgxTx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMovements(rows)
}

// Count counts movements matching the filter.
func (r *MovementRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	sql, args := buildQuery(`SELECT COUNT(*) FROM movements`, filter)

	var count int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// LockAccount takes the account's transaction-scoped advisory lock. No row
// in our schema represents the account itself (accounts live with an
// external collaborator), so serialization uses an advisory lock keyed by
// the account id hash instead of SELECT FOR UPDATE.
func (r *MovementRepository) LockAccount(ctx context.Context, tx usecase.Transaction, accountID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, accountID)

	return err
}

// buildQuery appends AND-combined WHERE clauses for every set filter field.
func buildQuery(base string, filter domain.Filter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	add := func(clause string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if filter.AccountID != "" {
		add("account_id = $%d", filter.AccountID)
	}

	if filter.ProjectID != "" {
		add("project_id = $%d", filter.ProjectID)
	}

	if filter.Kind != "" {
		add("kind = $%d", string(filter.Kind))
	}

	if filter.Source != "" {
		add("source = $%d", string(filter.Source))
	}

	if !filter.DateFrom.IsZero() {
		add("date >= $%d", dateToPgDate(filter.DateFrom))
	}

	if !filter.DateTo.IsZero() {
		add("date <= $%d", dateToPgDate(filter.DateTo))
	}

	if len(clauses) == 0 {
		return base, nil
	}

	return base + " WHERE " + strings.Join(clauses, " AND "), args
}

func insertArgs(m *domain.Movement) []any {
	return []any{
		m.ID,
		m.AccountID,
		textOrNull(m.ProjectID),
		string(m.Kind),
		string(m.Source),
		textOrNull(string(m.RefKind)),
		int8OrNull(m.RefID),
		dateToPgDate(m.Date),
		decimalToNumeric(m.Amount),
		textOrNull(m.Description),
		decimalToNumeric(m.BalanceAfter),
		timeToPgTimestamptz(m.CreatedAt),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovement(row rowScanner) (*domain.Movement, error) {
	var (
		m            domain.Movement
		projectID    pgtype.Text
		refKind      pgtype.Text
		refID        pgtype.Int8
		date         pgtype.Date
		amount       pgtype.Numeric
		description  pgtype.Text
		balanceAfter pgtype.Numeric
		createdAt    pgtype.Timestamptz
	)

	kind := ""
	source := ""

	err := row.Scan(
		&m.ID, &m.AccountID, &projectID, &kind, &source,
		&refKind, &refID, &date, &amount, &description, &balanceAfter, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	m.ProjectID = projectID.String
	m.Kind = domain.Kind(kind)
	m.Source = domain.Source(source)
	m.RefKind = domain.RefKind(refKind.String)
	m.RefID = refID.Int64
	m.Date = domain.DateOf(date.Time)
	m.Amount = numericToDecimal(amount)
	m.Description = description.String
	m.BalanceAfter = numericToDecimal(balanceAfter)
	m.CreatedAt = createdAt.Time

	return &m, nil
}

func collectMovements(rows pgx.Rows) ([]*domain.Movement, error) {
	var movements []*domain.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}

		movements = append(movements, m)
	}

	return movements, rows.Err()
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func dateToPgDate(d domain.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func int8OrNull(i int64) pgtype.Int8 {
	return pgtype.Int8{Int64: i, Valid: i != 0}
}
