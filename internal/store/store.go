package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is matched by every "no such row" error the store returns.
	ErrNotFound = errors.New("not found")
	// ErrVenueNotFound signals the venue id has no matching row.
	ErrVenueNotFound = fmt.Errorf("venue %w", ErrNotFound)
	// ErrArtistNotFound signals the artist id has no matching row.
	ErrArtistNotFound = fmt.Errorf("artist %w", ErrNotFound)
	// ErrHasShows is the cause of a rejected delete while shows still reference the row.
	ErrHasShows = errors.New("shows still reference this record")
	// ErrUnknownParticipant is the cause of a rejected show whose artist or venue does not exist.
	ErrUnknownParticipant = errors.New("artist or venue does not exist")
)

// WriteConflictError reports a write that the database refused or failed.
// The transaction has already been rolled back when it is returned.
type WriteConflictError struct {
	Op  string
	Err error
}

func (e *WriteConflictError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WriteConflictError) Unwrap() error {
	return e.Err
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the time source used to split past and upcoming shows.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store provides persistence backed by Postgres.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// withTx runs fn inside a transaction. Any error rolls the transaction back;
// storage failures come back as *WriteConflictError.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return classifyWriteError(ctx, op, fmt.Errorf("begin tx: %w", err))
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return classifyWriteError(ctx, op, err)
	}

	if err := tx.Commit(); err != nil {
		return classifyWriteError(ctx, op, fmt.Errorf("commit tx: %w", err))
	}
	tx = nil

	return nil
}

// readTx runs fn in a read-only transaction so multi-query reads see one snapshot.
func (s *Store) readTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("begin read tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit read tx: %w", err)
	}
	tx = nil

	return nil
}

func classifyWriteError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return err
	case ctx.Err() != nil:
		return fmt.Errorf("%s: %w", op, err)
	default:
		return &WriteConflictError{Op: op, Err: err}
	}
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// likePattern turns a search term into an ILIKE substring pattern, escaping
// the LIKE metacharacters so they match literally.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
