package dbmock

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

// Sandbox encapsulates a mocked Postgres connection and cancellable
// context for tests that want pgx-level expectation management on top of
// the canned row shapes.
type Sandbox struct {
	ctx    context.Context
	cancel context.CancelFunc
	mock   pgxmock.PgxConnIface
}

// NewSandbox returns a sandbox backed by pgxmock with QueryMatcherEqual
// semantics. Cleanup is registered on the test; Close need not be called
// explicitly.
func NewSandbox(tb testing.TB) *Sandbox {
	tb.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	mock, err := pgxmock.NewConn(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	if err != nil {
		cancel()
		tb.Fatalf("pgxmock.NewConn: %v", err)
	}

	sandbox := &Sandbox{ctx: ctx, cancel: cancel, mock: mock}
	tb.Cleanup(sandbox.Close)
	return sandbox
}

// Context returns the sandbox context.
func (s *Sandbox) Context() context.Context {
	if s == nil {
		return context.Background()
	}
	return s.ctx
}

// Mock exposes the underlying pgxmock connection for expectation
// management.
func (s *Sandbox) Mock() pgxmock.PgxConnIface {
	if s == nil {
		return nil
	}
	return s.mock
}

// ExpectCannedRows programs the mock to answer query with the same fixed
// tuples the canned cursor yields: (1, "data1") and (2, "data2").
func (s *Sandbox) ExpectCannedRows(query string) {
	rows := s.mock.NewRows([]string{"id", "value"}).
		AddRow(1, "data1").
		AddRow(2, "data2")
	s.mock.ExpectQuery(query).WillReturnRows(rows)
}

// FetchAll runs query against the mock and scans the results into Row
// values. Scan failures fail the test as setup errors.
func (s *Sandbox) FetchAll(tb testing.TB, query string) []Row {
	tb.Helper()

	pgxRows, err := s.mock.Query(s.ctx, query)
	if err != nil {
		tb.Fatalf("sandbox query: %v", err)
	}

	result, err := pgx.CollectRows(pgxRows, pgx.RowToStructByPos[Row])
	if err != nil {
		tb.Fatalf("sandbox scan: %v", err)
	}
	return result
}

// ExpectationsWereMet fails the supplied test if outstanding pgxmock
// expectations remain.
func (s *Sandbox) ExpectationsWereMet(tb testing.TB) {
	if s == nil {
		return
	}
	tb.Helper()
	if err := s.mock.ExpectationsWereMet(); err != nil {
		tb.Fatalf("pgx expectations: %v", err)
	}
}

// Close releases sandbox resources. Tests typically rely on the registered
// cleanup to invoke it.
func (s *Sandbox) Close() {
	if s == nil {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.mock != nil {
		_ = s.mock.Close(context.Background())
	}
}
