// Package dbmock provides inert persistence stand-ins: a canned
// connection/cursor pair yielding fixed rows, and a pgxmock-backed sandbox
// for tests that want expectation management. Nothing here ever reaches a
// real database.
package dbmock

// Row is the fixed (id, value) pair shape the canned cursor yields.
type Row struct {
	ID    int
	Value string
}

// Cursor yields fixed tuples for single-row and multi-row fetches.
type Cursor struct {
	fetchOnes int
	fetchAlls int
}

// FetchOne returns the literal pair (1, "test_data") on every call.
func (c *Cursor) FetchOne() Row {
	c.fetchOnes++
	return Row{ID: 1, Value: "test_data"}
}

// FetchAll returns the literal pairs (1, "data1") and (2, "data2").
func (c *Cursor) FetchAll() []Row {
	c.fetchAlls++
	return []Row{
		{ID: 1, Value: "data1"},
		{ID: 2, Value: "data2"},
	}
}

// RowCount reports the canned affected-row count.
func (c *Cursor) RowCount() int {
	return 1
}

// Conn simulates a database connection. Transaction-control operations are
// no-ops that never fail; counters are kept so tests can assert on usage.
type Conn struct {
	cursor    Cursor
	commits   int
	rollbacks int
	closed    bool
}

// NewConn returns a fresh canned connection.
func NewConn() *Conn {
	return &Conn{}
}

// Cursor returns the connection's cursor.
func (c *Conn) Cursor() *Cursor {
	return &c.cursor
}

// Commit is a no-op that never fails.
func (c *Conn) Commit() error {
	c.commits++
	return nil
}

// Rollback is a no-op that never fails.
func (c *Conn) Rollback() error {
	c.rollbacks++
	return nil
}

// Close is a no-op that never fails.
func (c *Conn) Close() error {
	c.closed = true
	return nil
}

// Commits returns how many times Commit was called.
func (c *Conn) Commits() int { return c.commits }

// Rollbacks returns how many times Rollback was called.
func (c *Conn) Rollbacks() int { return c.rollbacks }

// Closed reports whether Close was called.
func (c *Conn) Closed() bool { return c.closed }
