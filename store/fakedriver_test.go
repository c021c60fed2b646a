package store_test

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
)

// fakeDriver serves canned result sets keyed by DSN.
type fakeDriver struct{}

type fakeResult struct {
	cols []string
	rows [][]driver.Value
	err  error
}

var (
	registerOnce sync.Once
	fixturesMu   sync.Mutex
	fixtures     = map[string]fakeResult{}
)

var errNotSupported = errors.New("fake: not supported")

func openFake(name string, res fakeResult) (*sql.DB, error) {
	registerOnce.Do(func() { sql.Register("stoproute-fake", fakeDriver{}) })
	fixturesMu.Lock()
	fixtures[name] = res
	fixturesMu.Unlock()

	return sql.Open("stoproute-fake", name)
}

func (fakeDriver) Open(name string) (driver.Conn, error) {
	fixturesMu.Lock()
	defer fixturesMu.Unlock()

	return &fakeConn{res: fixtures[name]}, nil
}

type fakeConn struct{ res fakeResult }

func (c *fakeConn) Prepare(string) (driver.Stmt, error) { return &fakeStmt{res: c.res}, nil }
func (c *fakeConn) Close() error                        { return nil }
func (c *fakeConn) Begin() (driver.Tx, error)           { return nil, errNotSupported }

type fakeStmt struct{ res fakeResult }

func (s *fakeStmt) Close() error                               { return nil }
func (s *fakeStmt) NumInput() int                              { return -1 }
func (s *fakeStmt) Exec([]driver.Value) (driver.Result, error) { return nil, errNotSupported }

func (s *fakeStmt) Query([]driver.Value) (driver.Rows, error) {
	if s.res.err != nil {
		return nil, s.res.err
	}

	return &fakeRows{cols: s.res.cols, rows: s.res.rows}, nil
}

type fakeRows struct {
	cols []string
	rows [][]driver.Value
	pos  int
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++

	return nil
}
