package domain

import "fmt"

// ConnectionError means the backing store could not be reached at all.
// Fatal for the report that hit it; never retried.
type ConnectionError struct {
	Store string // "mysql" | "mongodb" | "redis"
	Err   error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: store unreachable: %v", e.Store, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError means the store rejected the query itself — schema drift, a
// missing table or field, or a malformed pipeline. Fatal for the report.
type QueryError struct {
	Store  string
	Report string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: report %q failed: %v", e.Store, e.Report, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
