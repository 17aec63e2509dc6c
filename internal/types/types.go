// =============================================================================
// DAS C.A.R.E. Contact Forms - Shared Types
// =============================================================================
//
// This package contains the record model shared by every stage of the report
// pipeline. Types defined here are used by:
//   - forms     (normalization and address extraction)
//   - pipeline  (formatter, grouper, compressor)
//   - report    (field projection and rendering)
//
// ABSENCE:
//   A cell that was empty in the spreadsheet never becomes an empty string in
//   a Record. It is simply not stored. Lookups return a Value, which carries
//   an explicit "missing" state instead of overloading "".
//
// =============================================================================

package types

import (
	"sort"
	"time"
)

// =============================================================================
// TABULAR INPUT
// =============================================================================

// Schema is the ordered list of column names taken from the first row of the
// worksheet.
type Schema []string

// RawRow is one worksheet row, positionally aligned to a Schema.
// A row may be shorter than the schema; the trailing columns are absent.
type RawRow []string

// =============================================================================
// VALUE (MISSING SENTINEL)
// =============================================================================

// Value is a possibly-missing string.
// The zero Value is missing.
type Value struct {
	s  string
	ok bool
}

// Missing returns the missing sentinel.
func Missing() Value {
	return Value{}
}

// Some wraps a present value. An empty string is still treated as missing so
// that "" can never leak out of a lookup as a real value.
func Some(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{s: s, ok: true}
}

// Get returns the string and whether it is present.
func (v Value) Get() (string, bool) {
	return v.s, v.ok
}

// IsMissing reports whether v is the missing sentinel.
func (v Value) IsMissing() bool {
	return !v.ok
}

// Or returns the value, or fallback when missing.
func (v Value) Or(fallback string) string {
	if !v.ok {
		return fallback
	}
	return v.s
}

// =============================================================================
// RESPONSE RECORD
// =============================================================================

// Record is a single contact-form submission after formatting.
type Record struct {
	// Fields maps column name to a non-empty cell value.
	// The two timestamp-bearing columns are not kept here once parsed;
	// they live in Timestamp and ContactDate.
	Fields map[string]string

	// Timestamp is the moment the form was submitted.
	// The zero time means the column was absent.
	Timestamp time.Time

	// ContactDate is the moment the outreach event happened.
	// The zero time means the column was absent.
	ContactDate time.Time

	// Row is the 1-based worksheet row the record came from.
	// Useful for audit logging; 0 when unknown.
	Row int
}

// NewRecord creates an empty Record.
func NewRecord() Record {
	return Record{Fields: make(map[string]string)}
}

// Get returns the value of a column with missing semantics.
func (r Record) Get(name string) Value {
	return Some(r.Fields[name])
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	fields := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	r.Fields = fields
	return r
}

// =============================================================================
// PIPELINE COLLECTIONS
// =============================================================================

// Groups maps an address to its records in chronological order.
type Groups map[string][]Record

// Compressed maps an address to the overlay of its records.
type Compressed map[string]Record

// Addresses returns the group keys in sorted order.
func (g Groups) Addresses() []string {
	addrs := make([]string, 0, len(g))
	for a := range g {
		addrs = append(addrs, a)
	}
	sort.Strings(addrs)
	return addrs
}
