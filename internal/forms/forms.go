// =============================================================================
// DAS C.A.R.E. Contact Forms - Form Versions
// =============================================================================
//
// The contact form has changed over time. Each revision of the form gets a
// Version tag, and each tag maps to exactly one Strategy describing how rows
// of that revision are normalized and where their address lives.
//
// USAGE:
//   strategy, err := forms.Lookup(forms.V1)
//   record, err := strategy.Normalize(fields, row)
//   address := strategy.Address(record)
//
// ADDING A REVISION:
//   1. Add a Version constant
//   2. Write a constructor like newV1()
//   3. Add a case to Lookup
//
// =============================================================================

package forms

import (
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUnknownVersion is returned by Lookup for a tag with no strategy.
	ErrUnknownVersion = eris.New("unknown forms version")

	// ErrFieldConflict is returned when a record carries both a legacy
	// column and the column it was renamed to.
	ErrFieldConflict = eris.New("legacy and current field both present")
)

// =============================================================================
// VERSION
// =============================================================================

// Version identifies a revision of the contact form.
type Version string

const (
	// V1 is the first (and currently only) form revision.
	V1 Version = "V1"
)

// Versions lists every known version.
func Versions() []Version {
	return []Version{V1}
}

// ParseVersion converts a configuration value into a Version.
// The value must match a tag exactly.
func ParseVersion(s string) (Version, error) {
	v := Version(s)
	if _, err := Lookup(v); err != nil {
		return "", err
	}
	return v, nil
}

// =============================================================================
// STRATEGY
// =============================================================================

// Strategy is the normalization and address-extraction behavior for one
// form revision. Strategies are built only by Lookup.
type Strategy struct {
	version         Version
	addressColumn   string
	timestampColumn string
	contactColumn   string
	migrations      []Migration
	fixup           func(types.Record) types.Record
}

// Lookup returns the strategy for a version.
func Lookup(v Version) (*Strategy, error) {
	switch v {
	case V1:
		return newV1(), nil
	default:
		return nil, eris.Wrapf(ErrUnknownVersion, "version %q", string(v))
	}
}

// Version returns the tag this strategy was looked up with.
func (s *Strategy) Version() Version {
	return s.version
}

// AddressColumn returns the column the address is read from.
func (s *Strategy) AddressColumn() string {
	return s.addressColumn
}

// Migrations returns a copy of the legacy column table.
func (s *Strategy) Migrations() []Migration {
	out := make([]Migration, len(s.migrations))
	copy(out, s.migrations)
	return out
}

// Normalize turns a zipped row into a Record.
//
// The timestamp columns are parsed into Record.Timestamp and
// Record.ContactDate and removed from Fields. Legacy columns are renamed.
// A parse failure or a migration conflict is returned as an error; both are
// fatal to the run.
func (s *Strategy) Normalize(fields map[string]string, row int) (types.Record, error) {
	rec := types.NewRecord()
	rec.Row = row
	for k, v := range fields {
		if v != "" {
			rec.Fields[k] = v
		}
	}

	var err error
	if raw, ok := rec.Fields[s.timestampColumn]; ok {
		if rec.Timestamp, err = ParseTimestamp(raw); err != nil {
			return types.Record{}, eris.Wrapf(err, "row %d: column %q", row, s.timestampColumn)
		}
		delete(rec.Fields, s.timestampColumn)
	}
	if raw, ok := rec.Fields[s.contactColumn]; ok {
		if rec.ContactDate, err = ParseTimestamp(raw); err != nil {
			return types.Record{}, eris.Wrapf(err, "row %d: column %q", row, s.contactColumn)
		}
		delete(rec.Fields, s.contactColumn)
	}

	if err := migrate(rec.Fields, s.migrations); err != nil {
		return types.Record{}, eris.Wrapf(err, "row %d", row)
	}

	return rec, nil
}

// Address returns the record's address, or the missing sentinel.
func (s *Strategy) Address(rec types.Record) types.Value {
	return rec.Get(s.addressColumn)
}

// FixupCompressed applies derived-field rules to a merged record.
// The input is not modified.
func (s *Strategy) FixupCompressed(rec types.Record) types.Record {
	if s.fixup == nil {
		return rec
	}
	return s.fixup(rec.Clone())
}

// CheckSchema inspects a header row and returns human-readable warnings.
// An empty result means the header looks usable.
func (s *Strategy) CheckSchema(schema types.Schema) []string {
	present := make(map[string]bool, len(schema))
	for _, name := range schema {
		present[name] = true
	}

	var warnings []string
	for _, col := range []string{s.addressColumn, s.contactColumn, s.timestampColumn} {
		if !present[col] {
			warnings = append(warnings, "missing column "+strconv.Quote(col))
		}
	}
	for _, m := range s.migrations {
		if present[m.From] && present[m.To] {
			warnings = append(warnings, "both "+strconv.Quote(m.From)+" and "+strconv.Quote(m.To)+
				" are columns; rows filling both will fail")
		}
	}
	return warnings
}

// HasAddressColumn reports whether the header contains the address column.
func (s *Strategy) HasAddressColumn(schema types.Schema) bool {
	for _, name := range schema {
		if name == s.addressColumn {
			return true
		}
	}
	return false
}

// migrate renames legacy keys in place.
func migrate(fields map[string]string, table []Migration) error {
	for _, m := range table {
		old, ok := fields[m.From]
		if !ok {
			continue
		}
		if _, exists := fields[m.To]; exists {
			return eris.Wrapf(ErrFieldConflict, "%q and %q", m.From, m.To)
		}
		fields[m.To] = old
		delete(fields, m.From)
	}
	return nil
}
