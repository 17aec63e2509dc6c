package report

import (
	"strings"
	"time"

	"github.com/georgeaf99/das-care-contact-forms/internal/forms"
	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// DateLayout is how contact dates appear in reports.
const DateLayout = "2006-01-02 15:04:05"

// Values holds the report fields that have a value. A field with no
// contributing data is not a key.
type Values map[Field]string

// Get returns the field with missing semantics.
func (v Values) Get(f Field) types.Value {
	return types.Some(v[f])
}

func (v Values) set(f Field, val types.Value) {
	if s, ok := val.Get(); ok {
		v[f] = s
	}
}

// scalarFields are read straight from the compressed record.
var scalarFields = []struct {
	field  Field
	column string
}{
	{FieldCensusTract, forms.ColumnCensusTract},
	{FieldNumDogs, forms.ColumnDogs},
	{FieldNumCats, forms.ColumnCats},
	{FieldIndicators, forms.ColumnIndicators},
	{FieldOwnerName, forms.ColumnOwnerName},
	{FieldOwnerPhone, forms.ColumnOwnerPhone},
	{FieldOwnerEmail, forms.ColumnOwnerEmail},
	{FieldNumFixed, forms.ColumnSpayedNeutered},
	{FieldNumVaccinated, forms.ColumnVaccinated},
	{FieldNumRegistered, forms.ColumnRegistered},
	{FieldIsInCompliance, forms.ColumnCompliance},
}

// Compute derives the report fields for one address.
//
// PARAMETERS:
//   - address: The group key.
//   - group: The address's records, oldest first.
//   - compressed: The overlay of the group.
//
// Single dates take the earliest matching contact. Date lists keep group
// order and are missing when nothing matches.
func Compute(address string, group []types.Record, compressed types.Record) Values {
	v := make(Values)

	v.set(FieldAddress, types.Some(address))
	v.set(FieldInitialContactDate, firstDate(group, forms.ContactInitial))
	v.set(FieldCareLetterDate, firstDate(group, forms.ContactCareLetter))
	v.set(FieldPhoneCallDates, dateList(group, forms.ContactPhoneCall))
	v.set(FieldMailDates, dateList(group, forms.ContactMail))

	for _, s := range scalarFields {
		v.set(s.field, compressed.Get(s.column))
	}

	return v
}

func contactDates(group []types.Record, contactType string) []string {
	var dates []string
	for _, rec := range group {
		if rec.Fields[forms.ColumnContactType] != contactType {
			continue
		}
		dates = append(dates, formatDate(rec.ContactDate))
	}
	return dates
}

func firstDate(group []types.Record, contactType string) types.Value {
	dates := contactDates(group, contactType)
	if len(dates) == 0 {
		return types.Missing()
	}
	return types.Some(dates[0])
}

func dateList(group []types.Record, contactType string) types.Value {
	dates := contactDates(group, contactType)
	if len(dates) == 0 {
		return types.Missing()
	}
	return types.Some("[" + strings.Join(dates, ", ") + "]")
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}
