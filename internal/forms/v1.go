package forms

import (
	"strconv"
	"strings"

	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

var v1Migrations = []Migration{
	{From: "Negative Compliance?", To: ColumnNegative},
	{From: "Registered Animals", To: ColumnRegistered},
	{From: "Spayed/Neutered Animals", To: ColumnSpayedNeutered},
	{From: "Vaccinated Animals", To: ColumnVaccinated},
}

func newV1() *Strategy {
	return &Strategy{
		version:         V1,
		addressColumn:   ColumnStreetAddress,
		timestampColumn: ColumnTimestamp,
		contactColumn:   ColumnContactDate,
		migrations:      v1Migrations,
		fixup:           fixupV1,
	}
}

// fixupV1 sets the three animal-count fields to dogs+cats when the
// address is marked compliant.
func fixupV1(rec types.Record) types.Record {
	if rec.Fields[ColumnCompliance] != ComplianceYes {
		return rec
	}

	total := strconv.Itoa(count(rec, ColumnDogs) + count(rec, ColumnCats))
	rec.Fields[ColumnSpayedNeutered] = total
	rec.Fields[ColumnVaccinated] = total
	rec.Fields[ColumnRegistered] = total
	return rec
}

// count reads an integer cell; absent or non-numeric is 0.
func count(rec types.Record, column string) int {
	n, err := strconv.Atoi(strings.TrimSpace(rec.Fields[column]))
	if err != nil {
		return 0
	}
	return n
}
