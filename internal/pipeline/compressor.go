package pipeline

import (
	"github.com/georgeaf99/das-care-contact-forms/internal/forms"
	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// Compress overlays each group's records, oldest first, into one record per
// address. A later present field replaces an earlier one; an absent field
// never erases. The strategy's fixup runs on the merged result.
func Compress(groups types.Groups, strategy *forms.Strategy) types.Compressed {
	out := make(types.Compressed, len(groups))
	for addr, group := range groups {
		out[addr] = strategy.FixupCompressed(overlay(group))
	}
	return out
}

func overlay(group []types.Record) types.Record {
	acc := types.NewRecord()
	for _, rec := range group {
		for k, v := range rec.Fields {
			acc.Fields[k] = v
		}
		if !rec.Timestamp.IsZero() {
			acc.Timestamp = rec.Timestamp
		}
		if !rec.ContactDate.IsZero() {
			acc.ContactDate = rec.ContactDate
		}
		acc.Row = rec.Row
	}
	return acc
}
