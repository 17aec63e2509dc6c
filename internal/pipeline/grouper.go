package pipeline

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/georgeaf99/das-care-contact-forms/internal/forms"
	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// ErrMissingAddress is returned by Group for a record with no address.
// The Formatter never lets such a record through.
var ErrMissingAddress = eris.New("record has no address")

// Group partitions records by address. Each partition is stable-sorted by
// contact date, then submission timestamp, both ascending.
func Group(records []types.Record, strategy *forms.Strategy) (types.Groups, error) {
	groups := make(types.Groups)

	for _, rec := range records {
		addr, ok := strategy.Address(rec).Get()
		if !ok {
			return nil, eris.Wrapf(ErrMissingAddress, "row %d", rec.Row)
		}
		groups[addr] = append(groups[addr], rec)
	}

	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			a, b := group[i], group[j]
			if !a.ContactDate.Equal(b.ContactDate) {
				return a.ContactDate.Before(b.ContactDate)
			}
			return a.Timestamp.Before(b.Timestamp)
		})
	}

	return groups, nil
}
