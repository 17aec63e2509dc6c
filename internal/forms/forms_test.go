package forms

import (
	"testing"
	"time"

	"github.com/rotisserie/eris"

	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

func TestLookup(t *testing.T) {
	s, err := Lookup(V1)
	if err != nil {
		t.Fatalf("Lookup(V1) error = %v", err)
	}
	if s.Version() != V1 {
		t.Errorf("Version() = %q, want %q", s.Version(), V1)
	}
	if s.AddressColumn() != ColumnStreetAddress {
		t.Errorf("AddressColumn() = %q", s.AddressColumn())
	}

	for _, v := range []Version{"", "V2", "v0"} {
		if _, err := Lookup(v); !eris.Is(err, ErrUnknownVersion) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownVersion", v, err)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{"V1", V1, false},
		{"v1", "", true},
		{" V1 ", "", true},
		{"", "", true},
		{"V9", "", true},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVersion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"date and time", "10/4/2016 15:09:24", time.Date(2016, 10, 4, 15, 9, 24, 0, time.UTC), false},
		{"padded fields", "01/02/2017 06:03:22", time.Date(2017, 1, 2, 6, 3, 22, 0, time.UTC), false},
		{"date only", "12/1/2017", time.Date(2017, 12, 1, 0, 0, 0, 0, time.UTC), false},
		{"surrounding space", "  12/1/2017 6:03:22 ", time.Date(2017, 12, 1, 6, 3, 22, 0, time.UTC), false},
		{"iso date", "2017-12-01", time.Time{}, true},
		{"trailing text", "12/1/2017 6:03:22 PM", time.Time{}, true},
		{"partial time", "12/1/2017 6:03", time.Time{}, true},
		{"not a date", "2/30/2017", time.Time{}, true},
		{"month 13", "13/1/2017", time.Time{}, true},
		{"hour 24", "1/1/2017 24:00:00", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if tt.wantErr {
				if !eris.Is(err, ErrTimestampFormat) {
					t.Fatalf("ParseTimestamp(%q) error = %v, want ErrTimestampFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	s, _ := Lookup(V1)

	rec, err := s.Normalize(map[string]string{
		ColumnTimestamp:        "10/4/2016 15:09:24",
		ColumnContactDate:      "10/3/2016",
		ColumnStreetAddress:    "12 Main St",
		"Registered Animals":   "2",
		"Negative Compliance?": "No",
		ColumnOwnerName:        "",
	}, 7)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if rec.Row != 7 {
		t.Errorf("Row = %d, want 7", rec.Row)
	}
	if !rec.Timestamp.Equal(time.Date(2016, 10, 4, 15, 9, 24, 0, time.UTC)) {
		t.Errorf("Timestamp = %v", rec.Timestamp)
	}
	if !rec.ContactDate.Equal(time.Date(2016, 10, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ContactDate = %v", rec.ContactDate)
	}
	if _, ok := rec.Fields[ColumnTimestamp]; ok {
		t.Error("Timestamp should be removed from Fields")
	}
	if _, ok := rec.Fields[ColumnOwnerName]; ok {
		t.Error("empty cell should not be stored")
	}
	if rec.Fields[ColumnRegistered] != "2" || rec.Fields[ColumnNegative] != "No" {
		t.Errorf("migrated fields = %v", rec.Fields)
	}
	if _, ok := rec.Fields["Registered Animals"]; ok {
		t.Error("legacy column should be removed")
	}
	if got := s.Address(rec).Or(""); got != "12 Main St" {
		t.Errorf("Address() = %q", got)
	}
}

func TestNormalizeAbsentTimestamps(t *testing.T) {
	s, _ := Lookup(V1)
	rec, err := s.Normalize(map[string]string{ColumnStreetAddress: "a"}, 2)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !rec.Timestamp.IsZero() || !rec.ContactDate.IsZero() {
		t.Errorf("absent timestamps should stay zero, got %v / %v", rec.Timestamp, rec.ContactDate)
	}
	if !s.Address(types.NewRecord()).IsMissing() {
		t.Error("Address() of empty record should be missing")
	}
}

func TestNormalizeErrors(t *testing.T) {
	s, _ := Lookup(V1)

	_, err := s.Normalize(map[string]string{
		"Vaccinated Animals": "1",
		ColumnVaccinated:     "2",
	}, 3)
	if !eris.Is(err, ErrFieldConflict) {
		t.Errorf("conflict error = %v, want ErrFieldConflict", err)
	}

	_, err = s.Normalize(map[string]string{ColumnContactDate: "yesterday"}, 4)
	if !eris.Is(err, ErrTimestampFormat) {
		t.Errorf("bad date error = %v, want ErrTimestampFormat", err)
	}
}

func TestFixupCompressed(t *testing.T) {
	s, _ := Lookup(V1)

	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{"compliant", map[string]string{ColumnCompliance: "Yes", ColumnDogs: "3", ColumnCats: "2"}, "5"},
		{"non numeric cats", map[string]string{ColumnCompliance: "Yes", ColumnDogs: "3", ColumnCats: "a few"}, "3"},
		{"no counts", map[string]string{ColumnCompliance: "Yes"}, "0"},
		{"lower case yes", map[string]string{ColumnCompliance: "yes", ColumnDogs: "3"}, ""},
		{"not compliant", map[string]string{ColumnCompliance: "No", ColumnDogs: "3"}, ""},
		{"compliance absent", map[string]string{ColumnDogs: "3", ColumnCats: "2"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := types.NewRecord()
			for k, v := range tt.fields {
				in.Fields[k] = v
			}
			out := s.FixupCompressed(in)
			for _, col := range []string{ColumnSpayedNeutered, ColumnVaccinated, ColumnRegistered} {
				if got := out.Fields[col]; got != tt.want {
					t.Errorf("%s = %q, want %q", col, got, tt.want)
				}
			}
			if _, ok := in.Fields[ColumnRegistered]; ok {
				t.Error("input record was modified")
			}
		})
	}
}

func TestCheckSchema(t *testing.T) {
	s, _ := Lookup(V1)

	full := types.Schema{ColumnTimestamp, ColumnContactDate, ColumnStreetAddress, ColumnDogs}
	if w := s.CheckSchema(full); len(w) != 0 {
		t.Errorf("CheckSchema(full) = %v, want none", w)
	}
	if !s.HasAddressColumn(full) {
		t.Error("HasAddressColumn(full) = false")
	}

	bad := types.Schema{ColumnTimestamp, "Registered Animals", ColumnRegistered}
	if w := s.CheckSchema(bad); len(w) != 3 {
		t.Errorf("CheckSchema(bad) = %v, want 3 warnings", w)
	}
	if s.HasAddressColumn(bad) {
		t.Error("HasAddressColumn(bad) = true")
	}
}
