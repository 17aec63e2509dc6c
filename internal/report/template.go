// =============================================================================
// DAS C.A.R.E. Contact Forms - Report Template
// =============================================================================
//
// The report is a fixed list of sections, each a fixed list of lines. Every
// line names the fields it needs. When any of those fields is missing for an
// address, the line is left out. A section that loses every line is left out
// too, along with its blank separator.
//
// LAYOUT:
//   Address: 12 Main St
//
//   Initial Contact Date: 2016-10-04 15:09:24
//   Phone Call Dates: [2016-10-05 09:00:00, 2016-11-02 10:30:00]
//
//   Census Tract: 44.5
//   ...
//
// =============================================================================

package report

// Field names a value that can appear in a report.
type Field string

// Report fields. The string value is the placeholder name used in Line.Format.
const (
	FieldAddress            Field = "address"
	FieldInitialContactDate Field = "initial_contact_date"
	FieldCareLetterDate     Field = "care_letter_date"
	FieldPhoneCallDates     Field = "list_of_phone_call_dates"
	FieldMailDates          Field = "list_of_mail_dates"
	FieldCensusTract        Field = "census_tract"
	FieldNumDogs            Field = "num_dogs"
	FieldNumCats            Field = "num_cats"
	FieldIndicators         Field = "indicators"
	FieldOwnerName          Field = "owner_name"
	FieldOwnerPhone         Field = "owner_phone_number"
	FieldOwnerEmail         Field = "owner_email"
	FieldNumFixed           Field = "num_fixed_animals"
	FieldNumVaccinated      Field = "num_vaccinated_animals"
	FieldNumRegistered      Field = "num_registered_animals"
	FieldIsInCompliance     Field = "is_in_compliance"
)

// Placeholder returns the "{name}" token for the field.
func (f Field) Placeholder() string {
	return "{" + string(f) + "}"
}

// Line is one line of the template.
type Line struct {
	// Format is the line text with {field} placeholders.
	Format string

	// Requires lists every field referenced by Format.
	Requires []Field
}

// Section is a group of lines printed without blank lines between them.
type Section []Line

func line(format string, requires ...Field) Line {
	return Line{Format: format, Requires: requires}
}

// Template is the report layout.
var Template = []Section{
	{
		line("Address: {address}", FieldAddress),
	},
	{
		line("Initial Contact Date: {initial_contact_date}", FieldInitialContactDate),
		line("C.A.R.E. Letter Date: {care_letter_date}", FieldCareLetterDate),
		line("Phone Call Dates: {list_of_phone_call_dates}", FieldPhoneCallDates),
		line("Mail Dates: {list_of_mail_dates}", FieldMailDates),
	},
	{
		line("Census Tract: {census_tract}", FieldCensusTract),
	},
	{
		line("Num Dogs: {num_dogs}", FieldNumDogs),
		line("Num Cats: {num_cats}", FieldNumCats),
	},
	{
		line("Indicators: {indicators}", FieldIndicators),
	},
	{
		line("Owner Name: {owner_name}", FieldOwnerName),
		line("Owner Phone Number: {owner_phone_number}", FieldOwnerPhone),
		line("Owner Email: {owner_email}", FieldOwnerEmail),
	},
	{
		line("Number of Fixed Animals: {num_fixed_animals}", FieldNumFixed),
		line("Number of Vaccinated Animals: {num_vaccinated_animals}", FieldNumVaccinated),
		line("Number of Registered Animals: {num_registered_animals}", FieldNumRegistered),
	},
	{
		line("Is In Compliance: {is_in_compliance}", FieldIsInCompliance),
	},
}
