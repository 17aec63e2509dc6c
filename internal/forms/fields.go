package forms

// Column names used by the contact form, current revision.
const (
	ColumnStreetAddress  = "Street Address"
	ColumnTimestamp      = "Timestamp"
	ColumnContactDate    = "Date of Contact"
	ColumnContactType    = "Type of Contact"
	ColumnCensusTract    = "Census Tract"
	ColumnDogs           = "How many dogs do they have?"
	ColumnCats           = "How many cats do they have?"
	ColumnIndicators     = "Are there any indicators of animals?"
	ColumnOwnerName      = "Name"
	ColumnOwnerPhone     = "Phone"
	ColumnOwnerEmail     = "Email"
	ColumnSpayedNeutered = "Spayed/Neutered?"
	ColumnVaccinated     = "Vaccinated?"
	ColumnRegistered     = "Registered?"
	ColumnNegative       = "Negative?"
	ColumnCompliance     = "Compliance?"
)

// Values of the "Type of Contact" column.
const (
	ContactInitial    = "Initial Contact"
	ContactCareLetter = "C.A.R.E. Letter"
	ContactPhoneCall  = "Phone Call"
	ContactMail       = "Mail/Email"
)

// ComplianceYes is the exact compliance answer that triggers the animal-count fixup.
const ComplianceYes = "Yes"

// Migration renames a legacy column onto its current name.
type Migration struct {
	From string
	To   string
}
