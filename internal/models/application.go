// internal/models/application.go
package models

// CardApplication is the typed record for a validated NextCard request.
// All fields except AddressLine2 are required.
type CardApplication struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	IDNumber         string
	Birthdate        string
	Country          string
	AddressLine1     string
	AddressLine2     string
	City             string
	State            string
	PostalCode       string
	Currency         string
	Income           string
	Occupation       string
	EmploymentStatus string
	CardType         string
}

// JobApplication is the typed record for a validated job candidacy. Only
// FirstName, Email, Phone, Country and EmploymentStatus are required; the
// rest render with a placeholder when absent.
type JobApplication struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Cellphone        string
	Country          string
	Nationality      string
	Birthdate        string
	PositionInterest string
	EmploymentStatus string
	Occupation       string
	Income           string
	Institutions     string
	Experience       string
	Education        string
	Languages        string
	Skills           string
	CoverLetter      string
}
