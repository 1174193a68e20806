// internal/common/validation/validators.go
package validation

import (
	"regexp"
	"time"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// Email validates email format against a conservative local@domain.tld shape.
func Email(email string) bool {
	return emailRegex.MatchString(email)
}

// Phone strips every non-digit character and requires at least 10 digits.
func Phone(phone string) bool {
	cleaned := nonDigitRegex.ReplaceAllString(phone, "")
	return len(cleaned) >= 10
}

// Birthdate reports whether the ISO YYYY-MM-DD date belongs to someone at
// least 18 years old today.
func Birthdate(birthdate string) bool {
	return BirthdateAt(birthdate, time.Now())
}

// BirthdateAt is Birthdate against an explicit reference date. Age is
// decremented by one when the reference month/day precedes the birth
// month/day, so the boundary falls exactly on the 18th birthday.
func BirthdateAt(birthdate string, now time.Time) bool {
	birth, err := time.Parse("2006-01-02", birthdate)
	if err != nil {
		return false
	}

	age := now.Year() - birth.Year()
	if int(now.Month()) < int(birth.Month()) ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age >= 18
}

// ImageSize reports whether the decoded image fits the size ceiling.
func ImageSize(data []byte, maxSizeMB int) bool {
	return len(data) <= maxSizeMB*1024*1024
}
