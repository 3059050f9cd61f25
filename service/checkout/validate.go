package checkout

import (
	"regexp"
	"time"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

const dateLayout = "2006-01-02"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)
	// Indonesian mobile number: optional +62 / 62 / 0 prefix, then 9-13 digits.
	phoneRe = regexp.MustCompile(`^(\+62|62|0)?[0-9]{9,13}$`)
)

// ValidateInfo checks the step-1 form and returns every failure at once as
// human-readable messages; an empty slice means the form may advance.
// Date comparisons are date-only against `today`.
func ValidateInfo(info model.CheckoutInfo, today time.Time) []string {
	var msgs []string

	if info.Name == "" {
		msgs = append(msgs, "name is required")
	}
	switch {
	case info.Email == "":
		msgs = append(msgs, "email is required")
	case !emailRe.MatchString(info.Email):
		msgs = append(msgs, "email is not a valid email address")
	}
	switch {
	case info.Phone == "":
		msgs = append(msgs, "phone is required")
	case !phoneRe.MatchString(info.Phone):
		msgs = append(msgs, "phone is not a valid Indonesian mobile number")
	}
	if info.Address == "" {
		msgs = append(msgs, "address is required")
	}
	if !info.PaymentMethod.Valid() {
		msgs = append(msgs, "payment method must be transfer, cod, or ewallet")
	}

	rental, rentalOK := parseDate(info.RentalDate)
	ret, returnOK := parseDate(info.ReturnDate)
	switch {
	case info.RentalDate == "":
		msgs = append(msgs, "rental date is required")
	case !rentalOK:
		msgs = append(msgs, "rental date is invalid")
	case rental.Before(truncateDate(today)):
		msgs = append(msgs, "rental date cannot be in the past")
	}
	switch {
	case info.ReturnDate == "":
		msgs = append(msgs, "return date is required")
	case !returnOK:
		msgs = append(msgs, "return date is invalid")
	case rentalOK && !ret.After(rental):
		msgs = append(msgs, "return date must be after rental date")
	}

	if !info.Agreement {
		msgs = append(msgs, "rental agreement must be accepted")
	}
	return msgs
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// rentalDays is the whole-day span between the two validated dates.
func rentalDays(rentalDate, returnDate string) int {
	from, _ := parseDate(rentalDate)
	to, _ := parseDate(returnDate)
	days := int(to.Sub(from).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}
