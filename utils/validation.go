// utils/validation.go
package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidPostcode    = errors.New("please ensure a valid UK postcode is provided, with space included")
	ErrInvalidPhoneNumber = errors.New("please ensure a valid UK phone number is provided")
)

// UK outward/inward code with a single mandatory space, matched from the
// start of the string after upper-casing, e.g. "G74 4AU" or "GU4 7AB".
var ukPostcodePattern = regexp.MustCompile(`^[A-Z]{1,2}\d{1,2} \d[A-Z]{1,2}`)

// ValidatePostcode upper-cases and checks a UK postcode. A nil postcode
// passes untouched; the field is optional.
func ValidatePostcode(postcode *string) (*string, error) {
	if postcode == nil {
		return nil, nil
	}
	normalized := strings.ToUpper(*postcode)
	if !ukPostcodePattern.MatchString(normalized) {
		return nil, ErrInvalidPostcode
	}
	return &normalized, nil
}

// ValidatePhoneNo normalizes a UK phone number into "0XXXX XXXXXX" form.
// A nil phone number passes untouched. The raw value is stripped of a
// leading "+" and all spaces, round-tripped through an integer so that
// non-numeric input is rejected and leading zeros collapse, and the "44"
// country code is dropped before reformatting.
func ValidatePhoneNo(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	digits := strings.TrimPrefix(*raw, "+")
	digits = strings.ReplaceAll(digits, " ", "")
	parsed, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return nil, ErrInvalidPhoneNumber
	}
	digits = strconv.FormatUint(parsed, 10)
	if strings.HasPrefix(digits, "44") {
		digits = digits[2:]
	}
	switch {
	case len(digits) == 10 && digits[0] != '0':
		normalized := "0" + digits[:4] + " " + digits[4:]
		return &normalized, nil
	case len(digits) == 11 && digits[0] == '0':
		normalized := digits[:5] + " " + digits[5:]
		return &normalized, nil
	}
	return nil, ErrInvalidPhoneNumber
}

// NormalizeEmail lower-cases an email address before persistence.
// Uniqueness is enforced by the database.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}
