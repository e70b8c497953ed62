package errors

import "strings"

// ValidateNotEmpty checks that a string field is not empty after trimming.
func ValidateNotEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeInvalidInput, "%s must not be empty", field)
	}
	return nil
}

// ValidateRange checks that a numeric value falls within [min, max].
func ValidateRange(field string, value, min, max float64) error {
	if value < min || value > max {
		return New(ErrCodeInvalidInput, "%s must be between %g and %g, got %g", field, min, max, value)
	}
	return nil
}

// ValidateHouse checks that a house number is in 1..12.
func ValidateHouse(house int) error {
	if house < 1 || house > 12 {
		return New(ErrCodeInvalidHouse, "house must be between 1 and 12, got %d", house)
	}
	return nil
}

// ValidateLatitude checks a geographic latitude in degrees.
func ValidateLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return New(ErrCodeInvalidInput, "latitude must be between -90 and 90, got %g", lat)
	}
	return nil
}

// ValidateLongitude checks a geographic longitude in degrees.
func ValidateLongitude(lon float64) error {
	if lon < -180 || lon > 180 {
		return New(ErrCodeInvalidInput, "longitude must be between -180 and 180, got %g", lon)
	}
	return nil
}

// ValidateOneOf checks that value is one of the allowed options.
func ValidateOneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "%s must be one of %s, got %q", field, strings.Join(allowed, ", "), value)
}
