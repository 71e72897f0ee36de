package errors

// ValidatePositive validates that a named dimension is strictly positive.
// Geometry fields (radii, spacing, canvas dimensions) must never be zero
// or negative; violations are reported, never clamped.
func ValidatePositive(field string, v float64) error {
	if v <= 0 {
		return New(ErrCodeInvalidGeometry, "%s must be positive, got %v", field, v)
	}
	return nil
}

// ValidatePositiveInt validates that a named integer field is strictly positive.
func ValidatePositiveInt(field string, v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidGeometry, "%s must be positive, got %d", field, v)
	}
	return nil
}

// ValidateNonNegativeInt validates that a named integer field is zero or greater.
// Ring counts may be zero (an undivided circle interior).
func ValidateNonNegativeInt(field string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidGeometry, "%s must not be negative, got %d", field, v)
	}
	return nil
}

// ValidateTolerance validates that a named tolerance is zero or greater.
func ValidateTolerance(field string, v float64) error {
	if v < 0 {
		return New(ErrCodeInvalidTarget, "%s must not be negative, got %v", field, v)
	}
	return nil
}
