package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidGeometry, "radius must be positive, got %v", -3.5)

	msg := err.Error()
	if !strings.Contains(msg, string(ErrCodeInvalidGeometry)) {
		t.Errorf("Error() = %q, missing code", msg)
	}
	if !strings.Contains(msg, "-3.5") {
		t.Errorf("Error() = %q, missing formatted value", msg)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "write %s", "out.json")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is() does not find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeInvalidTarget, "bad target")

	if !Is(err, ErrCodeInvalidTarget) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() = true for a plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeFileNotFound, "open config.toml")
	outer := fmt.Errorf("load config: %w", inner)

	if !Is(outer, ErrCodeFileNotFound) {
		t.Error("Is() does not unwrap fmt-wrapped errors")
	}
	if got := GetCode(outer); got != ErrCodeFileNotFound {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeFileNotFound)
	}
}

func TestGetCodePlainError(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidBounds, "radius bounds must satisfy 0 < min <= max")
	if got := UserMessage(err); strings.Contains(got, string(ErrCodeInvalidBounds)) {
		t.Errorf("UserMessage() = %q, should not include the code", got)
	}

	plain := stderrors.New("plain")
	if got := UserMessage(plain); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}

func TestValidationHelpers(t *testing.T) {
	if err := ValidatePositive("radius", 1); err != nil {
		t.Errorf("ValidatePositive(1) = %v, want nil", err)
	}
	if err := ValidatePositive("radius", 0); err == nil {
		t.Error("ValidatePositive(0) = nil, want error")
	}
	if err := ValidatePositiveInt("width", -1); err == nil {
		t.Error("ValidatePositiveInt(-1) = nil, want error")
	}
	if err := ValidateNonNegativeInt("rings", 0); err != nil {
		t.Errorf("ValidateNonNegativeInt(0) = %v, want nil", err)
	}
	if err := ValidateNonNegativeInt("rings", -1); err == nil {
		t.Error("ValidateNonNegativeInt(-1) = nil, want error")
	}
	if err := ValidateTolerance("area tolerance", 0); err != nil {
		t.Errorf("ValidateTolerance(0) = %v, want nil", err)
	}
	if err := ValidateTolerance("area tolerance", -0.1); err == nil {
		t.Error("ValidateTolerance(-0.1) = nil, want error")
	}
}
