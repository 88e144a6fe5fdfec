package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	err := New("W001")

	if err.Code != "W001" {
		t.Errorf("Code = %q, want W001", err.Code)
	}
	if err.Category != CategoryTemplate {
		t.Errorf("Category = %q, want template", err.Category)
	}
	if err.Message == "" {
		t.Error("Message is empty")
	}
	if err.DocURL == "" {
		t.Error("DocURL is empty")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("W999")

	if err.Code != "W999" {
		t.Errorf("Code = %q, want W999", err.Code)
	}
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want Unknown error", err.Message)
	}
}

func TestErrorString(t *testing.T) {
	err := New("W001").WithDetail(`template "x" declares 2 slot(s), render supplied 3`)

	s := err.Error()
	if !strings.Contains(s, "W001") {
		t.Errorf("Error() = %q, missing code", s)
	}
	if !strings.Contains(s, "supplied 3") {
		t.Errorf("Error() = %q, missing detail", s)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := New("W060").Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is does not find wrapped cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "W060") != nil {
		t.Error("FromError(nil) should be nil")
	}

	we := New("W001")
	if got := FromError(we, "W060"); got != we {
		t.Error("FromError should pass through WeftError unchanged")
	}

	wrapped := FromError(fmt.Errorf("boom"), "W060")
	if wrapped.Code != "W060" {
		t.Errorf("Code = %q, want W060", wrapped.Code)
	}
	if wrapped.Wrapped == nil {
		t.Error("Wrapped is nil")
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode(New("W003"), "W003") {
		t.Error("IsCode(W003, W003) = false")
	}
	if IsCode(New("W003"), "W001") {
		t.Error("IsCode(W003, W001) = true")
	}
	if IsCode(fmt.Errorf("plain"), "W003") {
		t.Error("IsCode(plain error) = true")
	}
}

func TestRegisterCustomCode(t *testing.T) {
	Register("W900", ErrorTemplate{
		Category: CategoryCLI,
		Message:  "Test error",
	})
	defer delete(registry, "W900")

	err := New("W900")
	if err.Message != "Test error" {
		t.Errorf("Message = %q, want Test error", err.Message)
	}

	codes := GetAllCodes()
	found := false
	for _, c := range codes {
		if c == "W900" {
			found = true
		}
	}
	if !found {
		t.Error("GetAllCodes does not include W900")
	}
}
