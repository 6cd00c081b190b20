package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("AppError should unwrap to its cause")
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.HTTPStatus != http.StatusBadRequest || simple.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if body := simple.ToHTTPError(); body.Code != "INVALID_REQUEST" || body.Message != "Invalid request" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
