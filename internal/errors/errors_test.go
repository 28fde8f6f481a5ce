package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorCreation(t *testing.T) {
	err := New("test", "test message", nil, http.StatusBadRequest)
	if err.Type != "test" || err.Message != "test message" || err.Code != http.StatusBadRequest {
		t.Errorf("New() created incorrect error: %v", err)
	}

	cause := fmt.Errorf("original error")
	err = New("test", "test with cause", cause, http.StatusInternalServerError)
	if err.Cause != cause {
		t.Errorf("New() did not set cause correctly: %v", err)
	}

	expected := "test: test with cause: original error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestErrorWrapping(t *testing.T) {
	original := fmt.Errorf("original error")
	wrapped := Wrap(original, "wrapped", "wrapped message", http.StatusBadRequest)

	if wrapped.Type != "wrapped" || wrapped.Message != "wrapped message" {
		t.Errorf("Wrap() created incorrect error: %v", wrapped)
	}
	if wrapped.Cause != original {
		t.Errorf("Wrap() did not set cause correctly")
	}

	// wrapping an AppError keeps the original type and code
	appErr := New("app", "app error", nil, http.StatusNotFound)
	rewrapped := Wrap(appErr, "ignored", "new message", http.StatusBadRequest)

	if rewrapped.Type != "app" {
		t.Errorf("Wrap() did not preserve original AppError type: got %s, want %s",
			rewrapped.Type, appErr.Type)
	}
	if rewrapped.Message != "new message" {
		t.Errorf("Wrap() did not update message: got %s, want %s",
			rewrapped.Message, "new message")
	}
	if rewrapped.Code != appErr.Code {
		t.Errorf("Wrap() did not preserve original status code: got %d, want %d",
			rewrapped.Code, appErr.Code)
	}

	if Wrap(nil, "test", "message", http.StatusBadRequest) != nil {
		t.Errorf("Wrap(nil) should return nil")
	}
}

func TestErrorTypeChecking(t *testing.T) {
	httpErr := HTTP("http error", nil)
	notFound := NotFound("connection", nil)

	if !Is(httpErr, ErrTypeHTTP) {
		t.Errorf("Is() failed to identify HTTP error")
	}
	if Is(notFound, ErrTypeHTTP) {
		t.Errorf("Is() incorrectly identified not-found error as HTTP error")
	}
	if Is(nil, ErrTypeNotFound) {
		t.Errorf("Is(nil) should be false")
	}

	wrapped := fmt.Errorf("outer: %w", notFound)
	if !Is(wrapped, ErrTypeNotFound) {
		t.Errorf("Is() should match through wrapped chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(nil); got != http.StatusOK {
		t.Errorf("GetCode(nil) = %d, want %d", got, http.StatusOK)
	}
	if got := GetCode(InvalidArg("limit")); got != http.StatusBadRequest {
		t.Errorf("GetCode() = %d, want %d", got, http.StatusBadRequest)
	}
	if got := GetCode(fmt.Errorf("plain")); got != http.StatusInternalServerError {
		t.Errorf("GetCode(plain) = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	invalidArg := InvalidArg("operation")
	if invalidArg.Type != ErrTypeInvalidArg || invalidArg.Code != http.StatusBadRequest {
		t.Errorf("InvalidArg() created error with wrong type or code: %s, %d",
			invalidArg.Type, invalidArg.Code)
	}

	notFound := NotFound("connection", nil)
	if notFound.Type != ErrTypeNotFound || notFound.Code != http.StatusNotFound {
		t.Errorf("NotFound() created error with wrong type or code: %s, %d",
			notFound.Type, notFound.Code)
	}

	confErr := Config("bad config", nil)
	if confErr.Type != ErrTypeConfig {
		t.Errorf("Config() created error with wrong type: %s", confErr.Type)
	}

	if len(notFound.Stack) == 0 {
		t.Errorf("helper constructors should attach a stack")
	}
}

func TestErrRendering(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("RequestID", "req-1")

	Err(c, NotFound("connection", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Err() status = %d, want %d", w.Code, http.StatusNotFound)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"type":"not_found"`) {
		t.Errorf("Err() body missing type: %s", body)
	}
	if !strings.Contains(body, `"request_id":"req-1"`) {
		t.Errorf("Err() body missing request id: %s", body)
	}

	// plain errors render as 500 with type unknown
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Err(c, fmt.Errorf("boom"))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Err(plain) status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
