package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "todo-service/pkg/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := newTestContext(t)

	OK(c, gin.H{"hello": "world"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ErrorCode != 0 || resp.Message != MessageSuccess {
		t.Errorf("unexpected envelope %+v", resp)
	}
}

func TestCreated(t *testing.T) {
	c, w := newTestContext(t)

	Created(c, gin.H{"id": "u1"})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
}

func TestErrorWithHTTPError(t *testing.T) {
	c, w := newTestContext(t)

	Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, "todo not found"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != "todo not found" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestErrorWithPlainError(t *testing.T) {
	c, w := newTestContext(t)

	Error(c, errors.New("bad input"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
