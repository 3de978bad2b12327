package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func loginRequest(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/admin/login", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return rec
}

func TestAdminLoginIssuesToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("darpan2025"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash failed: %v", err)
	}

	handler := AdminLogin(string(hash), "test-secret", time.Hour)
	rec := loginRequest(t, handler, `{"password":"darpan2025"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["token"] == "" {
		t.Fatal("expected a token in the response")
	}
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("darpan2025"), bcrypt.MinCost)

	handler := AdminLogin(string(hash), "test-secret", time.Hour)
	rec := loginRequest(t, handler, `{"password":"wrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminLoginRejectsEmptyPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("darpan2025"), bcrypt.MinCost)

	handler := AdminLogin(string(hash), "test-secret", time.Hour)
	rec := loginRequest(t, handler, `{"password":"  "}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
