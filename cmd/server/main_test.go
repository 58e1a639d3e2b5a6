package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	handleHealthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleCatalog_ReturnsAllParameters(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rec := httptest.NewRecorder()

	handleCatalog(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var values map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &values); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if _, ok := values["Qvs_initial"]; !ok {
		t.Errorf("catalog response missing Qvs_initial")
	}
}

func TestHandleOptimize_RejectsNonPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/optimize", nil)
	rec := httptest.NewRecorder()

	handleOptimize(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleOptimize_RejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/optimize", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()

	handleOptimize(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleOptimize_InvalidConfigIsBadRequest(t *testing.T) {
	body, err := json.Marshal(optimizeRequest{NumRepeats: 0})
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/optimize", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handleOptimize(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
