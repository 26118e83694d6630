package actuator

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPJointClient_SetJointPosition(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &HTTPJointClient{BaseURL: srv.URL}
	if err := c.SetJointPosition("head_pan", 45.0); err != nil {
		t.Fatalf("SetJointPosition: %v", err)
	}

	if gotPath != "/api/joint/set_target" {
		t.Errorf("path: got %q, want /api/joint/set_target", gotPath)
	}
	if gotBody["joint"] != "head_pan" {
		t.Errorf("joint: got %v, want head_pan", gotBody["joint"])
	}
	if gotBody["position_deg"] != 45.0 {
		t.Errorf("position_deg: got %v, want 45", gotBody["position_deg"])
	}
}

func TestHTTPJointClient_Rejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := &HTTPJointClient{BaseURL: srv.URL}
	err := c.SetJointPosition("head_tilt", 720)
	if !errors.Is(err, ErrCommandRejected) {
		t.Errorf("got %v, want ErrCommandRejected", err)
	}
}

func TestHTTPJointClient_Unreachable(t *testing.T) {
	c := &HTTPJointClient{BaseURL: "http://127.0.0.1:1"}
	if err := c.SetJointPosition("head_pan", 0); err == nil {
		t.Error("expected transport error, got nil")
	}
}
