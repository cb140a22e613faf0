package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozgar-darpan/go-mgnrega-backend/internal/performance/domain"
)

func TestDataGovClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-resource" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api-key") != "secret" {
			t.Errorf("expected api-key to be forwarded, got %q", q.Get("api-key"))
		}
		if q.Get("format") != "json" {
			t.Errorf("expected format=json, got %q", q.Get("format"))
		}
		if q.Get("limit") != "1" {
			t.Errorf("expected limit=1, got %q", q.Get("limit"))
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","total":1,"count":1,"records":[{"district_code":"27"}]}`))
	}))
	defer server.Close()

	client := NewDataGovClient(server.URL+"/", "secret")

	body, err := client.Fetch(context.Background(), "test-resource", map[string]string{"limit": "1"})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"district_code":"27"`)
}

func TestDataGovClient_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewDataGovClient(server.URL+"/", "secret")

	_, err := client.Fetch(context.Background(), "test-resource", nil)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestDataGovClient_Fetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"error","message":"invalid key"}`))
	}))
	defer server.Close()

	client := NewDataGovClient(server.URL+"/", "secret")

	_, err := client.Fetch(context.Background(), "test-resource", nil)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestDataGovClient_Fetch_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewDataGovClient(server.URL+"/", "secret")

	_, err := client.Fetch(context.Background(), "test-resource", nil)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestDataGovClient_Fetch_Unreachable(t *testing.T) {
	client := NewDataGovClient("http://127.0.0.1:1/", "secret")

	_, err := client.Fetch(context.Background(), "test-resource", nil)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
