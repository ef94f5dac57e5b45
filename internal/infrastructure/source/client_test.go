package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-replica-sync/config"
	"hospital-replica-sync/internal/domain/entity"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cutoff = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) *Client {
	t.Helper()
	log, _ := test.NewNullLogger()
	return NewClient(config.SourceConfig{BaseURL: baseURL, Timeout: timeout}, log)
}

func TestClient_Fetch(t *testing.T) {
	var gotPath, gotCutoff string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCutoff = r.URL.Query().Get("fecha_mayor")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"datos":[{"id":1,"name":"Cardiología"},{"id":2,"name":"Urgencias"}]}`))
	}))
	defer server.Close()

	records, err := newTestClient(t, server.URL+"/", time.Second).Fetch(context.Background(), entity.TableDepartments, cutoff)
	require.NoError(t, err)

	assert.Equal(t, "/api/departments", gotPath)
	assert.Equal(t, "2025-01-01", gotCutoff)
	require.Len(t, records, 2)
	assert.Equal(t, json.Number("1"), records[0]["id"])
	assert.Equal(t, "Urgencias", records[1]["name"])
}

func TestClient_FetchEmptyResults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty list", body: `{"datos":[]}`},
		{name: "missing key", body: `{}`},
		{name: "null", body: `null`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			records, err := newTestClient(t, server.URL, time.Second).Fetch(context.Background(), entity.TablePhysicians, cutoff)
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestClient_FetchKeepsMalformedEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"datos":[{"id":1,"name":"Cardiología"},"garbage",{"id":3,"name":"Urgencias"},null]}`))
	}))
	defer server.Close()

	records, err := newTestClient(t, server.URL, time.Second).Fetch(context.Background(), entity.TableDepartments, cutoff)
	require.NoError(t, err)

	require.Len(t, records, 4)
	assert.Equal(t, json.Number("1"), records[0]["id"])
	assert.Nil(t, records[1])
	assert.Equal(t, json.Number("3"), records[2]["id"])
	assert.Nil(t, records[3])
}

func TestClient_FetchUnavailable(t *testing.T) {
	t.Run("non success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, time.Second).Fetch(context.Background(), entity.TableConsultations, cutoff)
		require.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{"datos":[]}`))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, 20*time.Millisecond).Fetch(context.Background(), entity.TableConsultations, cutoff)
		require.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := newTestClient(t, url, time.Second).Fetch(context.Background(), entity.TableDepartments, cutoff)
		require.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"datos": "nope"}`))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, time.Second).Fetch(context.Background(), entity.TableDepartments, cutoff)
		require.ErrorIs(t, err, ErrSourceUnavailable)
	})
}
