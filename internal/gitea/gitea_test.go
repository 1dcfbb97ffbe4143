package gitea

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavolk/reviewkit/internal/boterr"
)

func TestGetPRDiff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "token test-token" {
			t.Errorf("Authorization = %q, want %q", r.Header.Get("Authorization"), "token test-token")
		}
		if r.URL.Path != "/api/v1/repos/max/misc/pulls/42.diff" {
			t.Errorf("Path = %q, want %q", r.URL.Path, "/api/v1/repos/max/misc/pulls/42.diff")
		}
		w.Write([]byte("diff --git a/file.go b/file.go\n"))
	}))
	defer server.Close()

	c := NewClient(server.URL+"/api/v1/repos/max/misc/", "test-token", io.Discard, false)

	diff, err := c.GetPRDiff(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetPRDiff error: %v", err)
	}
	if diff != "diff --git a/file.go b/file.go\n" {
		t.Errorf("diff = %q", diff)
	}
}

func TestGetPRDiff_404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-token", io.Discard, false)

	_, err := c.GetPRDiff(context.Background(), 99)
	var fetchErr *boterr.FetchError
	require.True(t, errors.As(err, &fetchErr), "want FetchError, got %v", err)
	assert.Equal(t, 99, fetchErr.PR)

	var httpErr *boterr.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 404, httpErr.StatusCode)
	assert.Equal(t, `{"message":"Not Found"}`, httpErr.Body)
}

func TestGetPRDiff_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(url, "test-token", io.Discard, false)
	_, err := c.GetPRDiff(context.Background(), 1)

	var fetchErr *boterr.FetchError
	assert.True(t, errors.As(err, &fetchErr), "want FetchError, got %v", err)
	assert.Equal(t, "fetching pull request diff", boterr.Context(err))
}

func TestPostComment(t *testing.T) {
	var got commentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/issues/7/comments" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("Authorization") != "token test-token" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1001,"body":"ok"}`))
	}))
	defer server.Close()

	var out bytes.Buffer
	c := NewClient(server.URL, "test-token", &out, false)

	result, err := c.PostComment(context.Background(), 7, "X", json.Number("0.01"))
	require.NoError(t, err)

	assert.Equal(t, "Review:\nX\nCost:0.01", got.Body)
	require.IsType(t, map[string]any{}, result)
	assert.Equal(t, json.Number("1001"), result.(map[string]any)["id"])
	assert.Equal(t, "Successfully posted review comment to issue #7\n", out.String())
}

func TestPostComment_NotJSONFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	}))
	defer server.Close()

	var out bytes.Buffer
	c := NewClient(server.URL, "t", &out, false)

	result, err := c.PostComment(context.Background(), 1, "r", 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{RawResponseKey: "created"}, result)
	assert.Empty(t, out.String())
}

func TestPostComment_JSONArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":1}]`))
	}))
	defer server.Close()

	var out bytes.Buffer
	c := NewClient(server.URL, "t", &out, false)

	result, err := c.PostComment(context.Background(), 2, "r", 0)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"id": json.Number("1")}}, result)
	assert.Equal(t, "Successfully posted review comment to issue #2\n", out.String())
}

func TestPostComment_Verbose(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Gitea-Test", "yes")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":5}`))
	}))
	defer server.Close()

	var out bytes.Buffer
	c := NewClient(server.URL, "t", &out, true)

	_, err := c.PostComment(context.Background(), 3, "r", 1)
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Status: 201\n")
	assert.Contains(t, s, "Response headers:\n")
	assert.Contains(t, s, "  X-Gitea-Test: yes\n")
	assert.Contains(t, s, "\nResponse body:\n{\"id\":5}\n")
	assert.Contains(t, s, "\nParsed JSON response:\n{\n  \"id\": 5\n}\n")
	assert.NotContains(t, s, "Successfully posted")
}

func TestPostComment_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"token does not have required scope"}`))
	}))
	defer server.Close()

	var out bytes.Buffer
	c := NewClient(server.URL, "t", &out, true)

	_, err := c.PostComment(context.Background(), 3, "r", 1)
	var httpErr *boterr.HTTPError
	require.True(t, errors.As(err, &httpErr), "want HTTPError, got %v", err)
	assert.Equal(t, 403, httpErr.StatusCode)
	assert.Equal(t, "Forbidden", httpErr.Reason)
	assert.Contains(t, httpErr.Body, "required scope")
	assert.Empty(t, out.String())
}

func TestPostComment_Transport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(url, "t", io.Discard, false)
	_, err := c.PostComment(context.Background(), 3, "r", 1)

	var tErr *boterr.TransportError
	assert.True(t, errors.As(err, &tErr), "want TransportError, got %v", err)
}
