package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func sanityStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_API_HOST", srv.URL)
	return srv
}

func TestQueriesCommand(t *testing.T) {
	sanityStub(t, http.StatusOK, `{"result":null}`)

	out, err := run(t, "queries")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "about"))
	assert.Contains(t, out, "singleton")
	assert.Contains(t, out, "/v2024-01-01/data/query/production?query=")
}

func TestFetchCommand(t *testing.T) {
	sanityStub(t, http.StatusOK, `{"result":{"title":"Ada"},"ms":3}`)

	out, err := run(t, "fetch", "hero")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"title\": \"Ada\"\n}\n", out)
}

func TestFetchCommand_Null(t *testing.T) {
	sanityStub(t, http.StatusOK, `{"result":null}`)

	out, err := run(t, "fetch", "about")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

func TestFetchCommand_Errors(t *testing.T) {
	sanityStub(t, http.StatusBadRequest, `{"error":{"description":"expected '}'","type":"queryParseError"}}`)

	_, err := run(t, "fetch", "hero")
	assert.ErrorContains(t, err, "expected '}'")

	_, err = run(t, "fetch", "blog")
	assert.ErrorContains(t, err, `unknown query "blog"`)
}
