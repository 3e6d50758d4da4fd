package sanity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type experience struct {
	Role    string `json:"role"`
	Company string `json:"company"`
	Order   int    `json:"order"`
}

type hero struct {
	Title string `json:"title"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{ProjectID: "test", Dataset: "production", APIHost: srv.URL})
}

func TestNewClient_Host(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "api host",
			cfg:  Config{ProjectID: "abc"},
			want: "https://abc.api.sanity.io/v2024-01-01/data/query/production",
		},
		{
			name: "cdn host",
			cfg:  Config{ProjectID: "abc", Dataset: "staging", UseCDN: true},
			want: "https://abc.apicdn.sanity.io/v2024-01-01/data/query/staging",
		},
		{
			name: "token bypasses cdn",
			cfg:  Config{ProjectID: "abc", UseCDN: true, Token: "secret"},
			want: "https://abc.api.sanity.io/v2024-01-01/data/query/production",
		},
		{
			name: "explicit host and version",
			cfg:  Config{APIHost: "http://localhost:9999/", APIVersion: "v2021-10-21"},
			want: "http://localhost:9999/v2021-10-21/data/query/production",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewClient(tt.cfg).base)
		})
	}
}

func TestFetch_SendsQueryAndToken(t *testing.T) {
	var gotQuery, gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ms":1,"result":{"title":"Hello"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIHost: srv.URL, Dataset: "production", Token: "tok"})
	doc, err := One[hero](context.Background(), c, HeroQuery)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, "Hello", doc.Title)
	assert.Equal(t, "/v2024-01-01/data/query/production", gotPath)
	assert.Equal(t, HeroQuery.GROQ, gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestFetch_NullResultIsNotAnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ms":1,"result":null}`))
	})

	doc, err := One[hero](context.Background(), c, HeroQuery)
	require.NoError(t, err)
	assert.Nil(t, doc)

	list, err := Many[experience](context.Background(), c, ExperiencesQuery)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestFetch_IgnoresEnvelopeMetadata(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":"*[_type == \"hero\"][0]","ms":12,"syncTags":["s1:abc"],"result":{"title":"Hello"}}`))
	})

	doc, err := One[hero](context.Background(), c, HeroQuery)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Hello", doc.Title)
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
		message string
	}{
		{
			name: "query error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"description":"unexpected token","type":"queryParseError"}}`))
			},
			status:  http.StatusBadRequest,
			message: "unexpected token",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			status:  http.StatusBadGateway,
			message: "empty response",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"result": [`))
			},
			status:  http.StatusOK,
			message: "decoding response",
		},
		{
			name: "wrong shape",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"result": {"role": "not a list"}}`))
			},
			status:  http.StatusOK,
			message: "decoding list result",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)

			_, err := Many[experience](context.Background(), c, ExperiencesQuery)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFetch))

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "experiences", fe.Query)
			assert.Equal(t, tt.status, fe.Status)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(Config{APIHost: srv.URL})
	_, err := One[hero](context.Background(), c, HeroQuery)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetch_ContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := One[hero](ctx, c, HeroQuery)
	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetch_Idempotent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[{"role":"Engineer","company":"X","order":1},{"role":"Lead","company":"Y","order":0}]}`))
	})

	first, err := Many[experience](context.Background(), c, ExperiencesQuery)
	require.NoError(t, err)
	second, err := Many[experience](context.Background(), c, ExperiencesQuery)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second fetch differs (-first +second):\n%s", diff)
	}
	assert.Len(t, first, 2)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"hero", "experiences", "projects", "about", "techSkills"} {
		q, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, q.Name)
		assert.NotEmpty(t, q.GROQ)
	}

	_, ok := Lookup("posts")
	assert.False(t, ok)

	assert.Equal(t, []string{"about", "experiences", "hero", "projects", "techSkills"}, Names())
	assert.Equal(t, List, ExperiencesQuery.Kind)
	assert.Equal(t, Singleton, AboutQuery.Kind)
}
