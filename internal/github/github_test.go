package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ruminaider/readme-maker/internal/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{"login": "ada", "name": "Ada Lovelace", "bio": "First programmer"}`

func reposJSON(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"name": "repo%d", "html_url": "https://github.com/ada/repo%d", "language": "Go", "description": "desc %d"}`, i, i, i)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

type fakeAPI struct {
	userStatus  int
	userBody    string
	reposStatus int
	reposBody   string
	calls       atomic.Int32
	reposCalls  atomic.Int32

	mu         sync.Mutex
	lastAuth   string
	lastAccept string
	lastQuery  string
}

func (f *fakeAPI) seen() (auth, accept, query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAuth, f.lastAccept, f.lastQuery
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.mu.Lock()
		f.lastAuth = r.Header.Get("Authorization")
		f.lastAccept = r.Header.Get("Accept")
		if strings.HasSuffix(r.URL.Path, "/repos") {
			f.lastQuery = r.URL.RawQuery
		}
		f.mu.Unlock()
		switch {
		case strings.HasSuffix(r.URL.Path, "/repos"):
			f.reposCalls.Add(1)
			w.WriteHeader(f.reposStatus)
			fmt.Fprint(w, f.reposBody)
		default:
			w.WriteHeader(f.userStatus)
			fmt.Fprint(w, f.userBody)
		}
	})
}

func newServer(t *testing.T, f *fakeAPI) *github.Client {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return github.NewClient(github.WithBaseURL(srv.URL), github.WithHTTPClient(srv.Client()))
}

func TestImport_MissingUsername(t *testing.T) {
	f := &fakeAPI{userStatus: 200, userBody: userJSON}
	c := newServer(t, f)

	for _, username := range []string{"", "   "} {
		_, err := c.Import(context.Background(), username, "")
		assert.ErrorIs(t, err, github.ErrMissingInput)
	}
	assert.Equal(t, int32(0), f.calls.Load())
}

func TestImport_Success(t *testing.T) {
	f := &fakeAPI{userStatus: 200, userBody: userJSON, reposStatus: 200, reposBody: reposJSON(3)}
	c := newServer(t, f)

	rec, err := c.Import(context.Background(), "ada", "")
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", rec.Name)
	assert.Equal(t, "First programmer", rec.Title)
	assert.Equal(t, "First programmer", rec.About)
	require.Len(t, rec.Projects, 3)
	assert.Equal(t, "repo0", rec.Projects[0].Name)
	assert.Equal(t, []string{"https://github.com/ada/repo0"}, rec.Projects[0].Links)
	assert.Equal(t, "Go", rec.Projects[0].Tags)
	assert.Equal(t, "desc 0", rec.Projects[0].Desc)
	assert.Empty(t, rec.Socials)
	assert.Empty(t, rec.Tech)
	assert.Empty(t, rec.Certifications)

	auth, accept, query := f.seen()
	assert.Equal(t, "per_page=100&sort=pushed", query)
	assert.Equal(t, "application/vnd.github.v3+json", accept)
	assert.Empty(t, auth)
}

func TestImport_TruncatesToEightProjects(t *testing.T) {
	f := &fakeAPI{userStatus: 200, userBody: userJSON, reposStatus: 200, reposBody: reposJSON(20)}
	c := newServer(t, f)

	rec, err := c.Import(context.Background(), "ada", "")
	require.NoError(t, err)
	require.Len(t, rec.Projects, github.MaxProjects)
	assert.Equal(t, "repo7", rec.Projects[7].Name)
}

func TestImport_SendsToken(t *testing.T) {
	f := &fakeAPI{userStatus: 200, userBody: userJSON, reposStatus: 200, reposBody: "[]"}
	c := newServer(t, f)

	_, err := c.Import(context.Background(), "ada", "s3cret")
	require.NoError(t, err)
	auth, accept, _ := f.seen()
	assert.Equal(t, "Bearer s3cret", auth)
	assert.Equal(t, "application/vnd.github.v3+json", accept)
}

func TestImport_ProfileNotFound(t *testing.T) {
	for _, reposStatus := range []int{200, 500} {
		t.Run(fmt.Sprintf("repos %d", reposStatus), func(t *testing.T) {
			f := &fakeAPI{userStatus: 404, userBody: `{"message": "Not Found"}`, reposStatus: reposStatus, reposBody: reposJSON(2)}
			c := newServer(t, f)

			_, err := c.Import(context.Background(), "nobody", "")
			assert.ErrorIs(t, err, github.ErrRemoteNotFound)
			assert.Equal(t, int32(0), f.reposCalls.Load())
		})
	}
}

func TestImport_RateLimitedProfile(t *testing.T) {
	f := &fakeAPI{userStatus: 403, userBody: `{"message": "rate limited"}`}
	c := newServer(t, f)

	_, err := c.Import(context.Background(), "ada", "")
	assert.ErrorIs(t, err, github.ErrRemoteNotFound)
}

func TestImport_ReposFailureIsPartialSuccess(t *testing.T) {
	f := &fakeAPI{userStatus: 200, userBody: userJSON, reposStatus: 500, reposBody: "boom"}
	c := newServer(t, f)

	rec, err := c.Import(context.Background(), "ada", "")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", rec.Name)
	assert.NotNil(t, rec.Projects)
	assert.Empty(t, rec.Projects)
}

func TestImport_ReposMalformedIsPartialSuccess(t *testing.T) {
	f := &fakeAPI{userStatus: 200, userBody: userJSON, reposStatus: 200, reposBody: `{"not": "a list"}`}
	c := newServer(t, f)

	rec, err := c.Import(context.Background(), "ada", "")
	require.NoError(t, err)
	assert.Empty(t, rec.Projects)
}

func TestImport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := github.NewClient(github.WithBaseURL(base))
	_, err := c.Import(context.Background(), "ada", "")
	assert.ErrorIs(t, err, github.ErrRemoteUnavailable)
}

func TestImport_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(block) })

	c := github.NewClient(github.WithBaseURL(srv.URL), github.WithTimeout(50*time.Millisecond))
	_, err := c.Import(context.Background(), "ada", "")
	assert.ErrorIs(t, err, github.ErrRemoteUnavailable)
}

func TestMapProfile(t *testing.T) {
	t.Run("name falls back to login", func(t *testing.T) {
		rec := github.MapProfile(github.User{Login: "ada"}, nil)
		assert.Equal(t, "ada", rec.Name)
		assert.Empty(t, rec.Title)
		assert.NotNil(t, rec.Projects)
	})

	t.Run("name falls back to empty", func(t *testing.T) {
		rec := github.MapProfile(github.User{}, nil)
		assert.Equal(t, "", rec.Name)
	})

	t.Run("missing language and description", func(t *testing.T) {
		rec := github.MapProfile(github.User{Login: "ada"}, []github.Repo{{Name: "r", HTMLURL: "https://x"}})
		require.Len(t, rec.Projects, 1)
		assert.Equal(t, "", rec.Projects[0].Tags)
		assert.Equal(t, "", rec.Projects[0].Desc)
	})
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "https://api.github.com/users/ada", github.UserURL(github.DefaultBaseURL, "ada"))
	assert.Equal(t, "https://api.github.com/users/ada/repos?per_page=100&sort=pushed", github.ReposURL(github.DefaultBaseURL+"/", "ada"))
	assert.Equal(t, "https://api.github.com/users/a%2Fb", github.UserURL(github.DefaultBaseURL, "a/b"))
}
