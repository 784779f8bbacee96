// Package github imports a public GitHub profile and its most recently
// pushed repositories into a profile record.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/ruminaider/readme-maker/internal/profile"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"
	// DefaultTimeout bounds each request.
	DefaultTimeout = 10 * time.Second
	// MaxProjects is how many repositories become projects.
	MaxProjects = 8

	acceptHeader = "application/vnd.github.v3+json"
)

var (
	// ErrMissingInput is returned when no username is given. No request is
	// made in that case.
	ErrMissingInput = errors.New("github username is required")
	// ErrRemoteNotFound is returned when the profile lookup does not succeed.
	ErrRemoteNotFound = errors.New("github profile not found")
	// ErrRemoteUnavailable is returned when the profile request fails at the
	// transport level or times out.
	ErrRemoteUnavailable = errors.New("github unavailable")
)

// User holds the profile fields the import consumes.
type User struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Bio   string `json:"bio"`
}

// Repo holds the repository fields the import consumes.
type Repo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

// Client performs the two read-only requests an import needs.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a Client for the public GitHub API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserURL returns the profile endpoint for username.
func UserURL(baseURL, username string) string {
	return strings.TrimRight(baseURL, "/") + "/users/" + url.PathEscape(username)
}

// ReposURL returns the repository list endpoint for username, asking for
// up to 100 repositories ordered by most recent push.
func ReposURL(baseURL, username string) string {
	q := url.Values{}
	q.Set("per_page", "100")
	q.Set("sort", "pushed")
	return UserURL(baseURL, username) + "/repos?" + q.Encode()
}

// MapProfile converts a GitHub profile and repository list into a fresh
// record. Fields GitHub knows nothing about are left empty.
func MapProfile(user User, repos []Repo) profile.Record {
	name := user.Name
	if name == "" {
		name = user.Login
	}

	rec := profile.Record{
		Name:           name,
		Title:          user.Bio,
		About:          user.Bio,
		Socials:        []profile.Social{},
		Tech:           []string{},
		Certifications: []string{},
		Projects:       []profile.Project{},
	}
	for i, r := range repos {
		if i == MaxProjects {
			break
		}
		rec.Projects = append(rec.Projects, profile.Project{
			Name:  r.Name,
			Links: []string{r.HTMLURL},
			Tags:  r.Language,
			Desc:  r.Description,
		})
	}
	return rec
}

// Import fetches username's profile and repositories and maps them into a
// record. The repository list is best effort: if it cannot be fetched the
// record is returned with no projects.
func (c *Client) Import(ctx context.Context, username, token string) (profile.Record, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return profile.Record{}, ErrMissingInput
	}

	hc := c.authorizedClient(ctx, token)

	var user User
	status, err := c.getJSON(ctx, hc, UserURL(c.baseURL, username), &user)
	if err != nil {
		return profile.Record{}, fmt.Errorf("%w: fetching profile %q: %v", ErrRemoteUnavailable, username, err)
	}
	if status < 200 || status > 299 {
		return profile.Record{}, fmt.Errorf("%w: %q (status %d)", ErrRemoteNotFound, username, status)
	}

	var repos []Repo
	status, err = c.getJSON(ctx, hc, ReposURL(c.baseURL, username), &repos)
	switch {
	case err != nil:
		c.logger.Warn().Err(err).Str("username", username).Msg("repository list unavailable, importing without projects")
		repos = nil
	case status < 200 || status > 299:
		c.logger.Warn().Int("status", status).Str("username", username).Msg("repository list request failed, importing without projects")
		repos = nil
	}

	rec := MapProfile(user, repos)
	c.logger.Debug().Str("username", username).Int("projects", len(rec.Projects)).Msg("github import complete")
	return rec, nil
}

// authorizedClient wraps the base client with a static token source when a
// token is supplied.
func (c *Client) authorizedClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return c.httpClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

// getJSON issues a GET and decodes a 2xx body into out. Non-2xx statuses
// are returned without decoding.
func (c *Client) getJSON(ctx context.Context, hc *http.Client, endpoint string, out any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
	}
	return resp.StatusCode, nil
}
