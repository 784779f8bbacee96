package profile

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultName is used whenever a record has no display name.
const DefaultName = "Your Name"

// DefaultObjective is the objective sentence of a fresh record.
const DefaultObjective = "I am looking for internships or entry-level roles to build and learn."

// Record is the full set of profile data a README is rendered from.
type Record struct {
	Name           string    `json:"name" yaml:"name"`
	Title          string    `json:"title" yaml:"title"`
	About          string    `json:"about" yaml:"about"`
	Socials        []Social  `json:"socials" yaml:"socials"`
	Tech           []string  `json:"tech" yaml:"tech"`
	Education      string    `json:"education" yaml:"education"`
	CPI            string    `json:"cpi" yaml:"cpi"`
	Certifications []string  `json:"certifications" yaml:"certifications"`
	Projects       []Project `json:"projects" yaml:"projects"`
	Objective      string    `json:"objective,omitempty" yaml:"objective,omitempty"`
	Phone          string    `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email          string    `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	LinkedIn       string    `json:"linkedin,omitempty" yaml:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub         string    `json:"github,omitempty" yaml:"github,omitempty" validate:"omitempty,github"`
}

// Social is one labelled link. Entries with an empty URL are kept in the
// record but never rendered.
type Social struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Project is a single portfolio entry.
type Project struct {
	Name  string   `json:"name" yaml:"name"`
	Links []string `json:"links" yaml:"links"`
	Tags  string   `json:"tags" yaml:"tags"`
	Desc  string   `json:"desc" yaml:"desc"`
}

// New returns a record with the defaults a fresh session starts from.
func New() Record {
	return Record{
		Name:      DefaultName,
		Objective: DefaultObjective,
		Socials: []Social{
			{Label: "LinkedIn", URL: ""},
			{Label: "Email", URL: "your-email@example.com"},
		},
		Tech:           []string{},
		Certifications: []string{},
		Projects:       []Project{},
	}
}

// Normalize fills in the name default and replaces nil sequences with
// empty ones.
func (r *Record) Normalize() {
	if strings.TrimSpace(r.Name) == "" {
		r.Name = DefaultName
	}
	if r.Socials == nil {
		r.Socials = []Social{}
	}
	if r.Tech == nil {
		r.Tech = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].Links == nil {
			r.Projects[i].Links = []string{}
		}
	}
}

// CleanLinks returns the project's links with blank entries removed.
func (p Project) CleanLinks() []string {
	links := make([]string, 0, len(p.Links))
	for _, l := range p.Links {
		if strings.TrimSpace(l) != "" {
			links = append(links, l)
		}
	}
	return links
}

// ParseTech splits comma-separated skill input into trimmed, non-empty tags.
func ParseTech(raw string) []string {
	return splitTrim(raw, ",")
}

// ParseLines splits newline-separated input (certifications) into
// trimmed, non-empty entries.
func ParseLines(raw string) []string {
	return splitTrim(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}

func splitTrim(raw, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, sep) {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ExampleProjects returns the sample project list offered to new users.
func ExampleProjects() []Project {
	return []Project{
		{Name: "Example Project", Links: []string{""}, Tags: "Example", Desc: "A sample project entry."},
	}
}

// NewProject returns the placeholder project added by "add project".
func NewProject() Project {
	return Project{Name: "New Project", Links: []string{""}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("github", func(fl validator.FieldLevel) bool {
		return IsGitHubRef(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

var githubHandle = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,38})$`)

// IsGitHubRef reports whether s names a GitHub account: a bare handle, a
// scheme-less github.com/<handle> path, or an absolute http(s) URL.
func IsGitHubRef(s string) bool {
	s = strings.TrimSpace(s)
	if u, err := url.Parse(s); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return true
	}
	s = strings.TrimPrefix(s, "www.")
	if rest, ok := strings.CutPrefix(s, "github.com/"); ok {
		handle, _, _ := strings.Cut(strings.Trim(rest, "/"), "/")
		return githubHandle.MatchString(handle)
	}
	return githubHandle.MatchString(s)
}

// tagNouns names validator tags in messages.
var tagNouns = map[string]string{
	"github": "GitHub URL or username",
}

func tagNoun(tag string) string {
	if noun, ok := tagNouns[tag]; ok {
		return noun
	}
	return tag
}

// Validate reports contact fields that do not look like what they claim
// to be. Problems are advisory; rendering never depends on them.
func Validate(r Record) []string {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s: %q is not a valid %s", strings.ToLower(fe.Field()), fe.Value(), tagNoun(fe.Tag())))
	}
	return problems
}

// CheckField validates a single value against a validator tag such as
// "email", "url" or "github". Blank values pass.
func CheckField(value, tag string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if err := validate.Var(value, tag); err != nil {
		return fmt.Errorf("%q is not a valid %s", value, tagNoun(tag))
	}
	return nil
}
