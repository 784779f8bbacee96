package commands

import (
	"strings"

	"github.com/ruminaider/readme-maker/internal/config"
	"github.com/ruminaider/readme-maker/internal/profile"
	"github.com/ruminaider/readme-maker/internal/render"
)

// Session is the state of one editing session: the record being edited and
// the output choices. The shell owns it and passes it to every operation.
type Session struct {
	Record    profile.Record
	Template  render.Template
	IncludeQR bool
	// QRURL is encoded into the QR image. When empty the record's GitHub
	// URL is used.
	QRURL string
}

// NewSession starts a session with a fresh record and the configured
// output choices.
func NewSession(cfg config.Config) (*Session, error) {
	tmpl, err := render.ParseTemplate(cfg.Template)
	if err != nil {
		return nil, err
	}
	return &Session{
		Record:    profile.New(),
		Template:  tmpl,
		IncludeQR: cfg.IncludeQR,
		QRURL:     cfg.QRURL,
	}, nil
}

// Replace swaps in a whole record, as loading a preset or importing does.
func (s *Session) Replace(rec profile.Record) {
	rec.Normalize()
	s.Record = rec
}

// AddSocial appends a placeholder social link.
func (s *Session) AddSocial() {
	s.Record.Socials = append(s.Record.Socials, profile.Social{Label: "New"})
}

// RemoveSocial drops the social link at index i. Out-of-range indexes are
// ignored.
func (s *Session) RemoveSocial(i int) {
	if i < 0 || i >= len(s.Record.Socials) {
		return
	}
	s.Record.Socials = append(s.Record.Socials[:i], s.Record.Socials[i+1:]...)
}

// AddProject appends a placeholder project.
func (s *Session) AddProject() {
	s.Record.Projects = append(s.Record.Projects, profile.NewProject())
}

// RemoveProjects drops the projects at the given indexes.
func (s *Session) RemoveProjects(indexes ...int) {
	drop := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		drop[i] = true
	}
	kept := make([]profile.Project, 0, len(s.Record.Projects))
	for i, p := range s.Record.Projects {
		if !drop[i] {
			kept = append(kept, p)
		}
	}
	s.Record.Projects = kept
}

// ClearProjects removes every project.
func (s *Session) ClearProjects() {
	s.Record.Projects = []profile.Project{}
}

// LoadExampleProjects replaces the projects with the sample list.
func (s *Session) LoadExampleProjects() {
	s.Record.Projects = profile.ExampleProjects()
}

// SetTech replaces the skill tags from comma-separated input.
func (s *Session) SetTech(raw string) {
	s.Record.Tech = profile.ParseTech(raw)
}

// SetCertifications replaces the certifications from one-per-line input.
func (s *Session) SetCertifications(raw string) {
	s.Record.Certifications = profile.ParseLines(raw)
}

// QRTarget returns the URL the QR image should encode, or "" if none. A
// GitHub handle without a scheme is expanded to its profile URL.
func (s *Session) QRTarget() string {
	if u := strings.TrimSpace(s.QRURL); u != "" {
		return u
	}
	gh := strings.TrimSpace(s.Record.GitHub)
	if gh == "" || strings.Contains(gh, "://") {
		return gh
	}
	return "https://github.com/" + render.GitHubUsername(gh)
}
