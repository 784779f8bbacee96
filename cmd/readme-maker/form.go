package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/readme-maker/internal/commands"
	"github.com/ruminaider/readme-maker/internal/profile"
	"github.com/ruminaider/readme-maker/internal/render"
)

// socialSep separates label and URL when socials are edited as text.
const socialSep = " | "

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithShowHelp(true)
}

func emailField(value string) error { return profile.CheckField(value, "email") }
func urlField(value string) error { return profile.CheckField(value, "url") }

// githubField accepts a handle as well as a URL; the renderer only needs
// the username.
func githubField(value string) error { return profile.CheckField(value, "github") }

// formatSocials renders socials one per line as "label | url".
func formatSocials(socials []profile.Social) string {
	lines := make([]string, 0, len(socials))
	for _, s := range socials {
		lines = append(lines, s.Label+socialSep+s.URL)
	}
	return strings.Join(lines, "\n")
}

// parseSocials is the inverse of formatSocials. A line without a separator
// is taken as a label with no URL; blank lines are dropped.
func parseSocials(raw string) []profile.Social {
	socials := []profile.Social{}
	for _, line := range profile.ParseLines(raw) {
		label, url, _ := strings.Cut(line, "|")
		socials = append(socials, profile.Social{
			Label: strings.TrimSpace(label),
			URL:   strings.TrimSpace(url),
		})
	}
	return socials
}

// runEditor walks the user through every section of the session.
func runEditor(s *commands.Session) error {
	rec := &s.Record

	socials := formatSocials(rec.Socials)
	tech := strings.Join(rec.Tech, ", ")
	certs := strings.Join(rec.Certifications, "\n")

	err := newForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&rec.Name),
			huh.NewInput().Title("Title").Placeholder("Software Engineer").Value(&rec.Title),
			huh.NewText().Title("About").Value(&rec.About),
			huh.NewInput().Title("Objective").Value(&rec.Objective),
		).Title("Profile"),
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(&rec.Email).Validate(emailField),
			huh.NewInput().Title("Phone").Value(&rec.Phone),
			huh.NewInput().Title("LinkedIn URL").Value(&rec.LinkedIn).Validate(urlField),
			huh.NewInput().Title("GitHub").
				Description("URL or username. Also used for stats cards and as the default QR target").
				Value(&rec.GitHub).Validate(githubField),
		).Title("Contact"),
		huh.NewGroup(
			huh.NewText().Title("Social links").
				Description("One per line: Label | URL").
				Value(&socials),
		).Title("Socials"),
		huh.NewGroup(
			huh.NewInput().Title("Tech").Description("Comma separated").Value(&tech),
			huh.NewInput().Title("Education").Value(&rec.Education),
			huh.NewInput().Title("CPI / GPA").Value(&rec.CPI),
			huh.NewText().Title("Certifications").Description("One per line").Value(&certs),
		).Title("Skills & Education"),
	).Run()
	if err != nil {
		return err
	}

	rec.Socials = parseSocials(socials)
	s.SetTech(tech)
	s.SetCertifications(certs)

	if err := editProjects(s); err != nil {
		return err
	}
	return editOutput(s)
}

const (
	projectEdit     = "edit"
	projectAdd      = "add"
	projectRemove   = "remove"
	projectExamples = "examples"
	projectClear    = "clear"
	projectDone     = "done"
)

// editProjects loops over the projects menu until the user is done.
func editProjects(s *commands.Session) error {
	for {
		fmt.Println(mutedStyle.Render(fmt.Sprintf("%d project(s)", len(s.Record.Projects))))

		options := []huh.Option[string]{huh.NewOption("Add project", projectAdd)}
		if len(s.Record.Projects) > 0 {
			options = append(options,
				huh.NewOption("Edit a project", projectEdit),
				huh.NewOption("Remove projects", projectRemove),
				huh.NewOption("Clear all projects", projectClear),
			)
		}
		options = append(options,
			huh.NewOption("Load example projects", projectExamples),
			huh.NewOption("Done", projectDone),
		)

		var action string
		err := newForm(huh.NewGroup(
			huh.NewSelect[string]().Title("Projects").Options(options...).Value(&action),
		)).Run()
		if err != nil {
			return err
		}

		switch action {
		case projectAdd:
			s.AddProject()
			if err := editProject(&s.Record.Projects[len(s.Record.Projects)-1]); err != nil {
				return err
			}
		case projectEdit:
			i, err := chooseProject(s.Record.Projects)
			if err != nil {
				return err
			}
			if err := editProject(&s.Record.Projects[i]); err != nil {
				return err
			}
		case projectRemove:
			idx, err := runPicker("Remove which projects?", projectNames(s.Record.Projects), false)
			if err != nil {
				return err
			}
			s.RemoveProjects(idx...)
		case projectExamples:
			s.LoadExampleProjects()
		case projectClear:
			s.ClearProjects()
		default:
			return nil
		}
	}
}

func projectNames(projects []profile.Project) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return names
}

func chooseProject(projects []profile.Project) (int, error) {
	options := make([]huh.Option[int], len(projects))
	for i, p := range projects {
		options[i] = huh.NewOption(fmt.Sprintf("%d. %s", i+1, p.Name), i)
	}
	var i int
	err := newForm(huh.NewGroup(
		huh.NewSelect[int]().Title("Which project?").Options(options...).Value(&i),
	)).Run()
	return i, err
}

func editProject(p *profile.Project) error {
	links := strings.Join(p.Links, "\n")
	err := newForm(huh.NewGroup(
		huh.NewInput().Title("Project name").Value(&p.Name).
			Validate(func(v string) error {
				if strings.TrimSpace(v) == "" {
					return errors.New("name is required")
				}
				return nil
			}),
		huh.NewText().Title("Links").Description("One URL per line").Value(&links),
		huh.NewInput().Title("Tags").Placeholder("Go, CLI").Value(&p.Tags),
		huh.NewText().Title("Description").Value(&p.Desc),
	).Title("Project")).Run()
	if err != nil {
		return err
	}
	p.Links = profile.ParseLines(links)
	return nil
}

// editOutput asks for the template and the QR settings.
func editOutput(s *commands.Session) error {
	options := make([]huh.Option[render.Template], 0, len(render.Templates()))
	for _, t := range render.Templates() {
		options = append(options, huh.NewOption(t.String(), t))
	}

	err := newForm(huh.NewGroup(
		huh.NewSelect[render.Template]().Title("Template").Options(options...).Value(&s.Template),
		huh.NewConfirm().Title("Generate a portfolio QR code?").Value(&s.IncludeQR),
	).Title("Output")).Run()
	if err != nil {
		return err
	}
	if !s.IncludeQR {
		return nil
	}

	return newForm(huh.NewGroup(
		huh.NewInput().Title("QR URL").
			Description("Leave blank to use your GitHub URL").
			Placeholder(s.Record.GitHub).
			Value(&s.QRURL).Validate(urlField),
	)).Run()
}
