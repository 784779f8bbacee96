// Package render turns a profile record into README markdown using one of
// the fixed templates. Rendering is pure: the same record, template and
// options always produce the same text.
package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ruminaider/readme-maker/internal/profile"
)

// Options controls the parts of the output that do not come from the
// profile record itself.
type Options struct {
	// IncludeQR adds a QR image reference (fancy-animated only).
	IncludeQR bool
	// QRRef is the file name or URL the QR image line points at. No QR line
	// is emitted when it is empty.
	QRRef string
}

type renderFunc func(rec profile.Record, opts Options) string

var renderers = map[Template]renderFunc{
	CleanMinimal:  renderCleanMinimal,
	FancyAnimated: renderFancyAnimated,
	ResumeStyle:   renderResumeStyle,
}

// Render produces the README text for rec using template t.
func Render(rec profile.Record, t Template, opts Options) (string, error) {
	fn, ok := renderers[t]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, t)
	}
	return fn(rec, opts), nil
}

// Badge returns the shields.io badge reference for a skill tag. The tag is
// query-escaped and used as both label and logo name.
func Badge(tag string) string {
	safe := url.QueryEscape(tag)
	return fmt.Sprintf("![%s](https://img.shields.io/badge/%s-informational?style=for-the-badge&logo=%s&logoColor=white)", tag, safe, safe)
}

// GitHubUsername extracts the account name from a GitHub profile URL or a
// bare handle: the last path segment after trailing slashes are trimmed.
func GitHubUsername(github string) string {
	s := strings.TrimRight(strings.TrimSpace(github), "/")
	if s == "" {
		return ""
	}
	return s[strings.LastIndex(s, "/")+1:]
}

func displayName(rec profile.Record) string {
	if strings.TrimSpace(rec.Name) == "" {
		return profile.DefaultName
	}
	return rec.Name
}

func socialLabel(s profile.Social) string {
	if s.Label == "" {
		return "Link"
	}
	return s.Label
}

func hasURL(s profile.Social) bool {
	return strings.TrimSpace(s.URL) != ""
}

func badges(tags []string) string {
	refs := make([]string, len(tags))
	for i, t := range tags {
		refs[i] = Badge(t)
	}
	return strings.Join(refs, " ")
}

func renderCleanMinimal(rec profile.Record, _ Options) string {
	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }

	add("# " + displayName(rec))
	if rec.Title != "" {
		add("**" + rec.Title + "**")
	}
	add("\n---\n")
	if rec.About != "" {
		add(rec.About + "\n")
	}

	var links []string
	for _, s := range rec.Socials {
		if hasURL(s) {
			links = append(links, fmt.Sprintf("[%s](%s)", socialLabel(s), s.URL))
		}
	}
	if len(links) > 0 {
		add(strings.Join(links, " | ") + "\n")
	}

	if len(rec.Tech) > 0 {
		add("\n**Tech:**\n", badges(rec.Tech)+"\n")
	}

	if len(rec.Projects) > 0 {
		add("\n---\n\n## Projects\n")
		for _, p := range rec.Projects {
			add("### " + p.Name + "\n")
			if p.Tags != "" {
				add("*" + p.Tags + "*  \n")
			}
			for _, l := range p.CleanLinks() {
				add("[Repo / Link](" + l + ")  \n")
			}
			if p.Desc != "" {
				add(p.Desc + "\n")
			}
		}
	}

	add("\n---\n", "Contact:  \n")
	if rec.Email != "" {
		add("- Email: " + rec.Email)
	}
	if rec.Phone != "" {
		add("- Phone: " + rec.Phone)
	}
	if rec.GitHub != "" {
		add("- GitHub: " + rec.GitHub)
	}
	return strings.Join(lines, "\n")
}

func renderFancyAnimated(rec profile.Record, opts Options) string {
	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }

	add("# 👋 Hi, I'm **" + displayName(rec) + "**")
	if rec.Title != "" {
		add("### " + rec.Title)
	}
	add("\n---\n")
	if rec.About != "" {
		add(rec.About + "\n")
	}

	var socials []string
	for _, s := range rec.Socials {
		if hasURL(s) {
			socials = append(socials, socialBadge(s))
		}
	}
	if len(socials) > 0 {
		add(strings.Join(socials, " ") + "\n")
	}

	if gh := GitHubUsername(rec.GitHub); gh != "" {
		add("\n---\n\n## 📊 GitHub Highlights\n")
		add(
			"![](https://github-readme-stats.vercel.app/api?username="+gh+"&show_icons=true&theme=radical&count_private=true)\n",
			"![](https://github-readme-stats.vercel.app/api/top-langs/?username="+gh+"&layout=compact&theme=radical)\n",
			"![](https://github-readme-streak-stats.herokuapp.com/?user="+gh+"&theme=radical)\n",
		)
	}

	if len(rec.Tech) > 0 {
		add("\n---\n\n# 💻 Tech Stack\n", badges(rec.Tech)+"\n")
	}

	if len(rec.Projects) > 0 {
		add("\n---\n\n# 🚀 Selected Projects\n")
		for _, p := range rec.Projects {
			add("### 🔹 " + p.Name + "  \n")
			if p.Tags != "" {
				add("**Category:** " + p.Tags + "  \n")
			}
			for _, l := range p.CleanLinks() {
				add("[Link](" + l + ")  \n")
			}
			if p.Desc != "" {
				add(p.Desc + "  \n")
			}
			add("\n")
		}
	}

	if opts.IncludeQR && opts.QRRef != "" {
		add("\n---\n", "## 🔗 Portfolio QR  \n![]("+opts.QRRef+")  \n")
	}

	add("\n---\n", "Contact & Links  \n")
	if rec.Email != "" {
		add("- Email: " + rec.Email + "  ")
	}
	if rec.LinkedIn != "" {
		add("- LinkedIn: " + rec.LinkedIn + "  ")
	}
	if rec.GitHub != "" {
		add("- GitHub: " + rec.GitHub + "  ")
	}
	return strings.Join(lines, "\n")
}

func renderResumeStyle(rec profile.Record, _ Options) string {
	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }

	if rec.Title != "" {
		add("# " + displayName(rec) + " \n**" + rec.Title + "**\n")
	} else {
		add("# " + displayName(rec) + "\n")
	}
	add("---\n")
	if rec.About != "" {
		add("**Profile:** " + rec.About + "\n")
	}
	if len(rec.Tech) > 0 {
		add("\n**Skills:**\n", strings.Join(rec.Tech, ", ")+"\n")
	}
	if rec.Education != "" {
		add("\n**Education:**\n")
		if rec.CPI != "" {
			add("- " + rec.Education + " (CPI: " + rec.CPI + ")\n")
		} else {
			add("- " + rec.Education + "\n")
		}
	}
	if len(rec.Certifications) > 0 {
		add("\n**Certifications:**\n")
		for _, c := range rec.Certifications {
			add("- " + c + "\n")
		}
	}
	if len(rec.Projects) > 0 {
		add("\n**Projects:**\n")
		for _, p := range rec.Projects {
			add("- **" + p.Name + "** — " + p.Desc + " (" + strings.Join(p.CleanLinks(), ", ") + ")\n")
		}
	}

	add("\n**Contact:**\n")
	if rec.Email != "" {
		add("- Email: " + rec.Email + "\n")
	}
	if rec.Phone != "" {
		add("- Phone: " + rec.Phone + "\n")
	}
	if rec.LinkedIn != "" {
		add("- LinkedIn: " + rec.LinkedIn + "\n")
	}
	if rec.GitHub != "" {
		add("- GitHub: " + rec.GitHub + "\n")
	}
	return strings.Join(lines, "\n")
}
