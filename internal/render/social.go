package render

import (
	"fmt"
	"strings"

	"github.com/ruminaider/readme-maker/internal/profile"
)

// socialRule pairs a label matcher with the badge it produces. Rules are
// evaluated in order and the first match wins.
type socialRule struct {
	match  func(label string) bool
	render func(s profile.Social) string
}

func labelContains(platform string) func(string) bool {
	return func(label string) bool {
		return strings.Contains(strings.ToLower(label), platform)
	}
}

var socialRules = []socialRule{
	{
		match: labelContains("instagram"),
		render: func(s profile.Social) string {
			return fmt.Sprintf("[![Instagram](https://img.shields.io/badge/Instagram-%%23E4405F.svg?logo=Instagram&logoColor=white)](%s)", s.URL)
		},
	},
	{
		match: labelContains("linkedin"),
		render: func(s profile.Social) string {
			return fmt.Sprintf("[![LinkedIn](https://img.shields.io/badge/LinkedIn-%%230077B5.svg?logo=linkedin&logoColor=white)](%s)", s.URL)
		},
	},
	{
		match: labelContains("email"),
		render: func(s profile.Social) string {
			return fmt.Sprintf("[![email](https://img.shields.io/badge/Email-D14836?logo=gmail&logoColor=white)](mailto:%s)", s.URL)
		},
	},
}

// socialBadge renders one social entry for the fancy template, falling
// back to a plain markdown link when no rule matches.
func socialBadge(s profile.Social) string {
	for _, rule := range socialRules {
		if rule.match(s.Label) {
			return rule.render(s)
		}
	}
	return fmt.Sprintf("[%s](%s)", socialLabel(s), s.URL)
}
