package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ruminaider/readme-maker/internal/render"
	"github.com/spf13/cobra"
)

var templateDescriptions = map[render.Template]string{
	render.CleanMinimal:  "Heading, social links, tech badges, projects and a contact list",
	render.FancyAnimated: "Emoji headings, social badges, GitHub stats cards and an optional QR code",
	render.ResumeStyle:   "Plain resume layout: profile, skills, education, certifications, projects",
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available README templates",
	Run: func(cmd *cobra.Command, args []string) {
		listTemplates(os.Stdout)
	},
}

func listTemplates(w io.Writer) {
	for _, t := range render.Templates() {
		fmt.Fprintf(w, "  %-16s %s\n", t.String(), templateDescriptions[t])
	}
}
