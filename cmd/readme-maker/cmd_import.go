package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ruminaider/readme-maker/internal/commands"
	"github.com/ruminaider/readme-maker/internal/render"
	"github.com/spf13/cobra"
)

// tokenEnv holds an optional GitHub token, usually set through .env.
const tokenEnv = "GITHUB_TOKEN"

type importFlags struct {
	token    string
	saveAs   string
	pick     bool
	template render.Template
	out      string
	stdout   bool
	noWrite  bool
}

var importOpts importFlags

var importCmd = &cobra.Command{
	Use:   "import <username>",
	Short: "Build a profile from a public GitHub account",
	Long: `Fetch a GitHub profile and its most recently pushed repositories (up to 8)
and generate a README from them. The imported profile replaces any other data;
use --save-as to keep it as a preset for later editing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		opts := importOpts
		if opts.token == "" {
			opts.token = os.Getenv(tokenEnv)
		}
		if !cmd.Flags().Changed("template") {
			opts.template, err = render.ParseTemplate(a.cfg.Template)
			if err != nil {
				return err
			}
		}
		if !cmd.Flags().Changed("out") {
			opts.out = a.cfg.OutputDir
		}

		var pick func([]string) ([]int, error)
		if opts.pick {
			pick = func(names []string) ([]int, error) {
				return runPicker("Keep which repositories?", names, true)
			}
		}
		return runImport(cmd.Context(), a, a.githubClient(), args[0], opts, pick, os.Stdout)
	},
}

// runImport imports username into a new session, optionally narrows the
// projects with pick, then saves and writes as requested.
func runImport(ctx context.Context, a *app, imp commands.Importer, username string, opts importFlags, pick func([]string) ([]int, error), w io.Writer) error {
	s, err := commands.NewSession(a.cfg)
	if err != nil {
		return err
	}
	if err := commands.Import(ctx, imp, s, username, opts.token); err != nil {
		return err
	}
	s.Template = opts.template

	if pick != nil && len(s.Record.Projects) > 0 {
		keep, err := pick(projectNames(s.Record.Projects))
		if err != nil {
			return err
		}
		if keep != nil {
			s.RemoveProjects(dropped(len(s.Record.Projects), keep)...)
		}
	}

	status := w
	if opts.stdout {
		status = os.Stderr
	}
	fmt.Fprintf(status, "Imported %s: %d project(s)\n", strings.TrimSpace(username), len(s.Record.Projects))

	if opts.saveAs != "" {
		saved, err := commands.SavePreset(a.store, s, opts.saveAs)
		if err != nil {
			return err
		}
		printSuccess(status, "Saved preset %q", saved)
	}
	if opts.noWrite {
		return nil
	}
	return writeOutput(a.log, s, opts.out, opts.stdout, w)
}

// dropped returns the indexes in [0,n) that are not in keep.
func dropped(n int, keep []int) []int {
	kept := make(map[int]bool, len(keep))
	for _, i := range keep {
		kept[i] = true
	}
	var out []int
	for i := 0; i < n; i++ {
		if !kept[i] {
			out = append(out, i)
		}
	}
	return out
}

func init() {
	importCmd.Flags().StringVar(&importOpts.token, "token", "", "GitHub token (default $GITHUB_TOKEN)")
	importCmd.Flags().StringVar(&importOpts.saveAs, "save-as", "", "Also save the imported profile as this preset")
	importCmd.Flags().BoolVar(&importOpts.pick, "pick", false, "Choose which repositories become projects")
	importCmd.Flags().Var(&importOpts.template, "template", "Template: clean-minimal, fancy-animated or resume-style")
	importCmd.Flags().StringVarP(&importOpts.out, "out", "o", ".", "Output directory")
	importCmd.Flags().BoolVar(&importOpts.stdout, "stdout", false, "Print the markdown instead of writing files")
	importCmd.Flags().BoolVar(&importOpts.noWrite, "no-write", false, "Only import (use with --save-as)")
}
