package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ruminaider/readme-maker/internal/commands"
	"github.com/ruminaider/readme-maker/internal/render"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	preset   string
	file     string
	template render.Template
	qrURL    string
	noQR     bool
	out      string
	stdout   bool
}

var renderOpts renderFlags

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate a README from a preset or a profile file",
	Example: `  readme-maker render --preset mine
  readme-maker render --file profile.yaml --template resume-style --stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		opts := renderOpts
		if !cmd.Flags().Changed("template") {
			opts.template, err = render.ParseTemplate(a.cfg.Template)
			if err != nil {
				return err
			}
		}
		if !cmd.Flags().Changed("out") {
			opts.out = a.cfg.OutputDir
		}
		return runRender(a, opts, os.Stdout)
	},
}

func runRender(a *app, opts renderFlags, w io.Writer) error {
	s, err := commands.NewSession(a.cfg)
	if err != nil {
		return err
	}

	switch {
	case opts.preset != "":
		if err := commands.LoadPreset(a.store, s, opts.preset); err != nil {
			return err
		}
	case opts.file != "":
		rec, err := commands.ReadRecordFile(opts.file)
		if err != nil {
			return err
		}
		s.Replace(rec)
	default:
		return fmt.Errorf("nothing to render: pass --preset or --file")
	}

	s.Template = opts.template
	if opts.qrURL != "" {
		s.QRURL = opts.qrURL
	}
	if opts.noQR {
		s.IncludeQR = false
	}

	reportProblems(a.log, s.Record)
	return writeOutput(a.log, s, opts.out, opts.stdout, w)
}

func init() {
	renderCmd.Flags().StringVar(&renderOpts.preset, "preset", "", "Render a saved preset")
	renderCmd.Flags().StringVar(&renderOpts.file, "file", "", "Render a profile file (.json, .yaml)")
	renderCmd.Flags().Var(&renderOpts.template, "template", "Template: clean-minimal, fancy-animated or resume-style")
	renderCmd.Flags().StringVar(&renderOpts.qrURL, "qr-url", "", "URL to encode in the QR code (default: GitHub URL)")
	renderCmd.Flags().BoolVar(&renderOpts.noQR, "no-qr", false, "Skip the QR code")
	renderCmd.Flags().StringVarP(&renderOpts.out, "out", "o", ".", "Output directory")
	renderCmd.Flags().BoolVar(&renderOpts.stdout, "stdout", false, "Print the markdown instead of writing files")
	renderCmd.MarkFlagsMutuallyExclusive("preset", "file")
}
