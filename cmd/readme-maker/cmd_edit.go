package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/readme-maker/internal/commands"
	"github.com/ruminaider/readme-maker/internal/presets"
	"github.com/spf13/cobra"
)

var (
	editPreset string
	editOut    string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Fill in your profile interactively and generate a README",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		s, err := commands.NewSession(a.cfg)
		if err != nil {
			return err
		}

		start := editPreset
		if start == "" {
			if start, err = chooseStart(a.store); err != nil {
				return quietAbort(err)
			}
		}
		if start != "" {
			if err := commands.LoadPreset(a.store, s, start); err != nil {
				return err
			}
			printSuccess(os.Stdout, "Loaded preset %q", start)
		}

		if err := runEditor(s); err != nil {
			return quietAbort(err)
		}
		reportProblems(a.log, s.Record)

		doc, err := commands.Generate(s)
		if err != nil {
			return err
		}
		fmt.Println(preview(doc.Markdown))

		out := editOut
		if out == "" {
			out = a.cfg.OutputDir
		}
		return finishEdit(a, s, out)
	},
}

// chooseStart offers the saved presets as starting points. It returns ""
// for a blank profile.
func chooseStart(store *presets.Store) (string, error) {
	names, err := store.Names()
	if err != nil || len(names) == 0 {
		return "", err
	}

	options := []huh.Option[string]{huh.NewOption("Blank profile", "")}
	for _, name := range names {
		options = append(options, huh.NewOption("Preset: "+name, name))
	}
	var start string
	err = newForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Start from").Options(options...).Value(&start),
	)).Run()
	return start, err
}

// finishEdit asks whether to write the files and whether to keep the
// profile as a preset.
func finishEdit(a *app, s *commands.Session, out string) error {
	write := true
	save := false
	err := newForm(huh.NewGroup(
		huh.NewConfirm().Title(fmt.Sprintf("Write README.md to %s?", out)).Value(&write),
		huh.NewConfirm().Title("Save this profile as a preset?").Value(&save),
	)).Run()
	if err != nil {
		return quietAbort(err)
	}

	if write {
		if err := writeOutput(a.log, s, out, false, os.Stdout); err != nil {
			return err
		}
	}
	if !save {
		return nil
	}

	var name string
	err = newForm(huh.NewGroup(
		huh.NewInput().Title("Preset name").
			Description("Leave blank for a generated name").
			Value(&name),
	)).Run()
	if err != nil {
		return quietAbort(err)
	}
	saved, err := commands.SavePreset(a.store, s, name)
	if err != nil {
		return err
	}
	printSuccess(os.Stdout, "Saved preset %q", saved)
	return nil
}

// quietAbort turns a cancelled form into a clean exit.
func quietAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}

func init() {
	editCmd.Flags().StringVar(&editPreset, "preset", "", "Start from a saved preset")
	editCmd.Flags().StringVarP(&editOut, "out", "o", "", "Output directory (default from config)")
}
