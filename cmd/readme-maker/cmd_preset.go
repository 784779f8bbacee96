package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ruminaider/readme-maker/internal/commands"
	"github.com/ruminaider/readme-maker/internal/presets"
	"github.com/spf13/cobra"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved profile presets",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return listPresets(a.store, os.Stdout)
	},
}

func listPresets(store *presets.Store, w io.Writer) error {
	all, err := store.LoadAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No presets saved.")
		return nil
	}
	names, err := store.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %s\n", name, presets.Summary(all[name]))
	}
	return nil
}

var presetShowYAML bool

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a preset as JSON (or YAML)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return showPreset(a, args[0], presetShowYAML, os.Stdout)
	},
}

func showPreset(a *app, name string, asYAML bool, w io.Writer) error {
	s, err := commands.NewSession(a.cfg)
	if err != nil {
		return err
	}
	if err := commands.LoadPreset(a.store, s, name); err != nil {
		return err
	}
	data, err := commands.MarshalRecord(s.Record, asYAML)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

var presetSaveFile string

var presetSaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save a profile file as a preset",
	Long:  "Save a profile file (.json, .yaml) as a preset. Without a name, a name like preset-1a2b3c is generated. An existing preset with the same name is overwritten.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var name string
		if len(args) == 1 {
			name = args[0]
		}
		return savePreset(a, name, presetSaveFile, os.Stdout)
	},
}

func savePreset(a *app, name, file string, w io.Writer) error {
	rec, err := commands.ReadRecordFile(file)
	if err != nil {
		return err
	}
	s, err := commands.NewSession(a.cfg)
	if err != nil {
		return err
	}
	s.Replace(rec)
	reportProblems(a.log, s.Record)

	saved, err := commands.SavePreset(a.store, s, name)
	if err != nil {
		return err
	}
	a.log.Debug().Str("preset", saved).Str("file", file).Msg("preset saved")
	printSuccess(w, "Saved preset %q", saved)
	return nil
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete [name...]",
	Short: "Delete presets (pick interactively when no names are given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		names := args
		if len(names) == 0 {
			available, err := a.store.Names()
			if err != nil {
				return err
			}
			if len(available) == 0 {
				fmt.Println("No presets saved.")
				return nil
			}
			names, err = pickNames("Delete which presets?", available)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("Nothing deleted.")
				return nil
			}
		}

		return deletePresets(a.store, names, os.Stdout)
	},
}

// deletePresets removes names from the store and reports each one. Names
// that are not saved are reported and otherwise ignored.
func deletePresets(store *presets.Store, names []string, w io.Writer) error {
	existing, err := store.Names()
	if err != nil {
		return err
	}
	saved := make(map[string]bool, len(existing))
	for _, name := range existing {
		saved[name] = true
	}

	if err := commands.DeletePresets(store, names...); err != nil {
		return err
	}
	for _, name := range names {
		if saved[name] {
			printSuccess(w, "Deleted preset %q", name)
		} else {
			fmt.Fprintf(w, "Preset %q not found (nothing to do)\n", name)
		}
	}
	return nil
}

func init() {
	presetShowCmd.Flags().BoolVar(&presetShowYAML, "yaml", false, "Print YAML instead of JSON")
	presetSaveCmd.Flags().StringVarP(&presetSaveFile, "file", "f", "", "Profile file to save (.json, .yaml)")
	presetSaveCmd.MarkFlagRequired("file")

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetDeleteCmd)
}
