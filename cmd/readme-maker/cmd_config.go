package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ruminaider/readme-maker/internal/config"
	"github.com/ruminaider/readme-maker/internal/paths"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		data, err := config.Marshal(a.cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = paths.ConfigFile()
		}
		return initConfig(path, paths.LogFile(), configInitForce, os.Stdout)
	},
}

// initConfig writes the default config to path with the rotating log file
// enabled at logFile.
func initConfig(path, logFile string, force bool, w io.Writer) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	cfg := config.Default()
	cfg.Log.File = logFile
	if err := config.Write(path, cfg); err != nil {
		return err
	}
	printSuccess(w, "Wrote %s", path)
	return nil
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
