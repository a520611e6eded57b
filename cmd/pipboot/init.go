package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pipboot/pipboot/internal/config"
	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/wizard"
)

var runWizard = func(configPath string, force bool) error {
	return wizard.RunWithWriter(wizard.NewHuhUI(), wizard.Options{ConfigPath: configPath, Force: force}, os.Stdout)
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath(config.RealSystem{}, runtime.GOOS)
			if err != nil {
				return err
			}
			if path == "" {
				return fmt.Errorf(messages.InitNoConfigPath)
			}
			return runWizard(path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)

	return cmd
}
