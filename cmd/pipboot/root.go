package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipboot/pipboot/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          messages.RootUse,
		Short:        messages.RootShort,
		Long:         messages.RootLong,
		SilenceUsage: true,
	}
	cmd.AddCommand(newUpgradeCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.VersionUse,
		Short: messages.VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return nil
		},
	}
}
