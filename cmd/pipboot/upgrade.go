package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipboot/pipboot/internal/bootstrap"
	"github.com/pipboot/pipboot/internal/messages"
)

var rebuildFunc = bootstrap.Rebuild

func newUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.UpgradeUse,
		Short: messages.UpgradeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := resolveEnvFunc()
			if err != nil {
				return err
			}
			opts := bootstrap.Options{
				Interpreter: env.interp,
				CacheRoot:   env.cacheRoot,
				Resolver:    env.resolver,
				NoNetwork:   env.settings.NoNetwork,
				Stderr:      cmd.ErrOrStderr(),
			}
			if err := rebuildFunc(opts); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.UpgradeCompletedFmt, env.interp.Version, env.cacheRoot)
			return nil
		},
	}
}
