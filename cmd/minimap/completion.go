package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ZNielsen/code-minimap/internal/errors"
)

func init() { rootCmd.AddCommand(completionCmd) }

var completionCmd = &cobra.Command{
	Use:                   `completion bash|zsh|fish|powershell`,
	Short:                 `generate a shell completion script`,
	ValidArgs:             []string{`bash`, `zsh`, `fish`, `powershell`},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(*slog.Logger) error {
			return writeCompletion(cmd.OutOrStdout(), args[0])
		})
	},
}

func writeCompletion(w io.Writer, shell string) error {
	var err error
	switch shell {
	case `bash`:
		err = rootCmd.GenBashCompletionV2(w, true)
	case `zsh`:
		err = rootCmd.GenZshCompletion(w)
	case `fish`:
		err = rootCmd.GenFishCompletion(w, true)
	case `powershell`:
		err = rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.New(`unsupported shell "` + shell + `"`)
	}
	if err != nil {
		return errors.New(err)
	}
	return nil
}
