package app

import "github.com/spf13/cobra"

func NewRootCommand(version string) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "In-memory todo list shell",
		Long: `todo keeps a list of todos in memory for the length of one session.

Commands are read line by line from stdin. Type "help" to list them.
Nothing is saved when the session ends.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			MustReadConfig(configPath)
			MustInitApplicationLogger()

			return RunShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a yaml, toml or env config file")
	return cmd
}
