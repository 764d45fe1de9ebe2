package commands

import (
	"github.com/spf13/cobra"

	"github.com/scriptloft/beatboard/pkg/commands/options"
)

func New() *cobra.Command {
	so := &options.ServiceOptions{}

	cmd := &cobra.Command{
		Use:   "beatboard",
		Short: "Organize screenplay scenes across story beats.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddServiceArgs(cmd, so)

	AddCommands(cmd, so)
	return cmd
}

func AddCommands(topLevel *cobra.Command, so *options.ServiceOptions) {
	addBoard(topLevel, so)
	addBeats(topLevel, so)
	addMove(topLevel, so)
	addVersion(topLevel)
}
