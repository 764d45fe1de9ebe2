package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/scriptloft/beatboard/pkg/commands/options"
	"github.com/scriptloft/beatboard/pkg/runner/beats"
)

func addBeats(topLevel *cobra.Command, so *options.ServiceOptions) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "beats",
		Short: "list the project's beats and their scenes",
		Example: `
beatboard beats
beatboard beats --table
beatboard beats --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := so.Resolve()
			if err != nil {
				return oo.HandleError(err)
			}
			s := beats.Beats{
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Table:   oo.Table,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
