package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/scriptloft/beatboard/pkg/commands/options"
	"github.com/scriptloft/beatboard/pkg/navcontext"
	"github.com/scriptloft/beatboard/pkg/runner/board"
)

func addBoard(topLevel *cobra.Command, so *options.ServiceOptions) {
	co := &options.ContextOptions{}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "open the interactive beat board",
		Example: `
beatboard board
beatboard board --project prj_42
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := so.Resolve()
			if err != nil {
				return err
			}
			path := co.Path
			if path == "" {
				path = cfg.ContextPath
			}
			var bridge *navcontext.Bridge
			if path != "" {
				if bridge, err = navcontext.NewBridge(path); err != nil {
					return err
				}
			}
			i := board.Board{Service: svc, Bridge: bridge}
			return i.Do(context.Background())
		},
	}
	options.AddContextArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
