package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/scriptloft/beatboard/pkg/commands/options"
	"github.com/scriptloft/beatboard/pkg/runner/move"
)

func addMove(topLevel *cobra.Command, so *options.ServiceOptions) {
	oo := &options.OutputOptions{}
	order := -1

	cmd := &cobra.Command{
		Use:   "move SCENE BEAT",
		Short: "move a scene into another beat",
		Long:  "Move a scene into another beat. Without --order the scene is appended to the end of the destination.",
		Example: `
beatboard move scn_12 beat_3
beatboard move scn_12 beat_3 --order 0
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("expected a scene id and a beat id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := so.Resolve()
			if err != nil {
				return oo.HandleError(err)
			}
			s := move.Move{
				SceneID: args[0],
				BeatID:  args[1],
				Order:   order,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}
	cmd.Flags().IntVar(&order, "order", -1,
		"Position in the destination beat. Defaults to the end.")
	options.AddOutputArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
