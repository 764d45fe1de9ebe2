package options

import (
	"github.com/spf13/cobra"
)

// ContextOptions locates the shared navigation context file.
type ContextOptions struct {
	Path string
}

func AddContextArgs(cmd *cobra.Command, o *ContextOptions) {
	cmd.Flags().StringVar(&o.Path, "context", "",
		"Path to the shared navigation context file.")
}
