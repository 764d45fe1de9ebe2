// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"github.com/scriptloft/beatboard/pkg/screenplay/service"
)

// ServiceOptions captures backend connection flags. Unset flags fall back to
// the .beatboard config file and BEATBOARD_* environment.
type ServiceOptions struct {
	Server  string
	Token   string
	Project string
}

func AddServiceArgs(cmd *cobra.Command, o *ServiceOptions) {
	cmd.PersistentFlags().StringVar(&o.Server, "server", "",
		"Base URL of the screenplay service.")
	cmd.PersistentFlags().StringVar(&o.Token, "token", "",
		"Bearer token for the screenplay service.")
	cmd.PersistentFlags().StringVarP(&o.Project, "project", "p", "",
		"Project ID to operate on.")
}

// Resolve merges the flags over the loaded configuration and builds the
// service client.
func (o *ServiceOptions) Resolve() (service.Service, *service.Config, error) {
	cfg, err := service.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if o.Server != "" {
		cfg.BaseURL = o.Server
	}
	if o.Token != "" {
		cfg.Token = o.Token
	}
	if o.Project != "" {
		cfg.ProjectID = o.Project
	}
	svc, err := service.NewHTTPClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}
