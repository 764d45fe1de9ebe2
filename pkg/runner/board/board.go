package board

import (
	"context"
	"errors"

	"github.com/scriptloft/beatboard/pkg/navcontext"
	"github.com/scriptloft/beatboard/pkg/screenplay/service"
	"github.com/scriptloft/beatboard/pkg/tui/app"
)

type Board struct {
	Service service.Service
	Bridge  *navcontext.Bridge
}

func (n *Board) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open the board, no service")
	}
	return app.Run(n.Service, n.Bridge)
}
