package move

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/scriptloft/beatboard/pkg/screenplay"
	"github.com/scriptloft/beatboard/pkg/screenplay/service"
)

type Move struct {
	SceneID string
	BeatID  string
	// Order below zero means append to the destination's end.
	Order   int
	Service service.Service
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move a scene, no service")
	}

	beats, err := n.Service.Beats(ctx)
	if err != nil {
		return fmt.Errorf("move scene: %w", err)
	}

	owner, ok := screenplay.FindSceneBeat(beats, n.SceneID)
	if !ok {
		return fmt.Errorf("move scene: unknown scene %q", n.SceneID)
	}
	count := screenplay.SceneCount(beats, n.BeatID)
	if count < 0 {
		return fmt.Errorf("move scene: unknown beat %q", n.BeatID)
	}
	if owner.ID == n.BeatID {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("scene %s is already in %s\n", n.SceneID, owner.Title)
		return nil
	}

	order := n.Order
	if order < 0 {
		order = count
	}
	if err := n.Service.MoveScene(ctx, n.SceneID, n.BeatID, order); err != nil {
		return fmt.Errorf("move scene: %w", err)
	}

	g := color.New(color.FgGreen)
	_, _ = g.Printf("moved %s: %s → %s (position %d)\n", n.SceneID, owner.Title, n.BeatID, order)
	return nil
}
