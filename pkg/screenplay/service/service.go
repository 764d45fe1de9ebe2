// Package service is the client boundary to the remote screenplay service.
// All durable beat/scene state lives on the other side of this interface;
// the board only reads it and issues move requests.
package service

import (
	"context"

	"github.com/scriptloft/beatboard/pkg/screenplay"
)

// Service is the operation surface the board requires from the screenplay
// backend.
type Service interface {
	// Beats returns the ordered beat list for the configured project, each
	// beat carrying its nested scene list.
	Beats(ctx context.Context) ([]screenplay.Beat, error)

	// MoveScene reassigns the scene to the destination beat at the given
	// order. The call is idempotent-safe to retry; a rejection must leave
	// the remote state unchanged.
	MoveScene(ctx context.Context, sceneID, beatID string, order int) error
}
