package beats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/scriptloft/beatboard/pkg/printers"
	"github.com/scriptloft/beatboard/pkg/screenplay/service"
)

type Beats struct {
	ShowID  bool
	JSON    bool
	Table   bool
	Service service.Service
}

func (n *Beats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list beats, no service")
	}

	beats, err := n.Service.Beats(ctx)
	if err != nil {
		return fmt.Errorf("list beats: %w", err)
	}

	if n.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(beats)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Table {
		pp.BeatTable(beats...)
		return nil
	}
	pp.Board(beats...)
	return nil
}
