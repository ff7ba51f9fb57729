package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Run prints the exposure table. Generation already happened in NewApp; by
// this point the sink is complete and immutable.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")
	a.logger.Info("Exposures registered:", "count", a.sink.Len())
	a.logger.Debug("Manifest model.", "dump", spew.Sdump(a.manifest))

	for _, name := range a.sink.Names() {
		h, ok := a.sink.Lookup(name)
		if !ok {
			return fmt.Errorf("sink reported unknown name '%s'", name)
		}

		if h.Opaque() {
			fmt.Fprintf(a.outW, "%s (opaque)\n", name)
			continue
		}

		params := make([]string, 0, h.Arity())
		for _, t := range h.ParamTypes() {
			params = append(params, t.FriendlyName())
		}
		fmt.Fprintf(a.outW, "%s(%s)\n", name, strings.Join(params, ", "))
		for _, acc := range h.Accessors() {
			fmt.Fprintf(a.outW, "  .%s\n", acc.Name)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
