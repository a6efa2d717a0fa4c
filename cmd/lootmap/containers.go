package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/osse101/lootmap/internal/config"
	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/utils"
)

// ContainersCommand prints the containers of a map, or the ones that can hold an item
type ContainersCommand struct {
	cfg *config.Config
	out io.Writer
}

func (c *ContainersCommand) Name() string { return "containers" }

func (c *ContainersCommand) Description() string {
	return "List the containers of a map, or those that can hold -item"
}

func (c *ContainersCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	mapName := fs.String("map", "", "map name or slug")
	item := fs.String("item", "", "item name or template id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loc, err := parseLocation(*mapName)
	if err != nil {
		return err
	}

	ctx := commandContext()
	session, err := openSession(ctx, c.cfg, []domain.Location{loc})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)

	if *item == "" {
		details, ok := session.ContainerDetails(ctx, loc)
		if !ok {
			return fmt.Errorf("%w: no container data for %s", domain.ErrMissingMapData, loc)
		}
		fmt.Fprintln(w, "Container\tPlacements\tItems per container")
		for _, d := range details {
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, utils.FormatCount(d.Weight), utils.FormatCount(d.ExpectedItemCount))
		}
		return w.Flush()
	}

	tpls := resolveItem(session, *item)
	items := session.Snapshot().Items
	for _, tpl := range tpls {
		shares, ok := session.ContainersForItem(ctx, loc, tpl)
		if !ok {
			return fmt.Errorf("%w: no container data for %s", domain.ErrMissingMapData, loc)
		}
		fmt.Fprintf(w, "%s\n", itemName(items, tpl))
		if len(shares) == 0 {
			fmt.Fprintln(w, "  (not found in any container)")
		}
		for _, s := range shares {
			fmt.Fprintf(w, "  %s\t%s\n", s.Container, utils.FormatPercent(s.Probability))
		}
	}
	return w.Flush()
}
