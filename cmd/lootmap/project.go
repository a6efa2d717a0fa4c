package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/osse101/lootmap/internal/config"
	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/utils"
	"github.com/osse101/lootmap/internal/viewport"
)

// ProjectCommand places the loose loot of a map on its fitted image
type ProjectCommand struct {
	cfg *config.Config
	out io.Writer
}

func (c *ProjectCommand) Name() string { return "project" }

func (c *ProjectCommand) Description() string {
	return "Project loose loot spawnpoints of a map into a container of the given size"
}

func (c *ProjectCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	mapName := fs.String("map", "", "map name or slug")
	width := fs.Float64("width", 800, "container width")
	height := fs.Float64("height", 600, "container height")
	itemList := fs.String("items", "", "comma separated items to highlight")
	onlyHighlighted := fs.Bool("highlighted", false, "print only highlighted spawnpoints")
	zoom := fs.Float64("zoom", 0, "zoom to this scale before printing, 0 to keep the fitted view")
	anchor := fs.String("anchor", "", "screen point x,y kept fixed while zooming (default: container centre)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loc, err := parseLocation(*mapName)
	if err != nil {
		return err
	}
	container := domain.Dimensions{Width: *width, Height: *height}
	if !container.Measured() {
		return fmt.Errorf("%w: container %gx%g", domain.ErrMeasurementUnavailable, *width, *height)
	}
	at := domain.Point{X: *width / 2, Y: *height / 2}
	if *anchor != "" {
		if at, err = parsePoint(*anchor); err != nil {
			return err
		}
	}

	ctx := commandContext()
	session, err := openSession(ctx, c.cfg, []domain.Location{loc})
	if err != nil {
		return err
	}

	layout, ok := session.MapLayout(loc, container)
	if !ok {
		return fmt.Errorf("%w: no map metadata for %s", domain.ErrMissingMapData, loc)
	}

	var selected []string
	for _, name := range strings.Split(*itemList, ",") {
		if name = strings.TrimSpace(name); name != "" {
			selected = append(selected, resolveItem(session, name)...)
		}
	}

	spawnpoints, ok := session.ProjectedSpawnpoints(loc, container, selected)
	if !ok {
		return fmt.Errorf("%w: no loose loot for %s", domain.ErrMissingMapData, loc)
	}

	view, err := viewport.New(c.cfg.ViewportConfig(), session.Bus())
	if err != nil {
		return err
	}
	view.Resize(ctx, container, layout.Fitted)
	if *zoom != 0 && !view.ZoomIntoPoint(ctx, *zoom, at) {
		return fmt.Errorf("%w: zoom %g", domain.ErrInvalidInput, *zoom)
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\n", session.Names().LocationName(loc))
	fmt.Fprintf(w, "fitted %gx%g  viewBox %s  scale %g\n",
		layout.Fitted.Width, layout.Fitted.Height, view.ViewBoxString(), view.Scale())
	fmt.Fprintln(w, "Image x\tImage y\tScreen x\tScreen y\tChance\tHighlighted")

	items := session.Snapshot().Items
	for _, sp := range spawnpoints {
		if *onlyHighlighted && !sp.Highlighted {
			continue
		}
		screen, _ := view.ViewBoxToScreen(sp.Screen)
		fmt.Fprintf(w, "%.1f\t%.1f\t%.1f\t%.1f\t%s\t%t\n",
			sp.Screen.X, sp.Screen.Y, screen.X, screen.Y,
			utils.FormatPercent(sp.Probability), sp.Highlighted)
		if sp.Highlighted {
			for _, it := range sp.Items {
				fmt.Fprintf(w, "\t\t\t\t  %s\t%s\n", itemName(items, it.Tpl), utils.FormatPercent(it.Probability))
			}
		}
	}
	return w.Flush()
}

// parsePoint reads "x,y"
func parsePoint(s string) (domain.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Point{}, fmt.Errorf("%w: point %q, want x,y", domain.ErrInvalidInput, s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return domain.Point{}, fmt.Errorf("%w: point %q, want x,y", domain.ErrInvalidInput, s)
	}
	return domain.Point{X: x, Y: y}, nil
}
