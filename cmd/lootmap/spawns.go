package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/osse101/lootmap/internal/config"
	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/utils"
)

// SpawnsCommand prints the expected spawn count of every item on one map
type SpawnsCommand struct {
	cfg *config.Config
	out io.Writer
}

func (c *SpawnsCommand) Name() string { return "spawns" }

func (c *SpawnsCommand) Description() string {
	return "Print the expected container (or loose) spawns of every item on a map"
}

func (c *SpawnsCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	mapName := fs.String("map", "", "map name or slug")
	loose := fs.Bool("loose", false, "print loose loot instead of container loot")
	limit := fs.Int("limit", 0, "print at most this many items, 0 for all")
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

	var table domain.SpawnTable
	if *loose {
		var ok bool
		if table, ok = session.LooseSpawns(loc); !ok {
			return fmt.Errorf("%w: no loose loot for %s", domain.ErrMissingMapData, loc)
		}
	} else {
		var ok bool
		if table, ok = session.Snapshot().Spawns[loc]; !ok {
			return fmt.Errorf("%w: no container spawns for %s", domain.ErrMissingMapData, loc)
		}
	}

	rows := sortedRows(table)
	if *limit > 0 && len(rows) > *limit {
		rows = rows[:*limit]
	}

	items := session.Snapshot().Items
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\n", session.Names().LocationName(loc))
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%s\n", itemName(items, r.tpl), utils.FormatCount(r.count))
	}
	return w.Flush()
}

type spawnRow struct {
	tpl   string
	count float64
}

// sortedRows orders a spawn table by count, most common first, then by id
func sortedRows(table domain.SpawnTable) []spawnRow {
	rows := make([]spawnRow, 0, len(table))
	for tpl, count := range table {
		rows = append(rows, spawnRow{tpl: tpl, count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].tpl < rows[j].tpl
	})
	return rows
}
