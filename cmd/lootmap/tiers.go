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

// TiersCommand prints the tier list of a map selection
type TiersCommand struct {
	cfg *config.Config
	out io.Writer
}

func (c *TiersCommand) Name() string { return "tiers" }

func (c *TiersCommand) Description() string {
	return "Rank the valuable items of the selected maps into rarity tiers"
}

func (c *TiersCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	maps := fs.String("maps", "", "comma separated maps (default: all)")
	minPrice := fs.Float64("min-price", c.cfg.MinPricePerSlot, "minimum price per slot")
	maxItems := fs.Int("max-items", c.cfg.MaxItemsPerTier, "maximum items per tier, 0 for no limit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	selection, err := parseLocations(*maps)
	if err != nil {
		return err
	}

	ctx := commandContext()
	session, err := openSession(ctx, c.cfg, selection)
	if err != nil {
		return err
	}

	opts := c.cfg.TierOptions()
	opts.MinPricePerSlot = *minPrice
	opts.MaxItemsPerTier = *maxItems

	buckets, ok := session.Tiers(ctx, selection, opts)
	if !ok {
		return fmt.Errorf("%w: container tables or item metadata", domain.ErrDataNotLoaded)
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	for _, bucket := range buckets {
		fmt.Fprintf(w, "%s (%d)\n", bucket.Tier.Name, len(bucket.Items))
		for _, e := range bucket.Items {
			fmt.Fprintf(w, "  %s\t%s\t%s/slot\n",
				e.Item.Name,
				utils.FormatCount(e.ExpectedCount),
				utils.FormatBigNumber(e.PricePerSlot))
		}
	}
	return w.Flush()
}
