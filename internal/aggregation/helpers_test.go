package aggregation

import (
	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/naming"
)

type placement struct {
	tpl         string
	probability float64
}

func staticOf(placements ...placement) domain.StaticSpawns {
	s := domain.StaticSpawns{}
	for _, p := range placements {
		s.StaticContainers = append(s.StaticContainers, domain.StaticContainer{
			Probability: p.probability,
			Template:    domain.ContainerTemplate{Items: []domain.TemplateItem{{Tpl: p.tpl}}},
		})
	}
	return s
}

func lootOf(weights ...domain.ItemWeight) domain.ContainerLoot {
	return domain.ContainerLoot{ItemDistribution: weights}
}

func w(tpl string, weight float64) domain.ItemWeight {
	return domain.ItemWeight{Tpl: tpl, RelativeProbability: weight}
}

// crateFixture is the two-variant crate example: both templates translate to "Crate".
func crateFixture() (domain.StaticSpawns, domain.ContainerContent, Names) {
	static := staticOf(placement{"cratesA", 0.5}, placement{"cratesB", 0.5})
	content := domain.ContainerContent{
		"cratesA": lootOf(w("X", 3), w("Y", 1)),
		"cratesB": lootOf(w("X", 1)),
	}
	names := naming.NewResolver(domain.Translations{"cratesA": "Crate", "cratesB": "Crate"})
	return static, content, names
}
