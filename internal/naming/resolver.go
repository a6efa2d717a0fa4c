package naming

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/lootmap/internal/domain"
)

// Resolver maps template ids to display names and back
type Resolver interface {
	// ContainerName returns the translated name used to merge container variants.
	// Unknown ids resolve to themselves.
	ContainerName(tpl string) string

	// ResolvePublicName returns every template id whose display name matches,
	// case-insensitively, sorted.
	ResolvePublicName(publicName string) []string

	// RegisterItem adds a public name for a template id
	RegisterItem(tpl, publicName string)

	// LocationName returns a human readable name for a raw location
	LocationName(loc domain.Location) string
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: tpl -> public name
	internalToPublic map[string]string

	// Mapping: lower(public name) -> tpls
	publicToInternal map[string][]string
}

// NewResolver creates a resolver seeded with translations
func NewResolver(translations domain.Translations) Resolver {
	r := &resolver{
		internalToPublic: make(map[string]string, len(translations)),
		publicToInternal: make(map[string][]string, len(translations)),
	}
	for tpl, name := range translations {
		r.registerUnlocked(tpl, name)
	}
	return r
}

// ParseTranslations keeps the short names of a raw locale table
func ParseTranslations(raw map[string]string) domain.Translations {
	out := make(domain.Translations)
	for key, value := range raw {
		parts := strings.Split(key, TranslationKeySeparator)
		if len(parts) != TranslationKeyParts || parts[1] != TranslationFieldShortName {
			continue
		}
		out[parts[0]] = value
	}
	return out
}

// ContainerName resolves a template id to its translated name
func (r *resolver) ContainerName(tpl string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name, ok := r.internalToPublic[tpl]; ok {
		return name
	}
	return tpl
}

// ResolvePublicName converts a public name to template ids
func (r *resolver) ResolvePublicName(publicName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tpls := r.publicToInternal[strings.ToLower(publicName)]
	return append([]string(nil), tpls...)
}

// RegisterItem adds a tpl->public name mapping
func (r *resolver) RegisterItem(tpl, publicName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.registerUnlocked(tpl, publicName)
}

// registerUnlocked adds a mapping (caller must hold lock)
func (r *resolver) registerUnlocked(tpl, publicName string) {
	if publicName == "" {
		return
	}
	if old, ok := r.internalToPublic[tpl]; ok {
		r.removeReverseUnlocked(tpl, old)
	}
	r.internalToPublic[tpl] = publicName

	key := strings.ToLower(publicName)
	tpls := append(r.publicToInternal[key], tpl)
	sort.Strings(tpls)
	r.publicToInternal[key] = tpls
}

func (r *resolver) removeReverseUnlocked(tpl, publicName string) {
	key := strings.ToLower(publicName)
	tpls := r.publicToInternal[key]
	for i, t := range tpls {
		if t == tpl {
			tpls = append(tpls[:i], tpls[i+1:]...)
			break
		}
	}
	if len(tpls) == 0 {
		delete(r.publicToInternal, key)
		return
	}
	r.publicToInternal[key] = tpls
}

// LocationName returns the display name of loc, falling back to a title-cased raw name
func (r *resolver) LocationName(loc domain.Location) string {
	if info, ok := loc.Info(); ok {
		return string(info.Display)
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(loc), "_", " "))
}
