package domain

// ItemType is a category tag attached to item metadata.
type ItemType string

const (
	ItemTypeAmmo       ItemType = "ammo"
	ItemTypeAmmoBox    ItemType = "ammoBox"
	ItemTypeAny        ItemType = "any"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeArmorPlate ItemType = "armorPlate"
	ItemTypeBackpack   ItemType = "backpack"
	ItemTypeBarter     ItemType = "barter"
	ItemTypeContainer  ItemType = "container"
	ItemTypeGlasses    ItemType = "glasses"
	ItemTypeGrenade    ItemType = "grenade"
	ItemTypeGun        ItemType = "gun"
	ItemTypeHeadphones ItemType = "headphones"
	ItemTypeHelmet     ItemType = "helmet"
	ItemTypeInjectors  ItemType = "injectors"
	ItemTypeKeys       ItemType = "keys"
	ItemTypeMarkedOnly ItemType = "markedOnly"
	ItemTypeMeds       ItemType = "meds"
	ItemTypeMods       ItemType = "mods"
	ItemTypeNoFlea     ItemType = "noFlea"
	ItemTypePistolGrip ItemType = "pistolGrip"
	ItemTypePreset     ItemType = "preset"
	ItemTypeProvisions ItemType = "provisions"
	ItemTypeRig        ItemType = "rig"
	ItemTypeSuppressor ItemType = "suppressor"
	ItemTypeWearable   ItemType = "wearable"
)

// ItemMetadata is the display and market data of one item template.
type ItemMetadata struct {
	ID           string     `json:"id" validate:"required"`
	Name         string     `json:"name" validate:"required"`
	ShortName    string     `json:"shortName"`
	IconLink     string     `json:"iconLink"`
	Width        int        `json:"width" validate:"gt=0"`
	Height       int        `json:"height" validate:"gt=0"`
	LastLowPrice float64    `json:"lastLowPrice" validate:"gte=0"`
	Types        []ItemType `json:"types"`
}

// Slots returns the inventory footprint of the item.
func (m ItemMetadata) Slots() int {
	return m.Width * m.Height
}

// HasAnyType reports whether m carries at least one of the allowed types.
func (m ItemMetadata) HasAnyType(allowed map[ItemType]struct{}) bool {
	for _, t := range m.Types {
		if _, ok := allowed[t]; ok {
			return true
		}
	}
	return false
}
