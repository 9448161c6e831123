package db_models

// EntityType selects which orderable table a reorder batch targets.
type EntityType string

const (
	EntityDay          EntityType = "day"
	EntityActivity     EntityType = "activity"
	EntityDayImage     EntityType = "image"
	EntityGalleryImage EntityType = "gallery-image"
	EntityFaq          EntityType = "faq"
)

var orderableEntities = map[EntityType]struct{}{
	EntityDay:          {},
	EntityActivity:     {},
	EntityDayImage:     {},
	EntityGalleryImage: {},
	EntityFaq:          {},
}

func ParseEntityType(s string) (EntityType, bool) {
	e := EntityType(s)
	_, ok := orderableEntities[e]
	return e, ok
}
