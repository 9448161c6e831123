package db_models

// All lists every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Account{},
		&Country{},
		&Trip{},
		&TripSchedule{},
		&ItineraryDay{},
		&Activity{},
		&DayImage{},
		&GalleryImage{},
		&Faq{},
		&FaqImage{},
		&Article{},
	}
}
