package storage

import "eggshop/models"

// SeedProducts returns the starter catalog written on the first catalog
// read of an empty store.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:                 "1",
			Name:               "Large White Eggs",
			Type:               models.TypeWhite,
			Description:        "Fresh selected white eggs.",
			QuantityPerPackage: 30,
			Price:              22.00,
			ImageURL:           "https://picsum.photos/id/102/400/400",
			Active:             true,
		},
		{
			ID:                 "2",
			Name:               "Extra Brown Eggs",
			Type:               models.TypeBrown,
			Description:        "High quality brown eggs.",
			QuantityPerPackage: 20,
			Price:              24.00,
			ImageURL:           "https://picsum.photos/id/292/400/400",
			Active:             true,
		},
		{
			ID:                 "3",
			Name:               "Free-Range Eggs",
			Type:               models.TypeFreeRange,
			Description:        "Genuine free-range eggs straight from the farm.",
			QuantityPerPackage: 12,
			Price:              18.00,
			ImageURL:           "https://picsum.photos/id/22/400/400",
			Active:             true,
		},
		{
			ID:                 "4",
			Name:               "Family Promo Pack",
			Type:               models.TypeWhite,
			Description:        "Two trays of large white eggs (60 units).",
			QuantityPerPackage: 60,
			Price:              40.00,
			ImageURL:           "https://picsum.photos/id/75/400/400",
			Active:             true,
			IsPromo:            true,
		},
	}
}
