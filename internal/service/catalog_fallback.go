package service

import (
	"github.com/aquatech-store/internal/constants"
	"github.com/aquatech-store/internal/models"
)

// fallbackCatalog is the built-in catalog served when the database is
// unreachable or has not been seeded yet. Browsing stays possible even
// with no live data behind the API.
func fallbackCatalog() []models.Product {
	return []models.Product{
		{
			ID:       1,
			Slug:     "aquapure-ro-uv-tower",
			Kind:     constants.CatalogKindProduct,
			Name:     "AquaPure RO+UV Tower",
			Category: constants.CategoryPurifiers,
			Price:    models.NewMoneyFromFloat(14999),
			Rating:   4.6,
			ImageURL: "/AquaPure%20RO%2BUV%20Tower.png",
			Features: models.StringArray{"7-stage purification", "8L storage", "TDS controller"},
			IsActive: true,
		},
		{
			ID:       2,
			Slug:     "aquapure-compact-uv",
			Kind:     constants.CatalogKindProduct,
			Name:     "AquaPure Compact UV",
			Category: constants.CategoryPurifiers,
			Price:    models.NewMoneyFromFloat(8499),
			Rating:   4.3,
			ImageURL: "/AquaPure%20Compact%20UV.png",
			Features: models.StringArray{"Wall mount", "UV-C lamp", "Low power draw"},
			IsActive: true,
		},
		{
			ID:       3,
			Slug:     "aquapure-alkaline-plus",
			Kind:     constants.CatalogKindProduct,
			Name:     "AquaPure Alkaline Plus",
			Category: constants.CategoryPurifiers,
			Price:    models.NewMoneyFromFloat(18999),
			Rating:   4.7,
			ImageURL: "/AquaPure%20Alkaline%20Plus.png",
			Features: models.StringArray{"Alkaline cartridge", "Mineral boost", "10L storage"},
			IsActive: true,
		},
		{
			ID:       4,
			Slug:     "sediment-prefilter-kit",
			Kind:     constants.CatalogKindProduct,
			Name:     "Sediment Pre-Filter Kit",
			Category: constants.CategoryFilters,
			Price:    models.NewMoneyFromFloat(799),
			Rating:   4.2,
			ImageURL: "/Sediment%20Pre-Filter%20Kit.png",
			Features: models.StringArray{"5 micron", "Fits most purifiers"},
			IsActive: true,
		},
		{
			ID:       5,
			Slug:     "ro-membrane-80gpd",
			Kind:     constants.CatalogKindProduct,
			Name:     "RO Membrane 80 GPD",
			Category: constants.CategoryFilters,
			Price:    models.NewMoneyFromFloat(1499),
			Rating:   4.4,
			ImageURL: "/RO%20Membrane%2080%20GPD.png",
			Features: models.StringArray{"80 GPD output", "1 year life"},
			IsActive: true,
		},
		{
			ID:       6,
			Slug:     "carbon-block-cartridge",
			Kind:     constants.CatalogKindProduct,
			Name:     "Carbon Block Cartridge",
			Category: constants.CategoryFilters,
			Price:    models.NewMoneyFromFloat(649),
			Rating:   4.1,
			ImageURL: "/Carbon%20Block%20Cartridge.png",
			Features: models.StringArray{"Chlorine and odour removal"},
			IsActive: true,
		},
		{
			ID:       7,
			Slug:     "steel-storage-tap",
			Kind:     constants.CatalogKindProduct,
			Name:     "Steel Storage Tap",
			Category: constants.CategoryAccessories,
			Price:    models.NewMoneyFromFloat(349),
			Rating:   4.0,
			ImageURL: "/Steel%20Storage%20Tap.png",
			Features: models.StringArray{"Food grade steel", "Drip free"},
			IsActive: true,
		},
		{
			ID:       8,
			Slug:     "tds-meter-pocket",
			Kind:     constants.CatalogKindProduct,
			Name:     "Pocket TDS Meter",
			Category: constants.CategoryAccessories,
			Price:    models.NewMoneyFromFloat(599),
			Rating:   4.3,
			ImageURL: "/Pocket%20TDS%20Meter.png",
			Features: models.StringArray{"0-9990 ppm range", "Auto calibration"},
			IsActive: true,
		},
		{
			ID:       9,
			Slug:     "aquapure-commercial-50lph",
			Kind:     constants.CatalogKindProduct,
			Name:     "AquaPure Commercial 50 LPH",
			Category: constants.CategoryCommercial,
			Price:    models.NewMoneyFromFloat(64999),
			Rating:   4.5,
			ImageURL: "/AquaPure%20Commercial%2050%20LPH.png",
			Features: models.StringArray{"50 litres per hour", "SS-304 frame", "For offices and cafes"},
			IsActive: true,
		},
		{
			ID:       101,
			Slug:     "install-standard",
			Kind:     constants.CatalogKindService,
			Name:     "Standard Installation",
			Category: constants.CategoryServices,
			Price:    models.NewMoneyFromFloat(499),
			ImageURL: "/Services.png",
			Description: "Certified installation with pipe fitting and water test.",
			Features:    models.StringArray{"Within 24 hours"},
			IsActive:    true,
		},
		{
			ID:       102,
			Slug:     "service-annual",
			Kind:     constants.CatalogKindService,
			Name:     "ServiceCare Annual",
			Category: constants.CategoryServices,
			Price:    models.NewMoneyFromFloat(2499),
			ImageURL: "/ServiceCare%20Annual.png",
			Description: "Quarterly visits, filter checks, and priority support.",
			Features:    models.StringArray{"12 months"},
			IsActive:    true,
		},
		{
			ID:       103,
			Slug:     "service-premium",
			Kind:     constants.CatalogKindService,
			Name:     "ServiceCare Premium",
			Category: constants.CategoryServices,
			Price:    models.NewMoneyFromFloat(3999),
			ImageURL: "/Services.png",
			Description: "Includes spare filters and emergency callouts.",
			Features:    models.StringArray{"12 months"},
			IsActive:    true,
		},
		{
			ID:       104,
			Slug:     "service-emergency-visit",
			Kind:     constants.CatalogKindService,
			Name:     "Emergency Visit",
			Category: constants.CategoryServices,
			Price:    models.NewMoneyFromFloat(899),
			ImageURL: "/Services.png",
			Description: "Fast technician dispatch for urgent purifier breakdowns.",
			Features:    models.StringArray{"Same day"},
			IsActive:    true,
		},
	}
}
