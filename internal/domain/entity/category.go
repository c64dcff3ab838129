package entity

// Category is the fixed display/filter enumeration for classifying a
// business. CategoryAll is the neutral filter sentinel and never a stored
// value.
type Category string

const (
	// CategoryAll is the filter sentinel matching every business.
	CategoryAll Category = "All"
	// CategoryFoodCatering groups food-catering businesses.
	CategoryFoodCatering Category = "Food/Catering"
	// CategoryRefreshments groups refreshments businesses.
	CategoryRefreshments Category = "Refreshments"
	// CategoryVenueProvider groups venue-rental businesses.
	CategoryVenueProvider Category = "Venue Provider"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAll, CategoryFoodCatering, CategoryRefreshments, CategoryVenueProvider:
		return true
	default:
		return false
	}
}

// FilterCategoryFromString normalizes raw input into a filter value.
// Unrecognized or missing input maps to the neutral CategoryAll so a
// malformed record never narrows a listing.
func FilterCategoryFromString(s string) Category {
	category := Category(s)
	if category.IsValid() {
		return category
	}
	if service := ServiceType(s); service.IsValid() {
		return CategoryFromService(service)
	}

	return CategoryAll
}

// StoredCategoryFromString normalizes raw input into a stored value.
// Unrecognized or missing input maps to CategoryVenueProvider so every
// persisted record carries a concrete category. The asymmetry with
// FilterCategoryFromString is intentional: filter neutrality on read,
// data completeness on write.
func StoredCategoryFromString(s string) Category {
	category := FilterCategoryFromString(s)
	if category == CategoryAll {
		return CategoryVenueProvider
	}

	return category
}

// CategoryFromService maps a service tag to its display category.
func CategoryFromService(service ServiceType) Category {
	switch service {
	case ServiceCatering:
		return CategoryFoodCatering
	case ServiceRefreshments:
		return CategoryRefreshments
	case ServiceVenueProvider:
		return CategoryVenueProvider
	default:
		return CategoryAll
	}
}

// ServiceFromCategory maps a display category back to the service tag it
// groups. CategoryAll has no corresponding tag and returns false.
func ServiceFromCategory(category Category) (ServiceType, bool) {
	switch category {
	case CategoryFoodCatering:
		return ServiceCatering, true
	case CategoryRefreshments:
		return ServiceRefreshments, true
	case CategoryVenueProvider:
		return ServiceVenueProvider, true
	default:
		return "", false
	}
}
