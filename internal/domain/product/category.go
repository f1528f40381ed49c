package product

// Category identifies a catalog department. The zero value is not a valid
// category.
type Category string

// CategoryAll is the selector sentinel that bypasses category filtering. It is
// never assigned to a product.
const CategoryAll Category = "all"

const (
	CategoryFloorTiles   Category = "floor-tiles"
	CategoryWallTiles    Category = "wall-tiles"
	CategoryDoors        Category = "doors"
	CategorySinks        Category = "sinks"
	CategoryShowers      Category = "showers"
	CategoryOutdoorTiles Category = "outdoor-tiles"
	CategoryMosaic       Category = "mosaic"
	CategoryBathroom     Category = "bathroom"
	CategoryLighting     Category = "lighting"
	CategoryNaturalStone Category = "natural-stone"
	CategoryCeramic      Category = "ceramic"
)

// categories is the known enumeration in display order.
var categories = []struct {
	id   Category
	name string
}{
	{CategoryFloorTiles, "Floor Tiles"},
	{CategoryWallTiles, "Wall Tiles"},
	{CategoryDoors, "Doors"},
	{CategorySinks, "Sinks & Basins"},
	{CategoryShowers, "Shower Systems"},
	{CategoryOutdoorTiles, "Outdoor Tiles"},
	{CategoryMosaic, "Mosaic"},
	{CategoryBathroom, "Bathroom Fixtures"},
	{CategoryLighting, "Lighting"},
	{CategoryNaturalStone, "Natural Stone"},
	{CategoryCeramic, "Ceramic"},
}

// Categories returns the known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c.id
	}
	return out
}

// Valid reports whether c belongs to the known enumeration. CategoryAll is not
// a valid product category.
func (c Category) Valid() bool {
	for _, known := range categories {
		if known.id == c {
			return true
		}
	}
	return false
}

// DisplayName returns the human readable name, or the raw id for unknown
// categories.
func (c Category) DisplayName() string {
	if c == CategoryAll {
		return "All Products"
	}
	for _, known := range categories {
		if known.id == c {
			return known.name
		}
	}
	return string(c)
}

func (c Category) String() string {
	return string(c)
}
