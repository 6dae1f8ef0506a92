package state

// Region names one independently rebuilt part of the view.
type Region uint8

const (
	RegionRecipeList Region = 1 << iota
	RegionPantryList
	RegionKBList
	RegionRecipeDetail
	RegionIngredientDetail
	RegionKBDetail
)

// ListRegions covers every list region.
const ListRegions = RegionRecipeList | RegionPantryList | RegionKBList

func (r Region) String() string {
	switch r {
	case RegionRecipeList:
		return "recipe-list"
	case RegionPantryList:
		return "pantry-list"
	case RegionKBList:
		return "kb-list"
	case RegionRecipeDetail:
		return "recipe-detail"
	case RegionIngredientDetail:
		return "ingredient-detail"
	case RegionKBDetail:
		return "kb-detail"
	default:
		return "regions"
	}
}

// Dirty is the set of regions whose last render is stale. Transitions Mark;
// only the reconciler Takes.
type Dirty struct {
	set Region
}

// Mark flags every given region stale.
func (d *Dirty) Mark(regions ...Region) {
	for _, r := range regions {
		d.set |= r
	}
}

// Has reports whether every bit of r is marked.
func (d *Dirty) Has(r Region) bool {
	return d.set&r == r
}

// Take reports whether r was marked and clears it.
func (d *Dirty) Take(r Region) bool {
	marked := d.set&r != 0
	d.set &^= r
	return marked
}

// Empty reports whether nothing is marked.
func (d *Dirty) Empty() bool {
	return d.set == 0
}
