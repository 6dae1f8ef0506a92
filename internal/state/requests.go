package state

// Requests holds dialogs waiting for the view layer to open them. Each slot
// holds at most one request; Take methods clear the slot as they read it.
type Requests struct {
	AddRecipe      bool
	EditRecipe     *string
	AddIngredient  bool
	EditIngredient *string
}

func (r *Requests) TakeAddRecipe() bool {
	v := r.AddRecipe
	r.AddRecipe = false
	return v
}

func (r *Requests) TakeEditRecipe() *string {
	v := r.EditRecipe
	r.EditRecipe = nil
	return v
}

func (r *Requests) TakeAddIngredient() bool {
	v := r.AddIngredient
	r.AddIngredient = false
	return v
}

func (r *Requests) TakeEditIngredient() *string {
	v := r.EditIngredient
	r.EditIngredient = nil
	return v
}

// Pending reports whether any slot is occupied.
func (r *Requests) Pending() bool {
	return r.AddRecipe || r.EditRecipe != nil || r.AddIngredient || r.EditIngredient != nil
}
