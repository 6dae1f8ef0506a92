package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/cookbook-tui/internal/format/markdown"
	"github.com/atomicstack/cookbook-tui/internal/state"
	"github.com/atomicstack/cookbook-tui/internal/theme"
)

func recipeDetail(e state.Engine, id *string, width int) string {
	styles := theme.Current()
	if e == nil {
		return styles.Placeholder.Render(placeholderNoData)
	}
	if id == nil {
		return styles.Placeholder.Render("Select a recipe")
	}
	r, ok := e.Recipe(*id)
	if !ok {
		return styles.Placeholder.Render("Select a recipe")
	}

	lines := []string{styles.Title.Render(r.Title)}
	var meta []string
	if r.PrepTime != nil {
		meta = append(meta, fmt.Sprintf("Prep %d min", *r.PrepTime))
	}
	if r.Downtime != nil {
		meta = append(meta, fmt.Sprintf("Oven/rest %d min", *r.Downtime))
	}
	if r.Servings != nil {
		meta = append(meta, fmt.Sprintf("Serves %d", *r.Servings))
	}
	if len(meta) > 0 {
		lines = append(lines, styles.Caption.Render(strings.Join(meta, " · ")))
	}
	if len(r.Tags) > 0 {
		lines = append(lines, styles.Caption.Render(wrap("Tags: "+joinTags(r.Tags), width)))
	}
	if e.CanCook(r) {
		lines = append(lines, "", styles.Success.Render("✔ Ready to cook"))
	}

	lines = append(lines, "", styles.Heading.Render("Ingredients"))
	if len(r.Ingredients) == 0 {
		lines = append(lines, styles.Placeholder.Render("none"))
	}
	for _, item := range r.Ingredients {
		marker := markerMissing
		if e.InPantry(item.Ingredient) {
			marker = markerInStock
		}
		line := marker + " " + item.Ingredient
		if amount := formatAmount(item.Quantity, item.QuantityType); amount != "" {
			line += "  " + styles.Caption.Render(amount)
		}
		lines = append(lines, line)
	}

	if strings.TrimSpace(r.Instructions) != "" {
		lines = append(lines, "", styles.Heading.Render("Instructions"))
		lines = append(lines, markdown.Render(r.Instructions, markdown.Options{Width: width, Heading: styles.Heading}))
	}
	return strings.Join(lines, "\n")
}

func ingredientDetail(e state.Engine, id *string, width int) string {
	styles := theme.Current()
	if e == nil {
		return styles.Placeholder.Render(placeholderNoData)
	}
	if id == nil {
		return styles.Placeholder.Render("Select an ingredient")
	}
	ing, ok := e.Ingredient(*id)
	if !ok {
		return styles.Placeholder.Render("Select an ingredient")
	}

	lines := []string{styles.Title.Render(ing.Name)}
	if ing.Category != "" {
		lines = append(lines, styles.Caption.Render("Category: "+ing.Category))
	}
	if len(ing.Tags) > 0 {
		lines = append(lines, styles.Caption.Render(wrap("Tags: "+joinTags(ing.Tags), width)))
	}

	lines = append(lines, "")
	if item, stocked := e.PantryItem(ing.Name); stocked {
		status := "In pantry"
		if amount := formatAmount(item.Quantity, item.QuantityType); amount != "" {
			status += ": " + amount
		}
		lines = append(lines, styles.Success.Render(status))
		if item.LastUpdated != "" {
			lines = append(lines, styles.Caption.Render("Last updated "+item.LastUpdated))
		}
	} else {
		lines = append(lines, styles.Error.Render("Not in pantry"))
	}

	lines = append(lines, "", styles.Heading.Render("Used in recipes"))
	recipes := e.RecipesWithIngredient(ing.Name)
	if len(recipes) == 0 {
		lines = append(lines, styles.Placeholder.Render("none"))
	}
	for _, r := range recipes {
		lines = append(lines, "• "+r.Title)
	}

	if ing.KB != "" {
		title := ing.KB
		if entry, found := e.KBEntry(ing.KB); found && entry.Title != "" {
			title = entry.Title
		}
		lines = append(lines, "", styles.Heading.Render("Knowledge base"), title)
	}
	return strings.Join(lines, "\n")
}

func kbDetail(e state.Engine, id *string, width int) string {
	styles := theme.Current()
	if e == nil {
		return styles.Placeholder.Render(placeholderNoData)
	}
	if id == nil {
		return styles.Placeholder.Render("Select an article")
	}
	entry, ok := e.KBEntry(*id)
	if !ok {
		return styles.Placeholder.Render("Select an article")
	}

	body := markdown.Render(entry.Content, markdown.Options{Width: width, Heading: styles.Title})
	if body == "" {
		body = styles.Title.Render(entry.Title)
	}
	lines := []string{body}
	if related := e.IngredientsWithKB(entry.Slug); len(related) > 0 {
		lines = append(lines, "", styles.Heading.Render("Related ingredients"))
		for _, ing := range related {
			lines = append(lines, "• "+ing.Name)
		}
	}
	return strings.Join(lines, "\n")
}

func formatAmount(qty *float64, unit string) string {
	if qty == nil {
		return unit
	}
	amount := strconv.FormatFloat(*qty, 'f', -1, 64)
	if unit != "" {
		amount += " " + unit
	}
	return amount
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
