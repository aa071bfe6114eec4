package happyhourd

import "strings"

// Curated terms that mark a deal description as a drink or food
// special. Matching is case-folded substring containment, so "margs"
// also catches "house margs all night".
var (
	drinkTerms = []string{
		"beer", "wine", "cocktail", "drink", "draft", "draught",
		"margarita", "marg", "well", "shot", "sangria", "mimosa",
	}

	foodTerms = []string{
		"taco", "wing", "appetizer", "app", "slider", "nacho",
		"oyster", "pizza", "burger", "fries", "snack", "bite",
	}
)

// HasDrinkSpecials reports whether the venue offers drink specials:
// its deal text mentions a known drink term, or its drinks tag list
// is non-empty.
func HasDrinkSpecials(v *Venue) bool {
	return len(v.Drinks) > 0 || containsAny(v.DealText, drinkTerms)
}

// HasFoodSpecials reports whether the venue offers food specials: its
// deal text mentions a known food term, or its food tag list is
// non-empty. Independent of HasDrinkSpecials; a venue may be both,
// either, or neither.
func HasFoodSpecials(v *Venue) bool {
	return len(v.Food) > 0 || containsAny(v.DealText, foodTerms)
}

func containsAny(text string, terms []string) bool {
	folded := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(folded, term) {
			return true
		}
	}
	return false
}
