package recipe

import "cardtable/internal/model"

// Match is a satisfied recipe: the recipe itself and exactly the input
// cards it would consume, in input order.
type Match struct {
	Recipe   Recipe
	Consumed []*model.Card
}

// FindRecipe scans the given recipes in their given order and returns the
// first whose ingredient multiset is satisfiable by the input cards,
// together with the cards consumed. Order of first match is the contract:
// a later, "better" match is never preferred over an earlier satisfiable
// one. Returns false if nothing matches.
func FindRecipe(cards []*model.Card, unlocked []Recipe) (Match, bool) {
	for _, rec := range unlocked {
		if consumed := consume(cards, rec); consumed != nil {
			return Match{Recipe: rec, Consumed: consumed}, true
		}
	}
	return Match{}, false
}

// FindRecipes returns every recipe from the list satisfiable by the input
// cards, preserving list order. Used for UI discovery; consumption is not
// computed.
func FindRecipes(cards []*model.Card, from []Recipe) []Recipe {
	var out []Recipe
	for _, rec := range from {
		if consume(cards, rec) != nil {
			out = append(out, rec)
		}
	}
	return out
}

// consume attempts to cover the recipe's required multiset with a
// sub-multiset of the input cards, matching by description with
// quantities. Returns the consumed cards in input order, or nil if the
// recipe is not satisfiable. A recipe with no ingredients never matches.
func consume(cards []*model.Card, rec Recipe) []*model.Card {
	needed := make(map[model.Description]int, len(rec.Ingredients))
	total := 0
	for _, ing := range rec.Ingredients {
		if ing.Count <= 0 {
			continue
		}
		needed[ing.Desc] += ing.Count
		total += ing.Count
	}
	if total == 0 {
		return nil
	}

	consumed := make([]*model.Card, 0, total)
	for _, c := range cards {
		if needed[c.Desc] > 0 {
			needed[c.Desc]--
			consumed = append(consumed, c)
			if len(consumed) == total {
				return consumed
			}
		}
	}
	return nil
}
