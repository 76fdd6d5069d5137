package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtable/internal/model"
)

func card(id model.CardID, desc model.Description) *model.Card {
	return model.NewCard(id, model.KindResource, desc)
}

func TestFindRecipe_FirstMatchWins(t *testing.T) {
	cards := []*model.Card{
		card(1, "resource.wood"),
		card(2, "resource.wood"),
	}
	r1 := Recipe{ID: "r1", Ingredients: []Ingredient{{Desc: "resource.wood", Count: 1}}}
	r2 := Recipe{ID: "r2", Ingredients: []Ingredient{{Desc: "resource.wood", Count: 2}}}

	// Both are satisfiable; argument order decides, never "fit".
	match, ok := FindRecipe(cards, []Recipe{r1, r2})
	require.True(t, ok)
	assert.Equal(t, "r1", match.Recipe.ID)

	match, ok = FindRecipe(cards, []Recipe{r2, r1})
	require.True(t, ok)
	assert.Equal(t, "r2", match.Recipe.ID)
}

func TestFindRecipe_MultisetQuantities(t *testing.T) {
	a1 := card(1, "resource.iron")
	a2 := card(2, "resource.iron")
	b := card(3, "resource.wood")

	rec := Recipe{ID: "r_two_iron", Ingredients: []Ingredient{{Desc: "resource.iron", Count: 2}}}

	// [A, A, B] against a recipe requiring [A, A]: consumes exactly the
	// two A's, leaves B alone.
	match, ok := FindRecipe([]*model.Card{a1, a2, b}, []Recipe{rec})
	require.True(t, ok)
	assert.Equal(t, []*model.Card{a1, a2}, match.Consumed)

	// One A is not enough: quantity matters.
	_, ok = FindRecipe([]*model.Card{a1, b}, []Recipe{rec})
	assert.False(t, ok)
}

func TestFindRecipe_MatchesByDescriptionNotIdentity(t *testing.T) {
	rec := Recipe{ID: "r", Ingredients: []Ingredient{
		{Desc: "resource.wood", Count: 1},
		{Desc: "resource.iron", Count: 1},
	}}

	match, ok := FindRecipe([]*model.Card{
		card(10, "resource.iron"),
		card(20, "resource.wood"),
	}, []Recipe{rec})
	require.True(t, ok)
	// Consumed cards come back in input order.
	assert.Equal(t, model.CardID(10), match.Consumed[0].ID)
	assert.Equal(t, model.CardID(20), match.Consumed[1].ID)
}

func TestFindRecipe_NoMatch(t *testing.T) {
	rec := Recipe{ID: "r", Ingredients: []Ingredient{{Desc: "resource.gold", Count: 1}}}

	_, ok := FindRecipe([]*model.Card{card(1, "resource.wood")}, []Recipe{rec})
	assert.False(t, ok)

	// A recipe with no ingredients never matches.
	_, ok = FindRecipe([]*model.Card{card(1, "resource.wood")}, []Recipe{{ID: "empty"}})
	assert.False(t, ok)
}

func TestFindRecipes_AllSatisfiable(t *testing.T) {
	cards := []*model.Card{
		card(1, "resource.wood"),
		card(2, "resource.wood"),
		card(3, "resource.iron"),
	}
	recipes := []Recipe{
		{ID: "r_one_wood", Ingredients: []Ingredient{{Desc: "resource.wood", Count: 1}}},
		{ID: "r_three_iron", Ingredients: []Ingredient{{Desc: "resource.iron", Count: 3}}},
		{ID: "r_wood_iron", Ingredients: []Ingredient{
			{Desc: "resource.wood", Count: 2},
			{Desc: "resource.iron", Count: 1},
		}},
	}

	got := FindRecipes(cards, recipes)
	require.Len(t, got, 2)
	assert.Equal(t, "r_one_wood", got[0].ID)
	assert.Equal(t, "r_wood_iron", got[1].ID)
}
