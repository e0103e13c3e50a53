package meal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/patterns/internal/transport/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare_RunsStepsInOrder(t *testing.T) {
	var out bytes.Buffer
	con := cli.NewPlain(strings.NewReader(""), &out)

	Prepare(UserRecipe{DishName: "Omelette", Ingredients: "eggs, salt", Instructions: "whisk and fry"}, con)

	assert.Equal(t, "Gathering ingredients for the meal.\n"+
		"Preparing ingredients: eggs, salt\n"+
		"Cooking instructions: whisk and fry\n"+
		"Serving the meal.\n", out.String())
}

func TestCookbook_Search(t *testing.T) {
	book := NewCookbook()
	book.Add(UserRecipe{DishName: "Chicken Curry"})
	book.Add(UserRecipe{DishName: "Vegetable Curry"})
	book.Add(UserRecipe{DishName: "Pancakes"})

	tests := []struct {
		keyword string
		want    []string
	}{
		{keyword: "curry", want: []string{"Chicken Curry", "Vegetable Curry"}},
		{keyword: "CHICK", want: []string{"Chicken Curry"}},
		{keyword: "soup", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			var got []string
			for _, m := range book.Search(tt.keyword) {
				got = append(got, m.Dish())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDemo(t *testing.T) {
	recipe := "Enter Recipe\nChicken Curry\nchicken, spices\nsimmer 30 minutes\n"

	tests := []struct {
		name         string
		script       string
		wantContains []string
	}{
		{
			name:   "enter and display",
			script: recipe + "DisplayAll\nExit\n",
			wantContains: []string{
				"Gathering ingredients for the meal.\nPreparing ingredients: chicken, spices\n",
				"Previously prepared meals:\nDish: Chicken Curry\nIngredients: chicken, spices\nCooking Instructions: simmer 30 minutes\n",
				"Exiting...\n",
			},
		},
		{
			name:         "no meals",
			script:       "displayall\nExit\n",
			wantContains: []string{"No previous meals prepared.\n"},
		},
		{
			name:         "search hit",
			script:       recipe + "Search\ncurry\nExit\n",
			wantContains: []string{"Found meals matching the keyword \"curry\":\nDish: Chicken Curry\n"},
		},
		{
			name:   "search miss falls back to all meals",
			script: recipe + "Search\nsoup\nExit\n",
			wantContains: []string{
				"No meals found with the keyword \"soup\". Displaying all meals.\nPreviously prepared meals:\nDish: Chicken Curry\n",
			},
		},
		{
			name:   "search echoes the lowercased keyword verbatim",
			script: recipe + "Search\nCURRY\nSearch\nSay \"Hi\" \\o/\nExit\n",
			wantContains: []string{
				"Found meals matching the keyword \"curry\":\n",
				"No meals found with the keyword \"say \"hi\" \\o/\". Displaying all meals.\n",
			},
		},
		{
			name:         "multi word command tolerates spacing",
			script:       "enter   recipe\nToast\nbread\ntoast it\nExit\n",
			wantContains: []string{"Cooking instructions: toast it\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, New().Run(context.Background(), cli.NewPlain(strings.NewReader(tt.script), &out)))
			for _, s := range tt.wantContains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}
