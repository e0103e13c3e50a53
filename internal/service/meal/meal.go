package meal

import (
	"fmt"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/pkg/textkey"
)

// Recipe supplies the variable steps of Prepare.
type Recipe interface {
	Dish() string
	PrepareIngredients(con core.Console)
	Cook(con core.Console)
	String() string
}

// Prepare is the fixed preparation sequence: gather, prepare, cook, serve.
func Prepare(r Recipe, con core.Console) {
	con.Println("Gathering ingredients for the meal.")
	r.PrepareIngredients(con)
	r.Cook(con)
	con.Println("Serving the meal.")
}

type UserRecipe struct {
	DishName     string
	Ingredients  string
	Instructions string
}

func (u UserRecipe) Dish() string {
	return u.DishName
}

func (u UserRecipe) PrepareIngredients(con core.Console) {
	con.Println("Preparing ingredients: " + u.Ingredients)
}

func (u UserRecipe) Cook(con core.Console) {
	con.Println("Cooking instructions: " + u.Instructions)
}

func (u UserRecipe) String() string {
	return fmt.Sprintf("Dish: %s\nIngredients: %s\nCooking Instructions: %s", u.DishName, u.Ingredients, u.Instructions)
}

type Cookbook struct {
	meals []Recipe
}

func NewCookbook() *Cookbook {
	return &Cookbook{}
}

func (c *Cookbook) Add(r Recipe) {
	c.meals = append(c.meals, r)
}

func (c *Cookbook) Meals() []Recipe {
	out := make([]Recipe, len(c.meals))
	copy(out, c.meals)
	return out
}

// Search matches keyword as a case-insensitive substring of the dish name.
func (c *Cookbook) Search(keyword string) []Recipe {
	var found []Recipe
	for _, m := range c.meals {
		if textkey.Contains(m.Dish(), keyword) {
			found = append(found, m)
		}
	}
	return found
}
