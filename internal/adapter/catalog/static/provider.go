package staticcatalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"quackmate/internal/domain/catalog"
)

// Provider serves the item catalog from an in-process table. The default
// table matches the items the game shipped with; a JSON file can replace it
// wholesale at startup.
type Provider struct {
	foods map[int]catalog.Food
	hats  map[int]catalog.Hat
}

func NewDefault() Provider {
	return newProvider(defaultFoods(), defaultHats())
}

func NewFromFile(path string) (Provider, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Provider{}, fmt.Errorf("read catalog file: %w", err)
	}
	var doc struct {
		Foods []catalog.Food `json:"foods"`
		Hats  []catalog.Hat  `json:"hats"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return Provider{}, fmt.Errorf("parse catalog file: %w", err)
	}
	return newProvider(doc.Foods, doc.Hats), nil
}

func newProvider(foods []catalog.Food, hats []catalog.Hat) Provider {
	p := Provider{
		foods: make(map[int]catalog.Food, len(foods)),
		hats:  make(map[int]catalog.Hat, len(hats)),
	}
	for _, f := range foods {
		p.foods[f.ID] = f
	}
	for _, h := range hats {
		p.hats[h.ID] = h
	}
	return p
}

func (p Provider) FoodByID(id int) (catalog.Food, bool) {
	f, ok := p.foods[id]
	return f, ok
}

func (p Provider) HatByID(id int) (catalog.Hat, bool) {
	h, ok := p.hats[id]
	return h, ok
}

func (p Provider) Foods() []catalog.Food {
	out := make([]catalog.Food, 0, len(p.foods))
	for _, f := range p.foods {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (p Provider) Hats() []catalog.Hat {
	out := make([]catalog.Hat, 0, len(p.hats))
	for _, h := range p.hats {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func defaultFoods() []catalog.Food {
	return []catalog.Food{
		{ID: 1, Name: "Bread", Description: "Plain but filling.", Price: 10, HungerRestore: 20, HealthRestore: 0, HappinessBonus: 5, Type: catalog.FoodBasic},
		{ID: 2, Name: "Fish", Description: "A duck favourite.", Price: 30, HungerRestore: 35, HealthRestore: 5, HappinessBonus: 10, Type: catalog.FoodTreat},
		{ID: 3, Name: "Super Seeds", Description: "Premium mixed seeds.", Price: 100, HungerRestore: 50, HealthRestore: 15, HappinessBonus: 15, Type: catalog.FoodPremium},
		{ID: 4, Name: "Energy Drink", Description: "Restores health, tastes awful.", Price: 150, HungerRestore: 20, HealthRestore: 40, HappinessBonus: 5, Type: catalog.FoodMedicine},
	}
}

func defaultHats() []catalog.Hat {
	return []catalog.Hat{
		{ID: 1, Name: "Baseball Cap", Description: "Sporty.", Price: 50},
		{ID: 2, Name: "Party Hat", Description: "For celebrations.", Price: 100},
		{ID: 3, Name: "Top Hat", Description: "Distinguished.", Price: 200},
		{ID: 4, Name: "Crown", Description: "For duck royalty.", Price: 500},
	}
}
