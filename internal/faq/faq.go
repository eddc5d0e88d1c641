// Package faq configures the FAQ editor list. Items are keyed by random string ids.
package faq

import (
	"strings"

	"github.com/vendorhub/dashboard/internal/listengine"
)

// Item is one question and its answer.
type Item struct {
	ID      string `json:"id"`
	Title   string `json:"title" validate:"notblank" msg:"Please enter a title"`
	Content string `json:"content" validate:"notblank" msg:"Please enter content"`
}

type Patch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (p Patch) Apply(it *Item) {
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Content != nil {
		it.Content = *p.Content
	}
}

func Config() *listengine.Config[Item, string] {
	return &listengine.Config[Item, string]{
		Entity: "faq",
		Label:  listengine.Label{Singular: "FAQ item", Plural: "FAQ items"},
		Key:    func(it Item) string { return it.ID },
		SetKey: func(it *Item, id string) { it.ID = id },
		NextID: listengine.NewUUID,
		Name:   func(it Item) string { return it.Title },
		SearchFields: []func(Item) string{
			func(it Item) string { return it.Title },
			func(it Item) string { return it.Content },
		},
		Sorters: map[string]func(a, b Item) int{
			"title": func(a, b Item) int { return strings.Compare(a.Title, b.Title) },
		},
		OnDuplicate: func(it *Item) {
			it.Title += " (Copy)"
		},
	}
}

func NewStore(deps listengine.StoreDeps) (*listengine.Store[Item, string], error) {
	return listengine.NewStore(Config(), Seed(), deps)
}

// Seed returns the FAQ entries the dashboard starts with.
func Seed() []Item {
	return []Item{
		{
			ID:      "1",
			Title:   "How do I add a new vendor to the system?",
			Content: "Navigate to the Vendors section and click Add Vendor. Fill in the required fields such as vendor name, category and address, then click Save. A confirmation appears once the vendor is added.",
		},
		{
			ID:      "2",
			Title:   "How can I filter vendors by category?",
			Content: "Pick a category from the filter dropdown in the Vendors section. Combine it with the search bar to narrow results by vendor name or address.",
		},
		{
			ID:      "3",
			Title:   "What happens when I edit a vendor's details?",
			Content: "Click Edit next to the vendor. The form opens with the current details filled in. Change the fields you need and click Save Changes; the list updates immediately.",
		},
	}
}
