// Package plans configures the subscription plan catalogue and computes the
// discount annual billing gives over monthly billing.
package plans

import (
	"cmp"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vendorhub/dashboard/internal/listengine"
)

// Feature is one line on a plan card.
type Feature struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Plan is one subscription tier.
type Plan struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"notblank" label:"Plan name"`
	Description  string    `json:"description" validate:"notblank" label:"Plan description"`
	MonthlyPrice float64   `json:"monthly_price" validate:"gt=0" label:"Monthly price"`
	AnnualPrice  float64   `json:"annual_price" validate:"gt=0" label:"Annual price"`
	IsPopular    bool      `json:"is_popular"`
	Features     []Feature `json:"features" validate:"min=1" msg:"At least one feature is required"`
	ButtonText   string    `json:"button_text"`
	ButtonColor  string    `json:"button_color" validate:"omitempty,oneof=primary secondary success warning" label:"Button color"`
	Category     string    `json:"category" validate:"oneof=basic pro enterprise" label:"Category"`
}

// Patch carries the editable fields of a Plan. Features replaces the whole list.
type Patch struct {
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	MonthlyPrice *float64   `json:"monthly_price,omitempty"`
	AnnualPrice  *float64   `json:"annual_price,omitempty"`
	IsPopular    *bool      `json:"is_popular,omitempty"`
	Features     *[]Feature `json:"features,omitempty"`
	ButtonText   *string    `json:"button_text,omitempty"`
	ButtonColor  *string    `json:"button_color,omitempty"`
	Category     *string    `json:"category,omitempty"`
}

func (p Patch) Apply(pl *Plan) {
	if p.Name != nil {
		pl.Name = *p.Name
	}
	if p.Description != nil {
		pl.Description = *p.Description
	}
	if p.MonthlyPrice != nil {
		pl.MonthlyPrice = *p.MonthlyPrice
	}
	if p.AnnualPrice != nil {
		pl.AnnualPrice = *p.AnnualPrice
	}
	if p.IsPopular != nil {
		pl.IsPopular = *p.IsPopular
	}
	if p.Features != nil {
		pl.Features = append([]Feature(nil), (*p.Features)...)
	}
	if p.ButtonText != nil {
		pl.ButtonText = *p.ButtonText
	}
	if p.ButtonColor != nil {
		pl.ButtonColor = *p.ButtonColor
	}
	if p.Category != nil {
		pl.Category = *p.Category
	}
}

// Config describes the plan catalogue to the engine.
func Config() *listengine.Config[Plan, int64] {
	return &listengine.Config[Plan, int64]{
		Entity: "plans",
		Label:  listengine.Label{Singular: "Plan", Plural: "plans"},
		Key:    func(p Plan) int64 { return p.ID },
		SetKey: func(p *Plan, id int64) { p.ID = id },
		NextID: listengine.NextInt64,
		Name:   func(p Plan) string { return p.Name },
		SearchFields: []func(Plan) string{
			func(p Plan) string { return p.Name },
			func(p Plan) string { return p.Description },
		},
		Filters: map[string]func(Plan) string{
			"category": func(p Plan) string { return p.Category },
			"popular":  func(p Plan) string { return strconv.FormatBool(p.IsPopular) },
		},
		Sorters: map[string]func(a, b Plan) int{
			"name":          func(a, b Plan) int { return cmp.Compare(a.Name, b.Name) },
			"monthly_price": func(a, b Plan) int { return cmp.Compare(a.MonthlyPrice, b.MonthlyPrice) },
		},
		OnDuplicate: func(p *Plan) {
			p.Name += " (Copy)"
			p.IsPopular = false
		},
	}
}

func NewStore(deps listengine.StoreDeps) (*listengine.Store[Plan, int64], error) {
	return listengine.NewStore(Config(), Seed(), deps)
}

var hundred = decimal.NewFromInt(100)

// savingsPercent is round((monthly*12 - annual) / (monthly*12) * 100), or 0 when
// annual billing is not cheaper.
func savingsPercent(monthly, annual decimal.Decimal) int64 {
	yearly := monthly.Mul(decimal.NewFromInt(12))
	if !yearly.GreaterThan(annual) {
		return 0
	}
	return yearly.Sub(annual).Div(yearly).Mul(hundred).Round(0).IntPart()
}

// PlanSavings is the annual billing discount of a single plan in percent.
func PlanSavings(p Plan) int64 {
	return savingsPercent(decimal.NewFromFloat(p.MonthlyPrice), decimal.NewFromFloat(p.AnnualPrice))
}

// AnnualSavings is the discount across the whole catalogue: twelve months of every
// plan against the sum of their annual prices.
func AnnualSavings(plans []Plan) int64 {
	monthly, annual := decimal.Zero, decimal.Zero
	for _, p := range plans {
		monthly = monthly.Add(decimal.NewFromFloat(p.MonthlyPrice))
		annual = annual.Add(decimal.NewFromFloat(p.AnnualPrice))
	}
	return savingsPercent(monthly, annual)
}

// Seed returns the plan catalogue the dashboard starts with.
func Seed() []Plan {
	return []Plan{
		{
			ID:           1,
			Name:         "Creator",
			Description:  "Unlock powerful AI tools to create your content, wherever you work online.",
			MonthlyPrice: 19,
			AnnualPrice:  190,
			ButtonText:   "Choose Plan",
			ButtonColor:  "primary",
			Category:     "basic",
			Features: []Feature{
				{ID: "1", Name: "01 User Access"},
				{ID: "2", Name: "Access to Fiora AI Chatbot"},
				{ID: "3", Name: "Access to SEO Mode"},
				{ID: "4", Name: "AI Image Generation and editing Tool"},
				{ID: "5", Name: "03 Brand Voice Access"},
				{ID: "6", Name: "Use AI with Browser Extension"},
			},
		},
		{
			ID:           2,
			Name:         "Pro Plan",
			Description:  "Leverage advanced AI to create content for multiple brands or campaigns.",
			MonthlyPrice: 99,
			AnnualPrice:  990,
			IsPopular:    true,
			ButtonText:   "Switch to this Plan",
			ButtonColor:  "primary",
			Category:     "pro",
			Features: []Feature{
				{ID: "7", Name: "05 User Access", Description: "Unlimited Access"},
				{ID: "8", Name: "10 Knowledge Assets"},
				{ID: "9", Name: "Access to Pro SEO Mode"},
				{ID: "10", Name: "Collaboration with our Management"},
				{ID: "11", Name: "10 Brand Voice Access"},
				{ID: "12", Name: "01 Page Custom change Access"},
			},
		},
		{
			ID:           3,
			Name:         "Business Plan",
			Description:  "Personalized AI with enhanced controls, security, team training, and tech support.",
			MonthlyPrice: 199,
			AnnualPrice:  1990,
			ButtonText:   "Choose Plan",
			ButtonColor:  "success",
			Category:     "enterprise",
			Features: []Feature{
				{ID: "13", Name: "Unlimited Feature Usage"},
				{ID: "14", Name: "Performance Analytics & Insights"},
				{ID: "15", Name: "Custom Style Guides with New View"},
				{ID: "16", Name: "Advanced Admin Panel Access"},
				{ID: "17", Name: "Group Document Collaboration"},
				{ID: "18", Name: "High Security Platform"},
			},
		},
	}
}
