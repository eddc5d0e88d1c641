// Package vendors configures the vendor directory list.
package vendors

import (
	"cmp"
	"time"

	"github.com/vendorhub/dashboard/internal/listengine"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusPending  = "Pending"
)

// Categories lists the vendor categories the directory accepts.
var Categories = []string{
	"Electronics",
	"Apparel",
	"Home & Living",
	"Automotive",
	"Kitchenware",
	"Books",
	"Health & Wellness",
}

// Vendor is one row of the vendor directory. Category is checked against
// Categories by the vendorcategory tag since several names contain spaces.
type Vendor struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name" validate:"notblank" label:"Vendor name"`
	Category      string  `json:"category" validate:"vendorcategory" label:"Category" msg:"Please choose a category"`
	Email         string  `json:"email" validate:"required,simpleemail" label:"Email"`
	Phone         string  `json:"phone" validate:"notblank" label:"Phone number"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5" label:"Rating"`
	Status        string  `json:"status" validate:"oneof=Active Inactive Pending" label:"Status"`
	TotalProducts int     `json:"total_products" validate:"gte=0" label:"Total products"`
	JoinedDate    string  `json:"joined_date"`
	IsVerified    bool    `json:"is_verified"`
	Description   string  `json:"description"`
	Avatar        *string `json:"avatar,omitempty"`
	Address       string  `json:"address" validate:"notblank" label:"Address"`
}

// Patch carries the editable fields of a Vendor.
type Patch struct {
	Name          *string  `json:"name,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Status        *string  `json:"status,omitempty"`
	TotalProducts *int     `json:"total_products,omitempty"`
	IsVerified    *bool    `json:"is_verified,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Avatar        *string  `json:"avatar,omitempty"`
	Address       *string  `json:"address,omitempty"`
}

func (p Patch) Apply(v *Vendor) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Category != nil {
		v.Category = *p.Category
	}
	if p.Email != nil {
		v.Email = *p.Email
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Rating != nil {
		v.Rating = *p.Rating
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.TotalProducts != nil {
		v.TotalProducts = *p.TotalProducts
	}
	if p.IsVerified != nil {
		v.IsVerified = *p.IsVerified
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Avatar != nil {
		v.Avatar = p.Avatar
	}
	if p.Address != nil {
		v.Address = *p.Address
	}
}

func init() {
	listengine.RegisterOneOf("vendorcategory", Categories)
}

func ptr[T any](v T) *T { return &v }

// Config describes the vendor directory to the engine.
func Config() *listengine.Config[Vendor, int64] {
	return &listengine.Config[Vendor, int64]{
		Entity: "vendors",
		Label:  listengine.Label{Singular: "Vendor", Plural: "vendors"},
		Key:    func(v Vendor) int64 { return v.ID },
		SetKey: func(v *Vendor, id int64) { v.ID = id },
		NextID: listengine.NextInt64,
		Name:   func(v Vendor) string { return v.Name },
		SearchFields: []func(Vendor) string{
			func(v Vendor) string { return v.Name },
			func(v Vendor) string { return v.Email },
			func(v Vendor) string { return v.Address },
		},
		Filters: map[string]func(Vendor) string{
			"status":   func(v Vendor) string { return v.Status },
			"category": func(v Vendor) string { return v.Category },
		},
		Sorters: map[string]func(a, b Vendor) int{
			"name":        func(a, b Vendor) int { return cmp.Compare(a.Name, b.Name) },
			"rating":      func(a, b Vendor) int { return cmp.Compare(a.Rating, b.Rating) },
			"joined_date": func(a, b Vendor) int { return cmp.Compare(a.JoinedDate, b.JoinedDate) },
		},
		OnCreate: func(v *Vendor, now time.Time) {
			v.JoinedDate = now.Format(time.DateOnly)
			if v.Status == "" {
				v.Status = StatusActive
			}
			if v.Category == "" {
				v.Category = Categories[0]
			}
		},
		OnDuplicate: func(v *Vendor) {
			v.Name += " (Copy)"
			v.IsVerified = false
		},
		BulkActions: map[string]listengine.BulkAction[Vendor]{
			"activate":   {Verb: "Activate", Patch: Patch{Status: ptr(StatusActive)}},
			"deactivate": {Verb: "Deactivate", Patch: Patch{Status: ptr(StatusInactive)}},
			"verify":     {Verb: "Verify", Patch: Patch{IsVerified: ptr(true)}},
		},
		DefaultPageSize: 7,
	}
}

func NewStore(deps listengine.StoreDeps) (*listengine.Store[Vendor, int64], error) {
	return listengine.NewStore(Config(), Seed(), deps)
}

// Seed returns the vendors the dashboard starts with.
func Seed() []Vendor {
	return []Vendor{
		{ID: 1, Name: "TechHub Electronics", Category: "Electronics", Email: "contact@techhub.com", Phone: "+1 (555) 201-1001", Rating: 4.8, Status: StatusActive, TotalProducts: 245, JoinedDate: "2023-03-15", IsVerified: true, Description: "Consumer electronics and accessories.", Address: "120 Market St, San Francisco, CA 94105"},
		{ID: 2, Name: "Urban Threads", Category: "Apparel", Email: "hello@urbanthreads.com", Phone: "+1 (555) 201-1002", Rating: 4.5, Status: StatusActive, TotalProducts: 189, JoinedDate: "2023-05-22", IsVerified: true, Description: "Streetwear and everyday basics.", Address: "48 Broadway, New York, NY 10004"},
		{ID: 3, Name: "Cozy Nest Home", Category: "Home & Living", Email: "support@cozynest.com", Phone: "+1 (555) 201-1003", Rating: 4.2, Status: StatusPending, TotalProducts: 76, JoinedDate: "2024-01-08", Description: "Furniture and home decor.", Address: "9 Lakeview Dr, Chicago, IL 60601"},
		{ID: 4, Name: "AutoParts Direct", Category: "Automotive", Email: "sales@autopartsdirect.com", Phone: "+1 (555) 201-1004", Rating: 3.9, Status: StatusInactive, TotalProducts: 512, JoinedDate: "2022-11-30", IsVerified: true, Description: "Replacement parts and tools.", Address: "700 Motor Way, Detroit, MI 48201"},
		{ID: 5, Name: "Chef's Corner", Category: "Kitchenware", Email: "info@chefscorner.com", Phone: "+1 (555) 201-1005", Rating: 4.6, Status: StatusActive, TotalProducts: 134, JoinedDate: "2023-08-14", IsVerified: true, Description: "Cookware for home and professional kitchens.", Address: "33 Culinary Ave, Austin, TX 73301"},
		{ID: 6, Name: "Page Turner Books", Category: "Books", Email: "orders@pageturner.com", Phone: "+1 (555) 201-1006", Rating: 4.9, Status: StatusActive, TotalProducts: 980, JoinedDate: "2022-06-01", IsVerified: true, Description: "New and used books.", Address: "5 Library Ln, Boston, MA 02108"},
		{ID: 7, Name: "Vital Wellness", Category: "Health & Wellness", Email: "care@vitalwellness.com", Phone: "+1 (555) 201-1007", Rating: 4.1, Status: StatusPending, TotalProducts: 58, JoinedDate: "2024-02-19", Description: "Supplements and self-care.", Address: "210 Harbor Rd, Seattle, WA 98101"},
		{ID: 8, Name: "Gadget Galaxy", Category: "Electronics", Email: "team@gadgetgalaxy.com", Phone: "+1 (555) 201-1008", Rating: 4.3, Status: StatusActive, TotalProducts: 301, JoinedDate: "2023-10-03", Description: "Smart home devices and gadgets.", Address: "88 Innovation Blvd, San Jose, CA 95110"},
		{ID: 9, Name: "Denim District", Category: "Apparel", Email: "hi@denimdistrict.com", Phone: "+1 (555) 201-1009", Rating: 3.7, Status: StatusInactive, TotalProducts: 64, JoinedDate: "2023-12-12", Description: "Denim and workwear.", Address: "14 Mill St, Portland, OR 97201"},
		{ID: 10, Name: "Green Leaf Living", Category: "Home & Living", Email: "hello@greenleaf.com", Phone: "+1 (555) 201-1010", Rating: 4.4, Status: StatusActive, TotalProducts: 122, JoinedDate: "2024-03-27", IsVerified: true, Description: "Sustainable home goods.", Address: "61 Garden Way, Denver, CO 80202"},
	}
}
