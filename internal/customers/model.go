package customers

// Customer is one row of the customer list.
type Customer struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name" validate:"notblank" label:"Name"`
	Email        string  `json:"email" validate:"required,simpleemail" label:"Email"`
	Phone        string  `json:"phone" validate:"notblank" label:"Phone number"`
	Plan         string  `json:"plan" validate:"oneof=Basic Premium Enterprise" label:"Plan"`
	Status       string  `json:"status" validate:"oneof=Active Inactive" label:"Status"`
	Address      string  `json:"address" validate:"notblank" label:"Address"`
	Avatar       *string `json:"avatar,omitempty"`
	JoinDate     string  `json:"join_date"`
	LastActivity string  `json:"last_activity"`
	TotalOrders  int     `json:"total_orders" validate:"gte=0" label:"Total orders"`
	TotalSpent   float64 `json:"total_spent" validate:"gte=0" label:"Total spent"`
}

// Patch carries the editable fields of a Customer; nil fields are left alone.
type Patch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Plan    *string `json:"plan,omitempty"`
	Status  *string `json:"status,omitempty"`
	Address *string `json:"address,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
}

func (p Patch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Plan != nil {
		c.Plan = *p.Plan
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Avatar != nil {
		c.Avatar = p.Avatar
	}
}
