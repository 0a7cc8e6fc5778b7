package services

// Customer is a buyer on record. Country and State drive the tax branch.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Website       string `json:"website"`
	Address       string `json:"address"`
	State         string `json:"state"`
	Country       string `json:"country"`
	OwnerID       string `json:"ownerId"`
}

// Jurisdiction extracts the tax-relevant address slice.
func (c Customer) Jurisdiction() Jurisdiction {
	return Jurisdiction{Country: c.Country, State: c.State}
}
