package models

import "time"

type Customer struct {
	ID        string
	UserID    string
	Address   string
	CreatedAt time.Time

	// joined from users
	FirstName string
	LastName  string
}

type CustomerView struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Address  string `json:"address"`
}

func (c *Customer) View() CustomerView {
	return CustomerView{
		ID:       c.ID,
		FullName: FullName(c.FirstName, c.LastName),
		Address:  c.Address,
	}
}
