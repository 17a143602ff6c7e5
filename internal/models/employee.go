package models

import "time"

type Employee struct {
	ID        string
	UserID    string
	Specialty string
	CreatedAt time.Time

	// joined from users
	FirstName string
	LastName  string
}

type EmployeeView struct {
	ID        string `json:"id"`
	Specialty string `json:"specialty"`
	FullName  string `json:"full_name"`
}

func (e *Employee) View() EmployeeView {
	return EmployeeView{
		ID:        e.ID,
		Specialty: e.Specialty,
		FullName:  FullName(e.FirstName, e.LastName),
	}
}
