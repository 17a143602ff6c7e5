package models

import "time"

// Ticket is a repair request. Customer is set at creation and never reassigned;
// employee and completion date are independently nullable and only settable via update.
type Ticket struct {
	ID            string
	CustomerID    string
	EmployeeID    string // empty = unclaimed
	Description   string
	Emergency     bool
	DateCompleted *Date // nil = open
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Display fields joined from the linked accounts at read time.
	CustomerFirst     string
	CustomerLast      string
	CustomerAddress   string
	EmployeeFirst     string
	EmployeeLast      string
	EmployeeSpecialty string
}

type TicketView struct {
	ID            string        `json:"id"`
	Customer      CustomerView  `json:"customer"`
	Employee      *EmployeeView `json:"employee"`
	Description   string        `json:"description"`
	Emergency     bool          `json:"emergency"`
	DateCompleted *Date         `json:"date_completed"`
}

func (t *Ticket) View() TicketView {
	v := TicketView{
		ID: t.ID,
		Customer: CustomerView{
			ID:       t.CustomerID,
			FullName: FullName(t.CustomerFirst, t.CustomerLast),
			Address:  t.CustomerAddress,
		},
		Description:   t.Description,
		Emergency:     t.Emergency,
		DateCompleted: t.DateCompleted,
	}
	if t.EmployeeID != "" {
		v.Employee = &EmployeeView{
			ID:        t.EmployeeID,
			Specialty: t.EmployeeSpecialty,
			FullName:  FullName(t.EmployeeFirst, t.EmployeeLast),
		}
	}
	return v
}
