package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mvdutta/honey-rae-server/internal/models"
	"github.com/mvdutta/honey-rae-server/internal/repository"
)

// In-memory store backing the repository fakes. Display fields are joined on
// read the same way the postgres repos do.
type fakeStore struct {
	seqs      map[string]int
	users     map[string]*models.User
	customers map[string]*models.Customer
	employees map[string]*models.Employee
	tickets   map[string]*models.Ticket
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		seqs:      map[string]int{},
		users:     map[string]*models.User{},
		customers: map[string]*models.Customer{},
		employees: map[string]*models.Employee{},
		tickets:   map[string]*models.Ticket{},
	}
}

func (s *fakeStore) nextID(prefix string) string {
	s.seqs[prefix]++
	return fmt.Sprintf("%s%d", prefix, s.seqs[prefix])
}

func (s *fakeStore) addUser(first, last string, staff bool) *models.User {
	u := &models.User{
		ID:        s.nextID("u"),
		Email:     strings.ToLower(first + "." + last + "@example.com"),
		FirstName: first,
		LastName:  last,
		IsStaff:   staff,
		CreatedAt: time.Now(),
	}
	s.users[u.ID] = u
	return u
}

func (s *fakeStore) addCustomer(u *models.User, address string) *models.Customer {
	c := &models.Customer{
		ID:        s.nextID("c"),
		UserID:    u.ID,
		Address:   address,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	s.customers[c.ID] = c
	return c
}

func (s *fakeStore) addEmployee(u *models.User, specialty string) *models.Employee {
	e := &models.Employee{
		ID:        s.nextID("e"),
		UserID:    u.ID,
		Specialty: specialty,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	s.employees[e.ID] = e
	return e
}

func (s *fakeStore) addTicket(customerID, employeeID, description string, emergency bool, completed *models.Date) *models.Ticket {
	t := &models.Ticket{
		ID:            s.nextID("t"),
		CustomerID:    customerID,
		EmployeeID:    employeeID,
		Description:   description,
		Emergency:     emergency,
		DateCompleted: completed,
		CreatedAt:     time.Now(),
	}
	s.tickets[t.ID] = t
	return t
}

// join fills the display fields the postgres repos produce via SQL joins.
func (s *fakeStore) join(t models.Ticket) models.Ticket {
	if c, ok := s.customers[t.CustomerID]; ok {
		t.CustomerFirst, t.CustomerLast, t.CustomerAddress = c.FirstName, c.LastName, c.Address
	}
	if e, ok := s.employees[t.EmployeeID]; ok {
		t.EmployeeFirst, t.EmployeeLast, t.EmployeeSpecialty = e.FirstName, e.LastName, e.Specialty
	}
	return t
}

// ----- repository.TicketRepository -----

type fakeTickets struct{ s *fakeStore }

func (f *fakeTickets) List(_ context.Context, fl repository.TicketFilter) ([]models.Ticket, error) {
	var out []models.Ticket
	for _, t := range f.s.tickets {
		if fl.CustomerID != "" && t.CustomerID != fl.CustomerID {
			continue
		}
		if !repository.StatusMatches(fl.Status, t.EmployeeID != "", t.DateCompleted != nil) {
			continue
		}
		if fl.Search != "" && !strings.Contains(t.Description, fl.Search) {
			continue
		}
		out = append(out, f.s.join(*t))
	}
	return out, nil
}

func (f *fakeTickets) Get(_ context.Context, id string) (*models.Ticket, error) {
	t, ok := f.s.tickets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	joined := f.s.join(*t)
	return &joined, nil
}

func (f *fakeTickets) Create(_ context.Context, t *models.Ticket) error {
	t.ID = f.s.nextID("t")
	t.CreatedAt = time.Now()
	cp := *t
	f.s.tickets[t.ID] = &cp
	return nil
}

func (f *fakeTickets) Update(_ context.Context, t *models.Ticket) error {
	if _, ok := f.s.tickets[t.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *t
	f.s.tickets[t.ID] = &cp
	return nil
}

func (f *fakeTickets) Delete(_ context.Context, id string) error {
	if _, ok := f.s.tickets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.tickets, id)
	return nil
}

// ----- repository.CustomerRepository -----

type fakeCustomers struct{ s *fakeStore }

func (f *fakeCustomers) List(context.Context) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.s.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomers) Get(_ context.Context, id string) (*models.Customer, error) {
	c, ok := f.s.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomers) GetByUserID(_ context.Context, userID string) (*models.Customer, error) {
	for _, c := range f.s.customers {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCustomers) Create(_ context.Context, c *models.Customer) error {
	c.ID = f.s.nextID("c")
	cp := *c
	f.s.customers[c.ID] = &cp
	return nil
}

// ----- repository.EmployeeRepository -----

type fakeEmployees struct{ s *fakeStore }

func (f *fakeEmployees) List(context.Context) ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range f.s.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployees) Get(_ context.Context, id string) (*models.Employee, error) {
	e, ok := f.s.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployees) Create(_ context.Context, e *models.Employee) error {
	e.ID = f.s.nextID("e")
	cp := *e
	f.s.employees[e.ID] = &cp
	return nil
}

// ----- repository.UserRepository -----

type fakeUsers struct{ s *fakeStore }

func (f *fakeUsers) Create(_ context.Context, email, firstName, lastName, _ string, staff bool) (*models.User, error) {
	u := &models.User{
		ID:        f.s.nextID("u"),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		IsStaff:   staff,
		CreatedAt: time.Now(),
	}
	f.s.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, string, error) {
	for _, u := range f.s.users {
		if u.Email == email {
			return u, "", nil
		}
	}
	return nil, "", repository.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}
