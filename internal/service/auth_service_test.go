package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mvdutta/honey-rae-server/internal/models"
	"github.com/mvdutta/honey-rae-server/internal/repository"
	"github.com/mvdutta/honey-rae-server/internal/utils"
)

type memUsers struct {
	seq    int
	byMail map[string]*models.User
	hashes map[string]string
}

func newMemUsers() *memUsers {
	return &memUsers{byMail: map[string]*models.User{}, hashes: map[string]string{}}
}

func (m *memUsers) Create(_ context.Context, email, first, last, hash string, staff bool) (*models.User, error) {
	m.seq++
	u := &models.User{ID: fmt.Sprintf("u%d", m.seq), Email: email, FirstName: first, LastName: last, IsStaff: staff}
	m.byMail[email] = u
	m.hashes[email] = hash
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, string, error) {
	u, ok := m.byMail[email]
	if !ok {
		return nil, "", repository.ErrNotFound
	}
	return u, m.hashes[email], nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byMail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memCustomers struct {
	seq     int
	byUser  map[string]*models.Customer
}

func newMemCustomers() *memCustomers { return &memCustomers{byUser: map[string]*models.Customer{}} }

func (m *memCustomers) List(context.Context) ([]models.Customer, error) { return nil, nil }

func (m *memCustomers) Get(_ context.Context, id string) (*models.Customer, error) {
	for _, c := range m.byUser {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memCustomers) GetByUserID(_ context.Context, userID string) (*models.Customer, error) {
	c, ok := m.byUser[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (m *memCustomers) Create(_ context.Context, c *models.Customer) error {
	m.seq++
	c.ID = fmt.Sprintf("c%d", m.seq)
	m.byUser[c.UserID] = c
	return nil
}

func TestRegisterCreatesCustomerProfile(t *testing.T) {
	users, customers := newMemUsers(), newMemCustomers()
	svc := NewAuthService(users, customers, "secret")

	tok, u, err := svc.Register(context.Background(), "ann@example.com", "Ann", "Fields", "hunter22", "12 Elm St")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if tok == "" {
		t.Fatal("empty token")
	}
	if u.IsStaff {
		t.Fatal("self-registration must not grant staff")
	}

	c, err := customers.GetByUserID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("no customer profile created: %v", err)
	}
	if c.Address != "12 Elm St" {
		t.Fatalf("address = %q", c.Address)
	}

	claims, err := utils.ParseJWT("secret", tok)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != u.ID || claims.Staff {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := NewAuthService(newMemUsers(), newMemCustomers(), "secret")

	tests := []struct {
		name                         string
		email, first, last, password string
	}{
		{"empty email", "", "Ann", "Fields", "hunter22"},
		{"empty first name", "ann@example.com", "", "Fields", "hunter22"},
		{"short password", "ann@example.com", "Ann", "Fields", "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Register(context.Background(), tt.email, tt.first, tt.last, tt.password, ""); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	users, customers := newMemUsers(), newMemCustomers()
	svc := NewAuthService(users, customers, "secret")

	if _, _, err := svc.Register(context.Background(), "ann@example.com", "Ann", "Fields", "hunter22", ""); err != nil {
		t.Fatal(err)
	}

	tok, u, err := svc.Login(context.Background(), "ann@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok == "" || u.Email != "ann@example.com" {
		t.Fatalf("tok=%q user=%+v", tok, u)
	}

	if _, _, err := svc.Login(context.Background(), "ann@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: err = %v", err)
	}
}
