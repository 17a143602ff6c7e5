package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mvdutta/honey-rae-server/internal/models"
	"github.com/mvdutta/honey-rae-server/internal/repository"
	"github.com/mvdutta/honey-rae-server/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

type AuthService struct {
	users         repository.UserRepository
	customers     repository.CustomerRepository
	sessionSecret string
}

func NewAuthService(users repository.UserRepository, customers repository.CustomerRepository, sessionSecret string) *AuthService {
	return &AuthService{users: users, customers: customers, sessionSecret: sessionSecret}
}

// Register creates an account plus its customer profile and returns a session
// token. Self-registration always produces a non-staff customer account.
func (a *AuthService) Register(ctx context.Context, email, firstName, lastName, password, address string) (string, *models.User, error) {
	email = strings.TrimSpace(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if email == "" || firstName == "" || len(password) < 6 {
		return "", nil, errors.New("invalid input")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}
	u, err := a.users.Create(ctx, email, firstName, lastName, hash, false)
	if err != nil {
		return "", nil, err
	}
	c := &models.Customer{UserID: u.ID, Address: strings.TrimSpace(address)}
	if err := a.customers.Create(ctx, c); err != nil {
		return "", nil, err
	}

	tok, err := utils.SignJWT(a.sessionSecret, u.ID, u.IsStaff, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, hash, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !utils.CheckPassword(hash, password) {
		return "", nil, ErrInvalidCredentials
	}
	tok, err := utils.SignJWT(a.sessionSecret, u.ID, u.IsStaff, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}
