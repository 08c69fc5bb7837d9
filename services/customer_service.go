package services

import (
	"errors"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"booking-gateway/models"
)

var (
	// ErrEmailTaken is returned when registering an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// Register creates a customer with a bcrypt password hash.
func (s *CustomerService) Register(email, password, fullName, phone, nationality string) (*models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
		Phone:        strings.TrimSpace(phone),
		Nationality:  strings.ToUpper(strings.TrimSpace(nationality)),
	}
	if err := s.DB.Create(customer).Error; err != nil {
		var mysqlErr *mysqldrv.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return customer, nil
}

// Login verifies credentials and returns the customer.
func (s *CustomerService) Login(email, password string) (*models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var customer models.Customer
	err := s.DB.First(&customer, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &customer, nil
}

// GetByID fetches a customer record.
func (s *CustomerService) GetByID(id uint) (models.Customer, error) {
	var customer models.Customer
	err := s.DB.First(&customer, id).Error
	return customer, err
}
