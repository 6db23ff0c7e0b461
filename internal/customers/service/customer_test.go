package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	customerserrors "eventdesk/internal/customers/errors"
	"eventdesk/internal/customers/validator"
	"eventdesk/pkg/config"
	apperrors "eventdesk/pkg/errors"
	"eventdesk/pkg/logger"
	"eventdesk/pkg/model"
)

type mockCustomerRepository struct {
	customers []*model.Customer
	nextID    int
}

func (m *mockCustomerRepository) Create(_ context.Context, customer *model.Customer) error {
	for _, c := range m.customers {
		if c.Phone != "" && c.Phone == customer.Phone {
			return customerserrors.ErrDuplicatePhone
		}
	}
	m.nextID++
	customer.ID = fmt.Sprintf("%024x", m.nextID)
	copied := *customer
	m.customers = append(m.customers, &copied)
	return nil
}

func (m *mockCustomerRepository) FindByID(_ context.Context, id string) (*model.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, customerserrors.ErrNotFound
}

func (m *mockCustomerRepository) FindAll(_ context.Context, limit int, offset int64) ([]*model.Customer, error) {
	return m.customers, nil
}

func (m *mockCustomerRepository) Count(_ context.Context) (int64, error) {
	return int64(len(m.customers)), nil
}

func (m *mockCustomerRepository) Search(_ context.Context, query string, limit int) ([]*model.Customer, error) {
	var out []*model.Customer
	q := strings.ToLower(query)
	for _, c := range m.customers {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCustomerRepository) Update(_ context.Context, id string, customer *model.Customer) error {
	for i, c := range m.customers {
		if c.ID == id {
			copied := *customer
			copied.ID = id
			m.customers[i] = &copied
			return nil
		}
	}
	return customerserrors.ErrNotFound
}

func (m *mockCustomerRepository) Delete(_ context.Context, id string) error {
	for i, c := range m.customers {
		if c.ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return customerserrors.ErrNotFound
}

func newTestService(repo *mockCustomerRepository) CustomerService {
	cfg := &config.Config{
		Log: logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard}),
	}
	return NewCustomerService(repo, validator.NewCustomerValidator(), cfg)
}

func TestCreateCustomer(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := newTestService(repo)

	customer := &model.Customer{
		Name:  "  Priya   Sharma  ",
		Email: "Priya.Sharma@Example.COM",
		Phone: "+919876543210",
	}
	if err := svc.Create(context.Background(), customer); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if customer.Name != "Priya Sharma" {
		t.Errorf("Name = %q, want normalized %q", customer.Name, "Priya Sharma")
	}
	if customer.Email != "priya.sharma@example.com" {
		t.Errorf("Email = %q, want lowercased", customer.Email)
	}
	if customer.ID == "" {
		t.Error("expected assigned customer ID")
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	svc := newTestService(&mockCustomerRepository{})

	tests := []struct {
		name     string
		customer *model.Customer
	}{
		{"missing name", &model.Customer{Email: "a@example.com"}},
		{"name too short", &model.Customer{Name: "P"}},
		{"bad email", &model.Customer{Name: "Priya Sharma", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(context.Background(), tt.customer)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
				t.Errorf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestCreateCustomerDuplicatePhone(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := newTestService(repo)

	first := &model.Customer{Name: "Priya Sharma", Phone: "+919876543210"}
	if err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	second := &model.Customer{Name: "Another Person", Phone: "+919876543210"}
	err := svc.Create(context.Background(), second)
	if err == nil {
		t.Fatal("expected duplicate phone error, got nil")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Errorf("expected CONFLICT, got %v", err)
	}
}

func TestSearchCustomers(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := newTestService(repo)

	names := []string{"Priya Sharma", "Rahul Mehta", "Priyanka Iyer"}
	for _, name := range names {
		if err := svc.Create(context.Background(), &model.Customer{Name: name}); err != nil {
			t.Fatalf("Create(%s) error: %v", name, err)
		}
	}

	results, err := svc.Search(context.Background(), "priya")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Search(priya) returned %d results, want 2", len(results))
	}

	if _, err := svc.Search(context.Background(), "   "); err == nil {
		t.Error("expected error for blank query")
	}
}

func TestUpdateCustomer(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := newTestService(repo)

	customer := &model.Customer{Name: "Priya Sharma"}
	if err := svc.Create(context.Background(), customer); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	email := "priya@example.com"
	if err := svc.Update(context.Background(), customer.ID, &model.CustomerUpdate{Email: &email}); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	updated, err := svc.GetByID(context.Background(), customer.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if updated.Email != email {
		t.Errorf("Email = %q, want %q", updated.Email, email)
	}
	if updated.Name != "Priya Sharma" {
		t.Errorf("Name = %q, must be unchanged", updated.Name)
	}
}

func TestUpdateCustomerEmptyUpdate(t *testing.T) {
	svc := newTestService(&mockCustomerRepository{})

	err := svc.Update(context.Background(), "66f0000000000000000000aa", &model.CustomerUpdate{})
	if err == nil {
		t.Fatal("expected error for empty update")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestDeleteCustomerNotFound(t *testing.T) {
	svc := newTestService(&mockCustomerRepository{})

	err := svc.Delete(context.Background(), "66f0000000000000000000ff")
	if err == nil {
		t.Fatal("expected not found error, got nil")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
