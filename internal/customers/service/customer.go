package service

import (
	"context"
	"errors"
	"sync"

	customerserrors "eventdesk/internal/customers/errors"
	"eventdesk/internal/customers/repository"
	"eventdesk/internal/customers/validator"
	"eventdesk/pkg/config"
	apperrors "eventdesk/pkg/errors"
	"eventdesk/pkg/model"
	"eventdesk/pkg/sanitizer"
)

const maxSearchResults = 20

type CustomerService interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Customer, int64, error)
	Search(ctx context.Context, query string) ([]*model.Customer, error)
	Update(ctx context.Context, id string, updates *model.CustomerUpdate) error
	Delete(ctx context.Context, id string) error
}

type customerService struct {
	repo      repository.CustomerRepository
	validator *validator.CustomerValidator
	cfg       *config.Config
}

func NewCustomerService(repo repository.CustomerRepository, v *validator.CustomerValidator, cfg *config.Config) CustomerService {
	return &customerService{
		repo:      repo,
		validator: v,
		cfg:       cfg,
	}
}

func (s *customerService) Create(ctx context.Context, customer *model.Customer) error {
	customer.ID = ""
	s.sanitize(customer)

	if err := s.validator.Validate(customer); err != nil {
		s.cfg.Log.Warn("Customer validation failed", "error", err)
		return apperrors.Validation("Customer validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, customerserrors.ErrDuplicatePhone) {
			return apperrors.Conflict("A customer with this phone number already exists")
		}
		s.cfg.Log.Error("Failed to create customer", "error", err)
		return apperrors.Internal("Failed to create customer", err)
	}

	s.cfg.Log.Info("Customer created successfully", "id", customer.ID, "name", customer.Name)
	return nil
}

func (s *customerService) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Customer ID cannot be empty")
	}

	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Customer", id)
		}
		if errors.Is(err, customerserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid customer ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve customer", err)
	}

	return customer, nil
}

func (s *customerService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Customer, int64, error) {
	var count int64
	var customers []*model.Customer
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count customers", "error", errCount)
			errCount = apperrors.Internal("Failed to count customers", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		customers, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list customers", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve customers", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return customers, count, nil
}

func (s *customerService) Search(ctx context.Context, query string) ([]*model.Customer, error) {
	query = sanitizer.TrimAndNormalize(query)
	if query == "" {
		return nil, apperrors.InvalidInput("Search query cannot be empty")
	}

	customers, err := s.repo.Search(ctx, query, maxSearchResults)
	if err != nil {
		s.cfg.Log.Error("Failed to search customers", "query", query, "error", err)
		return nil, apperrors.Internal("Failed to search customers", err)
	}

	return customers, nil
}

func (s *customerService) Update(ctx context.Context, id string, updates *model.CustomerUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Customer ID cannot be empty")
	}
	if updates.IsEmpty() {
		return apperrors.InvalidInput("Update must contain at least one field")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Customer", id)
		}
		if errors.Is(err, customerserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid customer ID format")
		}
		return apperrors.Internal("Failed to check customer existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Customer update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := *existing
	if updates.Name != nil {
		merged.Name = *updates.Name
	}
	if updates.Email != nil {
		merged.Email = *updates.Email
	}
	if updates.Phone != nil {
		merged.Phone = *updates.Phone
	}
	if updates.Notes != nil {
		merged.Notes = *updates.Notes
	}
	s.sanitize(&merged)

	if err := s.validator.Validate(&merged); err != nil {
		return apperrors.Validation("Customer validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Update(ctx, id, &merged); err != nil {
		if errors.Is(err, customerserrors.ErrDuplicatePhone) {
			return apperrors.Conflict("A customer with this phone number already exists")
		}
		s.cfg.Log.Error("Failed to update customer", "id", id, "error", err)
		return apperrors.Internal("Failed to update customer", err)
	}

	s.cfg.Log.Info("Customer updated successfully", "id", id)
	return nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Customer ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, customerserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Customer", id)
		}
		if errors.Is(err, customerserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid customer ID format")
		}
		return apperrors.Internal("Failed to delete customer", err)
	}

	s.cfg.Log.Info("Customer deleted successfully", "id", id)
	return nil
}

func (s *customerService) sanitize(c *model.Customer) {
	c.Name = sanitizer.NormalizeName(c.Name)
	c.Email = sanitizer.NormalizeEmail(c.Email)
	if c.Phone != "" {
		if normalized := sanitizer.NormalizePhone(c.Phone); normalized != "" {
			c.Phone = normalized
		}
	}
	c.Notes = sanitizer.TrimAndNormalize(c.Notes)
}
