package employee

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storemate/storemate-backend-go/internal/domain/employee"
	"github.com/storemate/storemate-backend-go/internal/pkg/qr"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
	badgeIssuer  string
}

// NewEmployeeService creates a new instance of employee.Service. The badge
// issuer names this deployment in the otpauth URLs printed on QR badges.
func NewEmployeeService(employeeRepo employee.Repository, badgeIssuer string) employee.Service {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		badgeIssuer:  badgeIssuer,
	}
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Position:         e.Position,
		PhoneNumber:      e.PhoneNumber,
		Email:            e.Email,
		HireDate:         e.HireDate.Format("2006-01-02"),
		EmploymentStatus: string(e.EmploymentStatus),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
}

// newEmployeeCode derives a short human-readable code from a fresh UUID.
func newEmployeeCode() string {
	id := uuid.New()
	return fmt.Sprintf("EMP-%04d", int(id.ID()%10000))
}

// Create implements employee.Service. A new employee is created active with
// a freshly issued QR badge secret; the otpauth URL is retrievable through
// RotateBadge at any time by issuing a new badge.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
	}

	code := newEmployeeCode()
	secret, _, err := qr.GenerateBadgeSecret(s.badgeIssuer, code)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to issue badge secret: %w", err)
	}

	e := employee.Employee{
		EmployeeCode:     code,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Position:         req.Position,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		HireDate:         hireDate,
		EmploymentStatus: employee.StatusActive,
		QRBadgeSecret:    secret,
	}

	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(e), nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.PhoneNumber != nil {
		e.PhoneNumber = req.PhoneNumber
	}
	if req.Email != nil {
		e.Email = req.Email
	}
	if req.EmploymentStatus != nil {
		e.EmploymentStatus = employee.EmploymentStatus(strings.ToLower(*req.EmploymentStatus))
	}

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, e.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// Delete implements employee.Service. Soft delete; the repository also
// flips the employee inactive so the attendance gate rejects stale badges.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// RotateBadge implements employee.Service. The previous secret stops
// verifying the moment the new one is persisted.
func (s *EmployeeServiceImpl) RotateBadge(ctx context.Context, id string) (employee.BadgeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.BadgeResponse{}, err
	}

	secret, otpauthURL, err := qr.GenerateBadgeSecret(s.badgeIssuer, e.EmployeeCode)
	if err != nil {
		return employee.BadgeResponse{}, fmt.Errorf("failed to issue badge secret: %w", err)
	}

	if err := s.employeeRepo.UpdateBadgeSecret(ctx, e.ID, secret); err != nil {
		return employee.BadgeResponse{}, err
	}

	return employee.BadgeResponse{
		EmployeeID: e.ID,
		OtpauthURL: otpauthURL,
	}, nil
}
