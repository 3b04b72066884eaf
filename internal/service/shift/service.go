package shift

import (
	"context"
	"fmt"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
)

// Service administers the shift catalog. Writes validate the definition the
// same way the batch does at load, so a misconfigured shift never reaches
// the catalog.
type Service interface {
	ListFixed(ctx context.Context) ([]shift.ShiftResponse, error)
	ListAuto(ctx context.Context) ([]shift.ShiftResponse, error)
	CreateFixed(ctx context.Context, req shift.CreateFixedShiftRequest) (shift.ShiftResponse, error)
	CreateAuto(ctx context.Context, req shift.CreateAutoShiftRequest) (shift.ShiftResponse, error)
}

type service struct {
	repo shift.Repository
}

func NewService(repo shift.Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListFixed(ctx context.Context) ([]shift.ShiftResponse, error) {
	fixed, err := s.repo.ListFixed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(fixed))
	for _, fs := range fixed {
		responses = append(responses, shift.FixedToResponse(fs))
	}
	return responses, nil
}

func (s *service) ListAuto(ctx context.Context) ([]shift.ShiftResponse, error) {
	auto, err := s.repo.ListAuto(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list auto shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(auto))
	for _, as := range auto {
		responses = append(responses, shift.AutoToResponse(as))
	}
	return responses, nil
}

func (s *service) CreateFixed(ctx context.Context, req shift.CreateFixedShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	fs := req.ToEntity()
	if _, err := shift.NewCatalog([]shift.FixedShift{fs}, nil); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.repo.CreateFixed(ctx, fs)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.FixedToResponse(created), nil
}

func (s *service) CreateAuto(ctx context.Context, req shift.CreateAutoShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	as := req.ToEntity()
	if _, err := shift.NewCatalog(nil, []shift.AutoShift{as}); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.repo.CreateAuto(ctx, as)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.AutoToResponse(created), nil
}
