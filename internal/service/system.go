package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/pitipaw_catalog/internal/transport"
)

type Counter interface {
	CountProducts(ctx context.Context) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemService struct {
	Counts Counter
	DB     Pinger
}

func (s *SystemService) Health(ctx context.Context) error {
	return s.DB.Ping(ctx)
}

func (s *SystemService) Stats(ctx context.Context) (*transport.StatsResponse, error) {
	products, err := s.Counts.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	admins, err := s.Counts.CountAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	return &transport.StatsResponse{TotalProducts: products, TotalAdmins: admins}, nil
}
