package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/filter"
)

// CatalogService serves the public places and ready-program catalogs.
type CatalogService struct {
	api CatalogAPI
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(api CatalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

// Places returns the catalog narrowed by an optional free-text search.
func (s *CatalogService) Places(ctx context.Context, search string) ([]domain.Place, error) {
	all, err := s.api.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Places: %w", err)
	}
	if search == "" {
		return append([]domain.Place{}, all...), nil
	}
	return filter.Search(all, search), nil
}

// Programs returns the ready-made programs.
func (s *CatalogService) Programs(ctx context.Context) ([]domain.ReadyProgram, error) {
	progs, err := s.api.ListReadyPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Programs: %w", err)
	}
	return append([]domain.ReadyProgram{}, progs...), nil
}

// Categories returns the landing-screen categories.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.api.ListHomeCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Categories: %w", err)
	}
	if cats == nil {
		return []domain.Category{}, nil
	}
	return append([]domain.Category{}, cats...), nil
}

// Home fetches the categories and both catalogs concurrently. Any failure
// fails the call.
func (s *CatalogService) Home(ctx context.Context) (domain.Home, error) {
	var home domain.Home
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.Categories(gctx)
		home.Categories = c
		return err
	})
	g.Go(func() error {
		p, err := s.Places(gctx, "")
		home.Places = p
		return err
	})
	g.Go(func() error {
		p, err := s.Programs(gctx)
		home.Programs = p
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Home{}, err
	}
	return home, nil
}
