package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"

	"github.com/go-playground/validator/v10"
)

type AddressRepo interface {
	ListAddresses(ctx context.Context, userID string) ([]entities.Address, error)
	GetAddress(ctx context.Context, userID, id string) (entities.Address, error)
	SaveAddress(ctx context.Context, a entities.Address) (entities.Address, error)
	DeleteAddress(ctx context.Context, userID, id string) error
}

type Geocoder interface {
	Geocode(ctx context.Context, query string) (entities.Coordinate, error)
}

type AddressInput struct {
	Name       string `validate:"required,max=64"`
	Street     string `validate:"required,max=128"`
	City       string `validate:"required,max=64"`
	PostalCode string `validate:"max=16"`
}

type AddressService struct {
	logger   *slog.Logger
	repo     AddressRepo
	geocoder Geocoder
	validate *validator.Validate
}

func NewAddressService(logger *slog.Logger, repo AddressRepo, geocoder Geocoder) *AddressService {
	return &AddressService{
		logger:   logger.With(slog.String("service", "address")),
		repo:     repo,
		geocoder: geocoder,
		validate: validator.New(),
	}
}

func (s *AddressService) List(ctx context.Context, userID string) ([]entities.Address, error) {
	return s.repo.ListAddresses(ctx, userID)
}

func (s *AddressService) Get(ctx context.Context, userID, id string) (entities.Address, error) {
	return s.repo.GetAddress(ctx, userID, id)
}

func (s *AddressService) Create(ctx context.Context, userID string, in AddressInput) (entities.Address, error) {
	return s.save(ctx, entities.Address{UserID: userID}, in)
}

// Replace overwrites the address wholesale. Foreign ids are not found.
func (s *AddressService) Replace(ctx context.Context, userID, id string, in AddressInput) (entities.Address, error) {
	return s.save(ctx, entities.Address{ID: id, UserID: userID}, in)
}

func (s *AddressService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteAddress(ctx, userID, id)
}

func (s *AddressService) save(ctx context.Context, a entities.Address, in AddressInput) (entities.Address, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Street = strings.TrimSpace(in.Street)
	in.City = strings.TrimSpace(in.City)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	if err := s.validate.Struct(in); err != nil {
		return entities.Address{}, fmt.Errorf("%w: %w", entities.ErrValidation, err)
	}

	a.Name, a.Street, a.City, a.PostalCode = in.Name, in.Street, in.City, in.PostalCode

	loc, err := s.geocoder.Geocode(ctx, a.Query())
	switch {
	case errors.Is(err, entities.ErrAddressNotGeocoded):
		return entities.Address{}, err
	case err != nil:
		// адрес сохраняем и без координат, маршрут для него просто не строится
		s.logger.WarnContext(ctx, "geocoding failed", slog.String("query", a.Query()), slog.Any("error", err))
	default:
		a.Location = &loc
	}

	saved, err := s.repo.SaveAddress(ctx, a)
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to save address: %w", err)
	}
	return saved, nil
}
