package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/likeclem30/taxipassbackend/internal/domain"
	"github.com/likeclem30/taxipassbackend/internal/dto"
	"github.com/likeclem30/taxipassbackend/internal/interfaces"
	"github.com/likeclem30/taxipassbackend/internal/repository"
)

type PassengerService interface {
	GetByAuthID(authID int64) (*domain.Passenger, error)
	GetSelf(claims domain.Claims) (*domain.Passenger, error)
	CreateSelf(claims domain.Claims, input dto.CreatePassengerRequest, bearer string) (*domain.Passenger, error)
	GetByID(id int64) (*domain.Passenger, error)
	List(filter repository.ListFilter) ([]domain.Passenger, error)
	Update(id int64, claims domain.Claims, input dto.UpdatePassengerRequest, bearer string) (*domain.Passenger, error)
	Delete(id int64, claims domain.Claims) error
	CheckDateOfBirth(authID int64, dob string) (*domain.Passenger, error)
}

type passengerService struct {
	repo     repository.PassengerRepository
	notifier interfaces.Notifier
	logger   *zap.Logger
}

func NewPassengerService(repo repository.PassengerRepository, notifier interfaces.Notifier, logger *zap.Logger) PassengerService {
	return &passengerService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *passengerService) GetByAuthID(authID int64) (*domain.Passenger, error) {
	return s.repo.FindByAuthID(authID)
}

func (s *passengerService) GetSelf(claims domain.Claims) (*domain.Passenger, error) {
	return s.repo.FindByAuthID(claims.ID)
}

func (s *passengerService) CreateSelf(claims domain.Claims, input dto.CreatePassengerRequest, bearer string) (*domain.Passenger, error) {
	_, err := s.repo.FindByAuthID(claims.ID)
	if err == nil {
		return nil, fmt.Errorf("%w: auth id has already been used to create a passenger", domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	p := &domain.Passenger{
		AuthID:         claims.ID,
		FirstName:      input.First,
		LastName:       input.Last,
		DateOfBirth:    input.Dob,
		Email:          input.Email,
		PhoneNumber:    input.Phone,
		Image:          input.Image,
		HomeLocation:   input.HomeLocation,
		HomePickupTime: input.HomePickupTime,
		WorkLocation:   input.WorkLocation,
		WorkPickupTime: input.WorkPickupTime,
		PaymentMethod:  input.PaymentMethod,
		// A fresh record is always email-verified and phone-unverified,
		// whatever the caller sent.
		EmailStatus:       1,
		PhoneNumberStatus: 0,
		Timestamp:         time.Now().UTC(),
	}

	created, err := s.repo.Create(p)
	if err != nil {
		return nil, err
	}

	s.notifier.Welcome(created, bearer)

	return created, nil
}

func (s *passengerService) GetByID(id int64) (*domain.Passenger, error) {
	return s.repo.FindByID(id)
}

func (s *passengerService) List(filter repository.ListFilter) ([]domain.Passenger, error) {
	return s.repo.List(filter)
}

func (s *passengerService) Update(id int64, claims domain.Claims, input dto.UpdatePassengerRequest, bearer string) (*domain.Passenger, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// Owners may update their own record; any admin may update anyone.
	if claims.ID != p.AuthID && !claims.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	wasSuspended := p.Suspended()

	// Truthy fields: an empty or zero value is indistinguishable from "not
	// provided" and becomes a no-op.
	if input.First != "" {
		p.FirstName = input.First
	}
	if input.Last != "" {
		p.LastName = input.Last
	}
	if input.Email != "" {
		p.Email = input.Email
	}
	if input.Phone != "" {
		p.PhoneNumber = input.Phone
	}
	if input.Rating != 0 {
		p.Rating = input.Rating
	}
	if input.Image != "" {
		img := input.Image
		p.Image = &img
	}

	// Presence fields: apply whenever the caller supplied a value.
	if input.Dob != nil {
		p.DateOfBirth = input.Dob
	}
	if input.HomeLocation != nil {
		p.HomeLocation = input.HomeLocation
	}
	if input.HomePickupTime != nil {
		p.HomePickupTime = input.HomePickupTime
	}
	if input.WorkLocation != nil {
		p.WorkLocation = input.WorkLocation
	}
	if input.WorkPickupTime != nil {
		p.WorkPickupTime = input.WorkPickupTime
	}
	if input.PaymentMethod != nil {
		p.PaymentMethod = input.PaymentMethod
	}
	if input.EmailStatus != nil {
		p.EmailStatus = *input.EmailStatus
	}
	if input.PhoneNumberStatus != nil {
		p.PhoneNumberStatus = *input.PhoneNumberStatus
	}

	suspendedNow := false
	if input.Suspend != nil {
		if *input.Suspend == 1 {
			now := time.Now().UTC()
			p.SuspendedAt = &now
			suspendedNow = !wasSuspended
		} else {
			p.SuspendedAt = nil
		}
	}

	now := time.Now().UTC()
	p.UpdateTimestamp = &now

	if err := s.repo.Save(p); err != nil {
		return nil, err
	}

	// Notify only on the active -> suspended transition, not when an already
	// suspended account is suspended again.
	if suspendedNow {
		s.notifier.Suspension(p, bearer)
	}

	return p, nil
}

func (s *passengerService) Delete(id int64, claims domain.Claims) error {
	if claims.Role != domain.RoleSuperAdmin {
		return domain.ErrForbidden
	}

	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Already gone, deletion is idempotent.
			return nil
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("passenger deleted", zap.Int64("id", id), zap.Int64("by", claims.ID))
	return nil
}

func (s *passengerService) CheckDateOfBirth(authID int64, dob string) (*domain.Passenger, error) {
	p, err := s.repo.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}

	// Exact string comparison against the stored free-form value; no
	// calendar normalization.
	if p.DateOfBirth == nil || *p.DateOfBirth != dob {
		return nil, domain.ErrUnauthorized
	}

	return p, nil
}
