package repository

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/likeclem30/taxipassbackend/internal/domain"
)

// ListFilter narrows the passenger listing. Zero-valued fields omit their
// predicate; predicates are AND-combined.
type ListFilter struct {
	Search      string // case-insensitive substring on firstName
	Status      string // "active" | "suspended"
	EmailStatus string // "verified" | "unverified"
	PhoneStatus string // "verified" | "unverified"
}

type PassengerRepository interface {
	Create(p *domain.Passenger) (*domain.Passenger, error)
	FindByID(id int64) (*domain.Passenger, error)
	FindByAuthID(authID int64) (*domain.Passenger, error)
	List(f ListFilter) ([]domain.Passenger, error)
	Save(p *domain.Passenger) error
	Delete(id int64) error
	Count() (int64, error)
	CountOnDate(day time.Time) (int64, error)
	CountInMonth(year, month int) (int64, error)
}

type passengerRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPassengerRepository wraps a gorm connection. The connection must be
// opened with TranslateError so uniqueness violations surface as
// gorm.ErrDuplicatedKey and can be mapped to domain.ErrConflict here.
func NewPassengerRepository(db *gorm.DB, logger *zap.Logger) PassengerRepository {
	return &passengerRepository{db: db, logger: logger}
}

func (r *passengerRepository) Create(p *domain.Passenger) (*domain.Passenger, error) {
	if p == nil {
		return nil, errors.New("nil passenger")
	}

	if err := r.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrConflict
		}
		r.logger.Error("create passenger failed", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (r *passengerRepository) FindByID(id int64) (*domain.Passenger, error) {
	p := &domain.Passenger{}

	if err := r.db.First(p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("find passenger by id failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (r *passengerRepository) FindByAuthID(authID int64) (*domain.Passenger, error) {
	p := &domain.Passenger{}

	// Earliest id wins when legacy rows share an auth id.
	if err := r.db.Where("auth_id = ?", authID).Order("id").First(p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("find passenger by auth id failed", zap.Int64("authId", authID), zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (r *passengerRepository) List(f ListFilter) ([]domain.Passenger, error) {
	q := r.db.Model(&domain.Passenger{})

	if f.Search != "" {
		q = q.Where("first_name ILIKE ?", "%"+f.Search+"%")
	}
	switch f.Status {
	case "active":
		q = q.Where("suspended_at IS NULL")
	case "suspended":
		q = q.Where("suspended_at IS NOT NULL")
	}
	if v, ok := statusFlag(f.EmailStatus); ok {
		q = q.Where("email_status = ?", v)
	}
	if v, ok := statusFlag(f.PhoneStatus); ok {
		q = q.Where("phone_number_status = ?", v)
	}

	var passengers []domain.Passenger
	if err := q.Order("id").Find(&passengers).Error; err != nil {
		r.logger.Error("list passengers failed", zap.Error(err))
		return nil, err
	}

	return passengers, nil
}

func (r *passengerRepository) Save(p *domain.Passenger) error {
	if p == nil {
		return errors.New("nil passenger")
	}

	if err := r.db.Save(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		r.logger.Error("save passenger failed", zap.Int64("id", p.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *passengerRepository) Delete(id int64) error {
	if err := r.db.Delete(&domain.Passenger{}, id).Error; err != nil {
		r.logger.Error("delete passenger failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *passengerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Passenger{}).Count(&count).Error; err != nil {
		r.logger.Error("count passengers failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *passengerRepository) CountOnDate(day time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Passenger{}).
		Where("DATE(timestamp) = ?", day.Format("2006-01-02")).
		Count(&count).Error
	if err != nil {
		r.logger.Error("count passengers on date failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *passengerRepository) CountInMonth(year, month int) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Passenger{}).
		Where("EXTRACT(YEAR FROM timestamp) = ? AND EXTRACT(MONTH FROM timestamp) = ?", year, month).
		Count(&count).Error
	if err != nil {
		r.logger.Error("count passengers in month failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func statusFlag(s string) (int, bool) {
	switch s {
	case "verified":
		return 1, true
	case "unverified":
		return 0, true
	default:
		return 0, false
	}
}
