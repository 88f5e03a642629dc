// Package memory provides an in-memory PassengerRepository used by tests.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/likeclem30/taxipassbackend/internal/domain"
	"github.com/likeclem30/taxipassbackend/internal/repository"
)

type PassengerRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.Passenger
}

func NewPassengerRepository() *PassengerRepository {
	return &PassengerRepository{
		nextID: 1,
		items:  make(map[int64]domain.Passenger),
	}
}

var _ repository.PassengerRepository = (*PassengerRepository)(nil)

func (r *PassengerRepository) Create(p *domain.Passenger) (*domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.AuthID == p.AuthID || existing.Email == p.Email || existing.PhoneNumber == p.PhoneNumber {
			return nil, domain.ErrConflict
		}
	}

	p.ID = r.nextID
	r.nextID++
	r.items[p.ID] = *p
	return p, nil
}

func (r *PassengerRepository) FindByID(id int64) (*domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *PassengerRepository) FindByAuthID(authID int64) (*domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found *domain.Passenger
	for _, p := range r.sorted() {
		if p.AuthID == authID {
			q := p
			found = &q
			break
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *PassengerRepository) List(f repository.ListFilter) ([]domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Passenger
	for _, p := range r.sorted() {
		if f.Search != "" && !strings.Contains(strings.ToLower(p.FirstName), strings.ToLower(f.Search)) {
			continue
		}
		if f.Status == "active" && p.SuspendedAt != nil {
			continue
		}
		if f.Status == "suspended" && p.SuspendedAt == nil {
			continue
		}
		if f.EmailStatus == "verified" && p.EmailStatus != 1 {
			continue
		}
		if f.EmailStatus == "unverified" && p.EmailStatus != 0 {
			continue
		}
		if f.PhoneStatus == "verified" && p.PhoneNumberStatus != 1 {
			continue
		}
		if f.PhoneStatus == "unverified" && p.PhoneNumberStatus != 0 {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PassengerRepository) Save(p *domain.Passenger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ID == p.ID {
			continue
		}
		if existing.Email == p.Email || existing.PhoneNumber == p.PhoneNumber {
			return domain.ErrConflict
		}
	}

	r.items[p.ID] = *p
	return nil
}

func (r *PassengerRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *PassengerRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.items)), nil
}

func (r *PassengerRepository) CountOnDate(day time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	y, m, d := day.Date()
	for _, p := range r.items {
		py, pm, pd := p.Timestamp.Date()
		if py == y && pm == m && pd == d {
			count++
		}
	}
	return count, nil
}

func (r *PassengerRepository) CountInMonth(year, month int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, p := range r.items {
		if p.Timestamp.Year() == year && int(p.Timestamp.Month()) == month {
			count++
		}
	}
	return count, nil
}

// sorted returns all records ordered by ascending id. Callers hold the lock.
func (r *PassengerRepository) sorted() []domain.Passenger {
	out := make([]domain.Passenger, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
