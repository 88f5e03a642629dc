package services

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/likeclem30/taxipassbackend/internal/domain"
	"github.com/likeclem30/taxipassbackend/internal/repository"
)

// statDateLayout is the external date format of the stats endpoints.
const statDateLayout = "02/01/2006"

// maxRangeDays caps a daily-signups query; one-year reports are the widest the
// admin dashboard requests.
const maxRangeDays = 366

// minStatYear is the launch year, nothing earlier can have signups.
const minStatYear = 2020

type StatService interface {
	TotalCount() (int64, error)
	DailySignups(startDate, endDate string) (map[string]int64, error)
	MonthlySignups(year string) (map[string]int64, error)
}

type statService struct {
	repo   repository.PassengerRepository
	logger *zap.Logger
}

func NewStatService(repo repository.PassengerRepository, logger *zap.Logger) StatService {
	return &statService{repo: repo, logger: logger}
}

func (s *statService) TotalCount() (int64, error) {
	return s.repo.Count()
}

// DailySignups counts records created on each calendar day of the inclusive
// range, keyed by the day formatted dd/mm/yyyy.
func (s *statService) DailySignups(startDate, endDate string) (map[string]int64, error) {
	start, err := time.Parse(statDateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", domain.ErrBadInput)
	}
	end, err := time.Parse(statDateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date", domain.ErrBadInput)
	}

	if start.After(end) {
		return nil, fmt.Errorf("%w: start date after end date", domain.ErrBadInput)
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: date range too wide", domain.ErrBadInput)
	}

	result := make(map[string]int64)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		count, err := s.repo.CountOnDate(d)
		if err != nil {
			return nil, err
		}
		result[d.Format(statDateLayout)] = count
	}

	return result, nil
}

// MonthlySignups counts records created in each month of the year, keyed by
// month number "1".."12".
func (s *statService) MonthlySignups(yearStr string) (map[string]int64, error) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid year", domain.ErrBadInput)
	}
	if year < minStatYear {
		return nil, fmt.Errorf("%w: year before %d", domain.ErrBadInput, minStatYear)
	}

	result := make(map[string]int64, 12)
	for month := 1; month <= 12; month++ {
		count, err := s.repo.CountInMonth(year, month)
		if err != nil {
			return nil, err
		}
		result[strconv.Itoa(month)] = count
	}

	return result, nil
}
