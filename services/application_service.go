package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/amrit073/NEPGA/entity"
	"github.com/amrit073/NEPGA/repository"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Observer is told about successful mutations. Implementations must not block.
type Observer interface {
	ApplicationSubmitted(app *entity.Application)
	ApplicationStatusChanged(app *entity.Application, from entity.Status)
}

type ApplicationService struct {
	Repo      *repository.ApplicationRepository
	Lifecycle *Lifecycle
	clock     clockwork.Clock
	observers []Observer
}

func NewApplicationService(repo *repository.ApplicationRepository, lc *Lifecycle, clock clockwork.Clock, observers ...Observer) *ApplicationService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ApplicationService{Repo: repo, Lifecycle: lc, clock: clock, observers: observers}
}

// SubmitInput holds the citizen-supplied fields of a new application.
type SubmitInput struct {
	FullName          string
	DateOfBirth       string
	Gender            string
	Address           string
	Phone             string
	Email             string
	CitizenshipNumber string
	EmergencyContact  *string
	PassportType      string
	AdditionalNotes   *string
}

func (in SubmitInput) validate() error {
	required := []struct{ name, value string }{
		{"full_name", in.FullName},
		{"date_of_birth", in.DateOfBirth},
		{"gender", in.Gender},
		{"address", in.Address},
		{"phone", in.Phone},
		{"email", in.Email},
		{"citizenship_number", in.CitizenshipNumber},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// Submit creates a Pending application. Every call creates a new record.
func (s *ApplicationService) Submit(ctx context.Context, in SubmitInput) (*entity.Application, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	passportType := strings.TrimSpace(in.PassportType)
	if passportType == "" {
		passportType = entity.DefaultPassportType
	}

	app := &entity.Application{
		FullName:          in.FullName,
		DateOfBirth:       in.DateOfBirth,
		Gender:            in.Gender,
		Address:           in.Address,
		Phone:             in.Phone,
		Email:             in.Email,
		CitizenshipNumber: in.CitizenshipNumber,
		EmergencyContact:  in.EmergencyContact,
		PassportType:      passportType,
		AdditionalNotes:   in.AdditionalNotes,
		SubmissionDate:    s.clock.Now().UTC(),
		Status:            entity.StatusPending,
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	for _, o := range s.observers {
		o.ApplicationSubmitted(app)
	}
	return app, nil
}

// Get returns the full record.
func (s *ApplicationService) Get(ctx context.Context, id string) (*entity.Application, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	app, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find application: %w", err)
	}
	return app, nil
}

// Page is one slice of the admin listing.
type Page struct {
	Items []entity.Application
	Total int64
	Page  int
	Limit int
}

// NormalizePage clamps caller-supplied paging values. page is capped so that
// (page-1)*limit never overflows int.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return page, limit
}

func (s *ApplicationService) List(ctx context.Context, page, limit int) (*Page, error) {
	page, limit = NormalizePage(page, limit)
	offset := (page - 1) * limit

	items, total, err := s.Repo.ListPage(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return &Page{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// UpdateStatus validates the candidate before touching the store.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id, candidate string) (*entity.Application, error) {
	if _, err := s.Lifecycle.ValidateStatus(candidate); err != nil {
		return nil, err
	}

	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := app.Status
	if err := s.Lifecycle.Apply(app, candidate); err != nil {
		return nil, err
	}

	err = s.Repo.UpdateStatus(ctx, app.ApplicationID, app.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	for _, o := range s.observers {
		o.ApplicationStatusChanged(app, from)
	}
	return app, nil
}

func (s *ApplicationService) Summary(ctx context.Context) (map[entity.Status]int64, error) {
	counts, err := s.Repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	return counts, nil
}
