package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/crmbase/lead-manager/internal/entity"
	"github.com/crmbase/lead-manager/internal/usecase"
)

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, filter usecase.LeadFilter) ([]entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateWithActivity(ctx context.Context, leadID string, fields map[string]interface{}, activity *entity.Activity) error {
	args := m.Called(ctx, leadID, fields, activity)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteWithActivities(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendCredentials(to, name, password string) error {
	args := m.Called(to, name, password)
	return args.Error(0)
}

// fakeLeadRepository is an in-memory LeadRepositoryInterface used by
// the lifecycle scenario test. Mutation + activity land together, as
// the real repository guarantees via its transaction.
type fakeLeadRepository struct {
	mu         sync.Mutex
	leads      map[string]*entity.Lead
	activities map[string][]entity.Activity
}

func newFakeLeadRepository() *fakeLeadRepository {
	return &fakeLeadRepository{
		leads:      make(map[string]*entity.Lead),
		activities: make(map[string][]entity.Activity),
	}
}

func (f *fakeLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *lead
	f.leads[lead.ID] = &cp
	return nil
}

func (f *fakeLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lead, ok := f.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *lead
	cp.Activities = append([]entity.Activity(nil), f.activities[id]...)
	sort.Slice(cp.Activities, func(i, j int) bool {
		return cp.Activities[i].CreatedAt.After(cp.Activities[j].CreatedAt)
	})
	return &cp, nil
}

func (f *fakeLeadRepository) List(ctx context.Context, filter usecase.LeadFilter) ([]entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Lead
	for _, lead := range f.leads {
		if filter.Status != "" && string(lead.Status) != filter.Status {
			continue
		}
		if filter.AssignedTo != "" &&
			(lead.AssignedToID == nil || *lead.AssignedToID != filter.AssignedTo) {
			continue
		}
		out = append(out, *lead)
	}
	return out, nil
}

func (f *fakeLeadRepository) UpdateWithActivity(ctx context.Context, leadID string, fields map[string]interface{}, activity *entity.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	lead, ok := f.leads[leadID]
	if !ok {
		return nil
	}
	if v, ok := fields["status"]; ok {
		lead.Status = v.(entity.LeadStatus)
	}
	if v, ok := fields["notes"]; ok {
		lead.Notes = v.(string)
	}
	if v, ok := fields["assigned_to_id"]; ok {
		id := v.(string)
		lead.AssignedToID = &id
	}
	if v, ok := fields["updated_by_id"]; ok {
		lead.UpdatedByID = v.(string)
	}
	f.activities[leadID] = append(f.activities[leadID], *activity)
	return nil
}

func (f *fakeLeadRepository) DeleteWithActivities(ctx context.Context, leadID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.leads, leadID)
	delete(f.activities, leadID)
	return nil
}
