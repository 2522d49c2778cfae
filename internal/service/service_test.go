package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/events"
)

// mockAccountRepository is an in-memory AccountRepository for service tests.
type mockAccountRepository struct {
	byEmail   map[string]*domain.Account
	byID      map[string]*domain.Account
	created   []*domain.Account
	createErr error
	updateErr error
	deleteErr error
	listItems []domain.Account
	listTotal int
	listErr   error
}

func newMockAccountRepository() *mockAccountRepository {
	return &mockAccountRepository{
		byEmail: make(map[string]*domain.Account),
		byID:    make(map[string]*domain.Account),
	}
}

func (m *mockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, account)
	return nil
}

func (m *mockAccountRepository) Update(ctx context.Context, id string, patch domain.AccountPatch) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	return nil
}

func (m *mockAccountRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.byID, id)
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	account, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return account, nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, ok := m.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return account, nil
}

func (m *mockAccountRepository) List(ctx context.Context, term string, limit, offset int) ([]domain.Account, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.listItems, m.listTotal, nil
}

// mockReportRepository stubs ReportRepository.
type mockReportRepository struct {
	byPeriod  *domain.MonthlyReport
	created   []*domain.MonthlyReport
	createErr error
	updateErr error
	deleteErr error
}

func (m *mockReportRepository) Create(ctx context.Context, report *domain.MonthlyReport) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, report)
	return nil
}

func (m *mockReportRepository) Update(ctx context.Context, id string, patch domain.MonthlyReportPatch) error {
	return m.updateErr
}

func (m *mockReportRepository) Delete(ctx context.Context, id string) error {
	return m.deleteErr
}

func (m *mockReportRepository) GetByID(ctx context.Context, id string) (*domain.MonthlyReport, error) {
	return nil, pgx.ErrNoRows
}

func (m *mockReportRepository) GetByPeriod(ctx context.Context, departmentID string, month, year int) (*domain.MonthlyReport, error) {
	if m.byPeriod == nil {
		return nil, pgx.ErrNoRows
	}
	return m.byPeriod, nil
}

func (m *mockReportRepository) List(ctx context.Context, term string, limit, offset int) ([]domain.MonthlyReport, int, error) {
	return nil, 0, nil
}

// mockLeaveRepository stubs LeaveRepository.
type mockLeaveRepository struct {
	byID          map[string]*domain.LeaveApplication
	created       []*domain.LeaveApplication
	lastDecidedBy *string
	updateErr     error
}

func newMockLeaveRepository() *mockLeaveRepository {
	return &mockLeaveRepository{byID: make(map[string]*domain.LeaveApplication)}
}

func (m *mockLeaveRepository) Create(ctx context.Context, leave *domain.LeaveApplication) error {
	m.created = append(m.created, leave)
	return nil
}

func (m *mockLeaveRepository) Update(ctx context.Context, id string, patch domain.LeaveApplicationPatch, decidedByID *string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	leave, ok := m.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if patch.Status != nil {
		leave.Status = *patch.Status
	}
	m.lastDecidedBy = decidedByID
	return nil
}

func (m *mockLeaveRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.byID, id)
	return nil
}

func (m *mockLeaveRepository) GetByID(ctx context.Context, id string) (*domain.LeaveApplication, error) {
	leave, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return leave, nil
}

func (m *mockLeaveRepository) List(ctx context.Context, term string, limit, offset int) ([]domain.LeaveApplication, int, error) {
	return nil, 0, nil
}

func (m *mockLeaveRepository) ListAll(ctx context.Context) ([]domain.LeaveApplication, error) {
	all := make([]domain.LeaveApplication, 0, len(m.byID))
	for _, leave := range m.byID {
		all = append(all, *leave)
	}
	return all, nil
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *recordingDispatcher) events() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.published...)
}
