package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

type memSessionStore struct {
	mu      sync.Mutex
	records map[string]ports.SessionRecord
	ttls    map[string]time.Duration
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{
		records: make(map[string]ports.SessionRecord),
		ttls:    make(map[string]time.Duration),
	}
}

func (s *memSessionStore) Load(_ context.Context, sid string) (ports.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[sid], nil
}

func (s *memSessionStore) Save(_ context.Context, sid string, rec ports.SessionRecord, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sid] = rec
	s.ttls[sid] = ttl
	return nil
}

func (s *memSessionStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sid)
	delete(s.ttls, sid)
	return nil
}

// memPageStore round-trips pages through JSON like the redis store does.
type memPageStore struct {
	mu    sync.Mutex
	pages map[string][]byte
}

func newMemPageStore() *memPageStore {
	return &memPageStore{pages: make(map[string][]byte)}
}

func pageKey(sid string, id domain.UserID) string { return sid + "/" + string(id) }

func (s *memPageStore) Load(_ context.Context, sid string, id domain.UserID) (*domain.ProfilePage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(sid, id)
}

func (s *memPageStore) load(sid string, id domain.UserID) (*domain.ProfilePage, error) {
	raw, ok := s.pages[pageKey(sid, domain.ParseUserID(string(id)))]
	if !ok {
		return nil, domain.ErrNotFound
	}
	var p domain.ProfilePage
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *memPageStore) Save(_ context.Context, sid string, page *domain.ProfilePage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}
	s.pages[pageKey(sid, page.ProfileID)] = raw
	return nil
}

func (s *memPageStore) Update(_ context.Context, sid string, id domain.UserID, fn func(*domain.ProfilePage) error) (*domain.ProfilePage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page, err := s.load(sid, id)
	if err != nil {
		return nil, err
	}
	if err := fn(page); err != nil {
		current, _ := s.load(sid, id)
		return current, err
	}
	raw, err := json.Marshal(page)
	if err != nil {
		return nil, err
	}
	s.pages[pageKey(sid, page.ProfileID)] = raw
	return page, nil
}

func (s *memPageStore) Delete(_ context.Context, sid string, id domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pages, pageKey(sid, domain.ParseUserID(string(id))))
	return nil
}

func (s *memPageStore) DeleteAll(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.pages {
		if len(k) > len(sid) && k[:len(sid)+1] == sid+"/" {
			delete(s.pages, k)
		}
	}
	return nil
}

type updateCall struct {
	Token string
	ID    domain.UserID
	Field domain.Field
	Value string
}

type stubUsersAPI struct {
	registerRes domain.AuthResult
	registerErr error
	loginRes    domain.AuthResult
	loginErr    error
	profile     domain.UserProfile
	profileErr  error
	updateErr   error
	// onUpdate runs while the PUT is "in flight".
	onUpdate func()
	// gates holds a PUT for a given value until its channel is closed;
	// started receives the value once the PUT is in flight.
	gates   map[string]chan struct{}
	started chan string
	cards    []domain.ProfessionalCard
	listErr  error

	mu            sync.Mutex
	registerCalls int
	getCalls      int
	updates       []updateCall
	lastFilter    domain.ProfessionalFilter
}

func (a *stubUsersAPI) Register(_ context.Context, _ domain.RegistrationForm) (domain.AuthResult, error) {
	a.registerCalls++
	return a.registerRes, a.registerErr
}

func (a *stubUsersAPI) Login(_ context.Context, _ domain.LoginForm) (domain.AuthResult, error) {
	return a.loginRes, a.loginErr
}

func (a *stubUsersAPI) GetProfile(_ context.Context, _ string, _ domain.UserID) (domain.UserProfile, error) {
	a.getCalls++
	return a.profile, a.profileErr
}

func (a *stubUsersAPI) UpdateProfile(_ context.Context, token string, id domain.UserID, field domain.Field, value string) error {
	a.mu.Lock()
	a.updates = append(a.updates, updateCall{Token: token, ID: id, Field: field, Value: value})
	gate := a.gates[value]
	a.mu.Unlock()
	if a.started != nil {
		a.started <- value
	}
	if gate != nil {
		<-gate
	}
	if a.onUpdate != nil {
		a.onUpdate()
	}
	return a.updateErr
}

func (a *stubUsersAPI) ListProfessionals(_ context.Context, filter domain.ProfessionalFilter) ([]domain.ProfessionalCard, error) {
	a.lastFilter = filter
	return a.cards, a.listErr
}

func (a *stubUsersAPI) GetProfessional(_ context.Context, id domain.UserID) (domain.ProfessionalCard, error) {
	for _, c := range a.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.ProfessionalCard{}, domain.ErrNotFound
}

type stubRecorder struct {
	mu     sync.Mutex
	events []domain.ProfileEditEvent
}

func (r *stubRecorder) Record(e domain.ProfileEditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}
