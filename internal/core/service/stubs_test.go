package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories. Each mirrors the query semantics of the real
// Postgres repository so service tests exercise the same behaviour.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[uuid.UUID]*domain.User
	createErr error // if set, Create returns this error

	// Dependent stubs walked by DeleteCascade, mirroring the transactional
	// routine in the real repository. Nil stubs are skipped.
	profiles      *stubProfileRepo
	services      *stubServiceRepo
	bookings      *stubBookingRepo
	messages      *stubMessageRepo
	notifications *stubNotificationRepo
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[uuid.UUID]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, f ports.ListUsersFilter) ([]*domain.User, int64, error) {
	var matched []*domain.User
	for _, u := range r.byID {
		if f.UserType != "" && u.UserType != f.UserType {
			continue
		}
		clone := *u
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip > len(matched) {
		return []*domain.User{}, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, existing := range r.byID {
		if id != u.ID && existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

// DeleteCascade walks the ownership graph the way the real transactional
// routine does: client bookings, then the provider side (bookings against
// the profile, services, the profile itself), then messages either way and
// notifications, then the user row.
func (r *stubUserRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}

	if r.bookings != nil {
		for bid, b := range r.bookings.byID {
			if b.ClientID == id {
				delete(r.bookings.byID, bid)
			}
		}
	}
	if r.profiles != nil {
		for pid, p := range r.profiles.byID {
			if p.UserID != id {
				continue
			}
			if r.bookings != nil {
				for bid, b := range r.bookings.byID {
					if b.ProviderProfileID == pid {
						delete(r.bookings.byID, bid)
					}
				}
			}
			if r.services != nil {
				for sid, s := range r.services.byID {
					if s.ProviderProfileID == pid {
						delete(r.services.byID, sid)
					}
				}
			}
			delete(r.profiles.byID, pid)
		}
	}
	if r.messages != nil {
		for mid, m := range r.messages.byID {
			if m.SenderID == id || m.ReceiverID == id {
				delete(r.messages.byID, mid)
			}
		}
	}
	if r.notifications != nil {
		for nid, n := range r.notifications.byID {
			if n.UserID == id {
				delete(r.notifications.byID, nid)
			}
		}
	}

	delete(r.byID, id)
	return nil
}

type stubProfileRepo struct {
	byID map[uuid.UUID]*domain.ServiceProviderProfile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byID: make(map[uuid.UUID]*domain.ServiceProviderProfile)}
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.ServiceProviderProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.ServiceProviderProfile, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*domain.ServiceProviderProfile, error) {
	for _, p := range r.byID {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubProfileRepo) Update(_ context.Context, p *domain.ServiceProviderProfile) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProfileNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

type stubCategoryRepo struct {
	byID     map[uuid.UUID]*domain.ServiceCategory
	services *stubServiceRepo
	bookings *stubBookingRepo
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[uuid.UUID]*domain.ServiceCategory)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.ServiceCategory) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.ServiceCategory, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.ServiceCategory, error) {
	var out []*domain.ServiceCategory
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.ServiceCategory) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	if r.services != nil {
		for sid, s := range r.services.byID {
			if s.CategoryID != id {
				continue
			}
			if r.bookings != nil {
				for bid, b := range r.bookings.byID {
					if b.ServiceID == sid {
						delete(r.bookings.byID, bid)
					}
				}
			}
			delete(r.services.byID, sid)
		}
	}
	delete(r.byID, id)
	return nil
}

type stubServiceRepo struct {
	byID       map[uuid.UUID]*domain.Service
	categories *stubCategoryRepo
	profiles   *stubProfileRepo
	bookings   *stubBookingRepo
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{byID: make(map[uuid.UUID]*domain.Service)}
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

// Search applies the same filters the real SQL query would use, including
// the category-name substring match and the rating join.
func (r *stubServiceRepo) Search(_ context.Context, f ports.SearchServicesFilter) ([]*domain.Service, int64, error) {
	var matched []*domain.Service
	for _, s := range r.byID {
		if f.ActiveOnly && !s.IsActive {
			continue
		}
		if f.CategoryID != uuid.Nil && s.CategoryID != f.CategoryID {
			continue
		}
		if f.ProviderProfileID != uuid.Nil && s.ProviderProfileID != f.ProviderProfileID {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			categoryName := ""
			if r.categories != nil {
				if c, ok := r.categories.byID[s.CategoryID]; ok {
					categoryName = c.Name
				}
			}
			if !strings.Contains(strings.ToLower(s.Title), needle) &&
				!strings.Contains(strings.ToLower(s.Description), needle) &&
				!strings.Contains(strings.ToLower(s.Location), needle) &&
				!strings.Contains(strings.ToLower(categoryName), needle) {
				continue
			}
		}
		clone := *s
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch f.OrderBy {
		case ports.OrderByPrice:
			less = matched[i].Price.LessThan(matched[j].Price)
		case ports.OrderByRating:
			less = r.rating(matched[i]) < r.rating(matched[j])
		default:
			less = matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		if f.Descending && f.OrderBy != "" {
			return !less
		}
		return less
	})

	total := int64(len(matched))
	limit := f.Limit
	if limit <= 0 {
		limit = len(matched)
	}
	skip := (f.Page - 1) * limit
	if skip < 0 {
		skip = 0
	}
	if skip > len(matched) {
		return []*domain.Service{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubServiceRepo) rating(s *domain.Service) float64 {
	if r.profiles == nil {
		return 0
	}
	if p, ok := r.profiles.byID[s.ProviderProfileID]; ok {
		return p.Rating
	}
	return 0
}

func (r *stubServiceRepo) Update(_ context.Context, s *domain.Service) error {
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrServiceNotFound
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubServiceRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrServiceNotFound
	}
	if r.bookings != nil {
		for bid, b := range r.bookings.byID {
			if b.ServiceID == id {
				delete(r.bookings.byID, bid)
			}
		}
	}
	delete(r.byID, id)
	return nil
}

type stubBookingRepo struct {
	byID      map[uuid.UUID]*domain.Booking
	createErr error
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[uuid.UUID]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	clone := *b
	r.byID[b.ID] = &clone
	return nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if b.ClientID == clientID {
			clone := *b
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubBookingRepo) ListByProviderProfile(_ context.Context, profileID uuid.UUID) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if b.ProviderProfileID == profileID {
			clone := *b
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) error {
	b, ok := r.byID[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type stubMessageRepo struct {
	byID map[uuid.UUID]*domain.Message
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{byID: make(map[uuid.UUID]*domain.Message)}
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	clone := *m
	r.byID[m.ID] = &clone
	return nil
}

func (r *stubMessageRepo) ListByReceiver(_ context.Context, receiverID uuid.UUID) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.byID {
		if m.ReceiverID == receiverID {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type stubNotificationRepo struct {
	byID map[uuid.UUID]*domain.Notification
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{byID: make(map[uuid.UUID]*domain.Notification)}
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	clone := *n
	r.byID[n.ID] = &clone
	return nil
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Notification, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	n, ok := r.byID[id]
	if !ok {
		return domain.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.byID {
		if n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// ---------------------------------------------------------------------------
// Seed helpers
// ---------------------------------------------------------------------------

func seedUser(repo *stubUserRepo, email string, userType domain.UserType) *domain.User {
	u := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefak",
		UserType:     userType,
		FirstName:    "Test",
		LastName:     "User",
		CreatedAt:    time.Now().UTC(),
	}
	clone := *u
	repo.byID[u.ID] = &clone
	return u
}

func seedProfile(repo *stubProfileRepo, userID uuid.UUID, rating float64) *domain.ServiceProviderProfile {
	p := &domain.ServiceProviderProfile{
		ID:         uuid.New(),
		UserID:     userID,
		Profession: "Plumber",
		Location:   "Madrid",
		Experience: 5,
		Rating:     rating,
	}
	clone := *p
	repo.byID[p.ID] = &clone
	return p
}
