package store

import (
    "context"
    "sort"
    "strings"
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
)

// Clock supplies the current time.  Tests substitute a fixed clock so
// CreatedAt ordering is deterministic.
type Clock interface {
    Now() time.Time
}

// RealClock is the production Clock backed by time.Now.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// Memory is an in-memory ReservationStore.  Reservations are indexed by
// date and space for the conflict queries and by ID for lifecycle
// transitions.  A single RWMutex guards all maps; the data set is small
// enough that finer locking buys nothing.
type Memory struct {
    mu     sync.RWMutex
    byDate map[string]map[string][]*model.Reservation // date -> spaceID -> insertion order
    byID   map[string]*model.Reservation
    all    []*model.Reservation // insertion order
    clock  Clock
}

// NewMemory returns an empty in-memory store using the given clock.  A
// nil clock falls back to RealClock.
func NewMemory(clock Clock) *Memory {
    if clock == nil {
        clock = RealClock{}
    }
    return &Memory{
        byDate: make(map[string]map[string][]*model.Reservation),
        byID:   make(map[string]*model.Reservation),
        clock:  clock,
    }
}

func (m *Memory) Create(ctx context.Context, r *model.Reservation) (*model.Reservation, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    m.mu.Lock()
    defer m.mu.Unlock()

    stored := *r
    if stored.ID == "" {
        stored.ID = uuid.New().String()
    }
    if stored.CreatedAt.IsZero() {
        stored.CreatedAt = m.clock.Now()
    }
    stored.Status = model.StatusPending
    stored.IsRead = true

    if _, ok := m.byDate[stored.Date]; !ok {
        m.byDate[stored.Date] = make(map[string][]*model.Reservation)
    }
    p := &stored
    m.byDate[stored.Date][stored.SpaceID] = append(m.byDate[stored.Date][stored.SpaceID], p)
    m.byID[stored.ID] = p
    m.all = append(m.all, p)

    out := stored
    return &out, nil
}

func (m *Memory) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    m.mu.RLock()
    defer m.mu.RUnlock()
    r, ok := m.byID[id]
    if !ok {
        return nil, ErrNotFound
    }
    out := *r
    return &out, nil
}

func (m *Memory) ListBySpaceAndDate(ctx context.Context, spaceID, date string, status model.Status) ([]model.Reservation, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    m.mu.RLock()
    defer m.mu.RUnlock()
    out := make([]model.Reservation, 0)
    for _, r := range m.byDate[date][spaceID] {
        if status != "" && r.Status != status {
            continue
        }
        out = append(out, *r)
    }
    return out, nil
}

func (m *Memory) ListByUser(ctx context.Context, userName, date string) ([]model.Reservation, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    m.mu.RLock()
    defer m.mu.RUnlock()
    name := strings.ToLower(strings.TrimSpace(userName))
    out := make([]model.Reservation, 0)
    for _, r := range m.all {
        if strings.ToLower(strings.TrimSpace(r.UserName)) != name {
            continue
        }
        if date != "" && r.Date != date {
            continue
        }
        out = append(out, *r)
    }
    return out, nil
}

func (m *Memory) ListAll(ctx context.Context) ([]model.Reservation, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    m.mu.RLock()
    defer m.mu.RUnlock()
    out := make([]model.Reservation, 0, len(m.all))
    for _, r := range m.all {
        out = append(out, *r)
    }
    sortNewestFirst(out)
    return out, nil
}

func (m *Memory) ListByStatus(ctx context.Context, status model.Status) ([]model.Reservation, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    m.mu.RLock()
    defer m.mu.RUnlock()
    out := make([]model.Reservation, 0)
    for _, r := range m.all {
        if r.Status == status {
            out = append(out, *r)
        }
    }
    sortNewestFirst(out)
    return out, nil
}

func (m *Memory) SetStatus(ctx context.Context, id string, next model.Status) (*model.Reservation, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    m.mu.Lock()
    defer m.mu.Unlock()
    r, ok := m.byID[id]
    if !ok {
        return nil, ErrNotFound
    }
    if !r.Status.CanTransitionTo(next) {
        return nil, ErrInvalidTransition
    }
    r.Status = next
    r.IsRead = false
    out := *r
    return &out, nil
}

func (m *Memory) MarkRead(ctx context.Context, id string) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    m.mu.Lock()
    defer m.mu.Unlock()
    r, ok := m.byID[id]
    if !ok {
        return ErrNotFound
    }
    r.IsRead = true
    return nil
}

// sortNewestFirst orders by CreatedAt descending with ID as a stable
// tie-break for records created within the same clock tick.
func sortNewestFirst(rs []model.Reservation) {
    sort.SliceStable(rs, func(i, j int) bool {
        if rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
            return rs[i].ID > rs[j].ID
        }
        return rs[i].CreatedAt.After(rs[j].CreatedAt)
    })
}

// MemoryAnnouncements is the in-memory AnnouncementStore.
type MemoryAnnouncements struct {
    mu    sync.RWMutex
    items []model.Announcement
    clock Clock
}

// NewMemoryAnnouncements returns an empty announcement store.
func NewMemoryAnnouncements(clock Clock) *MemoryAnnouncements {
    if clock == nil {
        clock = RealClock{}
    }
    return &MemoryAnnouncements{clock: clock}
}

func (m *MemoryAnnouncements) Create(ctx context.Context, a *model.Announcement) (*model.Announcement, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    m.mu.Lock()
    defer m.mu.Unlock()
    stored := *a
    if stored.ID == "" {
        stored.ID = uuid.New().String()
    }
    if stored.Date == "" {
        stored.Date = m.clock.Now().Format("2006-01-02")
    }
    // Newest first, matching the published ordering contract.
    m.items = append([]model.Announcement{stored}, m.items...)
    out := stored
    return &out, nil
}

func (m *MemoryAnnouncements) List(ctx context.Context) ([]model.Announcement, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    m.mu.RLock()
    defer m.mu.RUnlock()
    out := make([]model.Announcement, len(m.items))
    copy(out, m.items)
    return out, nil
}

// MemorySettings is the in-memory SettingsStore.
type MemorySettings struct {
    mu    sync.RWMutex
    saved *model.UserSettings
}

// NewMemorySettings returns a settings store holding only defaults.
func NewMemorySettings() *MemorySettings { return &MemorySettings{} }

func (m *MemorySettings) Get(ctx context.Context) (model.UserSettings, error) {
    if err := ctx.Err(); err != nil {
        return model.UserSettings{}, err
    }
    m.mu.RLock()
    defer m.mu.RUnlock()
    if m.saved == nil {
        return model.DefaultSettings(), nil
    }
    return *m.saved, nil
}

func (m *MemorySettings) Save(ctx context.Context, s model.UserSettings) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    m.mu.Lock()
    defer m.mu.Unlock()
    m.saved = &s
    return nil
}
