package fake

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

// Store is a stateful in-memory implementation of the repository interfaces for testing.
// Transactions stage their changesets and validate the mission state guard at commit,
// so two transactions racing on the same mission behave like they do against Postgres:
// the first commit wins and the second fails with domain.ErrConcurrentModification.
type Store struct {
	mu sync.Mutex

	users      map[string]domain.User
	items      map[string]domain.Item
	stacks     map[string]domain.InventoryStack
	missions   map[string]domain.Mission
	states     map[stateKey]domain.UserMissionState
	activities []domain.ActivityLogEntry
	seq        int

	applyErr     error
	beforeCommit func()
}

type stateKey struct {
	userID    string
	missionID string
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:    make(map[string]domain.User),
		items:    make(map[string]domain.Item),
		stacks:   make(map[string]domain.InventoryStack),
		missions: make(map[string]domain.Mission),
		states:   make(map[stateKey]domain.UserMissionState),
	}
}

var (
	_ repository.Mission   = (*Store)(nil)
	_ repository.Inventory = (*Store)(nil)
	_ repository.User      = (*Store)(nil)
	_ repository.Activity  = (*Store)(nil)
)

// ---- Seeding and inspection helpers ----

func (s *Store) AddUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Level == 0 {
		u.Level = 1
	}
	s.users[u.ID] = u
}

func (s *Store) AddItem(i domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[i.ID] = i
}

func (s *Store) AddMission(m domain.Mission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.missions[m.ID] = m
}

// AddStack stores a stack and returns its ID
func (s *Store) AddStack(st domain.InventoryStack) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID == "" {
		st.ID = s.nextID("stack")
	}
	s.stacks[st.ID] = st
	return st.ID
}

// SetMissionState stores a completion record directly
func (s *Store) SetMissionState(st domain.UserMissionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.Status == "" {
		st.Status = domain.MissionStatusCompleted
	}
	if st.Version == 0 {
		st.Version = 1
	}
	s.states[stateKey{st.UserID, st.MissionID}] = st
}

// FailNextApply makes the next Apply call return err
func (s *Store) FailNextApply(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyErr = err
}

// BeforeCommit registers a hook run at the start of every commit, outside the store lock
func (s *Store) BeforeCommit(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeCommit = fn
}

func (s *Store) User(userID string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	return u, ok
}

// Stacks returns a user's stacks of an item ordered by ID
func (s *Store) Stacks(userID, itemID string) []domain.InventoryStack {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stacksOf(userID, itemID)
}

func (s *Store) MissionState(userID, missionID string) (domain.UserMissionState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[stateKey{userID, missionID}]
	return st, ok
}

// Activities returns every entry of a user in insertion order
func (s *Store) Activities(userID string) []domain.ActivityLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.ActivityLogEntry
	for _, a := range s.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// ---- repository.Mission ----

func (s *Store) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Mission, 0, len(s.missions))
	for _, m := range s.missions {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *Store) GetMissionStates(ctx context.Context, userID string) ([]domain.UserMissionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.UserMissionState
	for k, st := range s.states {
		if k.userID == userID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *Store) BeginMissionTx(ctx context.Context) (repository.MissionTx, error) {
	return &tx{s: s}, nil
}

// ---- repository.Inventory ----

func (s *Store) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.InventoryEntry
	for _, st := range s.stacks {
		if st.UserID != userID {
			continue
		}
		item := s.items[st.ItemID]
		out = append(out, domain.InventoryEntry{
			StackID:   st.ID,
			ItemID:    st.ItemID,
			ItemName:  item.Name,
			Icon:      item.Icon,
			Quantity:  st.Quantity,
			MaxStack:  item.Capacity(),
			Stackable: item.Stackable,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemName != out[j].ItemName {
			return out[i].ItemName < out[j].ItemName
		}
		return out[i].StackID < out[j].StackID
	})
	return out, nil
}

func (s *Store) ListItems(ctx context.Context) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Item, 0, len(s.items))
	for _, i := range s.items {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) BeginTx(ctx context.Context) (repository.GameTx, error) {
	return &tx{s: s}, nil
}

// ---- repository.User ----

func (s *Store) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) ListOtherUsers(ctx context.Context, excludeUserID string, limit int) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for id, u := range s.users {
		if id != excludeUserID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level > out[j].Level
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) UpsertUser(ctx context.Context, userID, name string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		u = domain.User{ID: userID, Level: 1, CreatedAt: time.Now()}
	}
	u.Name = name
	u.UpdatedAt = time.Now()
	s.users[userID] = u
	return &u, nil
}

// ---- repository.Activity ----

func (s *Store) GetRecentActivities(ctx context.Context, userID string, limit int) ([]domain.ActivityLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.ActivityLogEntry
	for i := len(s.activities) - 1; i >= 0; i-- {
		if s.activities[i].UserID == userID {
			out = append(out, s.activities[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (s *Store) CleanupOldActivities(ctx context.Context, retentionDays int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	kept := s.activities[:0]
	var removed int64
	for _, a := range s.activities {
		if a.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	s.activities = kept
	return removed, nil
}

// ---- internals ----

func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *Store) stacksOf(userID, itemID string) []domain.InventoryStack {
	var out []domain.InventoryStack
	for _, st := range s.stacks {
		if st.UserID == userID && st.ItemID == itemID {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// commit validates and writes staged changesets atomically
func (s *Store) commit(ctx context.Context, staged []*repository.Changeset) error {
	s.mu.Lock()
	hook := s.beforeCommit
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cs := range staged {
		if err := s.validate(cs); err != nil {
			return err
		}
	}
	for _, cs := range staged {
		s.write(cs)
	}
	return nil
}

func (s *Store) validate(cs *repository.Changeset) error {
	if ms := cs.MissionState; ms != nil {
		current, exists := s.states[stateKey{ms.UserID, ms.MissionID}]
		if ms.Insert && exists {
			return domain.ErrConcurrentModification
		}
		if !ms.Insert && (!exists || current.Version != ms.ExpectedVersion) {
			return domain.ErrConcurrentModification
		}
	}
	if cs.UserStats != nil {
		if _, ok := s.users[cs.UserStats.UserID]; !ok {
			return domain.ErrUserNotFound
		}
	}
	for _, st := range cs.StackUpdates {
		if _, ok := s.stacks[st.ID]; !ok {
			return domain.ErrStackNotFound
		}
		if err := s.checkQuantity(st); err != nil {
			return err
		}
	}
	for _, st := range cs.StackCreates {
		if err := s.checkQuantity(st); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) checkQuantity(st domain.InventoryStack) error {
	item, ok := s.items[st.ItemID]
	if !ok {
		return domain.ErrItemNotFound
	}
	if st.Quantity < 1 || st.Quantity > item.Capacity() {
		return fmt.Errorf("stack quantity %d outside 1..%d", st.Quantity, item.Capacity())
	}
	return nil
}

func (s *Store) write(cs *repository.Changeset) {
	if ms := cs.MissionState; ms != nil {
		s.states[stateKey{ms.UserID, ms.MissionID}] = domain.UserMissionState{
			UserID:      ms.UserID,
			MissionID:   ms.MissionID,
			Status:      domain.MissionStatusCompleted,
			CompletedAt: ms.CompletedAt,
			Version:     ms.NextVersion(),
		}
	}
	if us := cs.UserStats; us != nil {
		u := s.users[us.UserID]
		u.Experience = us.Experience
		u.Level = us.Level
		u.Money = us.Money
		u.UpdatedAt = us.UpdatedAt
		s.users[us.UserID] = u
	}
	for _, a := range cs.Activities {
		a.ID = s.nextID("activity")
		s.activities = append(s.activities, a)
	}
	for _, id := range cs.StackDeletes {
		delete(s.stacks, id)
	}
	for _, st := range cs.StackUpdates {
		s.stacks[st.ID] = st
	}
	for _, st := range cs.StackCreates {
		st.ID = s.nextID("stack")
		s.stacks[st.ID] = st
	}
}

// tx stages changesets until commit
type tx struct {
	s      *Store
	staged []*repository.Changeset
	done   bool
}

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

func (t *tx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	return t.s.GetUser(ctx, userID)
}

func (t *tx) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	i, ok := t.s.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &i, nil
}

func (t *tx) GetStacksForUpdate(ctx context.Context, userID, itemID string) ([]domain.InventoryStack, error) {
	return t.s.Stacks(userID, itemID), nil
}

func (t *tx) GetStackForUpdate(ctx context.Context, stackID string) (*domain.InventoryStack, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	st, ok := t.s.stacks[stackID]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (t *tx) GetMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	m, ok := t.s.missions[missionID]
	if !ok {
		return nil, domain.ErrMissionNotFound
	}
	return &m, nil
}

func (t *tx) GetMissionState(ctx context.Context, userID, missionID string) (*domain.UserMissionState, error) {
	st, ok := t.s.MissionState(userID, missionID)
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (t *tx) Apply(ctx context.Context, cs *repository.Changeset) error {
	if t.done {
		return errTxClosed
	}
	t.s.mu.Lock()
	err := t.s.applyErr
	t.s.applyErr = nil
	t.s.mu.Unlock()
	if err != nil {
		return err
	}

	copied := *cs
	t.staged = append(t.staged, &copied)
	return nil
}

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	return t.s.commit(ctx, t.staged)
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	t.staged = nil
	return nil
}
