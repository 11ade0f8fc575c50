// README: List service: generation, persistence, sharing, and change fan-out.
package list

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"wut2pack/internal/modules/packing"
	"wut2pack/internal/types"
)

var (
	ErrNotFound   = errors.New("list not found")
	ErrBadRequest = errors.New("bad request")
)

type Service struct {
	store    *Store
	notifier Notifier
}

func NewService(store *Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

type CreateCommand struct {
	Name        string
	Origin      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Answers     packing.Answers
	IsShared    bool
}

// Create generates a packing list from the questionnaire answers and persists
// it under a fresh id and share id.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*SavedList, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrBadRequest
	}
	if cmd.EndDate.Before(cmd.StartDate) {
		return nil, ErrBadRequest
	}

	days := packing.DurationDays(cmd.StartDate, cmd.EndDate)
	items := packing.Generate(cmd.Answers, days, cmd.Origin, cmd.Destination)

	l := &SavedList{
		ID:          newID(),
		Name:        cmd.Name,
		Origin:      cmd.Origin,
		Destination: cmd.Destination,
		StartDate:   cmd.StartDate,
		EndDate:     cmd.EndDate,
		Items:       items,
		ShareID:     newID(),
		IsShared:    cmd.IsShared,
		CreatedAt:   time.Now(),
	}
	if err := s.store.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*SavedList, error) {
	return s.store.Get(ctx, id)
}

// GetShared resolves a public share link. A list whose owner has turned
// sharing off is indistinguishable from a missing one.
func (s *Service) GetShared(ctx context.Context, shareID types.ID) (*SavedList, error) {
	l, err := s.store.GetByShareID(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if !l.IsShared {
		return nil, ErrNotFound
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, ids []types.ID) ([]*SavedList, error) {
	return s.store.ListByIDs(ctx, ids)
}

func (s *Service) Rename(ctx context.Context, id types.ID, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBadRequest
	}
	l, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Update(ctx, id, Update{Name: &name}); err != nil {
		return err
	}
	s.notify(ctx, l, ChangeEvent{ShareID: l.ShareID, Kind: "renamed", Name: name})
	return nil
}

// ReplaceItems stores a caller-edited item structure. Editing individual
// entries is the client's concern; the server only swaps the whole document.
func (s *Service) ReplaceItems(ctx context.Context, id types.ID, items packing.PackingList) error {
	for c := range items.Categories {
		if !validCategory(c) {
			return ErrBadRequest
		}
	}
	l, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Update(ctx, id, Update{Items: &items}); err != nil {
		return err
	}
	s.notify(ctx, l, ChangeEvent{ShareID: l.ShareID, Kind: "items"})
	return nil
}

func (s *Service) SetShared(ctx context.Context, id types.ID, shared bool) error {
	l, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Update(ctx, id, Update{IsShared: &shared}); err != nil {
		return err
	}
	// Viewers of a just-unshared list get one final event.
	if s.notifier != nil {
		s.notifier.Publish(ctx, ChangeEvent{ShareID: l.ShareID, Kind: "shared"})
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	l, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, l, ChangeEvent{ShareID: l.ShareID, Kind: "deleted"})
	return nil
}

// notify publishes only for lists that are publicly shared.
func (s *Service) notify(ctx context.Context, l *SavedList, ev ChangeEvent) {
	if s.notifier == nil || !l.IsShared {
		return
	}
	s.notifier.Publish(ctx, ev)
}

func validCategory(c packing.Category) bool {
	for _, k := range packing.Categories {
		if k == c {
			return true
		}
	}
	return false
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
