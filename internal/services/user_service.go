package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayushkamni/desi-premium/internal/events"
	"github.com/ayushkamni/desi-premium/internal/models"
	"github.com/ayushkamni/desi-premium/internal/repository"
)

const statsCacheKey = "admin:stats"

// Stats is the admin dashboard summary.
type Stats struct {
	TotalUsers   int64 `json:"totalUsers"`
	PendingUsers int64 `json:"pendingUsers"`
	TotalMedia   int64 `json:"totalMedia"`
	TotalAdmins  int64 `json:"totalAdmins"`
}

// UserService holds the admin-only user operations.
type UserService struct {
	users    repository.UserRepository
	media    repository.MediaRepository
	cache    Cache
	statsTTL time.Duration
	hashCost int
	events   *events.Publisher
	log      *zap.SugaredLogger
}

func NewUserService(users repository.UserRepository, media repository.MediaRepository, cache Cache, statsTTL time.Duration, hashCost int, ev *events.Publisher, log *zap.SugaredLogger) *UserService {
	return &UserService{users: users, media: media, cache: cache, statsTTL: statsTTL, hashCost: hashCost, events: ev, log: log}
}

func translateRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *UserService) List(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

func (s *UserService) Approve(ctx context.Context, id, actor string) error {
	if err := s.users.Approve(ctx, id); err != nil {
		return translateRepoErr(err)
	}
	s.events.Publish(ctx, events.UserApproved, id, actor, nil)
	s.log.Infow("user approved", "user", id, "by", actor)
	return nil
}

// Promote is idempotent: promoting an admin again is a no-op that still
// succeeds. Promotion forces approval.
func (s *UserService) Promote(ctx context.Context, id, actor string) error {
	if err := s.users.Promote(ctx, id); err != nil {
		return translateRepoErr(err)
	}
	s.events.Publish(ctx, events.UserPromoted, id, actor, nil)
	s.log.Infow("user promoted", "user", id, "by", actor)
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, id, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, id, string(hash)); err != nil {
		return translateRepoErr(err)
	}
	return nil
}

// Delete hard-deletes a user. Admins cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return ErrSelfDeletion
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return translateRepoErr(err)
	}
	s.events.Publish(ctx, events.UserDeleted, id, actorID, nil)
	return nil
}

// Stats serves the dashboard counters, cached for a short TTL so the admin
// UI does not hammer the store with count queries.
func (s *UserService) Stats(ctx context.Context) (Stats, error) {
	if s.cache != nil {
		if v, err := s.cache.Get(ctx, statsCacheKey); err == nil && v != "" {
			var st Stats
			if json.Unmarshal([]byte(v), &st) == nil {
				return st, nil
			}
		}
	}

	us, err := s.users.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}
	mediaCount, err := s.media.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{
		TotalUsers:   us.Total,
		PendingUsers: us.Pending,
		TotalMedia:   mediaCount,
		TotalAdmins:  us.Admins,
	}

	if s.cache != nil {
		if b, err := json.Marshal(st); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, string(b), s.statsTTL); err != nil {
				s.log.Warnw("stats cache set failed", "err", err)
			}
		}
	}
	return st, nil
}
