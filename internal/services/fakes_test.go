package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayushkamni/desi-premium/internal/models"
	"github.com/ayushkamni/desi-premium/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	order []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID.Hex()] = &cp
	r.order = append(r.order, u.ID.Hex())
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.User{}
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, *r.users[r.order[i]])
	}
	return out, nil
}

func (r *fakeUserRepo) Approve(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.IsApproved = true
	return nil
}

func (r *fakeUserRepo) Promote(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Role = models.RoleAdmin
	u.IsApproved = true
	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeUserRepo) Stats(_ context.Context) (repository.UserStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := repository.UserStats{Total: int64(len(r.users))}
	for _, u := range r.users {
		if !u.IsApproved {
			st.Pending++
		}
		if u.Role == models.RoleAdmin {
			st.Admins++
		}
	}
	return st, nil
}

type fakeMediaRepo struct {
	mu        sync.Mutex
	items     map[string]*models.MediaItem
	order     []string
	insertErr error
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{items: map[string]*models.MediaItem{}}
}

func (r *fakeMediaRepo) Insert(_ context.Context, m *models.MediaItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	m.ID = primitive.NewObjectID()
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	cp := *m
	r.items[m.ID.Hex()] = &cp
	r.order = append(r.order, m.ID.Hex())
	return nil
}

func (r *fakeMediaRepo) FindByID(_ context.Context, id string) (*models.MediaItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMediaRepo) List(_ context.Context) ([]models.MediaItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.MediaItem{}
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, *r.items[r.order[i]])
	}
	return out, nil
}

func (r *fakeMediaRepo) Update(_ context.Context, id string, upd repository.MediaUpdate) (*models.MediaItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Description != nil {
		m.Description = *upd.Description
	}
	if upd.MediaURL != nil {
		m.MediaURL = *upd.MediaURL
	}
	if upd.ThumbnailURL != nil {
		m.ThumbnailURL = *upd.ThumbnailURL
	}
	if upd.Category != nil {
		m.Category = *upd.Category
	}
	if upd.Type != nil {
		m.Type = *upd.Type
	}
	if upd.Tags != nil {
		m.Tags = *upd.Tags
	}
	m.UpdatedAt = time.Now().UTC()
	cp := *m
	return &cp, nil
}

func (r *fakeMediaRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeMediaRepo) IncrementViews(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.Views++
	return nil
}

func (r *fakeMediaRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

const fakeHostBase = "https://cdn.example.test"

type fakeHost struct {
	mu        sync.Mutex
	uploads   map[string][]byte
	deleted   []string
	uploadErr error
	deleteErr error
}

func newFakeHost() *fakeHost {
	return &fakeHost{uploads: map[string][]byte{}}
}

func (h *fakeHost) Upload(_ context.Context, key, _ string, data []byte) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.uploadErr != nil {
		return "", h.uploadErr
	}
	h.uploads[key] = data
	return fakeHostBase + "/" + key, nil
}

func (h *fakeHost) Delete(_ context.Context, key string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.deleteErr != nil {
		return h.deleteErr
	}
	h.deleted = append(h.deleted, key)
	return nil
}

func (h *fakeHost) KeyFromURL(rawURL string) (string, bool) {
	if !strings.HasPrefix(rawURL, fakeHostBase+"/") {
		return "", false
	}
	return strings.TrimPrefix(rawURL, fakeHostBase+"/"), true
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
	sets int
	gets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.data[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key, val string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = val
	return nil
}
