package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/higgslabs/higgs-api/internal/domain"
)

// In-memory repository fakes. They mirror the SQL-backed behavior the
// services rely on: point lookups return (nil, nil) when absent, lists
// come back ordered by id, and Create assigns ids and timestamps.

type fakeHeroRepo struct {
	heroes map[int64]domain.Hero
	nextID int64
}

func newFakeHeroRepo() *fakeHeroRepo {
	return &fakeHeroRepo{heroes: make(map[int64]domain.Hero)}
}

func (f *fakeHeroRepo) Create(ctx context.Context, hero *domain.Hero) (*domain.Hero, error) {
	f.nextID++
	h := *hero
	h.ID = f.nextID
	f.heroes[h.ID] = h
	return &h, nil
}

func (f *fakeHeroRepo) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	if h, ok := f.heroes[id]; ok {
		return &h, nil
	}
	return nil, nil
}

func (f *fakeHeroRepo) GetAll(ctx context.Context, skip, limit int) ([]domain.Hero, error) {
	all := f.sorted()
	if skip >= len(all) {
		return []domain.Hero{}, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeHeroRepo) GetByName(ctx context.Context, name string) (*domain.Hero, error) {
	for _, h := range f.sorted() {
		if h.Name == name {
			h := h
			return &h, nil
		}
	}
	return nil, nil
}

func (f *fakeHeroRepo) GetBySecretName(ctx context.Context, secretName string) (*domain.Hero, error) {
	for _, h := range f.sorted() {
		if h.SecretName == secretName {
			h := h
			return &h, nil
		}
	}
	return nil, nil
}

func (f *fakeHeroRepo) GetByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Hero, error) {
	matched := []domain.Hero{}
	for _, h := range f.sorted() {
		if h.Age != nil && *h.Age >= minAge && *h.Age <= maxAge {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

func (f *fakeHeroRepo) Delete(ctx context.Context, hero *domain.Hero) error {
	delete(f.heroes, hero.ID)
	return nil
}

func (f *fakeHeroRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if _, ok := f.heroes[id]; !ok {
		return false, nil
	}
	delete(f.heroes, id)
	return true, nil
}

func (f *fakeHeroRepo) sorted() []domain.Hero {
	all := make([]domain.Hero, 0, len(f.heroes))
	for _, h := range f.heroes {
		all = append(all, h)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

type fakeUserRepo struct {
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	f.nextID++
	u := *user
	u.ID = f.nextID
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	u := *user
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context, skip, limit int) ([]domain.User, error) {
	all := f.sorted()
	if skip >= len(all) {
		return []domain.User{}, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.sorted() {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.sorted() {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetActiveUsers(ctx context.Context) ([]domain.User, error) {
	active := []domain.User{}
	for _, u := range f.sorted() {
		if u.IsActive {
			active = append(active, u)
		}
	}
	return active, nil
}

func (f *fakeUserRepo) SearchByName(ctx context.Context, query string) ([]domain.User, error) {
	q := strings.ToLower(query)
	matched := []domain.User{}
	for _, u := range f.sorted() {
		fullName := ""
		if u.FullName != nil {
			fullName = *u.FullName
		}
		if strings.Contains(strings.ToLower(fullName), q) ||
			strings.Contains(strings.ToLower(u.Username), q) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, user *domain.User) error {
	delete(f.users, user.ID)
	return nil
}

func (f *fakeUserRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func (f *fakeUserRepo) sorted() []domain.User {
	all := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
