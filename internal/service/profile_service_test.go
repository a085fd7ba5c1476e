package service

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/you/login-tut/internal/model"
)

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*model.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*model.Profile{}}
}

func (f *fakeProfileRepo) FindByUsername(_ context.Context, username string) (*model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[username]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, username, email, phoneNumber, photo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[username]
	if !ok {
		p = &model.Profile{Username: username}
		f.profiles[username] = p
	}
	p.Email = email
	p.PhoneNumber = phoneNumber
	if photo != "" {
		p.Photo = photo
	}
	return nil
}

func (f *fakeProfileRepo) Create(_ context.Context, p *model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[p.Username]; ok {
		return model.ErrProfileExists
	}
	cp := *p
	f.profiles[p.Username] = &cp
	return nil
}

func (f *fakeProfileRepo) Update(_ context.Context, username, email, phoneNumber, photo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[username]
	if !ok {
		return model.ErrProfileNotFound
	}
	p.Email = email
	p.PhoneNumber = phoneNumber
	if photo != "" {
		p.Photo = photo
	}
	return nil
}

func TestUpsertCreatesThenConverges(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, nil)
	ctx := context.Background()

	if err := svc.Upsert(ctx, "alice", "a@x.com", "123", ""); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	first, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}

	// Repeating the same upsert must leave the record unchanged.
	if err := svc.Upsert(ctx, "alice", "a@x.com", "123", ""); err != nil {
		t.Fatalf("second Upsert error: %v", err)
	}
	second, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated upsert changed the record: %+v vs %+v", first, second)
	}
	if len(repo.profiles) != 1 {
		t.Errorf("expected exactly one stored profile, got %d", len(repo.profiles))
	}
}

func TestUpsertKeepsPhotoWhenNotSupplied(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, nil)
	ctx := context.Background()

	if err := svc.Upsert(ctx, "alice", "a@x.com", "123", "uploads/p.png"); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if err := svc.Upsert(ctx, "alice", "new@x.com", "456", ""); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	p, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if p.Photo != "uploads/p.png" {
		t.Errorf("photo lost on data-only update: %q", p.Photo)
	}
	if p.Email != "new@x.com" || p.PhoneNumber != "456" {
		t.Errorf("contact fields not overwritten: %+v", p)
	}
}

func TestCreateIsStrict(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, nil)
	ctx := context.Background()

	if err := svc.Create(ctx, &model.Profile{Username: "alice", Email: "a@x.com"}); err != nil {
		t.Fatalf("first Create error: %v", err)
	}

	// Second create conflicts regardless of field values.
	err := svc.Create(ctx, &model.Profile{Username: "alice", Email: "other@x.com"})
	if !errors.Is(err, model.ErrProfileExists) {
		t.Errorf("second Create: got %v, want ErrProfileExists", err)
	}
}

func TestUpdateRequiresExistingProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, nil)

	err := svc.Update(context.Background(), "ghost", "g@x.com", "1", "")
	if !errors.Is(err, model.ErrProfileNotFound) {
		t.Errorf("Update for missing profile: got %v, want ErrProfileNotFound", err)
	}
}

func TestGetMissingProfile(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nil)

	_, err := svc.Get(context.Background(), "nobody")
	if !errors.Is(err, model.ErrProfileNotFound) {
		t.Errorf("Get: got %v, want ErrProfileNotFound", err)
	}
}
