package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lumiere-essence/maison-backend/internal/kv"
)

// Service reads and replaces the singleton configuration records. A missing
// or unreadable record yields the hard-coded default, never an error.
type Service interface {
	AdminProfile(ctx context.Context) (AdminProfile, error)
	SaveAdminProfile(ctx context.Context, p AdminProfile) error
	RitualVideo(ctx context.Context) (RitualVideo, error)
	SaveRitualVideo(ctx context.Context, v RitualVideo) error
	BrandSettings(ctx context.Context) (BrandSettings, error)
	SaveBrandSettings(ctx context.Context, b BrandSettings) error
}

type service struct{ store kv.Store }

func NewService(store kv.Store) Service {
	return &service{store: store}
}

func (s *service) AdminProfile(ctx context.Context) (AdminProfile, error) {
	var p AdminProfile
	ok, err := s.load(ctx, kv.KeyAdminProfile, &p)
	if err != nil || !ok {
		return DefaultAdminProfile(), err
	}
	return p, nil
}

func (s *service) SaveAdminProfile(ctx context.Context, p AdminProfile) error {
	return s.save(ctx, kv.KeyAdminProfile, p)
}

func (s *service) RitualVideo(ctx context.Context) (RitualVideo, error) {
	var v RitualVideo
	ok, err := s.load(ctx, kv.KeyBrandMedia, &v)
	if err != nil || !ok {
		return DefaultRitualVideo(), err
	}
	return v, nil
}

func (s *service) SaveRitualVideo(ctx context.Context, v RitualVideo) error {
	return s.save(ctx, kv.KeyBrandMedia, v)
}

func (s *service) BrandSettings(ctx context.Context) (BrandSettings, error) {
	var b BrandSettings
	ok, err := s.load(ctx, kv.KeyBrandSettings, &b)
	if err != nil || !ok {
		return DefaultBrandSettings(), err
	}
	return b, nil
}

func (s *service) SaveBrandSettings(ctx context.Context, b BrandSettings) error {
	return s.save(ctx, kv.KeyBrandSettings, b)
}

// load reports whether a stored record existed and parsed cleanly. A corrupt
// payload is treated the same as a missing one.
func (s *service) load(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := s.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if jsonErr := json.Unmarshal(data, dst); jsonErr != nil {
		return false, nil
	}
	return true, nil
}

func (s *service) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, data)
}
