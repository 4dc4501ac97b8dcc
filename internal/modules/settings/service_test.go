package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumiere-essence/maison-backend/internal/kv"
)

func TestDefaultsWhenNothingStored(t *testing.T) {
	svc := NewService(kv.NewMemoryStore())
	ctx := context.Background()

	p, err := svc.AdminProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Maison Oracle", p.Name)
	require.Equal(t, "admin@lumiere.com", p.Email)
	require.Equal(t, "Head Alchemist", p.Role)

	v, err := svc.RitualVideo(ctx)
	require.NoError(t, err)
	require.Equal(t, "The Synthesis Ritual", v.Title)

	b, err := svc.BrandSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "Breathe Life Into Skin", b.HeroTitle)
}

func TestSaveReplacesRecordInFull(t *testing.T) {
	svc := NewService(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.SaveBrandSettings(ctx, BrandSettings{
		Announcement: "Solstice sale",
		HeroTitle:    "Night Bloom",
	}))

	b, err := svc.BrandSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "Solstice sale", b.Announcement)
	require.Equal(t, "Night Bloom", b.HeroTitle)
	require.Empty(t, b.HeroSubtitle, "save is a full replacement, not a merge")
}

func TestCorruptRecordFallsBackToDefault(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, kv.KeyAdminProfile, []byte("{not json")))

	p, err := svc.AdminProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultAdminProfile(), p)
}
