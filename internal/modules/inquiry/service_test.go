package inquiry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumiere-essence/maison-backend/internal/kv"
	"github.com/lumiere-essence/maison-backend/internal/modules/auth"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc := NewService(NewKVRepository(kv.NewMemoryStore()), zap.NewNop()).(*service)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC)
	}
	return svc
}

var member = &auth.Session{Name: "Elena Vane", Email: "elena@example.com"}

func TestCreateStampsIdentityAndDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	in, err := svc.Create(ctx, member, Request{Message: "Which serum suits dry skin?"})
	require.NoError(t, err)
	require.NotEmpty(t, in.ID)
	require.Equal(t, "Elena Vane", in.Name)
	require.Equal(t, "elena@example.com", in.Email)
	require.Equal(t, "General Inquiry", in.Subject, "empty subject falls back to the default")
	require.Equal(t, "Mar 7, 2026, 02:30 PM", in.Date)
	require.Equal(t, StatusNew, in.Status)
}

func TestCreateRequiresMessage(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(context.Background(), member, Request{Subject: "Hello", Message: "   "})
	require.ErrorIs(t, err, ErrMessageNeeded)
}

func TestNewestSubmissionListsFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, member, Request{Message: "first"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, member, Request{Message: "second"})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID)
	require.Equal(t, first.ID, all[1].ID)
}

func TestResolveAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	in, err := svc.Create(ctx, member, Request{Message: "resolve me"})
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(ctx, in.ID))
	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, StatusResolved, all[0].Status)

	require.ErrorIs(t, svc.Resolve(ctx, "missing"), ErrNotFound)

	require.NoError(t, svc.Delete(ctx, in.ID))
	all, err = svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	// deleting an unknown id is a no-op
	require.NoError(t, svc.Delete(ctx, "missing"))
}
