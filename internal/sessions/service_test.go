package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge/server/internal/resume"
)

func TestService_CreateGetDelete(t *testing.T) {
	svc := NewService(time.Hour)

	sess := svc.Create()
	require.NotEmpty(t, sess.ID)
	require.NotNil(t, sess.Store)
	require.NotNil(t, sess.Personal)
	require.NotNil(t, sess.Preview)

	got := svc.Get(sess.ID)
	require.Same(t, sess, got)

	svc.Delete(sess.ID)
	require.Nil(t, svc.Get(sess.ID))
	// deleting twice is fine
	svc.Delete(sess.ID)
}

func TestService_GetUnknownID(t *testing.T) {
	svc := NewService(time.Hour)
	require.Nil(t, svc.Get("nope"))
}

func TestService_SessionIDsAreUnique(t *testing.T) {
	svc := NewService(time.Hour)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := svc.Create().ID
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestService_SessionsAreIsolated(t *testing.T) {
	svc := NewService(time.Hour)
	a := svc.Create()
	b := svc.Create()

	a.Experience.Add()
	require.Len(t, a.Store.Snapshot().Experience, 1)
	require.Empty(t, b.Store.Snapshot().Experience)
}

func TestService_IdleSessionExpires(t *testing.T) {
	svc := NewService(time.Minute)
	now := time.Now().UTC()
	svc.now = func() time.Time { return now }

	sess := svc.Create()
	sess.lastSeen = now

	// still alive within the TTL, and the access refreshes the timer
	now = now.Add(30 * time.Second)
	require.NotNil(t, svc.Get(sess.ID))

	now = now.Add(2 * time.Minute)
	require.Nil(t, svc.Get(sess.ID))
	require.Equal(t, 0, svc.Len())
}

func TestService_SweepRemovesOnlyExpired(t *testing.T) {
	svc := NewService(time.Minute)
	now := time.Now().UTC()
	svc.now = func() time.Time { return now }

	old := svc.Create()
	old.lastSeen = now.Add(-2 * time.Minute)
	fresh := svc.Create()
	fresh.lastSeen = now

	require.Equal(t, 1, svc.Sweep())
	require.Equal(t, 1, svc.Len())
	require.Nil(t, svc.Get(old.ID))
	require.NotNil(t, svc.Get(fresh.ID))
}

func TestSession_FormsShareTheStore(t *testing.T) {
	svc := NewService(time.Hour)
	sess := svc.Create()

	id := sess.Skills.Add()
	require.Equal(t, resume.LevelIntermediate, sess.Store.Snapshot().Skills[0].Level)

	require.True(t, sess.Store.SetTemplate(resume.TemplateSkillGalaxy))
	html, err := sess.Preview.HTML()
	require.NoError(t, err)
	require.NotEqual(t, "", html)

	sess.Skills.Remove(id)
	require.Empty(t, sess.Store.Snapshot().Skills)
}
