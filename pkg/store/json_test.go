package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/autofeed/pkg/domain"
)

func TestJSON_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewJSON(filepath.Join(t.TempDir(), "feeds.json"))
	require.NoError(t, s.Load(ctx))

	t.Run("create and get", func(t *testing.T) {
		f, err := s.Create(ctx, domain.Feed{Name: "Ping", IntervalMinutes: 1, Destination: "chan-1", Active: true,
			Payload: domain.Payload{Description: "hi"}})
		require.NoError(t, err)
		assert.NotEmpty(t, f.ID)
		assert.False(t, f.CreatedAt.IsZero())
		assert.Nil(t, f.LastDeliveredAt)

		got, err := s.Get(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ping", got.Name)
		assert.Equal(t, "hi", got.Payload.Description)
	})

	t.Run("find by name is case-insensitive", func(t *testing.T) {
		f, err := s.FindByName(ctx, "pInG")
		require.NoError(t, err)
		assert.Equal(t, "Ping", f.Name)

		_, err = s.FindByName(ctx, "nope")
		require.ErrorIs(t, err, domain.ErrFeedNotFound)
	})

	t.Run("set active and record delivery", func(t *testing.T) {
		f, err := s.FindByName(ctx, "ping")
		require.NoError(t, err)

		upd, err := s.SetActive(ctx, f.ID, false)
		require.NoError(t, err)
		assert.False(t, upd.Active)

		ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, s.RecordDelivery(ctx, f.ID, ts))
		got, err := s.Get(ctx, f.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastDeliveredAt)
		assert.True(t, ts.Equal(*got.LastDeliveredAt))

		_, err = s.SetActive(ctx, "unknown", true)
		require.ErrorIs(t, err, domain.ErrFeedNotFound)
		require.ErrorIs(t, s.RecordDelivery(ctx, "unknown", ts), domain.ErrFeedNotFound)
	})

	t.Run("update keeps id and creation time", func(t *testing.T) {
		f, err := s.FindByName(ctx, "ping")
		require.NoError(t, err)
		f2 := f
		f2.IntervalMinutes = 15
		f2.Name = "Pong"
		f2.CreatedAt = time.Time{}
		upd, err := s.Update(ctx, f2)
		require.NoError(t, err)
		assert.Equal(t, f.ID, upd.ID)
		assert.Equal(t, 15, upd.IntervalMinutes)
		assert.True(t, f.CreatedAt.Equal(upd.CreatedAt))
		require.NotNil(t, upd.LastDeliveredAt)

		_, err = s.Update(ctx, domain.Feed{ID: "unknown"})
		require.ErrorIs(t, err, domain.ErrFeedNotFound)
	})

	t.Run("returned feeds are copies", func(t *testing.T) {
		feeds, err := s.All(ctx)
		require.NoError(t, err)
		require.Len(t, feeds, 1)
		feeds[0].Name = "mutated"
		*feeds[0].LastDeliveredAt = time.Time{}

		got, err := s.Get(ctx, feeds[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Pong", got.Name)
		assert.False(t, got.LastDeliveredAt.IsZero())
	})

	t.Run("delete", func(t *testing.T) {
		f, err := s.FindByName(ctx, "pong")
		require.NoError(t, err)
		ok, err := s.Delete(ctx, f.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Delete(ctx, f.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = s.Get(ctx, f.ID)
		require.ErrorIs(t, err, domain.ErrFeedNotFound)
	})
}

func TestJSON_DistinctIDs(t *testing.T) {
	ctx := context.Background()
	s := NewJSON(filepath.Join(t.TempDir(), "feeds.json"))

	ids := map[string]bool{}
	for i := 0; i < 50; i++ {
		f, err := s.Create(ctx, domain.Feed{Name: "f", IntervalMinutes: 1, Destination: "d"})
		require.NoError(t, err)
		assert.False(t, ids[f.ID], "duplicate id %s", f.ID)
		ids[f.ID] = true
	}
}

func TestJSON_IDCollision(t *testing.T) {
	ctx := context.Background()
	s := NewJSON(filepath.Join(t.TempDir(), "feeds.json"))
	seq := []string{"a", "a", "a", "b"}
	s.newID = func() string {
		id := seq[0]
		seq = seq[1:]
		return id
	}

	f1, err := s.Create(ctx, domain.Feed{Name: "one", IntervalMinutes: 1, Destination: "d"})
	require.NoError(t, err)
	f2, err := s.Create(ctx, domain.Feed{Name: "two", IntervalMinutes: 1, Destination: "d"})
	require.NoError(t, err)
	assert.Equal(t, "a", f1.ID)
	assert.Equal(t, "b", f2.ID)
}

func TestJSON_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "feeds.json")
	s := NewJSON(path)

	created := map[string]domain.Feed{}
	for i, name := range []string{"one", "two", "three"} {
		f, err := s.Create(ctx, domain.Feed{Name: name, IntervalMinutes: i + 1, Destination: "chan-" + name,
			Active: i%2 == 0, Payload: domain.Payload{Title: name, Color: "#ff0000", Footer: "foot"}})
		require.NoError(t, err)
		created[f.ID] = f
	}
	first := func() string {
		for id := range created {
			return id
		}
		return ""
	}()
	ts := time.Now()
	require.NoError(t, s.RecordDelivery(ctx, first, ts))

	reloaded := NewJSON(path)
	require.NoError(t, reloaded.Load(ctx))
	feeds, err := reloaded.All(ctx)
	require.NoError(t, err)
	require.Len(t, feeds, 3)

	for _, f := range feeds {
		orig, ok := created[f.ID]
		require.True(t, ok, "unexpected id %s", f.ID)
		assert.Equal(t, orig.Name, f.Name)
		assert.Equal(t, orig.IntervalMinutes, f.IntervalMinutes)
		assert.Equal(t, orig.Destination, f.Destination)
		assert.Equal(t, orig.Payload, f.Payload)
		assert.Equal(t, orig.Active, f.Active)
		assert.True(t, orig.CreatedAt.Equal(f.CreatedAt))
		if f.ID == first {
			require.NotNil(t, f.LastDeliveredAt)
			assert.True(t, ts.UTC().Equal(*f.LastDeliveredAt))
			continue
		}
		assert.Nil(t, f.LastDeliveredAt)
	}
}

func TestJSON_DocumentLayout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "feeds.json")
	s := NewJSON(path)
	s.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "feed-1" }

	_, err := s.Create(ctx, domain.Feed{Name: "Ping", IntervalMinutes: 1, Destination: "chan-1", Active: true,
		Payload: domain.Payload{Description: "hi"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"feed-1","name":"Ping","intervalMinutes":1,"destination":"chan-1",
		"payload":{"description":"hi"},"active":true,"createdAt":"2026-05-01T10:00:00Z","lastDeliveredAt":null}]`,
		string(data))
}

func TestJSON_LoadBroken(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		s := NewJSON(filepath.Join(t.TempDir(), "none.json"))
		require.NoError(t, s.Load(ctx))
		feeds, err := s.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, feeds)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feeds.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		s := NewJSON(path)
		err := s.Load(ctx)
		var perr *domain.PersistenceError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "load", perr.Op)

		feeds, err := s.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, feeds)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feeds.json")
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		s := NewJSON(path)
		require.NoError(t, s.Load(ctx))
	})

	t.Run("records without id skipped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feeds.json")
		doc := `[{"id":"x1","name":"a","intervalMinutes":5,"destination":"d","payload":{},"active":true,
			"createdAt":"2026-01-01T00:00:00Z","lastDeliveredAt":null},{"name":"b"}]`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
		s := NewJSON(path)
		require.NoError(t, s.Load(ctx))
		feeds, err := s.All(ctx)
		require.NoError(t, err)
		require.Len(t, feeds, 1)
		assert.Equal(t, "x1", feeds[0].ID)
	})
}

func TestJSON_SaveFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	s := NewJSON(filepath.Join(blocker, "feeds.json")) // parent is a regular file
	f, err := s.Create(ctx, domain.Feed{Name: "Ping", IntervalMinutes: 1, Destination: "chan-1"})
	require.NoError(t, err)

	got, err := s.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ping", got.Name)

	var perr *domain.PersistenceError
	require.True(t, errors.As(s.SaveErr(), &perr))
	assert.Equal(t, "save", perr.Op)
	require.Error(t, s.Save(ctx))
}

func TestJSON_SaveWithCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.json")
	s := NewJSON(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f, err := s.Create(ctx, domain.Feed{Name: "Ping", IntervalMinutes: 1, Destination: "chan-1", Active: true})
	require.NoError(t, err)
	require.NoError(t, s.SaveErr())
	_, err = s.SetActive(ctx, f.ID, false)
	require.NoError(t, err)
	require.NoError(t, s.RecordDelivery(ctx, f.ID, time.Now()))

	reloaded := NewJSON(path)
	require.NoError(t, reloaded.Load(context.Background()))
	feeds, err := reloaded.All(context.Background())
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, f.ID, feeds[0].ID)
	assert.False(t, feeds[0].Active)
	assert.NotNil(t, feeds[0].LastDeliveredAt)
}
