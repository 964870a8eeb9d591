package drafts

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"go-query-cache/internal/cache/l1"
	"go-query-cache/internal/interfaces"
	"go-query-cache/internal/interfaces/mock"
	"go-query-cache/internal/models"
)

func newL1(t *testing.T) interfaces.Cache {
	t.Helper()
	cache, err := l1.NewBigCache(1, time.Hour, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		if closer, ok := cache.(io.Closer); ok {
			_ = closer.Close()
		}
	})
	return cache
}

func newTestStore(t *testing.T) (*Store, *clock.Mock) {
	t.Helper()
	mockClock := clock.NewMock()
	mockClock.Set(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	return NewStore(newL1(t), 24*time.Hour, "draft:", zaptest.NewLogger(t), WithClock(mockClock)), mockClock
}

func strPtr(s string) *string {
	return &s
}

func TestStore_GetUnknownReturnsEmptyForm(t *testing.T) {
	store, _ := newTestStore(t)

	draft, err := store.Get("page-caching")

	require.NoError(t, err)
	assert.Equal(t, "page-caching", draft.ID)
	assert.Empty(t, draft.Content)
	assert.Equal(t, []string{}, draft.Tags)
	assert.False(t, draft.IsDraft)
	assert.Nil(t, draft.LastSaved)
}

func TestStore_ContentSurvivesAcrossReads(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.SetContent("page-caching", "hello world")
	require.NoError(t, err)

	draft, err := store.Get("page-caching")
	require.NoError(t, err)
	assert.Equal(t, "hello world", draft.Content)
	assert.Nil(t, draft.LastSaved, "plain content edits do not stamp lastSaved")
}

func TestStore_DraftsAreIndependent(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.SetContent("a", "first")
	require.NoError(t, err)
	_, err = store.SetContent("b", "second")
	require.NoError(t, err)

	a, err := store.Get("a")
	require.NoError(t, err)
	b, err := store.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "first", a.Content)
	assert.Equal(t, "second", b.Content)
}

func TestStore_UpdateFormAppliesSetFields(t *testing.T) {
	store, mockClock := newTestStore(t)

	_, err := store.UpdateForm("post", models.FormPatch{
		Title:    strPtr("Title"),
		Category: strPtr("tech"),
		Tags:     []string{"go", "cache"},
	})
	require.NoError(t, err)

	mockClock.Add(time.Minute)
	draft, err := store.UpdateForm("post", models.FormPatch{Content: strPtr("body")})
	require.NoError(t, err)

	assert.Equal(t, "Title", draft.Title)
	assert.Equal(t, "body", draft.Content)
	assert.Equal(t, "tech", draft.Category)
	assert.Equal(t, []string{"go", "cache"}, draft.Tags)
	require.NotNil(t, draft.LastSaved)
	assert.True(t, draft.LastSaved.Equal(mockClock.Now()), "lastSaved = %v", draft.LastSaved)
}

func TestStore_EmptyPatchLeavesLastSaved(t *testing.T) {
	store, mockClock := newTestStore(t)

	draft, err := store.UpdateForm("post", models.FormPatch{})
	require.NoError(t, err)
	assert.Nil(t, draft.LastSaved)

	saved, err := store.UpdateForm("post", models.FormPatch{Title: strPtr("Title")})
	require.NoError(t, err)
	require.NotNil(t, saved.LastSaved)

	mockClock.Add(time.Minute)
	draft, err = store.UpdateForm("post", models.FormPatch{})
	require.NoError(t, err)
	assert.Equal(t, "Title", draft.Title)
	require.NotNil(t, draft.LastSaved)
	assert.True(t, draft.LastSaved.Equal(*saved.LastSaved), "lastSaved = %v", draft.LastSaved)
}

func TestStore_SaveAsDraft(t *testing.T) {
	store, mockClock := newTestStore(t)

	_, err := store.SetContent("post", "text")
	require.NoError(t, err)

	draft, err := store.SaveAsDraft("post")
	require.NoError(t, err)

	assert.True(t, draft.IsDraft)
	assert.Equal(t, "text", draft.Content)
	require.NotNil(t, draft.LastSaved)
	assert.True(t, draft.LastSaved.Equal(mockClock.Now()))

	reloaded, err := store.Get("post")
	require.NoError(t, err)
	assert.True(t, reloaded.IsDraft)
	require.NotNil(t, reloaded.LastSaved)
	assert.True(t, reloaded.LastSaved.Equal(mockClock.Now()))
}

func TestStore_Clear(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.SaveAsDraft("post")
	require.NoError(t, err)

	require.NoError(t, store.Clear("post"))

	draft, err := store.Get("post")
	require.NoError(t, err)
	assert.False(t, draft.IsDraft)
	assert.Empty(t, draft.Content)
}

func TestStore_Stats(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.SetContent("post", "one two\nthree "+strings.Repeat("x", 120))
	require.NoError(t, err)

	stats, err := store.Stats("post")
	require.NoError(t, err)

	assert.Equal(t, 134, stats.Characters)
	assert.Equal(t, 4, stats.Words)
	assert.Equal(t, 2, stats.Lines)
	assert.True(t, strings.HasSuffix(stats.Preview, "..."))
}

func TestStore_InvalidID(t *testing.T) {
	store, _ := newTestStore(t)

	tests := []struct {
		name string
		id   string
	}{
		{name: "empty", id: ""},
		{name: "too long", id: strings.Repeat("a", 129)},
		{name: "non ascii", id: "초안"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Get(tt.id)
			assert.ErrorIs(t, err, ErrInvalidID)

			_, err = store.SetContent(tt.id, "x")
			assert.ErrorIs(t, err, ErrInvalidID)

			assert.ErrorIs(t, store.Clear(tt.id), ErrInvalidID)
		})
	}
}

func TestStore_WritesWithPrefixAndTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockCache(ctrl)
	store := NewStore(cache, 2*time.Hour, "draft:", zaptest.NewLogger(t))

	cache.EXPECT().Get("draft:post").Return(nil, false)
	cache.EXPECT().Set("draft:post", gomock.Any(), 2*time.Hour).Do(func(_ string, val []byte, _ time.Duration) {
		var stored models.Draft
		require.NoError(t, json.Unmarshal(val, &stored))
		assert.Equal(t, "post", stored.ID)
		assert.Equal(t, "text", stored.Content)
	})

	_, err := store.SetContent("post", "text")
	require.NoError(t, err)
}

func TestStore_CorruptEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockCache(ctrl)
	store := NewStore(cache, time.Hour, "draft:", zaptest.NewLogger(t))

	cache.EXPECT().Get("draft:post").Return(&models.CacheEntry{Data: []byte("{not json")}, true).Times(2)

	_, err := store.Get("post")
	assert.True(t, errors.Is(err, ErrCorruptDraft))

	_, err = store.SetContent("post", "text")
	assert.ErrorIs(t, err, ErrCorruptDraft)
}
