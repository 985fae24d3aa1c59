package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s := New(NewMemoryBackend())

	assert.Equal(t, ThemeDark, s.Theme())
	assert.Equal(t, BackgroundSpace, s.Background())

	ai := s.AIConfig()
	assert.Equal(t, "qwen", ai.Provider)
	assert.Equal(t, "qwen-plus", ai.Model)
	assert.Empty(t, ai.APIKey)
	assert.Equal(t, "https://dashscope.aliyuncs.com/compatible-mode/v1", ai.BaseURL)

	assert.Empty(t, s.ContactEmail())
	assert.Empty(t, s.HiddenProjects())
	assert.Len(t, s.Todos(), 2)

	_, ok := s.VisitStats()
	assert.False(t, ok, "no visit was ever recorded")
}

func TestToggleTheme(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)

	theme, err := s.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	theme, err = s.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	// Every toggle writes through, a fresh store sees the last state.
	_, err = s.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, New(backend).Theme())
}

func TestSetBackground(t *testing.T) {
	s := New(NewMemoryBackend())

	require.NoError(t, s.SetBackground(BackgroundAurora))
	assert.Equal(t, BackgroundAurora, s.Background())

	err := s.SetBackground(Background("disco"))
	require.ErrorIs(t, err, ErrUnknownBackground)
	assert.Equal(t, BackgroundAurora, s.Background(), "invalid preset leaves the current one")
}

func TestUpdateAIConfig_PartialMerge(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)

	key := "sk-test"
	require.NoError(t, s.UpdateAIConfig(AIConfigPatch{APIKey: &key}))

	ai := s.AIConfig()
	assert.Equal(t, "sk-test", ai.APIKey)
	assert.Equal(t, "qwen", ai.Provider, "untouched fields keep their value")
	assert.Equal(t, "qwen-plus", ai.Model)

	// Rehydration round trip: a fresh store over the same backend sees the
	// patched config, including the key.
	ai = New(backend).AIConfig()
	assert.Equal(t, "sk-test", ai.APIKey)
	assert.Equal(t, "qwen", ai.Provider)
}

func TestHideShowProject(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)

	require.NoError(t, s.HideProject("demo"))
	require.NoError(t, s.HideProject("demo"), "duplicate hide is tolerated")
	assert.True(t, s.Hidden("demo"))
	assert.False(t, s.Hidden("other"))

	// Survives rehydration.
	assert.True(t, New(backend).Hidden("demo"))

	// Show removes every occurrence, including duplicates.
	require.NoError(t, s.ShowProject("demo"))
	assert.False(t, s.Hidden("demo"))
	assert.Empty(t, s.HiddenProjects())
	assert.False(t, New(backend).Hidden("demo"))
}

func TestRememberedAuthors(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)

	require.NoError(t, s.SetCommentAuthor("ana"))
	require.NoError(t, s.SetGuestbookAuthor("ben"))

	fresh := New(backend)
	assert.Equal(t, "ana", fresh.CommentAuthor())
	assert.Equal(t, "ben", fresh.GuestbookAuthor())
}

func TestProjectOrder(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)

	require.NoError(t, s.SetProjectOrder([]string{"b", "a", "c"}))
	assert.Equal(t, []string{"b", "a", "c"}, New(backend).ProjectOrder())
}

func TestNew_MalformedBlobFallsBackToDefaults(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Save(keyTheme, []byte("not json at all")))

	good := `{"aiConfig":{"provider":"openai","model":"gpt-4","apiKey":"","baseUrl":""},"contactEmail":"","hiddenProjects":[]}`
	require.NoError(t, backend.Save(keySettings, []byte(good)))

	s := New(backend)

	// The corrupt theme blob resets to defaults, the healthy settings blob
	// is untouched.
	assert.Equal(t, ThemeDark, s.Theme())
	assert.Equal(t, BackgroundSpace, s.Background())
	assert.Equal(t, "openai", s.AIConfig().Provider)
}

func TestFileBackend_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	s := New(backend)
	require.NoError(t, s.SetTheme(ThemeLight))
	require.NoError(t, s.SetCommentAuthor("ana"))

	// A second backend over the same directory sees the persisted state.
	reopened, err := NewFileBackend(dir)
	require.NoError(t, err)

	fresh := New(reopened)
	assert.Equal(t, ThemeLight, fresh.Theme())
	assert.Equal(t, "ana", fresh.CommentAuthor())
}

func TestFileBackend_MissingKey(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	_, ok, err := backend.Load("never-written")
	require.NoError(t, err)
	assert.False(t, ok)
}
