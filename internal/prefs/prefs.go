// Package prefs implements the device-local preference store of the blog
// client. Preferences never touch the server: the store is the sole source
// of truth for them, and every mutation is immediately re-serialized to the
// backend (write-through). Each blob is keyed and rehydrated independently,
// a corrupt blob only resets its own preferences to the defaults.
package prefs

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

// Blob keys. The names match the browser localStorage keys the web client
// has always used, so an exported profile stays readable.
const (
	keyTheme           = "theme-storage"
	keySettings        = "settings-storage"
	keyTodos           = "blog_todos"
	keyVisitStats      = "blog_visit_stats"
	keyCommentAuthor   = "comment_author"
	keyGuestbookAuthor = "guestbook_author"
	keyProjectOrder    = "project_order"
)

// Theme is the UI color scheme.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Background names a visual background preset.
type Background string

// Supported background presets.
const (
	BackgroundSpace     Background = "space"
	BackgroundAurora    Background = "aurora"
	BackgroundCyberpunk Background = "cyberpunk"
	BackgroundWarm      Background = "warm"
	BackgroundSunset    Background = "sunset"
	BackgroundMinimal   Background = "minimal"
)

// Valid reports whether b names a known preset.
func (b Background) Valid() bool {
	switch b {
	case BackgroundSpace, BackgroundAurora, BackgroundCyberpunk,
		BackgroundWarm, BackgroundSunset, BackgroundMinimal:
		return true
	default:
		return false
	}
}

// AIConfig holds the writing assistant provider settings.
type AIConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	APIKey   string `json:"apiKey"`
	BaseURL  string `json:"baseUrl"`
}

// AIConfigPatch is a partial AIConfig update. Nil fields keep their
// current value.
type AIConfigPatch struct {
	Provider *string
	Model    *string
	APIKey   *string
	BaseURL  *string
}

// themeBlob is the persisted shape of the theme preferences.
type themeBlob struct {
	Theme      Theme      `json:"theme"`
	Background Background `json:"background"`
}

// settingsBlob is the persisted shape of the assistant and project settings.
type settingsBlob struct {
	AIConfig       AIConfig `json:"aiConfig"`
	ContactEmail   string   `json:"contactEmail"`
	HiddenProjects []string `json:"hiddenProjects"`
}

func defaultThemeBlob() themeBlob {
	return themeBlob{
		Theme:      ThemeDark,
		Background: BackgroundSpace,
	}
}

func defaultSettingsBlob() settingsBlob {
	return settingsBlob{
		AIConfig: AIConfig{
			Provider: "qwen",
			Model:    "qwen-plus",
			APIKey:   "",
			BaseURL:  "https://dashscope.aliyuncs.com/compatible-mode/v1",
		},
		ContactEmail:   "",
		HiddenProjects: []string{},
	}
}

// Store holds all device-local preferences. It is loaded once at
// construction and safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	backend Backend

	theme    themeBlob
	settings settingsBlob

	todos           []TodoItem
	visitStats      *VisitStats
	commentAuthor   string
	guestbookAuthor string
	projectOrder    []string
}

// New rehydrates a store from the backend. Missing or unparsable blobs fall
// back to the documented defaults, they never fail construction.
func New(backend Backend) *Store {
	s := &Store{
		backend:  backend,
		theme:    defaultThemeBlob(),
		settings: defaultSettingsBlob(),
		todos:    defaultTodos(),
	}

	s.rehydrate(keyTheme, &s.theme)
	s.rehydrate(keySettings, &s.settings)
	s.rehydrate(keyTodos, &s.todos)
	s.rehydrate(keyCommentAuthor, &s.commentAuthor)
	s.rehydrate(keyGuestbookAuthor, &s.guestbookAuthor)
	s.rehydrate(keyProjectOrder, &s.projectOrder)

	var stats VisitStats
	if s.rehydrate(keyVisitStats, &stats) {
		s.visitStats = &stats
	}

	return s
}

// rehydrate loads one blob into out. It reports whether a valid blob was
// found; on a parse failure the previous (default) value of out survives.
func (s *Store) rehydrate(key string, out any) bool {
	data, ok, err := s.backend.Load(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to load preference blob, using defaults")
		return false
	}

	if !ok {
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding malformed preference blob")
		return false
	}

	return true
}

// persist writes one blob through to the backend. Callers hold the lock.
func (s *Store) persist(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.backend.Save(key, data)
}

// Theme returns the current theme.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.theme.Theme
}

// SetTheme sets the theme.
func (s *Store) SetTheme(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme.Theme = t

	return s.persist(keyTheme, s.theme)
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme() (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme.Theme == ThemeDark {
		s.theme.Theme = ThemeLight
	} else {
		s.theme.Theme = ThemeDark
	}

	return s.theme.Theme, s.persist(keyTheme, s.theme)
}

// Background returns the current background preset.
func (s *Store) Background() Background {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.theme.Background
}

// SetBackground sets the background preset.
func (s *Store) SetBackground(b Background) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !b.Valid() {
		return ErrUnknownBackground
	}

	s.theme.Background = b

	return s.persist(keyTheme, s.theme)
}

// AIConfig returns the writing assistant configuration.
func (s *Store) AIConfig() AIConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings.AIConfig
}

// UpdateAIConfig merges a partial update into the assistant configuration.
func (s *Store) UpdateAIConfig(patch AIConfigPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Provider != nil {
		s.settings.AIConfig.Provider = *patch.Provider
	}

	if patch.Model != nil {
		s.settings.AIConfig.Model = *patch.Model
	}

	if patch.APIKey != nil {
		s.settings.AIConfig.APIKey = *patch.APIKey
	}

	if patch.BaseURL != nil {
		s.settings.AIConfig.BaseURL = *patch.BaseURL
	}

	return s.persist(keySettings, s.settings)
}

// ContactEmail returns the contact email placeholder.
func (s *Store) ContactEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings.ContactEmail
}

// SetContactEmail sets the contact email placeholder.
func (s *Store) SetContactEmail(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.ContactEmail = email

	return s.persist(keySettings, s.settings)
}

// HiddenProjects returns the hidden project names.
func (s *Store) HiddenProjects() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.settings.HiddenProjects...)
}

// HideProject hides a project by name. Duplicate hide calls are tolerated,
// ShowProject removes every occurrence.
func (s *Store) HideProject(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.HiddenProjects = append(s.settings.HiddenProjects, name)

	return s.persist(keySettings, s.settings)
}

// ShowProject removes all occurrences of name from the hidden set.
func (s *Store) ShowProject(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.settings.HiddenProjects[:0]

	for _, hidden := range s.settings.HiddenProjects {
		if hidden != name {
			kept = append(kept, hidden)
		}
	}

	s.settings.HiddenProjects = kept

	return s.persist(keySettings, s.settings)
}

// Hidden reports whether a project is hidden.
func (s *Store) Hidden(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, hidden := range s.settings.HiddenProjects {
		if hidden == name {
			return true
		}
	}

	return false
}

// CommentAuthor returns the remembered comment author name.
func (s *Store) CommentAuthor() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commentAuthor
}

// SetCommentAuthor remembers the comment author name.
func (s *Store) SetCommentAuthor(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commentAuthor = name

	return s.persist(keyCommentAuthor, s.commentAuthor)
}

// GuestbookAuthor returns the remembered guestbook author name.
func (s *Store) GuestbookAuthor() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.guestbookAuthor
}

// SetGuestbookAuthor remembers the guestbook author name.
func (s *Store) SetGuestbookAuthor(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.guestbookAuthor = name

	return s.persist(keyGuestbookAuthor, s.guestbookAuthor)
}

// ProjectOrder returns the manual project display order.
func (s *Store) ProjectOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.projectOrder...)
}

// SetProjectOrder replaces the manual project display order.
func (s *Store) SetProjectOrder(order []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projectOrder = append([]string(nil), order...)

	return s.persist(keyProjectOrder, s.projectOrder)
}
