package drafts

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"go-query-cache/internal/interfaces"
	"go-query-cache/internal/metrics"
	"go-query-cache/internal/models"
	"go-query-cache/internal/utils"
)

// Ensure Store implements interfaces.DraftStore
var _ interfaces.DraftStore = (*Store)(nil)

// Store keeps form drafts in a byte cache tier as JSON.
// A draft that was never written reads back as the empty form.
type Store struct {
	cache     interfaces.Cache
	ttl       time.Duration
	keyPrefix string
	logger    *zap.Logger
	clock     clock.Clock
	validate  *validator.Validate

	// mu serializes read-modify-write cycles against the tier
	mu sync.Mutex
}

// Option configures a Store
type Option func(*Store)

// WithClock sets the time source used for lastSaved
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// NewStore creates a draft store over cache. Drafts expire ttl after their last write.
func NewStore(cache interfaces.Cache, ttl time.Duration, keyPrefix string, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		cache:     cache,
		ttl:       ttl,
		keyPrefix: keyPrefix,
		logger:    logger,
		clock:     clock.New(),
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored draft or the empty form
func (s *Store) Get(id string) (models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(id)
	metrics.RecordDraftOperation("get", err)
	return draft, err
}

// SetContent replaces the draft text, leaving the other form fields as they are
func (s *Store) SetContent(id, content string) (models.Draft, error) {
	return s.update("set_content", id, func(d *models.Draft) {
		d.Content = content
	})
}

// UpdateForm applies the set fields of patch and stamps lastSaved.
// An empty patch changes nothing, lastSaved included.
func (s *Store) UpdateForm(id string, patch models.FormPatch) (models.Draft, error) {
	return s.update("update_form", id, func(d *models.Draft) {
		if patch.IsEmpty() {
			return
		}
		if patch.Title != nil {
			d.Title = *patch.Title
		}
		if patch.Content != nil {
			d.Content = *patch.Content
		}
		if patch.Category != nil {
			d.Category = *patch.Category
		}
		if patch.Tags != nil {
			d.Tags = append([]string(nil), patch.Tags...)
		}
		d.LastSaved = s.now()
	})
}

// SaveAsDraft marks the form as a saved draft
func (s *Store) SaveAsDraft(id string) (models.Draft, error) {
	return s.update("save", id, func(d *models.Draft) {
		d.IsDraft = true
		d.LastSaved = s.now()
	})
}

// Clear resets the draft to the empty form
func (s *Store) Clear(id string) error {
	if err := s.validateID(id); err != nil {
		metrics.RecordDraftOperation("clear", err)
		return err
	}

	s.mu.Lock()
	s.cache.Delete(s.key(id))
	s.mu.Unlock()

	s.logger.Debug("Draft cleared", zap.String("id", id))
	metrics.RecordDraftOperation("clear", nil)
	return nil
}

// Stats summarizes the draft content
func (s *Store) Stats(id string) (models.ContentStats, error) {
	draft, err := s.Get(id)
	if err != nil {
		return models.ContentStats{}, err
	}
	return utils.ContentStats(draft.Content), nil
}

func (s *Store) update(op, id string, mutate func(*models.Draft)) (models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(id)
	if err != nil {
		metrics.RecordDraftOperation(op, err)
		return models.Draft{}, err
	}

	mutate(&draft)

	if err := s.store(draft); err != nil {
		metrics.RecordDraftOperation(op, err)
		return models.Draft{}, err
	}

	metrics.RecordDraftOperation(op, nil)
	return draft, nil
}

// load must be called with mu held
func (s *Store) load(id string) (models.Draft, error) {
	if err := s.validateID(id); err != nil {
		return models.Draft{}, err
	}

	entry, found := s.cache.Get(s.key(id))
	if !found {
		return emptyDraft(id), nil
	}

	var draft models.Draft
	if err := json.Unmarshal(entry.Data, &draft); err != nil {
		s.logger.Warn("Failed to decode draft", zap.String("id", id), zap.Error(err))
		return models.Draft{}, fmt.Errorf("%w: %s", ErrCorruptDraft, id)
	}
	if draft.Tags == nil {
		draft.Tags = []string{}
	}
	return draft, nil
}

func (s *Store) store(draft models.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	s.cache.Set(s.key(draft.ID), data, s.ttl)
	return nil
}

func (s *Store) validateID(id string) error {
	if err := s.validate.Var(id, "required,max=128,printascii"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func (s *Store) key(id string) string {
	return s.keyPrefix + id
}

func (s *Store) now() *time.Time {
	t := s.clock.Now().UTC()
	return &t
}

func emptyDraft(id string) models.Draft {
	return models.Draft{ID: id, Tags: []string{}}
}
