// Package accounts owns the ordered list of account records and commits it
// to a Persister after every change.
//
// Display order is insertion order. Upserting an existing id replaces the
// record where it stands; only Remove changes the relative order of others.
package accounts

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/accountbook/internal/logging"
	"github.com/dmitrijs2005/accountbook/internal/models"
	"github.com/google/uuid"
)

type Store struct {
	mu        sync.Mutex
	records   []models.AccountRecord
	persister Persister
	newID     func() string
	logger    logging.Logger
}

type Option func(*Store)

// WithIDGenerator overrides uuid.NewString as the source of record ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New loads the saved list from p. A missing document yields an empty store.
func New(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: p,
		newID:     uuid.NewString,
		logger:    logging.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}

	doc, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if doc != nil {
		s.records = doc.Accounts
	}
	if s.records == nil {
		s.records = []models.AccountRecord{}
	}

	s.logger.Info(ctx, "accounts loaded", "records", len(s.records))
	return s, nil
}

// List returns a copy of the records in display order.
func (s *Store) List() []models.AccountRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.AccountRecord, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (models.AccountRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.records[i].Clone(), true
	}
	return models.AccountRecord{}, false
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// AddEmpty appends a record with default values and a fresh id.
func (s *Store) AddEmpty(ctx context.Context) (models.AccountRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.NewEmptyRecord(s.newID())
	next := append(slices.Clone(s.records), rec)

	if err := s.commit(ctx, next); err != nil {
		return models.AccountRecord{}, err
	}
	return rec.Clone(), nil
}

// Remove deletes the record with the given id. An unknown id is not an error
// and writes nothing.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	return s.commit(ctx, slices.Delete(slices.Clone(s.records), i, i+1))
}

// UpsertFromInput normalizes in into a record and stores it under id,
// replacing an existing record in place or appending a new one. An empty id
// creates a record with a fresh id.
//
// in is expected to have passed models.Validate; no validation happens here.
func (s *Store) UpsertFromInput(ctx context.Context, id string, in models.AccountFormInput) (models.AccountRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = s.newID()
	}
	rec := normalize(id, in)

	next := slices.Clone(s.records)
	if i := s.indexOf(id); i >= 0 {
		next[i] = rec
	} else {
		next = append(next, rec)
	}

	if err := s.commit(ctx, next); err != nil {
		return models.AccountRecord{}, err
	}
	return rec.Clone(), nil
}

// Reset drops every record and deletes the saved document. On failure the
// current list is left untouched.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Delete(ctx); err != nil {
		s.logger.Error(ctx, "accounts reset failed", "error", err)
		return fmt.Errorf("reset accounts: %w", err)
	}
	s.records = []models.AccountRecord{}
	s.logger.Info(ctx, "accounts reset")
	return nil
}

// Close releases the persister.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Close(); err != nil {
		return fmt.Errorf("close persister: %w", err)
	}
	s.logger.Debug(ctx, "accounts store closed")
	return nil
}

// normalize builds the stored form of in. An empty or unknown type falls back
// to LDAP, and the password is kept only for local accounts.
func normalize(id string, in models.AccountFormInput) models.AccountRecord {
	typ := in.Type
	if !typ.Known() {
		typ = models.AccountTypeLDAP
	}

	rec := models.AccountRecord{
		ID:    id,
		Label: models.ParseLabel(in.LabelRaw),
		Type:  typ,
		Login: in.Login,
	}
	if typ == models.AccountTypeLocal {
		pw := in.Password
		rec.Password = &pw
	}
	return rec
}

// commit saves next and makes it current. On failure the current list is
// left untouched.
func (s *Store) commit(ctx context.Context, next []models.AccountRecord) error {
	if err := s.persister.Save(ctx, Document{Accounts: next}); err != nil {
		s.logger.Error(ctx, "accounts commit failed", "error", err)
		return fmt.Errorf("commit accounts: %w", err)
	}
	s.records = next
	s.logger.Debug(ctx, "accounts committed", "records", len(next))
	return nil
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.records, func(r models.AccountRecord) bool {
		return r.ID == id
	})
}
