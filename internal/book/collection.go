// Package book implements the contact book: an ordered slice of contacts
// with phone and email index sets kept in step with it, persisted as a single
// JSON snapshot file.
package book

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Collection implements types.Book.
//
// phones and emails always hold exactly the phones and emails of contacts.
// A Collection is not safe for concurrent use.
type Collection struct {
	id        string
	contacts  []*types.Contact
	storePath string
	phones    map[string]struct{}
	emails    map[string]struct{}
	logger    *slog.Logger
}

var _ types.Book = (*Collection)(nil)

// Option configures a Collection.
type Option func(*Collection)

// WithLogger sets the logger used for operation records. A nil logger keeps
// slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Collection) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Collection holding copies of contacts, persisting to
// contacts.json inside storeDir.
// Returns ErrStoreDirMissing or ErrStoreNotDir if storeDir is not an existing
// directory, and ErrDuplicatePhones or ErrDuplicateEmails if two contacts
// share a phone or an email.
func New(contacts []*types.Contact, storeDir string, opts ...Option) (*Collection, error) {
	if err := checkStoreDir(storeDir); err != nil {
		return nil, err
	}

	c := &Collection{
		id:        generateID(),
		contacts:  make([]*types.Contact, 0, len(contacts)),
		storePath: filepath.Join(storeDir, types.SnapshotFileName),
		phones:    make(map[string]struct{}, len(contacts)),
		emails:    make(map[string]struct{}, len(contacts)),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("book_id", c.id)

	for i, in := range contacts {
		if in == nil {
			return nil, fmt.Errorf("%w: nil contact at index %d", types.ErrValidation, i)
		}
		c.contacts = append(c.contacts, in.Clone())
		c.phones[in.Phone] = struct{}{}
		c.emails[in.Email] = struct{}{}
	}
	if len(c.phones) != len(c.contacts) {
		return nil, types.ErrDuplicatePhones
	}
	if len(c.emails) != len(c.contacts) {
		return nil, types.ErrDuplicateEmails
	}

	c.logger.Debug("contact book created", "store_path", c.storePath, "contacts", len(c.contacts))
	return c, nil
}

// checkStoreDir verifies that dir exists and is a directory.
func checkStoreDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", types.ErrStoreDirMissing, dir)
		}
		return fmt.Errorf("%w: stat %q: %v", types.ErrConfig, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q", types.ErrStoreNotDir, dir)
	}
	return nil
}

// generateID returns a UUID v7 identifying a Collection in log records.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// StorePath returns the path of the snapshot file.
func (c *Collection) StorePath() string {
	return c.storePath
}

// Len returns the number of contacts.
func (c *Collection) Len() int {
	return len(c.contacts)
}

// Contacts returns copies of all contacts in insertion order.
func (c *Collection) Contacts() []*types.Contact {
	out := make([]*types.Contact, len(c.contacts))
	for i, ct := range c.contacts {
		out[i] = ct.Clone()
	}
	return out
}
