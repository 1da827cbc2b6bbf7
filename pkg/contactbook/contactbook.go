// Package contactbook provides the public API for opening a contact book.
// It exposes constructors for types.Book while keeping the implementation
// internal.
//
// Example:
//
//	book, err := contactbook.Open(types.Config{DataDir: ".contacts"})
//	if err != nil {
//	    return err
//	}
//	c, _ := types.NewContact("jake", "smith", "jake@x.com", "111111111", nil)
//	if err := book.AddContact(c); err != nil {
//	    return err
//	}
//	return book.SaveToFile()
package contactbook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mesh-intelligence/contacts/internal/book"
	"github.com/mesh-intelligence/contacts/internal/config"
	"github.com/mesh-intelligence/contacts/internal/logging"
	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Option configures a book.
type Option = book.Option

// WithLogger sets the logger a book writes operation records to.
func WithLogger(l *slog.Logger) Option {
	return book.WithLogger(l)
}

// New creates a book over copies of contacts that saves to contacts.json in
// storeDir. storeDir must already exist.
func New(contacts []*types.Contact, storeDir string, opts ...Option) (types.Book, error) {
	return asBook(book.New(contacts, storeDir, opts...))
}

// LoadFromFile reads a book from a snapshot file written by SaveToFile.
func LoadFromFile(path string, opts ...Option) (types.Book, error) {
	return asBook(book.LoadFromFile(path, opts...))
}

// Open returns the book kept in cfg.DataDir, creating the directory if needed.
// If the directory holds no contacts.json the book starts empty. The book
// saves to cfg.DataDir even when the snapshot names another store path.
func Open(cfg types.Config, opts ...Option) (types.Book, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", types.ErrConfig, err)
	}

	snapshot := paths.SnapshotFile(cfg.DataDir)
	if _, err := os.Stat(snapshot); errors.Is(err, fs.ErrNotExist) {
		return asBook(book.New(nil, cfg.DataDir, opts...))
	}
	return asBook(book.LoadFromFileInto(snapshot, cfg.DataDir, opts...))
}

// asBook returns a nil Book when err is set.
func asBook(c *book.Collection, err error) (types.Book, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

// OpenConfigured loads the configuration from configDir (an empty configDir
// resolves through CONTACTS_CONFIG_DIR and the platform default), builds a
// logger writing to logOutput, and opens the configured book.
func OpenConfigured(configDir string, logOutput io.Writer) (types.Book, error) {
	dir, err := paths.ResolveConfigDir(configDir)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve config directory: %v", types.ErrConfig, err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	return Open(cfg, WithLogger(logging.FromConfig(cfg, logOutput)))
}
