package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// EncodeToSnapshot returns the contacts as mappings, in order, together with
// the snapshot path.
func (c *Collection) EncodeToSnapshot() types.Snapshot {
	records := make([]map[string]any, len(c.contacts))
	for i, ct := range c.contacts {
		records[i] = ct.ToMap()
	}
	return types.Snapshot{
		Contacts:  records,
		StorePath: c.storePath,
	}
}

// SaveToFile writes the snapshot to StorePath, replacing any existing file.
func (c *Collection) SaveToFile() error {
	data, err := json.MarshalIndent(c.EncodeToSnapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := writeFileAtomic(c.storePath, append(data, '\n')); err != nil {
		return err
	}

	savesTotal.Inc()
	snapshotContacts.Set(float64(len(c.contacts)))
	c.logger.Info("contacts saved", "path", c.storePath, "contacts", len(c.contacts))
	return nil
}

// LoadFromFile reads a snapshot written by SaveToFile and returns a new
// Collection over its contacts. The store directory is the parent of the
// snapshot's store_path value.
//
// Returns a config error if path is missing, not a regular file, not a .json
// file, not a JSON object, or lacks the contacts or store_path key. Contact
// decoding and duplicate errors are validation errors.
func LoadFromFile(path string, opts ...Option) (*Collection, error) {
	contacts, storePath, err := readSnapshot(path)
	if err != nil {
		return nil, err
	}
	return loaded(path, contacts, filepath.Dir(storePath), opts)
}

// LoadFromFileInto reads a snapshot like LoadFromFile but binds the returned
// Collection to storeDir, ignoring the snapshot's store_path value.
func LoadFromFileInto(path, storeDir string, opts ...Option) (*Collection, error) {
	contacts, _, err := readSnapshot(path)
	if err != nil {
		return nil, err
	}
	return loaded(path, contacts, storeDir, opts)
}

func loaded(path string, contacts []*types.Contact, storeDir string, opts []Option) (*Collection, error) {
	c, err := New(contacts, storeDir, opts...)
	if err != nil {
		return nil, err
	}

	loadsTotal.Inc()
	snapshotContacts.Set(float64(len(contacts)))
	c.logger.Info("contacts loaded", "path", path, "contacts", len(contacts))
	return c, nil
}

// readSnapshot decodes the contacts and store_path of the snapshot at path.
func readSnapshot(path string) ([]*types.Contact, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %q", types.ErrSnapshotMissing, path)
		}
		return nil, "", fmt.Errorf("%w: stat %q: %v", types.ErrConfig, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, "", fmt.Errorf("%w: %q", types.ErrSnapshotNotFile, path)
	}
	if filepath.Ext(path) != types.SnapshotExt {
		return nil, "", fmt.Errorf("%w: %q", types.ErrSnapshotExt, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", types.ErrSnapshotMalformed, path, err)
	}
	rawContacts, ok := raw[types.SnapshotKeyContacts]
	if !ok {
		return nil, "", types.ErrSnapshotNoContacts
	}
	rawStorePath, ok := raw[types.SnapshotKeyStorePath]
	if !ok {
		return nil, "", types.ErrSnapshotNoStore
	}

	var records []map[string]any
	if err := json.Unmarshal(rawContacts, &records); err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", types.ErrSnapshotMalformed, types.SnapshotKeyContacts, err)
	}
	var storePath string
	if err := json.Unmarshal(rawStorePath, &storePath); err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", types.ErrSnapshotMalformed, types.SnapshotKeyStorePath, err)
	}

	contacts := make([]*types.Contact, 0, len(records))
	for i, rec := range records {
		ct, err := types.ContactFromMap(rec)
		if err != nil {
			return nil, "", fmt.Errorf("contact %d: %w", i, err)
		}
		contacts = append(contacts, ct)
	}
	return contacts, storePath, nil
}

// writeFileAtomic writes data to path using the temp-file, fsync, rename
// pattern, so a failed write leaves any previous file intact.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".contacts-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting snapshot permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
