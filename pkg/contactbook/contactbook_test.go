package contactbook

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func contact(t *testing.T, first, last, email, phone string) *types.Contact {
	t.Helper()
	c, err := types.NewContact(first, last, email, phone, nil)
	require.NoError(t, err)
	return c
}

func TestOpenCreatesEmptyBook(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	b, err := Open(types.Config{DataDir: dataDir})
	require.NoError(t, err)
	assert.Zero(t, b.Len())
	assert.Equal(t, filepath.Join(dataDir, "contacts.json"), b.StorePath())

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenLoadsExistingSnapshot(t *testing.T) {
	dataDir := t.TempDir()
	b, err := Open(types.Config{DataDir: dataDir})
	require.NoError(t, err)
	require.NoError(t, b.AddContact(contact(t, "jake", "smith", "jake@x.com", "111111111")))
	require.NoError(t, b.AddContact(contact(t, "ann", "lee", "ann@y.com", "222222222")))
	require.NoError(t, b.SaveToFile())

	reopened, err := Open(types.Config{DataDir: dataDir})
	require.NoError(t, err)
	assert.Equal(t, b.Contacts(), reopened.Contacts())
}

func TestOpenInvalidConfig(t *testing.T) {
	_, err := Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrDataDirEmpty)
}

func TestOpenCorruptSnapshot(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "contacts.json"), []byte(`{"contacts":[]}`), 0o644))

	_, err := Open(types.Config{DataDir: dataDir})
	assert.ErrorIs(t, err, types.ErrSnapshotNoStore)
}

// clearEnv unsets the variables config loading reads for the duration of the
// test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONTACTS_CONFIG_DIR", "CONTACTS_DATA_DIR", "CONTACTS_LOG_LEVEL", "CONTACTS_LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestOpenMovedDataDir(t *testing.T) {
	root := t.TempDir()
	oldDir := filepath.Join(root, "old")
	b, err := Open(types.Config{DataDir: oldDir})
	require.NoError(t, err)
	require.NoError(t, b.AddContact(contact(t, "jake", "smith", "jake@x.com", "111111111")))
	require.NoError(t, b.SaveToFile())

	movedDir := filepath.Join(root, "moved")
	require.NoError(t, os.Rename(oldDir, movedDir))

	moved, err := Open(types.Config{DataDir: movedDir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(movedDir, "contacts.json"), moved.StorePath())
	assert.Equal(t, b.Contacts(), moved.Contacts())
}

func TestOpenCopiedDataDirSavesToItself(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	b, err := Open(types.Config{DataDir: srcDir})
	require.NoError(t, err)
	require.NoError(t, b.AddContact(contact(t, "jake", "smith", "jake@x.com", "111111111")))
	require.NoError(t, b.SaveToFile())

	copyDir := filepath.Join(root, "copy")
	require.NoError(t, os.Mkdir(copyDir, 0o755))
	data, err := os.ReadFile(b.StorePath())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(copyDir, "contacts.json"), data, 0o644))

	copied, err := Open(types.Config{DataDir: copyDir})
	require.NoError(t, err)
	require.NoError(t, copied.AddContact(contact(t, "ann", "lee", "ann@y.com", "222222222")))
	require.NoError(t, copied.SaveToFile())

	original, err := LoadFromFile(b.StorePath())
	require.NoError(t, err)
	assert.Equal(t, 1, original.Len())

	reopened, err := Open(types.Config{DataDir: copyDir})
	require.NoError(t, err)
	assert.Equal(t, 2, reopened.Len())
}

func TestOpenConfigured(t *testing.T) {
	clearEnv(t)
	configDir := t.TempDir()
	dataDir := t.TempDir()
	content := "data_dir: " + dataDir + "\nlog_level: debug\nlog_format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))

	var logs bytes.Buffer
	b, err := OpenConfigured(configDir, &logs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "contacts.json"), b.StorePath())

	require.NoError(t, b.AddContact(contact(t, "jake", "smith", "jake@x.com", "111111111")))
	assert.Contains(t, logs.String(), `"msg":"contact added"`)
	assert.Contains(t, logs.String(), `"book_id"`)
}

// TestRoundTrip exercises a book through its whole lifecycle: build, edit,
// save, reload.
func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	addr := "pl. Defilad 1, 00-901 Warsaw"
	jake, err := types.NewContact("jake", "smith", "jake@x.com", "111111111", &addr)
	require.NoError(t, err)

	b, err := New([]*types.Contact{jake, contact(t, "ann", "lee", "ann@y.com", "222222222")}, dir)
	require.NoError(t, err)

	require.NoError(t, b.AddContact(contact(t, "mike", "wazowski", "mike@maile.com", "333333333")))
	skipped, err := b.EditContact("222222222", types.Updates{types.FieldPhone: "999999999", "nickname": "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"nickname"}, skipped)
	require.NoError(t, b.RemoveContact("", "mike@maile.com"))

	var dup *types.DuplicatePhoneError
	assert.True(t, errors.As(b.AddContact(contact(t, "x", "y", "x@y.com", "999999999")), &dup))

	require.NoError(t, b.SaveToFile())

	loaded, err := LoadFromFile(b.StorePath())
	require.NoError(t, err)
	assert.Equal(t, b.Contacts(), loaded.Contacts())
	assert.Equal(t, b.EncodeToSnapshot(), loaded.EncodeToSnapshot())

	found, err := loaded.FindContact("999999999", "")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "ann", found.FirstName)

	old, err := loaded.FindContact("222222222", "")
	require.NoError(t, err)
	assert.Nil(t, old)
}
