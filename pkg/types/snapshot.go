package types

// Snapshot file layout.
const (
	SnapshotFileName     = "contacts.json"
	SnapshotExt          = ".json"
	SnapshotKeyContacts  = "contacts"
	SnapshotKeyStorePath = "store_path"
)

// Snapshot is the whole book as written to contacts.json. Each entry of
// Contacts is a contact mapping as returned by Contact.ToMap. StorePath is
// the path of the snapshot file itself.
type Snapshot struct {
	Contacts  []map[string]any `json:"contacts"`
	StorePath string           `json:"store_path"`
}
