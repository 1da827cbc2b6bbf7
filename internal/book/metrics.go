package book

import "github.com/VictoriaMetrics/metrics"

// Operation counters, exposed through the default metrics set. Callers that
// serve metrics call metrics.WritePrometheus.
var (
	addedTotal   = metrics.NewCounter(`contacts_book_added_total`)
	removedTotal = metrics.NewCounter(`contacts_book_removed_total`)
	editedTotal  = metrics.NewCounter(`contacts_book_edited_total`)
	savesTotal   = metrics.NewCounter(`contacts_book_saves_total`)
	loadsTotal   = metrics.NewCounter(`contacts_book_loads_total`)

	rejectedDuplicatePhone = metrics.NewCounter(`contacts_book_rejected_total{reason="duplicate_phone"}`)
	rejectedDuplicateEmail = metrics.NewCounter(`contacts_book_rejected_total{reason="duplicate_email"}`)
)

// snapshotContacts is the number of contacts written or read by the most
// recent snapshot save or load in the process.
var snapshotContacts = metrics.NewGauge(`contacts_book_snapshot_contacts`, nil)
