// Package submit drives the "paste a link, get enriched metadata back" flow:
// it posts a URL to the backend, opens a status channel for the issued task
// ID, and reconciles the first terminal message into an autofill payload
// pushed to the UI through an update callback. One submission at a time; no
// retries, no reconnects.
package submit
