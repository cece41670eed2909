// Package store persists wallet state as a human-editable TOML file under
// a store directory. A missing file is "start empty", never an error on
// the load-or-new path; a present but unreadable file is fatal at load
// time. Writes go through a temp file and rename so the store is never
// partially persisted.
package store
