// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, wallet entries, transaction records) and
// contracts (interfaces) only.
package domain
