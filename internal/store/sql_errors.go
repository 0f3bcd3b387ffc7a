// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells repositories how a failed driver
// call should be surfaced.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and for anything the
	// classifier does not recognise.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE or PRIMARY KEY constraint rejected
	// the write.
	UniqueViolation

	// ForeignKeyViolation means the write referenced a missing parent row.
	ForeignKeyViolation

	// Transient means the operation may succeed if attempted again
	// (lost connection, lock contention, serialization failure).
	Transient
)

// String implements [fmt.Stringer] for log fields.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case Transient:
		return "transient"
	default:
		return "unclassified"
	}
}

// ErrorClassificator maps dialect-specific driver errors onto
// [ErrorClassification] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
