// Package store defines the persistence contract for tasks and the sentinel
// errors shared by every implementation. The service layer depends only on
// these interfaces, never on a concrete collection.
package store
