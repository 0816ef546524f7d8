// Package memory provides the process-local implementation of store.TaskStore.
//
// The collection is an ordered slice guarded by a sync.RWMutex so that every
// store operation runs as one critical section, even though net/http serves
// requests concurrently. Nothing is persisted; the collection lives exactly
// as long as the TaskStore value that owns it.
package memory
