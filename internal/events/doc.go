// Package events provides task lifecycle events and an in-memory emitter.
//
// The service emits an event after every successful mutation of the task
// collection. Handlers registered with the emitter receive events
// synchronously; the audit handler records them in the structured log.
//
// The primary components are:
// - TaskEvent: describes one create, update or delete
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
package events
