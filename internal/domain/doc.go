// Package domain contains the core business entities of the task service:
// the Task record and the TaskInput payload accepted by create and update.
// It is independent of storage and transport.
package domain
