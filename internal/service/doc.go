// Package service implements the task operations (list, get, create, update,
// delete) on top of a store.TaskStore. It translates store errors into the
// service sentinels the API layer maps to HTTP responses, and publishes a
// lifecycle event after every successful mutation.
package service
