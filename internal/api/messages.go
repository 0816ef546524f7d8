package api

// Client-facing messages. These strings are part of the API contract.
const (
	MsgTasksFetched = "Tasks fetched successfully"
	MsgTaskFetched  = "Task fetched successfully"
	MsgTaskCreated  = "Task created successfully"
	MsgTaskUpdated  = "Task updated successfully"
	MsgTaskDeleted  = "Task deleted successfully"

	MsgTaskNotFound     = "Task not found"
	MsgInvalidData      = "Invalid data"
	MsgRouteNotFound    = "Route not found"
	MsgMethodNotAllowed = "Method not allowed"
)
