// Package api handles incoming HTTP requests, routing, request decoding and
// response formatting for the task resource. It acts as an adapter between
// HTTP clients and service.TaskService.
//
//	@title			Task API
//	@version		1.0
//	@description	In-memory CRUD service for task records.
//	@BasePath		/api
//
//	@tag.name			tasks
//	@tag.description	Task records
package api

//go:generate swag init --generalInfo doc.go --dir ./,../domain,./shared --output ../../docs --outputTypes go
