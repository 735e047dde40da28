// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the passport endpoints onto
// service.PassportService and maps service errors onto status codes and
// client-safe messages.
package api
