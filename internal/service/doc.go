// Package service contains the application use cases. PassportService
// orchestrates a passport request end to end: input validation, theme
// selection, prompt compilation, the text provider call, response
// normalization and the optional portrait pipeline. It also persists
// client-rendered passport snapshots.
//
// The service depends only on the interfaces declared in generation, imaging
// and storage; concrete providers are wired in cmd/server. Every external
// call runs under its own timeout so a stalled provider surfaces as
// generation.ErrTransientFailure instead of hanging the request.
package service
