// Package controller contains reusable HTTP middleware and handler plumbing:
// CORS, request-scoped logging with request IDs, and pprof mounting.
package controller
