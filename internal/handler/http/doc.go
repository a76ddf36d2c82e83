// Package http implements the HTTP transport layer of the gateway.
//
// It wires the chi router, the request-boundary middleware (trace ids,
// access logging, panic recovery, security headers, CORS, body size limit)
// and the two request-boundary components:
//   - the error normalizer ([Handler.handleError]), which turns every error
//     raised by a route into the uniform JSON error envelope;
//   - the health endpoint (GET /health), which renders the composite report
//     built by the service layer.
//
// Unmatched routes and unsupported methods answer with the JSON 404 body.
package http
