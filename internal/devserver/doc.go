// Package devserver is an in-memory stand-in for the delivery-service backend,
// used by cmd/devserver during development and by tests.
//
// # HTTP API
//
// Every JSON response is wrapped as {status, message, data}.
//
//	GET  /api/key-exchange/public-key     server ECDH public key
//	POST /api/key-exchange                {clientPublicKey} -> {sessionId}
//	POST /api/auth/login                  JSON, or text/plain ciphertext + X-Session-ID
//	POST /api/auth/register               same; the first account becomes admin
//	GET  /api/users/me                    any role
//	GET  /api/users                       admin
//	PUT  /api/users/{id}/role             admin
//	DELETE /api/users/{id}                admin
//	GET  /api/orders                      client: own; volunteer/admin: all
//	POST /api/orders                      client; reserves stock
//	POST /api/orders/{id}/cancel          owner or admin, pending only; releases stock
//	PUT  /api/orders/{id}/status          volunteer/admin, forward moves only
//	GET  /api/cargo                       any role
//	POST|PUT|DELETE /api/cargo[/{id}]     admin
//	POST /api/applications                client, one pending at a time
//	GET  /api/applications                admin: all; others: own
//	POST /api/applications/{id}/approve   admin; promotes the applicant to volunteer
//	POST /api/applications/{id}/reject    admin
//	GET  /api/rounds                      any role
//	POST /api/rounds                      admin
//	POST|DELETE /api/rounds/{id}/signup   volunteer
//	POST /api/rounds/{id}/draw            admin; uniform random pick up to capacity
//	DELETE /api/rounds/{id}               admin
//	POST /api/feedback                    client
//	GET  /api/feedback                    admin
//
// # Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Encrypted requests whose session id is unknown or older than the
//     session TTL get HTTP 419 with a plain JSON envelope.
//   - These are development rules, not a description of the production backend.
package devserver
