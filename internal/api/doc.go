// Package api provides the HTTP client for the delivery-service backend and
// implements domain.Backend.
//
// Two request modes exist:
//
//   - JSON: application/json bodies, bearer token auth, responses wrapped in
//     the {status, message, data} envelope.
//   - Encrypted (login and registration): the JSON body is sealed with the
//     negotiated session key and sent as text/plain with an X-Session-ID
//     header; the response body is ciphertext under the same key. A response
//     that turns out to be plain JSON (typically an error emitted before the
//     server could decrypt anything) is decoded as-is so its message still
//     reaches the user.
//
// All requests accept a context for cancellation and deadlines. Failures are
// returned as *APIError values that carry the method, path, HTTP status and
// the backend's message, and match the package sentinels with errors.Is.
package api
