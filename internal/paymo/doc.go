// Package paymo implements the client for the Paymo REST API.
//
// # Requests
//
// All requests authenticate with the account's API token sent as the basic
// auth username with an empty password. Responses nest their payload one
// level deep in a named collection ({"clients": [...]}, {"entries": [...]});
// each endpoint method declares its own envelope struct.
//
// # Throttling
//
// Two mechanisms pace outgoing calls:
//   - [RateLimit] tracks the server-advertised quota from the
//     X-Ratelimit-* response headers and blocks when it is spent.
//   - a [rate.Limiter] enforces a client-side requests-per-second floor
//     regardless of what the server reports.
//
// Both are advisory: they keep the client under the limit, they do not
// recover from calls the server has already rejected.
package paymo
