// Package api exposes a validator over HTTP with a chi router.
//
// Routes:
//
//	POST /validate/{type}  validate the JSON body as an instance of type
//	GET  /rules/{type}     list the rules registered for type
//	GET  /health           liveness or readiness probe
//
// /validate answers 200 with the result when the document is valid and
// 422 when it is not. Malformed bodies get 400, oversized bodies 413 and
// types without rules 404. With a translator the messages are localized
// to the language negotiated from the lang query parameter or the
// Accept-Language header.
package api
