// Package api is the HTTP boundary to the KrishiConnect service.
//
// It exposes the Client interface consumed by the service layer, the wire
// types for requests and responses, and the error taxonomy: ErrUnavailable
// for transport failures and HTTPError for any non-2xx response. Nothing in
// this package retries, caches, or holds business state.
package api
