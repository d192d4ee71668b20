// Package api implements the HTTP handlers, request/response models, and
// error mapping for the credential endpoints. Handlers own the translation
// between transport payloads and the service's typed requests; all business
// logic lives in the service layer.
package api
