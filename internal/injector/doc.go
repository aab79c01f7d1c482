// Package injector writes the default extension settings to storage.
//
// The write is fire-and-forget. ApplyDefaultSettings returns as soon as the
// write has been started. When the store finishes, the completion callback
// logs "Options updated." whatever the outcome was: store errors are not
// inspected, retried or returned. Callers that need to know when the write is
// done may wait on the returned Future, which never carries the store error.
package injector
