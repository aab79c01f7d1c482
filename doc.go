// Package main provides the optionsinject command.
// It writes a fixed Dark Reader settings record into the synchronized
// extension storage, serves the record over HTTP, generates variants of it
// and installs a content script that performs the same write.
package main
