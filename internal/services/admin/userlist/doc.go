// Package userlist holds the users view model and the delete interaction.
//
// The list itself is rendered from a fresh []Record on every request. The
// Controller runs one deletion at a time per call: it guards the id, calls
// the remote DeleteAction, and on success asks the Refresher to re-fetch
// before telling the Notifier. Failures become error notices. Loading is
// true while at least one deletion is in flight.
package userlist
