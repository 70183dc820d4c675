// Package admin serves the operator users view.
//
// It renders the users list from the users gRPC service, runs deletions
// through the userlist controller, and announces list changes to other open
// views over the live channel.
package admin
