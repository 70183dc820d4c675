// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the users service.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single users service request made
// while serving an admin page or action.
const GRPCRequest = 3 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second

// WebsocketWrite bounds a single write to a live-refresh subscriber.
const WebsocketWrite = 10 * time.Second

// WebsocketPong is how long a live-refresh subscriber may stay silent before
// the connection is dropped. Pings are sent at 9/10 of this period.
const WebsocketPong = 60 * time.Second
