package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	platformgrpc "github.com/louisbranch/userboard/internal/platform/grpc"
	"github.com/louisbranch/userboard/internal/platform/timeouts"
	"github.com/louisbranch/userboard/internal/services/admin/integration/grpcdial"
	"github.com/louisbranch/userboard/internal/services/admin/live"
	"github.com/louisbranch/userboard/internal/services/admin/userlist"
	"google.golang.org/grpc"
)

// Config defines the inputs for the admin process.
type Config struct {
	HTTPAddr  string
	UsersAddr string
	// RedisURL enables cross-instance live refresh when set.
	RedisURL        string
	GRPCDialTimeout time.Duration
	// Dialer overrides how the users connection is made. Nil uses
	// grpc.NewClient.
	Dialer platformgrpc.Dialer
}

// Server hosts the admin users view.
type Server struct {
	httpAddr    string
	usersAddr   string
	grpcClients *grpcClients
	httpServer  *http.Server
	hub         *live.Hub
	relay       *live.RedisRelay
	cancel      context.CancelFunc
}

// grpcClients stores the users connection for the admin server. The first
// connection set wins.
type grpcClients struct {
	mu          sync.RWMutex
	usersConn   *grpc.ClientConn
	usersClient usersClient
}

// UsersGateway returns a gateway over the current users client, or nil when
// no connection exists yet.
func (g *grpcClients) UsersGateway() UsersGateway {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.usersClient == nil {
		return nil
	}
	return newUsersGateway(g.usersClient)
}

// HasUsersConnection reports whether a users connection is set.
func (g *grpcClients) HasUsersConnection() bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.usersConn != nil
}

// SetUsersClients stores clients unless a connection is already set, in
// which case the new connection is closed.
func (g *grpcClients) SetUsersClients(clients grpcdial.UsersClients) {
	if g == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.usersConn != nil {
		if clients.Conn != nil && clients.Conn != g.usersConn {
			_ = clients.Conn.Close()
		}
		return
	}
	g.usersConn = clients.Conn
	if clients.Client != nil {
		g.usersClient = clients.Client
	}
}

// Close closes the users connection.
func (g *grpcClients) Close() {
	if g == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.usersConn != nil {
		if err := g.usersConn.Close(); err != nil {
			log.Printf("close admin users gRPC connection: %v", err)
		}
		g.usersConn = nil
	}
	g.usersClient = nil
}

// NewServer builds a configured admin server. A users service that is not
// reachable yet does not fail startup: the view reports it as unavailable
// while dialing retries in the background.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if config.GRPCDialTimeout <= 0 {
		config.GRPCDialTimeout = timeouts.GRPCDial
	}

	hub := live.NewHub()
	var relay *live.RedisRelay
	if redisURL := strings.TrimSpace(config.RedisURL); redisURL != "" {
		var err error
		relay, err = live.NewRedisRelay(ctx, redisURL, hub)
		if err != nil {
			return nil, fmt.Errorf("admin live relay: %w", err)
		}
	}

	bgCtx, cancel := context.WithCancel(ctx)
	clients := &grpcClients{}
	usersAddr := strings.TrimSpace(config.UsersAddr)
	if usersAddr != "" {
		dial := func(ctx context.Context) (grpcdial.UsersClients, error) {
			return grpcdial.DialUsers(ctx, config.Dialer, usersAddr, config.GRPCDialTimeout)
		}
		usersClients, err := dial(ctx)
		if err != nil {
			log.Printf("admin users gRPC dial failed: %v", err)
			go connectUsersWithRetry(bgCtx, usersAddr, clients, dial)
		} else {
			clients.SetUsersClients(usersClients)
		}
	}

	refreshers := userlist.Refreshers{hub.Refresher()}
	if relay != nil {
		refreshers = append(refreshers, relay.Refresher())
	}
	handler := NewHandler(HandlerConfig{
		Users:         clients,
		Live:          hub,
		LiveRefresher: refreshers,
	})
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:    httpAddr,
		usersAddr:   usersAddr,
		grpcClients: clients,
		httpServer:  httpServer,
		hub:         hub,
		relay:       relay,
		cancel:      cancel,
	}, nil
}

// connectUsersWithRetry keeps dialing until a connection is established or
// ctx ends.
func connectUsersWithRetry(ctx context.Context, addr string, clients *grpcClients, dial func(context.Context) (grpcdial.UsersClients, error)) {
	var connected grpcdial.UsersClients
	platformgrpc.ConnectWithRetry(
		ctx,
		func(ctx context.Context) (*grpc.ClientConn, error) {
			usersClients, err := dial(ctx)
			if err != nil {
				return nil, err
			}
			connected = usersClients
			return usersClients.Conn, nil
		},
		func(*grpc.ClientConn) {
			clients.SetUsersClients(connected)
			log.Printf("admin gRPC connected to %s", addr)
		},
		func(format string, args ...any) {
			log.Printf("admin users "+format, args...)
		},
	)
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server, the live hub, and the relay until
// the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	go s.hub.Run(runCtx)
	if s.relay != nil {
		go func() {
			if err := s.relay.Run(runCtx); err != nil {
				log.Printf("admin live relay stopped: %v", err)
			}
		}()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops background dialing and releases gRPC and Redis resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.grpcClients != nil {
		s.grpcClients.Close()
	}
	if s.relay != nil {
		if err := s.relay.Close(); err != nil {
			log.Printf("close admin live relay: %v", err)
		}
	}
}
