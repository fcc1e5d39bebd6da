// Package server exposes a Checkpointer over HTTP, on a tcp or unix
// listener.
package server

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/rata"

	"code.cloudfoundry.org/cryo"
	"code.cloudfoundry.org/cryo/routes"
)

type CryoServer struct {
	logger lager.Logger

	server        http.Server
	listenNetwork string
	listenAddr    string

	checkpointer cryo.Checkpointer

	listener net.Listener
	handling *sync.WaitGroup

	started  bool
	stopping chan bool

	conns map[net.Conn]net.Conn
	mu    sync.Mutex
}

func New(
	listenNetwork, listenAddr string,
	checkpointer cryo.Checkpointer,
	logger lager.Logger,
) *CryoServer {
	s := &CryoServer{
		logger: logger.Session("cryo-server"),

		listenNetwork: listenNetwork,
		listenAddr:    listenAddr,

		checkpointer: checkpointer,

		stopping: make(chan bool),

		handling: new(sync.WaitGroup),
		conns:    make(map[net.Conn]net.Conn),
	}

	handlers := map[string]http.Handler{
		routes.Ping:       http.HandlerFunc(s.handlePing),
		routes.Supported:  http.HandlerFunc(s.handleSupported),
		routes.Checkpoint: http.HandlerFunc(s.handleCheckpoint),
	}

	mux, err := rata.NewRouter(routes.Routes, handlers)
	if err != nil {
		logger.Fatal("failed-to-initialize-rata", err)
	}

	conLogger := logger.Session("connection")

	s.server = http.Server{
		Handler: mux,

		ConnState: func(conn net.Conn, state http.ConnState) {
			switch state {
			case http.StateNew:
				conLogger.Debug("open", lager.Data{"local_addr": conn.LocalAddr(), "remote_addr": conn.RemoteAddr()})
				s.handling.Add(1)
			case http.StateActive:
				s.mu.Lock()
				delete(s.conns, conn)
				s.mu.Unlock()
			case http.StateIdle:
				select {
				case <-s.stopping:
					conn.Close()
				default:
					s.mu.Lock()
					s.conns[conn] = conn
					s.mu.Unlock()
				}
			case http.StateHijacked, http.StateClosed:
				s.mu.Lock()
				delete(s.conns, conn)
				s.mu.Unlock()
				conLogger.Debug("closed", lager.Data{"local_addr": conn.LocalAddr(), "remote_addr": conn.RemoteAddr()})
				s.handling.Done()
			}
		},
	}

	return s
}

func (s *CryoServer) Start() error {
	s.started = true

	err := s.removeExistingSocket()
	if err != nil {
		return err
	}

	err = registerViews()
	if err != nil {
		return err
	}

	listener, err := net.Listen(s.listenNetwork, s.listenAddr)
	if err != nil {
		return err
	}

	s.listener = listener

	if s.listenNetwork == "unix" {
		os.Chmod(s.listenAddr, 0777)
	}

	go s.server.Serve(listener)

	return nil
}

func (s *CryoServer) Stop() {
	if !s.started {
		return
	}

	close(s.stopping)

	s.listener.Close()

	s.mu.Lock()
	conns := s.conns
	s.conns = make(map[net.Conn]net.Conn)
	s.mu.Unlock()

	for _, c := range conns {
		s.logger.Debug("closing-idle", lager.Data{
			"addr": c.RemoteAddr(),
		})

		c.Close()
	}

	s.logger.Info("waiting-for-connections-to-close")
	s.handling.Wait()

	s.logger.Info("stopped")
}

func (s *CryoServer) removeExistingSocket() error {
	if s.listenNetwork != "unix" {
		return nil
	}

	if _, err := os.Stat(s.listenAddr); os.IsNotExist(err) {
		return nil
	}

	err := os.Remove(s.listenAddr)

	if err != nil {
		return fmt.Errorf("error deleting existing socket: %s", err)
	}

	return nil
}
