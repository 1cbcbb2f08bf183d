package game_server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gunnermanx/worldserver/config"
	game "github.com/gunnermanx/worldserver/game_server/game"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// The server should handle the following responsibilities
//
// Accepting websocket connections and handing them to the game
// Reporting the state of the world
// Shutting everything down cleanly

const (
	GRACEFUL_SHUTDOWN_TIME_S = 10
)

type WorldServer struct {
	config   *config.WorldServerConfig
	serveMux *http.ServeMux
	server   *http.Server
	logger   *logrus.Logger

	game *game.Game
}

func New(
	conf *config.WorldServerConfig,
	logger *logrus.Logger,
) (s *WorldServer) {

	s = &WorldServer{
		config:   conf,
		logger:   logger,
		serveMux: http.NewServeMux(),
		game: game.NewGame(logger, game.Settings{
			MapSeed:              conf.MapSeed,
			StrictIdentity:       conf.StrictIdentity,
			MaxMessagesPerSecond: conf.MaxMessagesPerSecond,
		}),
	}

	s.setupHandlers()
	s.server = &http.Server{
		Handler: s,
	}

	return
}

// Start the world server and block until it fails or the process is signalled
func (s *WorldServer) Start() (err error) {
	var listener net.Listener
	if listener, err = net.Listen("tcp", fmt.Sprintf(":%s", s.config.Port)); err != nil {
		err = errors.Wrap(err, "failed to start world server")
		s.logger.Error(err)
		return
	}

	go s.game.Run()

	// Start the http server
	errc := make(chan error, 1)
	go func() {
		s.logger.WithField("tls", s.config.TLSEnabled()).Infof("Starting world server on: %s", listener.Addr().String())
		if s.config.TLSEnabled() {
			errc <- s.server.ServeTLS(listener, s.config.CertFile, s.config.KeyFile)
		} else {
			errc <- s.server.Serve(listener)
		}
	}()

	// Wait for termination or errors
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	select {
	case err = <-errc:
		s.logger.Errorf("failed to serve: %s", err.Error())
	case sig := <-sigs:
		s.logger.Infof("terminating on sig: %v", sig)
	}

	// Gracefully shutdown with timeout of 10s
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*GRACEFUL_SHUTDOWN_TIME_S)
	defer cancel()
	if shutdownErr := s.server.Shutdown(ctx); shutdownErr != nil && err == nil {
		err = errors.Wrap(shutdownErr, "failed to shut down world server")
	}

	// Close the remaining players and wait for their close handshakes
	s.game.Stop()
	select {
	case <-s.game.Done():
	case <-ctx.Done():
		s.logger.Warn("timed out waiting for players to disconnect")
	}
	return
}
