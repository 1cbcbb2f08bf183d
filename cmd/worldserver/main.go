package main

import (
	"github.com/gunnermanx/worldserver/config"
	server "github.com/gunnermanx/worldserver/game_server"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	conf, err := config.LoadWorldServerConfig()
	if err != nil {
		logger.WithField("error", err.Error()).Fatal("failed loading config")
	}
	if conf.DebugMode {
		logger.SetLevel(logrus.DebugLevel)
	}

	s := server.New(conf, logger)
	if err = s.Start(); err != nil {
		logger.WithField("error", err.Error()).Fatal("world server stopped")
	}
}
