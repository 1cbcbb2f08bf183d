package config

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/viper"
)

const (
	DEFAULT_PORT                    = "8080"
	DEFAULT_SEND_BUFFER_SIZE        = 256
	DEFAULT_WRITE_TIMEOUT_MS        = 5000
	DEFAULT_MAX_MESSAGES_PER_SECOND = 0
	DEFAULT_MAX_FRAME_BYTES         = 1 << 20

	// Upper bound (exclusive) for a randomly chosen map seed
	MAP_SEED_RANGE = 100000
)

type WorldServerConfig struct {
	DebugMode      bool
	Port           string
	CertFile       string
	KeyFile        string
	AllowedOrigins []string

	MapSeed              int64
	SendBufferSize       int
	WriteTimeoutMS       int
	MaxMessagesPerSecond float64
	MaxFrameBytes        int64
	StrictIdentity       bool
}

// TLSEnabled reports whether both a certificate and a key were configured
func (c *WorldServerConfig) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// LoadWorldServerConfig reads config/world.yaml if present and applies
// environment overrides on top of it. A missing file is not an error.
func LoadWorldServerConfig() (sc *WorldServerConfig, err error) {
	return loadWorldServerConfig(viper.New(), "config/")
}

func loadWorldServerConfig(v *viper.Viper, configPath string) (sc *WorldServerConfig, err error) {
	v.AddConfigPath(configPath)
	v.SetConfigName("world")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", DEFAULT_PORT)
	v.SetDefault("server.debugMode", false)
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("game.mapSeed", 0)
	v.SetDefault("game.sendBufferSize", DEFAULT_SEND_BUFFER_SIZE)
	v.SetDefault("game.writeTimeoutMS", DEFAULT_WRITE_TIMEOUT_MS)
	v.SetDefault("game.maxMessagesPerSecond", DEFAULT_MAX_MESSAGES_PER_SECOND)
	v.SetDefault("game.maxFrameBytes", DEFAULT_MAX_FRAME_BYTES)
	v.SetDefault("game.strictIdentity", false)

	bindings := map[string]string{
		"server.port":         "PORT",
		"server.debugMode":    "DEBUG_MODE",
		"server.certFile":     "TLS_CERT_FILE",
		"server.keyFile":      "TLS_KEY_FILE",
		"game.mapSeed":        "MAP_SEED",
		"game.strictIdentity": "STRICT_IDENTITY",
	}
	for key, env := range bindings {
		if err = v.BindEnv(key, env); err != nil {
			err = fmt.Errorf("SGS: %w", err)
			return
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			err = fmt.Errorf("SGS: %w", err)
			return
		}
		err = nil
	}

	sc = &WorldServerConfig{
		Port:                 v.GetString("server.port"),
		DebugMode:            v.GetBool("server.debugMode"),
		CertFile:             v.GetString("server.certFile"),
		KeyFile:              v.GetString("server.keyFile"),
		AllowedOrigins:       v.GetStringSlice("server.allowedOrigins"),
		MapSeed:              v.GetInt64("game.mapSeed"),
		SendBufferSize:       v.GetInt("game.sendBufferSize"),
		WriteTimeoutMS:       v.GetInt("game.writeTimeoutMS"),
		MaxMessagesPerSecond: v.GetFloat64("game.maxMessagesPerSecond"),
		MaxFrameBytes:        v.GetInt64("game.maxFrameBytes"),
		StrictIdentity:       v.GetBool("game.strictIdentity"),
	}

	if sc.Port == "" {
		sc.Port = DEFAULT_PORT
	}
	if sc.SendBufferSize <= 0 {
		sc.SendBufferSize = DEFAULT_SEND_BUFFER_SIZE
	}
	if sc.WriteTimeoutMS <= 0 {
		sc.WriteTimeoutMS = DEFAULT_WRITE_TIMEOUT_MS
	}
	if sc.MaxFrameBytes <= 0 {
		sc.MaxFrameBytes = DEFAULT_MAX_FRAME_BYTES
	}
	if sc.MaxMessagesPerSecond < 0 {
		sc.MaxMessagesPerSecond = 0
	}
	if sc.MapSeed == 0 {
		sc.MapSeed = RandomMapSeed()
	}

	return
}

// RandomMapSeed picks a seed in [0, MAP_SEED_RANGE)
func RandomMapSeed() int64 {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return r.Int63n(MAP_SEED_RANGE)
}
