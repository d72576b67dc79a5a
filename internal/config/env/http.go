package env

import (
	"coin_sim/internal/config"
	"errors"
	"net"
	"os"
)

const (
	httpHostEnvName = "HTTP_HOST"
	httpPortEnvName = "HTTP_PORT"

	defaultHTTPPort = "8080"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostEnvName)

	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		port = defaultHTTPPort
	}
	if _, err := net.LookupPort("tcp", port); err != nil {
		return nil, errors.New("invalid http port: " + port)
	}

	return &httpConfig{
		host: host,
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}
