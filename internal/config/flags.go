package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-port server listen port
//	-static directory static assets are served from
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-model upstream chat model
//	-provider-url upstream provider base URL
//	-server companion server address used by the client
//	-offline run the client without the companion server
//	-adapter-timeout client request timeout
//	-d storage DSN
//	-log client log file path
//	-version application version
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, adapterAddress NetAddress
	var port int
	var staticDir string
	var requestTimeout time.Duration
	var model, providerURL string
	var adapterTimeout time.Duration
	var offline bool
	var databaseDSN string
	var logFile string
	var version string
	var jsonConfigPath string

	fs := flag.NewFlagSet("note-pilot", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "port", 0, "Listen port")
	fs.StringVar(&staticDir, "static", "", "Static assets directory")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&model, "model", "", "Chat model")
	fs.StringVar(&providerURL, "provider-url", "", "Provider base URL")
	fs.Var(&adapterAddress, "server", "Companion server address host:port")
	fs.BoolVar(&offline, "offline", false, "Run the client without the companion server")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.StringVar(&databaseDSN, "d", "", "Storage DSN")
	fs.StringVar(&logFile, "log", "", "Client log file")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{Version: version},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Port:           port,
			HTTPAddress:    serverAddress.String(),
			StaticDir:      staticDir,
			RequestTimeout: requestTimeout,
		},
		Provider: Provider{
			Model:   model,
			BaseURL: providerURL,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: adapterTimeout,
			Disabled:       offline,
		},
		Client:       Client{LogFile: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is empty or "localhost", and returns an error if
// the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer in 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
