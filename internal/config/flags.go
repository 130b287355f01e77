package config

import (
	"errors"
	"flag"
	"net"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a blob host listen address in format [host]:[port]
//	-d local database path (SQLite file)
//	-r remote blob store base URL
//	-credential remote blob store bearer credential
//	-data-dir blob host object directory
//	-token-sign-key blob host token signing key
//	-root-key-path device root key file path
//	-sync-interval background sync interval (e.g., "5m")
//	-block-size padding block size in bytes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var remoteBaseURL string
	var remoteCredential string
	var dataDir string
	var tokenSignKey string
	var rootKeyPath string
	var syncInterval time.Duration
	var blockSize int
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&remoteBaseURL, "r", "", "Remote blob store base URL")
	flag.StringVar(&remoteCredential, "credential", "", "Remote blob store credential")
	flag.StringVar(&dataDir, "data-dir", "", "Blob host data directory")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&rootKeyPath, "root-key-path", "", "Root key file path")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sync interval (e.g., 5m)")
	flag.IntVar(&blockSize, "block-size", 0, "Padding block size in bytes")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			RootKeyPath: rootKeyPath,
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			Credential:     remoteCredential,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			DataDir:        dataDir,
			TokenSignKey:   tokenSignKey,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Interval:  syncInterval,
			BlockSize: blockSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// merge step can fall through to other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
