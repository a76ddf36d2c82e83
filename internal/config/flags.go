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

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a               HTTP address in format [host]:[port]
//	-grpc-address    gRPC health address in format [host]:[port]
//	-d               database DSN probed by /health
//	-supabase-url    Supabase project URL probed by /health
//	-env             deployment environment name
//	-c/-config       JSON or YAML config file path
//	-probe-timeout   dependency probe deadline (e.g. "2s")
//	-shutdown-timeout drain timeout on termination (e.g. "10s")
//	-metrics         metrics exporter (prometheus, stdout, otlp, none)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress, grpcAddress NetAddress
	var databaseDSN string
	var supabaseURL string
	var environment string
	var configPath string
	var probeTimeout time.Duration
	var shutdownTimeout time.Duration
	var metricsExporter string

	fs := flag.NewFlagSet("api-gateway", flag.ContinueOnError)
	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc health address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&supabaseURL, "supabase-url", "", "Supabase project URL")
	fs.StringVar(&environment, "env", "", "Deployment environment name")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Dependency probe timeout (e.g., 2s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&metricsExporter, "metrics", "", "Metrics exporter")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Server: Server{
			HTTPAddress:     httpAddress.String(),
			GRPCAddress:     grpcAddress.String(),
			ShutdownTimeout: shutdownTimeout,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			Supabase: Supabase{URL: supabaseURL},
		},
		Health: Health{
			ProbeTimeout: probeTimeout,
		},
		Metrics: Metrics{
			Exporter: metricsExporter,
		},
		JSONFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; otherwise the host must be "localhost"
// or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
