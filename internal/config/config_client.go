package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the linkctl transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the link directory server.
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientCredentials holds the administrator login used by linkctl.
type ClientCredentials struct {
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// ClientConfig is the configuration of the linkctl admin client.
type ClientConfig struct {
	Adapter     ClientAdapter
	Credentials ClientCredentials
}

// GetClientConfig builds the linkctl configuration from defaults, LINKCTL_*
// environment variables and the global flags in args, then validates it.
// It returns the arguments left after the global flags.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg, clientEnvPrefix); err != nil {
		return nil, nil, err
	}

	flagsCfg := &ClientConfig{}
	fs := flag.NewFlagSet("linkctl", flag.ContinueOnError)
	fs.StringVar(&flagsCfg.Adapter.HTTPAddress, "server", "", "Server base URL")
	fs.DurationVar(&flagsCfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout")
	fs.StringVar(&flagsCfg.Credentials.Username, "u", "", "Admin username")
	fs.StringVar(&flagsCfg.Credentials.Password, "p", "", "Admin password")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:5000",
			RequestTimeout: 10 * time.Second,
		},
	}

	var err error
	for _, layer := range []*ClientConfig{envCfg, flagsCfg} {
		err = errors.Join(err, mergo.Merge(clientCfg, layer, mergo.WithOverride))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error merging configs: %w", err)
	}

	return clientCfg, fs.Args(), clientCfg.validate()
}
