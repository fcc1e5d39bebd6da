package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the agent's own configuration, loaded from an optional YAML
// file and overridable by flags.
type Config struct {
	// ListenNetwork is "tcp" or "unix".
	ListenNetwork string `yaml:"listenNetwork"`

	// ListenAddr is the address or socket path to listen on.
	ListenAddr string `yaml:"listenAddr"`

	// StackdriverProject, when set, exports attempt metrics to Stackdriver.
	StackdriverProject string `yaml:"stackdriverProject"`
}

func defaultConfig() Config {
	return Config{
		ListenNetwork: "unix",
		ListenAddr:    "/tmp/cryo.sock",
	}
}

// withOverrides returns the config with any non-empty flag value applied
// over the file-supplied one. Flags always win.
func (c Config) withOverrides(listenNetwork, listenAddr, stackdriverProject string) Config {
	if listenNetwork != "" {
		c.ListenNetwork = listenNetwork
	}
	if listenAddr != "" {
		c.ListenAddr = listenAddr
	}
	if stackdriverProject != "" {
		c.StackdriverProject = stackdriverProject
	}

	return c
}

// loadConfig reads the YAML config at path, falling back to defaults when
// the file does not exist.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read config file %s: %s", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %s", path, err)
	}

	if config.ListenNetwork == "" {
		config.ListenNetwork = "unix"
	}
	if config.ListenAddr == "" {
		config.ListenAddr = "/tmp/cryo.sock"
	}

	return config, nil
}
