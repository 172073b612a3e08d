package normalize

import (
	"fmt"
	"io/ioutil"
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const ConfigFilename = ".archdiff.yaml"

// Config is the optional per-project configuration file. It lets
// users declare additional volatile-identifier patterns their export
// tool produces, and extra path keywords for the change categories.
type Config struct {
	Version    int                 `yaml:"version"`
	Rules      []ConfigRule        `yaml:"rules"`
	Categories map[string][]string `yaml:"categories"`
}

// ConfigRule is a user-supplied substitution, compiled into a Rule at
// load time.
type ConfigRule struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	fileBytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(fileBytes, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if cfg.Version != 1 {
		return nil, fmt.Errorf("incorrect version in %s, only version 1 is supported", path)
	}
	if _, err := cfg.compileRules(); err != nil {
		return nil, errors.Wrapf(err, "validating config %s", path)
	}
	return &cfg, nil
}

func (c *Config) compileRules() ([]Rule, error) {
	var rules []Rule
	for _, cr := range c.Rules {
		if cr.Name == "" {
			return nil, errors.New("rule with empty name")
		}
		re, err := regexp.Compile(cr.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "compiling rule %q", cr.Name)
		}
		rules = append(rules, Rule{Name: cr.Name, Pattern: re, Replacement: cr.Replacement})
	}
	return rules, nil
}
