package statica

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config implements the configuration.
type config struct {
	Server     *configServer
	Resources  *configResources
	parser     configParser
	osReadFile func(name string) ([]byte, error)
}

// configServer implements the configuration of the server.
type configServer struct {
	Config map[string]interface{}
}

// configResources implements the configuration of the resources.
type configResources struct {
	Config map[string]map[string]interface{}
}

const (
	configDefaultFile string = "statica.yaml"
)

// configOsReadFile redirects to os.ReadFile.
func configOsReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// newConfig creates a new config.
func newConfig(parser configParser) *config {
	return &config{
		parser:     parser,
		osReadFile: configOsReadFile,
	}
}

// configParser
type configParser interface {
	parse([]byte, *config) error
}

// configParserYAML implements the YAML configuration parser.
type configParserYAML struct {
	yamlUnmarshal func(in []byte, out interface{}) error
}

type (
	// yamlConfig implements the main configuration for the parser.
	yamlConfig struct {
		Server    map[string]interface{}
		Resources map[string]map[string]interface{}
	}
)

// newConfigParserYAML creates a new YAML config parser.
func newConfigParserYAML() *configParserYAML {
	return &configParserYAML{
		yamlUnmarshal: yaml.Unmarshal,
	}
}

// parse parses the YAML data.
func (p *configParserYAML) parse(data []byte, c *config) error {
	var y yamlConfig
	if err := p.yamlUnmarshal(data, &y); err != nil {
		return err
	}

	c.Server = &configServer{
		Config: y.Server,
	}
	c.Resources = &configResources{
		Config: y.Resources,
	}

	return nil
}

var _ configParser = (*configParserYAML)(nil)

// configFile returns the configuration file name.
func configFile() string {
	if v, ok := os.LookupEnv("CONFIG_FILE"); ok && v != "" {
		return v
	}
	return configDefaultFile
}

// LoadConfig loads the configuration.
func LoadConfig() (*config, error) {
	c := newConfig(newConfigParserYAML())

	data, err := c.osReadFile(configFile())
	if err != nil {
		return nil, err
	}

	if err := c.parser.parse(data, c); err != nil {
		return nil, err
	}

	return c, nil
}

//go:embed templates/init/*
var configTemplatesInit embed.FS

// GenerateConfig creates a default configuration file.
func GenerateConfig() error {
	name := configFile()

	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("configuration file '%s' already exists", name)
	}

	data, err := configTemplatesInit.ReadFile("templates/init/statica.yaml")
	if err != nil {
		return err
	}

	if err := os.WriteFile(name, data, 0644); err != nil {
		return err
	}

	return nil
}
