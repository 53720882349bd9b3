package statica

import (
	"errors"
	"os"
	"path"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	name := path.Join(t.TempDir(), "test.yaml")
	data := `
server:
  listen: ":8080"

resources:
  index:
    path: index.html
    route: /
`
	if err := os.WriteFile(name, []byte(data), 0600); err != nil {
		t.Fail()
		return
	}
	t.Setenv("CONFIG_FILE", name)

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.Server == nil || c.Server.Config["listen"] != ":8080" {
		t.Errorf("invalid server configuration: got %v", c.Server)
	}
	if c.Resources == nil || c.Resources.Config["index"]["path"] != "index.html" {
		t.Errorf("invalid resources configuration: got %v", c.Resources)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", path.Join(t.TempDir(), "missing.yaml"))

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() error = nil, want error")
	}
}

func TestConfigParserYAML(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		err     bool
		wantErr bool
	}{
		{
			name: "default",
			data: `
server:
  listen: ":8080"

resources:
  index:
    path: index.html
    route: /
`,
		},
		{
			name: "empty",
			data: "",
		},
		{
			name:    "error unmarshal",
			err:     true,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newConfigParserYAML()
			if tt.err {
				p.yamlUnmarshal = func(in []byte, out interface{}) error {
					return errors.New("test error")
				}
			}
			var c config
			if err := p.parse([]byte(tt.data), &c); (err != nil) != tt.wantErr {
				t.Errorf("configParserYAML.parse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateConfig(t *testing.T) {
	name := path.Join(t.TempDir(), "statica.yaml")
	t.Setenv("CONFIG_FILE", name)

	if err := GenerateConfig(); err != nil {
		t.Fatalf("GenerateConfig() error = %v", err)
	}
	if _, err := os.Stat(name); err != nil {
		t.Errorf("missing configuration file: %v", err)
	}

	if err := GenerateConfig(); err == nil {
		t.Error("GenerateConfig() error = nil, want error")
	}
}
