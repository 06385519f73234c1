package config

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/pactester/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// decoder turns a config document into a generic key/value map.
type decoder interface {
	decode(data []byte) (map[string]any, error)
}

// decoderFor picks a decoder from the file extension. TOML is the default.
func decoderFor(path string) decoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlDecoder{}
	default:
		return tomlDecoder{}
	}
}

type tomlDecoder struct{}

func (tomlDecoder) decode(data []byte) (map[string]any, error) {
	values := make(map[string]any)
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigDecodeFailed.Error())
	}
	return values, nil
}

type yamlDecoder struct{}

func (yamlDecoder) decode(data []byte) (map[string]any, error) {
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigDecodeFailed.Error())
	}
	return values, nil
}
