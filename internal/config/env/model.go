package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type modelEnv struct {
	Path            string        `env:"MODEL_PATH,required"`
	MetadataPath    string        `env:"MODEL_METADATA_PATH,required"`
	RuntimeLibPath  string        `env:"ONNXRUNTIME_LIB_PATH"`
	ClassifyTimeout time.Duration `env:"MODEL_CLASSIFY_TIMEOUT" envDefault:"2s"`
}

type model struct {
	raw modelEnv
}

func NewModelConfig() (*model, error) {
	var raw modelEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &model{raw: raw}, nil
}

func (cfg *model) Path() string                   { return cfg.raw.Path }
func (cfg *model) MetadataPath() string           { return cfg.raw.MetadataPath }
func (cfg *model) RuntimeLibraryPath() string     { return cfg.raw.RuntimeLibPath }
func (cfg *model) ClassifyTimeout() time.Duration { return cfg.raw.ClassifyTimeout }
