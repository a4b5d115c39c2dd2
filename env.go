package conform

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envSettings maps environment variables onto run options.
type envSettings struct {
	FailFast              bool `env:"CONFORM_FAIL_FAST" envDefault:"false"`
	DiscardedBranchEvents bool `env:"CONFORM_DISCARDED_BRANCH_EVENTS" envDefault:"false"`
}

var loadDotEnv sync.Once

// OptionsFromEnv assembles run options from CONFORM_* environment
// variables. On first call it also loads a .env file when one exists;
// variables already present in the environment take precedence.
func OptionsFromEnv() ([]Option, error) {
	loadDotEnv.Do(func() {
		// .env file is optional.
		_ = godotenv.Load()
	})

	var cfg envSettings
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrEnvConfig, err)
	}

	var opts []Option
	if cfg.FailFast {
		opts = append(opts, WithFailFast())
	}
	if cfg.DiscardedBranchEvents {
		opts = append(opts, WithDiscardedBranchEvents())
	}
	return opts, nil
}
