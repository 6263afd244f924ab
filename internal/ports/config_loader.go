package ports

import "github.com/imonaar/uniqr/internal/domain"

// ConfigLoader reads settings from a config file on top of defaults.
type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
