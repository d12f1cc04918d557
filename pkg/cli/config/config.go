package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// AppConfig represents the tag vocabulary configuration file
type AppConfig struct {
	Tags []Tag `toml:"tag"`
}

// Tag represents one tag definition in the configuration
type Tag struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Validate checks if the Tag is valid
func (t *Tag) Validate() error {
	if t.Name == "" {
		return goerr.Wrap(ErrMissingName, "tag name is required")
	}
	if t.Description == "" {
		return goerr.New("tag description is required", goerr.V(TagNameKey, t.Name))
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if len(a.Tags) == 0 {
		return goerr.Wrap(ErrInvalidConfig, "at least one tag definition is required")
	}

	names := make(map[string]bool)
	for _, tag := range a.Tags {
		if err := tag.Validate(); err != nil {
			return goerr.Wrap(err, "invalid tag definition")
		}
		if names[tag.Name] {
			return goerr.Wrap(ErrDuplicateTagName, "duplicate tag name", goerr.V(TagNameKey, tag.Name))
		}
		names[tag.Name] = true
	}

	return nil
}

// ToVocabulary converts the configuration into the domain tag vocabulary
func (a *AppConfig) ToVocabulary() *model.TagVocabulary {
	defs := make([]model.TagDefinition, len(a.Tags))
	for i, tag := range a.Tags {
		defs[i] = model.TagDefinition{
			Name:        types.TagName(tag.Name),
			Description: tag.Description,
		}
	}
	return model.NewTagVocabulary(defs)
}

// Flags returns the CLI flag for the vocabulary configuration path. The
// path itself is read via the command because subcommands share the flag.
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the tag vocabulary TOML file",
			Sources: cli.EnvVars("MNEMOSYNE_CONFIG"),
		},
	}
}

// Configure loads and validates the configuration referenced by the
// --config flag and returns the domain vocabulary.
func (a *AppConfig) Configure(c *cli.Command) (*model.TagVocabulary, error) {
	path := c.String("config")
	if path == "" {
		return nil, goerr.Wrap(ErrConfigNotFound, "config path is required")
	}

	cfg, err := LoadAppConfiguration(path)
	if err != nil {
		return nil, err
	}
	*a = *cfg

	return a.ToVocabulary(), nil
}

// LoadAppConfiguration loads the tag vocabulary from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}
