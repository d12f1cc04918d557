package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/mnemosyne/pkg/cli/config"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tags.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadAppConfiguration(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		path := writeConfig(t, `
[[tag]]
name = "golang"
description = "The Go programming language, its tooling and ecosystem"

[[tag]]
name = "papers"
description = "Academic papers and publications"
`)

		cfg, err := config.LoadAppConfiguration(path)
		gt.NoError(t, err).Required()
		gt.Array(t, cfg.Tags).Length(2)
		gt.Value(t, cfg.Tags[0].Name).Equal("golang")

		vocab := cfg.ToVocabulary()
		gt.Value(t, vocab.Names()).Equal([]types.TagName{"golang", "papers"})
		gt.Value(t, vocab.Lookup("papers").Description).Equal("Academic papers and publications")
		gt.Value(t, vocab.Lookup("made-up")).Nil()
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadAppConfiguration(filepath.Join(t.TempDir(), "missing.toml"))
		gt.Error(t, err)
	})

	t.Run("broken TOML", func(t *testing.T) {
		path := writeConfig(t, `[[tag
name = broken`)

		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err)
	})

	t.Run("empty vocabulary is rejected", func(t *testing.T) {
		path := writeConfig(t, ``)

		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		path := writeConfig(t, `
[[tag]]
description = "no name"
`)

		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err)
	})

	t.Run("missing description is rejected", func(t *testing.T) {
		path := writeConfig(t, `
[[tag]]
name = "golang"
`)

		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err)
	})

	t.Run("duplicate names are rejected", func(t *testing.T) {
		path := writeConfig(t, `
[[tag]]
name = "golang"
description = "first"

[[tag]]
name = "golang"
description = "second"
`)

		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err)
	})
}
