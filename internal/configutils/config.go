package configutils

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/samueljsb/gh-notifs/internal/pkg/fs"
)

var (
	ErrHomeDirNotFound = errors.New("unable to determine the home directory")
	ErrConfigFileIsDir = errors.New("configuration file is a directory")
)

const localConfigName = ".ghnotifscfg"

var filetypes = []string{"toml", "yaml", "json"}

var fileExists = func(filename string, fs fs.Filesystem) error {
	info, err := fs.Stat(filename)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return ErrConfigFileIsDir
	}

	return nil
}

var loadFile = func(filename string, fs fs.Filesystem) (io.Reader, error) {
	err := fileExists(filename, fs)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}

	return f, nil
}

var mergeFile = func(v *viper.Viper, filename, filetype string) error {
	f, err := loadFile(filename, fs.OS{})
	if err != nil {
		return err
	}

	v.SetConfigType(filetype)
	return v.MergeConfig(f)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.mode", "console")
	v.SetDefault("html.refresh_seconds", 12)
}

// mergeGlobalConfig probes ~/.config/gh-notifs/config.* for every
// supported file type. A missing global config is not an error.
var mergeGlobalConfig = func(v *viper.Viper) error {
	cfgDir, err := homedir.Expand("~/.config/gh-notifs")
	if err != nil {
		return ErrHomeDirNotFound
	}

	for _, ft := range filetypes {
		f := filepath.Join(cfgDir, fmt.Sprintf("config.%s", ft))
		if err := mergeFile(v, f, ft); err != nil {
			log.Debug().
				Msgf("config loading failed for type %s, skipping to next filetype", ft)
			continue
		}

		return nil
	}

	return nil
}

// mergeLocalConfig merges a .ghnotifscfg from the working directory over
// the global configuration, trying every supported file type.
var mergeLocalConfig = func(v *viper.Viper) error {
	wd, err := fs.OS{}.Getwd()
	if err != nil {
		return nil
	}

	f := filepath.Join(wd, localConfigName)
	if err := fileExists(f, fs.OS{}); err != nil {
		return nil
	}

	var lastErr error
	for _, ft := range filetypes {
		if lastErr = mergeFile(v, f, ft); lastErr == nil {
			return nil
		}
	}

	return errors.Wrap(lastErr, "could not load local config")
}

// Load populates the global viper instance: defaults, then the global
// config file (or an explicit path), then a local .ghnotifscfg.
func Load(path string) error {
	v := viper.GetViper()
	setDefaults(v)

	if path != "" {
		ft := strings.TrimPrefix(filepath.Ext(path), ".")
		if ft == "" {
			ft = "toml"
		}

		if err := mergeFile(v, path, ft); err != nil {
			return errors.Wrap(err, "could not load config")
		}

		return nil
	}

	if err := mergeGlobalConfig(v); err != nil {
		return err
	}

	return mergeLocalConfig(v)
}
