package configutils

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/samueljsb/gh-notifs/internal/pkg/fs"
)

func Test_fileExists(t *testing.T) {
	t.Run("returns nil if file exists", func(t *testing.T) {
		err := fileExists("", &fs.MockFS{Info: fs.MockFileInfo{IsDirValue: false}})
		assert.Equal(t, nil, err)
	})

	t.Run("returns error if file does not exist", func(t *testing.T) {
		vErr := errors.New("file does not exist")
		err := fileExists("", &fs.MockFS{Err: vErr})
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("returns error if file is a directory", func(t *testing.T) {
		err := fileExists("", &fs.MockFS{Info: fs.MockFileInfo{IsDirValue: true}})
		assert.EqualError(t, err, ErrConfigFileIsDir.Error())
	})
}

func Test_loadFile(t *testing.T) {
	oldFileExists := fileExists
	defer func() { fileExists = oldFileExists }()

	t.Run("fails if file does not exist", func(t *testing.T) {
		vErr := errors.New("file err")
		fileExists = func(string, fs.Filesystem) error { return vErr }
		_, err := loadFile("", nil)
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("fails if file cannot be opened", func(t *testing.T) {
		vErr := errors.New("file err")
		fileExists = func(string, fs.Filesystem) error { return nil }
		_, err := loadFile("", &fs.MockFS{Err: vErr})
		assert.EqualError(t, err, vErr.Error())
	})
}

func Test_setDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	assert.Equal(t, "console", v.GetString("output.mode"))
	assert.Equal(t, 12, v.GetInt("html.refresh_seconds"))
}

func Test_Load(t *testing.T) {
	oldMergeFile := mergeFile
	oldMergeGlobal := mergeGlobalConfig
	oldMergeLocal := mergeLocalConfig
	defer func() {
		mergeFile = oldMergeFile
		mergeGlobalConfig = oldMergeGlobal
		mergeLocalConfig = oldMergeLocal
	}()

	t.Run("explicit path failures are fatal", func(t *testing.T) {
		vErr := errors.New("no such file")
		mergeFile = func(v *viper.Viper, filename, filetype string) error { return vErr }

		err := Load("/does/not/exist.toml")
		assert.Error(t, err)
	})

	t.Run("explicit path is loaded with its extension's type", func(t *testing.T) {
		gotType := ""
		mergeFile = func(v *viper.Viper, filename, filetype string) error {
			gotType = filetype
			return nil
		}

		err := Load("/some/config.yaml")
		assert.NoError(t, err)
		assert.Equal(t, "yaml", gotType)
	})

	t.Run("missing global and local configs are tolerated", func(t *testing.T) {
		mergeGlobalConfig = func(v *viper.Viper) error { return nil }
		mergeLocalConfig = func(v *viper.Viper) error { return nil }

		assert.NoError(t, Load(""))
	})
}
