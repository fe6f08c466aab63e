package paramutils

import "github.com/spf13/pflag"

type FlagRepo interface {
	GetStringOrDefault(flag, d string) string
	GetBoolOrDefault(flag string, d bool) bool
	GetIntOrDefault(flag string, d int) int
}

func NewFlagRepo(flags *pflag.FlagSet) FlagRepo {
	return &PFlagSetWrapper{Flags: flags}
}

type PFlagSetWrapper struct {
	Flags *pflag.FlagSet
}

func (fs *PFlagSetWrapper) GetStringOrDefault(flag, d string) string {
	s, err := fs.Flags.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}

func (fs *PFlagSetWrapper) GetBoolOrDefault(flag string, d bool) bool {
	v, err := fs.Flags.GetBool(flag)
	if err != nil {
		return d
	}

	return v
}

func (fs *PFlagSetWrapper) GetIntOrDefault(flag string, d int) int {
	v, err := fs.Flags.GetInt(flag)
	if err != nil || v == 0 {
		return d
	}

	return v
}
