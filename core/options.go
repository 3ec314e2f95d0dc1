package core

import (
	"github.com/rnetx/judge/api"
	"github.com/rnetx/judge/cache"
	"github.com/rnetx/judge/problem"
)

type Options struct {
	Log      LogOptions        `yaml:"log,omitempty"`
	Problems []problem.Options `yaml:"problems,omitempty"`
	API      *api.Options      `yaml:"api,omitempty"`
	Cache    *cache.Options    `yaml:"cache,omitempty"`
}

type LogOptions struct {
	Level            string `yaml:"level,omitempty"`
	Output           string `yaml:"output,omitempty"`
	DisableTimestamp bool   `yaml:"disable-timestamp,omitempty"`
	DisableColor     bool   `yaml:"disable-color,omitempty"`
}
