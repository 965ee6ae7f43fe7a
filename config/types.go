package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Validator is implemented by settings structs that can check themselves.
type Validator interface {
	Validate() error
}

// Config wraps a viper instance bound to the library's configuration files.
type Config struct {
	instance   *viper.Viper
	opts       Options
	watchOnce  sync.Once
	watchMutex sync.RWMutex
}

// Options controls where configuration is loaded from.
type Options struct {
	BasePath  string
	FileName  string
	FileType  string
	EnvPrefix string
	Watch     bool
	OnChange  func(e fsnotify.Event)
}
