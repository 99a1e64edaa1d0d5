package config

import (
	"context"

	"github.com/sirupsen/logrus"
)

type IConfig interface {
	Context() context.Context
	GetConfigFile() string
	GetConfigString(key string) string
	GetLogger() *logrus.Entry
	GetDir() string
	GetFormat() string
}
