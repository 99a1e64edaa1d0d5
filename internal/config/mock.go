package config

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type ConfigMock struct {
	mock.Mock
}

func NewConfigMock() *ConfigMock {
	return &ConfigMock{}
}

func (c *ConfigMock) Context() context.Context {
	args := c.Called()
	return args.Get(0).(context.Context)
}

func (c *ConfigMock) GetConfigFile() string {
	args := c.Called()
	return args.String(0)
}

func (c *ConfigMock) GetConfigString(key string) string {
	args := c.Called(key)
	return args.String(0)
}

func (c *ConfigMock) GetLogger() *logrus.Entry {
	args := c.Called()
	return args.Get(0).(*logrus.Entry)
}

func (c *ConfigMock) GetDir() string {
	args := c.Called()
	return args.String(0)
}

func (c *ConfigMock) GetFormat() string {
	args := c.Called()
	return args.String(0)
}
