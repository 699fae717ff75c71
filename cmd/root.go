package cmd

import "go.uber.org/zap"

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve ServeCmd `cmd:"" default:"1" help:"Run the server"`
}

func (c *Context) Logger() (*zap.Logger, error) {
	if c.Debug {
		logConfig := zap.NewDevelopmentConfig()
		logConfig.DisableStacktrace = true

		return logConfig.Build()
	}

	return zap.NewProductionConfig().Build()
}
