// Package logger provides structured logging backed by zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers carrying structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("slackweb").WithComponent("httpclient")
//	log.Debug("call completed", logger.Fields("method", "users.info", "status", 200))
package logger
