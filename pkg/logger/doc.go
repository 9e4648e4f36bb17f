// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// A single factory, New, creates a *slog.Logger configured by Option
// functions: output format (text/json), minimum level, static attributes, and
// ContextExtractor callbacks that pull request-scoped values out of context on
// every log call.
//
// Helper constructors in attr.go (Error, Component, Transition, Countdown and
// friends) keep attribute naming consistent across the session lifecycle
// components.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("sessionguard"),
//	    logger.WithContextValue("session_id", ctxKeySessionID),
//	)
//	logger.SetAsDefault(log)
//
//	log.Info("session refreshed",
//	    logger.Component("lifecycle"),
//	    logger.Duration(time.Since(start)),
//	)
package logger
