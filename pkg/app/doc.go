// Package app assembles a ready-to-use action.Controller from environment
// configuration: the contract endpoint, a mirror-backed identity provider,
// toast sinks, metrics, and the zap logger.
package app
