/*
Package cli provides command-line helpers for the breeze command:
typed errors for configuration and command failures, and signal
handling for graceful shutdown.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
