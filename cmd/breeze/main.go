// Breeze is a rule-based climate decision engine for home
// air-conditioner control.
//
// It evaluates a prioritized rule catalog against the current home
// facts (temperature, humidity, occupancy, ...) and decides the
// air-conditioner mode, fan speed, and setpoint.
//
// Usage:
//
//	# Start the HTTP API server with default configuration
//	breeze run
//
//	# Start with a custom configuration file
//	breeze run --config /path/to/config.yaml
//
//	# Decide once from the command line
//	breeze evaluate --fact temperature=31 --fact humidity=75 \
//	  --fact occupancy=OCCUPIED --fact windows_open=false --fact time_of_day=DAY
//
//	# Validate a rule catalog file
//	breeze rules validate --file rules.yaml
//
//	# Show the active rule catalog
//	breeze rules show
//
//	# Show version information
//	breeze version
package main

func main() {
	Execute()
}
