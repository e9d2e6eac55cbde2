// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p                  Server port
	-cors               Allowed origins, comma separated
	-grace              Completion grace period (Go duration, e.g. 2s)
	-max-time-limit     Longest poll in seconds
	-send-buffer        Frames queued per client before it is dropped
	-notify-rejections  Send command-rejected for ignored commands
	-log-salt           Salt for hashing client addresses in logs
	-env-file           Dotenv file to load first

# Environment Variables

A .env file in the working directory is loaded if present (variables
already set in the environment win). Flags fall back to:

	PORT              → -p                 (default 3001)
	CORS_ORIGINS      → -cors              (local dev origins)
	COMPLETION_GRACE  → -grace             (default 2s)
	MAX_TIME_LIMIT    → -max-time-limit    (default 600)
	SEND_BUFFER       → -send-buffer       (default 256)
	NOTIFY_REJECTIONS → -notify-rejections (default false)
	LOG_SALT          → -log-salt          (random per process)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error for unparsable numbers or durations, a port
outside 1-65535, non-positive grace, time limit or send buffer, and an
explicit -env-file that cannot be read.
*/
package cliparse
