package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Mukesh-ghildiyal/real-time-pollling/auth"
)

const (
	DefaultPort            = 3001
	DefaultCompletionGrace = 2 * time.Second
	DefaultMaxTimeLimit    = 600
	DefaultSendBuffer      = 256
	DefaultEnvFile         = ".env"

	// Websocket keepalive; the ping interval must stay below the read timeout
	DefaultPingInterval = 54 * time.Second
	DefaultReadTimeout  = 60 * time.Second
	DefaultWriteTimeout = 10 * time.Second
)

var DefaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://localhost:8080",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:8080",
}

type Config struct {
	Port             int
	CORSOrigins      []string
	CompletionGrace  time.Duration
	MaxTimeLimit     int // seconds
	SendBuffer       int
	PingInterval     time.Duration
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	RejectionNotices bool
	LogSalt          string
	EnvFile          string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var cors, grace string
	var notify bool

	fs := flag.NewFlagSet("real-time-polling", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cors, "cors", "", "Comma separated allowed origins")
	fs.StringVar(&grace, "grace", "", "Delay before closing a poll everyone answered")
	fs.IntVar(&cfg.MaxTimeLimit, "max-time-limit", 0, "Longest poll allowed, in seconds")
	fs.IntVar(&cfg.SendBuffer, "send-buffer", 0, "Queued frames per client before it is dropped")
	fs.BoolVar(&notify, "notify-rejections", false, "Tell clients when a command is ignored")
	fs.StringVar(&cfg.LogSalt, "log-salt", "", "Salt for hashing client addresses in logs (prefer env)")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "Dotenv file to load")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// A missing default .env is fine, a missing explicit one is not
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			return Config{}, fmt.Errorf("failed to load env file: %w", err)
		}
	} else {
		cfg.EnvFile = DefaultEnvFile
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}

	if cors == "" {
		cors = os.Getenv("CORS_ORIGINS")
	}
	if cors != "" {
		cfg.CORSOrigins = splitList(cors)
	} else {
		cfg.CORSOrigins = append([]string(nil), DefaultCORSOrigins...)
	}

	if grace == "" {
		grace = os.Getenv("COMPLETION_GRACE")
	}
	if grace != "" {
		d, err := time.ParseDuration(grace)
		if err != nil {
			return Config{}, fmt.Errorf("invalid completion grace: %w", err)
		}
		cfg.CompletionGrace = d
	} else {
		cfg.CompletionGrace = DefaultCompletionGrace
	}
	if cfg.CompletionGrace <= 0 {
		return Config{}, errors.New("completion grace must be positive")
	}

	if cfg.MaxTimeLimit == 0 {
		limit, err := envInt("MAX_TIME_LIMIT", DefaultMaxTimeLimit)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxTimeLimit = limit
	}
	if cfg.MaxTimeLimit <= 0 {
		return Config{}, errors.New("max time limit must be positive")
	}

	if cfg.SendBuffer == 0 {
		buf, err := envInt("SEND_BUFFER", DefaultSendBuffer)
		if err != nil {
			return Config{}, err
		}
		cfg.SendBuffer = buf
	}
	if cfg.SendBuffer <= 0 {
		return Config{}, errors.New("send buffer must be positive")
	}

	cfg.RejectionNotices = notify
	if !notify {
		if v := os.Getenv("NOTIFY_REJECTIONS"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid NOTIFY_REJECTIONS env variable")
			}
			cfg.RejectionNotices = b
		}
	}

	if cfg.LogSalt == "" {
		cfg.LogSalt = os.Getenv("LOG_SALT")
	}
	if cfg.LogSalt == "" {
		salt, err := auth.GenerateID(16)
		if err != nil {
			return Config{}, err
		}
		cfg.LogSalt = salt
	}

	cfg.PingInterval = DefaultPingInterval
	cfg.ReadTimeout = DefaultReadTimeout
	cfg.WriteTimeout = DefaultWriteTimeout

	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
