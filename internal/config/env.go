package config

import "time"

// Config keys. Every key can be overridden from the environment with the
// MCC_ prefix and dots replaced by underscores (e.g. MCC_SERVER_MEMORY).
const envPrefix = "MCC"

// Server name; also the container name.
const keyName = "name"

// Host address the game port is published on.
const (
	keyHost     = "host"
	defaultHost = "0.0.0.0"
)

// Host port the game port is published on.
const (
	keyPort     = "port"
	defaultPort = 25565
)

// Server variant and version. Only vanilla is supported.
const (
	keyServerType     = "server.type"
	keyServerVersion  = "server.version"
	defaultServerType = "vanilla"
)

// JVM heap size passed to the server (e.g. 2G, 1536m).
const keyServerMemory = "server.memory"

// World generation settings applied on create.
const (
	keyWorldName        = "world.name"
	keyWorldSeed        = "world.seed"
	keyWorldGamemode    = "world.gamemode"
	keyWorldDifficulty  = "world.difficulty"
	keyWorldAllowFlight = "world.allow_flight"

	defaultWorldName       = "world"
	defaultWorldGamemode   = "survival"
	defaultWorldDifficulty = "easy"
)

// Container image, data directory and restart policy.
const (
	keyContainerImage         = "container.image"
	keyContainerDataDir       = "container.data_dir"
	keyContainerRestartPolicy = "container.restart_policy"

	defaultContainerImage         = "itzg/minecraft-server:latest"
	defaultContainerDataDir       = "data"
	defaultContainerRestartPolicy = "unless-stopped"
)

// Grace period before a stopping server is killed. Units: s, m (e.g. 30s).
const (
	keyContainerStopTimeout     = "container.stop_timeout"
	defaultContainerStopTimeout = 30 * time.Second
)

// Console detach key sequence in Docker's key syntax.
const (
	keyConsoleDetachKeys     = "console.detach_keys"
	defaultConsoleDetachKeys = "ctrl-p,ctrl-q"
)

// Cron spec and IANA timezone for scheduled restarts in serve mode.
const (
	keyScheduleRestart      = "schedule.restart"
	keyScheduleTimezone     = "schedule.timezone"
	defaultScheduleTimezone = "UTC"
)

// Ports for the serve mode status and metrics servers.
const (
	keyServeHTTPPort        = "serve.http_port"
	keyServeMetricsPort     = "serve.metrics_port"
	defaultServeHTTPPort    = "8080"
	defaultServeMetricsPort = "9090"
)

// Directory next to the config file holding datapack sources.
const datapackSourceDir = "datapacks"

// Port the server listens on inside the container.
const containerGamePort = 25565
