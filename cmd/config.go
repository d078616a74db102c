package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	m "mpakit.dev/pkg/mpakit/internal/model"
	"mpakit.dev/pkg/mpakit/internal/watch"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mpakit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	sourceFlagName         = "source"
	baseDirFlagName        = "base-dir"
	includesFlagName       = "includes"
	excludesFlagName       = "excludes"
	noskipFlagName         = "noskip"
	verboseFlagName        = "verbose"
	parallelFlagName       = "parallel"
	strictFlagName         = "strict"
	skipUnreadableFlagName = "skip-unreadable"
	manifestFlagName       = "manifest"
	debugFlagName          = "debug"
	logFileFlagName        = "log-file"
	formatFlagName         = "format"
	failEmptyFlagName      = "fail-empty"
	diffFlagName           = "diff"
	debounceFlagName       = "debounce"

	extensionsConfigKey     = "entries.extensions"
	sourceConfigKey         = "entries.source"
	baseDirConfigKey        = "entries.base_dir"
	includesConfigKey       = "entries.includes"
	excludesConfigKey       = "entries.excludes"
	noskipConfigKey         = "entries.noskip"
	verboseConfigKey        = "entries.verbose"
	parallelConfigKey       = "entries.parallel"
	strictConfigKey         = "entries.strict"
	skipUnreadableConfigKey = "entries.skip_unreadable"
	manifestConfigKey       = "entries.manifest"
	failEmptyConfigKey      = "entries.fail_empty"
	formatConfigKey         = "output.format"
	debounceConfigKey       = "watch.debounce"

	defaultSource         = string(m.DefaultSourceRoot)
	defaultVerbose        = true
	defaultParallel       = 1
	defaultFormat         = "table"
	defaultNoskip         = false
	defaultStrict         = false
	defaultSkipUnreadable = false
	defaultFailEmpty      = false

	envPrefix = "MPAKIT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mpakit.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultExtensions = []string{".js"}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(extensionsConfigKey, defaultExtensions)
	viper.SetDefault(sourceConfigKey, defaultSource)
	viper.SetDefault(baseDirConfigKey, "")
	viper.SetDefault(includesConfigKey, "")
	viper.SetDefault(excludesConfigKey, "")
	viper.SetDefault(noskipConfigKey, defaultNoskip)
	viper.SetDefault(verboseConfigKey, defaultVerbose)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(strictConfigKey, defaultStrict)
	viper.SetDefault(skipUnreadableConfigKey, defaultSkipUnreadable)
	viper.SetDefault(manifestConfigKey, "")
	viper.SetDefault(failEmptyConfigKey, defaultFailEmpty)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(debounceConfigKey, watch.DefaultDebounce.String())

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if debug is true it logs at
// Debug.
func configureLogger(logPath string, debug bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if debug {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
