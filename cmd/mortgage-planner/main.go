package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iwvelando/mortgage-planner/internal/cache"
	"github.com/iwvelando/mortgage-planner/internal/config"
	"github.com/iwvelando/mortgage-planner/internal/planner"
	"github.com/iwvelando/mortgage-planner/internal/server"
	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/output"
	"github.com/iwvelando/mortgage-planner/pkg/validation"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		cfg.OutputPaths = []string{loggingConfig.OutputFile}
		cfg.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return cfg.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the HTTP API server instead of computing a single schedule")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	addressFlag := flag.String("address", "", "listen address override for the HTTP server")
	flag.Parse()

	if *serve {
		runServer(*serverConfigLocation, *addressFlag, *logLevel)
		return
	}

	// Load the config file to get loan parameters and logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	service := planner.NewService(logger)

	loanIn := conf.LoanInput(time.Now())
	overIn := conf.OverpaymentInput()

	// Validate the loan parameters before computing anything.
	validation := service.ValidateLoanInput(loanIn)
	if !validation.Valid {
		for _, msg := range validation.Errors {
			logger.Error(msg,
				zap.String("op", "main"),
			)
		}
		logger.Fatal("loan parameters failed validation",
			zap.String("op", "main"),
		)
	}

	// Compute the amortization schedule.
	data := service.CalculateSchedule(loanIn, overIn)
	if data == nil {
		logger.Fatal("failed to compute amortization schedule",
			zap.String("op", "main"),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(data)
	case constants.OutputFormatCSV:
		output.CsvFormat(data)
	}
}

func runServer(configLocation, addressOverride, logLevelOverride string) {
	conf, err := server.LoadConfig(configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, logLevelOverride)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	address := conf.Address
	if addressOverride != "" {
		address = addressOverride
	}

	opts := server.Options{
		CacheTTL:    conf.CacheTTLDuration(),
		MaxBodySize: conf.BodySizeBytes(),
		Version:     version,
	}
	if conf.CacheAddress != "" {
		redisCache := cache.NewRedis(conf.CacheAddress)
		defer func() {
			_ = redisCache.Close()
		}()
		opts.ResultCache = redisCache
		logger.Info("result caching enabled",
			zap.String("op", "main"),
			zap.String("address", conf.CacheAddress),
		)
	}

	service := planner.NewService(logger)
	handler := server.NewHandler(logger, service, opts)

	logger.Info("starting HTTP server",
		zap.String("op", "main"),
		zap.String("address", address),
	)
	if err := http.ListenAndServe(address, handler); err != nil {
		logger.Fatal("HTTP server terminated",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
