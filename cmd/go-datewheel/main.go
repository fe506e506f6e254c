package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/server"
	"github.com/tartampluch/go-datewheel/internal/ui"
)

// main defers to runMain so that deferred closes run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain parses flags, sets up logging and signals, and returns the exit code.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	// SIGINT or SIGTERM quits the UI loop.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run builds the Fyne app, the feed server and the picker window, then blocks
// in the UI loop.
func run(ctx context.Context) error {
	a := app.NewWithID(config.AppID)
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	port := a.Preferences().StringWithFallback(config.PrefServerPort, config.DefaultPort)
	srv := server.NewFeedServer(port)

	gui := ui.NewDateWheelApp(a, ctx, srv)

	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	gui.Run()

	return nil
}

func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs a JSON slog handler writing to stdout and, when the
// cache directory is usable, to a log file truncated on every start.
func setupLogging(debugMode bool) io.Closer {
	writers := []io.Writer{os.Stdout}
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath returns <user cache>/<AppID>/<LogFileName>, creating the
// directory if needed.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
