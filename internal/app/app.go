// Package app implements the application layer for condasnap.
package app

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/condatools/condasnap/internal/core/domain"
	"github.com/condatools/condasnap/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTimeout bounds each individual package-manager invocation. Exports
// of an already-resolved environment are fast; anything beyond this is a hang.
const DefaultTimeout = 5 * time.Minute

// App represents the main application logic.
type App struct {
	manager ports.EnvironmentManager
	store   ports.ManifestStore
	hasher  ports.Hasher
	logger  ports.Logger
}

// New creates a new App instance.
func New(manager ports.EnvironmentManager, store ports.ManifestStore, hasher ports.Hasher, logger ports.Logger) *App {
	return &App{
		manager: manager,
		store:   store,
		hasher:  hasher,
		logger:  logger,
	}
}

// CaptureOptions controls a capture run.
type CaptureOptions struct {
	// OutputDir is the directory artifacts are written to. Defaults to the
	// current working directory.
	OutputDir string

	// Basename is the file name prefix for all artifacts. Defaults to the
	// environment name. Names are deterministic: re-capturing with the same
	// basename overwrites.
	Basename string

	// Timeout bounds each strategy's package-manager invocation. Defaults to
	// DefaultTimeout.
	Timeout time.Duration
}

// Capture serializes the named environment with every export strategy.
//
// Pre-flight failures (unwritable output directory, unknown environment)
// abort before any export runs and leave no files behind. Strategy failures
// are isolated: each strategy is attempted unconditionally, failures are
// logged as they happen and collected into a StrategyFailures error, and the
// artifacts of the succeeding strategies are written regardless.
func (a *App) Capture(ctx context.Context, envName string, opts CaptureOptions) error {
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	basename := opts.Basename
	if basename == "" {
		basename = envName
	}

	if err := probeWritable(outDir); err != nil {
		return err
	}

	exists, err := a.manager.EnvironmentExists(ctx, envName)
	if err != nil {
		return zerr.Wrap(err, "failed to query environments")
	}
	if !exists {
		notFound := zerr.Wrap(domain.ErrEnvironmentNotFound, "cannot capture")
		return zerr.With(notFound, "environment", envName)
	}

	base := filepath.Join(outDir, basename)
	m := &domain.Manifest{
		Environment: envName,
		CreatedAt:   time.Now().UTC(),
		Artifacts:   make(map[string]domain.Artifact),
	}

	failures := &domain.StrategyFailures{Failed: make(map[domain.Strategy]error)}
	for _, strategy := range domain.Strategies {
		path := strategy.ArtifactPath(base)
		if err := a.export(ctx, envName, strategy, path, opts.Timeout); err != nil {
			strategyErr := zerr.Wrap(err, domain.ErrExportStrategyFailed.Error())
			strategyErr = zerr.With(strategyErr, "strategy", strategy.String())
			a.logger.Error(strategyErr)
			failures.Failed[strategy] = strategyErr
			continue
		}

		a.logger.Info("wrote " + path)

		hash, err := a.hasher.HashFile(path)
		if err != nil {
			a.logger.Warn("could not checksum " + path + ": " + err.Error())
			continue
		}
		m.Artifacts[strategy.String()] = domain.Artifact{
			File: filepath.Base(path),
			Hash: hash,
		}
	}

	if len(m.Artifacts) > 0 {
		manifestPath := base + ".manifest.json"
		if err := a.store.Write(manifestPath, m); err != nil {
			a.logger.Error(err)
		} else {
			a.logger.Info("wrote " + manifestPath)
		}
	}

	if len(failures.Failed) > 0 {
		return failures
	}
	return nil
}

func (a *App) export(ctx context.Context, envName string, strategy domain.Strategy, path string, timeout time.Duration) error {
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	data, err := a.manager.Export(ctx, envName, strategy)
	if err != nil {
		return err
	}

	//nolint:gosec // Artifacts are plain-text manifests meant to be shared
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", path)
	}
	return nil
}

// RestoreOptions controls a restore run.
type RestoreOptions struct {
	// Timeout bounds the package-manager invocation. Defaults to
	// DefaultTimeout. Restores resolve and download packages, so generous
	// values are reasonable here.
	Timeout time.Duration
}

// Restore creates a new named environment from any one of the capture
// artifacts. The artifact kind is detected from its content. Restoring from an
// explicit lock list reproduces exact builds or fails with ErrPlatformMismatch;
// restoring from a declarative descriptor re-resolves dependencies and may
// select different transitive versions than the capture.
func (a *App) Restore(ctx context.Context, descriptorPath, newName string, opts RestoreOptions) error {
	//nolint:gosec // Path is provided by the user
	data, err := os.ReadFile(descriptorPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read descriptor"), "path", descriptorPath)
	}

	kind, err := domain.DetectArtifactKind(data)
	if err != nil {
		// Wrap before attaching context so the sentinel stays on the chain.
		return zerr.With(zerr.Wrap(err, "cannot restore"), "path", descriptorPath)
	}

	ctx, cancel := withTimeout(ctx, opts.Timeout)
	defer cancel()

	switch kind {
	case domain.KindExplicitLock:
		a.logger.Info("restoring exact package builds from " + descriptorPath)
		err = a.manager.CreateFromExplicit(ctx, newName, descriptorPath)
	case domain.KindDeclarative:
		a.logger.Info("resolving declarative descriptor " + descriptorPath)
		err = a.manager.CreateFromDescriptor(ctx, newName, descriptorPath)
	}
	if err != nil {
		return err
	}

	a.logger.Info("created environment " + newName)
	return nil
}

// Verify recomputes the checksum of every artifact recorded in the manifest
// for the given basename and reports artifacts that changed or disappeared
// since capture.
func (a *App) Verify(_ context.Context, basename, outputDir string) error {
	if outputDir == "" {
		outputDir = "."
	}
	base := filepath.Join(outputDir, basename)

	m, err := a.store.Read(base + ".manifest.json")
	if err != nil {
		return err
	}

	names := make([]string, 0, len(m.Artifacts))
	for name := range m.Artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	var bad []string
	for _, name := range names {
		artifact := m.Artifacts[name]
		path := filepath.Join(outputDir, artifact.File)

		hash, err := a.hasher.HashFile(path)
		switch {
		case err != nil:
			a.logger.Warn(name + ": " + artifact.File + " missing")
			bad = append(bad, artifact.File)
		case hash != artifact.Hash:
			a.logger.Warn(name + ": " + artifact.File + " changed since capture")
			bad = append(bad, artifact.File)
		default:
			a.logger.Info(name + ": " + artifact.File + " ok")
		}
	}

	if len(bad) > 0 {
		mismatch := zerr.Wrap(domain.ErrArtifactMismatch, "verification failed")
		return zerr.With(mismatch, "artifacts", strings.Join(bad, ", "))
	}
	return nil
}

// probeWritable checks up front that artifacts can be written, so a
// permissions problem surfaces before any export is attempted.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".condasnap-probe-*")
	if err != nil {
		probeErr := zerr.Wrap(domain.ErrWritePermissionDenied, err.Error())
		return zerr.With(probeErr, "dir", dir)
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
