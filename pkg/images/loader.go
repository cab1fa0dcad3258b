// pkg/images/loader.go
package images

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders for the formats asset files use.
	_ "image/jpeg"
	_ "image/png"

	"github.com/sony/gobreaker"

	"github.com/djkeyes/Trydent/pkg/config"
	"github.com/djkeyes/Trydent/pkg/logging"
)

// Loader reads and decodes image files from the asset directory. Disk loads
// run through a circuit breaker so that a storm of loads for a missing or
// corrupt asset fails fast instead of hammering the filesystem every frame.
type Loader struct {
	baseDir string
	breaker *gobreaker.CircuitBreaker
	logger  *logging.Logger
}

// NewLoader creates a loader rooted at the configured asset directory.
func NewLoader(envConfig *config.EnvironmentConfig) *Loader {
	logger := logging.NewLogger()

	settings := gobreaker.Settings{
		Name:        "trydent-image-loader",
		MaxRequests: uint32(envConfig.CircuitBreakerMaxRequests),
		Interval:    envConfig.CircuitBreakerInterval,
		Timeout:     envConfig.CircuitBreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(envConfig.CircuitBreakerMaxConsecutiveFails)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info(context.Background(), "image loader circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &Loader{
		baseDir: envConfig.AssetDir,
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Load reads and decodes the named image. The name is resolved against the
// asset directory and must stay inside it.
func (l *Loader) Load(ctx context.Context, name string) (image.Image, error) {
	path, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	result, err := l.breaker.Execute(func() (interface{}, error) {
		return decodeFile(path)
	})
	if err != nil {
		l.logger.Warn(ctx, "image load failed",
			"name", name,
			"error", err.Error(),
		)
		return nil, err
	}
	return result.(image.Image), nil
}

// resolve joins name onto the base directory and rejects names that escape
// it.
func (l *Loader) resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("image name cannot be empty")
	}
	path := filepath.Join(l.baseDir, filepath.FromSlash(name))
	rel, err := filepath.Rel(l.baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("image name %q escapes the asset directory", name)
	}
	return path, nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image file: %w", err)
	}
	return img, nil
}
