package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrSystemQuery is returned when CPU or memory facts are unavailable
var ErrSystemQuery = errors.New("system query failed")

// Snapshot is an immutable view of the host taken at build time
type Snapshot struct {
	cpu map[string]string
	mem map[string]string
	env map[string]string
}

// Builder builds snapshots
type Builder struct {
	host    Host
	environ func() []string
	logger  *zap.Logger
}

// NewBuilder creates a new builder. environ returns KEY=VALUE pairs in the
// form of os.Environ.
func NewBuilder(host Host, environ func() []string, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		host:    host,
		environ: environ,
		logger:  logger,
	}
}

// Build queries the host and environment and returns a fresh snapshot
func (b *Builder) Build(ctx context.Context) (*Snapshot, error) {
	logical, physical, err := b.host.CPUCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: cpu counts: %v", ErrSystemQuery, err)
	}
	if physical <= 0 {
		physical = logical
	}

	total, used, err := b.host.Memory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: memory: %v", ErrSystemQuery, err)
	}

	// Signed so free stays total - used even if the host reports used > total
	free := int64(total) - int64(used)

	snap := &Snapshot{
		cpu: map[string]string{
			"logical":  strconv.Itoa(logical),
			"physical": strconv.Itoa(physical),
		},
		mem: map[string]string{
			"total": strconv.FormatUint(total, 10),
			"used":  strconv.FormatUint(used, 10),
			"free":  strconv.FormatInt(free, 10),
		},
		env: ParseEnviron(b.environ()),
	}

	b.logger.Debug("snapshot built",
		zap.Int("cpu_logical", logical),
		zap.Int("cpu_physical", physical),
		zap.Uint64("mem_total", total),
		zap.Uint64("mem_used", used),
		zap.Int("env_vars", len(snap.env)),
	)

	return snap, nil
}

// ParseEnviron turns KEY=VALUE pairs in the form of os.Environ into a map.
// A pair without "=" maps to the empty value, pairs with an empty key are
// dropped and later duplicates win.
func ParseEnviron(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Data returns the snapshot as template data. The maps are copies, so
// callers cannot mutate the snapshot.
func (s *Snapshot) Data() map[string]interface{} {
	return map[string]interface{}{
		"cpu": clone(s.cpu),
		"mem": clone(s.mem),
		"env": clone(s.env),
	}
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
