// Package runner executes the provisioning pipeline.
package runner

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// TreeCopier mirrors the project tree for the source assembly stage.
type TreeCopier interface {
	CopyTree(ctx context.Context, src, dst string, ignores []string) error
}

// Runner executes a pipeline's stages strictly sequentially. Each stage is a
// blocking step gated on the success of the previous one; the first failure
// aborts the build with no retry and no rollback.
type Runner struct {
	executor  ports.Executor
	hasher    ports.StageHasher
	store     ports.LayerStore
	preparer  ports.DirPreparer
	copier    TreeCopier
	telemetry ports.Telemetry
	logger    ports.Logger

	mu     sync.RWMutex
	status map[domain.InternedString]domain.StageStatus
}

// NewRunner creates a new Runner.
func NewRunner(
	executor ports.Executor,
	hasher ports.StageHasher,
	store ports.LayerStore,
	preparer ports.DirPreparer,
	copier TreeCopier,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Runner {
	return &Runner{
		executor:  executor,
		hasher:    hasher,
		store:     store,
		preparer:  preparer,
		copier:    copier,
		telemetry: telemetry,
		logger:    logger,
		status:    make(map[domain.InternedString]domain.StageStatus),
	}
}

// Status returns the lifecycle state of a stage from the last Run.
func (r *Runner) Status(name domain.InternedString) domain.StageStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.status[name]; ok {
		return s
	}
	return domain.StageStatusPending
}

func (r *Runner) setStatus(name domain.InternedString, s domain.StageStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[name] = s
}

// Run executes the pipeline against the given project root and returns the
// layer chain in order. A stage is a cache hit iff its own cache key and its
// parent digest both match the stored record; force bypasses the check but
// still records fresh layers.
func (r *Runner) Run(ctx context.Context, p *domain.Pipeline, root string, force bool) ([]domain.LayerInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.status = make(map[domain.InternedString]domain.StageStatus, p.StageCount())
	r.mu.Unlock()
	for stage := range p.Walk() {
		r.setStatus(stage.Name, domain.StageStatusPending)
	}

	layers := make([]domain.LayerInfo, 0, p.StageCount())
	parent := ""

	for stage := range p.Walk() {
		if err := ctx.Err(); err != nil {
			return layers, err
		}

		info, err := r.runStage(ctx, &stage, root, parent, force)
		if err != nil {
			r.setStatus(stage.Name, domain.StageStatusFailed)
			stageErr := zerr.With(zerr.Wrap(err, domain.ErrStageFailed.Error()), "stage", stage.Name.String())
			return layers, stageErr
		}

		layers = append(layers, *info)
		parent = info.Digest
	}

	return layers, nil
}

func (r *Runner) runStage(ctx context.Context, stage *domain.Stage, root, parent string, force bool) (*domain.LayerInfo, error) {
	r.setStatus(stage.Name, domain.StageStatusRunning)
	ctx, vertex := r.telemetry.Record(ctx, stage.Name.String())

	key, err := r.hasher.ComputeStageKey(stage, root)
	if err != nil {
		vertex.Complete(err)
		return nil, err
	}

	if !force {
		if cached, err := r.store.Get(stage.Name.String()); err == nil && cached != nil &&
			cached.CacheKey == key && cached.Parent == parent {
			r.setStatus(stage.Name, domain.StageStatusCached)
			vertex.Cached()
			vertex.Complete(nil)
			return cached, nil
		}
	}

	if stage.Unpinned {
		msg := "no lockfile for stage " + stage.Name.String() + "; falling back to unpinned resolution"
		r.logger.Warn(msg)
		vertex.Log(domain.LogLevelWarn, msg)
	}

	if err := r.executeStage(ctx, stage, root, vertex); err != nil {
		vertex.Complete(err)
		return nil, err
	}

	info := domain.LayerInfo{
		StageName: stage.Name.String(),
		CacheKey:  key,
		Digest:    domain.ChainDigest(parent, key),
		Parent:    parent,
		Unpinned:  stage.Unpinned,
		Timestamp: time.Now(),
	}
	if err := r.store.Put(info); err != nil {
		vertex.Complete(err)
		return nil, zerr.Wrap(err, "failed to store layer record")
	}

	r.setStatus(stage.Name, domain.StageStatusCompleted)
	vertex.Complete(nil)
	return &info, nil
}

func (r *Runner) executeStage(ctx context.Context, stage *domain.Stage, root string, vertex ports.Vertex) error {
	switch stage.Kind {
	case domain.KindRuntimeDirs:
		for _, dir := range stage.Dirs {
			if err := r.preparer.Prepare(filepath.Join(root, dir.Path), fs.FileMode(dir.Mode)); err != nil {
				return err
			}
		}
		return nil

	case domain.KindSource:
		if stage.AssembleTo == "" {
			// In-place build: the tree is already where it runs, the stage
			// only contributes its content to the cache chain.
			return nil
		}
		return r.copier.CopyTree(ctx, root, stage.AssembleTo, stage.Ignores)

	default:
		workdir := filepath.Join(root, stage.WorkingDir)
		env := flattenEnv(stage.Environment)
		for _, step := range stage.Steps {
			if err := r.executor.Execute(ctx, &step, workdir, env, vertex.Stdout(), vertex.Stderr()); err != nil {
				return err
			}
		}
		return nil
	}
}

func flattenEnv(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
