package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StageHasher = (*Hasher)(nil)

// Hasher computes stage cache keys from stage definitions and input files.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeStageKey computes a single hash representing the stage definition,
// its environment and the content of its input files. Missing required
// inputs are an error; missing optional inputs contribute an absence marker,
// so a lockfile appearing later still invalidates the layer.
func (h *Hasher) ComputeStageKey(stage *domain.Stage, root string) (string, error) {
	hasher := xxhash.New()

	h.hashStageDefinition(stage, hasher)
	h.hashEnvironment(stage.Environment, hasher)

	for _, input := range stage.Inputs {
		if err := h.hashInputPath(root, input.String(), stage.Ignores, hasher); err != nil {
			return "", err
		}
	}

	for _, input := range stage.OptionalInputs {
		path := filepath.Join(root, input.String())
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				_, _ = hasher.WriteString(input.String())
				_, _ = hasher.Write([]byte{0, 'A'})
				continue
			}
			return "", zerr.With(zerr.Wrap(err, "failed to stat optional input"), "path", path)
		}
		_, _ = hasher.Write([]byte{'P'})
		if err := h.hashInputPath(root, input.String(), stage.Ignores, hasher); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashStageDefinition(stage *domain.Stage, hasher *xxhash.Digest) {
	_, _ = hasher.WriteString(stage.Name.String())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(string(stage.Kind))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(stage.WorkingDir)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(stage.AssembleTo)
	_, _ = hasher.Write([]byte{0})

	for _, ignore := range stage.Ignores {
		_, _ = hasher.WriteString(ignore)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	for _, dir := range stage.Dirs {
		_, _ = hasher.WriteString(dir.Path)
		_, _ = hasher.Write([]byte{0})
		_ = binary.Write(hasher, binary.LittleEndian, dir.Mode)
	}
	_, _ = hasher.Write([]byte{0})

	for _, step := range stage.Steps {
		for _, arg := range step.Command {
			_, _ = hasher.WriteString(arg)
			_, _ = hasher.Write([]byte{0})
		}
		h.hashEnvironment(step.Environment, hasher)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

// hashEnvironment hashes environment variables in a deterministic order.
func (h *Hasher) hashEnvironment(env map[string]string, hasher *xxhash.Digest) {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(env[k])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

// hashInputPath hashes a file or, for directories, every contained file.
// Labels written into the digest are root-relative so that the same tree
// checked out elsewhere yields the same key.
func (h *Hasher) hashInputPath(root, rel string, ignores []string, hasher *xxhash.Digest) error {
	path := filepath.Join(root, rel)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zerr.With(domain.ErrInputMissing, "path", path)
		}
		return zerr.With(zerr.Wrap(err, "failed to stat input"), "path", path)
	}

	if info.IsDir() {
		for filePath := range h.walker.WalkFiles(path, ignores) {
			label, err := filepath.Rel(root, filePath)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to relativize input"), "path", filePath)
			}
			if err := h.hashFile(filePath, label, hasher); err != nil {
				return err
			}
		}
		return nil
	}
	return h.hashFile(path, rel, hasher)
}

func (h *Hasher) hashFile(path, label string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(label))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
