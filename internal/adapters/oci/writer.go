// Package oci emits the built image's configuration as an OCI image config.
package oci

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer serializes the result of a build as an OCI image configuration so
// downstream tooling can consume the layer chain and entry point.
type Writer struct {
	Path string
}

// NewWriter creates a Writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{Path: path}
}

// Write emits the image config for a completed build. The layer records must
// be in chain order; their digests become the rootfs diff-ID chain.
func (w *Writer) Write(bp *domain.Blueprint, layers []domain.LayerInfo) error {
	img := w.imageConfig(bp, layers)

	data, err := json.MarshalIndent(img, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal image config")
	}

	if err := os.MkdirAll(filepath.Dir(w.Path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for image config")
	}

	//nolint:gosec // Path is provided by trusted caller
	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write image config"), "path", w.Path)
	}
	return nil
}

func (w *Writer) imageConfig(bp *domain.Blueprint, layers []domain.LayerInfo) ocispec.Image {
	env := make([]string, 0, len(bp.Launch.Env))
	for k, v := range bp.Launch.Env {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)

	diffIDs := make([]digest.Digest, 0, len(layers))
	history := make([]ocispec.History, 0, len(layers))
	now := time.Now().UTC()
	for _, l := range layers {
		diffIDs = append(diffIDs, digest.Digest(l.Digest))
		created := l.Timestamp
		if created.IsZero() {
			created = now
		}
		history = append(history, ocispec.History{
			Created:   &created,
			CreatedBy: "kiln stage " + l.StageName,
		})
	}

	return ocispec.Image{
		Platform: ocispec.Platform{
			Architecture: runtime.GOARCH,
			OS:           "linux",
		},
		Created: &now,
		Config: ocispec.ImageConfig{
			Env:        env,
			Entrypoint: bp.Launch.Command(nil),
			WorkingDir: "/app",
			ExposedPorts: map[string]struct{}{
				fmt.Sprintf("%d/tcp", bp.Launch.ExposePort): {},
			},
		},
		RootFS: ocispec.RootFS{
			Type:    "layers",
			DiffIDs: diffIDs,
		},
		History: history,
	}
}
