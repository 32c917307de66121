package app_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/launch"
	"go.trai.ch/kiln/internal/engine/runner"
	"go.uber.org/mock/gomock"
)

type appTestMocks struct {
	loader   *mocks.MockBlueprintLoader
	executor *mocks.MockExecutor
	hasher   *mocks.MockStageHasher
	store    *mocks.MockLayerStore
	preparer *mocks.MockDirPreparer
	logger   *mocks.MockLogger
}

type discardCopier struct{}

func (discardCopier) CopyTree(context.Context, string, string, []string) error { return nil }

func setupAppTest(t *testing.T) (*app.App, appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		loader:   mocks.NewMockBlueprintLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		hasher:   mocks.NewMockStageHasher(ctrl),
		store:    mocks.NewMockLayerStore(ctrl),
		preparer: mocks.NewMockDirPreparer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	r := runner.NewRunner(m.executor, m.hasher, m.store, m.preparer, discardCopier{}, telemetry.NewNoOp(), m.logger)
	l := launch.NewLauncher(m.executor, m.logger)
	return app.New(m.loader, r, l, m.logger), m
}

func appBlueprint() *domain.Blueprint {
	return &domain.Blueprint{
		BaseImage:      "python:3.12-slim",
		SystemPackages: []string{"build-essential", "curl", "git"},
		NodeSetupURL:   "https://deb.nodesource.com/setup_20.x",
		Backend: domain.BackendSpec{
			Manifest: "pyproject.toml",
			Lockfile: "uv.lock",
			Entry:    "main.py",
			EnvRoot:  ".venv",
		},
		Frontend: domain.FrontendSpec{
			Dir:      "frontend",
			Manifest: "package.json",
			Lockfile: "package-lock.json",
		},
		UploadDir:     "uploaded_files",
		UploadDirMode: 0o755,
		Launch: domain.LaunchSpec{
			Interpreter: ".venv/bin/python",
			Script:      "main.py",
			Host:        "0.0.0.0",
			Port:        "3456",
			ExposePort:  3456,
			Env: map[string]string{
				"HOST":             "0.0.0.0",
				"PORT":             "3456",
				"PYTHONUNBUFFERED": "1",
			},
		},
	}
}

func scaffoldAppProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range map[string]string{
		"pyproject.toml":             "[project]\nname = \"demo\"\n",
		"uv.lock":                    "version = 1\n",
		"frontend/package.json":      "{}\n",
		"frontend/package-lock.json": "{}\n",
	} {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func TestApp_BuildSuccess(t *testing.T) {
	a, m := setupAppTest(t)
	root := scaffoldAppProject(t)

	m.loader.EXPECT().Load(root).Return(appBlueprint(), nil)
	m.hasher.EXPECT().ComputeStageKey(gomock.Any(), root).Return("key", nil).Times(5)
	m.store.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(5)
	m.store.EXPECT().Put(gomock.Any()).Return(nil).Times(5)
	m.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	m.preparer.EXPECT().Prepare(filepath.Join(root, "uploaded_files"), gomock.Any()).Return(nil)

	require.NoError(t, a.Build(context.Background(), root, false))

	// A successful build leaves the image config behind.
	_, err := os.Stat(filepath.Join(root, ".kiln", "image.json"))
	require.NoError(t, err)
}

func TestApp_BuildConfigLoadError(t *testing.T) {
	a, m := setupAppTest(t)

	m.loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("yaml parse error"))

	err := a.Build(context.Background(), t.TempDir(), false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_BuildStageFailure(t *testing.T) {
	a, m := setupAppTest(t)
	root := scaffoldAppProject(t)

	m.loader.EXPECT().Load(root).Return(appBlueprint(), nil)
	m.hasher.EXPECT().ComputeStageKey(gomock.Any(), root).Return("key", nil)
	m.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	m.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("apt-get failed"))
	m.logger.EXPECT().Error(gomock.Any())

	err := a.Build(context.Background(), root, false)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
}

func TestApp_Launch(t *testing.T) {
	a, m := setupAppTest(t)
	root := t.TempDir()

	m.loader.EXPECT().Load(root).Return(appBlueprint(), nil)
	m.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), root, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, step *domain.Step, _ string, _ []string, _, _ io.Writer) error {
			require.Equal(t, ".venv/bin/python", step.Command[0])
			return nil
		})

	require.NoError(t, a.Launch(context.Background(), root))
}

func TestApp_Export(t *testing.T) {
	a, m := setupAppTest(t)
	root := scaffoldAppProject(t)

	m.loader.EXPECT().Load(root).Return(appBlueprint(), nil)

	var sb strings.Builder
	require.NoError(t, a.Export(&sb, root))
	require.Contains(t, sb.String(), "FROM python:3.12-slim")
	require.Contains(t, sb.String(), "npm ci --omit=dev --legacy-peer-deps")
}

func TestApp_ExportWithoutFrontendLock(t *testing.T) {
	a, m := setupAppTest(t)
	root := scaffoldAppProject(t)
	require.NoError(t, os.Remove(filepath.Join(root, "frontend", "package-lock.json")))

	m.loader.EXPECT().Load(root).Return(appBlueprint(), nil)

	var sb strings.Builder
	require.NoError(t, a.Export(&sb, root))
	require.Contains(t, sb.String(), "npm install --omit=dev --legacy-peer-deps")
}
