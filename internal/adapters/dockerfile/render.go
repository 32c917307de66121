// Package dockerfile renders a blueprint as an equivalent container build file.
package dockerfile

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Template is the container build file equivalent of the fixed stage chain.
// Dependency manifests are copied before the rest of the source so that
// source-only edits keep the dependency layers cached.
const Template = `FROM {{.Base}}

RUN apt-get update && apt-get install -y {{.SystemPackages}} \
    && curl -fsSL {{.NodeSetup}} | bash - \
    && apt-get install -y nodejs \
    && apt-get clean && rm -rf /var/lib/apt/lists/*

WORKDIR /app

COPY {{.BackendManifest}} {{.BackendLockfile}} ./
RUN pip install uv \
    && uv venv {{.Venv}} \
    && uv sync --locked

WORKDIR /app/{{.FrontendDir}}
COPY {{.FrontendDir}}/{{.FrontendManifest}} ./
{{if .FrontendLockfile -}}
COPY {{.FrontendDir}}/{{.FrontendLockfile}} ./
RUN npm ci --omit=dev --legacy-peer-deps
{{else -}}
RUN npm install --omit=dev --legacy-peer-deps
{{end -}}

WORKDIR /app
COPY . .

RUN mkdir -p {{.UploadDir}} && chmod {{.UploadMode}} {{.UploadDir}}

EXPOSE {{.Expose}}
{{range .Env -}}
ENV {{.}}
{{end -}}

CMD [{{.Command}}]
`

type renderData struct {
	Base             string
	SystemPackages   string
	NodeSetup        string
	BackendManifest  string
	BackendLockfile  string
	Venv             string
	FrontendDir      string
	FrontendManifest string
	FrontendLockfile string
	UploadDir        string
	UploadMode       string
	Expose           int
	Env              []string
	Command          string
}

// Render writes the container build file for the given blueprint.
// The output is deterministic for a fixed blueprint.
func Render(w io.Writer, bp *domain.Blueprint, frontendLockPresent bool) error {
	tmpl, err := template.New("dockerfile").Parse(Template)
	if err != nil {
		return zerr.Wrap(err, "failed to parse dockerfile template")
	}

	env := make([]string, 0, len(bp.Launch.Env))
	for k, v := range bp.Launch.Env {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)

	cmd := bp.Launch.Command(nil)
	quoted := make([]string, len(cmd))
	for i, c := range cmd {
		quoted[i] = `"` + c + `"`
	}

	data := renderData{
		Base:             bp.BaseImage,
		SystemPackages:   strings.Join(bp.SystemPackages, " "),
		NodeSetup:        bp.NodeSetupURL,
		BackendManifest:  bp.Backend.Manifest,
		BackendLockfile:  bp.Backend.Lockfile,
		Venv:             bp.Backend.EnvRoot,
		FrontendDir:      bp.Frontend.Dir,
		FrontendManifest: bp.Frontend.Manifest,
		UploadDir:        bp.UploadDir,
		UploadMode:       octal(bp.UploadDirMode),
		Expose:           bp.Launch.ExposePort,
		Env:              env,
		Command:          strings.Join(quoted, ", "),
	}
	if frontendLockPresent {
		data.FrontendLockfile = bp.Frontend.Lockfile
	}

	if err := tmpl.Execute(w, data); err != nil {
		return zerr.Wrap(err, "failed to render dockerfile")
	}
	return nil
}

func octal(mode uint32) string {
	return strconv.FormatUint(uint64(mode), 8)
}
