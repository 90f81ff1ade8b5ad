package plugin

import (
	"context"
	"encoding/json"
	"path/filepath"

	"go.trai.ch/tapresolver/internal/adapters/shell"
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request kinds.
const (
	KindContent = "content"
	KindWeb     = "web"
)

// EnvKegRoot is set for every executable plugin invocation.
const EnvKegRoot = "TAPRESOLVER_KEG_ROOT"

// Request is the JSON document written to the plugin's stdin.
type Request struct {
	Kind        string            `json:"kind"`
	ContentType string            `json:"contentType,omitempty"`
	Match       []string          `json:"match,omitempty"`
	Source      string            `json:"source,omitempty"`
	CurrentFile string            `json:"currentFile,omitempty"`
	Aliases     map[string]string `json:"aliases"`
	BasePath    string            `json:"basePath,omitempty"`
	Tap         bool              `json:"tap"`
	Extensions  []string          `json:"extensions,omitempty"`
}

// Response is the JSON document read from the plugin's stdout.
// An empty Path selects the built-in result.
type Response struct {
	Path string `json:"path"`
}

// Executable is a resolver plugin backed by an executable file.
type Executable struct {
	path    string
	kegRoot string
	runner  *shell.Runner
	logger  ports.Logger
}

// Name returns the executable's file name.
func (e *Executable) Name() string {
	return filepath.Base(e.path)
}

// NewContentResolver returns a resolver running the executable once per match.
// Failures are logged and answered by req.Fallback.
func (e *Executable) NewContentResolver(req ports.ContentResolverRequest) (domain.MatchResolver, error) {
	if req.Fallback == nil {
		return nil, zerr.With(domain.ErrValidation, "field", "fallback")
	}

	return func(match []string) string {
		path, err := e.call(Request{
			Kind:        KindContent,
			ContentType: req.ContentType,
			Match:       match,
			Aliases:     req.Aliases,
			BasePath:    req.Content.BasePath,
			Tap:         req.Content.Tap,
			Extensions:  req.Content.Extensions,
		})
		if err != nil {
			e.logger.Warn(zerr.Wrap(err, domain.ErrTapOverride.Error()).Error())
			return req.Fallback(match)
		}
		if path == "" {
			return req.Fallback(match)
		}
		return path
	}, nil
}

// ResolvePath asks the executable to rewrite source. Failures and empty
// answers leave source unchanged.
func (e *Executable) ResolvePath(source, currentFile string, aliases domain.AliasSet) string {
	path, err := e.call(Request{
		Kind:        KindWeb,
		Source:      source,
		CurrentFile: currentFile,
		Aliases:     aliases.Static,
	})
	if err != nil {
		e.logger.Warn(zerr.Wrap(err, domain.ErrTapOverride.Error()).Error())
		return source
	}
	if path == "" {
		return source
	}
	return path
}

func (e *Executable) call(req Request) (string, error) {
	input, err := json.Marshal(req)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrPluginFailed.Error())
	}

	out, err := e.runner.Run(context.Background(), e.path, e.kegRoot, map[string]string{EnvKegRoot: e.kegRoot}, input)
	if err != nil {
		return "", err
	}

	var resp Response
	if err := json.Unmarshal(out, &resp); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPluginFailed.Error()), "plugin", e.path)
	}
	return resp.Path, nil
}
