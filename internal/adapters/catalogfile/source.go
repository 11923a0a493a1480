// Package catalogfile reads action declarations from a YAML file through
// koanf:
//
//	namespace: [todo, "📝"]
//	actions:
//	  - name: ADD
//	  - name: UPDATE
//	    kind: fetch
//	  - name: UPLOAD
//	    kind: progress
//	    sub_stages: [attachment]
package catalogfile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/CodeJamboree/action-builder/internal/domain/catalog"
	"github.com/CodeJamboree/action-builder/internal/platform/logging"
	"github.com/CodeJamboree/action-builder/internal/ports"
)

var _ ports.CatalogSource = (*Source)(nil)

// SourceName identifies this source in logs and metrics.
const SourceName = "file"

type fileDTO struct {
	Namespace []string    `koanf:"namespace"`
	Actions   []actionDTO `koanf:"actions"`
}

type actionDTO struct {
	Name      string   `koanf:"name"`
	Kind      string   `koanf:"kind"`
	SubStages []string `koanf:"sub_stages"`
}

// Source loads a catalog.Spec from a YAML file.
type Source struct {
	path   string
	logger *slog.Logger
}

// New creates a Source for the file at path.
func New(path string, logger *slog.Logger) *Source {
	return &Source{path: path, logger: logging.OrDiscard(logger)}
}

// Name implements ports.CatalogSource.
func (s *Source) Name() string { return SourceName }

// Path returns the file the source reads.
func (s *Source) Path() string { return s.path }

// Load reads and translates the file. It never builds identifiers.
func (s *Source) Load(ctx context.Context) (catalog.Spec, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Spec{}, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(s.path), yaml.Parser()); err != nil {
		return catalog.Spec{}, fmt.Errorf("reading catalog file %s: %w", s.path, err)
	}

	var dto fileDTO
	if err := k.Unmarshal("", &dto); err != nil {
		return catalog.Spec{}, fmt.Errorf("decoding catalog file %s: %w", s.path, err)
	}

	return toSpec(dto), nil
}

// Watch calls onChange each time the file changes until ctx is done.
func (s *Source) Watch(ctx context.Context, onChange func(context.Context)) error {
	fp := file.Provider(s.path)

	err := fp.Watch(func(_ any, err error) {
		if err != nil {
			s.logger.WarnContext(ctx, "catalog file watch error",
				slog.String(logging.KeyOperation, "catalogfile.Watch"),
				slog.String("path", s.path),
				slog.Any(logging.KeyError, err),
			)
			return
		}
		s.logger.InfoContext(ctx, "catalog file changed", slog.String("path", s.path))
		onChange(ctx)
	})
	if err != nil {
		return fmt.Errorf("watching catalog file %s: %w", s.path, err)
	}

	go func() {
		<-ctx.Done()
		_ = fp.Unwatch()
	}()
	return nil
}

func toSpec(dto fileDTO) catalog.Spec {
	spec := catalog.Spec{
		Namespace: dto.Namespace,
		Actions:   make([]catalog.Declaration, len(dto.Actions)),
	}
	for i, a := range dto.Actions {
		spec.Actions[i] = catalog.Declaration{
			Name:      a.Name,
			Kind:      catalog.Kind(a.Kind),
			SubStages: a.SubStages,
		}
	}
	return spec
}
