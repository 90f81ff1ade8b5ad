package resolver

import (
	"context"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// BuildAssets indexes the asset files of the base and the active tap by their
// slash separated path below the assets directory, without extension. Tap
// assets replace base assets of the same name. Missing directories are empty.
func BuildAssets(ctx context.Context, c *domain.BuildConstants, walker ports.FileWalker) (map[string]string, error) {
	roots := []string{filepath.Join(c.BasePath, domain.AssetsPath)}
	if c.HasTap && c.TapPath != c.BasePath {
		roots = append(roots, filepath.Join(c.TapPath, domain.AssetsPath))
	}

	found := make([]map[string]string, len(roots))
	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			assets, err := collectAssets(ctx, walker, root)
			if err != nil {
				return err
			}
			found[i] = assets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(map[string]string)
	for _, assets := range found {
		maps.Copy(result, assets)
	}
	return result, nil
}

func collectAssets(ctx context.Context, walker ports.FileWalker, root string) (map[string]string, error) {
	extensions := domain.AssetExtensions()
	assets := make(map[string]string)

	for path, err := range walker.WalkFiles(root) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetWalkFailed.Error()), "dir", root)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		ext := filepath.Ext(path)
		if !slices.Contains(extensions, strings.ToLower(ext)) {
			continue
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetWalkFailed.Error()), "path", path)
		}
		assets[filepath.ToSlash(strings.TrimSuffix(rel, ext))] = path
	}

	return assets, nil
}
