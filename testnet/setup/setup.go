// Package setup prepares a local beacon-chain testnet home: it scaffolds the
// directory, fetches the upstream default variables and writes the merged
// vars file the launch scripts source.
package setup

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pushchain/push-testnet/testnet/config"
	"github.com/pushchain/push-testnet/testnet/defaults"
	"github.com/pushchain/push-testnet/testnet/envfile"
	"github.com/pushchain/push-testnet/testnet/scaffold"
	"github.com/pushchain/push-testnet/testnet/types"
)

// Result describes what a run produced.
type Result struct {
	HomeDir     string
	VarsPath    string
	StagingPath string
	Keys        int
	Overridden  []string
	Missing     []string
}

// Runner ties the fetcher, synthesizer and scaffold together. It is not safe
// for concurrent use against the same home.
type Runner struct {
	cfg     config.Config
	fetcher defaults.Fetcher
	log     zerolog.Logger
}

// New returns a Runner. A nil fetcher falls back to an HTTP fetcher for
// cfg.DefaultsURL.
func New(cfg config.Config, fetcher defaults.Fetcher, log zerolog.Logger) *Runner {
	if fetcher == nil {
		fetcher = defaults.New(cfg.DefaultsURL, defaults.WithTimeout(cfg.FetchTimeout()))
	}
	if cfg.VarsFile == "" {
		cfg.VarsFile = types.DefaultVarsFile
	}
	if cfg.HomeDirName == "" {
		cfg.HomeDirName = types.DefaultHomeDirName
	}
	return &Runner{
		cfg:     cfg,
		fetcher: fetcher,
		log:     log.With().Str("component", "testnet_setup").Logger(),
	}
}

// Setup creates root/<home_dir_name>, enters it and writes the vars file there.
func (r *Runner) Setup(ctx context.Context, root string, p types.Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	home, err := scaffold.EnsureHome(root, r.cfg.HomeDirName)
	if err != nil {
		return Result{}, err
	}
	r.log.Info().Str("home", home).Msg("testnet home ready")

	res, err := r.CreateVarsEnv(ctx, home, p)
	if err != nil {
		return Result{}, err
	}
	res.HomeDir = home
	return res, nil
}

// CreateVarsEnv fetches the defaults, applies p and writes dir/<vars_file>.
// Nothing is written unless the whole merge succeeds.
func (r *Runner) CreateVarsEnv(ctx context.Context, dir string, p types.Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	raw, err := r.fetch(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{HomeDir: dir}
	if r.cfg.StagingFile != "" {
		res.StagingPath = filepath.Join(dir, r.cfg.StagingFile)
		if err := envfile.WriteRaw(res.StagingPath, raw); err != nil {
			return Result{}, err
		}
		r.log.Debug().Str("path", res.StagingPath).Msg("raw defaults staged")
	}

	base, err := envfile.Parse(raw)
	if err != nil {
		return Result{}, err
	}
	r.log.Info().Int("keys", base.Len()).Msg("parsed remote vars")

	merged, err := envfile.Merge(base, p)
	if err != nil {
		return Result{}, err
	}
	res.Keys = merged.Len()
	res.Missing = envfile.MissingOverrides(base)
	for _, k := range base.Keys() {
		if !types.IsOverridable(k) {
			continue
		}
		v, _ := merged.Get(k)
		r.log.Info().Str("key", k).Str("value", v).Msg("override applied")
		res.Overridden = append(res.Overridden, k)
	}
	for _, k := range res.Missing {
		r.log.Warn().Str("key", k).Msg("remote defaults do not define key, override skipped")
	}

	res.VarsPath = filepath.Join(dir, r.cfg.VarsFile)
	if err := envfile.Write(res.VarsPath, merged); err != nil {
		return Result{}, err
	}
	r.log.Info().Str("path", res.VarsPath).Int("keys", res.Keys).Msg("vars file written")
	return res, nil
}

// Render returns the merged vars file contents without touching disk.
func (r *Runner) Render(ctx context.Context, p types.Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	raw, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}
	m, err := envfile.Synthesize(raw, p)
	if err != nil {
		return nil, err
	}
	return m.Serialize(), nil
}

func (r *Runner) fetch(ctx context.Context) ([]byte, error) {
	r.log.Debug().Msg("fetching remote defaults")
	raw, err := r.fetcher.Fetch(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("fetch failed")
		return nil, err
	}
	r.log.Debug().Int("bytes", len(raw)).Msg("remote defaults fetched")
	return raw, nil
}
