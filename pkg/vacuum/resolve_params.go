package vacuum

import (
	"fmt"
)

// resolveParams fills every unset parameter from the configuration.
// A non-nil Ignore list replaces the configured one, it is never merged.
func (v *realVacuum) resolveParams(params RunParams) (RunParams, error) {
	cfg, err := v.deps.Config.GetConfigWithFallback()
	if err != nil {
		return params, fmt.Errorf("failed to load configuration: %w", err)
	}

	if params.Root == "" {
		params.Root = cfg.Root
	}
	if params.Extensions == nil {
		params.Extensions = cfg.Extensions
	}
	if params.ExcludeDirs == nil {
		params.ExcludeDirs = cfg.ExcludeDirs
	}
	if params.Ignore == nil {
		params.Ignore = cfg.Ignore
	}
	if params.Workers == 0 {
		params.Workers = cfg.EffectiveWorkers()
	}

	return params, nil
}
