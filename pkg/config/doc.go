// Package config loads pkghelper's settings.
//
// Layers, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the config file: --config, or $XDG_CONFIG_HOME/pkghelper/config.toml
//  3. PKGHELPER_<SECTION>_<KEY> environment variables
//  4. command-line overrides
//
// The first underscore after the prefix separates section from key, so
// PKGHELPER_OVERLAY_HOOKS_DIR sets overlay.hooks_dir.
package config
