// Package pathlabconfig loads pathlab's run configuration from defaults, an
// optional YAML file, and environment variables (PATHLAB_ prefixed), using
// github.com/knadh/koanf/v2. Precedence, lowest to highest: defaults, config
// file, environment.
package pathlabconfig
