// Package project handles the dts.config.yaml manifest that drives index and
// export generation: the namespace identifier, reserved filenames, the root
// artifact's fixed reference list, and the corpus version. It provides YAML
// load/save plus JSON Schema and semver validation.
package project
