// Package patterns provides the built-in pattern rules for the genart
// engine. Each rule implements genart.Generator with its own set of
// named shape parameters, read from Config.Params with sensible
// defaults; unknown keys are ignored.
//
// Rules are pure functions of the configuration: the same Config
// always composes the same scene. Use Lookup to resolve a rule by the
// name reported by its Name method.
package patterns
