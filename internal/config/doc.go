// Package config provides configuration loading, merging, and validation
// for the sync agent.
//
// Configuration is assembled from multiple sources:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// Sources are merged with mergo in that order; a field set by an earlier
// source is never overwritten by a later one, so defaults only fill gaps.
//
// The main entry points are [GetStructuredConfig] for the raw merged view and
// [GetClientConfig] for the validated runtime view consumed by the agent.
package config
