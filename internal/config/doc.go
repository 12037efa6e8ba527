// Package config defines the srmkit configuration file, the service
// endpoints, and the polling budgets read from the environment.
//
// [LoadFile] decodes a YAML file into [Config] and applies defaults. The rule
// is kept as a raw value so that a non-string rule reaches the provisioning
// layer, which rejects it before any remote call. [LoadTimeouts] reads the
// SRMKIT_* environment variables; [TestTimeouts] returns short values for
// tests.
package config
