// Package clikit is a terminal support library. Its core is a registry of
// concurrently updatable progress bars, addressed by integer handles, which
// render single overwritten lines to a shared output.
//
// Logging, message templates, argument scanning, prompts and configuration
// live in the logger, templates, args, prompt and config subpackages.
package clikit

// Version of the library.
const Version = "0.1.0"
