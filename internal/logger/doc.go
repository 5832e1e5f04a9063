// Package logger wraps zap for the vault binaries:
//   - a global sugared logger with console or JSON output,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and runtime configuration from settings,
//   - ctx-first helpers (Info, InfoKV, ErrorKV, ...).
//
// Services put a named logger into the context once and every layer below
// logs through it.
package logger
