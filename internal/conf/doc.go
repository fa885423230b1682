// Package conf holds the viewer configuration.
//
// Every option can be given on the command line or through an environment
// variable named after the flag: "data_dir" is read from --data_dir or from
// LSSGAL_DATA_DIR. Command line values take precedence.
//
// Flags are registered at package level. ParseFlags must run once, from main,
// before any Value() is read; until then Value() returns the default.
package conf
