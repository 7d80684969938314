// Package file provides file-backed stores under the rapor config
// directory: TOML application configuration, the JSON report-type
// catalog, the JSON feedback log with its derived insights, and
// user-editable prompt templates.
package file
