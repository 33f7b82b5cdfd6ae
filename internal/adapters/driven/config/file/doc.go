// Package file implements the ConfigStore port on top of a TOML file.
// Configuration lives in ~/.deltags/config.toml by default and carries
// persistent preferences such as the default parser backend.
package file
