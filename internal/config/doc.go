// Package config manages user-level settings stored at ~/.galaxy/config.yaml,
// such as an on-disk registry override, a forced package manager, and strict
// copy mode. Every key can also be set through a GALAXY_ environment variable.
package config
