// Package platform provides filesystem helpers shared by the installer and the
// config store: whole-file writes that never leave a partially written target
// behind.
package platform
