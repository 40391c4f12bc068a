// Package arquetipo exposes build metadata shared by the CLI and the
// mage targets.
package arquetipo

// Version is the current release of the arquetipo tool.
const Version = "v0.1.0"
