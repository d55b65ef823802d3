// Package scheduler runs periodic catalog backups on a cron schedule while the
// HTTP server is up.
package scheduler
