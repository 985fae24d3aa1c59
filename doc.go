// Package main provides the entry point for the starfield blog service.
// It initializes and runs a web server using the Fiber framework that exposes
// a REST API for posts, notes, comments, guestbook entries, friend links,
// a music playlist and visit statistics. The application uses gorm for data
// persistence and ships client-side libraries for device-local preferences
// and optimistic API writes.
package main
