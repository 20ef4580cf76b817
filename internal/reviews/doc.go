// Package reviews holds the review list state and the controller that pages
// reviews in from a Provider.
//
// The controller is not safe for concurrent use. All methods must be called
// from one goroutine (the UI loop); only provider calls run elsewhere, and
// their results come back as values on a channel.
package reviews
