// Package notifier provides notification interfaces and implementations for
// newly published seminars.
//
// The notifier package supports posting seminar announcements to various
// platforms including Twitter. It handles OAuth authentication, rate limiting,
// and message formatting for different notification channels.
package notifier
