// Package mongo provides a configured MongoDB client constructor with
// connection retries and a health check helper.
//
// The document store holds the site's contact_messages and settings
// collections. Connection parameters come from environment variables via
// the Config struct.
package mongo
