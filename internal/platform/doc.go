// Package platform contains integration glue between the app and the outside
// world: inbound share-link parsing and status-channel URL derivation.
package platform
