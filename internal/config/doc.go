// Package config provides configuration loading, merging, and validation
// for the Last Words API.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Variables of the former web deployment (DATABASE_URL, NEXTAUTH_SECRET,
// JWT_SECRET, NODE_ENV, npm_package_version) are honoured as fallbacks.
// The entry point is [GetStructuredConfig].
package config
