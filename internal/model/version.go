package model

// VersionKind identifies the kind of file a version pattern applies to.
type VersionKind string

const (
	// VersionChangelog is a History/CHANGELOG file with "=== V (DATE)" stanzas.
	VersionChangelog VersionKind = "changelog"
	// VersionPom is a Maven build descriptor.
	VersionPom VersionKind = "pom"
	// VersionRuby is a Ruby VERSION constant in version.rb or base.rb.
	VersionRuby VersionKind = "rb"
	// VersionGo is a Go Version constant in version.go.
	VersionGo VersionKind = "go"
	// VersionInit is an init script pinning a gem version.
	VersionInit VersionKind = "init"
	// VersionGemspec is a gemspec whose local dependencies may be adjusted.
	VersionGemspec VersionKind = "gemspec"
)
