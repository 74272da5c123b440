package version

// VERSION is set at build time with -ldflags "-X .../version.VERSION=v1.2.3"
var VERSION = "dev"

// IsDevelopment reports whether this is an unreleased build
func IsDevelopment() bool {
	return VERSION == "" || VERSION == "dev"
}
