package platform

import "strings"

const (
	fileScheme    = "file://"
	contentScheme = "content://"
)

// Uri is an opaque reference to content on the host. Two forms exist:
// provider-backed ("content://authority/path", cross-application safe) and
// raw file ("file:///path", only usable inside the host application or on
// legacy platform levels). The zero value means "no reference".
type Uri string

// FileUri builds a raw file URI from an absolute filesystem path.
func FileUri(path string) Uri {
	return Uri(fileScheme + path)
}

// ContentUri builds a provider-backed URI from an authority and a relative
// path. Leading slashes on relPath are tolerated.
func ContentUri(authority, relPath string) Uri {
	return Uri(contentScheme + authority + "/" + strings.TrimPrefix(relPath, "/"))
}

// IsZero reports whether u carries no reference at all.
func (u Uri) IsZero() bool { return u == "" }

// IsContent reports whether u is provider-backed.
func (u Uri) IsContent() bool { return strings.HasPrefix(string(u), contentScheme) }

// IsFile reports whether u is a raw file URI.
func (u Uri) IsFile() bool { return strings.HasPrefix(string(u), fileScheme) }

// FilePath returns the filesystem path of a raw file URI, or "" when u is
// not a file URI.
func (u Uri) FilePath() string {
	if !u.IsFile() {
		return ""
	}
	return strings.TrimPrefix(string(u), fileScheme)
}

// ContentPath splits a provider-backed URI into authority and relative path.
// Both are "" when u is not provider-backed.
func (u Uri) ContentPath() (authority, relPath string) {
	if !u.IsContent() {
		return "", ""
	}
	rest := strings.TrimPrefix(string(u), contentScheme)
	authority, relPath, _ = strings.Cut(rest, "/")
	return authority, relPath
}

func (u Uri) String() string { return string(u) }
