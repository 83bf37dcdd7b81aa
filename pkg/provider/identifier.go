package provider

import "strings"

// ExtractPublicIdentifier pulls the profile slug out of a profile URL: the
// path component after "/in/" or "/company/", trimmed of trailing slashes
// and any query or fragment. Returns "" when the URL carries neither marker.
//
//	https://www.linkedin.com/in/jane-doe-1/  ->  jane-doe-1
func ExtractPublicIdentifier(rawURL string) string {
	for _, marker := range []string{"/in/", "/company/"} {
		idx := strings.Index(rawURL, marker)
		if idx < 0 {
			continue
		}
		rest := rawURL[idx+len(marker):]
		if cut := strings.IndexAny(rest, "?#"); cut >= 0 {
			rest = rest[:cut]
		}
		rest = strings.Trim(rest, "/")
		// A slug never contains a slash; keep only the first component.
		if slash := strings.Index(rest, "/"); slash >= 0 {
			rest = rest[:slash]
		}
		if rest != "" {
			return rest
		}
	}
	return ""
}
