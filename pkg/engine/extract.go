package engine

import (
	"regexp"
	"sort"
	"strings"
)

// Well-known record fields mapped straight to entity kinds, checked before
// the pattern pass so structured sources keep their own typing.
var fieldEntityKinds = map[string]string{
	"src_ip":    "ip",
	"dst_ip":    "ip",
	"ip":        "ip",
	"hostname":  "hostname",
	"host":      "hostname",
	"user":      "user",
	"username":  "user",
	"account":   "user",
	"domain":    "domain",
	"file_hash": "hash",
	"md5":       "hash",
	"sha1":      "hash",
	"sha256":    "hash",
}

var (
	ipv4Pattern = regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\b`)
	// MD5, SHA-1, and SHA-256 digests.
	hashPattern = regexp.MustCompile(`\b(?:[a-fA-F0-9]{64}|[a-fA-F0-9]{40}|[a-fA-F0-9]{32})\b`)
	// At least two labels; the TLD label must contain a letter so dotted
	// numerics (matched as IPs above) never qualify.
	domainPattern = regexp.MustCompile(`\b[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*\.[a-zA-Z][a-zA-Z0-9-]{1,61}\b`)
)

// fileExtensions keeps common executable and document suffixes out of the
// domain matches.
var fileExtensions = map[string]bool{
	"exe": true, "dll": true, "sys": true, "bat": true, "ps1": true,
	"sh": true, "log": true, "txt": true, "tmp": true, "zip": true,
	"doc": true, "docx": true, "pdf": true, "js": true, "vbs": true,
}

// ExtractEntities pulls typed entities out of a flat record. Typed fields
// win; free-text string values get a pattern pass for IPs, hashes, and
// domains. Values are deduplicated and sorted per kind.
func ExtractEntities(fields map[string]any) map[string][]string {
	found := make(map[string]map[string]bool)
	add := func(kind, value string) {
		if value == "" {
			return
		}
		if found[kind] == nil {
			found[kind] = make(map[string]bool)
		}
		found[kind][value] = true
	}

	for field, raw := range fields {
		value, ok := raw.(string)
		if !ok || value == "" {
			continue
		}
		if kind, typed := fieldEntityKinds[strings.ToLower(field)]; typed {
			if kind == "hash" {
				value = strings.ToLower(value)
			}
			add(kind, value)
			continue
		}
		for _, ip := range ipv4Pattern.FindAllString(value, -1) {
			add("ip", ip)
		}
		for _, h := range hashPattern.FindAllString(value, -1) {
			add("hash", strings.ToLower(h))
		}
		for _, d := range domainPattern.FindAllString(value, -1) {
			d = strings.ToLower(d)
			if fileExtensions[d[strings.LastIndex(d, ".")+1:]] {
				continue // filename, not a domain
			}
			add("domain", d)
		}
	}

	if len(found) == 0 {
		return nil
	}
	out := make(map[string][]string, len(found))
	for kind, values := range found {
		list := make([]string, 0, len(values))
		for v := range values {
			list = append(list, v)
		}
		sort.Strings(list)
		out[kind] = list
	}
	return out
}

// MergeEntities folds src into dst, deduplicating values per kind.
func MergeEntities(dst, src map[string][]string) map[string][]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string][]string, len(src))
	}
	for kind, values := range src {
		seen := make(map[string]bool, len(dst[kind])+len(values))
		for _, v := range dst[kind] {
			seen[v] = true
		}
		for _, v := range values {
			if !seen[v] {
				seen[v] = true
				dst[kind] = append(dst[kind], v)
			}
		}
		sort.Strings(dst[kind])
	}
	return dst
}
