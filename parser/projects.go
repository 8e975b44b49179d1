package parser

import (
	"path"
	"strings"
)

// pageLayerDir is the conventional directory holding per-page layout XML.
// Its parent names the project.
const pageLayerDir = "page"

// metadataBasenames are platform metadata files excluded from the layout
// candidates, matched case-insensitively.
var metadataBasenames = map[string]bool{
	"mets.xml":     true,
	"metadata.xml": true,
}

// GroupProjects groups candidate layout XML paths by project name. Platform
// metadata files and OS-generated hidden/resource files are excluded before
// grouping. Paths use forward slashes.
func GroupProjects(paths []string) map[string][]string {
	projects := make(map[string][]string)

	for _, p := range paths {
		if !strings.HasSuffix(p, ".xml") || IsMetadataFile(p) || IsHiddenFile(p) {
			continue
		}
		name := ProjectName(p)
		projects[name] = append(projects[name], p)
	}
	return projects
}

// IsMetadataFile reports whether the path names a platform metadata file.
func IsMetadataFile(p string) bool {
	return metadataBasenames[strings.ToLower(path.Base(p))]
}

// IsHiddenFile reports whether the path is an OS-generated hidden or
// resource-fork file (macOS archive artifacts and the like).
func IsHiddenFile(p string) bool {
	if strings.Contains(p, "__MACOSX") {
		return true
	}
	if strings.HasPrefix(path.Base(p), "._") {
		return true
	}
	// Hidden path segments, except for dotted XML files themselves.
	if strings.Contains(p, "/.") && !strings.HasSuffix(p, ".xml") {
		return true
	}
	return false
}

// ProjectName infers the logical project of a layout file: the parent of the
// page-layer directory when present, else the file's own parent directory,
// else the first path segment.
func ProjectName(p string) string {
	parts := strings.Split(p, "/")

	for i, part := range parts {
		if part == pageLayerDir && i > 0 {
			return parts[i-1]
		}
	}
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return parts[0]
}
