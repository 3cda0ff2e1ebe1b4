package utils

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

const pageExt = ".html"

// PageResolver maps request paths onto an allow-list of page files collected
// once from the public directory. Nothing outside the list is ever served.
type PageResolver struct {
	dir   string
	pages map[string]string // page name -> absolute file path
}

// NewPageResolver scans dir (top level only) for *.html files. A missing
// directory yields an empty resolver.
func NewPageResolver(dir string) (*PageResolver, error) {
	r := &PageResolver{dir: dir, pages: map[string]string{}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("scan public dir: %w", err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), pageExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), pageExt)
		r.pages[name] = filepath.Join(abs, e.Name())
	}
	return r, nil
}

// Resolve returns the file for a request path. "/" is index; "/admin" and
// "/admin.html" both resolve to admin.html.
func (r *PageResolver) Resolve(reqPath string) (string, bool) {
	p := strings.TrimPrefix(path.Clean("/"+reqPath), "/")
	if p == "" {
		p = "index"
	}
	if strings.Contains(p, "/") {
		return "", false
	}
	switch ext := path.Ext(p); ext {
	case "":
	case pageExt:
		p = strings.TrimSuffix(p, pageExt)
	default:
		return "", false
	}
	file, ok := r.pages[p]
	return file, ok
}

// Names lists the allow-listed page names, sorted.
func (r *PageResolver) Names() []string {
	names := make([]string, 0, len(r.pages))
	for n := range r.pages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
