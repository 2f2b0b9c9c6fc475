package app

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"

	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/module/activity"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

const (
	templateRoot = "templates"
	layoutsGlob  = templateRoot + "/layouts/*.html"
	partialsGlob = templateRoot + "/partials/*.html"
)

// TemplateRenderer renders the page templates under templates/. Every page
// is compiled on top of its own copy of the layouts and partials, so pages
// can redefine the "title" and "content" blocks of the base layout without
// clashing. Pages are looked up by their path relative to templates/, for
// example "student/list.html".
//
// With reload set, the whole tree is parsed again on every render.
type TemplateRenderer struct {
	fs       fs.FS
	funcs    template.FuncMap
	reload   bool
	compiled map[string]*template.Template
}

var _ render.HTMLRender = (*TemplateRenderer)(nil)

// NewTemplateRenderer parses the templates in fsys. With reload set,
// parsing is deferred to each render so edits on disk show up at once.
func NewTemplateRenderer(fsys fs.FS, reload bool) (*TemplateRenderer, error) {
	r := &TemplateRenderer{fs: fsys, funcs: templateFuncMap(), reload: reload}
	if reload {
		return r, nil
	}

	compiled, err := r.compile()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.compiled = compiled
	return r, nil
}

// Instance implements render.HTMLRender.
func (r *TemplateRenderer) Instance(name string, data any) render.Render {
	compiled := r.compiled
	if r.reload {
		var err error
		if compiled, err = r.compile(); err != nil {
			return &HTMLInstance{Name: name, err: err}
		}
	}
	return &HTMLInstance{Template: compiled[name], Name: name, Data: data}
}

// compile returns one template set per page, keyed by page name.
func (r *TemplateRenderer) compile() (map[string]*template.Template, error) {
	base, err := r.parseBase()
	if err != nil {
		return nil, err
	}

	pages, err := r.pageFiles()
	if err != nil {
		return nil, fmt.Errorf("discover pages: %w", err)
	}

	out := make(map[string]*template.Template, len(pages))
	for _, file := range pages {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", file, err)
		}
		name := strings.TrimPrefix(file, templateRoot+"/")
		if err := parseFile(r.fs, set.New(name), file); err != nil {
			return nil, err
		}
		out[name] = set
	}
	return out, nil
}

// parseBase parses the layouts and partials shared by every page.
func (r *TemplateRenderer) parseBase() (*template.Template, error) {
	base := template.New("").Funcs(r.funcs)
	for _, pattern := range []string{layoutsGlob, partialsGlob} {
		files, err := fs.Glob(r.fs, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, file := range files {
			if err := parseFile(r.fs, base.New(file), file); err != nil {
				return nil, err
			}
		}
	}
	return base, nil
}

// pageFiles lists every .html file under templates/ outside layouts/ and partials/.
func (r *TemplateRenderer) pageFiles() ([]string, error) {
	var pages []string
	err := fs.WalkDir(r.fs, templateRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch p {
			case templateRoot + "/layouts", templateRoot + "/partials":
				return fs.SkipDir
			}
			return nil
		}
		if path.Ext(p) == ".html" {
			pages = append(pages, p)
		}
		return nil
	})
	return pages, err
}

func parseFile(fsys fs.FS, t *template.Template, file string) error {
	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	if _, err := t.Parse(string(content)); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}
	return nil
}

// pager is implemented by *listing.Page of any item type.
type pager interface {
	State() listing.State
	Resize(size int) listing.State
}

func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		// pageURL links page index of the view rendered as p.
		"pageURL": func(base string, p pager, index int) string {
			s := p.State()
			s.PageIndex = index
			return pkg.ListURL(base, s)
		},
		// sizeURL switches the view to size rows per page, staying on the
		// current page when it still exists.
		"sizeURL": func(base string, p pager, size int) string {
			return pkg.ListURL(base, p.Resize(size))
		},
		"percent": func(v float64) string {
			return fmt.Sprintf("%.0f%%", v)
		},
		"clock": activity.ShortClock,
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Local().Format("02/01/2006 15:04")
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}

// HTMLInstance executes one page template.
type HTMLInstance struct {
	Template *template.Template
	Name     string
	Data     any
	err      error
}

const htmlContentType = "text/html; charset=utf-8"

// Render implements render.Render.
func (h *HTMLInstance) Render(w http.ResponseWriter) error {
	h.WriteContentType(w)
	if h.err != nil {
		return h.err
	}
	if h.Template == nil {
		return fmt.Errorf("template %q not found", h.Name)
	}
	return h.Template.ExecuteTemplate(w, h.Name, h.Data)
}

// WriteContentType implements render.Render.
func (h *HTMLInstance) WriteContentType(w http.ResponseWriter) {
	if len(w.Header()["Content-Type"]) == 0 {
		w.Header()["Content-Type"] = []string{htmlContentType}
	}
}
