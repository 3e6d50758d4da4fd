// Package site serves the portfolio over HTTP: the page shell, one fragment
// per content section, the contact form and a small admin area.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/sanity"
	"github.com/Zachkp/portfolio/internal/sections"
	"github.com/Zachkp/portfolio/internal/store"
)

// Deps are the collaborators a Server needs. Mailer and Log are optional.
type Deps struct {
	Config  config.Config
	Fetcher sanity.Fetcher
	Store   *store.Store
	Mailer  Mailer
	Log     *zap.Logger
}

type Server struct {
	cfg     config.Config
	fetcher sanity.Fetcher
	store   *store.Store
	mailer  Mailer
	log     *zap.Logger
	loader  *sections.Loader
	auth    *adminAuth
	tracker *visitTracker
	engine  *gin.Engine
}

func New(d Deps) (*Server, error) {
	if d.Fetcher == nil || d.Store == nil {
		return nil, errors.New("site: fetcher and store are required")
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Mailer == nil {
		d.Mailer = NewSMTPMailer(d.Config.SMTP)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     d.Config,
		fetcher: d.Fetcher,
		store:   d.Store,
		mailer:  d.Mailer,
		log:     d.Log,
		loader:  sections.NewLoader(d.Fetcher, d.Log, fetchRecorder{store: d.Store, log: d.Log}),
		auth: &adminAuth{
			token:    randomHex(32),
			username: d.Config.Admin.Username,
			password: d.Config.Admin.Password,
			secure:   d.Config.Release(),
		},
		tracker: &visitTracker{store: d.Store, hasher: newIPHasher(), log: d.Log},
	}
	if !d.Config.Release() && d.Config.Admin.Password == "admin123" {
		s.log.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), requestID(), requestLogger(d.Log), s.tracker.middleware())
	s.routes(r)
	s.engine = r
	return s, nil
}

func (s *Server) routes(r *gin.Engine) {
	r.StaticFS("/static", http.FS(staticFiles()))

	r.GET("/", s.index)
	r.GET("/sections/:name", s.section)
	r.GET("/contact-form", s.contactFormPage)
	r.POST("/contact", s.submitContact)
	r.GET("/privacy", s.privacy)
	r.GET("/healthz", s.healthz)

	s.adminRoutes(r)
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully and
// waits for background writes.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.tracker.wait()
	return err
}

// pageData feeds index.html and privacy.html.
type pageData struct {
	Title        string
	Description  string
	Views        []sections.View
	Full         bool
	ContactTitle string
	ContactBody  string
}

func newPage(title string) pageData {
	return pageData{
		Title:        title,
		Description:  "Full-stack developer portfolio: experience, projects and the tech I work with.",
		ContactTitle: content.ContactTitle,
		ContactBody:  content.ContactBody,
	}
}

// index renders the page shell. Each section starts as a skeleton and
// loads its own fragment; ?render=full resolves everything before
// responding, for clients without JavaScript.
func (s *Server) index(c *gin.Context) {
	p := newPage("Developer Portfolio")
	if c.Query("render") == "full" {
		p.Views = sections.LoadPage(c.Request.Context(), s.loader)
		p.Full = true
	} else {
		p.Views = sections.Skeletons()
	}
	c.HTML(http.StatusOK, "index.html", p)
}

func (s *Server) section(c *gin.Context) {
	sec, ok := sections.Lookup(c.Param("name"))
	if !ok {
		c.String(http.StatusNotFound, "unknown section")
		return
	}
	view := sec.Load(c.Request.Context(), s.loader)
	c.HTML(http.StatusOK, "section", view)
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", newPage("Privacy Policy"))
}

// healthz reports the server's own health. The CMS being unreachable is not
// a server failure: the page still renders with fallback content.
func (s *Server) healthz(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}

// fetchRecorder writes every finished content fetch to the store so the
// admin dashboard can show content health.
type fetchRecorder struct {
	store *store.Store
	log   *zap.Logger
}

func (r fetchRecorder) RecordFetch(ctx context.Context, ev sections.FetchEvent) {
	rec := store.FetchRecord{
		Query:    ev.Query,
		Outcome:  string(ev.Outcome),
		Duration: ev.Duration,
	}
	if ev.Err != nil {
		rec.Error = ev.Err.Error()
	}
	// A visitor closing the tab must not lose the record.
	if err := r.store.RecordFetch(context.WithoutCancel(ctx), rec); err != nil {
		r.log.Warn("recording fetch", zap.String("query", ev.Query), zap.Error(err))
	}
}
