package site

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/sanity"
	"github.com/Zachkp/portfolio/internal/store"
)

const adminCookie = "admin_token"

// adminAuth holds the session token issued on login. It is regenerated on
// every start, which logs everybody out.
type adminAuth struct {
	token    string
	username string
	password string
	secure   bool
}

func (a *adminAuth) valid(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *adminAuth) required() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes(r *gin.Engine) {
	r.GET("/admin/login", s.adminLoginPage)
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", s.adminLogout)

	admin := r.Group("/admin")
	admin.Use(s.auth.required())
	admin.GET("/dashboard", s.adminDashboard)
	admin.GET("/api/stats", s.adminStatsJSON)
	admin.GET("/visitors", s.adminVisitors)
	admin.GET("/messages", s.adminMessages)
	admin.DELETE("/messages/:id", s.adminDeleteMessage)
	admin.GET("/content", s.adminContent)
	admin.POST("/privacy/cleanup", s.adminCleanup)
	admin.GET("/export/stats", s.adminExport)
}

func (s *Server) adminLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
}

func (s *Server) adminLogin(c *gin.Context) {
	who := s.tracker.hasher.hash(c.ClientIP())
	if !s.auth.valid(c.PostForm("username"), c.PostForm("password")) {
		s.log.Warn("failed admin login", zap.String("client", who))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, s.auth.token, 3600*24, "/admin", "", s.auth.secure, true)
	s.log.Info("admin login", zap.String("client", who))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) adminLogout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/admin", "", s.auth.secure, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

func (s *Server) adminError(c *gin.Context, msg string, err error) {
	s.log.Error(msg, zap.Error(err))
	c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
		"title": "Error",
		"nav":   true,
		"error": msg,
	})
}

func (s *Server) adminDashboard(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		s.adminError(c, "Failed to load statistics", err)
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"title": "Dashboard",
		"nav":   true,
		"stats": stats,
	})
}

func (s *Server) adminStatsJSON(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminVisitors(c *gin.Context) {
	visits, err := s.store.RecentVisits(c.Request.Context(), 200)
	if err != nil {
		s.adminError(c, "Failed to load visitors", err)
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
		"title":    "Visitors",
		"nav":      true,
		"visitors": visits,
	})
}

func (s *Server) adminMessages(c *gin.Context) {
	messages, err := s.store.Messages(c.Request.Context(), 200)
	if err != nil {
		s.adminError(c, "Failed to load messages", err)
		return
	}
	c.HTML(http.StatusOK, "admin-messages.html", gin.H{
		"title":    "Messages",
		"nav":      true,
		"messages": messages,
	})
}

func (s *Server) adminDeleteMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}
	err = s.store.DeleteMessage(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
	case err != nil:
		s.log.Error("deleting message", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
	default:
		s.log.Info("message deleted", zap.Int64("id", id))
		// An empty 200 body makes htmx drop the message card.
		c.Status(http.StatusOK)
	}
}

type queryInfo struct {
	Name     string
	Kind     sanity.Kind
	Endpoint string
}

type endpointer interface {
	Endpoint(q sanity.Query) string
}

func (s *Server) adminContent(c *gin.Context) {
	ep, _ := s.fetcher.(endpointer)
	var queries []queryInfo
	for _, name := range sanity.Names() {
		q, _ := sanity.Lookup(name)
		info := queryInfo{Name: q.Name, Kind: q.Kind}
		if ep != nil {
			info.Endpoint = ep.Endpoint(q)
		}
		queries = append(queries, info)
	}
	c.HTML(http.StatusOK, "admin-content.html", gin.H{
		"title":   "Content",
		"nav":     true,
		"project": s.cfg.Sanity.ProjectID,
		"dataset": s.cfg.Sanity.Dataset,
		"queries": queries,
	})
}

func (s *Server) adminCleanup(c *gin.Context) {
	ctx := c.Request.Context()
	visits, err := s.store.CleanupVisitors(ctx)
	if err != nil {
		s.log.Error("privacy cleanup", zap.Error(err))
		c.String(http.StatusInternalServerError, "Cleanup failed")
		return
	}
	fetches, err := s.store.CleanupFetchEvents(ctx)
	if err != nil {
		s.log.Error("fetch log cleanup", zap.Error(err))
		c.String(http.StatusInternalServerError, "Cleanup failed")
		return
	}
	s.log.Info("privacy cleanup", zap.Int64("visits", visits), zap.Int64("fetch_events", fetches))
	c.String(http.StatusOK, "Removed %d old visit records and %d old fetch events", visits, fetches)
}

func (s *Server) adminExport(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	c.JSON(http.StatusOK, stats)
}
