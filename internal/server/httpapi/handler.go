// Package httpapi exposes the stand-in metrics and auth endpoints over HTTP:
//
//	POST /login                          {"username","password"} -> {"token"}
//	GET  /name                           Bearer <token>          -> {"name"}
//	GET  /2/users/by/username/:username  Bearer <static token>   -> {"data":{...}}
package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/tweetstats/internal/logging"
	"github.com/dmitrijs2005/tweetstats/internal/server/profiles"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type UserService interface {
	Login(ctx context.Context, userName, password string) (string, error)
	WhoAmI(ctx context.Context, token string) (string, error)
}

type Handler struct {
	users       UserService
	profiles    profiles.Repository
	bearerToken string
	validate    *validator.Validate
	logger      logging.Logger
}

func NewHandler(us UserService, pr profiles.Repository, bearerToken string, l logging.Logger) *Handler {
	return &Handler{
		users:       us,
		profiles:    pr,
		bearerToken: bearerToken,
		validate:    validator.New(),
		logger:      l.With("module", "http_api"),
	}
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())

	r.POST("/login", h.login)
	r.GET("/name", h.name)
	r.GET("/2/users/by/username/:username", h.requireStaticBearer(), h.userByUsername)

	return r
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		c.Next()

		h.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", id,
		)
	}
}

func bearer(c *gin.Context) (string, bool) {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	return token, ok && token != ""
}

func (h *Handler) requireStaticBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c)
		if !ok || token != h.bearerToken {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.failErr(c, err)
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.failErr(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{Token: token})
}

type nameResponse struct {
	Name string `json:"name"`
}

func (h *Handler) name(c *gin.Context) {
	token, ok := bearer(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	name, err := h.users.WhoAmI(c.Request.Context(), token)
	if err != nil {
		h.failErr(c, err)
		return
	}
	c.JSON(http.StatusOK, nameResponse{Name: name})
}

type userResponse struct {
	Data *profiles.Profile `json:"data"`
}

func (h *Handler) userByUsername(c *gin.Context) {
	username := c.Param("username")

	p, err := h.profiles.Lookup(c.Request.Context(), username)
	if err != nil {
		h.failErr(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse{Data: p})
}
