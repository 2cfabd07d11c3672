package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"library/cache"
	"library/db"
	"library/loggers"
	"library/middleware"
	"library/models"
	"library/search"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type Handlers struct {
	Library     db.LibraryDatabaseManager
	Engine      *search.Engine
	Recommender *search.Recommender
	Cache       cache.RequestCacher

	adminPasswordHash []byte
}

func CreateHandlers(library db.LibraryDatabaseManager, activityCache cache.RequestCacher, adminPassword string) (*Handlers, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Handlers{
		Library:           library,
		Engine:            search.CreateEngine(library),
		Recommender:       search.CreateRecommender(library),
		Cache:             activityCache,
		adminPasswordHash: hash,
	}, nil
}

type loginRequest struct {
	Role     string `form:"role" json:"role" binding:"required"`
	Password string `form:"password" json:"password"`
}

func (handlers *Handlers) Login(c *gin.Context) {
	var login loginRequest
	if err := c.ShouldBind(&login); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	switch login.Role {
	case "admin":
		if bcrypt.CompareHashAndPassword(handlers.adminPasswordHash, []byte(login.Password)) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid password for admin role"})
			return
		}
	case "student":
		// any student is let in; role is a transient session flag
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "unknown role"})
		return
	}

	if err := middleware.IssueSessionCookie(c, login.Role); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged in", "role": login.Role})
}

func (handlers *Handlers) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (handlers *Handlers) ListBooks(c *gin.Context) {
	books, err := handlers.Library.ListAll()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, books)
}

type addBookRequest struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Subject string `form:"subject" json:"subject" binding:"required"`
	Price   string `form:"price" json:"price" binding:"required"`
	Edition string `form:"edition" json:"edition" binding:"required"`
}

func (handlers *Handlers) AddBook(c *gin.Context) {
	var request addBookRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	input, err := models.ParseBookInput(request.Name, request.Subject, request.Price, request.Edition)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	id, err := handlers.Library.Add(input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, db.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "created",
		"book_id": id,
	})
}

func (handlers *Handlers) RemoveBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "book id must be an integer"})
		return
	}

	removed, err := handlers.Library.Remove(id)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// absence is a normal outcome, not a failure
	message := fmt.Sprintf("book %d removed", id)
	if !removed {
		message = fmt.Sprintf("book %d not found", id)
	}

	c.JSON(http.StatusOK, gin.H{
		"removed": removed,
		"message": message,
	})
}

func (handlers *Handlers) Chat(c *gin.Context) {
	var request models.ChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	query := strings.TrimSpace(request.Query)
	if query == "" {
		c.JSON(http.StatusOK, models.ChatReply{
			Type:    models.ChatReplyNoMatch,
			Message: "Please ask a question about a book or subject.",
		})
		return
	}

	handlers.cacheUserRequest(c, query)

	found, err := handlers.Engine.Search(query)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if len(found) > 0 {
		c.JSON(http.StatusOK, models.ChatReply{
			Type:    models.ChatReplyFound,
			Message: fmt.Sprintf("I found %d book(s) matching your request for '%s':", len(found), query),
			Books:   found,
		})
		return
	}

	message, suggestions, err := handlers.Recommender.Recommend(query, found)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	replyType := models.ChatReplySuggestion
	if len(suggestions) == 0 {
		replyType = models.ChatReplyNoMatch
	}

	c.JSON(http.StatusOK, models.ChatReply{
		Type:    replyType,
		Message: message,
		Books:   suggestions,
	})
}

func (handlers *Handlers) Activity(c *gin.Context) {
	sessionId := c.GetString("session_id")

	records, err := handlers.Cache.Read(sessionId)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	requests := make([]models.UserRequest, 0)
	for _, record := range records {
		var request models.UserRequest
		if err := json.Unmarshal([]byte(record), &request); err != nil {
			continue
		}
		requests = append(requests, request)
	}

	c.JSON(http.StatusOK, requests)
}

// cacheUserRequest records the chat query against the session id.
// Not failing a request if there's a problem caching it.
func (handlers *Handlers) cacheUserRequest(c *gin.Context, query string) {
	sessionId := c.GetString("session_id")
	if sessionId == "" {
		return
	}

	request, err := json.Marshal(models.UserRequest{
		Method: c.Request.Method,
		Route:  c.Request.URL.Path,
		Query:  query,
	})
	if err != nil {
		return
	}

	if err := handlers.Cache.Write(sessionId, request); err != nil {
		loggers.Logger.Warn("failed to cache chat request: ", err)
	}
}
