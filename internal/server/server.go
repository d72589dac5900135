package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"acadforms/internal/ai"
	"acadforms/internal/auth"
	"acadforms/internal/cloud"
	"acadforms/internal/database"
	"acadforms/internal/mailer"
	"acadforms/internal/schema"
)

type Server struct {
	port     int
	db       database.Service
	drive    cloud.Store
	sender   mailer.Sender
	rewriter ai.Rewriter
	catalog  *schema.Catalog
}

func (s *Server) GetDB() database.Service {
	return s.db
}

func (s *Server) GetDrive() cloud.Store {
	return s.drive
}

func (s *Server) GetSender() mailer.Sender {
	return s.sender
}

func (s *Server) GetRewriter() ai.Rewriter {
	return s.rewriter
}

func (s *Server) GetCatalog() *schema.Catalog {
	return s.catalog
}

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	NewServer := &Server{
		port:     port,
		db:       database.New(),
		drive:    newDrive(),
		sender:   newSender(),
		rewriter: newRewriter(),
		catalog:  schema.Default(),
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", NewServer.port),
		Handler:      NewServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

// newDrive picks the S3-backed drive when a bucket is configured and falls
// back to the in-memory drive for local development.
func newDrive() cloud.Store {
	if os.Getenv("AWS_S3_BUCKET") == "" {
		log.Printf("AWS_S3_BUCKET not set, using in-memory drive")
		return cloud.SeededMemoryStore()
	}

	drive, err := cloud.NewS3Store(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize drive: %v", err)
	}
	if err := cloud.EnsureBaseTree(context.Background(), drive); err != nil {
		log.Fatalf("Failed to prepare drive folders: %v", err)
	}
	return drive
}

// newSender delivers through Microsoft Graph when OAuth is configured and
// records messages locally otherwise.
func newSender() mailer.Sender {
	if os.Getenv("MICROSOFT_CLIENT_ID") == "" {
		log.Printf("MICROSOFT_CLIENT_ID not set, email delivery is recorded only")
		return mailer.NewMockSender()
	}
	return mailer.NewGraphSender(auth.AccessTokenFromContext)
}

// newRewriter enables AI text improvement when a Gemini key is configured.
// Without one the improve endpoint echoes the input back.
func newRewriter() ai.Rewriter {
	rw, err := ai.NewGeminiRewriter()
	if err != nil {
		log.Printf("AI rewriting disabled: %v", err)
		return nil
	}
	return rw
}
