package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gorilla/websocket"
)

const uploadTimeout = 10 * time.Second

// Config holds the server settings, read from the environment.
// The S3 fields are optional; uploads are skipped when S3Bucket is empty.
type Config struct {
	Address     string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
}

// ConfigFromEnv builds a Config from environment variables
func ConfigFromEnv() Config {
	return Config{
		Address:     getEnv("SERVER_ADDRESS", ":8080"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Server handles web requests for the sphere raytracer
type Server struct {
	config   Config
	upgrader websocket.Upgrader
	uploader *s3.S3 // nil when S3 is not configured
}

// New creates a new web server, wiring up the S3 uploader when configured
func New(config Config) (*Server, error) {
	srv := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	if config.S3Bucket != "" {
		s3Config := &aws.Config{
			Credentials:      credentials.NewStaticCredentials(config.S3AccessKey, config.S3SecretKey, ""),
			Endpoint:         aws.String(config.S3Endpoint),
			Region:           aws.String(config.S3Region),
			S3ForcePathStyle: aws.Bool(true),
		}
		sess, err := session.NewSession(s3Config)
		if err != nil {
			return nil, fmt.Errorf("creating S3 session: %w", err)
		}
		srv.uploader = s3.New(sess)
	}

	return srv, nil
}

// Handler returns the route table for the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/ws/render", s.handleRenderWS)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	return http.ListenAndServe(s.config.Address, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// uploadToS3 stores a finished render in the configured bucket
func (s *Server) uploadToS3(ctx context.Context, data []byte, key string) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := s.uploader.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("Uploaded %s to S3 (%d bytes)", key, size)
	return nil
}
