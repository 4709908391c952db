package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/nfnt/resize"

	"github.com/pkoziol/go-phong-raytracer/pkg/renderer"
	"github.com/pkoziol/go-phong-raytracer/pkg/scene"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
	maxDimension  = 4096
	thumbWidth    = 128
)

// renderRequest is a parsed and validated render request
type renderRequest struct {
	SceneName string
	Mode      renderer.RenderMode
	Width     int
	Height    int
}

// wsMessage is a single websocket frame sent to the client during a
// streamed render. Type is "progress", "complete" or "error".
type wsMessage struct {
	Type         string `json:"type"`
	ColumnsDone  int    `json:"columnsDone,omitempty"`
	TotalColumns int    `json:"totalColumns,omitempty"`
	ImageData    string `json:"imageData,omitempty"` // Base64 encoded PNG
	ThumbData    string `json:"thumbData,omitempty"` // Base64 encoded PNG thumbnail
	ElapsedMs    int64  `json:"elapsedMs,omitempty"`
	Error        string `json:"error,omitempty"`
}

// parseRenderRequest reads scene, mode, width and height query parameters
func (s *Server) parseRenderRequest(r *http.Request) (renderRequest, error) {
	req := renderRequest{
		SceneName: "default",
		Mode:      renderer.ModeParallel,
		Width:     defaultWidth,
		Height:    defaultHeight,
	}

	q := r.URL.Query()
	if name := q.Get("scene"); name != "" {
		req.SceneName = name
	}
	if modeName := q.Get("mode"); modeName != "" {
		mode, err := renderer.ParseRenderMode(modeName)
		if err != nil {
			return renderRequest{}, err
		}
		req.Mode = mode
	}

	var err error
	if req.Width, err = parseDimension(q.Get("width"), defaultWidth); err != nil {
		return renderRequest{}, fmt.Errorf("invalid width: %w", err)
	}
	if req.Height, err = parseDimension(q.Get("height"), defaultHeight); err != nil {
		return renderRequest{}, fmt.Errorf("invalid height: %w", err)
	}

	return req, nil
}

func parseDimension(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n <= 0 || n > maxDimension {
		return 0, fmt.Errorf("%d out of range (1-%d)", n, maxDimension)
	}
	return n, nil
}

// handleRender renders synchronously and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	selectedScene, err := scene.ByName(req.SceneName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raytracer := selectedScene.NewRaytracer()
	img, stats, err := raytracer.RenderImage(req.Mode, req.Width, req.Height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.ToRGBA()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if s.uploader != nil {
		key := fmt.Sprintf("renders/%s_%s.png", req.SceneName, time.Now().Format("20060102_150405"))
		if err := s.uploadToS3(r.Context(), buf.Bytes(), key); err != nil {
			log.Printf("Upload failed: %v", err)
		}
	}

	log.Printf("Rendered %s %dx%d (%s) in %v", req.SceneName, req.Width, req.Height, req.Mode, stats.Elapsed)
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// handleRenderWS streams render progress over a websocket, finishing
// with a base64-encoded frame and thumbnail.
func (s *Server) handleRenderWS(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	selectedScene, err := scene.ByName(req.SceneName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	// Progress arrives from multiple render workers; a single writer
	// loop drains this channel so the connection sees one writer.
	messages := make(chan wsMessage, 64)

	go func() {
		defer close(messages)

		raytracer := selectedScene.NewRaytracer()
		raytracer.SetProgressFunc(func(columnsDone, totalColumns int) {
			// Drop updates rather than stall the render workers
			select {
			case messages <- wsMessage{Type: "progress", ColumnsDone: columnsDone, TotalColumns: totalColumns}:
			default:
			}
		})

		img, stats, err := raytracer.RenderImage(req.Mode, req.Width, req.Height)
		if err != nil {
			messages <- wsMessage{Type: "error", Error: err.Error()}
			return
		}

		rgba := img.ToRGBA()

		var frame bytes.Buffer
		if err := png.Encode(&frame, rgba); err != nil {
			messages <- wsMessage{Type: "error", Error: err.Error()}
			return
		}

		var thumb bytes.Buffer
		thumbImg := resize.Resize(thumbWidth, 0, rgba, resize.Bilinear)
		if err := png.Encode(&thumb, thumbImg); err != nil {
			messages <- wsMessage{Type: "error", Error: err.Error()}
			return
		}

		messages <- wsMessage{
			Type:         "complete",
			TotalColumns: req.Width,
			ColumnsDone:  req.Width,
			ImageData:    base64.StdEncoding.EncodeToString(frame.Bytes()),
			ThumbData:    base64.StdEncoding.EncodeToString(thumb.Bytes()),
			ElapsedMs:    stats.Elapsed.Milliseconds(),
		}
	}()

	// Drain until the render goroutine closes the channel, even after a
	// write failure, so its final blocking send can never stall.
	var writeErr error
	for msg := range messages {
		if writeErr != nil {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("WebSocket write error: %v", err)
			writeErr = err
		}
	}
}
