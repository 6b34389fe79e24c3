package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// sessionRequest is one message from a websocket client.
type sessionRequest struct {
	Op        string     `json:"op"`
	Size      int        `json:"size"`
	Selection *Selection `json:"selection,omitempty"`
	Julia     *struct {
		Real      float64 `json:"real"`
		Imaginary float64 `json:"imaginary"`
	} `json:"julia,omitempty"`
}

// frameHeader precedes every binary RGBA frame. When Unchanged is set the
// request did nothing and no frame follows.
type frameHeader struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Area      Area   `json:"area"`
	Depth     int    `json:"depth"`
	Fractal   string `json:"fractal"`
	History   []Area `json:"history"`
	Unchanged bool   `json:"unchanged,omitempty"`
}

// sessionDefaults apply to every connection of a frame server.
type sessionDefaults struct {
	MaxIterations int
	// Fractal is used by requests that carry no julia constant.
	Fractal Fractal
	// OriginPatterns lists extra origins allowed to connect. Same-origin
	// requests and clients that send no Origin header are always accepted.
	OriginPatterns []string
}

type errorReply struct {
	Error string `json:"error"`
}

// fractal picks the request's Julia constant, or the session default.
func (req sessionRequest) fractal(def Fractal) Fractal {
	if req.Julia == nil {
		return fractalOrDefault(def)
	}
	return Julia{C: complex(req.Julia.Real, req.Julia.Imaginary)}
}

func (req sessionRequest) validate() error {
	if req.Size <= 0 || req.Size > MaxCanvasSize {
		return fmt.Errorf("size must be in [1, %d], got %d", MaxCanvasSize, req.Size)
	}
	switch req.Op {
	case "render", "undo", "redo", "reset":
	case "zoom":
		if req.Selection == nil {
			return fmt.Errorf("zoom needs a selection")
		}
		if req.Selection.SideLength <= 0 {
			return fmt.Errorf("selection side length must be positive")
		}
	default:
		return fmt.Errorf("unknown op %q", req.Op)
	}
	return nil
}

// newFrameServer serves rendering sessions on /ws. Every connection gets its
// own viewport history.
func newFrameServer(addr string, defaults sessionDefaults) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", sessionHandler(defaults))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func sessionHandler(defaults sessionDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: defaults.OriginPatterns,
		})
		if err != nil {
			slog.Warn("websocket accept", "err", err)
			return
		}
		defer c.CloseNow()

		slog.Info("session started", "remote", r.RemoteAddr)
		err = serveSession(r.Context(), c, NewRenderer(defaults.MaxIterations), defaults.Fractal)
		if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
			slog.Info("session closed", "remote", r.RemoteAddr)
			return
		}
		slog.Warn("session ended", "remote", r.RemoteAddr, "err", err)
	}
}

func serveSession(ctx context.Context, c *websocket.Conn, renderer *Renderer, def Fractal) error {
	for {
		var req sessionRequest
		if err := wsjson.Read(ctx, c, &req); err != nil {
			return err
		}
		if err := req.validate(); err != nil {
			slog.Debug("bad request", "op", req.Op, "err", err)
			if err := wsjson.Write(ctx, c, errorReply{Error: err.Error()}); err != nil {
				return err
			}
			continue
		}
		if err := handleRequest(ctx, c, renderer, req, def); err != nil {
			return err
		}
	}
}

func handleRequest(ctx context.Context, c *websocket.Conn, renderer *Renderer, req sessionRequest, def Fractal) error {
	f := req.fractal(def)
	var (
		img     *image.RGBA
		changed = true
	)
	switch req.Op {
	case "render":
		img = renderer.Render(req.Size, f)
	case "zoom":
		img = renderer.Zoom(*req.Selection, req.Size, f)
	case "undo":
		img, changed = renderer.Undo(req.Size, f)
	case "redo":
		img, changed = renderer.Redo(req.Size, f)
	case "reset":
		img = renderer.Reset(req.Size, f)
	}

	header := frameHeader{
		Width:     req.Size,
		Height:    req.Size,
		Area:      renderer.Viewport(),
		Depth:     renderer.Depth(),
		Fractal:   f.String(),
		History:   renderer.History(),
		Unchanged: !changed,
	}
	slog.Debug("frame", "op", req.Op, "size", req.Size, "depth", header.Depth, "unchanged", header.Unchanged)
	if err := wsjson.Write(ctx, c, header); err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return c.Write(ctx, websocket.MessageBinary, img.Pix)
}
