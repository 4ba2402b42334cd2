// Package preview serves the clock over HTTP as a live-updating page with
// SVG and PNG renderings. It is one concrete rendering surface; the
// driver neither knows nor cares that frames end up on a web page.
package preview

import (
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	routing "github.com/jackwhelpton/fasthttp-routing/v2"
	"github.com/valyala/fasthttp"

	"github.com/go-drift/clockface/pkg/driver"
	"github.com/go-drift/clockface/pkg/rendering"
)

const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="1">
<title>clockface</title>
</head>
<body style="margin:0;display:flex;flex-direction:column;align-items:center">
<img src="/clock.svg" alt="clock">
<p style="font-family:sans-serif">%s</p>
</body>
</html>
`

// Server stores the latest published frame and serves it over HTTP.
// It implements driver.Surface.
type Server struct {
	addr   string
	resize func(rendering.Size)

	mu    sync.RWMutex
	frame driver.Frame
	ready bool
}

// NewServer creates a preview server. The resize callback is invoked from
// request handlers when a client posts a new viewport size; pass the
// driver's Resize method.
func NewServer(addr string, resize func(rendering.Size)) *Server {
	return &Server{addr: addr, resize: resize}
}

// Present stores the latest frame. Called from the driver loop.
func (s *Server) Present(frame driver.Frame) {
	s.mu.Lock()
	s.frame = frame
	s.ready = true
	s.mu.Unlock()
}

func (s *Server) snapshot() (driver.Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame, s.ready
}

// Router builds the preview routes.
func (s *Server) Router() *routing.Router {
	router := routing.New()

	router.Get("/", s.indexHandler())
	router.Get("/clock.svg", s.svgHandler())
	router.Get("/clock.png", s.pngHandler())
	router.Get("/time", s.timeHandler())
	router.Post("/resize", s.resizeHandler())

	return router
}

// ListenAndServe serves the preview on the configured address.
func (s *Server) ListenAndServe() error {
	return fasthttp.ListenAndServe(s.addr, s.Router().HandleRequest)
}

// Serve serves the preview on an existing listener.
func (s *Server) Serve(ln net.Listener) error {
	return fasthttp.Serve(ln, s.Router().HandleRequest)
}

func (s *Server) indexHandler() routing.Handler {
	return func(c *routing.Context) error {
		frame, ok := s.snapshot()
		if !ok {
			return s.unavailable(c)
		}
		c.SetContentType("text/html; charset=utf-8")
		return c.Write([]byte(fmt.Sprintf(indexPage, frame.Date)))
	}
}

func (s *Server) svgHandler() routing.Handler {
	return func(c *routing.Context) error {
		frame, ok := s.snapshot()
		if !ok {
			return s.unavailable(c)
		}
		c.SetContentType("image/svg+xml")
		return c.Write([]byte(frame.RenderSVG()))
	}
}

func (s *Server) pngHandler() routing.Handler {
	return func(c *routing.Context) error {
		frame, ok := s.snapshot()
		if !ok {
			return s.unavailable(c)
		}
		data, err := frame.RenderPNG()
		if err != nil {
			return fmt.Errorf("could not encode frame: %w", err)
		}
		c.SetContentType("image/png")
		return c.Write(data)
	}
}

// timeHandler reports the displayed time in the same shape as the
// upstream time endpoint: {"datetime": "<ISO-8601>"}.
func (s *Server) timeHandler() routing.Handler {
	return func(c *routing.Context) error {
		frame, ok := s.snapshot()
		if !ok {
			return s.unavailable(c)
		}
		payload, err := json.Marshal(struct {
			Datetime string `json:"datetime"`
		}{Datetime: frame.Time.Format(time.RFC3339)})
		if err != nil {
			return err
		}
		c.SetContentType("application/json")
		return c.Write(payload)
	}
}

func (s *Server) resizeHandler() routing.Handler {
	return func(c *routing.Context) error {
		width := c.QueryArgs().GetUfloatOrZero("width")
		height := c.QueryArgs().GetUfloatOrZero("height")
		size := rendering.Size{Width: width, Height: height}
		if size.IsEmpty() {
			c.SetStatusCode(fasthttp.StatusBadRequest)
			return c.Write([]byte("width and height must be positive\n"))
		}
		if s.resize != nil {
			s.resize(size)
		}
		return c.Write([]byte("resize requested\n"))
	}
}

func (s *Server) unavailable(c *routing.Context) error {
	c.SetStatusCode(fasthttp.StatusServiceUnavailable)
	return c.Write([]byte("no frame published yet\n"))
}
