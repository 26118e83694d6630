package viewer

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/teslashibe/go-headlink/internal/log"
)

// TransformFrame is one per-part pose pushed to viewers.
type TransformFrame struct {
	Type        string     `json:"type"` // always "transform"
	Part        string     `json:"part"`
	Rotation    [9]float64 `json:"rotation"` // row-major 3x3
	Translation [3]float64 `json:"translation"`
	Timestamp   int64      `json:"ts"` // Unix milliseconds
}

// Status is the /api/status payload.
type Status struct {
	Viewers   int                       `json:"viewers"`
	LastParts map[string]TransformFrame `json:"last_parts"`
}

// Server is the virtual head surface. It implements the render package's
// TransformSink by broadcasting each transform to connected browsers.
type Server struct {
	app  *fiber.App
	port string
	hub  *Hub

	mu   sync.RWMutex
	last map[string]TransformFrame
}

// NewServer creates the viewer server on the given port.
func NewServer(port string) *Server {
	s := &Server{
		port: port,
		hub:  NewHub(),
		last: make(map[string]TransformFrame),
	}

	app := fiber.New(fiber.Config{
		AppName:               "headlink viewer",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	app.Get("/", s.handleIndex)
	app.Get("/api/status", s.handleStatus)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(s.hub.serve))

	s.app = app
	return s
}

// SetTransform broadcasts one part pose to all connected viewers.
func (s *Server) SetTransform(part string, rotation *mat.Dense, translation r3.Vec) error {
	var frame TransformFrame
	frame.Type = "transform"
	frame.Part = part
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			frame.Rotation[i*3+j] = rotation.At(i, j)
		}
	}
	frame.Translation = [3]float64{translation.X, translation.Y, translation.Z}
	frame.Timestamp = time.Now().UnixMilli()

	s.mu.Lock()
	s.last[part] = frame
	s.mu.Unlock()

	return s.hub.BroadcastJSON(frame)
}

// Start runs the hub and serves HTTP. Blocks.
func (s *Server) Start() error {
	log.Info("viewer serving", "url", "http://localhost:"+s.port)
	go s.hub.Run()
	return s.app.Listen(":" + s.port)
}

// StartAsync serves in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("viewer server error", "error", err)
		}
	}()
}

// Shutdown stops the HTTP listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.mu.RLock()
	last := make(map[string]TransformFrame, len(s.last))
	for k, v := range s.last {
		last[k] = v
	}
	s.mu.RUnlock()

	return c.JSON(Status{
		Viewers:   s.hub.ClientCount(),
		LastParts: last,
	})
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(indexHTML)
}

// indexHTML is a minimal canvas viewer: head disc plus two eyes, drawn
// from the broadcast translations projected onto the XZ/XY planes.
const indexHTML = `<!doctype html>
<html>
<head><title>headlink viewer</title>
<style>body{background:#111;color:#ddd;font-family:monospace}canvas{border:1px solid #333}</style>
</head>
<body>
<h3>virtual head</h3>
<canvas id="c" width="600" height="600"></canvas>
<div id="pose"></div>
<script>
const parts = {};
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => {
  const f = JSON.parse(ev.data);
  if (f.type === "transform") parts[f.part] = f;
};
const ctx = document.getElementById("c").getContext("2d");
function px(v) { return 300 + v * 180; }
function draw() {
  ctx.clearRect(0, 0, 600, 600);
  const head = parts["head"];
  if (head) {
    ctx.strokeStyle = "#e8b89a";
    ctx.beginPath();
    ctx.arc(px(head.translation[0]), 600 - px(head.translation[2]), 180, 0, 2 * Math.PI);
    ctx.stroke();
    // forward axis: third column of the rotation
    ctx.beginPath();
    ctx.moveTo(px(head.translation[0]), 600 - px(head.translation[2]));
    ctx.lineTo(px(head.rotation[2]), 600 - px(head.rotation[8]));
    ctx.stroke();
  }
  for (const name of ["eye_left", "eye_right"]) {
    const eye = parts[name];
    if (!eye) continue;
    ctx.fillStyle = "#fff";
    ctx.beginPath();
    ctx.arc(px(eye.translation[0]), 600 - px(eye.translation[2]), 13, 0, 2 * Math.PI);
    ctx.fill();
  }
  if (head) {
    document.getElementById("pose").textContent = "ts " + head.ts;
  }
  requestAnimationFrame(draw);
}
draw();
</script>
</body>
</html>`
