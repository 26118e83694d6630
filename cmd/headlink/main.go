// headlink receives head-orientation and gaze datagrams over UDP and
// drives a physical actuator, a virtual head viewer, or an attention
// logger.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teslashibe/go-headlink/internal/config"
	"github.com/teslashibe/go-headlink/internal/log"
	"github.com/teslashibe/go-headlink/pkg/actuator"
	"github.com/teslashibe/go-headlink/pkg/attention"
	"github.com/teslashibe/go-headlink/pkg/render"
	"github.com/teslashibe/go-headlink/pkg/stream"
	"github.com/teslashibe/go-headlink/pkg/viewer"
	"github.com/teslashibe/go-headlink/pkg/wire"
)

func main() {
	var (
		mode       = flag.String("mode", "", "one of: listen-attention, control-actuator, render-virtual")
		host       = flag.String("host", config.ActuatorHost(config.DefaultActuatorHost), "actuator host (control-actuator mode)")
		posePort   = flag.Int("pose-port", config.EnvInt("POSE_PORT", config.DefaultPosePort), "UDP port for the pose stream")
		gazePort   = flag.Int("gaze-port", config.EnvInt("GAZE_PORT", config.DefaultGazePort), "UDP port for the gaze stream")
		tick       = flag.Duration("tick", render.DefaultTick, "render scheduling period")
		viewerPort = flag.String("viewer-port", config.EnvString("VIEWER_PORT", config.DefaultViewerPort), "HTTP port for the virtual head viewer")
		panJoint   = flag.String("pan-joint", config.DefaultPanJoint, "actuator joint name for pan")
		tiltJoint  = flag.String("tilt-joint", config.DefaultTiltJoint, "actuator joint name for tilt")
		maxPan     = flag.Float64("max-pan", 0, "clamp pan to ± this many degrees (0 disables)")
		maxTilt    = flag.Float64("max-tilt", 0, "clamp tilt to ± this many degrees (0 disables)")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log.Init(*logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch *mode {
	case "control-actuator":
		cfg := actuator.Config{PanJoint: *panJoint, TiltJoint: *tiltJoint}
		if *maxPan > 0 || *maxTilt > 0 {
			cfg.Limits = &actuator.Limits{MaxPan: *maxPan, MaxTilt: *maxTilt}
		}
		err = runActuator(ctx, *host, *posePort, cfg)
	case "render-virtual":
		err = runRender(ctx, *posePort, *viewerPort, *tick)
	case "listen-attention":
		err = runAttention(ctx, *gazePort)
	default:
		fmt.Fprintf(os.Stderr, "Usage: headlink -mode {listen-attention|control-actuator|render-virtual} [flags]\n\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("fatal", "mode", *mode, "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete", "mode", *mode)
}

// runActuator drives the physical head: a dedicated blocking receive loop
// applying every pose datagram as two joint commands.
func runActuator(ctx context.Context, host string, port int, cfg actuator.Config) error {
	listener, err := stream.Open(stream.DefaultConfig(port))
	if err != nil {
		return err
	}

	joints := actuator.NewHTTPJointClient(host)
	adapter := actuator.NewAdapter(joints, cfg)
	log.Info("actuator control started", "host", host, "pan_joint", cfg.PanJoint, "tilt_joint", cfg.TiltJoint)

	return listener.Run(ctx, adapter.HandleDatagram)
}

// runRender drives the virtual head: a tick-driven non-blocking poll
// feeding transforms to the browser viewer.
func runRender(ctx context.Context, port int, viewerPort string, tick time.Duration) error {
	listener, err := stream.Open(stream.DefaultConfig(port))
	if err != nil {
		return err
	}
	defer listener.Close()

	srv := viewer.NewServer(viewerPort)
	srv.StartAsync()
	defer srv.Shutdown()

	adapter := render.NewAdapter(listener, srv, tick)
	log.Info("virtual head started", "tick", tick, "viewer_port", viewerPort)

	return adapter.Run(ctx)
}

// runAttention logs gaze transitions.
func runAttention(ctx context.Context, port int) error {
	listener, err := stream.Open(stream.DefaultConfig(port))
	if err != nil {
		return err
	}

	latch := attention.NewLatch()
	log.Info("attention listener started", "port", port)

	return listener.Run(ctx, func(data []byte) {
		sample, err := wire.DecodeGaze(data)
		if err != nil {
			log.Warn("dropping malformed gaze datagram", "bytes", len(data), "error", err)
			return
		}
		if tr, changed := latch.Observe(sample); changed {
			status := "NOT LOOKING"
			if tr.Looking {
				status = "LOOKING"
			}
			log.Info("gaze changed", "status", status, "at", tr.At.Format("15:04:05.000"),
				"sender_ts", tr.SenderTimestamp, "event_id", tr.ID)
		}
	})
}
